// SPDX-License-Identifier: MIT

package bipartite

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/matrix"
)

const opSolveRectangular = "solveRectangular"

// padWeight fills the dummy rows of a wide input. Every perfect matching of
// the padded square uses exactly skew dummy cells, so any constant fill
// shifts all candidate totals by the same amount. Zero adds nothing, which
// keeps the compared totals equal to the real sums in float64.
const padWeight = 0.0

// solveRectangular reduces a rows≠cols matrix to the square case.
//
//   - cols < rows: solve wᵀ (which has rows < cols) and invert the mapping;
//     rows that received no column stay Unassigned.
//   - rows < cols: append skew = cols-rows dummy rows of padWeight, solve
//     the cols×cols square and drop the dummy rows. Real rows can only be
//     matched to real columns, so the square optimum restricted to them is
//     the rectangular optimum and its cost is the real sum.
//
// Precondition: w is validated (finite, non-negative, non-empty).
func solveRectangular(w matrix.Matrix, o Options) ([]int, float64, error) {
	rows, cols := w.Rows(), w.Cols()

	if cols < rows {
		wt, err := matrix.Transpose(w)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", opSolveRectangular, err)
		}
		byCol, cost, err := solveRectangular(wt, o)
		if err != nil {
			return nil, 0, err
		}

		assignment := make([]int, rows)
		for i := range assignment {
			assignment[i] = Unassigned
		}
		for c, r := range byCol {
			if r != Unassigned {
				assignment[r] = c
			}
		}

		return assignment, cost, nil
	}

	padded, err := matrix.PadRows(w, cols-rows, padWeight)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", opSolveRectangular, err)
	}
	assignment, cost, err := solveSquare(padded, o)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", opSolveRectangular, err)
	}

	return assignment[:rows:rows], cost, nil
}
