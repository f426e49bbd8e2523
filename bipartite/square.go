// SPDX-License-Identifier: MIT

package bipartite

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/matrix"
)

const opSolveSquare = "solveSquare"

// solveSquare solves an n×n matrix via one subsquare call over the full
// index ranges and unpacks the solution into assignment[row] = col.
// Precondition: w is square and validated.
func solveSquare(w matrix.Matrix, o Options) ([]int, float64, error) {
	n := w.Rows()
	data, err := snapshot(w)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", opSolveSquare, err)
	}

	s := newSolver(n, data, o.Parallel)
	full := identity(n)

	var sol solution
	if o.Parallel && n > 1 {
		s.calls.Add(1)
		sol = s.memo.put(n, encodeKey(full, full), s.grindParallel(full, full))
	} else {
		sol = s.subsquare(full, full)
	}
	if o.Stats != nil {
		*o.Stats = s.stats()
	}

	assignment := make([]int, n)
	for i := 0; i < n; i++ {
		assignment[sol.pairs[i]] = sol.pairs[n+i]
	}

	return assignment, sol.cost, nil
}

// identity returns [0, 1, …, n-1].
func identity(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

// snapshot copies w into a row-major slice. *Dense uses its flat buffer;
// other implementations are read through At.
func snapshot(w matrix.Matrix) ([]float64, error) {
	if dm, ok := w.(*matrix.Dense); ok {
		return dm.Values(), nil
	}

	rows, cols := w.Rows(), w.Cols()
	data := make([]float64, rows*cols)
	var (
		i, j int
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if data[i*cols+j], err = w.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return data, nil
}
