// SPDX-License-Identifier: MIT

package bipartite

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmatch/matrix"
)

const (
	opMinCostMatch     = "bipartite: MinCostMatch"
	opMinCostMatchRows = "bipartite: MinCostMatchRows"
)

// MinCostMatch computes a minimum-cost assignment for the rows×cols weight
// matrix w.
//
// Every row receives a distinct column when rows <= cols. When rows > cols,
// every column is used exactly once and the rows left without a partner are
// reported as Unassigned. Cost is the sum of w[i][Assignment[i]] over the
// assigned rows. w is never mutated.
//
// Errors (all wrapped, match with errors.Is):
//   - ErrNilMatrix, ErrEmptyMatrix: missing or zero-sized input.
//   - ErrNonFinite, ErrNegativeWeight: a weight is NaN/±Inf or < 0.
//   - ErrTooLarge: max(rows, cols) exceeds WithMaxSize.
//   - ErrCostOverflow: the optimal total is not representable as a finite float64.
//   - ErrInvalidOption: nonsensical options.
//
// Complexity: exponential in max(rows, cols); see the package documentation.
func MinCostMatch(w matrix.Matrix, opts ...Option) (Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opMinCostMatch, err)
	}
	if err = validateWeights(w); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opMinCostMatch, err)
	}

	rows, cols := w.Rows(), w.Cols()
	if o.MaxSize > 0 && max(rows, cols) > o.MaxSize {
		return Result{}, fmt.Errorf("%s: %dx%d exceeds %d: %w", opMinCostMatch, rows, cols, o.MaxSize, ErrTooLarge)
	}

	// A single cell needs no search.
	if rows == 1 && cols == 1 {
		v, err := w.At(0, 0)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", opMinCostMatch, err)
		}
		if o.Stats != nil {
			*o.Stats = Stats{}
		}

		return Result{Assignment: []int{0}, Cost: v}, nil
	}

	var (
		assignment []int
		cost       float64
	)
	if rows == cols {
		assignment, cost, err = solveSquare(w, o)
	} else {
		assignment, cost, err = solveRectangular(w, o)
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opMinCostMatch, err)
	}
	// Weights are finite and non-negative, so only the sum can reach +Inf.
	if math.IsInf(cost, 0) {
		return Result{}, fmt.Errorf("%s: %dx%d: %w", opMinCostMatch, rows, cols, ErrCostOverflow)
	}

	return Result{Assignment: assignment, Cost: cost}, nil
}

// MinCostMatchRows is MinCostMatch over a row-sliced matrix ([row][col]).
// Ragged rows are rejected with ErrDimensionMismatch, an empty input with
// ErrEmptyMatrix.
func MinCostMatchRows(rows [][]float64, opts ...Option) (Result, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Result{}, fmt.Errorf("%s: %w", opMinCostMatchRows, ErrEmptyMatrix)
	}
	w, err := matrix.NewFromRows(rows)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opMinCostMatchRows, err)
	}

	return MinCostMatch(w, opts...)
}
