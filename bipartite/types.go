// SPDX-License-Identifier: MIT

package bipartite

import (
	"errors"

	"github.com/katalvlaran/lvmatch/matrix"
)

// Unassigned marks a row that has no partner column (only when rows > cols).
const Unassigned = -1

var (
	// ErrNilMatrix is returned when the weight matrix is nil.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrEmptyMatrix is returned when the weight matrix has no rows or no columns.
	ErrEmptyMatrix = errors.New("bipartite: empty weight matrix")

	// ErrNegativeWeight is returned when any weight is < 0.
	ErrNegativeWeight = matrix.ErrNegativeWeight

	// ErrNonFinite is returned when any weight is NaN or ±Inf.
	ErrNonFinite = matrix.ErrNaNInf

	// ErrDimensionMismatch is returned for ragged row slices (MinCostMatchRows).
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrTooLarge is returned when max(rows, cols) exceeds Options.MaxSize.
	ErrTooLarge = errors.New("bipartite: matrix exceeds configured size limit")

	// ErrCostOverflow is returned when the optimal total weight cannot be
	// represented as a finite float64.
	ErrCostOverflow = errors.New("bipartite: total cost overflows float64")

	// ErrInvalidOption is returned for nonsensical option values.
	ErrInvalidOption = errors.New("bipartite: invalid option")

	// ErrInvalidAssignment is returned by ValidateAssignment and AssignmentCost.
	ErrInvalidAssignment = errors.New("bipartite: invalid assignment")
)

// Result holds the outcome of MinCostMatch.
type Result struct {
	// Assignment has one entry per row: the matched column index in
	// [0, cols), or Unassigned when the row has no partner (rows > cols).
	Assignment []int

	// Cost is the total weight of the matched edges.
	Cost float64
}

// Stats reports search counters of one MinCostMatch call.
type Stats struct {
	Calls       int64 // subsquare invocations, base cases included
	Hits        int64 // memo lookups that returned a stored solution
	Subproblems int64 // distinct subsquares stored in the memo
}

// solution is a solved subsquare of size m: pairs holds the sorted row
// indices followed by the column matched to each of them, cost is their
// total weight. A zero-length solution means "not yet computed".
type solution struct {
	pairs []int
	cost  float64
}

// size returns m, the number of matched pairs.
func (s solution) size() int { return len(s.pairs) / 2 }
