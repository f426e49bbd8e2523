// SPDX-License-Identifier: MIT

// Package bipartite solves the minimum-cost assignment problem on a complete
// bipartite graph given as a non-negative weight matrix.
//
// The solver is an exact, memoized recursion over equal-size "subsquares"
// (a subset of row indices paired with an equally sized subset of column
// indices):
//
//   - Base case (m = 1): the single row is paired with the single column.
//   - General case: the largest row r of the subset is removed and tried
//     against every column c of the subset, recursing on the remaining
//     (rows \ r, cols \ c) subsquare; the cheapest candidate wins.
//   - Every solved subsquare is stored once under a canonical key
//     (sorted rows ++ sorted cols) in a memo indexed by subset size.
//
// Rectangular inputs are reduced to the square case:
//
//   - rows < cols: the matrix is padded with cols-rows zero-weight dummy
//     rows; every perfect matching of the square uses exactly that many
//     dummy cells, so the square optimum is the rectangular one and its
//     cost is the real sum. Dummy rows are dropped from the result.
//   - cols < rows: the transpose is solved and the mapping inverted; rows
//     without a partner are reported as Unassigned.
//
// Tie-break policy: candidates are tried in ascending column order and a
// candidate replaces the incumbent only when strictly cheaper, so the
// lowest column index wins ties. The parallel mode (WithParallel) keeps the
// same rule and returns identical results.
//
// Complexity:
//
//	Because rows are always removed largest-first, the visited row subsets
//	form a single prefix chain and only column subsets vary: at most C(n,m)
//	keys per size class m, i.e. O(2ⁿ) memo entries and O(n·2ⁿ) trials.
//	This is NOT the Hungarian algorithm; it is intended for small inputs
//	(n ≲ 20). Use WithMaxSize to refuse larger ones up front.
//
// Errors:
//
//	Input is validated once at the public boundary (MinCostMatch):
//	ErrNilMatrix, ErrEmptyMatrix, ErrNonFinite, ErrNegativeWeight,
//	ErrTooLarge, ErrCostOverflow, ErrInvalidOption. The recursion itself
//	never fails.
package bipartite
