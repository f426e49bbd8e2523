// SPDX-License-Identifier: MIT

// Package matrix provides the dense weight-matrix container consumed by the
// matching solvers.
//
// The matrix package provides:
//
//   - Matrix, a minimal rectangular float64 interface (Rows, Cols, At, Set, Clone).
//   - Dense, a row-major implementation with bounds-checked accessors and an
//     optional finite-only numeric policy.
//   - Shape transforms used by the rectangular reductions: Transpose and PadRows.
//   - Centralized validators (nil, non-empty, finite, non-negative) that return
//     package sentinels wrapped with the offending coordinates.
//
// Errors are sentinels prefixed with "matrix: " and must be matched with
// errors.Is. No exported function panics on user input.
//
// See the examples in this package and in bipartite for usage patterns.
package matrix
