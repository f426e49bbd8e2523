// Package lvmatch is a small, exact solver for the assignment problem:
// given a non-negative rows×cols weight matrix, pick one column per row
// (or one row per column, whichever side is smaller) so that no column is
// used twice and the total weight is minimal.
//
// What is inside?
//
//	matrix/      dense float64 matrix, shape helpers (Transpose, PadRows)
//	             and boundary validators (finite, non-negative)
//	bipartite/   memoized recursive minimum-cost matching, square and
//	             rectangular, with optional top-level parallelism
//	cmd/lvmatch  CLI: read a YAML/JSON matrix, print the assignment
//	examples/    runnable scenario programs
//
// Quick example:
//
//	      c0 c1 c2
//	r0  [  4  1  3 ]
//	r1  [  2  0  5 ]      →  r0→c1, r1→c0, r2→c2, cost 5
//	r2  [  3  2  2 ]
//
// The solver explores every subset of columns once, so its cost grows as
// O(n²·2ⁿ) time and O(n·2ⁿ) memory; it is meant for n up to roughly 16.
//
//	go get github.com/katalvlaran/lvmatch/bipartite
package lvmatch
