// Package bipartite_test provides lightweight helpers shared across *_test.go
// files in this package: a brute-force reference solver, random instance
// generators and a non-Dense matrix implementation.
package bipartite_test

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvmatch/matrix"
)

const (
	// seedDet is the deterministic seed for random instances.
	seedDet = int64(20240917)

	// epsCost tolerates float rounding between summation orders.
	epsCost = 1e-9
)

// sliceMatrix is a row-sliced matrix without numeric policy, used to feed
// NaN/Inf and to exercise the generic At-based paths.
type sliceMatrix struct{ a [][]float64 }

var _ matrix.Matrix = sliceMatrix{}

func (m sliceMatrix) Rows() int { return len(m.a) }
func (m sliceMatrix) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}

func (m sliceMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrOutOfRange
	}

	return m.a[i][j], nil
}

func (m sliceMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrOutOfRange
	}
	m.a[i][j] = v

	return nil
}

func (m sliceMatrix) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	for i := range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return sliceMatrix{a: cp}
}

// bruteForce returns the optimum over all injective mappings from the
// smaller side into the larger one.
func bruteForce(a [][]float64) float64 {
	if len(a) > len(a[0]) {
		a = transpose(a)
	}
	used := make([]bool, len(a[0]))
	best := math.Inf(1)

	var rec func(row int, acc float64)
	rec = func(row int, acc float64) {
		if row == len(a) {
			if acc < best {
				best = acc
			}
			return
		}
		for c := range used {
			if used[c] {
				continue
			}
			used[c] = true
			rec(row+1, acc+a[row][c])
			used[c] = false
		}
	}
	rec(0, 0)

	return best
}

// transpose returns aᵀ.
func transpose(a [][]float64) [][]float64 {
	out := make([][]float64, len(a[0]))
	for j := range out {
		out[j] = make([]float64, len(a))
		for i := range a {
			out[j][i] = a[i][j]
		}
	}

	return out
}

// randomInts returns a rows×cols matrix of integers in [0, hi).
func randomInts(rng *rand.Rand, rows, cols, hi int) [][]float64 {
	a := make([][]float64, rows)
	for i := range a {
		a[i] = make([]float64, cols)
		for j := range a[i] {
			a[i][j] = float64(rng.Intn(hi))
		}
	}

	return a
}

// randomFloats returns a rows×cols matrix of values in [0, scale).
func randomFloats(rng *rand.Rand, rows, cols int, scale float64) [][]float64 {
	a := make([][]float64, rows)
	for i := range a {
		a[i] = make([]float64, cols)
		for j := range a[i] {
			a[i][j] = rng.Float64() * scale
		}
	}

	return a
}

// mustDense builds a *matrix.Dense or panics (test inputs are well-formed).
func mustDense(a [][]float64) *matrix.Dense {
	m, err := matrix.NewFromRows(a)
	if err != nil {
		panic(err)
	}

	return m
}
