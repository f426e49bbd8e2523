// Package matrix_test provides lightweight helpers shared across *_test.go
// files in this package.
package matrix_test

import (
	"math"

	"github.com/katalvlaran/lvmatch/matrix"
)

// sliceMatrix is a minimal row-sliced matrix used to exercise the generic
// (non-*Dense) fallback paths. It performs no numeric policy checks.
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

// nan is a tiny alias to keep table rows short.
var nan = math.NaN()
