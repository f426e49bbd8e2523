// SPDX-License-Identifier: MIT

// Package matrix - shape transforms.
//
// Purpose:
//   - Transpose swaps the roles of rows and columns (mᵀ).
//   - PadRows appends constant-valued rows below a matrix.
//   - MaxValue scans for the largest element.
//
// Each transform has a flat-slice fast path for *Dense and a generic
// interface fallback. Inputs are never mutated; results are fresh *Dense values.

package matrix

import "fmt"

const (
	opTranspose = "Transpose"
	opPadRows   = "PadRows"
	opMaxValue  = "MaxValue"
)

// Transpose returns a new Dense holding mᵀ (cols×rows).
//
// Errors:
//   - ErrNilMatrix when m is nil; At errors from non-Dense inputs are wrapped.
//
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	// Fast-path for Dense → Dense: data[i*cols + j] → res.data[j*rows + i].
	if dm, ok := m.(*Dense); ok {
		res.validateNaNInf = dm.validateNaNInf
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// PadRows returns a (rows+extra)×cols Dense whose first rows are a copy of m
// and whose trailing extra rows are filled with fill.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrInvalidDimensions when extra < 0.
//   - ErrNaNInf when fill is not finite.
//
// Complexity: O((r+extra)*c).
func PadRows(m Matrix, extra int, fill float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPadRows, err)
	}
	if extra < 0 {
		return nil, matrixErrorf(opPadRows, ErrInvalidDimensions)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewFilled(rows+extra, cols, fill)
	if err != nil {
		return nil, matrixErrorf(opPadRows, err)
	}

	if dm, ok := m.(*Dense); ok {
		copy(res.data, dm.data) // original rows occupy the prefix in row-major order

		return res, nil
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opPadRows, err)
			}
			if err = res.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opPadRows, err)
			}
		}
	}

	return res, nil
}

// MaxValue returns the largest element of m.
//
// Errors:
//   - ErrNilMatrix when m is nil; ErrInvalidDimensions when m has no cells.
//
// Complexity: O(r*c).
func MaxValue(m Matrix) (float64, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return 0, matrixErrorf(opMaxValue, err)
	}
	if dm, ok := m.(*Dense); ok {
		return dm.Max(), nil
	}

	var (
		i, j    int
		v, best float64
		err     error
	)
	if best, err = m.At(0, 0); err != nil {
		return 0, matrixErrorf(opMaxValue, err)
	}
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, matrixErrorf(opMaxValue, err)
			}
			if v > best {
				best = v
			}
		}
	}

	return best, nil
}
