// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep solvers minimal by delegating nil/shape/value checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Value scans run row-major (i→j) so the first reported violation is stable.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → NonEmpty → values).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is also rejected.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if dm, ok := m.(*Dense); ok && dm == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonEmpty ensures Rows()>0 and Cols()>0 (NotNil first).
//
// Errors: ErrNilMatrix, ErrInvalidDimensions.
// Complexity: O(1).
func ValidateNonEmpty(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonEmpty", err)
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf("ValidateNonEmpty", ErrInvalidDimensions)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf anywhere in m.
// Assumes m is non-nil (caller must ensure).
//
// Errors: ErrNaNInf wrapped with the first offending coordinates.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	return scanValues(m, "ValidateFinite", func(v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}

		return nil
	})
}

// ValidateNonNegative rejects any entry < 0.
// Assumes m is non-nil (caller must ensure). NaN is not negative; pair with
// ValidateFinite when NaN must be rejected too.
//
// Errors: ErrNegativeWeight wrapped with the first offending coordinates.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	return scanValues(m, "ValidateNonNegative", func(v float64) error {
		if v < 0 {
			return ErrNegativeWeight
		}

		return nil
	})
}

// scanValues runs check over every element in row-major order and stops at
// the first violation.
func scanValues(m Matrix, tag string, check func(v float64) error) error {
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf(tag, err)
			}
			if err = check(v); err != nil {
				return fmt.Errorf("%s: (%d,%d)=%g: %w", tag, i, j, v, err)
			}
		}
	}

	return nil
}
