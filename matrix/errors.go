// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions in this package return these sentinels (possibly wrapped with
// call-site context via %w) and tests check them via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: " for easy grepping across logs.
// Context is attached at the detection site with fmt.Errorf("ctx: %w", ErrX);
// callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible or ragged dimensions,
	// e.g. rows of different length in NewFromRows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeWeight signals a negative entry where weights must be >= 0.
	ErrNegativeWeight = errors.New("matrix: negative weight")
)

// matrixErrorf tags err with the public operation that detected it.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
