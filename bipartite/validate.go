// SPDX-License-Identifier: MIT

package bipartite

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmatch/matrix"
)

// validateWeights runs the boundary checks in a fixed order:
// nil → empty → finite → non-negative.
// The recursion relies on these and performs none of its own.
func validateWeights(w matrix.Matrix) error {
	if err := matrix.ValidateNotNil(w); err != nil {
		return err
	}
	if err := matrix.ValidateNonEmpty(w); err != nil {
		if errors.Is(err, matrix.ErrInvalidDimensions) {
			return fmt.Errorf("%dx%d: %w", w.Rows(), w.Cols(), ErrEmptyMatrix)
		}

		return err
	}
	if err := matrix.ValidateFinite(w); err != nil {
		return err
	}

	return matrix.ValidateNonNegative(w)
}

// ValidateAssignment checks that assignment is a complete matching of a
// rows×cols problem:
//   - len(assignment) == rows;
//   - every entry is Unassigned or a column in [0, cols);
//   - no column is used twice;
//   - exactly min(rows, cols) rows are assigned.
//
// Errors: ErrInvalidAssignment wrapped with the first violation found.
func ValidateAssignment(rows, cols int, assignment []int) error {
	if len(assignment) != rows {
		return fmt.Errorf("length %d, want %d: %w", len(assignment), rows, ErrInvalidAssignment)
	}

	used := make([]bool, cols)
	assigned := 0
	for r, c := range assignment {
		if c == Unassigned {
			continue
		}
		if c < 0 || c >= cols {
			return fmt.Errorf("row %d: column %d out of range [0,%d): %w", r, c, cols, ErrInvalidAssignment)
		}
		if used[c] {
			return fmt.Errorf("row %d: column %d used twice: %w", r, c, ErrInvalidAssignment)
		}
		used[c] = true
		assigned++
	}
	if want := min(rows, cols); assigned != want {
		return fmt.Errorf("%d rows assigned, want %d: %w", assigned, want, ErrInvalidAssignment)
	}

	return nil
}

// AssignmentCost returns Σ w[i][assignment[i]] over the assigned rows.
//
// Errors: ErrNilMatrix; ErrInvalidAssignment when the length does not match
// w.Rows(); matrix.ErrOutOfRange for a column outside w.
func AssignmentCost(w matrix.Matrix, assignment []int) (float64, error) {
	if err := matrix.ValidateNotNil(w); err != nil {
		return 0, err
	}
	if len(assignment) != w.Rows() {
		return 0, fmt.Errorf("length %d, want %d: %w", len(assignment), w.Rows(), ErrInvalidAssignment)
	}

	var total float64
	for r, c := range assignment {
		if c == Unassigned {
			continue
		}
		v, err := w.At(r, c)
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", r, err)
		}
		total += v
	}

	return total, nil
}
