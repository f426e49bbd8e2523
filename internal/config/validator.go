package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/lvmatch/internal/logging"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "solver.max_size")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// ValidOutputFormats returns the list of valid result formats
func ValidOutputFormats() []string {
	return []string{OutputText, OutputJSON}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if !slices.Contains(logging.ValidLevels(), strings.ToUpper(c.Log.Level)) {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Value:   c.Log.Level,
			Message: fmt.Sprintf("must be one of %v", logging.ValidLevels()),
		})
	}
	if !slices.Contains(logging.ValidFormats(), strings.ToLower(c.Log.Format)) {
		errs = append(errs, ValidationError{
			Field:   "log.format",
			Value:   c.Log.Format,
			Message: fmt.Sprintf("must be one of %v", logging.ValidFormats()),
		})
	}
	if c.Solver.MaxSize < 0 {
		errs = append(errs, ValidationError{
			Field:   "solver.max_size",
			Value:   c.Solver.MaxSize,
			Message: "must be >= 0 (0 = unlimited)",
		})
	}
	if !slices.Contains(ValidOutputFormats(), strings.ToLower(c.Output)) {
		errs = append(errs, ValidationError{
			Field:   "output",
			Value:   c.Output,
			Message: fmt.Sprintf("must be one of %v", ValidOutputFormats()),
		})
	}

	return errs
}
