// core/molrec/errors.go
package molrec

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or irreconcilable molecule data:
// unrecognized schemas, fragment patterns that skip or duplicate atoms,
// array-length mismatches, or a reorder required under a no-reorder policy.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a *ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// FormatError reports an unrecognized serialization format tag. It is a
// caller-usage mistake, deliberately distinct from ValidationError.
type FormatError struct {
	Dtype string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("to string: dtype %q unrecognized", e.Dtype)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsFormat reports whether err is (or wraps) a FormatError.
func IsFormat(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
