package format

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned while reading a volume wraps
// exactly one of these.
var (
	ErrHeaderFormat      = errors.New("invalid NRRD header")
	ErrSequenceFormat    = errors.New("invalid data file sequence")
	ErrIO                = errors.New("NRRD I/O error")
	ErrResourceExhausted = errors.New("volume too large")
	ErrUnsupported       = errors.New("unsupported NRRD feature")
)

// FieldError reports a problem with a single header field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: field %q: %v", ErrHeaderFormat, e.Field, e.Err)
}

// Unwrap exposes both the header category and the cause.
func (e *FieldError) Unwrap() []error {
	return []error{ErrHeaderFormat, e.Err}
}

// NewFieldError wraps err for the named field.
func NewFieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}

// FieldErrorf is NewFieldError with a formatted cause.
func FieldErrorf(field, msg string, args ...any) error {
	return &FieldError{Field: field, Err: fmt.Errorf(msg, args...)}
}
