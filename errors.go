package nrrd

import "github.com/dchen116/nrrd/internal/format"

// Error categories; test with errors.Is.
var (
	ErrHeaderFormat      = format.ErrHeaderFormat
	ErrSequenceFormat    = format.ErrSequenceFormat
	ErrIO                = format.ErrIO
	ErrResourceExhausted = format.ErrResourceExhausted
	ErrUnsupported       = format.ErrUnsupported
)

// FieldError names the header field a header error came from.
type FieldError = format.FieldError
