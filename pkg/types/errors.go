package types

import (
	"errors"
	"fmt"
	"strings"
)

// Marker errors for classifying parse failures with errors.Is. Every typed
// error below unwraps to exactly one of these.
var (
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidEncoding  = errors.New("invalid payload encoding")
	ErrMalformedPayload = errors.New("malformed payload")
	ErrMapping          = errors.New("schema mapping failed")
)

// MissingFieldError reports a structurally required metadata key that was
// absent from the source. It is fatal; no schema fallback is attempted.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// EncodingError reports a base64 or UTF-8 decoding failure in the payload.
// Transport-level failures like this are never schema-recoverable.
type EncodingError struct {
	Reason string
	Err    error
}

func (e *EncodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid payload encoding: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid payload encoding: %s", e.Reason)
}

func (e *EncodingError) Unwrap() error { return ErrInvalidEncoding }

// PayloadError reports that the decoded payload text is not valid JSON.
type PayloadError struct {
	Err error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("malformed payload: %v", e.Err)
}

func (e *PayloadError) Unwrap() error { return ErrMalformedPayload }

// TypeMismatchError reports a raw value whose type does not satisfy the
// declared field type. Path is the dotted location of the offending field,
// for example "data.character_book.entries[2].keys"; it is empty when the
// document root itself has the wrong shape.
type TypeMismatchError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
	}
	return fmt.Sprintf("type mismatch at %q: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

func (e *TypeMismatchError) Unwrap() error { return ErrMapping }

// UnexpectedFieldError reports a key not declared by the target schema.
// Only strict-mode mapping produces it; lenient mapping ignores unknown keys.
type UnexpectedFieldError struct {
	Path string
}

func (e *UnexpectedFieldError) Error() string {
	return fmt.Sprintf("unexpected field %q", e.Path)
}

func (e *UnexpectedFieldError) Unwrap() error { return ErrMapping }

// SchemaAttempt records one schema generation tried against a document and
// the mapping error it produced.
type SchemaAttempt struct {
	Version SchemaVersion
	Err     error
}

// FallbackError is the terminal error when every schema attempt failed.
// Attempts are in the order tried; the last entry is the final V1 failure,
// which is what the error unwraps to.
type FallbackError struct {
	Attempts []SchemaAttempt
}

func (e *FallbackError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.Version, a.Err))
	}
	return "no card schema matched: " + strings.Join(parts, "; ")
}

// Unwrap returns the error from the last schema attempted.
func (e *FallbackError) Unwrap() error {
	if len(e.Attempts) == 0 {
		return ErrMapping
	}
	return e.Attempts[len(e.Attempts)-1].Err
}
