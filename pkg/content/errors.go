package content

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Sentinel errors for content loading.
var (
	ErrMalformedInput = errors.New("malformed content file")
	ErrValidation     = errors.New("content validation failed")
)

// MalformedInputError reports a content file that could not be parsed.
type MalformedInputError struct {
	Path   string
	Line   int
	Column int
	Cause  error
}

func (e *MalformedInputError) Error() (msg string) {
	if e.Line > 0 {
		msg = fmt.Sprintf("%s: %s at line %d, column %d: %v", ErrMalformedInput, e.Path, e.Line, e.Column, e.Cause)
		return msg
	}
	msg = fmt.Sprintf("%s: %s: %v", ErrMalformedInput, e.Path, e.Cause)
	return msg
}

// Is matches ErrMalformedInput.
func (e *MalformedInputError) Is(target error) (ok bool) {
	ok = target == ErrMalformedInput
	return ok
}

func (e *MalformedInputError) Unwrap() (cause error) {
	cause = e.Cause
	return cause
}

// FieldError is a single schema violation at a field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates every violation found in a content file.
type ValidationError struct {
	Path   string
	Errors []FieldError
}

func (e *ValidationError) Error() (msg string) {
	var sb strings.Builder
	if e.Path != "" {
		sb.WriteString(fmt.Sprintf("%s: %s (%d problems):\n", ErrValidation, e.Path, len(e.Errors)))
	} else {
		sb.WriteString(fmt.Sprintf("%s (%d problems):\n", ErrValidation, len(e.Errors)))
	}
	for i, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, fe.Field, fe.Message))
	}
	msg = strings.TrimSuffix(sb.String(), "\n")
	return msg
}

// Is matches ErrValidation.
func (e *ValidationError) Is(target error) (ok bool) {
	ok = target == ErrValidation
	return ok
}
