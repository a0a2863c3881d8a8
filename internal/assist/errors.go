package assist

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MinInputLength is the shortest prompt accepted after trimming.
const MinInputLength = 3

// ErrorKind classifies failures surfaced by the assist engine.
type ErrorKind string

const (
	KindValidation        ErrorKind = "validation"
	KindConfiguration     ErrorKind = "configuration"
	KindClassification    ErrorKind = "classification"
	KindExtraction        ErrorKind = "extraction"
	KindUnsupportedAction ErrorKind = "unsupported_action"
)

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrValidation        = &Error{Kind: KindValidation}
	ErrConfiguration     = &Error{Kind: KindConfiguration}
	ErrClassification    = &Error{Kind: KindClassification}
	ErrExtraction        = &Error{Kind: KindExtraction}
	ErrUnsupportedAction = &Error{Kind: KindUnsupportedAction}
)

// Error carries enough context for a caller to log or display a failure.
// Raw holds unparsable model output when there is any.
type Error struct {
	Kind    ErrorKind
	Message string
	Detail  string
	Raw     string
	Err     error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	if e.Message == "" {
		return string(e.Kind) + " error"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches sentinels by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

// ErrorPayload is the wire form of a failed extraction.
type ErrorPayload struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
	Raw     string `json:"raw,omitempty"`
}

func (e *Error) Payload() ErrorPayload {
	return ErrorPayload{
		Error:   true,
		Message: e.Message,
		Detail:  e.Detail,
		Raw:     e.Raw,
	}
}

// AsError unwraps err into an *Error when it is one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func newError(kind ErrorKind, message string, cause error) *Error {
	e := &Error{Kind: kind, Message: message, Err: cause}
	if cause != nil {
		e.Detail = cause.Error()
	}
	return e
}

// ValidateInput rejects empty, whitespace-only and too-short prompts.
func ValidateInput(input string) error {
	return ValidateInputLength(input, MinInputLength)
}

// ValidateInputLength is ValidateInput with a stricter minimum. Values below
// MinInputLength are raised to it.
func ValidateInputLength(input string, minLen int) error {
	if minLen < MinInputLength {
		minLen = MinInputLength
	}
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &Error{Kind: KindValidation, Message: "input is required"}
	}
	if utf8.RuneCountInString(trimmed) < minLen {
		return &Error{Kind: KindValidation, Message: fmt.Sprintf("input must be at least %d characters", minLen)}
	}
	return nil
}
