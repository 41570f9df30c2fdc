package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryRender   Category = "render"
	CategoryConfig   Category = "config"
	CategoryGallery  Category = "gallery"
	CategoryPublish  Category = "publish"
	CategoryProtocol Category = "protocol"
	CategoryCLI      Category = "cli"
)

// ToastError is a structured error with a code, suggestion and documentation.
type ToastError struct {
	// Code is a unique error identifier (e.g., "E120").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *ToastError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *ToastError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a ToastError with the same code.
func (e *ToastError) Is(target error) bool {
	t, ok := target.(*ToastError)
	if !ok || t.Code == "" {
		return false
	}
	return e.Code == t.Code
}

// WithSuggestion adds a fix suggestion to the error.
func (e *ToastError) WithSuggestion(s string) *ToastError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *ToastError) WithDetail(d string) *ToastError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted detail to the error.
func (e *ToastError) WithDetailf(format string, args ...any) *ToastError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *ToastError) Wrap(err error) *ToastError {
	e.Wrapped = err
	return e
}

// New creates a ToastError from a registered error code.
func New(code string) *ToastError {
	template, ok := registry[code]
	if !ok {
		return &ToastError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &ToastError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new ToastError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *ToastError {
	return &ToastError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a ToastError.
// Errors that already are ToastErrors are returned as-is.
func FromError(err error, code string) *ToastError {
	if err == nil {
		return nil
	}
	var te *ToastError
	if stderrors.As(err, &te) {
		return te
	}
	return New(code).Wrap(err)
}

// Code returns the code of the first ToastError in err's chain.
func Code(err error) string {
	var te *ToastError
	if stderrors.As(err, &te) {
		return te.Code
	}
	return ""
}
