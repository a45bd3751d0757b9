package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryStructural Category = "structural" // Malformed fiber tree; fatal
	CategoryHost       Category = "host"       // Host adapter misuse; recoverable
	CategoryProtocol   Category = "protocol"   // Wire codec errors
	CategoryConfig     Category = "config"     // Configuration errors
	CategorySnapshot   Category = "snapshot"   // Snapshot store errors
)

// WeftError is a structured error with a stable code and category.
type WeftError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (structural, host, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Fatal indicates the error aborts the current render pass.
	Fatal bool

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *WeftError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *WeftError) Unwrap() error {
	return e.Wrapped
}

// Wrap attaches an underlying error.
func (e *WeftError) Wrap(err error) *WeftError {
	e.Wrapped = err
	return e
}

// WithDetail replaces the detailed explanation.
func (e *WeftError) WithDetail(format string, args ...any) *WeftError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// New creates a WeftError from a registered error code.
func New(code string) *WeftError {
	template, ok := registry[code]
	if !ok {
		return &WeftError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &WeftError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		Fatal:    template.Fatal,
	}
}

// Newf creates a new WeftError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *WeftError {
	return &WeftError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a WeftError.
func FromError(err error, code string) *WeftError {
	if err == nil {
		return nil
	}
	if we, ok := err.(*WeftError); ok {
		return we
	}
	return New(code).Wrap(err)
}

// IsFatal reports whether err (or anything it wraps) is a fatal WeftError.
func IsFatal(err error) bool {
	for err != nil {
		if we, ok := err.(*WeftError); ok && we.Fatal {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
