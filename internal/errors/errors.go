// Package errors is the single import for error handling across storefront.
// Sentinel matching goes through the standard library; wrapping records a
// stack trace via pkg/errors so logged failures point at their origin.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a plain sentinel error without a stack trace.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// AsType returns the first error in err's chain of type T.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

// Wrap adds a message and stack trace to err. It returns nil for a nil err.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records a stack trace on err without changing its message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf formats a new error that carries a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}
