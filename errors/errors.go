// Package errors provides a string based error type so packages can declare
// their sentinel errors as consts.
package errors

import (
	"errors"
	"strings"
)

// Separator sits between an error's message and its wrapped cause.
const Separator = " -- "

// Error is a const-declarable error.
type Error string

func (e Error) Error() string {
	return string(e)
}

// Is reports whether target carries the same message as e, either exactly or
// as the head of a wrapped chain.
func (e Error) Is(target error) bool {
	return e.Error() == target.Error() || strings.HasPrefix(target.Error(), e.Error()+Separator)
}

// Wrap attaches err as the cause of e.
func (e Error) Wrap(err error) error {
	return wrappedError{cause: err, msg: string(e)}
}

type wrappedError struct {
	cause error
	msg   string
}

func (w wrappedError) Error() string {
	if w.cause != nil {
		return w.msg + Separator + w.cause.Error()
	}
	return w.msg
}

func (w wrappedError) Is(target error) bool {
	return Error(w.msg).Is(target)
}

func (w wrappedError) Unwrap() error {
	return w.cause
}

// The remainder mirrors the stdlib errors package, whose namespace this
// package occupies.

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns a new error with the given message.
func New(message string) error {
	return errors.New(message)
}
