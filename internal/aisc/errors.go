package aisc

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation indicates malformed or missing section/material input.
	ErrValidation = errors.New("invalid input")

	// ErrDomain indicates a computed intermediate fell outside the valid
	// domain of a specification formula.
	ErrDomain = errors.New("outside formula domain")
)

// Error wraps a failed design check with its error kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

// Validationf builds a validation error with a formatted detail message.
func Validationf(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Msg: fmt.Sprintf(format, args...)}
}

// Domainf builds a domain error with a formatted detail message.
func Domainf(format string, args ...any) error {
	return &Error{Kind: ErrDomain, Msg: fmt.Sprintf(format, args...)}
}
