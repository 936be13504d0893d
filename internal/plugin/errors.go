package plugin

import (
    "errors"
    "fmt"
)

// ErrorKind classifies failures surfaced to the host.
type ErrorKind string

const (
    KindInvalidArgument ErrorKind = "invalid_argument"
    KindProcessing      ErrorKind = "processing"
)

// Error is a host-visible failure with a human-readable message.
type Error struct {
    Kind    ErrorKind
    Message string
    Err     error
}

func (e *Error) Error() string {
    if e.Err != nil {
        return fmt.Sprintf("%s: %v", e.Message, e.Err)
    }
    return e.Message
}

func (e *Error) Unwrap() error {
    return e.Err
}

func InvalidArgument(message string, err error) *Error {
    return &Error{Kind: KindInvalidArgument, Message: message, Err: err}
}

func Processing(message string, err error) *Error {
    return &Error{Kind: KindProcessing, Message: message, Err: err}
}

// KindOf reports the kind of err, treating anything that is not an *Error as
// a processing failure.
func KindOf(err error) ErrorKind {
    var pe *Error
    if errors.As(err, &pe) {
        return pe.Kind
    }
    return KindProcessing
}

func IsInvalidArgument(err error) bool {
    var pe *Error
    return errors.As(err, &pe) && pe.Kind == KindInvalidArgument
}

func IsProcessing(err error) bool {
    var pe *Error
    return errors.As(err, &pe) && pe.Kind == KindProcessing
}
