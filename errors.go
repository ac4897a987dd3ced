package markdown

import (
	"errors"
	"fmt"
)

// Errors wrapped by ArgumentError. Test with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("argument out of range")
)

// ArgumentError reports a violated precondition on a named parameter.
type ArgumentError struct {
	Param  string
	Value  any
	Reason string
	Err    error
}

// InvalidArgument returns an ArgumentError wrapping ErrInvalidArgument.
func InvalidArgument(param string, value any, reason string) *ArgumentError {
	return &ArgumentError{Param: param, Value: value, Reason: reason, Err: ErrInvalidArgument}
}

// OutOfRange returns an ArgumentError wrapping ErrOutOfRange.
func OutOfRange(param string, value any, reason string) *ArgumentError {
	return &ArgumentError{Param: param, Value: value, Reason: reason, Err: ErrOutOfRange}
}

func (e *ArgumentError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%v: %s: %s", e.Err, e.Param, e.Reason)
	}
	return fmt.Sprintf("%v: %s (%v): %s", e.Err, e.Param, e.Value, e.Reason)
}

func (e *ArgumentError) Unwrap() error { return e.Err }
