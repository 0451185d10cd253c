package frames

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the kind of every error reported for malformed input.
// Test for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError identifies the parameter which has been rejected.
type ArgumentError struct {
	Param  string      // name of the parameter, e.g. "frameCount"
	Value  interface{} // the rejected value
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s=%v: %s", e.Param, e.Value, e.Reason)
}

// Unwrap makes every ArgumentError an ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// InvalidArgument creates an *ArgumentError. Packages building on frames use
// it to report their own parameters.
func InvalidArgument(param string, value interface{}, reason string) error {
	return &ArgumentError{Param: param, Value: value, Reason: reason}
}
