package gradedit

import (
	"errors"
	"fmt"
)

// ErrMinimumStops is returned when a mutation would leave a color map
// with fewer than MinStops stops.
var ErrMinimumStops = errors.New("gradedit: color map must retain at least two stops")

// ErrStopNotFound is returned when no stop carries the requested id.
var ErrStopNotFound = errors.New("gradedit: no stop with the given id")

// DecodeError reports a malformed serialized color map. Decoding never
// partially constructs a value: on error the input is rejected outright.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gradedit: decode: %s: %v", e.Reason, e.Err)
	}
	return "gradedit: decode: " + e.Reason
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports color data that cannot be serialized, such as
// non-finite color components.
type EncodeError struct {
	Reason string
	Err    error
}

func (e *EncodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gradedit: encode: %s: %v", e.Reason, e.Err)
	}
	return "gradedit: encode: " + e.Reason
}

func (e *EncodeError) Unwrap() error { return e.Err }

// decodeErrorf builds a *DecodeError with a formatted reason.
func decodeErrorf(format string, args ...any) *DecodeError {
	return &DecodeError{Reason: fmt.Sprintf(format, args...)}
}
