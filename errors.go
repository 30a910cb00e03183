package chartview

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArgument reports a non-finite value, a negative size or a
	// missing operand.
	ErrInvalidArgument = errors.New("chartview: invalid argument")
	// ErrDegenerateRegion reports a zero-extent region used as a scale
	// divisor for a non-zero request.
	ErrDegenerateRegion = errors.New("chartview: degenerate region")
)

// ArgError identifies the operation and parameter that caused a failure.
// It unwraps to ErrInvalidArgument or ErrDegenerateRegion.
type ArgError struct {
	Op    string
	Param string
	Msg   string
	Err   error
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("%s(%s): %s", e.Op, e.Param, e.Msg)
}

func (e *ArgError) Unwrap() error { return e.Err }

func invalidArg(op, param, msg string) error {
	return &ArgError{Op: op, Param: param, Msg: msg, Err: ErrInvalidArgument}
}

func degenerate(op, param, msg string) error {
	return &ArgError{Op: op, Param: param, Msg: msg, Err: ErrDegenerateRegion}
}

// checkFinite fails unless v is a finite number.
func checkFinite(op, param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalidArg(op, param, param+" must be a finite number")
	}
	return nil
}

// checkSize fails unless v is finite and non-negative.
func checkSize(op, param string, v float64) error {
	if err := checkFinite(op, param, v); err != nil {
		return err
	}
	if v < 0 {
		return invalidArg(op, param, param+" must be >= 0")
	}
	return nil
}
