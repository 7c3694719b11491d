package relative

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeValue matches every NegativeValueError via errors.Is.
	ErrNegativeValue = errors.New("negative value")
	// ErrOverflow matches every OverflowError via errors.Is.
	ErrOverflow = errors.New("value too large")
	// ErrUnknownUnit is returned by ParseUnit for unrecognised unit names.
	ErrUnknownUnit = errors.New("unknown unit")
)

// NegativeValueError reports a negative magnitude passed to an offset
// function. Suggestion names the mirror function that accepts the
// magnitude as given, and Value is its absolute value.
type NegativeValueError struct {
	Unit       string
	Suggestion string
	Value      uint64
}

func (e NegativeValueError) Error() string {
	return fmt.Sprintf("%s must be positive. Did you mean %s(%d)?", e.Unit, e.Suggestion, e.Value)
}

func (e NegativeValueError) Is(target error) bool {
	return target == ErrNegativeValue
}

// OverflowError reports a magnitude that cannot be converted to a delta,
// or whose resulting moment falls outside the representable range.
type OverflowError struct {
	Unit  string
	Value int64
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("%s value %d is too large", e.Unit, e.Value)
}

func (e OverflowError) Is(target error) bool {
	return target == ErrOverflow
}
