package tables

import (
	"errors"
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// ErrInvalidOperand is wrapped by the error returned when a bitscan is asked to locate a
// bit in a zero value.
var ErrInvalidOperand = errors.New("bitscan: invalid operand")

// InvalidOperandError carries the operand of a failed bitscan.
type InvalidOperandError struct{ Operand uint64 }

func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf("bitscan: invalid value %d, expected nonzero integer", e.Operand)
}

func (e *InvalidOperandError) Unwrap() error { return ErrInvalidOperand }

// BitscanForward returns the index of the least significant set bit of x.
func BitscanForward[T constraints.Unsigned](x T) (int, error) {
	if x == 0 {
		return 0, &InvalidOperandError{Operand: uint64(x)}
	}
	return bits.TrailingZeros64(uint64(x)), nil
}

// BitscanReverse returns the index of the most significant set bit of x.
func BitscanReverse[T constraints.Unsigned](x T) (int, error) {
	if x == 0 {
		return 0, &InvalidOperandError{Operand: uint64(x)}
	}
	return 63 - bits.LeadingZeros64(uint64(x)), nil
}

// mustScan unwraps a bitscan result inside table generation, where a zero operand is a
// programming error.
func mustScan(idx int, err error) int {
	if err != nil {
		panic(err)
	}
	return idx
}
