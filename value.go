// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fixed implements binary fixed-point arithmetic on 32-bit integers.
//
// A Value is a signed 32-bit integer interpreted as value/2^shift, where the shift
// (the number of fractional bits, 0..31) is passed to every operation. So the same
// Value type covers the whole Q(31-s).s family, for example Q15.16 for shift = 16.
//
// All operations are pure. Intermediate results are computed in 64 bits and then
// narrowed, and a result that does not fit 32 bits is reported as ErrOverflow
// instead of being wrapped.
package fixed

import (
	"errors"
	"fmt"
	"math"

	mu "github.com/avdva/binfixed/internal/mathutil"
)

const (
	// MaxShift is the maximum number of fractional bits.
	MaxShift = 31
	// DefaultShift is the shift of the 16.16 format, which is the most common one.
	DefaultShift = 16

	maxFracDigits = 9
)

const (
	// Zero is zero for any shift.
	Zero = Value(0)
	// Max is the maximum possible raw value.
	Max = Value(math.MaxInt32)
	// Min is the minimum possible raw value.
	Min = Value(math.MinInt32)
)

var (
	// ErrShiftRange is returned when a shift is outside [0, MaxShift].
	ErrShiftRange = errors.New("shift out of range")
	// ErrOverflow is returned when a result cannot be represented in 32 bits.
	ErrOverflow = errors.New("value out of range")
	// ErrDivideByZero is returned by Div for a zero divisor.
	ErrDivideByZero = errors.New("division by zero")
	// ErrDomain is returned by Log2 for non-positive arguments.
	ErrDomain = errors.New("argument out of domain")
)

// Value is a fixed-point number with a caller-defined number of fractional bits.
//
//	31                    shift                 0
//	s iiiiiiiiiiiiiiiiiiii|ffffffffffffffffffffff
type Value int32

func checkShift(shift uint) error {
	if shift > MaxShift {
		return fmt.Errorf("%w: %d", ErrShiftRange, shift)
	}
	return nil
}

func narrow(v int64) (Value, error) {
	if !mu.FitsInt32(v) {
		return Zero, ErrOverflow
	}
	return Value(v), nil
}

// FromInt32 returns i * 2^shift.
// Returns ErrOverflow if the result does not fit 32 bits.
func FromInt32(i int32, shift uint) (Value, error) {
	if err := checkShift(shift); err != nil {
		return Zero, err
	}
	return narrow(int64(i) << shift)
}

// MustFromInt32 is like FromInt32, but panics on error.
func MustFromInt32(i int32, shift uint) Value {
	v, err := FromInt32(i, shift)
	if err != nil {
		panic(err)
	}
	return v
}

// Rescale converts v from one number of fractional bits to another.
// Increasing the shift is exact, but may overflow. Decreasing it floors the result.
func Rescale(v Value, from, to uint) (Value, error) {
	if err := checkShift(from); err != nil {
		return Zero, err
	}
	if err := checkShift(to); err != nil {
		return Zero, err
	}
	if to >= from {
		return narrow(int64(v) << (to - from))
	}
	return v >> (from - to), nil
}

// Int32 returns the integer part of v, rounded toward negative infinity,
// so that 1.5 becomes 1, and -1.5 becomes -2.
func (v Value) Int32(shift uint) (int32, error) {
	if err := checkShift(shift); err != nil {
		return 0, err
	}
	// >> on a signed operand is an arithmetic shift in Go, which is floor(v / 2^shift).
	return int32(v) >> shift, nil
}

// Float64 returns v / 2^shift as a float64. The conversion is exact.
func (v Value) Float64(shift uint) (float64, error) {
	if err := checkShift(shift); err != nil {
		return 0, err
	}
	return float64(v) / float64(uint64(1)<<shift), nil
}

// Float32 returns v / 2^shift as a float32.
// The division is performed with float64 precision, and then the result is narrowed.
func (v Value) Float32(shift uint) (float32, error) {
	f, err := v.Float64(shift)
	return float32(f), err
}

// Mul returns v * other.
// The product is computed in 64 bits and shifted right, discarding the lowest
// 'shift' bits, so the result is truncated toward negative infinity, not rounded.
func (v Value) Mul(other Value, shift uint) (Value, error) {
	if err := checkShift(shift); err != nil {
		return Zero, err
	}
	return narrow((int64(v) * int64(other)) >> shift)
}

// Div returns v / other.
// The dividend is widened to 64 bits and shifted left before the division,
// so no fractional bits are lost. The quotient is truncated toward zero.
func (v Value) Div(other Value, shift uint) (Value, error) {
	if err := checkShift(shift); err != nil {
		return Zero, err
	}
	if other == 0 {
		return Zero, ErrDivideByZero
	}
	return narrow((int64(v) << shift) / int64(other))
}

// IntegerPart returns v with all fractional bits cleared, at the same shift.
// The result is floor(v), so IntegerPart(-1.25) is -2.
func (v Value) IntegerPart(shift uint) (Value, error) {
	if err := checkShift(shift); err != nil {
		return Zero, err
	}
	return v &^ Value(mu.LowMask32(shift)), nil
}

// FracMagnitude returns the fractional bits of |v|.
// Values of the opposite signs have equal fractional magnitudes, for instance,
// both 1.25 and -1.25 return 0.25 * 2^shift.
func (v Value) FracMagnitude(shift uint) (uint32, error) {
	if err := checkShift(shift); err != nil {
		return 0, err
	}
	abs := uint64(mu.AbsInt64(int64(v)))
	return uint32(abs) & mu.LowMask32(shift), nil
}

// FracDigits returns the first 'digits' decimal digits of v's fractional magnitude.
// The digits are truncated, so 1.999 with digits = 2 returns 99. 'digits' must be in [0, 9].
func (v Value) FracDigits(shift uint, digits int) (uint32, error) {
	if digits < 0 || digits > maxFracDigits {
		return 0, fmt.Errorf("bad digits count %d", digits)
	}
	frac, err := v.FracMagnitude(shift)
	if err != nil {
		return 0, err
	}
	return uint32((uint64(frac) * mu.Pow10(digits)) >> shift), nil
}

// Split splits v into sign, integer magnitude, and 'digits' truncated fractional digits,
// which is the way values are rendered as text: -1.25 splits into (true, 1, 25) for two digits.
func (v Value) Split(shift uint, digits int) (neg bool, integ, frac uint32, err error) {
	if frac, err = v.FracDigits(shift, digits); err != nil {
		return false, 0, 0, err
	}
	abs := uint64(mu.AbsInt64(int64(v)))
	return v < 0, uint32(abs >> shift), frac, nil
}

// Add returns v + other. The sum does not depend on the shift.
func (v Value) Add(other Value) (Value, error) {
	return narrow(int64(v) + int64(other))
}

// Sub returns v - other.
func (v Value) Sub(other Value) (Value, error) {
	return narrow(int64(v) - int64(other))
}

// Neg returns -v. Returns ErrOverflow for Min.
func (v Value) Neg() (Value, error) {
	return narrow(-int64(v))
}

// Abs returns |v|. Returns ErrOverflow for Min.
func (v Value) Abs() (Value, error) {
	return narrow(mu.AbsInt64(int64(v)))
}

// Cmp compares two values of the same shift.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (v Value) Cmp(other Value) int {
	switch {
	case v > other:
		return 1
	case v < other:
		return -1
	default:
		return 0
	}
}

// Sign returns -1 if a < 0, 0 if a = 0, 1 if a > 0.
func (v Value) Sign() int {
	return mu.Int64Sign(int64(v))
}
