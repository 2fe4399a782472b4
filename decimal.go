// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	five = big.NewInt(5)

	maxDecimal = decimal.NewFromInt(int64(Max))
	minDecimal = decimal.NewFromInt(int64(Min))
)

// Decimal returns the exact decimal representation of v.
// Every binary fraction is a finite decimal one: v / 2^shift == v * 5^shift / 10^shift.
func (v Value) Decimal(shift uint) (decimal.Decimal, error) {
	if err := checkShift(shift); err != nil {
		return decimal.Zero, err
	}
	m := new(big.Int).Exp(five, big.NewInt(int64(shift)), nil)
	m.Mul(m, big.NewInt(int64(v)))
	return decimal.NewFromBigInt(m, -int32(shift)), nil
}

// FromDecimal returns the largest value, which is less or equal to d.
// Returns ErrOverflow if d is out of the range for given shift.
func FromDecimal(d decimal.Decimal, shift uint) (Value, error) {
	if err := checkShift(shift); err != nil {
		return Zero, err
	}
	scaled := d.Mul(decimal.NewFromInt(int64(1) << shift)).Floor()
	if scaled.LessThan(minDecimal) || scaled.GreaterThan(maxDecimal) {
		return Zero, ErrOverflow
	}
	return Value(scaled.IntPart()), nil
}

// FromString parses a decimal number, like "-1.25" or "3e-2", into a value.
// The result is floored, see FromDecimal.
func FromString(s string, shift uint) (Value, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Zero, fmt.Errorf("empty input")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, fmt.Errorf("parsing failed: %w", err)
	}
	return FromDecimal(d, shift)
}

// MustFromString is like FromString, but panics on error.
func MustFromString(s string, shift uint) Value {
	v, err := FromString(s, shift)
	if err != nil {
		panic(err)
	}
	return v
}
