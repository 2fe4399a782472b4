package fixed

import (
	"fmt"
	"math/bits"

	mu "github.com/avdva/binfixed/internal/mathutil"
)

// log2Prec is the number of fractional bits of the normalized remainder in Log2.
// A remainder in [1, 2) occupies 63 bits, and its square is taken in 128 bits.
const log2Prec = 62

// Log2 returns the base-2 logarithm of v at the same shift.
// Returns ErrDomain if v <= 0, and ErrOverflow if the result cannot be represented,
// which is possible only for large shifts, where the integer range is small.
//
// The integer part of the result is the position of the most significant bit of v.
// The fractional part is computed bit by bit without floating point: the mantissa is
// normalized into [1, 2) and repeatedly squared; every time the square reaches 2,
// it is halved and the next fractional bit is set. The loop runs exactly 'shift' times.
// The result is truncated, it is exact for powers of two and within one unit
// in the last place otherwise.
func (v Value) Log2(shift uint) (Value, error) {
	if err := checkShift(shift); err != nil {
		return Zero, err
	}
	if v <= 0 {
		return Zero, fmt.Errorf("log2(%d): %w", v, ErrDomain)
	}
	msb := mu.Log2Floor32(uint32(v))
	integ := int64(msb) - int64(shift)

	// v has at most 31 significant bits, so the normalization is always a left shift.
	x := uint64(v) << (log2Prec - uint(msb))
	var frac int64
	for bit := shift; bit > 0; bit-- {
		hi, lo := bits.Mul64(x, x)
		x = hi<<(64-log2Prec) | lo>>log2Prec
		if x >= 2<<log2Prec {
			x >>= 1
			frac |= 1 << (bit - 1)
		}
	}
	return narrow(integ<<shift | frac)
}

// MustLog2 is like Log2, but panics on error.
func MustLog2(v Value, shift uint) Value {
	res, err := v.Log2(shift)
	if err != nil {
		panic(err)
	}
	return res
}
