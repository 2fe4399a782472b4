// Package q16 implements the 16.16 binary fixed-point number,
// where the number of fractional bits is a compile-time constant.
package q16

import (
	"bytes"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	fixed "github.com/avdva/binfixed"
)

// Shift is the number of fractional bits.
const Shift = 16

const (
	Zero             = Fixed(0)
	One              = Fixed(1 << Shift)
	Max              = Fixed(math.MaxInt32)
	Min              = Fixed(math.MinInt32)
	SmallestPositive = Fixed(1)
	SmallestNegative = Fixed(-1)
)

// Fixed is a 16.16 number: 32,767.9999847 to -32,768.0.
type Fixed int32

// FromInt32 returns i as a Fixed. Returns an error, if i is out of [-32768, 32767].
func FromInt32(i int32) (Fixed, error) {
	v, err := fixed.FromInt32(i, Shift)
	return Fixed(v), err
}

// MustFromInt32 is like FromInt32, but panics on error.
func MustFromInt32(i int32) Fixed {
	f, err := FromInt32(i)
	if err != nil {
		panic(err)
	}
	return f
}

// FromString parses a decimal number. The result is floored to 1/65536.
func FromString(s string) (Fixed, error) {
	v, err := fixed.FromString(s, Shift)
	return Fixed(v), err
}

// MustFromString is like FromString, but panics on error.
func MustFromString(s string) Fixed {
	f, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return f
}

// Value returns f as a fixed.Value with Shift fractional bits.
func (f Fixed) Value() fixed.Value {
	return fixed.Value(f)
}

// Number returns f as a fixed.Number.
func (f Fixed) Number() fixed.Number {
	n, _ := fixed.FromRaw(f.Value(), Shift)
	return n
}

// Int32 returns f rounded toward negative infinity.
func (f Fixed) Int32() int32 {
	return int32(f) >> Shift
}

func (f Fixed) Float32() float32 {
	res, _ := f.Value().Float32(Shift)
	return res
}

func (f Fixed) Float64() float64 {
	res, _ := f.Value().Float64(Shift)
	return res
}

// IntegerPart returns floor(f).
func (f Fixed) IntegerPart() Fixed {
	v, _ := f.Value().IntegerPart(Shift)
	return Fixed(v)
}

// FracMagnitude returns the fractional bits of |f|.
func (f Fixed) FracMagnitude() uint32 {
	res, _ := f.Value().FracMagnitude(Shift)
	return res
}

func (f Fixed) Sign() int {
	return f.Value().Sign()
}

func (f Fixed) Cmp(other Fixed) int {
	return f.Value().Cmp(other.Value())
}

func (f Fixed) Add(other Fixed) (Fixed, error) {
	v, err := f.Value().Add(other.Value())
	return Fixed(v), err
}

func (f Fixed) Sub(other Fixed) (Fixed, error) {
	v, err := f.Value().Sub(other.Value())
	return Fixed(v), err
}

// Mul returns f * other truncated toward negative infinity.
func (f Fixed) Mul(other Fixed) (Fixed, error) {
	v, err := f.Value().Mul(other.Value(), Shift)
	return Fixed(v), err
}

// Div returns f / other truncated toward zero.
func (f Fixed) Div(other Fixed) (Fixed, error) {
	v, err := f.Value().Div(other.Value(), Shift)
	return Fixed(v), err
}

// Log2 returns log2(f).
func (f Fixed) Log2() (Fixed, error) {
	v, err := f.Value().Log2(Shift)
	return Fixed(v), err
}

// Decimal returns the exact decimal representation of f.
func (f Fixed) Decimal() decimal.Decimal {
	d, _ := f.Value().Decimal(Shift)
	return d
}

func (f Fixed) String() string {
	return f.Decimal().String()
}

func (f Fixed) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteRune('"')
	b.WriteString(f.String())
	b.WriteRune('"')
	return b.Bytes(), nil
}

func (f *Fixed) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	fs, err := FromString(string(data))
	if err == nil {
		*f = fs
	}
	return err
}

// GoString returns debug string representation.
func (f Fixed) GoString() string {
	return f.String() + fmt.Sprintf(" {%d}", int32(f))
}
