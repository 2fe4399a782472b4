package fixed

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	mu "github.com/avdva/binfixed/internal/mathutil"
	su "github.com/avdva/binfixed/internal/strutil"
)

// ErrShiftMismatch is returned by binary Number operations on operands of different shifts.
var ErrShiftMismatch = errors.New("shift mismatch")

// Number is a Value, which carries its shift.
// The shift is validated once on creation, so, unlike Value, a Number
// cannot be mixed up with a number of another scale.
// The zero Number is 0 with no fractional bits.
type Number struct {
	v     Value
	shift uint8
}

// NewNumber returns i as a Number with given shift.
func NewNumber(i int32, shift uint) (Number, error) {
	v, err := FromInt32(i, shift)
	if err != nil {
		return Number{}, err
	}
	return Number{v: v, shift: uint8(shift)}, nil
}

// MustNewNumber is like NewNumber, but panics on error.
func MustNewNumber(i int32, shift uint) Number {
	n, err := NewNumber(i, shift)
	if err != nil {
		panic(err)
	}
	return n
}

// FromRaw returns a Number for a raw value and its shift.
func FromRaw(v Value, shift uint) (Number, error) {
	if err := checkShift(shift); err != nil {
		return Number{}, err
	}
	return Number{v: v, shift: uint8(shift)}, nil
}

// ParseNumber parses a decimal string, see FromString.
func ParseNumber(s string, shift uint) (Number, error) {
	v, err := FromString(s, shift)
	if err != nil {
		return Number{}, err
	}
	return Number{v: v, shift: uint8(shift)}, nil
}

// Raw returns the underlying value.
func (n Number) Raw() Value {
	return n.v
}

// Shift returns the number of fractional bits.
func (n Number) Shift() uint {
	return uint(n.shift)
}

func (n Number) with(v Value, err error) (Number, error) {
	if err != nil {
		return Number{}, err
	}
	return Number{v: v, shift: n.shift}, nil
}

func (n Number) sameShift(other Number) error {
	if n.shift != other.shift {
		return fmt.Errorf("%w: %d and %d", ErrShiftMismatch, n.shift, other.shift)
	}
	return nil
}

// Int32 returns n rounded toward negative infinity.
func (n Number) Int32() int32 {
	return int32(n.v) >> n.shift
}

// Float64 returns n as a float64.
func (n Number) Float64() float64 {
	f, _ := n.v.Float64(n.Shift())
	return f
}

// Float32 returns n as a float32.
func (n Number) Float32() float32 {
	f, _ := n.v.Float32(n.Shift())
	return f
}

// IntegerPart returns floor(n).
func (n Number) IntegerPart() Number {
	v, _ := n.v.IntegerPart(n.Shift())
	return Number{v: v, shift: n.shift}
}

// FracMagnitude returns the fractional bits of |n|.
func (n Number) FracMagnitude() uint32 {
	f, _ := n.v.FracMagnitude(n.Shift())
	return f
}

// Add returns n + other.
func (n Number) Add(other Number) (Number, error) {
	if err := n.sameShift(other); err != nil {
		return Number{}, err
	}
	return n.with(n.v.Add(other.v))
}

// Sub returns n - other.
func (n Number) Sub(other Number) (Number, error) {
	if err := n.sameShift(other); err != nil {
		return Number{}, err
	}
	return n.with(n.v.Sub(other.v))
}

// Mul returns n * other, see Value.Mul.
func (n Number) Mul(other Number) (Number, error) {
	if err := n.sameShift(other); err != nil {
		return Number{}, err
	}
	return n.with(n.v.Mul(other.v, n.Shift()))
}

// Div returns n / other, see Value.Div.
func (n Number) Div(other Number) (Number, error) {
	if err := n.sameShift(other); err != nil {
		return Number{}, err
	}
	return n.with(n.v.Div(other.v, n.Shift()))
}

// Log2 returns log2(n), see Value.Log2.
func (n Number) Log2() (Number, error) {
	return n.with(n.v.Log2(n.Shift()))
}

// Rescale returns n with another number of fractional bits.
func (n Number) Rescale(shift uint) (Number, error) {
	v, err := Rescale(n.v, n.Shift(), shift)
	if err != nil {
		return Number{}, err
	}
	return Number{v: v, shift: uint8(shift)}, nil
}

// Cmp compares two numbers, possibly of different shifts.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (n Number) Cmp(other Number) int {
	a, b := int64(n.v), int64(other.v)
	// both fit 62 bits after the alignment.
	if n.shift < other.shift {
		a <<= other.shift - n.shift
	} else {
		b <<= n.shift - other.shift
	}
	return mu.Int64Sign(a - b)
}

// Eq returns true, if both numbers represent the same real number.
func (n Number) Eq(other Number) bool {
	return n.Cmp(other) == 0
}

// Sign returns -1 if a < 0, 0 if a = 0, 1 if a > 0.
func (n Number) Sign() int {
	return n.v.Sign()
}

// Decimal returns the exact decimal representation of n.
func (n Number) Decimal() decimal.Decimal {
	d, _ := n.v.Decimal(n.Shift())
	return d
}

// String returns the exact decimal representation of n, like "-1.25".
func (n Number) String() string {
	return n.Decimal().String()
}

// GoString returns debug string representation.
func (n Number) GoString() string {
	return n.String() + fmt.Sprintf(" {%d, %d}", n.v, n.shift)
}

// Text returns n with exactly 'digits' truncated fractional digits, like "-1.2" for digits = 1.
func (n Number) Text(digits int) string {
	neg, integ, frac, err := n.v.Split(n.Shift(), digits)
	if err != nil {
		return "%!(" + err.Error() + ")"
	}
	return su.FormatFixed(neg, uint64(integ), uint64(frac), digits)
}

type numberJSON struct {
	Q Value `json:"q"`
	S uint  `json:"s"`
}

// MarshalJSON marshals n as its raw value and shift, like `{"q":81920,"s":16}`.
func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(numberJSON{Q: n.v, S: n.Shift()})
}

// UnmarshalJSON unmarshals n from the form produced by MarshalJSON.
func (n *Number) UnmarshalJSON(data []byte) error {
	var nj numberJSON
	if err := json.Unmarshal(data, &nj); err != nil {
		return err
	}
	parsed, err := FromRaw(nj.Q, nj.S)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
