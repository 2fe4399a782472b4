package fixed

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNumber(t *testing.T) {
	a := assert.New(t)
	n, err := NewNumber(-3, 16)
	if a.NoError(err) {
		a.Equal(Value(-3<<16), n.Raw())
		a.Equal(uint(16), n.Shift())
		a.Equal(int32(-3), n.Int32())
	}
	_, err = NewNumber(1, 40)
	a.True(errors.Is(err, ErrShiftRange))
	_, err = NewNumber(1<<20, 16)
	a.True(errors.Is(err, ErrOverflow))
	_, err = FromRaw(1, 32)
	a.True(errors.Is(err, ErrShiftRange))
	a.Panics(func() {
		MustNewNumber(1, 31)
	})
	var zero Number
	a.Equal("0", zero.String())
	a.Equal(int32(0), zero.Int32())
}

func TestNumberArith(t *testing.T) {
	a := assert.New(t)
	n16 := func(s string) Number {
		n, err := ParseNumber(s, 16)
		if err != nil {
			panic(err)
		}
		return n
	}
	tests := []struct {
		op     string
		a, b   Number
		result string
		err    error
	}{
		{"mul", n16("1.5"), n16("2.25"), "3.375", nil},
		{"div", n16("3.375"), n16("1.5"), "2.25", nil},
		{"add", n16("1.25"), n16("-2.5"), "-1.25", nil},
		{"sub", n16("1.25"), n16("-2.5"), "3.75", nil},
		{"div", n16("5"), n16("0"), "", ErrDivideByZero},
		{"mul", n16("200"), n16("200"), "", ErrOverflow},
		{"mul", n16("1"), MustNewNumber(1, 8), "", ErrShiftMismatch},
		{"div", n16("1"), MustNewNumber(1, 8), "", ErrShiftMismatch},
		{"add", n16("1"), MustNewNumber(1, 8), "", ErrShiftMismatch},
		{"sub", n16("1"), MustNewNumber(1, 8), "", ErrShiftMismatch},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var (
				res Number
				err error
			)
			switch test.op {
			case "mul":
				res, err = test.a.Mul(test.b)
			case "div":
				res, err = test.a.Div(test.b)
			case "add":
				res, err = test.a.Add(test.b)
			case "sub":
				res, err = test.a.Sub(test.b)
			}
			if test.err != nil {
				a.True(errors.Is(err, test.err), "%v", err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.result, res.String())
				a.Equal(test.a.Shift(), res.Shift())
			}
		})
	}
}

func TestNumberLog2(t *testing.T) {
	a := assert.New(t)
	n := MustNewNumber(8, 20)
	res, err := n.Log2()
	if a.NoError(err) {
		a.Equal("3", res.String())
		a.Equal(uint(20), res.Shift())
	}
	_, err = MustNewNumber(-8, 20).Log2()
	a.True(errors.Is(err, ErrDomain))
}

func TestNumberExtraction(t *testing.T) {
	a := assert.New(t)
	n, err := ParseNumber("-1.25", 16)
	if !a.NoError(err) {
		return
	}
	a.Equal(int32(-2), n.Int32())
	a.Equal("-2", n.IntegerPart().String())
	a.Equal(uint32(16384), n.FracMagnitude())
	a.Equal(-1.25, n.Float64())
	a.Equal(float32(-1.25), n.Float32())
	a.Equal(-1, n.Sign())
	a.Equal("-1.25", n.Decimal().String())
	a.Equal("-1.25 {-81920, 16}", n.GoString())
}

func TestNumberText(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s      string
		shift  uint
		digits int
		text   string
	}{
		{"1.25", 16, 2, "1.25"},
		{"-1.25", 16, 2, "-1.25"},
		{"-1.25", 16, 1, "-1.2"},
		{"-1.25", 16, 0, "-1"},
		{"-0.5", 16, 2, "-0.50"},
		{"1.05", 16, 2, "1.04"},
		{"32767.99", 16, 3, "32767.989"},
		{"-32768", 16, 2, "-32768.00"},
		{"0.5", 8, 12, "%!(bad digits count 12)"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			n, err := ParseNumber(test.s, test.shift)
			if a.NoError(err) {
				a.Equal(test.text, n.Text(test.digits))
			}
		})
	}
}

func TestNumberRescaleCmp(t *testing.T) {
	a := assert.New(t)
	n16, _ := ParseNumber("1.25", 16)
	n8, err := n16.Rescale(8)
	if a.NoError(err) {
		a.Equal(Value(320), n8.Raw())
		a.True(n8.Eq(n16))
		a.Equal(0, n16.Cmp(n8))
	}
	tiny, _ := FromRaw(1, 31)
	a.Equal(1, tiny.Cmp(Number{}))
	a.Equal(-1, Number{}.Cmp(tiny))
	big, _ := FromRaw(Max, 0)
	a.Equal(1, big.Cmp(tiny))
	a.Equal(-1, tiny.Cmp(big))
	_, err = n16.Rescale(32)
	a.True(errors.Is(err, ErrShiftRange))
	_, err = big.Rescale(1)
	a.True(errors.Is(err, ErrOverflow))
}

func TestNumberJSON(t *testing.T) {
	a := assert.New(t)
	n, _ := ParseNumber("-1.25", 16)
	data, err := json.Marshal(n)
	if a.NoError(err) {
		a.Equal(`{"q":-81920,"s":16}`, string(data))
		var parsed Number
		if a.NoError(json.Unmarshal(data, &parsed)) {
			a.Equal(n, parsed)
		}
	}
	var parsed Number
	a.True(errors.Is(json.Unmarshal([]byte(`{"q":1,"s":40}`), &parsed), ErrShiftRange))
	a.Error(json.Unmarshal([]byte(`[1, 2]`), &parsed))
}
