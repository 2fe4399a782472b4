// Package strutil renders sign-magnitude fixed-point parts as text.
package strutil

import (
	"strconv"

	mu "github.com/avdva/binfixed/internal/mathutil"
)

const zeros = "0000000000000000000"

// AppendFixed appends "[-]integ.frac" to dst, where frac is left-padded
// with zeros to exactly 'digits' digits. If digits is 0, the delimiter is omitted.
// frac must have at most 'digits' decimal digits.
func AppendFixed(dst []byte, neg bool, integ, frac uint64, digits int) []byte {
	if neg {
		dst = append(dst, '-')
	}
	dst = strconv.AppendUint(dst, integ, 10)
	if digits <= 0 {
		return dst
	}
	dst = append(dst, '.')
	if pad := digits - mu.DecimalDigits(frac); pad > 0 {
		dst = append(dst, zeros[:pad]...)
	}
	return strconv.AppendUint(dst, frac, 10)
}

// FormatFixed is like AppendFixed, but returns a string.
func FormatFixed(neg bool, integ, frac uint64, digits int) string {
	return string(AppendFixed(make([]byte, 0, 24), neg, integ, frac, digits))
}
