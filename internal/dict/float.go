package dict

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders the Ace floating point number stored in the cells
// (lo0, lo1) and (hi0, hi1).
//
// The mantissa is six BCD digits, most significant first: hi0, lo1, lo0.
// hi1 holds the sign in bit 7 and the exponent, biased by 0x41, in bits 0-6.
func FormatFloat(lo0, lo1, hi0, hi1 byte) string {
	sign := ""
	if hi1&0x80 != 0 {
		sign = "-"
	}
	exp := ""
	if e := int(hi1&0x7f) - 0x41; e != 0 {
		exp = "e" + strconv.Itoa(e)
	}
	lit := fmt.Sprintf("%s%d.%d%d%d%d%d%s", sign,
		hi0>>4, hi0&0x0f,
		lo1>>4, lo1&0x0f,
		lo0>>4, lo0&0x0f,
		exp)
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return lit
	}
	return formatShortest(f)
}

// formatShortest renders f with the fewest digits that parse back to f,
// using positional notation for decimal exponents in [-4, 16) and always
// keeping a fractional part, so that a float literal never reads as an
// integer.
func formatShortest(f float64) string {
	if f == 0 {
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	if i := strings.IndexByte(sci, 'e'); i >= 0 {
		if x, err := strconv.Atoi(sci[i+1:]); err == nil && (x < -4 || x >= 16) {
			return sci
		}
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
