package unsigned

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"

	"github.com/agbru/wideint/internal/arith"
	apperrors "github.com/agbru/wideint/internal/errors"
	"github.com/agbru/wideint/internal/register"
)

// DefaultDigits is the digit alphabet used when none is supplied.
const DefaultDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// MaxBase is the largest base a digit alphabet may describe.
const MaxBase = 256

// CheckBase validates base against the digit alphabet. Base 0 is accepted
// when allowAuto is set and means "detect from the prefix".
func CheckBase(base int, digits string, allowAuto bool) error {
	if base == 0 && allowAuto {
		return nil
	}
	limit := min(len(digits), MaxBase)
	if base < 2 || base > limit {
		return apperrors.ValidationError{
			Field:   "base",
			Message: fmt.Sprintf("must be between 2 and %d, got %d", limit, base),
		}
	}
	return nil
}

// mustBase panics on a base the caller should have validated.
func mustBase(base int, digits string, allowAuto bool) {
	if err := CheckBase(base, digits, allowAuto); err != nil {
		panic(err)
	}
}

// Prefix returns the canonical prefix of base: "0b", "0" or "0x", and "" for
// every other base.
func Prefix(base int) string {
	switch base {
	case 2:
		return "0b"
	case 8:
		return "0"
	case 16:
		return "0x"
	}
	return ""
}

// ScanSign splits an optional leading '+' or '-' off s.
func ScanSign(s string) (neg bool, rest string) {
	if s != "" {
		switch s[0] {
		case '-':
			return true, s[1:]
		case '+':
			return false, s[1:]
		}
	}
	return false, s
}

// scanBase resolves base 0 from a "0x", "0b" or "0" prefix. It returns the
// base and the length of the prefix consumed.
func scanBase(s string, base int) (int, int) {
	if base != 0 {
		return base, 0
	}
	if len(s) > 1 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return 16, 2
		case 'b', 'B':
			return 2, 2
		}
		return 8, 1
	}
	return 10, 0
}

// digitValue looks c up in the first base symbols of digits. An ASCII letter
// that is not found is retried in the other case.
func digitValue(c byte, base int, digits string) (byte, bool) {
	set := digits[:base]
	if i := strings.IndexByte(set, c); i >= 0 {
		return byte(i), true
	}
	switch {
	case 'a' <= c && c <= 'z':
		c -= 'a' - 'A'
	case 'A' <= c && c <= 'Z':
		c += 'a' - 'A'
	default:
		return 0, false
	}
	i := strings.IndexByte(set, c)
	return byte(i), i >= 0
}

// ParseMagnitude parses an unsigned magnitude from s into z. With base 0 the
// base is taken from a "0x", "0b" or "0" prefix and defaults to 10. Parsing
// stops at the first character that is not a digit of the base; the prefix
// parsed so far is kept and n reports how many bytes of s were used. A value
// wider than z is truncated and raises Overflow.
func ParseMagnitude(z *register.Reg, s string, base int, digits string) (f register.Flags, n int) {
	mustBase(base, digits, true)
	base, n = scanBase(s, base)

	raw := make([]byte, 0, len(s)-n)
	for ; n < len(s); n++ {
		d, ok := digitValue(s[n], base, digits)
		if !ok {
			break
		}
		raw = append(raw, d)
	}
	if len(raw) == 0 {
		// "0x" or "0b" with no digits still reads as the zero in front.
		z.Reset()
		if n > 0 {
			return 0, 1
		}
		return 0, 0
	}

	// Repeatedly divide the digit array by 2^W; every pass yields the next
	// word, least significant first.
	words := make([]Word, 0, EstParse(len(raw), base))
	for len(raw) > 0 {
		var rem uint
		quo := raw[:0]
		for _, d := range raw {
			hi, lo := bits.Mul(rem, uint(base))
			lo, c := bits.Add(lo, uint(d), 0)
			hi += c
			if hi != 0 || len(quo) > 0 {
				quo = append(quo, byte(hi))
			}
			rem = lo
		}
		words = append(words, Word(rem))
		raw = quo
	}
	f = Copy(register.View{Words: words, Size: arith.Trim(words)}, z)
	return f, n
}

// Parse parses a signed string into z as an unsigned value: a leading '-'
// stores the two's complement of the magnitude modulo 2^N.
func Parse(z *register.Reg, s string, base int, digits string) (register.Flags, int) {
	neg, rest := ScanSign(s)
	f, n := ParseMagnitude(z, rest, base, digits)
	if n == 0 {
		return f, 0
	}
	if neg && z.Size > 0 {
		arith.Twos(z.View(), z)
		finish(z)
	}
	return f, n + len(s) - len(rest)
}

// Append appends the digits of x in base to dst, preceded by the canonical
// prefix of the base when prefix is set. Zero is always written "0".
func Append(dst []byte, x register.View, base int, digits string, prefix bool) []byte {
	mustBase(base, digits, false)
	if x.Size == 0 {
		return append(dst, '0')
	}
	if prefix {
		dst = append(dst, Prefix(base)...)
	}
	dst = slices.Grow(dst, EstFormat(x.Size, base))

	q := register.Make(x.Size)
	arith.Copy(x, &q)
	var spill [1]Word
	rem := register.Reg{Words: spill[:]}
	start := len(dst)
	for q.Size > 0 {
		arith.DivShort(q.View(), Word(base), &q, &rem)
		q.Trim()
		dst = append(dst, digits[rem.Words[0]])
	}
	slices.Reverse(dst[start:])
	return dst
}

// Format returns the digits of x in base.
func Format(x register.View, base int, digits string, prefix bool) string {
	return string(Append(nil, x, base, digits, prefix))
}
