package signed

import (
	"github.com/agbru/wideint/internal/register"
	"github.com/agbru/wideint/internal/unsigned"
)

// Parse parses an optionally signed number into z; see unsigned.ParseMagnitude
// for the accepted syntax. It returns the flags raised and the number of bytes
// of s that were used.
func Parse(z *register.Reg, s string, base int, digits string) (register.Flags, int) {
	neg, rest := unsigned.ScanSign(s)
	f, n := unsigned.ParseMagnitude(z, rest, base, digits)
	if n == 0 {
		z.Reset()
		return f, 0
	}
	z.Sign = neg
	return normalize(z, f), n + len(s) - len(rest)
}

// Append appends x in base to dst, with a leading '-' for negative values.
func Append(dst []byte, x register.View, base int, digits string, prefix bool) []byte {
	if x.Sign && x.Size > 0 {
		dst = append(dst, '-')
	}
	return unsigned.Append(dst, x, base, digits, prefix)
}

// Format returns x in base.
func Format(x register.View, base int, digits string, prefix bool) string {
	return string(Append(nil, x, base, digits, prefix))
}
