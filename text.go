package wideint

import (
	"fmt"
	"io"

	apperrors "github.com/agbru/wideint/internal/errors"
	"github.com/agbru/wideint/internal/format"
	"github.com/agbru/wideint/internal/signed"
	"github.com/agbru/wideint/internal/unsigned"
)

// DefaultDigits is the digit alphabet of Text and SetString. Letters are
// upper case; parsing also accepts them in lower case.
const DefaultDigits = unsigned.DefaultDigits

const lowerDigits = "0123456789abcdefghijklmnopqrstuvwxyz"

// Text returns the representation of x in the given base, with a leading '-'
// for negative values. Base must be between 2 and 36; Text panics otherwise.
// A nil x gives "<nil>".
func (x *Int) Text(base int) string {
	if x == nil {
		return "<nil>"
	}
	return string(x.Append(nil, base))
}

// String returns the decimal representation of x.
func (x *Int) String() string { return x.Text(10) }

// Append appends the representation of x in the given base to buf.
func (x *Int) Append(buf []byte, base int) []byte {
	if x == nil {
		return append(buf, "<nil>"...)
	}
	return x.appendText(buf, base, DefaultDigits, false)
}

func (x *Int) appendText(buf []byte, base int, digits string, prefix bool) []byte {
	return signed.Append(buf, x.view(), base, digits, prefix)
}

// TextWithPrefix is like Text, with the canonical prefix "0b", "0" or "0x"
// of bases 2, 8 and 16 in front of non-zero digits.
func (x *Int) TextWithPrefix(base int) string {
	if x == nil {
		return "<nil>"
	}
	return string(x.appendText(nil, base, DefaultDigits, true))
}

// TextGrouped is like Text, with sep inserted between every group of size
// digits counting from the right.
func (x *Int) TextGrouped(base int, sep string, size int) string {
	return format.GroupDigits(x.Text(base), sep, size)
}

// SetString sets z to the value of s in the given base and returns the flags
// raised. s may start with '+' or '-'; with base 0 a "0x", "0b" or "0" prefix
// selects the base. The whole of s must be a number, otherwise z is set to
// zero and a SyntaxError is returned. A zero-value z adopts DefaultDomain.
//
// Values wider than z are truncated and raise Overflow. In an unsigned domain
// a leading '-' stores the two's complement of the magnitude.
func (z *Int) SetString(s string, base int) (Flags, error) {
	return z.setText(s, base, DefaultDigits)
}

func (z *Int) setText(s string, base int, digits string) (Flags, error) {
	if err := unsigned.CheckBase(base, digits, true); err != nil {
		return 0, err
	}
	f, n := z.parse(s, base, digits)
	if n == 0 || n != len(s) {
		z.reg.Reset()
		return 0, apperrors.SyntaxError{Input: s, Offset: n}
	}
	return f, nil
}

// ParsePrefix sets z to the longest number at the start of s and returns the
// flags raised and the number of bytes used. Unlike SetString it never fails:
// text with no number at its start gives zero and 0. ParsePrefix panics on an
// invalid base.
func (z *Int) ParsePrefix(s string, base int) (Flags, int) {
	return z.parse(s, base, DefaultDigits)
}

func (z *Int) parse(s string, base int, digits string) (Flags, int) {
	z.adopt(DefaultDomain)
	if z.domain.Signed {
		return signed.Parse(&z.reg, s, base, digits)
	}
	return unsigned.Parse(&z.reg, s, base, digits)
}

// MarshalText implements encoding.TextMarshaler using base 10.
func (x *Int) MarshalText() ([]byte, error) {
	return x.Append(nil, 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is read with
// base 0; a value that does not fit z is an OverflowError.
func (z *Int) UnmarshalText(text []byte) error {
	f, err := z.SetString(string(text), 0)
	if err != nil {
		return apperrors.WrapError(err, "wideint: cannot unmarshal %q", text)
	}
	if f.Has(Overflow) {
		return apperrors.OverflowError{Op: "unmarshal", Domain: z.domain.String()}
	}
	return nil
}

// Format implements fmt.Formatter. It accepts the verbs 'b', 'o', 'O', 'd',
// 'x', 'X', 's' and 'v', the flags '+', ' ', '-', '0' and '#', a width and a
// precision (minimum number of digits). '#' selects the "0b", "0", "0x" or
// "0X" prefix; 'O' always prints "0o".
func (x *Int) Format(s fmt.State, ch rune) {
	base, digits := 0, lowerDigits
	switch ch {
	case 'b':
		base = 2
	case 'o', 'O':
		base = 8
	case 'd', 's', 'v':
		base = 10
	case 'x':
		base = 16
	case 'X':
		base, digits = 16, DefaultDigits
	default:
		fmt.Fprintf(s, "%%!%c(wideint.Int=%s)", ch, x.String())
		return
	}
	if x == nil {
		io.WriteString(s, "<nil>")
		return
	}

	n := format.Number{Digits: string(unsigned.Append(nil, x.view(), base, digits, false))}
	switch {
	case x.Sign() < 0:
		n.Sign = "-"
	case s.Flag('+'):
		n.Sign = "+"
	case s.Flag(' '):
		n.Sign = " "
	}
	if s.Flag('#') {
		switch ch {
		case 'b':
			n.Prefix = "0b"
		case 'o':
			n.Prefix = "0"
		case 'x':
			n.Prefix = "0x"
		case 'X':
			n.Prefix = "0X"
		}
	}
	if ch == 'O' {
		n.Prefix = "0o"
	}

	width, ok := s.Width()
	if !ok {
		width = 0
	}
	precision, ok := s.Precision()
	if !ok {
		precision = -1
	}
	io.WriteString(s, n.Pad(width, precision, s.Flag('-'), s.Flag('0')))
}

var (
	_ fmt.Formatter = (*Int)(nil)
	_ fmt.Stringer  = (*Int)(nil)
)
