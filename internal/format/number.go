package format

import "strings"

// GroupDigits inserts sep between every group of size digits, counting from
// the right. A leading '+', '-' or ' ' and a base prefix such as "0x" are
// left ungrouped. A size below 1 returns s unchanged.
func GroupDigits(s, sep string, size int) string {
	head, digits := splitHead(s)
	if size < 1 || len(digits) <= size {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + (len(digits)-1)/size*len(sep))
	sb.WriteString(head)
	first := len(digits) % size
	if first == 0 {
		first = size
	}
	sb.WriteString(digits[:first])
	for i := first; i < len(digits); i += size {
		sb.WriteString(sep)
		sb.WriteString(digits[i : i+size])
	}
	return sb.String()
}

// splitHead splits the sign and base prefix off a formatted number.
func splitHead(s string) (head, digits string) {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+' || s[i] == ' ') {
		i++
	}
	if len(s)-i > 2 && s[i] == '0' {
		switch s[i+1] {
		case 'x', 'X', 'b', 'B', 'o', 'O':
			i += 2
		}
	}
	return s[:i], s[i:]
}

// Number is a formatted integer split into the parts that fmt-style padding
// treats separately.
type Number struct {
	Sign   string // "", "-", "+" or " "
	Prefix string // base prefix such as "0x"
	Digits string
}

// Pad lays n out in a field of at least width bytes, following the rules of
// the fmt integer verbs:
//   - precision, when non-negative, is the minimum number of digits, and a
//     zero precision prints nothing for the value zero;
//   - left pads with spaces on the right;
//   - zero pads with zeros between the prefix and the digits, unless left is
//     set or a precision is given;
//   - otherwise spaces are added on the left.
func (n Number) Pad(width, precision int, left, zero bool) string {
	digits := n.Digits
	if precision >= 0 {
		if precision == 0 && digits == "0" {
			digits = ""
		}
		if len(digits) < precision {
			digits = strings.Repeat("0", precision-len(digits)) + digits
		}
		zero = false
	}
	body := n.Sign + n.Prefix + digits
	fill := width - len(body)
	switch {
	case fill <= 0:
		return body
	case left:
		return body + strings.Repeat(" ", fill)
	case zero:
		return n.Sign + n.Prefix + strings.Repeat("0", fill) + digits
	}
	return strings.Repeat(" ", fill) + body
}
