package register

import "strings"

// Flags is the set of conditions raised by an operation. Flags never abort an
// operation; they travel next to a best-effort result and are OR-merged across
// composed sub-operations.
type Flags uint8

const (
	// Overflow reports that a result or an operand was truncated to the
	// destination capacity, or that a signed value wrapped around.
	Overflow Flags = 1 << iota
	// Infinity reports a division by a zero divisor.
	Infinity
)

// Has reports whether every flag of g is set in f.
func (f Flags) Has(g Flags) bool { return f&g == g }

// String returns a human-readable name for the flag set.
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	if f.Has(Overflow) {
		names = append(names, "overflow")
	}
	if f.Has(Infinity) {
		names = append(names, "infinity")
	}
	return strings.Join(names, "|")
}

// Order is the outcome of a comparison.
type Order int8

const (
	Less    Order = -1
	Equal   Order = 0
	Greater Order = 1
)

// CmpResult is the outcome of a comparison together with the position of the
// first difference: Size is the number of words that were still unscanned
// when the difference was found, plus one. Equal values report Size 0.
//
// Subtraction uses Size to skip the common high words of its operands.
type CmpResult struct {
	Order Order
	Size  int
}

// Neg returns r with its order reversed.
func (r CmpResult) Neg() CmpResult {
	r.Order = -r.Order
	return r
}
