// Package wideint implements fixed-width integers of any size, unsigned or
// two's-complement signed, up to MaxBits bits.
//
// An Int behaves like a machine integer of its Domain: results are reduced
// modulo 2^N, where N is the width rounded up to a whole number of words, and
// never allocate beyond the width chosen when the Int was created. Operations
// follow the receiver style of math/big and return Flags instead of errors:
//
//	x := wideint.NewUint(128)
//	x.SetString("340282366920938463463374607431768211455", 10)
//	f := x.Add(x, one) // x == 0, f == wideint.Overflow
//
// Overflow reports that a result was wrapped. Infinity reports a division or
// remainder by zero, whose results are zero. The most negative signed value
// negates to itself without Overflow, as it does for Go's integer types.
//
// Operands of different domains are converted into the Common domain of the
// pair before the operation, and the result is converted into the receiver's
// domain. A zero-value Int has no domain yet and adopts the one of the first
// operation that stores into it.
//
// # Policies
//
// Code that prefers errors to flags evaluates operations through a Context.
// A Context is built from a Config, which can be loaded from a TOML file,
// WIDEINT_ environment variables and command-line flags. The division policy
// decides whether a division by zero returns zero ("zero"), records
// ErrDivisionByZero ("error", the default) or panics ("panic"); the overflow
// policy decides whether a wrapped result is kept ("wrap", the default) or
// recorded as an OverflowError ("error"). A Context logs through zerolog and
// can count operations with Prometheus.
//
// # Text and encoding
//
// Int implements fmt.Formatter, encoding.TextMarshaler and the msgpack
// custom encoder interfaces. Text, SetString and a Context accept any base
// from 2 up to the length of the digit alphabet.
//
// Ints are not safe for concurrent mutation; distinct Ints can be used from
// different goroutines freely.
package wideint
