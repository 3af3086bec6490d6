package signed

import (
	"github.com/agbru/wideint/internal/arith"
	"github.com/agbru/wideint/internal/register"
	"github.com/agbru/wideint/internal/unsigned"
)

// pattern returns the two's-complement pattern of x at a width of capacity
// words. Negative values are negated into a scratch buffer; non-negative ones
// are returned unchanged and narrowed later by the unsigned operation.
func pattern(x register.View, capacity int) (register.View, register.Flags) {
	if !x.Sign {
		return x, 0
	}
	f := unsigned.Narrow(&x, capacity)
	t := register.Make(capacity)
	arith.Twos(x, &t)
	t.Trim()
	return t.View(), f
}

func bitwise(op func(x, y register.View, z *register.Reg) register.Flags, x, y register.View, z *register.Reg) register.Flags {
	px, fx := pattern(x, z.Cap())
	py, fy := pattern(y, z.Cap())
	f := fx | fy | op(px, py, z)
	fromPattern(z)
	return f
}

// And sets z = x & y on two's-complement patterns.
func And(x, y register.View, z *register.Reg) register.Flags {
	return bitwise(unsigned.And, x, y, z)
}

// Or sets z = x | y on two's-complement patterns.
func Or(x, y register.View, z *register.Reg) register.Flags {
	return bitwise(unsigned.Or, x, y, z)
}

// Xor sets z = x ^ y on two's-complement patterns.
func Xor(x, y register.View, z *register.Reg) register.Flags {
	return bitwise(unsigned.Xor, x, y, z)
}

// Not sets z = ^x, that is -x-1.
func Not(x register.View, z *register.Reg) register.Flags {
	px, f := pattern(x, z.Cap())
	f |= unsigned.Not(px, z)
	fromPattern(z)
	return f
}
