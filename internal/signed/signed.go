package signed

import (
	"github.com/agbru/wideint/internal/arith"
	"github.com/agbru/wideint/internal/register"
	"github.com/agbru/wideint/internal/unsigned"
)

// Word is the engine's machine word.
type Word = register.Word

// normalize restores the signed representation of z, which holds the sign and
// the magnitude produced by an unsigned step that raised f.
func normalize(z *register.Reg, f register.Flags) register.Flags {
	z.Trim()
	switch {
	case f.Has(register.Overflow):
		wrap(z)
	case z.HasMSB() && !(z.Sign && z.View().IsMinMagnitude()):
		f |= register.Overflow
		wrap(z)
	}
	return f
}

// wrap replaces z with the signed value of the N-bit pattern of its sign and
// magnitude.
func wrap(z *register.Reg) {
	if z.Sign {
		arith.Twos(z.View(), z)
		z.Sign = false
	}
	fromPattern(z)
}

// fromPattern reads the words of z as an N-bit two's-complement pattern.
func fromPattern(z *register.Reg) {
	z.Trim()
	z.Sign = false
	if z.HasMSB() {
		arith.Twos(z.View(), z)
		z.Trim()
		z.Sign = true
	}
}

// isMin reports whether z holds the most negative value of its width.
func isMin(v register.View) bool {
	return v.Sign && v.IsMinMagnitude()
}

// Cmp compares two signed values.
func Cmp(x, y register.View) register.CmpResult {
	if x.Sign != y.Sign {
		size := max(x.Size, y.Size)
		if x.Sign {
			return register.CmpResult{Order: register.Less, Size: size}
		}
		return register.CmpResult{Order: register.Greater, Size: size}
	}
	c := unsigned.Cmp(x, y)
	if x.Sign {
		return c.Neg()
	}
	return c
}

// Copy sets z = x, wrapping x into z's width.
func Copy(x register.View, z *register.Reg) register.Flags {
	f := unsigned.Copy(x, z)
	z.Sign = x.Sign
	return normalize(z, f)
}

// Neg sets z = -x by two's-complement negation at z's width. Negation never
// raises a new Overflow: the most negative value maps to itself.
func Neg(x register.View, z *register.Reg) register.Flags {
	f := Copy(x, z)
	if z.Size > 0 && !isMin(z.View()) {
		z.Sign = !z.Sign
	}
	return f
}

// Add sets z = x + y.
func Add(x, y register.View, z *register.Reg) register.Flags {
	if x.Sign == y.Sign {
		f := unsigned.Add(x, y, z)
		z.Sign = x.Sign
		return normalize(z, f)
	}
	return addOpposite(x, y, z)
}

// addOpposite adds two values of opposite signs by subtracting the smaller
// magnitude from the larger; the sign of the larger survives.
func addOpposite(x, y register.View, z *register.Reg) register.Flags {
	f := unsigned.Narrow(&x, z.Cap()) | unsigned.Narrow(&y, z.Cap())
	c := unsigned.Cmp(x, y)
	if c.Order == register.Less {
		x, y = y, x
	}
	if c.Order == register.Equal {
		z.Reset()
		return f
	}
	sign := x.Sign
	x.Size = c.Size
	y.Size = min(y.Size, c.Size)
	arith.Sub(x, y, z)
	z.Sign = sign
	return normalize(z, f)
}

// Sub sets z = x - y.
func Sub(x, y register.View, z *register.Reg) register.Flags {
	if y.Size > 0 {
		y.Sign = !y.Sign
	}
	return Add(x, y, z)
}

// Mul sets z = x * y.
func Mul(x, y register.View, z *register.Reg) register.Flags {
	sign := x.Sign != y.Sign
	f := unsigned.Mul(x, y, z)
	z.Sign = sign
	return normalize(z, f)
}

// Div sets q = x / y truncated toward zero and r = x - q*y, whose sign follows
// x. Either destination may be nil. Dividing by zero raises Infinity and
// leaves both zero.
func Div(x, y register.View, q, r *register.Reg) register.Flags {
	qs, rs := x.Sign != y.Sign, x.Sign
	f := unsigned.Div(x, y, q, r)
	if f.Has(register.Infinity) {
		return f
	}
	flags := f
	if q != nil {
		q.Sign = qs
		flags |= normalize(q, f)
	}
	if r != nil {
		r.Sign = rs
		flags |= normalize(r, f)
	}
	return flags
}

// Quo sets z = x / y truncated toward zero.
func Quo(x, y register.View, z *register.Reg) register.Flags {
	return Div(x, y, z, nil)
}

// Rem sets z to the remainder of the truncated division x / y.
func Rem(x, y register.View, z *register.Reg) register.Flags {
	return Div(x, y, nil, z)
}
