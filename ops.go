package wideint

import (
	apperrors "github.com/agbru/wideint/internal/errors"
	"github.com/agbru/wideint/internal/register"
	"github.com/agbru/wideint/internal/signed"
	"github.com/agbru/wideint/internal/unsigned"
)

type binaryFunc func(x, y register.View, z *register.Reg) register.Flags

type shiftFunc func(x register.View, s uint, z *register.Reg) register.Flags

type unaryFunc func(x register.View, z *register.Reg) register.Flags

// binaryOp pairs the unsigned and signed engine entry points of an operation.
type binaryOp struct {
	name string
	u, s binaryFunc
}

var (
	opAdd = binaryOp{"add", unsigned.Add, signed.Add}
	opSub = binaryOp{"sub", unsigned.Sub, signed.Sub}
	opMul = binaryOp{"mul", unsigned.Mul, signed.Mul}
	opQuo = binaryOp{"quo", unsigned.Quo, signed.Quo}
	opRem = binaryOp{"rem", unsigned.Rem, signed.Rem}
	opAnd = binaryOp{"and", unsigned.And, signed.And}
	opOr  = binaryOp{"or", unsigned.Or, signed.Or}
	opXor = binaryOp{"xor", unsigned.Xor, signed.Xor}
)

func (op binaryOp) in(d Domain) binaryFunc {
	if d.Signed {
		return op.s
	}
	return op.u
}

// binary evaluates op on x and y in their common domain and stores the
// result in z.
func (z *Int) binary(op binaryOp, x, y *Int) Flags {
	d := Common(x.domain, y.domain)
	xv, fx, xt := x.operand(d)
	defer register.Release(xt)
	yv, fy, yt := y.operand(d)
	defer register.Release(yt)
	f := fx | fy
	z.adopt(d)
	if z.domain == d {
		return f | op.in(d)(xv, yv, &z.reg)
	}
	t := register.Acquire(d.words())
	defer register.Release(&t)
	f |= op.in(d)(xv, yv, &t)
	return f | convert(t.View(), d, z.domain, &z.reg)
}

// unaryDomain is the domain a single-operand operation is evaluated in: x's,
// or z's when x is a zero value.
func (z *Int) unaryDomain(x *Int) Domain {
	if x.domain.Bits == 0 {
		return z.domain
	}
	return x.domain
}

func (z *Int) unary(u, s unaryFunc, x *Int) Flags {
	d := z.unaryDomain(x)
	fn := u
	if d.Signed {
		fn = s
	}
	z.adopt(d)
	if z.domain == d {
		return fn(x.view(), &z.reg)
	}
	t := register.Acquire(d.words())
	defer register.Release(&t)
	f := fn(x.view(), &t)
	return f | convert(t.View(), d, z.domain, &z.reg)
}

func (z *Int) shift(u, s shiftFunc, x *Int, n uint) Flags {
	d := z.unaryDomain(x)
	fn := u
	if d.Signed {
		fn = s
	}
	z.adopt(d)
	if z.domain == d {
		return fn(x.view(), n, &z.reg)
	}
	t := register.Acquire(d.words())
	defer register.Release(&t)
	f := fn(x.view(), n, &t)
	return f | convert(t.View(), d, z.domain, &z.reg)
}

// Add sets z = x + y.
func (z *Int) Add(x, y *Int) Flags { return z.binary(opAdd, x, y) }

// Sub sets z = x - y.
func (z *Int) Sub(x, y *Int) Flags { return z.binary(opSub, x, y) }

// Mul sets z = x * y.
func (z *Int) Mul(x, y *Int) Flags { return z.binary(opMul, x, y) }

// Quo sets z to the quotient x/y truncated toward zero. A zero y raises
// Infinity and sets z to zero.
func (z *Int) Quo(x, y *Int) Flags { return z.binary(opQuo, x, y) }

// Rem sets z to the remainder of the truncated division x/y, with the sign of
// x. A zero y raises Infinity and sets z to zero.
func (z *Int) Rem(x, y *Int) Flags { return z.binary(opRem, x, y) }

// QuoRem sets z to the quotient and r to the remainder of the truncated
// division x/y in one pass. z and r must be distinct.
func (z *Int) QuoRem(x, y, r *Int) Flags {
	if z == r {
		panic(apperrors.ValidationError{Field: "r", Message: "must not alias the quotient"})
	}
	d := Common(x.domain, y.domain)
	xv, fx, xt := x.operand(d)
	defer register.Release(xt)
	yv, fy, yt := y.operand(d)
	defer register.Release(yt)
	z.adopt(d)
	r.adopt(d)

	q, rem := &z.reg, &r.reg
	if z.domain != d {
		t := register.Acquire(d.words())
		defer register.Release(&t)
		q = &t
	}
	if r.domain != d {
		t := register.Acquire(d.words())
		defer register.Release(&t)
		rem = &t
	}
	div := unsigned.Div
	if d.Signed {
		div = signed.Div
	}
	f := fx | fy | div(xv, yv, q, rem)
	if q != &z.reg {
		f |= convert(q.View(), d, z.domain, &z.reg)
	}
	if rem != &r.reg {
		f |= convert(rem.View(), d, r.domain, &r.reg)
	}
	return f
}

// And sets z = x & y on two's-complement patterns.
func (z *Int) And(x, y *Int) Flags { return z.binary(opAnd, x, y) }

// Or sets z = x | y on two's-complement patterns.
func (z *Int) Or(x, y *Int) Flags { return z.binary(opOr, x, y) }

// Xor sets z = x ^ y on two's-complement patterns.
func (z *Int) Xor(x, y *Int) Flags { return z.binary(opXor, x, y) }

// Not sets z = ^x. For unsigned integers every bit of the width is flipped.
func (z *Int) Not(x *Int) Flags { return z.unary(unsigned.Not, signed.Not, x) }

// Neg sets z = -x modulo 2^N. Negating the most negative signed value gives
// itself without raising Overflow; negating a non-zero unsigned value wraps
// and raises Overflow.
func (z *Int) Neg(x *Int) Flags { return z.unary(negUnsigned, signed.Neg, x) }

// negUnsigned computes 0 - x.
func negUnsigned(x register.View, z *register.Reg) register.Flags {
	return unsigned.Sub(register.View{}, x, z)
}

// Lsh sets z = x << n.
func (z *Int) Lsh(x *Int, n uint) Flags { return z.shift(unsigned.Shl, signed.Shl, x, n) }

// Rsh sets z = x >> n. Signed integers shift arithmetically, rounding toward
// negative infinity.
func (z *Int) Rsh(x *Int, n uint) Flags { return z.shift(unsigned.Shr, signed.Shr, x, n) }
