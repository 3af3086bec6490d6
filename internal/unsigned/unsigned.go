package unsigned

import (
	"github.com/agbru/wideint/internal/arith"
	"github.com/agbru/wideint/internal/register"
)

// Word is the engine's machine word.
type Word = register.Word

// Narrow truncates x to at most capacity words, re-trimming what is left, and
// reports register.Overflow when words were dropped.
func Narrow(x *register.View, capacity int) register.Flags {
	if x.Size <= capacity {
		return 0
	}
	x.Size = arith.Trim(x.Words[:capacity])
	return register.Overflow
}

// finish trims z and clears its sign.
func finish(z *register.Reg) {
	z.Trim()
	z.Sign = false
}

// alias reports whether x and y share the same backing array.
func alias(x, y []Word) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// Cmp compares the magnitudes of two trimmed registers of any size.
func Cmp(x, y register.View) register.CmpResult {
	switch {
	case x.Size > y.Size:
		return register.CmpResult{Order: register.Greater, Size: x.Size}
	case x.Size < y.Size:
		return register.CmpResult{Order: register.Less, Size: y.Size}
	}
	return arith.Cmp(x, y)
}

// Copy sets z = x, truncated to z's capacity.
func Copy(x register.View, z *register.Reg) register.Flags {
	f := Narrow(&x, z.Cap())
	arith.Copy(x, z)
	finish(z)
	return f
}

// Add sets z = x + y modulo 2^N, N being z's capacity in bits.
func Add(x, y register.View, z *register.Reg) register.Flags {
	f := Narrow(&x, z.Cap()) | Narrow(&y, z.Cap())
	if x.Size < y.Size {
		x, y = y, x
	}
	if arith.Add(x, y, z) != 0 {
		f |= register.Overflow
	}
	finish(z)
	return f
}

// Sub sets z = x - y modulo 2^N. When y > x the result wraps around and
// register.Overflow is raised.
func Sub(x, y register.View, z *register.Reg) register.Flags {
	f := Narrow(&x, z.Cap()) | Narrow(&y, z.Cap())
	c := Cmp(x, y)
	switch c.Order {
	case register.Equal:
		z.Reset()
	case register.Greater:
		subOrdered(x, y, c.Size, z)
	case register.Less:
		subOrdered(y, x, c.Size, z)
		arith.Twos(z.View(), z)
		f |= register.Overflow
	}
	finish(z)
	return f
}

// subOrdered sets z = x - y for x > y, skipping the high words at and above
// n in which both operands agree.
func subOrdered(x, y register.View, n int, z *register.Reg) {
	x.Size = n
	y.Size = min(y.Size, n)
	arith.Sub(x, y, z)
}

// Mul sets z = x * y modulo 2^N. z may alias x or y; the product is then
// computed in a scratch buffer local to the call.
func Mul(x, y register.View, z *register.Reg) register.Flags {
	var f register.Flags
	if x.Size+y.Size > z.Cap()+1 {
		f |= register.Overflow
	}
	f |= Narrow(&x, z.Cap()) | Narrow(&y, z.Cap())
	if x.Size < y.Size {
		x, y = y, x
	}
	if y.Size == 0 {
		z.Reset()
		return f
	}

	if y.Size == 1 {
		z.Size = 0
		if arith.MulAddShort(x, y.Words[0], z) != 0 {
			f |= register.Overflow
		}
		finish(z)
		return f
	}

	out := z
	if alias(z.Words, x.Words) || alias(z.Words, y.Words) {
		scratch := register.Make(z.Cap())
		out = &scratch
	}
	if arith.Mul(x, y, out) != 0 {
		f |= register.Overflow
	}
	if out != z {
		arith.Copy(out.View(), z)
	}
	finish(z)
	return f
}

// Div sets q = x / y and r = x % y. A nil q or r, or one too small to hold
// every quotient or remainder word, is replaced by scratch sized with EstQuo
// and EstRem; the result is then copied back with truncation. Dividing by
// zero raises register.Infinity and leaves q and r zero. q and r must not
// share words.
func Div(x, y register.View, q, r *register.Reg) register.Flags {
	if y.Size == 0 {
		reset(q)
		reset(r)
		return register.Infinity
	}
	if x.Size < y.Size {
		var f register.Flags
		if r != nil {
			f = Copy(x, r)
		}
		reset(q)
		return f
	}

	qq, rr := q, r
	if q == nil || q.Cap() < EstQuo(x.Size, y.Size) {
		scratch := register.Make(EstQuo(x.Size, y.Size))
		qq = &scratch
	}
	if r == nil || r.Cap() < EstRem(x.Size, y.Size) {
		scratch := register.Make(EstRem(x.Size, y.Size))
		rr = &scratch
	}

	if y.Size == 1 {
		arith.DivShort(x, y.Words[0], qq, rr)
	} else {
		arith.Div(x, y, qq, rr)
	}
	finish(qq)
	finish(rr)

	var f register.Flags
	if q != nil && qq != q {
		f |= Copy(qq.View(), q)
	}
	if r != nil && rr != r {
		f |= Copy(rr.View(), r)
	}
	return f
}

// Quo sets z = x / y.
func Quo(x, y register.View, z *register.Reg) register.Flags {
	return Div(x, y, z, nil)
}

// Rem sets z = x % y.
func Rem(x, y register.View, z *register.Reg) register.Flags {
	return Div(x, y, nil, z)
}

func reset(z *register.Reg) {
	if z != nil {
		z.Reset()
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Bitwise operations
// ─────────────────────────────────────────────────────────────────────────────

func bitwise(op func(x, y register.View, z *register.Reg), x, y register.View, z *register.Reg) register.Flags {
	f := Narrow(&x, z.Cap()) | Narrow(&y, z.Cap())
	if x.Size < y.Size {
		x, y = y, x
	}
	op(x, y, z)
	finish(z)
	return f
}

// And sets z = x & y.
func And(x, y register.View, z *register.Reg) register.Flags { return bitwise(arith.And, x, y, z) }

// Or sets z = x | y.
func Or(x, y register.View, z *register.Reg) register.Flags { return bitwise(arith.Or, x, y, z) }

// Xor sets z = x ^ y.
func Xor(x, y register.View, z *register.Reg) register.Flags { return bitwise(arith.Xor, x, y, z) }

// Not sets z = ^x over z's full capacity.
func Not(x register.View, z *register.Reg) register.Flags {
	f := Narrow(&x, z.Cap())
	arith.Not(x, z)
	finish(z)
	return f
}

// ─────────────────────────────────────────────────────────────────────────────
// Shifts
// ─────────────────────────────────────────────────────────────────────────────

// Shl sets z = x << s modulo 2^N. Overflow is raised when set bits are
// shifted past z's capacity.
func Shl(x register.View, s uint, z *register.Reg) register.Flags {
	f := Narrow(&x, z.Cap())
	if x.Size == 0 {
		z.Reset()
		return f
	}
	limit := uint(z.Cap()) * register.WordBits
	if s >= limit || uint(x.BitLen()) > limit-s {
		f |= register.Overflow
	}
	ws, bs := s/register.WordBits, s%register.WordBits
	if ws >= uint(z.Cap()) {
		z.Reset()
		return f
	}

	w := register.Reg{Words: z.Words[ws:]}
	x.Size = min(x.Size, w.Cap())
	arith.Shl(x, bs, &w)
	clear(z.Words[:ws])
	z.Size = int(ws) + w.Size
	finish(z)
	return f
}

// Shr sets z = x >> s. Overflow is raised when x is wider than z; the low
// words of the shifted value are still kept.
func Shr(x register.View, s uint, z *register.Reg) register.Flags {
	var f register.Flags
	if x.Size > z.Cap() {
		f |= register.Overflow
	}
	ws, bs := s/register.WordBits, s%register.WordBits
	if uint(x.Size) <= ws {
		z.Reset()
		return f
	}
	in := register.View{Words: x.Words[ws:], Size: min(x.Size-int(ws), z.Cap()+1)}
	arith.Shr(in, bs, z)
	finish(z)
	return f
}
