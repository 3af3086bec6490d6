package arith

import (
	"math/bits"

	"github.com/agbru/wideint/internal/register"
)

// mulAddWWW returns the double word x*y + c + a split into (hi, lo).
// The sum never exceeds (2^W-1)^2 + 2(2^W-1) = 2^2W - 1.
func mulAddWWW(x, y, c, a Word) (hi, lo Word) {
	h, l := bits.Mul(uint(x), uint(y))
	l, cc := bits.Add(l, uint(c), 0)
	h += cc
	l, cc = bits.Add(l, uint(a), 0)
	h += cc
	return Word(h), Word(l)
}

// MulAddShort accumulates z += x*y, where the first z.Size words of z already
// hold a value and the words above are treated as zero. Requires
// z.Size <= x.Size. Only min(x.Size, z.Cap()) words of x take part. When
// capacity allows, the final carry is stored above them; otherwise it is
// returned. A non-zero return means bits were lost past z's capacity.
func MulAddShort(x register.View, y Word, z *register.Reg) Word {
	stop := min(x.Size, len(z.Words))
	var c Word
	i := 0
	for ; i < z.Size && i < stop; i++ {
		c, z.Words[i] = mulAddWWW(x.Words[i], y, c, z.Words[i])
	}
	for ; i < stop; i++ {
		c, z.Words[i] = mulAddWWW(x.Words[i], y, c, 0)
	}
	if len(z.Words) > stop {
		z.Words[i] = c
		i++
		c = 0
	}
	z.Size = i
	return c
}

// Mul computes the schoolbook product z = x*y as a chain of MulAddShort calls
// on a window of z that moves up one word per digit of y. Requires trimmed
// operands with 1 <= y.Size <= x.Size <= z.Cap(), and z disjoint from both
// x and y. The product words that fall past z's capacity are lost; a non-zero
// return reports a carry lost that way. Products whose operand sizes sum to
// more than z.Cap()+1 always overflow and must be flagged by the caller.
func Mul(x, y register.View, z *register.Reg) Word {
	w := register.Reg{Words: z.Words}
	n := min(y.Size, len(z.Words))
	var lost Word
	for i := 0; i < n; i++ {
		lost |= MulAddShort(x, y.Words[i], &w)
		w.Words = w.Words[1:]
		w.Size--
	}
	z.Size = w.Size + n
	return lost
}
