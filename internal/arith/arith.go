package arith

import (
	"math/bits"

	"github.com/agbru/wideint/internal/register"
)

// ─────────────────────────────────────────────────────────────────────────────
// Inspection and copying
// ─────────────────────────────────────────────────────────────────────────────

// Trim returns the length of the longest prefix of words whose top word is
// non-zero, or 0 when every word is zero.
func Trim(words []Word) int {
	n := len(words)
	for n > 0 && words[n-1] == 0 {
		n--
	}
	return n
}

// Cmp compares two magnitudes of equal size, scanning from the most
// significant word down.
func Cmp(x, y register.View) register.CmpResult {
	for i := x.Size - 1; i >= 0; i-- {
		switch {
		case x.Words[i] > y.Words[i]:
			return register.CmpResult{Order: register.Greater, Size: i + 1}
		case x.Words[i] < y.Words[i]:
			return register.CmpResult{Order: register.Less, Size: i + 1}
		}
	}
	return register.CmpResult{Order: register.Equal}
}

// Fill sets every word of z's capacity to w. z.Size becomes z.Cap().
func Fill(z *register.Reg, w Word) {
	for i := range z.Words {
		z.Words[i] = w
	}
	z.Size = len(z.Words)
}

// Copy copies the significant words of x into z. Requires x.Size <= z.Cap().
// Overlapping buffers are handled.
func Copy(x register.View, z *register.Reg) {
	copy(z.Words, x.Words[:x.Size])
	z.Size = x.Size
}

// Twos writes the two's complement ~x + 1 of x over the whole capacity of z.
// Words of x above x.Size count as zero. z.Size becomes z.Cap().
// Requires x.Size <= z.Cap().
func Twos(x register.View, z *register.Reg) {
	c := uint(1)
	i := 0
	for ; i < x.Size; i++ {
		var r uint
		r, c = bits.Add(^uint(x.Words[i]), 0, c)
		z.Words[i] = Word(r)
	}
	for ; i < len(z.Words); i++ {
		var r uint
		r, c = bits.Add(^uint(0), 0, c)
		z.Words[i] = Word(r)
	}
	z.Size = len(z.Words)
}

// ─────────────────────────────────────────────────────────────────────────────
// Addition and subtraction
// ─────────────────────────────────────────────────────────────────────────────

// Add computes z = x + y and returns the carry that did not fit z's capacity.
// Requires y.Size <= x.Size <= z.Cap(). When capacity allows, the carry is
// stored in the word above x and z.Size is x.Size+1.
func Add(x, y register.View, z *register.Reg) Word {
	n := y.Size
	var c Word
	if n > 0 {
		c = addVV(z.Words[:n], x.Words[:n], y.Words[:n])
	}
	i := n
	for ; i < x.Size; i++ {
		r, cc := bits.Add(uint(x.Words[i]), uint(c), 0)
		z.Words[i], c = Word(r), Word(cc)
	}
	if i < len(z.Words) {
		z.Words[i] = c
		i++
		c = 0
	}
	z.Size = i
	return c
}

// Sub computes z = x - y. Requires x >= y arithmetically and
// y.Size <= x.Size <= z.Cap(). z.Size becomes x.Size.
func Sub(x, y register.View, z *register.Reg) {
	n := y.Size
	var b Word
	if n > 0 {
		b = subVV(z.Words[:n], x.Words[:n], y.Words[:n])
	}
	for i := n; i < x.Size; i++ {
		r, bb := bits.Sub(uint(x.Words[i]), uint(b), 0)
		z.Words[i], b = Word(r), Word(bb)
	}
	z.Size = x.Size
}

// addVVg and subVVg are the portable equivalents of the linked math/big
// kernels.
func addVVg(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		r, cc := bits.Add(uint(x[i]), uint(y[i]), uint(c))
		z[i], c = Word(r), Word(cc)
	}
	return c
}

func subVVg(z, x, y []Word) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		r, cc := bits.Sub(uint(x[i]), uint(y[i]), uint(c))
		z[i], c = Word(r), Word(cc)
	}
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Bitwise operations
// ─────────────────────────────────────────────────────────────────────────────

// And computes z = x & y. Requires y.Size <= x.Size <= z.Cap(); the words of
// x above y.Size meet zeros. z.Size becomes x.Size.
func And(x, y register.View, z *register.Reg) {
	i := 0
	for ; i < y.Size; i++ {
		z.Words[i] = x.Words[i] & y.Words[i]
	}
	for ; i < x.Size; i++ {
		z.Words[i] = 0
	}
	z.Size = x.Size
}

// Or computes z = x | y. Requires y.Size <= x.Size <= z.Cap().
func Or(x, y register.View, z *register.Reg) {
	i := 0
	for ; i < y.Size; i++ {
		z.Words[i] = x.Words[i] | y.Words[i]
	}
	for ; i < x.Size; i++ {
		z.Words[i] = x.Words[i]
	}
	z.Size = x.Size
}

// Xor computes z = x ^ y. Requires y.Size <= x.Size <= z.Cap().
func Xor(x, y register.View, z *register.Reg) {
	i := 0
	for ; i < y.Size; i++ {
		z.Words[i] = x.Words[i] ^ y.Words[i]
	}
	for ; i < x.Size; i++ {
		z.Words[i] = x.Words[i]
	}
	z.Size = x.Size
}

// Not complements x into z and fills the rest of z's capacity with ones.
// Requires x.Size <= z.Cap(). z.Size becomes z.Cap().
func Not(x register.View, z *register.Reg) {
	i := 0
	for ; i < x.Size; i++ {
		z.Words[i] = ^x.Words[i]
	}
	for ; i < len(z.Words); i++ {
		z.Words[i] = register.WordMax
	}
	z.Size = len(z.Words)
}

// ─────────────────────────────────────────────────────────────────────────────
// Shifts
// ─────────────────────────────────────────────────────────────────────────────

// Shr computes z = x >> s for s < W. Requires x.Size >= 1 and
// z.Cap() >= x.Size-1. When z cannot hold x.Size words the top word of the
// result is dropped; it is the caller's job to feed at most one word more
// than z holds. z may also alias x shifted down by whole words.
func Shr(x register.View, s uint, z *register.Reg) {
	n := x.Size
	for i := 0; i < n-1; i++ {
		z.Words[i] = x.Words[i]>>s | x.Words[i+1]<<(register.WordBits-s)
	}
	if len(z.Words) >= n {
		z.Words[n-1] = x.Words[n-1] >> s
		z.Size = n
	} else {
		z.Size = n - 1
	}
}

// Shl computes z = x << s for s < W. Requires 1 <= x.Size <= z.Cap(). When
// capacity allows, the bits spilled out of the top word land in a new word
// and z.Size is x.Size+1; otherwise they are dropped. z may alias x shifted
// up by whole words.
func Shl(x register.View, s uint, z *register.Reg) {
	n := x.Size
	if len(z.Words) > n {
		z.Words[n] = x.Words[n-1] >> (register.WordBits - s)
		z.Size = n + 1
	} else {
		z.Size = n
	}
	for i := n - 1; i > 0; i-- {
		z.Words[i] = x.Words[i]<<s | x.Words[i-1]>>(register.WordBits-s)
	}
	z.Words[0] = x.Words[0] << s
}
