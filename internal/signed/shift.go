package signed

import (
	"github.com/agbru/wideint/internal/register"
	"github.com/agbru/wideint/internal/unsigned"
)

// Shl sets z = x << s. The magnitude is shifted and the sign carried; a result
// that reaches the top bit wraps around.
func Shl(x register.View, s uint, z *register.Reg) register.Flags {
	sign := x.Sign
	f := unsigned.Shl(x, s, z)
	z.Sign = sign
	return normalize(z, f)
}

// Shr sets z = x >> s as an arithmetic shift: negative values round toward
// negative infinity, and shifting every bit out of a negative value gives -1.
func Shr(x register.View, s uint, z *register.Reg) register.Flags {
	if !x.Sign {
		return normalize(z, unsigned.Shr(x, s, z))
	}
	inexact := droppedBits(x, s)
	f := unsigned.Shr(x, s, z)
	if inexact {
		one := [1]Word{1}
		f |= unsigned.Add(z.View(), register.View{Words: one[:], Size: 1}, z)
	}
	z.Sign = true
	return normalize(z, f)
}

// droppedBits reports whether any set bit of x lies below bit s.
func droppedBits(x register.View, s uint) bool {
	ws, bs := s/register.WordBits, s%register.WordBits
	if uint(x.Size) <= ws {
		return x.Size > 0
	}
	for _, w := range x.Words[:ws] {
		if w != 0 {
			return true
		}
	}
	return x.Words[ws]&(Word(1)<<bs-1) != 0
}
