package unsigned

import "github.com/agbru/wideint/internal/register"

// halfWord is used to shift by a full word in two steps, which stays defined
// for a uint64 on 64-bit platforms.
const halfWord = register.WordBits / 2

// wordsPerUint64 is the number of words in a uint64.
const wordsPerUint64 = 64 / register.WordBits

// SetUint64 sets z = v, raising Overflow when v does not fit z's capacity.
func SetUint64(z *register.Reg, v uint64) register.Flags {
	i := 0
	for ; v != 0 && i < z.Cap(); i++ {
		z.Words[i] = Word(v)
		v = v >> halfWord >> halfWord
	}
	z.Size = i
	finish(z)
	if v != 0 {
		return register.Overflow
	}
	return 0
}

// Uint64 returns the low 64 bits of x.
func Uint64(x register.View) uint64 {
	var v uint64
	for i := min(x.Size, wordsPerUint64) - 1; i >= 0; i-- {
		v = v<<halfWord<<halfWord | uint64(x.Words[i])
	}
	return v
}

// IsUint64 reports whether x fits in a uint64.
func IsUint64(x register.View) bool {
	return x.Size <= wordsPerUint64
}
