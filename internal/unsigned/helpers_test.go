package unsigned

import (
	"math/big"

	"github.com/agbru/wideint/internal/register"
)

// ─────────────────────────────────────────────────────────────────────────────
// Test Utilities
// ─────────────────────────────────────────────────────────────────────────────

// toBig converts the significant words of v to a big.Int.
func toBig(v register.View) *big.Int {
	w := append([]big.Word(nil), v.Words[:v.Size]...)
	return new(big.Int).SetBits(w)
}

// fromBig returns a register of the given capacity holding v modulo 2^N.
func fromBig(capacity int, v *big.Int) register.Reg {
	z := register.Make(capacity)
	m := new(big.Int).Mod(v, modulus(capacity))
	z.Size = copy(z.Words, m.Bits())
	z.Trim()
	return z
}

// fromUint64s builds a big.Int from little-endian 64-bit limbs, so that test
// inputs do not depend on the word size.
func fromUint64s(limbs []uint64) *big.Int {
	v := new(big.Int)
	for i := len(limbs) - 1; i >= 0; i-- {
		v.Lsh(v, 64)
		v.Or(v, new(big.Int).SetUint64(limbs[i]))
	}
	return v
}

// modulus returns 2^N for a capacity of the given number of words.
func modulus(capacity int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(capacity*register.WordBits))
}

// mustBig parses a base-0 literal for test tables.
func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("bad test literal " + s)
	}
	return v
}
