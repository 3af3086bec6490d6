package signed

import (
	"math/big"

	"github.com/agbru/wideint/internal/register"
)

// Register capacities for common bit widths.
var (
	words64  = register.WordsFor(64)
	words128 = register.WordsFor(128)
	words256 = register.WordsFor(256)
)

// toBig converts a signed view to a big.Int.
func toBig(v register.View) *big.Int {
	w := append([]big.Word(nil), v.Words[:v.Size]...)
	b := new(big.Int).SetBits(w)
	if v.Sign {
		b.Neg(b)
	}
	return b
}

// wrapBig reduces v into the signed range of a register of the given capacity.
func wrapBig(capacity int, v *big.Int) *big.Int {
	n := uint(capacity * register.WordBits)
	mod := new(big.Int).Lsh(big.NewInt(1), n)
	half := new(big.Int).Lsh(big.NewInt(1), n-1)
	m := new(big.Int).Add(v, half)
	m.Mod(m, mod)
	return m.Sub(m, half)
}

// fromBig returns a signed register of the given capacity holding v wrapped
// into range.
func fromBig(capacity int, v *big.Int) register.Reg {
	m := wrapBig(capacity, v)
	z := register.Make(capacity)
	z.Size = copy(z.Words, new(big.Int).Abs(m).Bits())
	z.Sign = m.Sign() < 0
	z.Trim()
	return z
}

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("bad test literal " + s)
	}
	return v
}

// valid reports whether v satisfies the signed register invariant.
func valid(v register.View) bool {
	if v.Size > 0 && v.Words[v.Size-1] == 0 {
		return false
	}
	if v.Size == 0 {
		return !v.Sign
	}
	return !v.HasMSB() || (v.Sign && v.IsMinMagnitude())
}
