package arith

import (
	"math/bits"

	"github.com/agbru/wideint/internal/register"
)

// DivShort divides x by the single word y in one pass from the top word down,
// carrying a double-word running remainder. The quotient goes to q, keeping
// only the words below q.Cap(); the remainder goes to r.Words[0] with
// r.Size = 1. Requires x.Size >= 1, y != 0 and r.Cap() >= 1. q may alias x.
// Results are untrimmed.
func DivShort(x register.View, y Word, q, r *register.Reg) {
	var rem uint
	for i := x.Size - 1; i >= 0; i-- {
		var d uint
		d, rem = bits.Div(rem, uint(x.Words[i]), uint(y))
		if i < len(q.Words) {
			q.Words[i] = Word(d)
		}
	}
	q.Size = min(x.Size, len(q.Words))
	r.Words[0] = Word(rem)
	r.Size = 1
}

// Div implements Knuth's Algorithm D (TAOCP vol. 2, 4.3.1). Requires trimmed
// operands with 2 <= y.Size <= x.Size. The quotient has x.Size-y.Size+1 words
// of which those below q.Cap() are kept; the remainder has y.Size words of
// which those below r.Cap() are kept. Both are untrimmed.
//
// The operands are copied into normalised scratch buffers first, so q and r
// may alias x or y, but not each other.
func Div(x, y register.View, q, r *register.Reg) {
	n := y.Size

	// D1: scale both operands so the top word of the divisor has its top
	// bit set.
	d := Word(1) << uint(bits.LeadingZeros(uint(y.Words[n-1])))
	u := register.Reg{Words: make([]Word, x.Size+1)}
	MulAddShort(x, d, &u)
	v := register.Reg{Words: make([]Word, n)}
	MulAddShort(y, d, &v)

	uw, vw := u.Words, v.Words
	v1, v0 := vw[n-1], vw[n-2]
	m := x.Size + 1 - n

	for j := m - 1; j >= 0; j-- {
		// D3: estimate the digit from the top two words of the window.
		// The window stays below B*v, so its top word never exceeds v1.
		qhat := register.WordMax
		if u2 := uw[j+n]; u2 != v1 {
			qh, rhat := bits.Div(uint(u2), uint(uw[j+n-1]), uint(v1))
			for k := 0; k < 2; k++ {
				hi, lo := bits.Mul(qh, uint(v0))
				if hi < rhat || hi == rhat && lo <= uint(uw[j+n-2]) {
					break
				}
				qh--
				prev := rhat
				rhat += uint(v1)
				if rhat < prev {
					break
				}
			}
			qhat = Word(qh)
		}

		// D4-D6: multiply and subtract, then add back if the estimate was
		// still one too high.
		if mulSubVWW(uw[j:j+n+1], vw, qhat) != 0 {
			qhat--
			c := addVV(uw[j:j+n], uw[j:j+n], vw)
			uw[j+n] += c
		}
		if j < len(q.Words) {
			q.Words[j] = qhat
		}
	}
	q.Size = min(m, len(q.Words))

	// D8: undo the scaling on the remainder.
	rn := Trim(uw[:n])
	if rn == 0 {
		r.Size = 0
		return
	}
	var spill [1]Word
	DivShort(register.View{Words: uw, Size: rn}, d, r, &register.Reg{Words: spill[:]})
}

// mulSubVWW computes u -= q*v where len(u) == len(v)+1, and returns the final
// borrow. A non-zero borrow means q*v was larger than u.
func mulSubVWW(u, v []Word, q Word) Word {
	var carry, borrow uint
	for i, vi := range v {
		hi, lo := bits.Mul(uint(q), uint(vi))
		lo, c := bits.Add(lo, carry, 0)
		carry = hi + c
		var diff uint
		diff, borrow = bits.Sub(uint(u[i]), lo, borrow)
		u[i] = Word(diff)
	}
	n := len(v)
	diff, b := bits.Sub(uint(u[n]), carry, borrow)
	u[n] = Word(diff)
	return Word(b)
}
