package register

import (
	"math/big"
	"math/bits"
)

// Word is an alias for big.Word, the native unsigned machine word.
type Word = big.Word

const (
	// WordBits is the width W of a Word in bits.
	WordBits = bits.UintSize
	// WordMax has every bit set.
	WordMax = ^Word(0)
	// WordMSB has only the top bit set.
	WordMSB = WordMax ^ (WordMax >> 1)
)

// WordsFor returns the number of words needed to hold a bit width, rounding up
// to a whole word. Non-positive widths need no words.
func WordsFor(bitWidth int) int {
	if bitWidth <= 0 {
		return 0
	}
	return (bitWidth + WordBits - 1) / WordBits
}

// View is a read-only register.
type View struct {
	Words []Word
	Size  int
	Sign  bool
}

// Cap returns the capacity of v in words.
func (v View) Cap() int { return len(v.Words) }

// Sig returns the significant words of v.
func (v View) Sig() []Word { return v.Words[:v.Size] }

// IsZero reports whether v holds the value zero.
func (v View) IsZero() bool { return v.Size == 0 }

// HasMSB reports whether v fills its whole capacity and the top bit of the
// capacity is set.
func (v View) HasMSB() bool {
	return v.Size > 0 && v.Size == len(v.Words) && v.Words[v.Size-1]&WordMSB != 0
}

// IsMinMagnitude reports whether v is exactly 2^(N-1), N being its capacity in
// bits. That magnitude is its own two's complement.
func (v View) IsMinMagnitude() bool {
	if v.Size == 0 || v.Size != len(v.Words) || v.Words[v.Size-1] != WordMSB {
		return false
	}
	for _, w := range v.Words[:v.Size-1] {
		if w != 0 {
			return false
		}
	}
	return true
}

// BitLen returns the length of the magnitude of v in bits.
func (v View) BitLen() int {
	if v.Size == 0 {
		return 0
	}
	return (v.Size-1)*WordBits + bits.Len(uint(v.Words[v.Size-1]))
}

// Reg is a mutable register.
type Reg struct {
	Words []Word
	Size  int
	Sign  bool
}

// Make returns a zero register with the given capacity in words.
func Make(capacity int) Reg {
	return Reg{Words: make([]Word, capacity)}
}

// Cap returns the capacity of r in words.
func (r *Reg) Cap() int { return len(r.Words) }

// View returns a read-only view of r.
func (r *Reg) View() View {
	return View{Words: r.Words, Size: r.Size, Sign: r.Sign}
}

// Reset sets r to zero without touching its words.
func (r *Reg) Reset() {
	r.Size = 0
	r.Sign = false
}

// Trim lowers r.Size past leading zero words and clears the sign of a zero
// result.
func (r *Reg) Trim() {
	n := r.Size
	for n > 0 && r.Words[n-1] == 0 {
		n--
	}
	r.Size = n
	if n == 0 {
		r.Sign = false
	}
}

// HasMSB reports whether r fills its whole capacity with the top bit set.
func (r *Reg) HasMSB() bool { return r.View().HasMSB() }
