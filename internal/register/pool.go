package register

import (
	"math/bits"
	"sync"
)

// ─────────────────────────────────────────────────────────────────────────────
// Scratch register pools
// ─────────────────────────────────────────────────────────────────────────────

// poolSizes are the word capacities of the pooled buffers: powers of 4 from
// 4 words up to 64K words, which covers the widest register on every
// platform.
var poolSizes = [...]int{4, 16, 64, 256, 1024, 4096, 16384, 65536}

var pools = [len(poolSizes)]sync.Pool{}

func init() {
	for i := range pools {
		size := poolSizes[i]
		pools[i].New = func() any {
			buf := make([]Word, size)
			return &buf
		}
	}
}

// poolIndex returns the class of buffers able to hold capacity words, or -1
// when capacity is too large for pooling.
//
// Class i holds 4^(i+1) words, so the class follows from the bit length of
// capacity-1.
func poolIndex(capacity int) int {
	if capacity <= poolSizes[0] {
		return 0
	}
	if capacity > poolSizes[len(poolSizes)-1] {
		return -1
	}
	return (bits.Len(uint(capacity-1)) - 1) / 2
}

// Acquire returns a zero register with the given capacity whose words come
// from a pool. Registers obtained from Acquire should be handed back with
// Release once no view of them is in use:
//
//	t := register.Acquire(n)
//	defer register.Release(&t)
func Acquire(capacity int) Reg {
	idx := poolIndex(capacity)
	if idx < 0 {
		return Make(capacity)
	}
	buf := *pools[idx].Get().(*[]Word)
	words := buf[:capacity]
	clear(words)
	return Reg{Words: words}
}

// Release returns the words of r to their pool and leaves r empty. Registers
// that did not come from Acquire are left to the garbage collector. Release
// is a no-op on nil.
func Release(r *Reg) {
	if r == nil || r.Words == nil {
		return
	}
	c := cap(r.Words)
	if idx := poolIndex(c); idx >= 0 && poolSizes[idx] == c {
		buf := r.Words[:c]
		pools[idx].Put(&buf)
	}
	*r = Reg{}
}
