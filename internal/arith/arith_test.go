package arith

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/agbru/wideint/internal/register"
)

// ─────────────────────────────────────────────────────────────────────────────
// Test Utilities
// ─────────────────────────────────────────────────────────────────────────────

// generateRandomWords creates a slice of random words for testing. Every
// fourth slice is biased towards all-ones and top-bit-only words, which are
// the patterns that exercise carries and quotient corrections.
func generateRandomWords(r *rand.Rand, n int) []Word {
	words := make([]Word, n)
	for i := range words {
		switch r.Intn(8) {
		case 0:
			words[i] = register.WordMax
		case 1:
			words[i] = register.WordMSB
		case 2:
			words[i] = 0
		default:
			words[i] = Word(r.Uint64())
		}
	}
	return words
}

// view returns a trimmed view over a copy of words.
func view(words ...Word) register.View {
	w := append([]Word(nil), words...)
	return register.View{Words: w, Size: Trim(w)}
}

// toBig converts the significant words of v to a big.Int.
func toBig(v register.View) *big.Int {
	w := append([]big.Word(nil), v.Words[:v.Size]...)
	return new(big.Int).SetBits(w)
}

// modulus returns 2^(capacity*W).
func modulus(capacity int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(capacity*register.WordBits))
}

// ─────────────────────────────────────────────────────────────────────────────
// Linked kernels
// ─────────────────────────────────────────────────────────────────────────────

func TestLinkedKernelsMatchGeneric(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 2, 3, 7, 16, 33} {
		x := generateRandomWords(r, n)
		y := generateRandomWords(r, n)

		z1, z2 := make([]Word, n), make([]Word, n)
		c1, c2 := addVV(z1, x, y), addVVg(z2, x, y)
		if c1 != c2 {
			t.Fatalf("n=%d: addVV carry = %d, addVVg carry = %d", n, c1, c2)
		}
		for i := range z1 {
			if z1[i] != z2[i] {
				t.Fatalf("n=%d: addVV and addVVg differ at word %d", n, i)
			}
		}

		c1, c2 = subVV(z1, x, y), subVVg(z2, x, y)
		if c1 != c2 {
			t.Fatalf("n=%d: subVV borrow = %d, subVVg borrow = %d", n, c1, c2)
		}
		for i := range z1 {
			if z1[i] != z2[i] {
				t.Fatalf("n=%d: subVV and subVVg differ at word %d", n, i)
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison, copy and negation
// ─────────────────────────────────────────────────────────────────────────────

func TestCmp(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		x, y register.View
		want register.CmpResult
	}{
		{"equal", view(1, 2, 3), view(1, 2, 3), register.CmpResult{Order: register.Equal}},
		{"top word greater", view(1, 2, 4), view(1, 2, 3), register.CmpResult{Order: register.Greater, Size: 3}},
		{"low word less", view(1, 2, 3), view(2, 2, 3), register.CmpResult{Order: register.Less, Size: 1}},
		{"middle word", view(9, 1, 3), view(0, 2, 3), register.CmpResult{Order: register.Less, Size: 2}},
		{"both zero", view(), view(), register.CmpResult{Order: register.Equal}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Cmp(tt.x, tt.y); got != tt.want {
				t.Errorf("Cmp() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTrimFillCopy(t *testing.T) {
	t.Parallel()
	if got := Trim([]Word{1, 0, 2, 0, 0}); got != 3 {
		t.Errorf("Trim() = %d, want 3", got)
	}
	if got := Trim([]Word{0, 0}); got != 0 {
		t.Errorf("Trim() of zeros = %d, want 0", got)
	}

	z := register.Make(3)
	Fill(&z, 7)
	if z.Size != 3 || z.Words[0] != 7 || z.Words[2] != 7 {
		t.Errorf("Fill() = %v (size %d)", z.Words, z.Size)
	}

	Copy(view(4, 5), &z)
	if z.Size != 2 || z.Words[0] != 4 || z.Words[1] != 5 {
		t.Errorf("Copy() = %v (size %d)", z.Words, z.Size)
	}

	// overlapping copy towards higher words
	buf := []Word{1, 2, 3, 0}
	dst := register.Reg{Words: buf[1:]}
	Copy(register.View{Words: buf, Size: 3}, &dst)
	if buf[1] != 1 || buf[2] != 2 || buf[3] != 3 {
		t.Errorf("overlapping Copy() = %v", buf)
	}
}

func TestTwos(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(2))
	for _, capacity := range []int{1, 2, 4} {
		for size := 0; size <= capacity; size++ {
			x := register.View{Words: generateRandomWords(r, capacity)}
			x.Size = Trim(x.Words[:size])
			z := register.Make(capacity)
			Twos(x, &z)
			if z.Size != capacity {
				t.Fatalf("Twos() size = %d, want %d", z.Size, capacity)
			}
			m := modulus(capacity)
			want := new(big.Int).Sub(m, toBig(x))
			want.Mod(want, m)
			if got := toBig(z.View()); got.Cmp(want) != 0 {
				t.Errorf("Twos(%s) = %s, want %s", toBig(x), got, want)
			}
		}
	}

	// in place
	z := register.Reg{Words: []Word{1, 0}, Size: 1}
	Twos(z.View(), &z)
	if z.Words[0] != register.WordMax || z.Words[1] != register.WordMax {
		t.Errorf("in-place Twos(1) = %v, want all ones", z.Words)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Addition and subtraction
// ─────────────────────────────────────────────────────────────────────────────

func TestAdd(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		xn := 1 + r.Intn(6)
		yn := r.Intn(xn + 1)
		capacity := xn + r.Intn(2)
		x := view(generateRandomWords(r, xn)...)
		y := view(generateRandomWords(r, yn)...)
		if y.Size > x.Size {
			x, y = y, x
		}
		z := register.Make(capacity)
		c := Add(x, y, &z)

		sum := new(big.Int).Add(toBig(x), toBig(y))
		m := modulus(capacity)
		want := new(big.Int).Mod(sum, m)
		if got := toBig(register.View{Words: z.Words, Size: Trim(z.Words[:z.Size])}); got.Cmp(want) != 0 {
			t.Fatalf("Add(%s, %s) = %s, want %s", toBig(x), toBig(y), got, want)
		}
		if lost := sum.Cmp(m) >= 0; lost != (c != 0) {
			t.Fatalf("Add(%s, %s) carry = %d, lost = %v", toBig(x), toBig(y), c, lost)
		}
	}
}

func TestAddCarryWord(t *testing.T) {
	t.Parallel()
	z := register.Make(2)
	c := Add(view(register.WordMax), view(1), &z)
	if c != 0 || z.Size != 2 || z.Words[0] != 0 || z.Words[1] != 1 {
		t.Errorf("Add(max, 1) = %v size %d carry %d, want [0 1] size 2 carry 0", z.Words, z.Size, c)
	}

	z = register.Make(1)
	c = Add(view(register.WordMax), view(1), &z)
	if c != 1 || z.Size != 1 || z.Words[0] != 0 {
		t.Errorf("Add(max, 1) at capacity 1 = %v carry %d, want [0] carry 1", z.Words, c)
	}
}

func TestSub(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 200; i++ {
		x := view(generateRandomWords(r, 1+r.Intn(6))...)
		y := view(generateRandomWords(r, 1+r.Intn(6))...)
		if toBig(x).Cmp(toBig(y)) < 0 {
			x, y = y, x
		}
		z := register.Make(x.Size)
		Sub(x, y, &z)
		want := new(big.Int).Sub(toBig(x), toBig(y))
		if got := toBig(z.View()); got.Cmp(want) != 0 {
			t.Fatalf("Sub(%s, %s) = %s, want %s", toBig(x), toBig(y), got, want)
		}
	}
}

func TestAddSubInPlace(t *testing.T) {
	t.Parallel()
	z := register.Reg{Words: []Word{register.WordMax, 3, 0}, Size: 2}
	y := view(1)
	Add(z.View(), y, &z)
	if z.Words[0] != 0 || z.Words[1] != 4 {
		t.Fatalf("in-place Add() = %v", z.Words)
	}
	z.Trim()
	Sub(z.View(), y, &z)
	if z.Words[0] != register.WordMax || z.Words[1] != 3 {
		t.Errorf("in-place Sub() = %v", z.Words)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Bitwise operations
// ─────────────────────────────────────────────────────────────────────────────

func TestBitwise(t *testing.T) {
	t.Parallel()
	x := view(0b1100, 0b1010, 7)
	y := view(0b1010, 0b0110)

	tests := []struct {
		name string
		op   func(x, y register.View, z *register.Reg)
		want []Word
	}{
		{"and", And, []Word{0b1000, 0b0010, 0}},
		{"or", Or, []Word{0b1110, 0b1110, 7}},
		{"xor", Xor, []Word{0b0110, 0b1100, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			z := register.Make(3)
			tt.op(x, y, &z)
			if z.Size != 3 {
				t.Fatalf("size = %d, want 3", z.Size)
			}
			for i, w := range tt.want {
				if z.Words[i] != w {
					t.Errorf("word %d = %b, want %b", i, z.Words[i], w)
				}
			}
		})
	}
}

func TestNot(t *testing.T) {
	t.Parallel()
	z := register.Make(3)
	Not(view(1), &z)
	if z.Size != 3 {
		t.Fatalf("Not() size = %d, want 3", z.Size)
	}
	want := []Word{register.WordMax - 1, register.WordMax, register.WordMax}
	for i := range want {
		if z.Words[i] != want[i] {
			t.Errorf("Not() word %d = %x, want %x", i, z.Words[i], want[i])
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Shifts
// ─────────────────────────────────────────────────────────────────────────────

func TestShifts(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		n := 1 + r.Intn(5)
		x := view(generateRandomWords(r, n)...)
		if x.Size == 0 {
			continue
		}
		s := uint(r.Intn(register.WordBits))

		zl := register.Make(x.Size + 1)
		Shl(x, s, &zl)
		want := new(big.Int).Lsh(toBig(x), s)
		if got := toBig(zl.View()); got.Cmp(want) != 0 {
			t.Fatalf("Shl(%s, %d) = %s, want %s", toBig(x), s, got, want)
		}

		zr := register.Make(x.Size)
		Shr(x, s, &zr)
		want = new(big.Int).Rsh(toBig(x), s)
		if got := toBig(zr.View()); got.Cmp(want) != 0 {
			t.Fatalf("Shr(%s, %d) = %s, want %s", toBig(x), s, got, want)
		}
	}
}

func TestShiftAliasedByWords(t *testing.T) {
	t.Parallel()
	// shift left by one word and 4 bits inside a single buffer
	buf := []Word{0x11, 0x22, register.WordMSB | 0x33, 0, 0}
	x := register.View{Words: buf, Size: 3}
	want := new(big.Int).Lsh(toBig(x), register.WordBits+4)
	z := register.Reg{Words: buf[1:]}
	Shl(x, 4, &z)
	buf[0] = 0
	if got := toBig(register.View{Words: buf, Size: Trim(buf)}); got.Cmp(want) != 0 {
		t.Errorf("aliased Shl() = %s, want %s", got, want)
	}

	// shift right by one word and 4 bits inside a single buffer
	buf = []Word{0x11, 0x22, 0x33, 0x44}
	want = new(big.Int).Rsh(toBig(register.View{Words: buf, Size: 4}), register.WordBits+4)
	z = register.Reg{Words: buf}
	Shr(register.View{Words: buf[1:], Size: 3}, 4, &z)
	if got := toBig(register.View{Words: buf, Size: Trim(buf[:z.Size])}); got.Cmp(want) != 0 {
		t.Errorf("aliased Shr() = %s, want %s", got, want)
	}
}

func TestShrDropsTopWord(t *testing.T) {
	t.Parallel()
	// x has one word more than z holds; only the low words of x >> s remain.
	x := view(0, 0x10, 0x30)
	z := register.Make(2)
	Shr(x, 4, &z)
	if z.Size != 2 || z.Words[0] != 0 || z.Words[1] != 1 {
		t.Errorf("Shr() = %x size %d, want [0 1] size 2", z.Words, z.Size)
	}
}
