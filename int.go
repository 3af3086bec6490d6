package wideint

import (
	"slices"

	"fortio.org/safecast"

	"github.com/agbru/wideint/internal/register"
	"github.com/agbru/wideint/internal/signed"
	"github.com/agbru/wideint/internal/unsigned"
)

// Word is a machine word of an Int's magnitude.
type Word = register.Word

// Flags reports the conditions raised by an operation. Operations always
// produce a result; the flags say whether it was wrapped or is a
// division-by-zero placeholder.
type Flags = register.Flags

const (
	// Overflow is raised when a result or an operand was wrapped into the
	// destination width.
	Overflow = register.Overflow
	// Infinity is raised by a division or remainder with a zero divisor; the
	// results are then zero.
	Infinity = register.Infinity
)

var (
	int64Domain  = Domain{Bits: 64, Signed: true}
	uint64Domain = Domain{Bits: 64}
)

// An Int is a fixed-width integer. Its Domain is set when it is created and
// never changes, except that the zero value adopts the domain of the first
// operation that stores into it.
//
// Operations set the receiver to the result and return the Flags raised,
// in the manner of math/big: z.Add(x, y) sets z = x + y. Operands of
// different domains are first converted into their Common domain, the
// operation is evaluated there, and the result is converted into z's domain.
// Receivers may alias operands.
type Int struct {
	reg    register.Reg
	domain Domain
}

// New returns a zero Int of the given width and signedness. The width is
// rounded up to a whole number of words; New panics if it is not in
// [1, MaxBits].
func New(bits int, signed bool) *Int {
	return NewDomain(bits, signed).New()
}

// NewUint returns a zero unsigned Int of the given width.
func NewUint(bits int) *Int { return New(bits, false) }

// NewSigned returns a zero two's-complement Int of the given width.
func NewSigned(bits int) *Int { return New(bits, true) }

// New returns a zero Int of domain d. d must come from NewDomain, or be the
// zero Domain, which gives the zero Int.
func (d Domain) New() *Int {
	z := new(Int)
	z.init(d)
	return z
}

func (z *Int) init(d Domain) {
	z.domain = d
	z.reg = register.Make(d.words())
}

// adopt gives a zero-value z the domain d.
func (z *Int) adopt(d Domain) {
	if z.domain.Bits == 0 && d.Bits != 0 {
		z.init(d)
	}
}

func (x *Int) view() register.View { return x.reg.View() }

// operand returns the value of x in domain d. When x belongs to another
// domain it is converted into a pooled scratch register, which is returned
// for release once the view is no longer used.
func (x *Int) operand(d Domain) (register.View, Flags, *register.Reg) {
	if x.domain == d || x.reg.Size == 0 {
		return x.view(), 0, nil
	}
	t := register.Acquire(d.words())
	f := convert(x.view(), x.domain, d, &t)
	return t.View(), f, &t
}

// convert stores x, a value of domain from, into z, a register of domain to.
func convert(x register.View, from, to Domain, z *register.Reg) Flags {
	switch {
	case from.Signed && to.Signed:
		return signed.Copy(x, z)
	case from.Signed:
		return signed.ToUnsigned(x, z)
	case to.Signed:
		return signed.FromUnsigned(x, z)
	}
	return unsigned.Copy(x, z)
}

// Domain returns the domain of x.
func (x *Int) Domain() Domain { return x.domain }

// Bits returns the width of x in bits.
func (x *Int) Bits() int { return x.domain.Bits }

// Signed reports whether x is a two's-complement integer.
func (x *Int) Signed() bool { return x.domain.Signed }

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x *Int) Sign() int {
	switch {
	case x.reg.Size == 0:
		return 0
	case x.reg.Sign:
		return -1
	}
	return 1
}

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool { return x.reg.Size == 0 }

// Cmp compares the values of x and y exactly, whatever their domains, and
// returns -1, 0 or +1.
func (x *Int) Cmp(y *Int) int {
	return int(signed.Cmp(x.view(), y.view()).Order)
}

// BitLen returns the length of the absolute value of x in bits.
func (x *Int) BitLen() int { return x.view().BitLen() }

// Words returns a copy of the significant words of the absolute value of x,
// least significant first.
func (x *Int) Words() []Word { return slices.Clone(x.view().Sig()) }

// Int64 returns the low 64 bits of x as a two's-complement int64.
func (x *Int) Int64() int64 { return signed.Int64(x.view()) }

// Uint64 returns the low 64 bits of x's two's-complement pattern.
func (x *Int) Uint64() uint64 {
	v := unsigned.Uint64(x.view())
	if x.reg.Sign {
		return -v
	}
	return v
}

// IsInt64 reports whether x can be represented as an int64.
func (x *Int) IsInt64() bool {
	if x.domain.Signed {
		return signed.IsInt64(x.view())
	}
	if !unsigned.IsUint64(x.view()) {
		return false
	}
	_, err := safecast.Conv[int64](unsigned.Uint64(x.view()))
	return err == nil
}

// IsUint64 reports whether x can be represented as a uint64.
func (x *Int) IsUint64() bool {
	return !x.reg.Sign && unsigned.IsUint64(x.view())
}

// Clone returns a new Int of x's domain holding x's value.
func (x *Int) Clone() *Int {
	z := x.domain.New()
	copy(z.reg.Words, x.reg.Words)
	z.reg.Size, z.reg.Sign = x.reg.Size, x.reg.Sign
	return z
}

// Set sets z to x converted into z's domain.
func (z *Int) Set(x *Int) Flags {
	if z == x {
		return 0
	}
	z.adopt(x.domain)
	return convert(x.view(), x.domain, z.domain, &z.reg)
}

// Convert returns x converted into domain d.
func (x *Int) Convert(d Domain) (*Int, Flags) {
	z := d.New()
	return z, z.Set(x)
}

// SetInt64 sets z to v. A zero-value z becomes an int64.
func (z *Int) SetInt64(v int64) Flags {
	z.adopt(int64Domain)
	if z.domain.Signed {
		return signed.SetInt64(&z.reg, v)
	}
	t := register.Make(int64Domain.words())
	signed.SetInt64(&t, v)
	return convert(t.View(), int64Domain, z.domain, &z.reg)
}

// SetUint64 sets z to v. A zero-value z becomes a uint64.
func (z *Int) SetUint64(v uint64) Flags {
	z.adopt(uint64Domain)
	if !z.domain.Signed {
		return unsigned.SetUint64(&z.reg, v)
	}
	t := register.Make(uint64Domain.words())
	unsigned.SetUint64(&t, v)
	return convert(t.View(), uint64Domain, z.domain, &z.reg)
}
