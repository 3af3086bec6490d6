package wideint

import (
	"fmt"

	"github.com/agbru/wideint/internal/config"
	apperrors "github.com/agbru/wideint/internal/errors"
	"github.com/agbru/wideint/internal/register"
)

// MaxBits is the widest integer that can be constructed.
const MaxBits = config.MaxBits

// WordBits is the size of a machine word in bits. Every width is rounded up to
// a multiple of it.
const WordBits = register.WordBits

// DefaultDomain is the domain adopted by a zero-value Int that is set from
// text or a binary encoding without a domain of its own.
var DefaultDomain = Domain{Bits: 128}

// A Domain is the type of an Int: a width in bits and a signedness.
type Domain struct {
	Bits   int
	Signed bool
}

// NewDomain returns the domain of the given width, rounded up to a whole
// number of words. It panics if bits is not in [1, MaxBits].
func NewDomain(bits int, signed bool) Domain {
	if bits < 1 || bits > MaxBits {
		panic(apperrors.ValidationError{
			Field:   "bits",
			Message: fmt.Sprintf("must be between 1 and %d, got %d", MaxBits, bits),
		})
	}
	return Domain{Bits: register.WordsFor(bits) * WordBits, Signed: signed}
}

// String returns the Go-style name of d, such as "uint128" or "int64".
func (d Domain) String() string {
	if d.Signed {
		return fmt.Sprintf("int%d", d.Bits)
	}
	return fmt.Sprintf("uint%d", d.Bits)
}

// words returns the register capacity of d.
func (d Domain) words() int { return d.Bits / WordBits }

// valueBits is the number of bits available to the magnitude of a
// non-negative value.
func (d Domain) valueBits() int {
	if d.Signed {
		return d.Bits - 1
	}
	return d.Bits
}

// Common returns the domain in which an operation on a and b is evaluated:
// the one with the most value bits, the unsigned one on a tie. A zero Domain
// defers to the other operand.
func Common(a, b Domain) Domain {
	switch {
	case a.Bits == 0:
		return b
	case b.Bits == 0:
		return a
	case a.valueBits() > b.valueBits():
		return a
	case b.valueBits() > a.valueBits():
		return b
	case !a.Signed:
		return a
	}
	return b
}
