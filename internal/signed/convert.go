package signed

import (
	"github.com/agbru/wideint/internal/arith"
	"github.com/agbru/wideint/internal/register"
	"github.com/agbru/wideint/internal/unsigned"
)

// FromUnsigned sets z to the unsigned value x. Values at or above 2^(N-1)
// wrap around to negative values and raise Overflow.
func FromUnsigned(x register.View, z *register.Reg) register.Flags {
	x.Sign = false
	return normalize(z, unsigned.Copy(x, z))
}

// ToUnsigned sets the unsigned register z to x. A negative x is stored as its
// two's-complement pattern modulo 2^N and raises Overflow.
func ToUnsigned(x register.View, z *register.Reg) register.Flags {
	f := unsigned.Copy(x, z)
	if x.Sign && z.Size > 0 {
		arith.Twos(z.View(), z)
		z.Trim()
		f |= register.Overflow
	}
	z.Sign = false
	return f
}

// SetInt64 sets z = v.
func SetInt64(z *register.Reg, v int64) register.Flags {
	mag := uint64(v)
	if v < 0 {
		mag = -mag
	}
	f := unsigned.SetUint64(z, mag)
	z.Sign = v < 0
	return normalize(z, f)
}

// Int64 returns the low 64 bits of x as a two's-complement int64.
func Int64(x register.View) int64 {
	v := int64(unsigned.Uint64(x))
	if x.Sign {
		return -v
	}
	return v
}

// IsInt64 reports whether x fits in an int64.
func IsInt64(x register.View) bool {
	if !unsigned.IsUint64(x) {
		return false
	}
	mag := unsigned.Uint64(x)
	if x.Sign {
		return mag <= 1<<63
	}
	return mag < 1<<63
}
