package signed

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/wideint/internal/register"
	"github.com/agbru/wideint/internal/unsigned"
)

// genSigned generates a 256-bit signed register from four 64-bit limbs, read
// as a two's-complement pattern.
func genSigned() gopter.Gen {
	return gen.SliceOfN(4, gen.UInt64()).Map(func(limbs []uint64) register.Reg {
		v := new(big.Int)
		for i := len(limbs) - 1; i >= 0; i-- {
			v.Lsh(v, 64)
			v.Or(v, new(big.Int).SetUint64(limbs[i]))
		}
		return fromBig(words256, v)
	})
}

func equal(a, b register.Reg) bool {
	return Cmp(a.View(), b.View()).Order == register.Equal && a.Sign == b.Sign
}

func TestSignedProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("negation is an involution", prop.ForAll(
		func(x register.Reg) bool {
			n, back := register.Make(words256), register.Make(words256)
			f := Neg(x.View(), &n) | Neg(n.View(), &back)
			return f == 0 && equal(x, back)
		},
		genSigned(),
	))

	properties.Property("x - y + y == x with wraparound", prop.ForAll(
		func(x, y register.Reg) bool {
			d, back := register.Make(words256), register.Make(words256)
			Sub(x.View(), y.View(), &d)
			Add(d.View(), y.View(), &back)
			return equal(x, back)
		},
		genSigned(), genSigned(),
	))

	properties.Property("x + ^x == -1", prop.ForAll(
		func(x register.Reg) bool {
			n, sum := register.Make(words256), register.Make(words256)
			f := Not(x.View(), &n) | Add(x.View(), n.View(), &sum)
			return f == 0 && Int64(sum.View()) == -1 && IsInt64(sum.View())
		},
		genSigned(),
	))

	properties.Property("y*quo(x,y) + rem(x,y) == x", prop.ForAll(
		func(x, y register.Reg, shift uint) bool {
			Shr(y.View(), shift, &y)
			if y.Size == 0 {
				return true
			}
			q, r := register.Make(words256), register.Make(words256)
			prod, back := register.Make(words256), register.Make(words256)
			Div(x.View(), y.View(), &q, &r)
			Mul(q.View(), y.View(), &prod)
			Add(prod.View(), r.View(), &back)
			remSmaller := unsigned.Cmp(r.View(), y.View()).Order == register.Less
			signOK := r.Size == 0 || r.Sign == x.Sign
			return equal(x, back) && remSmaller && signOK
		},
		genSigned(), genSigned(), gen.UIntRange(0, 250),
	))

	properties.Property("format then parse returns the value", prop.ForAll(
		func(x register.Reg, base int) bool {
			text := Format(x.View(), base, unsigned.DefaultDigits, true)
			back := register.Make(words256)
			f, n := Parse(&back, text, 0, unsigned.DefaultDigits)
			return f == 0 && n == len(text) && equal(x, back)
		},
		genSigned(), gen.OneConstOf(2, 8, 10, 16),
	))

	properties.TestingRun(t)
}
