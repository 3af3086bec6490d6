package wideint

import (
	"fmt"
	"math/big"
	"math/rand"
)

var (
	u64  = NewDomain(64, false)
	i64  = NewDomain(64, true)
	u128 = NewDomain(128, false)
	i128 = NewDomain(128, true)
	u192 = NewDomain(192, false)
	i256 = NewDomain(256, true)
)

// testDomains are the domains exercised by the oracle tests.
var testDomains = []Domain{u64, i64, u128, i128, u192, i256}

// toBig returns the exact value of x.
func toBig(x *Int) *big.Int {
	b := new(big.Int).SetBits(x.Words())
	if x.Sign() < 0 {
		b.Neg(b)
	}
	return b
}

// wrapBig reduces v into the range of d.
func wrapBig(d Domain, v *big.Int) *big.Int {
	n := uint(d.Bits)
	mod := new(big.Int).Lsh(big.NewInt(1), n)
	if !d.Signed {
		return new(big.Int).Mod(v, mod)
	}
	half := new(big.Int).Lsh(big.NewInt(1), n-1)
	m := new(big.Int).Add(v, half)
	m.Mod(m, mod)
	return m.Sub(m, half)
}

// fromBig returns an Int of domain d holding v reduced into range.
func fromBig(d Domain, v *big.Int) *Int {
	z := d.New()
	if _, err := z.SetString(wrapBig(d, v).Text(10), 10); err != nil {
		panic(err)
	}
	return z
}

// mustInt returns an Int of domain d parsed from s with base 0.
func mustInt(d Domain, s string) *Int {
	z := d.New()
	if _, err := z.SetString(s, 0); err != nil {
		panic(fmt.Sprintf("mustInt(%v, %q): %v", d, s, err))
	}
	return z
}

// randBig returns a value of d, biased toward the edges of its range.
func randBig(rng *rand.Rand, d Domain) *big.Int {
	one := big.NewInt(1)
	mod := new(big.Int).Lsh(one, uint(d.Bits))
	switch rng.Intn(8) {
	case 0:
		return big.NewInt(0)
	case 1:
		return big.NewInt(-1)
	case 2:
		return new(big.Int).Rsh(mod, 1)
	case 3:
		return new(big.Int).Sub(new(big.Int).Rsh(mod, 1), one)
	case 4:
		return big.NewInt(rng.Int63n(1000) - 500)
	}
	// Random width so that short operands are common as well.
	bits := 1 + rng.Intn(d.Bits)
	return new(big.Int).Rand(rng, new(big.Int).Lsh(one, uint(bits)))
}
