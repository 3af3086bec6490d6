package unsigned

import (
	"math/bits"

	"github.com/agbru/wideint/internal/register"
)

// The estimators below bound, in words, the size of an operation's result
// from the sizes of its operands. They size scratch buffers and never
// under-estimate.

// EstAdd bounds x + y.
func EstAdd(x, y int) int { return max(x, y) + 1 }

// EstMul bounds x * y.
func EstMul(x, y int) int { return x + y }

// EstQuo bounds x / y.
func EstQuo(x, y int) int { return max(1, x-y+1) }

// EstRem bounds x % y.
func EstRem(_, y int) int { return y }

// EstShl bounds x << s.
func EstShl(x int, s uint) int { return x + int(s/register.WordBits) + 1 }

// EstShr bounds x >> s.
func EstShr(x int, s uint) int { return max(1, x-int(s/register.WordBits)) }

// bitsPerDigit returns the number of bits needed by one digit in base.
func bitsPerDigit(base int) int { return bits.Len(uint(base - 1)) }

// EstParse bounds the words needed by a number of n digits in base.
func EstParse(n, base int) int {
	return n*bitsPerDigit(base)/register.WordBits + 1
}

// EstFormat bounds the digits needed to write a size-word magnitude in base.
func EstFormat(size, base int) int {
	return size*register.WordBits/(bits.Len(uint(base))-1) + 1
}
