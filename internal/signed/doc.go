// Package signed builds two's-complement fixed-width operations on top of the
// unsigned layer.
//
// A signed register holds a magnitude and a sign. For a capacity of N bits the
// valid magnitudes are those below 2^(N-1), plus exactly 2^(N-1) when the sign
// is set: the most negative value, whose magnitude is also its own
// two's-complement pattern. Every mutating operation ends with a
// renormalisation that restores this invariant:
//
//   - if the unsigned step truncated anything, the result is rebuilt from the
//     N-bit pattern of sign*magnitude, which is what fixed-width wraparound
//     produces;
//   - otherwise a magnitude that reaches the top bit raises Overflow, unless it
//     is exactly the most negative value, and is rebuilt the same way;
//   - zero never carries a sign.
//
// Only the bitwise operations work on raw two's-complement patterns; negative
// operands are converted into call-local scratch for them.
package signed
