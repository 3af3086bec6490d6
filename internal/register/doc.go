// Package register defines the value representation shared by every layer of
// the engine: a fixed-capacity word buffer with a logical size and a sign.
//
// A Reg is the mutable view an operation writes into; a View is the read-only
// view it reads from. Both describe the same layout:
//
//   - Words holds the magnitude, least significant word first. Its length is
//     the capacity and never changes for the lifetime of the buffer.
//   - Size is the number of significant words. When Size > 0 the top word
//     Words[Size-1] is non-zero ("trimmed"); Size == 0 is the value zero.
//   - Sign is only meaningful under the signed interpretation and is false
//     whenever Size == 0.
//
// Views are passed by value, so an operation may take a View of the very Reg
// it writes to: the View keeps the Size and Sign it had at call time.
package register
