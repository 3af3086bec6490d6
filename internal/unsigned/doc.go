// Package unsigned composes the primitive word algorithms into unsigned
// fixed-width operations.
//
// Every operation follows the same four steps:
//
//  1. reorder the operands so the primitive's preconditions hold;
//  2. truncate any operand wider than the destination, raising
//     register.Overflow (a narrowing conversion drops the excess high words);
//  3. run the primitive;
//  4. trim the destination.
//
// Operations return register.Flags and never fail: division by zero raises
// register.Infinity and reports a zero quotient and remainder. Destinations
// may alias operands unless a function says otherwise. Unsigned results never
// carry a sign.
package unsigned
