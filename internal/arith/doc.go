// Package arith implements the primitive word algorithms of the engine.
//
// Every routine reads register.View operands and writes a *register.Reg
// destination. The routines are size-agnostic: they trust the operand-size
// preconditions documented on each function and never check them, and they
// never allocate, except Div whose normalised operand copies are local to the
// call. Results are left untrimmed unless stated otherwise; trimming is the
// business of the composition layers.
//
// All carry, borrow and partial-product computations go through math/bits,
// whose double-word operations are the only carry-safe accumulators used.
//
// Aliasing: unless a function says otherwise, the destination may share its
// words with an operand as long as both start at the same word.
package arith
