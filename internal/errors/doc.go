// Package apperrors holds the error values shared by the arithmetic packages
// and the Context: sentinels for division by zero and overflow, and typed
// errors for operations, syntax, validation and configuration.
//
// Typed errors that carry a cause implement Unwrap, and OverflowError matches
// ErrOverflow, so callers branch with errors.Is and errors.As.
package apperrors
