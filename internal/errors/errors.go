package apperrors

import (
	"errors"
	"fmt"
)

// Arithmetic conditions a Context may be configured to turn into errors.
var (
	// ErrDivisionByZero: a quotient or remainder was taken with a zero
	// divisor. The engine itself answers such requests with zero and the
	// Infinity flag.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOverflow: a result was truncated to the width of its destination.
	ErrOverflow = errors.New("overflow")
)

// ConfigError is returned for a rejected setting, whether it came from a
// flag, a WIDEINT_ environment variable or a TOML file.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError formats a ConfigError.
//
// Parameters:
//   - format, a: as for fmt.Sprintf.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// OverflowError names the operation whose result did not fit and the domain
// it was stored in. It matches ErrOverflow under errors.Is.
type OverflowError struct {
	Op     string // "add", "lsh", "decode", ...
	Domain string // "uint128", "int64", ...
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("%s: result overflows %s", e.Op, e.Domain)
}

func (e OverflowError) Is(target error) bool { return target == ErrOverflow }

// OperationError attaches an operation name to a cause, typically
// ErrDivisionByZero or a SyntaxError.
type OperationError struct {
	Op    string
	Cause error
}

func (e OperationError) Error() string { return e.Op + ": " + e.Cause.Error() }

// Unwrap exposes Cause to errors.Is and errors.As.
func (e OperationError) Unwrap() error { return e.Cause }

// ValidationError rejects a single argument or decoded field, e.g. a bit
// width outside [1, MaxBits] or a digit alphabet with repeated characters.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the field name and the reason it was rejected.
//
// Returns:
//   - string: "invalid <field>: <message>".
func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// SyntaxError reports text that is not a complete number in the expected base.
type SyntaxError struct {
	Input  string
	Offset int // first byte that was not consumed
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("invalid number %q: unexpected input at offset %d", e.Input, e.Offset)
}

// WrapError prefixes err with a formatted message, keeping it reachable
// through %w. A nil err stays nil.
//
// Parameters:
//   - err: the error to wrap.
//   - format, args: the prefix, as for fmt.Sprintf.
//
// Returns:
//   - error: "<prefix>: <err>", or nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsArithmeticError reports whether err stems from division by zero or
// overflow rather than from bad input or configuration.
func IsArithmeticError(err error) bool {
	return errors.Is(err, ErrDivisionByZero) || errors.Is(err, ErrOverflow)
}
