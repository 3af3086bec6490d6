package wideint

import apperrors "github.com/agbru/wideint/internal/errors"

var (
	// ErrDivisionByZero is the cause of the error a Context reports for a
	// division by zero.
	ErrDivisionByZero = apperrors.ErrDivisionByZero
	// ErrOverflow matches every OverflowError with errors.Is.
	ErrOverflow = apperrors.ErrOverflow
)

type (
	// OverflowError reports a result that did not fit its destination.
	OverflowError = apperrors.OverflowError
	// OperationError wraps the cause of a failed operation with its name.
	OperationError = apperrors.OperationError
	// SyntaxError reports text that is not a number in the requested base.
	SyntaxError = apperrors.SyntaxError
	// ValidationError reports an invalid argument, such as a base or width.
	ValidationError = apperrors.ValidationError
	// ConfigError reports an invalid configuration value.
	ConfigError = apperrors.ConfigError
)
