// Package format provides text layout helpers for formatted integers: digit
// grouping and fmt-compatible width, precision and zero padding.
package format
