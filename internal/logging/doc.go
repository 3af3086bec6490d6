// Package logging provides the structured logging interface used by the
// arithmetic Context and the configuration loader. It abstracts the
// underlying implementation so that callers can plug in zerolog, the standard
// library logger, or a test double.
package logging
