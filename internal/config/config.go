package config

import (
	"errors"
	"flag"
	"io/fs"

	"github.com/BurntSushi/toml"

	apperrors "github.com/agbru/wideint/internal/errors"
	"github.com/agbru/wideint/internal/unsigned"
)

// EnvPrefix is the prefix of every environment variable read by ApplyEnv.
const EnvPrefix = "WIDEINT_"

// MaxBits bounds the register width a configuration may request.
const MaxBits = 1 << 20

// Division policies: what a context does when an operation divides by zero.
const (
	DivZero  = "zero"  // return zero quotient and remainder and keep going
	DivError = "error" // record ErrDivisionByZero as the context error
	DivPanic = "panic" // panic with ErrDivisionByZero
)

// Overflow policies: what a context does when an operation overflows.
const (
	OverflowWrap  = "wrap"  // keep the wrapped result
	OverflowError = "error" // record an OverflowError as the context error
)

// Config holds the settings of an arithmetic context.
type Config struct {
	// DivPolicy is one of DivZero, DivError or DivPanic.
	DivPolicy string `toml:"div_policy"`
	// OverflowPolicy is one of OverflowWrap or OverflowError.
	OverflowPolicy string `toml:"overflow_policy"`
	// DefaultBits is the width of integers created by the context.
	DefaultBits int `toml:"default_bits"`
	// Signed selects two's-complement integers for the context.
	Signed bool `toml:"signed"`
	// Base is the default base for text conversion.
	Base int `toml:"base"`
	// Digits is the digit alphabet for text conversion.
	Digits string `toml:"digits"`
	// LogLevel is the minimum level logged by the context.
	LogLevel string `toml:"log_level"`
	// Metrics enables the Prometheus recorder.
	Metrics bool `toml:"metrics"`
	// MetricsNamespace prefixes the exported counters.
	MetricsNamespace string `toml:"metrics_namespace"`
}

// Default returns the default configuration: wrapping 128-bit unsigned
// arithmetic that reports division by zero as an error.
func Default() Config {
	return Config{
		DivPolicy:        DivError,
		OverflowPolicy:   OverflowWrap,
		DefaultBits:      128,
		Base:             10,
		Digits:           unsigned.DefaultDigits,
		LogLevel:         "info",
		MetricsNamespace: "wideint",
	}
}

// Validate checks every field of c.
//
// Returns:
//   - error: A ConfigError describing the first invalid field, or nil.
func (c Config) Validate() error {
	switch c.DivPolicy {
	case DivZero, DivError, DivPanic:
	default:
		return apperrors.NewConfigError("invalid div_policy %q: want %q, %q or %q", c.DivPolicy, DivZero, DivError, DivPanic)
	}
	switch c.OverflowPolicy {
	case OverflowWrap, OverflowError:
	default:
		return apperrors.NewConfigError("invalid overflow_policy %q: want %q or %q", c.OverflowPolicy, OverflowWrap, OverflowError)
	}
	if c.DefaultBits < 1 || c.DefaultBits > MaxBits {
		return apperrors.NewConfigError("invalid default_bits %d: must be between 1 and %d", c.DefaultBits, MaxBits)
	}
	if err := checkDigits(c.Digits); err != nil {
		return err
	}
	if err := unsigned.CheckBase(c.Base, c.Digits, false); err != nil {
		return apperrors.NewConfigError("invalid base: %v", err)
	}
	return nil
}

// checkDigits rejects alphabets with repeated symbols, which would make
// parsing ambiguous.
func checkDigits(digits string) error {
	var seen [256]bool
	for i := 0; i < len(digits); i++ {
		if seen[digits[i]] {
			return apperrors.NewConfigError("invalid digits: %q repeats %q", digits, digits[i])
		}
		seen[digits[i]] = true
	}
	return nil
}

// LoadFile decodes a TOML file over c. Keys absent from the file keep their
// current value; unknown keys are an error.
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return apperrors.WrapError(err, "load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return apperrors.NewConfigError("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

// RegisterFlags binds the fields of c to flags of set.
func (c *Config) RegisterFlags(set *flag.FlagSet) {
	set.StringVar(&c.DivPolicy, "div-policy", c.DivPolicy, "division by zero policy: zero, error or panic")
	set.StringVar(&c.OverflowPolicy, "overflow-policy", c.OverflowPolicy, "overflow policy: wrap or error")
	set.IntVar(&c.DefaultBits, "bits", c.DefaultBits, "default integer width in bits")
	set.BoolVar(&c.Signed, "signed", c.Signed, "use two's-complement integers")
	set.IntVar(&c.Base, "base", c.Base, "default base for text conversion")
	set.StringVar(&c.Digits, "digits", c.Digits, "digit alphabet for text conversion")
	set.StringVar(&c.LogLevel, "log-level", c.LogLevel, "minimum log level")
	set.BoolVar(&c.Metrics, "metrics", c.Metrics, "export Prometheus counters")
}

// Load builds a configuration with the priority flags > environment > file >
// defaults. cfg holds the values bound by RegisterFlags to set, which must
// already be parsed; set may be nil. When path is empty, $WIDEINT_CONFIG names
// the file and a missing file is skipped.
//
// Parameters:
//   - cfg: The configuration bound to set; receives the merged result.
//   - path: The TOML file to read, or "".
//   - set: The parsed flag set, or nil.
//
// Returns:
//   - error: A ConfigError or a wrapped decoding error.
func Load(cfg *Config, path string, set *flag.FlagSet) error {
	fromFlags := *cfg
	explicit := path != ""
	if !explicit {
		path, _ = lookupEnv("CONFIG")
	}

	merged := Default()
	if path != "" {
		err := merged.LoadFile(path)
		if err != nil && (explicit || !errors.Is(err, fs.ErrNotExist)) {
			return err
		}
	}
	ApplyEnv(&merged, set)
	if set != nil {
		set.Visit(func(f *flag.Flag) { copyFlag(&merged, &fromFlags, f.Name) })
	}
	*cfg = merged
	return cfg.Validate()
}

// copyFlag copies the field bound to the named flag from src to dst.
func copyFlag(dst, src *Config, name string) {
	switch name {
	case "div-policy":
		dst.DivPolicy = src.DivPolicy
	case "overflow-policy":
		dst.OverflowPolicy = src.OverflowPolicy
	case "bits":
		dst.DefaultBits = src.DefaultBits
	case "signed":
		dst.Signed = src.Signed
	case "base":
		dst.Base = src.Base
	case "digits":
		dst.Digits = src.Digits
	case "log-level":
		dst.LogLevel = src.LogLevel
	case "metrics":
		dst.Metrics = src.Metrics
	}
}
