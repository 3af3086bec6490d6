package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// WIDEINT_ environment overrides
// ─────────────────────────────────────────────────────────────────────────────

// envVar ties WIDEINT_<Key> to the flag that shadows it and to the field it
// writes. set leaves the field unchanged when the value does not parse.
type envVar struct {
	Key  string
	Flag string
	set  func(c *Config, v string)
}

func stringField(field func(*Config) *string, lower bool) func(*Config, string) {
	return func(c *Config, v string) {
		if lower {
			v = strings.ToLower(v)
		}
		*field(c) = v
	}
}

func intField(field func(*Config) *int) func(*Config, string) {
	return func(c *Config, v string) {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*field(c) = n
		}
	}
}

// boolField accepts true/1/yes and false/0/no in any case.
func boolField(field func(*Config) *bool) func(*Config, string) {
	return func(c *Config, v string) {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes":
			*field(c) = true
		case "false", "0", "no":
			*field(c) = false
		}
	}
}

var envVars = []envVar{
	{"DIV_POLICY", "div-policy", stringField(func(c *Config) *string { return &c.DivPolicy }, true)},
	{"OVERFLOW_POLICY", "overflow-policy", stringField(func(c *Config) *string { return &c.OverflowPolicy }, true)},
	{"BITS", "bits", intField(func(c *Config) *int { return &c.DefaultBits })},
	{"SIGNED", "signed", boolField(func(c *Config) *bool { return &c.Signed })},
	{"BASE", "base", intField(func(c *Config) *int { return &c.Base })},
	{"DIGITS", "digits", stringField(func(c *Config) *string { return &c.Digits }, false)},
	{"LOG_LEVEL", "log-level", stringField(func(c *Config) *string { return &c.LogLevel }, false)},
	{"METRICS", "metrics", boolField(func(c *Config) *bool { return &c.Metrics })},
}

// lookupEnv returns the non-empty value of WIDEINT_<key>.
func lookupEnv(key string) (string, bool) {
	v := os.Getenv(EnvPrefix + key)
	return v, v != ""
}

// explicitFlags lists the flags of set given on the command line. set may
// be nil.
func explicitFlags(set *flag.FlagSet) map[string]bool {
	seen := make(map[string]bool)
	if set != nil {
		set.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	}
	return seen
}

// ApplyEnv copies WIDEINT_DIV_POLICY, WIDEINT_OVERFLOW_POLICY, WIDEINT_BITS,
// WIDEINT_SIGNED, WIDEINT_BASE, WIDEINT_DIGITS, WIDEINT_LOG_LEVEL and
// WIDEINT_METRICS into cfg, except for settings whose flag was given
// explicitly in set. Validation is left to Validate.
func ApplyEnv(cfg *Config, set *flag.FlagSet) {
	explicit := explicitFlags(set)
	for _, e := range envVars {
		if explicit[e.Flag] {
			continue
		}
		if v, ok := lookupEnv(e.Key); ok {
			e.set(cfg, v)
		}
	}
}
