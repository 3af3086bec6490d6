package wideint

import (
	"flag"
	"net/http"
	"os"

	"github.com/agbru/wideint/internal/config"
	apperrors "github.com/agbru/wideint/internal/errors"
	"github.com/agbru/wideint/internal/logging"
	"github.com/agbru/wideint/internal/metrics"
)

// Config holds the settings of a Context. See DefaultConfig and LoadConfig.
type Config = config.Config

// Logger is the structured logger a Context reports to.
type Logger = logging.Logger

// Recorder receives one event per operation evaluated by a Context.
type Recorder = metrics.Recorder

// Policies accepted in Config.DivPolicy and Config.OverflowPolicy.
const (
	DivPolicyZero       = config.DivZero
	DivPolicyError      = config.DivError
	DivPolicyPanic      = config.DivPanic
	OverflowPolicyWrap  = config.OverflowWrap
	OverflowPolicyError = config.OverflowError
)

// DefaultConfig returns the configuration of DefaultContext.
func DefaultConfig() Config { return config.Default() }

// LoadConfig sets cfg to the configuration built from the TOML file at path,
// the WIDEINT_ environment variables and the flags of set, in increasing
// order of priority. cfg must be the Config returned by RegisterFlags for
// set, or any Config when set is nil. path may be empty.
func LoadConfig(cfg *Config, path string, set *flag.FlagSet) error {
	return config.Load(cfg, path, set)
}

// RegisterFlags binds a new Config, initialized with the defaults, to flags of
// set. Pass the result to LoadConfig once set is parsed.
func RegisterFlags(set *flag.FlagSet) *Config {
	cfg := DefaultConfig()
	cfg.RegisterFlags(set)
	return &cfg
}

// A Context evaluates Int operations under a policy for division by zero and
// overflow. Integers created by the context share its default Domain.
//
// Operators of the form
//
//	func (c *Context) Op(z, x, y *Int) *Int
//
// set z to z.Op(x, y), apply the policy to the flags raised and return z.
//
// With the "error" policies the first offending operation records an error.
// Further operations are no-ops that return their receiver unchanged until
// Err is called. With DivPolicyPanic, an operation that divides by zero panics with
// ErrDivisionByZero.
//
// A Context is not safe for concurrent use; the Ints it operates on follow the
// rules of the Int type.
type Context struct {
	cfg      Config
	domain   Domain
	err      error
	logger   Logger
	recorder Recorder
	prom     *metrics.Prometheus
}

// Option configures a Context.
type Option func(*Context)

// WithLogger makes the Context report to l instead of a zerolog logger on
// standard error.
func WithLogger(l Logger) Option {
	return func(c *Context) { c.logger = l }
}

// WithRecorder makes the Context count operations with r.
func WithRecorder(r Recorder) Option {
	return func(c *Context) { c.recorder = r }
}

// NewContext validates cfg and returns a Context applying it.
//
// Parameters:
//   - cfg: The policies, default domain and text settings of the context.
//   - opts: Optional logger and recorder overrides.
//
// Returns:
//   - *Context: The new context.
//   - error: A ConfigError if cfg is invalid.
func NewContext(cfg Config, opts ...Option) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Context{
		cfg:      cfg,
		domain:   NewDomain(cfg.DefaultBits, cfg.Signed),
		recorder: metrics.Nop{},
	}
	if cfg.Metrics {
		c.prom = metrics.NewPrometheus(cfg.MetricsNamespace)
		c.recorder = c.prom
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		l, err := logging.NewLeveledLogger(os.Stderr, "wideint", cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		c.logger = l
	}
	return c, nil
}

// DefaultContext returns a Context with the default configuration: 128-bit
// unsigned integers, wrapping overflow and division by zero as an error.
func DefaultContext() *Context {
	c, err := NewContext(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return c
}

// Config returns the configuration of c.
func (c *Context) Config() Config { return c.cfg }

// Domain returns the domain of the integers created by c.
func (c *Context) Domain() Domain { return c.domain }

// MetricsHandler serves the counters of c in the Prometheus exposition
// format. It responds 404 when metrics are disabled.
func (c *Context) MetricsHandler() http.Handler {
	if c.prom == nil {
		return http.NotFoundHandler()
	}
	return c.prom.Handler()
}

// Err returns the first error recorded since the last call to Err and clears
// it.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// fail records err unless an earlier error is pending.
func (c *Context) fail(op, kind string, err error) {
	c.recorder.RecordError(op, kind)
	c.logger.Error("operation failed", err, logging.String("op", op))
	if c.err == nil {
		c.err = err
	}
}

// apply counts the operation and turns the flags it raised into errors
// according to the policies of c.
func (c *Context) apply(op string, z *Int, f Flags) {
	c.recorder.RecordOp(op, z.domain.String())
	if f == 0 {
		return
	}
	c.logger.Debug("flags raised",
		logging.String("op", op),
		logging.String("flags", f.String()),
		logging.Int("bits", z.Bits()),
		logging.Bool("signed", z.Signed()))

	if f.Has(Infinity) {
		c.recorder.RecordFlag(op, "infinity")
		err := apperrors.OperationError{Op: op, Cause: ErrDivisionByZero}
		switch c.cfg.DivPolicy {
		case DivPolicyPanic:
			c.recorder.RecordError(op, "division_by_zero")
			c.logger.Error("operation failed", err, logging.String("op", op))
			panic(ErrDivisionByZero)
		case DivPolicyError:
			c.fail(op, "division_by_zero", err)
		}
	}
	if f.Has(Overflow) {
		c.recorder.RecordFlag(op, "overflow")
		if c.cfg.OverflowPolicy == OverflowPolicyError {
			c.fail(op, "overflow", OverflowError{Op: op, Domain: z.domain.String()})
		}
	}
}

func (c *Context) binary(op string, fn func(z, x, y *Int) Flags, z, x, y *Int) *Int {
	if c.err != nil {
		return z
	}
	c.apply(op, z, fn(z, x, y))
	return z
}

func (c *Context) unary(op string, fn func(z, x *Int) Flags, z, x *Int) *Int {
	if c.err != nil {
		return z
	}
	c.apply(op, z, fn(z, x))
	return z
}

func (c *Context) shift(op string, fn func(z, x *Int, n uint) Flags, z, x *Int, n uint) *Int {
	if c.err != nil {
		return z
	}
	c.apply(op, z, fn(z, x, n))
	return z
}

// New returns a zero Int of c's domain.
func (c *Context) New() *Int { return c.domain.New() }

// NewInt64 returns an Int of c's domain set to v.
func (c *Context) NewInt64(v int64) *Int {
	z := c.New()
	if c.err == nil {
		c.apply("set", z, z.SetInt64(v))
	}
	return z
}

// NewUint64 returns an Int of c's domain set to v.
func (c *Context) NewUint64(v uint64) *Int {
	z := c.New()
	if c.err == nil {
		c.apply("set", z, z.SetUint64(v))
	}
	return z
}

// NewString returns an Int of c's domain set to the value of s in c's base
// and alphabet.
func (c *Context) NewString(s string) *Int {
	return c.SetString(c.New(), s)
}

// SetString sets z to the value of s in c's base and alphabet. Text that is
// not a number records a SyntaxError.
func (c *Context) SetString(z *Int, s string) *Int {
	if c.err != nil {
		return z
	}
	f, err := z.setText(s, c.cfg.Base, c.cfg.Digits)
	if err != nil {
		c.fail("parse", "syntax", apperrors.OperationError{Op: "parse", Cause: err})
		return z
	}
	c.apply("parse", z, f)
	return z
}

// Text returns x in c's base and alphabet.
func (c *Context) Text(x *Int) string {
	if x == nil {
		return "<nil>"
	}
	return string(x.appendText(nil, c.cfg.Base, c.cfg.Digits, false))
}

// Set sets z to x converted into z's domain and returns z.
func (c *Context) Set(z, x *Int) *Int { return c.unary("convert", (*Int).Set, z, x) }

// Convert returns x converted into c's domain.
func (c *Context) Convert(x *Int) *Int { return c.Set(c.New(), x) }

// Add sets z to x+y and returns z.
func (c *Context) Add(z, x, y *Int) *Int { return c.binary("add", (*Int).Add, z, x, y) }

// Sub sets z to x-y and returns z.
func (c *Context) Sub(z, x, y *Int) *Int { return c.binary("sub", (*Int).Sub, z, x, y) }

// Mul sets z to x*y and returns z.
func (c *Context) Mul(z, x, y *Int) *Int { return c.binary("mul", (*Int).Mul, z, x, y) }

// Quo sets z to the truncated quotient x/y and returns z.
func (c *Context) Quo(z, x, y *Int) *Int { return c.binary("quo", (*Int).Quo, z, x, y) }

// Rem sets z to the truncated remainder x%y and returns z.
func (c *Context) Rem(z, x, y *Int) *Int { return c.binary("rem", (*Int).Rem, z, x, y) }

// QuoRem sets z to the quotient and r to the remainder of x/y and returns
// both.
func (c *Context) QuoRem(z, x, y, r *Int) (*Int, *Int) {
	if c.err != nil {
		return z, r
	}
	f := z.QuoRem(x, y, r)
	c.apply("quorem", z, f)
	return z, r
}

// And sets z to x&y and returns z.
func (c *Context) And(z, x, y *Int) *Int { return c.binary("and", (*Int).And, z, x, y) }

// Or sets z to x|y and returns z.
func (c *Context) Or(z, x, y *Int) *Int { return c.binary("or", (*Int).Or, z, x, y) }

// Xor sets z to x^y and returns z.
func (c *Context) Xor(z, x, y *Int) *Int { return c.binary("xor", (*Int).Xor, z, x, y) }

// Not sets z to ^x and returns z.
func (c *Context) Not(z, x *Int) *Int { return c.unary("not", (*Int).Not, z, x) }

// Neg sets z to -x and returns z.
func (c *Context) Neg(z, x *Int) *Int { return c.unary("neg", (*Int).Neg, z, x) }

// Lsh sets z to x<<n and returns z.
func (c *Context) Lsh(z, x *Int, n uint) *Int { return c.shift("lsh", (*Int).Lsh, z, x, n) }

// Rsh sets z to x>>n and returns z.
func (c *Context) Rsh(z, x *Int, n uint) *Int { return c.shift("rsh", (*Int).Rsh, z, x, n) }
