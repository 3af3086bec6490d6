package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder receives one event per arithmetic operation evaluated through a
// Context. Implementations must be safe for concurrent use.
type Recorder interface {
	// RecordOp counts an operation evaluated in the given domain.
	RecordOp(op, domain string)
	// RecordFlag counts a condition flag raised by an operation.
	RecordFlag(op, flag string)
	// RecordError counts an operation that a Context turned into an error.
	RecordError(op, kind string)
}

// Nop is a Recorder that discards every event.
type Nop struct{}

func (Nop) RecordOp(string, string)    {}
func (Nop) RecordFlag(string, string)  {}
func (Nop) RecordError(string, string) {}

// Prometheus is a Recorder that exports its counters through a private
// Prometheus registry, so several instances never collide on registration.
type Prometheus struct {
	registry *prometheus.Registry
	ops      *prometheus.CounterVec
	flags    *prometheus.CounterVec
	errors   *prometheus.CounterVec
	handler  http.Handler
}

// NewPrometheus creates a Recorder whose counters are prefixed with
// namespace. An empty namespace selects "wideint".
func NewPrometheus(namespace string) *Prometheus {
	if namespace == "" {
		namespace = "wideint"
	}
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Arithmetic operations evaluated, by operation and result domain.",
		}, []string{"op", "domain"}),
		flags: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flags_total",
			Help:      "Condition flags raised, by operation and flag.",
		}, []string{"op", "flag"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Operations turned into errors by the context policy.",
		}, []string{"op", "kind"}),
	}
	p.registry.MustRegister(
		p.ops,
		p.flags,
		p.errors,
		collectors.NewGoCollector(),
	)
	p.handler = promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
	return p
}

func (p *Prometheus) RecordOp(op, domain string) {
	p.ops.WithLabelValues(op, domain).Inc()
}

func (p *Prometheus) RecordFlag(op, flag string) {
	p.flags.WithLabelValues(op, flag).Inc()
}

func (p *Prometheus) RecordError(op, kind string) {
	p.errors.WithLabelValues(op, kind).Inc()
}

// Registry returns the registry holding the counters, for callers that want
// to gather them or register it with their own exposition.
func (p *Prometheus) Registry() *prometheus.Registry { return p.registry }

// Handler returns an HTTP handler serving the counters in the Prometheus
// exposition format.
func (p *Prometheus) Handler() http.Handler { return p.handler }

// WritePrometheus writes the current counters to w.
func (p *Prometheus) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	p.handler.ServeHTTP(w, r)
}

var (
	_ Recorder = Nop{}
	_ Recorder = (*Prometheus)(nil)
)
