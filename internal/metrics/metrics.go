// Package metrics collects and exposes Prometheus metrics for spamguard.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the observability contract consumed by the service layer and
// the anti-spam gate.
type Recorder interface {
	RecordCheck(blocked bool)
	RecordStoreFailure()
	RecordBan()
	RecordUnban()
}

// Collector implements Recorder on top of Prometheus counters.
type Collector struct {
	checks        *prometheus.CounterVec
	storeFailures prometheus.Counter
	bans          prometheus.Counter
	unbans        prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "spamguard_checks_total",
			Help: "Anti-spam gate decisions by result.",
		}, []string{"result"}),
		storeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spamguard_store_failures_total",
			Help: "Banned-list store failures absorbed by the gate (fail-open).",
		}),
		bans: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spamguard_bans_total",
			Help: "Addresses added to the banned list.",
		}),
		unbans: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spamguard_unbans_total",
			Help: "Addresses removed from the banned list.",
		}),
	}

	reg.MustRegister(
		c.checks,
		c.storeFailures,
		c.bans,
		c.unbans,
	)

	return c
}

// RecordCheck records one gate decision.
func (c *Collector) RecordCheck(blocked bool) {
	result := "allowed"
	if blocked {
		result = "blocked"
	}
	c.checks.WithLabelValues(result).Inc()
}

// RecordStoreFailure records a store failure that triggered fail-open.
func (c *Collector) RecordStoreFailure() {
	c.storeFailures.Inc()
}

// RecordBan records one ban.
func (c *Collector) RecordBan() {
	c.bans.Inc()
}

// RecordUnban records one unban.
func (c *Collector) RecordUnban() {
	c.unbans.Inc()
}

// Handler returns the HTTP handler that serves the metrics endpoint for
// the given registry.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// Nop is a Recorder that discards everything. Used where metrics are
// disabled and in tests.
type Nop struct{}

func (Nop) RecordCheck(bool) {}

func (Nop) RecordStoreFailure() {}

func (Nop) RecordBan() {}

func (Nop) RecordUnban() {}
