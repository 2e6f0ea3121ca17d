// Package metrics exposes run, provider, cache and rate-limit measurements as
// Prometheus collectors on a private registry.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "supercomponents"

// Collector implements the observer interfaces of the limiter, the response
// cache, the guarded LLM adapter and the workflow.
type Collector struct {
	registry *prometheus.Registry

	admissions *prometheus.CounterVec
	cache      *prometheus.CounterVec
	requests   *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	runs       *prometheus.CounterVec
	runTime    prometheus.Histogram
	violations *prometheus.CounterVec
}

// New creates a Collector with its own registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		admissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ratelimit_admissions_total",
			Help:      "Rate limiter admission checks by result.",
		}, []string{"result"}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Response cache lookups by result.",
		}, []string{"result"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_requests_total",
			Help:      "AI provider requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "llm_request_duration_seconds",
			Help:      "AI provider request latency.",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
		}, []string{"provider"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Design system generation runs by outcome.",
		}, []string{"outcome"}),
		runTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "End-to-end generation time.",
			Buckets:   []float64{1, 5, 10, 20, 30, 45, 60, 90},
		}),
		violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contrast_violations_total",
			Help:      "Contrast violations found in generated tokens by severity.",
		}, []string{"severity"}),
	}
	c.registry.MustRegister(c.admissions, c.cache, c.requests, c.latency, c.runs, c.runTime, c.violations)
	return c
}

// Registry returns the registry holding every collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveAdmission records a rate limiter decision.
func (c *Collector) ObserveAdmission(admitted bool) {
	c.admissions.WithLabelValues(result(admitted, "admitted", "rejected")).Inc()
}

// ObserveCache records a cache lookup.
func (c *Collector) ObserveCache(hit bool) {
	c.cache.WithLabelValues(result(hit, "hit", "miss")).Inc()
}

// ObserveRequest records one provider call.
func (c *Collector) ObserveRequest(provider, outcome string, duration time.Duration) {
	c.requests.WithLabelValues(provider, outcome).Inc()
	c.latency.WithLabelValues(provider).Observe(duration.Seconds())
}

// ObserveRun records one workflow run.
func (c *Collector) ObserveRun(outcome string, duration time.Duration) {
	c.runs.WithLabelValues(outcome).Inc()
	c.runTime.Observe(duration.Seconds())
}

// ObserveViolations records contrast violations of one severity.
func (c *Collector) ObserveViolations(severity string, count int) {
	c.violations.WithLabelValues(severity).Add(float64(count))
}

// WriteTextfile writes the current metrics in the node-exporter textfile
// format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

func result(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}
