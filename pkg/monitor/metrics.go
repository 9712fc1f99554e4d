package monitor

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes engine counters to Prometheus. All observe methods
// are safe on a nil receiver so the Monitor can report unconditionally.
type Metrics struct {
	registry *prometheus.Registry

	ticks            prometheus.Counter
	ticksSkipped     prometheus.Counter
	detectorFailures *prometheus.CounterVec
	transitions      *prometheus.CounterVec
	activeViolations prometheus.Gauge
	severityLevel    prometheus.Gauge
	tickDuration     prometheus.Histogram
}

// NewMetrics creates and registers all engine metrics on a private
// registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "proctor_ticks_total",
			Help: "Classification ticks executed",
		}),
		ticksSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "proctor_ticks_skipped_total",
			Help: "Ticks skipped because the detection source was not ready",
		}),
		detectorFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "proctor_detector_failures_total",
			Help: "Detector calls that failed and degraded to empty results",
		}, []string{"detector"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "proctor_violations_total",
			Help: "Violation activations by kind (false-to-true edges)",
		}, []string{"kind"}),
		activeViolations: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "proctor_active_violations",
			Help: "Number of currently active violation kinds",
		}),
		severityLevel: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "proctor_severity_level",
			Help: "Current severity as a number: 0 Normal to 4 Critical",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "proctor_tick_duration_seconds",
			Help:    "Wall time of one classification tick",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		}),
	}

	m.registry.MustRegister(
		m.ticks,
		m.ticksSkipped,
		m.detectorFailures,
		m.transitions,
		m.activeViolations,
		m.severityLevel,
		m.tickDuration,
	)

	return m
}

// Handler returns an HTTP handler serving the metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveTick records one completed tick.
func (m *Metrics) ObserveTick(d time.Duration) {
	if m == nil {
		return
	}
	m.ticks.Inc()
	m.tickDuration.Observe(d.Seconds())
}

// ObserveSkip records a tick skipped for source unreadiness.
func (m *Metrics) ObserveSkip() {
	if m == nil {
		return
	}
	m.ticksSkipped.Inc()
}

// ObserveDetectorFailure records a degraded detector call.
func (m *Metrics) ObserveDetectorFailure(detector string) {
	if m == nil {
		return
	}
	m.detectorFailures.WithLabelValues(detector).Inc()
}

// ObserveTransition records a violation edge.
func (m *Metrics) ObserveTransition(tr Transition) {
	if m == nil {
		return
	}
	if tr.Active {
		m.transitions.WithLabelValues(string(tr.Kind)).Inc()
	}
}

// ObserveSnapshot updates the state gauges from a tick snapshot.
func (m *Metrics) ObserveSnapshot(s Snapshot) {
	if m == nil {
		return
	}
	active := 0
	for _, v := range s.Active {
		if v {
			active++
		}
	}
	m.activeViolations.Set(float64(active))
	m.severityLevel.Set(float64(s.Severity.Level()))
}
