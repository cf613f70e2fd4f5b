// Package metrics exposes venue counters to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bowcinema"

// Bang sources
const (
	SourceAudio  = "audio"
	SourceManual = "manual"
)

// Metrics holds the collectors of one process
type Metrics struct {
	bangs             *prometheus.CounterVec
	bangOutcomes      *prometheus.CounterVec
	captureDuration   prometheus.Histogram
	roundsStarted     prometheus.Counter
	sessionsCompleted prometheus.Counter
	threshold         prometheus.Gauge
	readErrors        prometheus.Gauge
}

// New creates the collectors and registers them on reg
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		bangs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bangs_total",
			Help:      "Bangs raised, by source.",
		}, []string{"source"}),
		bangOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bang_outcomes_total",
			Help:      "Processed bangs, by outcome.",
		}, []string{"outcome"}),
		captureDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "capture_duration_seconds",
			Help:      "Time from bang to recorded arrow, settle delays included.",
			Buckets:   []float64{0.5, 1, 2, 2.5, 3, 4, 6, 10},
		}),
		roundsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_started_total",
			Help:      "Rounds started.",
		}),
		sessionsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_completed_total",
			Help:      "Sessions that reached the complete state.",
		}),
		threshold: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "detector_threshold",
			Help:      "Current adaptive RMS threshold of the bang detector.",
		}),
		readErrors: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "detector_read_errors",
			Help:      "Audio block reads that failed since the detector was opened.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.bangs, m.bangOutcomes, m.captureDuration,
		m.roundsStarted, m.sessionsCompleted, m.threshold, m.readErrors,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Handler serves the registry in the Prometheus text format
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// Bang counts a raised bang
func (m *Metrics) Bang(source string) {
	m.bangs.WithLabelValues(source).Inc()
}

// BangOutcome counts a processed bang and, unless it was ignored, its duration
func (m *Metrics) BangOutcome(outcome string, d time.Duration) {
	m.bangOutcomes.WithLabelValues(outcome).Inc()
	if d > 0 {
		m.captureDuration.Observe(d.Seconds())
	}
}

// RoundStarted counts a started round
func (m *Metrics) RoundStarted() {
	m.roundsStarted.Inc()
}

// SessionCompleted counts a completed session
func (m *Metrics) SessionCompleted() {
	m.sessionsCompleted.Inc()
}

// Detector publishes the detector state
func (m *Metrics) Detector(threshold float64, readErrors int) {
	m.threshold.Set(threshold)
	m.readErrors.Set(float64(readErrors))
}
