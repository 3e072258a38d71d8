// Package metrics records solver runs as Prometheus metrics on a private
// registry, exported through the node_exporter textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/volcanium/pressure"
)

// Recorder owns a registry and the solver metrics registered on it.
type Recorder struct {
	reg *prometheus.Registry

	solves   *prometheus.CounterVec
	expanded *prometheus.CounterVec
	duration *prometheus.HistogramVec
	released *prometheus.GaugeVec
}

// NewRecorder registers the solver metrics on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		reg: reg,
		solves: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "volcanium_solves_total",
				Help: "Total number of completed solves",
			},
			[]string{"part", "strategy"},
		),
		expanded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "volcanium_states_expanded_total",
				Help: "Search states expanded across all solves",
			},
			[]string{"part"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "volcanium_solve_duration_seconds",
				Help: "Wall time of a solve in seconds",
				// Sub-millisecond for the reference network up to minutes for dense inputs.
				Buckets: []float64{0.0005, 0.001, 0.01, 0.1, 0.5, 1, 5, 30, 120},
			},
			[]string{"part"},
		),
		released: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "volcanium_released",
				Help: "Pressure released by the most recent solve",
			},
			[]string{"part"},
		),
	}
}

// Observe records one finished solve.
func (r *Recorder) Observe(part string, res pressure.Result, elapsed time.Duration) {
	r.solves.WithLabelValues(part, res.Strategy.String()).Inc()
	r.expanded.WithLabelValues(part).Add(float64(res.Stats.Expanded))
	r.duration.WithLabelValues(part).Observe(elapsed.Seconds())
	r.released.WithLabelValues(part).Set(float64(res.Released))
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// WriteTextfile writes every metric to path in the text exposition format.
// The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
