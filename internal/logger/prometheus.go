package logger

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

var (
	counter     *prometheus.CounterVec //nolint:gochecknoglobals
	counterOnce sync.Once              //nolint:gochecknoglobals
)

// PrometheusHook counts log statements per level.
type PrometheusHook struct {
	counter *prometheus.CounterVec
}

// Run implements zerolog.Hook.
func (h PrometheusHook) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level != zerolog.NoLevel {
		h.counter.WithLabelValues(level.String()).Inc()
	}
}

// NewPrometheusHook returns a hook counting how often a specific log level was used.
// The counter is registered once, the service label of the first call sticks.
func NewPrometheusHook(service string) PrometheusHook {
	counterOnce.Do(func() {
		counter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "log_statements_total",
				Help:        "Number of log statements, differentiated by log level.",
				ConstLabels: prometheus.Labels{"service": service},
			},
			[]string{"level"},
		)
	})

	return PrometheusHook{counter: counter}
}
