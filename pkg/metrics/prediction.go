package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "insurance"

// PredictionCollector counts submitted predictions by outcome.
type PredictionCollector struct {
	predictions *prometheus.CounterVec
	errors      *prometheus.CounterVec
	duration    prometheus.Histogram
}

func NewPredictionCollector(registerer prometheus.Registerer) *PredictionCollector {
	c := &PredictionCollector{
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Predictions served, by label.",
		}, []string{"label"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prediction_errors_total",
			Help:      "Failed predictions, by error kind.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prediction_duration_seconds",
			Help:      "Time spent encoding and scoring one customer record.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}

	registerer.MustRegister(c.predictions, c.errors, c.duration)

	return c
}

func (c *PredictionCollector) ObservePrediction(label string, elapsed time.Duration) {
	c.predictions.WithLabelValues(label).Inc()
	c.duration.Observe(elapsed.Seconds())
}

func (c *PredictionCollector) ObserveError(kind string) {
	c.errors.WithLabelValues(kind).Inc()
}
