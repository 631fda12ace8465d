package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"insurance_predict/pkg/metrics"
)

func TestPredictionCollector(t *testing.T) {
	rq := require.New(t)

	registry := prometheus.NewRegistry()
	collector := metrics.NewPredictionCollector(registry)

	collector.ObservePrediction("Interested", time.Millisecond)
	collector.ObservePrediction("Interested", time.Millisecond)
	collector.ObservePrediction("Not Interested", time.Millisecond)
	collector.ObserveError("encoding")

	count, err := testutil.GatherAndCount(registry,
		"insurance_predictions_total",
		"insurance_prediction_errors_total",
		"insurance_prediction_duration_seconds",
	)
	rq.NoError(err)
	rq.Equal(4, count)

	rq.Panics(func() { metrics.NewPredictionCollector(registry) })
}
