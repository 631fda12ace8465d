package modules

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"insurance_predict/pkg/metrics"
)

// MetricServer exposes Gatherer on /metrics. A disabled server is skipped.
type MetricServer struct {
	Disabled      bool
	ListenAddress string
	Gatherer      prometheus.Gatherer
}

func (m MetricServer) Run(ctx context.Context, g *errgroup.Group) {
	if m.Disabled {
		logger(ctx).Info("metric server disabled")
		return
	}

	prometheusServer := metrics.NewPrometheusServer(
		m.ListenAddress,
		m.Gatherer,
	)

	g.Go(func() error {
		logger(ctx).Info("metric server started", slog.String("address", m.ListenAddress))

		if err := prometheusServer.Run(ctx); err != nil {
			return fmt.Errorf("prometheusServer.Run: %w", err)
		}

		return nil
	})
}
