package modules

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"insurance_predict/pkg/probe"
)

// ProbeServer serves /healthz and /ready. Ready nil means always ready.
type ProbeServer struct {
	Disabled      bool
	Name          string
	Version       string
	ListenAddress string
	Ready         probe.ReadinessFunc
}

func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) {
	if p.Disabled {
		logger(ctx).Info("probe server disabled")
		return
	}

	probeServer := probe.NewServer(
		p.ListenAddress,
		probe.Options{
			Name:    p.Name,
			Version: p.Version,
		},
		p.Ready,
	)

	g.Go(func() error {
		logger(ctx).Info("probe server started", slog.String("address", p.ListenAddress))

		if err := probeServer.Run(ctx); err != nil {
			return fmt.Errorf("probeServer.Run: %w", err)
		}

		return nil
	})
}
