package modules

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"insurance_predict/pkg/logx"
)

// Warmup runs a one-off startup task. A failure is logged and does not stop
// the group, the task owner decides how later calls surface it.
type Warmup struct {
	Name string
	Task func(context.Context) error
}

func (w Warmup) Run(ctx context.Context, g *errgroup.Group) {
	g.Go(func() error {
		if err := w.Task(ctx); err != nil {
			logger(ctx).Error("warmup failed", slog.String("task", w.Name), logx.Error(err))
			return nil
		}

		logger(ctx).Info("warmup finished", slog.String("task", w.Name))

		return nil
	})
}
