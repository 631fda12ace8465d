package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"insurance_predict/internal/config"
	"insurance_predict/internal/domain/service/prediction"
	"insurance_predict/internal/infrastructure/model"
	"insurance_predict/internal/server"
	"insurance_predict/pkg/application/modules"
	"insurance_predict/pkg/contextx"
	"insurance_predict/pkg/logx"
	"insurance_predict/pkg/metrics"
	"insurance_predict/pkg/middlewarex"
)

const pageTitle = "Insurance Prediction App"

// Run собирает зависимости и блокируется до отмены ctx или падения
// одного из серверов.
func Run(ctx context.Context, cfg config.Config) error {
	log := contextx.LoggerFromContextOrDefault(ctx).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	ctx = contextx.WithLogger(ctx, log)

	// 1. Model
	format, err := model.ParseFormat(cfg.Model.Format)
	if err != nil {
		return fmt.Errorf("model.ParseFormat: %w", err)
	}

	artifact := model.Artifact{
		Format: format,
		Path:   cfg.Model.Path,
	}
	holder := model.NewHolder(artifact.Load)

	// 2. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	predictionService := prediction.NewService(holder).
		WithMetrics(metrics.NewPredictionCollector(registry))

	// 3. HTTP
	router := chi.NewRouter()
	router.Use(
		middleware.RealIP,
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(sensitiveDataMasker(cfg.Log), cfg.Log.FieldMaxLen),
		middlewarex.ResponseLogging(sensitiveDataMasker(cfg.Log), cfg.Log.FieldMaxLen),
	)

	server.NewServer(
		server.NewPredictionServer(predictionService),
		server.NewFormServer(predictionService, pageTitle),
	).RegisterRoutes(router)

	// 4. Modules
	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ListenAddress:     cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g)

	modules.ProbeServer{
		Disabled:      !cfg.Probe.Enabled,
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Ready:         holder.Loaded,
	}.Run(ctx, g)

	modules.MetricServer{
		Disabled:      !cfg.Metrics.Enabled,
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	if cfg.Model.Preload {
		modules.Warmup{
			Name: "model",
			Task: func(ctx context.Context) error {
				if _, err := holder.Get(ctx); err != nil {
					return fmt.Errorf("holder.Get: %w", err)
				}

				return nil
			},
		}.Run(ctx, g)
	}

	log.Info("application started",
		slog.String(logx.FieldModelPath, cfg.Model.Path),
		slog.String(logx.FieldModelFormat, string(format)),
	)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func sensitiveDataMasker(cfg config.Log) logx.SensitiveDataMaskerInterface {
	if !cfg.MaskSensitive {
		return logx.NewNopSensitiveDataMasker()
	}

	return logx.NewSensitiveDataMasker()
}
