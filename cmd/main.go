package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"insurance_predict/internal/application"
	"insurance_predict/internal/config"
	"insurance_predict/pkg/contextx"
	"insurance_predict/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logx.NewLogger(os.Stderr, slog.LevelInfo, "text", false).Error("config.Load", logx.Error(err))
		os.Exit(1)
	}

	level, err := logx.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}

	log := logx.NewLogger(os.Stdout, level, cfg.Log.Format, cfg.Log.NoColor)
	slog.SetDefault(log)

	if err != nil {
		log.Warn("unknown log level, using info", logx.Error(err))
	}

	if err := application.Run(contextx.WithLogger(ctx, log), cfg); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic // cancel is not needed after exit
	}

	log.Info("application stopped")
}
