package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"insurance_predict/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("insurance-predict", cfg.App.Name)
	rq.Equal(":8080", cfg.HTTP.ListenAddress)
	rq.Equal(10*time.Second, cfg.HTTP.ShutdownTimeout)
	rq.Equal(":8081", cfg.Probe.ListenAddress)
	rq.Equal(":9090", cfg.Metrics.ListenAddress)
	rq.True(cfg.Metrics.Enabled)
	rq.True(cfg.Probe.Enabled)
	rq.Equal("best_lgbm_model.txt", cfg.Model.Path)
	rq.Equal("lightgbm", cfg.Model.Format)
	rq.True(cfg.Model.Preload)
	rq.Equal("info", cfg.Log.Level)
	rq.True(cfg.Log.MaskSensitive)
}

func TestLoadFromEnv(t *testing.T) {
	rq := require.New(t)

	t.Setenv("MODEL_PATH", "/models/insurance_gbdt.json")
	t.Setenv("MODEL_FORMAT", "ensemble")
	t.Setenv("MODEL_PRELOAD", "false")
	t.Setenv("HTTP_LISTEN_ADDRESS", ":18080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("/models/insurance_gbdt.json", cfg.Model.Path)
	rq.Equal("ensemble", cfg.Model.Format)
	rq.False(cfg.Model.Preload)
	rq.Equal(":18080", cfg.HTTP.ListenAddress)
	rq.Equal("debug", cfg.Log.Level)
	rq.False(cfg.Metrics.Enabled)
}
