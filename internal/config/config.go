package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App     App
	HTTP    HTTP
	Probe   Probe
	Metrics Metrics
	Model   Model
	Log     Log
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"insurance-predict"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type Probe struct {
	Enabled       bool   `env:"PROBE_ENABLED" envDefault:"true"`
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
}

type Metrics struct {
	Enabled       bool   `env:"METRICS_ENABLED" envDefault:"true"`
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
