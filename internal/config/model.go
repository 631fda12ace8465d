package config

type Model struct {
	Path   string `env:"MODEL_PATH,notEmpty" envDefault:"best_lgbm_model.txt"`
	Format string `env:"MODEL_FORMAT" envDefault:"lightgbm"`
	// Preload triggers the first use at startup so readiness reflects the
	// artifact state.
	Preload bool `env:"MODEL_PRELOAD" envDefault:"true"`
}
