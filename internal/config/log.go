package config

type Log struct {
	Level         string `env:"LOG_LEVEL" envDefault:"info"`
	Format        string `env:"LOG_FORMAT" envDefault:"text"`
	NoColor       bool   `env:"LOG_NO_COLOR" envDefault:"false"`
	MaskSensitive bool   `env:"LOG_MASK_SENSITIVE" envDefault:"true"`
	FieldMaxLen   int    `env:"LOG_FIELD_MAX_LEN" envDefault:"4096"`
}
