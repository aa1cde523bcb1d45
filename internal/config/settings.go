package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are process-wide options read from the environment. Command-line
// flags take precedence.
type Settings struct {
	DataDir  string `env:"REACTORSIM_DATA" envDefault:".reactorsim"`
	Store    string `env:"REACTORSIM_STORE" envDefault:"binary"`
	LogLevel string `env:"REACTORSIM_LOG_LEVEL" envDefault:"info"`
	Points   int    `env:"REACTORSIM_POINTS" envDefault:"100"`
	Workers  int    `env:"REACTORSIM_WORKERS" envDefault:"4"`
}

func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}
