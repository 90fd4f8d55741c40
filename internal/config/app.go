package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// App holds settings that come from the environment rather than the
// command line.
type App struct {
	LogLevel    string `env:"MINES_LOG_LEVEL" envDefault:"warn"`
	LogFile     string `env:"MINES_LOG_FILE"`
	Seed        uint64 `env:"MINES_SEED"`
	Development bool   `env:"DEVELOPMENT"`
}

// Load reads an optional .env file from the working directory and then
// the process environment. Variables already set take precedence over
// the file.
func Load() (App, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return App{}, fmt.Errorf("unable to load .env: %w", err)
	}

	var cfg App
	if err := env.Parse(&cfg); err != nil {
		return App{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c App) Fields() logrus.Fields {
	return map[string]any{
		"log_level":   c.LogLevel,
		"log_file":    c.LogFile,
		"seed":        c.Seed,
		"development": c.Development,
	}
}
