package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port            string        `env:"PORT" envDefault:"4000"`
	FooterMessage   string        `env:"FOOTER_MESSAGE"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text"`
	ExportDir       string        `env:"EXPORT_DIR" envDefault:"public"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Metrics         MetricsConfig
}

// Load reads .env (when present) and then the process environment.
// Variables already set in the environment win over .env values.
func Load() (Config, error) {
	return LoadFiles(DotEnvFile)
}

// LoadFiles is Load with explicit dotenv paths; missing files are skipped.
func LoadFiles(paths ...string) (Config, error) {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("parse env: %s must be positive, got %s", envShutdown, cfg.ShutdownTimeout)
	}
	return cfg, nil
}
