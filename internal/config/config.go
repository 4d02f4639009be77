package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the server's environment-driven settings.
type Config struct {
	Addr     string `env:"GAZETTE_ADDR" envDefault:""`
	Port     string `env:"GAZETTE_PORT" envDefault:"8080"`
	DataDir  string `env:"GAZETTE_DATA_DIR" envDefault:"data"`
	LogLevel string `env:"GAZETTE_LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment, after loading a .env file
// if one is present.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// ListenAddr is the host:port the HTTP server binds to.
func (c Config) ListenAddr() string {
	return c.Addr + ":" + c.Port
}
