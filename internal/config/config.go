package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// DefaultJWTSecret is only good enough for a demo instance running on the
// sample data.
const DefaultJWTSecret = "change-me"

var ErrDefaultSecret = errors.New("JWT secret must be set when sample data is off")

type Config struct {
	Address       string        `env:"RUN_ADDRESS"    envDefault:"localhost:8080"`
	LogLvl        string        `env:"LOG_LVL"        envDefault:"info"`
	JWTSecret     string        `env:"JWT_SECRET"     envDefault:"change-me"`
	SeedData      bool          `env:"SEED_DATA"      envDefault:"true"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`
	SweepWorkers  int           `env:"SWEEP_WORKERS"  envDefault:"4"`
}

// New reads the configuration from a .env file (when present), then the
// environment, then command line flags; later sources win.
func New() (*Config, error) {
	cfg := &Config{}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("can't load .env: %w", err)
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("can't parse environment: %w", err)
	}

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.StringVar(&cfg.JWTSecret, "k", cfg.JWTSecret, "secret used to sign auth tokens")
	flag.BoolVar(&cfg.SeedData, "s", cfg.SeedData, "load sample data on start")
	flag.DurationVar(&cfg.SweepInterval, "i", cfg.SweepInterval, "interval between finished event sweeps")
	flag.IntVar(&cfg.SweepWorkers, "w", cfg.SweepWorkers, "number of event sweep workers")
	flag.Parse()

	if cfg.SweepWorkers < 1 {
		cfg.SweepWorkers = 1
	}
	if !cfg.SeedData && cfg.JWTSecret == DefaultJWTSecret {
		return nil, ErrDefaultSecret
	}

	return cfg, nil
}
