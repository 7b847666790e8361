package config

import (
	"os"
	"time"
)

// Config carries runtime options for termistat.
type Config struct {
	Interval time.Duration
	BarWidth int
	Wireless bool
}

func Default() Config {
	return Config{
		Interval: time.Second,
		BarWidth: 40,
		Wireless: true,
	}
}

// FromEnv applies environment overrides on top of cfg.
func FromEnv(cfg Config) Config {
	if v := os.Getenv("TERMISTAT_INTERVAL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Interval = parsed
		} else if parsed, err2 := time.ParseDuration(v + "s"); err2 == nil {
			cfg.Interval = parsed
		}
	}
	if v := os.Getenv("TERMISTAT_WIRELESS"); v == "0" {
		cfg.Wireless = false
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	if cfg.BarWidth <= 0 {
		cfg.BarWidth = 40
	}
	return cfg
}
