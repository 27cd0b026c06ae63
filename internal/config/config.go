package config

import (
	"os"
	"runtime"
	"strconv"
)

// Config holds runtime configuration, loaded from environment variables.
type Config struct {
	// Workers bounds how many files are decoded at once.
	Workers int
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		Workers: envPositiveInt("WAVPEAKS_WORKERS", runtime.GOMAXPROCS(0)),
	}
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envPositiveInt(key string, fallback int) int {
	if n := envInt(key, fallback); n > 0 {
		return n
	}
	return fallback
}
