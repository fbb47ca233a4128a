package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// HostConfig holds the few knobs mrpctl itself needs. The planning
// engine in pkg/mrp takes none of these; it reads only the
// PlanningParameters passed to mrp.Plan.
type HostConfig struct {
	Verbose        bool
	MaxConcurrency int
}

// Load reads an optional .env in the working directory, then layers
// environment variables over documented defaults.
func Load() (*HostConfig, error) {
	_ = godotenv.Load()

	return &HostConfig{
		Verbose:        getEnvBool("MRPCTL_VERBOSE", false),
		MaxConcurrency: getEnvInt("MRPCTL_MAX_CONCURRENCY", 4),
	}, nil
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}
