package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by parseEnv.
const (
	envBaseURL        = "API_BASE_URL"
	envUseMock        = "USE_MOCK"
	envRequestTimeout = "REQUEST_TIMEOUT"
)

// parseEnv overlays cfg with values from the environment. A local .env file
// is loaded first when present; real environment variables win over it
// (godotenv.Load never overrides existing keys). Unset variables leave the
// current values alone; malformed values are ignored rather than fatal.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := strings.TrimSpace(os.Getenv(envBaseURL)); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(envUseMock)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.UseSimulatedBackend = b
		}
	}
	if v := strings.TrimSpace(os.Getenv(envRequestTimeout)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
