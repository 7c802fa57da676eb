package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Sakee8848/property-management-ai/internal/flagx"
)

// duration lets JSON specify timeouts either as strings like "30s" or as
// integer nanoseconds.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration: %v", v)
	}
}

// jsonConfig is a DTO used exclusively for JSON unmarshalling; values are
// copied into the runtime Config afterwards.
type jsonConfig struct {
	BaseURL             *string   `json:"base_url"`
	UseSimulatedBackend *bool     `json:"use_simulated_backend"`
	RequestTimeout      *duration `json:"request_timeout"`
}

// parseJSON overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. When no file is given the function is a no-op. Fields
// absent from the file keep their current values. Read or unmarshal errors
// panic; startup has nothing sensible to continue with.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != nil {
		cfg.BaseURL = *jc.BaseURL
	}
	if jc.UseSimulatedBackend != nil {
		cfg.UseSimulatedBackend = *jc.UseSimulatedBackend
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
