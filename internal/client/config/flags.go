package config

import (
	"flag"
	"os"
	"time"

	"github.com/Sakee8848/property-management-ai/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base address of the backend API (default from Config)
//	-m bool     route all traffic through the simulated backend
//	-t int      live request timeout in seconds
//
// os.Args is filtered to only the flags handled here, so the JSON stage's
// -c/-config flags do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base address of the backend API")
	fs.BoolVar(&cfg.UseSimulatedBackend, "m", cfg.UseSimulatedBackend, "serve all requests from the simulated backend")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "live request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
}
