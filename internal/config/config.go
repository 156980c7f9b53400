// Package config holds the runtime settings shared by the dashboard and the
// report command.
package config

import (
	"os"
	"time"
)

// Freshness windows for the two input files. The query log churns
// constantly; leases change on DHCP timescales.
const (
	QuerylogTTL = 5 * time.Minute
	LeasesTTL   = time.Hour
)

// Config is the resolved runtime configuration.
type Config struct {
	QuerylogPath string
	LeasesPath   string
	LogLevel     string
	LogFile      string
	ReportDir    string
}

// Default returns the configuration before flags are applied, with
// environment variable fallbacks.
func Default() Config {
	return Config{
		QuerylogPath: getEnv("DNSLENS_QUERYLOG", "data/querylog.json"),
		LeasesPath:   getEnv("DNSLENS_LEASES", "data/leases.json"),
		LogLevel:     getEnv("DNSLENS_LOG_LEVEL", "info"),
		LogFile:      os.Getenv("DNSLENS_LOG_FILE"),
		ReportDir:    getEnv("DNSLENS_REPORT_DIR", "."),
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
