package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	APIVersion      string
	ShutdownTimeout time.Duration
	SeedOnStart     bool
	SeedCatalogSize int
	SeedRandom      int64
	LogLevel        slog.Level
}

const (
	defaultRunAddress      = ":8080"
	defaultAPIVersion      = "v1"
	defaultShutdownTimeout = 10 * time.Second
	defaultSeedCatalogSize = 100
	defaultSeedRandom      = 1
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		APIVersion:      getString(lookup, "API_VERSION", defaultAPIVersion),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		SeedOnStart:     getBool(lookup, "SEED_ON_START", true),
		SeedCatalogSize: getInt(lookup, "SEED_CATALOG_SIZE", defaultSeedCatalogSize),
		SeedRandom:      int64(getInt(lookup, "SEED_RANDOM", defaultSeedRandom)),
	}

	fs := flag.NewFlagSet("photocatalog", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		logLevelStr        = getString(lookup, "LOG_LEVEL", "info")
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.APIVersion, "api-version", cfg.APIVersion, "Version prefix of API routes")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.BoolVar(&cfg.SeedOnStart, "seed", cfg.SeedOnStart, "Load sample data into empty tables on start")
	fs.IntVar(&cfg.SeedCatalogSize, "seed-catalog-size", cfg.SeedCatalogSize, "Number of sample catalog entries")
	fs.Int64Var(&cfg.SeedRandom, "seed-random", cfg.SeedRandom, "Random source seed for sample data")
	fs.StringVar(&logLevelStr, "log-level", logLevelStr, "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	cfg.APIVersion = strings.Trim(cfg.APIVersion, "/")
	if cfg.APIVersion == "" {
		cfg.APIVersion = defaultAPIVersion
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.SeedCatalogSize <= 0 {
		cfg.SeedCatalogSize = defaultSeedCatalogSize
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
