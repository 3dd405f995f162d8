package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port           int
	DBPath         string
	CategoryConfig string
	Debug          bool
}

// loadConfig reads FISCAL_* environment variables as defaults and lets
// command-line flags override them.
func loadConfig(args []string) (Config, error) {
	port, err := intEnv("FISCAL_PORT", 8080)
	if err != nil {
		return Config{}, err
	}
	debug, err := boolEnv("FISCAL_DEBUG", false)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	fs := flag.NewFlagSet("fiscal-server", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", port, "HTTP server port")
	fs.StringVar(&cfg.DBPath, "db", envOr("FISCAL_DB_PATH", "fiscal.db"), "Path to SQLite database")
	fs.StringVar(&cfg.CategoryConfig, "categories", envOr("FISCAL_CATEGORY_CONFIG", ""), "Path to a JSON or YAML keyword table file")
	fs.BoolVar(&cfg.Debug, "debug", debug, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	return cfg, nil
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
