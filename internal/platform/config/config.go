package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config captures process-level settings for the people CLI.
type Config struct {
	LogLevel    string
	LogFormat   string
	Seed        bool
	SeedFile    string
	SeedWorkers int
	Prompt      string
}

const (
	defaultLogLevel    = "warn"
	defaultLogFormat   = "text"
	defaultSeedWorkers = 4
	defaultPrompt      = "people"
)

// FromEnv builds a Config from environment variables so main stays lean.
// Values in envFile (typically ".env") fill in anything the environment
// leaves unset; a missing file is not an error.
func FromEnv(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		LogLevel:    strings.ToLower(envOr("PEOPLE_LOG_LEVEL", defaultLogLevel)),
		LogFormat:   strings.ToLower(envOr("PEOPLE_LOG_FORMAT", defaultLogFormat)),
		SeedFile:    strings.TrimSpace(os.Getenv("PEOPLE_SEED_FILE")),
		Prompt:      envOr("PEOPLE_PROMPT", defaultPrompt),
		Seed:        true,
		SeedWorkers: defaultSeedWorkers,
	}

	if raw := strings.TrimSpace(os.Getenv("PEOPLE_SEED")); raw != "" {
		seed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("PEOPLE_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if raw := strings.TrimSpace(os.Getenv("PEOPLE_SEED_WORKERS")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("PEOPLE_SEED_WORKERS must be a positive integer, got %q", raw)
		}
		cfg.SeedWorkers = n
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("PEOPLE_LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
