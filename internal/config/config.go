package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the input and output locations of a report run.
// Defaults match the file names the report has always used.
type Config struct {
	UsersFile     string `envconfig:"USERS_FILE" default:"users.json"`
	CompaniesFile string `envconfig:"COMPANIES_FILE" default:"companies.json"`
	OutputFile    string `envconfig:"OUTPUT_FILE" default:"output.txt"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
}

// Prefix namespaces every variable, e.g. REPORT_USERS_FILE.
const Prefix = "REPORT"

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		UsersFile:     "users.json",
		CompaniesFile: "companies.json",
		OutputFile:    "output.txt",
		LogFormat:     "text",
		LogLevel:      "warn",
	}
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewLogger returns a slog.Logger writing to w in the configured format.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if cfg != nil {
		if l, err := parseLevel(cfg.LogLevel); err == nil {
			level = l
		}
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg != nil && cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid %s_LOG_LEVEL %q: %w", Prefix, s, err)
	}
	return level, nil
}
