package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvEndpoint = "WORDFINDER_ENDPOINT"
	EnvTimeout  = "WORDFINDER_TIMEOUT"
	EnvRows     = "WORDFINDER_ROWS"
	EnvColumns  = "WORDFINDER_COLUMNS"
)

// LoadDotEnv loads WORDFINDER_* variables from .env files. Missing files are
// ignored and variables already set in the environment win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overlays environment variables on s.
// WORDFINDER_TIMEOUT accepts a Go duration ("45s") or plain seconds ("45").
func (s *Settings) ApplyEnv() error {
	if v := os.Getenv(EnvEndpoint); v != "" {
		s.Endpoint = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		s.TimeoutSeconds = int(d / time.Second)
	}
	if v := os.Getenv(EnvRows); v != "" {
		s.DefaultRows = v
	}
	if v := os.Getenv(EnvColumns); v != "" {
		s.DefaultColumns = v
	}
	return nil
}

func parseTimeout(v string) (time.Duration, error) {
	if n, err := strconv.Atoi(v); err == nil {
		if n <= 0 {
			return 0, fmt.Errorf("must be positive, got %d", n)
		}
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d < time.Second {
		return 0, fmt.Errorf("must be at least 1s, got %s", d)
	}
	return d, nil
}

// Overrides are values set explicitly on the command line.
type Overrides struct {
	Endpoint string
	Timeout  time.Duration
	Rows     string
	Columns  string
}

// Apply overlays non-zero overrides on s.
func (s *Settings) Apply(o Overrides) {
	if o.Endpoint != "" {
		s.Endpoint = o.Endpoint
	}
	if o.Timeout > 0 {
		s.TimeoutSeconds = int((o.Timeout + time.Second - 1) / time.Second)
	}
	if o.Rows != "" {
		s.DefaultRows = o.Rows
	}
	if o.Columns != "" {
		s.DefaultColumns = o.Columns
	}
}

// Resolve loads settings with the full precedence chain:
// flags > environment (.env included) > config file > defaults.
func Resolve(path string, o Overrides) (*Settings, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}

	settings, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := settings.ApplyEnv(); err != nil {
		return nil, err
	}
	settings.Apply(o)
	return settings, nil
}
