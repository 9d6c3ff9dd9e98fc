package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/weldlink/internal/linkdirective"
	"github.com/specialistvlad/weldlink/internal/toolkit"
)

// DefaultProfile is used when no profile is selected.
const DefaultProfile = "cuda"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProfileName  string
	ProfilePaths []string // extra .hcl files or directories

	ProjectRoot string
	Target      string // empty means the host triple
	Format      linkdirective.Format

	LogFormat string
	LogLevel  string

	// Env is consulted for the profile's toolkit variable.
	Env toolkit.Environment
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProfileName == "" {
		cfg.ProfileName = DefaultProfile
	}
	if cfg.Format == "" {
		cfg.Format = linkdirective.FormatCargo
	}
	if _, err := linkdirective.ParseFormat(string(cfg.Format)); err != nil {
		return nil, err
	}
	if cfg.Target != "" {
		if _, err := linkdirective.ParseTriple(cfg.Target); err != nil {
			return nil, err
		}
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "info"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.Env == nil {
		cfg.Env = toolkit.OSEnvironment{}
	}
	return &cfg, nil
}
