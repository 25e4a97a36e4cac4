package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
// An empty path yields the defaults with environment overrides applied.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadFromEnvironment loads the file named by DIAGCOMPARE_CONFIG, if set.
func LoadFromEnvironment(ctx context.Context) (*Config, error) {
	return Load(ctx, os.Getenv(EnvConfigFile))
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Labels.Baseline) == "" {
		return errors.New("labels.baseline: label is required")
	}
	if strings.TrimSpace(cfg.Labels.Candidate) == "" {
		return errors.New("labels.candidate: label is required")
	}

	if err := validateEvents(&cfg.Events); err != nil {
		return fmt.Errorf("events: %w", err)
	}

	switch cfg.OutputFormat() {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("output: invalid format %q (must be text or json)", cfg.Output)
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level: invalid level %q (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	return nil
}

func validateEvents(ev *EventNames) error {
	required := []struct {
		key   string
		value string
	}{
		{"latency", ev.Latency},
		{"play", ev.Play},
		{"skip_next", ev.SkipNext},
		{"skip_previous", ev.SkipPrevious},
		{"audio_started", ev.AudioStarted},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s is required", r.key)
		}
	}

	// The completion marker can't double as a trigger or the pairing is meaningless.
	if ev.AudioStarted == ev.Play || ev.IsSkip(ev.AudioStarted) {
		return fmt.Errorf("audio_started %q must differ from the trigger events", ev.AudioStarted)
	}

	return nil
}
