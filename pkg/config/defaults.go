package config

import "os"

// Default values for configuration.
const (
	DefaultBaselineLabel  = "P0"
	DefaultCandidateLabel = "P6"
	DefaultOutput         = string(OutputText)
	DefaultLogLevel       = "warn"

	DefaultLatencyEvent      = "playback.latency"
	DefaultPlayEvent         = "playback.play"
	DefaultSkipNextEvent     = "playback.skip_next"
	DefaultSkipPreviousEvent = "playback.skip_previous"
	DefaultAudioStartedEvent = "playback.audio_started"
)

// Environment variable names.
const (
	EnvConfigFile = "DIAGCOMPARE_CONFIG"
	EnvOutput     = "DIAGCOMPARE_OUTPUT"
	EnvLogLevel   = "DIAGCOMPARE_LOG_LEVEL"
)

// DefaultEventNames returns the event identifiers written by the player's
// diagnostics logger.
func DefaultEventNames() EventNames {
	return EventNames{
		Latency:      DefaultLatencyEvent,
		Play:         DefaultPlayEvent,
		SkipNext:     DefaultSkipNextEvent,
		SkipPrevious: DefaultSkipPreviousEvent,
		AudioStarted: DefaultAudioStartedEvent,
	}
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Labels: LabelConfig{
			Baseline:  DefaultBaselineLabel,
			Candidate: DefaultCandidateLabel,
		},
		Events:   DefaultEventNames(),
		Output:   DefaultOutput,
		LogLevel: DefaultLogLevel,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if out := os.Getenv(EnvOutput); out != "" {
		c.Output = out
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
}
