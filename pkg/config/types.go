// Package config provides configuration loading and validation for diagcompare.
package config

// Config is the root configuration structure loaded from YAML.
type Config struct {
	Labels   LabelConfig `yaml:"labels"`
	Events   EventNames  `yaml:"events"`
	Output   string      `yaml:"output"`
	LogLevel string      `yaml:"log_level"`
}

// LabelConfig names the two captures in the report.
type LabelConfig struct {
	// Baseline is the label of the first capture (P0 by default).
	Baseline string `yaml:"baseline"`

	// Candidate is the label of the second capture (P6 by default).
	Candidate string `yaml:"candidate"`
}

// EventNames maps the diagnostics event identifiers used by the extractors.
type EventNames struct {
	// Latency marks a record carrying a precomputed duration.
	Latency string `yaml:"latency"`

	// Play is the trigger for play_to_audio samples.
	Play string `yaml:"play"`

	// SkipNext and SkipPrevious share the skip trigger slot.
	SkipNext     string `yaml:"skip_next"`
	SkipPrevious string `yaml:"skip_previous"`

	// AudioStarted is the completion marker closing a latency window.
	AudioStarted string `yaml:"audio_started"`
}

// IsSkip reports whether name is either skip trigger.
func (e EventNames) IsSkip(name string) bool {
	return name == e.SkipNext || name == e.SkipPrevious
}

// OutputFormat selects the report formatter.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// OutputFormat returns the output setting as an OutputFormat.
func (c *Config) OutputFormat() OutputFormat {
	return OutputFormat(c.Output)
}
