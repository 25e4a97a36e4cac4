package detector

// Format identifies how latency is recorded in a capture.
type Format string

const (
	// FormatExplicit captures carry precomputed durations in latency events.
	FormatExplicit Format = "explicit"

	// FormatDelta captures require pairing trigger and completion events by
	// timestamp.
	FormatDelta Format = "delta"
)

// FormatInfo describes a capture format for diagnostics output.
type FormatInfo struct {
	Format      Format
	Name        string
	Description string
}

// KnownFormats returns the supported capture formats.
func KnownFormats() []FormatInfo {
	return []FormatInfo{
		{
			Format:      FormatExplicit,
			Name:        "Explicit latency",
			Description: "latency events carry data.operation and data.durationMs",
		},
		{
			Format:      FormatDelta,
			Name:        "Timestamp delta (legacy)",
			Description: "latency is the gap between a play/skip trigger and the next audio start",
		},
	}
}

// Describe returns the FormatInfo for f.
func (f Format) Describe() FormatInfo {
	for _, info := range KnownFormats() {
		if info.Format == f {
			return info
		}
	}
	return FormatInfo{Format: f, Name: string(f)}
}
