// Package detector decides which latency extraction strategy fits a capture.
package detector

import (
	"github.com/lunara-app/diagcompare/pkg/config"
	"github.com/lunara-app/diagcompare/pkg/parser"
)

// DetectionResult holds the result of analyzing a capture.
type DetectionResult struct {
	Format       Format // Selected extraction strategy
	Records      int    // Number of records inspected
	MarkerCount  int    // Number of explicit latency events seen
	FirstMarker  int    // Line number of the first latency event, 0 if none
	MarkerSource string // File containing the first latency event
}

// Detector inspects records for the explicit latency marker.
type Detector struct {
	marker string
}

// Option configures the Detector.
type Option func(*Detector)

// WithEvents sets the event names used for detection.
func WithEvents(events config.EventNames) Option {
	return func(d *Detector) {
		if events.Latency != "" {
			d.marker = events.Latency
		}
	}
}

// New creates a new Detector looking for the default latency event.
func New(opts ...Option) *Detector {
	d := &Detector{marker: config.DefaultLatencyEvent}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Analyze selects FormatExplicit if any record is a latency event and
// FormatDelta otherwise, including for empty input, and counts the latency
// events it saw.
func (d *Detector) Analyze(records []*parser.Record) *DetectionResult {
	result := &DetectionResult{
		Format:  FormatDelta,
		Records: len(records),
	}

	for _, rec := range records {
		if rec.Event() != d.marker {
			continue
		}
		if result.MarkerCount == 0 {
			result.FirstMarker = rec.LineNum
			result.MarkerSource = rec.Source
		}
		result.MarkerCount++
	}

	if result.MarkerCount > 0 {
		result.Format = FormatExplicit
	}

	return result
}
