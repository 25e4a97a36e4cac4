package latency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lunara-app/diagcompare/pkg/config"
	"github.com/lunara-app/diagcompare/pkg/detector"
	"github.com/lunara-app/diagcompare/pkg/parser"
)

// NewExtractor returns the extractor for format.
func NewExtractor(format detector.Format, events config.EventNames) (Extractor, error) {
	switch format {
	case detector.FormatExplicit:
		return NewExplicitExtractor(events), nil
	case detector.FormatDelta:
		return NewDeltaExtractor(events), nil
	default:
		return nil, fmt.Errorf("unknown capture format: %s", format)
	}
}

// Extract detects the capture format of records and applies the matching
// extractor.
func Extract(ctx context.Context, events config.EventNames, records []*parser.Record) (*Result, error) {
	detection := detector.New(detector.WithEvents(events)).Analyze(records)
	format := detection.Format

	extractor, err := NewExtractor(format, events)
	if err != nil {
		return nil, err
	}

	samples, err := extractor.Extract(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("extracting %s latency: %w", format, err)
	}

	slog.Debug("extracted latency", "format", format,
		"records", detection.Records, "markers", detection.MarkerCount,
		"first_marker", detection.FirstMarker, "marker_source", detection.MarkerSource,
		"operations", len(samples), "samples", samples.Total())

	return &Result{Format: format, Detection: detection, Samples: samples}, nil
}
