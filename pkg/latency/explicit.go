package latency

import (
	"context"

	"github.com/lunara-app/diagcompare/pkg/config"
	"github.com/lunara-app/diagcompare/pkg/detector"
	"github.com/lunara-app/diagcompare/pkg/parser"
)

// ExplicitExtractor reads precomputed durations from latency events.
type ExplicitExtractor struct {
	events config.EventNames
}

// NewExplicitExtractor creates an extractor for explicit-format captures.
func NewExplicitExtractor(events config.EventNames) *ExplicitExtractor {
	return &ExplicitExtractor{events: events}
}

// Format returns FormatExplicit.
func (e *ExplicitExtractor) Format() detector.Format {
	return detector.FormatExplicit
}

// Extract collects data.durationMs of every latency event under its
// data.operation. Events without a duration are ignored.
func (e *ExplicitExtractor) Extract(ctx context.Context, records []*parser.Record) (Samples, error) {
	samples := make(Samples)

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if rec.Event() != e.events.Latency {
			continue
		}

		ms, ok := rec.DurationMs()
		if !ok {
			continue
		}
		samples.Add(rec.Operation(), ms)
	}

	return samples, nil
}
