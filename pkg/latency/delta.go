package latency

import (
	"context"
	"math"

	"github.com/lunara-app/diagcompare/pkg/config"
	"github.com/lunara-app/diagcompare/pkg/detector"
	"github.com/lunara-app/diagcompare/pkg/parser"
)

// DeltaExtractor reconstructs latency for legacy captures by pairing a play
// or skip trigger with the next audio start.
//
// Only the most recent unmatched play and the most recent unmatched skip
// are remembered. A pending skip wins over a pending play, and answering a
// skip leaves the pending play in place. There is no age limit on a
// pending trigger and negative gaps are kept as is.
type DeltaExtractor struct {
	events config.EventNames
}

// NewDeltaExtractor creates an extractor for legacy captures.
func NewDeltaExtractor(events config.EventNames) *DeltaExtractor {
	return &DeltaExtractor{events: events}
}

// Format returns FormatDelta.
func (e *DeltaExtractor) Format() detector.Format {
	return detector.FormatDelta
}

// Extract pairs triggers with completions in file order. Records without a
// usable timestamp are skipped.
func (e *DeltaExtractor) Extract(ctx context.Context, records []*parser.Record) (Samples, error) {
	samples := make(Samples)

	var pendingPlay, pendingSkip *float64

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ts, ok := rec.Timestamp()
		if !ok {
			continue
		}

		name := rec.Event()
		switch {
		case name == e.events.Play:
			pendingPlay = &ts
		case e.events.IsSkip(name):
			pendingSkip = &ts
		case name == e.events.AudioStarted:
			switch {
			case pendingSkip != nil:
				addGap(samples, OperationSkipToAudio, *pendingSkip, ts)
				pendingSkip = nil
			case pendingPlay != nil:
				addGap(samples, OperationPlayToAudio, *pendingPlay, ts)
				pendingPlay = nil
			}
		}
	}

	return samples, nil
}

// maxGapMs is 2^63; gaps at or beyond it do not fit in an int64.
const maxGapMs = float64(1 << 63)

// addGap records the gap between two timestamps in seconds as truncated
// milliseconds. Both ends are scaled before subtracting so a 2.0 -> 2.3 gap
// is 300, not 299.99..., and the explicit conversions keep the compiler
// from fusing the multiply into the subtraction. Scaling after the
// subtraction gives 299 for that gap. Gaps outside the int64 range are
// dropped.
func addGap(samples Samples, op string, start, end float64) {
	ms := float64(end*1000) - float64(start*1000)
	if math.IsNaN(ms) || ms >= maxGapMs || ms < -maxGapMs {
		return
	}
	samples.Add(op, int64(ms))
}
