package latency

import (
	"context"

	"github.com/lunara-app/diagcompare/pkg/detector"
	"github.com/lunara-app/diagcompare/pkg/parser"
)

// Extractor turns a capture's records into latency samples.
// Each capture format (explicit, delta) implements this interface.
type Extractor interface {
	// Format returns the capture format this extractor handles.
	Format() detector.Format

	// Extract makes a single pass over records in order. It does not
	// modify the records and keeps no state between calls.
	Extract(ctx context.Context, records []*parser.Record) (Samples, error)
}
