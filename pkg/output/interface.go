package output

import (
	"context"
	"fmt"
	"io"

	"github.com/lunara-app/diagcompare/pkg/config"
)

// Formatter renders comparison reports in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// NewFormatter returns the formatter for format.
func NewFormatter(format config.OutputFormat) (Formatter, error) {
	switch format {
	case config.OutputText:
		return NewTextFormatter(), nil
	case config.OutputJSON:
		return NewJSONFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", format)
	}
}
