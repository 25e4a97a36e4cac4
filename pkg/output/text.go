package output

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// NoDataMessage replaces the table when neither capture has samples.
const NoDataMessage = "No latency data found in either file."

// notAvailable is shown for missing averages and deltas.
const notAvailable = "N/A"

// TextFormatter formats reports as a fixed-width table.
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the event counts, the comparison table and the
// per-operation sample counts.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	base, cand := report.Baseline.Label, report.Candidate.Label

	fmt.Fprintf(w, "%s: %d events\n", base, report.Baseline.Events)
	fmt.Fprintf(w, "%s: %d events\n", cand, report.Candidate.Events)
	fmt.Fprintln(w)

	if !report.HasData() {
		_, err := fmt.Fprintln(w, NoDataMessage)
		return err
	}

	header := fmt.Sprintf("%-20s %12s %12s %12s", "Operation", base+" avg ms", cand+" avg ms", "Delta")
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", utf8.RuneCountInString(header)))

	for _, row := range report.Rows {
		fmt.Fprintf(w, "%-20s %12s %12s %12s\n",
			row.Operation,
			formatAvg(row.BaselineAvg),
			formatAvg(row.CandidateAvg),
			formatDelta(row.Delta))
	}

	fmt.Fprintln(w)
	for _, row := range report.Rows {
		fmt.Fprintf(w, "%s: %s samples=%d, %s samples=%d\n",
			row.Operation, base, row.BaselineSamples, cand, row.CandidateSamples)
	}

	return nil
}

func formatAvg(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.0f", *v)
}

func formatDelta(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%+.0f", *v)
}
