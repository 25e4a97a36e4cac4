// Package output aggregates latency samples into a baseline/candidate
// comparison and renders it.
package output

import (
	"github.com/lunara-app/diagcompare/pkg/detector"
	"github.com/lunara-app/diagcompare/pkg/latency"
)

// Side is one capture's input to a report.
type Side struct {
	// Label names the capture in the report (e.g. P0).
	Label string

	// Path is the capture file.
	Path string

	// Events is the number of parsed records.
	Events int

	// Format is the extraction strategy that produced Samples.
	Format detector.Format

	// Markers is the number of explicit latency events in the capture and
	// FirstMarker the line of the first one, 0 if none.
	Markers     int
	FirstMarker int

	// Samples holds the extracted durations.
	Samples latency.Samples
}

// Report is the complete comparison output.
type Report struct {
	// Baseline and Candidate describe the two captures.
	Baseline  Capture
	Candidate Capture

	// Rows has one entry per operation, sorted by name.
	Rows []Row
}

// Capture describes one side of the comparison.
type Capture struct {
	Label       string
	Path        string
	Events      int
	Format      detector.Format
	FormatName  string
	Markers     int
	FirstMarker int
}

// Row compares one operation across both captures. Averages are nil when
// that side has no samples; Delta is nil unless both averages exist.
type Row struct {
	Operation        string
	BaselineAvg      *float64
	CandidateAvg     *float64
	Delta            *float64
	BaselineSamples  int
	CandidateSamples int
}

// NewReport builds the comparison of two captures. Operations are the
// sorted union of both sample sets.
func NewReport(baseline, candidate Side) *Report {
	report := &Report{
		Baseline:  captureOf(baseline),
		Candidate: captureOf(candidate),
		Rows:      make([]Row, 0),
	}

	for _, op := range operations(baseline.Samples, candidate.Samples) {
		b := baseline.Samples[op]
		c := candidate.Samples[op]

		row := Row{
			Operation:        op,
			BaselineAvg:      mean(b),
			CandidateAvg:     mean(c),
			BaselineSamples:  len(b),
			CandidateSamples: len(c),
		}
		if row.BaselineAvg != nil && row.CandidateAvg != nil {
			d := *row.CandidateAvg - *row.BaselineAvg
			row.Delta = &d
		}

		report.Rows = append(report.Rows, row)
	}

	return report
}

// HasData returns true if either capture produced a sample.
func (r *Report) HasData() bool {
	return len(r.Rows) > 0
}

func captureOf(s Side) Capture {
	return Capture{
		Label:       s.Label,
		Path:        s.Path,
		Events:      s.Events,
		Format:      s.Format,
		FormatName:  s.Format.Describe().Name,
		Markers:     s.Markers,
		FirstMarker: s.FirstMarker,
	}
}

// operations returns the sorted union of operation names.
func operations(a, b latency.Samples) []string {
	union := make(latency.Samples, len(a)+len(b))
	for op := range a {
		union[op] = nil
	}
	for op := range b {
		union[op] = nil
	}
	return union.Operations()
}

func mean(values []int64) *float64 {
	if len(values) == 0 {
		return nil
	}
	// Summed as float64 so large samples cannot wrap.
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	avg := sum / float64(len(values))
	return &avg
}
