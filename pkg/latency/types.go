// Package latency extracts per-operation latency samples from captures.
package latency

import (
	"sort"

	"github.com/lunara-app/diagcompare/pkg/detector"
)

// Operation labels produced by the delta extractor.
const (
	OperationPlayToAudio = "play_to_audio"
	OperationSkipToAudio = "skip_to_audio"
)

// Samples maps an operation name to its durations in milliseconds, in the
// order they were found.
type Samples map[string][]int64

// Add appends a duration to op.
func (s Samples) Add(op string, ms int64) {
	s[op] = append(s[op], ms)
}

// Count returns the number of samples for op.
func (s Samples) Count(op string) int {
	return len(s[op])
}

// Total returns the number of samples across all operations.
func (s Samples) Total() int {
	total := 0
	for _, v := range s {
		total += len(v)
	}
	return total
}

// Operations returns the operation names in ascending order.
func (s Samples) Operations() []string {
	ops := make([]string, 0, len(s))
	for op := range s {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// Result is the outcome of extracting one capture.
type Result struct {
	// Format is the strategy that was applied.
	Format detector.Format

	// Detection carries the marker statistics behind Format.
	Detection *detector.DetectionResult

	// Samples holds the extracted durations.
	Samples Samples
}
