// Package parser provides capture file reading and best-effort record parsing.
package parser

// UnknownSession is the session id of records carrying neither id key.
const UnknownSession = "unknown"

// UnknownOperation is the operation label of explicit records without one.
const UnknownOperation = "unknown"

// Record is one parsed diagnostics line. Fields are extracted once at parse
// time; a Record is never modified afterwards.
type Record struct {
	// Source is the file path this record came from.
	Source string

	// LineNum is the 1-based line number in the source file.
	LineNum int

	event             string
	timestamp         float64
	hasTimestamp      bool
	playbackSessionID string
	sessionID         string
	operation         string
	hasOperation      bool
	durationMs        int64
	hasDuration       bool
}

// Event returns the event identifier, or "" when absent or not a string.
func (r *Record) Event() string {
	return r.event
}

// Timestamp returns the record timestamp in seconds. ok is false when the
// field is absent, null, non-numeric or not finite.
func (r *Record) Timestamp() (ts float64, ok bool) {
	return r.timestamp, r.hasTimestamp
}

// SessionID returns playbackSessionId, falling back to sessionId, then
// UnknownSession.
func (r *Record) SessionID() string {
	if r.playbackSessionID != "" {
		return r.playbackSessionID
	}
	if r.sessionID != "" {
		return r.sessionID
	}
	return UnknownSession
}

// Operation returns data.operation, or UnknownOperation when absent.
func (r *Record) Operation() string {
	if !r.hasOperation {
		return UnknownOperation
	}
	return r.operation
}

// DurationMs returns data.durationMs truncated toward zero. ok is false
// when the field is absent or null.
func (r *Record) DurationMs() (ms int64, ok bool) {
	return r.durationMs, r.hasDuration
}

// LineStatus classifies the outcome of parsing one line.
type LineStatus int

const (
	// StatusParsed means the line produced a Record.
	StatusParsed LineStatus = iota
	// StatusBlank means the line was empty or whitespace only.
	StatusBlank
	// StatusMalformed means the line was not a JSON object.
	StatusMalformed
)

// String returns the status name.
func (s LineStatus) String() string {
	switch s {
	case StatusParsed:
		return "parsed"
	case StatusBlank:
		return "blank"
	case StatusMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// LineResult is the outcome of parsing a single line.
// Record is non-nil only when Status is StatusParsed.
type LineResult struct {
	Status LineStatus
	Record *Record
	Err    error
}

// Stats counts line outcomes for a source.
type Stats struct {
	Parsed    int
	Blank     int
	Malformed int
}

// Lines returns the total number of lines seen.
func (s Stats) Lines() int {
	return s.Parsed + s.Blank + s.Malformed
}

func (s *Stats) add(status LineStatus) {
	switch status {
	case StatusParsed:
		s.Parsed++
	case StatusBlank:
		s.Blank++
	case StatusMalformed:
		s.Malformed++
	}
}

// Capture is a fully read capture file.
type Capture struct {
	// Path is the file the records were read from.
	Path string

	// Records holds the parsed records in file order.
	Records []*Record

	// Stats counts parsed, blank and malformed lines.
	Stats Stats
}
