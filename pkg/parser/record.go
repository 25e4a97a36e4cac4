package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/valyala/fastjson"
)

var parserPool fastjson.ParserPool

var errNotObject = errors.New("top-level value is not an object")

// ParseLine parses a single capture line. It never fails: lines that are
// blank or are not JSON objects are reported through LineResult.Status.
func ParseLine(line string) LineResult {
	line = strings.TrimSpace(line)
	if line == "" {
		return LineResult{Status: StatusBlank}
	}

	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.Parse(line)
	if err != nil {
		return LineResult{Status: StatusMalformed, Err: err}
	}
	if v.Type() != fastjson.TypeObject {
		return LineResult{Status: StatusMalformed, Err: errNotObject}
	}

	return LineResult{Status: StatusParsed, Record: recordFromValue(v)}
}

// recordFromValue copies the recognized keys out of v. The value is only
// valid until its parser is reused, so nothing may retain it. A key that
// appears more than once takes its last value.
func recordFromValue(v *fastjson.Value) *Record {
	r := &Record{}

	v.GetObject().Visit(func(key []byte, f *fastjson.Value) {
		switch string(key) {
		case "event":
			r.event = stringValue(f)
		case "playbackSessionId":
			r.playbackSessionID = stringValue(f)
		case "sessionId":
			r.sessionID = stringValue(f)
		case "timestamp":
			r.timestamp, r.hasTimestamp = timestampField(f)
		case "data":
			r.operation, r.hasOperation = "", false
			r.durationMs, r.hasDuration = 0, false
			if f.Type() == fastjson.TypeObject {
				dataFields(r, f)
			}
		}
	})

	return r
}

func dataFields(r *Record, data *fastjson.Value) {
	data.GetObject().Visit(func(key []byte, f *fastjson.Value) {
		switch string(key) {
		case "operation":
			r.operation, r.hasOperation = operationField(f)
		case "durationMs":
			r.durationMs, r.hasDuration = durationField(f)
		}
	})
}

// operationField accepts a string or a JSON number, which is kept as its
// literal text.
func operationField(f *fastjson.Value) (string, bool) {
	switch f.Type() {
	case fastjson.TypeString:
		return string(f.GetStringBytes()), true
	case fastjson.TypeNumber:
		return f.String(), true
	default:
		return "", false
	}
}

func stringValue(f *fastjson.Value) string {
	if f.Type() != fastjson.TypeString {
		return ""
	}
	return string(f.GetStringBytes())
}

// timestampField accepts a JSON number or a numeric string.
func timestampField(f *fastjson.Value) (float64, bool) {
	if f == nil {
		return 0, false
	}

	var ts float64
	switch f.Type() {
	case fastjson.TypeNumber:
		n, err := f.Float64()
		if err != nil {
			return 0, false
		}
		ts = n
	case fastjson.TypeString:
		n, err := ParseTimestamp(string(f.GetStringBytes()))
		if err != nil {
			return 0, false
		}
		ts = n
	default:
		return 0, false
	}

	if math.IsNaN(ts) || math.IsInf(ts, 0) {
		return 0, false
	}
	return ts, true
}

// ParseTimestamp parses a numeric timestamp string in seconds.
func ParseTimestamp(s string) (float64, error) {
	ts, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return ts, nil
}

// maxDuration is 2^63; floats at or beyond it do not fit in an int64.
const maxDuration = float64(1 << 63)

// durationField accepts a JSON number (truncated toward zero) or an
// integer string. Values outside the int64 range are rejected.
func durationField(f *fastjson.Value) (int64, bool) {
	if f == nil {
		return 0, false
	}

	switch f.Type() {
	case fastjson.TypeNumber:
		if n, err := f.Int64(); err == nil {
			return n, true
		}
		n, err := f.Float64()
		if err != nil || math.IsNaN(n) || n >= maxDuration || n < -maxDuration {
			return 0, false
		}
		return int64(n), true
	case fastjson.TypeString:
		n, err := strconv.ParseInt(strings.TrimSpace(string(f.GetStringBytes())), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
