// Package capture writes diagnostics captures in the shape produced by the
// player's diagnostics logger: one JSON object per line with timestamp,
// sessionId, optional playbackSessionId, event and data keys.
package capture

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/valyala/fastjson"
)

// Compression selects the stream encoding of a capture.
type Compression string

const (
	CompressionNone Compression = ""
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
)

// Writer appends diagnostics entries to a stream. It is not safe for
// concurrent use.
type Writer struct {
	out    io.Writer
	closer io.Closer

	sessionID         uuid.UUID
	playbackSessionID uuid.UUID

	arena fastjson.Arena
	buf   []byte
}

// Option configures a Writer.
type Option func(*Writer)

// WithSessionID fixes the app session id instead of generating one.
func WithSessionID(id uuid.UUID) Option {
	return func(w *Writer) {
		w.sessionID = id
	}
}

// NewWriter creates a Writer on out, compressing with c.
func NewWriter(out io.Writer, c Compression, opts ...Option) (*Writer, error) {
	w := &Writer{
		out:       out,
		sessionID: uuid.New(),
	}
	for _, opt := range opts {
		opt(w)
	}

	switch c {
	case CompressionNone:
	case CompressionGzip:
		zw := gzip.NewWriter(out)
		w.out, w.closer = zw, zw
	case CompressionZstd:
		zw, err := zstd.NewWriter(out)
		if err != nil {
			return nil, fmt.Errorf("creating zstd writer: %w", err)
		}
		w.out, w.closer = zw, zw
	default:
		return nil, fmt.Errorf("unknown compression %q", c)
	}

	return w, nil
}

// SessionID returns the app session id stamped on every entry.
func (w *Writer) SessionID() uuid.UUID {
	return w.sessionID
}

// StartPlaybackSession begins a playback session; subsequent entries carry
// its id until EndPlaybackSession.
func (w *Writer) StartPlaybackSession() uuid.UUID {
	w.playbackSessionID = uuid.New()
	return w.playbackSessionID
}

// EndPlaybackSession stops stamping entries with a playback session id.
func (w *Writer) EndPlaybackSession() {
	w.playbackSessionID = uuid.Nil
}

// Log writes a legacy entry with string data values.
func (w *Writer) Log(ts float64, event string, data map[string]string) error {
	obj := w.arena.NewObject()
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		obj.Set(k, w.arena.NewString(data[k]))
	}
	return w.write(ts, event, obj)
}

// LogLatency writes an explicit latency entry.
func (w *Writer) LogLatency(ts float64, event, operation string, durationMs int64) error {
	obj := w.arena.NewObject()
	obj.Set("durationMs", w.arena.NewNumberString(strconv.FormatInt(durationMs, 10)))
	obj.Set("operation", w.arena.NewString(operation))
	return w.write(ts, event, obj)
}

// WriteRaw writes line followed by a newline, for captures that need
// malformed content.
func (w *Writer) WriteRaw(line string) error {
	_, err := io.WriteString(w.out, line+"\n")
	return err
}

// Close flushes the compressor, if any. It does not close the underlying
// stream.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}

// write emits one entry with keys in sorted order.
func (w *Writer) write(ts float64, event string, data *fastjson.Value) error {
	entry := w.arena.NewObject()
	entry.Set("data", data)
	entry.Set("event", w.arena.NewString(event))
	if w.playbackSessionID != uuid.Nil {
		entry.Set("playbackSessionId", w.arena.NewString(w.playbackSessionID.String()))
	}
	entry.Set("sessionId", w.arena.NewString(w.sessionID.String()))
	entry.Set("timestamp", w.arena.NewNumberFloat64(ts))

	w.buf = entry.MarshalTo(w.buf[:0])
	w.buf = append(w.buf, '\n')
	w.arena.Reset()

	if _, err := w.out.Write(w.buf); err != nil {
		return fmt.Errorf("writing entry: %w", err)
	}
	return nil
}
