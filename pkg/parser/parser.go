package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// maxLineSize bounds a single capture line.
const maxLineSize = 16 * 1024 * 1024

// FileSource implements RecordSource for a single capture file.
type FileSource struct {
	path string

	file    *os.File
	body    io.ReadCloser
	scanner *bufio.Scanner
	lineNum int
	stats   Stats
	done    bool
}

// NewFileSource creates a RecordSource reading the capture at path.
// The file is opened on the first call to Next.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Next returns the next parsed record.
// Skips blank and malformed lines.
// Returns io.EOF when the file has been exhausted.
func (s *FileSource) Next(ctx context.Context) (*Record, error) {
	if s.done {
		return nil, io.EOF
	}

	if s.scanner == nil {
		if err := s.open(); err != nil {
			return nil, err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading %s: %w", s.path, err)
			}
			s.done = true
			if err := s.Close(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}

		s.lineNum++
		res := ParseLine(s.scanner.Text())
		s.stats.add(res.Status)

		switch res.Status {
		case StatusParsed:
			res.Record.Source = s.path
			res.Record.LineNum = s.lineNum
			return res.Record, nil
		case StatusMalformed:
			slog.Debug("skipping malformed line", "source", s.path, "line", s.lineNum, "error", res.Err)
		}
	}
}

// Stats returns the line counts seen so far.
func (s *FileSource) Stats() Stats {
	return s.stats
}

// Close releases resources.
func (s *FileSource) Close() error {
	var err error
	if s.body != nil {
		err = s.body.Close()
		s.body = nil
	}
	if s.file != nil {
		if cerr := s.file.Close(); cerr != nil && err == nil {
			err = cerr
		}
		s.file = nil
	}
	return err
}

func (s *FileSource) open() error {
	f, err := os.Open(s.path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("opening capture %s: %w", s.path, err)
	}

	body, err := decompress(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("opening capture %s: %w", s.path, err)
	}

	s.file = f
	s.body = body
	s.scanner = bufio.NewScanner(body)
	s.scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	s.lineNum = 0

	return nil
}

// ReadFile reads every record of the capture at path.
func ReadFile(ctx context.Context, path string) (*Capture, error) {
	source := NewFileSource(path)
	defer source.Close()

	records, err := ReadAll(ctx, source)
	if err != nil {
		return nil, err
	}

	stats := source.Stats()
	slog.Debug("read capture", "source", path,
		"parsed", stats.Parsed, "blank", stats.Blank, "malformed", stats.Malformed)

	return &Capture{Path: path, Records: records, Stats: stats}, nil
}

// ReadAll drains source into a slice.
func ReadAll(ctx context.Context, source RecordSource) ([]*Record, error) {
	records := make([]*Record, 0, 256)
	for {
		rec, err := source.Next(ctx)
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}
