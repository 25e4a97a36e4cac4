package output

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/lunara-app/diagcompare/pkg/config"
)

func TestNewJSONFormatter(t *testing.T) {
	f := NewJSONFormatter()
	if f.Name() != "json" {
		t.Errorf("Name() = %q, want %q", f.Name(), "json")
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter().Format(context.Background(), createTestReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	if decoded.Baseline.Label != "P0" || decoded.Candidate.Events != 7 {
		t.Errorf("Captures = %+v / %+v", decoded.Baseline, decoded.Candidate)
	}
	if len(decoded.Rows) != 3 {
		t.Fatalf("Rows = %d, want 3", len(decoded.Rows))
	}
	if decoded.Rows[1].BaselineAvg != nil {
		t.Error("seek BaselineAvg should encode as null")
	}
	if decoded.Rows[0].Delta == nil || *decoded.Rows[0].Delta != -50 {
		t.Errorf("play Delta = %v, want -50", decoded.Rows[0].Delta)
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format  config.OutputFormat
		want    string
		wantErr bool
	}{
		{config.OutputText, "text", false},
		{config.OutputJSON, "json", false},
		{config.OutputFormat("csv"), "", true},
	}

	for _, tt := range tests {
		f, err := NewFormatter(tt.format)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NewFormatter(%q) expected error", tt.format)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NewFormatter(%q) error = %v", tt.format, err)
		}
		if f.Name() != tt.want {
			t.Errorf("NewFormatter(%q).Name() = %q, want %q", tt.format, f.Name(), tt.want)
		}
	}
}
