package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lunara-app/diagcompare/pkg/capture"
	"github.com/lunara-app/diagcompare/pkg/config"
)

const baselineCapture = `{"event":"playback.play","timestamp":1.0,"sessionId":"s1"}
{"event":"playback.audio_started","timestamp":1.25,"sessionId":"s1"}
garbage

{"event":"playback.skip_next","timestamp":2.0,"sessionId":"s1"}
{"event":"playback.play","timestamp":2.1,"sessionId":"s1"}
{"event":"playback.audio_started","timestamp":2.3,"sessionId":"s1"}
`

const candidateCapture = `{"event":"playback.latency","data":{"operation":"play_to_audio","durationMs":180}}
{"event":"playback.latency","data":{"operation":"play_to_audio","durationMs":201}}
{"event":"playback.play","timestamp":5.0}
{"event":"playback.latency","data":{"operation":"seek","durationMs":42}}
{"event":"playback.latency","data":{"operation":"seek"}}
`

const wantReport = "P0: 5 events\n" +
	"P6: 5 events\n" +
	"\n" +
	"Operation               P0 avg ms    P6 avg ms        Delta\n" +
	"-----------------------------------------------------------\n" +
	"play_to_audio                 250          190          -60\n" +
	"seek                          N/A           42          N/A\n" +
	"skip_to_audio                 300          N/A          N/A\n" +
	"\n" +
	"play_to_audio: P0 samples=1, P6 samples=2\n" +
	"seek: P0 samples=0, P6 samples=1\n" +
	"skip_to_audio: P0 samples=1, P6 samples=0\n"

func TestRun_Compare(t *testing.T) {
	isolateEnv(t)
	base := writeFile(t, "p0.jsonl", baselineCapture)
	cand := writeFile(t, "p6.jsonl", candidateCapture)

	code, stdout, stderr := run(t, base, cand)
	if code != ExitOK {
		t.Fatalf("Run() = %d, want %d (stderr: %s)", code, ExitOK, stderr)
	}
	if stdout != wantReport {
		t.Errorf("stdout mismatch\ngot:\n%s\nwant:\n%s", stdout, wantReport)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
}

func TestRun_Idempotent(t *testing.T) {
	isolateEnv(t)
	base := writeFile(t, "p0.jsonl", baselineCapture)
	cand := writeFile(t, "p6.jsonl", candidateCapture)

	_, first, _ := run(t, base, cand)
	_, second, _ := run(t, base, cand)
	if first != second {
		t.Error("Output differs between runs on the same files")
	}
}

func TestRun_WrongArgumentCount(t *testing.T) {
	isolateEnv(t)
	base := writeFile(t, "p0.jsonl", baselineCapture)

	tests := []struct {
		name string
		args []string
	}{
		{"none", nil},
		{"one", []string{base}},
		{"three", []string{base, base, base}},
		{"unknown flag", []string{"--bogus", base, base}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, _ := run(t, tt.args...)
			if code != ExitUsage {
				t.Errorf("Run() = %d, want %d", code, ExitUsage)
			}
			want := "Usage: diagcompare <baseline.jsonl> <candidate.jsonl>\n"
			if stdout != want {
				t.Errorf("stdout = %q, want %q", stdout, want)
			}
		})
	}
}

func TestRun_MissingFile(t *testing.T) {
	isolateEnv(t)
	base := writeFile(t, "p0.jsonl", baselineCapture)
	missing := filepath.Join(t.TempDir(), "missing.jsonl")

	code, stdout, stderr := run(t, base, missing)
	if code != ExitRuntime {
		t.Errorf("Run() = %d, want %d", code, ExitRuntime)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want nothing before both files are read", stdout)
	}
	if !strings.HasPrefix(stderr, "Error: ") || !strings.Contains(stderr, "missing.jsonl") {
		t.Errorf("stderr = %q, want error naming the file", stderr)
	}
}

func TestRun_NoData(t *testing.T) {
	isolateEnv(t)
	base := writeFile(t, "p0.jsonl", "{\"event\":\"app.launch\",\"timestamp\":1}\n")
	cand := writeFile(t, "p6.jsonl", "")

	code, stdout, _ := run(t, base, cand)
	if code != ExitOK {
		t.Fatalf("Run() = %d, want %d", code, ExitOK)
	}
	want := "P0: 1 events\nP6: 0 events\n\nNo latency data found in either file.\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRun_JSONOutputAndLabels(t *testing.T) {
	isolateEnv(t)
	cfgPath := writeFile(t, "diagcompare.yaml", "labels:\n  baseline: before\n  candidate: after\n")
	t.Setenv(config.EnvConfigFile, cfgPath)
	t.Setenv(config.EnvOutput, "json")

	base := writeFile(t, "p0.jsonl", baselineCapture)
	cand := writeFile(t, "p6.jsonl", candidateCapture)

	code, stdout, stderr := run(t, base, cand)
	if code != ExitOK {
		t.Fatalf("Run() = %d, want %d (stderr: %s)", code, ExitOK, stderr)
	}

	var report struct {
		Baseline struct {
			Label   string
			Events  int
			Format  string
			Markers int
		}
		Candidate struct {
			Label       string
			Format      string
			FormatName  string
			Markers     int
			FirstMarker int
		}
		Rows []struct {
			Operation   string
			BaselineAvg *float64
		}
	}
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, stdout)
	}
	if report.Baseline.Label != "before" || report.Candidate.Label != "after" {
		t.Errorf("labels = %q/%q, want before/after", report.Baseline.Label, report.Candidate.Label)
	}
	if report.Baseline.Format != "delta" || report.Candidate.Format != "explicit" {
		t.Errorf("formats = %q/%q, want delta/explicit", report.Baseline.Format, report.Candidate.Format)
	}
	if report.Candidate.FormatName != "Explicit latency" {
		t.Errorf("candidate FormatName = %q, want %q", report.Candidate.FormatName, "Explicit latency")
	}
	if report.Baseline.Markers != 0 || report.Candidate.Markers != 4 || report.Candidate.FirstMarker != 1 {
		t.Errorf("markers = %d/%d first=%d, want 0/4 first=1",
			report.Baseline.Markers, report.Candidate.Markers, report.Candidate.FirstMarker)
	}
	if len(report.Rows) != 3 || report.Rows[0].BaselineAvg == nil || *report.Rows[0].BaselineAvg != 250 {
		t.Errorf("rows = %+v", report.Rows)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	isolateEnv(t)
	t.Setenv(config.EnvOutput, "xml")

	base := writeFile(t, "p0.jsonl", baselineCapture)
	code, _, stderr := run(t, base, base)
	if code != ExitRuntime {
		t.Errorf("Run() = %d, want %d", code, ExitRuntime)
	}
	if !strings.Contains(stderr, "loading config") {
		t.Errorf("stderr = %q, want config error", stderr)
	}
}

func TestRun_GeneratedCaptures(t *testing.T) {
	isolateEnv(t)
	events := config.DefaultEventNames()
	dir := t.TempDir()
	base := filepath.Join(dir, "p0.jsonl.gz")
	cand := filepath.Join(dir, "p6.jsonl.zst")

	if err := capture.WriteFile(base, capture.CompressionGzip, func(w *capture.Writer) error {
		_, err := capture.NewGenerator(1, events).Legacy(w, 25)
		return err
	}); err != nil {
		t.Fatal(err)
	}
	if err := capture.WriteFile(cand, capture.CompressionZstd, func(w *capture.Writer) error {
		_, err := capture.NewGenerator(2, events).Explicit(w, 25)
		return err
	}); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := run(t, base, cand)
	if code != ExitOK {
		t.Fatalf("Run() = %d, want %d (stderr: %s)", code, ExitOK, stderr)
	}
	for _, want := range []string{"Operation", "play_to_audio: P0 samples=", "skip_to_audio: P0 samples="} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestRun_Version(t *testing.T) {
	isolateEnv(t)
	code, stdout, _ := run(t, "--version")
	if code != ExitOK {
		t.Errorf("Run() = %d, want %d", code, ExitOK)
	}
	if !strings.HasPrefix(stdout, "diagcompare ") {
		t.Errorf("stdout = %q, want version line", stdout)
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	if cmd.Name() != "diagcompare" {
		t.Errorf("Name() = %q, want %q", cmd.Name(), "diagcompare")
	}
	if !strings.Contains(cmd.Long, "Exit codes") {
		t.Error("Missing exit codes in Long")
	}
	for _, name := range []string{"Explicit latency", "Timestamp delta (legacy)"} {
		if !strings.Contains(cmd.Long, name) {
			t.Errorf("Long missing capture format %q", name)
		}
	}
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// isolateEnv clears configuration variables a developer may have set.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvConfigFile, "")
	t.Setenv(config.EnvOutput, "")
	t.Setenv(config.EnvLogLevel, "")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}
