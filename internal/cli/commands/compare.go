package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lunara-app/diagcompare/internal/logging"
	"github.com/lunara-app/diagcompare/pkg/config"
	"github.com/lunara-app/diagcompare/pkg/detector"
	"github.com/lunara-app/diagcompare/pkg/latency"
	"github.com/lunara-app/diagcompare/pkg/output"
	"github.com/lunara-app/diagcompare/pkg/parser"
	"github.com/lunara-app/diagcompare/pkg/session"
)

// ErrUsage marks an invocation with the wrong arguments.
var ErrUsage = errors.New("usage")

// UsageLine returns the one-line usage message for the named binary.
func UsageLine(name string) string {
	return fmt.Sprintf("Usage: %s <baseline.jsonl> <candidate.jsonl>", name)
}

// NewCompareCommand creates the compare command.
func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diagcompare <baseline.jsonl> <candidate.jsonl>",
		Short: "Compare playback latency between two diagnostics captures",
		Long: `Compare playback latency between a baseline and a candidate diagnostics capture.

Each capture is a JSON-lines file (optionally gzip or zstd compressed).
Captures containing playback.latency events are read as explicit
durations; older captures are measured from play/skip to audio start.

Capture formats:
` + formatsHelp() + `
Configuration:
  DIAGCOMPARE_CONFIG     YAML file with labels, event names, output, log_level
  DIAGCOMPARE_OUTPUT     Output format override (text|json)
  DIAGCOMPARE_LOG_LEVEL  Log level override (debug|info|warn|error)

Exit codes:
  0 - Comparison printed
  1 - Wrong number of arguments
  2 - Configuration or runtime error`,
		Args:          exactTwoArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args)
		},
	}

	cmd.SetVersionTemplate(versionTemplate())
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	return cmd
}

// formatsHelp lists the capture formats, one indented line each.
func formatsHelp() string {
	var b strings.Builder
	for _, info := range detector.KnownFormats() {
		fmt.Fprintf(&b, "  %-26s %s\n", info.Name, info.Description)
	}
	return b.String()
}

func exactTwoArgs(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: expected 2 arguments, got %d", ErrUsage, len(args))
	}
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadFromEnvironment(ctx)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logging.Init(cfg.OutputFormat() == config.OutputJSON, logging.ParseLevel(cfg.LogLevel))

	formatter, err := output.NewFormatter(cfg.OutputFormat())
	if err != nil {
		return err
	}

	// Both captures are fully read before anything is printed.
	baseline, err := parser.ReadFile(ctx, args[0])
	if err != nil {
		return fmt.Errorf("reading baseline: %w", err)
	}
	candidate, err := parser.ReadFile(ctx, args[1])
	if err != nil {
		return fmt.Errorf("reading candidate: %w", err)
	}

	baseSide, err := extractSide(ctx, cfg, cfg.Labels.Baseline, baseline)
	if err != nil {
		return err
	}
	candSide, err := extractSide(ctx, cfg, cfg.Labels.Candidate, candidate)
	if err != nil {
		return err
	}

	report := output.NewReport(baseSide, candSide)
	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}

func extractSide(ctx context.Context, cfg *config.Config, label string, c *parser.Capture) (output.Side, error) {
	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		slog.Debug("capture sessions", "label", label, "sessions", session.Group(c.Records).Len())
	}

	result, err := latency.Extract(ctx, cfg.Events, c.Records)
	if err != nil {
		return output.Side{}, fmt.Errorf("%s: %w", c.Path, err)
	}

	return output.Side{
		Label:       label,
		Path:        c.Path,
		Events:      len(c.Records),
		Format:      result.Format,
		Markers:     result.Detection.MarkerCount,
		FirstMarker: result.Detection.FirstMarker,
		Samples:     result.Samples,
	}, nil
}
