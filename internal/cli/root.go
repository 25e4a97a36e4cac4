// Package cli provides the command-line interface for diagcompare.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lunara-app/diagcompare/internal/cli/commands"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitUsage   = 1
	ExitRuntime = 2
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the command with args, writing the report to stdout and
// errors to stderr, and returns the exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}

	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, commands.ErrUsage) {
			_, _ = fmt.Fprintln(stdout, commands.UsageLine(rootCmd.Name()))
			return ExitUsage
		}
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitRuntime
	}
	return ExitOK
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	return commands.NewCompareCommand()
}
