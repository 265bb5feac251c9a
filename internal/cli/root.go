// Package cli provides the command-line interface for fwrec.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fwrec/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Usage or runtime error
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fwrec",
		Short: "Extract structured records from fixed-width text files",
		Long: `fwrec reads fixed-width text files, where fields occupy known column
positions on each line, and emits one structured record per non-blank line.

Field layouts are YAML files naming each field and its column position:

  fields:
    - name: first
      start: 0
      end: 5        # half-open span, columns 0..4
    - name: flag
      column: 12    # single column

Files ending in .zst are decompressed transparently.

Exit codes:
  0 - Success
  2 - Invalid layout, unreadable file, or other runtime error`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewScanCommand())
	rootCmd.AddCommand(commands.NewBatchCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
