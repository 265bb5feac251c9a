package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"fwrec/pkg/fixedwidth"
	"fwrec/pkg/layout"
	"fwrec/pkg/output"
)

// ScanOptions holds command-line options for the scan command.
type ScanOptions struct {
	Output      string
	RawEncoding bool
	Quiet       bool
}

// NewScanCommand creates the scan command.
func NewScanCommand() *cobra.Command {
	opts := &ScanOptions{}

	cmd := &cobra.Command{
		Use:   "scan [layout-file] <data-file>",
		Short: "Extract records from a fixed-width file",
		Long: `Read a fixed-width data file and emit one record per non-blank line,
using the field layout from the given YAML layout file. When the layout
file is omitted, the path in the ` + layout.EnvDefaultPath + ` environment
variable is used.

Every line of the file is processed, in order. Lines are re-interpreted as
UTF-8 by default, silently dropping invalid byte sequences; use
--raw-encoding to pass bytes through untouched.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVar(&opts.RawEncoding, "raw-encoding", false, "Disable UTF-8 repair; positions index bytes")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress per-record output")

	return cmd
}

func runScan(cmd *cobra.Command, args []string, opts *ScanOptions) error {
	layoutPath, dataPath, err := splitLayoutArgs(args)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	lay, err := layout.Load(layoutPath)
	if err != nil {
		return fmt.Errorf("loading layout: %w", err)
	}

	formatter, err := output.New(opts.Output, output.Options{Quiet: opts.Quiet}, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	var streamOpts []fixedwidth.Option
	if opts.RawEncoding {
		streamOpts = append(streamOpts, fixedwidth.WithRawEncoding())
	}

	err = fixedwidth.Stream(ctx, dataPath, lay, formatter.Write, streamOpts...)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", dataPath, err)
	}

	return formatter.Close()
}
