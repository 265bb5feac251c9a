package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"fwrec/pkg/fixedwidth"
	"fwrec/pkg/layout"
	"fwrec/pkg/output"
)

// BatchOptions holds command-line options for the batch command.
type BatchOptions struct {
	Output      string
	BatchSize   int
	RawEncoding bool
	Quiet       bool
	Progress    bool
}

// NewBatchCommand creates the batch command.
func NewBatchCommand() *cobra.Command {
	opts := &BatchOptions{}

	cmd := &cobra.Command{
		Use:   "batch [layout-file] <data-file>",
		Short: "Extract records from a headered fixed-width file in batches",
		Long: `Read a fixed-width data file in fixed-size batches of lines. When the
layout file is omitted, the path in the ` + layout.EnvDefaultPath + `
environment variable is used.

The first line of the file is always discarded as a header row, even if it
contains data; use scan for headerless files. Batch size counts raw lines
read from the file (blank lines included), not emitted records.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVar(&opts.BatchSize, "batch-size", fixedwidth.DefaultBatchSize, "Lines per batch")
	cmd.Flags().BoolVar(&opts.RawEncoding, "raw-encoding", false, "Disable UTF-8 repair; positions index bytes")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress per-record output")
	cmd.Flags().BoolVar(&opts.Progress, "progress", false, "Report each completed batch on stderr")

	return cmd
}

func runBatch(cmd *cobra.Command, args []string, opts *BatchOptions) error {
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

	streamOpts := []fixedwidth.Option{
		fixedwidth.WithBatchSize(opts.BatchSize),
	}
	if opts.RawEncoding {
		streamOpts = append(streamOpts, fixedwidth.WithRawEncoding())
	}
	if opts.Progress {
		errOut := cmd.ErrOrStderr()
		streamOpts = append(streamOpts, fixedwidth.WithBatchHook(func(batch int) {
			fmt.Fprintf(errOut, "batch %d done\n", batch)
		}))
	}

	err = fixedwidth.StreamBatches(ctx, dataPath, lay, formatter.Write, streamOpts...)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", dataPath, err)
	}

	return formatter.Close()
}
