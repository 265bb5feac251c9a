package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"fwrec/pkg/layout"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [layout-file]",
		Short: "Validate a layout file",
		Long: `Validate a field layout file without reading any data. When the layout
file is omitted, the path in the ` + layout.EnvDefaultPath + ` environment
variable is used.

Checks:
  - YAML syntax
  - At least one field
  - Every field has a name and a position
  - Positions are a single column or a half-open start/end span`,
		Args: cobra.MaximumNArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	layoutPath := layout.DefaultPath()
	if len(args) == 1 {
		layoutPath = args[0]
	}
	if layoutPath == "" {
		return fmt.Errorf("no layout file given and %s is not set", layout.EnvDefaultPath)
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n", layoutPath)

	lay, err := layout.Load(layoutPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nLayout valid!\n")
	fmt.Fprintf(out, "  Fields: %d\n", len(lay))

	fmt.Fprintf(out, "\nFields:\n")
	for i, spec := range lay {
		fmt.Fprintf(out, "  %d. %s\n", i+1, spec.Name)
	}

	return nil
}
