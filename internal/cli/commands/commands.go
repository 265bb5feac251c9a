package commands

import (
	"fmt"

	"fwrec/pkg/layout"
)

// splitLayoutArgs resolves the layout and data file paths for the scan and
// batch commands. With a single argument it is the data file, and the
// layout path falls back to the FWREC_LAYOUT environment variable.
func splitLayoutArgs(args []string) (layoutPath, dataPath string, err error) {
	if len(args) == 2 {
		return args[0], args[1], nil
	}
	layoutPath = layout.DefaultPath()
	if layoutPath == "" {
		return "", "", fmt.Errorf("no layout file given and %s is not set", layout.EnvDefaultPath)
	}
	return layoutPath, args[0], nil
}
