// fwrec - Fixed-Width Record Extraction
//
// fwrec extracts structured records from fixed-width text files: each line
// is a flat character sequence where fields occupy known column positions.
package main

import (
	"os"

	"fwrec/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
