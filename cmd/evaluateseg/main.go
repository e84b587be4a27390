// Command evaluateseg compares a segmentation label volume against a
// ground-truth label volume, both read from TIFF files, and writes the
// four spec §4.5 metrics (Rand split/merge, VOI split/merge) to stdout
// (spec §6 "Evaluation CLI").
package main

import (
	"fmt"
	"os"

	"github.com/voxelgraph/waterz/cmd/evaluateseg/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
