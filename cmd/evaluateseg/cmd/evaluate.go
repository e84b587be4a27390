package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voxelgraph/waterz/metrics"
)

// runEvaluate is rootCmd's RunE: read both label volumes, compute metrics,
// print them in the configured format.
func runEvaluate(c *cobra.Command, _ []string) error {
	gtPath, err := c.Flags().GetString("groundtruth")
	if err != nil {
		return err
	}
	segPath, err := c.Flags().GetString("segmentation")
	if err != nil {
		return err
	}

	gt, err := readLabelVolume(gtPath)
	if err != nil {
		return fmt.Errorf("evaluateseg: reading ground truth %q: %w", gtPath, err)
	}
	seg, err := readLabelVolume(segPath)
	if err != nil {
		return fmt.Errorf("evaluateseg: reading segmentation %q: %w", segPath, err)
	}

	scores, err := metrics.Compute(seg, gt)
	if err != nil {
		return fmt.Errorf("evaluateseg: %w", err)
	}

	return printScores(c, scores)
}

func printScores(c *cobra.Command, scores metrics.Scores) error {
	out := c.OutOrStdout()
	if viper.GetString("format") == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(map[string]float64{
			"voi_split":  scores.VOISplit,
			"voi_merge":  scores.VOIMerge,
			"rand_split": scores.RandSplit,
			"rand_merge": scores.RandMerge,
		})
	}

	_, err := fmt.Fprintf(out,
		"voi_split: %v\nvoi_merge: %v\nrand_split: %v\nrand_merge: %v\n",
		scores.VOISplit, scores.VOIMerge, scores.RandSplit, scores.RandMerge)

	return err
}
