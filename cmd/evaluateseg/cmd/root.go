package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd is also the only command evaluateseg exposes; unlike a
// multi-subcommand CLI there is nothing to dispatch to, so evaluation runs
// directly from the root RunE.
var rootCmd = &cobra.Command{
	Use:   "evaluateseg",
	Short: "Compare a segmentation against ground truth using VOI and Rand metrics",
	Long: `evaluateseg reads two TIFF-encoded label volumes, casts them to 64-bit
unsigned labels, and reports the Rand index and variation-of-information
agreement between them.

Example:
  evaluateseg -g groundtruth.tif -s segmentation.tif`,
	RunE:         runEvaluate,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default $HOME/.waterz.yaml)")

	rootCmd.Flags().StringP("groundtruth", "g", "", "ground truth TIFF label volume (required)")
	rootCmd.Flags().StringP("segmentation", "s", "", "segmentation TIFF label volume (required)")
	rootCmd.Flags().String("format", "plain", "output format: plain or json")
	_ = rootCmd.MarkFlagRequired("groundtruth")
	_ = rootCmd.MarkFlagRequired("segmentation")

	if err := viper.BindPFlag("format", rootCmd.Flags().Lookup("format")); err != nil {
		panic(fmt.Sprintf("evaluateseg: failed to bind flag: %v", err))
	}
	viper.SetDefault("format", "plain")
}

// initConfig loads $HOME/.waterz.yaml (or the file named by --config) if
// present, letting it supply defaults (currently just the output format)
// that explicit flags still override.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".waterz")
		viper.SetConfigType("yaml")
	}

	// A missing config file is not an error; explicit flags and the
	// SetDefault calls above cover every value evaluateseg reads.
	_ = viper.ReadInConfig()
}

// Execute runs the root command; main translates a non-nil error into a
// non-zero exit code (spec §6 "Exit codes").
func Execute() error {
	return rootCmd.Execute()
}
