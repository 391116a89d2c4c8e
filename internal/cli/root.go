package cli

import (
	"github.com/mgpai22/sangam/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sangam",
	Short: "Merge per-speaker WebVTT subtitle tracks into one",
	Long: `Sangam merges WebVTT subtitle tracks recorded one-per-speaker into a
single track ordered by cue start time.

Every cue is tagged with the speaker of its source file using <v>
voice spans, so the combined track keeps who said what.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
