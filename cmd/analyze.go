package cmd

import (
	"github.com/KaramelBytes/gamestats/internal/analysis"
	"github.com/spf13/cobra"
)

var anaFlags runFlags

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Correlate, rank and plot a combined games CSV",
	Long: `Analyze loads the dataset (default: the configured input), keeps games rated above
--min-rating, prints correlations and per-category rankings, and writes scatter plots.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := currentConfig().Input
		if len(args) == 1 {
			path = args[0]
		}
		opt, err := anaFlags.buildOptions(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		recs, err := loadRecords(path, out)
		if err != nil {
			return err
		}
		_, err = analysis.Run(cmd.Context(), recs, opt, anaFlags.renderer(), out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	anaFlags.register(analyzeCmd)
}
