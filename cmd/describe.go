package cmd

import (
	"io"

	"github.com/KaramelBytes/gamestats/internal/analysis"
	"github.com/KaramelBytes/gamestats/internal/games"
	"github.com/KaramelBytes/gamestats/internal/stats"
	"github.com/spf13/cobra"
)

var (
	descRatedOnly  bool
	descOutlierThr float64
)

var describeCmd = &cobra.Command{
	Use:   "describe [file]",
	Short: "Print descriptive statistics for every numeric column",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := currentConfig()
		path := c.Input
		if len(args) == 1 {
			path = args[0]
		}
		out := cmd.OutOrStdout()
		recs, err := loadRecords(path, out)
		if err != nil {
			return err
		}
		if descRatedOnly {
			recs = analysis.Filter(recs, analysis.RatedAbove(c.MinRating))
		}
		sums := analysis.Describe(recs, games.Metrics, descOutlierThr)
		_, err = io.WriteString(out, analysis.FormatSummaries(sums))
		return err
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().BoolVar(&descRatedOnly, "rated", false, "only include games rated above the configured min_rating")
	describeCmd.Flags().Float64Var(&descOutlierThr, "outlier-threshold", stats.DefaultOutlierThreshold, "robust |z| threshold for outliers (MAD-based)")
}
