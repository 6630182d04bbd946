package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/gamestats/internal/analysis"
	"github.com/KaramelBytes/gamestats/internal/utils"
	"github.com/spf13/cobra"
)

var (
	abFlags runFlags
	abQuiet bool
)

var analyzeBatchCmd = &cobra.Command{
	Use:   "analyze-batch <files...>",
	Short: "Analyze multiple games CSV files with progress output",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files := utils.ExpandInputs(args)
		if len(files) == 0 {
			return fmt.Errorf("no input files matched")
		}
		opt, err := abFlags.buildOptions(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		renderer := abFlags.renderer()

		total := len(files)
		for i, path := range files {
			base := filepath.Base(path)
			if !abQuiet {
				fmt.Fprintf(out, "[%d/%d] Processing %s...\n", i+1, total, base)
			}
			recs, err := loadRecords(path, out)
			if err != nil {
				return fmt.Errorf("%s: %w", base, err)
			}
			fileOpt := opt
			// Prefix charts so files with different names never overwrite each other
			fileOpt.ChartPrefix = strings.TrimSuffix(base, filepath.Ext(base)) + "_"
			if _, err := analysis.Run(cmd.Context(), recs, fileOpt, renderer, out); err != nil {
				return fmt.Errorf("%s: %w", base, err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeBatchCmd)
	abFlags.register(analyzeBatchCmd)
	analyzeBatchCmd.Flags().BoolVar(&abQuiet, "quiet", false, "suppress progress lines")
}
