package cmd

import (
	"fmt"
	"io"

	"github.com/KaramelBytes/gamestats/internal/analysis"
	cfgpkg "github.com/KaramelBytes/gamestats/internal/config"
	"github.com/KaramelBytes/gamestats/internal/games"
	"github.com/KaramelBytes/gamestats/internal/logging"
	"github.com/KaramelBytes/gamestats/internal/plot"
	"github.com/spf13/cobra"
)

// runFlags are shared by analyze and analyze-batch.
type runFlags struct {
	minRating  float64
	topN       int
	metric     string
	categories []string
	outputDir  string
	workers    int
	noCharts   bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.minRating, "min-rating", 0, "keep games with final_rating above this value (overrides config)")
	cmd.Flags().IntVar(&f.topN, "top-n", 10, "entries per ranking, 0 = all (overrides config)")
	cmd.Flags().StringVar(&f.metric, "metric", "", "count metric to rank and correlate: plays|reviews|playing|backlogs|wishlists")
	cmd.Flags().StringSliceVar(&f.categories, "categories", nil, "categorical fields to rank: developer,genre,platform")
	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", "", "directory for chart images (overrides config)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "max concurrent analysis tasks, 0 = unbounded (overrides config)")
	cmd.Flags().BoolVar(&f.noCharts, "no-charts", false, "skip rendering scatter plots")
}

// currentConfig returns the loaded config or defaults when loading was skipped.
func currentConfig() *cfgpkg.Global {
	if cfg == nil {
		return cfgpkg.Default()
	}
	return cfg
}

// buildOptions merges config values with any flags set on cmd.
func (f *runFlags) buildOptions(cmd *cobra.Command) (analysis.Options, error) {
	c := currentConfig()
	opt := analysis.DefaultOptions()
	fl := cmd.Flags()

	opt.MinRating = c.MinRating
	if fl.Changed("min-rating") {
		opt.MinRating = f.minRating
	}
	opt.TopN = c.TopN
	if fl.Changed("top-n") {
		if f.topN < 0 {
			return opt, fmt.Errorf("--top-n must be >= 0")
		}
		opt.TopN = f.topN
	}
	metric := c.Metric
	if f.metric != "" {
		metric = f.metric
	}
	m, err := games.ParseCountMetric(metric)
	if err != nil {
		return opt, err
	}
	opt.Metric = m

	names := c.Categories
	if len(f.categories) > 0 {
		names = f.categories
	}
	if opt.Categories, err = games.ParseCategories(names); err != nil {
		return opt, err
	}
	opt.CorrelateWith = opt.CorrelateWith[:0]
	for _, n := range c.Correlate {
		cm, err := games.ParseMetric(n)
		if err != nil {
			return opt, err
		}
		opt.CorrelateWith = append(opt.CorrelateWith, cm)
	}
	opt.Charts = opt.Charts[:0]
	for _, s := range c.Charts {
		ch, err := analysis.ParseChart(s)
		if err != nil {
			return opt, err
		}
		opt.Charts = append(opt.Charts, ch)
	}

	opt.OutputDir = c.OutputDir
	if f.outputDir != "" {
		opt.OutputDir = f.outputDir
	}
	if opt.OutputDir == "" {
		opt.OutputDir = "."
	}
	opt.Workers = c.Workers
	if fl.Changed("workers") {
		opt.Workers = f.workers
	}
	return opt, nil
}

func (f *runFlags) renderer() analysis.Renderer {
	if f.noCharts {
		return nil
	}
	c := currentConfig()
	return plot.NewRenderer(c.ChartWidth, c.ChartHeight)
}

// loadRecords loads path and prints the record count line.
func loadRecords(path string, w io.Writer) ([]games.Record, error) {
	logger := logging.New("loader").With("file", path)
	recs, st, err := games.LoadCSV(path, logger)
	if err != nil {
		return nil, err
	}
	if st.Skipped > 0 {
		logger.Warn("skipped malformed rows", "skipped", st.Skipped, "rows", st.Rows)
	}
	if _, err := fmt.Fprintf(w, "Loaded %d combined game records.\n", len(recs)); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	return recs, nil
}
