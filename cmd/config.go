package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KaramelBytes/gamestats/internal/analysis"
	cfgpkg "github.com/KaramelBytes/gamestats/internal/config"
	"github.com/KaramelBytes/gamestats/internal/games"
	"github.com/KaramelBytes/gamestats/internal/logging"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set gamestats configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := currentConfig()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "input: %s\n", c.Input)
		fmt.Fprintf(out, "min_rating: %g\n", c.MinRating)
		fmt.Fprintf(out, "top_n: %d\n", c.TopN)
		fmt.Fprintf(out, "metric: %s\n", c.Metric)
		fmt.Fprintf(out, "categories: %s\n", strings.Join(c.Categories, ","))
		fmt.Fprintf(out, "correlate: %s\n", strings.Join(c.Correlate, ","))
		fmt.Fprintf(out, "charts: %s\n", strings.Join(c.Charts, ","))
		fmt.Fprintf(out, "output_dir: %s\n", c.OutputDir)
		fmt.Fprintf(out, "chart_width: %d\n", c.ChartWidth)
		fmt.Fprintf(out, "chart_height: %d\n", c.ChartHeight)
		if c.Workers > 0 {
			fmt.Fprintf(out, "workers: %d\n", c.Workers)
		}
		fmt.Fprintf(out, "log_level: %s\n", c.LogLevel)
		fmt.Fprintf(out, "log_format: %s\n", c.LogFormat)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		if err := applySetting(cfg, key, val); err != nil {
			return err
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

// applySetting validates val for key and stores it in c.
func applySetting(c *cfgpkg.Global, key, val string) error {
	switch key {
	case "input":
		c.Input = val
	case "output_dir":
		c.OutputDir = val
	case "min_rating":
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("invalid float for min_rating: %w", err)
		}
		c.MinRating = f
	case "top_n", "workers", "chart_width", "chart_height":
		i, err := strconv.Atoi(val)
		if err != nil || i < 0 {
			return fmt.Errorf("invalid int for %s: %v", key, val)
		}
		if i == 0 && (key == "chart_width" || key == "chart_height") {
			return fmt.Errorf("%s must be > 0", key)
		}
		switch key {
		case "top_n":
			c.TopN = i
		case "workers":
			c.Workers = i
		case "chart_width":
			c.ChartWidth = i
		case "chart_height":
			c.ChartHeight = i
		}
	case "metric":
		if _, err := games.ParseCountMetric(val); err != nil {
			return err
		}
		c.Metric = val
	case "categories":
		names := splitList(val)
		if _, err := games.ParseCategories(names); err != nil {
			return err
		}
		c.Categories = names
	case "correlate":
		names := splitList(val)
		for _, n := range names {
			if _, err := games.ParseMetric(n); err != nil {
				return err
			}
		}
		c.Correlate = names
	case "charts":
		pairs := splitList(val)
		for _, s := range pairs {
			if _, err := analysis.ParseChart(s); err != nil {
				return err
			}
		}
		c.Charts = pairs
	case "log_level":
		if _, err := logging.ParseLevel(val); err != nil {
			return err
		}
		c.LogLevel = val
	case "log_format":
		switch val {
		case "text", "json":
			c.LogFormat = val
		default:
			return fmt.Errorf("invalid log_format: %s (use text or json)", val)
		}
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
