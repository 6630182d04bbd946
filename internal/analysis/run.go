// Package analysis ranks categorical groupings of game records, correlates
// their metrics and prepares scatter plots for a Renderer.
package analysis

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/KaramelBytes/gamestats/internal/games"
	"github.com/KaramelBytes/gamestats/internal/logging"
	"github.com/KaramelBytes/gamestats/internal/stats"
)

// Predicate reports whether a record takes part in an analysis.
type Predicate func(games.Record) bool

// RatedAbove keeps records whose final rating is strictly greater than min.
func RatedAbove(min float64) Predicate {
	return func(r games.Record) bool { return r.FinalRating > min }
}

// Filter returns the records accepted by keep, in their original order.
func Filter(records []games.Record, keep Predicate) []games.Record {
	return lo.Filter(records, func(r games.Record, _ int) bool { return keep(r) })
}

// Column extracts metric m from every record as float64.
func Column(records []games.Record, m games.Metric) []float64 {
	return lo.Map(records, func(r games.Record, _ int) float64 { return m.Float(r) })
}

// Chart describes one scatter plot of Y against X.
type Chart struct {
	X, Y games.Metric
}

// File is the output file name for the chart, e.g. final_rating_vs_plays.png.
func (c Chart) File() string { return fmt.Sprintf("%s_vs_%s.png", c.X, c.Y) }

// ParseChart parses "x:y" metric pairs such as "wishlists:plays".
func ParseChart(s string) (Chart, error) {
	xs, ys, ok := strings.Cut(s, ":")
	if !ok {
		return Chart{}, fmt.Errorf("chart %q: expected x:y", s)
	}
	x, err := games.ParseMetric(xs)
	if err != nil {
		return Chart{}, err
	}
	y, err := games.ParseMetric(ys)
	if err != nil {
		return Chart{}, err
	}
	return Chart{X: x, Y: y}, nil
}

// Options controls one analysis run.
type Options struct {
	// MinRating filters records to FinalRating > MinRating.
	MinRating float64
	// TopN limits each ranking; 0 keeps every label.
	TopN int
	// Metric is aggregated per category and correlated against CorrelateWith.
	Metric        games.Metric
	CorrelateWith []games.Metric
	Categories    []games.Category
	Charts        []Chart
	// OutputDir is prepended to chart file names; ChartPrefix to the base name.
	OutputDir   string
	ChartPrefix string
	// Workers bounds concurrent correlation/aggregation tasks; 0 means unbounded.
	Workers int
}

// DefaultOptions returns the standard games report.
func DefaultOptions() Options {
	return Options{
		MinRating:     0,
		TopN:          10,
		Metric:        games.Plays,
		CorrelateWith: []games.Metric{games.FinalRating, games.Wishlists, games.Reviews},
		Categories:    []games.Category{games.Developer, games.Genre, games.Platform},
		Charts: []Chart{
			{X: games.FinalRating, Y: games.Plays},
			{X: games.Wishlists, Y: games.Plays},
		},
		OutputDir: ".",
	}
}

// Result holds everything computed by Run.
type Result struct {
	RunID        string
	Total        int
	Kept         int
	Correlations []Correlation
	Rankings     []Ranking
	Charts       []string // files written
}

// Run filters records, computes correlations and rankings, writes the text
// report to w and renders the configured charts. A nil renderer skips charts.
func Run(ctx context.Context, records []games.Record, opt Options, renderer Renderer, w io.Writer) (*Result, error) {
	res := &Result{RunID: uuid.NewString(), Total: len(records)}
	logger := logging.New("analysis").With(slog.String("run_id", res.RunID))

	kept := Filter(records, RatedAbove(opt.MinRating))
	res.Kept = len(kept)
	logger.Debug("filtered records", "total", res.Total, "kept", res.Kept, "min_rating", opt.MinRating)

	res.Correlations = make([]Correlation, len(opt.CorrelateWith))
	res.Rankings = make([]Ranking, len(opt.Categories))

	g, gctx := errgroup.WithContext(ctx)
	if opt.Workers > 0 {
		g.SetLimit(opt.Workers)
	}
	base := Column(kept, opt.Metric)
	for i, m := range opt.CorrelateWith {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res.Correlations[i] = Correlation{X: opt.Metric, Y: m, R: stats.PearsonCorrelation(base, Column(kept, m))}
			return nil
		})
	}
	for i, c := range opt.Categories {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res.Rankings[i] = Ranking{Category: c, Stats: Aggregate(kept, c, opt.Metric, opt.TopN)}
			logger.Debug("ranked category", "category", c.String(), "groups", len(res.Rankings[i].Stats))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(opt.CorrelateWith) > 0 {
		if _, err := io.WriteString(w, FormatCorrelations(opt.Metric, opt.MinRating, res.Correlations)); err != nil {
			return nil, fmt.Errorf("write report: %w", err)
		}
	}
	for _, rk := range res.Rankings {
		if _, err := io.WriteString(w, FormatRanking(rk, opt.Metric, opt.MinRating, opt.TopN)); err != nil {
			return nil, fmt.Errorf("write report: %w", err)
		}
	}

	if renderer != nil {
		for _, ch := range opt.Charts {
			out := filepath.Join(opt.OutputDir, opt.ChartPrefix+ch.File())
			ok, err := PlotScatter(ctx, renderer, kept, ch, out, w)
			if err != nil {
				return nil, err
			}
			if ok {
				res.Charts = append(res.Charts, out)
			}
		}
	}
	logger.Info("analysis complete", "kept", res.Kept, "charts", len(res.Charts))
	return res, nil
}
