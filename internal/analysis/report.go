package analysis

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/gamestats/internal/games"
)

// Correlation is the Pearson r between two metrics over the filtered records.
type Correlation struct {
	X, Y games.Metric
	R    float64
}

// Ranking is the ranked summary of one categorical field.
type Ranking struct {
	Category games.Category
	Stats    []CategoryStat
}

// FormatCorrelations renders the correlation block printed by analyze.
func FormatCorrelations(base games.Metric, minRating float64, corrs []Correlation) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("-", 27))
	b.WriteString(fmt.Sprintf(" Correlations with %s (only games with %s) ", base, ratingClause(minRating)))
	b.WriteString(strings.Repeat("-", 31))
	b.WriteString("\n")
	for _, c := range corrs {
		b.WriteString(fmt.Sprintf("Correlation(%s, %s): %.4f\n", c.X, c.Y, c.R))
	}
	b.WriteString(strings.Repeat("-", 119))
	b.WriteString("\n")
	return b.String()
}

// FormatRanking renders one "Top N" block with 1-based ranks. A topN of 0
// or less means the block lists every label, and N is the label count.
func FormatRanking(rk Ranking, metric games.Metric, minRating float64, topN int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("-", 20))
	if topN <= 0 {
		topN = len(rk.Stats)
	}
	b.WriteString(fmt.Sprintf(" Top %d %s by average %s (%s) ", topN, rk.Category, metric, ratingClause(minRating)))
	b.WriteString(strings.Repeat("-", 33))
	b.WriteString("\n")
	for i, s := range rk.Stats {
		b.WriteString(fmt.Sprintf("%d: %s -> mean: %.2f, median: %.2f\n", i+1, s.Label, s.Mean, s.Median))
	}
	b.WriteString(strings.Repeat("-", 94))
	b.WriteString("\n")
	return b.String()
}

// FormatSummaries renders descriptive statistics per metric.
func FormatSummaries(sums []MetricSummary) string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	for _, m := range sums {
		s := m.Summary
		b.WriteString(fmt.Sprintf("- %s: n=%d, min %.4g, max %.4g, mean %.4g, std %.4g, median %.4g",
			m.Metric, s.Count, s.Min, s.Max, s.Mean, s.Std, s.Median))
		if s.OutlierThreshold > 0 {
			b.WriteString(fmt.Sprintf("; outliers: %d above |z|>%.1f", s.OutliersCount, s.OutlierThreshold))
			if s.OutliersMaxAbsZ > 0 {
				b.WriteString(fmt.Sprintf(" (max |z|≈%.2f)", s.OutliersMaxAbsZ))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func ratingClause(minRating float64) string {
	return fmt.Sprintf("final_rating>%g", minRating)
}
