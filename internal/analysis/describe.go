package analysis

import (
	"github.com/KaramelBytes/gamestats/internal/games"
	"github.com/KaramelBytes/gamestats/internal/stats"
)

// MetricSummary pairs a metric with its descriptive statistics.
type MetricSummary struct {
	Metric  games.Metric
	Summary stats.Summary
}

// Describe summarizes each metric over records.
func Describe(records []games.Record, metrics []games.Metric, outlierThreshold float64) []MetricSummary {
	out := make([]MetricSummary, 0, len(metrics))
	for _, m := range metrics {
		out = append(out, MetricSummary{Metric: m, Summary: stats.Describe(Column(records, m), outlierThreshold)})
	}
	return out
}
