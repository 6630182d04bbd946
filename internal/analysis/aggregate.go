package analysis

import (
	"sort"
	"strings"

	"github.com/KaramelBytes/gamestats/internal/games"
	"github.com/KaramelBytes/gamestats/internal/stats"
)

// CategoryStat is the metric summary for one category label.
type CategoryStat struct {
	Label  string
	Mean   float64
	Median float64
	Count  int
}

// SplitLabels splits a comma-separated field into trimmed, non-empty labels.
func SplitLabels(raw string) []string {
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Aggregate groups the metric of every record under each label of field and
// returns at most topN groups ranked by mean. A record with several labels
// counts once in each of their groups.
func Aggregate(records []games.Record, field games.Category, metric games.Metric, topN int) []CategoryStat {
	buckets := make(map[string][]int)
	for _, r := range records {
		v := metric.Count(r)
		for _, label := range SplitLabels(field.Value(r)) {
			buckets[label] = append(buckets[label], v)
		}
	}
	return RankBuckets(buckets, topN)
}

// RankBuckets computes mean and median per bucket and sorts by mean descending,
// then by label. topN <= 0 keeps every bucket.
func RankBuckets(buckets map[string][]int, topN int) []CategoryStat {
	out := make([]CategoryStat, 0, len(buckets))
	for label, vals := range buckets {
		if len(vals) == 0 {
			continue
		}
		var sum float64
		for _, v := range vals {
			sum += float64(v)
		}
		out = append(out, CategoryStat{
			Label:  label,
			Mean:   sum / float64(len(vals)),
			Median: stats.Median(vals),
			Count:  len(vals),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Mean == out[j].Mean {
			return out[i].Label < out[j].Label
		}
		return out[i].Mean > out[j].Mean
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}
