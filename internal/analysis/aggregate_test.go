package analysis

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/KaramelBytes/gamestats/internal/games"
)

func TestSplitLabels(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"DevA", []string{"DevA"}},
		{" DevA ,DevB,  Dev C ", []string{"DevA", "DevB", "Dev C"}},
		{"", []string{}},
		{" , ,, ", []string{}},
		{"PC,,Switch,", []string{"PC", "Switch"}},
	}
	for _, tt := range tests {
		got := SplitLabels(tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("SplitLabels(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestRankBuckets_TopN(t *testing.T) {
	buckets := map[string][]int{
		"DevA": {100, 200, 300},
		"DevB": {1000, 5000},
		"DevC": {50, 50, 50},
	}
	got := RankBuckets(buckets, 2)
	want := []CategoryStat{
		{Label: "DevB", Mean: 3000, Median: 3000, Count: 2},
		{Label: "DevA", Mean: 200, Median: 200, Count: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("RankBuckets mismatch (-want +got):\n%s", diff)
	}
}

func TestRankBuckets_FewerThanTopNAndUnlimited(t *testing.T) {
	buckets := map[string][]int{"A": {1}, "B": {2}}
	if got := RankBuckets(buckets, 10); len(got) != 2 {
		t.Fatalf("expected all 2 buckets, got %d", len(got))
	}
	if got := RankBuckets(buckets, 0); len(got) != 2 {
		t.Fatalf("topN 0 should keep all buckets, got %d", len(got))
	}
}

func TestRankBuckets_TiesOrderedByLabel(t *testing.T) {
	buckets := map[string][]int{
		"Zeta":  {10},
		"Alpha": {5, 15},
		"Mid":   {10, 10, 10},
		"Top":   {99},
	}
	for i := 0; i < 20; i++ {
		got := RankBuckets(buckets, 0)
		labels := make([]string, len(got))
		for j, s := range got {
			labels[j] = s.Label
		}
		if diff := cmp.Diff([]string{"Top", "Alpha", "Mid", "Zeta"}, labels); diff != "" {
			t.Fatalf("tie order mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestRankBuckets_Empty(t *testing.T) {
	if got := RankBuckets(map[string][]int{}, 5); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestAggregate_FanOut(t *testing.T) {
	records := []games.Record{
		{Plays: 100, Developer: "DevA,DevB", FinalRating: 4.0},
		{Plays: 200, Developer: "DevA", FinalRating: 4.5},
		{Plays: 999, Developer: " , ", FinalRating: 3.0},
	}
	got := Aggregate(records, games.Developer, games.Plays, 10)
	want := []CategoryStat{
		{Label: "DevA", Mean: 150, Median: 150, Count: 2},
		{Label: "DevB", Mean: 100, Median: 100, Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Aggregate mismatch (-want +got):\n%s", diff)
	}
	entries := 0
	for _, s := range got {
		entries += s.Count
	}
	if entries < 2 {
		t.Fatalf("fan-out should give at least one entry per labelled record, got %d", entries)
	}
}

func TestAggregate_OtherFieldsAndMetrics(t *testing.T) {
	records := []games.Record{
		{Wishlists: 10, Genre: "RPG, Action", Platform: "PC"},
		{Wishlists: 30, Genre: "RPG", Platform: "PC, Switch"},
	}
	got := Aggregate(records, games.Genre, games.Wishlists, 10)
	if len(got) != 2 || got[0].Label != "RPG" || got[0].Mean != 20 || got[1].Label != "Action" {
		t.Fatalf("unexpected genre ranking: %+v", got)
	}
	got = Aggregate(records, games.Platform, games.Wishlists, 1)
	if len(got) != 1 || got[0].Label != "Switch" || got[0].Mean != 30 {
		t.Fatalf("unexpected platform ranking: %+v", got)
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	for _, c := range games.Categories {
		if got := Aggregate(nil, c, games.Plays, 10); len(got) != 0 {
			t.Fatalf("%v: expected empty ranking, got %v", c, got)
		}
	}
}
