package analysis

import (
	"strings"
	"testing"

	"github.com/KaramelBytes/gamestats/internal/games"
)

func TestFormatRanking_UnlimitedUsesLabelCount(t *testing.T) {
	rk := Ranking{Category: games.Developer, Stats: []CategoryStat{
		{Label: "DevA", Mean: 30, Median: 30, Count: 1},
		{Label: "DevB", Mean: 20, Median: 20, Count: 1},
		{Label: "DevC", Mean: 10, Median: 10, Count: 1},
	}}
	for _, topN := range []int{0, -1} {
		got := FormatRanking(rk, games.Plays, 0, topN)
		if !strings.HasPrefix(got, strings.Repeat("-", 20)+" Top 3 developer by average plays (final_rating>0) ") {
			t.Errorf("topN %d header:\n%s", topN, got)
		}
		if !strings.Contains(got, "3: DevC -> mean: 10.00, median: 10.00\n") {
			t.Errorf("topN %d should list every label:\n%s", topN, got)
		}
	}
	if got := FormatRanking(rk, games.Plays, 0, 5); !strings.Contains(got, " Top 5 developer ") {
		t.Errorf("explicit topN should be kept in the header:\n%s", got)
	}
}

func TestFormatRanking_UnlimitedEmpty(t *testing.T) {
	got := FormatRanking(Ranking{Category: games.Genre}, games.Plays, 0, 0)
	want := strings.Repeat("-", 20) + " Top 0 genre by average plays (final_rating>0) " + strings.Repeat("-", 33) + "\n" +
		strings.Repeat("-", 94) + "\n"
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}
