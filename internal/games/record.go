package games

import (
	"errors"
	"fmt"
	"strings"
)

// Record is one row of the combined games dataset.
type Record struct {
	ID        string
	Name      string
	Date      string
	Reviews   int
	Plays     int
	Playing   int
	Backlogs  int
	Wishlists int
	Developer string
	Genre     string
	Platform  string
	// FinalRating <= 0 means the game is unrated.
	FinalRating float64
}

// ErrUnknownField is returned when a category or metric name is not recognized.
var ErrUnknownField = errors.New("unknown field")

// Category selects one of the multi-valued categorical columns.
type Category int

const (
	Developer Category = iota
	Genre
	Platform
)

// Categories lists every supported category in report order.
var Categories = []Category{Developer, Genre, Platform}

func (c Category) String() string {
	switch c {
	case Developer:
		return "developer"
	case Genre:
		return "genre"
	case Platform:
		return "platform"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Value returns the raw, comma-separated label string of r for c.
func (c Category) Value(r Record) string {
	switch c {
	case Genre:
		return r.Genre
	case Platform:
		return r.Platform
	default:
		return r.Developer
	}
}

// ParseCategory resolves a column name. Unknown names fail instead of falling back to developer.
func ParseCategory(name string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "developer":
		return Developer, nil
	case "genre":
		return Genre, nil
	case "platform":
		return Platform, nil
	}
	return 0, fmt.Errorf("category %q: %w", name, ErrUnknownField)
}

// ParseCategories resolves a list of names, preserving order.
func ParseCategories(names []string) ([]Category, error) {
	out := make([]Category, 0, len(names))
	for _, n := range names {
		c, err := ParseCategory(n)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Metric selects a numeric column.
type Metric int

const (
	Reviews Metric = iota
	Plays
	Playing
	Backlogs
	Wishlists
	FinalRating
)

// Metrics lists every numeric column in dataset order.
var Metrics = []Metric{Reviews, Plays, Playing, Backlogs, Wishlists, FinalRating}

func (m Metric) String() string {
	switch m {
	case Reviews:
		return "reviews"
	case Plays:
		return "plays"
	case Playing:
		return "playing"
	case Backlogs:
		return "backlogs"
	case Wishlists:
		return "wishlists"
	case FinalRating:
		return "final_rating"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// Label is the human-readable axis label for m.
func (m Metric) Label() string {
	switch m {
	case Reviews:
		return "Reviews"
	case Plays:
		return "Plays"
	case Playing:
		return "Playing"
	case Backlogs:
		return "Backlogs"
	case Wishlists:
		return "Wishlists"
	case FinalRating:
		return "Final Rating"
	default:
		return m.String()
	}
}

// IsCount reports whether m is a non-negative engagement count.
func (m Metric) IsCount() bool { return m != FinalRating }

// Count returns the integer value of a count metric. FinalRating is truncated.
func (m Metric) Count(r Record) int {
	switch m {
	case Reviews:
		return r.Reviews
	case Plays:
		return r.Plays
	case Playing:
		return r.Playing
	case Backlogs:
		return r.Backlogs
	case Wishlists:
		return r.Wishlists
	default:
		return int(r.FinalRating)
	}
}

// Float returns the value of m for r as float64.
func (m Metric) Float(r Record) float64 {
	if m == FinalRating {
		return r.FinalRating
	}
	return float64(m.Count(r))
}

// ParseMetric resolves a numeric column name.
func ParseMetric(name string) (Metric, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, m := range Metrics {
		if m.String() == n {
			return m, nil
		}
	}
	return 0, fmt.Errorf("metric %q: %w", name, ErrUnknownField)
}

// ParseCountMetric resolves a metric name and requires it to be a count.
func ParseCountMetric(name string) (Metric, error) {
	m, err := ParseMetric(name)
	if err != nil {
		return 0, err
	}
	if !m.IsCount() {
		return 0, fmt.Errorf("metric %q is not a count", name)
	}
	return m, nil
}
