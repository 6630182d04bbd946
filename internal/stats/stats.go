// Package stats holds the numeric primitives shared by every analysis:
// mean, median and Pearson correlation, plus column summaries.
package stats

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of values. Callers must not pass an empty
// slice when the result matters; it yields NaN.
func Mean(values []float64) float64 {
	return stat.Mean(values, nil)
}

// Median returns the middle value of values, or the mean of the two middle
// values for an even count. An empty slice yields 0. values is not modified.
func Median(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	return sortedMedian(sortedCopy(values))
}

// sortedCopy returns values sorted ascending without touching the input.
func sortedCopy[T int | float64](values []T) []T {
	out := make([]T, len(values))
	copy(out, values)
	slices.Sort(out)
	return out
}

// sortedMedian expects an ascending, non-empty slice.
func sortedMedian[T int | float64](sorted []T) float64 {
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (float64(sorted[mid-1]) + float64(sorted[mid])) / 2
	}
	return float64(sorted[mid])
}

// PearsonCorrelation returns the linear correlation of x and y in [-1, 1].
// It returns 0 when the lengths differ, when either slice is empty, or when
// either slice has zero variance.
func PearsonCorrelation(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return 0
	}
	if constant(x) || constant(y) {
		return 0
	}
	meanX := Mean(x)
	meanY := Mean(y)
	var num, denX, denY float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		num += dx * dy
		denX += dx * dx
		denY += dy * dy
	}
	denom := math.Sqrt(denX * denY)
	if denom == 0 {
		return 0
	}
	return num / denom
}

// constant reports whether every element equals the first. Rounding in the mean
// of a constant slice would otherwise leave a tiny non-zero variance.
func constant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
