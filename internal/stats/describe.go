package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultOutlierThreshold is the robust |z| cutoff used when none is given.
const DefaultOutlierThreshold = 3.5

// minOutlierSample is the smallest sample for which outliers are counted.
const minOutlierSample = 8

// Summary captures descriptive statistics for one numeric column.
type Summary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Std    float64 // sample standard deviation
	Median float64
	MAD    float64 // median absolute deviation
	// Outliers (robust Z via MAD)
	OutliersCount    int
	OutliersMaxAbsZ  float64
	OutlierThreshold float64
}

// Describe summarizes values. Outliers are counted only when the sample has at
// least eight values and a non-zero MAD.
func Describe(values []float64, threshold float64) Summary {
	s := Summary{Count: len(values)}
	if len(values) == 0 {
		return s
	}
	if threshold <= 0 {
		threshold = DefaultOutlierThreshold
	}
	s.OutlierThreshold = threshold

	s.Min, s.Max = floats.Min(values), floats.Max(values)
	if len(values) > 1 {
		s.Mean, s.Std = stat.MeanStdDev(values, nil)
	} else {
		s.Mean = values[0]
	}

	s.Median, s.MAD = medianMAD(values)
	if len(values) >= minOutlierSample && s.MAD > 0 {
		for _, v := range values {
			az := math.Abs(0.6745 * (v - s.Median) / s.MAD)
			if az > threshold {
				s.OutliersCount++
			}
			if az > s.OutliersMaxAbsZ {
				s.OutliersMaxAbsZ = az
			}
		}
	}
	return s
}

// medianMAD computes median and MAD (median absolute deviation) of values.
func medianMAD(vals []float64) (median, mad float64) {
	if len(vals) == 0 {
		return 0, 0
	}
	median = sortedMedian(sortedCopy(vals))
	dev := make([]float64, len(vals))
	for i, v := range vals {
		dev[i] = math.Abs(v - median)
	}
	sort.Float64s(dev)
	return median, sortedMedian(dev)
}
