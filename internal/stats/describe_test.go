package stats

import (
	"math"
	"testing"
)

func TestDescribe_Basic(t *testing.T) {
	s := Describe([]float64{4, 1, 3, 2}, 0)
	if s.Count != 4 || s.Min != 1 || s.Max != 4 {
		t.Fatalf("unexpected count/min/max: %+v", s)
	}
	if math.Abs(s.Mean-2.5) > 1e-12 || s.Median != 2.5 || s.MAD != 1 {
		t.Fatalf("unexpected mean/median/mad: %+v", s)
	}
	if math.Abs(s.Std-math.Sqrt(5.0/3.0)) > 1e-12 {
		t.Fatalf("std = %v", s.Std)
	}
	if s.OutlierThreshold != DefaultOutlierThreshold || s.OutliersCount != 0 {
		t.Fatalf("small samples must not report outliers: %+v", s)
	}
}

func TestDescribe_Outliers(t *testing.T) {
	vals := []float64{10, 11, 9.5, 10.5, 9.8, 10.2, 8.8, 9.7, 50}
	s := Describe(vals, 3.5)
	if s.OutliersCount != 1 {
		t.Fatalf("expected 1 outlier, got %d", s.OutliersCount)
	}
	if s.OutliersMaxAbsZ < 50 {
		t.Fatalf("expected large max |z|, got %v", s.OutliersMaxAbsZ)
	}
	if s.Median != 10 {
		t.Fatalf("median = %v", s.Median)
	}
}

func TestDescribe_Empty(t *testing.T) {
	if s := Describe(nil, 0); s != (Summary{}) {
		t.Fatalf("expected zero summary, got %+v", s)
	}
}

func TestDescribe_SingleValue(t *testing.T) {
	s := Describe([]float64{7}, 0)
	if s.Count != 1 || s.Mean != 7 || s.Std != 0 || s.Median != 7 || s.MAD != 0 {
		t.Fatalf("unexpected single-value summary: %+v", s)
	}
	if s.Min != 7 || s.Max != 7 {
		t.Fatalf("min/max = %v/%v", s.Min, s.Max)
	}
}

func TestDescribe_DoesNotMutateInput(t *testing.T) {
	vals := []float64{3, 1, 2}
	Describe(vals, 0)
	if vals[0] != 3 || vals[1] != 1 || vals[2] != 2 {
		t.Fatalf("input reordered: %v", vals)
	}
}
