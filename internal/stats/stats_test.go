package stats

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestPearsonCorrelation_Linear(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"double", 2, 0, 1},
		{"positive slope with offset", 3.5, -7, 1},
		{"negative slope", -2, 10, -1},
		{"small negative slope", -0.001, 1e6, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y := make([]float64, len(x))
			for i, v := range x {
				y[i] = tt.a*v + tt.b
			}
			if got := PearsonCorrelation(x, y); math.Abs(got-tt.want) > 1e-6 {
				t.Fatalf("PearsonCorrelation = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPearsonCorrelation_Sentinels(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
	}{
		{"constant y", []float64{1, 2, 3}, []float64{10, 10, 10}},
		{"constant fractional y", []float64{1, 2, 3}, []float64{0.1, 0.1, 0.1}},
		{"constant x", []float64{7, 7, 7, 7}, []float64{1, 5, 2, 8}},
		{"length mismatch", []float64{1, 2, 3}, []float64{1, 2}},
		{"both empty", nil, nil},
		{"x empty", []float64{}, []float64{1}},
		{"single point", []float64{4}, []float64{9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PearsonCorrelation(tt.x, tt.y); got != 0 {
				t.Fatalf("PearsonCorrelation = %v, want 0", got)
			}
		})
	}
}

func TestPearsonCorrelation_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	x := make([]float64, 200)
	y := make([]float64, 200)
	for i := range x {
		x[i] = rng.Float64() * 1000
		y[i] = x[i]*0.3 + rng.NormFloat64()*50
	}
	got := PearsonCorrelation(x, y)
	want := stat.Correlation(x, y, nil)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("PearsonCorrelation = %v, gonum = %v", got, want)
	}
	if got < -1 || got > 1 {
		t.Fatalf("correlation out of range: %v", got)
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want float64
	}{
		{"empty", nil, 0},
		{"even", []int{2, 4, 6, 8}, 5},
		{"odd unsorted", []int{3, 1, 2}, 2},
		{"duplicates", []int{5, 5, 1, 5}, 5},
		{"single", []int{42}, 42},
		{"large counts", []int{math.MaxUint32, math.MaxUint32}, math.MaxUint32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Median(tt.in); got != tt.want {
				t.Fatalf("Median(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMedian_DoesNotMutate(t *testing.T) {
	in := []int{9, 1, 5, 3}
	Median(in)
	if in[0] != 9 || in[1] != 1 || in[2] != 5 || in[3] != 3 {
		t.Fatalf("input mutated: %v", in)
	}
}

func TestMean(t *testing.T) {
	if got := Mean([]float64{1, 2, 3, 4}); got != 2.5 {
		t.Fatalf("Mean = %v, want 2.5", got)
	}
}
