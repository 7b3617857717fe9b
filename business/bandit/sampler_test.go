package bandit

import (
	"math"
	"testing"
)

func TestSamplerBetaRange(t *testing.T) {
	s := NewSampler(1)

	shapes := [][2]float64{{1, 1}, {1, 10}, {10, 1}, {0.5, 0.5}, {901, 101}}
	for _, sh := range shapes {
		for i := 0; i < 1000; i++ {
			v := s.Beta(sh[0], sh[1])
			if v <= 0 || v >= 1 || math.IsNaN(v) {
				t.Fatalf("Beta(%v, %v) sample out of range: %v", sh[0], sh[1], v)
			}
		}
	}
}

func TestSamplerBetaMean(t *testing.T) {
	s := NewSampler(7)

	const n = 5000
	cases := []struct {
		alpha, beta float64
	}{
		{9, 1},
		{1, 9},
		{5, 5},
	}

	for _, tc := range cases {
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += s.Beta(tc.alpha, tc.beta)
		}
		mean := sum / n
		want := tc.alpha / (tc.alpha + tc.beta)
		if math.Abs(mean-want) > 0.05 {
			t.Errorf("Beta(%v, %v) empirical mean = %.3f, want ~%.3f", tc.alpha, tc.beta, mean, want)
		}
	}
}

func TestSamplerDeterministicPerSeed(t *testing.T) {
	a := NewSampler(42)
	b := NewSampler(42)

	for i := 0; i < 100; i++ {
		if a.Beta(2, 3) != b.Beta(2, 3) {
			t.Fatal("same seed produced diverging sequences")
		}
	}
}
