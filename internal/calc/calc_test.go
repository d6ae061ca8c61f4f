package calc

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name             string
		x, lower, upper  float64
		want             float64
	}{
		{name: "inside range", x: 0.5, lower: 0, upper: 1, want: 0.5},
		{name: "below lower", x: -2, lower: 0, upper: 1, want: 0},
		{name: "above upper", x: 3, lower: 0, upper: 1, want: 1},
		{name: "at boundary", x: 1, lower: 0, upper: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.x, tt.lower, tt.upper); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.x, tt.lower, tt.upper, got, tt.want)
			}
		})
	}
}

func TestMapNumber(t *testing.T) {
	tests := []struct {
		name       string
		x, a, b    float64
		c, d       float64
		want       float64
	}{
		{name: "identity", x: 0.25, a: 0, b: 1, c: 0, d: 1, want: 0.25},
		{name: "scale up", x: 0.5, a: 0, b: 1, c: 0, d: 10, want: 5},
		{name: "shift range", x: 5, a: 0, b: 10, c: 0.5, d: 1, want: 0.75},
		{name: "clamped low", x: -5, a: 0, b: 10, c: 0, d: 1, want: 0},
		{name: "clamped high", x: 15, a: 0, b: 10, c: 0, d: 1, want: 1},
		{name: "degenerate source", x: 3, a: 2, b: 2, c: 0, d: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapNumber(tt.x, tt.a, tt.b, tt.c, tt.d)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("MapNumber(%v, %v, %v, %v, %v) = %v, want %v",
					tt.x, tt.a, tt.b, tt.c, tt.d, got, tt.want)
			}
		})
	}
}

func TestCloseness(t *testing.T) {
	if got := Closeness(0.3, 0.3); got != 1 {
		t.Errorf("Closeness of equal values = %v, want 1", got)
	}
	if got := Closeness(0, 1); got != 0 {
		t.Errorf("Closeness of extremes = %v, want 0", got)
	}
	mid := Closeness(0.2, 0.7)
	if mid <= 0 || mid >= 1 {
		t.Errorf("Closeness(0.2, 0.7) = %v, want strictly between 0 and 1", mid)
	}
}

func TestNormalizedRanks(t *testing.T) {
	identity := func(x float64) float64 { return x }

	t.Run("empty", func(t *testing.T) {
		ranks := NormalizedRanks(nil, identity, false)
		if len(ranks) != 0 {
			t.Errorf("expected empty map, got %v", ranks)
		}
	})

	t.Run("single value ranks middle", func(t *testing.T) {
		ranks := NormalizedRanks([]float64{7}, identity, false)
		if ranks[7] != 0.5 {
			t.Errorf("rank of lone value = %v, want 0.5", ranks[7])
		}
	})

	t.Run("even spread", func(t *testing.T) {
		ranks := NormalizedRanks([]float64{30, 10, 20}, identity, false)
		want := map[float64]float64{10: 0, 20: 0.5, 30: 1}
		for v, r := range want {
			if ranks[v] != r {
				t.Errorf("rank of %v = %v, want %v", v, ranks[v], r)
			}
		}
	})

	t.Run("reverse inverts order", func(t *testing.T) {
		ranks := NormalizedRanks([]float64{1, 2, 3}, identity, true)
		if ranks[3] != 0 || ranks[1] != 1 {
			t.Errorf("reverse ranks = %v, want 3->0 and 1->1", ranks)
		}
	})
}

func TestBimodalNormalizedRanks(t *testing.T) {
	identity := func(x float64) float64 { return x }

	t.Run("lobes separated at seam", func(t *testing.T) {
		values := []float64{0.1, 0.2, 0.3, 0.7, 0.8, 0.9}
		ranks := BimodalNormalizedRanks(values, 0.5, identity, false)
		for _, v := range []float64{0.1, 0.2, 0.3} {
			if ranks[v] >= 0.5 {
				t.Errorf("left lobe value %v ranked %v, want < 0.5", v, ranks[v])
			}
		}
		for _, v := range []float64{0.7, 0.8, 0.9} {
			if ranks[v] <= 0.5 {
				t.Errorf("right lobe value %v ranked %v, want > 0.5", v, ranks[v])
			}
		}
		// Top of the left lobe and bottom of the right lobe must not touch.
		if ranks[0.3] >= ranks[0.7] {
			t.Errorf("seam collapsed: %v >= %v", ranks[0.3], ranks[0.7])
		}
	})

	t.Run("extremes map to 0 and 1", func(t *testing.T) {
		values := []float64{0.1, 0.4, 0.6, 0.9}
		ranks := BimodalNormalizedRanks(values, 0.5, identity, false)
		if ranks[0.1] != 0 {
			t.Errorf("lowest value ranked %v, want 0", ranks[0.1])
		}
		if ranks[0.9] != 1 {
			t.Errorf("highest value ranked %v, want 1", ranks[0.9])
		}
	})

	t.Run("one-sided input", func(t *testing.T) {
		values := []float64{0.1, 0.2}
		ranks := BimodalNormalizedRanks(values, 0.5, identity, false)
		if len(ranks) != 2 {
			t.Fatalf("expected 2 ranks, got %v", ranks)
		}
		for _, v := range values {
			if ranks[v] > 0.5 {
				t.Errorf("value %v ranked %v, want <= 0.5", v, ranks[v])
			}
		}
	})
}
