package rng

import "testing"

func TestIntStaysInRange(t *testing.T) {
	r := NewSeeded(12345)

	tests := []struct {
		min, max int
	}{
		{0, 1},
		{0, 100},
		{1, 6},
		{3, 6},
		{-4, 4},
	}

	for _, tt := range tests {
		for i := 0; i < 1000; i++ {
			got := r.Int(tt.min, tt.max)
			if got < tt.min || got >= tt.max {
				t.Fatalf("Int(%d, %d) = %d, out of range", tt.min, tt.max, got)
			}
		}
	}
}

func TestIntClampsUpperEdge(t *testing.T) {
	// A draw of exactly 1.0 would scale to maxExclusive.
	r := New(Sequence(1.0, 0.0))

	if got := r.Int(0, 100); got != 99 {
		t.Errorf("Int(0, 100) with draw 1.0 = %d, want 99", got)
	}
	if got := r.Int(0, 100); got != 0 {
		t.Errorf("Int(0, 100) with draw 0.0 = %d, want 0", got)
	}
}

func TestIntPanicsOnEmptyRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Int(5, 5) should panic")
		}
	}()
	NewSeeded(1).Int(5, 5)
}

func TestFloatClamped(t *testing.T) {
	r := New(Sequence(-0.5, 1.5, 0.25))

	if got := r.Float(); got != 0 {
		t.Errorf("Float() = %v, want 0", got)
	}
	if got := r.Float(); got != 1 {
		t.Errorf("Float() = %v, want 1", got)
	}
	if got := r.FloatRange(2, 6); got != 3 {
		t.Errorf("FloatRange(2, 6) = %v, want 3", got)
	}
}

func TestDraw(t *testing.T) {
	for want := 0; want < 100; want++ {
		r := New(Sequence(Draw(want, 0, 100)))
		if got := r.Int(0, 100); got != want {
			t.Errorf("Int(0, 100) with Draw(%d) = %d", want, got)
		}
	}
	for want := 1; want < 6; want++ {
		r := New(Sequence(Draw(want, 1, 6)))
		if got := r.Int(1, 6); got != want {
			t.Errorf("Int(1, 6) with Draw(%d) = %d", want, got)
		}
	}
}

func TestWeightedIndexSkipsZeroWeights(t *testing.T) {
	r := NewSeeded(42)
	weights := []int{0, 0, 5}

	for i := 0; i < 1000; i++ {
		if got := r.WeightedIndex(weights, 0); got != 2 {
			t.Fatalf("WeightedIndex(%v) = %d, want 2", weights, got)
		}
	}
}

func TestWeightedIndexHitsEveryWeight(t *testing.T) {
	r := NewSeeded(42)
	weights := []int{10, 10}
	counts := make([]int, len(weights))

	for i := 0; i < 1000; i++ {
		counts[r.WeightedIndex(weights, 20)]++
	}

	for i, c := range counts {
		if c == 0 {
			t.Errorf("index %d never selected in 1000 draws", i)
		}
	}
}

func TestWeightedIndexBoundaries(t *testing.T) {
	weights := []int{50, 25, 0, 25}

	tests := []struct {
		roll int
		want int
	}{
		{0, 0},
		{49, 0},
		{50, 1},
		{74, 1},
		{75, 3},
		{99, 3},
	}

	for _, tt := range tests {
		r := New(Sequence(Draw(tt.roll, 0, 100)))
		if got := r.WeightedIndex(weights, -1); got != tt.want {
			t.Errorf("WeightedIndex roll %d = %d, want %d", tt.roll, got, tt.want)
		}
	}
}

func TestSeededReproducible(t *testing.T) {
	r1 := NewSeeded(12345)
	r2 := NewSeeded(12345)

	for i := 0; i < 100; i++ {
		if a, b := r1.Int(0, 1000), r2.Int(0, 1000); a != b {
			t.Fatalf("draw %d mismatch: %d != %d", i, a, b)
		}
	}
}
