package testutil

import (
	"math"
	"testing"
)

func TestLinspaceEndpoints(t *testing.T) {
	got := Linspace(1.0, 3.0, 5)
	want := []float64{1.0, 1.5, 2.0, 2.5, 3.0}

	if len(got) != len(want) {
		t.Fatalf("length %d, want %d", len(got), len(want))
	}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestHarmonicWellMinimum(t *testing.T) {
	x := Linspace(0, 4, 41)
	y := HarmonicWell(x, 0.5, 2.0, -1.0)

	for i, v := range x {
		want := 0.5*(v-2)*(v-2) - 1
		if math.Abs(y[i]-want) > 1e-12 {
			t.Fatalf("x=%v: got %v, want %v", v, y[i], want)
		}
	}
}

func TestMorseWellShape(t *testing.T) {
	x := Linspace(1.0, 20.0, 39)
	y := MorseWell(x, 0.25, 1.3, 1.9, -1.1)

	// Minimum value at x0, dissociating toward e0+de.
	if math.Abs(MorseWell([]float64{1.9}, 0.25, 1.3, 1.9, -1.1)[0]-(-1.1)) > 1e-12 {
		t.Error("well value at x0 is not e0")
	}

	last := y[len(y)-1]
	if math.Abs(last-(-0.85)) > 1e-6 {
		t.Errorf("asymptote %v, want ~%v", last, -0.85)
	}
}

func TestMonotonicHasNoInteriorMinimum(t *testing.T) {
	x := Linspace(0, 2, 21)
	y := Monotonic(x, 0.7, -1)

	for i := 1; i < len(y); i++ {
		if y[i] <= y[i-1] {
			t.Fatalf("not strictly increasing at index %d: %v <= %v", i, y[i], y[i-1])
		}
	}
}
