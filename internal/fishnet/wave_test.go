package fishnet

import (
	"math"
	"testing"
)

func TestDepth_ReferenceValue(t *testing.T) {
	// Known-good sample: depth at (3, 4) before any time has passed.
	got := Depth(3, 4, 0)
	want := math.Sin(2.1) + math.Cos(1.4)*0.5

	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Depth(3,4,0) = %v, want %v", got, want)
	}
	if math.Abs(got-0.948) > 1e-3 {
		t.Errorf("Depth(3,4,0) = %v, want ~0.948", got)
	}
}

func TestDepth_Deterministic(t *testing.T) {
	a := Depth(-7.5, 3.25, 12.75)
	b := Depth(-7.5, 3.25, 12.75)
	if a != b {
		t.Errorf("Depth not deterministic: %v vs %v", a, b)
	}
}

func TestDepth_RespondsToTime(t *testing.T) {
	before := Depth(1, 2, 0)
	after := Depth(1, 2, 1)
	if before == after {
		t.Error("Depth should change as time advances")
	}
}

func TestDepth_Bounded(t *testing.T) {
	// Two-term sum of amplitudes 1.0 and 0.5 can never leave [-1.5, 1.5].
	for _, p := range [][3]float64{
		{0, 0, 0}, {-12.5, 11.5, 3.7}, {100, -100, 42}, {5.5, 5.5, 0.001},
	} {
		d := Depth(p[0], p[1], p[2])
		if d < -1.5 || d > 1.5 {
			t.Errorf("Depth(%v, %v, %v) = %v, outside [-1.5, 1.5]", p[0], p[1], p[2], d)
		}
	}
}

func TestConstructionVariants_Asymmetric(t *testing.T) {
	// At index (0,0) over the origin the two passes disagree: the
	// sin-major row formula gives 0.5, the cos-major column one 1.0.
	row := rowDepth(0, 0, 0, 0)
	col := colDepth(0, 0, 0, 0)

	if row != 0.5 {
		t.Errorf("rowDepth(0,0,0,0) = %v, want 0.5", row)
	}
	if col != 1.0 {
		t.Errorf("colDepth(0,0,0,0) = %v, want 1.0", col)
	}
}

func TestConstructionVariants_DifferFromUpdateFormula(t *testing.T) {
	// The first frame is built from index-driven depths; the first
	// Update overwrites them with world-position depths.
	i, j := 3, 7
	x, y := (float64(j)-12.5)*1.0, (float64(i)-12.5)*1.0

	if rowDepth(i, j, x, y) == Depth(x, y, 0) {
		t.Error("row construction depth should differ from update depth here")
	}
	if colDepth(i, j, x, y) == Depth(x, y, 0) {
		t.Error("column construction depth should differ from update depth here")
	}
}
