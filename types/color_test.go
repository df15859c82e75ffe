package types

import "testing"

func TestMaxToOnePreservesRatios(t *testing.T) {
	c := RGB(2, 1, 0.5)
	out := c.MaxToOne()

	if out.MaxComponent() != 1 {
		t.Fatalf("expected max channel to be clamped to 1; got %f", out.MaxComponent())
	}

	// Ratios between channels must survive the rescale.
	wantRatio := c[1] / c[0]
	gotRatio := out[1] / out[0]
	if !almostEqual(wantRatio, gotRatio, 1e-6) {
		t.Fatalf("expected channel ratio %f to be preserved; got %f", wantRatio, gotRatio)
	}
}

func TestMaxToOneLeavesLowDynamicRangeUntouched(t *testing.T) {
	c := RGB(0.2, 0.4, 0.6)
	if out := c.MaxToOne(); out != c {
		t.Fatalf("expected colors already in [0,1] to be unchanged; got %v", out)
	}
}

func TestClamp01(t *testing.T) {
	c := RGB(-1, 0.5, 2)
	out := c.Clamp01()
	if exp := RGB(0, 0.5, 1); out != exp {
		t.Fatalf("expected %v; got %v", exp, out)
	}
}
