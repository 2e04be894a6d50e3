package color

import (
	"math"
	"testing"
)

func TestSRGBLinearRoundTrip(t *testing.T) {
	for _, s := range []float32{0, 0.001, 0.04045, 0.1, 0.5, 0.735, 1} {
		l := SRGBToLinear(s)
		back := LinearToSRGB(l)
		if math.Abs(float64(back-s)) > 1e-5 {
			t.Errorf("round trip %g -> %g -> %g", s, l, back)
		}
	}
}

func TestSRGBToLinearKnownValues(t *testing.T) {
	cases := []struct{ s, l float32 }{
		{0, 0},
		{1, 1},
		{0.5, 0.2140411},
		{0.04045, 0.04045 / 12.92},
	}
	for _, c := range cases {
		if got := SRGBToLinear(c.s); math.Abs(float64(got-c.l)) > 1e-5 {
			t.Errorf("SRGBToLinear(%g) = %g, want %g", c.s, got, c.l)
		}
	}
}

func TestColorConversionPreservesAlpha(t *testing.T) {
	c := ColorF32{R: 0.5, G: 0.25, B: 0.75, A: 0.3}
	lin := SRGBToLinearColor(c)
	if lin.A != 0.3 {
		t.Errorf("alpha changed to %g in linear conversion", lin.A)
	}
	back := LinearToSRGBColor(lin)
	if back.A != 0.3 {
		t.Errorf("alpha changed to %g in sRGB conversion", back.A)
	}
	if math.Abs(float64(back.R-0.5)) > 1e-5 || math.Abs(float64(back.G-0.25)) > 1e-5 {
		t.Errorf("color round trip = %+v", back)
	}
}

func TestFastLUTMatchesScalar(t *testing.T) {
	for i := 0; i <= 255; i++ {
		want := SRGBToLinear(float32(i) / 255)
		got := SRGBToLinearFast(uint8(i))
		if math.Abs(float64(got-want)) > 1e-6 {
			t.Errorf("SRGBToLinearFast(%d) = %g, want %g", i, got, want)
		}
	}

	// The reverse LUT quantizes; stay within one 8-bit step.
	for i := 0; i <= 100; i++ {
		l := float32(i) / 100
		want := LinearToSRGB(l) * 255
		got := float32(LinearToSRGBFast(l))
		if math.Abs(float64(got-want)) > 1.0 {
			t.Errorf("LinearToSRGBFast(%g) = %g, want ~%g", l, got, want)
		}
	}
}

func TestFastLUTClamps(t *testing.T) {
	if got := LinearToSRGBFast(-0.5); got != 0 {
		t.Errorf("LinearToSRGBFast(-0.5) = %d, want 0", got)
	}
	if got := LinearToSRGBFast(2); got != 255 {
		t.Errorf("LinearToSRGBFast(2) = %d, want 255", got)
	}
}
