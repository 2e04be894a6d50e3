package scene

import (
	"math"
	"testing"

	"github.com/gogpu/ggview"
)

func colorsClose(a, b ggview.RGBA, tol float64) bool {
	return math.Abs(a.R-b.R) < tol && math.Abs(a.G-b.G) < tol &&
		math.Abs(a.B-b.B) < tol && math.Abs(a.A-b.A) < tol
}

func TestLinearGradientEndpoints(t *testing.T) {
	g := NewLinearGradientBrush(0, 0, 100, 0).
		AddColorStop(0, ggview.Red).
		AddColorStop(1, ggview.Blue)

	if got := g.ColorAt(0, 50); !colorsClose(got, ggview.Red, 1e-6) {
		t.Errorf("ColorAt(0) = %+v, want red", got)
	}
	if got := g.ColorAt(100, -20); !colorsClose(got, ggview.Blue, 1e-6) {
		t.Errorf("ColorAt(100) = %+v, want blue", got)
	}
	// Pad extend clamps beyond the endpoints.
	if got := g.ColorAt(250, 0); !colorsClose(got, ggview.Blue, 1e-6) {
		t.Errorf("padded ColorAt(250) = %+v, want blue", got)
	}
	if got := g.ColorAt(-50, 0); !colorsClose(got, ggview.Red, 1e-6) {
		t.Errorf("padded ColorAt(-50) = %+v, want red", got)
	}
}

func TestLinearGradientMidpointIsLinearLight(t *testing.T) {
	g := NewLinearGradientBrush(0, 0, 100, 0).
		AddColorStop(0, ggview.Black).
		AddColorStop(1, ggview.White)

	mid := g.ColorAt(50, 0)
	// Interpolation happens in linear light, so the sRGB midpoint sits
	// well above 0.5.
	if mid.R < 0.7 || mid.R > 0.8 {
		t.Errorf("sRGB midpoint of black/white = %g, want ~0.735", mid.R)
	}
	if mid.R != mid.G || mid.G != mid.B {
		t.Errorf("gray midpoint not neutral: %+v", mid)
	}
}

func TestLinearGradientDegenerate(t *testing.T) {
	g := NewLinearGradientBrush(50, 50, 50, 50).
		AddColorStop(0, ggview.Green).
		AddColorStop(1, ggview.Red)
	if got := g.ColorAt(10, 10); !colorsClose(got, ggview.Green, 1e-6) {
		t.Errorf("zero-length gradient = %+v, want first stop", got)
	}

	empty := NewLinearGradientBrush(0, 0, 1, 0)
	if got := empty.ColorAt(0.5, 0); got != ggview.Transparent {
		t.Errorf("stopless gradient = %+v, want transparent", got)
	}

	single := NewLinearGradientBrush(0, 0, 1, 0).AddColorStop(0.5, ggview.Cyan)
	if got := single.ColorAt(100, 100); !colorsClose(got, ggview.Cyan, 1e-6) {
		t.Errorf("single-stop gradient = %+v, want cyan", got)
	}
}

func TestGradientExtendModes(t *testing.T) {
	g := NewLinearGradientBrush(0, 0, 10, 0).
		AddColorStop(0, ggview.Black).
		AddColorStop(1, ggview.White).
		SetExtend(ExtendRepeat)

	// t = 1.25 repeats to 0.25.
	a := g.ColorAt(12.5, 0)
	b := g.ColorAt(2.5, 0)
	if !colorsClose(a, b, 1e-6) {
		t.Errorf("repeat: ColorAt(12.5) = %+v, ColorAt(2.5) = %+v", a, b)
	}

	g.SetExtend(ExtendReflect)
	// t = 1.25 reflects to 0.75.
	a = g.ColorAt(12.5, 0)
	b = g.ColorAt(7.5, 0)
	if !colorsClose(a, b, 1e-6) {
		t.Errorf("reflect: ColorAt(12.5) = %+v, ColorAt(7.5) = %+v", a, b)
	}
}

func TestGradientUnsortedStops(t *testing.T) {
	g := NewLinearGradientBrush(0, 0, 100, 0).
		AddColorStop(1, ggview.Blue).
		AddColorStop(0, ggview.Red)
	if got := g.ColorAt(0, 0); !colorsClose(got, ggview.Red, 1e-6) {
		t.Errorf("unsorted stops: ColorAt(0) = %+v, want red", got)
	}
}

func TestGradientCoincidentStops(t *testing.T) {
	g := NewLinearGradientBrush(0, 0, 100, 0).
		AddColorStop(0, ggview.Red).
		AddColorStop(0.5, ggview.Green).
		AddColorStop(0.5, ggview.Blue).
		AddColorStop(1, ggview.White)
	// A hard stop must not divide by zero; either side of 0.5 is a
	// clean color.
	got := g.ColorAt(50, 0)
	if got.A != 1 {
		t.Errorf("coincident stops produced %+v", got)
	}
}

func TestRadialGradientSimple(t *testing.T) {
	g := NewRadialGradientBrush(50, 50, 0, 100).
		AddColorStop(0, ggview.White).
		AddColorStop(1, ggview.Black)

	if got := g.ColorAt(50, 50); !colorsClose(got, ggview.White, 1e-6) {
		t.Errorf("center = %+v, want white", got)
	}
	if got := g.ColorAt(150, 50); !colorsClose(got, ggview.Black, 1e-6) {
		t.Errorf("edge = %+v, want black", got)
	}
	// Distance falls monotonically toward black.
	near := g.ColorAt(60, 50)
	far := g.ColorAt(120, 50)
	if near.R <= far.R {
		t.Errorf("radial not monotonic: near %g, far %g", near.R, far.R)
	}
}

func TestSweepGradientQuadrants(t *testing.T) {
	g := NewSweepGradientBrush(0, 0, 0).
		AddColorStop(0, ggview.Red).
		AddColorStop(1, ggview.Blue)

	// Just past angle zero the sweep starts at red.
	start := g.ColorAt(100, 0.001)
	if !colorsClose(start, ggview.Red, 0.01) {
		t.Errorf("sweep start = %+v, want red", start)
	}
	// At angle Pi the parameter is 0.5.
	half := g.ColorAt(-100, 0.001)
	if half.R < 0.1 || half.R > 0.9 || half.B < 0.1 || half.B > 0.9 {
		t.Errorf("sweep midpoint = %+v, want a red/blue mix", half)
	}
	// The center has no angle; first stop wins.
	if got := g.ColorAt(0, 0); !colorsClose(got, ggview.Red, 1e-6) {
		t.Errorf("sweep center = %+v, want red", got)
	}
}

func TestGradientColorAtDoesNotAllocate(t *testing.T) {
	g := NewSweepGradientBrush(50, 50, 0).
		AddColorStop(0, ggview.Red).
		AddColorStop(0.25, ggview.Yellow).
		AddColorStop(0.5, ggview.Green).
		AddColorStop(0.75, ggview.Blue).
		AddColorStop(1, ggview.Red)

	// ColorAt runs once per covered pixel per frame; it must not
	// allocate in steady state.
	allocs := testing.AllocsPerRun(100, func() {
		g.ColorAt(30, 40)
	})
	if allocs != 0 {
		t.Errorf("ColorAt allocates %g times per call, want 0", allocs)
	}
}

func TestSolidBrush(t *testing.T) {
	b := Solid(ggview.Magenta)
	if got := b.ColorAt(123, -456); got != ggview.Magenta {
		t.Errorf("solid ColorAt = %+v", got)
	}
	faded := b.WithAlpha(0.5)
	if faded.Color.A != 0.5 || faded.Color.R != 1 {
		t.Errorf("WithAlpha = %+v", faded.Color)
	}
	if got := SolidRGB(0.25, 0.5, 0.75).ColorAt(0, 0); got.G != 0.5 {
		t.Errorf("SolidRGB = %+v", got)
	}
}
