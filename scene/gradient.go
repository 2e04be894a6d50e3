package scene

import (
	"math"
	"sort"

	"github.com/gogpu/ggview"
	"github.com/gogpu/ggview/internal/color"
)

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64     // Position in gradient, 0.0 to 1.0
	Color  ggview.RGBA // Color at this position
}

// insertStop inserts a stop keeping the slice sorted by offset.
// Equal offsets keep insertion order, so a hard stop added second stays
// second. ColorAt runs per covered pixel every frame; keeping the slice
// sorted here keeps the sampling path allocation-free.
func insertStop(stops []ColorStop, s ColorStop) []ColorStop {
	i := sort.Search(len(stops), func(j int) bool {
		return stops[j].Offset > s.Offset
	})
	stops = append(stops, ColorStop{})
	copy(stops[i+1:], stops[i:])
	stops[i] = s
	return stops
}

// applyExtendMode applies the extend mode to normalize t to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// interpolateColorLinear performs linear interpolation between two colors
// in linear sRGB space for perceptually correct blending.
func interpolateColorLinear(c1, c2 ggview.RGBA, t float64) ggview.RGBA {
	col1 := color.ColorF32{
		R: float32(c1.R),
		G: float32(c1.G),
		B: float32(c1.B),
		A: float32(c1.A),
	}
	col2 := color.ColorF32{
		R: float32(c2.R),
		G: float32(c2.G),
		B: float32(c2.B),
		A: float32(c2.A),
	}

	linear1 := color.SRGBToLinearColor(col1)
	linear2 := color.SRGBToLinearColor(col2)

	t32 := float32(t)
	interpolated := color.ColorF32{
		R: linear1.R + t32*(linear2.R-linear1.R),
		G: linear1.G + t32*(linear2.G-linear1.G),
		B: linear1.B + t32*(linear2.B-linear1.B),
		A: linear1.A + t32*(linear2.A-linear1.A),
	}

	result := color.LinearToSRGBColor(interpolated)

	return ggview.RGBA{
		R: float64(result.R),
		G: float64(result.G),
		B: float64(result.B),
		A: float64(result.A),
	}
}

// colorAtOffset returns the interpolated color at a given offset.
// The stops must be sorted by offset (AddColorStop maintains this).
// Handles edge cases: empty stops, single stop, out-of-bounds t.
func colorAtOffset(stops []ColorStop, t float64, mode ExtendMode) ggview.RGBA {
	if len(stops) == 0 {
		return ggview.Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	t = applyExtendMode(t, mode)

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})

	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	stop1 := stops[idx-1]
	stop2 := stops[idx]

	// Coincident stops would divide by zero below.
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)

	return interpolateColorLinear(stop1.Color, stop2.Color, localT)
}

// firstStopColor returns the first stop's color or Transparent if empty.
// The stops must be sorted by offset.
func firstStopColor(stops []ColorStop) ggview.RGBA {
	if len(stops) == 0 {
		return ggview.Transparent
	}
	return stops[0].Color
}
