package scene

import "github.com/gogpu/ggview"

// LinearGradientBrush represents a linear color transition between two points.
// It implements the Brush interface and supports multiple color stops,
// proper sRGB color interpolation, and configurable extend modes.
//
// Example:
//
//	gradient := scene.NewLinearGradientBrush(0, 0, 100, 0).
//	    AddColorStop(0, ggview.Red).
//	    AddColorStop(0.5, ggview.Yellow).
//	    AddColorStop(1, ggview.Blue)
type LinearGradientBrush struct {
	Start  Vec2        // Start point of the gradient
	End    Vec2        // End point of the gradient
	Stops  []ColorStop // Color stops, sorted by offset
	Extend ExtendMode  // How gradient extends beyond bounds
}

// NewLinearGradientBrush creates a new linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradientBrush(x0, y0, x1, y1 float64) *LinearGradientBrush {
	return &LinearGradientBrush{
		Start:  Vec2{X: x0, Y: y0},
		End:    Vec2{X: x1, Y: y1},
		Stops:  nil,
		Extend: ExtendPad,
	}
}

// AddColorStop adds a color stop at the specified offset, keeping the
// stops sorted by offset. Offset should be in the range [0, 1].
// Returns the gradient for method chaining.
func (g *LinearGradientBrush) AddColorStop(offset float64, c ggview.RGBA) *LinearGradientBrush {
	g.Stops = insertStop(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode for the gradient.
// Returns the gradient for method chaining.
func (g *LinearGradientBrush) SetExtend(mode ExtendMode) *LinearGradientBrush {
	g.Extend = mode
	return g
}

// brushMarker implements the Brush interface marker.
func (LinearGradientBrush) brushMarker() {}

// ColorAt returns the color at the given point.
func (g *LinearGradientBrush) ColorAt(x, y float64) ggview.RGBA {
	// Zero-length gradient (start == end) has no direction.
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy

	if lengthSq == 0 {
		return firstStopColor(g.Stops)
	}

	// Project point onto the gradient line
	// t = dot(P - Start, End - Start) / |End - Start|^2
	px := x - g.Start.X
	py := y - g.Start.Y
	t := (px*dx + py*dy) / lengthSq

	return colorAtOffset(g.Stops, t, g.Extend)
}
