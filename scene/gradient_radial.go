package scene

import (
	"math"

	"github.com/gogpu/ggview"
)

// RadialGradientBrush represents a radial color transition.
// Colors radiate from a focal point within a circle defined by center and
// end radius. It implements the Brush interface and supports multiple color
// stops, proper sRGB color interpolation, and configurable extend modes.
//
// Example:
//
//	// Simple radial gradient
//	gradient := scene.NewRadialGradientBrush(50, 50, 0, 50).
//	    AddColorStop(0, ggview.White).
//	    AddColorStop(1, ggview.Black)
type RadialGradientBrush struct {
	Center      Vec2        // Center of the gradient circle
	Focus       Vec2        // Focal point (can differ from center)
	StartRadius float64     // Inner radius where gradient begins (t=0)
	EndRadius   float64     // Outer radius where gradient ends (t=1)
	Stops       []ColorStop // Color stops, sorted by offset
	Extend      ExtendMode  // How gradient extends beyond bounds
}

// NewRadialGradientBrush creates a new radial gradient.
// The gradient transitions from startRadius to endRadius around (cx, cy).
// Focus defaults to center.
func NewRadialGradientBrush(cx, cy, startRadius, endRadius float64) *RadialGradientBrush {
	center := Vec2{X: cx, Y: cy}
	return &RadialGradientBrush{
		Center:      center,
		Focus:       center,
		StartRadius: startRadius,
		EndRadius:   endRadius,
		Stops:       nil,
		Extend:      ExtendPad,
	}
}

// SetFocus sets the focal point of the gradient.
// A focal point different from center creates an asymmetric gradient.
// Returns the gradient for method chaining.
func (g *RadialGradientBrush) SetFocus(fx, fy float64) *RadialGradientBrush {
	g.Focus = Vec2{X: fx, Y: fy}
	return g
}

// AddColorStop adds a color stop at the specified offset, keeping the
// stops sorted by offset. Offset should be in the range [0, 1].
// Returns the gradient for method chaining.
func (g *RadialGradientBrush) AddColorStop(offset float64, c ggview.RGBA) *RadialGradientBrush {
	g.Stops = insertStop(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode for the gradient.
// Returns the gradient for method chaining.
func (g *RadialGradientBrush) SetExtend(mode ExtendMode) *RadialGradientBrush {
	g.Extend = mode
	return g
}

// brushMarker implements the Brush interface marker.
func (RadialGradientBrush) brushMarker() {}

// ColorAt returns the color at the given point.
func (g *RadialGradientBrush) ColorAt(x, y float64) ggview.RGBA {
	radiusDiff := g.EndRadius - g.StartRadius
	if radiusDiff == 0 {
		return firstStopColor(g.Stops)
	}

	t := g.computeT(x, y)
	return colorAtOffset(g.Stops, t, g.Extend)
}

// computeT calculates the gradient parameter t for a point.
// For simple case (focus == center): t = (distance - startRadius) / (endRadius - startRadius)
// For focal gradient: uses ray-circle intersection.
func (g *RadialGradientBrush) computeT(x, y float64) float64 {
	if g.Focus.X == g.Center.X && g.Focus.Y == g.Center.Y {
		return g.computeTSimple(x, y)
	}
	return g.computeTFocal(x, y)
}

// computeTSimple calculates t for the simple case where focus equals center.
func (g *RadialGradientBrush) computeTSimple(x, y float64) float64 {
	dx := x - g.Center.X
	dy := y - g.Center.Y
	distance := math.Sqrt(dx*dx + dy*dy)

	radiusDiff := g.EndRadius - g.StartRadius
	if radiusDiff == 0 {
		return 0
	}

	return (distance - g.StartRadius) / radiusDiff
}

// computeTFocal calculates t for focal gradients (focus != center).
// This solves a ray-circle intersection problem.
func (g *RadialGradientBrush) computeTFocal(x, y float64) float64 {
	// Direction from focus to point
	dx := x - g.Focus.X
	dy := y - g.Focus.Y

	// Vector from focus to center
	fx := g.Center.X - g.Focus.X
	fy := g.Center.Y - g.Focus.Y

	// Ray: P(t) = Focus + t * (Point - Focus)
	// Circle: |P - Center|^2 = EndRadius^2
	a := dx*dx + dy*dy
	b := -2 * (dx*fx + dy*fy)
	c := fx*fx + fy*fy - g.EndRadius*g.EndRadius

	// Point at focus.
	if a == 0 {
		return 0
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		// Point is outside the gradient circle
		return 1
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	// t > 0 means the intersection is in the direction from focus to point.
	var t float64
	switch {
	case t1 > 0 && t2 > 0:
		t = math.Min(t1, t2)
	case t1 > 0:
		t = t1
	case t2 > 0:
		t = t2
	default:
		return 0
	}

	pointDist := math.Sqrt(a)
	intersectDist := t * pointDist

	if intersectDist == 0 {
		return 0
	}

	return pointDist / intersectDist
}
