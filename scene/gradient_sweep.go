package scene

import (
	"math"

	"github.com/gogpu/ggview"
)

// SweepGradientBrush represents an angular (conic) color transition around
// a center point. Colors sweep from StartAngle to EndAngle. It implements
// the Brush interface and supports multiple color stops, proper sRGB color
// interpolation, and configurable extend modes.
//
// Example:
//
//	// Color wheel
//	wheel := scene.NewSweepGradientBrush(50, 50, 0).
//	    AddColorStop(0, ggview.Red).
//	    AddColorStop(0.166, ggview.Yellow).
//	    AddColorStop(0.333, ggview.Green).
//	    AddColorStop(0.5, ggview.Cyan).
//	    AddColorStop(0.666, ggview.Blue).
//	    AddColorStop(0.833, ggview.Magenta).
//	    AddColorStop(1, ggview.Red)
type SweepGradientBrush struct {
	Center     Vec2        // Center of the sweep
	StartAngle float64     // Start angle in radians
	EndAngle   float64     // End angle in radians
	Stops      []ColorStop // Color stops, sorted by offset
	Extend     ExtendMode  // How gradient extends beyond bounds
}

// NewSweepGradientBrush creates a new sweep (conic) gradient centered at (cx, cy).
// startAngle is the angle where the gradient begins (in radians).
// The gradient sweeps a full 360 degrees by default.
func NewSweepGradientBrush(cx, cy, startAngle float64) *SweepGradientBrush {
	return &SweepGradientBrush{
		Center:     Vec2{X: cx, Y: cy},
		StartAngle: startAngle,
		EndAngle:   startAngle + 2*math.Pi,
		Stops:      nil,
		Extend:     ExtendPad,
	}
}

// SetEndAngle sets the end angle of the sweep.
// Returns the gradient for method chaining.
func (g *SweepGradientBrush) SetEndAngle(endAngle float64) *SweepGradientBrush {
	g.EndAngle = endAngle
	return g
}

// AddColorStop adds a color stop at the specified offset, keeping the
// stops sorted by offset. Offset should be in the range [0, 1].
// Returns the gradient for method chaining.
func (g *SweepGradientBrush) AddColorStop(offset float64, c ggview.RGBA) *SweepGradientBrush {
	g.Stops = insertStop(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode for the gradient.
// Returns the gradient for method chaining.
func (g *SweepGradientBrush) SetExtend(mode ExtendMode) *SweepGradientBrush {
	g.Extend = mode
	return g
}

// brushMarker implements the Brush interface marker.
func (SweepGradientBrush) brushMarker() {}

// ColorAt returns the color at the given point.
func (g *SweepGradientBrush) ColorAt(x, y float64) ggview.RGBA {
	// The angle is undefined at the center.
	dx := x - g.Center.X
	dy := y - g.Center.Y
	if dx == 0 && dy == 0 {
		return firstStopColor(g.Stops)
	}

	// atan2 returns angle in range [-Pi, Pi]
	angle := math.Atan2(dy, dx)

	t := g.angleToT(angle)

	return colorAtOffset(g.Stops, t, g.Extend)
}

// angleToT converts an angle to a gradient parameter t in [0, 1].
func (g *SweepGradientBrush) angleToT(angle float64) float64 {
	sweepRange := g.EndAngle - g.StartAngle

	if sweepRange == 0 {
		return 0
	}

	relativeAngle := angle - g.StartAngle

	// Wrap to [0, 2*Pi) for positive sweep or (-2*Pi, 0] for negative sweep
	relativeAngle = normalizeAngle(relativeAngle, sweepRange)

	return relativeAngle / sweepRange
}

// normalizeAngle normalizes an angle relative to a sweep direction.
func normalizeAngle(angle float64, sweepRange float64) float64 {
	twoPi := 2 * math.Pi

	if sweepRange > 0 {
		for angle < 0 {
			angle += twoPi
		}
		for angle >= twoPi {
			angle -= twoPi
		}
	} else {
		for angle > 0 {
			angle -= twoPi
		}
		for angle <= -twoPi {
			angle += twoPi
		}
	}

	return angle
}
