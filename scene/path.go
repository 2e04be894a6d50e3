package scene

import (
	"iter"
	"math"

	"github.com/chewxy/math32"
)

// PathVerb represents a path construction command.
type PathVerb uint8

// Path verb constants.
const (
	// VerbMoveTo moves the current point without drawing.
	VerbMoveTo PathVerb = iota
	// VerbLineTo draws a line to the specified point.
	VerbLineTo
	// VerbQuadTo draws a quadratic Bezier curve.
	VerbQuadTo
	// VerbCubicTo draws a cubic Bezier curve.
	VerbCubicTo
	// VerbClose closes the current subpath.
	VerbClose
)

// String returns a human-readable name for the verb.
func (v PathVerb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbQuadTo:
		return "QuadTo"
	case VerbCubicTo:
		return "CubicTo"
	case VerbClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// PointCount returns the number of float32 values this verb consumes.
func (v PathVerb) PointCount() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 2 // x, y
	case VerbQuadTo:
		return 4 // cx, cy, x, y
	case VerbCubicTo:
		return 6 // c1x, c1y, c2x, c2y, x, y
	default:
		return 0
	}
}

// Path represents a vector path.
// It stores path commands (verbs) and coordinate data separately
// for efficient processing.
type Path struct {
	verbs  []PathVerb
	points []float32
	bounds Rect
	start  [2]float32 // Start of current subpath for Close
	cursor [2]float32 // Current position
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]PathVerb, 0, 16),
		points: make([]float32, 0, 64),
		bounds: EmptyRect(),
	}
}

// Reset clears the path for reuse without deallocating memory.
func (p *Path) Reset() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.bounds = EmptyRect()
	p.start = [2]float32{0, 0}
	p.cursor = [2]float32{0, 0}
}

// MoveTo begins a new subpath at the specified point.
func (p *Path) MoveTo(x, y float32) *Path {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, x, y)
	p.bounds = p.bounds.UnionPoint(x, y)
	p.start = [2]float32{x, y}
	p.cursor = [2]float32{x, y}
	return p
}

// LineTo draws a line from the current point to (x, y).
func (p *Path) LineTo(x, y float32) *Path {
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, x, y)
	p.bounds = p.bounds.UnionPoint(x, y)
	p.cursor = [2]float32{x, y}
	return p
}

// QuadTo draws a quadratic Bezier curve.
// The curve goes from the current point to (x, y) using (cx, cy) as control point.
func (p *Path) QuadTo(cx, cy, x, y float32) *Path {
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, cx, cy, x, y)
	p.bounds = p.bounds.UnionPoint(cx, cy)
	p.bounds = p.bounds.UnionPoint(x, y)
	// Union with control points is a conservative bounds approximation.
	p.cursor = [2]float32{x, y}
	return p
}

// CubicTo draws a cubic Bezier curve.
// The curve goes from the current point to (x, y) using (c1x, c1y) and (c2x, c2y) as control points.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) *Path {
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, c1x, c1y, c2x, c2y, x, y)
	p.bounds = p.bounds.UnionPoint(c1x, c1y)
	p.bounds = p.bounds.UnionPoint(c2x, c2y)
	p.bounds = p.bounds.UnionPoint(x, y)
	p.cursor = [2]float32{x, y}
	return p
}

// Close closes the current subpath by drawing a line back to its start.
func (p *Path) Close() *Path {
	p.verbs = append(p.verbs, VerbClose)
	p.cursor = p.start
	return p
}

// Rectangle adds a rectangle path.
func (p *Path) Rectangle(x, y, w, h float32) *Path {
	return p.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}

// Circle adds a circle path.
func (p *Path) Circle(cx, cy, r float32) *Path {
	return p.Ellipse(cx, cy, r, r)
}

// Ellipse adds an ellipse path.
func (p *Path) Ellipse(cx, cy, rx, ry float32) *Path {
	// Magic number for approximating circular arcs with cubic beziers
	k := float32(0.5522847498)
	kx := k * rx
	ky := k * ry

	// Start at the right edge
	p.MoveTo(cx+rx, cy)

	// Four quarter-circle arcs
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry) // to bottom
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy) // to left
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry) // to top
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy) // to right (start)

	return p.Close()
}

// Polygon adds a regular polygon with n sides, centered at (cx, cy) with
// the given circumradius. The first vertex is placed at angle rotation
// (radians, measured from the positive X axis).
func (p *Path) Polygon(n int, cx, cy, r, rotation float32) *Path {
	if n < 3 {
		return p
	}
	step := 2 * math32.Pi / float32(n)
	p.MoveTo(cx+r*math32.Cos(rotation), cy+r*math32.Sin(rotation))
	for i := 1; i < n; i++ {
		a := rotation + step*float32(i)
		p.LineTo(cx+r*math32.Cos(a), cy+r*math32.Sin(a))
	}
	return p.Close()
}

// Bounds returns the bounding rectangle of the path.
// Note: This is a conservative approximation that includes control points.
func (p *Path) Bounds() Rect {
	return p.bounds
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Verbs returns the verb stream.
func (p *Path) Verbs() []PathVerb {
	return p.verbs
}

// Points returns the point data stream.
func (p *Path) Points() []float32 {
	return p.points
}

// VerbCount returns the number of verbs in the path.
func (p *Path) VerbCount() int {
	return len(p.verbs)
}

// Transform returns a new path with all points transformed by the affine matrix.
func (p *Path) Transform(t Affine) *Path {
	result := NewPath()
	result.verbs = make([]PathVerb, len(p.verbs))
	copy(result.verbs, p.verbs)
	result.points = make([]float32, len(p.points))

	for i := 0; i < len(p.points); i += 2 {
		x, y := t.TransformPoint(p.points[i], p.points[i+1])
		result.points[i] = x
		result.points[i+1] = y
		result.bounds = result.bounds.UnionPoint(x, y)
	}

	result.start[0], result.start[1] = t.TransformPoint(p.start[0], p.start[1])
	result.cursor[0], result.cursor[1] = t.TransformPoint(p.cursor[0], p.cursor[1])

	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.verbs = make([]PathVerb, len(p.verbs))
	copy(result.verbs, p.verbs)
	result.points = make([]float32, len(p.points))
	copy(result.points, p.points)
	result.bounds = p.bounds
	result.start = p.start
	result.cursor = p.cursor
	return result
}

// PathElement represents a single path command with its associated points.
// This type is used by the Elements() iterator.
type PathElement struct {
	// Verb is the path command type.
	Verb PathVerb

	// Points contains the coordinates for this element.
	// The number of points depends on the verb:
	//   - MoveTo: 1 point (destination)
	//   - LineTo: 1 point (destination)
	//   - QuadTo: 2 points (control, destination)
	//   - CubicTo: 3 points (control1, control2, destination)
	//   - Close: 0 points
	Points []Point
}

// Elements returns an iterator over all path elements.
func (p *Path) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		pointIdx := 0

		for _, verb := range p.verbs {
			var elem PathElement
			elem.Verb = verb

			switch verb {
			case VerbMoveTo, VerbLineTo:
				elem.Points = []Point{
					{p.points[pointIdx], p.points[pointIdx+1]},
				}
				pointIdx += 2

			case VerbQuadTo:
				elem.Points = []Point{
					{p.points[pointIdx], p.points[pointIdx+1]},
					{p.points[pointIdx+2], p.points[pointIdx+3]},
				}
				pointIdx += 4

			case VerbCubicTo:
				elem.Points = []Point{
					{p.points[pointIdx], p.points[pointIdx+1]},
					{p.points[pointIdx+2], p.points[pointIdx+3]},
					{p.points[pointIdx+4], p.points[pointIdx+5]},
				}
				pointIdx += 6

			case VerbClose:
				elem.Points = nil
			}

			if !yield(elem) {
				return
			}
		}
	}
}

// Arc adds an arc path (portion of an ellipse).
// The arc is drawn from startAngle to endAngle (in radians).
// If sweepClockwise is true, the arc is drawn clockwise.
func (p *Path) Arc(cx, cy, rx, ry, startAngle, endAngle float32, sweepClockwise bool) *Path {
	if sweepClockwise && endAngle < startAngle {
		endAngle += 2 * math.Pi
	} else if !sweepClockwise && startAngle < endAngle {
		startAngle += 2 * math.Pi
	}

	startX := cx + rx*math32.Cos(startAngle)
	startY := cy + ry*math32.Sin(startAngle)
	p.MoveTo(startX, startY)

	// After normalization the signed delta already encodes the sweep
	// direction: positive for clockwise, negative for counterclockwise.
	sweep := endAngle - startAngle

	// Split into quarter arcs (max 90 degrees each) for better approximation
	numArcs := int(math.Ceil(math.Abs(float64(sweep)) / (math.Pi / 2)))
	if numArcs < 1 {
		numArcs = 1
	}

	arcAngle := sweep / float32(numArcs)
	currentAngle := startAngle

	for i := 0; i < numArcs; i++ {
		nextAngle := currentAngle + arcAngle
		p.arcSegment(cx, cy, rx, ry, currentAngle, nextAngle)
		currentAngle = nextAngle
	}

	return p
}

// arcSegment adds a cubic bezier approximation of an arc segment.
func (p *Path) arcSegment(cx, cy, rx, ry, startAngle, endAngle float32) {
	angle := endAngle - startAngle
	tan := math32.Tan(angle / 2)
	alpha := math32.Sin(angle) * (math32.Sqrt(4+3*tan*tan) - 1) / 3

	cos1 := math32.Cos(startAngle)
	sin1 := math32.Sin(startAngle)
	x1 := cx + rx*cos1
	y1 := cy + ry*sin1

	cos2 := math32.Cos(endAngle)
	sin2 := math32.Sin(endAngle)
	x4 := cx + rx*cos2
	y4 := cy + ry*sin2

	x2 := x1 - alpha*rx*sin1
	y2 := y1 + alpha*ry*cos1
	x3 := x4 + alpha*rx*sin2
	y3 := y4 - alpha*ry*cos2

	p.CubicTo(x2, y2, x3, y3, x4, y4)
}
