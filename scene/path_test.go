package scene

import (
	"math"
	"testing"
)

func TestPathBuilding(t *testing.T) {
	p := NewPath().
		MoveTo(10, 20).
		LineTo(30, 40).
		QuadTo(50, 60, 70, 80).
		CubicTo(1, 2, 3, 4, 5, 6).
		Close()

	wantVerbs := []PathVerb{VerbMoveTo, VerbLineTo, VerbQuadTo, VerbCubicTo, VerbClose}
	if p.VerbCount() != len(wantVerbs) {
		t.Fatalf("VerbCount = %d, want %d", p.VerbCount(), len(wantVerbs))
	}
	for i, v := range p.Verbs() {
		if v != wantVerbs[i] {
			t.Errorf("verb %d = %v, want %v", i, v, wantVerbs[i])
		}
	}
	if got := len(p.Points()); got != 2+2+4+6 {
		t.Errorf("point floats = %d, want 14", got)
	}
}

func TestPathReset(t *testing.T) {
	p := NewPath().MoveTo(1, 1).LineTo(2, 2)
	p.Reset()
	if !p.IsEmpty() {
		t.Error("path not empty after Reset")
	}
	if !p.Bounds().IsEmpty() {
		t.Errorf("bounds not empty after Reset: %+v", p.Bounds())
	}
}

func TestPathBounds(t *testing.T) {
	p := NewPath().MoveTo(10, 20).LineTo(-5, 40).LineTo(30, 0)
	b := p.Bounds()
	if b.MinX != -5 || b.MinY != 0 || b.MaxX != 30 || b.MaxY != 40 {
		t.Errorf("bounds = %+v, want (-5,0)-(30,40)", b)
	}
}

func TestPathRectangle(t *testing.T) {
	p := NewPath().Rectangle(10, 20, 100, 50)
	b := p.Bounds()
	if b.MinX != 10 || b.MinY != 20 || b.MaxX != 110 || b.MaxY != 70 {
		t.Errorf("rectangle bounds = %+v", b)
	}
	verbs := p.Verbs()
	if len(verbs) != 5 || verbs[0] != VerbMoveTo || verbs[4] != VerbClose {
		t.Errorf("rectangle verbs = %v", verbs)
	}
}

func TestPathCircleBounds(t *testing.T) {
	p := NewPath().Circle(50, 50, 25)
	b := p.Bounds()
	// Control points of the cubic approximation stay within the
	// bounding square of the circle.
	if b.MinX < 24.9 || b.MinY < 24.9 || b.MaxX > 75.1 || b.MaxY > 75.1 {
		t.Errorf("circle bounds = %+v, want within (25,25)-(75,75)", b)
	}
	if b.Width() < 49 || b.Height() < 49 {
		t.Errorf("circle bounds too small: %+v", b)
	}
}

func TestPathPolygon(t *testing.T) {
	p := NewPath().Polygon(3, 0, 0, 100, -math.Pi/2)
	// MoveTo + 2 LineTo + Close.
	if p.VerbCount() != 4 {
		t.Fatalf("triangle verb count = %d, want 4", p.VerbCount())
	}
	// First vertex at rotation -Pi/2 is straight up.
	pts := p.Points()
	if math.Abs(float64(pts[0])) > 1e-4 || math.Abs(float64(pts[1])+100) > 1e-4 {
		t.Errorf("first vertex = (%g, %g), want (0, -100)", pts[0], pts[1])
	}

	// Degenerate polygons are ignored.
	if !NewPath().Polygon(2, 0, 0, 10, 0).IsEmpty() {
		t.Error("2-gon should produce nothing")
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath().MoveTo(1, 0).LineTo(2, 0)
	q := p.Transform(TranslateAffine(10, 5))

	// Original untouched.
	if p.Points()[0] != 1 || p.Points()[1] != 0 {
		t.Errorf("Transform mutated the source path")
	}
	pts := q.Points()
	if pts[0] != 11 || pts[1] != 5 || pts[2] != 12 || pts[3] != 5 {
		t.Errorf("transformed points = %v", pts)
	}
	b := q.Bounds()
	if b.MinX != 11 || b.MaxX != 12 || b.MinY != 5 || b.MaxY != 5 {
		t.Errorf("transformed bounds = %+v", b)
	}
}

func TestPathClone(t *testing.T) {
	p := NewPath().MoveTo(1, 2).LineTo(3, 4)
	q := p.Clone()
	q.LineTo(5, 6)
	if p.VerbCount() != 2 {
		t.Errorf("Clone shares verb storage: source has %d verbs", p.VerbCount())
	}
	if q.VerbCount() != 3 {
		t.Errorf("clone verb count = %d, want 3", q.VerbCount())
	}
}

func TestPathElements(t *testing.T) {
	p := NewPath().MoveTo(1, 2).QuadTo(3, 4, 5, 6).CubicTo(7, 8, 9, 10, 11, 12).Close()

	var elems []PathElement
	for e := range p.Elements() {
		elems = append(elems, e)
	}
	if len(elems) != 4 {
		t.Fatalf("element count = %d, want 4", len(elems))
	}
	if elems[0].Verb != VerbMoveTo || len(elems[0].Points) != 1 {
		t.Errorf("element 0 = %+v", elems[0])
	}
	if elems[1].Verb != VerbQuadTo || len(elems[1].Points) != 2 {
		t.Errorf("element 1 = %+v", elems[1])
	}
	if elems[2].Verb != VerbCubicTo || len(elems[2].Points) != 3 {
		t.Errorf("element 2 = %+v", elems[2])
	}
	if elems[2].Points[2] != (Point{11, 12}) {
		t.Errorf("cubic destination = %+v, want (11,12)", elems[2].Points[2])
	}
	if elems[3].Verb != VerbClose || elems[3].Points != nil {
		t.Errorf("element 3 = %+v", elems[3])
	}
}

func TestPathArcQuarter(t *testing.T) {
	// Quarter arc from angle 0 to Pi/2 on a unit circle at the origin.
	p := NewPath().MoveTo(1, 0).Arc(0, 0, 1, 1, 0, math.Pi/2, false)

	var last Point
	for e := range p.Elements() {
		if len(e.Points) > 0 {
			last = e.Points[len(e.Points)-1]
		}
	}
	if math.Abs(float64(last.X)) > 1e-4 || math.Abs(float64(last.Y)-1) > 1e-4 {
		t.Errorf("arc endpoint = (%g, %g), want (0, 1)", last.X, last.Y)
	}
}

func TestPathArcDirection(t *testing.T) {
	// Clockwise 0 to Pi/2 takes the short way and stays in the first
	// quadrant.
	cw := NewPath().MoveTo(1, 0).Arc(0, 0, 1, 1, 0, math.Pi/2, true)
	b := cw.Bounds()
	if b.MinX < -0.01 || b.MinY < -0.01 {
		t.Errorf("clockwise quarter arc left the first quadrant: %+v", b)
	}

	// Counterclockwise sweeps the long way around through angle Pi.
	ccw := NewPath().MoveTo(1, 0).Arc(0, 0, 1, 1, 0, math.Pi/2, false)
	bb := ccw.Bounds()
	if bb.MinX > -0.9 {
		t.Errorf("counterclockwise arc did not sweep the long way: %+v", bb)
	}
}

func TestPathVerbString(t *testing.T) {
	verbs := map[PathVerb]string{
		VerbMoveTo:  "MoveTo",
		VerbLineTo:  "LineTo",
		VerbQuadTo:  "QuadTo",
		VerbCubicTo: "CubicTo",
		VerbClose:   "Close",
	}
	for v, want := range verbs {
		if v.String() != want {
			t.Errorf("PathVerb(%d).String() = %q, want %q", v, v.String(), want)
		}
	}
}
