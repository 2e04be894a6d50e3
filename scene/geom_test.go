package scene

import (
	"math"
	"testing"
)

func TestRectUnion(t *testing.T) {
	a := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	b := Rect{MinX: 5, MinY: -5, MaxX: 20, MaxY: 8}
	u := a.Union(b)
	if u.MinX != 0 || u.MinY != -5 || u.MaxX != 20 || u.MaxY != 10 {
		t.Errorf("union = %+v", u)
	}

	if !EmptyRect().IsEmpty() {
		t.Error("EmptyRect is not empty")
	}
	if got := EmptyRect().UnionPoint(3, 4); got.MinX != 3 || got.MaxY != 4 {
		t.Errorf("union with empty = %+v", got)
	}
	if EmptyRect().Width() != 0 || EmptyRect().Height() != 0 {
		t.Error("empty rect has nonzero extent")
	}
}

func TestAffineIdentity(t *testing.T) {
	id := IdentityAffine()
	if !id.IsIdentity() {
		t.Error("IdentityAffine is not identity")
	}
	x, y := id.TransformPoint(3, 7)
	if x != 3 || y != 7 {
		t.Errorf("identity moved point to (%g, %g)", x, y)
	}
	if TranslateAffine(1, 0).IsIdentity() {
		t.Error("translation claims to be identity")
	}
}

func TestAffineTranslateScale(t *testing.T) {
	x, y := TranslateAffine(10, 20).TransformPoint(1, 2)
	if x != 11 || y != 22 {
		t.Errorf("translate = (%g, %g)", x, y)
	}
	x, y = ScaleAffine(2, 3).TransformPoint(1, 2)
	if x != 2 || y != 6 {
		t.Errorf("scale = (%g, %g)", x, y)
	}
}

func TestAffineRotate(t *testing.T) {
	// Quarter turn maps (1, 0) to (0, 1).
	x, y := RotateAffine(math.Pi/2).TransformPoint(1, 0)
	if math.Abs(float64(x)) > 1e-6 || math.Abs(float64(y)-1) > 1e-6 {
		t.Errorf("quarter turn = (%g, %g), want (0, 1)", x, y)
	}
}

func TestAffineRotateAbout(t *testing.T) {
	// Half turn about (10, 10) maps (20, 10) to (0, 10).
	x, y := RotateAboutAffine(math.Pi, 10, 10).TransformPoint(20, 10)
	if math.Abs(float64(x)) > 1e-4 || math.Abs(float64(y)-10) > 1e-4 {
		t.Errorf("half turn about center = (%g, %g), want (0, 10)", x, y)
	}
	// The pivot stays fixed.
	x, y = RotateAboutAffine(1.234, 10, 10).TransformPoint(10, 10)
	if math.Abs(float64(x)-10) > 1e-4 || math.Abs(float64(y)-10) > 1e-4 {
		t.Errorf("pivot moved to (%g, %g)", x, y)
	}
}

func TestAffineMultiplyOrder(t *testing.T) {
	// Translate-then-scale differs from scale-then-translate.
	ts := ScaleAffine(2, 2).Multiply(TranslateAffine(1, 0))
	x, _ := ts.TransformPoint(0, 0)
	if x != 2 {
		t.Errorf("scale∘translate (0,0).x = %g, want 2", x)
	}
	st := TranslateAffine(1, 0).Multiply(ScaleAffine(2, 2))
	x, _ = st.TransformPoint(0, 0)
	if x != 1 {
		t.Errorf("translate∘scale (0,0).x = %g, want 1", x)
	}
}

func TestAffineInvert(t *testing.T) {
	a := TranslateAffine(5, -3).Multiply(ScaleAffine(2, 4)).Multiply(RotateAffine(0.3))
	inv, ok := a.Invert()
	if !ok {
		t.Fatal("invertible matrix reported degenerate")
	}
	x, y := a.TransformPoint(7, 11)
	bx, by := inv.TransformPoint(x, y)
	if math.Abs(float64(bx)-7) > 1e-3 || math.Abs(float64(by)-11) > 1e-3 {
		t.Errorf("round trip = (%g, %g), want (7, 11)", bx, by)
	}

	if _, ok := ScaleAffine(0, 1).Invert(); ok {
		t.Error("degenerate matrix reported invertible")
	}
}
