package scene

import (
	"testing"

	"github.com/gogpu/ggview"
)

func TestBuilderFills(t *testing.T) {
	sc := NewSceneBuilder().
		FillRect(0, 0, 100, 100, Solid(ggview.White)).
		FillCircle(50, 50, 20, Solid(ggview.Red)).
		Build()

	if sc.Len() != 2 {
		t.Fatalf("Len = %d, want 2", sc.Len())
	}
	if sc.Fills()[0].Style != FillNonZero {
		t.Errorf("default fill style = %v", sc.Fills()[0].Style)
	}
}

func TestBuilderFillWith(t *testing.T) {
	sc := NewSceneBuilder().
		FillWith(NewPath().Rectangle(0, 0, 10, 10), Solid(ggview.Blue), FillEvenOdd).
		Build()
	if sc.Fills()[0].Style != FillEvenOdd {
		t.Errorf("style = %v, want EvenOdd", sc.Fills()[0].Style)
	}
}

func TestBuilderTransformAccumulates(t *testing.T) {
	sc := NewSceneBuilder().
		Translate(10, 0).
		Translate(0, 20).
		FillRect(0, 0, 1, 1, Solid(ggview.White)).
		Build()

	x, y := sc.Fills()[0].Transform.TransformPoint(0, 0)
	if x != 10 || y != 20 {
		t.Errorf("accumulated transform maps origin to (%g, %g)", x, y)
	}
}

func TestBuilderSaveRestore(t *testing.T) {
	b := NewSceneBuilder().
		Translate(5, 5).
		Save().
		Scale(2, 2).
		Restore().
		FillRect(0, 0, 1, 1, Solid(ggview.White))

	x, _ := b.Build().Fills()[0].Transform.TransformPoint(1, 0)
	if x != 6 {
		t.Errorf("restored transform maps (1,0).x to %g, want 6", x)
	}

	// Restore on an empty stack falls back to identity.
	b.Restore()
	if !b.transform.IsIdentity() {
		t.Error("empty-stack Restore did not reset to identity")
	}
}

func TestBuilderFromExistingScene(t *testing.T) {
	sc := NewScene()
	sc.Fill(FillNonZero, IdentityAffine(), Solid(ggview.Red), NewPath().Rectangle(0, 0, 1, 1))

	out := NewSceneBuilderFrom(sc).
		FillRect(2, 2, 1, 1, Solid(ggview.Blue)).
		Build()
	if out != sc {
		t.Fatal("builder did not wrap the given scene")
	}
	if sc.Len() != 2 {
		t.Errorf("Len = %d, want 2", sc.Len())
	}

	if NewSceneBuilderFrom(nil).Build() == nil {
		t.Error("nil scene not replaced")
	}
}
