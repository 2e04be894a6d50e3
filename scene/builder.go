package scene

// SceneBuilder provides a fluent API for constructing scenes ergonomically.
// It wraps a Scene and provides chainable fill methods plus transform
// management.
//
// The builder maintains its own transform state that accumulates with each
// transform operation. Use ResetTransform to clear the accumulated
// transform, or Save/Restore for nested transforms.
//
// Example:
//
//	sc := NewSceneBuilder().
//	    FillRect(0, 0, 800, 600, Solid(ggview.White)).
//	    Translate(100, 100).
//	    FillCircle(0, 0, 50, Solid(ggview.Red)).
//	    Build()
type SceneBuilder struct {
	scene     *Scene
	transform Affine
	saved     []Affine
}

// NewSceneBuilder creates a new scene builder with an empty scene.
func NewSceneBuilder() *SceneBuilder {
	return &SceneBuilder{
		scene:     NewScene(),
		transform: IdentityAffine(),
	}
}

// NewSceneBuilderFrom creates a scene builder appending to an existing
// scene.
func NewSceneBuilderFrom(sc *Scene) *SceneBuilder {
	if sc == nil {
		sc = NewScene()
	}
	return &SceneBuilder{
		scene:     sc,
		transform: IdentityAffine(),
	}
}

// Fill fills a path with the given brush using the non-zero winding rule.
func (b *SceneBuilder) Fill(path *Path, brush Brush) *SceneBuilder {
	b.scene.Fill(FillNonZero, b.transform, brush, path)
	return b
}

// FillWith fills a path with the given brush and fill style.
func (b *SceneBuilder) FillWith(path *Path, brush Brush, style FillStyle) *SceneBuilder {
	b.scene.Fill(style, b.transform, brush, path)
	return b
}

// FillRect fills an axis-aligned rectangle.
func (b *SceneBuilder) FillRect(x, y, width, height float32, brush Brush) *SceneBuilder {
	return b.Fill(NewPath().Rectangle(x, y, width, height), brush)
}

// FillCircle fills a circle centered at (cx, cy).
func (b *SceneBuilder) FillCircle(cx, cy, r float32, brush Brush) *SceneBuilder {
	return b.Fill(NewPath().Circle(cx, cy, r), brush)
}

// Transform sets the current transform, replacing any existing transform.
func (b *SceneBuilder) Transform(t Affine) *SceneBuilder {
	b.transform = t
	return b
}

// Translate applies a translation to the current transform.
func (b *SceneBuilder) Translate(x, y float32) *SceneBuilder {
	b.transform = b.transform.Multiply(TranslateAffine(x, y))
	return b
}

// Scale applies a scale to the current transform.
func (b *SceneBuilder) Scale(x, y float32) *SceneBuilder {
	b.transform = b.transform.Multiply(ScaleAffine(x, y))
	return b
}

// Rotate applies a rotation (radians) to the current transform.
func (b *SceneBuilder) Rotate(angle float32) *SceneBuilder {
	b.transform = b.transform.Multiply(RotateAffine(angle))
	return b
}

// ResetTransform clears the accumulated transform back to identity.
func (b *SceneBuilder) ResetTransform() *SceneBuilder {
	b.transform = IdentityAffine()
	return b
}

// Save pushes the current transform onto a stack.
func (b *SceneBuilder) Save() *SceneBuilder {
	b.saved = append(b.saved, b.transform)
	return b
}

// Restore pops the most recently saved transform. Restoring with an
// empty stack resets to identity.
func (b *SceneBuilder) Restore() *SceneBuilder {
	if n := len(b.saved); n > 0 {
		b.transform = b.saved[n-1]
		b.saved = b.saved[:n-1]
	} else {
		b.transform = IdentityAffine()
	}
	return b
}

// Build returns the constructed scene.
func (b *SceneBuilder) Build() *Scene {
	return b.scene
}
