// Package scene provides the vector scene model for ggview: paths, affine
// transforms, brushes, and the per-frame command list that a renderer
// consumes. A Scene is rebuilt from scratch every frame; Reset keeps the
// backing arrays so steady-state building does not allocate.
package scene

// FillStyle determines how path interiors are resolved.
type FillStyle int

const (
	// FillNonZero uses the non-zero winding rule (default).
	FillNonZero FillStyle = iota
	// FillEvenOdd uses the even-odd rule.
	FillEvenOdd
)

func (f FillStyle) String() string {
	switch f {
	case FillNonZero:
		return "NonZero"
	case FillEvenOdd:
		return "EvenOdd"
	}
	return "Unknown"
}

// FillCommand is a single recorded fill operation.
type FillCommand struct {
	Style     FillStyle
	Transform Affine
	Brush     Brush
	Path      *Path
}

// Scene accumulates drawing operations for one frame.
//
// Commands are replayed in insertion order (painter's algorithm). The
// caller rebuilds the scene every frame:
//
//	sc.Reset()
//	sc.Fill(scene.FillNonZero, transform, brush, path)
type Scene struct {
	fills []FillCommand

	// version is incremented on each modification for cache invalidation
	version uint64

	// bounds tracks the cumulative bounding box of all content
	bounds Rect
}

// NewScene creates a new empty scene.
func NewScene() *Scene {
	return &Scene{
		fills:  make([]FillCommand, 0, 16),
		bounds: EmptyRect(),
	}
}

// Reset clears the scene for reuse without deallocating memory.
func (s *Scene) Reset() {
	for i := range s.fills {
		s.fills[i] = FillCommand{}
	}
	s.fills = s.fills[:0]
	s.bounds = EmptyRect()
	s.version++
}

// Fill records a fill of path with the given style, transform, and brush.
// Nil or empty paths are ignored.
func (s *Scene) Fill(style FillStyle, transform Affine, brush Brush, path *Path) {
	if path == nil || path.IsEmpty() || brush == nil {
		return
	}

	s.fills = append(s.fills, FillCommand{
		Style:     style,
		Transform: transform,
		Brush:     brush,
		Path:      path,
	})

	pathBounds := path.Bounds()
	if !transform.IsIdentity() {
		pathBounds = transformBounds(pathBounds, transform)
	}
	s.bounds = s.bounds.Union(pathBounds)

	s.version++
}

// Fills returns the recorded fill commands in paint order.
// The returned slice is owned by the scene and valid until the next Reset.
func (s *Scene) Fills() []FillCommand {
	return s.fills
}

// IsEmpty returns true if the scene has no commands.
func (s *Scene) IsEmpty() bool {
	return len(s.fills) == 0
}

// Len returns the number of recorded commands.
func (s *Scene) Len() int {
	return len(s.fills)
}

// Version returns a counter that changes on every scene modification.
func (s *Scene) Version() uint64 {
	return s.version
}

// Bounds returns the cumulative bounding box of all recorded content.
func (s *Scene) Bounds() Rect {
	return s.bounds
}

// transformBounds transforms a rectangle's corners and returns the new
// axis-aligned bounding box.
func transformBounds(r Rect, t Affine) Rect {
	if r.IsEmpty() {
		return r
	}
	out := EmptyRect()
	x0, y0 := t.TransformPoint(r.MinX, r.MinY)
	x1, y1 := t.TransformPoint(r.MaxX, r.MinY)
	x2, y2 := t.TransformPoint(r.MaxX, r.MaxY)
	x3, y3 := t.TransformPoint(r.MinX, r.MaxY)
	out = out.UnionPoint(x0, y0)
	out = out.UnionPoint(x1, y1)
	out = out.UnionPoint(x2, y2)
	out = out.UnionPoint(x3, y3)
	return out
}
