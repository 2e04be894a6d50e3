// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster renders scenes on the CPU into RGBA8 pixel buffers.
//
// Path coverage is computed analytically by golang.org/x/image/vector,
// which flattens Bezier curves internally. Brush colors are composited
// over the buffer in linear space using the coverage as alpha.
package raster

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gogpu/ggview"
	"github.com/gogpu/ggview/internal/color"
	"github.com/gogpu/ggview/scene"
)

// Rasterizer renders scenes into an internal pixel buffer.
// The buffer is reallocated only when the size changes, so a Rasterizer
// can be reused across frames without steady-state allocation.
//
// Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	width  int
	height int
	pix    []byte // RGBA8, straight alpha, sRGB

	cov  *vector.Rasterizer
	mask *image.Alpha // per-command coverage, full buffer size
}

// New creates a new Rasterizer with no backing buffer.
// Resize must be called before Render.
func New() *Rasterizer {
	return &Rasterizer{
		cov: &vector.Rasterizer{},
	}
}

// Resize sets the output size in pixels.
// The pixel buffer is reallocated only when the size actually changes.
func (r *Rasterizer) Resize(width, height int) {
	if width == r.width && height == r.height {
		return
	}
	r.width = width
	r.height = height
	r.pix = make([]byte, width*height*4)
	r.mask = image.NewAlpha(image.Rect(0, 0, width, height))
}

// Width returns the buffer width in pixels.
func (r *Rasterizer) Width() int { return r.width }

// Height returns the buffer height in pixels.
func (r *Rasterizer) Height() int { return r.height }

// Pixels returns the pixel buffer in RGBA8 order.
// The slice is owned by the rasterizer and overwritten by the next Render.
func (r *Rasterizer) Pixels() []byte { return r.pix }

// Stride returns the number of bytes per pixel row.
func (r *Rasterizer) Stride() int { return r.width * 4 }

// Render clears the buffer to base and draws all scene commands in paint
// order. The aa mode selects the coverage strategy; multisample modes fall
// back to analytic area coverage, which the vector rasterizer computes
// natively.
func (r *Rasterizer) Render(sc *scene.Scene, base ggview.RGBA, aa ggview.AAMode) {
	_ = aa // all modes resolve to area coverage on the CPU

	r.clear(base)
	if sc == nil {
		return
	}
	for _, cmd := range sc.Fills() {
		r.fill(cmd)
	}
}

// clear fills the buffer with the base color.
func (r *Rasterizer) clear(base ggview.RGBA) {
	cr := uint8(clamp255(base.R * 255))
	cg := uint8(clamp255(base.G * 255))
	cb := uint8(clamp255(base.B * 255))
	ca := uint8(clamp255(base.A * 255))
	for i := 0; i < len(r.pix); i += 4 {
		r.pix[i] = cr
		r.pix[i+1] = cg
		r.pix[i+2] = cb
		r.pix[i+3] = ca
	}
}

// fill rasterizes one command: coverage first, then brush compositing
// over the clipped device-space bounds of the path.
func (r *Rasterizer) fill(cmd scene.FillCommand) {
	path := cmd.Path
	if path == nil || path.IsEmpty() || r.width == 0 || r.height == 0 {
		return
	}

	transformed := path
	if !cmd.Transform.IsIdentity() {
		transformed = path.Transform(cmd.Transform)
	}

	clip := r.clipBounds(transformed.Bounds())
	if clip.Empty() {
		return
	}

	r.coverage(transformed)

	// Brushes sample in path-local coordinates: map each device pixel
	// back through the command transform.
	inverse := scene.IdentityAffine()
	if !cmd.Transform.IsIdentity() {
		inv, ok := cmd.Transform.Invert()
		if !ok {
			return
		}
		inverse = inv
	}

	if solid, ok := cmd.Brush.(scene.SolidBrush); ok {
		r.blendSolid(clip, solid.Color)
		return
	}
	r.blendBrush(clip, cmd.Brush, inverse)
}

// coverage renders the path's analytic coverage into the mask.
// The vector rasterizer resolves interiors with the non-zero winding
// rule; even-odd fills of self-overlapping paths differ. TODO: run a
// second accumulation pass with parity counting for even-odd.
func (r *Rasterizer) coverage(path *scene.Path) {
	z := r.cov
	z.Reset(r.width, r.height)
	z.DrawOp = draw.Src

	open := false
	for elem := range path.Elements() {
		switch elem.Verb {
		case scene.VerbMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(elem.Points[0].X, elem.Points[0].Y)
			open = true
		case scene.VerbLineTo:
			z.LineTo(elem.Points[0].X, elem.Points[0].Y)
		case scene.VerbQuadTo:
			z.QuadTo(elem.Points[0].X, elem.Points[0].Y,
				elem.Points[1].X, elem.Points[1].Y)
		case scene.VerbCubicTo:
			z.CubeTo(elem.Points[0].X, elem.Points[0].Y,
				elem.Points[1].X, elem.Points[1].Y,
				elem.Points[2].X, elem.Points[2].Y)
		case scene.VerbClose:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}

	z.Draw(r.mask, r.mask.Bounds(), image.Opaque, image.Point{})
}

// blendSolid composites a uniform color over the clip rect using the
// coverage mask. The source color is converted to linear once.
func (r *Rasterizer) blendSolid(clip image.Rectangle, c ggview.RGBA) {
	srcR := color.SRGBToLinear(float32(c.R))
	srcG := color.SRGBToLinear(float32(c.G))
	srcB := color.SRGBToLinear(float32(c.B))
	srcA := float32(c.A)

	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		maskRow := r.mask.Pix[y*r.mask.Stride:]
		pixRow := r.pix[y*r.width*4:]
		for x := clip.Min.X; x < clip.Max.X; x++ {
			cov := maskRow[x]
			if cov == 0 {
				continue
			}
			alpha := srcA * float32(cov) / 255
			r.blendPixel(pixRow[x*4:x*4+4], srcR, srcG, srcB, alpha)
		}
	}
}

// blendBrush composites a gradient brush over the clip rect, sampling the
// brush per pixel at the pixel center mapped into path-local space.
func (r *Rasterizer) blendBrush(clip image.Rectangle, brush scene.Brush, inverse scene.Affine) {
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		maskRow := r.mask.Pix[y*r.mask.Stride:]
		pixRow := r.pix[y*r.width*4:]
		for x := clip.Min.X; x < clip.Max.X; x++ {
			cov := maskRow[x]
			if cov == 0 {
				continue
			}
			lx, ly := inverse.TransformPoint(float32(x)+0.5, float32(y)+0.5)
			c := brush.ColorAt(float64(lx), float64(ly))
			alpha := float32(c.A) * float32(cov) / 255
			r.blendPixel(pixRow[x*4:x*4+4],
				color.SRGBToLinear(float32(c.R)),
				color.SRGBToLinear(float32(c.G)),
				color.SRGBToLinear(float32(c.B)),
				alpha)
		}
	}
}

// blendPixel blends a linear-space source color over one destination pixel.
func (r *Rasterizer) blendPixel(dst []byte, srcR, srcG, srcB, alpha float32) {
	if alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	dstR := color.SRGBToLinearFast(dst[0])
	dstG := color.SRGBToLinearFast(dst[1])
	dstB := color.SRGBToLinearFast(dst[2])
	dstA := float32(dst[3]) / 255

	inv := 1 - alpha
	dst[0] = color.LinearToSRGBFast(srcR*alpha + dstR*inv)
	dst[1] = color.LinearToSRGBFast(srcG*alpha + dstG*inv)
	dst[2] = color.LinearToSRGBFast(srcB*alpha + dstB*inv)
	outA := alpha + dstA*inv
	dst[3] = uint8(clamp255(float64(outA) * 255))
}

// clipBounds converts path bounds to an integer pixel rectangle clipped
// to the buffer.
func (r *Rasterizer) clipBounds(b scene.Rect) image.Rectangle {
	if b.IsEmpty() {
		return image.Rectangle{}
	}
	rect := image.Rect(
		int(b.MinX), int(b.MinY),
		int(b.MaxX)+1, int(b.MaxY)+1,
	)
	return rect.Intersect(image.Rect(0, 0, r.width, r.height))
}

func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
