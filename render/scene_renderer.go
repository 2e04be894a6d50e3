// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/ggview"
	"github.com/gogpu/ggview/internal/raster"
	"github.com/gogpu/ggview/scene"
)

// RenderParams carries the per-frame parameters of a scene render.
type RenderParams struct {
	// BaseColor fills the target before any scene content.
	BaseColor ggview.RGBA

	// Width and Height are the target dimensions in pixels.
	Width  uint32
	Height uint32

	// Antialias selects the coverage strategy.
	Antialias ggview.AAMode
}

// SceneRenderer renders vector scenes into intermediate targets for one
// device. The scene is rasterized on the CPU into a reusable buffer and
// uploaded to the target texture through the device queue.
//
// Renderers are created lazily per device id and cached for the lifetime
// of the frame driver; creation is cheap but the rasterizer's pixel
// buffer is worth reusing across frames.
type SceneRenderer struct {
	dev *Device
	ras *raster.Rasterizer
}

// NewSceneRenderer creates a renderer bound to dev.
func NewSceneRenderer(dev *Device) *SceneRenderer {
	return &SceneRenderer{
		dev: dev,
		ras: raster.New(),
	}
}

// RenderToTexture rasterizes sc at the params size and uploads the result
// into target. The target must already exist at exactly the params size.
//
// Errors are per-frame: the caller skips compositing for this tick and
// tries again on the next one.
func (r *SceneRenderer) RenderToTexture(sc *scene.Scene, target *Target, params RenderParams) error {
	if params.Width == 0 || params.Height == 0 {
		return fmt.Errorf("render: zero-size scene render (%dx%d)", params.Width, params.Height)
	}
	if target.Texture() == nil {
		return fmt.Errorf("render: scene render into empty target")
	}
	if target.Width() != params.Width || target.Height() != params.Height {
		return fmt.Errorf("render: target size %dx%d does not match params %dx%d",
			target.Width(), target.Height(), params.Width, params.Height)
	}

	r.ras.Resize(int(params.Width), int(params.Height))
	r.ras.Render(sc, params.BaseColor, params.Antialias)

	r.dev.Queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  target.Texture(),
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		r.ras.Pixels(),
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  params.Width * 4,
			RowsPerImage: params.Height,
		},
		&wgpu.Extent3D{
			Width:              params.Width,
			Height:             params.Height,
			DepthOrArrayLayers: 1,
		},
	)
	return nil
}

// Release drops the rasterizer buffer.
func (r *SceneRenderer) Release() {
	r.ras = nil
}
