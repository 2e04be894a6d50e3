// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// TargetFormat is the pixel format of the intermediate scene texture.
// The scene renderer uploads straight RGBA8 pixels into it and the
// compositor samples it.
const TargetFormat = wgpu.TextureFormatRGBA8Unorm

// Target is the off-screen texture the scene is rendered into before
// compositing. It carries a generation counter: every (re)creation bumps
// the generation, which downstream consumers (the compositor bind group)
// compare against to know their cached view is gone.
//
// The zero Target is valid and empty; generation 0 means no texture has
// ever existed, so anything "built for" generation 0 is never current.
type Target struct {
	texture    *wgpu.Texture
	view       *wgpu.TextureView
	width      uint32
	height     uint32
	generation uint64
}

// Width returns the current texture width, 0 when empty.
func (t *Target) Width() uint32 { return t.width }

// Height returns the current texture height, 0 when empty.
func (t *Target) Height() uint32 { return t.height }

// Generation returns the creation counter. It changes whenever the
// underlying texture is replaced.
func (t *Target) Generation() uint64 { return t.generation }

// View returns the sampled view of the current texture, nil when empty.
func (t *Target) View() *wgpu.TextureView { return t.view }

// Texture returns the current texture, nil when empty.
func (t *Target) Texture() *wgpu.Texture { return t.texture }

// Ensure makes the target exist at exactly width x height, recreating the
// texture on any size mismatch. It reports whether the texture was
// (re)created; a true result invalidates every view previously obtained
// from this target.
func (t *Target) Ensure(dev *Device, width, height uint32) (rebuilt bool, err error) {
	if t.texture != nil && t.width == width && t.height == height {
		return false, nil
	}

	t.Invalidate()

	texture, err := dev.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "ggview scene target",
		Size: wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        TargetFormat,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst | wgpu.TextureUsageCopySrc,
	})
	if err != nil {
		return false, fmt.Errorf("render: target texture creation failed: %w", err)
	}
	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return false, fmt.Errorf("render: target view creation failed: %w", err)
	}

	t.texture = texture
	t.view = view
	t.width = width
	t.height = height
	t.generation++

	slogger().Debug("render: target recreated",
		"width", width, "height", height, "generation", t.generation)

	return true, nil
}

// Invalidate drops the texture, forcing the next Ensure to recreate it.
// Called when the surface is resized.
func (t *Target) Invalidate() {
	if t.view != nil {
		t.view.Release()
		t.view = nil
	}
	if t.texture != nil {
		t.texture.Release()
		t.texture = nil
	}
	t.width = 0
	t.height = 0
}

// Release frees the texture. Identical to Invalidate; named separately
// for teardown call sites.
func (t *Target) Release() {
	t.Invalidate()
}
