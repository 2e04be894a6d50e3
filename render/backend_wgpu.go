// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/ggview"
	"github.com/gogpu/ggview/scene"
)

// wgpuBackend is the production driverBackend: it wires the surface, the
// intermediate target, the compositor, and the per-device scene
// renderers together over real GPU handles.
type wgpuBackend struct {
	ctx  *DeviceContext
	surf *Surface

	target     Target
	compositor *Compositor

	// renderers are created lazily and cached per device id.
	renderers map[DeviceID]*SceneRenderer
}

func newWGPUBackend(ctx *DeviceContext, surf *Surface, clear ggview.RGBA) (*wgpuBackend, error) {
	dev, err := ctx.Device(surf.DeviceID())
	if err != nil {
		return nil, err
	}
	compositor, err := NewCompositor(dev, surf.Format(), clear)
	if err != nil {
		return nil, err
	}
	return &wgpuBackend{
		ctx:        ctx,
		surf:       surf,
		compositor: compositor,
		renderers:  make(map[DeviceID]*SceneRenderer),
	}, nil
}

// rendererFor returns the cached scene renderer for id, creating it on
// first use.
func (b *wgpuBackend) rendererFor(id DeviceID) (*SceneRenderer, error) {
	if r, ok := b.renderers[id]; ok {
		return r, nil
	}
	dev, err := b.ctx.Device(id)
	if err != nil {
		return nil, err
	}
	r := NewSceneRenderer(dev)
	b.renderers[id] = r
	return r, nil
}

func (b *wgpuBackend) Resize(width, height uint32) {
	b.surf.Resize(width, height)
}

func (b *wgpuBackend) InvalidateTarget() {
	// Bind group first: it holds a reference to the target view.
	b.compositor.InvalidateBindGroup()
	b.target.Invalidate()
}

func (b *wgpuBackend) EnsureTarget(width, height uint32) (bool, error) {
	dev, err := b.ctx.Device(b.surf.DeviceID())
	if err != nil {
		return false, err
	}
	return b.target.Ensure(dev, width, height)
}

func (b *wgpuBackend) RenderScene(sc *scene.Scene, params RenderParams) error {
	r, err := b.rendererFor(b.surf.DeviceID())
	if err != nil {
		return err
	}
	return r.RenderToTexture(sc, &b.target, params)
}

func (b *wgpuBackend) AcquireFrame() (presentable, error) {
	frame, err := b.surf.AcquireFrame()
	if err != nil {
		return nil, err
	}
	return frame, nil
}

func (b *wgpuBackend) Composite(f presentable) error {
	frame, ok := f.(*Frame)
	if !ok {
		f.Release()
		return fmt.Errorf("render: unexpected frame type %T", f)
	}
	return b.compositor.Composite(&b.target, frame)
}

// releaser is anything holding GPU resources the backend owns.
type releaser interface {
	Release()
}

// teardown returns the backend's resources in release order: compositor
// state referencing the target, the target, the surface, the scene
// renderers, and the device context last.
func (b *wgpuBackend) teardown() []releaser {
	order := []releaser{b.compositor, &b.target, b.surf}
	for _, r := range b.renderers {
		order = append(order, r)
	}
	return append(order, b.ctx)
}

// Release tears down all resources in dependency order.
func (b *wgpuBackend) Release() {
	for _, r := range b.teardown() {
		r.Release()
	}
	b.renderers = nil
}
