// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// Surface wraps a configured window surface together with its current
// swapchain configuration. The surface does not own the native window;
// the window must outlive the Surface.
type Surface struct {
	surface  *wgpu.Surface
	config   wgpu.SurfaceConfiguration
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	deviceID DeviceID
	released bool
}

// DeviceID returns the id of the device the surface is configured with.
func (s *Surface) DeviceID() DeviceID { return s.deviceID }

// Size returns the current configured size in pixels.
func (s *Surface) Size() (width, height uint32) {
	return s.config.Width, s.config.Height
}

// Format returns the swapchain texture format.
func (s *Surface) Format() wgpu.TextureFormat { return s.config.Format }

// Resize reconfigures the swapchain at the new size.
// A zero width or height (minimized window) is a no-op: the previous
// configuration stays valid and no swapchain work happens.
func (s *Surface) Resize(width, height uint32) {
	if width == 0 || height == 0 {
		return
	}
	s.config.Width = width
	s.config.Height = height
	s.surface.Configure(s.adapter, s.device, &s.config)
}

// Frame is one acquired swapchain image. Exactly one of Present or
// Release must be called on it.
type Frame struct {
	surface *Surface
	texture *wgpu.Texture
	view    *wgpu.TextureView
}

// View returns the render-attachment view for this frame.
func (f *Frame) View() *wgpu.TextureView { return f.view }

// Present shows the frame and releases its handles.
func (f *Frame) Present() {
	f.surface.surface.Present()
	f.drop()
}

// Release abandons the frame without presenting.
func (f *Frame) Release() {
	f.drop()
}

func (f *Frame) drop() {
	if f.view != nil {
		f.view.Release()
		f.view = nil
	}
	if f.texture != nil {
		f.texture.Release()
		f.texture = nil
	}
}

// AcquireFrame acquires the next swapchain image.
//
// Failures are classified: a timeout, an outdated swapchain, or a lost
// surface wrap ErrSurfaceStale and should be retried on the next tick
// (the surface stays configured). Any other failure is fatal.
func (s *Surface) AcquireFrame() (*Frame, error) {
	texture, err := s.surface.GetCurrentTexture()
	if err != nil {
		return nil, classifyAcquire(err)
	}
	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, fmt.Errorf("render: frame view creation failed: %w", err)
	}
	return &Frame{surface: s, texture: texture, view: view}, nil
}

// Release frees the surface's swapchain resources.
// The native window is untouched; it is owned by the caller.
func (s *Surface) Release() {
	if s.released {
		return
	}
	s.released = true
	if s.surface != nil {
		s.surface.Release()
		s.surface = nil
	}
}

// classifyAcquire sorts swapchain acquisition failures into retryable
// (wrapping ErrSurfaceStale) and fatal. wgpu-native reports the condition
// only in the error text, so matching is by substring.
func classifyAcquire(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timeout"),
		strings.Contains(msg, "timed out"),
		strings.Contains(msg, "outdated"),
		strings.Contains(msg, "lost"):
		return fmt.Errorf("%w: %v", ErrSurfaceStale, err)
	}
	return fmt.Errorf("render: surface acquire failed: %w", err)
}
