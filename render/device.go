// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// DeviceID identifies a logical device within a DeviceContext.
// IDs are small and dense; they index the context's device table.
type DeviceID int

// Device bundles the adapter, logical device, and queue for one GPU.
type Device struct {
	Adapter *wgpu.Adapter
	Device  *wgpu.Device
	Queue   *wgpu.Queue
}

// DeviceContext owns the WebGPU instance and all devices created through
// it. Surfaces hand out the DeviceID of the device they were configured
// with, so renderers can be cached per device.
//
// DeviceContext is confined to the thread that created it. All GPU
// mutation in ggview happens on the locked main thread.
type DeviceContext struct {
	instance *wgpu.Instance
	devices  []*Device
	released bool
}

// NewDeviceContext creates the WebGPU instance.
// Device acquisition is deferred until CreateSurface, where a compatible
// surface is available for adapter selection.
func NewDeviceContext() (*DeviceContext, error) {
	instance := wgpu.CreateInstance(nil)
	if instance == nil {
		return nil, fmt.Errorf("render: create instance failed")
	}
	return &DeviceContext{instance: instance}, nil
}

// CreateSurface creates a window surface from the descriptor, acquires a
// compatible adapter and device, and configures the surface at the given
// size and present mode.
//
// preferSoftware requests a CPU fallback adapter when the platform offers
// one. Initialization fails with ErrNoAdapter or ErrNoDevice when the host
// cannot provide a compatible adapter or device; both are fatal.
//
// This is the one-time blocking initialization phase: by the time
// CreateSurface returns, all GPU handles are live and the render loop can
// run fully synchronously.
func (dc *DeviceContext) CreateSurface(desc *wgpu.SurfaceDescriptor, width, height uint32, presentMode wgpu.PresentMode, preferSoftware bool) (*Surface, error) {
	surface := dc.instance.CreateSurface(desc)
	if surface == nil {
		return nil, fmt.Errorf("render: create surface failed")
	}

	adapter, err := dc.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: preferSoftware,
		CompatibleSurface:    surface,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoAdapter, err)
	}

	limits := wgpu.DefaultLimits()
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:          "ggview device",
		RequiredLimits: &wgpu.RequiredLimits{Limits: limits},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDevice, err)
	}
	queue := device.GetQueue()

	dev := &Device{Adapter: adapter, Device: device, Queue: queue}
	id := DeviceID(len(dc.devices))
	dc.devices = append(dc.devices, dev)

	caps := surface.GetCapabilities(adapter)
	if len(caps.Formats) == 0 {
		return nil, fmt.Errorf("%w: surface reports no formats", ErrNoAdapter)
	}
	config := wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       width,
		Height:      height,
		PresentMode: presentMode,
		AlphaMode:   caps.AlphaModes[0],
	}
	surface.Configure(adapter, device, &config)

	slogger().Info("render: surface created",
		"width", width, "height", height,
		"format", config.Format, "device", int(id),
		"softwareFallback", preferSoftware)

	return &Surface{
		surface:  surface,
		config:   config,
		adapter:  adapter,
		device:   device,
		deviceID: id,
	}, nil
}

// Device returns the device registered under id.
func (dc *DeviceContext) Device(id DeviceID) (*Device, error) {
	if int(id) < 0 || int(id) >= len(dc.devices) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDevice, int(id))
	}
	return dc.devices[id], nil
}

// DeviceCount returns the number of devices created so far.
func (dc *DeviceContext) DeviceCount() int {
	return len(dc.devices)
}

// Release frees all devices and the instance.
// Call only at shutdown, after every surface and renderer is gone.
func (dc *DeviceContext) Release() {
	if dc.released {
		return
	}
	dc.released = true
	for _, dev := range dc.devices {
		if dev.Device != nil {
			dev.Device.Release()
		}
		if dev.Adapter != nil {
			dev.Adapter.Release()
		}
	}
	dc.devices = nil
	if dc.instance != nil {
		dc.instance.Release()
		dc.instance = nil
	}
}
