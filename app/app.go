// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package app runs a ggview frame driver inside a native glfw window.
//
// The package owns the main-thread ceremony: glfw initialization, window
// creation, surface setup, the poll-and-tick loop, and ordered teardown.
// Callers provide scene content through a render.SceneProducer.
//
//	producer := render.SceneProducerFunc(buildFrame)
//	a, err := app.New(app.DefaultConfig(), producer)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := a.Run(); err != nil {
//		log.Fatal(err)
//	}
package app

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/ggview/render"
)

func init() {
	// glfw event processing must run on the main OS thread.
	runtime.LockOSThread()
}

// App owns a window and the frame driver presenting into it.
type App struct {
	window *glfw.Window
	driver *render.FrameDriver
	closed bool
}

// New creates the window and brings up the full GPU stack behind it.
// Must be called from the main goroutine.
func New(cfg Config, producer render.SceneProducer) (*App, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("app: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("app: create window: %w", err)
	}

	ctx, err := render.NewDeviceContext()
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, err
	}

	presentMode := wgpu.PresentModeFifo
	if !cfg.VSync {
		presentMode = wgpu.PresentModeImmediate
	}

	// The framebuffer size is what the surface renders at; on HiDPI
	// displays it differs from the window size.
	fbWidth, fbHeight := window.GetFramebufferSize()
	surf, err := ctx.CreateSurface(
		wgpuglfw.GetSurfaceDescriptor(window),
		uint32(fbWidth), uint32(fbHeight),
		presentMode, cfg.PreferSoftware)
	if err != nil {
		ctx.Release()
		window.Destroy()
		glfw.Terminate()
		return nil, err
	}

	opts := render.Options{
		BaseColor:  cfg.baseColor(),
		ClearColor: cfg.clearColor(),
	}
	driver, err := render.NewFrameDriver(ctx, surf, producer, opts)
	if err != nil {
		surf.Release()
		ctx.Release()
		window.Destroy()
		glfw.Terminate()
		return nil, err
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		driver.RequestResize(uint32(width), uint32(height))
	})

	return &App{window: window, driver: driver}, nil
}

// Driver exposes the frame driver, mainly so callers can request
// resizes or inspect state from input callbacks.
func (a *App) Driver() *render.FrameDriver { return a.driver }

// Window exposes the underlying glfw window for input callbacks.
func (a *App) Window() *glfw.Window { return a.window }

// Run polls events and ticks the driver until the window closes or a
// fatal render error occurs. It always tears the app down before
// returning. Must be called from the main goroutine.
func (a *App) Run() error {
	start := time.Now()
	var tickErr error
	for !a.window.ShouldClose() {
		glfw.PollEvents()
		if err := a.driver.Tick(time.Since(start)); err != nil {
			if !errors.Is(err, render.ErrDriverClosed) {
				tickErr = err
			}
			break
		}
	}
	a.Close()
	return tickErr
}

// Close tears down the driver, then the window, then glfw. Idempotent.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.driver.Close()
	a.window.Destroy()
	glfw.Terminate()
}
