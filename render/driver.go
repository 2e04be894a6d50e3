// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"time"

	"github.com/gogpu/ggview"
	"github.com/gogpu/ggview/scene"
)

// DriverState is the lifecycle state of a FrameDriver.
type DriverState uint8

const (
	// StateUninitialized is the state before GPU resources exist.
	StateUninitialized DriverState = iota
	// StateReady means the driver can tick.
	StateReady
	// StateResizing is transient while a pending resize is applied.
	StateResizing
	// StateShuttingDown is transient while resources are torn down.
	StateShuttingDown
	// StateTerminated is final; the driver cannot be used again.
	StateTerminated
)

func (s DriverState) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateReady:
		return "Ready"
	case StateResizing:
		return "Resizing"
	case StateShuttingDown:
		return "ShuttingDown"
	case StateTerminated:
		return "Terminated"
	}
	return "Unknown"
}

// SceneProducer rebuilds the frame's scene content on every tick.
// Implementations must be pure functions of the tick inputs; the driver
// owns the scene and resets it before each Build call.
type SceneProducer interface {
	Build(sc *scene.Scene, elapsed time.Duration, width, height uint32)
}

// SceneProducerFunc adapts a function to the SceneProducer interface.
type SceneProducerFunc func(sc *scene.Scene, elapsed time.Duration, width, height uint32)

// Build implements SceneProducer.
func (f SceneProducerFunc) Build(sc *scene.Scene, elapsed time.Duration, width, height uint32) {
	f(sc, elapsed, width, height)
}

// Options configures a FrameDriver.
type Options struct {
	// BaseColor fills the intermediate target before scene content.
	BaseColor ggview.RGBA

	// ClearColor clears the surface before the blit. Visible only where
	// the blit does not cover (it always covers, so effectively never,
	// but a wrong clear color shows up immediately if the blit breaks).
	ClearColor ggview.RGBA

	// Antialias selects the scene renderer's coverage strategy.
	Antialias ggview.AAMode
}

// DefaultOptions returns the stock near-black base over a blue clear.
func DefaultOptions() Options {
	return Options{
		BaseColor:  ggview.RGB8(20, 20, 20),
		ClearColor: ggview.Blue,
		Antialias:  ggview.AAArea,
	}
}

// presentable is one acquired frame as the driver sees it: something
// that is either composited (which presents it) or released.
type presentable interface {
	Release()
}

// driverBackend abstracts the GPU-facing operations the driver
// sequences, so the state machine is testable without a device.
// The production implementation is wgpuBackend.
type driverBackend interface {
	// Resize reconfigures the surface. Zero dimensions are a no-op.
	Resize(width, height uint32)
	// InvalidateTarget drops the intermediate target and any compositor
	// state derived from it.
	InvalidateTarget()
	// EnsureTarget makes the intermediate target exist at the given size,
	// reporting whether it was (re)created.
	EnsureTarget(width, height uint32) (bool, error)
	// RenderScene renders the scene into the intermediate target.
	RenderScene(sc *scene.Scene, params RenderParams) error
	// AcquireFrame acquires the next swapchain image. Retryable failures
	// wrap ErrSurfaceStale.
	AcquireFrame() (presentable, error)
	// Composite blits the intermediate target over the frame and
	// presents it.
	Composite(f presentable) error
	// Release tears down all resources in dependency order.
	Release()
}

// pendingResize is a coalesced resize request. Only the last requested
// size survives until the next tick.
type pendingResize struct {
	width  uint32
	height uint32
}

// FrameDriver sequences one frame per Tick: pending resize, target
// management, scene production, scene render, swapchain acquire, and
// composite. It owns the per-frame scene and the GPU resources behind
// the backend.
//
// FrameDriver is single-threaded. All methods must be called from the
// same goroutine, normally the locked main thread running the window
// poll loop.
type FrameDriver struct {
	backend  driverBackend
	producer SceneProducer
	opts     Options

	sc      *scene.Scene
	state   DriverState
	width   uint32
	height  uint32
	pending *pendingResize
	inTick  bool
}

// NewFrameDriver builds the production driver over ctx and surf.
// The compositor pipeline is created here; a shader or pipeline failure
// is fatal. On success the driver is Ready and takes ownership of surf
// and ctx, releasing both in Close.
func NewFrameDriver(ctx *DeviceContext, surf *Surface, producer SceneProducer, opts Options) (*FrameDriver, error) {
	backend, err := newWGPUBackend(ctx, surf, opts.ClearColor)
	if err != nil {
		return nil, err
	}
	width, height := surf.Size()
	return newFrameDriver(backend, producer, opts, width, height), nil
}

// newFrameDriver wires a driver over any backend. Tests install fakes
// through this path.
func newFrameDriver(backend driverBackend, producer SceneProducer, opts Options, width, height uint32) *FrameDriver {
	d := &FrameDriver{
		backend:  backend,
		producer: producer,
		opts:     opts,
		sc:       scene.NewScene(),
		state:    StateUninitialized,
		width:    width,
		height:   height,
	}
	d.state = StateReady
	return d
}

// State returns the current lifecycle state.
func (d *FrameDriver) State() DriverState { return d.state }

// Size returns the driver's current logical surface size.
func (d *FrameDriver) Size() (width, height uint32) { return d.width, d.height }

// RequestResize records a resize to apply at the start of the next tick.
// Requests coalesce: only the last size before the tick wins. Safe to
// call from window event callbacks, which run on the same thread as the
// poll loop.
func (d *FrameDriver) RequestResize(width, height uint32) {
	if d.state == StateShuttingDown || d.state == StateTerminated {
		return
	}
	d.pending = &pendingResize{width: width, height: height}
}

// Tick renders and presents one frame.
//
// Order: apply the pending resize (reconfigure surface, invalidate target
// and compositor bind group), skip everything while zero-sized, ensure
// the intermediate target, rebuild the scene, render it, acquire a
// swapchain frame, composite and present. A stale swapchain logs a
// warning and returns nil so the caller simply ticks again.
func (d *FrameDriver) Tick(elapsed time.Duration) error {
	if d.state == StateShuttingDown || d.state == StateTerminated {
		return ErrDriverClosed
	}

	// Close may be called from a callback while this tick runs; teardown
	// then waits until the tick unwinds.
	d.inTick = true
	defer func() {
		d.inTick = false
		if d.state == StateShuttingDown {
			d.release()
		}
	}()

	if d.pending != nil {
		req := *d.pending
		d.pending = nil
		if req.width != 0 && req.height != 0 {
			d.state = StateResizing
			d.backend.Resize(req.width, req.height)
			d.backend.InvalidateTarget()
			d.width = req.width
			d.height = req.height
			d.state = StateReady
		}
		// Zero-dimension requests are benign no-ops: the previous
		// configuration stays valid.
	}

	if d.width == 0 || d.height == 0 {
		return nil
	}

	if _, err := d.backend.EnsureTarget(d.width, d.height); err != nil {
		return err
	}

	d.sc.Reset()
	d.producer.Build(d.sc, elapsed, d.width, d.height)

	// The producer is the only user code that runs mid-tick; if it
	// closed the driver, nothing further is rendered or presented.
	if d.state != StateReady {
		return ErrDriverClosed
	}

	params := RenderParams{
		BaseColor: d.opts.BaseColor,
		Width:     d.width,
		Height:    d.height,
		Antialias: d.opts.Antialias,
	}
	if err := d.backend.RenderScene(d.sc, params); err != nil {
		if errors.Is(err, ErrDeviceLost) {
			return err
		}
		slogger().Error("render: scene render failed, skipping frame", "err", err)
		return nil
	}

	frame, err := d.backend.AcquireFrame()
	if err != nil {
		if errors.Is(err, ErrSurfaceStale) {
			slogger().Warn("render: swapchain stale, skipping frame", "err", err)
			return nil
		}
		return err
	}

	return d.backend.Composite(frame)
}

// Close tears everything down in dependency order and terminates the
// driver. Idempotent. After Close, Tick returns ErrDriverClosed and no
// frame is ever presented again.
func (d *FrameDriver) Close() {
	if d.state == StateShuttingDown || d.state == StateTerminated {
		return
	}
	d.state = StateShuttingDown
	d.pending = nil
	if d.inTick {
		// The running tick stops at its next state check and completes
		// the teardown as it unwinds.
		return
	}
	d.release()
}

// release frees the backend and finalizes the shutdown.
func (d *FrameDriver) release() {
	d.backend.Release()
	d.state = StateTerminated
	slogger().Info("render: driver terminated")
}
