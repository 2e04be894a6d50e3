// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

// Package-level sentinel errors.
var (
	// ErrNoAdapter is returned when no compatible GPU adapter exists.
	ErrNoAdapter = errors.New("render: no compatible adapter")

	// ErrNoDevice is returned when device acquisition fails on an
	// otherwise usable adapter.
	ErrNoDevice = errors.New("render: device request failed")

	// ErrSurfaceStale is wrapped by surface acquisition failures that are
	// retryable: the swapchain timed out, is outdated after a resize, or
	// was lost. Callers skip the frame and retry on the next tick.
	ErrSurfaceStale = errors.New("render: surface stale")

	// ErrDeviceLost is returned when the GPU device is gone. Not
	// recoverable within a driver.
	ErrDeviceLost = errors.New("render: device lost")

	// ErrDriverClosed is returned when operations are attempted on a
	// closed frame driver.
	ErrDriverClosed = errors.New("render: driver is closed")

	// ErrUnknownDevice is returned for lookups of device ids that were
	// never registered.
	ErrUnknownDevice = errors.New("render: unknown device id")
)
