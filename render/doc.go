// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render manages the full render-surface lifecycle for ggview:
// adapter and device acquisition, window surface configuration, the
// intermediate scene texture, the blit compositor, and the per-frame
// driver state machine.
//
// # Architecture
//
// A frame flows through two stages. The scene renderer draws the vector
// scene into an off-screen RGBA8 texture (the intermediate target). The
// compositor then stretches that texture over the acquired swapchain
// image with a fixed full-screen-triangle pipeline and presents it. The
// compositor is the only code path that writes to swapchain images.
//
// # Lifecycle
//
//	ctx, _ := render.NewDeviceContext()
//	surf, _ := ctx.CreateSurface(desc, w, h, wgpu.PresentModeFifo, false)
//	driver, _ := render.NewFrameDriver(ctx, surf, producer, opts)
//	for running {
//		driver.Tick(elapsed)
//	}
//	driver.Close()
//
// Resize requests are coalesced: RequestResize stores at most one pending
// size, applied at the start of the next Tick. Swapchain staleness
// (timeout, outdated, lost) skips the tick and is retried on the next one;
// all other acquisition failures are fatal.
package render
