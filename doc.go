// Package ggview presents live, animated vector-graphics scenes in a
// native window, re-rendering at display refresh cadence.
//
// The root package holds the small shared vocabulary (colors, antialiasing
// modes). The interesting parts live below it:
//
//   - scene: the vector scene model (paths, transforms, brushes) that
//     callers rebuild every frame.
//   - render: the render-surface lifecycle manager, from adapter/device
//     acquisition through swapchain presentation.
//   - app: the windowed runtime tying a GLFW window to the frame driver.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/ggview/app"
//	)
//
//	cfg := app.DefaultConfig()
//	a, err := app.New(cfg, producer)
//	if err != nil {
//		log.Fatal(err)
//	}
//	a.Run()
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
package ggview

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
