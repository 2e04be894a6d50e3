package ggview

// AAMode selects the antialiasing strategy used when rasterizing a scene.
type AAMode uint8

const (
	// AAArea uses exact analytic area coverage. This is the default.
	AAArea AAMode = iota

	// AAMSAA8 requests 8-sample multisampling. Renderers without
	// multisample support fall back to area coverage.
	AAMSAA8

	// AAMSAA16 requests 16-sample multisampling, with the same fallback.
	AAMSAA16
)

func (m AAMode) String() string {
	switch m {
	case AAArea:
		return "area"
	case AAMSAA8:
		return "msaa8"
	case AAMSAA16:
		return "msaa16"
	}
	return "unknown"
}
