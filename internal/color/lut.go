package color

// Lookup tables give O(1) sRGB <-> linear conversions for the per-pixel
// blend loop, where math.Pow per component is far too slow.

// sRGBToLinearLUT converts an sRGB byte [0-255] to linear float32 [0-1].
var sRGBToLinearLUT [256]float32

// linearToSRGBLUT converts linear float32 [0-1] to an sRGB byte using
// 4096 entries (12-bit precision, sufficient for 8-bit sRGB output).
var linearToSRGBLUT [4096]uint8

func init() {
	for i := 0; i < 256; i++ {
		sRGBToLinearLUT[i] = SRGBToLinear(float32(i) / 255.0)
	}
	for i := 0; i < 4096; i++ {
		s := LinearToSRGB(float32(i) / 4095.0)
		srgb := int(s*255.0 + 0.5)
		if srgb < 0 {
			srgb = 0
		}
		if srgb > 255 {
			srgb = 255
		}
		linearToSRGBLUT[i] = uint8(srgb)
	}
}

// SRGBToLinearFast converts an sRGB byte to linear float32 using the
// lookup table.
func SRGBToLinearFast(s uint8) float32 {
	return sRGBToLinearLUT[s]
}

// LinearToSRGBFast converts a linear float32 to an sRGB byte using the
// lookup table. Input is clamped to [0, 1].
func LinearToSRGBFast(l float32) uint8 {
	if l < 0 {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	index := int(l*4095.0 + 0.5)
	if index > 4095 {
		index = 4095
	}
	return linearToSRGBLUT[index]
}
