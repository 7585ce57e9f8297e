package stream

import (
	"github.com/lucasb-eyer/go-colorful"
)

// GradientKeypoint anchors a hue at a position on a gradient, with
// positions running from 0.0 to 1.0.
type GradientKeypoint struct {
	Hue float64
	Pos float64
}

// GradientTable stores a look-up table of colours interpolated by hue.
type GradientTable []GradientKeypoint

// Color gets a colour at point t on the look-up table, rendered with
// the given saturation and luminance.
func (g GradientTable) Color(t, saturation, luminance float64) colorful.Color {
	if len(g) == 0 {
		return colorful.Color{}
	}
	if t <= g[0].Pos {
		return colorful.Hcl(g[0].Hue, saturation, luminance)
	}

	for i := 0; i < len(g)-1; i++ {
		k1 := g[i]
		k2 := g[i+1]
		if k1.Pos <= t && t <= k2.Pos {
			// In between k1 and k2, blend the hues linearly.
			h := (((t - k1.Pos) / (k2.Pos - k1.Pos)) * (k2.Hue - k1.Hue)) + k1.Hue
			return colorful.Hcl(h, saturation, luminance)
		}
	}

	// At (or past) the last keypoint.
	return colorful.Hcl(g[len(g)-1].Hue, saturation, luminance)
}

// RainbowGradient is the full-spectrum gradient used by the default
// gradient trail animation.
func RainbowGradient() GradientTable {
	return GradientTable{
		{0.0, 0.0},
		{6.0, 0.04},   // Pink
		{87.0, 0.14},  // Red
		{88.0, 0.28},  // Orange
		{98.0, 0.42},  // Yellow
		{180.0, 0.56}, // Green
		{190.0, 0.70}, // Turquoise
		{320.0, 0.84}, // Blue
		{328.0, 0.91}, // Violet
		{360.0, 1.0},  // Pink wrap
	}
}
