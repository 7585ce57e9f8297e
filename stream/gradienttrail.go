package stream

import (
	"math"
)

// A GradientTrail is an Animation that cycles a gradient along an led
// strip, moving at a fixed number of pixels per second.
type GradientTrail struct {
	gradient    GradientTable
	numPixels   int
	trailLength int
	speed       float64
	saturation  float64
	luminance   float64
}

// NewGradientTrail creates a GradientTrail over numPixels pixels. The
// trail repeats every trailLength pixels and drifts by speed pixels per
// second; a negative speed reverses the direction of travel.
func NewGradientTrail(gradient GradientTable, numPixels, trailLength int, speed, luminance float64) *GradientTrail {
	g := new(GradientTrail)
	g.gradient = gradient
	g.numPixels = numPixels
	g.trailLength = trailLength
	g.speed = speed
	g.saturation = 1.0
	g.luminance = luminance

	return g
}

// CalculateFrame renders the trail at its position for the given
// runtime.
func (g *GradientTrail) CalculateFrame(runtimeMs int64) *Frame {
	f := NewFrame(g.numPixels)
	length := float64(g.trailLength)
	offset := math.Mod(float64(runtimeMs)/1000.0*g.speed, length)
	if offset < 0 {
		offset += length
	}

	for i := 0; i < g.numPixels; i++ {
		t := math.Mod(float64(i)+offset, length) / length
		f.pixels[i] = g.gradient.Color(t, g.saturation, g.luminance)
	}

	return f
}
