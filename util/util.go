package util

import (
	"math/rand"

	"github.com/fogleman/ease"
)

// RandomBetween returns a uniformly random value in [min, max).
func RandomBetween(min float64, max float64) float64 {
	return rand.Float64()*(max-min) + min
}

// GenerateLut builds a look-up table of brightness values that eases in
// to full brightness at the middle of the table and back out again,
// used to make particles scintillate smoothly.
func GenerateLut(length int) []float64 {
	if length < 2 {
		return []float64{0}
	}

	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = ease.InOutQuad(value)
		lut[j] = ease.InOutQuad(value)
	}
	return lut
}
