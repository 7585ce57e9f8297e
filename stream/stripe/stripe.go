// Package stripe generates runs of coloured stripes for scrolling
// animations.
package stripe

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// A Stripe is a solid block of colour, measured in pixels.
type Stripe struct {
	Colour colorful.Color
	Length int
}

// A Generator produces the next stripe in an endless run.
type Generator interface {
	Next() Stripe
}

// RandomGenerator produces stripes of random length, coloured from a
// palette, or with random hues when no palette is given.
type RandomGenerator struct {
	palette []colorful.Color
	current int
	minLen  int
	maxLen  int
}

// NewRandomGenerator creates a RandomGenerator with stripe lengths in
// [minLen, maxLen).
func NewRandomGenerator(palette []colorful.Color, minLen, maxLen int) *RandomGenerator {
	g := new(RandomGenerator)
	g.palette = palette
	g.minLen = minLen
	g.maxLen = maxLen
	g.current = -1
	return g
}

// Next produces a stripe, never repeating the previous palette colour.
func (g *RandomGenerator) Next() Stripe {
	var colour colorful.Color
	if len(g.palette) == 0 {
		colour = colorful.Hsl(rand.Float64()*360.0, 1.0, 0.2)
	} else if len(g.palette) == 1 {
		colour = g.palette[0]
	} else {
		for {
			next := rand.Intn(len(g.palette))
			if next != g.current {
				g.current = next
				break
			}
		}
		colour = g.palette[g.current]
	}

	length := g.minLen
	if g.maxLen > g.minLen {
		length += rand.Intn(g.maxLen - g.minLen)
	}
	return Stripe{Colour: colour, Length: length}
}
