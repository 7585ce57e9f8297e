package stream

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledanim/util"
)

type twinkleParticle struct {
	position int
	lut      []float64
	gain     float64
	current  int
	running  bool
}

func newTwinkleParticle(position int) *twinkleParticle {
	p := new(twinkleParticle)
	p.position = position
	p.reset()
	return p
}

// reset re-arms the particle with a fresh scintillation curve.
func (p *twinkleParticle) reset() {
	p.lut = util.GenerateLut((rand.Intn(18) + 6) * 2)
	p.gain = util.RandomBetween(0.5, 1.0)
	p.current = 0
	p.running = false
}

func (p *twinkleParticle) step() float64 {
	if !p.running {
		return 0
	}

	level := p.lut[p.current] * p.gain
	p.current++
	if p.current >= len(p.lut) {
		p.reset()
	}
	return level
}

// A Twinkle is an Animation that scintillates random particles over a
// background colour.
type Twinkle struct {
	numPixels  int
	foreColour colorful.Color
	backColour colorful.Color
	particles  []*twinkleParticle

	// Chance per frame that an idle particle starts scintillating.
	igniteChance float64
}

// NewTwinkle creates a Twinkle over numPixels pixels with numParticles
// particles at random positions.
func NewTwinkle(numPixels int, numParticles int, foreColour colorful.Color, backColour colorful.Color) *Twinkle {
	t := new(Twinkle)
	t.numPixels = numPixels
	t.foreColour = foreColour
	t.backColour = backColour
	t.igniteChance = 0.02

	t.particles = make([]*twinkleParticle, 0, numParticles)
	for i := 0; i < numParticles; i++ {
		t.particles = append(t.particles, newTwinkleParticle(rand.Intn(numPixels)))
	}

	return t
}

// CalculateFrame renders the background with every live particle
// blended over it at its current brightness.
func (t *Twinkle) CalculateFrame(runtimeMs int64) *Frame {
	f := NewFrame(t.numPixels)
	for i := 0; i < t.numPixels; i++ {
		f.pixels[i] = t.backColour
	}

	for _, p := range t.particles {
		if !p.running && rand.Float64() < t.igniteChance {
			p.running = true
		}
		if level := p.step(); level > 0 {
			f.pixels[p.position] = t.backColour.BlendHcl(t.foreColour, level)
		}
	}

	return f
}
