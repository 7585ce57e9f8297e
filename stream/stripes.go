package stream

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledanim/stream/stripe"
)

// Stripes is an Animation that scrolls an endless run of coloured
// stripes along the strip, pulling new stripes from a generator as the
// run advances.
type Stripes struct {
	gen       stripe.Generator
	numPixels int
	speed     float64 // pixels per second

	window      []stripe.Stripe
	windowStart float64
}

// NewStripes creates a Stripes animation over numPixels pixels moving
// at speed pixels per second.
func NewStripes(gen stripe.Generator, numPixels int, speed float64) *Stripes {
	s := new(Stripes)
	s.gen = gen
	s.numPixels = numPixels
	s.speed = speed
	return s
}

// CalculateFrame renders the stripes visible at the given runtime.
func (s *Stripes) CalculateFrame(runtimeMs int64) *Frame {
	offset := float64(runtimeMs) / 1000.0 * s.speed

	// Cull stripes that have scrolled completely off the strip.
	for len(s.window) > 0 && s.windowStart+float64(s.window[0].Length) <= offset {
		s.windowStart += float64(s.window[0].Length)
		s.window = s.window[1:]
	}

	f := NewFrame(s.numPixels)
	for i := 0; i < s.numPixels; i++ {
		f.pixels[i] = s.colourAt(offset + float64(i))
	}

	return f
}

func (s *Stripes) colourAt(p float64) (c colorful.Color) {
	end := s.windowStart
	for _, st := range s.window {
		end += float64(st.Length)
	}
	for end <= p {
		st := s.gen.Next()
		s.window = append(s.window, st)
		end += float64(st.Length)
	}

	cursor := s.windowStart
	for _, st := range s.window {
		cursor += float64(st.Length)
		if p < cursor {
			return st.Colour
		}
	}
	return s.window[len(s.window)-1].Colour
}
