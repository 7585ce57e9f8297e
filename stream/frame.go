package stream

import (
	"encoding/binary"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Frame represents a frame of RGB pixels to display on an ledrx device.
// Frames are sized for a particular strip when they are created.
type Frame struct {
	pixels []colorful.Color
}

// NewFrame creates a Frame with numPixels pixels, all black.
func NewFrame(numPixels int) *Frame {
	return &Frame{pixels: make([]colorful.Color, numPixels)}
}

// Len returns the number of pixels in the frame.
func (f *Frame) Len() int {
	return len(f.pixels)
}

// Pixel returns the colour of pixel i.
func (f *Frame) Pixel(i int) colorful.Color {
	return f.pixels[i]
}

// SetPixel sets the colour of pixel i.
func (f *Frame) SetPixel(i int, c colorful.Color) {
	f.pixels[i] = c
}

// Interpolate blends two frames of the same size, t=0 giving f and t=1
// giving f2. Used for cross-fading between animations.
func (f *Frame) Interpolate(f2 *Frame, t float64) (*Frame, error) {
	if len(f.pixels) != len(f2.pixels) {
		return nil, fmt.Errorf("stream: cannot interpolate frames of %d and %d pixels",
			len(f.pixels), len(f2.pixels))
	}

	out := NewFrame(len(f.pixels))
	for i := range f.pixels {
		out.pixels[i] = f.pixels[i].BlendHcl(f2.pixels[i], t)
	}

	return out, nil
}

// MarshalBinary converts a Frame into the ledrx wire format: a little
// endian uint16 pixel count followed by one RGB byte triplet per pixel.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	if len(f.pixels) > 0xffff {
		return nil, fmt.Errorf("stream: frame of %d pixels exceeds wire format", len(f.pixels))
	}

	data = make([]byte, 2, (len(f.pixels)*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.pixels)))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
