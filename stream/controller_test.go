package stream

import (
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type solidAnimation struct {
	colour colorful.Color
	size   int
}

func (a *solidAnimation) CalculateFrame(runtimeMs int64) *Frame {
	f := NewFrame(a.size)
	for i := 0; i < a.size; i++ {
		f.SetPixel(i, a.colour)
	}
	return f
}

func TestControllerCyclesAnimations(t *testing.T) {
	red := &solidAnimation{colour: colorful.Color{R: 1}, size: 4}
	blue := &solidAnimation{colour: colorful.Color{B: 1}, size: 4}

	c, err := NewController([]Animation{red, blue}, 10*time.Second, 0)
	require.NoError(t, err)

	assert.Equal(t, red.colour, c.CalculateFrame(0).Pixel(0))
	assert.Equal(t, blue.colour, c.CalculateFrame(10_000).Pixel(0))
	assert.Equal(t, red.colour, c.CalculateFrame(20_000).Pixel(0))
}

func TestControllerCrossFades(t *testing.T) {
	red := &solidAnimation{colour: colorful.Color{R: 1}, size: 2}
	blue := &solidAnimation{colour: colorful.Color{B: 1}, size: 2}

	c, err := NewController([]Animation{red, blue}, 10*time.Second, 2*time.Second)
	require.NoError(t, err)

	// Half way through the fade window of the first showing.
	got := c.CalculateFrame(9_000).Pixel(0)
	want := red.colour.BlendHcl(blue.colour, 0.5)
	assert.InDelta(t, want.R, got.R, 1e-9)
	assert.InDelta(t, want.G, got.G, 1e-9)
	assert.InDelta(t, want.B, got.B, 1e-9)
}

func TestControllerMismatchedSizesFallBack(t *testing.T) {
	red := &solidAnimation{colour: colorful.Color{R: 1}, size: 2}
	blue := &solidAnimation{colour: colorful.Color{B: 1}, size: 3}

	c, err := NewController([]Animation{red, blue}, 10*time.Second, 2*time.Second)
	require.NoError(t, err)

	assert.Equal(t, red.colour, c.CalculateFrame(9_000).Pixel(0))
}

func TestControllerRejectsBadConfiguration(t *testing.T) {
	red := &solidAnimation{colour: colorful.Color{R: 1}, size: 2}

	_, err := NewController(nil, time.Second, 0)
	assert.Error(t, err)

	_, err = NewController([]Animation{red}, 0, 0)
	assert.Error(t, err)

	_, err = NewController([]Animation{red}, time.Second, 2*time.Second)
	assert.Error(t, err)
}
