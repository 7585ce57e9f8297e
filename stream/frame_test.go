package stream

import (
	"encoding/binary"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameMarshalBinary(t *testing.T) {
	f := NewFrame(3)
	f.SetPixel(0, colorful.Color{R: 1, G: 0, B: 0})
	f.SetPixel(1, colorful.Color{R: 0, G: 1, B: 0})
	f.SetPixel(2, colorful.Color{R: 0, G: 0, B: 1})

	data, err := f.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 2+3*3)

	assert.Equal(t, uint16(3), binary.LittleEndian.Uint16(data))
	assert.Equal(t, []byte{255, 0, 0}, data[2:5])
	assert.Equal(t, []byte{0, 255, 0}, data[5:8])
	assert.Equal(t, []byte{0, 0, 255}, data[8:11])
}

func TestFrameMarshalClampsOutOfGamut(t *testing.T) {
	f := NewFrame(1)
	f.SetPixel(0, colorful.Color{R: 1.5, G: -0.2, B: 0.5})

	data, err := f.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, byte(255), data[2])
	assert.Equal(t, byte(0), data[3])
}

func TestFrameInterpolateEndpoints(t *testing.T) {
	red := colorful.Color{R: 1, G: 0, B: 0}
	blue := colorful.Color{R: 0, G: 0, B: 1}

	f1 := NewFrame(2)
	f2 := NewFrame(2)
	for i := 0; i < 2; i++ {
		f1.SetPixel(i, red)
		f2.SetPixel(i, blue)
	}

	at0, err := f1.Interpolate(f2, 0)
	require.NoError(t, err)
	at1, err := f1.Interpolate(f2, 1)
	require.NoError(t, err)

	r, g, b := at0.Pixel(0).Clamped().RGB255()
	er, eg, eb := red.RGB255()
	assert.Equal(t, [3]uint8{er, eg, eb}, [3]uint8{r, g, b})

	r, g, b = at1.Pixel(0).Clamped().RGB255()
	er, eg, eb = blue.RGB255()
	assert.Equal(t, [3]uint8{er, eg, eb}, [3]uint8{r, g, b})
}

func TestFrameInterpolateSizeMismatch(t *testing.T) {
	_, err := NewFrame(2).Interpolate(NewFrame(3), 0.5)
	assert.Error(t, err)
}
