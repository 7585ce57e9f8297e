package stream

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingAnimation struct {
	calls    int
	runtimes []int64
}

func (a *countingAnimation) CalculateFrame(runtimeMs int64) *Frame {
	a.calls++
	a.runtimes = append(a.runtimes, runtimeMs)
	return NewFrame(4)
}

func TestAnimationSourceFiniteCount(t *testing.T) {
	anim := &countingAnimation{}
	src := NewAnimationSource(anim, 3)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		f, err := src.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, f.Len())
	}

	_, err := src.Next(ctx)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 3, anim.calls)
}

func TestAnimationSourceRuntimeFromFirstFrame(t *testing.T) {
	anim := &countingAnimation{}
	now := time.Unix(100, 0)
	src := &animationSource{anim: anim, now: func() time.Time { return now }}

	ctx := context.Background()
	_, err := src.Next(ctx)
	require.NoError(t, err)

	now = now.Add(250 * time.Millisecond)
	_, err = src.Next(ctx)
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 250}, anim.runtimes)
}

func TestAnimationSourceUnboundedByDefault(t *testing.T) {
	anim := &countingAnimation{}
	src := NewAnimationSource(anim, 0)

	ctx := context.Background()
	for i := 0; i < 10; i++ {
		_, err := src.Next(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, 10, anim.calls)
}

type nilAnimation struct{}

func (nilAnimation) CalculateFrame(runtimeMs int64) *Frame { return nil }

func TestAnimationSourceNilFrameIsError(t *testing.T) {
	src := NewAnimationSource(nilAnimation{}, 0)
	_, err := src.Next(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
}

func TestAnimationSourceHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewAnimationSource(&countingAnimation{}, 0)
	_, err := src.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
