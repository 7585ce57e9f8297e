package stream

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/matt-g-everett/ledanim/pump"
)

// An Animation implements a way to render a specific animation. The
// runtime argument is the number of milliseconds since the animation
// started, so motion stays smooth however irregularly frames are asked
// for.
type Animation interface {
	CalculateFrame(runtimeMs int64) *Frame
}

// NewAnimationSource adapts an Animation to a frame source for the
// pump. count limits how many frames are produced; zero means the
// source is unbounded and only ends by cancellation.
func NewAnimationSource(anim Animation, count int) pump.Source[*Frame] {
	return &animationSource{anim: anim, count: count, now: time.Now}
}

type animationSource struct {
	anim     Animation
	count    int
	produced int
	start    time.Time
	now      func() time.Time
}

func (s *animationSource) Next(ctx context.Context) (*Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.count > 0 && s.produced >= s.count {
		return nil, io.EOF
	}

	if s.start.IsZero() {
		s.start = s.now()
	}
	runtimeMs := s.now().Sub(s.start).Milliseconds()

	f := s.anim.CalculateFrame(runtimeMs)
	if f == nil {
		return nil, errors.New("stream: animation produced no frame")
	}
	s.produced++

	return f, nil
}
