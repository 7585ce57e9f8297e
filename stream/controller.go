package stream

import (
	"fmt"
	"time"
)

// Controller is an Animation that cycles through a set of animations,
// cross-fading from each to the next. All the animations must render
// frames of the same size.
type Controller struct {
	animations []Animation
	holdMs     int64
	fadeMs     int64
}

// NewController creates a Controller showing each animation for hold,
// with a cross-fade lasting fade at the end of each showing.
func NewController(animations []Animation, hold, fade time.Duration) (*Controller, error) {
	if len(animations) == 0 {
		return nil, fmt.Errorf("stream: controller needs at least one animation")
	}
	if hold <= 0 {
		return nil, fmt.Errorf("stream: controller hold time must be positive")
	}
	if fade < 0 || fade > hold {
		return nil, fmt.Errorf("stream: controller fade must fit within the hold time")
	}

	c := new(Controller)
	c.animations = animations
	c.holdMs = hold.Milliseconds()
	c.fadeMs = fade.Milliseconds()

	return c, nil
}

// CalculateFrame renders the animation scheduled for the given runtime,
// blended with the next one while a transition is in progress.
func (c *Controller) CalculateFrame(runtimeMs int64) *Frame {
	idx := int(runtimeMs/c.holdMs) % len(c.animations)
	phase := runtimeMs % c.holdMs

	f := c.animations[idx].CalculateFrame(runtimeMs)
	if c.fadeMs == 0 || phase < c.holdMs-c.fadeMs || len(c.animations) < 2 {
		return f
	}

	next := c.animations[(idx+1)%len(c.animations)].CalculateFrame(runtimeMs)
	t := float64(phase-(c.holdMs-c.fadeMs)) / float64(c.fadeMs)
	blended, err := f.Interpolate(next, t)
	if err != nil {
		// Mismatched frame sizes; show the current animation unfaded.
		return f
	}

	return blended
}
