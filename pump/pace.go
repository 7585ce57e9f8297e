package pump

import (
	"context"
	"fmt"
	"time"
)

// Pace wraps src so that consecutive frames are emitted no more often
// than once per period. Frames are never dropped; a producer that runs
// faster than the period is simply held back. A producer slower than
// the period is passed through untouched. A zero or negative period is
// a ConfigError.
func Pace[F any](src Source[F], period time.Duration) (Source[F], error) {
	if period <= 0 {
		return nil, &ConfigError{Msg: fmt.Sprintf("pacing period must be positive, got %v", period)}
	}
	return &pacedSource[F]{src: src, period: period}, nil
}

type pacedSource[F any] struct {
	src    Source[F]
	period time.Duration
	last   time.Time
}

func (p *pacedSource[F]) Next(ctx context.Context) (F, error) {
	f, err := p.src.Next(ctx)
	if err != nil {
		var zero F
		return zero, err
	}

	// The first frame goes out immediately; after that we hold each
	// frame until a full period has passed since the previous emission.
	if !p.last.IsZero() {
		if wait := p.period - time.Since(p.last); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				var zero F
				return zero, ctx.Err()
			}
		}
	}
	p.last = time.Now()

	return f, nil
}
