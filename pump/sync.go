package pump

import (
	"context"
	"io"
)

// Synchronize pairs each frame of src with the next event on redraw,
// emitting the frame once its trigger fires. The combined sequence ends
// when src ends or when redraw is closed; a trigger is never consumed
// for a frame that does not exist. Triggers that arrive while no frame
// is waiting are expected to be dropped by the redraw provider, so a
// slow producer sees only the trigger that releases its next frame. A
// frame computed long before its trigger fires is delivered stale; the
// synchronizer makes no attempt to regenerate it.
func Synchronize[F any](src Source[F], redraw <-chan struct{}) Source[F] {
	return &syncedSource[F]{src: src, redraw: redraw}
}

type syncedSource[F any] struct {
	src    Source[F]
	redraw <-chan struct{}
}

func (s *syncedSource[F]) Next(ctx context.Context) (F, error) {
	f, err := s.src.Next(ctx)
	if err != nil {
		var zero F
		return zero, err
	}

	select {
	case _, ok := <-s.redraw:
		if !ok {
			// The redraw provider has gone away, e.g. the display
			// surface was torn down. Nothing will release this frame.
			var zero F
			return zero, io.EOF
		}
	case <-ctx.Done():
		var zero F
		return zero, ctx.Err()
	}

	return f, nil
}
