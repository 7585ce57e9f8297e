// Package pump drives a lazily-produced sequence of frames through a
// painter at a controlled rate, folding the per-frame results into a
// single value that is delivered exactly once when the run ends.
package pump

import (
	"context"
	"io"
)

// A Source is a lazy, ordered sequence of frames. Next returns io.EOF
// when the sequence is exhausted. A Source is consumed sequentially by
// a single pump; it is not restartable and not safe to share.
type Source[F any] interface {
	Next(ctx context.Context) (F, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc[F any] func(ctx context.Context) (F, error)

// Next calls f.
func (f SourceFunc[F]) Next(ctx context.Context) (F, error) {
	return f(ctx)
}

// FromSlice returns a Source that yields the elements of frames in
// order, then io.EOF.
func FromSlice[F any](frames []F) Source[F] {
	i := 0
	return SourceFunc[F](func(ctx context.Context) (F, error) {
		if err := ctx.Err(); err != nil {
			var zero F
			return zero, err
		}
		if i >= len(frames) {
			var zero F
			return zero, io.EOF
		}
		f := frames[i]
		i++
		return f, nil
	})
}
