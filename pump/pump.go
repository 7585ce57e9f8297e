package pump

import (
	"context"
	"errors"
	"io"
	"log"
)

// State describes where a run is in its lifecycle. A run leaves Running
// through exactly one of the three terminal states.
type State int

const (
	Idle State = iota
	Running
	Completed
	Failed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Outcome is the terminal result of a run. Value holds the folded
// per-frame results and is only meaningful when State is Completed; a
// failed run discards any partial accumulation. Err carries the failure
// cause for Failed and the context error for Cancelled.
type Outcome[R any] struct {
	State State
	Value R
	Err   error
}

// A Painter renders one frame onto a canvas and reports a per-frame
// value. The canvas is created and owned elsewhere; the pump only
// borrows it for the duration of a run.
type Painter[C, F, R any] interface {
	Paint(ctx context.Context, canvas C, frame F) (R, error)
}

// PainterFunc adapts a function to the Painter interface.
type PainterFunc[C, F, R any] func(ctx context.Context, canvas C, frame F) (R, error)

// Paint calls f.
func (f PainterFunc[C, F, R]) Paint(ctx context.Context, canvas C, frame F) (R, error) {
	return f(ctx, canvas, frame)
}

// A Fold combines per-frame values into an aggregate. Combine must be
// associative with Identity as its identity element; the pump folds
// strictly left to right, but those laws are what make partial
// accumulation meaningful at all.
type Fold[R any] struct {
	Identity R
	Combine  func(R, R) R
}

// A Handler receives the terminal Outcome of a run. It is called
// exactly once per run, for all three terminal states, whether the run
// was blocking or asynchronous.
type Handler[R any] func(Outcome[R])

// A Pump paints every frame of a Source onto a canvas, in order, on a
// single goroutine, folding the per-frame results. A Pump holds no
// per-run state and may be reused for consecutive runs, but a canvas
// and a source each belong to at most one run at a time.
type Pump[C, F, R any] struct {
	painter Painter[C, F, R]
	fold    Fold[R]
	handler Handler[R]
}

// An Option configures a Pump.
type Option[C, F, R any] func(*Pump[C, F, R])

// WithHandler replaces the default outcome handler. The default logs
// failures with their cause and stays silent on completion and
// cancellation.
func WithHandler[C, F, R any](h Handler[R]) Option[C, F, R] {
	return func(p *Pump[C, F, R]) {
		p.handler = h
	}
}

// New creates a Pump. A nil painter or a Fold without a Combine
// function is a ConfigError.
func New[C, F, R any](painter Painter[C, F, R], fold Fold[R], opts ...Option[C, F, R]) (*Pump[C, F, R], error) {
	if painter == nil {
		return nil, &ConfigError{Msg: "painter must not be nil"}
	}
	if fold.Combine == nil {
		return nil, &ConfigError{Msg: "fold must have a combine function"}
	}

	p := &Pump[C, F, R]{
		painter: painter,
		fold:    fold,
		handler: defaultHandler[R],
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.handler == nil {
		p.handler = defaultHandler[R]
	}

	return p, nil
}

func defaultHandler[R any](out Outcome[R]) {
	if out.State == Failed {
		log.Printf("animation failed: %v", out.Err)
	}
}

// Run consumes src to completion on the caller's goroutine, painting
// each frame onto canvas. It returns the terminal Outcome and also
// delivers it to the handler, exactly once. An unbounded source keeps
// Run blocked until ctx is cancelled or a frame fails.
func (p *Pump[C, F, R]) Run(ctx context.Context, src Source[F], canvas C) Outcome[R] {
	out := p.loop(ctx, src, canvas)
	p.handler(out)
	return out
}

// Go starts a run on its own goroutine and returns a Task for it. The
// handler fires on that goroutine when the run ends.
func (p *Pump[C, F, R]) Go(ctx context.Context, src Source[F], canvas C) *Task[R] {
	t := &Task[R]{done: make(chan struct{})}
	go func() {
		t.out = p.Run(ctx, src, canvas)
		close(t.done)
	}()
	return t
}

func (p *Pump[C, F, R]) loop(ctx context.Context, src Source[F], canvas C) Outcome[R] {
	acc := p.fold.Identity
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return Outcome[R]{State: Cancelled, Err: err}
		}

		frame, err := src.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Outcome[R]{State: Completed, Value: acc}
			}
			if ctx.Err() != nil {
				return Outcome[R]{State: Cancelled, Err: ctx.Err()}
			}
			return Outcome[R]{State: Failed, Err: &SourceError{Frame: i, Err: err}}
		}

		// A cancellation that lands while the frame was being pulled
		// stops the run before the frame is painted.
		if err := ctx.Err(); err != nil {
			return Outcome[R]{State: Cancelled, Err: err}
		}

		value, err := p.painter.Paint(ctx, canvas, frame)
		if err != nil {
			if ctx.Err() != nil {
				return Outcome[R]{State: Cancelled, Err: ctx.Err()}
			}
			return Outcome[R]{State: Failed, Err: &RenderError{Frame: i, Err: err}}
		}

		acc = p.fold.Combine(acc, value)
	}
}

// A Task is a handle on an asynchronous run.
type Task[R any] struct {
	done chan struct{}
	out  Outcome[R]
}

// Done is closed when the run reaches a terminal state.
func (t *Task[R]) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the run ends and returns its Outcome.
func (t *Task[R]) Wait() Outcome[R] {
	<-t.done
	return t.out
}
