package pump

import "fmt"

// ConfigError reports an invalid pump or pacer configuration. It is
// returned synchronously, before a run starts, never through a Handler.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "pump: " + e.Msg
}

// RenderError wraps a failure raised while painting a frame. Frame is
// the zero-based index of the frame that failed.
type RenderError struct {
	Frame int
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("pump: painting frame %d: %v", e.Frame, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// SourceError wraps a failure raised while pulling the next frame from
// a Source. Frame is the zero-based index of the pull that failed.
type SourceError struct {
	Frame int
	Err   error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("pump: reading frame %d: %v", e.Frame, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
