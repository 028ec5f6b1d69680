package engine

import (
	"context"

	"github.com/dlworks/dlbridge/types"
)

// Sample is one unit of data yielded by a stream, prior to any
// framework-specific materialization. Contents are opaque to this module.
type Sample []byte

// StreamHandle is an open, lazily-pulled data stream owned by exactly one
// adapter instance.
//
// Next blocks until the engine yields a sample, the stream ends (io.EOF),
// or ctx is done. A handle is constructed once and may be iterated any
// number of times: Reset begins a new pass from the start. Concurrent use
// of one handle from multiple goroutines is engine-defined.
type StreamHandle interface {
	Next(ctx context.Context) (Sample, error)
	Reset(ctx context.Context) error
	Close() error
}

// Engine constructs streaming handles for resolved data locations.
//
// Construct validates location and options as it sees fit and may fail;
// its errors are always wrapped into the module's ENGINE_CONSTRUCT code by
// the caller. Construct must not start pulling data by itself.
type Engine interface {
	// Name identifies the engine in registries and capability reports.
	Name() string

	// Construct opens a stream over the given location.
	Construct(ctx context.Context, location string, opts Options) (StreamHandle, error)

	// Backends lists the backend tags this engine can serve.
	Backends() []types.BackendTag
}
