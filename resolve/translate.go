package resolve

import (
	"github.com/dlworks/dlbridge/engine"
	"github.com/dlworks/dlbridge/types"
)

// Shape selects the framework-facing iteration contract of an adapter.
type Shape string

const (
	// ShapeIterable is a pull-based sequence of samples (the PyTorch
	// adapter). Loader-level shuffling stays enabled.
	ShapeIterable Shape = "iterable"

	// ShapeGenerator is a zero-argument factory yielding a lazily
	// evaluated stream (the TensorFlow adapter). Shuffling belongs to the
	// framework's own pipeline stage, so the loader never shuffles.
	ShapeGenerator Shape = "generator"

	// ShapePlain is a thin iterable with no shuffling responsibility (the
	// JAX adapter).
	ShapePlain Shape = "plain"
)

// Translate maps a resolved option set into the engine's option schema.
// It is pure and total: it cannot fail for any well-typed ResolvedOptions.
//
// The backend tag is accepted for signature completeness but unused: the
// location string handed to the engine already carries the scheme. The
// format tag is forwarded as an engine hint.
func Translate(o types.ResolvedOptions, _ types.BackendTag, format types.FormatTag, shape Shape) engine.Options {
	opts := engine.Options{
		BatchSize:  o.BatchSize,
		Shuffle:    o.Shuffle,
		Seed:       o.Seed,
		NumWorkers: o.NumWorkers,
		Prefetch:   o.Prefetch,
		ReturnType: o.ReturnType,
		Writable:   o.Writable,
	}

	// Generator- and plain-shaped adapters delegate shuffling to the
	// consuming framework.
	if shape != ShapeIterable {
		opts.Shuffle = false
	}

	opts.Extra = map[string]any{"format": string(format)}
	for k, v := range o.Extra {
		opts.Extra[k] = v
	}
	return opts
}
