// Package jax exposes the workload as a plain iterable, the thin shape a
// JAX input pipeline consumes directly. Loader-level shuffling is off; JAX
// pipelines shuffle in user space.
package jax

import (
	"context"
	"errors"
	"io"

	"github.com/dlworks/dlbridge/config"
	"github.com/dlworks/dlbridge/engine"
	"github.com/dlworks/dlbridge/frameworks"
	"github.com/dlworks/dlbridge/resolve"
)

// Dataset is a plain iterable over one resolved workload.
type Dataset struct {
	pl *frameworks.Pipeline
}

// New builds a Dataset from fully specified pipeline parameters.
// Framework and shape are fixed by this package.
func New(ctx context.Context, p frameworks.Params) (*Dataset, error) {
	p.Framework = config.FrameworkJAX
	p.Shape = resolve.ShapePlain
	pl, err := frameworks.Build(ctx, p)
	if err != nil {
		return nil, err
	}
	return &Dataset{pl: pl}, nil
}

// FromConfig builds a Dataset from a YAML or JSON configuration file.
func FromConfig(ctx context.Context, path string, opts ...frameworks.Option) (*Dataset, error) {
	p := frameworks.Params{ConfigPath: path}
	p.Apply(opts...)
	return New(ctx, p)
}

// FromMapping builds a Dataset from an already-parsed configuration mapping.
func FromMapping(ctx context.Context, m map[string]any, opts ...frameworks.Option) (*Dataset, error) {
	p := frameworks.Params{Mapping: m}
	p.Apply(opts...)
	return New(ctx, p)
}

// FromURI builds a Dataset directly from a data location, with no
// configuration file involved.
func FromURI(ctx context.Context, uri string, opts ...frameworks.Option) (*Dataset, error) {
	p := frameworks.Params{Mapping: map[string]any{"data_folder": uri}}
	p.Apply(opts...)
	return New(ctx, p)
}

// Next pulls the next sample, blocking until the engine yields. End of
// stream is io.EOF.
func (d *Dataset) Next(ctx context.Context) (engine.Sample, error) {
	return d.pl.Next(ctx)
}

// Collect drains the remainder of the current pass into a slice.
func (d *Dataset) Collect(ctx context.Context) ([]engine.Sample, error) {
	var out []engine.Sample
	for {
		sample, err := d.pl.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		out = append(out, sample)
	}
}

// Reset starts a new pass over the stream.
func (d *Dataset) Reset(ctx context.Context) error {
	return d.pl.Reset(ctx)
}

// Info returns the resolved configuration for diagnostics.
func (d *Dataset) Info() frameworks.Info {
	return d.pl.Info()
}

// State returns the dataset's lifecycle state.
func (d *Dataset) State() frameworks.State {
	return d.pl.State()
}

// Close releases the engine stream.
func (d *Dataset) Close() error {
	return d.pl.Close()
}
