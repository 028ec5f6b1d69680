// Package tensorflow exposes the workload as a generator factory, the shape
// tf.data.Dataset.from_generator consumes: each Generator call starts a
// fresh pass and returns a pull closure. Loader-level shuffling is forced
// off because ordering belongs to the consuming graph in this shape.
package tensorflow

import (
	"context"

	"github.com/dlworks/dlbridge/config"
	"github.com/dlworks/dlbridge/engine"
	"github.com/dlworks/dlbridge/frameworks"
	"github.com/dlworks/dlbridge/resolve"
)

// Dataset is a generator-factory dataset over one resolved workload.
type Dataset struct {
	pl *frameworks.Pipeline
}

// New builds a Dataset from fully specified pipeline parameters.
// Framework and shape are fixed by this package.
func New(ctx context.Context, p frameworks.Params) (*Dataset, error) {
	p.Framework = config.FrameworkTensorFlow
	p.Shape = resolve.ShapeGenerator
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

// Generator starts a fresh pass over the stream and returns a pull
// closure. Each call resets the stream first, so the closure always
// yields the pass from the beginning; end of stream is io.EOF.
func (d *Dataset) Generator(ctx context.Context) (func() (engine.Sample, error), error) {
	if err := d.pl.Reset(ctx); err != nil {
		return nil, err
	}
	return func() (engine.Sample, error) {
		return d.pl.Next(ctx)
	}, nil
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
