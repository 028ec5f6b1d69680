// Package dlbridge provides a top-level convenience entry point for building
// framework-facing dataset adapters with minimal boilerplate.
//
// Usage:
//
//	import "github.com/dlworks/dlbridge"
//
//	ds, err := dlbridge.New(ctx, "pytorch", "train.yaml", dlbridge.WithEngine(eng))
//	ds, err := dlbridge.New(ctx, "jax", "s3://bucket/train", dlbridge.WithEngine(eng))
//
// The source argument is classified by extension: .yaml/.yml/.json names a
// configuration file, anything else is treated as a data location. Callers
// that need the concrete dataset shape (the pytorch ForEach loop, the
// tensorflow Generator factory) import the framework subpackage directly;
// both routes produce identical resolution results.
package dlbridge

import (
	"context"

	"github.com/dlworks/dlbridge/config"
	"github.com/dlworks/dlbridge/engine"
	"github.com/dlworks/dlbridge/frameworks"
	"github.com/dlworks/dlbridge/frameworks/jax"
	"github.com/dlworks/dlbridge/frameworks/pytorch"
	"github.com/dlworks/dlbridge/frameworks/tensorflow"
	"github.com/dlworks/dlbridge/resolve"
	"github.com/dlworks/dlbridge/types"
)

// Version is the library version, surfaced by the CLI.
const Version = "0.1.0"

// Option configures the adapter created by [New].
type Option = frameworks.Option

// New builds the dataset adapter for framework over source. At minimum an
// engine must be supplied via [WithEngine].
func New(ctx context.Context, framework, source string, opts ...Option) (frameworks.Adapter, error) {
	switch framework {
	case config.FrameworkPyTorch:
		if config.IsConfigFilePath(source) {
			return pytorch.FromConfig(ctx, source, opts...)
		}
		return pytorch.FromURI(ctx, source, opts...)
	case config.FrameworkTensorFlow:
		if config.IsConfigFilePath(source) {
			return tensorflow.FromConfig(ctx, source, opts...)
		}
		return tensorflow.FromURI(ctx, source, opts...)
	case config.FrameworkJAX:
		if config.IsConfigFilePath(source) {
			return jax.FromConfig(ctx, source, opts...)
		}
		return jax.FromURI(ctx, source, opts...)
	default:
		return nil, types.Errorf(types.ErrUnknownFramework,
			"unknown framework: %s (known: %v)", framework, config.Frameworks()).
			WithFramework(framework)
	}
}

// Resolve runs only the pure resolution stages for framework over source:
// normalization, backend and format classification, option merging, and
// translation. No engine is touched; use it for dry-run diagnostics.
func Resolve(framework, source string, opts ...Option) (*frameworks.Resolution, error) {
	if !config.KnownFramework(framework) {
		return nil, types.Errorf(types.ErrUnknownFramework,
			"unknown framework: %s (known: %v)", framework, config.Frameworks()).
			WithFramework(framework)
	}
	p := frameworks.Params{Framework: framework, Shape: shapeFor(framework)}
	if config.IsConfigFilePath(source) {
		p.ConfigPath = source
	} else {
		p.Mapping = map[string]any{"data_folder": source}
	}
	p.Apply(opts...)
	return frameworks.Resolve(p)
}

// Frameworks returns the supported framework names.
func Frameworks() []string {
	return config.Frameworks()
}

// Report combines the resolution layer's static knowledge (frameworks,
// formats) with a registry's call-time engine capabilities.
type Report struct {
	Frameworks []string                  `json:"frameworks" yaml:"frameworks"`
	Engines    []engine.EngineCapability `json:"engines,omitempty" yaml:"engines,omitempty"`
	Backends   []types.BackendTag        `json:"backends,omitempty" yaml:"backends,omitempty"`
	Formats    []types.FormatTag         `json:"formats" yaml:"formats"`
}

// CapabilityReport computes the availability report at call time. A nil
// registry yields only the static portion.
func CapabilityReport(reg *engine.Registry) Report {
	r := Report{
		Frameworks: config.Frameworks(),
		Formats:    types.Formats(),
	}
	if reg != nil {
		caps := reg.Capabilities()
		r.Engines = caps.Engines
		r.Backends = caps.Backends
	}
	return r
}

func shapeFor(framework string) resolve.Shape {
	switch framework {
	case config.FrameworkTensorFlow:
		return resolve.ShapeGenerator
	case config.FrameworkJAX:
		return resolve.ShapePlain
	default:
		return resolve.ShapeIterable
	}
}

// Re-export construction options so callers never need to import frameworks/.

// WithEngine sets the streaming engine to construct the stream with.
var WithEngine = frameworks.WithEngine

// WithLogger sets a custom zap logger.
var WithLogger = frameworks.WithLogger

// WithMetrics sets the metrics collector.
var WithMetrics = frameworks.WithMetrics

// WithOverrides sets per-call option overrides, the highest merge layer.
var WithOverrides = frameworks.WithOverrides

// WithDataFolder overrides the configuration's data location.
var WithDataFolder = frameworks.WithDataFolder

// WithStrictFormat rejects unrecognized format declarations.
var WithStrictFormat = frameworks.WithStrictFormat

// WithPostProcessor installs a format-aware sample post-processing hook.
var WithPostProcessor = frameworks.WithPostProcessor
