package frameworks

import (
	"go.uber.org/zap"

	"github.com/dlworks/dlbridge/engine"
	"github.com/dlworks/dlbridge/internal/metrics"
)

// Option configures adapter construction.
type Option func(*Params)

// WithEngine sets the streaming engine to construct the stream with.
func WithEngine(e engine.Engine) Option {
	return func(p *Params) { p.Engine = e }
}

// WithLogger sets a custom zap logger.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Params) { p.Logger = logger }
}

// WithMetrics sets the metrics collector. Nil disables metrics.
func WithMetrics(c *metrics.Collector) Option {
	return func(p *Params) { p.Metrics = c }
}

// WithOverrides sets per-call option overrides, the highest merge layer.
func WithOverrides(overrides map[string]any) Option {
	return func(p *Params) { p.Overrides = overrides }
}

// WithMapping supplies an already-parsed configuration mapping instead of a
// config file path.
func WithMapping(m map[string]any) Option {
	return func(p *Params) { p.Mapping = m }
}

// WithDataFolder overrides the configuration's data location.
func WithDataFolder(uri string) Option {
	return func(p *Params) { p.DataFolder = uri }
}

// WithStrictFormat rejects unrecognized format declarations instead of
// falling back to the default format.
func WithStrictFormat() Option {
	return func(p *Params) { p.StrictFormat = true }
}

// WithPostProcessor installs a format-aware sample post-processing hook.
func WithPostProcessor(post PostProcessor) Option {
	return func(p *Params) { p.PostProcess = post }
}

// Apply folds opts into p.
func (p *Params) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(p)
	}
}
