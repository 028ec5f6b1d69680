package frameworks

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/dlworks/dlbridge/config"
	"github.com/dlworks/dlbridge/engine"
	"github.com/dlworks/dlbridge/internal/metrics"
	"github.com/dlworks/dlbridge/resolve"
	"github.com/dlworks/dlbridge/types"
)

const tracerName = "github.com/dlworks/dlbridge/frameworks"

// Params carries everything needed to build one adapter pipeline.
// Exactly one of ConfigPath and Mapping must be set.
type Params struct {
	Framework  string
	Shape      resolve.Shape
	ConfigPath string
	Mapping    map[string]any
	DataFolder string         // optional location override
	Overrides  map[string]any // per-call option overrides, the highest merge layer

	StrictFormat bool
	PostProcess  PostProcessor // nil means identity

	Engine  engine.Engine
	Logger  *zap.Logger
	Metrics *metrics.Collector
}

// Resolution is the outcome of the pure pipeline stages: normalization,
// backend and format classification, option merging, and translation.
// It involves no engine and is reusable for dry-run diagnostics.
type Resolution struct {
	Config        *config.WorkloadConfig
	Backend       types.BackendTag
	Format        types.FormatTag
	Options       types.ResolvedOptions
	EngineOptions engine.Options
}

// Resolve runs the pure pipeline stages and returns the resolution.
func Resolve(p Params) (*Resolution, error) {
	loader := config.NewLoader()
	if p.ConfigPath != "" {
		loader.WithConfigPath(p.ConfigPath)
	}
	if p.Mapping != nil {
		loader.WithMapping(p.Mapping)
	}
	if p.DataFolder != "" {
		loader.WithDataFolder(p.DataFolder)
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	backend, err := resolve.Backend(cfg.DataFolder)
	if err != nil {
		return nil, err
	}

	format, err := resolve.FormatWith(cfg, resolve.FormatOptions{Strict: p.StrictFormat})
	if err != nil {
		return nil, err
	}

	resolved, err := resolve.Merge(cfg, p.Framework, p.Overrides)
	if err != nil {
		return nil, err
	}

	return &Resolution{
		Config:        cfg,
		Backend:       backend,
		Format:        format,
		Options:       resolved,
		EngineOptions: resolve.Translate(resolved, backend, format, p.Shape),
	}, nil
}

// Pipeline owns the resolved configuration and the engine stream for one
// adapter instance. It is the shared core wrapped by every dataset shape.
type Pipeline struct {
	id        string
	framework string
	res       *Resolution

	handle  engine.StreamHandle
	post    PostProcessor
	logger  *zap.Logger
	metrics *metrics.Collector

	mu    sync.Mutex
	state State
}

// Build runs Resolve and eagerly constructs the engine's streaming handle.
// Engine failures are wrapped as ENGINE_CONSTRUCT with the attempted
// location attached; the cause is never suppressed.
func Build(ctx context.Context, p Params) (*Pipeline, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "frameworks.build")
	defer span.End()
	span.SetAttributes(attribute.String("framework", p.Framework))

	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(
		zap.String("component", "frameworks"),
		zap.String("framework", p.Framework),
	)

	res, err := Resolve(p)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "resolution failed")
		p.Metrics.ObserveConstruction(p.Framework, "unresolved", false)
		return nil, err
	}
	span.SetAttributes(
		attribute.String("backend", string(res.Backend)),
		attribute.String("format", string(res.Format)),
	)

	if p.Engine == nil {
		err := types.NewError(types.ErrEngineConstruct, "no streaming engine provided").
			WithLocation(res.Config.DataFolder).WithFramework(p.Framework)
		span.RecordError(err)
		span.SetStatus(codes.Error, "no engine")
		p.Metrics.ObserveConstruction(p.Framework, string(res.Backend), false)
		return nil, err
	}

	handle, err := p.Engine.Construct(ctx, res.Config.DataFolder, res.EngineOptions)
	if err != nil {
		wrapped := types.Errorf(types.ErrEngineConstruct,
			"engine %s failed to construct stream (options: batch_size=%d shuffle=%t num_workers=%d prefetch=%d)",
			p.Engine.Name(), res.EngineOptions.BatchSize, res.EngineOptions.Shuffle,
			res.EngineOptions.NumWorkers, res.EngineOptions.Prefetch).
			WithLocation(res.Config.DataFolder).
			WithFramework(p.Framework).
			WithCause(err)
		span.RecordError(wrapped)
		span.SetStatus(codes.Error, "engine construction failed")
		p.Metrics.ObserveConstruction(p.Framework, string(res.Backend), false)
		return nil, wrapped
	}

	pl := &Pipeline{
		id:        uuid.NewString(),
		framework: p.Framework,
		res:       res,
		handle:    handle,
		post:      p.PostProcess,
		logger:    logger,
		metrics:   p.Metrics,
		state:     StateConstructed,
	}
	p.Metrics.ObserveConstruction(p.Framework, string(res.Backend), true)
	logger.Debug("adapter pipeline constructed",
		zap.String("id", pl.id),
		zap.String("data_folder", res.Config.DataFolder),
		zap.String("backend", string(res.Backend)),
		zap.String("format", string(res.Format)),
	)
	return pl, nil
}

// Info returns the resolved configuration of this pipeline.
func (pl *Pipeline) Info() Info {
	return Info{
		ID:            pl.id,
		Framework:     pl.framework,
		DataFolder:    pl.res.Config.DataFolder,
		Backend:       pl.res.Backend,
		Format:        pl.res.Format,
		Options:       pl.res.Options,
		EngineOptions: pl.res.EngineOptions,
	}
}

// State returns the pipeline's lifecycle state.
func (pl *Pipeline) State() State {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.state
}

// Next pulls one sample from the engine, blocking until it yields, the
// stream ends, or ctx is done. End-of-stream is reported as io.EOF.
// Engine failures come back as ENGINE_ITERATE, post-processing failures as
// ITERATION_POST_PROCESS; either moves the pipeline to StateFailed.
func (pl *Pipeline) Next(ctx context.Context) (engine.Sample, error) {
	pl.mu.Lock()
	if pl.state == StateConstructed {
		pl.state = StateStreaming
	}
	pl.mu.Unlock()

	start := time.Now()
	sample, err := pl.handle.Next(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			pl.setState(StateExhausted)
			return nil, io.EOF
		}
		pl.setState(StateFailed)
		pl.metrics.ObserveIterationError(pl.framework, string(types.ErrEngineIterate))
		return nil, types.NewError(types.ErrEngineIterate, "engine failed during sample pull").
			WithLocation(pl.res.Config.DataFolder).
			WithFramework(pl.framework).
			WithCause(err)
	}

	if pl.post != nil {
		sample, err = pl.post(pl.res.Format, sample)
		if err != nil {
			pl.setState(StateFailed)
			pl.metrics.ObserveIterationError(pl.framework, string(types.ErrPostProcess))
			return nil, types.NewError(types.ErrPostProcess, "post-processing hook failed").
				WithLocation(pl.res.Config.DataFolder).
				WithFramework(pl.framework).
				WithCause(err)
		}
	}

	pl.metrics.ObserveSample(pl.framework, string(pl.res.Format), time.Since(start))
	return sample, nil
}

// Reset starts a new pass over the stream and returns the pipeline to the
// constructed state. Multiple-pass semantics belong to the engine.
func (pl *Pipeline) Reset(ctx context.Context) error {
	if err := pl.handle.Reset(ctx); err != nil {
		pl.setState(StateFailed)
		return types.NewError(types.ErrEngineIterate, "engine failed to reset stream").
			WithLocation(pl.res.Config.DataFolder).
			WithFramework(pl.framework).
			WithCause(err)
	}
	pl.setState(StateConstructed)
	return nil
}

// Close releases the engine stream.
func (pl *Pipeline) Close() error {
	return pl.handle.Close()
}

func (pl *Pipeline) setState(s State) {
	pl.mu.Lock()
	pl.state = s
	pl.mu.Unlock()
}
