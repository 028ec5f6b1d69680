package frameworks

import (
	"github.com/dlworks/dlbridge/engine"
	"github.com/dlworks/dlbridge/types"
)

// Adapter is the contract every framework-facing dataset shape satisfies.
type Adapter interface {
	// Info returns the adapter's resolved configuration for diagnostics.
	Info() Info

	// Close releases the underlying engine stream.
	Close() error
}

// Info surfaces the resolved configuration of one adapter instance.
// It is read-only; the adapter never changes after construction.
type Info struct {
	ID            string                `json:"id" yaml:"id"`
	Framework     string                `json:"framework" yaml:"framework"`
	DataFolder    string                `json:"data_folder" yaml:"data_folder"`
	Backend       types.BackendTag      `json:"backend" yaml:"backend"`
	Format        types.FormatTag       `json:"format" yaml:"format"`
	Options       types.ResolvedOptions `json:"resolved_options" yaml:"resolved_options"`
	EngineOptions engine.Options        `json:"engine_options" yaml:"engine_options"`
}

// State tracks the lifecycle of one adapter instance.
type State int32

const (
	StateConstructed State = iota
	StateStreaming
	StateExhausted
	StateFailed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateConstructed:
		return "constructed"
	case StateStreaming:
		return "streaming"
	case StateExhausted:
		return "exhausted"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// PostProcessor is the format-aware hook applied to every raw sample before
// it reaches the caller. Format-specific decoding is out of scope for this
// layer; the default processor is an identity pass-through and this type is
// the documented extension point for callers that need more.
type PostProcessor func(format types.FormatTag, sample engine.Sample) (engine.Sample, error)
