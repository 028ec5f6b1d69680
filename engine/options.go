package engine

// Options is the engine-facing option schema, produced from a
// types.ResolvedOptions by the resolve package's translator. Zero values
// mean "engine decides".
type Options struct {
	BatchSize  int            `json:"batch_size,omitempty" yaml:"batch_size,omitempty"`
	Shuffle    bool           `json:"shuffle" yaml:"shuffle"`
	Seed       int64          `json:"seed,omitempty" yaml:"seed,omitempty"`
	NumWorkers int            `json:"num_workers,omitempty" yaml:"num_workers,omitempty"`
	Prefetch   int            `json:"prefetch,omitempty" yaml:"prefetch,omitempty"`
	ReturnType string         `json:"return_type,omitempty" yaml:"return_type,omitempty"`
	Writable   bool           `json:"writable,omitempty" yaml:"writable,omitempty"`
	Extra      map[string]any `json:"extra,omitempty" yaml:"extra,omitempty"`
}
