package types

// ResolvedOptions is the final, fully-merged set of tuning parameters for one
// adapter instance. It is built once at construction time and never mutated
// afterwards; reconfiguration means building a new adapter.
//
// Core fields are typed; framework-specific keys that the resolution pipeline
// does not interpret (shuffle_buffer_size, pin_memory, ...) are carried in
// Extra untouched.
type ResolvedOptions struct {
	BatchSize     int            `json:"batch_size" yaml:"batch_size"`
	Shuffle       bool           `json:"shuffle" yaml:"shuffle"`
	Seed          int64          `json:"seed" yaml:"seed"`
	NumWorkers    int            `json:"num_workers" yaml:"num_workers"`
	Prefetch      int            `json:"prefetch" yaml:"prefetch"`
	ReturnType    string         `json:"return_type,omitempty" yaml:"return_type,omitempty"`
	Deterministic bool           `json:"deterministic" yaml:"deterministic"`
	Writable      bool           `json:"writable" yaml:"writable"`
	DropLast      bool           `json:"drop_last" yaml:"drop_last"`
	Extra         map[string]any `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Alias orderings for keys that several configuration dialects spell
// differently. Within a single mapping the first present key wins. Merge
// layering is the resolve package's job: it clears a group's other
// spellings whenever a higher layer supplies one, so a layer's choice of
// spelling never loses to a lower layer's.
var (
	NumWorkersKeys = []string{"num_workers", "read_threads", "num_readers", "num_parallel_calls"}
	PrefetchKeys   = []string{"prefetch", "prefetch_factor", "prefetch_buffer", "prefetch_buffer_size"}
)

// AliasGroups lists the key groups that name the same resolved option.
func AliasGroups() [][]string {
	return [][]string{NumWorkersKeys, PrefetchKeys}
}

// OptionsFromMap coerces a merged option mapping into a ResolvedOptions.
// Known keys are lifted into typed fields; unknown keys land in Extra.
// Values of an unexpected type are left in Extra and the typed field keeps
// its zero value. Negative worker/prefetch counts (autotune markers) resolve
// to zero, meaning "engine decides".
func OptionsFromMap(m map[string]any) ResolvedOptions {
	var o ResolvedOptions
	consumed := make(map[string]bool, len(m))

	if v, ok := asInt(m["batch_size"]); ok {
		o.BatchSize = int(v)
		consumed["batch_size"] = true
	}
	if v, ok := m["shuffle"].(bool); ok {
		o.Shuffle = v
		consumed["shuffle"] = true
	}
	if v, ok := asInt(m["seed"]); ok {
		o.Seed = v
		consumed["seed"] = true
	}
	for _, k := range NumWorkersKeys {
		if v, ok := asInt(m[k]); ok {
			if v > 0 {
				o.NumWorkers = int(v)
			}
			consumed[k] = true
			break
		}
	}
	for _, k := range PrefetchKeys {
		if v, ok := asInt(m[k]); ok {
			if v > 0 {
				o.Prefetch = int(v)
			}
			consumed[k] = true
			break
		}
	}
	if v, ok := m["return_type"].(string); ok {
		o.ReturnType = v
		consumed["return_type"] = true
	}
	if v, ok := m["deterministic"].(bool); ok {
		o.Deterministic = v
		consumed["deterministic"] = true
	}
	if v, ok := m["writable"].(bool); ok {
		o.Writable = v
		consumed["writable"] = true
	}
	if v, ok := m["drop_last"].(bool); ok {
		o.DropLast = v
		consumed["drop_last"] = true
	}

	for k, v := range m {
		if consumed[k] {
			continue
		}
		if o.Extra == nil {
			o.Extra = make(map[string]any)
		}
		o.Extra[k] = v
	}
	return o
}

// asInt widens any numeric value produced by a YAML or JSON parser.
// Fractional floats do not coerce.
func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float32:
		if float32(int64(n)) == n {
			return int64(n), true
		}
	case float64:
		if float64(int64(n)) == n {
			return int64(n), true
		}
	}
	return 0, false
}
