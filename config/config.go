package config

// WorkloadConfig is the canonical form of a parsed workload configuration.
// Every recognized field is explicit; top-level keys the resolution pipeline
// does not recognize are kept in Extra and otherwise ignored.
//
// A WorkloadConfig is immutable by convention once produced by Normalize;
// resolution stages read from it and never write back.
type WorkloadConfig struct {
	// DataFolder is the URI-like data location. Always non-empty after
	// normalization; normalization fails otherwise.
	DataFolder string

	// Format and FileFormat are the raw, unvalidated format declarations
	// (explicit `format` and legacy `file_format` keys). Either may be
	// empty; classification happens in the resolve package.
	Format     string
	FileFormat string

	// Dataset holds dataset-level fields (num_files_train,
	// record_length_bytes, ...). Opaque to resolution.
	Dataset map[string]any

	// Reader holds reader-level tuning fields (batch_size, shuffle, seed,
	// read_threads, prefetch, ...). These form the merge layer between
	// built-in defaults and named framework profiles.
	Reader map[string]any

	// Profiles maps a framework name to its named override block.
	Profiles map[string]map[string]any

	// DirectConfigs maps a framework name to the inline
	// `<framework>_config` mapping, the layer above named profiles.
	DirectConfigs map[string]map[string]any

	// DefaultFramework is a scalar `framework` value from the config, if
	// present. It names the framework the config was written for; it is
	// advisory and never overrides the caller's requested framework.
	DefaultFramework string

	// Extra holds unrecognized top-level keys, ignored by resolution.
	Extra map[string]any
}

// Profile returns the named framework profile, or nil.
func (c *WorkloadConfig) Profile(framework string) map[string]any {
	if c.Profiles == nil {
		return nil
	}
	return c.Profiles[framework]
}

// DirectConfig returns the inline `<framework>_config` mapping, or nil.
func (c *WorkloadConfig) DirectConfig(framework string) map[string]any {
	if c.DirectConfigs == nil {
		return nil
	}
	return c.DirectConfigs[framework]
}
