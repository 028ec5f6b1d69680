package config

import (
	"strings"

	"github.com/dlworks/dlbridge/types"
)

// Recognized top-level keys. Anything else lands in WorkloadConfig.Extra.
const (
	keyDataFolder = "data_folder"
	keyFormat     = "format"
	keyFileFormat = "file_format"
	keyDataset    = "dataset"
	keyReader     = "reader"
	keyFramework  = "framework"
	keyProfiles   = "framework_profiles"

	// Legacy flat-layout reader knobs, folded into the reader layer.
	keyNumReaders     = "num_readers"
	keyPrefetchBuffer = "prefetch_buffer"

	directConfigSuffix = "_config"
)

// Normalize turns a raw parsed mapping into a canonical WorkloadConfig.
//
// data_folder is looked up at top level first, then nested under `dataset`;
// if both are absent normalization fails. The same fallback applies to
// `format` and `file_format`. The raw mapping is never mutated, and
// normalizing the same mapping twice yields identical results.
func Normalize(raw map[string]any) (*WorkloadConfig, error) {
	dataset := childMap(raw, keyDataset)

	dataFolder := stringKey(raw, keyDataFolder)
	if dataFolder == "" {
		dataFolder = stringKey(dataset, keyDataFolder)
	}
	if dataFolder == "" {
		return nil, types.NewError(types.ErrConfigField,
			"data_folder must be specified in config or as parameter")
	}

	format := stringKey(raw, keyFormat)
	if format == "" {
		format = stringKey(dataset, keyFormat)
	}
	fileFormat := stringKey(raw, keyFileFormat)
	if fileFormat == "" {
		fileFormat = stringKey(dataset, keyFileFormat)
	}

	cfg := &WorkloadConfig{
		DataFolder: dataFolder,
		Format:     format,
		FileFormat: fileFormat,
		Dataset:    copyMap(dataset),
		Reader:     copyMap(childMap(raw, keyReader)),
	}

	// Legacy flat keys join the reader layer unless the reader block
	// already speaks for itself.
	if v, ok := raw[keyNumReaders]; ok && !hasAny(cfg.Reader, "num_workers", "read_threads", keyNumReaders) {
		cfg.Reader = setKey(cfg.Reader, keyNumReaders, v)
	}
	if v, ok := raw[keyPrefetchBuffer]; ok && !hasAny(cfg.Reader, "prefetch", "prefetch_factor", keyPrefetchBuffer) {
		cfg.Reader = setKey(cfg.Reader, keyPrefetchBuffer, v)
	}

	// Named profiles live under `framework_profiles`, or (in the original
	// DLIO dialect) under a mapping-valued `framework` key. A scalar
	// `framework` names the config's default framework instead.
	switch fw := raw[keyFramework].(type) {
	case string:
		cfg.DefaultFramework = fw
	case map[string]any:
		cfg.Profiles = profileTable(fw)
	}
	if p, ok := raw[keyProfiles].(map[string]any); ok {
		table := profileTable(p)
		if cfg.Profiles == nil {
			cfg.Profiles = table
		} else {
			for name, block := range table {
				cfg.Profiles[name] = block
			}
		}
	}

	for k, v := range raw {
		if name, ok := strings.CutSuffix(k, directConfigSuffix); ok && name != "" {
			if block, ok := v.(map[string]any); ok {
				if cfg.DirectConfigs == nil {
					cfg.DirectConfigs = make(map[string]map[string]any)
				}
				cfg.DirectConfigs[name] = copyMap(block)
				continue
			}
		}
		if recognized(k) {
			continue
		}
		if cfg.Extra == nil {
			cfg.Extra = make(map[string]any)
		}
		cfg.Extra[k] = v
	}

	return cfg, nil
}

func recognized(k string) bool {
	switch k {
	case keyDataFolder, keyFormat, keyFileFormat, keyDataset, keyReader,
		keyFramework, keyProfiles, keyNumReaders, keyPrefetchBuffer:
		return true
	}
	return false
}

func profileTable(m map[string]any) map[string]map[string]any {
	table := make(map[string]map[string]any, len(m))
	for name, v := range m {
		if block, ok := v.(map[string]any); ok {
			table[name] = copyMap(block)
		}
	}
	return table
}

func childMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	child, _ := m[key].(map[string]any)
	return child
}

func stringKey(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func copyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func setKey(m map[string]any, key string, v any) map[string]any {
	if m == nil {
		m = make(map[string]any, 1)
	}
	m[key] = v
	return m
}

func hasAny(m map[string]any, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}
