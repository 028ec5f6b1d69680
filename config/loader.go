package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dlworks/dlbridge/types"
)

// Loader builds a WorkloadConfig from exactly one source: a config file path
// or an already-parsed mapping. Supplying neither or both is a configuration
// error.
type Loader struct {
	configPath string
	mapping    map[string]any
	dataFolder string
}

// NewLoader creates an empty configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// WithConfigPath sets the path of a YAML or JSON configuration file.
func (l *Loader) WithConfigPath(path string) *Loader {
	l.configPath = path
	return l
}

// WithMapping sets an already-parsed configuration mapping.
func (l *Loader) WithMapping(m map[string]any) *Loader {
	l.mapping = m
	return l
}

// WithDataFolder overrides the configuration's data location. The override
// wins over both the top-level and the nested dataset value.
func (l *Loader) WithDataFolder(uri string) *Loader {
	l.dataFolder = uri
	return l
}

// Load parses the configured source and normalizes it.
func (l *Loader) Load() (*WorkloadConfig, error) {
	if l.configPath != "" && l.mapping != nil {
		return nil, types.NewError(types.ErrConfigSource,
			"either config path or config mapping must be provided, not both")
	}

	var raw map[string]any
	switch {
	case l.configPath != "":
		parsed, err := parseFile(l.configPath)
		if err != nil {
			return nil, err
		}
		raw = parsed
	case l.mapping != nil:
		raw = copyMap(l.mapping)
	default:
		return nil, types.NewError(types.ErrConfigSource,
			"either config path or config mapping must be provided")
	}

	if l.dataFolder != "" {
		raw = setKey(raw, keyDataFolder, l.dataFolder)
		// A nested location would otherwise still win inside Normalize.
		if ds, ok := raw[keyDataset].(map[string]any); ok {
			ds = copyMap(ds)
			delete(ds, keyDataFolder)
			raw[keyDataset] = ds
		}
	}

	return Normalize(raw)
}

// parseFile reads and parses a YAML or JSON configuration file into a
// generic mapping. Unsupported extensions and unreadable files are
// configuration errors.
func parseFile(path string) (map[string]any, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml", ".json":
	default:
		return nil, types.Errorf(types.ErrConfigParse,
			"unsupported config format: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.Errorf(types.ErrConfigParse,
			"failed to read config file %s", path).WithCause(err)
	}

	raw := make(map[string]any)
	if ext == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, types.Errorf(types.ErrConfigParse,
				"failed to parse config file %s", path).WithCause(err)
		}
		return raw, nil
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, types.Errorf(types.ErrConfigParse,
			"failed to parse config file %s", path).WithCause(err)
	}
	return raw, nil
}

// IsConfigFilePath reports whether source names a configuration file rather
// than a raw data location, judged by extension alone.
func IsConfigFilePath(source string) bool {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
