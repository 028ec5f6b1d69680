package engine

import (
	"sort"

	"github.com/dlworks/dlbridge/types"
)

// EngineCapability describes one registered engine.
type EngineCapability struct {
	Name     string             `json:"name" yaml:"name"`
	Default  bool               `json:"default" yaml:"default"`
	Backends []types.BackendTag `json:"backends" yaml:"backends"`
}

// Capabilities is a structured availability report, computed at call time.
// Callers branch on the report instead of on ambient global state.
type Capabilities struct {
	Engines  []EngineCapability `json:"engines" yaml:"engines"`
	Backends []types.BackendTag `json:"backends" yaml:"backends"`
	Formats  []types.FormatTag  `json:"formats" yaml:"formats"`
}

// Capabilities reports the registry's engines, the union of backends they
// serve, and the format tags the resolution layer understands.
func (r *Registry) Capabilities() Capabilities {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report := Capabilities{Formats: types.Formats()}
	seen := make(map[types.BackendTag]bool)

	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		e := r.engines[name]
		backends := e.Backends()
		report.Engines = append(report.Engines, EngineCapability{
			Name:     name,
			Default:  name == r.defaultEngine,
			Backends: backends,
		})
		for _, b := range backends {
			if !seen[b] {
				seen[b] = true
				report.Backends = append(report.Backends, b)
			}
		}
	}

	sort.Slice(report.Backends, func(i, j int) bool {
		return report.Backends[i] < report.Backends[j]
	})
	return report
}

// Supports reports whether any registered engine serves the given backend.
func (c Capabilities) Supports(tag types.BackendTag) bool {
	for _, b := range c.Backends {
		if b == tag {
			return true
		}
	}
	return false
}
