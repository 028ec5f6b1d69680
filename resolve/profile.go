package resolve

import (
	"github.com/dlworks/dlbridge/config"
	"github.com/dlworks/dlbridge/types"
)

// Merge resolves the option set for one framework from its layered sources.
// Layers apply lowest to highest, each as a shallow key-by-key overwrite:
//
//  1. built-in per-framework defaults
//  2. reader-level fields from the workload config
//  3. the named profile under framework_profiles[framework]
//  4. the inline <framework>_config mapping
//  5. the per-call override mapping
//
// A caller-supplied override always wins; a named profile always beats the
// built-in defaults. Precedence holds across alias spellings too: a layer
// supplying read_threads displaces a lower layer's num_workers, and so on
// for every alias group. Unknown frameworks fail with
// CONFIG_UNKNOWN_FRAMEWORK.
func Merge(cfg *config.WorkloadConfig, framework string, overrides map[string]any) (types.ResolvedOptions, error) {
	defaults, ok := config.Defaults(framework)
	if !ok {
		return types.ResolvedOptions{}, types.Errorf(types.ErrUnknownFramework,
			"unsupported framework: %s (use one of pytorch, tensorflow, jax)", framework).
			WithFramework(framework)
	}

	merged := defaults // Defaults returns a fresh copy
	overlay(merged, cfg.Reader)
	overlay(merged, cfg.Profile(framework))
	overlay(merged, cfg.DirectConfig(framework))
	overlay(merged, overrides)

	return types.OptionsFromMap(merged), nil
}

// overlay applies layer onto base key by key. Nested mappings are replaced
// wholesale, never deep-merged. When the layer supplies any spelling of an
// alias group, the group's other spellings are cleared from base first;
// otherwise a lower layer's leftover spelling could outrank this one during
// coercion.
func overlay(base, layer map[string]any) {
	for _, group := range types.AliasGroups() {
		if !hasAnyKey(layer, group) {
			continue
		}
		for _, k := range group {
			delete(base, k)
		}
	}
	for k, v := range layer {
		base[k] = v
	}
}

func hasAnyKey(m map[string]any, keys []string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}
