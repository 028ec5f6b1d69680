package engine

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the streaming engines known to this process, keyed by
// engine name. One engine may be marked as the default so callers that do
// not care which engine serves them can skip the lookup. All methods are
// safe for concurrent use.
type Registry struct {
	engines       map[string]Engine
	defaultEngine string
	mu            sync.RWMutex
}

// NewRegistry returns a Registry with no engines and no default.
func NewRegistry() *Registry {
	return &Registry{
		engines: make(map[string]Engine),
	}
}

// Register adds an engine under its own Name(). Re-registering a name
// silently replaces the previous engine.
func (r *Registry) Register(e Engine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engines[e.Name()] = e
}

// Get looks up an engine by name.
func (r *Registry) Get(name string) (Engine, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.engines[name]
	return e, ok
}

// Default returns the engine marked as default. It fails when no default
// was ever set, or when the marked engine has since been unregistered.
func (r *Registry) Default() (Engine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.defaultEngine == "" {
		return nil, fmt.Errorf("no default engine set")
	}
	e, ok := r.engines[r.defaultEngine]
	if !ok {
		return nil, fmt.Errorf("default engine %q not found in registry", r.defaultEngine)
	}
	return e, nil
}

// SetDefault marks a registered engine as the default. The name must
// already be registered.
func (r *Registry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.engines[name]; !ok {
		return fmt.Errorf("engine %q not registered", name)
	}
	r.defaultEngine = name
	return nil
}

// List returns the registered engine names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Unregister removes an engine. Removing the default engine also clears
// the default mark.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.engines, name)
	if r.defaultEngine == name {
		r.defaultEngine = ""
	}
}

// Len reports how many engines are registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.engines)
}
