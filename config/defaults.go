package config

// Supported target frameworks.
const (
	FrameworkPyTorch    = "pytorch"
	FrameworkTensorFlow = "tensorflow"
	FrameworkJAX        = "jax"
)

// Frameworks lists the supported framework names, in stable order.
func Frameworks() []string {
	return []string{FrameworkPyTorch, FrameworkTensorFlow, FrameworkJAX}
}

// KnownFramework reports whether name (already lower-cased) is supported.
func KnownFramework(name string) bool {
	switch name {
	case FrameworkPyTorch, FrameworkTensorFlow, FrameworkJAX:
		return true
	}
	return false
}

// autotune marks "let the framework pick" for parallelism and prefetch
// knobs. It resolves to "engine decides" during option coercion.
const autotune = -1

// Defaults returns the built-in option defaults for a framework, the lowest
// layer of the option merge. The returned mapping is a fresh copy; callers
// may overwrite it freely. Unknown frameworks have no defaults.
func Defaults(framework string) (map[string]any, bool) {
	switch framework {
	case FrameworkPyTorch:
		return map[string]any{
			"batch_size":      32,
			"num_workers":     4,
			"shuffle":         true,
			"seed":            42,
			"prefetch_factor": 2,
			"return_type":     "tensor",
		}, true
	case FrameworkTensorFlow, FrameworkJAX:
		// JAX rides the TensorFlow integration, defaults included.
		return map[string]any{
			"batch_size":           32,
			"shuffle_buffer_size":  1000,
			"seed":                 42,
			"num_parallel_calls":   autotune,
			"prefetch_buffer_size": autotune,
			"deterministic":        true,
			"writable":             false,
		}, true
	}
	return nil, false
}
