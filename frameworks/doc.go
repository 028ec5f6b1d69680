// Package frameworks implements the shared adapter pipeline behind every
// framework-facing dataset shape.
//
// One pipeline serves all frameworks: normalize the configuration, classify
// backend and format, merge the layered option sources, translate to the
// engine schema, and construct the engine's streaming handle. The
// framework subpackages (pytorch, tensorflow, jax) only select the
// iteration shape exposed on top of the pipeline; none of them duplicate
// resolution logic.
//
// Construction is eager: all configuration errors, backend errors, and
// engine construction failures surface before the first sample is pulled.
// Iteration is a synchronous pull that blocks until the engine yields,
// ends the stream, or fails.
package frameworks
