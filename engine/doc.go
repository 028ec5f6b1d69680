// Package engine defines the boundary to the external streaming engine.
//
// dlbridge never performs storage I/O itself: it resolves a location and an
// option set, asks an Engine to construct a StreamHandle, and pulls samples
// from it. Everything behind the Engine interface (transports, decoding,
// read-ahead workers) belongs to the engine implementation.
//
// Engines are registered by name in a Registry; availability is answered by
// a call-time capability report, never by package-level flags.
package engine
