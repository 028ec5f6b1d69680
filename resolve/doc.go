// Package resolve holds the decision logic of dlbridge: classifying a data
// location into a storage backend, classifying the sample format, merging
// the layered per-framework option sources into one resolved set, and
// translating that set into the engine's option schema.
//
// Every function here is a pure computation over a canonical
// config.WorkloadConfig; nothing reaches the network or the filesystem.
//
// The option merge precedence, lowest to highest, is the load-bearing
// invariant of the module:
//
//	built-in defaults < reader fields < named profile < <framework>_config < call overrides
package resolve
