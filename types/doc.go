// Package types defines the shared vocabulary of the dlbridge module:
// the structured error taxonomy, the backend and format tags derived from a
// workload configuration, and the resolved option set handed to the
// streaming engine.
//
// The package has no dependencies on the rest of the module and is safe to
// import from anywhere.
package types
