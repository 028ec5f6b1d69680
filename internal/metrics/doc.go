// Package metrics provides internal Prometheus metrics collection for
// adapter construction and sample iteration.
// This package is internal and should not be imported by external projects.
package metrics
