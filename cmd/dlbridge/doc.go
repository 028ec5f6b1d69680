/*
Package main provides the dlbridge command-line entry point.

# Overview

cmd/dlbridge is a diagnostics tool for the adapter layer. It runs the pure
resolution pipeline (configuration normalization, backend and format
classification, layered option merging, and engine-schema translation)
without constructing any engine stream, and prints the outcome.

# Subcommands

  - resolve: resolve a config file or data URI for a framework and print
    the resolution as YAML or JSON
  - frameworks: list the supported framework names
  - version: show version information

# Examples

	dlbridge resolve --framework pytorch --source train.yaml
	dlbridge resolve --framework jax --source s3://bucket/data --output json
	dlbridge resolve --framework pytorch --source train.yaml --set batch_size=64
	dlbridge frameworks
*/
package main
