// Package fixtures provides canonical workload configurations for tests.
package fixtures

// NestedYAML is a DLIO-style nested configuration.
const NestedYAML = `
dataset:
  data_folder: file:///tmp/x
  format: npz
  num_files_train: 64
  record_length_bytes: 1048576
reader:
  batch_size: 4
  shuffle: true
  seed: 42
  read_threads: 2
`

// FlatYAML is a flat-layout configuration with a named profile and an
// inline framework config.
const FlatYAML = `
data_folder: s3://bucket/train
format: tfrecord
reader:
  batch_size: 16
framework:
  pytorch:
    batch_size: 64
    num_workers: 8
pytorch_config:
  batch_size: 8
`

// TrainJSON is the same shape as NestedYAML, in JSON.
const TrainJSON = `{
  "dataset": {"data_folder": "az://account/container/data", "format": "hdf5"},
  "reader": {"batch_size": 32, "prefetch": 4}
}`

// Mapping returns a DLIO-style mapping equivalent to NestedYAML, for
// loader paths that bypass file parsing.
func Mapping() map[string]any {
	return map[string]any{
		"dataset": map[string]any{
			"data_folder": "file:///tmp/x",
			"format":      "npz",
		},
		"reader": map[string]any{
			"batch_size": 4,
			"shuffle":    true,
			"seed":       42,
		},
	}
}
