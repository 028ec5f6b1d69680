package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlworks/dlbridge/types"
)

func TestNormalizeFlatLayout(t *testing.T) {
	raw := map[string]any{
		"data_folder": "s3://bucket/train",
		"format":      "npz",
		"reader":      map[string]any{"batch_size": 16, "shuffle": false},
	}

	cfg, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, "s3://bucket/train", cfg.DataFolder)
	assert.Equal(t, "npz", cfg.Format)
	assert.Equal(t, map[string]any{"batch_size": 16, "shuffle": false}, cfg.Reader)
}

func TestNormalizeNestedLayout(t *testing.T) {
	raw := map[string]any{
		"dataset": map[string]any{
			"data_folder":     "file:///tmp/x",
			"format":          "hdf5",
			"num_files_train": 128,
		},
		"reader": map[string]any{"batch_size": 4},
	}

	cfg, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, "file:///tmp/x", cfg.DataFolder)
	assert.Equal(t, "hdf5", cfg.Format)
	assert.Equal(t, 128, cfg.Dataset["num_files_train"])
}

func TestNormalizeTopLevelWinsOverNested(t *testing.T) {
	raw := map[string]any{
		"data_folder": "s3://top/level",
		"format":      "tfrecord",
		"dataset": map[string]any{
			"data_folder": "file:///nested",
			"format":      "npz",
		},
	}

	cfg, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, "s3://top/level", cfg.DataFolder)
	assert.Equal(t, "tfrecord", cfg.Format)
}

func TestNormalizeMissingDataFolder(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{name: "empty mapping", raw: map[string]any{}},
		{name: "reader only", raw: map[string]any{"reader": map[string]any{"batch_size": 4}}},
		{name: "dataset without location", raw: map[string]any{"dataset": map[string]any{"format": "npz"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.raw)
			require.Error(t, err)
			assert.True(t, types.IsConfigError(err))
			assert.Contains(t, err.Error(), "data_folder must be specified")
		})
	}
}

func TestNormalizeProfilesAndDirectConfigs(t *testing.T) {
	raw := map[string]any{
		"data_folder": "file:///tmp/x",
		"framework": map[string]any{
			"pytorch":    map[string]any{"batch_size": 64},
			"tensorflow": map[string]any{"batch_size": 128},
		},
		"pytorch_config": map[string]any{"batch_size": 8, "pin_memory": true},
	}

	cfg, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"batch_size": 64}, cfg.Profile("pytorch"))
	assert.Equal(t, map[string]any{"batch_size": 128}, cfg.Profile("tensorflow"))
	assert.Nil(t, cfg.Profile("jax"))
	assert.Equal(t, map[string]any{"batch_size": 8, "pin_memory": true}, cfg.DirectConfig("pytorch"))
	assert.Nil(t, cfg.DirectConfig("tensorflow"))
}

func TestNormalizeFrameworkProfilesKeyWins(t *testing.T) {
	raw := map[string]any{
		"data_folder": "file:///tmp/x",
		"framework": map[string]any{
			"pytorch": map[string]any{"batch_size": 64},
		},
		"framework_profiles": map[string]any{
			"pytorch": map[string]any{"batch_size": 96},
		},
	}

	cfg, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"batch_size": 96}, cfg.Profile("pytorch"))
}

func TestNormalizeScalarFramework(t *testing.T) {
	raw := map[string]any{
		"data_folder": "file:///tmp/x",
		"framework":   "pytorch",
	}

	cfg, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, "pytorch", cfg.DefaultFramework)
	assert.Nil(t, cfg.Profiles)
}

func TestNormalizeLegacyReaderKeys(t *testing.T) {
	raw := map[string]any{
		"data_folder":     "file:///tmp/x",
		"num_readers":     8,
		"prefetch_buffer": 3,
	}

	cfg, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Reader["num_readers"])
	assert.Equal(t, 3, cfg.Reader["prefetch_buffer"])

	// An explicit reader block keeps its own values.
	raw = map[string]any{
		"data_folder": "file:///tmp/x",
		"num_readers": 8,
		"reader":      map[string]any{"read_threads": 2},
	}
	cfg, err = Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Reader["read_threads"])
	assert.NotContains(t, cfg.Reader, "num_readers")
}

func TestNormalizeUnknownKeysIgnored(t *testing.T) {
	raw := map[string]any{
		"data_folder": "file:///tmp/x",
		"model":       map[string]any{"name": "unet3d"},
		"workflow":    map[string]any{"train": true},
	}

	cfg, err := Normalize(raw)
	require.NoError(t, err)
	assert.Contains(t, cfg.Extra, "model")
	assert.Contains(t, cfg.Extra, "workflow")
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := map[string]any{
		"data_folder": "s3://bucket/path",
		"format":      "tfrecord",
		"reader":      map[string]any{"batch_size": 4, "seed": 7},
		"framework": map[string]any{
			"jax": map[string]any{"writable": true},
		},
	}

	first, err := Normalize(raw)
	require.NoError(t, err)
	second, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	reader := map[string]any{"batch_size": 4}
	raw := map[string]any{
		"data_folder": "file:///tmp/x",
		"num_readers": 8,
		"reader":      reader,
	}

	_, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"batch_size": 4}, reader)
}
