package dlbridge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlworks/dlbridge/engine"
	"github.com/dlworks/dlbridge/frameworks/pytorch"
	"github.com/dlworks/dlbridge/frameworks/tensorflow"
	"github.com/dlworks/dlbridge/testutil"
	"github.com/dlworks/dlbridge/testutil/fixtures"
	"github.com/dlworks/dlbridge/testutil/mocks"
	"github.com/dlworks/dlbridge/types"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNew(t *testing.T) {
	ctx := testutil.TestContext(t)

	t.Run("pytorch from config file", func(t *testing.T) {
		path := writeConfig(t, "train.yaml", fixtures.NestedYAML)
		a, err := New(ctx, "pytorch", path, WithEngine(mocks.NewMockEngine()))
		require.NoError(t, err)
		defer a.Close()

		_, ok := a.(*pytorch.Dataset)
		assert.True(t, ok)
		assert.Equal(t, types.BackendFile, a.Info().Backend)
		assert.Equal(t, 4, a.Info().Options.BatchSize)
	})

	t.Run("tensorflow from uri", func(t *testing.T) {
		a, err := New(ctx, "tensorflow", "s3://bucket/train", WithEngine(mocks.NewMockEngine()))
		require.NoError(t, err)
		defer a.Close()

		_, ok := a.(*tensorflow.Dataset)
		assert.True(t, ok)
		assert.Equal(t, types.BackendS3, a.Info().Backend)
		assert.False(t, a.Info().EngineOptions.Shuffle)
	})

	t.Run("jax from uri with overrides", func(t *testing.T) {
		a, err := New(ctx, "jax", "file:///tmp/x",
			WithEngine(mocks.NewMockEngine()),
			WithOverrides(map[string]any{"batch_size": 7}))
		require.NoError(t, err)
		defer a.Close()

		assert.Equal(t, 7, a.Info().Options.BatchSize)
	})

	t.Run("unknown framework", func(t *testing.T) {
		_, err := New(ctx, "mxnet", "file:///tmp/x", WithEngine(mocks.NewMockEngine()))
		require.Error(t, err)
		assert.Equal(t, types.ErrUnknownFramework, types.GetErrorCode(err))
	})
}

func TestResolveDryRun(t *testing.T) {
	t.Run("config file", func(t *testing.T) {
		path := writeConfig(t, "train.json", fixtures.TrainJSON)
		res, err := Resolve("pytorch", path)
		require.NoError(t, err)
		assert.Equal(t, types.BackendAzure, res.Backend)
		assert.Equal(t, types.FormatHDF5, res.Format)
		assert.Equal(t, 32, res.Options.BatchSize)
	})

	t.Run("bare uri gets framework defaults", func(t *testing.T) {
		res, err := Resolve("pytorch", "direct:///mnt/nvme/data")
		require.NoError(t, err)
		assert.Equal(t, types.BackendDirectIO, res.Backend)
		assert.Equal(t, types.FormatNPZ, res.Format)
		assert.Equal(t, 32, res.Options.BatchSize)
		assert.Equal(t, 4, res.Options.NumWorkers)
	})

	t.Run("unknown framework fails before loading", func(t *testing.T) {
		_, err := Resolve("mxnet", "file:///tmp/x")
		require.Error(t, err)
		assert.Equal(t, types.ErrUnknownFramework, types.GetErrorCode(err))
	})
}

func TestFrameworks(t *testing.T) {
	assert.ElementsMatch(t, []string{"pytorch", "tensorflow", "jax"}, Frameworks())
}

func TestCapabilityReport(t *testing.T) {
	t.Run("nil registry yields static portion", func(t *testing.T) {
		r := CapabilityReport(nil)
		assert.ElementsMatch(t, Frameworks(), r.Frameworks)
		assert.ElementsMatch(t, types.Formats(), r.Formats)
		assert.Empty(t, r.Engines)
	})

	t.Run("registered engines appear", func(t *testing.T) {
		reg := engine.NewRegistry()
		reg.Register(mocks.NewMockEngine().WithBackends(types.BackendS3))

		r := CapabilityReport(reg)
		require.Len(t, r.Engines, 1)
		assert.Equal(t, "mock", r.Engines[0].Name)
		assert.Equal(t, []types.BackendTag{types.BackendS3}, r.Backends)
	})
}
