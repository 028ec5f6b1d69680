package pytorch

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlworks/dlbridge/config"
	"github.com/dlworks/dlbridge/engine"
	"github.com/dlworks/dlbridge/frameworks"
	"github.com/dlworks/dlbridge/testutil"
	"github.com/dlworks/dlbridge/testutil/fixtures"
	"github.com/dlworks/dlbridge/testutil/mocks"
	"github.com/dlworks/dlbridge/types"
)

func TestFromMapping(t *testing.T) {
	ctx := testutil.TestContext(t)
	eng := mocks.NewMockEngine().WithSamples([]byte("a"), []byte("b"))

	ds, err := FromMapping(ctx, fixtures.Mapping(), frameworks.WithEngine(eng))
	require.NoError(t, err)
	defer ds.Close()

	info := ds.Info()
	assert.Equal(t, config.FrameworkPyTorch, info.Framework)
	assert.Equal(t, types.BackendFile, info.Backend)
	assert.Equal(t, types.FormatNPZ, info.Format)
	// loader-level shuffle stays enabled for the iterable shape
	assert.True(t, info.EngineOptions.Shuffle)

	s, err := ds.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), []byte(s))
}

func TestFromURI(t *testing.T) {
	ctx := testutil.TestContext(t)
	eng := mocks.NewMockEngine()

	ds, err := FromURI(ctx, "s3://bucket/train", frameworks.WithEngine(eng))
	require.NoError(t, err)
	defer ds.Close()

	info := ds.Info()
	assert.Equal(t, types.BackendS3, info.Backend)
	assert.Equal(t, types.FormatNPZ, info.Format)

	call, ok := eng.LastCall()
	require.True(t, ok)
	assert.Equal(t, "s3://bucket/train", call.Location)
}

func TestForEach(t *testing.T) {
	ctx := testutil.TestContext(t)

	t.Run("drains the stream", func(t *testing.T) {
		eng := mocks.NewMockEngine().WithSamples([]byte("a"), []byte("b"), []byte("c"))
		ds, err := FromMapping(ctx, fixtures.Mapping(), frameworks.WithEngine(eng))
		require.NoError(t, err)
		defer ds.Close()

		var got []string
		err = ds.ForEach(ctx, func(s engine.Sample) error {
			got = append(got, string(s))
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, got)
		assert.Equal(t, frameworks.StateExhausted, ds.State())
	})

	t.Run("callback error stops iteration", func(t *testing.T) {
		eng := mocks.NewMockEngine().WithSamples([]byte("a"), []byte("b"))
		ds, err := FromMapping(ctx, fixtures.Mapping(), frameworks.WithEngine(eng))
		require.NoError(t, err)
		defer ds.Close()

		sentinel := errors.New("stop")
		err = ds.ForEach(ctx, func(engine.Sample) error { return sentinel })
		assert.ErrorIs(t, err, sentinel)
	})
}

func TestResetAllowsSecondPass(t *testing.T) {
	ctx := testutil.TestContext(t)
	eng := mocks.NewMockEngine().WithSamples([]byte("a"))

	ds, err := FromMapping(ctx, fixtures.Mapping(), frameworks.WithEngine(eng))
	require.NoError(t, err)
	defer ds.Close()

	_, err = ds.Next(ctx)
	require.NoError(t, err)
	_, err = ds.Next(ctx)
	assert.ErrorIs(t, err, io.EOF)

	require.NoError(t, ds.Reset(ctx))
	s, err := ds.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), []byte(s))
}

func TestConstructionErrors(t *testing.T) {
	ctx := testutil.TestContext(t)

	t.Run("no engine", func(t *testing.T) {
		_, err := FromMapping(ctx, fixtures.Mapping())
		require.Error(t, err)
		assert.Equal(t, types.ErrEngineConstruct, types.GetErrorCode(err))
	})

	t.Run("bad scheme", func(t *testing.T) {
		_, err := FromURI(ctx, "ftp://host/path", frameworks.WithEngine(mocks.NewMockEngine()))
		require.Error(t, err)
		assert.True(t, types.IsBackendError(err))
	})
}
