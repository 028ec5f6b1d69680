package resolve

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dlworks/dlbridge/types"
)

func TestBackendSchemeTable(t *testing.T) {
	tests := []struct {
		location string
		want     types.BackendTag
	}{
		{location: "s3://bucket/path", want: types.BackendS3},
		{location: "s3a://bucket/path", want: types.BackendS3},
		{location: "az://account/container", want: types.BackendAzure},
		{location: "azure://account/container", want: types.BackendAzure},
		{location: "abfs://container/path", want: types.BackendAzure},
		{location: "direct:///mnt/nvme/data", want: types.BackendDirectIO},
		{location: "file:///tmp/data", want: types.BackendFile},
		{location: "/mnt/data/train", want: types.BackendFile},
		{location: "relative/path", want: types.BackendFile},
		// Scheme matching is case-insensitive.
		{location: "S3://bucket/path", want: types.BackendS3},
		{location: "FILE:///tmp/data", want: types.BackendFile},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			got, err := Backend(tt.location)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBackendUnknownScheme(t *testing.T) {
	for _, location := range []string{
		"ftp://host/path",
		"gs://bucket/path",
		"http://host/path",
		"hdfs://namenode/path",
	} {
		t.Run(location, func(t *testing.T) {
			_, err := Backend(location)
			require.Error(t, err)
			assert.True(t, types.IsBackendError(err))
			assert.Equal(t, types.ErrUnknownScheme, types.GetErrorCode(err))
		})
	}
}

func TestBackendErrorCarriesLocation(t *testing.T) {
	_, err := Backend("ftp://host/path")
	require.Error(t, err)
	var e *types.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "ftp://host/path", e.Location)
}

// Any scheme outside the known set must fail; classification never falls
// back silently.
func TestBackendUnknownSchemesAlwaysFail(t *testing.T) {
	known := map[string]bool{
		"s3": true, "s3a": true, "az": true, "azure": true,
		"abfs": true, "direct": true, "file": true, "": true,
	}

	rapid.Check(t, func(t *rapid.T) {
		scheme := rapid.StringMatching(`[a-z][a-z0-9]{0,9}`).Draw(t, "scheme")
		location := fmt.Sprintf("%s://host/path", scheme)
		tag, err := Backend(location)
		if known[scheme] {
			if err != nil {
				t.Fatalf("known scheme %q failed: %v", scheme, err)
			}
			return
		}
		if err == nil {
			t.Fatalf("unknown scheme %q classified as %q", scheme, tag)
		}
		if !types.IsBackendError(err) {
			t.Fatalf("unknown scheme %q produced non-backend error %v", scheme, err)
		}
	})
}
