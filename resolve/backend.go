package resolve

import (
	"net/url"
	"strings"

	"github.com/dlworks/dlbridge/types"
)

// Backend classifies a data location into a storage backend by URI scheme.
// The check is pure: it never verifies reachability or existence.
//
// Scheme table:
//
//	s3, s3a           → s3
//	az, azure, abfs   → azure
//	direct            → directio
//	file, (none)      → file
//	anything else     → BACKEND_UNKNOWN_SCHEME
func Backend(location string) (types.BackendTag, error) {
	parsed, err := url.Parse(location)
	if err != nil {
		return "", types.Errorf(types.ErrUnknownScheme,
			"unparseable data location %q", location).
			WithLocation(location).WithCause(err)
	}

	switch strings.ToLower(parsed.Scheme) {
	case "s3", "s3a":
		return types.BackendS3, nil
	case "az", "azure", "abfs":
		return types.BackendAzure, nil
	case "direct":
		return types.BackendDirectIO, nil
	case "file", "":
		return types.BackendFile, nil
	default:
		return "", types.Errorf(types.ErrUnknownScheme,
			"unsupported URI scheme: %s", strings.ToLower(parsed.Scheme)).
			WithLocation(location)
	}
}
