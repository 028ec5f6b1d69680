package types

// BackendTag identifies the storage backend serving a data location.
type BackendTag string

const (
	BackendFile     BackendTag = "file"
	BackendS3       BackendTag = "s3"
	BackendAzure    BackendTag = "azure"
	BackendDirectIO BackendTag = "directio"
)

// Backends lists every supported backend tag.
func Backends() []BackendTag {
	return []BackendTag{BackendFile, BackendS3, BackendAzure, BackendDirectIO}
}

// FormatTag identifies the on-storage sample container format.
type FormatTag string

const (
	FormatNPZ      FormatTag = "npz"
	FormatHDF5     FormatTag = "hdf5"
	FormatTFRecord FormatTag = "tfrecord"

	// DefaultFormat is assumed when a configuration names no recognizable
	// format. NPZ is the most common container for DLIO-style workloads.
	DefaultFormat = FormatNPZ
)

// Formats lists every supported format tag.
func Formats() []FormatTag {
	return []FormatTag{FormatNPZ, FormatHDF5, FormatTFRecord}
}

// ValidFormat reports whether s (already lower-cased) names a known format.
func ValidFormat(s string) bool {
	switch FormatTag(s) {
	case FormatNPZ, FormatHDF5, FormatTFRecord:
		return true
	}
	return false
}
