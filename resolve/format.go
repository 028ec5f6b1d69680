package resolve

import (
	"strings"

	"github.com/dlworks/dlbridge/config"
	"github.com/dlworks/dlbridge/types"
)

// FormatOptions tunes format classification.
type FormatOptions struct {
	// Strict turns an unrecognized, non-empty format declaration into an
	// error instead of silently falling back to the default. An absent
	// declaration still resolves to the default: a typo is a mistake, an
	// omission is a choice.
	Strict bool
}

// Format classifies the sample format of a workload configuration.
// Priority: explicit `format` field, then the alternate `file_format`
// field, then the npz default. Matching is case-insensitive. This function
// never fails.
func Format(cfg *config.WorkloadConfig) types.FormatTag {
	tag, _ := FormatWith(cfg, FormatOptions{})
	return tag
}

// FormatWith classifies the sample format under the given options. With
// Strict disabled it behaves exactly like Format and never returns an
// error.
func FormatWith(cfg *config.WorkloadConfig, opts FormatOptions) (types.FormatTag, error) {
	for _, declared := range []string{cfg.Format, cfg.FileFormat} {
		normalized := strings.ToLower(declared)
		if types.ValidFormat(normalized) {
			return types.FormatTag(normalized), nil
		}
		if opts.Strict && declared != "" {
			return "", types.Errorf(types.ErrConfigField,
				"unrecognized format %q (expected one of npz, hdf5, tfrecord)", declared)
		}
	}
	return types.DefaultFormat, nil
}
