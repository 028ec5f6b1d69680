// Package config loads and normalizes declarative DLIO-style workload
// configurations.
//
// A configuration arrives either as a YAML/JSON file or as an already-parsed
// mapping, in one of two layouts: flat top-level keys, or the nested
// dataset/reader/framework layout used by DLIO benchmark configs. The Loader
// accepts exactly one source and produces a canonical WorkloadConfig; all
// later resolution stages (backend, format, option merging) work only on the
// canonical form.
//
// Normalization performs no type coercion: fields keep whatever type the
// parser produced, and type mismatches surface in downstream stages.
//
// Usage:
//
//	cfg, err := config.NewLoader().
//	    WithConfigPath("workload.yaml").
//	    WithDataFolder("s3://bucket/override").
//	    Load()
package config
