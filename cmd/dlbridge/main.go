package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/dlworks/dlbridge"
)

// Build-time injection via ldflags.
var (
	Version   = dlbridge.Version
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "resolve":
		runResolve(os.Args[2:])
	case "frameworks":
		runFrameworks(os.Args[2:])
	case "version":
		printVersion()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runResolve(args []string) {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	framework := fs.String("framework", "pytorch", "Target framework (pytorch, tensorflow, jax)")
	source := fs.String("source", "", "Config file path (.yaml/.yml/.json) or data URI")
	dataFolder := fs.String("data-folder", "", "Override the configuration's data location")
	output := fs.String("output", "yaml", "Output encoding (yaml or json)")
	strict := fs.Bool("strict-format", false, "Reject unrecognized format declarations")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	var overrides overrideFlags
	fs.Var(&overrides, "set", "Per-call option override key=value (repeatable)")
	fs.Parse(args)

	if *source == "" {
		fmt.Fprintln(os.Stderr, "resolve: --source is required")
		fs.Usage()
		os.Exit(1)
	}

	logger := initLogger(*verbose)
	defer logger.Sync()

	opts := []dlbridge.Option{dlbridge.WithLogger(logger)}
	if *dataFolder != "" {
		opts = append(opts, dlbridge.WithDataFolder(*dataFolder))
	}
	if *strict {
		opts = append(opts, dlbridge.WithStrictFormat())
	}
	if len(overrides.values) > 0 {
		opts = append(opts, dlbridge.WithOverrides(overrides.values))
	}

	res, err := dlbridge.Resolve(*framework, *source, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Resolution failed: %v\n", err)
		os.Exit(1)
	}

	report := map[string]any{
		"framework":        *framework,
		"data_folder":      res.Config.DataFolder,
		"backend":          res.Backend,
		"format":           res.Format,
		"resolved_options": res.Options,
		"engine_options":   res.EngineOptions,
	}
	if err := print(report, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode output: %v\n", err)
		os.Exit(1)
	}
}

func runFrameworks(args []string) {
	fs := flag.NewFlagSet("frameworks", flag.ExitOnError)
	output := fs.String("output", "yaml", "Output encoding (yaml or json)")
	fs.Parse(args)

	// No engines are compiled into the CLI; the report carries the static
	// frameworks/formats portion.
	if err := print(dlbridge.CapabilityReport(nil), *output); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode output: %v\n", err)
		os.Exit(1)
	}
}

func print(v any, encoding string) error {
	switch encoding {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported output encoding: %s (supported: yaml, json)", encoding)
	}
}

// overrideFlags collects repeated --set key=value flags into a mapping,
// coercing numeric and boolean values so they merge like config values.
type overrideFlags struct {
	values map[string]any
}

func (o *overrideFlags) String() string {
	if len(o.values) == 0 {
		return ""
	}
	parts := make([]string, 0, len(o.values))
	for k, v := range o.values {
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(parts, ",")
}

func (o *overrideFlags) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	if o.values == nil {
		o.values = make(map[string]any)
	}
	o.values[key] = coerce(value)
	return nil
}

func coerce(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

func initLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func printVersion() {
	fmt.Printf("dlbridge %s\n", Version)
	fmt.Printf("  Build Time: %s\n", BuildTime)
	fmt.Printf("  Git Commit: %s\n", GitCommit)
}

func printUsage() {
	fmt.Println(`dlbridge - data-loading adapter diagnostics

Usage:
  dlbridge <command> [options]

Commands:
  resolve     Resolve a config file or data URI without touching an engine
  frameworks  List supported frameworks
  version     Show version information
  help        Show this help message

Options for 'resolve':
  --framework <name>    Target framework: pytorch, tensorflow, jax (default pytorch)
  --source <path|uri>   Config file (.yaml/.yml/.json) or data URI (required)
  --data-folder <uri>   Override the configuration's data location
  --set key=value       Per-call option override (repeatable)
  --strict-format       Reject unrecognized format declarations
  --output <enc>        yaml or json (default yaml)
  --verbose             Enable debug logging

Examples:
  dlbridge resolve --framework pytorch --source train.yaml
  dlbridge resolve --framework jax --source s3://bucket/data --output json
  dlbridge resolve --framework pytorch --source train.yaml --set batch_size=64
  dlbridge frameworks
  dlbridge version`)
}
