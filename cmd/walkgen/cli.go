package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/walkvec/config"
)

// ExitError carries the process exit code for usage and configuration errors.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func usageError(format string, args ...any) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// parseArgs builds the run configuration: defaults, then the -config file,
// then every flag given explicitly. It reports true when the program
// should exit cleanly (help was requested).
func parseArgs(args []string, output io.Writer) (config.Config, bool, error) {
	fs := flag.NewFlagSet("walkgen", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
walkgen - biased random-walk corpus generator.

Usage:
  walkgen [options] [EDGES_PATH]

Arguments:
  EDGES_PATH
    Delimited edge file (optionally .gz); overrides [input].edges.

Options:
`)
		fs.PrintDefaults()
	}

	def := config.Default()
	var (
		configPath = fs.String("config", "", "Path to a TOML configuration file.")
		edges      = fs.String("edges", "", "Edge file path.")
		synthetic  = fs.String("synthetic", "", "Generated topology instead of files, e.g. 'grid:10x10' or 'sparse:1000:0.01'.")
		nodes      = fs.String("nodes", "", "Node file path (optional).")
		directed   = fs.Bool("directed", def.Input.Directed, "Treat every edge as one-way.")
		length     = fs.Int("length", def.Walk.Length, "Nodes per walk.")
		reps       = fs.Int("repetitions", def.Walk.Repetitions, "Walks started from every node.")
		seed       = fs.Int64("seed", def.Walk.Seed, "Random seed.")
		workers    = fs.Int("workers", def.Walk.Workers, "Concurrent workers; 0 uses GOMAXPROCS.")
		deadEnds   = fs.String("dead-ends", def.Walk.DeadEnds, "Sink policy: 'truncate' or 'reject'.")
		retW       = fs.Float64("return-weight", def.Walk.ReturnWeight, "Weight of stepping back to the previous node.")
		expW       = fs.Float64("explore-weight", def.Walk.ExploreWeight, "Weight of stepping away from the previous node.")
		nodeTypeW  = fs.Float64("node-type-weight", def.Walk.ChangeNodeTypeWeight, "Weight of entering a node of another type.")
		edgeTypeW  = fs.Float64("edge-type-weight", def.Walk.ChangeEdgeTypeWeight, "Weight of following an edge of another type.")
		out        = fs.String("out", def.Output.Path, "Output path; '-' writes to stdout, '.gz' compresses.")
		format     = fs.String("format", def.Output.Format, "Output format: 'walks' or 'pairs'.")
		win        = fs.Int("window", def.Output.Window, "Skip-gram window for -format=pairs.")
		names      = fs.Bool("names", def.Output.Names, "Write node names instead of ids.")
		logLevel   = fs.String("log-level", def.Log.Level, "Log level: 'debug', 'info', 'warn' or 'error'.")
		logFormat  = fs.String("log-format", def.Log.Format, "Log format: 'text' or 'json'.")
	)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return def, true, nil
		}
		return def, false, usageError("%v", err)
	}
	if fs.NArg() > 1 {
		return def, false, usageError("expected at most one EDGES_PATH, got %d arguments", fs.NArg())
	}

	cfg := def
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return def, false, usageError("%v", err)
		}
	}

	overrides := map[string]func(){
		"edges":            func() { cfg.Input.Edges = *edges },
		"synthetic":        func() { cfg.Input.Synthetic = *synthetic },
		"nodes":            func() { cfg.Input.Nodes = *nodes },
		"directed":         func() { cfg.Input.Directed = *directed },
		"length":           func() { cfg.Walk.Length = *length },
		"repetitions":      func() { cfg.Walk.Repetitions = *reps },
		"seed":             func() { cfg.Walk.Seed = *seed },
		"workers":          func() { cfg.Walk.Workers = *workers },
		"dead-ends":        func() { cfg.Walk.DeadEnds = *deadEnds },
		"return-weight":    func() { cfg.Walk.ReturnWeight = *retW },
		"explore-weight":   func() { cfg.Walk.ExploreWeight = *expW },
		"node-type-weight": func() { cfg.Walk.ChangeNodeTypeWeight = *nodeTypeW },
		"edge-type-weight": func() { cfg.Walk.ChangeEdgeTypeWeight = *edgeTypeW },
		"out":              func() { cfg.Output.Path = *out },
		"format":           func() { cfg.Output.Format = *format },
		"window":           func() { cfg.Output.Window = *win },
		"names":            func() { cfg.Output.Names = *names },
		"log-level":        func() { cfg.Log.Level = *logLevel },
		"log-format":       func() { cfg.Log.Format = *logFormat },
	}
	fs.Visit(func(f *flag.Flag) {
		if apply, ok := overrides[f.Name]; ok {
			apply()
		}
	})
	if fs.NArg() == 1 {
		cfg.Input.Edges = fs.Arg(0)
	}

	if cfg.Input.Edges == "" && cfg.Input.Synthetic == "" && *configPath == "" {
		fs.Usage()
		return cfg, true, nil
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false, usageError("invalid configuration: %v", err)
	}
	return cfg, false, nil
}
