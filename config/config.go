// Package config loads walkgen run settings from a TOML file and maps them
// onto the options of the ingest, graph, walk and export packages.
//
// Sections:
//
//	[input]   files, separators, column names, validation switches
//	[walk]    length, repetitions, seed, workers, dead-end policy, biases
//	[output]  destination path, format ("walks" or "pairs"), window, names
//	[log]     level and format ("text" or "json")
//
// Relative paths in [input] and [output] are resolved against the
// directory of the configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/walkvec/builder"
	"github.com/katalvlaran/walkvec/graph"
	"github.com/katalvlaran/walkvec/ingest"
	"github.com/katalvlaran/walkvec/walk"
	"github.com/katalvlaran/walkvec/window"
)

// Output formats.
const (
	FormatWalks = "walks"
	FormatPairs = "pairs"
)

// Stdout is the output path meaning standard output.
const Stdout = "-"

// ErrUnknownKey is returned by Load for keys that match no setting.
var ErrUnknownKey = errors.New("config: unknown key")

// Config is the complete description of one walkgen run.
type Config struct {
	Input  Input  `toml:"input"`
	Walk   Walk   `toml:"walk"`
	Output Output `toml:"output"`
	Log    Log    `toml:"log"`
}

// Input mirrors ingest.Options; separators are single-character strings.
type Input struct {
	// Synthetic names a generated topology (see builder.Parse) used
	// instead of the files.
	Synthetic       string `toml:"synthetic"`
	Edges           string `toml:"edges"`
	Nodes           string `toml:"nodes"`
	EdgeSep         string `toml:"edge_sep"`
	NodeSep         string `toml:"node_sep"`
	EdgeHeader      bool   `toml:"edge_header"`
	NodeHeader      bool   `toml:"node_header"`
	SourceColumn    string `toml:"source_column"`
	DestColumn      string `toml:"destination_column"`
	WeightColumn    string `toml:"weight_column"`
	EdgeTypeColumn  string `toml:"edge_type_column"`
	NodeColumn      string `toml:"node_column"`
	NodeTypeColumn  string `toml:"node_type_column"`
	Directed        bool   `toml:"directed"`
	DefaultNodeType string `toml:"default_node_type"`
	DefaultEdgeType string `toml:"default_edge_type"`
	CheckRows       bool   `toml:"check_rows"`
	CheckDuplicates bool   `toml:"check_duplicates"`
}

// Walk holds the corpus shape and the transition biases.
type Walk struct {
	Length               int     `toml:"length"`
	Repetitions          int     `toml:"repetitions"`
	Seed                 int64   `toml:"seed"`
	Workers              int     `toml:"workers"`
	DeadEnds             string  `toml:"dead_ends"`
	ReturnWeight         float64 `toml:"return_weight"`
	ExploreWeight        float64 `toml:"explore_weight"`
	ChangeNodeTypeWeight float64 `toml:"change_node_type_weight"`
	ChangeEdgeTypeWeight float64 `toml:"change_edge_type_weight"`
}

// Output selects what is written and where.
type Output struct {
	Path   string `toml:"path"`
	Format string `toml:"format"`
	Window int    `toml:"window"`
	Names  bool   `toml:"names"`
}

// Log configures the CLI logger.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the settings used for keys absent from the file.
func Default() Config {
	in := ingest.DefaultOptions()
	gr := graph.DefaultOptions()
	return Config{
		Input: Input{
			EdgeSep:         string(in.EdgeSep),
			NodeSep:         string(in.NodeSep),
			EdgeHeader:      in.EdgeHeader,
			NodeHeader:      in.NodeHeader,
			SourceColumn:    in.SourceColumn,
			DestColumn:      in.DestinationColumn,
			WeightColumn:    in.WeightColumn,
			EdgeTypeColumn:  in.EdgeTypeColumn,
			NodeColumn:      in.NodeColumn,
			NodeTypeColumn:  in.NodeTypeColumn,
			DefaultNodeType: in.DefaultNodeType,
			DefaultEdgeType: in.DefaultEdgeType,
			CheckRows:       in.CheckRows,
			CheckDuplicates: in.CheckDuplicates,
		},
		Walk: Walk{
			Length:               80,
			Repetitions:          10,
			Seed:                 1,
			DeadEnds:             walk.Truncate.String(),
			ReturnWeight:         gr.ReturnWeight,
			ExploreWeight:        gr.ExploreWeight,
			ChangeNodeTypeWeight: gr.ChangeNodeTypeWeight,
			ChangeEdgeTypeWeight: gr.ChangeEdgeTypeWeight,
		},
		Output: Output{
			Path:   Stdout,
			Format: FormatWalks,
			Window: 5,
		},
		Log: Log{
			Level:  logrus.InfoLevel.String(),
			Format: "text",
		},
	}
}

// Load decodes the TOML file at path on top of Default. Keys that match no
// setting are reported as ErrUnknownKey. The result is not validated.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}
	cfg.resolvePaths(filepath.Dir(path))
	return cfg, nil
}

// resolvePaths makes relative file paths relative to dir.
func (c *Config) resolvePaths(dir string) {
	for _, p := range []*string{&c.Input.Edges, &c.Input.Nodes, &c.Output.Path} {
		if *p != "" && *p != Stdout && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	if c.Input.Synthetic != "" {
		if _, serr := builder.Parse(c.Input.Synthetic); serr != nil {
			err = multierror.Append(err, fmt.Errorf("input.synthetic: %w", serr))
		}
	} else if c.Input.Edges == "" {
		err = multierror.Append(err, fmt.Errorf("input.edges: %w", ingest.ErrNoEdgePath))
	}
	if !singleRune(c.Input.EdgeSep) {
		err = multierror.Append(err, fmt.Errorf("input.edge_sep: want one character, got %q", c.Input.EdgeSep))
	}
	if !singleRune(c.Input.NodeSep) {
		err = multierror.Append(err, fmt.Errorf("input.node_sep: want one character, got %q", c.Input.NodeSep))
	}
	if c.Walk.Length < 2 {
		err = multierror.Append(err, fmt.Errorf("walk.length: %w", walk.ErrBadLength))
	}
	if c.Walk.Repetitions < 1 {
		err = multierror.Append(err, fmt.Errorf("walk.repetitions: %w", walk.ErrBadRepetitions))
	}
	if c.Walk.Workers < 0 {
		err = multierror.Append(err, fmt.Errorf("walk.workers: must be >= 0, got %d", c.Walk.Workers))
	}
	if _, perr := walk.ParseDeadEndPolicy(c.Walk.DeadEnds); perr != nil {
		err = multierror.Append(err, fmt.Errorf("walk.dead_ends: %w", perr))
	}
	for _, b := range []struct {
		name string
		w    float64
	}{
		{"walk.return_weight", c.Walk.ReturnWeight},
		{"walk.explore_weight", c.Walk.ExploreWeight},
		{"walk.change_node_type_weight", c.Walk.ChangeNodeTypeWeight},
		{"walk.change_edge_type_weight", c.Walk.ChangeEdgeTypeWeight},
	} {
		if b.w <= 0 || math.IsNaN(b.w) || math.IsInf(b.w, 0) {
			err = multierror.Append(err, fmt.Errorf("%s: must be finite and > 0, got %v", b.name, b.w))
		}
	}
	if c.Output.Path == "" {
		err = multierror.Append(err, errors.New("output.path: empty"))
	}
	switch c.Output.Format {
	case FormatWalks:
	case FormatPairs:
		if werr := window.Validate(c.Output.Window); werr != nil {
			err = multierror.Append(err, fmt.Errorf("output.window: %w", werr))
		}
	default:
		err = multierror.Append(err, fmt.Errorf("output.format: want %q or %q, got %q", FormatWalks, FormatPairs, c.Output.Format))
	}
	if _, lerr := logrus.ParseLevel(c.Log.Level); lerr != nil {
		err = multierror.Append(err, fmt.Errorf("log.level: %w", lerr))
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		err = multierror.Append(err, fmt.Errorf("log.format: want \"text\" or \"json\", got %q", c.Log.Format))
	}
	return err
}

func singleRune(s string) bool { return utf8.RuneCountInString(s) == 1 }

// IngestOptions converts [input]; the configuration must be valid.
func (c *Config) IngestOptions(log *logrus.Entry) ingest.Options {
	in := c.Input
	sep, _ := utf8.DecodeRuneInString(in.EdgeSep)
	nsep, _ := utf8.DecodeRuneInString(in.NodeSep)
	return ingest.Options{
		EdgePath:          in.Edges,
		NodePath:          in.Nodes,
		EdgeSep:           sep,
		NodeSep:           nsep,
		EdgeHeader:        in.EdgeHeader,
		NodeHeader:        in.NodeHeader,
		SourceColumn:      in.SourceColumn,
		DestinationColumn: in.DestColumn,
		WeightColumn:      in.WeightColumn,
		EdgeTypeColumn:    in.EdgeTypeColumn,
		NodeColumn:        in.NodeColumn,
		NodeTypeColumn:    in.NodeTypeColumn,
		Directed:          in.Directed,
		DefaultNodeType:   in.DefaultNodeType,
		DefaultEdgeType:   in.DefaultEdgeType,
		CheckRows:         in.CheckRows,
		CheckDuplicates:   in.CheckDuplicates,
		Logger:            log,
	}
}

// Synthetic generates the [input].synthetic topology, seeded from [walk].seed.
func (c *Config) Synthetic() (graph.EdgeList, error) {
	con, err := builder.Parse(c.Input.Synthetic)
	if err != nil {
		return graph.EdgeList{}, err
	}
	opts := []builder.Option{builder.WithSeed(uint64(c.Walk.Seed))}
	if c.Input.Directed {
		opts = append(opts, builder.WithDirected())
	}
	return builder.Build(opts, con)
}

// GraphOptions converts the bias weights of [walk].
func (c *Config) GraphOptions() []graph.Option {
	return []graph.Option{
		graph.WithReturnWeight(c.Walk.ReturnWeight),
		graph.WithExploreWeight(c.Walk.ExploreWeight),
		graph.WithChangeNodeTypeWeight(c.Walk.ChangeNodeTypeWeight),
		graph.WithChangeEdgeTypeWeight(c.Walk.ChangeEdgeTypeWeight),
	}
}

// WalkOptions converts the generation settings of [walk].
func (c *Config) WalkOptions() ([]walk.Option, error) {
	policy, err := walk.ParseDeadEndPolicy(c.Walk.DeadEnds)
	if err != nil {
		return nil, err
	}
	return []walk.Option{
		walk.WithSeed(c.Walk.Seed),
		walk.WithWorkers(c.Walk.Workers),
		walk.WithDeadEnds(policy),
	}, nil
}

// NewLogger builds the logger described by [log], writing to out.
func (c *Config) NewLogger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("config: log.level: %w", err)
	}
	if out == nil {
		out = os.Stderr
	}
	l := logrus.New()
	l.Out = out
	l.Level = level
	if c.Log.Format == "json" {
		l.Formatter = &logrus.JSONFormatter{}
	} else {
		l.Formatter = &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
	}
	return l, nil
}
