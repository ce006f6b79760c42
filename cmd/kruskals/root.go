package main

import (
	"io"

	"github.com/katalvlaran/kruskals/core"
	"github.com/katalvlaran/kruskals/edgelist"
	"github.com/katalvlaran/kruskals/internal/config"
	"github.com/katalvlaran/kruskals/internal/logging"
	"github.com/katalvlaran/kruskals/prim_kruskal"
	"github.com/katalvlaran/kruskals/report"
	"github.com/pingcap/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const appName = "kruskals"

type rootFlags struct {
	configPath    string
	delimiter     string
	method        string
	root          string
	logLevel      string
	allowNegative bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:   appName + " [file]",
		Short: "Print the minimum spanning tree of a city-distance edge list",
		Long: `Reads records of the form "city,neighbour,distance[,neighbour,distance]..."
and prints the edges of a minimum spanning tree computed with Kruskal's
algorithm, followed by the sum of all distances. Disconnected inputs print a
minimum spanning forest.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags, args)
			if err != nil {
				return err
			}

			logCfg := logging.DefaultConfig()
			logCfg.Level, _ = logging.ParseLevel(cfg.LogLevel)
			logging.ApplyEnv(&logCfg)
			log := logging.New(stderr, appName, logCfg)

			return run(cfg, stdout, log)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&flags.configPath, "config", "c", "", "TOML configuration file")
	fs.StringVarP(&flags.delimiter, "delimiter", "d", ",", `field delimiter (use \t for tab)`)
	fs.StringVarP(&flags.method, "method", "m", prim_kruskal.MethodKruskal, "MST algorithm: kruskal or prim")
	fs.StringVar(&flags.root, "root", "", "start city for prim (default: first city in the file)")
	fs.StringVar(&flags.logLevel, "log-level", "info", "trace, debug, info, warn, error or disabled")
	fs.BoolVar(&flags.allowNegative, "allow-negative", false, "accept negative distances")

	return cmd
}

// resolveConfig layers defaults, the optional config file, explicitly set
// flags and finally the positional file argument.
func resolveConfig(cmd *cobra.Command, flags rootFlags, args []string) (config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		var err error
		if cfg, err = config.Load(flags.configPath); err != nil {
			return config.Config{}, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("delimiter") {
		d, err := config.ParseDelimiter(flags.delimiter)
		if err != nil {
			return config.Config{}, errors.Annotate(err, "--delimiter")
		}
		cfg.Delimiter = d
	}
	if fs.Changed("method") {
		cfg.Method = flags.method
	}
	if fs.Changed("root") {
		cfg.Root = flags.root
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if fs.Changed("allow-negative") {
		cfg.AllowNegative = flags.allowNegative
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// run parses the input, computes the MST and writes the report to stdout.
func run(cfg config.Config, stdout io.Writer, log zerolog.Logger) error {
	opts := []edgelist.Option{edgelist.WithDelimiter(cfg.Delimiter)}
	if cfg.AllowNegative {
		opts = append(opts, edgelist.WithAllowNegative())
	}
	g, err := edgelist.ReadFile(cfg.Input, opts...)
	if err != nil {
		return err
	}
	log.Debug().
		Str("input", cfg.Input).
		Int("vertices", g.VertexCount()).
		Int("edges", len(g.Edges)).
		Msg("edge list loaded")

	mstOpts := prim_kruskal.NewOptions(prim_kruskal.WithMethod(cfg.Method))
	if cfg.Method == prim_kruskal.MethodPrim {
		root, err := resolveRoot(g.Index, cfg.Root)
		if err != nil {
			return err
		}
		mstOpts.Root = root
	}

	mst, total, err := prim_kruskal.Compute(g.VertexCount(), g.Edges, mstOpts)
	if err != nil {
		return errors.Trace(err)
	}
	trees, err := prim_kruskal.Components(g.VertexCount(), mst)
	if err != nil {
		return errors.Trace(err)
	}

	summary := report.Summarize(g.VertexCount(), g.Edges, mst, trees, total)
	log.Info().
		Str("method", cfg.Method).
		Int("vertices", summary.Vertices).
		Int("edges", summary.Edges).
		Int("accepted", summary.Accepted).
		Int64("total", summary.Total).
		Msg("minimum spanning tree computed")
	if !summary.Spanning() {
		log.Warn().
			Int("components", summary.Components).
			Msg("cities are not all connected, printing a minimum spanning forest")
	}

	return errors.Trace(report.Write(stdout, g.Index, mst, total))
}

// resolveRoot maps the configured root label to its id; an empty label means id 0.
func resolveRoot(idx *core.Index, label string) (int, error) {
	if label == "" {
		return 0, nil
	}
	id, ok := idx.ID(label)
	if !ok {
		return 0, errors.Annotatef(core.ErrVertexNotFound, "root %q", label)
	}

	return id, nil
}
