package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/critpath/internal/app"
	"github.com/katalvlaran/critpath/internal/config"
	"github.com/katalvlaran/critpath/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type flags struct {
	configFile  string
	envFile     string
	input       string
	base        int
	source      int
	target      int
	format      string
	logLevel    string
	metricsFile string
	without     []int
}

func newRootCmd() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:   "critpath",
		Short: "Shortest distance, shortest-path edges and critical edges between two vertices",
		Long: `critpath reads an undirected weighted graph ("N M" then M lines "u v w")
and prints, for a source and a target vertex:

  Parte 1: the shortest distance (inf if unreachable)
  Parte 2: the IDs of edges on at least one shortest path
  Parte 3: the IDs of edges on every shortest path (-1 if none)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.Log.Level, cfg.Log.Development, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			a := app.New(cfg, log,
				app.WithStdin(cmd.InOrStdin()),
				app.WithStdout(cmd.OutOrStdout()),
				app.WithoutEdges(f.without...),
			)
			_, err = a.Run(cmd.Context())
			return err
		},
	}

	fs := root.Flags()
	fs.StringVarP(&f.configFile, "config", "c", "", "YAML configuration file")
	fs.StringVar(&f.envFile, "env-file", ".env", "dotenv file with CRITPATH_* overrides (skipped if missing)")
	fs.StringVarP(&f.input, "input", "i", config.StdinPath, `graph file, "-" for stdin`)
	fs.IntVar(&f.base, "base", 0, "ID of the first vertex (0 or 1)")
	fs.IntVarP(&f.source, "source", "s", 1, "source vertex")
	fs.IntVarP(&f.target, "target", "t", 0, "target vertex (default: largest vertex ID)")
	fs.StringVarP(&f.format, "format", "f", "text", "report format: text or json")
	fs.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "write prometheus metrics to this textfile")
	fs.IntSliceVar(&f.without, "without-edge", nil, "remove these edge IDs before the analysis")

	root.AddCommand(newGenerateCmd())

	return root
}

// loadConfig layers explicitly set flags over the file and environment configuration.
func loadConfig(cmd *cobra.Command, f flags) (*config.Config, error) {
	loader := config.NewLoader(config.WithFile(f.configFile), config.WithDotEnv(f.envFile))
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("input") {
		cfg.Input.Path = f.input
	}
	if changed("base") {
		cfg.Input.VertexBase = f.base
	}
	if changed("source") {
		cfg.Query.Source = f.source
	}
	if changed("target") {
		cfg.Query.Target = f.target
		cfg.Query.TargetMax = false
	}
	if changed("format") {
		cfg.Output.Format = f.format
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if changed("metrics-file") {
		cfg.Metrics.File = f.metricsFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
