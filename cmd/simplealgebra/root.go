// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/simplealgebra/parallel"
)

// app carries per-invocation state shared by the subcommands.
type app struct {
	out     io.Writer
	cfg     Config
	verbose bool
	log     *zap.Logger
}

// newRootCmd wires the command tree writing results to out.
func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "simplealgebra",
		Short: "Matrix and tensor algebra over YAML documents",
		Long: `simplealgebra reads dense matrices and sparse Einstein tensors from YAML
files and prints inverses, determinants, traces and contractions as YAML.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.SetOut(out)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		a.invertCmd(),
		a.detCmd(),
		a.traceCmd(),
		a.contractCmd(),
	)

	return root
}

func (a *app) setup() error {
	cfg, err := parseConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, a.verbose)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, logger
	a.log.Debug("configured",
		zap.String("log_level", cfg.LogLevel),
		zap.Int("workers", cfg.Workers),
		zap.Float64("zero_tolerance", cfg.ZeroTolerance))

	return nil
}

// batchOptions forwards the configured worker count and logger.
func (a *app) batchOptions() []parallel.Option {
	return []parallel.Option{
		parallel.WithWorkers(a.cfg.Workers),
		parallel.WithLogger(a.log.Named("parallel")),
	}
}

func (a *app) emit(v any) error {
	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	return enc.Close()
}
