// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/itersolve/problem"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    problem.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: problem.DefaultConfig()}

	root := &cobra.Command{
		Use:   "itersolve",
		Short: "Solve linear systems with Jacobi, Gauss-Seidel, SOR and CG",
		Long: `itersolve reads a square linear system A·x = b from a whitespace
separated text file and solves it with a fixed-point method.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose)
			if a.configPath == "" {
				return nil
			}
			cfg, err := problem.LoadConfig(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger.Debug("configuration loaded", "path", a.configPath, "algorithm", cfg.Algorithm)

			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML run configuration")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every iteration")

	root.AddCommand(newSolveCmd(a), newCompareCmd(a), newGenerateCmd())

	return root
}

// newLogger writes text records to a terminal and JSON records otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}

// openInput returns stdin for "" and "-", the named file otherwise.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open the input: %w", err)
	}

	return f, nil
}

// readSystem loads the system named by cfg.Input with cfg.Symmetry.
func (a *app) readSystem(cmd *cobra.Command) (problem.System, error) {
	sym, err := a.cfg.MatrixSymmetry()
	if err != nil {
		return problem.System{}, err
	}
	in, err := openInput(cmd, a.cfg.Input)
	if err != nil {
		return problem.System{}, err
	}
	defer in.Close()

	sys, err := problem.ReadLinearSystem(in, sym)
	if err != nil {
		return problem.System{}, fmt.Errorf("failed to read the system: %w", err)
	}
	a.logger.Debug("system read", "rank", sys.Rank(), "symmetry", sym.String())

	return sys, nil
}
