// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/itersolve/axb"
	"github.com/katalvlaran/itersolve/fixedpoint"
	"github.com/katalvlaran/itersolve/problem"
)

// solveFlags mirror problem.Config; a flag overrides the config only when set.
type solveFlags struct {
	input     string
	algorithm string
	omega     float64
	tolerance float64
	maxIter   int
	symmetry  string
	criterion string
}

// register adds the flags to cmd; --algorithm only when withAlgorithm is set.
func (f *solveFlags) register(cmd *cobra.Command, withAlgorithm bool) {
	d := problem.DefaultConfig()
	fs := cmd.Flags()
	fs.StringVarP(&f.input, "input", "i", "", "system file (stdin when empty or -)")
	if withAlgorithm {
		fs.StringVarP(&f.algorithm, "algorithm", "a", d.Algorithm, "pj, gs, sor, cg or a code 0..4")
	}
	fs.Float64Var(&f.omega, "omega", d.Omega, "SOR relaxation factor")
	fs.Float64VarP(&f.tolerance, "tolerance", "t", d.Tolerance, "convergence tolerance")
	fs.IntVarP(&f.maxIter, "max-iter", "n", d.MaxIter, "iteration budget")
	fs.StringVar(&f.symmetry, "symmetry", d.Symmetry, "entries present in the file: G, L, U or D")
	fs.StringVar(&f.criterion, "criterion", d.Criterion, "relative or residual")
}

// apply copies every explicitly set flag over cfg and revalidates it.
func (f *solveFlags) apply(cmd *cobra.Command, cfg *problem.Config) error {
	fs := cmd.Flags()
	if fs.Changed("input") {
		cfg.Input = f.input
	}
	if fs.Changed("algorithm") {
		cfg.Algorithm = f.algorithm
	}
	if fs.Changed("omega") {
		cfg.Omega = f.omega
	}
	if fs.Changed("tolerance") {
		cfg.Tolerance = f.tolerance
	}
	if fs.Changed("max-iter") {
		cfg.MaxIter = f.maxIter
	}
	if fs.Changed("symmetry") {
		cfg.Symmetry = f.symmetry
	}
	if fs.Changed("criterion") {
		cfg.Criterion = f.criterion
	}

	return cfg.Validate()
}

func newSolveCmd(a *app) *cobra.Command {
	var (
		flags   solveFlags
		history bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one system and print the solution with its convergence report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := flags.apply(cmd, &a.cfg); err != nil {
				return err
			}
			sys, err := a.readSystem(cmd)
			if err != nil {
				return err
			}
			alg, err := a.cfg.AlgorithmID()
			if err != nil {
				return err
			}
			s, err := a.cfg.Settings()
			if err != nil {
				return err
			}
			opts, err := a.cfg.SolverOptions()
			if err != nil {
				return err
			}
			var hist []fixedpoint.Iteration
			opts = append(opts, axb.WithLogger(a.logger))
			if history {
				opts = append(opts, axb.WithObserver(func(it fixedpoint.Iteration) { hist = append(hist, it) }))
			}

			res, err := axb.Solve(alg, sys.A, sys.B, s, opts...)
			if err != nil {
				return err
			}
			if !res.Converged {
				a.logger.Warn("solver did not converge", "algorithm", alg.String(), "iters", res.Iters)
			}

			return printSolution(cmd.OutOrStdout(), res, hist)
		},
	}
	flags.register(cmd, true)
	cmd.Flags().BoolVar(&history, "history", false, "print the error of every iteration")

	return cmd
}

func printSolution(w io.Writer, res axb.Result, hist []fixedpoint.Iteration) error {
	if _, err := fmt.Fprintf(w, "Algorithm: %s\nSolution x (%d):\n", res.Algorithm, len(res.X)); err != nil {
		return err
	}
	for _, v := range res.X {
		fmt.Fprintf(w, "  % .12e\n", v)
	}
	if len(hist) > 0 {
		fmt.Fprintln(w, "History:")
		for _, it := range hist {
			fmt.Fprintf(w, "  %5d  %12.6e\n", it.Iter, it.Error)
		}
	}
	_, err := fmt.Fprintln(w, res.String())

	return err
}
