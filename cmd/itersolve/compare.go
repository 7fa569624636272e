// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/itersolve/axb"
	"github.com/katalvlaran/itersolve/fixedpoint"
	"github.com/katalvlaran/itersolve/problem"
)

// run is one method's outcome in a comparison.
type run struct {
	result  axb.Result
	history []fixedpoint.Iteration
}

// compareAlgorithms are the stationary methods compared side by side.
var compareAlgorithms = []axb.Algorithm{axb.AlgPointJacobi, axb.AlgGaussSeidel, axb.AlgSOR}

func newCompareCmd(a *app) *cobra.Command {
	var (
		flags    solveFlags
		plotPath string
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run Point Jacobi, Gauss-Seidel and SOR on one system and tabulate them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := flags.apply(cmd, &a.cfg); err != nil {
				return err
			}
			sys, err := a.readSystem(cmd)
			if err != nil {
				return err
			}
			runs, err := a.compare(sys)
			if err != nil {
				return err
			}
			if err = printComparison(cmd.OutOrStdout(), runs); err != nil {
				return err
			}
			if plotPath == "" {
				return nil
			}
			if err = savePlot(plotPath, runs); err != nil {
				return err
			}
			a.logger.Info("convergence plot written", "path", plotPath)

			return nil
		},
	}
	flags.register(cmd, false)
	cmd.Flags().StringVar(&plotPath, "plot", "", "write the convergence histories to an image (png, svg, pdf)")

	return cmd
}

// compare solves sys with every method concurrently. A is shared read-only.
func (a *app) compare(sys problem.System) ([]run, error) {
	s, err := a.cfg.Settings()
	if err != nil {
		return nil, err
	}
	base, err := a.cfg.SolverOptions()
	if err != nil {
		return nil, err
	}

	runs := make([]run, len(compareAlgorithms))
	var g errgroup.Group
	for i, alg := range compareAlgorithms {
		g.Go(func() error {
			opts := append([]axb.Option{
				axb.WithLogger(a.logger.With("algorithm", alg.String())),
				axb.WithObserver(func(it fixedpoint.Iteration) {
					runs[i].history = append(runs[i].history, it)
				}),
			}, base...)
			res, err := axb.Solve(alg, sys.A, sys.B, s, opts...)
			if err != nil {
				return err
			}
			runs[i].result = res

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return runs, nil
}

func printComparison(w io.Writer, runs []run) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tCONVERGED\tITERS\tRELATIVE ERROR\tRESIDUAL ERROR")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%v\t%d\t%12.6e\t%12.6e\n",
			r.result.Algorithm, r.result.Converged, r.result.Iters, r.result.RelativeError, r.result.ResidualError)
	}

	return tw.Flush()
}
