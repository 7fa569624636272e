// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/itersolve/problem"
)

func newGenerateCmd() *cobra.Command {
	var (
		rank   int
		output string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a diagonally dominant test system in the input format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sys, err := problem.DiagonallyDominant(rank)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				return problem.WriteLinearSystem(cmd.OutOrStdout(), sys)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create the output: %w", err)
			}
			if err = problem.WriteLinearSystem(f, sys); err != nil {
				_ = f.Close()
				return err
			}

			return f.Close()
		},
	}
	cmd.Flags().IntVarP(&rank, "rank", "r", 0, "system size")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout when empty or -)")
	_ = cmd.MarkFlagRequired("rank")

	return cmd
}
