package axb_test

import (
	"fmt"

	"github.com/katalvlaran/itersolve/axb"
	"github.com/katalvlaran/itersolve/fixedpoint"
	"github.com/katalvlaran/itersolve/matrix"
)

// ExampleGaussSeidel solves 4x+y=1, 2x+3y=2.
func ExampleGaussSeidel() {
	a, _ := matrix.NewDenseRows([][]float64{
		{4, 1},
		{2, 3},
	})
	b := []float64{1, 2}
	s, _ := fixedpoint.NewSettings(1e-10, 1000)

	res, err := axb.GaussSeidel(a, b, s)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("converged=%v x=[%.6f %.6f]\n", res.Converged, res.X[0], res.X[1])

	// Output:
	// converged=true x=[0.100000 0.600000]
}

// ExampleSolve dispatches on an algorithm parsed from a file code.
func ExampleSolve() {
	a, _ := matrix.NewDenseRows([][]float64{
		{10, -1, 2, 0},
		{-1, 11, -1, 3},
		{2, -1, 10, -1},
		{0, 3, -1, 8},
	})
	b := []float64{6, 25, -11, 15}

	alg, _ := axb.ParseAlgorithm("2")
	res, _ := axb.Solve(alg, a, b, fixedpoint.DefaultSettings(), axb.WithRelaxation(1.1))
	fmt.Println(alg, res.Converged)
	for _, v := range res.X {
		fmt.Printf("%.4f\n", v)
	}

	_, err := axb.Solve(axb.AlgLUP, a, b, fixedpoint.DefaultSettings())
	fmt.Println(err)

	// Output:
	// sor true
	// 1.0000
	// 2.0000
	// -1.0000
	// 1.0000
	// Solve(lup): axb: unsupported algorithm
}
