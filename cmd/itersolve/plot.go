// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/itersolve/fixedpoint"
)

// historyPoints keeps the positive finite errors of h; a log axis cannot
// show the others.
func historyPoints(h []fixedpoint.Iteration) plotter.XYs {
	pts := make(plotter.XYs, 0, len(h))
	for _, it := range h {
		if it.Error > 0 && !math.IsInf(it.Error, 0) && !math.IsNaN(it.Error) {
			pts = append(pts, plotter.XY{X: float64(it.Iter), Y: it.Error})
		}
	}

	return pts
}

// savePlot draws one line per run on a log-scaled error axis. The image
// format follows the file extension.
func savePlot(path string, runs []run) error {
	p := plot.New()
	p.Title.Text = "Convergence history"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "criterion error"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	var drawn int
	for i, r := range runs {
		pts := historyPoints(r.history)
		if len(pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("failed to plot %s: %w", r.result.Algorithm, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(r.result.Algorithm.String(), line)
		drawn++
	}
	if drawn == 0 {
		return fmt.Errorf("failed to plot: no finite positive errors to draw")
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save the plot: %w", err)
	}

	return nil
}
