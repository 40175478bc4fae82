package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotFPRate draws observed false-positive rate against filter memory
// and writes the figure to path (format from the extension, e.g. png).
func PlotFPRate(points plotter.XYs, path string) error {
	p := plot.New()
	p.Title.Text = "False Positive Rate vs Memory Usage"
	p.X.Label.Text = "Memory Usage (bytes)"
	p.Y.Label.Text = "False Positive Rate"
	p.Add(plotter.NewGrid())

	line, scatter, err := plotter.NewLinePoints(points)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	p.Add(line, scatter)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("plot: save: %w", err)
	}
	return nil
}
