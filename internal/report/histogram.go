// Package report writes inspection plots for decoded splat attributes.
package report

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoValues is returned when nothing finite is left to plot.
var ErrNoValues = errors.New("no finite values to plot")

// Options controls histogram layout.
type Options struct {
	Bins   int
	Width  vg.Length
	Height vg.Length
}

// DefaultOptions returns a 50-bin, 6x4 inch histogram.
func DefaultOptions() Options {
	return Options{Bins: 50, Width: 6 * vg.Inch, Height: 4 * vg.Inch}
}

// WriteHistogram plots the distribution of values to path. The image format
// follows the file extension (png, svg, pdf, ...). NaN and infinite values
// are dropped and their number noted in the title.
func WriteHistogram(path, title string, values []float64, opts Options) error {
	finite := make(plotter.Values, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return ErrNoValues
	}

	if opts.Bins <= 0 {
		opts.Bins = DefaultOptions().Bins
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}

	p := plot.New()
	p.Title.Text = title
	if dropped := len(values) - len(finite); dropped > 0 {
		p.Title.Text = fmt.Sprintf("%s (%d non-finite dropped)", title, dropped)
	}
	p.X.Label.Text = "Value"
	p.Y.Label.Text = "Splats"

	hist, err := plotter.NewHist(finite, opts.Bins)
	if err != nil {
		return fmt.Errorf("building histogram: %w", err)
	}
	p.Add(hist)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("saving histogram %s: %w", path, err)
	}
	return nil
}
