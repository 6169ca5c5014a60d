// SPDX-License-Identifier: MIT

// Package render draws alignments with gonum/plot.
package render

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/tswarp/dtw"
)

// ErrChannel indicates a channel index outside the sequences.
var ErrChannel = errors.New("render: channel out of range")

// Default image size for Save.
const (
	Width  = 10 * vg.Inch
	Height = 5 * vg.Inch
)

var (
	colorA    = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	colorB    = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	colorLink = color.Gray{Y: 170}
)

// Alignment plots one channel of a and b with b shifted below a, joined by
// a grey segment for every step of the warping path.
func Alignment(a, b dtw.Sequence, al *dtw.Alignment, channel int) (*plot.Plot, error) {
	if channel < 0 || channel >= a.Channels() || channel >= b.Channels() {
		return nil, fmt.Errorf("%w: %d", ErrChannel, channel)
	}

	ya, yb := column(a, channel), column(b, channel)
	offset := span(ya, yb) * 1.5
	for i := range yb {
		yb[i] -= offset
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("DTW alignment, cost %.4g", al.Cost)
	p.X.Label.Text = "Index"
	p.Y.Label.Text = fmt.Sprintf("Channel %d", channel)

	for _, c := range al.Path {
		link, err := plotter.NewLine(plotter.XYs{
			{X: float64(c.I), Y: ya[c.I]},
			{X: float64(c.J), Y: yb[c.J]},
		})
		if err != nil {
			return nil, err
		}
		link.Color = colorLink
		link.Width = vg.Points(0.5)
		p.Add(link)
	}

	for _, s := range []struct {
		name string
		ys   []float64
		c    color.Color
	}{
		{"A", ya, colorA},
		{"B (shifted)", yb, colorB},
	} {
		line, err := plotter.NewLine(points(s.ys))
		if err != nil {
			return nil, err
		}
		line.Color = s.c
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(s.name, line)
	}
	p.Legend.Top = true

	return p, nil
}

// Save renders p to path; the extension selects the format (png, svg, pdf…).
func Save(p *plot.Plot, path string) error {
	if err := p.Save(Width, Height, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}

	return nil
}

func column(s dtw.Sequence, c int) []float64 {
	out := make([]float64, len(s))
	for t := range s {
		out[t] = s[t][c]
	}

	return out
}

func points(ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(ys))
	for i, y := range ys {
		pts[i] = plotter.XY{X: float64(i), Y: y}
	}

	return pts
}

// span returns the joint value range of xs and ys, or 1 when flat.
func span(xs, ys []float64) float64 {
	lo, hi := xs[0], xs[0]
	for _, v := range append(append([]float64(nil), xs...), ys...) {
		lo, hi = min(lo, v), max(hi, v)
	}
	if hi == lo {
		return 1
	}

	return hi - lo
}
