// Package plot renders analysis scatter charts to PNG with gonum/plot.
package plot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/KaramelBytes/gamestats/internal/analysis"
	"github.com/KaramelBytes/gamestats/internal/utils"
)

// Default image size in pixels.
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

// dpi used to convert pixel sizes to vg lengths.
const dpi = 96

// Renderer writes PNG scatter plots. The zero value uses the default size.
type Renderer struct {
	Width  int
	Height int
}

// NewRenderer returns a Renderer for images of width x height pixels.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{Width: width, Height: height}
}

var _ analysis.Renderer = (*Renderer)(nil)

// Bounds returns the min and max of values.
func Bounds(values []float64) (lo, hi float64) {
	lo, hi = math.MaxFloat64, -math.MaxFloat64
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// RenderScatter draws req.Ys against req.Xs and writes the PNG to req.Output.
func (r *Renderer) RenderScatter(ctx context.Context, req analysis.ScatterRequest) error {
	if len(req.Xs) == 0 || len(req.Xs) != len(req.Ys) {
		return errors.New("scatter: need equal, non-empty coordinate slices")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	w, h := r.Width, r.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}

	p := gplot.New()
	p.Title.Text = fmt.Sprintf("%s vs %s", req.XLabel, req.YLabel)
	p.X.Label.Text = req.XLabel
	p.Y.Label.Text = req.YLabel
	p.X.Min, p.X.Max = padded(Bounds(req.Xs))
	p.Y.Min, p.Y.Max = padded(Bounds(req.Ys))

	pts := make(plotter.XYs, len(req.Xs))
	for i := range req.Xs {
		pts[i].X = req.Xs[i]
		pts[i].Y = req.Ys[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(3)
	s.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
	p.Add(s)

	wt, err := p.WriterTo(pixels(w), pixels(h), "png")
	if err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if dir := filepath.Dir(req.Output); dir != "." {
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("mkdir output dir: %w", err)
		}
	}
	return utils.SafeWriteFile(req.Output, buf.Bytes())
}

// padded widens a degenerate range so a single point or a constant column still draws.
func padded(lo, hi float64) (float64, float64) {
	if lo == hi {
		return lo - 1, hi + 1
	}
	return lo, hi
}

func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / dpi
}
