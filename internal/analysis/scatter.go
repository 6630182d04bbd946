package analysis

import (
	"context"
	"fmt"
	"io"

	"github.com/KaramelBytes/gamestats/internal/games"
)

// ScatterRequest is what a Renderer needs to draw one chart. Xs and Ys are
// non-empty and of equal length.
type ScatterRequest struct {
	Xs, Ys []float64
	Output string
	XLabel string
	YLabel string
}

// Renderer draws and persists scatter plots.
type Renderer interface {
	RenderScatter(ctx context.Context, req ScatterRequest) error
}

// PlotScatter hands the (X, Y) coordinates of records to r and prints a
// confirmation line to w. With no records it does nothing and reports false.
func PlotScatter(ctx context.Context, r Renderer, records []games.Record, ch Chart, output string, w io.Writer) (bool, error) {
	if len(records) == 0 {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	req := ScatterRequest{
		Xs:     Column(records, ch.X),
		Ys:     Column(records, ch.Y),
		Output: output,
		XLabel: ch.X.Label(),
		YLabel: ch.Y.Label(),
	}
	if err := r.RenderScatter(ctx, req); err != nil {
		return false, fmt.Errorf("render %s: %w", output, err)
	}
	if _, err := fmt.Fprintf(w, "Scatter plot of %s vs %s saved to %s\n", req.XLabel, req.YLabel, output); err != nil {
		return true, fmt.Errorf("write report: %w", err)
	}
	return true, nil
}
