package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/jbeda/geom"

	"uav-route-plot/internal/domain"
)

const (
	fitPadding   = 0.05
	maxGridLines = 20
)

// Compute the data-space rectangle to plot and the grid step to use.
// With AutoFit the style bounds grow to contain every point of the route.
// The step is widened so no axis carries more than maxGridLines lines.
func computeView(style Style, route *domain.NormalizedRoute) (geom.Rect, float64, error) {
	b := style.Bounds
	view := geom.Rect{
		Min: geom.Coord{X: b.MinX, Y: b.MinY},
		Max: geom.Coord{X: b.MaxX, Y: b.MaxY},
	}

	if style.AutoFit {
		fit := view
		for _, c := range routeCoords(route) {
			fit.ExpandToContainCoord(c)
		}
		if fit != view {
			pad := math.Max(fit.Width(), fit.Height()) * fitPadding
			fit.Min = fit.Min.Minus(geom.Coord{X: pad, Y: pad})
			fit.Max = fit.Max.Plus(geom.Coord{X: pad, Y: pad})
			view = fit
		}
	}

	longest := math.Max(view.Width(), view.Height())
	if !isFinite(view.Min.X) || !isFinite(view.Min.Y) || !isFinite(view.Max.X) || !isFinite(view.Max.Y) || !isFinite(longest) {
		return geom.Rect{}, 0, fmt.Errorf("compute view: extent %v x %v is not representable", view.Width(), view.Height())
	}

	step := style.GridStep
	if longest/step > maxGridLines {
		step = niceStep(longest / 10)
	}
	return view, step, nil
}

func isFinite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

func routeCoords(route *domain.NormalizedRoute) []geom.Coord {
	out := make([]geom.Coord, 0, len(route.Path)+len(route.Waypoints)+2)
	out = append(out, toCoord(route.Start), toCoord(route.End))
	for _, p := range route.Path {
		out = append(out, toCoord(p))
	}
	for _, w := range route.Waypoints {
		out = append(out, toCoord(w.Waypoint.Point()))
	}
	return out
}

func toCoord(p domain.Point) geom.Coord { return geom.Coord{X: p.X, Y: p.Y} }

// niceStep rounds raw up to 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsInf(raw, 0) || math.IsNaN(raw) {
		return 1
	}
	base := math.Pow(10, math.Floor(math.Log10(raw)))
	switch f := raw / base; {
	case f <= 1:
		return base
	case f <= 2:
		return 2 * base
	case f <= 5:
		return 5 * base
	default:
		return 10 * base
	}
}

// ticks returns the multiples of step within [lo, hi], at most 2*maxGridLines+1 of them.
func ticks(lo, hi, step float64) []float64 {
	if !isFinite(lo) || !isFinite(hi) || !isFinite(step) || step <= 0 {
		return nil
	}
	var out []float64
	k := math.Ceil(lo/step - 1e-9)
	for i := 0; i <= 2*maxGridLines && k*step <= hi+step*1e-9; i, k = i+1, k+1 {
		v := k * step
		if math.Abs(v) < 1e15 {
			v = math.Round(v*1e9) / 1e9
		}
		out = append(out, v)
	}
	return out
}

func formatTick(v float64) string {
	if v == 0 {
		// avoid "-0"
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Penalty shown next to a skipped waypoint.
func penaltyLabel(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if p >= 0 {
		s = "+" + s
	}
	return s
}
