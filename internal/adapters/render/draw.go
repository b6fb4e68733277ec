package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/jbeda/geom"
	"golang.org/x/image/font"

	"uav-route-plot/internal/domain"
)

// Draw paints the whole figure, lowest layer first.
func (rc *RenderContext) Draw() {
	rc.dc.SetColor(rc.colors.background)
	rc.dc.Clear()

	rc.drawGrid()
	rc.drawFrame()
	rc.drawPath()
	rc.drawWaypoints()
	rc.drawEndpoints()
	rc.drawTitles()
	rc.drawLegend()
}

func (rc *RenderContext) drawGrid() {
	dc := rc.dc
	dc.SetFontFace(rc.tickFace)
	dc.SetLineWidth(1)

	for _, x := range ticks(rc.view.Min.X, rc.view.Max.X, rc.step) {
		px := rc.toCanvas(domain.Point{X: x, Y: rc.view.Min.Y}).X
		dc.SetColor(rc.colors.grid)
		dc.SetDash(4, 4)
		dc.DrawLine(px, rc.plot.Min.Y, px, rc.plot.Max.Y)
		dc.Stroke()

		dc.SetDash()
		dc.SetColor(rc.colors.text)
		dc.DrawStringAnchored(formatTick(x), px, rc.plot.Max.Y+6, 0.5, 1)
	}

	for _, y := range ticks(rc.view.Min.Y, rc.view.Max.Y, rc.step) {
		py := rc.toCanvas(domain.Point{X: rc.view.Min.X, Y: y}).Y
		dc.SetColor(rc.colors.grid)
		dc.SetDash(4, 4)
		dc.DrawLine(rc.plot.Min.X, py, rc.plot.Max.X, py)
		dc.Stroke()

		dc.SetDash()
		dc.SetColor(rc.colors.text)
		dc.DrawStringAnchored(formatTick(y), rc.plot.Min.X-8, py, 1, 0.35)
	}
	dc.SetDash()
}

func (rc *RenderContext) drawFrame() {
	dc := rc.dc
	dc.SetColor(rc.colors.text)
	dc.SetLineWidth(1.5)
	dc.DrawRectangle(rc.plot.Min.X, rc.plot.Min.Y, rc.plot.Width(), rc.plot.Height())
	dc.Stroke()
}

// drawPath draws one dashed arrow per leg, shortened to ArrowShrink of the leg.
// Legs between identical points have no direction and are skipped.
func (rc *RenderContext) drawPath() {
	path := rc.route.Path
	for i := 0; i+1 < len(path); i++ {
		rc.drawArrow(rc.toCanvas(path[i]), rc.toCanvas(path[i+1]))
	}
}

func (rc *RenderContext) drawArrow(from, to geom.Coord) {
	d := to.Minus(from)
	length := d.Magnitude()
	if length < 1e-9 {
		return
	}

	u := d.Unit()
	tip := from.Plus(d.Times(rc.style.ArrowShrink))
	head := math.Min(rc.style.ArrowHead, length*rc.style.ArrowShrink/2)
	back := tip.Minus(u.Times(head))
	normal := geom.Coord{X: -u.Y, Y: u.X}.Times(head / 2)

	dc := rc.dc
	dc.SetColor(rc.colors.path)
	dc.SetLineWidth(1.5)
	dc.SetDash(8, 5)
	dc.DrawLine(from.X, from.Y, back.X, back.Y)
	dc.Stroke()
	dc.SetDash()

	if head <= 0 {
		return
	}
	left, right := back.Plus(normal), back.Minus(normal)
	dc.MoveTo(tip.X, tip.Y)
	dc.LineTo(left.X, left.Y)
	dc.LineTo(right.X, right.Y)
	dc.ClosePath()
	dc.Fill()
}

func (rc *RenderContext) drawWaypoints() {
	r := rc.style.MarkerRadius
	off := rc.style.LabelOffset

	// Skipped first so visited markers stay on top where they overlap.
	for _, w := range rc.route.Skipped() {
		c := rc.toCanvas(w.Waypoint.Point())
		rc.marker(c, r, rc.colors.skipped)
		rc.label(penaltyLabel(w.Waypoint.Penalty), rc.labelFace, rc.colors.penalty, c.X, c.Y-r-off, 0.5, 0)
		rc.label(fmt.Sprintf("Skipped %d", w.Index), rc.tickFace, rc.colors.text, c.X, c.Y+r+off, 0.5, 1)
	}

	for _, w := range rc.route.Visited() {
		c := rc.toCanvas(w.Waypoint.Point())
		rc.marker(c, r, rc.colors.visited)
		rc.label(strconv.Itoa(w.Index), rc.labelFace, rc.colors.visited, c.X, c.Y-r-off, 0.5, 0)
	}
}

func (rc *RenderContext) drawEndpoints() {
	r := rc.style.EndpointRadius
	off := rc.style.LabelOffset

	start := rc.toCanvas(rc.route.Start)
	rc.marker(start, r, rc.colors.start)
	rc.label("Start", rc.labelFace, rc.colors.start, start.X, start.Y+r+off, 0.5, 1)

	end := rc.toCanvas(rc.route.End)
	rc.marker(end, r, rc.colors.end)
	rc.label("End", rc.labelFace, rc.colors.end, end.X, end.Y-r-off, 0.5, 0)
}

func (rc *RenderContext) drawTitles() {
	dc := rc.dc
	w, h := float64(rc.style.Width), float64(rc.style.Height)
	m := rc.style.Margin

	if rc.style.Title != "" {
		rc.label(rc.style.Title, rc.titleFace, rc.colors.text, w/2, m.Top/2, 0.5, 0.5)
	}
	if rc.style.XLabel != "" {
		cx := rc.plot.Min.X + rc.plot.Width()/2
		rc.label(rc.style.XLabel, rc.axisFace, rc.colors.text, cx, h-m.Bottom/3, 0.5, 0.5)
	}
	if rc.style.YLabel != "" {
		x, y := m.Left/4, rc.plot.Min.Y+rc.plot.Height()/2
		dc.Push()
		dc.RotateAbout(-math.Pi/2, x, y)
		rc.label(rc.style.YLabel, rc.axisFace, rc.colors.text, x, y, 0.5, 0.5)
		dc.Pop()
	}
}

type legendEntry struct {
	text   string
	col    color.RGBA
	dashed bool
}

func (rc *RenderContext) drawLegend() {
	entries := []legendEntry{
		{"Start", rc.colors.start, false},
		{"End", rc.colors.end, false},
		{"Visited waypoint", rc.colors.visited, false},
		{"Skipped waypoint", rc.colors.skipped, false},
		{"Route", rc.colors.path, true},
	}

	dc := rc.dc
	dc.SetFontFace(rc.tickFace)

	textW := 0.0
	for _, e := range entries {
		if w, _ := dc.MeasureString(e.text); w > textW {
			textW = w
		}
	}

	const pad, swatch = 10.0, 28.0
	row := rc.style.FontSize.Tick * 1.7
	x0, y0 := rc.plot.Min.X+pad, rc.plot.Min.Y+pad
	boxW := pad*3 + swatch + textW
	boxH := pad*2 + row*float64(len(entries))

	dc.DrawRectangle(x0, y0, boxW, boxH)
	dc.SetRGBA(1, 1, 1, 0.85)
	dc.FillPreserve()
	dc.SetColor(rc.colors.grid)
	dc.SetLineWidth(1)
	dc.Stroke()

	for i, e := range entries {
		cy := y0 + pad + row*(float64(i)+0.5)
		sx := x0 + pad
		if e.dashed {
			dc.SetColor(e.col)
			dc.SetLineWidth(1.5)
			dc.SetDash(6, 4)
			dc.DrawLine(sx, cy, sx+swatch, cy)
			dc.Stroke()
			dc.SetDash()
		} else {
			rc.marker(geom.Coord{X: sx + swatch/2, Y: cy}, row/3, e.col)
		}
		rc.label(e.text, rc.tickFace, rc.colors.text, sx+swatch+pad, cy, 0, 0.35)
	}
}

func (rc *RenderContext) marker(c geom.Coord, r float64, col color.RGBA) {
	rc.dc.DrawCircle(c.X, c.Y, r)
	rc.dc.SetColor(col)
	rc.dc.Fill()
}

// label draws s anchored at (x, y). ax 0.5 centers horizontally; ay 0 puts the
// baseline at y (text above), 1 puts the top of the text at y (text below).
func (rc *RenderContext) label(s string, face font.Face, col color.RGBA, x, y, ax, ay float64) {
	rc.dc.SetFontFace(face)
	rc.dc.SetColor(col)
	rc.dc.DrawStringAnchored(s, x, y, ax, ay)
}
