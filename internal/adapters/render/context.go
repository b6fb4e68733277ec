package render

import (
	"errors"
	"fmt"

	"github.com/fogleman/gg"
	"github.com/jbeda/geom"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"uav-route-plot/internal/domain"
)

// RenderContext holds all drawing state for one render call.
type RenderContext struct {
	dc     *gg.Context
	style  Style
	colors palette
	route  *domain.NormalizedRoute

	view geom.Rect // data space
	plot geom.Rect // pixel space
	step float64

	titleFace font.Face
	axisFace  font.Face
	labelFace font.Face
	tickFace  font.Face
}

func NewRenderContext(style Style, route *domain.NormalizedRoute) (*RenderContext, error) {
	if route == nil {
		return nil, errors.New("new render context: route must be non-nil")
	}
	if err := style.Validate(); err != nil {
		return nil, fmt.Errorf("new render context: %w", err)
	}
	colors, err := style.Colors.palette()
	if err != nil {
		return nil, fmt.Errorf("new render context: %w", err)
	}

	view, step, err := computeView(style, route)
	if err != nil {
		return nil, fmt.Errorf("new render context: %w", err)
	}
	m := style.Margin
	rc := &RenderContext{
		dc:     gg.NewContext(style.Width, style.Height),
		style:  style,
		colors: colors,
		route:  route,
		view:   view,
		step:   step,
		plot: geom.Rect{
			Min: geom.Coord{X: m.Left, Y: m.Top},
			Max: geom.Coord{X: float64(style.Width) - m.Right, Y: float64(style.Height) - m.Bottom},
		},
	}

	if err := rc.loadFaces(); err != nil {
		rc.Close()
		return nil, fmt.Errorf("new render context: %w", err)
	}
	return rc, nil
}

func (rc *RenderContext) loadFaces() error {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("parse bold font: %w", err)
	}

	faces := []struct {
		dst  *font.Face
		fnt  *opentype.Font
		size float64
	}{
		{&rc.titleFace, bold, rc.style.FontSize.Title},
		{&rc.axisFace, bold, rc.style.FontSize.Axis},
		{&rc.labelFace, bold, rc.style.FontSize.Label},
		{&rc.tickFace, regular, rc.style.FontSize.Tick},
	}
	for _, f := range faces {
		face, err := opentype.NewFace(f.fnt, &opentype.FaceOptions{
			Size:    f.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return fmt.Errorf("create font face: %w", err)
		}
		*f.dst = face
	}
	return nil
}

// Close releases the font faces.
func (rc *RenderContext) Close() {
	for _, f := range []font.Face{rc.titleFace, rc.axisFace, rc.labelFace, rc.tickFace} {
		if f != nil {
			_ = f.Close()
		}
	}
}

// Map a data-space point to canvas pixels; y grows upwards in data space.
func (rc *RenderContext) toCanvas(p domain.Point) geom.Coord {
	return geom.Coord{
		X: rc.plot.Min.X + (p.X-rc.view.Min.X)/rc.view.Width()*rc.plot.Width(),
		Y: rc.plot.Max.Y - (p.Y-rc.view.Min.Y)/rc.view.Height()*rc.plot.Height(),
	}
}
