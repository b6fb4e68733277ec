package render

import (
	"fmt"
	"io"

	"uav-route-plot/internal/domain"
)

// PNGRenderer draws a normalized route with gg and encodes it as PNG.
// Each Render call builds its own RenderContext, so a PNGRenderer holds no drawing state.
type PNGRenderer struct {
	Style Style
}

func NewPNGRenderer(style Style) *PNGRenderer {
	return &PNGRenderer{Style: style}
}

func (r *PNGRenderer) Render(w io.Writer, route *domain.NormalizedRoute) error {
	rc, err := NewRenderContext(r.Style, route)
	if err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	defer rc.Close()

	rc.Draw()

	if err := rc.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render png: encode: %w", err)
	}
	return nil
}
