package ports

import (
	"io"

	"uav-route-plot/internal/domain"
)

// Contract for drawing a normalized route as an image.
type RouteRenderer interface {
	// Render the route and write the encoded image to w.
	Render(w io.Writer, route *domain.NormalizedRoute) error
}
