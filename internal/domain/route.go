package domain

// Classification of a single waypoint against a route.
type WaypointStatus struct {
	Index    int
	Waypoint Waypoint
	Visited  bool
}

// Represents a complete, renderable route.
// Indices is the repaired visit order (starting at 0, ending at N+1) and Path holds
// the coordinates of each entry in the same order. Waypoints classifies every
// waypoint 1..N as visited or skipped. It is immutable output of the normalizer.
type NormalizedRoute struct {
	Start     Point
	End       Point
	Indices   []int
	Path      []Point
	Waypoints []WaypointStatus
}

func (r *NormalizedRoute) Visited() []WaypointStatus {
	return r.filter(true)
}

func (r *NormalizedRoute) Skipped() []WaypointStatus {
	return r.filter(false)
}

func (r *NormalizedRoute) filter(visited bool) []WaypointStatus {
	out := make([]WaypointStatus, 0, len(r.Waypoints))
	for _, w := range r.Waypoints {
		if w.Visited == visited {
			out = append(out, w)
		}
	}
	return out
}
