package domain

// A candidate stop with a position and the penalty charged when it is skipped.
type Waypoint struct {
	X       float64
	Y       float64
	Penalty float64
}

func (w Waypoint) Point() Point { return Point{X: w.X, Y: w.Y} }

// Represents a delivery problem as read from its source.
// Waypoints are addressed 1..N; index 0 is the start and N+1 the end.
// A ProblemInstance is read-only once loaded.
type ProblemInstance struct {
	Source    string
	Start     Point
	End       Point
	Waypoints []Waypoint
}

// Number of candidate waypoints.
func (p *ProblemInstance) N() int { return len(p.Waypoints) }

// Index reserved for the end point.
func (p *ProblemInstance) EndIndex() int { return len(p.Waypoints) + 1 }

// Waypoint returns the waypoint at the 1-based index i.
func (p *ProblemInstance) Waypoint(i int) (Waypoint, bool) {
	if i < 1 || i > len(p.Waypoints) {
		return Waypoint{}, false
	}
	return p.Waypoints[i-1], true
}

// Resolve maps a route index to its coordinates.
func (p *ProblemInstance) Resolve(i int) (Point, error) {
	switch {
	case i == 0:
		return p.Start, nil
	case i == p.EndIndex():
		return p.End, nil
	}

	wp, ok := p.Waypoint(i)
	if !ok {
		return Point{}, &IndexOutOfRangeError{Source: p.Source, Index: i, Max: p.EndIndex()}
	}
	return wp.Point(), nil
}
