package domain

// Raw visit order as read from a solution source.
// Lines holds the source line of each entry in Indices and is used for error reporting.
// Start and end markers may be missing; the route normalizer repairs them.
type Solution struct {
	Source  string
	Indices []int
	Lines   []int
}

// Line returns the source line for the i-th accepted index, or 0 when unknown.
func (s *Solution) Line(i int) int {
	if i < 0 || i >= len(s.Lines) {
		return 0
	}
	return s.Lines[i]
}
