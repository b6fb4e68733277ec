package domain

// Immutable planar coordinates in meters.
type Point struct {
	X float64
	Y float64
}
