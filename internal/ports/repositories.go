package ports

import "uav-route-plot/internal/domain"

// Port: a boundary for retrieving the problem instance from a data source.
type InstanceRepository interface {
	// Load the problem instance; the source is fully read and released before returning.
	LoadInstance() (*domain.ProblemInstance, error)
}

// Port: a boundary for retrieving the raw solution visit order.
type SolutionRepository interface {
	LoadSolution() (*domain.Solution, error)
}
