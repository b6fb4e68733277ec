package services

import (
	"errors"
	"fmt"
	"slices"

	"uav-route-plot/internal/domain"
)

// RepairBoundaries returns indices with the start (0) prepended when absent and
// the end (n+1) appended when absent. Existing entries keep their order and
// duplicates are preserved. The input slice is never modified.
func RepairBoundaries(indices []int, n int) []int {
	out := make([]int, 0, len(indices)+2)
	if !slices.Contains(indices, 0) {
		out = append(out, 0)
	}
	out = append(out, indices...)
	if !slices.Contains(indices, n+1) {
		out = append(out, n+1)
	}
	return out
}

// ResolvePath maps each route index to its coordinates.
// Indices outside [0, N+1] are rejected, never clamped.
func ResolvePath(inst *domain.ProblemInstance, indices []int) ([]domain.Point, error) {
	if inst == nil {
		return nil, errors.New("resolve path: instance must be non-nil")
	}

	path := make([]domain.Point, 0, len(indices))
	for pos, idx := range indices {
		p, err := inst.Resolve(idx)
		if err != nil {
			return nil, fmt.Errorf("resolve path: position %d: %w", pos, err)
		}
		path = append(path, p)
	}
	return path, nil
}

// ClassifyWaypoints marks every waypoint 1..N as visited when it appears
// anywhere in indices, and skipped otherwise.
func ClassifyWaypoints(inst *domain.ProblemInstance, indices []int) []domain.WaypointStatus {
	seen := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		seen[idx] = struct{}{}
	}

	out := make([]domain.WaypointStatus, 0, inst.N())
	for i, wp := range inst.Waypoints {
		_, visited := seen[i+1]
		out = append(out, domain.WaypointStatus{
			Index:    i + 1,
			Waypoint: wp,
			Visited:  visited,
		})
	}
	return out
}

// Build the complete, renderable route for a solution.
//
// The raw visit order is checked against the instance first so a bad index is
// reported with its solution line, then repaired, resolved and classified.
// Order is kept exactly as given; repeated indices produce repeated points.
func NormalizeRoute(inst *domain.ProblemInstance, sol *domain.Solution) (*domain.NormalizedRoute, error) {
	if inst == nil {
		return nil, errors.New("normalize route: instance must be non-nil")
	}
	if sol == nil {
		return nil, errors.New("normalize route: solution must be non-nil")
	}

	maxIndex := inst.EndIndex()
	for i, idx := range sol.Indices {
		if idx < 0 || idx > maxIndex {
			return nil, fmt.Errorf("normalize route: %w", &domain.IndexOutOfRangeError{
				Source: sol.Source,
				Line:   sol.Line(i),
				Index:  idx,
				Max:    maxIndex,
			})
		}
	}

	indices := RepairBoundaries(sol.Indices, inst.N())

	path, err := ResolvePath(inst, indices)
	if err != nil {
		return nil, fmt.Errorf("normalize route: %w", err)
	}

	return &domain.NormalizedRoute{
		Start:     inst.Start,
		End:       inst.End,
		Indices:   indices,
		Path:      path,
		Waypoints: ClassifyWaypoints(inst, indices),
	}, nil
}
