package repositories

import (
	"errors"

	"uav-route-plot/internal/domain"
)

// In-memory implementation of both repository ports.
type MemoryRepository struct {
	Instance *domain.ProblemInstance
	Solution *domain.Solution
}

func NewMemoryRepository(inst *domain.ProblemInstance, sol *domain.Solution) *MemoryRepository {
	return &MemoryRepository{Instance: inst, Solution: sol}
}

func (m *MemoryRepository) LoadInstance() (*domain.ProblemInstance, error) {
	if m.Instance == nil {
		return nil, errors.New("memory repository: instance is nil")
	}
	return m.Instance, nil
}

func (m *MemoryRepository) LoadSolution() (*domain.Solution, error) {
	if m.Solution == nil {
		return nil, errors.New("memory repository: solution is nil")
	}
	return m.Solution, nil
}
