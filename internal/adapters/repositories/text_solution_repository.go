package repositories

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"uav-route-plot/internal/domain"
)

// File-backed implementation of the SolutionRepository port.
type TextSolutionRepository struct{ Path string }

func NewTextSolutionRepository(path string) *TextSolutionRepository {
	return &TextSolutionRepository{Path: path}
}

// Read and parse the solution file. The file is closed before returning.
func (t *TextSolutionRepository) LoadSolution() (*domain.Solution, error) {
	f, err := os.Open(t.Path)
	if err != nil {
		return nil, fmt.Errorf("load solution: open %q: %w", t.Path, err)
	}
	defer f.Close()

	sol, err := ParseSolution(f, t.Path)
	if err != nil {
		return nil, fmt.Errorf("load solution: %w", err)
	}
	return sol, nil
}

// ParseSolution keeps every line that, once trimmed, is made only of decimal digits.
// All other lines are treated as noise and skipped.
func ParseSolution(r io.Reader, source string) (*domain.Solution, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("parse solution %q: read: %w", source, err)
	}

	sol := &domain.Solution{Source: source, Indices: []int{}, Lines: []int{}}
	for i, line := range lines {
		tok := strings.TrimSpace(line)
		if !isIndexToken(tok) {
			continue
		}

		idx, err := strconv.Atoi(tok)
		if err != nil {
			// Digits only, so the value overflowed int.
			return nil, &domain.IndexOutOfRangeError{Source: source, Line: i + 1, Token: tok, Max: -1}
		}
		sol.Indices = append(sol.Indices, idx)
		sol.Lines = append(sol.Lines, i+1)
	}

	return sol, nil
}

func isIndexToken(s string) bool {
	return s != "" && strings.TrimLeft(s, "0123456789") == ""
}
