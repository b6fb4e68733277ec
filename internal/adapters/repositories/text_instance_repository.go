package repositories

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"uav-route-plot/internal/domain"
)

const maxLineBytes = 1 << 20

// File-backed implementation of the InstanceRepository port.
type TextInstanceRepository struct{ Path string }

func NewTextInstanceRepository(path string) *TextInstanceRepository {
	return &TextInstanceRepository{Path: path}
}

// Read and parse the problem file. The file is closed before returning.
func (t *TextInstanceRepository) LoadInstance() (*domain.ProblemInstance, error) {
	f, err := os.Open(t.Path)
	if err != nil {
		return nil, fmt.Errorf("load instance: open %q: %w", t.Path, err)
	}
	defer f.Close()

	inst, err := ParseInstance(f, t.Path)
	if err != nil {
		return nil, fmt.Errorf("load instance: %w", err)
	}
	return inst, nil
}

// ParseInstance reads a problem description:
//
//	start.x start.y
//	end.x end.y
//	N
//	x y penalty   (N lines)
//
// Lines after the N waypoint lines are ignored.
func ParseInstance(r io.Reader, source string) (*domain.ProblemInstance, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("parse instance %q: read: %w", source, err)
	}

	start, err := parsePointLine(lines, 0, source, "start point")
	if err != nil {
		return nil, err
	}
	end, err := parsePointLine(lines, 1, source, "end point")
	if err != nil {
		return nil, err
	}

	if len(lines) < 3 {
		return nil, &domain.ParseError{Source: source, Line: 3, Msg: "missing waypoint count"}
	}
	n, err := strconv.Atoi(strings.TrimSpace(lines[2]))
	if err != nil {
		return nil, &domain.ParseError{Source: source, Line: 3, Msg: "waypoint count must be an integer", Err: err}
	}
	if n < 0 {
		return nil, &domain.ParseError{Source: source, Line: 3, Msg: fmt.Sprintf("waypoint count must be non-negative, got %d", n)}
	}

	if got := len(lines) - 3; got < n {
		return nil, &domain.ParseError{
			Source: source,
			Line:   len(lines) + 1,
			Msg:    fmt.Sprintf("expected %d waypoint lines, found %d", n, got),
		}
	}

	waypoints := make([]domain.Waypoint, 0, n)
	for i := 0; i < n; i++ {
		lineNo := i + 4
		v, err := parseFields(lines[lineNo-1], 3, source, lineNo, "waypoint")
		if err != nil {
			return nil, err
		}
		waypoints = append(waypoints, domain.Waypoint{X: v[0], Y: v[1], Penalty: v[2]})
	}

	return &domain.ProblemInstance{
		Source:    source,
		Start:     start,
		End:       end,
		Waypoints: waypoints,
	}, nil
}

func parsePointLine(lines []string, i int, source, what string) (domain.Point, error) {
	if i >= len(lines) {
		return domain.Point{}, &domain.ParseError{Source: source, Line: i + 1, Msg: "missing " + what}
	}
	v, err := parseFields(lines[i], 2, source, i+1, what)
	if err != nil {
		return domain.Point{}, err
	}
	return domain.Point{X: v[0], Y: v[1]}, nil
}

// Split a line into exactly want finite numbers.
func parseFields(line string, want int, source string, lineNo int, what string) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) != want {
		return nil, &domain.ParseError{
			Source: source,
			Line:   lineNo,
			Msg:    fmt.Sprintf("%s: expected %d numeric fields, found %d", what, want, len(fields)),
		}
	}

	out := make([]float64, 0, want)
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, &domain.ParseError{Source: source, Line: lineNo, Msg: fmt.Sprintf("%s: invalid number %q", what, f), Err: err}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &domain.ParseError{Source: source, Line: lineNo, Msg: fmt.Sprintf("%s: number %q must be finite", what, f)}
		}
		out = append(out, v)
	}
	return out, nil
}

func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
