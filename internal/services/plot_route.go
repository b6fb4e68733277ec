package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"uav-route-plot/internal/domain"
	"uav-route-plot/internal/platform/obs"
	"uav-route-plot/internal/ports"
)

type PlotRequest struct {
	OutputPath string
}

type PlotResult struct {
	OutputPath string
	Indices    []int
	Visited    int
	Skipped    int
}

// PlotRoute loads the instance and solution, normalizes the route and renders it
// to req.OutputPath. Each stage finishes (and releases its file) before the next starts.
func PlotRoute(
	logger log.Logger,
	req PlotRequest,
	instances ports.InstanceRepository,
	solutions ports.SolutionRepository,
	renderer ports.RouteRenderer,
) (*PlotResult, error) {
	if strings.TrimSpace(req.OutputPath) == "" {
		return nil, errors.New("plot route: output path must be non-empty")
	}

	inst, err := loadInstance(logger, instances)
	if err != nil {
		return nil, fmt.Errorf("plot route: %w", err)
	}

	sol, err := loadSolution(logger, solutions)
	if err != nil {
		return nil, fmt.Errorf("plot route: %w", err)
	}

	route, err := normalize(logger, inst, sol)
	if err != nil {
		return nil, fmt.Errorf("plot route: %w", err)
	}

	visited, skipped := len(route.Visited()), len(route.Skipped())
	level.Info(logger).Log(
		"msg", "route normalized",
		"waypoints", inst.N(),
		"stops", len(route.Indices),
		"visited", visited,
		"skipped", skipped,
	)

	if err := writeImage(logger, req.OutputPath, route, renderer); err != nil {
		return nil, fmt.Errorf("plot route: %w", err)
	}

	return &PlotResult{
		OutputPath: req.OutputPath,
		Indices:    route.Indices,
		Visited:    visited,
		Skipped:    skipped,
	}, nil
}

func loadInstance(logger log.Logger, repo ports.InstanceRepository) (_ *domain.ProblemInstance, err error) {
	defer obs.Time(logger, "load.instance")(&err)
	return repo.LoadInstance()
}

func loadSolution(logger log.Logger, repo ports.SolutionRepository) (_ *domain.Solution, err error) {
	defer obs.Time(logger, "load.solution")(&err)
	return repo.LoadSolution()
}

func normalize(logger log.Logger, inst *domain.ProblemInstance, sol *domain.Solution) (_ *domain.NormalizedRoute, err error) {
	defer obs.Time(logger, "normalize")(&err)
	return NormalizeRoute(inst, sol)
}

func writeImage(logger log.Logger, path string, route *domain.NormalizedRoute, renderer ports.RouteRenderer) (err error) {
	defer obs.Time(logger, "render")(&err)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write image: create %q: %w", path, err)
	}

	if err := renderer.Render(f, route); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("write image: render %q: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("write image: close %q: %w", path, err)
	}
	return nil
}

// OutputPath replaces the extension of problemPath with suffix.
// Leading dots of the file name do not start an extension, so ".hidden"
// becomes ".hidden_path.png".
func OutputPath(problemPath, suffix string) string {
	dir, base := filepath.Split(problemPath)

	trimmed := strings.TrimLeft(base, ".")
	lead := base[:len(base)-len(trimmed)]
	if i := strings.LastIndex(trimmed, "."); i >= 0 {
		trimmed = trimmed[:i]
	}
	return dir + lead + trimmed + suffix
}
