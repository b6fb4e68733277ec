package services

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"uav-route-plot/internal/domain"
)

func singleWaypointInstance() *domain.ProblemInstance {
	return &domain.ProblemInstance{
		Source:    "p.txt",
		Start:     domain.Point{X: 0, Y: 0},
		End:       domain.Point{X: 100, Y: 100},
		Waypoints: []domain.Waypoint{{X: 50, Y: 50, Penalty: 10}},
	}
}

func TestRepairBoundaries(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		n    int
		want []int
	}{
		{"empty", nil, 1, []int{0, 2}},
		{"missing both", []int{1}, 1, []int{0, 1, 2}},
		{"already complete", []int{0, 1, 2}, 1, []int{0, 1, 2}},
		{"missing start only", []int{1, 2}, 1, []int{0, 1, 2}},
		{"missing end only", []int{0, 1}, 1, []int{0, 1, 2}},
		{"reversed kept as is", []int{3, 2, 1, 0}, 2, []int{3, 2, 1, 0}},
		{"start elsewhere not moved", []int{1, 0}, 1, []int{1, 0, 2}},
		{"duplicates kept", []int{1, 1, 2, 2}, 2, []int{0, 1, 1, 2, 2, 3}},
		{"no waypoints", nil, 0, []int{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RepairBoundaries(tt.in, tt.n)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("RepairBoundaries(%v, %d) mismatch (-want +got):\n%s", tt.in, tt.n, diff)
			}
		})
	}
}

func TestRepairBoundariesDoesNotMutateInput(t *testing.T) {
	in := make([]int, 1, 8)
	in[0] = 1
	_ = RepairBoundaries(in, 1)
	require.Equal(t, []int{1, 0, 0, 0, 0, 0, 0, 0}, in[:cap(in)])
}

func TestRepairBoundariesIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 500; iter++ {
		n := rng.Intn(6)
		seq := make([]int, rng.Intn(8))
		for i := range seq {
			seq[i] = rng.Intn(n + 2)
		}

		once := RepairBoundaries(seq, n)
		twice := RepairBoundaries(once, n)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Fatalf("repair not idempotent for %v (n=%d):\n%s", seq, n, diff)
		}
		require.Contains(t, once, 0)
		require.Contains(t, once, n+1)
	}
}

func TestNormalizeRouteExamples(t *testing.T) {
	inst := singleWaypointInstance()

	tests := []struct {
		name    string
		indices []int
		want    []int
		path    []domain.Point
		visited bool
	}{
		{
			name:    "visits waypoint",
			indices: []int{1},
			want:    []int{0, 1, 2},
			path:    []domain.Point{{X: 0, Y: 0}, {X: 50, Y: 50}, {X: 100, Y: 100}},
			visited: true,
		},
		{
			name:    "empty solution skips waypoint",
			indices: []int{},
			want:    []int{0, 2},
			path:    []domain.Point{{X: 0, Y: 0}, {X: 100, Y: 100}},
			visited: false,
		},
		{
			name:    "explicit boundaries",
			indices: []int{0, 1, 2},
			want:    []int{0, 1, 2},
			path:    []domain.Point{{X: 0, Y: 0}, {X: 50, Y: 50}, {X: 100, Y: 100}},
			visited: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route, err := NormalizeRoute(inst, &domain.Solution{Source: "s.txt", Indices: tt.indices})
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, route.Indices); diff != "" {
				t.Fatalf("indices mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.path, route.Path); diff != "" {
				t.Fatalf("path mismatch (-want +got):\n%s", diff)
			}

			require.Len(t, route.Waypoints, 1)
			require.Equal(t, 1, route.Waypoints[0].Index)
			require.Equal(t, tt.visited, route.Waypoints[0].Visited)
			require.Equal(t, 10.0, route.Waypoints[0].Waypoint.Penalty)
			require.Equal(t, inst.Start, route.Start)
			require.Equal(t, inst.End, route.End)
		})
	}
}

func TestNormalizeRouteOutOfRange(t *testing.T) {
	inst := singleWaypointInstance()
	sol := &domain.Solution{Source: "s.txt", Indices: []int{0, 5}, Lines: []int{1, 3}}

	_, err := NormalizeRoute(inst, sol)

	var rangeErr *domain.IndexOutOfRangeError
	require.True(t, errors.As(err, &rangeErr), "error must be IndexOutOfRangeError, got %v", err)
	require.Equal(t, 5, rangeErr.Index)
	require.Equal(t, 2, rangeErr.Max)
	require.Equal(t, "s.txt", rangeErr.Source)
	require.Equal(t, 3, rangeErr.Line)
}

func TestNormalizeRouteDuplicatesPassThrough(t *testing.T) {
	inst := &domain.ProblemInstance{
		Start: domain.Point{X: 0, Y: 0},
		End:   domain.Point{X: 9, Y: 9},
		Waypoints: []domain.Waypoint{
			{X: 1, Y: 1, Penalty: 1},
			{X: 2, Y: 2, Penalty: 2},
		},
	}

	route, err := NormalizeRoute(inst, &domain.Solution{Indices: []int{2, 2, 0}})
	require.NoError(t, err)

	if diff := cmp.Diff([]int{2, 2, 0, 3}, route.Indices); diff != "" {
		t.Fatalf("indices mismatch (-want +got):\n%s", diff)
	}
	want := []domain.Point{{X: 2, Y: 2}, {X: 2, Y: 2}, {X: 0, Y: 0}, {X: 9, Y: 9}}
	if diff := cmp.Diff(want, route.Path); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, []domain.WaypointStatus{
		{Index: 1, Waypoint: domain.Waypoint{X: 1, Y: 1, Penalty: 1}, Visited: false},
		{Index: 2, Waypoint: domain.Waypoint{X: 2, Y: 2, Penalty: 2}, Visited: true},
	}, route.Waypoints)
}

func TestNormalizeRouteCoordinatesComeFromInput(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for iter := 0; iter < 200; iter++ {
		n := rng.Intn(5)
		inst := &domain.ProblemInstance{
			Start: domain.Point{X: rng.Float64(), Y: rng.Float64()},
			End:   domain.Point{X: rng.Float64(), Y: rng.Float64()},
		}
		for i := 0; i < n; i++ {
			inst.Waypoints = append(inst.Waypoints, domain.Waypoint{X: rng.Float64(), Y: rng.Float64(), Penalty: float64(i)})
		}

		seq := make([]int, rng.Intn(6))
		for i := range seq {
			seq[i] = rng.Intn(n + 2)
		}

		route, err := NormalizeRoute(inst, &domain.Solution{Indices: seq})
		require.NoError(t, err)
		require.Len(t, route.Path, len(route.Indices))

		for i, idx := range route.Indices {
			switch {
			case idx == 0:
				require.Equal(t, inst.Start, route.Path[i])
			case idx == n+1:
				require.Equal(t, inst.End, route.Path[i])
			default:
				require.Equal(t, inst.Waypoints[idx-1].Point(), route.Path[i])
			}
		}

		visited, skipped := route.Visited(), route.Skipped()
		require.Equal(t, n, len(visited)+len(skipped))
		seen := map[int]bool{}
		for _, w := range append(visited, skipped...) {
			require.False(t, seen[w.Index], "waypoint %d classified twice", w.Index)
			seen[w.Index] = true
		}
	}
}

func TestResolvePathRejectsOutOfRange(t *testing.T) {
	inst := singleWaypointInstance()

	_, err := ResolvePath(inst, []int{0, -1, 2})
	var rangeErr *domain.IndexOutOfRangeError
	require.True(t, errors.As(err, &rangeErr))
	require.Equal(t, -1, rangeErr.Index)
}

func TestNormalizeRouteNilArguments(t *testing.T) {
	_, err := NormalizeRoute(nil, &domain.Solution{})
	require.Error(t, err)
	_, err = NormalizeRoute(singleWaypointInstance(), nil)
	require.Error(t, err)
}
