package routing

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"farecast/internal/types"
)

type fakePlanner struct {
	plan  Plan
	err   error
	calls int
}

func (f *fakePlanner) Plan(_ context.Context, _, _ types.Point) (Plan, error) {
	f.calls++
	if f.err != nil {
		return Plan{}, f.err
	}
	return f.plan, nil
}

var (
	colombo = types.Point{Lat: 6.9271, Lng: 79.8612}
	kandy   = types.Point{Lat: 7.2906, Lng: 80.6337}
)

func TestResolver_ExternalSuccess(t *testing.T) {
	steps := []types.Point{
		{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}, {Lat: 3, Lng: 3}, {Lat: 4, Lng: 4},
		{Lat: 5, Lng: 5}, {Lat: 6, Lng: 6}, {Lat: 7, Lng: 7},
	}
	planner := &fakePlanner{plan: Plan{DistanceMeters: 10240, StepEnds: steps}}
	r := NewResolver(planner, 3, slog.Default())

	got := r.Resolve(context.Background(), colombo, kandy)

	if got.Method != MethodExternal {
		t.Fatalf("Method = %q, want %q", got.Method, MethodExternal)
	}
	if got.DistanceKm != 10.24 {
		t.Errorf("DistanceKm = %v, want 10.24", got.DistanceKm)
	}
	want := []types.Point{{Lat: 1, Lng: 1}, {Lat: 3, Lng: 3}, {Lat: 5, Lng: 5}}
	if len(got.Waypoints) != len(want) {
		t.Fatalf("Waypoints = %v, want %v", got.Waypoints, want)
	}
	for i := range want {
		if got.Waypoints[i] != want[i] {
			t.Errorf("Waypoints[%d] = %v, want %v", i, got.Waypoints[i], want[i])
		}
	}
}

func TestResolver_ExternalDistanceRounding(t *testing.T) {
	planner := &fakePlanner{plan: Plan{DistanceMeters: 2983}}
	r := NewResolver(planner, 3, slog.Default())

	got := r.Resolve(context.Background(), colombo, kandy)
	if got.DistanceKm != 2.98 {
		t.Errorf("DistanceKm = %v, want 2.98", got.DistanceKm)
	}
}

func TestResolver_FallbackOnPlannerError(t *testing.T) {
	planner := &fakePlanner{err: errors.New("upstream down")}
	r := NewResolver(planner, 3, slog.Default())

	got := r.Resolve(context.Background(), colombo, kandy)

	if got.Method != MethodFallback {
		t.Fatalf("Method = %q, want %q", got.Method, MethodFallback)
	}
	if want := roundKm(HaversineKm(colombo, kandy)); got.DistanceKm != want {
		t.Errorf("DistanceKm = %v, want %v", got.DistanceKm, want)
	}
	if len(got.Waypoints) != 3 {
		t.Errorf("len(Waypoints) = %d, want 3", len(got.Waypoints))
	}
	if planner.calls != 1 {
		t.Errorf("planner calls = %d, want 1", planner.calls)
	}
}

func TestResolver_FallbackWhenUnconfigured(t *testing.T) {
	r := NewResolver(nil, 3, slog.Default())

	got := r.Resolve(context.Background(), colombo, kandy)
	if got.Method != MethodFallback {
		t.Errorf("Method = %q, want %q", got.Method, MethodFallback)
	}
}

func TestResolver_FallbackOnNegativeDistance(t *testing.T) {
	planner := &fakePlanner{plan: Plan{DistanceMeters: -5}}
	r := NewResolver(planner, 3, slog.Default())

	got := r.Resolve(context.Background(), colombo, kandy)
	if got.Method != MethodFallback {
		t.Errorf("Method = %q, want %q", got.Method, MethodFallback)
	}
}

func TestResolver_SamePointSkipsPlanner(t *testing.T) {
	planner := &fakePlanner{plan: Plan{DistanceMeters: 1000}}
	r := NewResolver(planner, 3, slog.Default())

	got := r.Resolve(context.Background(), colombo, colombo)

	if got.DistanceKm != 0 {
		t.Errorf("DistanceKm = %v, want exactly 0", got.DistanceKm)
	}
	if got.Method != MethodFallback {
		t.Errorf("Method = %q, want %q", got.Method, MethodFallback)
	}
	if len(got.Waypoints) != 0 {
		t.Errorf("Waypoints = %v, want none", got.Waypoints)
	}
	if planner.calls != 0 {
		t.Errorf("planner calls = %d, want 0", planner.calls)
	}
}

func TestSampleEvery(t *testing.T) {
	points := []types.Point{
		{Lat: 1}, {Lat: 2}, {Lat: 3}, {Lat: 4}, {Lat: 5}, {Lat: 6}, {Lat: 7},
	}

	tests := []struct {
		name     string
		points   []types.Point
		n        int
		wantLats []float64
	}{
		{name: "stride over longer slice", points: points, n: 3, wantLats: []float64{1, 3, 5}},
		{name: "fewer points than limit", points: points[:2], n: 3, wantLats: []float64{1, 2}},
		{name: "exact fit", points: points[:3], n: 3, wantLats: []float64{1, 2, 3}},
		{name: "zero limit", points: points, n: 0, wantLats: nil},
		{name: "empty input", points: nil, n: 3, wantLats: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sampleEvery(tt.points, tt.n)
			if len(got) != len(tt.wantLats) {
				t.Fatalf("got %d points, want %d", len(got), len(tt.wantLats))
			}
			for i, want := range tt.wantLats {
				if got[i].Lat != want {
					t.Errorf("point %d lat = %v, want %v", i, got[i].Lat, want)
				}
			}
		})
	}
}

func TestInterpolate(t *testing.T) {
	a := types.Point{Lat: 0, Lng: 0}
	b := types.Point{Lat: 4, Lng: 8}

	got := interpolate(a, b, 3)

	want := []types.Point{{Lat: 1, Lng: 2}, {Lat: 2, Lng: 4}, {Lat: 3, Lng: 6}}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}

	if pts := interpolate(a, b, 0); pts != nil {
		t.Errorf("interpolate with n=0 = %v, want nil", pts)
	}
}

func TestRoundKm(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 10.2449, want: 10.24},
		{in: 10.246, want: 10.25},
		{in: 2.983, want: 2.98},
		{in: 94.33651, want: 94.34},
		{in: 0, want: 0},
	}
	for _, tt := range tests {
		if got := roundKm(tt.in); got != tt.want {
			t.Errorf("roundKm(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
