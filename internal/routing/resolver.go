package routing

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"farecast/internal/metrics"
	"farecast/internal/types"
)

// Resolver turns a pair of endpoints into a Route. A nil planner or any
// planner failure degrades to great-circle geometry; Resolve never fails.
type Resolver struct {
	planner      Planner
	maxWaypoints int
	logger       *slog.Logger
}

func NewResolver(planner Planner, maxWaypoints int, logger *slog.Logger) *Resolver {
	if maxWaypoints < 0 {
		maxWaypoints = 0
	}
	return &Resolver{planner: planner, maxWaypoints: maxWaypoints, logger: logger}
}

func (r *Resolver) Resolve(ctx context.Context, origin, dest types.Point) Route {
	if r.planner != nil && origin != dest {
		started := time.Now()
		plan, err := r.planner.Plan(ctx, origin, dest)
		metrics.RoutingDurationMs.Observe(float64(time.Since(started).Milliseconds()))
		if err == nil && plan.DistanceMeters < 0 {
			err = errors.New("planner returned negative distance")
		}
		if err == nil {
			metrics.RouteResolutionsTotal.WithLabelValues(string(MethodExternal)).Inc()
			return Route{
				DistanceKm: roundKm(float64(plan.DistanceMeters) / 1000.0),
				Method:     MethodExternal,
				Waypoints:  sampleEvery(plan.StepEnds, r.maxWaypoints),
			}
		}
		metrics.RoutingFailuresTotal.Inc()
		r.logger.Warn("external routing failed, using great-circle distance",
			"error", err)
	}
	return r.fallback(origin, dest)
}

func (r *Resolver) fallback(origin, dest types.Point) Route {
	metrics.RouteResolutionsTotal.WithLabelValues(string(MethodFallback)).Inc()
	rt := Route{
		DistanceKm: roundKm(HaversineKm(origin, dest)),
		Method:     MethodFallback,
	}
	// Identical endpoints leave nothing to sample between them.
	if origin != dest {
		rt.Waypoints = interpolate(origin, dest, r.maxWaypoints)
	}
	return rt
}

// sampleEvery picks up to n points from the ordered step ends, walking the
// slice at a fixed stride so the picks spread over the whole route.
func sampleEvery(points []types.Point, n int) []types.Point {
	if n <= 0 || len(points) == 0 {
		return nil
	}
	if len(points) <= n {
		out := make([]types.Point, len(points))
		copy(out, points)
		return out
	}
	stride := len(points) / n
	out := make([]types.Point, 0, n)
	for i := 0; i < len(points) && len(out) < n; i += stride {
		out = append(out, points[i])
	}
	return out
}

// interpolate returns n points evenly spaced strictly between a and b at
// fractions i/(n+1) of the segment.
func interpolate(a, b types.Point, n int) []types.Point {
	if n <= 0 {
		return nil
	}
	out := make([]types.Point, 0, n)
	for i := 1; i <= n; i++ {
		f := float64(i) / float64(n+1)
		out = append(out, types.Point{
			Lat: a.Lat + (b.Lat-a.Lat)*f,
			Lng: a.Lng + (b.Lng-a.Lng)*f,
		})
	}
	return out
}

// roundKm keeps distances at two decimals, the precision carried through
// pricing and returned to clients.
func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
