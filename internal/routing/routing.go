// Package routing resolves the driving distance and intermediate waypoints
// between two coordinates, preferring an external planner and degrading to
// great-circle geometry when it is unavailable.
package routing

import (
	"context"

	"farecast/internal/types"
)

// Method records which resolution path produced a Route.
type Method string

const (
	MethodExternal Method = "external"
	MethodFallback Method = "fallback"
)

// Route is the resolved geometry for a trip: total distance in kilometres
// at two decimals, plus up to a configured number of intermediate points
// for en-route sampling. Waypoints exclude the trip endpoints.
type Route struct {
	DistanceKm float64
	Method     Method
	Waypoints  []types.Point
}

// Plan is the raw result of an external planner: metres travelled and the
// end location of every step along the route, in order.
type Plan struct {
	DistanceMeters int
	StepEnds       []types.Point
}

// Planner is the external routing capability.
type Planner interface {
	Plan(ctx context.Context, origin, dest types.Point) (Plan, error)
}
