// Package weather samples current conditions along a route and decides
// whether the trip runs through rain.
package weather

import (
	"context"
	"time"

	"farecast/internal/types"
)

// Observation is a single provider reading for one coordinate.
type Observation struct {
	Condition   string
	Description string
	TempC       float64
	Humidity    int
}

// Observer is the current-conditions capability.
type Observer interface {
	Current(ctx context.Context, p types.Point) (Observation, error)
}

// Sample is one evaluated observation along a route. Samples marshal into
// the cache and back out to API clients unchanged.
type Sample struct {
	Location    types.Point `json:"location"`
	Condition   string      `json:"condition"`
	Description string      `json:"description,omitempty"`
	TempC       float64     `json:"temperature_c"`
	Humidity    int         `json:"humidity"`
	Rainy       bool        `json:"is_rainy"`
	ObservedAt  time.Time   `json:"observed_at"`
}

// Assessment aggregates the samples taken for one route.
type Assessment struct {
	Rainy   bool
	Samples []Sample
}
