package routing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/samber/lo"
	"googlemaps.github.io/maps"

	"farecast/internal/types"
)

// GoogleRoutes plans driving routes through the Google Directions API.
type GoogleRoutes struct {
	client  *maps.Client
	timeout time.Duration
}

func NewGoogleRoutes(apiKey string, timeout time.Duration) (*GoogleRoutes, error) {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	client, err := maps.NewClient(
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(&http.Client{Timeout: timeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleRoutes{client: client, timeout: timeout}, nil
}

func (g *GoogleRoutes) Plan(ctx context.Context, origin, dest types.Point) (Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	r := &maps.DirectionsRequest{
		Origin:      latLngParam(origin),
		Destination: latLngParam(dest),
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := g.client.Directions(ctx, r)
	if err != nil {
		return Plan{}, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return Plan{}, errors.New("no route found")
	}

	leg := routes[0].Legs[0]
	ends := lo.Map(leg.Steps, func(s *maps.Step, _ int) types.Point {
		return types.Point{Lat: s.EndLocation.Lat, Lng: s.EndLocation.Lng}
	})
	return Plan{DistanceMeters: leg.Distance.Meters, StepEnds: ends}, nil
}

func latLngParam(p types.Point) string {
	return fmt.Sprintf("%f,%f", p.Lat, p.Lng)
}
