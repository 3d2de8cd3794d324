// README: Quote service; composes distance, night, and weather factors into one fee.
package quote

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"farecast/internal/metrics"
	"farecast/internal/modules/pricing"
	"farecast/internal/routing"
	"farecast/internal/types"
	"farecast/internal/weather"
)

// RouteResolver yields trip geometry. Implementations never fail; they
// degrade to approximate geometry instead.
type RouteResolver interface {
	Resolve(ctx context.Context, origin, dest types.Point) routing.Route
}

// WeatherAssessor samples conditions along a route. Implementations never
// fail; an unreachable provider assesses dry.
type WeatherAssessor interface {
	AssessRoute(ctx context.Context, points []types.Point) weather.Assessment
}

// Options carries the surcharge rates and the delivery-estimate knobs.
type Options struct {
	NightSurchargeRate   float64
	WeatherSurchargeRate float64
	PrepMinutes          int
	AvgSpeedKmh          float64
	MaxRadiusKm          float64
}

// Service is the fee engine exposed to callers. It holds no per-request
// state; one instance serves all concurrent requests.
type Service struct {
	routes  RouteResolver
	pricing *pricing.Calculator
	night   pricing.NightWindow
	weather WeatherAssessor
	opts    Options
	logger  *slog.Logger
	now     func() time.Time
}

func NewService(
	routes RouteResolver,
	calculator *pricing.Calculator,
	night pricing.NightWindow,
	assessor WeatherAssessor,
	opts Options,
	logger *slog.Logger,
) *Service {
	return &Service{
		routes:  routes,
		pricing: calculator,
		night:   night,
		weather: assessor,
		opts:    opts,
		logger:  logger,
		now:     time.Now,
	}
}

// Compute runs the fee pipeline once: resolve the route, price the distance,
// then stack the night and weather surcharges on the distance fee. Only
// invalid input fails; degraded routing or weather lowers fidelity, never
// availability.
func (s *Service) Compute(ctx context.Context, req Request) (Breakdown, error) {
	if err := req.Validate(); err != nil {
		return Breakdown{}, err
	}
	started := time.Now()

	route := s.routes.Resolve(ctx, req.Origin, req.Destination)
	distanceFee := s.pricing.DistanceFee(req.Class, route.DistanceKm)

	when := req.DeliveryTime
	if when.IsZero() {
		when = s.now()
	}
	isNight := s.night.IsNight(when)
	nightSurcharge := types.Zero(distanceFee.Currency)
	if isNight {
		nightSurcharge = distanceFee.Scale(s.opts.NightSurchargeRate)
	}

	points := append([]types.Point{req.Origin, req.Destination}, route.Waypoints...)
	assessment := s.weather.AssessRoute(ctx, points)
	weatherSurcharge := types.Zero(distanceFee.Currency)
	if assessment.Rainy {
		weatherSurcharge = distanceFee.Scale(s.opts.WeatherSurchargeRate)
	}

	total := distanceFee.Add(nightSurcharge).Add(weatherSurcharge)

	metrics.QuotesTotal.WithLabelValues(string(req.Class)).Inc()
	metrics.QuoteDurationMs.Observe(float64(time.Since(started).Milliseconds()))
	s.logger.Debug("quote computed",
		"class", req.Class,
		"distance_km", route.DistanceKm,
		"method", route.Method,
		"is_night", isNight,
		"is_rainy", assessment.Rainy,
		"total", total.String(),
	)

	return Breakdown{
		DistanceFee:      distanceFee,
		NightSurcharge:   nightSurcharge,
		WeatherSurcharge: weatherSurcharge,
		Total:            total,
		Factors: Factors{
			DistanceKm:   route.DistanceKm,
			Class:        req.Class,
			IsNight:      isNight,
			IsRainy:      assessment.Rainy,
			RouteMethod:  route.Method,
			DeliveryTime: when,
		},
		WeatherSamples: assessment.Samples,
	}, nil
}

// EstimateDeliveryMinutes adds the kitchen preparation window to travel
// time at the configured average city speed.
func (s *Service) EstimateDeliveryMinutes(distanceKm float64) int {
	travel := distanceKm / s.opts.AvgSpeedKmh * 60
	return s.opts.PrepMinutes + int(travel)
}

// CheckCoverage reports whether dest lies within the delivery radius of
// origin. The check uses great-circle distance: coverage is a static area
// around the pickup, not a routed trip.
func (s *Service) CheckCoverage(origin, dest types.Point) (Coverage, error) {
	if err := origin.Validate(); err != nil {
		return Coverage{}, fmt.Errorf("%w: origin%v", ErrInvalidCoordinate, err)
	}
	if err := dest.Validate(); err != nil {
		return Coverage{}, fmt.Errorf("%w: destination%v", ErrInvalidCoordinate, err)
	}
	km := math.Round(routing.HaversineKm(origin, dest)*100) / 100
	return Coverage{
		Deliverable: km <= s.opts.MaxRadiusKm,
		DistanceKm:  km,
		MaxRadiusKm: s.opts.MaxRadiusKm,
	}, nil
}
