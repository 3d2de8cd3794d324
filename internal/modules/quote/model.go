// README: Quote request/response shapes and validation errors.
package quote

import (
	"errors"
	"fmt"
	"time"

	"farecast/internal/routing"
	"farecast/internal/types"
	"farecast/internal/weather"
)

var (
	ErrInvalidCoordinate   = errors.New("invalid coordinate")
	ErrInvalidOrderClass   = errors.New("invalid order class")
	ErrInvalidDeliveryTime = errors.New("invalid delivery time")
)

// Request describes one fee computation. A zero DeliveryTime means "now".
type Request struct {
	Class        types.OrderClass
	Origin       types.Point
	Destination  types.Point
	DeliveryTime time.Time
}

func (r Request) Validate() error {
	if !r.Class.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidOrderClass, r.Class)
	}
	if err := r.Origin.Validate(); err != nil {
		return fmt.Errorf("%w: origin%v", ErrInvalidCoordinate, err)
	}
	if err := r.Destination.Validate(); err != nil {
		return fmt.Errorf("%w: destination%v", ErrInvalidCoordinate, err)
	}
	return nil
}

// Factors records the inputs that shaped a breakdown, so callers can show
// customers and support staff why a fee came out the way it did.
type Factors struct {
	DistanceKm   float64
	Class        types.OrderClass
	IsNight      bool
	IsRainy      bool
	RouteMethod  routing.Method
	DeliveryTime time.Time
}

// Breakdown is the engine's answer: each fee component, their sum, and the
// factors that produced them. Amounts share one currency.
type Breakdown struct {
	DistanceFee      types.Money
	NightSurcharge   types.Money
	WeatherSurcharge types.Money
	Total            types.Money
	Factors          Factors
	WeatherSamples   []weather.Sample
}

// Coverage reports whether a drop-off sits inside the delivery radius of
// the pickup.
type Coverage struct {
	Deliverable bool
	DistanceKm  float64
	MaxRadiusKm float64
}

// ParseDeliveryTime accepts an RFC 3339 timestamp. A timestamp without a
// zone offset is read as UTC.
func ParseDeliveryTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	ts, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDeliveryTime, s)
	}
	return ts, nil
}
