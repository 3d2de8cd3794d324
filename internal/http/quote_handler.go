// README: Quote and coverage handlers.
package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"farecast/internal/modules/quote"
	"farecast/internal/types"
	"farecast/internal/weather"
)

type pointPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p pointPayload) toPoint() types.Point {
	return types.Point{Lat: p.Lat, Lng: p.Lng}
}

type quoteRequest struct {
	OrderClass   string        `json:"order_class"`
	Origin       *pointPayload `json:"origin"`
	Destination  *pointPayload `json:"destination"`
	DeliveryTime string        `json:"delivery_time"`
}

type componentsPayload struct {
	DistanceFee      float64 `json:"distance_fee"`
	NightSurcharge   float64 `json:"night_surcharge"`
	WeatherSurcharge float64 `json:"weather_surcharge"`
}

type factorsPayload struct {
	DistanceKm   float64 `json:"distance_km"`
	OrderClass   string  `json:"order_class"`
	IsNight      bool    `json:"is_night"`
	IsRainy      bool    `json:"is_rainy"`
	RouteMethod  string  `json:"route_resolution_method"`
	DeliveryTime string  `json:"delivery_time"`
}

type quoteResponse struct {
	QuoteID        string            `json:"quote_id"`
	TotalFee       float64           `json:"total_fee"`
	Currency       string            `json:"currency"`
	Components     componentsPayload `json:"components"`
	Factors        factorsPayload    `json:"factors"`
	EtaMinutes     int               `json:"eta_minutes"`
	WeatherSamples []weather.Sample  `json:"weather_samples,omitempty"`
}

func (s *Server) HandleQuote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Origin == nil || req.Destination == nil {
		writeError(c, http.StatusBadRequest, "missing origin or destination")
		return
	}

	class, err := types.ParseOrderClass(req.OrderClass)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	var at time.Time
	if req.DeliveryTime != "" {
		at, err = quote.ParseDeliveryTime(req.DeliveryTime)
		if err != nil {
			writeQuoteError(c, err)
			return
		}
	}

	bd, err := s.quote.Compute(c.Request.Context(), quote.Request{
		Class:        class,
		Origin:       req.Origin.toPoint(),
		Destination:  req.Destination.toPoint(),
		DeliveryTime: at,
	})
	if err != nil {
		writeQuoteError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, quoteResponse{
		QuoteID:  uuid.NewString(),
		TotalFee: bd.Total.Float64(),
		Currency: bd.Total.Currency,
		Components: componentsPayload{
			DistanceFee:      bd.DistanceFee.Float64(),
			NightSurcharge:   bd.NightSurcharge.Float64(),
			WeatherSurcharge: bd.WeatherSurcharge.Float64(),
		},
		Factors: factorsPayload{
			DistanceKm:   bd.Factors.DistanceKm,
			OrderClass:   string(bd.Factors.Class),
			IsNight:      bd.Factors.IsNight,
			IsRainy:      bd.Factors.IsRainy,
			RouteMethod:  string(bd.Factors.RouteMethod),
			DeliveryTime: bd.Factors.DeliveryTime.UTC().Format(time.RFC3339),
		},
		EtaMinutes:     s.quote.EstimateDeliveryMinutes(bd.Factors.DistanceKm),
		WeatherSamples: bd.WeatherSamples,
	})
}

type coverageResponse struct {
	Deliverable bool    `json:"deliverable"`
	DistanceKm  float64 `json:"distance_km"`
	MaxRadiusKm float64 `json:"max_radius_km"`
	Message     string  `json:"message"`
}

func (s *Server) HandleCoverageCheck(c *gin.Context) {
	origin, err := pointFromQuery(c, "origin_lat", "origin_lng")
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	dest, err := pointFromQuery(c, "dest_lat", "dest_lng")
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	cov, err := s.quote.CheckCoverage(origin, dest)
	if err != nil {
		writeQuoteError(c, err)
		return
	}

	msg := "delivery available"
	if !cov.Deliverable {
		msg = fmt.Sprintf("drop-off is %.2f km away, outside the %.0f km delivery radius",
			cov.DistanceKm, cov.MaxRadiusKm)
	}
	writeJSON(c, http.StatusOK, coverageResponse{
		Deliverable: cov.Deliverable,
		DistanceKm:  cov.DistanceKm,
		MaxRadiusKm: cov.MaxRadiusKm,
		Message:     msg,
	})
}

func pointFromQuery(c *gin.Context, latKey, lngKey string) (types.Point, error) {
	lat, err := strconv.ParseFloat(c.Query(latKey), 64)
	if err != nil {
		return types.Point{}, fmt.Errorf("query parameter %s must be a number", latKey)
	}
	lng, err := strconv.ParseFloat(c.Query(lngKey), 64)
	if err != nil {
		return types.Point{}, fmt.Errorf("query parameter %s must be a number", lngKey)
	}
	return types.Point{Lat: lat, Lng: lng}, nil
}
