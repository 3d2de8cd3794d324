// README: One-shot quote CLI; computes a fee breakdown and prints it as JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"

	"farecast/internal/cache"
	"farecast/internal/config"
	"farecast/internal/logger"
	"farecast/internal/modules/pricing"
	"farecast/internal/modules/quote"
	"farecast/internal/routing"
	"farecast/internal/types"
	"farecast/internal/weather"
)

type cliConfig struct {
	Class  string
	Origin string
	Dest   string
	At     string
	Live   bool
}

func main() {
	var cli cliConfig
	flag.StringVar(&cli.Class, "class", "regular", "Order class: regular or bulk")
	flag.StringVar(&cli.Origin, "origin", "", "Pickup coordinate as lat,lng")
	flag.StringVar(&cli.Dest, "dest", "", "Drop-off coordinate as lat,lng")
	flag.StringVar(&cli.At, "time", "", "Delivery time, RFC 3339 (default now)")
	flag.BoolVar(&cli.Live, "live", false, "Call the configured routing and weather providers")
	flag.Parse()

	if err := run(cli); err != nil {
		fmt.Fprintln(os.Stderr, "farequote:", err)
		os.Exit(1)
	}
}

type output struct {
	TotalFee   float64 `json:"total_fee"`
	Currency   string  `json:"currency"`
	Components struct {
		DistanceFee      float64 `json:"distance_fee"`
		NightSurcharge   float64 `json:"night_surcharge"`
		WeatherSurcharge float64 `json:"weather_surcharge"`
	} `json:"components"`
	DistanceKm  float64 `json:"distance_km"`
	RouteMethod string  `json:"route_resolution_method"`
	IsNight     bool    `json:"is_night"`
	IsRainy     bool    `json:"is_rainy"`
	EtaMinutes  int     `json:"eta_minutes"`
}

func run(cli cliConfig) error {
	_ = godotenv.Load(".env")
	log := logger.Setup()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	origin, err := parsePoint(cli.Origin)
	if err != nil {
		return fmt.Errorf("-origin: %w", err)
	}
	dest, err := parsePoint(cli.Dest)
	if err != nil {
		return fmt.Errorf("-dest: %w", err)
	}
	class, err := types.ParseOrderClass(cli.Class)
	if err != nil {
		return err
	}
	var at time.Time
	if cli.At != "" {
		if at, err = quote.ParseDeliveryTime(cli.At); err != nil {
			return err
		}
	}

	// Offline by default: distances come from great-circle geometry and the
	// quote is dry. -live attaches whichever providers have keys configured.
	var planner routing.Planner
	var observer weather.Observer
	if cli.Live {
		if cfg.Maps.APIKey != "" {
			if gr, err := routing.NewGoogleRoutes(cfg.Maps.APIKey, cfg.Maps.Timeout); err != nil {
				log.Warn("routing client init failed, using great-circle distance", "error", err)
			} else {
				planner = gr
			}
		}
		if cfg.Weather.APIKey != "" {
			observer = weather.NewOpenWeather(
				&http.Client{Timeout: cfg.Weather.Timeout},
				cfg.Weather.APIKey,
				cfg.Weather.BaseURL,
			)
		}
	}

	svc := quote.NewService(
		routing.NewResolver(planner, cfg.Fee.MaxWeatherSamples-2, log),
		pricing.NewCalculator(pricing.Tariff{
			BasePrice:           cfg.Fee.BasePrice,
			BaseDistanceKm:      cfg.Fee.BaseDistanceKm,
			OverageRateFraction: cfg.Fee.OverageRateFraction,
			BulkBaseMultiplier:  cfg.Fee.BulkBaseMultiplier,
		}),
		pricing.NightWindow{
			StartHour: cfg.Fee.NightStartHour,
			EndHour:   cfg.Fee.NightEndHour,
			Location:  cfg.Fee.Timezone,
		},
		weather.NewService(observer, cache.NewMemory(), weather.Options{
			RainyConditions: cfg.Fee.RainyConditions,
			CacheTTL:        cfg.Fee.WeatherCacheTTL,
			KeyPrecision:    cfg.Fee.CoordPrecision,
			MaxSamples:      cfg.Fee.MaxWeatherSamples,
		}, log),
		quote.Options{
			NightSurchargeRate:   cfg.Fee.NightSurchargeRate,
			WeatherSurchargeRate: cfg.Fee.WeatherSurchargeRate,
			PrepMinutes:          cfg.Delivery.PrepMinutes,
			AvgSpeedKmh:          cfg.Delivery.AvgSpeedKmh,
			MaxRadiusKm:          cfg.Delivery.MaxRadiusKm,
		},
		log,
	)

	bd, err := svc.Compute(context.Background(), quote.Request{
		Class:        class,
		Origin:       origin,
		Destination:  dest,
		DeliveryTime: at,
	})
	if err != nil {
		return err
	}

	var out output
	out.TotalFee = bd.Total.Float64()
	out.Currency = bd.Total.Currency
	out.Components.DistanceFee = bd.DistanceFee.Float64()
	out.Components.NightSurcharge = bd.NightSurcharge.Float64()
	out.Components.WeatherSurcharge = bd.WeatherSurcharge.Float64()
	out.DistanceKm = bd.Factors.DistanceKm
	out.RouteMethod = string(bd.Factors.RouteMethod)
	out.IsNight = bd.Factors.IsNight
	out.IsRainy = bd.Factors.IsRainy
	out.EtaMinutes = svc.EstimateDeliveryMinutes(bd.Factors.DistanceKm)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func parsePoint(s string) (types.Point, error) {
	latStr, lngStr, ok := strings.Cut(s, ",")
	if !ok {
		return types.Point{}, fmt.Errorf("want lat,lng, got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return types.Point{}, fmt.Errorf("bad latitude %q", latStr)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return types.Point{}, fmt.Errorf("bad longitude %q", lngStr)
	}
	return types.Point{Lat: lat, Lng: lng}, nil
}
