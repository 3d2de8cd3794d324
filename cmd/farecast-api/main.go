// README: Entry point; loads config, wires the fee engine, starts the HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"farecast/internal/cache"
	"farecast/internal/config"
	httptransport "farecast/internal/http"
	"farecast/internal/infra"
	"farecast/internal/logger"
	"farecast/internal/modules/pricing"
	"farecast/internal/modules/quote"
	"farecast/internal/routing"
	"farecast/internal/weather"
)

func main() {
	_ = godotenv.Load(".env")
	log := logger.Setup()

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store cache.Store = cache.NewMemory()
	if cfg.Redis.Addr != "" {
		store = cache.NewRedis(infra.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB), log)
		log.Info("weather cache backed by redis", "addr", cfg.Redis.Addr)
	}

	var planner routing.Planner
	if cfg.Maps.APIKey == "" {
		log.Warn("MAP_API_KEY not set, distances fall back to great-circle")
	} else if gr, err := routing.NewGoogleRoutes(cfg.Maps.APIKey, cfg.Maps.Timeout); err != nil {
		log.Warn("routing client init failed, distances fall back to great-circle", "error", err)
	} else {
		planner = gr
	}

	var observer weather.Observer
	if cfg.Weather.APIKey == "" {
		log.Warn("WEATHER_API_KEY not set, weather surcharge disabled")
	} else {
		observer = weather.NewOpenWeather(
			&http.Client{Timeout: cfg.Weather.Timeout},
			cfg.Weather.APIKey,
			cfg.Weather.BaseURL,
		)
	}

	// The trip endpoints take two of the weather sample slots; the rest go
	// to intermediate waypoints.
	resolver := routing.NewResolver(planner, cfg.Fee.MaxWeatherSamples-2, log)

	calculator := pricing.NewCalculator(pricing.Tariff{
		BasePrice:           cfg.Fee.BasePrice,
		BaseDistanceKm:      cfg.Fee.BaseDistanceKm,
		OverageRateFraction: cfg.Fee.OverageRateFraction,
		BulkBaseMultiplier:  cfg.Fee.BulkBaseMultiplier,
	})
	night := pricing.NightWindow{
		StartHour: cfg.Fee.NightStartHour,
		EndHour:   cfg.Fee.NightEndHour,
		Location:  cfg.Fee.Timezone,
	}
	assessor := weather.NewService(observer, store, weather.Options{
		RainyConditions: cfg.Fee.RainyConditions,
		CacheTTL:        cfg.Fee.WeatherCacheTTL,
		KeyPrecision:    cfg.Fee.CoordPrecision,
		MaxSamples:      cfg.Fee.MaxWeatherSamples,
	}, log)
	quoteSvc := quote.NewService(resolver, calculator, night, assessor, quote.Options{
		NightSurchargeRate:   cfg.Fee.NightSurchargeRate,
		WeatherSurchargeRate: cfg.Fee.WeatherSurchargeRate,
		PrepMinutes:          cfg.Delivery.PrepMinutes,
		AvgSpeedKmh:          cfg.Delivery.AvgSpeedKmh,
		MaxRadiusKm:          cfg.Delivery.MaxRadiusKm,
	}, log)

	gin.SetMode(gin.ReleaseMode)
	handler := httptransport.NewServer(httptransport.ServerDeps{
		Quote:  quoteSvc,
		Logger: log,
	})
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", "error", err)
		}
	}()

	log.Info("listening", "addr", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
