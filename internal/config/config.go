// README: Config loader; env defaults, plus an optional YAML tariff file for the fee schedule.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"farecast/internal/types"
)

// FeeConfig holds every knob of the fee engine. Load builds it once and the
// value is never mutated afterwards; regional deployments vary behavior
// through the tariff file or environment, not code.
type FeeConfig struct {
	BasePrice            types.Money
	BaseDistanceKm       float64
	OverageRateFraction  float64
	BulkBaseMultiplier   int64
	NightStartHour       int
	NightEndHour         int
	NightSurchargeRate   float64
	WeatherSurchargeRate float64
	Timezone             *time.Location
	RainyConditions      []string
	WeatherCacheTTL      time.Duration
	CoordPrecision       int
	MaxWeatherSamples    int
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	Maps struct {
		APIKey  string
		Timeout time.Duration
	}
	Weather struct {
		APIKey  string
		BaseURL string
		Timeout time.Duration
	}
	Delivery struct {
		PrepMinutes int
		AvgSpeedKmh float64
		MaxRadiusKm float64
	}
	Fee FeeConfig
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("FARECAST_HTTP_ADDR", ":8080")
	cfg.Redis.Addr = os.Getenv("FARECAST_REDIS_ADDR")
	cfg.Redis.Password = os.Getenv("FARECAST_REDIS_PASSWORD")
	cfg.Redis.DB = envOrDefaultInt("FARECAST_REDIS_DB", 0)
	cfg.Maps.APIKey = os.Getenv("MAP_API_KEY")
	cfg.Maps.Timeout = envOrDefaultDuration("FARECAST_ROUTING_TIMEOUT", 5*time.Second)
	cfg.Weather.APIKey = os.Getenv("WEATHER_API_KEY")
	cfg.Weather.BaseURL = os.Getenv("FARECAST_WEATHER_BASE_URL")
	cfg.Weather.Timeout = envOrDefaultDuration("FARECAST_WEATHER_TIMEOUT", 5*time.Second)
	cfg.Delivery.PrepMinutes = envOrDefaultInt("FARECAST_PREP_MINUTES", 30)
	cfg.Delivery.AvgSpeedKmh = envOrDefaultFloat("FARECAST_AVG_SPEED_KMH", 20)
	cfg.Delivery.MaxRadiusKm = envOrDefaultFloat("FARECAST_MAX_RADIUS_KM", 25)
	if cfg.Delivery.AvgSpeedKmh <= 0 {
		return Config{}, fmt.Errorf("FARECAST_AVG_SPEED_KMH must be positive, got %v", cfg.Delivery.AvgSpeedKmh)
	}
	if cfg.Delivery.MaxRadiusKm <= 0 {
		return Config{}, fmt.Errorf("FARECAST_MAX_RADIUS_KM must be positive, got %v", cfg.Delivery.MaxRadiusKm)
	}

	t := defaultTariff()
	if path := os.Getenv("FARECAST_TARIFF_FILE"); path != "" {
		if err := t.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := t.applyEnv(); err != nil {
		return Config{}, err
	}

	fee, err := t.build()
	if err != nil {
		return Config{}, fmt.Errorf("fee config: %w", err)
	}
	cfg.Fee = fee
	return cfg, nil
}

// tariff mirrors FeeConfig with plain file- and env-friendly fields.
// Precedence, lowest to highest: built-in defaults, the tariff file, then
// environment variables.
type tariff struct {
	BasePrice            string   `yaml:"base_price"`
	Currency             string   `yaml:"currency"`
	BaseDistanceKm       float64  `yaml:"base_distance_km"`
	OverageRateFraction  float64  `yaml:"overage_rate_fraction"`
	BulkBaseMultiplier   int      `yaml:"bulk_base_multiplier"`
	NightStartHour       int      `yaml:"night_start_hour"`
	NightEndHour         int      `yaml:"night_end_hour"`
	NightSurchargeRate   float64  `yaml:"night_surcharge_rate"`
	WeatherSurchargeRate float64  `yaml:"weather_surcharge_rate"`
	Timezone             string   `yaml:"operating_timezone"`
	RainyConditions      []string `yaml:"rainy_conditions"`
	WeatherCacheTTLSecs  int      `yaml:"weather_cache_ttl_seconds"`
	CoordPrecision       int      `yaml:"coordinate_precision"`
	MaxWeatherSamples    int      `yaml:"max_weather_samples"`
}

func defaultTariff() tariff {
	return tariff{
		BasePrice:            "50",
		Currency:             "LKR",
		BaseDistanceKm:       5,
		OverageRateFraction:  0.30,
		BulkBaseMultiplier:   5,
		NightStartHour:       18,
		NightEndHour:         5,
		NightSurchargeRate:   0.10,
		WeatherSurchargeRate: 0.10,
		Timezone:             "Asia/Colombo",
		RainyConditions:      []string{"Rain", "Drizzle", "Thunderstorm", "Heavy rain", "Light rain"},
		WeatherCacheTTLSecs:  900,
		CoordPrecision:       3,
		MaxWeatherSamples:    5,
	}
}

func (t *tariff) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tariff file: %w", err)
	}
	// Keys absent from the file keep their current values.
	if err := yaml.Unmarshal(data, t); err != nil {
		return fmt.Errorf("parse tariff file %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays FARECAST_* variables. Fee fields parse strictly: a
// malformed value is a startup error, not a silent default.
func (t *tariff) applyEnv() error {
	t.BasePrice = envOrDefault("FARECAST_BASE_PRICE", t.BasePrice)
	t.Currency = envOrDefault("FARECAST_CURRENCY", t.Currency)
	t.Timezone = envOrDefault("FARECAST_TIMEZONE", t.Timezone)
	if v := os.Getenv("FARECAST_RAINY_CONDITIONS"); v != "" {
		t.RainyConditions = splitCSV(v)
	}

	var err error
	if t.BaseDistanceKm, err = floatEnv("FARECAST_BASE_DISTANCE_KM", t.BaseDistanceKm); err != nil {
		return err
	}
	if t.OverageRateFraction, err = floatEnv("FARECAST_OVERAGE_RATE", t.OverageRateFraction); err != nil {
		return err
	}
	if t.NightSurchargeRate, err = floatEnv("FARECAST_NIGHT_RATE", t.NightSurchargeRate); err != nil {
		return err
	}
	if t.WeatherSurchargeRate, err = floatEnv("FARECAST_WEATHER_RATE", t.WeatherSurchargeRate); err != nil {
		return err
	}
	if t.BulkBaseMultiplier, err = intEnv("FARECAST_BULK_MULTIPLIER", t.BulkBaseMultiplier); err != nil {
		return err
	}
	if t.NightStartHour, err = intEnv("FARECAST_NIGHT_START_HOUR", t.NightStartHour); err != nil {
		return err
	}
	if t.NightEndHour, err = intEnv("FARECAST_NIGHT_END_HOUR", t.NightEndHour); err != nil {
		return err
	}
	if t.WeatherCacheTTLSecs, err = intEnv("FARECAST_WEATHER_CACHE_TTL", t.WeatherCacheTTLSecs); err != nil {
		return err
	}
	if t.CoordPrecision, err = intEnv("FARECAST_COORD_PRECISION", t.CoordPrecision); err != nil {
		return err
	}
	if t.MaxWeatherSamples, err = intEnv("FARECAST_MAX_WEATHER_SAMPLES", t.MaxWeatherSamples); err != nil {
		return err
	}
	return nil
}

func (t tariff) build() (FeeConfig, error) {
	amount, err := types.ParseAmount(t.BasePrice)
	if err != nil {
		return FeeConfig{}, fmt.Errorf("base price: %w", err)
	}
	if amount <= 0 {
		return FeeConfig{}, fmt.Errorf("base price must be positive, got %q", t.BasePrice)
	}
	currency := strings.ToUpper(strings.TrimSpace(t.Currency))
	if len(currency) != 3 {
		return FeeConfig{}, fmt.Errorf("currency must be a 3-letter code, got %q", t.Currency)
	}
	if t.BaseDistanceKm < 0 {
		return FeeConfig{}, fmt.Errorf("base distance must not be negative, got %v", t.BaseDistanceKm)
	}
	if t.OverageRateFraction < 0 {
		return FeeConfig{}, fmt.Errorf("overage rate fraction must not be negative, got %v", t.OverageRateFraction)
	}
	if t.BulkBaseMultiplier < 1 {
		return FeeConfig{}, fmt.Errorf("bulk base multiplier must be at least 1, got %d", t.BulkBaseMultiplier)
	}
	if t.NightStartHour < 0 || t.NightStartHour > 23 {
		return FeeConfig{}, fmt.Errorf("night start hour must be 0-23, got %d", t.NightStartHour)
	}
	if t.NightEndHour < 0 || t.NightEndHour > 23 {
		return FeeConfig{}, fmt.Errorf("night end hour must be 0-23, got %d", t.NightEndHour)
	}
	if t.NightSurchargeRate < 0 || t.WeatherSurchargeRate < 0 {
		return FeeConfig{}, fmt.Errorf("surcharge rates must not be negative")
	}
	if t.WeatherCacheTTLSecs <= 0 {
		return FeeConfig{}, fmt.Errorf("weather cache ttl must be positive, got %d", t.WeatherCacheTTLSecs)
	}
	if t.CoordPrecision < 0 || t.CoordPrecision > 8 {
		return FeeConfig{}, fmt.Errorf("coordinate precision must be 0-8, got %d", t.CoordPrecision)
	}
	// Two sample slots always belong to the trip endpoints.
	if t.MaxWeatherSamples < 2 {
		return FeeConfig{}, fmt.Errorf("max weather samples must be at least 2, got %d", t.MaxWeatherSamples)
	}
	loc, err := time.LoadLocation(t.Timezone)
	if err != nil {
		return FeeConfig{}, fmt.Errorf("operating timezone %q: %w", t.Timezone, err)
	}

	return FeeConfig{
		BasePrice:            types.NewMoney(amount, currency),
		BaseDistanceKm:       t.BaseDistanceKm,
		OverageRateFraction:  t.OverageRateFraction,
		BulkBaseMultiplier:   int64(t.BulkBaseMultiplier),
		NightStartHour:       t.NightStartHour,
		NightEndHour:         t.NightEndHour,
		NightSurchargeRate:   t.NightSurchargeRate,
		WeatherSurchargeRate: t.WeatherSurchargeRate,
		Timezone:             loc,
		RainyConditions:      t.RainyConditions,
		WeatherCacheTTL:      time.Duration(t.WeatherCacheTTLSecs) * time.Second,
		CoordPrecision:       t.CoordPrecision,
		MaxWeatherSamples:    t.MaxWeatherSamples,
	}, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}

func floatEnv(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return f, nil
}
