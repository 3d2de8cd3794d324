package weather

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"farecast/internal/cache"
	"farecast/internal/metrics"
	"farecast/internal/types"
)

// Options tunes route assessment.
type Options struct {
	// RainyConditions are matched as substrings against the provider's
	// condition label, case-sensitively.
	RainyConditions []string

	// CacheTTL bounds how long one sample keeps answering for its cell.
	CacheTTL time.Duration

	// KeyPrecision is the number of decimals kept when coordinates are
	// folded into cache keys. Three decimals is roughly a 110 m cell.
	KeyPrecision int

	// MaxSamples caps provider lookups per route.
	MaxSamples int
}

// Service evaluates rain risk along a route. A nil observer disables the
// evaluation: every route assesses dry, so quoting keeps working while the
// provider is unconfigured or unreachable.
type Service struct {
	observer Observer
	store    cache.Store
	opts     Options
	logger   *slog.Logger
	now      func() time.Time
}

func NewService(observer Observer, store cache.Store, opts Options, logger *slog.Logger) *Service {
	return &Service{
		observer: observer,
		store:    store,
		opts:     opts,
		logger:   logger,
		now:      time.Now,
	}
}

// AssessRoute samples conditions at up to MaxSamples of the given points,
// in order, and reports whether any sample is rainy. A failed lookup skips
// its point; the remaining points still count.
func (s *Service) AssessRoute(ctx context.Context, points []types.Point) Assessment {
	if s.observer == nil || len(points) == 0 {
		return Assessment{}
	}
	if s.opts.MaxSamples > 0 && len(points) > s.opts.MaxSamples {
		points = points[:s.opts.MaxSamples]
	}

	var out Assessment
	for _, p := range points {
		sample, ok := s.sampleAt(ctx, p)
		if !ok {
			continue
		}
		out.Samples = append(out.Samples, sample)
		if sample.Rainy {
			out.Rainy = true
		}
	}
	return out
}

func (s *Service) sampleAt(ctx context.Context, p types.Point) (Sample, bool) {
	key := s.cacheKey(p)
	if b, ok := s.store.Get(ctx, key); ok {
		var cached Sample
		if err := json.Unmarshal(b, &cached); err == nil {
			metrics.WeatherCacheHitsTotal.Inc()
			return cached, true
		}
		s.logger.Debug("dropping undecodable weather cache entry", "key", key)
	}
	metrics.WeatherCacheMissesTotal.Inc()

	metrics.WeatherRequestsTotal.Inc()
	obs, err := s.observer.Current(ctx, p)
	if err != nil {
		metrics.WeatherFailuresTotal.Inc()
		s.logger.Warn("weather lookup failed, skipping point",
			"lat", p.Lat, "lng", p.Lng, "error", err)
		return Sample{}, false
	}

	sample := Sample{
		Location:    p,
		Condition:   obs.Condition,
		Description: obs.Description,
		TempC:       obs.TempC,
		Humidity:    obs.Humidity,
		Rainy:       s.isRainy(obs.Condition),
		ObservedAt:  s.now().UTC(),
	}
	if b, err := json.Marshal(sample); err == nil {
		s.store.Set(ctx, key, b, s.opts.CacheTTL)
	}
	return sample, true
}

// cacheKey folds nearby coordinates into one cell so requests through the
// same area reuse one provider reading.
func (s *Service) cacheKey(p types.Point) string {
	return fmt.Sprintf("weather:%.*f:%.*f",
		s.opts.KeyPrecision, p.Lat, s.opts.KeyPrecision, p.Lng)
}

func (s *Service) isRainy(condition string) bool {
	for _, label := range s.opts.RainyConditions {
		if strings.Contains(condition, label) {
			return true
		}
	}
	return false
}
