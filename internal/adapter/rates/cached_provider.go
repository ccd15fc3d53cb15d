package rates

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/finvo/transferd/internal/infrastructure/metrics"
	"github.com/finvo/transferd/internal/usecase"
)

// CachedProvider caches pair rates in Redis in front of another
// provider. Cache failures degrade to a direct lookup; they never fail
// a transfer on their own.
type CachedProvider struct {
	client *redis.Client
	source usecase.RateProvider
	ttl     time.Duration
	prefix  string
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewCachedProvider creates a new CachedProvider.
func NewCachedProvider(client *redis.Client, source usecase.RateProvider, ttl time.Duration, m *metrics.Metrics, logger zerolog.Logger) *CachedProvider {
	return &CachedProvider{
		client:  client,
		source:  source,
		ttl:     ttl,
		prefix:  "rate:",
		metrics: m,
		logger:  logger,
	}
}

// Rate returns the cached rate for the pair, falling through to the
// underlying provider on a miss.
func (p *CachedProvider) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	key := p.prefix + from + ":" + to

	if p.metrics != nil {
		p.metrics.RateLookups.WithLabelValues(from, to).Inc()
	}

	cached, err := p.client.Get(ctx, key).Result()
	if err == nil {
		rate, parseErr := decimal.NewFromString(cached)
		if parseErr == nil {
			if p.metrics != nil {
				p.metrics.RateCacheHits.Inc()
			}

			return rate, nil
		}

		p.logger.Warn().Str("key", key).Str("value", cached).Msg("discarding malformed cached rate")
	} else if err != redis.Nil {
		p.logger.Warn().Err(err).Str("key", key).Msg("rate cache read failed")
	}

	rate, err := p.source.Rate(ctx, from, to)
	if err != nil {
		if p.metrics != nil {
			p.metrics.RateErrors.Inc()
		}

		return decimal.Decimal{}, err
	}

	if err := p.client.Set(ctx, key, rate.String(), p.ttl).Err(); err != nil {
		p.logger.Warn().Err(err).Str("key", key).Msg("rate cache write failed")
	}

	return rate, nil
}
