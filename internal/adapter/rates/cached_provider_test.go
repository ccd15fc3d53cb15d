package rates

import (
	"context"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	mu    sync.Mutex
	rate  decimal.Decimal
	err   error
	calls int
}

func (s *countingSource) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.rate, s.err
}

func newTestCache(t *testing.T, source *countingSource) (*CachedProvider, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redislib.NewClient(&redislib.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCachedProvider(client, source, time.Minute, nil, zerolog.Nop()), mr
}

func TestCachedProviderCachesRates(t *testing.T) {
	source := &countingSource{rate: decimal.RequireFromString("0.92")}
	provider, _ := newTestCache(t, source)

	for range 3 {
		rate, err := provider.Rate(context.Background(), "USD", "EUR")
		require.NoError(t, err)
		assert.True(t, rate.Equal(decimal.RequireFromString("0.92")))
	}

	assert.Equal(t, 1, source.calls, "only the first lookup reaches the source")
}

func TestCachedProviderExpiry(t *testing.T) {
	source := &countingSource{rate: decimal.RequireFromString("0.92")}
	provider, mr := newTestCache(t, source)

	_, err := provider.Rate(context.Background(), "USD", "EUR")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = provider.Rate(context.Background(), "USD", "EUR")
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls, "expired entry refetches")
}

func TestCachedProviderFallsThroughWhenCacheDown(t *testing.T) {
	source := &countingSource{rate: decimal.RequireFromString("0.92")}
	provider, mr := newTestCache(t, source)

	mr.Close()

	rate, err := provider.Rate(context.Background(), "USD", "EUR")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.92")))
	assert.Equal(t, 1, source.calls)
}

func TestCachedProviderPropagatesSourceError(t *testing.T) {
	source := &countingSource{err: assert.AnError}
	provider, _ := newTestCache(t, source)

	_, err := provider.Rate(context.Background(), "USD", "EUR")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestCachedProviderIgnoresMalformedCacheEntry(t *testing.T) {
	source := &countingSource{rate: decimal.RequireFromString("1.10")}
	provider, mr := newTestCache(t, source)

	require.NoError(t, mr.Set("rate:GBP:EUR", "garbage"))

	rate, err := provider.Rate(context.Background(), "GBP", "EUR")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("1.10")))
	assert.Equal(t, 1, source.calls)
}
