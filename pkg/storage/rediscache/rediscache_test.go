package rediscache_test

import (
	"context"
	"factcrawler/pkg/domain"
	"factcrawler/pkg/storage/rediscache"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T, ttl time.Duration) (*rediscache.Cache, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	cache, err := rediscache.New(context.Background(), rediscache.Options{Addr: srv.Addr(), TTL: ttl})
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	return cache, srv
}

func TestNewRequiresAddress(t *testing.T) {
	_, err := rediscache.New(context.Background(), rediscache.Options{})
	require.ErrorIs(t, err, rediscache.ErrEmptyAddress)
}

func TestCache(t *testing.T) {
	cache, srv := setupCache(t, time.Hour)
	ctx := context.Background()
	tenant := domain.TenantID(uuid.New())

	got, err := cache.CachedCrawlResult(ctx, tenant, "acme.de")
	require.NoError(t, err)
	require.Nil(t, got)

	result := domain.CrawlResult{
		Domain:        "acme.de",
		Emails:        []string{"info@acme.de"},
		Phones:        []string{"+49301234567"},
		PagesAnalyzed: 2,
		ContactFound:  true,
		Status:        domain.CrawlStatusCompleted,
		CrawledAt:     time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, cache.CacheCrawlResult(ctx, tenant, result))
	require.True(t, srv.Exists("crawl:"+tenant.String()+":acme.de"))
	require.Equal(t, time.Hour, srv.TTL("crawl:"+tenant.String()+":acme.de"))

	got, err = cache.CachedCrawlResult(ctx, tenant, "acme.de")
	require.NoError(t, err)
	require.Equal(t, result, *got)

	other, err := cache.CachedCrawlResult(ctx, domain.TenantID(uuid.New()), "acme.de")
	require.NoError(t, err)
	require.Nil(t, other)

	srv.FastForward(2 * time.Hour)
	got, err = cache.CachedCrawlResult(ctx, tenant, "acme.de")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestCacheCorruptEntry(t *testing.T) {
	cache, srv := setupCache(t, 0)
	tenant := domain.TenantID(uuid.New())

	require.NoError(t, srv.Set("crawl:"+tenant.String()+":acme.de", "{not json"))

	_, err := cache.CachedCrawlResult(context.Background(), tenant, "acme.de")
	require.ErrorContains(t, err, "could not unmarshal cached crawl result")
}
