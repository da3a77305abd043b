// Package rediscache implements storage.ResultCache on top of redis.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"factcrawler/pkg/domain"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// ErrEmptyAddress is returned by New when no redis address is configured.
var ErrEmptyAddress = errors.New("redis address is required")

// Options configures the redis connection and entry lifetime.
type Options struct {
	Addr     string
	Password string
	DB       int
	// TTL is how long a cached crawl result stays valid; zero keeps it forever
	TTL time.Duration
}

// Cache stores crawl results as JSON under crawl:<tenant>:<domain>.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to redis and verifies the connection with a ping.
func New(ctx context.Context, options Options) (*Cache, error) {
	if options.Addr == "" {
		return nil, ErrEmptyAddress
	}

	client := redis.NewClient(&redis.Options{
		Addr:     options.Addr,
		Password: options.Password,
		DB:       options.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return NewWithClient(client, options.TTL), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func key(tenant domain.TenantID, host string) string {
	return "crawl:" + tenant.String() + ":" + host
}

// CachedCrawlResult returns the cached result of host, or nil on a miss.
func (c *Cache) CachedCrawlResult(ctx context.Context,
	tenant domain.TenantID,
	host string) (*domain.CrawlResult, error) {
	b, err := c.client.Get(ctx, key(tenant, host)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not get crawl result from redis: %w", err)
	}

	var result domain.CrawlResult
	if err := json.Unmarshal(b, &result); err != nil {
		return nil, fmt.Errorf("could not unmarshal cached crawl result: %w", err)
	}

	return &result, nil
}

// CacheCrawlResult stores result under its domain, replacing any earlier entry.
func (c *Cache) CacheCrawlResult(ctx context.Context, tenant domain.TenantID, result domain.CrawlResult) error {
	b, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal crawl result: %w", err)
	}

	if err := c.client.Set(ctx, key(tenant, result.Domain), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("could not set crawl result in redis: %w", err)
	}

	return nil
}

// Close closes the underlying client.
func (c *Cache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("could not close redis client: %w", err)
	}

	return nil
}
