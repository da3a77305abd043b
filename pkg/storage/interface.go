// Package storage declares what the crawl service persists: finished crawl
// results, enrichment suggestions, tenant brand dictionaries and queued crawl
// jobs. pkg/storage/postgres is the durable backend and pkg/storage/rediscache
// keeps recent results in front of it.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"errors"
	"factcrawler/pkg/domain"
)

var (
	// ErrAlreadyInTx is returned when a transaction is begun from a handle that is already transactional.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback on a non-transactional handle.
	ErrNotInTx = errors.New("not in tx")
)

// AllStorage is everything a handle can persist, inside or outside a transaction.
type AllStorage interface {
	CrawlResultStorage
	SuggestionStorage
	BrandStorage
	JobStorage
}

// TxStorage is a transactional handle. It must not be used after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root handle owned by the process.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error

	// Begin starts a transaction. Transactions do not nest.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction that is committed when cb returns nil and
	// rolled back otherwise. Enqueueing the crawl jobs of one request uses it so
	// a request either queues all of its sites or none.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}

// ResultCache keeps recent crawl results close to the API so repeated lookups
// of a domain do not hit the database.
type ResultCache interface {
	// CachedCrawlResult returns the cached result, or nil on a miss.
	CachedCrawlResult(ctx context.Context, tenant domain.TenantID, host string) (*domain.CrawlResult, error)
	// CacheCrawlResult stores result under its domain.
	CacheCrawlResult(ctx context.Context, tenant domain.TenantID, result domain.CrawlResult) error
}
