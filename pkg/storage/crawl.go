package storage

import (
	"context"
	"factcrawler/pkg/domain"
)

// CrawlResultStorage persists finished crawl results. Results are append-only:
// every crawl of a domain adds a row and readers pick the latest one.
type CrawlResultStorage interface {
	// StoreCrawlResults inserts results for tenant.
	StoreCrawlResults(ctx context.Context, tenant domain.TenantID, results ...domain.CrawlResult) error
	// LatestCrawlResult returns the most recent result for host, or nil when the
	// domain was never crawled for tenant.
	LatestCrawlResult(ctx context.Context, tenant domain.TenantID, host string) (*domain.CrawlResult, error)
}
