package crawl

import (
	"context"
	"factcrawler/internal/extract"
	"factcrawler/pkg/domain"
)

//go:generate mockgen -package mockcrawl -source=interface.go -destination=mock/mockcrawl.go *

// SiteCrawler crawls a single site. It never fails: an unreachable homepage
// yields a degraded result.
type SiteCrawler interface {
	Crawl(ctx context.Context, site domain.Site, maxPages int, brands *extract.Dictionary) domain.CrawlResult
}

// BrandProvider returns the brand names configured for a tenant.
type BrandProvider interface {
	TenantBrands(ctx context.Context, tenant domain.TenantID) ([]string, error)
}
