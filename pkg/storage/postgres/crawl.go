package postgres

import (
	"context"
	"factcrawler/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	crawlResultsTable = "crawl_results"
)

// StoreCrawlResults appends results for tenant. Earlier results of the same
// domain are kept; LatestCrawlResult picks the newest by crawled_at.
func (p *PgSQL) StoreCrawlResults(ctx context.Context, tenant domain.TenantID, results ...domain.CrawlResult) error {
	if len(results) == 0 {
		return nil
	}

	rows, err := domainCrawlResultsToPg(tenant, results)
	if err != nil {
		return err
	}

	if _, err := p.Builder.Insert(crawlResultsTable).
		Rows(rows).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store crawl results into pg: %w", err)
	}

	return nil
}

// LatestCrawlResult returns the newest result of host for tenant, or nil when none exists.
func (p *PgSQL) LatestCrawlResult(ctx context.Context,
	tenant domain.TenantID,
	host string) (*domain.CrawlResult, error) {
	var row PgCrawlResult
	found, err := p.Builder.From(crawlResultsTable).
		Where(
			goqu.I("tenant_id").Eq(uuid.UUID(tenant)),
			goqu.I("domain").Eq(host),
		).
		Order(goqu.I("crawled_at").Desc(), goqu.I("created_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch latest crawl result: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
