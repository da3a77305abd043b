package worker

import (
	"context"
	"factcrawler/internal/crawl"
	"factcrawler/pkg/domain"
	"factcrawler/pkg/logger"
	"factcrawler/pkg/serrors"
	"factcrawler/pkg/storage"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// CrawlDeps are the collaborators of a CrawlWorker. Brands and Cache may be nil.
type CrawlDeps struct {
	Crawler crawl.SiteCrawler
	Brands  crawl.BrandProvider
	Results storage.CrawlResultStorage
	Cache   storage.ResultCache

	// MaxPages is the crawler's default page budget, used to size job timeouts.
	MaxPages int
	// FetchTimeout bounds one page fetch.
	FetchTimeout time.Duration
}

// CrawlWorker is a River worker that crawls one site per job and stores its result.
// A site whose homepage cannot be fetched gets its degraded result stored and the
// job is cancelled rather than retried.
type CrawlWorker struct {
	river.WorkerDefaults[CrawlJobArgs]

	deps CrawlDeps
}

func NewCrawlWorker(deps CrawlDeps) *CrawlWorker {
	return &CrawlWorker{deps: deps}
}

// Timeout gives every page of the job's budget, plus the homepage, a full fetch
// timeout. Zero falls back to the client default.
func (w *CrawlWorker) Timeout(job *river.Job[CrawlJobArgs]) time.Duration {
	if w.deps.FetchTimeout <= 0 {
		return 0
	}
	pages := job.Args.MaxPages
	if pages <= 0 {
		pages = w.deps.MaxPages
	}

	return w.deps.FetchTimeout * time.Duration(pages+1)
}

// Work executes a single crawl job.
func (w *CrawlWorker) Work(ctx context.Context, job *river.Job[CrawlJobArgs]) error {
	ctx = domain.WithTenant(ctx, job.Args.TenantID)
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("domain", job.Args.Domain))

	brands := crawl.LoadDictionary(ctx, w.deps.Brands)
	result := w.deps.Crawler.Crawl(ctx, job.Args.Site(), job.Args.MaxPages, brands)

	if err := w.deps.Results.StoreCrawlResults(ctx, job.Args.TenantID, result); err != nil {
		logger.Error(ctx, "could not store crawl result", zap.Error(err))

		return fmt.Errorf("could not store crawl result: %w", err)
	}

	if w.deps.Cache != nil {
		if err := w.deps.Cache.CacheCrawlResult(ctx, job.Args.TenantID, result); err != nil {
			logger.Warn(ctx, "could not cache crawl result", zap.Error(err))
		}
	}

	if result.Status == domain.CrawlStatusFailed {
		logger.Warn(ctx, "site crawl failed", zap.String("reason", result.Error))

		return river.JobCancel(serrors.With(serrors.ErrHomepageUnreachable, "%s: %s", job.Args.Domain, result.Error)) //nolint: wrapcheck,lll
	}

	logger.Info(ctx, "site crawled successfully",
		zap.Int("pagesAnalyzed", result.PagesAnalyzed),
		zap.Int("emails", len(result.Emails)),
		zap.Int("phones", len(result.Phones)))

	return nil
}
