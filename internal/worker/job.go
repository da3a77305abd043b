package worker

import (
	"context"
	"factcrawler/internal/config"
	"factcrawler/pkg/domain"
	"factcrawler/pkg/storage"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// CrawlJobArgs contains the arguments for a crawl job submitted to River.
// Tenant and domain form the unique key so a site is crawled once per tenant
// within the unique period.
type CrawlJobArgs struct {
	TenantID domain.TenantID `json:"tenantId" river:"unique"`
	Domain   string          `json:"domain"   river:"unique"`
	Homepage string          `json:"homepage"`
	// MaxPages overrides the crawler's page budget when positive.
	MaxPages int `json:"maxPages,omitempty"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod defines the lookback window during which a job with the
	// same tenant and domain is considered a duplicate.
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the crawl worker.
func (args CrawlJobArgs) Kind() string { return "CrawlSiteJob" }

// Site returns the crawl target of the job.
func (args CrawlJobArgs) Site() domain.Site {
	return domain.Site{Homepage: args.Homepage, Domain: args.Domain}
}

// InsertOpts returns the River options that control how the job is enqueued.
// A site already waiting, running or crawled within the unique period is not
// queued again.
func (args CrawlJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// Options configure how crawl jobs are enqueued.
type Options struct {
	// MaxAttempts is how many times a job is tried before River discards it.
	MaxAttempts int
	// UniquePeriod is how long a finished crawl suppresses new jobs for the same site.
	UniquePeriod time.Duration
}

// NewOptions constructs an Options value from the provided application config.
// The unique period follows the result cache TTL so a queued crawl is never
// fresher than what the cache already serves.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:  cfg.Worker.MaxAttempts,
		UniquePeriod: cfg.Redis.TTL,
	}
}

// EnqueueResult lists the domains of an Enqueue call.
type EnqueueResult struct {
	// Queued are domains a new job was added for.
	Queued []string `json:"queued"`
	// Duplicates already had a job within the unique period.
	Duplicates []string `json:"duplicates"`
}

// Enqueuer adds crawl jobs for a tenant.
type Enqueuer struct {
	storage storage.Storage
	options Options
}

func NewEnqueuer(storage storage.Storage, options Options) *Enqueuer {
	return &Enqueuer{storage: storage, options: options}
}

// Enqueue adds one job per site in a single transaction.
func (e *Enqueuer) Enqueue(ctx context.Context,
	tenant domain.TenantID,
	sites []domain.Site,
	maxPages int) (EnqueueResult, error) {
	var res EnqueueResult
	if err := e.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res = EnqueueResult{Queued: []string{}, Duplicates: []string{}}
		for _, site := range sites {
			added, err := tx.AddJob(ctx, CrawlJobArgs{
				TenantID:        tenant,
				Domain:          site.Domain,
				Homepage:        site.Homepage,
				MaxPages:        maxPages,
				maxAttempts:     e.options.MaxAttempts,
				uniqueJobPeriod: e.options.UniquePeriod,
			}, nil)
			if err != nil {
				return fmt.Errorf("could not add job for %s: %w", site.Domain, err)
			}

			if added {
				res.Queued = append(res.Queued, site.Domain)
			} else {
				res.Duplicates = append(res.Duplicates, site.Domain)
			}
		}

		return nil
	}); err != nil {
		return EnqueueResult{}, fmt.Errorf("could not enqueue crawls: %w", err)
	}

	return res, nil
}
