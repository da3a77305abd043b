package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage queues background crawl jobs in the same database as the crawl
// results, so enqueueing can join a surrounding transaction.
type JobStorage interface {
	// AddJob inserts one job. It reports false when the job's unique key
	// (tenant and domain of a crawl job) is already queued, running or was
	// completed within the unique period.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
