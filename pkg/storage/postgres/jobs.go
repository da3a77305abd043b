package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// jobInserter lazily builds an insert-only River client. The client does not
// work jobs, so it needs neither queues nor workers.
type jobInserter struct {
	db *sql.DB

	once   sync.Once
	client *river.Client[*sql.Tx]
	err    error
}

func (j *jobInserter) get() (*river.Client[*sql.Tx], error) {
	j.once.Do(func() {
		j.client, j.err = river.NewClient(riverdatabasesql.New(j.db), &river.Config{})
		if j.err != nil {
			j.err = fmt.Errorf("could not create river queue client: %w", j.err)
		}
	})

	return j.client, j.err
}

// AddJob enqueues a River job. Inside a transaction the job is inserted with
// InsertTx and only becomes visible on commit. It reports false when River
// skipped the insert because a unique job with the same key exists.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	jobs := p.jobs
	if jobs == nil {
		db, _ := p.DB.(*sql.DB)
		jobs = &jobInserter{db: db}
	}
	client, err := jobs.get()
	if err != nil {
		return false, err
	}

	var res *rivertype.JobInsertResult
	if tx, ok := p.DB.(*sql.Tx); ok {
		res, err = client.InsertTx(ctx, tx, args, opts)
	} else {
		res, err = client.Insert(ctx, args, opts)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
