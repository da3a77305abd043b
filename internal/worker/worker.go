package worker

import (
	"context"
	"encoding/json"
	"factcrawler/pkg/logger"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

// jobErrorLogger logs failed and panicking crawl jobs with their site. River
// still applies its retry policy afterwards.
type jobErrorLogger struct{}

var _ river.ErrorHandler = jobErrorLogger{}

func jobFields(job *rivertype.JobRow) []zap.Field {
	fields := []zap.Field{
		zap.Int64("job_id", job.ID),
		zap.String("kind", job.Kind),
		zap.Int("attempt", job.Attempt),
		zap.Int("max_attempts", job.MaxAttempts),
	}

	var args CrawlJobArgs
	if job.Kind == args.Kind() && json.Unmarshal(job.EncodedArgs, &args) == nil {
		fields = append(fields, zap.String("tenant", args.TenantID.String()), zap.String("domain", args.Domain))
	}

	return fields
}

func (jobErrorLogger) HandleError(ctx context.Context, job *rivertype.JobRow, err error) *river.ErrorHandlerResult {
	logger.Warn(ctx, "crawl job failed", append(jobFields(job), zap.Error(err))...)

	return nil
}

func (jobErrorLogger) HandlePanic(ctx context.Context,
	job *rivertype.JobRow,
	panicVal any,
	trace string) *river.ErrorHandlerResult {
	logger.Error(ctx, "crawl job panicked",
		append(jobFields(job), zap.Any("panic", panicVal), zap.String("trace", trace))...)

	return nil
}

// Start registers the crawl worker and starts a River client processing at
// most maxWorkers jobs concurrently.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	crawlWorker *CrawlWorker,
	maxWorkers int) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	if err := river.AddWorkerSafely(workers, crawlWorker); err != nil {
		return nil, fmt.Errorf("could not register crawl worker: %w", err)
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: max(maxWorkers, 1)},
		},
		Workers:      workers,
		ErrorHandler: jobErrorLogger{},
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Named("river").Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
