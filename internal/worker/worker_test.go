package worker_test

import (
	"context"
	"errors"
	mockcrawl "factcrawler/internal/crawl/mock"
	"factcrawler/internal/worker"
	"factcrawler/pkg/domain"
	"factcrawler/pkg/logger"
	"factcrawler/pkg/storage"
	mockstorage "factcrawler/pkg/storage/mock"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, args worker.CrawlJobArgs) *river.Job[worker.CrawlJobArgs] {
	return &river.Job[worker.CrawlJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   args,
	}
}

func completed(host string) domain.CrawlResult {
	return domain.CrawlResult{
		Domain:        host,
		Emails:        []string{"info@" + host},
		Phones:        []string{},
		PagesAnalyzed: 1,
		Status:        domain.CrawlStatusCompleted,
	}
}

func TestCrawlWorker_Work_StoresAndCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	crawler := mockcrawl.NewMockSiteCrawler(ctrl)
	results := mockstorage.NewMockStorage(ctrl)
	cache := mockstorage.NewMockResultCache(ctrl)
	tenant := domain.TenantID(uuid.New())
	res := completed("acme.de")

	crawler.EXPECT().
		Crawl(gomock.Any(), domain.Site{Homepage: "https://acme.de", Domain: "acme.de"}, 3, gomock.Nil()).
		DoAndReturn(func(ctx context.Context, _ domain.Site, _ int, _ any) domain.CrawlResult {
			got, ok := domain.TenantFromContext(ctx)
			require.True(t, ok)
			require.Equal(t, tenant, got)

			return res
		})
	results.EXPECT().StoreCrawlResults(gomock.Any(), tenant, res).Return(nil)
	cache.EXPECT().CacheCrawlResult(gomock.Any(), tenant, res).Return(errors.New("redis down"))

	w := worker.NewCrawlWorker(worker.CrawlDeps{Crawler: crawler, Results: results, Cache: cache})
	err := w.Work(context.Background(), makeJob(1, worker.CrawlJobArgs{
		TenantID: tenant,
		Domain:   "acme.de",
		Homepage: "https://acme.de",
		MaxPages: 3,
	}))
	require.NoError(t, err)
}

func TestCrawlWorker_Work_HomepageFailureCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	crawler := mockcrawl.NewMockSiteCrawler(ctrl)
	results := mockstorage.NewMockStorage(ctrl)
	failed := domain.EmptyCrawlResult("down.example", "HOMEPAGE_UNREACHABLE")

	crawler.EXPECT().Crawl(gomock.Any(), gomock.Any(), 0, gomock.Nil()).Return(failed)
	results.EXPECT().StoreCrawlResults(gomock.Any(), gomock.Any(), failed).Return(nil)

	w := worker.NewCrawlWorker(worker.CrawlDeps{Crawler: crawler, Results: results})
	err := w.Work(context.Background(), makeJob(2, worker.CrawlJobArgs{
		TenantID: domain.TenantID(uuid.New()),
		Domain:   "down.example",
		Homepage: "https://down.example",
	}))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestCrawlWorker_Work_StorageErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	crawler := mockcrawl.NewMockSiteCrawler(ctrl)
	results := mockstorage.NewMockStorage(ctrl)

	crawler.EXPECT().Crawl(gomock.Any(), gomock.Any(), 0, gomock.Nil()).Return(completed("acme.de"))
	results.EXPECT().StoreCrawlResults(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	w := worker.NewCrawlWorker(worker.CrawlDeps{Crawler: crawler, Results: results})
	err := w.Work(context.Background(), makeJob(3, worker.CrawlJobArgs{
		TenantID: domain.TenantID(uuid.New()),
		Domain:   "acme.de",
		Homepage: "https://acme.de",
	}))
	require.ErrorContains(t, err, "could not store crawl result")
	var cancelErr *river.JobCancelError
	require.False(t, errors.As(err, &cancelErr))
}

func TestCrawlWorker_Work_LoadsTenantBrands(t *testing.T) {
	ctrl := gomock.NewController(t)
	crawler := mockcrawl.NewMockSiteCrawler(ctrl)
	brands := mockcrawl.NewMockBrandProvider(ctrl)
	results := mockstorage.NewMockStorage(ctrl)
	tenant := domain.TenantID(uuid.New())

	brands.EXPECT().TenantBrands(gomock.Any(), tenant).Return([]string{"Acme"}, nil)
	crawler.EXPECT().Crawl(gomock.Any(), gomock.Any(), 0, gomock.Not(gomock.Nil())).Return(completed("acme.de"))
	results.EXPECT().StoreCrawlResults(gomock.Any(), tenant, gomock.Any()).Return(nil)

	w := worker.NewCrawlWorker(worker.CrawlDeps{Crawler: crawler, Brands: brands, Results: results})
	require.NoError(t, w.Work(context.Background(), makeJob(4, worker.CrawlJobArgs{
		TenantID: tenant,
		Domain:   "acme.de",
		Homepage: "https://acme.de",
	})))
}

func TestCrawlWorker_Timeout(t *testing.T) {
	w := worker.NewCrawlWorker(worker.CrawlDeps{MaxPages: 7, FetchTimeout: 10 * time.Second})
	require.Equal(t, 80*time.Second, w.Timeout(makeJob(1, worker.CrawlJobArgs{})))
	require.Equal(t, 30*time.Second, w.Timeout(makeJob(1, worker.CrawlJobArgs{MaxPages: 2})))

	require.Zero(t, worker.NewCrawlWorker(worker.CrawlDeps{}).Timeout(makeJob(1, worker.CrawlJobArgs{})))
}

func TestEnqueuer_Enqueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)
	tenant := domain.TenantID(uuid.New())

	store.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cb func(storage.AllStorage) error) error {
			return cb(tx)
		})

	var inserted []worker.CrawlJobArgs
	tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			job, ok := args.(worker.CrawlJobArgs)
			require.True(t, ok)
			inserted = append(inserted, job)

			return job.Domain == "acme.de", nil
		}).Times(2)

	e := worker.NewEnqueuer(store, worker.Options{MaxAttempts: 3, UniquePeriod: time.Hour})
	res, err := e.Enqueue(context.Background(), tenant, []domain.Site{
		{Homepage: "https://acme.de", Domain: "acme.de"},
		{Homepage: "https://beta.io", Domain: "beta.io"},
	}, 4)
	require.NoError(t, err)
	require.Equal(t, worker.EnqueueResult{Queued: []string{"acme.de"}, Duplicates: []string{"beta.io"}}, res)

	require.Len(t, inserted, 2)
	require.Equal(t, tenant, inserted[0].TenantID)
	require.Equal(t, 4, inserted[0].MaxPages)
	require.Equal(t, "CrawlSiteJob", inserted[0].Kind())
	opts := inserted[0].InsertOpts()
	require.Equal(t, 3, opts.MaxAttempts)
	require.True(t, opts.UniqueOpts.ByArgs)
	require.Equal(t, time.Hour, opts.UniqueOpts.ByPeriod)
}

func TestEnqueuer_EnqueueFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)

	store.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cb func(storage.AllStorage) error) error {
			return cb(tx)
		})
	tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("boom"))

	e := worker.NewEnqueuer(store, worker.Options{})
	_, err := e.Enqueue(context.Background(), domain.TenantID(uuid.New()),
		[]domain.Site{{Homepage: "https://acme.de", Domain: "acme.de"}}, 0)
	require.ErrorContains(t, err, "could not add job for acme.de")
}
