package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"factcrawler/pkg/domain"
	"factcrawler/pkg/storage"
	"factcrawler/pkg/storage/postgres"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func completedResult(host string) domain.CrawlResult {
	return domain.CrawlResult{
		Domain:        host,
		Emails:        []string{"info@" + host},
		Phones:        []string{},
		PagesAnalyzed: 1,
		Status:        domain.CrawlStatusCompleted,
	}
}

func TestPgSQL_BeginDoesNotNest(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)
	require.Same(t, pg.Pool, inner.Pool)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)
	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_TxVisibility(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	tenant := domain.TenantID(uuid.New())

	t.Run("commit", func(t *testing.T) {
		tx, err := pg.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.StoreCrawlResults(ctx, tenant, completedResult("acme.de")))

		// not visible outside the tx before commit
		got, err := pg.LatestCrawlResult(ctx, tenant, "acme.de")
		require.NoError(t, err)
		require.Nil(t, got)

		require.NoError(t, tx.Commit())

		got, err = pg.LatestCrawlResult(ctx, tenant, "acme.de")
		require.NoError(t, err)
		require.NotNil(t, got)
	})

	t.Run("rollback", func(t *testing.T) {
		tx, err := pg.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.StoreCrawlResults(ctx, tenant, completedResult("beta.io")))
		require.NoError(t, tx.Rollback())

		got, err := pg.LatestCrawlResult(ctx, tenant, "beta.io")
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func TestPgSQL_WithTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	tenant := domain.TenantID(uuid.New())

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		if err := s.SetTenantBrands(ctx, tenant, []string{"Acme"}); err != nil {
			return err //nolint: wrapcheck
		}

		return s.StoreCrawlResults(ctx, tenant, completedResult("acme.de")) //nolint: wrapcheck
	})
	require.NoError(t, err)

	brands, err := pg.TenantBrands(ctx, tenant)
	require.NoError(t, err)
	require.Equal(t, []string{"Acme"}, brands)

	boom := errors.New("boom")
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		require.NoError(t, s.SetTenantBrands(ctx, tenant, []string{"Other"}))

		return boom
	})
	require.ErrorIs(t, err, boom)

	brands, err = pg.TenantBrands(ctx, tenant)
	require.NoError(t, err)
	require.Equal(t, []string{"Acme"}, brands)

	require.Panics(t, func() {
		_ = pg.WithTx(ctx, func(s storage.AllStorage) error {
			require.NoError(t, s.SetTenantBrands(ctx, tenant, []string{"Panic"}))
			panic("crawl exploded")
		})
	})

	brands, err = pg.TenantBrands(ctx, tenant)
	require.NoError(t, err)
	require.Equal(t, []string{"Acme"}, brands)
}
