package postgres_test

import (
	"context"
	"factcrawler/pkg/domain"
	"factcrawler/pkg/storage"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_TenantBrands(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	tenant := domain.TenantID(uuid.New())

	names, err := pgSQL.TenantBrands(ctx, tenant)
	require.NoError(t, err)
	require.Empty(t, names)

	require.NoError(t, pgSQL.SetTenantBrands(ctx, tenant, []string{"Zeta", " Acme ", "", "Zeta"}))
	names, err = pgSQL.TenantBrands(ctx, tenant)
	require.NoError(t, err)
	require.Equal(t, []string{"Zeta", "Acme"}, names)

	err = pgSQL.WithTx(ctx, func(s storage.AllStorage) error {
		return s.SetTenantBrands(ctx, tenant, []string{"Nova"})
	})
	require.NoError(t, err)
	names, err = pgSQL.TenantBrands(ctx, tenant)
	require.NoError(t, err)
	require.Equal(t, []string{"Nova"}, names)

	require.NoError(t, pgSQL.SetTenantBrands(ctx, tenant, nil))
	names, err = pgSQL.TenantBrands(ctx, tenant)
	require.NoError(t, err)
	require.Empty(t, names)
}
