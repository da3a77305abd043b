package postgres

import (
	"context"
	"database/sql"
	"factcrawler/pkg/domain"
	"factcrawler/pkg/storage"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	tenantBrandsTable = "tenant_brands"
)

// TenantBrands returns the brand names of tenant ordered by position.
func (p *PgSQL) TenantBrands(ctx context.Context, tenant domain.TenantID) ([]string, error) {
	var rows []PgTenantBrand
	if err := p.Builder.From(tenantBrandsTable).
		Where(goqu.I("tenant_id").Eq(uuid.UUID(tenant))).
		Order(goqu.I("position").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch tenant brands from pg: %w", err)
	}

	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row.Name
	}

	return names, nil
}

// SetTenantBrands replaces the brand list of tenant. Blank and repeated names
// are dropped. Outside a transaction it opens one so readers never see a
// partially written list.
func (p *PgSQL) SetTenantBrands(ctx context.Context, tenant domain.TenantID, names []string) error {
	if _, ok := p.DB.(*sql.DB); ok {
		return p.WithTx(ctx, func(tx storage.AllStorage) error {
			return tx.SetTenantBrands(ctx, tenant, names)
		})
	}

	if _, err := p.Builder.Delete(tenantBrandsTable).
		Where(goqu.I("tenant_id").Eq(uuid.UUID(tenant))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not clear tenant brands in pg: %w", err)
	}

	seen := make(map[string]struct{}, len(names))
	rows := make([]PgTenantBrand, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		rows = append(rows, PgTenantBrand{
			TenantID: uuid.UUID(tenant),
			Name:     name,
			Position: len(rows),
		})
	}
	if len(rows) == 0 {
		return nil
	}

	if _, err := p.Builder.Insert(tenantBrandsTable).
		Rows(rows).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store tenant brands into pg: %w", err)
	}

	return nil
}
