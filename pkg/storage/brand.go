package storage

import (
	"context"
	"factcrawler/pkg/domain"
)

// BrandStorage holds the brand dictionary of each tenant.
type BrandStorage interface {
	// TenantBrands returns the brand names of tenant in the order they were set.
	TenantBrands(ctx context.Context, tenant domain.TenantID) ([]string, error)
	// SetTenantBrands replaces the brand names of tenant.
	SetTenantBrands(ctx context.Context, tenant domain.TenantID, names []string) error
}
