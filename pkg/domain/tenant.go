package domain

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// TenantID identifies the workspace a crawl or enrichment belongs to.
// It wraps uuid.UUID to provide type safety at the domain layer.
type TenantID uuid.UUID

// IsZero reports whether the tenant is unset.
func (t TenantID) IsZero() bool { return uuid.UUID(t) == uuid.Nil }

func (t TenantID) String() string { return uuid.UUID(t).String() }

// ParseTenantID parses the canonical text form of a tenant ID.
func ParseTenantID(s string) (TenantID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return TenantID{}, fmt.Errorf("invalid tenant id: %w", err)
	}

	return TenantID(id), nil
}

func (t TenantID) MarshalText() ([]byte, error) {
	return uuid.UUID(t).MarshalText()
}

func (t *TenantID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(t).UnmarshalText(b)
}

type tenantKey struct{}

// WithTenant returns a copy of ctx carrying tenant.
func WithTenant(ctx context.Context, tenant TenantID) context.Context {
	return context.WithValue(ctx, tenantKey{}, tenant)
}

// TenantFromContext returns the tenant stored by WithTenant.
func TenantFromContext(ctx context.Context) (TenantID, bool) {
	t, ok := ctx.Value(tenantKey{}).(TenantID)

	return t, ok && !t.IsZero()
}
