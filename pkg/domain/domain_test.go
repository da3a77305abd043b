package domain_test

import (
	"context"
	"encoding/json"
	"factcrawler/pkg/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTenantContext(t *testing.T) {
	_, ok := domain.TenantFromContext(context.Background())
	require.False(t, ok)

	_, ok = domain.TenantFromContext(domain.WithTenant(context.Background(), domain.TenantID(uuid.Nil)))
	require.False(t, ok)

	id := domain.TenantID(uuid.New())
	got, ok := domain.TenantFromContext(domain.WithTenant(context.Background(), id))
	require.True(t, ok)
	require.Equal(t, id, got)
	require.Equal(t, uuid.UUID(id).String(), got.String())
}

func TestTenantIDText(t *testing.T) {
	id := domain.TenantID(uuid.New())

	b, err := json.Marshal(map[string]domain.TenantID{"tenant": id})
	require.NoError(t, err)
	require.JSONEq(t, `{"tenant":"`+id.String()+`"}`, string(b))

	var back map[string]domain.TenantID
	require.NoError(t, json.Unmarshal(b, &back))
	require.Equal(t, id, back["tenant"])

	parsed, err := domain.ParseTenantID(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	_, err = domain.ParseTenantID("tenant-1")
	require.ErrorContains(t, err, "invalid tenant id")
}

func TestCountryTierText(t *testing.T) {
	for _, tier := range []domain.CountryTier{domain.TierNone, domain.TierLLM, domain.TierWeak, domain.TierHigh} {
		b, err := tier.MarshalText()
		require.NoError(t, err)

		var back domain.CountryTier
		require.NoError(t, back.UnmarshalText(b))
		require.Equal(t, tier, back)
	}

	tier := domain.TierHigh
	require.NoError(t, tier.UnmarshalText([]byte("MEDIUM")))
	require.Equal(t, domain.TierNone, tier)
}

func TestEmptyCrawlResult(t *testing.T) {
	res := domain.EmptyCrawlResult("example.com", "HOMEPAGE_UNREACHABLE")
	require.Equal(t, 0, res.PagesAnalyzed)
	require.False(t, res.ContactFound)
	require.Equal(t, domain.CrawlStatusFailed, res.Status)
	require.NotNil(t, res.Emails)
	require.NotNil(t, res.Phones)
}
