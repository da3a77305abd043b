package storage

import (
	"context"
	"factcrawler/pkg/domain"
)

// SuggestionStorage persists enrichment suggestions.
type SuggestionStorage interface {
	// StoreSuggestions inserts suggestions found for host.
	StoreSuggestions(ctx context.Context, tenant domain.TenantID, host string, suggestions ...domain.Suggestion) error
}
