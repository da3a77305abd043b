package postgres

import (
	"context"
	"factcrawler/pkg/domain"
	"fmt"
)

const (
	suggestionsTable = "suggestions"
)

func (p *PgSQL) StoreSuggestions(ctx context.Context,
	tenant domain.TenantID,
	host string,
	suggestions ...domain.Suggestion) error {
	if len(suggestions) == 0 {
		return nil
	}

	rows := make([]PgSuggestion, len(suggestions))
	for i := range rows {
		rows[i].FromDomain(tenant, host, suggestions[i])
	}

	if _, err := p.Builder.Insert(suggestionsTable).
		Rows(rows).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store suggestions into pg: %w", err)
	}

	return nil
}
