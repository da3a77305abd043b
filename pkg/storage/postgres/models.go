package postgres

import (
	"encoding/json"
	"factcrawler/pkg/domain"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PgCrawlResult struct {
	ID       uuid.UUID `db:"id"        goqu:"skipinsert"`
	TenantID uuid.UUID `db:"tenant_id"`

	Domain        string          `db:"domain"`
	Status        string          `db:"status"`
	PagesAnalyzed int             `db:"pages_analyzed"`
	ContactFound  bool            `db:"contact_found"`
	Result        json.RawMessage `db:"result"`

	CrawledAt time.Time `db:"crawled_at"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgCrawlResult) ToDomain() (*domain.CrawlResult, error) {
	var result domain.CrawlResult
	if err := json.Unmarshal(p.Result, &result); err != nil {
		return nil, fmt.Errorf("could not unmarshal crawl result: %w", err)
	}
	result.Domain = p.Domain
	result.Status = domain.CrawlStatus(p.Status)
	result.CrawledAt = p.CrawledAt

	return &result, nil
}

func (p *PgCrawlResult) FromDomain(tenant domain.TenantID, result domain.CrawlResult) error {
	b, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal crawl result: %w", err)
	}

	crawledAt := result.CrawledAt
	if crawledAt.IsZero() {
		crawledAt = time.Now().UTC()
	}

	*p = PgCrawlResult{
		TenantID:      uuid.UUID(tenant),
		Domain:        result.Domain,
		Status:        string(result.Status),
		PagesAnalyzed: result.PagesAnalyzed,
		ContactFound:  result.ContactFound,
		Result:        b,
		CrawledAt:     crawledAt,
	}

	return nil
}

type PgSuggestion struct {
	ID       uuid.UUID `db:"id"        goqu:"skipinsert"`
	TenantID uuid.UUID `db:"tenant_id"`
	Domain   string    `db:"domain"`

	Field      string  `db:"field"`
	Slot       string  `db:"slot"`
	Network    string  `db:"network"`
	Value      string  `db:"value"`
	Confidence float64 `db:"confidence"`
	Source     string  `db:"source"`

	CreatedAt time.Time `db:"created_at"`
}

func (p *PgSuggestion) ToDomain() domain.Suggestion {
	return domain.Suggestion{
		Field:      domain.SuggestionField(p.Field),
		Network:    p.Network,
		Value:      p.Value,
		Confidence: p.Confidence,
		Source:     p.Source,
		CreatedAt:  p.CreatedAt,
	}
}

func (p *PgSuggestion) FromDomain(tenant domain.TenantID, host string, s domain.Suggestion) {
	createdAt := s.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	*p = PgSuggestion{
		TenantID:   uuid.UUID(tenant),
		Domain:     host,
		Field:      string(s.Field),
		Slot:       s.Key(),
		Network:    s.Network,
		Value:      s.Value,
		Confidence: s.Confidence,
		Source:     s.Source,
		CreatedAt:  createdAt,
	}
}

type PgTenantBrand struct {
	TenantID uuid.UUID `db:"tenant_id"`
	Name     string    `db:"name"`
	Position int       `db:"position"`
}

func domainCrawlResultsToPg(tenant domain.TenantID, results []domain.CrawlResult) ([]PgCrawlResult, error) {
	out := make([]PgCrawlResult, len(results))
	for i := range out {
		if err := out[i].FromDomain(tenant, results[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}
