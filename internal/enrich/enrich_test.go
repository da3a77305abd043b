package enrich_test

import (
	"context"
	"errors"
	mockcrawl "factcrawler/internal/crawl/mock"
	"factcrawler/internal/enrich"
	"factcrawler/internal/extract"
	"factcrawler/pkg/domain"
	"factcrawler/pkg/search"
	mocksearch "factcrawler/pkg/search/mock"
	"factcrawler/pkg/serrors"
	mockstorage "factcrawler/pkg/storage/mock"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func acmeResult() domain.CrawlResult {
	return domain.CrawlResult{
		Domain:        "acme.de",
		Emails:        []string{"info@acme.de", "sales@partner.com", "known@acme.de"},
		Phones:        []string{"+49301111111", "+49301234567", "+49309999999"},
		PagesAnalyzed: 2,
		ContactFound:  true,
		Country:       &domain.CountrySignal{ISO2: "DE", Tier: domain.TierHigh, Score: 0.95, Source: domain.CountrySourceAddress},
		Socials:       map[string]string{"linkedin": "https://linkedin.com/company/acme"},
		Pages: []domain.PageTrace{
			{URL: "https://acme.de", PageType: "OTHER", Bytes: 1200},
			{URL: "https://acme.de/kontakt", PageType: "CONTACT", Bytes: 800},
		},
		Status: domain.CrawlStatusCompleted,
	}
}

type flat struct {
	Key        string
	Value      string
	Confidence float64
}

func flatten(suggestions []domain.Suggestion) []flat {
	out := make([]flat, len(suggestions))
	for i, s := range suggestions {
		out[i] = flat{Key: s.Key(), Value: s.Value, Confidence: s.Confidence}
	}

	return out
}

func TestEnrichRejectsEmptyRequest(t *testing.T) {
	svc := enrich.New(enrich.Deps{Crawler: mockcrawl.NewMockSiteCrawler(gomock.NewController(t))})

	_, err := svc.Enrich(context.Background(), enrich.Request{Name: "  "})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestEnrichExplicitDomain(t *testing.T) {
	ctrl := gomock.NewController(t)
	crawler := mockcrawl.NewMockSiteCrawler(ctrl)
	crawler.EXPECT().
		Crawl(gomock.Any(), domain.Site{Homepage: "https://acme.de", Domain: "acme.de"}, 5, gomock.Nil()).
		Return(acmeResult())

	svc := enrich.New(enrich.Deps{Crawler: crawler, MaxPages: 5})
	resp, err := svc.Enrich(context.Background(), enrich.Request{
		Domain: "acme.de",
		Email:  "Known@acme.de",
		Phone:  "030 1111111",
	})
	require.NoError(t, err)

	require.Equal(t, []flat{
		{Key: "website", Value: "https://acme.de", Confidence: 1},
		{Key: "email", Value: "info@acme.de", Confidence: 0.9},
		{Key: "email", Value: "sales@partner.com", Confidence: 0.6},
		{Key: "phone", Value: "+49301234567", Confidence: 0.9},
		{Key: "phone", Value: "+49309999999", Confidence: 0.7},
		{Key: "country", Value: "DE", Confidence: 0.95},
		{Key: "social.linkedin", Value: "https://linkedin.com/company/acme", Confidence: 0.8},
	}, flatten(resp.Suggestions))

	require.Equal(t, enrich.StageExplicitDomain, resp.Trace.Stage)
	require.Equal(t, "https://acme.de", resp.Trace.Homepage)
	require.Equal(t, []enrich.Attempt{{Stage: enrich.StageExplicitDomain, Homepage: "https://acme.de"}}, resp.Trace.Attempts)
	require.Len(t, resp.Trace.Pages, 2)
	require.Equal(t, 3, resp.Trace.Emails)
	require.Equal(t, 3, resp.Trace.Phones)
	require.Equal(t, 1, resp.Trace.Socials)
	require.Equal(t, "DE", resp.Trace.Country)
}

func TestEnrichFallsThroughStages(t *testing.T) {
	ctrl := gomock.NewController(t)
	crawler := mockcrawl.NewMockSiteCrawler(ctrl)
	searcher := mocksearch.NewMockSearcher(ctrl)

	failed := domain.EmptyCrawlResult("down.example", "HOMEPAGE_UNREACHABLE")
	failed.Pages = []domain.PageTrace{{URL: "https://down.example", Error: "FETCH_TIMEOUT"}}
	gomock.InOrder(
		crawler.EXPECT().
			Crawl(gomock.Any(), domain.Site{Homepage: "https://down.example", Domain: "down.example"}, 0, gomock.Nil()).
			Return(failed),
		searcher.EXPECT().
			Homepages(gomock.Any(), search.Query{Kind: search.KindName, Value: "Acme GmbH"}).
			Return([]string{"https://down.example/", "https://www.acme.de/"}, nil),
		crawler.EXPECT().
			Crawl(gomock.Any(), domain.Site{Homepage: "https://www.acme.de", Domain: "acme.de"}, 0, gomock.Nil()).
			Return(acmeResult()),
	)

	svc := enrich.New(enrich.Deps{Crawler: crawler, Searcher: searcher})
	resp, err := svc.Enrich(context.Background(), enrich.Request{
		Domain: "down.example",
		Name:   "Acme GmbH",
		Email:  "jane@gmail.com",
	})
	require.NoError(t, err)

	require.Equal(t, enrich.StageNameSearch, resp.Trace.Stage)
	require.Equal(t, []enrich.Attempt{
		{Stage: enrich.StageExplicitDomain, Homepage: "https://down.example", Error: "HOMEPAGE_UNREACHABLE"},
		{Stage: enrich.StageNameSearch, Homepage: "https://www.acme.de"},
	}, resp.Trace.Attempts)
	require.Len(t, resp.Trace.Pages, 3)
	require.Equal(t, 0.6, resp.Suggestions[0].Confidence)
	require.Equal(t, string(enrich.StageNameSearch), resp.Suggestions[0].Source)
}

func TestEnrichUnresolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	searcher := mocksearch.NewMockSearcher(ctrl)
	searcher.EXPECT().
		Homepages(gomock.Any(), search.Query{Kind: search.KindName, Value: "Nobody"}).
		Return(nil, errors.New("quota exceeded"))

	svc := enrich.New(enrich.Deps{Crawler: mockcrawl.NewMockSiteCrawler(ctrl), Searcher: searcher})
	resp, err := svc.Enrich(context.Background(), enrich.Request{Name: "Nobody"})
	require.NoError(t, err)

	require.Empty(t, resp.Suggestions)
	require.Empty(t, resp.Trace.Stage)
	require.Equal(t, []enrich.Attempt{{Stage: enrich.StageNameSearch, Error: "SEARCH_FAILED"}}, resp.Trace.Attempts)
}

func TestEnrichWithoutSearcherSkipsSearchStages(t *testing.T) {
	svc := enrich.New(enrich.Deps{Crawler: mockcrawl.NewMockSiteCrawler(gomock.NewController(t))})

	resp, err := svc.Enrich(context.Background(), enrich.Request{Name: "Acme", Phone: "+49 30 1234567"})
	require.NoError(t, err)
	require.Empty(t, resp.Suggestions)
	require.Empty(t, resp.Trace.Attempts)
}

func TestEnrichEmailDomainStage(t *testing.T) {
	ctrl := gomock.NewController(t)
	crawler := mockcrawl.NewMockSiteCrawler(ctrl)
	crawler.EXPECT().
		Crawl(gomock.Any(), domain.Site{Homepage: "https://acme.de", Domain: "acme.de"}, 0, gomock.Nil()).
		Return(acmeResult())

	svc := enrich.New(enrich.Deps{Crawler: crawler})
	resp, err := svc.Enrich(context.Background(), enrich.Request{Email: "jane@mail.acme.de"})
	require.NoError(t, err)

	require.Equal(t, enrich.StageEmailDomain, resp.Trace.Stage)
	require.Equal(t, 0.8, resp.Suggestions[0].Confidence)
}

func TestEnrichStoresSuggestionsForTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	crawler := mockcrawl.NewMockSiteCrawler(ctrl)
	brands := mockcrawl.NewMockBrandProvider(ctrl)
	store := mockstorage.NewMockStorage(ctrl)
	tenant := domain.TenantID(uuid.New())

	brands.EXPECT().TenantBrands(gomock.Any(), tenant).Return([]string{"Acme"}, nil)
	crawler.EXPECT().
		Crawl(gomock.Any(), gomock.Any(), 0, gomock.Not(gomock.Nil())).
		DoAndReturn(func(_ context.Context, _ domain.Site, _ int, dict *extract.Dictionary) domain.CrawlResult {
			require.Equal(t, 1, dict.Len())

			return acmeResult()
		})

	var stored []domain.Suggestion
	store.EXPECT().
		StoreSuggestions(gomock.Any(), tenant, "acme.de", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.TenantID, _ string, s ...domain.Suggestion) error {
			stored = s

			return nil
		})

	svc := enrich.New(enrich.Deps{Crawler: crawler, Brands: brands, Storage: store})
	resp, err := svc.Enrich(domain.WithTenant(context.Background(), tenant), enrich.Request{Domain: "acme.de"})
	require.NoError(t, err)
	require.Equal(t, resp.Suggestions, stored)
}

func TestEnrichStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	crawler := mockcrawl.NewMockSiteCrawler(ctrl)
	store := mockstorage.NewMockStorage(ctrl)
	tenant := domain.TenantID(uuid.New())

	crawler.EXPECT().Crawl(gomock.Any(), gomock.Any(), 0, gomock.Nil()).Return(acmeResult())
	store.EXPECT().StoreSuggestions(gomock.Any(), tenant, "acme.de", gomock.Any()).Return(errors.New("db down"))

	svc := enrich.New(enrich.Deps{Crawler: crawler, Storage: store})
	_, err := svc.Enrich(domain.WithTenant(context.Background(), tenant), enrich.Request{Domain: "acme.de"})
	require.ErrorContains(t, err, "could not store suggestions")
}

func TestEmailDomain(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"jane@acme.de", "acme.de"},
		{"jane@mail.acme.co.uk", "acme.co.uk"},
		{"Jane@ACME.DE", "acme.de"},
		{"jane@gmail.com", ""},
		{"jane@yahoo.co.uk", ""},
		{"jane@outlook.de", ""},
		{"jane@", ""},
		{"@acme.de", ""},
		{"no-at-sign", ""},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			require.Equal(t, tt.want, enrich.EmailDomain(tt.email))
		})
	}
}
