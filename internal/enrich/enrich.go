// Package enrich resolves the homepage of a single organization record, crawls
// it and turns the crawl result into field suggestions.
package enrich

import (
	"context"
	"factcrawler/internal/crawl"
	"factcrawler/internal/extract"
	"factcrawler/pkg/domain"
	"factcrawler/pkg/logger"
	"factcrawler/pkg/search"
	"factcrawler/pkg/serrors"
	"factcrawler/pkg/storage"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// searchCandidates is how many search hits per stage are tried.
const searchCandidates = 3

// Stage names one way of finding the homepage of a record.
type Stage string

const (
	StageExplicitDomain Stage = "explicit_domain"
	StageEmailDomain    Stage = "email_domain"
	StageNameSearch     Stage = "name_search"
	StageEmailSearch    Stage = "email_search"
	StagePhoneSearch    Stage = "phone_search"
)

var stages = []Stage{
	StageExplicitDomain,
	StageEmailDomain,
	StageNameSearch,
	StageEmailSearch,
	StagePhoneSearch,
}

// Request is what is already known about an organization. At least one field must be set.
type Request struct {
	Domain string `json:"domain,omitempty"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

func (r Request) trimmed() Request {
	return Request{
		Domain: strings.TrimSpace(r.Domain),
		Name:   strings.TrimSpace(r.Name),
		Email:  strings.TrimSpace(r.Email),
		Phone:  strings.TrimSpace(r.Phone),
	}
}

// IsEmpty reports whether no field carries a value.
func (r Request) IsEmpty() bool {
	t := r.trimmed()

	return t.Domain == "" && t.Name == "" && t.Email == "" && t.Phone == ""
}

// Attempt is one homepage tried while resolving a record.
type Attempt struct {
	Stage    Stage  `json:"stage"`
	Homepage string `json:"homepage,omitempty"`
	// Error is the crawl or search failure; empty for the attempt that succeeded.
	Error string `json:"error,omitempty"`
}

// Trace describes how a response was produced.
type Trace struct {
	// Stage is the stage whose homepage was crawled successfully; empty when none was.
	Stage    Stage              `json:"stage,omitempty"`
	Homepage string             `json:"homepage,omitempty"`
	Attempts []Attempt          `json:"attempts"`
	Pages    []domain.PageTrace `json:"pages"`

	Emails  int    `json:"emails"`
	Phones  int    `json:"phones"`
	Socials int    `json:"socials"`
	Country string `json:"country,omitempty"`
}

// Response holds the suggestions of one enrichment.
type Response struct {
	Suggestions []domain.Suggestion `json:"suggestions"`
	Trace       Trace               `json:"trace"`
}

// Deps are the collaborators of a Service. Only Crawler is required.
type Deps struct {
	Crawler  crawl.SiteCrawler
	Searcher search.Searcher
	Brands   crawl.BrandProvider
	Storage  storage.SuggestionStorage
	// MaxPages is the page budget of the crawl; zero uses the crawler default.
	MaxPages int
}

// Service runs enrichments.
type Service struct {
	deps Deps
	now  func() time.Time
}

func New(deps Deps) *Service {
	return &Service{deps: deps, now: func() time.Time { return time.Now().UTC() }}
}

// Enrich walks the resolution stages in order and crawls the first homepage
// that can be reached. A request whose homepage cannot be resolved gets an
// empty suggestion list and a trace of what was tried.
func (s *Service) Enrich(ctx context.Context, req Request) (Response, error) {
	if req.IsEmpty() {
		return Response{}, serrors.With(serrors.ErrBadRequest, "at least one of domain, name, email or phone is required")
	}
	req = req.trimmed()

	resp := Response{
		Suggestions: []domain.Suggestion{},
		Trace:       Trace{Attempts: []Attempt{}, Pages: []domain.PageTrace{}},
	}
	brands := crawl.LoadDictionary(ctx, s.deps.Brands)
	tried := map[string]struct{}{}

	for _, stage := range stages {
		if ctx.Err() != nil {
			break
		}

		homepages, err := s.homepages(ctx, stage, req)
		if err != nil {
			logger.Warn(ctx, "homepage search failed", zap.String("stage", string(stage)), zap.Error(err))
			resp.Trace.Attempts = append(resp.Trace.Attempts, Attempt{Stage: stage, Error: "SEARCH_FAILED"})

			continue
		}

		for _, homepage := range homepages {
			site, err := crawl.SiteFromHomepage(homepage)
			if err != nil {
				resp.Trace.Attempts = append(resp.Trace.Attempts, Attempt{
					Stage:    stage,
					Homepage: homepage,
					Error:    "INPUT_INVALID",
				})

				continue
			}
			if _, ok := tried[site.Domain]; ok {
				continue
			}
			tried[site.Domain] = struct{}{}

			result := s.deps.Crawler.Crawl(ctx, site, s.deps.MaxPages, brands)
			resp.Trace.Pages = append(resp.Trace.Pages, result.Pages...)
			if result.Status != domain.CrawlStatusCompleted {
				resp.Trace.Attempts = append(resp.Trace.Attempts, Attempt{
					Stage:    stage,
					Homepage: site.Homepage,
					Error:    result.Error,
				})

				continue
			}

			resp.Trace.Attempts = append(resp.Trace.Attempts, Attempt{Stage: stage, Homepage: site.Homepage})
			resp.Trace.Stage = stage
			resp.Trace.Homepage = site.Homepage
			resp.Trace.Emails = len(result.Emails)
			resp.Trace.Phones = len(result.Phones)
			resp.Trace.Socials = len(result.Socials)
			if result.Country != nil {
				resp.Trace.Country = result.Country.ISO2
			}
			resp.Suggestions = s.suggest(req, stage, site, result)

			if err := s.store(ctx, site.Domain, resp.Suggestions); err != nil {
				return Response{}, err
			}

			return resp, nil
		}
	}

	logger.Info(ctx, "no homepage resolved for enrichment", zap.Int("attempts", len(resp.Trace.Attempts)))

	return resp, nil
}

func (s *Service) homepages(ctx context.Context, stage Stage, req Request) ([]string, error) {
	switch stage {
	case StageExplicitDomain:
		if req.Domain == "" {
			return nil, nil
		}

		return []string{req.Domain}, nil
	case StageEmailDomain:
		if host := EmailDomain(req.Email); host != "" {
			return []string{host}, nil
		}

		return nil, nil
	case StageNameSearch:
		return s.search(ctx, search.KindName, req.Name)
	case StageEmailSearch:
		return s.search(ctx, search.KindEmail, req.Email)
	case StagePhoneSearch:
		return s.search(ctx, search.KindPhone, req.Phone)
	}

	return nil, nil
}

func (s *Service) search(ctx context.Context, kind search.Kind, value string) ([]string, error) {
	if s.deps.Searcher == nil || value == "" {
		return nil, nil
	}

	hits, err := s.deps.Searcher.Homepages(ctx, search.Query{Kind: kind, Value: value})
	if err != nil {
		return nil, fmt.Errorf("could not search %s: %w", kind, err)
	}

	return hits[:min(len(hits), searchCandidates)], nil
}

func (s *Service) store(ctx context.Context, host string, suggestions []domain.Suggestion) error {
	if s.deps.Storage == nil || len(suggestions) == 0 {
		return nil
	}
	tenant, ok := domain.TenantFromContext(ctx)
	if !ok {
		return nil
	}

	if err := s.deps.Storage.StoreSuggestions(ctx, tenant, host, suggestions...); err != nil {
		return fmt.Errorf("could not store suggestions: %w", err)
	}

	return nil
}

// samePhone reports whether two numbers are the same line. A national number
// written with a trunk zero matches its international form.
func samePhone(a, b string) bool {
	na, okA := extract.ValidatePhone(a)
	nb, okB := extract.ValidatePhone(b)
	if !okA || !okB {
		return false
	}
	da := strings.TrimLeft(strings.TrimPrefix(na, "+"), "0")
	db := strings.TrimLeft(strings.TrimPrefix(nb, "+"), "0")
	if len(da) > len(db) {
		da, db = db, da
	}

	return len(da) >= 7 && strings.HasSuffix(db, da)
}
