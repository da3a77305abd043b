package crawl

import (
	"context"
	"factcrawler/internal/extract"
	"factcrawler/internal/links"
	"factcrawler/pkg/domain"
	"factcrawler/pkg/logger"
	"factcrawler/pkg/serrors"
	"net/url"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MaxPagesLimit is the largest per-site page budget a request may ask for.
const MaxPagesLimit = 50

// BatchRequest asks for several sites to be crawled.
type BatchRequest struct {
	Items []domain.Site `json:"items"`
	// MaxPagesPerSite overrides the default page budget when positive.
	MaxPagesPerSite int `json:"maxPagesPerSite,omitempty"`
}

// Validate checks the request and returns its sites with homepages normalized
// and domains lower-cased. Errors are ErrBadRequest.
func (r BatchRequest) Validate() ([]domain.Site, error) {
	if len(r.Items) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "items must not be empty")
	}
	if r.MaxPagesPerSite < 0 || r.MaxPagesPerSite > MaxPagesLimit {
		return nil, serrors.With(serrors.ErrBadRequest, "maxPagesPerSite must be between 0 and %d", MaxPagesLimit)
	}

	sites := make([]domain.Site, 0, len(r.Items))
	for i, item := range r.Items {
		site, err := NormalizeSite(item)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid item %d", i)
		}
		sites = append(sites, site)
	}

	return sites, nil
}

// NormalizeSite validates one site. A homepage without a scheme gets https.
// The domain is required on input; use SiteFromHomepage to derive it.
func NormalizeSite(site domain.Site) (domain.Site, error) {
	homepage := strings.TrimSpace(site.Homepage)
	if homepage == "" {
		return domain.Site{}, serrors.With(serrors.ErrBadRequest, "homepage is required")
	}
	if !strings.Contains(homepage, "://") {
		homepage = "https://" + homepage
	}

	u, err := url.Parse(homepage)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return domain.Site{}, serrors.With(serrors.ErrBadRequest, "homepage %q is not an http(s) URL", site.Homepage)
	}
	normalized, err := links.Normalize(homepage)
	if err != nil {
		return domain.Site{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid homepage")
	}

	host := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(site.Domain)), "www.")
	if host == "" {
		return domain.Site{}, serrors.With(serrors.ErrBadRequest, "domain is required")
	}

	return domain.Site{Homepage: normalized, Domain: host}, nil
}

// SiteFromHomepage normalizes homepage and derives the site's domain from it.
func SiteFromHomepage(homepage string) (domain.Site, error) {
	h := strings.TrimSpace(homepage)
	if h != "" && !strings.Contains(h, "://") {
		h = "https://" + h
	}

	return NormalizeSite(domain.Site{Homepage: h, Domain: links.Hostname(h)})
}

// Batch crawls several sites concurrently, one goroutine per site.
type Batch struct {
	crawler  SiteCrawler
	brands   BrandProvider
	maxSites int
}

// NewBatch returns a Batch accepting at most maxSites sites per call.
// brands may be nil.
func NewBatch(crawler SiteCrawler, brands BrandProvider, maxSites int) *Batch {
	return &Batch{crawler: crawler, brands: brands, maxSites: maxSites}
}

// CrawlMany crawls sites and returns their results keyed by domain. Sites past
// the per-call cap are dropped, and a domain listed twice is crawled once.
// A failing or panicking site crawl only affects its own result.
func (b *Batch) CrawlMany(ctx context.Context, sites []domain.Site, maxPagesPerSite int) map[string]domain.CrawlResult {
	if b.maxSites > 0 && len(sites) > b.maxSites {
		logger.Warn(ctx, "batch over site cap, dropping excess sites",
			zap.Int("sites", len(sites)), zap.Int("maxSites", b.maxSites))
		sites = sites[:b.maxSites]
	}

	brands := LoadDictionary(ctx, b.brands)

	results := make(map[string]domain.CrawlResult, len(sites))
	var mu sync.Mutex

	var g errgroup.Group
	if b.maxSites > 0 {
		g.SetLimit(b.maxSites)
	}

	seen := make(map[string]struct{}, len(sites))
	for _, site := range sites {
		if _, dup := seen[site.Domain]; dup {
			continue
		}
		seen[site.Domain] = struct{}{}

		g.Go(func() error {
			res := b.crawlOne(ctx, site, maxPagesPerSite, brands)

			mu.Lock()
			results[site.Domain] = res
			mu.Unlock()

			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (b *Batch) crawlOne(ctx context.Context,
	site domain.Site,
	maxPages int,
	brands *extract.Dictionary) (res domain.CrawlResult) {
	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "site crawl panicked", zap.String("domain", site.Domain), zap.Any("panic", p))
			res = domain.EmptyCrawlResult(site.Domain, serrors.ErrInternal.Error())
		}
	}()

	return b.crawler.Crawl(ctx, site, maxPages, brands)
}

// LoadDictionary builds the brand dictionary of the tenant in ctx. It returns
// nil, which matches no brands, when there is no tenant or provider, or when
// the provider fails.
func LoadDictionary(ctx context.Context, brands BrandProvider) *extract.Dictionary {
	if brands == nil {
		return nil
	}
	tenant, ok := domain.TenantFromContext(ctx)
	if !ok {
		return nil
	}

	names, err := brands.TenantBrands(ctx, tenant)
	if err != nil {
		logger.Warn(ctx, "could not load tenant brands", zap.Error(err))

		return nil
	}

	return extract.NewDictionary(names)
}
