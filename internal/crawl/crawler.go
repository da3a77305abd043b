// Package crawl runs the per-site crawl state machine and the batch
// coordinator that crawls several sites at once.
package crawl

import (
	"context"
	"errors"
	"factcrawler/internal/classify"
	"factcrawler/internal/config"
	"factcrawler/internal/country"
	"factcrawler/internal/extract"
	"factcrawler/internal/factpool"
	"factcrawler/internal/fetcher"
	"factcrawler/internal/links"
	"factcrawler/pkg/domain"
	"factcrawler/pkg/logger"
	"factcrawler/pkg/metrics"
	"factcrawler/pkg/serrors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const tracerName = "factcrawler/internal/crawl"

// ReasonOffSite is the trace reason of a page whose redirects left the site.
const ReasonOffSite = "OFF_SITE_REDIRECT"

var errOffSite = errors.New("redirected off site")

// Options bound every site crawl.
type Options struct {
	// MaxPages is the default page budget, homepage included. Failed fetches
	// count against the budget.
	MaxPages int
	// PageInterval is the minimum delay between two fetches of one site. Zero disables it.
	PageInterval time.Duration
}

// NewOptions builds crawl options from application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxPages:     cfg.Crawler.MaxPages,
		PageInterval: cfg.Crawler.PageInterval,
	}
}

// Deps are the collaborators of a Crawler. All of them are safe for
// concurrent use and shared by every site crawl.
type Deps struct {
	Fetcher    fetcher.Fetcher
	Extractor  *extract.Extractor
	Classifier classify.Classifier
	Country    *country.Engine
	// Metrics may be nil.
	Metrics *metrics.Crawl
}

// Crawler implements SiteCrawler.
type Crawler struct {
	deps   Deps
	opts   Options
	tracer trace.Tracer
}

var _ SiteCrawler = (*Crawler)(nil)

// New returns a Crawler.
func New(deps Deps, opts Options) *Crawler {
	if deps.Classifier == nil {
		deps.Classifier = classify.Heuristic{}
	}
	if deps.Country == nil {
		deps.Country = country.New(nil)
	}

	return &Crawler{deps: deps, opts: opts, tracer: otel.Tracer(tracerName)}
}

// siteCrawl is the state of one running crawl. It is owned by a single goroutine.
type siteCrawl struct {
	*Crawler

	site    domain.Site
	brands  *extract.Dictionary
	limiter *rate.Limiter
	// origin is the final homepage URL; later pages must stay on its host.
	origin string

	pool    factpool.Pool
	visited map[string]struct{}
	// queue holds ranked contact and about candidates; overflow every other
	// same-site link discovered so far, both in discovery order.
	queue    []string
	overflow []string
	traces   []domain.PageTrace
	fetches  int
}

// Crawl fetches the homepage, then ranked candidates, then any other
// discovered links, one page at a time, until the pool is sufficient or the
// budget of maxPages fetches is spent. maxPages <= 0 uses the default budget.
func (c *Crawler) Crawl(ctx context.Context, site domain.Site, maxPages int, brands *extract.Dictionary) domain.CrawlResult {
	start := time.Now()
	if maxPages <= 0 {
		maxPages = c.opts.MaxPages
	}
	if site.Domain == "" {
		site.Domain = links.Hostname(site.Homepage)
	}

	ctx = logger.WithFields(ctx, zap.String("domain", site.Domain))
	ctx, span := c.tracer.Start(ctx, "crawl.site", trace.WithAttributes(
		attribute.String("domain", site.Domain),
		attribute.Int("max_pages", maxPages),
	))
	defer span.End()

	s := &siteCrawl{
		Crawler: c,
		site:    site,
		brands:  brands,
		pool:    factpool.New(site.Domain),
		visited: map[string]struct{}{},
	}
	if c.opts.PageInterval > 0 {
		s.limiter = rate.NewLimiter(rate.Every(c.opts.PageInterval), 1)
	}

	res, earlyStop := s.run(ctx, maxPages)
	res.Pages = s.traces

	span.SetAttributes(attribute.Int("pages_analyzed", res.PagesAnalyzed), attribute.Bool("early_stop", earlyStop))
	if res.Status == domain.CrawlStatusFailed {
		span.SetStatus(codes.Error, res.Error)
	}
	c.deps.Metrics.SiteCrawled(ctx, string(res.Status), time.Since(start), earlyStop)
	logger.Info(ctx, "site crawled",
		zap.String("status", string(res.Status)),
		zap.Int("pagesAnalyzed", res.PagesAnalyzed),
		zap.Int("fetches", s.fetches),
		zap.Duration("took", time.Since(start)))

	return res
}

// run drives the state machine. It reports whether the crawl stopped because
// the pool became sufficient.
func (s *siteCrawl) run(ctx context.Context, maxPages int) (domain.CrawlResult, bool) {
	// START
	homepage, err := s.fetch(ctx, s.site.Homepage)
	if err != nil {
		logger.Warn(ctx, "homepage unreachable", zap.String("url", s.site.Homepage), zap.String("reason", reasonOf(err)))

		return domain.EmptyCrawlResult(s.site.Domain, serrors.ErrHomepageUnreachable.Error()), false
	}

	// HOMEPAGE_FETCHED
	s.origin = homepage.URL
	discovered := s.analyze(ctx, homepage)
	if factpool.IsSufficient(s.pool) {
		return s.pool.Result(), true
	}

	// CANDIDATES_RANKED
	s.queue, s.overflow = classify.RankLinks(discovered.Links, discovered.Anchors)

	// PAGE_LOOP
	for s.fetches < maxPages {
		if err := ctx.Err(); err != nil {
			logger.Warn(ctx, "crawl interrupted", zap.Error(err))

			break
		}
		next, ok := s.next()
		if !ok {
			break
		}

		page, err := s.fetch(ctx, next)
		if err != nil {
			logger.Warn(ctx, "page skipped", zap.String("url", next), zap.String("reason", reasonOf(err)))

			continue
		}

		s.discover(s.analyze(ctx, page).Links)
		if factpool.IsSufficient(s.pool) {
			return s.pool.Result(), true
		}
	}

	// DONE
	return s.pool.Result(), false
}

// fetch retrieves rawURL and marks both the requested and the final URL as
// visited. Failures are traced and counted. Once the homepage is known, a
// page that redirected to another host fails with errOffSite.
func (s *siteCrawl) fetch(ctx context.Context, rawURL string) (*fetcher.Page, error) {
	s.fetches++
	s.markVisited(rawURL)

	page, err := s.politeFetch(ctx, rawURL)
	if err == nil {
		s.markVisited(page.URL)
		if s.origin != "" && !links.SameSite(page.URL, s.origin) {
			err = fmt.Errorf("%s to %s: %w", rawURL, page.URL, errOffSite)
		}
	}
	if err != nil {
		reason := reasonOf(err)
		s.traces = append(s.traces, domain.PageTrace{URL: rawURL, Error: reason})
		s.deps.Metrics.PageFetched(ctx, reason)

		return nil, err
	}
	s.deps.Metrics.PageFetched(ctx, "ok")

	return page, nil
}

// analyze extracts, classifies and merges page into the pool, and returns
// the same-site links found on it.
func (s *siteCrawl) analyze(ctx context.Context, page *fetcher.Page) links.Result {
	ctx = logger.WithFields(ctx, zap.String("url", page.URL))

	facts := s.deps.Extractor.Extract(page.Body, s.brands)

	verdict, err := s.deps.Classifier.Classify(ctx, classify.SummaryFromFacts(page.URL, facts))
	if err != nil {
		logger.Warn(ctx, "page classification failed", zap.Error(err))
		verdict, _ = classify.Heuristic{}.Classify(ctx, classify.SummaryFromFacts(page.URL, facts))
	}

	in := country.Input{
		Addresses: facts.AddressCues,
		Phones:    facts.PhoneNumbers(),
		Domain:    s.site.Domain,
	}
	if !s.pool.Country.Known() {
		in.Snippet = facts.Text
	}
	signal := s.deps.Country.Infer(ctx, in)

	s.pool = factpool.Merge(s.pool, facts, verdict, signal)
	s.traces = append(s.traces, domain.PageTrace{URL: page.URL, PageType: string(verdict.PageType), Bytes: page.Size})

	logger.Debug(ctx, "page analyzed",
		zap.String("pageType", string(verdict.PageType)),
		zap.Int("emails", len(facts.Emails)),
		zap.Int("phones", len(facts.Phones)))

	return links.Extract(page.Body, page.URL)
}

// discover appends links not seen before to the overflow list.
func (s *siteCrawl) discover(found []string) {
	known := make(map[string]struct{}, len(s.queue)+len(s.overflow))
	for _, l := range s.queue {
		known[l] = struct{}{}
	}
	for _, l := range s.overflow {
		known[l] = struct{}{}
	}

	for _, l := range found {
		if _, ok := known[l]; ok {
			continue
		}
		if _, ok := s.visited[l]; ok {
			continue
		}
		known[l] = struct{}{}
		s.overflow = append(s.overflow, l)
	}
}

// next pops the next unvisited URL, ranked candidates first.
func (s *siteCrawl) next() (string, bool) {
	for _, list := range []*[]string{&s.queue, &s.overflow} {
		for len(*list) > 0 {
			u := (*list)[0]
			*list = (*list)[1:]
			if _, ok := s.visited[u]; !ok {
				return u, true
			}
		}
	}

	return "", false
}

func (s *siteCrawl) markVisited(rawURL string) {
	if u, err := links.Normalize(rawURL); err == nil {
		s.visited[u] = struct{}{}
	}
	s.visited[rawURL] = struct{}{}
}

// politeFetch waits for the site limiter before fetching. A wait that cannot
// finish before the context deadline is a timeout.
func (s *siteCrawl) politeFetch(ctx context.Context, rawURL string) (*fetcher.Page, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, &fetcher.Error{Reason: fetcher.ReasonTimeout, URL: rawURL, Err: err}
		}
	}

	return s.deps.Fetcher.Fetch(ctx, rawURL) //nolint: wrapcheck
}

// reasonOf returns the fetch failure reason of err.
func reasonOf(err error) string {
	if errors.Is(err, errOffSite) {
		return ReasonOffSite
	}
	var fe *fetcher.Error
	if errors.As(err, &fe) {
		return string(fe.Reason)
	}

	return string(fetcher.ReasonNetwork)
}
