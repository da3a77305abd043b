// Package factpool accumulates the facts found across the pages of one site
// and decides when the crawl of that site can stop.
package factpool

import (
	"factcrawler/internal/classify"
	"factcrawler/internal/country"
	"factcrawler/internal/extract"
	"factcrawler/pkg/domain"
	"maps"
	"slices"
	"time"
)

// Pool is the aggregate of one site's facts. A Pool is a value: Merge returns
// a new Pool and never modifies the slices or maps of the one it was given.
type Pool struct {
	Domain string
	// Emails and Phones keep first-seen order.
	Emails        []string
	Phones        []string
	PagesAnalyzed int
	ContactFound  bool
	AboutFound    bool
	Country       domain.CountrySignal
	Brands        []string
	// Socials holds the first profile found per network.
	Socials map[string]string
}

// New returns an empty pool for host.
func New(host string) Pool {
	return Pool{
		Domain:  host,
		Emails:  []string{},
		Phones:  []string{},
		Country: domain.UnknownCountry(),
		Brands:  []string{},
		Socials: map[string]string{},
	}
}

// Merge folds one analyzed page into p. signal replaces the pool's country
// only when country.Better says so.
func Merge(p Pool, facts extract.Facts, verdict classify.Verdict, signal domain.CountrySignal) Pool {
	next := p
	next.Emails = union(p.Emails, facts.Emails)
	next.Phones = union(p.Phones, facts.PhoneNumbers())
	next.Brands = union(p.Brands, facts.BrandHits)
	next.PagesAnalyzed = p.PagesAnalyzed + 1

	next.Socials = maps.Clone(p.Socials)
	if next.Socials == nil {
		next.Socials = map[string]string{}
	}
	for network, profile := range facts.Socials {
		if _, ok := next.Socials[network]; !ok {
			next.Socials[network] = profile
		}
	}

	switch verdict.PageType {
	case classify.PageTypeContact:
		next.ContactFound = true
	case classify.PageTypeAbout:
		next.AboutFound = true
	}

	if country.Better(signal, p.Country) {
		next.Country = signal
	}

	return next
}

// IsSufficient reports whether the crawl can stop: the pool holds at least one
// email and one phone, or a contact or about page has been analyzed. Once true
// it stays true, since merging only adds facts.
func IsSufficient(p Pool) bool {
	if len(p.Emails) > 0 && len(p.Phones) > 0 {
		return true
	}

	return p.ContactFound || p.AboutFound
}

// Result returns the crawl result of a completed crawl.
func (p Pool) Result() domain.CrawlResult {
	res := domain.CrawlResult{
		Domain:        p.Domain,
		Emails:        slices.Clone(p.Emails),
		Phones:        slices.Clone(p.Phones),
		PagesAnalyzed: p.PagesAnalyzed,
		ContactFound:  p.ContactFound,
		AboutFound:    p.AboutFound,
		Brands:        slices.Clone(p.Brands),
		Socials:       maps.Clone(p.Socials),
		Status:        domain.CrawlStatusCompleted,
		CrawledAt:     time.Now().UTC(),
	}
	if p.Country.Known() {
		c := p.Country
		res.Country = &c
	}

	return res
}

// union returns a new slice holding a followed by the elements of b not in a.
func union(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	for _, v := range b {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}

	return out
}
