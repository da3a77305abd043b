package domain

import "time"

// Site is one crawl target: a homepage and the domain its results are keyed by.
type Site struct {
	Homepage string `json:"homepage"`
	Domain   string `json:"domain"`
}

// CrawlStatus represents the terminal state of a site crawl.
type CrawlStatus string

const (
	// CrawlStatusCompleted indicates the homepage was reachable and the page loop ran.
	CrawlStatusCompleted CrawlStatus = "COMPLETED"
	// CrawlStatusFailed indicates the homepage could not be fetched.
	CrawlStatusFailed CrawlStatus = "FAILED"
)

// PageTrace records a single fetch attempt made during a crawl.
type PageTrace struct {
	URL      string `json:"url"`
	PageType string `json:"pageType,omitempty"`
	Bytes    int    `json:"bytes"`
	// Error holds the fetch failure reason; empty when the page was analyzed.
	Error string `json:"error,omitempty"`
}

// CrawlResult is the outcome of crawling one site.
type CrawlResult struct {
	Domain        string   `json:"domain"`
	Emails        []string `json:"emails"`
	Phones        []string `json:"phones"`
	PagesAnalyzed int      `json:"pagesAnalyzed"`
	ContactFound  bool     `json:"contactFound"`

	AboutFound bool              `json:"aboutFound,omitempty"`
	Country    *CountrySignal    `json:"country,omitempty"`
	Brands     []string          `json:"brands,omitempty"`
	Socials    map[string]string `json:"socials,omitempty"`
	Pages      []PageTrace       `json:"pages,omitempty"`

	Status CrawlStatus `json:"status"`
	// Error is set when Status is FAILED.
	Error string `json:"error,omitempty"`

	CrawledAt time.Time `json:"crawledAt"`
}

// EmptyCrawlResult is the degraded result for a site whose crawl could not run.
func EmptyCrawlResult(domain string, reason string) CrawlResult {
	return CrawlResult{
		Domain:    domain,
		Emails:    []string{},
		Phones:    []string{},
		Status:    CrawlStatusFailed,
		Error:     reason,
		CrawledAt: time.Now().UTC(),
	}
}
