// Package classify decides what kind of page a fetched document is, so the
// crawler can tell when it has looked at a site's contact or about page.
package classify

import (
	"context"
	"factcrawler/internal/extract"
)

//go:generate mockgen -package mockclassify -source=classify.go -destination=mock/mockclassify.go *

// PageType is the classification of one page.
type PageType string

const (
	PageTypeContact  PageType = "CONTACT"
	PageTypeAbout    PageType = "ABOUT"
	PageTypeProducts PageType = "PRODUCTS"
	PageTypeOther    PageType = "OTHER"
)

// Dedicated reports whether the page is a contact or about page.
func (p PageType) Dedicated() bool {
	return p == PageTypeContact || p == PageTypeAbout
}

func parsePageType(s string) (PageType, bool) {
	switch t := PageType(s); t {
	case PageTypeContact, PageTypeAbout, PageTypeProducts, PageTypeOther:
		return t, true
	default:
		return "", false
	}
}

// Summary is the compact digest a page is classified from. It never carries
// the page body.
type Summary struct {
	URL            string   `json:"url"`
	Title          string   `json:"title"`
	Headings       []string `json:"headings"`
	FirstParagraph string   `json:"firstParagraph"`
	EmailCount     int      `json:"emailCount"`
	PhoneCount     int      `json:"phoneCount"`
}

// SummaryFromFacts builds the Summary of the page at pageURL.
func SummaryFromFacts(pageURL string, facts extract.Facts) Summary {
	return Summary{
		URL:            pageURL,
		Title:          facts.Digest.Title,
		Headings:       facts.Digest.Headings,
		FirstParagraph: facts.Digest.FirstParagraph,
		EmailCount:     len(facts.Emails),
		PhoneCount:     len(facts.Phones),
	}
}

// Verdict is the outcome of classifying one page.
type Verdict struct {
	PageType   PageType `json:"pageType"`
	Confidence float64  `json:"confidence"`
	Evidence   []string `json:"evidence"`
}

// Classifier classifies page summaries.
type Classifier interface {
	Classify(ctx context.Context, page Summary) (Verdict, error)
}
