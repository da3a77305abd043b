// Package extract turns one HTML page into structured contact facts: emails,
// ranked phone candidates, plain text, address cues, brand mentions and social
// profile links.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Facts are the contact facts found on one page.
type Facts struct {
	// Emails are lower-cased and unique.
	Emails []string `json:"emails"`
	// Phones are ordered by descending priority.
	Phones      []PhoneCandidate  `json:"phones"`
	Text        string            `json:"-"`
	AddressCues []string          `json:"addressCues"`
	BrandHits   []string          `json:"brandHits"`
	Socials     map[string]string `json:"socials"`
	Digest      Digest            `json:"digest"`
}

// PhoneNumbers returns the normalized numbers in priority order.
func (f Facts) PhoneNumbers() []string {
	out := make([]string, 0, len(f.Phones))
	for _, p := range f.Phones {
		out = append(out, p.Normalized)
	}

	return out
}

// Extractor is stateless apart from its weights and may be shared between goroutines.
type Extractor struct {
	weights Weights
}

// New returns an Extractor scoring phones with w.
func New(w Weights) *Extractor {
	return &Extractor{weights: w}
}

// Extract parses body and returns its facts. brands may be nil.
func (e *Extractor) Extract(body string, brands *Dictionary) Facts {
	facts := Facts{
		Emails:      []string{},
		Phones:      []PhoneCandidate{},
		AddressCues: []string{},
		Socials:     map[string]string{},
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return facts
	}

	structured := extractAddressCues(doc)
	facts.Socials = extractSocials(doc)

	doc.Find(stripped).Remove()
	facts.Text = textOf(doc.Selection)
	facts.Digest = digestOf(doc)

	facts.Emails = extractEmails(doc, facts.Text, body)
	facts.Phones = extractPhones(doc, facts.Text, sectionTexts(doc), e.weights)
	facts.AddressCues = dedupCues(append(structured, keywordAddressCues(facts.Text)...))
	facts.BrandHits = brands.Match(facts.Text)

	return facts
}
