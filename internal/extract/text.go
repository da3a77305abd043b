package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// blockTags break text flow; their content is separated by a space.
var blockTags = map[string]struct{}{ //nolint: gochecknoglobals
	"p": {}, "div": {}, "br": {}, "li": {}, "ul": {}, "ol": {}, "td": {}, "th": {}, "tr": {}, "table": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {}, "section": {}, "article": {}, "header": {},
	"footer": {}, "nav": {}, "aside": {}, "address": {}, "main": {}, "form": {}, "label": {}, "option": {},
	"dt": {}, "dd": {}, "blockquote": {}, "pre": {}, "hr": {}, "figure": {}, "figcaption": {}, "button": {},
}

// stripped are elements whose content is never visible text.
const stripped = "script, style, noscript, template, svg, iframe, object, canvas, head > meta, head > link"

// Digest is the compact page summary handed to the page classifier.
type Digest struct {
	Title          string   `json:"title"`
	Headings       []string `json:"headings"`
	FirstParagraph string   `json:"firstParagraph"`
}

const (
	maxHeadings       = 10
	maxParagraphRunes = 300
)

// textOf returns the visible text of the selection with collapsed whitespace.
func textOf(sel *goquery.Selection) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
		case html.ElementNode:
			_, block := blockTags[n.Data]
			if block {
				b.WriteByte(' ')
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
			if block {
				b.WriteByte(' ')
			}

			return
		case html.CommentNode:
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}

	return collapse(b.String())
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// PlainText strips markup from an HTML body and collapses whitespace.
func PlainText(body string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return collapse(body)
	}
	doc.Find(stripped).Remove()

	return textOf(doc.Selection)
}

// sectionTexts returns the text of blocks where contact details usually live.
func sectionTexts(doc *goquery.Document) []string {
	var out []string
	doc.Find(`header, footer, address, [itemprop="telephone"], [class*="contact"], [id*="contact"], ` +
		`[class*="footer"], [id*="footer"], [class*="kontakt"], [id*="kontakt"]`).Each(func(_ int, s *goquery.Selection) {
		if t := textOf(s); t != "" {
			out = append(out, t)
		}
	})

	return out
}

func digestOf(doc *goquery.Document) Digest {
	d := Digest{Title: collapse(doc.Find("title").First().Text())}

	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if t := textOf(s); t != "" {
			d.Headings = append(d.Headings, t)
		}

		return len(d.Headings) < maxHeadings
	})

	var fallback string
	doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		t := textOf(s)
		if t == "" {
			return true
		}
		if fallback == "" {
			fallback = t
		}
		if len([]rune(t)) >= 40 {
			d.FirstParagraph = t

			return false
		}

		return true
	})
	if d.FirstParagraph == "" {
		d.FirstParagraph = fallback
	}
	if r := []rune(d.FirstParagraph); len(r) > maxParagraphRunes {
		d.FirstParagraph = string(r[:maxParagraphRunes])
	}

	return d
}
