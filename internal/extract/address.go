package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var addressKeywordRe = regexp.MustCompile(`(?i)(?:^|[^\p{L}])(address|adresse|adres|anschrift|dirección|direccion|` + //nolint: gochecknoglobals,lll
	`indirizzo|endereço|street|avenue|boulevard|suite|straße|strasse|calle|rue|адреса|адрес|вулиця|вул\.|улица|ул\.)` +
	`(?:[^\p{L}]|$)`)

const (
	maxAddressCues  = 10
	addressCueBytes = 120
)

// extractAddressCues must run before scripts are stripped from doc, since
// structured data lives in JSON-LD script blocks.
func extractAddressCues(doc *goquery.Document) []string {
	var cues []string

	doc.Find("address").Each(func(_ int, s *goquery.Selection) {
		cues = append(cues, textOf(s))
	})

	doc.Find(`[itemprop="address"], [itemprop="streetAddress"], [itemprop="addressLocality"], ` +
		`[itemprop="addressRegion"], [itemprop="addressCountry"], [itemprop="postalCode"]`).Each(
		func(_ int, s *goquery.Selection) {
			if v, ok := s.Attr("content"); ok {
				cues = append(cues, v)

				return
			}
			cues = append(cues, textOf(s))
		})

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var v any
		if err := json.Unmarshal([]byte(s.Text()), &v); err != nil {
			return
		}
		cues = append(cues, jsonLDAddresses(v)...)
	})

	return cues
}

// keywordAddressCues returns text windows that follow an address keyword.
func keywordAddressCues(text string) []string {
	var cues []string
	for _, loc := range addressKeywordRe.FindAllStringSubmatchIndex(text, maxAddressCues) {
		start := loc[2]
		end := min(len(text), start+addressCueBytes)
		cues = append(cues, strings.ToValidUTF8(text[start:end], ""))
	}

	return cues
}

func jsonLDAddresses(v any) []string {
	var out []string
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			out = append(out, jsonLDAddresses(item)...)
		}
	case map[string]any:
		for key, val := range t {
			if key == "address" {
				out = append(out, postalAddress(val)...)

				continue
			}
			if _, nested := val.(string); !nested {
				out = append(out, jsonLDAddresses(val)...)
			}
		}
	}

	return out
}

func postalAddress(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []any:
		var out []string
		for _, item := range t {
			out = append(out, postalAddress(item)...)
		}

		return out
	case map[string]any:
		var parts []string
		for _, key := range []string{"streetAddress", "addressLocality", "addressRegion", "postalCode", "addressCountry"} {
			switch f := t[key].(type) {
			case string:
				parts = append(parts, f)
			case map[string]any:
				if name, ok := f["name"].(string); ok {
					parts = append(parts, name)
				}
			}
		}
		if len(parts) == 0 {
			return nil
		}

		return []string{strings.Join(parts, ", ")}
	}

	return nil
}

func dedupCues(cues []string) []string {
	seen := make(map[string]struct{}, len(cues))
	out := make([]string, 0, len(cues))
	for _, c := range cues {
		c = collapse(c)
		if c == "" {
			continue
		}
		key := strings.ToLower(c)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
		if len(out) == maxAddressCues {
			break
		}
	}

	return out
}
