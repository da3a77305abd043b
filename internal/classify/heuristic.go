package classify

import (
	"context"
	"net/url"
	"strings"
)

// Keywords are lower-case and match at the start of a word, after
// punctuation has been replaced by spaces.
var (
	contactKeywords = []string{ //nolint: gochecknoglobals
		"contact", "kontakt", "contacto", "contato", "contatti", "contactez", "impressum", "imprint",
		"get in touch", "reach us", "kapcsolat", "iletisim", "iletişim", "yhteystiedot", "контакт", "звʼязок",
		"связаться", "зв'язатися",
	}
	aboutKeywords = []string{ //nolint: gochecknoglobals
		"about", "über uns", "uber uns", "ueber uns", "who we are", "our story", "our company", "unternehmen",
		"quienes somos", "quiénes somos", "sobre nosotros", "sobre nos", "chi siamo", "qui sommes nous",
		"a propos", "à propos", "apropos", "over ons", "o nas", "hakkimizda", "hakkımızda", "о нас",
		"о компании", "про нас", "про компанію",
	}
	productKeywords = []string{ //nolint: gochecknoglobals
		"product", "service", "catalog", "catalogue", "shop", "store", "pricing", "solutions", "produkt",
		"leistungen", "angebot", "producto", "servicio", "prodotti", "servizi", "produit", "каталог",
		"продук", "товар", "услуг", "послуг",
	}
)

const (
	pathConfidence    = 0.8
	titleConfidence   = 0.7
	headingConfidence = 0.6
	contactsOnPage    = 0.5
	otherConfidence   = 0.3
)

type field struct {
	name       string
	text       string
	confidence float64
}

// Heuristic classifies by keywords in the URL path, the title and the main
// heading. It always succeeds.
type Heuristic struct{}

var _ Classifier = Heuristic{}

// Classify implements Classifier.
func (Heuristic) Classify(_ context.Context, page Summary) (Verdict, error) {
	fields := []field{
		{"path", urlPathText(page.URL), pathConfidence},
		{"title", fold(page.Title), titleConfidence},
	}
	if len(page.Headings) > 0 {
		fields = append(fields, field{"heading", fold(page.Headings[0]), headingConfidence})
	}

	rules := []struct {
		pageType PageType
		keywords []string
	}{
		{PageTypeContact, contactKeywords},
		{PageTypeAbout, aboutKeywords},
		{PageTypeProducts, productKeywords},
	}

	for _, rule := range rules {
		v := Verdict{PageType: rule.pageType}
		for _, f := range fields {
			if kw, ok := firstKeyword(f.text, rule.keywords); ok {
				v.Evidence = append(v.Evidence, f.name+":"+kw)
				v.Confidence = max(v.Confidence, f.confidence)
			}
		}
		if rule.pageType == PageTypeContact && page.EmailCount > 0 && page.PhoneCount > 0 {
			v.Evidence = append(v.Evidence, "emails+phones")
			v.Confidence = max(v.Confidence, contactsOnPage)
		}

		if len(v.Evidence) > 0 {
			return v, nil
		}
	}

	return Verdict{PageType: PageTypeOther, Confidence: otherConfidence, Evidence: []string{}}, nil
}

// RankLinks splits links into contact and about candidates and the rest,
// matching keywords in the URL path and in the anchor text of each link.
// Both keep discovery order. anchors may be nil.
func RankLinks(links []string, anchors map[string]string) (candidates []string, rest []string) {
	candidates, rest = []string{}, []string{}
	for _, l := range links {
		if isCandidate(urlPathText(l)) || isCandidate(fold(anchors[l])) {
			candidates = append(candidates, l)
		} else {
			rest = append(rest, l)
		}
	}

	return candidates, rest
}

func isCandidate(text string) bool {
	_, contact := firstKeyword(text, contactKeywords)
	_, about := firstKeyword(text, aboutKeywords)

	return contact || about
}

func firstKeyword(text string, keywords []string) (string, bool) {
	if text == "" {
		return "", false
	}
	text = " " + text
	for _, kw := range keywords {
		if strings.Contains(text, " "+kw) {
			return kw, true
		}
	}

	return "", false
}

// urlPathText returns the decoded path of raw as foldable text.
func urlPathText(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	return fold(u.Path)
}

var punctuation = strings.NewReplacer("-", " ", "_", " ", "/", " ", ".", " ", "+", " ", "|", " ") //nolint: gochecknoglobals

// fold lower-cases s and turns separators into single spaces.
func fold(s string) string {
	return strings.Join(strings.Fields(punctuation.Replace(strings.ToLower(s))), " ")
}
