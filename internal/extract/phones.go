package extract

import (
	"factcrawler/internal/config"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// PhoneCandidate is a validated phone number with its accumulated priority.
type PhoneCandidate struct {
	Normalized string `json:"normalized"`
	Priority   int    `json:"priority"`
}

// Weights are the priorities each extraction tier adds to a phone candidate.
// A number found by several tiers accumulates the weight of each of them.
type Weights struct {
	// TelLink is for numbers in tel: hyperlinks.
	TelLink int
	// LabelStrong is for numbers right after a phone-specific label (phone, tel, call, mobile).
	LabelStrong int
	// LabelWeak is for numbers right after a looser label (fax, contact).
	LabelWeak int
	// Section is for numbers inside header, footer, address or contact blocks.
	Section int
	// IntlFormatted is for "+" numbers written with separators.
	IntlFormatted int
	// IntlBare is for "+" numbers written as one digit run.
	IntlBare int
	// Fallback is for separated local-format numbers no other tier found.
	Fallback int
	// MaxPhones caps the candidates kept per page.
	MaxPhones int
}

// DefaultWeights returns the stock tier weights.
func DefaultWeights() Weights {
	return Weights{
		TelLink:       10,
		LabelStrong:   9,
		LabelWeak:     8,
		Section:       8,
		IntlFormatted: 7,
		IntlBare:      5,
		Fallback:      2,
		MaxPhones:     10,
	}
}

// NewWeights reads tier weights from application configuration.
func NewWeights(cfg *config.Config) Weights {
	w := cfg.PhoneWeights

	return Weights{
		TelLink:       w.TelLink,
		LabelStrong:   w.LabelStrong,
		LabelWeak:     w.LabelWeak,
		Section:       w.Section,
		IntlFormatted: w.IntlFormatted,
		IntlBare:      w.IntlBare,
		Fallback:      w.Fallback,
		MaxPhones:     w.MaxPhones,
	}
}

var (
	// numberRe matches a digit run with the separators phone numbers are written with.
	numberRe = regexp.MustCompile(`\+?\(?\+?\d[\d().\-/ \x{00A0}]{4,24}\d`) //nolint: gochecknoglobals
	// dateLikeRe matches 8-digit strings that read as 20YYMMDD.
	dateLikeRe = regexp.MustCompile(`^20\d{6}$`)     //nolint: gochecknoglobals
	yearLikeRe = regexp.MustCompile(`^(19|20)\d{2}$`) //nolint: gochecknoglobals

	// Longer spellings come first so alternation prefers them.
	strongLabelRe = regexp.MustCompile(`(?i)(?:^|[^\p{L}])(telephone|téléphone|teléfono|telefone|telefono|telefon|` + //nolint: gochecknoglobals,lll
		`phone|mobile|whatsapp|cell|call|tél|tel|mob|телефон|тел|моб|電話|電話番号)(?:[^\p{L}]|$)`)
	weakLabelRe = regexp.MustCompile(`(?i)(?:^|[^\p{L}])(contacts?|kontakt|contacto|контакты|контакт|fax|факс)` + //nolint: gochecknoglobals
		`(?:[^\p{L}]|$)`)
)

// separators are the characters written between digit groups.
const separators = " -.()/\u00a0"

// labelWindow is how far after a label word the number may start, in bytes.
const labelWindow = 30

// ValidatePhone reduces raw to digits, keeping a leading "+", and reports
// whether the result can be a phone number: 7 to 15 digits, not all the same
// digit, and neither a 20YYMMDD date nor a bare year.
func ValidatePhone(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	plus := strings.HasPrefix(strings.TrimLeft(raw, "( "), "+")

	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if len(digits) < 7 || len(digits) > 15 {
		return "", false
	}
	if strings.Count(digits, digits[:1]) == len(digits) {
		return "", false
	}
	if dateLikeRe.MatchString(digits) || yearLikeRe.MatchString(digits) {
		return "", false
	}

	if plus {
		return "+" + digits, true
	}

	return digits, true
}

type numberMatch struct {
	raw   string
	start int
}

// findNumbers returns number-like runs in s that are not glued to letters.
func findNumbers(s string) []numberMatch {
	var out []numberMatch
	for _, loc := range numberRe.FindAllStringIndex(s, -1) {
		if loc[0] > 0 {
			if r, _ := utf8.DecodeLastRuneInString(s[:loc[0]]); unicode.IsLetter(r) {
				continue
			}
		}
		if loc[1] < len(s) {
			if r, _ := utf8.DecodeRuneInString(s[loc[1]:]); unicode.IsLetter(r) {
				continue
			}
		}
		out = append(out, numberMatch{raw: strings.TrimSpace(s[loc[0]:loc[1]]), start: loc[0]})
	}

	return out
}

// phoneScorer accumulates candidates across tiers. Each tier adds its weight
// at most once per number.
type phoneScorer struct {
	order    []string
	plus     map[string]bool
	priority map[string]int
	tierSeen map[string]struct{}
}

func newPhoneScorer() *phoneScorer {
	return &phoneScorer{
		plus:     make(map[string]bool),
		priority: make(map[string]int),
		tierSeen: make(map[string]struct{}),
	}
}

func (ps *phoneScorer) add(tier string, raw string, weight int) bool {
	normalized, ok := ValidatePhone(raw)
	if !ok {
		return false
	}
	key := strings.TrimPrefix(normalized, "+")

	if _, known := ps.priority[key]; !known {
		ps.order = append(ps.order, key)
		ps.priority[key] = 0
	}
	if strings.HasPrefix(normalized, "+") {
		ps.plus[key] = true
	}

	if _, dup := ps.tierSeen[tier+"|"+key]; dup {
		return true
	}
	ps.tierSeen[tier+"|"+key] = struct{}{}
	ps.priority[key] += weight

	return true
}

func (ps *phoneScorer) has(raw string) bool {
	normalized, ok := ValidatePhone(raw)
	if !ok {
		return false
	}
	_, known := ps.priority[strings.TrimPrefix(normalized, "+")]

	return known
}

// result returns candidates by descending priority, first seen first on ties.
func (ps *phoneScorer) result(limit int) []PhoneCandidate {
	out := make([]PhoneCandidate, 0, len(ps.order))
	for _, key := range ps.order {
		n := key
		if ps.plus[key] {
			n = "+" + key
		}
		out = append(out, PhoneCandidate{Normalized: n, Priority: ps.priority[key]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}

const (
	tierLink     = "link"
	tierLabel    = "label"
	tierIntl     = "intl"
	tierSection  = "section"
	tierFallback = "fallback"
)

// extractPhones runs every tier over the page. sections holds the text of
// header, footer and contact blocks.
func extractPhones(doc *goquery.Document, text string, sections []string, w Weights) []PhoneCandidate {
	ps := newPhoneScorer()

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		lower := strings.ToLower(href)
		var number string
		switch {
		case strings.HasPrefix(lower, "tel:"):
			number = href[4:]
		case strings.HasPrefix(lower, "callto:"):
			number = href[7:]
		default:
			return
		}
		if unescaped, err := url.PathUnescape(number); err == nil {
			number = unescaped
		}
		ps.add(tierLink, strings.TrimPrefix(number, "//"), w.TelLink)
	})

	labelled(ps, text, strongLabelRe, w.LabelStrong)
	labelled(ps, text, weakLabelRe, w.LabelWeak)

	for _, m := range findNumbers(text) {
		if !strings.HasPrefix(strings.TrimLeft(m.raw, "("), "+") {
			continue
		}
		weight := w.IntlBare
		if strings.ContainsAny(m.raw[1:], separators) {
			weight = w.IntlFormatted
		}
		ps.add(tierIntl, m.raw, weight)
	}

	for _, section := range sections {
		for _, m := range findNumbers(section) {
			ps.add(tierSection, m.raw, w.Section)
		}
	}

	for _, m := range findNumbers(text) {
		if strings.HasPrefix(m.raw, "+") || !strings.ContainsAny(m.raw, separators) || ps.has(m.raw) {
			continue
		}
		if digits := countDigits(m.raw); digits < 9 {
			continue
		}
		ps.add(tierFallback, m.raw, w.Fallback)
	}

	return ps.result(w.MaxPhones)
}

// labelled adds the first number starting within labelWindow bytes after each label match.
func labelled(ps *phoneScorer, text string, re *regexp.Regexp, weight int) {
	for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
		end := loc[3]
		window := text[end:min(len(text), end+labelWindow+24)]
		for _, m := range findNumbers(window) {
			if m.start > labelWindow {
				break
			}
			if ps.add(tierLabel, m.raw, weight) {
				break
			}
		}
	}
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}

	return n
}
