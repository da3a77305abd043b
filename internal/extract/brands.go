package extract

import (
	"regexp"
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// Dictionary matches a fixed list of brand names against page text.
// It is immutable after construction and safe for concurrent use.
type Dictionary struct {
	names   []string
	bounded []*regexp.Regexp
	matcher *ahocorasick.Matcher
}

// NewDictionary builds a dictionary from brand names. Blank names are ignored
// and names differing only in case are kept once, first spelling wins.
func NewDictionary(names []string) *Dictionary {
	d := &Dictionary{}
	seen := make(map[string]struct{}, len(names))
	lowered := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		key := strings.ToLower(name)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		d.names = append(d.names, name)
		lowered = append(lowered, key)
		d.bounded = append(d.bounded, regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}])`+regexp.QuoteMeta(name)+`(?:[^\p{L}\p{N}]|$)`))
	}
	if len(lowered) > 0 {
		d.matcher = ahocorasick.NewStringMatcher(lowered)
	}

	return d
}

// Len returns the number of distinct brands.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}

	return len(d.names)
}

// Match returns the brands present in text as whole words, spelled as in the
// dictionary and in dictionary order.
func (d *Dictionary) Match(text string) []string {
	if d == nil || d.matcher == nil || text == "" {
		return nil
	}

	hits := d.matcher.MatchThreadSafe([]byte(strings.ToLower(text)))
	if len(hits) == 0 {
		return nil
	}

	found := make(map[int]struct{}, len(hits))
	for _, i := range hits {
		found[i] = struct{}{}
	}

	var out []string
	for i, name := range d.names {
		if _, ok := found[i]; !ok {
			continue
		}
		// the automaton also reports substrings such as "apple" in "pineapple"
		if d.bounded[i].MatchString(text) {
			out = append(out, name)
		}
	}

	return out
}
