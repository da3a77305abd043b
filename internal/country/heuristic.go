package country

import (
	"factcrawler/pkg/domain"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scores attached to heuristic signals.
const (
	addressScore = 0.9
	phoneScore   = 0.8
	tldScore     = 0.5
)

type countryName struct {
	name string
	iso  string
}

// namesByLength lists country names longest first, so "united states of
// america" is tried before "united states".
var namesByLength = func() []countryName { //nolint: gochecknoglobals
	out := make([]countryName, 0, len(countryNames))
	for name, iso := range countryNames {
		out = append(out, countryName{name: name, iso: iso})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].name) != len(out[j].name) {
			return len(out[i].name) > len(out[j].name)
		}

		return out[i].name < out[j].name
	})

	return out
}()

// FromAddresses looks for a country name in the address cues. Within a cue
// the name closest to the end wins, since addresses end with the country.
func FromAddresses(addresses []string) (domain.CountrySignal, bool) {
	for _, addr := range addresses {
		if iso, ok := trailingCode(addr); ok {
			return signal(iso, domain.TierHigh, addressScore, domain.CountrySourceAddress), true
		}

		lower := strings.ToLower(addr)
		bestEnd, bestISO := -1, ""
		for _, cn := range namesByLength {
			if end := lastWordMatch(lower, cn.name); end > bestEnd {
				bestEnd, bestISO = end, cn.iso
			}
		}
		if bestISO != "" {
			return signal(bestISO, domain.TierHigh, addressScore, domain.CountrySourceAddress), true
		}
	}

	return domain.CountrySignal{}, false
}

// trailingCode recognizes structured addresses ending in an ISO code, such as
// "Hauptstraße 1, Berlin, DE".
func trailingCode(addr string) (string, bool) {
	parts := strings.Split(addr, ",")
	last := strings.TrimSpace(parts[len(parts)-1])
	if len(last) != 2 || strings.ToUpper(last) != last {
		return "", false
	}
	if _, ok := isoCodes[last]; ok {
		return last, true
	}

	return "", false
}

// lastWordMatch returns the end offset of the last whole-word occurrence of
// name in s, or -1.
func lastWordMatch(s, name string) int {
	for end := len(s); end > 0; {
		i := strings.LastIndex(s[:end], name)
		if i < 0 {
			return -1
		}
		j := i + len(name)
		if isBoundary(s, i, j) {
			return j
		}
		end = i + len(name) - 1
	}

	return -1
}

func isBoundary(s string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(s[:start]); unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end < len(s) {
		if r, _ := utf8.DecodeRuneInString(s[end:]); unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

// FromPhones matches international numbers against the dialing-code table,
// longest code first. Numbers without a "+" or "00" prefix are skipped since
// their country cannot be told.
func FromPhones(phones []string) (domain.CountrySignal, bool) {
	for _, p := range phones {
		p = strings.TrimSpace(p)
		var digits string
		switch {
		case strings.HasPrefix(p, "+"):
			digits = p[1:]
		case strings.HasPrefix(p, "00"):
			digits = p[2:]
		default:
			continue
		}

		for n := 3; n >= 1; n-- {
			if len(digits) <= n {
				continue
			}
			if iso, ok := dialingCodes[digits[:n]]; ok {
				return signal(iso, domain.TierHigh, phoneScore, domain.CountrySourcePhone), true
			}
		}
	}

	return domain.CountrySignal{}, false
}

// FromDomain maps a country-code top-level domain to its country. Generic
// TLDs and codes commonly bought for branding yield nothing.
func FromDomain(host string) (domain.CountrySignal, bool) {
	host = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(host)), ".")
	if i := strings.LastIndexByte(host, '.'); i >= 0 {
		host = host[i+1:]
	} else {
		return domain.CountrySignal{}, false
	}

	if _, generic := genericTLDs[host]; generic {
		return domain.CountrySignal{}, false
	}

	iso, ok := tldCountries[host]
	if !ok {
		if len(host) != 2 {
			return domain.CountrySignal{}, false
		}
		iso = strings.ToUpper(host)
		if _, known := isoCodes[iso]; !known {
			return domain.CountrySignal{}, false
		}
	}

	return signal(iso, domain.TierWeak, tldScore, domain.CountrySourceTLD), true
}

func signal(iso string, tier domain.CountryTier, score float64, source domain.CountrySource) domain.CountrySignal {
	return domain.CountrySignal{ISO2: iso, Tier: tier, Score: score, Source: source}
}

// Valid reports whether iso is a known ISO 3166-1 alpha-2 code.
func Valid(iso string) bool {
	_, ok := isoCodes[iso]

	return ok
}
