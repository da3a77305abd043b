package enrich

import (
	"factcrawler/pkg/domain"
	"maps"
	"slices"
	"strings"
)

const (
	websiteExplicit = 1.0
	websiteEmail    = 0.8
	websiteSearch   = 0.6

	emailOnSite  = 0.9
	emailOffSite = 0.6

	phoneFirst = 0.9
	phoneOther = 0.7

	socialProfile = 0.8
)

func websiteConfidence(stage Stage) float64 {
	switch stage {
	case StageExplicitDomain:
		return websiteExplicit
	case StageEmailDomain:
		return websiteEmail
	case StageNameSearch, StageEmailSearch, StagePhoneSearch:
		return websiteSearch
	}

	return websiteSearch
}

// suggest maps a completed crawl onto record fields. Values the request
// already carries are not suggested again.
func (s *Service) suggest(req Request, stage Stage, site domain.Site, result domain.CrawlResult) []domain.Suggestion {
	now := s.now()
	out := []domain.Suggestion{{
		Field:      domain.FieldWebsite,
		Value:      site.Homepage,
		Confidence: websiteConfidence(stage),
		Source:     string(stage),
		CreatedAt:  now,
	}}

	for _, email := range result.Emails {
		if strings.EqualFold(email, req.Email) {
			continue
		}
		confidence := emailOffSite
		if onSite(email, site.Domain) {
			confidence = emailOnSite
		}
		out = append(out, domain.Suggestion{
			Field:      domain.FieldEmail,
			Value:      email,
			Confidence: confidence,
			Source:     site.Homepage,
			CreatedAt:  now,
		})
	}

	first := true
	for _, phone := range result.Phones {
		if req.Phone != "" && samePhone(phone, req.Phone) {
			continue
		}
		confidence := phoneOther
		if first {
			confidence = phoneFirst
			first = false
		}
		out = append(out, domain.Suggestion{
			Field:      domain.FieldPhone,
			Value:      phone,
			Confidence: confidence,
			Source:     site.Homepage,
			CreatedAt:  now,
		})
	}

	if c := result.Country; c != nil && c.ISO2 != "" {
		out = append(out, domain.Suggestion{
			Field:      domain.FieldCountry,
			Value:      c.ISO2,
			Confidence: c.Score,
			Source:     string(c.Source),
			CreatedAt:  now,
		})
	}

	for _, network := range slices.Sorted(maps.Keys(result.Socials)) {
		out = append(out, domain.Suggestion{
			Field:      domain.FieldSocial,
			Network:    network,
			Value:      result.Socials[network],
			Confidence: socialProfile,
			Source:     site.Homepage,
			CreatedAt:  now,
		})
	}

	return out
}

// onSite reports whether the mailbox of email lives on host or one of its subdomains.
func onSite(email, host string) bool {
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return false
	}
	mailHost := strings.TrimPrefix(strings.ToLower(email[at+1:]), "www.")

	return mailHost == host || strings.HasSuffix(mailHost, "."+host)
}
