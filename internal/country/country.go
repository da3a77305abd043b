// Package country infers the country a site belongs to from address text,
// phone dialing codes and the domain suffix, with an optional model-backed
// resolver for pages none of those settle.
package country

import (
	"context"
	"factcrawler/pkg/domain"
	"factcrawler/pkg/logger"

	"go.uber.org/zap"
)

//go:generate mockgen -package mockcountry -source=country.go -destination=mock/mockcountry.go *

// Input is the evidence gathered from one page.
type Input struct {
	Addresses []string
	// Phones are normalized numbers, best first.
	Phones []string
	Domain string
	// Snippet is page text handed to the Resolver when heuristics find nothing.
	Snippet string
}

// Resolver guesses a country from unstructured text.
type Resolver interface {
	Resolve(ctx context.Context, snippet, host string) (domain.CountrySignal, error)
}

// Engine combines the heuristics in priority order: address, phone, TLD,
// then the optional Resolver.
type Engine struct {
	resolver Resolver
}

// New returns an Engine. A nil resolver disables the last stage.
func New(resolver Resolver) *Engine {
	return &Engine{resolver: resolver}
}

// Infer returns the first signal found, or an unknown signal. It never fails:
// resolver errors are logged and reported as unknown.
func (e *Engine) Infer(ctx context.Context, in Input) domain.CountrySignal {
	if s, ok := FromAddresses(in.Addresses); ok {
		return s
	}
	if s, ok := FromPhones(in.Phones); ok {
		return s
	}
	if s, ok := FromDomain(in.Domain); ok {
		return s
	}

	if e.resolver == nil || in.Snippet == "" {
		return domain.UnknownCountry()
	}

	s, err := e.resolver.Resolve(ctx, in.Snippet, in.Domain)
	if err != nil {
		logger.Warn(ctx, "country resolver unavailable", zap.String("domain", in.Domain), zap.Error(err))

		return domain.UnknownCountry()
	}
	if !s.Known() {
		return domain.UnknownCountry()
	}

	return s
}

// Better reports whether candidate should replace current as a site's best
// signal: it must name a country and either have a strictly higher tier, or
// the same tier and a higher score. Ties keep current.
func Better(candidate, current domain.CountrySignal) bool {
	if !candidate.Known() {
		return false
	}
	if !current.Known() {
		return true
	}
	if candidate.Tier != current.Tier {
		return candidate.Tier > current.Tier
	}

	return candidate.Score > current.Score
}
