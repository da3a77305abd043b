package country

import (
	"context"
	"encoding/json"
	"factcrawler/pkg/domain"
	"factcrawler/pkg/llm"
	"factcrawler/pkg/serrors"
	"fmt"
	"strings"
)

const resolverInstruction = `You determine which country a company is based in from an excerpt of its website.
Use the company's own address, phone numbers, currency, language and legal form as evidence and ignore
countries merely mentioned as markets or partners. Disambiguate names such as Georgia (the country) versus
Georgia (the US state). Reply with a single JSON object and nothing else:
{"iso2": "<ISO 3166-1 alpha-2 code or empty>", "confidence": "HIGH" | "WEAK", "confidenceScore": <0..1>}`

// maxSnippetRunes bounds the text sent per request.
const maxSnippetRunes = 2000

// LLMResolver asks a completion service for the country.
type LLMResolver struct {
	completer llm.Completer
}

var _ Resolver = (*LLMResolver)(nil)

// NewLLMResolver wraps completer.
func NewLLMResolver(completer llm.Completer) *LLMResolver {
	return &LLMResolver{completer: completer}
}

type resolverAnswer struct {
	ISO2            string  `json:"iso2"`
	Confidence      string  `json:"confidence"`
	ConfidenceScore float64 `json:"confidenceScore"`
}

// Resolve returns an LLM-tier signal. The reported confidence word only
// scales the score; model output never outranks heuristic evidence.
func (r *LLMResolver) Resolve(ctx context.Context, snippet string, host string) (domain.CountrySignal, error) {
	if runes := []rune(snippet); len(runes) > maxSnippetRunes {
		snippet = string(runes[:maxSnippetRunes])
	}

	payload, err := json.Marshal(map[string]string{"domain": host, "text": snippet})
	if err != nil {
		return domain.CountrySignal{}, fmt.Errorf("could not marshal payload: %w", err)
	}

	raw, err := r.completer.Complete(ctx, resolverInstruction, string(payload))
	if err != nil {
		return domain.CountrySignal{}, serrors.Wrap(serrors.ErrCountryLLMUnavailable, err, "completion failed")
	}

	var ans resolverAnswer
	if err := llm.DecodeJSON(raw, &ans); err != nil {
		return domain.CountrySignal{}, serrors.Wrap(serrors.ErrCountryLLMUnavailable, err, "malformed completion")
	}

	iso := strings.ToUpper(strings.TrimSpace(ans.ISO2))
	if iso == "" {
		return domain.UnknownCountry(), nil
	}
	if iso == "UK" {
		iso = "GB"
	}
	if !Valid(iso) {
		return domain.CountrySignal{}, serrors.With(serrors.ErrCountryLLMUnavailable, "unknown country code %q", ans.ISO2)
	}

	score := min(max(ans.ConfidenceScore, 0), 1)
	if score == 0 {
		score = 0.5
		if strings.EqualFold(ans.Confidence, "HIGH") {
			score = 0.7
		}
	}

	return domain.CountrySignal{ISO2: iso, Tier: domain.TierLLM, Score: score, Source: domain.CountrySourceLLM}, nil
}
