package classify

import (
	"context"
	"encoding/json"
	"factcrawler/pkg/llm"
	"factcrawler/pkg/serrors"
	"fmt"
	"strings"
)

const classifierInstruction = `You classify a single web page of a company website from a short digest.
Page types: CONTACT (contact details, contact form, imprint), ABOUT (company description, team, history),
PRODUCTS (products, services, catalog, pricing), OTHER (anything else).
Reply with a single JSON object and nothing else:
{"pageType": "CONTACT" | "ABOUT" | "PRODUCTS" | "OTHER", "confidence": <0..1>, "evidence": ["<short reason>", ...]}`

// LLM classifies pages with a completion service.
type LLM struct {
	completer llm.Completer
}

var _ Classifier = (*LLM)(nil)

// NewLLM wraps completer.
func NewLLM(completer llm.Completer) *LLM {
	return &LLM{completer: completer}
}

type llmVerdict struct {
	PageType   string   `json:"pageType"`
	Confidence float64  `json:"confidence"`
	Evidence   []string `json:"evidence"`
}

// Classify implements Classifier. Every failure is reported as ErrClassifierUnavailable.
func (c *LLM) Classify(ctx context.Context, page Summary) (Verdict, error) {
	payload, err := json.Marshal(page)
	if err != nil {
		return Verdict{}, fmt.Errorf("could not marshal summary: %w", err)
	}

	raw, err := c.completer.Complete(ctx, classifierInstruction, string(payload))
	if err != nil {
		return Verdict{}, serrors.Wrap(serrors.ErrClassifierUnavailable, err, "completion failed")
	}

	var ans llmVerdict
	if err := llm.DecodeJSON(raw, &ans); err != nil {
		return Verdict{}, serrors.Wrap(serrors.ErrClassifierUnavailable, err, "malformed completion")
	}

	pageType, ok := parsePageType(strings.ToUpper(strings.TrimSpace(ans.PageType)))
	if !ok {
		return Verdict{}, serrors.With(serrors.ErrClassifierUnavailable, "unknown page type %q", ans.PageType)
	}

	evidence := ans.Evidence
	if evidence == nil {
		evidence = []string{}
	}

	return Verdict{
		PageType:   pageType,
		Confidence: min(max(ans.Confidence, 0), 1),
		Evidence:   evidence,
	}, nil
}
