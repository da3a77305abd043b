package country_test

import (
	"context"
	"errors"
	"factcrawler/internal/country"
	"factcrawler/pkg/domain"
	mockllm "factcrawler/pkg/llm/mock"
	"factcrawler/pkg/serrors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLLMResolver(t *testing.T) {
	cases := []struct {
		name       string
		completion string
		want       domain.CountrySignal
	}{
		{
			name:       "fenced answer",
			completion: "```json\n{\"iso2\": \"ge\", \"confidence\": \"HIGH\", \"confidenceScore\": 0.85}\n```",
			want:       domain.CountrySignal{ISO2: "GE", Tier: domain.TierLLM, Score: 0.85, Source: domain.CountrySourceLLM},
		},
		{
			name:       "score clamped",
			completion: `{"iso2": "US", "confidence": "WEAK", "confidenceScore": 7}`,
			want:       domain.CountrySignal{ISO2: "US", Tier: domain.TierLLM, Score: 1, Source: domain.CountrySourceLLM},
		},
		{
			name:       "missing score uses confidence word",
			completion: `{"iso2": "UK", "confidence": "HIGH"}`,
			want:       domain.CountrySignal{ISO2: "GB", Tier: domain.TierLLM, Score: 0.7, Source: domain.CountrySourceLLM},
		},
		{
			name:       "model does not know",
			completion: `{"iso2": "", "confidence": "WEAK", "confidenceScore": 0.1}`,
			want:       domain.UnknownCountry(),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			completer := mockllm.NewMockCompleter(ctrl)
			completer.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return(tc.completion, nil)

			got, err := country.NewLLMResolver(completer).Resolve(context.Background(), "Tbilisi office", "example.com")
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestLLMResolverFailures(t *testing.T) {
	cases := []struct {
		name       string
		completion string
		err        error
	}{
		{name: "service down", err: errors.New("connection refused")},
		{name: "prose", completion: "It is probably Germany."},
		{name: "truncated", completion: `{"iso2": "D`},
		{name: "invalid code", completion: `{"iso2": "ZZ"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			completer := mockllm.NewMockCompleter(ctrl)
			completer.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return(tc.completion, tc.err)

			_, err := country.NewLLMResolver(completer).Resolve(context.Background(), "text", "example.com")
			require.ErrorIs(t, err, serrors.ErrCountryLLMUnavailable)
		})
	}
}

func TestLLMResolverTruncatesSnippet(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := mockllm.NewMockCompleter(ctrl)
	completer.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, system, user string) (string, error) {
			require.Contains(t, system, "ISO 3166-1")
			require.Less(t, len(user), 3000)

			return `{"iso2": "FR"}`, nil
		})

	got, err := country.NewLLMResolver(completer).Resolve(context.Background(), strings.Repeat("a", 10000), "example.com")
	require.NoError(t, err)
	require.Equal(t, "FR", got.ISO2)
	require.InDelta(t, 0.5, got.Score, 0.001)
}
