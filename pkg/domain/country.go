package domain

// CountryTier orders country evidence by strength. A larger value is stronger.
type CountryTier int

const (
	// TierNone marks an absent signal.
	TierNone CountryTier = iota
	// TierLLM is evidence inferred by a language model from page text.
	TierLLM
	// TierWeak is indirect evidence such as a country-code TLD.
	TierWeak
	// TierHigh is direct evidence from a postal address or dialing code.
	TierHigh
)

func (t CountryTier) String() string {
	switch t {
	case TierHigh:
		return "HIGH"
	case TierWeak:
		return "WEAK"
	case TierLLM:
		return "LLM"
	default:
		return "NONE"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t CountryTier) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *CountryTier) UnmarshalText(b []byte) error {
	switch string(b) {
	case "HIGH":
		*t = TierHigh
	case "WEAK":
		*t = TierWeak
	case "LLM":
		*t = TierLLM
	default:
		*t = TierNone
	}

	return nil
}

// CountrySource names the evidence a CountrySignal was derived from.
type CountrySource string

const (
	CountrySourceAddress CountrySource = "ADDRESS"
	CountrySourcePhone   CountrySource = "PHONE"
	CountrySourceTLD     CountrySource = "TLD"
	CountrySourceLLM     CountrySource = "LLM"
	CountrySourceUnknown CountrySource = "UNKNOWN"
)

// CountrySignal is a country guess with its provenance.
// An empty ISO2 means the country is unknown.
type CountrySignal struct {
	// ISO2 is the upper-case ISO 3166-1 alpha-2 code.
	ISO2   string        `json:"iso2,omitempty"`
	Tier   CountryTier   `json:"tier"`
	Score  float64       `json:"score"`
	Source CountrySource `json:"source"`
}

// UnknownCountry is the signal returned when no evidence was found.
func UnknownCountry() CountrySignal {
	return CountrySignal{Tier: TierNone, Source: CountrySourceUnknown}
}

// Known reports whether the signal names a country.
func (c CountrySignal) Known() bool { return c.ISO2 != "" }
