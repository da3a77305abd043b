package domain

import "time"

// SuggestionField is the closed set of record fields an enrichment can fill.
type SuggestionField string

const (
	FieldEmail   SuggestionField = "email"
	FieldPhone   SuggestionField = "phone"
	FieldCountry SuggestionField = "country"
	FieldWebsite SuggestionField = "website"
	FieldSocial  SuggestionField = "social"
)

// Suggestion is one proposed value for a record field.
type Suggestion struct {
	Field SuggestionField `json:"field"`
	// Network qualifies social suggestions, e.g. "linkedin".
	Network    string  `json:"network,omitempty"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
	// Source is the URL or stage the value was found at.
	Source string `json:"source"`

	CreatedAt time.Time `json:"createdAt"`
}

// Key identifies the record slot a suggestion fills. Social suggestions are
// keyed per network so a record can hold one profile of each.
func (s Suggestion) Key() string {
	switch s.Field {
	case FieldSocial:
		return string(s.Field) + "." + s.Network
	case FieldEmail, FieldPhone, FieldCountry, FieldWebsite:
		return string(s.Field)
	}

	return string(s.Field)
}
