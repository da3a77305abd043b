package extract_test

import (
	"factcrawler/internal/extract"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
		ok   bool
	}{
		{name: "international keeps plus", in: "+380 50 123 45 67", out: "+380501234567", ok: true},
		{name: "local digits", in: "(044) 123-45-67", out: "0441234567", ok: true},
		{name: "plus inside parenthesis", in: "(+49) 30 1234567", out: "+49301234567", ok: true},
		{name: "seven digits", in: "555-1234", out: "5551234", ok: true},
		{name: "fifteen digits", in: "+123456789012345", out: "+123456789012345", ok: true},
		{name: "too short", in: "12-34-56", ok: false},
		{name: "too long", in: "+1234567890123456", ok: false},
		{name: "all identical", in: "000 000 00", ok: false},
		{name: "date", in: "20231215", ok: false},
		{name: "date with separators", in: "2023-12-15", ok: false},
		{name: "bare year", in: "2024", ok: false},
		{name: "empty", in: "", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := extract.ValidatePhone(tc.in)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				require.Equal(t, tc.out, got)
			}
		})
	}
}

func TestValidatePhonePreservesPlus(t *testing.T) {
	for _, digits := range []string{"380501234567", "4930123456", "1234567", "861012345678"} {
		withPlus, ok := extract.ValidatePhone("+" + digits)
		require.True(t, ok)
		require.Equal(t, "+"+digits, withPlus)

		without, ok := extract.ValidatePhone(digits)
		require.True(t, ok)
		require.Equal(t, digits, without)
	}
}

func TestValidatePhoneRejectsDatesAndYears(t *testing.T) {
	for _, s := range []string{"20000101", "20231215", "20991231", "20123456"} {
		_, ok := extract.ValidatePhone(s)
		require.False(t, ok, s)
	}
	for _, s := range []string{"1999", "2000", "2024"} {
		_, ok := extract.ValidatePhone(s)
		require.False(t, ok, s)
	}
}

func TestExtractPhonesTelLinkRanksFirst(t *testing.T) {
	body := `<html><body>
<p>Founded in 2009, serving 1200 customers.</p>
<p>Our partner line: +44 20 7946 0958</p>
<a href="tel:+380501234567">Call us</a>
</body></html>`

	facts := extract.New(extract.DefaultWeights()).Extract(body, nil)

	require.NotEmpty(t, facts.Phones)
	require.Equal(t, extract.PhoneCandidate{Normalized: "+380501234567", Priority: 10}, facts.Phones[0])
	require.Contains(t, facts.PhoneNumbers(), "+442079460958")
}

func TestExtractPhonesDateIsRejected(t *testing.T) {
	facts := extract.New(extract.DefaultWeights()).Extract(`<p>Phone: 20231215</p>`, nil)
	require.Empty(t, facts.Phones)
}

func TestExtractPhonesSumsTiers(t *testing.T) {
	w := extract.DefaultWeights()
	body := `<html><body>
<main><p>Some text about 3D printing.</p></main>
<footer>
  <a href="tel:+49301234567">+49 30 1234567</a>
  <span>Telefon: +49 30 1234567</span>
</footer>
</body></html>`

	facts := extract.New(w).Extract(body, nil)

	require.Len(t, facts.Phones, 1)
	require.Equal(t, "+49301234567", facts.Phones[0].Normalized)
	want := w.TelLink + w.LabelStrong + w.IntlFormatted + w.Section
	require.Equal(t, want, facts.Phones[0].Priority)
}

func TestExtractPhonesMergesPlusVariant(t *testing.T) {
	body := `<html><body>
<p>Phone: 380 50 123 45 67</p>
<p>International: +380501234567</p>
</body></html>`

	facts := extract.New(extract.DefaultWeights()).Extract(body, nil)

	require.Len(t, facts.Phones, 1)
	require.Equal(t, "+380501234567", facts.Phones[0].Normalized)
}

func TestExtractPhonesLabelWindow(t *testing.T) {
	w := extract.DefaultWeights()
	body := `<p>Fax: 030 555 1234</p><p>Тел.: 044 123 45 67</p>`

	facts := extract.New(w).Extract(body, nil)

	got := map[string]int{}
	for _, p := range facts.Phones {
		got[p.Normalized] = p.Priority
	}
	require.Equal(t, w.LabelWeak, got["0305551234"])
	require.Equal(t, w.LabelStrong, got["0441234567"])
}

func TestExtractPhonesCap(t *testing.T) {
	w := extract.DefaultWeights()
	w.MaxPhones = 3

	body := `<footer>
<a href="tel:+15550000001">1</a><a href="tel:+15550000002">2</a>
<a href="tel:+15550000003">3</a><a href="tel:+15550000004">4</a>
</footer>`

	facts := extract.New(w).Extract(body, nil)
	require.Len(t, facts.Phones, 3)
	require.Equal(t, "+15550000001", facts.Phones[0].Normalized)
}

func TestExtractPhonesIgnoresIdentifiers(t *testing.T) {
	body := `<p>Order ID12345678901 shipped.</p><p>SKU 1111111111</p>`

	facts := extract.New(extract.DefaultWeights()).Extract(body, nil)
	require.Empty(t, facts.Phones)
}
