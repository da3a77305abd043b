package links_test

import (
	"factcrawler/internal/links"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
		ok   bool
	}{
		{name: "lowercase scheme and host, root has no path", in: "HTTP://Example.COM", out: "http://example.com", ok: true},
		{name: "root trailing slash stripped", in: "https://example.com/", out: "https://example.com", ok: true},
		{name: "remove default http port", in: "http://example.com:80/path", out: "http://example.com/path", ok: true},
		{name: "remove default https port", in: "https://example.com:443/", out: "https://example.com", ok: true},
		{name: "keep non-default port", in: "http://example.com:8080/", out: "http://example.com:8080", ok: true},
		{name: "clean path and drop trailing slash", in: "http://example.com//a/./b/../c/", out: "http://example.com/a/c", ok: true},
		{name: "lowercase path", in: "https://example.com/Contact-Us/", out: "https://example.com/contact-us", ok: true},
		{
			name: "sort query keys and values",
			in:   "http://EXAMPLE.com/path?b=2&a=2&a=1",
			out:  "http://example.com/path?a=1&a=2&b=2",
			ok:   true,
		},
		{name: "remove fragment", in: "https://example.com/about#team", out: "https://example.com/about", ok: true},
		{name: "ipv6 host with port", in: "http://[2001:db8::1]:8080/a", out: "http://[2001:db8::1]:8080/a", ok: true},
		{name: "ipv6 host with default port", in: "https://[2001:db8::1]:443/a", out: "https://[2001:db8::1]/a", ok: true},
		{name: "relative reference", in: "/contact", ok: false},
		{name: "unparsable", in: "http://[::1", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := links.Normalize(tc.in)
			if tc.ok && err != nil {
				t.Fatalf("expected ok, got error: %v", err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatalf("expected error, got nil (out=%q)", got)
				}

				return
			}
			if got != tc.out {
				t.Fatalf("Normalize(%q) = %q; want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"HTTP://Example.COM:80//A/b/../C/?z=1&a=2#frag",
		"https://www.example.com/kontakt/",
		"https://example.com",
	}
	for _, in := range inputs {
		once, err := links.Normalize(in)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", in, err)
		}
		twice, err := links.Normalize(once)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", once, err)
		}
		if once != twice {
			t.Fatalf("not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

func TestSameSite(t *testing.T) {
	if !links.SameSite("https://www.example.com/a", "http://example.com/b") {
		t.Fatalf("www and bare host should be the same site")
	}
	if links.SameSite("https://shop.example.com", "https://example.com") {
		t.Fatalf("subdomain should not be the same site")
	}
	if links.SameSite("not a url", "") {
		t.Fatalf("empty hosts should never match")
	}
}
