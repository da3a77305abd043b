package links

import (
	"fmt"
	"net"
	"net/url"
	"path"
	"sort"
	"strings"
)

// Normalize returns the canonical form of a page URL. Two URLs that point at
// the same page on a typical site normalize to the same string, which makes
// the result usable as a visited-set key:
//   - scheme, host and path are lower-cased
//   - the path is cleaned and loses its trailing slash; the root page has no path
//   - default ports are dropped
//   - query parameters are sorted by key and value
//   - the fragment is removed
func Normalize(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("could not parse URL: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("URL %q has no host", raw)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = normalizeHost(u.Scheme, u.Host)

	p := strings.ToLower(u.Path)
	if p != "" {
		p = path.Clean("/" + p)
	}
	p = strings.TrimRight(p, "/")
	u.Path = p
	u.RawPath = ""

	if u.RawQuery != "" {
		q := u.Query()
		for k := range q {
			sort.Strings(q[k])
		}
		u.RawQuery = q.Encode()
	}
	u.Fragment = ""
	u.RawFragment = ""
	u.User = nil

	return u.String(), nil
}

func normalizeHost(scheme, hostport string) string {
	host := strings.ToLower(hostport)
	h, port, err := net.SplitHostPort(host)
	if err != nil {
		return strings.TrimSuffix(host, ".")
	}
	h = strings.TrimSuffix(h, ".")
	if (scheme == "http" && port == "80") || (scheme == "https" && port == "443") {
		if strings.Contains(h, ":") {
			return "[" + h + "]"
		}

		return h
	}

	return net.JoinHostPort(h, port)
}

// Hostname returns the lower-cased host of raw without port and without a
// leading "www.", or an empty string when raw has no host.
func Hostname(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}

	return bareHost(u.Hostname())
}

func bareHost(host string) string {
	host = strings.TrimSuffix(strings.ToLower(host), ".")

	return strings.TrimPrefix(host, "www.")
}

// SameSite reports whether a and b share a hostname, ignoring a "www." prefix.
func SameSite(a, b string) bool {
	ha := Hostname(a)

	return ha != "" && ha == Hostname(b)
}
