// Package links discovers same-site page links in an HTML document.
package links

import (
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Result holds the links discovered on one page.
type Result struct {
	// Links are normalized same-site URLs in discovery order, without duplicates.
	Links []string
	// Anchors maps a link to the first non-empty text it was linked with. The
	// text falls back to the title and aria-label attributes.
	Anchors map[string]string
	// SitemapURL is the sitemap the page references, if any. It is never fetched.
	SitemapURL string
}

// skippedExtensions are file types that never carry contact information.
var skippedExtensions = map[string]struct{}{ //nolint: gochecknoglobals
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {}, ".svg": {}, ".ico": {}, ".bmp": {}, ".tif": {},
	".tiff": {}, ".avif": {}, ".heic": {},
	".pdf": {}, ".doc": {}, ".docx": {}, ".xls": {}, ".xlsx": {}, ".ppt": {}, ".pptx": {}, ".odt": {}, ".rtf": {},
	".csv": {},
	".zip": {}, ".rar": {}, ".7z": {}, ".gz": {}, ".tgz": {}, ".tar": {}, ".bz2": {}, ".dmg": {}, ".exe": {},
	".msi": {}, ".apk": {}, ".iso": {}, ".bin": {},
	".mp3": {}, ".mp4": {}, ".wav": {}, ".ogg": {}, ".avi": {}, ".mov": {}, ".wmv": {}, ".webm": {}, ".m4a": {},
	".flv": {},
	".css": {}, ".js": {}, ".mjs": {}, ".map": {}, ".json": {}, ".xml": {}, ".rss": {}, ".atom": {}, ".txt": {},
	".woff": {}, ".woff2": {}, ".ttf": {}, ".otf": {}, ".eot": {},
}

// skippedPathPrefixes are site areas that host assets or tooling rather than pages.
var skippedPathPrefixes = []string{ //nolint: gochecknoglobals
	"/cdn-cgi/", "/wp-content/uploads/", "/wp-includes/", "/wp-json/", "/wp-admin/", "/assets/", "/static/",
	"/images/", "/img/", "/media/", "/fonts/", "/feed/", "/xmlrpc.php", "/cart", "/checkout", "/login",
	"/wp-login.php",
}

// Extract returns the same-site links of body resolved against baseURL.
// A body that cannot be parsed yields an empty result.
func Extract(body string, baseURL string) Result {
	res := Result{Links: []string{}, Anchors: map[string]string{}}

	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return res
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return res
	}

	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		if b, err := base.Parse(strings.TrimSpace(href)); err == nil && b.Host != "" {
			base = b
		}
	}

	seen := make(map[string]struct{})
	doc.Find("a[href], area[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		u, ok := resolve(base, href)
		if !ok {
			return
		}

		if res.SitemapURL == "" && isSitemap(u) && sameHost(u.Hostname(), base.Hostname()) {
			res.SitemapURL = u.String()
		}
		if !keep(u, base) {
			return
		}
		// www and bare hosts serve the same site; crawl it under the base spelling.
		if u.Hostname() != base.Hostname() {
			u.Host = base.Host
		}

		n, err := Normalize(u.String())
		if err != nil {
			return
		}
		if text := anchorText(s); text != "" {
			if _, ok := res.Anchors[n]; !ok {
				res.Anchors[n] = text
			}
		}
		if _, dup := seen[n]; dup {
			return
		}
		seen[n] = struct{}{}
		res.Links = append(res.Links, n)
	})

	if res.SitemapURL == "" {
		if href, ok := doc.Find(`link[rel="sitemap"][href]`).First().Attr("href"); ok {
			if u, ok := resolve(base, href); ok {
				res.SitemapURL = u.String()
			}
		}
	}

	return res
}

func anchorText(s *goquery.Selection) string {
	if text := strings.Join(strings.Fields(s.Text()), " "); text != "" {
		return text
	}
	for _, attr := range []string{"title", "aria-label", "alt"} {
		if v, ok := s.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return strings.Join(strings.Fields(v), " ")
		}
	}

	return ""
}

func resolve(base *url.URL, href string) (*url.URL, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return nil, false
	}

	lower := strings.ToLower(href)
	for _, scheme := range []string{"javascript:", "mailto:", "tel:", "data:", "sms:", "callto:", "whatsapp:"} {
		if strings.HasPrefix(lower, scheme) {
			return nil, false
		}
	}

	u, err := base.Parse(href)
	if err != nil {
		return nil, false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, false
	}

	return u, true
}

func keep(u *url.URL, base *url.URL) bool {
	if !sameHost(u.Hostname(), base.Hostname()) {
		return false
	}

	p := strings.ToLower(u.Path)
	if _, skip := skippedExtensions[path.Ext(p)]; skip {
		return false
	}
	for _, prefix := range skippedPathPrefixes {
		dir := strings.TrimSuffix(prefix, "/")
		if p == dir || strings.HasPrefix(p, dir+"/") {
			return false
		}
	}

	return true
}

func sameHost(a, b string) bool {
	return bareHost(a) == bareHost(b)
}

func isSitemap(u *url.URL) bool {
	p := strings.ToLower(u.Path)

	return strings.Contains(path.Base(p), "sitemap") && (path.Ext(p) == ".xml" || path.Ext(p) == ".gz")
}
