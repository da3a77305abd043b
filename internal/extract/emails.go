package extract

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	emailRe = regexp.MustCompile( //nolint: gochecknoglobals
		`(?i)[a-z0-9](?:[a-z0-9._%+\-]{0,62}[a-z0-9_\-])?@(?:[a-z0-9](?:[a-z0-9\-]{0,61}[a-z0-9])?\.)+[a-z]{2,24}`)
	// obfuscatedEmailRe matches "info [at] example [dot] com" style spellings.
	obfuscatedEmailRe = regexp.MustCompile( //nolint: gochecknoglobals
		`(?i)([a-z0-9._%+\-]+)\s*[\[(]\s*at\s*[\])]\s*([a-z0-9\-]+(?:\s*[\[(]\s*dot\s*[\])]\s*[a-z0-9\-]+)+)`)
	obfuscatedDotRe = regexp.MustCompile(`(?i)\s*[\[(]\s*dot\s*[\])]\s*`) //nolint: gochecknoglobals
	hexLocalRe      = regexp.MustCompile(`^[0-9a-f]{24,}$`)               //nolint: gochecknoglobals
)

// blockedEmailDomains are template placeholders and the infrastructure domains
// that show up in tracking snippets. Subdomains are blocked too. Registrable
// generic names such as company.com are real mailboxes and stay allowed.
var blockedEmailDomains = []string{ //nolint: gochecknoglobals
	"example.com", "example.org", "example.net", "yourdomain.com", "yoursite.com", "yourcompany.com",
	"sentry.io", "wixpress.com", "mailchimp.com", "sendgrid.net", "amazonses.com", "googlegroups.com",
	"cloudflare.com", "schema.org", "w3.org", "jquery.com",
}

// blockedEmailLocals are generated or role addresses nobody reads.
var blockedEmailLocals = map[string]struct{}{ //nolint: gochecknoglobals
	"noreply": {}, "no-reply": {}, "no_reply": {}, "donotreply": {}, "do-not-reply": {}, "do_not_reply": {},
	"mailer-daemon": {}, "postmaster": {}, "bounce": {}, "bounces": {}, "example": {}, "yourname": {},
	"your-name": {}, "youremail": {}, "your-email": {}, "name": {}, "email": {}, "user": {}, "username": {},
	"test": {}, "johndoe": {}, "john.doe": {}, "someone": {},
}

// assetSuffixes are file extensions that look like TLDs in retina image names such as logo@2x.png.
var assetSuffixes = []string{ //nolint: gochecknoglobals
	".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".ico", ".bmp", ".tif", ".tiff", ".avif", ".css", ".js",
	".mp4", ".webm", ".woff", ".woff2", ".ttf", ".eot", ".map",
}

// extractEmails collects addresses from mailto links, the visible text and
// the raw markup, in that order.
func extractEmails(doc *goquery.Document, text string, raw string) []string {
	var found []string

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if len(href) < 7 || !strings.EqualFold(href[:7], "mailto:") {
			return
		}
		addr := href[7:]
		if i := strings.IndexByte(addr, '?'); i >= 0 {
			addr = addr[:i]
		}
		if unescaped, err := url.PathUnescape(addr); err == nil {
			addr = unescaped
		}
		for _, part := range strings.Split(addr, ",") {
			found = append(found, emailRe.FindAllString(part, -1)...)
		}
	})

	found = append(found, emailRe.FindAllString(text, -1)...)
	for _, m := range obfuscatedEmailRe.FindAllStringSubmatch(text, -1) {
		found = append(found, m[1]+"@"+obfuscatedDotRe.ReplaceAllString(m[2], "."))
	}
	for _, loc := range emailRe.FindAllStringIndex(raw, -1) {
		start := loc[0]
		// percent-encoded prefix such as "mailto:%20info@..."
		if start > 0 && raw[start-1] == '%' && loc[1]-start > 2 {
			start += 2
		}
		found = append(found, raw[start:loc[1]])
	}

	seen := make(map[string]struct{}, len(found))
	emails := make([]string, 0, len(found))
	for _, e := range found {
		e, ok := cleanEmail(e)
		if !ok {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		emails = append(emails, e)
	}

	return emails
}

// cleanEmail case-folds an address and reports whether it survives the blacklist.
func cleanEmail(e string) (string, bool) {
	e = strings.ToLower(strings.Trim(e, ".-_"))
	// JSON-escaped markup leaves "u003e" in front of addresses.
	for _, prefix := range []string{"u003e", "u003c", "x3e"} {
		if strings.HasPrefix(e, prefix) && emailRe.MatchString(e[len(prefix):]) {
			e = e[len(prefix):]
		}
	}

	at := strings.LastIndexByte(e, '@')
	if at <= 0 {
		return "", false
	}
	local, host := e[:at], e[at+1:]

	for _, suffix := range assetSuffixes {
		if strings.HasSuffix(host, suffix) {
			return "", false
		}
	}
	if _, blocked := blockedEmailLocals[local]; blocked {
		return "", false
	}
	if hexLocalRe.MatchString(local) {
		return "", false
	}
	for _, d := range blockedEmailDomains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return "", false
		}
	}

	return e, true
}

// IsBlockedEmail reports whether addr would be dropped by the email filter.
func IsBlockedEmail(addr string) bool {
	_, ok := cleanEmail(addr)

	return !ok
}
