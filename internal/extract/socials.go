package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// socialHosts maps a profile host to its network name.
var socialHosts = map[string]string{ //nolint: gochecknoglobals
	"linkedin.com":  "linkedin",
	"facebook.com":  "facebook",
	"fb.com":        "facebook",
	"instagram.com": "instagram",
	"twitter.com":   "x",
	"x.com":         "x",
	"youtube.com":   "youtube",
	"tiktok.com":    "tiktok",
	"t.me":          "telegram",
	"telegram.me":   "telegram",
	"github.com":    "github",
}

// sharePaths are widget endpoints that link to the network, not to a profile.
var sharePaths = []string{ //nolint: gochecknoglobals
	"/sharer", "/share", "/intent", "/sharearticle", "/dialog", "/plugins", "/watch", "/embed", "/hashtag",
}

// extractSocials returns the first profile link per network.
func extractSocials(doc *goquery.Document) map[string]string {
	out := make(map[string]string)
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		u, err := url.Parse(strings.TrimSpace(href))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return
		}

		host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
		host = strings.TrimPrefix(host, "m.")
		network, ok := socialHosts[host]
		if !ok {
			return
		}
		if _, taken := out[network]; taken {
			return
		}

		p := strings.ToLower(strings.TrimRight(u.Path, "/"))
		if p == "" {
			return
		}
		for _, share := range sharePaths {
			if strings.HasPrefix(p, share) {
				return
			}
		}

		u.RawQuery = ""
		u.Fragment = ""
		out[network] = strings.TrimRight(u.String(), "/")
	})

	return out
}
