package crawl_test

import (
	"context"
	"factcrawler/internal/classify"
	"factcrawler/internal/country"
	"factcrawler/internal/crawl"
	"factcrawler/internal/extract"
	"factcrawler/internal/fetcher"
	mockfetcher "factcrawler/internal/fetcher/mock"
	"factcrawler/pkg/domain"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const homepage = "https://acme.test"

var site = domain.Site{Homepage: homepage, Domain: "acme.test"} //nolint: gochecknoglobals

func newCrawler(f fetcher.Fetcher) *crawl.Crawler {
	return crawl.New(crawl.Deps{
		Fetcher:    f,
		Extractor:  extract.New(extract.DefaultWeights()),
		Classifier: classify.Heuristic{},
		Country:    country.New(nil),
	}, crawl.Options{MaxPages: 7})
}

func page(url, body string) *fetcher.Page {
	return &fetcher.Page{URL: url, Body: body, ContentType: "text/html", Size: len(body), FetchedAt: time.Now()}
}

func expectPage(f *mockfetcher.MockFetcher, url, body string) *gomock.Call {
	return f.EXPECT().Fetch(gomock.Any(), url).Return(page(url, body), nil)
}

func TestCrawlStopsAfterHomepageWithEmailAndPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := mockfetcher.NewMockFetcher(ctrl)
	expectPage(f, homepage, `<html><body>
		<a href="/contact">Contact</a>
		<a href="mailto:info@acme.test">Write</a>
		<a href="tel:+380501234567">Call us</a>
	</body></html>`).Times(1)

	res := newCrawler(f).Crawl(context.Background(), site, 0, nil)

	require.Equal(t, domain.CrawlStatusCompleted, res.Status)
	require.Equal(t, 1, res.PagesAnalyzed)
	require.Equal(t, []string{"info@acme.test"}, res.Emails)
	require.Equal(t, []string{"+380501234567"}, res.Phones)
	require.NotNil(t, res.Country)
	require.Equal(t, "UA", res.Country.ISO2)
	require.Len(t, res.Pages, 1)
}

func TestCrawlHomepageUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := mockfetcher.NewMockFetcher(ctrl)
	f.EXPECT().Fetch(gomock.Any(), homepage).
		Return(nil, &fetcher.Error{Reason: fetcher.ReasonTimeout, URL: homepage})

	res := newCrawler(f).Crawl(context.Background(), site, 0, nil)

	require.Equal(t, domain.CrawlStatusFailed, res.Status)
	require.Equal(t, "HOMEPAGE_UNREACHABLE", res.Error)
	require.Equal(t, 0, res.PagesAnalyzed)
	require.False(t, res.ContactFound)
	require.Empty(t, res.Emails)
	require.Equal(t, []domain.PageTrace{{URL: homepage, Error: "FETCH_TIMEOUT"}}, res.Pages)
}

func TestCrawlVisitsContactCandidatesFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := mockfetcher.NewMockFetcher(ctrl)
	gomock.InOrder(
		expectPage(f, homepage, `<a href="/products">Products</a><a href="/blog">Blog</a>
			<a href="/contact">Contact</a><a href="mailto:info@acme.test">Mail</a>`),
		expectPage(f, homepage+"/contact", `<h1>Contact us</h1><p>Phone: +49 30 1234567</p>`),
	)

	res := newCrawler(f).Crawl(context.Background(), site, 0, nil)

	require.Equal(t, 2, res.PagesAnalyzed)
	require.True(t, res.ContactFound)
	require.Equal(t, []string{"info@acme.test"}, res.Emails)
	require.Equal(t, []string{"+49301234567"}, res.Phones)
	require.Equal(t, "CONTACT", res.Pages[1].PageType)
}

func TestCrawlRanksLinksByAnchorText(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := mockfetcher.NewMockFetcher(ctrl)
	gomock.InOrder(
		expectPage(f, homepage, `<a href="/products">Products</a><a href="/page?id=12">Contact us</a>`),
		expectPage(f, homepage+"/page?id=12", `<h1>Contact us</h1><p>Phone: +49 30 1234567</p>`),
	)

	res := newCrawler(f).Crawl(context.Background(), site, 0, nil)

	require.Equal(t, 2, res.PagesAnalyzed)
	require.True(t, res.ContactFound)
}

func TestCrawlSkipsFailedPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := mockfetcher.NewMockFetcher(ctrl)
	gomock.InOrder(
		expectPage(f, homepage, `<a href="/contact">Contact</a><a href="/about-us">About</a>`),
		f.EXPECT().Fetch(gomock.Any(), homepage+"/contact").
			Return(nil, &fetcher.Error{Reason: fetcher.ReasonBadStatus, URL: homepage + "/contact", Status: 500}),
		expectPage(f, homepage+"/about-us", `<h1>About us</h1><p>Family business since 1990.</p>`),
	)

	res := newCrawler(f).Crawl(context.Background(), site, 0, nil)

	require.Equal(t, domain.CrawlStatusCompleted, res.Status)
	require.Equal(t, 2, res.PagesAnalyzed)
	require.False(t, res.ContactFound)
	require.True(t, res.AboutFound)
	require.Len(t, res.Pages, 3)
	require.Equal(t, "FETCH_BAD_STATUS", res.Pages[1].Error)
}

func TestCrawlRespectsPageBudget(t *testing.T) {
	var body string
	for i := range 9 {
		body += fmt.Sprintf(`<a href="/page-%d">Page</a>`, i)
	}

	ctrl := gomock.NewController(t)
	f := mockfetcher.NewMockFetcher(ctrl)
	expectPage(f, homepage, body)
	f.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, url string) (*fetcher.Page, error) {
		return page(url, "<p>nothing here</p>"), nil
	}).Times(2)

	res := newCrawler(f).Crawl(context.Background(), site, 3, nil)

	require.Equal(t, 3, res.PagesAnalyzed)
	require.Equal(t, homepage+"/page-0", res.Pages[1].URL)
	require.Equal(t, homepage+"/page-1", res.Pages[2].URL)
}

func TestCrawlFollowsOverflowLinksOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := mockfetcher.NewMockFetcher(ctrl)
	gomock.InOrder(
		expectPage(f, homepage, `<a href="/products">Products</a><a href="/">Home</a>`),
		expectPage(f, homepage+"/products", `<a href="/products">Products</a><a href="/">Home</a>
			<a href="/team">Team</a>`),
		expectPage(f, homepage+"/team", `<a href="/products">Products</a>
			<p>Reach Anna at anna@acme.test or tel. +43 1 234 5678</p>`),
	)

	res := newCrawler(f).Crawl(context.Background(), site, 0, nil)

	require.Equal(t, 3, res.PagesAnalyzed)
	require.Equal(t, []string{"anna@acme.test"}, res.Emails)
	require.Equal(t, []string{"+4312345678"}, res.Phones)
}

func TestCrawlFollowsRedirectedHomepage(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := mockfetcher.NewMockFetcher(ctrl)
	gomock.InOrder(
		f.EXPECT().Fetch(gomock.Any(), "http://acme.test").
			Return(page("https://www.acme.test", `<a href="/kontakt">Kontakt</a><a href="/">Start</a>`), nil),
		expectPage(f, "https://www.acme.test/kontakt", `<h1>Kontakt</h1>`),
	)

	res := newCrawler(f).Crawl(context.Background(), domain.Site{Homepage: "http://acme.test"}, 0, nil)

	require.Equal(t, "acme.test", res.Domain)
	require.Equal(t, 2, res.PagesAnalyzed)
	require.True(t, res.ContactFound)
}

func TestCrawlSkipsPagesRedirectedOffSite(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := mockfetcher.NewMockFetcher(ctrl)
	gomock.InOrder(
		expectPage(f, homepage, `<a href="/contact">Contact</a><a href="/about-us">About</a>`),
		f.EXPECT().Fetch(gomock.Any(), homepage+"/contact").
			Return(page("https://forms.vendor.test/acme", `<h1>Contact</h1> sales@vendor.test +1 415 555 0123`), nil),
		expectPage(f, homepage+"/about-us", `<h1>About us</h1><p>Family business since 1990.</p>`),
	)

	res := newCrawler(f).Crawl(context.Background(), site, 0, nil)

	require.Empty(t, res.Emails)
	require.Empty(t, res.Phones)
	require.False(t, res.ContactFound)
	require.True(t, res.AboutFound)
	require.Equal(t, 2, res.PagesAnalyzed)
	require.Equal(t, domain.PageTrace{URL: homepage + "/contact", Error: crawl.ReasonOffSite}, res.Pages[1])
}

func TestCrawlIgnoresOffSiteRedirectTarget(t *testing.T) {
	var formURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		switch r.URL.Path {
		case "/":
			_, _ = fmt.Fprint(w, `<html><body><a href="/contact">Contact</a></body></html>`)
		case "/contact":
			http.Redirect(w, r, formURL, http.StatusFound)
		case "/form":
			_, _ = fmt.Fprint(w, `<html><body><h1>Contact</h1>
				<a href="mailto:sales@vendor-forms.test">Mail</a> <a href="tel:+14155550123">Call</a></body></html>`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	// same listener, different host name
	formURL = "http://localhost:" + u.Port() + "/form"

	f := fetcher.New(fetcher.Options{Timeout: 2 * time.Second, MaxBytes: 1 << 20, UserAgent: "test"}, nil)
	res := newCrawler(f).Crawl(context.Background(), domain.Site{Homepage: srv.URL, Domain: "acme.test"}, 0, nil)

	require.Equal(t, domain.CrawlStatusCompleted, res.Status)
	require.Empty(t, res.Emails)
	require.Empty(t, res.Phones)
	require.False(t, res.ContactFound)
	require.Nil(t, res.Country)
	require.Equal(t, 1, res.PagesAnalyzed)
	require.Len(t, res.Pages, 2)
	require.Equal(t, crawl.ReasonOffSite, res.Pages[1].Error)
	for _, p := range res.Pages {
		require.NotContains(t, p.URL, "localhost")
	}
}

func TestCrawlMatchesBrands(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := mockfetcher.NewMockFetcher(ctrl)
	expectPage(f, homepage, `<p>Official ACME Rocket dealer. info@acme.test, +44 20 7946 0958</p>`)

	res := newCrawler(f).Crawl(context.Background(), site, 0, extract.NewDictionary([]string{"Acme Rocket", "Zenith"}))

	require.Equal(t, []string{"Acme Rocket"}, res.Brands)
}

func TestCrawlStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	ctrl := gomock.NewController(t)
	f := mockfetcher.NewMockFetcher(ctrl)
	f.EXPECT().Fetch(gomock.Any(), homepage).DoAndReturn(func(context.Context, string) (*fetcher.Page, error) {
		cancel()

		return page(homepage, `<a href="/contact">Contact</a>`), nil
	})

	res := newCrawler(f).Crawl(ctx, site, 0, nil)
	require.Equal(t, 1, res.PagesAnalyzed)
	require.Equal(t, domain.CrawlStatusCompleted, res.Status)
}
