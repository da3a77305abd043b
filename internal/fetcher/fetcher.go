// Package fetcher retrieves a single page under strict time and size budgets.
package fetcher

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"factcrawler/internal/config"
	"factcrawler/internal/links"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
)

// Page is a successfully fetched document, decoded to UTF-8.
type Page struct {
	// URL is the normalized address the document was finally served from.
	URL         string
	Body        string
	ContentType string
	// Size is the number of bytes read from the wire after content decoding.
	Size      int
	FetchedAt time.Time
}

// Options bound every fetch.
type Options struct {
	// Timeout is the wall time allowed for connect, headers and body together.
	Timeout time.Duration
	// MaxBytes is the largest decoded body accepted. Larger bodies fail with ReasonTooLarge.
	MaxBytes  int64
	UserAgent string
}

// NewOptions builds fetch options from application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Timeout:   cfg.Crawler.FetchTimeout,
		MaxBytes:  cfg.Crawler.MaxBytes,
		UserAgent: cfg.Crawler.UserAgent,
	}
}

type fetcher struct {
	opts   Options
	client *http.Client
}

var _ Fetcher = (*fetcher)(nil)

// New returns a Fetcher. A nil client uses a dedicated client with the
// transport defaults of net/http.
func New(opts Options, client *http.Client) Fetcher {
	if client == nil {
		client = &http.Client{}
	}

	return &fetcher{opts: opts, client: client}
}

// Fetch retrieves url. The returned error is always an *Error.
func (f *fetcher) Fetch(ctx context.Context, url string) (*Page, error) {
	if f.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{Reason: ReasonNetwork, URL: url, Err: err}
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,text/*;q=0.8")
	req.Header.Set("Accept-Encoding", "gzip")
	if f.opts.UserAgent != "" {
		req.Header.Set("User-Agent", f.opts.UserAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, transportError(ctx, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Reason: ReasonBadStatus, URL: url, Status: resp.StatusCode}
	}

	contentType := resp.Header.Get("Content-Type")
	if !isTextual(contentType) {
		return nil, &Error{Reason: ReasonNotHTML, URL: url, ContentType: contentType}
	}

	gzipped := strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip")
	if !gzipped && f.opts.MaxBytes > 0 && resp.ContentLength > f.opts.MaxBytes {
		return nil, &Error{Reason: ReasonTooLarge, URL: url}
	}

	var body io.Reader = resp.Body
	if gzipped {
		zr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, transportError(ctx, url, err)
		}
		defer zr.Close()
		body = zr
	}

	raw, err := readLimited(body, f.opts.MaxBytes)
	if err != nil {
		if errors.Is(err, errTooLarge) {
			return nil, &Error{Reason: ReasonTooLarge, URL: url}
		}

		return nil, transportError(ctx, url, err)
	}

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}
	if n, err := links.Normalize(finalURL); err == nil {
		finalURL = n
	}

	return &Page{
		URL:         finalURL,
		Body:        decode(raw, contentType),
		ContentType: contentType,
		Size:        len(raw),
		FetchedAt:   time.Now().UTC(),
	}, nil
}

var errTooLarge = errors.New("body exceeds limit")

// readLimited reads at most limit bytes and fails instead of truncating.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, errTooLarge
	}

	return data, nil
}

func transportError(ctx context.Context, url string, err error) *Error {
	var netErr net.Error
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return &Error{Reason: ReasonTimeout, URL: url, Err: err}
	}

	return &Error{Reason: ReasonNetwork, URL: url, Err: err}
}

// isTextual accepts HTML and other text documents. A missing content type is
// accepted since many small sites omit it.
func isTextual(contentType string) bool {
	if strings.TrimSpace(contentType) == "" {
		return true
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	switch {
	case strings.HasPrefix(mediaType, "text/"):
		return true
	case mediaType == "application/xhtml+xml", mediaType == "application/xml":
		return true
	default:
		return false
	}
}

// decode converts raw to UTF-8 using the declared or sniffed charset.
// Sniffing only looks at the first kilobyte, so a body that is valid UTF-8
// as a whole wins over an uncertain guess.
func decode(raw []byte, contentType string) string {
	enc, name, certain := charset.DetermineEncoding(raw, contentType)
	if enc == nil || name == "utf-8" || (!certain && utf8.Valid(raw)) {
		return string(bytes.ToValidUTF8(raw, []byte("�")))
	}

	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return string(bytes.ToValidUTF8(raw, []byte("�")))
	}

	return string(out)
}

// String implements fmt.Stringer for log fields.
func (p *Page) String() string {
	return fmt.Sprintf("%s (%d bytes)", p.URL, p.Size)
}
