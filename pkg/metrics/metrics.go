// Package metrics provides the OpenTelemetry instruments of the crawler and
// the HTTP API, exported to Prometheus.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// crawlBuckets covers whole site crawls, which take seconds to minutes.
var crawlBuckets = []float64{.5, 1, 2.5, 5, 10, 20, 30, 60, 120} //nolint: gochecknoglobals

const meterName = "factcrawler"

// NewMeterProvider returns a meter provider whose instruments are served by the
// default Prometheus registry.
func NewMeterProvider(registerer prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// Crawl holds the crawl instruments. A nil *Crawl records nothing.
type Crawl struct {
	pages    metric.Int64Counter
	crawls   metric.Int64Counter
	stops    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewCrawl creates the crawl instruments on mp.
func NewCrawl(mp metric.MeterProvider) (*Crawl, error) {
	meter := mp.Meter(meterName)

	pages, err := meter.Int64Counter("crawler.pages",
		metric.WithDescription("Page fetch attempts by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create pages counter: %w", err)
	}
	crawls, err := meter.Int64Counter("crawler.sites",
		metric.WithDescription("Finished site crawls by status."))
	if err != nil {
		return nil, fmt.Errorf("could not create sites counter: %w", err)
	}
	stops, err := meter.Int64Counter("crawler.early_stops",
		metric.WithDescription("Site crawls that stopped before the page budget was used."))
	if err != nil {
		return nil, fmt.Errorf("could not create early stops counter: %w", err)
	}
	duration, err := meter.Float64Histogram("crawler.site.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Wall time of a site crawl."),
		metric.WithExplicitBucketBoundaries(crawlBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &Crawl{pages: pages, crawls: crawls, stops: stops, duration: duration}, nil
}

// PageFetched records one fetch attempt. outcome is "ok" or a fetch failure reason.
func (c *Crawl) PageFetched(ctx context.Context, outcome string) {
	if c == nil {
		return
	}
	c.pages.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// SiteCrawled records a finished crawl.
func (c *Crawl) SiteCrawled(ctx context.Context, status string, elapsed time.Duration, earlyStop bool) {
	if c == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("status", status))
	c.crawls.Add(ctx, 1, attrs)
	c.duration.Record(ctx, elapsed.Seconds(), attrs)
	if earlyStop {
		c.stops.Add(ctx, 1)
	}
}

// HTTP holds the API request instruments. A nil *HTTP records nothing.
type HTTP struct {
	requests metric.Int64Counter
	latency  metric.Float64Histogram
}

// NewHTTP creates the HTTP instruments on mp.
func NewHTTP(mp metric.MeterProvider) (*HTTP, error) {
	meter := mp.Meter(meterName)

	requests, err := meter.Int64Counter("http.server.requests",
		metric.WithDescription("Handled HTTP requests."))
	if err != nil {
		return nil, fmt.Errorf("could not create requests counter: %w", err)
	}
	latency, err := meter.Float64Histogram("http.server.duration",
		metric.WithUnit("s"),
		metric.WithDescription("HTTP request latency."),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create latency histogram: %w", err)
	}

	return &HTTP{requests: requests, latency: latency}, nil
}

// Request records a handled request.
func (h *HTTP) Request(ctx context.Context, route string, status int, elapsed time.Duration) {
	if h == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("route", route), attribute.Int("status", status))
	h.requests.Add(ctx, 1, attrs)
	h.latency.Record(ctx, elapsed.Seconds(), attrs)
}
