package metrics_test

import (
	"context"
	"factcrawler/pkg/metrics"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader sdkmetric.Reader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}

	return out
}

func TestCrawl(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	c, err := metrics.NewCrawl(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	require.NoError(t, err)

	ctx := context.Background()
	c.PageFetched(ctx, "ok")
	c.PageFetched(ctx, "ok")
	c.PageFetched(ctx, "FETCH_TIMEOUT")
	c.SiteCrawled(ctx, "COMPLETED", 2*time.Second, true)

	got := collect(t, reader)

	pages, ok := got["crawler.pages"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	var total int64
	for _, dp := range pages.DataPoints {
		total += dp.Value
	}
	require.EqualValues(t, 3, total)
	require.Len(t, pages.DataPoints, 2)

	stops, ok := got["crawler.early_stops"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.EqualValues(t, 1, stops.DataPoints[0].Value)

	duration, ok := got["crawler.site.duration"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.EqualValues(t, 1, duration.DataPoints[0].Count)
}

func TestNilInstrumentsRecordNothing(t *testing.T) {
	var c *metrics.Crawl
	c.PageFetched(context.Background(), "ok")
	c.SiteCrawled(context.Background(), "FAILED", time.Second, false)

	var h *metrics.HTTP
	h.Request(context.Background(), "/v1/crawls", 200, time.Millisecond)
}

func TestHTTP(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	h, err := metrics.NewHTTP(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	require.NoError(t, err)

	h.Request(context.Background(), "/v1/crawls", 200, 10*time.Millisecond)

	requests, ok := collect(t, reader)["http.server.requests"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.EqualValues(t, 1, requests.DataPoints[0].Value)
}

func TestNewMeterProvider(t *testing.T) {
	mp, err := metrics.NewMeterProvider(prometheus.NewRegistry())
	require.NoError(t, err)
	require.NoError(t, mp.Shutdown(context.Background()))
}
