// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the fact crawler service.
package api

import (
	_ "embed"
	"factcrawler/internal/api/handler/v1handler"
	"factcrawler/internal/config"
	"factcrawler/pkg/controller"
	"factcrawler/pkg/metrics"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options configure the HTTP server. Zero durations keep the net/http
// defaults, and a zero RequestTimeout disables the per-request deadline.
type Options struct {
	// SecHandlerOptions holds the key bearer tokens of the v1 API are checked against.
	SecHandlerOptions *v1handler.SecHandlerOptions

	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	// RequestTimeout bounds every handler, so it must cover a synchronous batch crawl.
	RequestTimeout time.Duration
	MaxHeaderBytes int
	// MetricsPath serves the default prometheus registry.
	MetricsPath string
	// AllowedOrigins restricts CORS to the listed origins; empty allows any.
	AllowedOrigins []string
	// Debug runs gin in debug mode, which logs every registered route.
	Debug bool
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		Debug:             cfg.Environment == "development",
	}
}

type Deps struct {
	v1handler.Deps

	// MeterProvider receives the HTTP instruments; its exporter is expected to
	// feed the default prometheus registry served at MetricsPath.
	MeterProvider metric.MeterProvider
}

// routes mounts metrics, the OpenAPI document and its Swagger UI, pprof and
// the authenticated v1 API on router.
func routes(router *gin.Engine, deps Deps, opts Options) error {
	if opts.MetricsPath != "" {
		router.GET(opts.MetricsPath, gin.WrapH(promhttp.Handler()))
	}

	router.GET("/specs/v1.yaml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml", v1Spec)
	})
	router.GET("/v1/docs/*any", gin.WrapH(v5emb.New("Fact Crawler Service", "/specs/v1.yaml", "/v1/docs/")))

	router.GET("/debug/pprof/*profile", gin.WrapH(controller.PprofMux()))

	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return fmt.Errorf("could not create sec handler: %w", err)
	}
	v1handler.New(deps.Deps).Register(router, secHandler)

	return nil
}

// NewServer returns an *http.Server whose gin engine runs, in order, access
// logging, request metrics, CORS and panic recovery ahead of the routes. The
// whole engine sits behind the request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	if opts.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(controller.Logger())

	if deps.MeterProvider != nil {
		httpMetrics, err := metrics.NewHTTP(deps.MeterProvider)
		if err != nil {
			return nil, fmt.Errorf("could not create http metrics: %w", err)
		}
		router.Use(controller.Metrics(httpMetrics))
	}

	router.Use(controller.CORS(opts.AllowedOrigins...), controller.Recovery())

	if err := routes(router, deps, opts); err != nil {
		return nil, err
	}

	var handler http.Handler = router
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, `{"code":"TIMEOUT","message":"request timed out"}`)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
