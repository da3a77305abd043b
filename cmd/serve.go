package main

import (
	"context"
	"errors"
	"factcrawler/internal/api"
	"factcrawler/internal/api/handler/v1handler"
	"factcrawler/internal/config"
	"factcrawler/internal/crawl"
	"factcrawler/internal/enrich"
	"factcrawler/internal/worker"
	"factcrawler/pkg/logger"
	"factcrawler/pkg/metrics"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background crawl workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			meterProvider, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			otel.SetMeterProvider(meterProvider)
			crawlMetrics, err := metrics.NewCrawl(meterProvider)
			if err != nil {
				logger.Fatal(ctx, "could not create crawl metrics", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			cache, closeCache := getRedis(ctx, cfg)
			defer closeCache()

			crawler := getCrawler(ctx, cfg, crawlMetrics)

			riverClient, err := worker.Start(ctx, strg.Pool, worker.NewCrawlWorker(worker.CrawlDeps{
				Crawler:      crawler,
				Brands:       strg,
				Results:      strg,
				Cache:        cache,
				MaxPages:     cfg.Crawler.MaxPages,
				FetchTimeout: cfg.Crawler.FetchTimeout,
			}), cfg.Worker.MaxWorkers)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Batch: crawl.NewBatch(crawler, strg, cfg.Crawler.MaxSites),
					// no search provider is wired, name/email/phone search stages are skipped
					Enricher: enrich.New(enrich.Deps{
						Crawler:  crawler,
						Brands:   strg,
						Storage:  strg,
						MaxPages: cfg.Crawler.MaxPages,
					}),
					Enqueuer: worker.NewEnqueuer(strg, worker.NewOptions(cfg)),
					Results:  strg,
					Brands:   strg,
					Cache:    cache,
				},
				MeterProvider: meterProvider,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}

			if err := meterProvider.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shutdown meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
