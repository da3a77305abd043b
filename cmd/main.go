// Package main provides the CLI entrypoint for the fact crawler service.
// It wires subcommands (serve, crawl, migrate, jwt), loads configuration, and initializes logging.
package main

import (
	"context"
	"factcrawler/internal/classify"
	"factcrawler/internal/config"
	"factcrawler/internal/country"
	"factcrawler/internal/crawl"
	"factcrawler/internal/extract"
	"factcrawler/internal/fetcher"
	"factcrawler/pkg/llm"
	"factcrawler/pkg/llm/anthropicllm"
	"factcrawler/pkg/logger"
	"factcrawler/pkg/metrics"
	"factcrawler/pkg/storage"
	"factcrawler/pkg/storage/postgres"
	"factcrawler/pkg/storage/rediscache"
	"flag"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres connects the crawl storage using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getRedis connects the crawl result cache. Without a configured address the
// returned cache is nil and crawl results are only read from postgres.
func getRedis(ctx context.Context, cfg *config.Config) (storage.ResultCache, func()) {
	if cfg.Redis.Addr == "" {
		logger.Info(ctx, "redis address not set, crawl result cache disabled")

		return nil, func() {}
	}

	cache, err := rediscache.New(ctx, rediscache.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.TTL,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create redis cache", zap.Error(err))
	}

	return cache, func() {
		logger.Info(ctx, "closing redis client...")
		if err := cache.Close(); err != nil {
			logger.Warn(ctx, "could not close redis connection", zap.Error(err))
		}
	}
}

// getCompleter returns the language model client, or nil when no API key is configured.
func getCompleter(ctx context.Context, cfg *config.Config) llm.Completer {
	if cfg.LLM.APIKey == "" {
		logger.Info(ctx, "llm api key not set, using heuristics only")

		return nil
	}

	return anthropicllm.New(anthropicllm.Options{
		APIKey:    cfg.LLM.APIKey,
		Model:     cfg.LLM.Model,
		MaxTokens: cfg.LLM.MaxTokens,
		Timeout:   cfg.LLM.Timeout,
	})
}

// getCrawler assembles the site crawler. crawlMetrics may be nil.
func getCrawler(ctx context.Context, cfg *config.Config, crawlMetrics *metrics.Crawl) *crawl.Crawler {
	var (
		primary  classify.Classifier
		resolver country.Resolver
	)
	if completer := getCompleter(ctx, cfg); completer != nil {
		primary = classify.NewLLM(completer)
		resolver = country.NewLLMResolver(completer)
	}

	return crawl.New(crawl.Deps{
		Fetcher:    fetcher.New(fetcher.NewOptions(cfg), nil),
		Extractor:  extract.New(extract.NewWeights(cfg)),
		Classifier: classify.New(primary),
		Country:    country.New(resolver),
		Metrics:    crawlMetrics,
	}, crawl.NewOptions(cfg))
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "factcrawler",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path, empty reads the environment only")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)
	if cfg.LogLevel != "" {
		if err := logger.SetLevel(cfg.LogLevel); err != nil {
			log.Fatal("could not set log level", err)
		}
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		crawlCommand(cfg),
		JWTCommand(cfg),
	)

	err = rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
