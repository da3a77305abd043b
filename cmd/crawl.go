package main

import (
	"context"
	"encoding/json"
	"factcrawler/internal/config"
	"factcrawler/internal/crawl"
	"factcrawler/pkg/domain"
	"factcrawler/pkg/logger"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// parseSiteArg reads "homepage[,domain]". A missing domain is derived from the homepage.
func parseSiteArg(arg string) (domain.Site, error) {
	homepage, host, _ := strings.Cut(arg, ",")
	if host = strings.TrimSpace(host); host != "" {
		return crawl.NormalizeSite(domain.Site{Homepage: homepage, Domain: host})
	}

	return crawl.SiteFromHomepage(homepage)
}

// crawlCommand constructs the 'crawl' subcommand that crawls the given sites
// without any storage and prints their results as JSON.
func crawlCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crawl homepage[,domain]...",
		Short: "Crawls sites once and prints the discovered facts",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			maxPages, _ := cmd.Flags().GetInt("max-pages")
			brands, _ := cmd.Flags().GetStringSlice("brand")

			sites := make([]domain.Site, 0, len(args))
			for _, arg := range args {
				site, err := parseSiteArg(arg)
				if err != nil {
					logger.Fatal(ctx, "invalid site", zap.String("site", arg), zap.Error(err))
				}
				sites = append(sites, site)
			}

			// brands are looked up per tenant, so the one-shot crawl runs as a throwaway tenant
			ctx = domain.WithTenant(ctx, domain.TenantID(uuid.New()))
			batch := crawl.NewBatch(getCrawler(ctx, cfg, nil), staticBrands(brands), len(sites))
			results := batch.CrawlMany(ctx, sites, maxPages)

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(results); err != nil {
				logger.Fatal(ctx, "could not write results", zap.Error(err))
			}
		},
	}

	cmd.Flags().Int("max-pages", 0, "Page budget per site, zero uses the configured default")
	cmd.Flags().StringSlice("brand", nil, "Brand name to look for, may be repeated")

	return cmd
}

// staticBrands serves the same dictionary for every tenant.
type staticBrands []string

func (s staticBrands) TenantBrands(context.Context, domain.TenantID) ([]string, error) {
	return s, nil
}
