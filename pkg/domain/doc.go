// Package domain contains the core domain entities shared by the crawl
// pipeline: sites, crawl results, country signals and enrichment suggestions.
// These types are free of infrastructure concerns so storage, transport and
// the pipeline stages can exchange them directly.
package domain
