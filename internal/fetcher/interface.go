package fetcher

import "context"

//go:generate mockgen -package mockfetcher -source=interface.go -destination=mock/mockfetcher.go *

// Fetcher retrieves one page at a time.
type Fetcher interface {
	// Fetch returns the decoded page at url or an *Error describing why it was skipped.
	Fetch(ctx context.Context, url string) (*Page, error)
}
