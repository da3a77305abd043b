package fetcher

import (
	"factcrawler/pkg/serrors"
	"fmt"
)

// Reason classifies why a fetch failed.
type Reason string

const (
	ReasonTimeout   Reason = "FETCH_TIMEOUT"
	ReasonTooLarge  Reason = "FETCH_TOO_LARGE"
	ReasonBadStatus Reason = "FETCH_BAD_STATUS"
	ReasonNotHTML   Reason = "FETCH_NOT_HTML"
	ReasonNetwork   Reason = "FETCH_NETWORK"
)

// Error is returned by Fetch for every failure. Callers skip the page and log
// the Reason; a failed fetch is never retried within one crawl.
type Error struct {
	Reason Reason
	URL    string
	// Status is the HTTP status code for ReasonBadStatus.
	Status int
	// ContentType is the rejected media type for ReasonNotHTML.
	ContentType string
	Err         error
}

func (e *Error) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("fetch %s: %s (status %d)", e.URL, e.Reason, e.Status)
	case e.ContentType != "":
		return fmt.Sprintf("fetch %s: %s (%s)", e.URL, e.Reason, e.ContentType)
	case e.Err != nil:
		return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Reason, e.Err)
	default:
		return fmt.Sprintf("fetch %s: %s", e.URL, e.Reason)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches fetch failures against the generic serrors kinds so callers that
// only know about serrors can still tell a timeout apart.
func (e *Error) Is(target error) bool {
	switch target {
	case serrors.ErrTimeout:
		return e.Reason == ReasonTimeout
	case serrors.ErrUnavailable:
		return e.Reason != ReasonTimeout
	}

	return false
}
