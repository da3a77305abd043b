// Package search declares the search-engine collaborator used to find a
// company homepage from a name, an email address or a phone number.
package search

import "context"

//go:generate mockgen -package mocksearch -source=search.go -destination=mock/mocksearch.go *

// Kind is what a query value is.
type Kind string

const (
	KindName  Kind = "name"
	KindEmail Kind = "email"
	KindPhone Kind = "phone"
)

// Query is one homepage lookup.
type Query struct {
	Kind  Kind
	Value string
}

// Searcher returns candidate homepage URLs, best first.
type Searcher interface {
	Homepages(ctx context.Context, query Query) ([]string, error)
}
