package faq

import "context"

// Repository provides read-only, paged access to the knowledge base.
type Repository interface {
	// List returns up to limit entries strictly after cursor in a stable
	// enumeration order. An empty next cursor marks the end of the base.
	List(ctx context.Context, cursor string, limit int) (entries []Entry, next string, err error)
}
