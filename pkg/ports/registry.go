package ports

import "github.com/aretw0/scribe/pkg/domain"

// PageRegistry records pages created by the process.
type PageRegistry interface {
	Record(title, id string)
	All() []domain.PageRegistryEntry
}
