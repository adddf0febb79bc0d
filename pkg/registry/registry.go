package registry

import (
	"sync"

	"github.com/aretw0/scribe/pkg/domain"
)

// Pages is the in-process record of pages created by this process.
// Entries are kept in creation order; titles may repeat.
// It is never persisted and is lost on restart.
type Pages struct {
	mu      sync.RWMutex
	entries []domain.PageRegistryEntry
}

// NewPages creates a new empty registry.
func NewPages() *Pages {
	return &Pages{}
}

// Record appends a title/id pair. Duplicates are kept.
func (p *Pages) Record(title, id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = append(p.entries, domain.PageRegistryEntry{Title: title, ID: id})
}

// All returns a snapshot of every entry in insertion order.
func (p *Pages) All() []domain.PageRegistryEntry {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]domain.PageRegistryEntry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Lookup returns the ids recorded under title, oldest first.
func (p *Pages) Lookup(title string) []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var ids []string
	for _, e := range p.entries {
		if e.Title == title {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// Len returns the number of recorded entries.
func (p *Pages) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.entries)
}
