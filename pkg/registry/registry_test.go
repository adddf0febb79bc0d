package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/aretw0/scribe/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPages_RecordKeepsOrderAndDuplicates(t *testing.T) {
	p := NewPages()
	assert.Equal(t, 0, p.Len())
	assert.Empty(t, p.All())

	p.Record("Notes", "abc123")
	p.Record("Todo", "def456")
	p.Record("Notes", "ghi789")

	assert.Equal(t, []domain.PageRegistryEntry{
		{Title: "Notes", ID: "abc123"},
		{Title: "Todo", ID: "def456"},
		{Title: "Notes", ID: "ghi789"},
	}, p.All())
	assert.Equal(t, []string{"abc123", "ghi789"}, p.Lookup("Notes"))
	assert.Nil(t, p.Lookup("Missing"))
}

func TestPages_AllIsSnapshot(t *testing.T) {
	p := NewPages()
	p.Record("Notes", "abc123")

	snap := p.All()
	snap[0].ID = "mutated"
	p.Record("Later", "x")

	require.Len(t, snap, 1)
	assert.Equal(t, "abc123", p.All()[0].ID)
}

func TestPages_ConcurrentRecord(t *testing.T) {
	p := NewPages()
	const workers = 50
	const perWorker = 20

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				p.Record("page", fmt.Sprintf("%d-%d", w, i))
			}
		}(w)
	}
	wg.Wait()

	entries := p.All()
	require.Len(t, entries, workers*perWorker)

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
}
