package observability

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/scribe/pkg/domain"
	"github.com/aretw0/scribe/pkg/registry"
)

func TestMetrics_ObserveOperation(t *testing.T) {
	reg := prometheus.NewRegistry()
	pages := registry.NewPages()
	m := NewMetrics(reg, pages)

	m.ObserveOperation("create_page", domain.Success(201, "ok", "abc"), 10*time.Millisecond)
	m.ObserveOperation("create_page", domain.Failure(domain.FailureValidation, 0, "too long"), time.Millisecond)
	m.ObserveOperation("update_page", domain.Failure(domain.FailureUnparseableRemote, 404, "x"), time.Millisecond)
	pages.Record("Notes", "abc")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("create_page", "success", "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("create_page", "validation", "")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("update_page", "unparseable_remote", "404")))

	expected := `
# HELP scribe_registry_pages Pages recorded in the in-process registry
# TYPE scribe_registry_pages gauge
scribe_registry_pages 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "scribe_registry_pages"))
}
