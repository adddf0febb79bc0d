package scribe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/scribe/internal/config"
	"github.com/aretw0/scribe/internal/logging"
	"github.com/aretw0/scribe/pkg/operations"
)

func testConfig(t *testing.T, env map[string]string) *config.Config {
	t.Helper()
	cfg, err := config.LoadWith("", func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	require.NoError(t, err)
	return cfg
}

func TestNew_RejectsMissingCredentials(t *testing.T) {
	_, err := New(testConfig(t, nil))
	assert.Error(t, err)
}

func TestNew_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "2022-06-28", r.Header.Get("Notion-Version"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"abc123"}`))
	}))
	defer srv.Close()

	cfg := testConfig(t, map[string]string{
		"NOTION_TOKEN":      "tok",
		"PAGE_ID":           "parent",
		"NOTION_BASE_URL":   srv.URL,
		"SCRIBE_RATE_LIMIT": "0",
	})
	app, err := New(cfg, WithLogger(logging.NewNop()))
	require.NoError(t, err)

	res := app.Service.CreatePage(context.Background(), operations.CreatePageInput{Title: "Notes", Data: "Hello world"})
	require.True(t, res.OK())
	assert.Equal(t, "abc123", res.ID)
	assert.Equal(t, 1, app.Pages.Len())

	n, err := testutil.GatherAndCount(app.Registry, "scribe_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	res = app.Service.CreatePage(context.Background(), operations.CreatePageInput{Data: strings.Repeat("x", 2000)})
	assert.False(t, res.OK())
	assert.Equal(t, 1, app.Pages.Len())
}
