package notion

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aretw0/scribe/internal/logging"
	"github.com/aretw0/scribe/pkg/blocks"
	"github.com/aretw0/scribe/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts = append([]Option{WithBaseURL(srv.URL), WithLogger(logging.NewNop())}, opts...)
	return NewClient("secret-token", opts...), srv
}

func TestClient_CreatePage_Success(t *testing.T) {
	var gotBody map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/pages", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, APIVersion, r.Header.Get("Notion-Version"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		data, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(data, &gotBody))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"object":"page","id":"abc123"}`))
	})

	req := blocks.ComposeCreate("parent-1", "Notes", "", blocks.Paragraph("Hello world"))
	res := client.CreatePage(context.Background(), req)

	assert.True(t, res.OK())
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, "abc123", res.ID)
	assert.Equal(t, map[string]any{"page_id": "parent-1"}, gotBody["parent"])
}

func TestClient_AppendBlocks_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/blocks/p1/children", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	})

	res := client.AppendBlocks(context.Background(), "p1", blocks.ComposeAppend("Section", "Body"))

	assert.True(t, res.OK())
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, res.ID)
}

func TestClient_RemoteRejection_Verbatim(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"object":"error","status":400,"code":"validation_error","message":"body failed validation"}`))
	})

	res := client.CreatePage(context.Background(), blocks.ComposeCreate("p", "t", "", blocks.Paragraph("x")))

	assert.False(t, res.OK())
	assert.Equal(t, domain.FailureRemote, res.Kind)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	detail, ok := res.Error.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "validation_error", detail["code"])
	assert.Equal(t, "body failed validation", res.ErrorString())
}

func TestClient_UnparseableErrorBody(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		append   bool
		fallback string
	}{
		{"Append HTML", "<html>Not Found</html>", true, FallbackUpdateError},
		{"Append Empty", "", true, FallbackUpdateError},
		{"Append Null", "null", true, FallbackUpdateError},
		{"Create Garbage", "oops{", false, FallbackCreateError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(tt.body))
			})

			var res domain.OperationResult
			if tt.append {
				res = client.AppendBlocks(context.Background(), "p1", blocks.ComposeAppend("", "Body"))
			} else {
				res = client.CreatePage(context.Background(), blocks.ComposeCreate("p", "t", "", blocks.Paragraph("x")))
			}

			assert.Equal(t, domain.FailureUnparseableRemote, res.Kind)
			assert.Equal(t, http.StatusNotFound, res.StatusCode)
			assert.Equal(t, tt.fallback, res.Error)
		})
	}
}

func TestClient_TransportFault(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient("t", WithBaseURL(url), WithLogger(logging.NewNop()))
	res := client.AppendBlocks(context.Background(), "p1", blocks.ComposeAppend("", "Body"))

	assert.Equal(t, domain.FailureTransport, res.Kind)
	assert.Equal(t, http.StatusBadGateway, res.StatusCode)
	assert.Contains(t, res.Error, domain.ErrTransport.Error())
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, WithTimeout(50*time.Millisecond))
	defer close(release)

	res := client.CreatePage(context.Background(), blocks.ComposeCreate("p", "t", "", blocks.Paragraph("x")))

	assert.Equal(t, domain.FailureTransport, res.Kind)
	assert.Equal(t, http.StatusGatewayTimeout, res.StatusCode)
}

func TestClient_Cancelled(t *testing.T) {
	started := make(chan struct{})
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	res := client.CreatePage(ctx, blocks.ComposeCreate("p", "t", "", blocks.Paragraph("x")))

	assert.Equal(t, domain.FailureCancelled, res.Kind)
	assert.Zero(t, res.StatusCode)
}

func TestClient_RateLimitHonoursCancellation(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{}`))
	}, WithRateLimit(0.001))

	// First call consumes the only token.
	res := client.AppendBlocks(context.Background(), "p1", blocks.ComposeAppend("", "a"))
	require.True(t, res.OK())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res = client.AppendBlocks(ctx, "p1", blocks.ComposeAppend("", "b"))

	assert.Equal(t, domain.FailureCancelled, res.Kind)
	assert.Equal(t, int32(1), calls.Load())
}
