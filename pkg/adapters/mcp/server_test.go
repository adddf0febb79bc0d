package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/scribe/internal/logging"
	"github.com/aretw0/scribe/pkg/domain"
	"github.com/aretw0/scribe/pkg/operations"
	"github.com/aretw0/scribe/pkg/registry"
)

type stubOps struct {
	create    operations.CreatePageInput
	update    operations.UpdatePageInput
	createRes domain.OperationResult
	updateRes domain.OperationResult
}

func (s *stubOps) CreatePage(ctx context.Context, in operations.CreatePageInput) domain.OperationResult {
	s.create = in
	return s.createRes
}

func (s *stubOps) UpdatePage(ctx context.Context, in operations.UpdatePageInput) domain.OperationResult {
	s.update = in
	return s.updateRes
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func TestHandleCreatePage_BindsArguments(t *testing.T) {
	ops := &stubOps{createRes: domain.Success(201, operations.MessageCreated, "abc123")}
	s := NewServer(ops, registry.NewPages(), "test", logging.NewNop())

	res, err := s.handleCreatePage(context.Background(), callRequest("create_page", map[string]any{
		"title": "Notes",
		"emoji": "🚀",
		"data":  "Hello world",
	}))
	require.NoError(t, err)

	assert.Equal(t, operations.CreatePageInput{Title: "Notes", Emoji: "🚀", Data: "Hello world"}, ops.create)
	assert.False(t, res.IsError)
	assert.JSONEq(t, `{"status_code":201,"message":"Page created successfully","id":"abc123"}`, textOf(t, res))
	assert.Equal(t, ops.createRes, res.StructuredContent)
}

func TestHandleCreatePage_FailureMarkedAsError(t *testing.T) {
	ops := &stubOps{createRes: domain.Failure(domain.FailureValidation, 0, "Content must be less than 2000 characters.")}
	s := NewServer(ops, registry.NewPages(), "test", logging.NewNop())

	res, err := s.handleCreatePage(context.Background(), callRequest("create_page", map[string]any{"data": "x"}))
	require.NoError(t, err)

	assert.True(t, res.IsError)
	assert.JSONEq(t, `{"error":"Content must be less than 2000 characters."}`, textOf(t, res))
}

func TestHandleUpdatePage_BindsArguments(t *testing.T) {
	ops := &stubOps{updateRes: domain.Success(200, operations.MessageUpdated, "")}
	s := NewServer(ops, registry.NewPages(), "test", logging.NewNop())

	res, err := s.handleUpdatePage(context.Background(), callRequest("update_page", map[string]any{
		"page_id": "p1",
		"data":    "Body",
		"heading": "Section",
	}))
	require.NoError(t, err)

	assert.Equal(t, operations.UpdatePageInput{PageID: "p1", Data: "Body", Heading: "Section"}, ops.update)
	assert.JSONEq(t, `{"status_code":200,"message":"Page updated successfully."}`, textOf(t, res))
}

func TestHandleReadPages(t *testing.T) {
	pages := registry.NewPages()
	pages.Record("Notes", "abc123")
	pages.Record("Notes", "def456")
	s := NewServer(&stubOps{}, pages, "test", logging.NewNop())

	contents, err := s.handleReadPages(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, PagesURI, text.URI)

	var entries []domain.PageRegistryEntry
	require.NoError(t, json.Unmarshal([]byte(text.Text), &entries))
	assert.Equal(t, pages.All(), entries)
}
