package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/scribe/pkg/domain"
	"github.com/aretw0/scribe/pkg/operations"
	"github.com/aretw0/scribe/pkg/ports"
)

// PagesURI is the resource exposing the page registry.
const PagesURI = "scribe://pages"

// Operations is the operations layer as seen by the MCP adapter.
type Operations interface {
	CreatePage(ctx context.Context, in operations.CreatePageInput) domain.OperationResult
	UpdatePage(ctx context.Context, in operations.UpdatePageInput) domain.OperationResult
}

// Server exposes the page operations as MCP tools.
type Server struct {
	ops       Operations
	pages     ports.PageRegistry
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(ops Operations, pages ports.PageRegistry, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		ops:       ops,
		pages:     pages,
		logger:    logger,
		mcpServer: server.NewMCPServer("scribe", version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: create_page
	createTool := mcp.NewTool(operations.OpCreatePage,
		mcp.WithDescription("Create a new page with plain text content. "+
			"The content must be plain text and less than 2000 characters."),
		mcp.WithString("title", mcp.Description("Page title"), mcp.DefaultString(operations.DefaultTitle)),
		mcp.WithString("emoji", mcp.Description("Emoji icon (optional)")),
		mcp.WithString("data", mcp.Required(), mcp.Description("Plain text content (max 2000 chars)")),
		mcp.WithOutputSchema[domain.OperationResult](),
	)
	s.mcpServer.AddTool(createTool, s.handleCreatePage)

	// TOOL: update_page
	updateTool := mcp.NewTool(operations.OpUpdatePage,
		mcp.WithDescription("Update a page by appending an optional heading and a plain text paragraph."),
		mcp.WithString("page_id", mcp.Required(), mcp.Description("ID of the page to update")),
		mcp.WithString("data", mcp.Required(), mcp.Description("Paragraph content to append")),
		mcp.WithString("heading", mcp.Description("Optional heading text")),
		mcp.WithOutputSchema[domain.OperationResult](),
	)
	s.mcpServer.AddTool(updateTool, s.handleUpdatePage)
}

func (s *Server) handleCreatePage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in operations.CreatePageInput
	if err := request.BindArguments(&in); err != nil {
		s.logger.Warn("MCP create_page: invalid arguments", "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	return toolResult(s.ops.CreatePage(ctx, in)), nil
}

func (s *Server) handleUpdatePage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var in operations.UpdatePageInput
	if err := request.BindArguments(&in); err != nil {
		s.logger.Warn("MCP update_page: invalid arguments", "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	return toolResult(s.ops.UpdatePage(ctx, in)), nil
}

// toolResult returns the result both as structured content and as JSON text
// for clients without structured output support.
func toolResult(res domain.OperationResult) *mcp.CallToolResult {
	jsonBytes, _ := json.Marshal(res)
	out := mcp.NewToolResultStructured(res, string(jsonBytes))
	out.IsError = !res.OK()
	return out
}

func (s *Server) registerResources() {
	// EXPOSE: scribe://pages
	s.mcpServer.AddResource(mcp.NewResource(PagesURI, "Pages created by this process",
		mcp.WithResourceDescription("Title and id of every page created since the server started, oldest first"),
		mcp.WithMIMEType("application/json"),
	), s.handleReadPages)
}

func (s *Server) handleReadPages(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(s.pages.All())
	if err != nil {
		return nil, fmt.Errorf("failed to encode pages: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      PagesURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
