package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/scribe/pkg/domain"
	"github.com/aretw0/scribe/pkg/ports"
	"golang.org/x/time/rate"
)

const (
	// BaseURL is the public Notion API base URL.
	BaseURL = "https://api.notion.com/v1"
	// APIVersion is the pinned Notion API version.
	APIVersion = "2022-06-28"
	// DefaultTimeout bounds each outbound request.
	DefaultTimeout = 30 * time.Second
)

const (
	// FallbackCreateError replaces an unparseable error body on page creation.
	FallbackCreateError = "Unknown error occurred while creating the page."
	// FallbackUpdateError replaces an unparseable error body on append.
	FallbackUpdateError = "Unknown error occurred while updating the page."
)

// Client implements ports.Gateway against the Notion REST API.
type Client struct {
	baseURL    string
	apiVersion string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
	header     http.Header
}

var _ ports.Gateway = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithAPIVersion overrides the Notion-Version header.
func WithAPIVersion(v string) Option {
	return func(c *Client) {
		c.apiVersion = v
	}
}

// WithHTTPClient injects a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout. Zero keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithRateLimit paces outbound requests to rps requests per second.
// A non-positive value disables pacing.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a gateway authenticated with token.
// Auth and version headers are computed once here and reused for every call.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    BaseURL,
		apiVersion: APIVersion,
		token:      token,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.header = http.Header{}
	c.header.Set("Authorization", "Bearer "+c.token)
	c.header.Set("Notion-Version", c.apiVersion)
	c.header.Set("Content-Type", "application/json")
	return c
}

type createResponse struct {
	ID string `json:"id"`
}

// CreatePage issues POST /pages.
func (c *Client) CreatePage(ctx context.Context, req *domain.PageCreateRequest) domain.OperationResult {
	status, body, res, ok := c.do(ctx, http.MethodPost, "/pages", req)
	if !ok {
		return res
	}
	if !isSuccess(status) {
		return c.failure(status, body, FallbackCreateError)
	}

	var created createResponse
	if err := json.Unmarshal(body, &created); err != nil {
		c.logger.Warn("Create page: response body not parseable", "status", status, "error", err)
	}
	return domain.Success(status, "", created.ID)
}

// AppendBlocks issues PATCH /blocks/{pageID}/children.
func (c *Client) AppendBlocks(ctx context.Context, pageID string, req *domain.PageAppendRequest) domain.OperationResult {
	status, body, res, ok := c.do(ctx, http.MethodPatch, "/blocks/"+pageID+"/children", req)
	if !ok {
		return res
	}
	if !isSuccess(status) {
		return c.failure(status, body, FallbackUpdateError)
	}
	return domain.Success(status, "", "")
}

// do sends one request. When ok is false, the request never produced a
// response and res holds the transport failure.
func (c *Client) do(ctx context.Context, method, path string, payload any) (status int, body []byte, res domain.OperationResult, ok bool) {
	data, err := json.Marshal(payload)
	if err != nil {
		// Request types are plain structs; this only fires on programmer error.
		return 0, nil, domain.Failure(domain.FailureTransport, 0, fmt.Sprintf("failed to marshal request body: %v", err)), false
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, nil, c.transportFailure(ctx, method, path, err), false
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return 0, nil, domain.Failure(domain.FailureTransport, 0, fmt.Sprintf("failed to create request: %v", err)), false
	}
	for k, v := range c.header {
		req.Header[k] = v
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, c.transportFailure(ctx, method, path, err), false
	}
	defer func() { _ = resp.Body.Close() }()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("Workspace response body read failed", "method", method, "path", path, "error", err)
		body = nil
	}

	c.logger.Debug("Workspace request", "method", method, "path", path, "status", resp.StatusCode, "elapsed", time.Since(start))
	return resp.StatusCode, body, domain.OperationResult{}, true
}

// failure parses a non-success body, substituting fallback when it is not JSON.
func (c *Client) failure(status int, body []byte, fallback string) domain.OperationResult {
	detail, err := parseErrorBody(body)
	if err != nil {
		c.logger.Warn("Workspace error body not parseable", "status", status, "error", err)
		return domain.Failure(domain.FailureUnparseableRemote, status, fallback)
	}
	return domain.Failure(domain.FailureRemote, status, detail)
}

func (c *Client) transportFailure(ctx context.Context, method, path string, err error) domain.OperationResult {
	if errors.Is(ctx.Err(), context.Canceled) {
		c.logger.Info("Workspace request cancelled", "method", method, "path", path)
		return domain.Failure(domain.FailureCancelled, 0, "operation cancelled")
	}

	status := http.StatusBadGateway
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		status = http.StatusGatewayTimeout
	}
	c.logger.Error("Workspace request failed", "method", method, "path", path, "status", status, "error", err)
	return domain.Failure(domain.FailureTransport, status, fmt.Errorf("%w: %v", domain.ErrTransport, err).Error())
}

// parseErrorBody decodes an error body as arbitrary JSON.
// An empty body is treated as a parse failure.
func parseErrorBody(body []byte) (any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errors.New("empty body")
	}
	var detail any
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, errors.New("null body")
	}
	return detail, nil
}

func isSuccess(status int) bool {
	return status == http.StatusOK || status == http.StatusCreated
}
