package operations

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/aretw0/scribe/pkg/blocks"
	"github.com/aretw0/scribe/pkg/domain"
	"github.com/aretw0/scribe/pkg/ports"
)

const (
	// DefaultTitle is used when create_page receives no title.
	DefaultTitle = "New Page"
	// DefaultMaxContentLength is the exclusive limit on body text, in characters.
	DefaultMaxContentLength = 2000

	MessageCreated = "Page created successfully"
	MessageUpdated = "Page updated successfully."

	OpCreatePage = "create_page"
	OpUpdatePage = "update_page"
)

// CreatePageInput holds the arguments of create_page.
type CreatePageInput struct {
	Title string `json:"title,omitempty"`
	Emoji string `json:"emoji,omitempty"`
	Data  string `json:"data"`
}

// UpdatePageInput holds the arguments of update_page.
type UpdatePageInput struct {
	PageID  string `json:"page_id"`
	Data    string `json:"data"`
	Heading string `json:"heading,omitempty"`
}

// Service orchestrates validate, build, compose, send and record for each call.
// It is safe for concurrent use.
type Service struct {
	gateway        ports.Gateway
	registry       ports.PageRegistry
	observer       ports.Observer
	logger         *slog.Logger
	parentID       string
	defaultEmoji   string
	maxLength      int
	validateAppend bool
}

// Option configures a Service.
type Option func(*Service)

// WithObserver reports every outcome to o.
func WithObserver(o ports.Observer) Option {
	return func(s *Service) {
		s.observer = o
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMaxContentLength sets the exclusive character limit on body text.
func WithMaxContentLength(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxLength = n
		}
	}
}

// WithAppendValidation toggles the length check on update_page.
func WithAppendValidation(enabled bool) Option {
	return func(s *Service) {
		s.validateAppend = enabled
	}
}

// WithDefaultEmoji sets the icon used when create_page receives none.
func WithDefaultEmoji(emoji string) Option {
	return func(s *Service) {
		if emoji != "" {
			s.defaultEmoji = emoji
		}
	}
}

// NewService creates the operations layer. New pages are created under parentID.
func NewService(gateway ports.Gateway, registry ports.PageRegistry, parentID string, opts ...Option) *Service {
	s := &Service{
		gateway:        gateway,
		registry:       registry,
		logger:         slog.Default(),
		parentID:       parentID,
		defaultEmoji:   domain.DefaultEmoji,
		maxLength:      DefaultMaxContentLength,
		validateAppend: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry returns the registry pages are recorded into.
func (s *Service) Registry() ports.PageRegistry {
	return s.registry
}

// CreatePage creates a page holding a single paragraph.
func (s *Service) CreatePage(ctx context.Context, in CreatePageInput) domain.OperationResult {
	start := time.Now()
	logger := s.logger.With("op", OpCreatePage, "request_id", uuid.NewString())

	title := in.Title
	if title == "" {
		title = DefaultTitle
	}
	emoji := in.Emoji
	if emoji == "" {
		emoji = s.defaultEmoji
	}

	if err := s.checkLength(in.Data); err != nil {
		logger.Warn("Create page: input rejected", "error", fmt.Errorf("%w: %v", domain.ErrContentTooLong, err), "size", len(in.Data))
		return s.finish(OpCreatePage, domain.Failure(domain.FailureValidation, 0, err.Error()), start)
	}

	req := blocks.ComposeCreate(s.parentID, title, emoji, blocks.Paragraph(in.Data))
	res := s.gateway.CreatePage(ctx, req)
	if !res.OK() {
		logger.Warn("Create page failed", "status", res.StatusCode, "kind", res.Kind, "error", res.ErrorString())
		return s.finish(OpCreatePage, res, start)
	}

	// A create whose caller went away is not recorded.
	if ctx.Err() != nil {
		logger.Info("Create page: cancelled after response, not recorded", "id", res.ID)
		return s.finish(OpCreatePage, domain.Failure(domain.FailureCancelled, res.StatusCode, "operation cancelled"), start)
	}

	s.registry.Record(title, res.ID)
	logger.Info("Page created", "title", title, "id", res.ID, "status", res.StatusCode)
	return s.finish(OpCreatePage, domain.Success(res.StatusCode, MessageCreated, res.ID), start)
}

// UpdatePage appends an optional heading and a paragraph to an existing page.
func (s *Service) UpdatePage(ctx context.Context, in UpdatePageInput) domain.OperationResult {
	start := time.Now()
	logger := s.logger.With("op", OpUpdatePage, "request_id", uuid.NewString(), "page_id", in.PageID)

	pageID := strings.TrimSpace(in.PageID)
	if err := validation.Validate(pageID, validation.Required.Error(domain.ErrMissingPageID.Error())); err != nil {
		logger.Warn("Update page: input rejected", "error", err)
		return s.finish(OpUpdatePage, domain.Failure(domain.FailureValidation, 0, err.Error()), start)
	}

	if s.validateAppend {
		if err := s.checkLength(in.Data); err != nil {
			logger.Warn("Update page: input rejected", "error", fmt.Errorf("%w: %v", domain.ErrContentTooLong, err), "size", len(in.Data))
			return s.finish(OpUpdatePage, domain.Failure(domain.FailureValidation, 0, err.Error()), start)
		}
	}

	req := blocks.ComposeAppend(in.Heading, in.Data)
	res := s.gateway.AppendBlocks(ctx, pageID, req)
	if !res.OK() {
		logger.Warn("Update page failed", "status", res.StatusCode, "kind", res.Kind, "error", res.ErrorString())
		return s.finish(OpUpdatePage, res, start)
	}

	logger.Info("Page updated", "blocks", len(req.Children), "status", res.StatusCode)
	return s.finish(OpUpdatePage, domain.Success(res.StatusCode, MessageUpdated, ""), start)
}

// checkLength enforces the character limit on raw input, before any block is built.
func (s *Service) checkLength(data string) error {
	msg := fmt.Sprintf("Content must be less than %d characters.", s.maxLength)
	return validation.Validate(data, validation.RuneLength(0, s.maxLength-1).Error(msg))
}

func (s *Service) finish(op string, res domain.OperationResult, start time.Time) domain.OperationResult {
	if s.observer != nil {
		s.observer.ObserveOperation(op, res, time.Since(start))
	}
	return res
}
