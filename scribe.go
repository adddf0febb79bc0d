package scribe

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/scribe/internal/config"
	"github.com/aretw0/scribe/pkg/adapters/notion"
	"github.com/aretw0/scribe/pkg/observability"
	"github.com/aretw0/scribe/pkg/operations"
	"github.com/aretw0/scribe/pkg/ports"
	"github.com/aretw0/scribe/pkg/registry"
)

// Version is the scribe release.
const Version = "0.1.0"

// App wires the configuration, gateway, registry and metrics into one
// operations layer. It is built once per process.
type App struct {
	Config   *config.Config
	Pages    *registry.Pages
	Service  *operations.Service
	Metrics  *observability.Metrics
	Registry *prometheus.Registry

	gateway ports.Gateway
	logger  *slog.Logger
}

// Option defines a functional option for configuring the App.
type Option func(*App)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithGateway injects a custom gateway, bypassing the Notion client.
func WithGateway(g ports.Gateway) Option {
	return func(a *App) {
		a.gateway = g
	}
}

// LoadConfig reads configuration from the optional YAML file and the environment.
func LoadConfig(path string) (*config.Config, error) {
	return config.Load(path)
}

// New validates cfg and builds the App.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &App{
		Config:   cfg,
		Pages:    registry.NewPages(),
		Registry: prometheus.NewRegistry(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(app)
	}

	if app.gateway == nil {
		app.gateway = notion.NewClient(cfg.Token,
			notion.WithBaseURL(cfg.BaseURL),
			notion.WithAPIVersion(cfg.APIVersion),
			notion.WithTimeout(cfg.Timeout),
			notion.WithRateLimit(cfg.RateLimit),
			notion.WithLogger(app.logger),
		)
	}

	app.Metrics = observability.NewMetrics(app.Registry, app.Pages)
	app.Service = operations.NewService(app.gateway, app.Pages, cfg.ParentPageID,
		operations.WithLogger(app.logger),
		operations.WithObserver(app.Metrics),
		operations.WithMaxContentLength(cfg.MaxContentLength),
		operations.WithAppendValidation(cfg.ValidateAppend),
		operations.WithDefaultEmoji(cfg.DefaultEmoji),
	)
	return app, nil
}

// Logger returns the logger the App was built with.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
