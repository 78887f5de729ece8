// Package srd lists the races and classes of the 5e System Reference Document
// so generation tags can be resolved to their display names.
package srd

//go:generate mockgen -destination=mock/mock_catalog.go -package=srdmock github.com/KirkDiggler/dnd-ai-toolkit/internal/clients/srd Catalog

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apientities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
)

// Option is a selectable SRD entry
type Option struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Catalog lists SRD options and resolves tags against them
type Catalog interface {
	// ListRaces returns the SRD races.
	// Returns errors.Unavailable when the SRD API cannot be reached.
	ListRaces(ctx context.Context) ([]Option, error)

	// ListClasses returns the SRD classes.
	// Returns errors.Unavailable when the SRD API cannot be reached.
	ListClasses(ctx context.Context) ([]Option, error)

	// ResolveRace returns the display name for a race key or name. Unknown
	// values, including homebrew, are returned unchanged.
	ResolveRace(ctx context.Context, value string) string

	// ResolveClass is ResolveRace for classes
	ResolveClass(ctx context.Context, value string) string
}

type referenceLister interface {
	ListRaces() ([]*apientities.ReferenceItem, error)
	ListClasses() ([]*apientities.ReferenceItem, error)
}

// Config contains configuration options for the SRD client
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

type client struct {
	api referenceLister

	mu      sync.Mutex
	races   []Option
	classes []Option
}

// New creates a Catalog backed by the cached dnd5e-api client
func New(cfg *Config) (Catalog, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	return &client{api: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)}, nil
}

func (c *client) ListRaces(ctx context.Context) ([]Option, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.races != nil {
		return c.races, nil
	}

	refs, err := c.api.ListRaces()
	if err != nil {
		slog.ErrorContext(ctx, "Failed to list SRD races", "error", err)
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list races")
	}
	c.races = toOptions(refs)
	return c.races, nil
}

func (c *client) ListClasses(ctx context.Context) ([]Option, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.classes != nil {
		return c.classes, nil
	}

	refs, err := c.api.ListClasses()
	if err != nil {
		slog.ErrorContext(ctx, "Failed to list SRD classes", "error", err)
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list classes")
	}
	c.classes = toOptions(refs)
	return c.classes, nil
}

func (c *client) ResolveRace(ctx context.Context, value string) string {
	options, err := c.ListRaces(ctx)
	if err != nil {
		return value
	}
	return resolve(options, value)
}

func (c *client) ResolveClass(ctx context.Context, value string) string {
	options, err := c.ListClasses(ctx)
	if err != nil {
		return value
	}
	return resolve(options, value)
}

func toOptions(refs []*apientities.ReferenceItem) []Option {
	options := make([]Option, 0, len(refs))
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		options = append(options, Option{Key: ref.Key, Name: ref.Name})
	}
	return options
}

func resolve(options []Option, value string) string {
	needle := strings.TrimSpace(value)
	if needle == "" {
		return value
	}
	for _, opt := range options {
		if strings.EqualFold(opt.Key, needle) || strings.EqualFold(opt.Name, needle) {
			return opt.Name
		}
	}
	return value
}
