// Package app wires storage, generators and orchestrators from the process
// configuration. The gRPC server and the local CLI commands share it.
package app

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/clients/genai"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/clients/srd"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/config"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/orchestrators/characters"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/orchestrators/generation"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/orchestrators/translation"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/pkg/inflight"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/redis"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/campaigns"
	charactersrepo "github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/sqlite"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/worlds"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/storage"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/workspace"
)

// Config is the resolved process configuration
type Config struct {
	Env      config.Env
	Settings config.Settings
}

// App holds the wired services. Call Close when done.
type App struct {
	Storage     storage.Storage
	Generation  generation.Service
	Translation translation.Service
	Characters  characters.Service
	Catalog     srd.Catalog

	closers []func() error
}

// New builds every service. A failure releases whatever was opened.
func New(ctx context.Context, cfg *Config) (*App, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	a := &App{}

	store, err := a.openStorage(ctx, cfg.Env)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.Storage = store

	text, image, err := genai.NewFromConfig(cfg.Env.ProviderConfig(cfg.Settings))
	if err != nil {
		_ = a.Close()
		return nil, errors.Wrap(err, "failed to create generators")
	}
	if image == nil {
		slog.WarnContext(ctx, "no gemini api key, portraits are disabled")
	}

	a.Catalog, err = srd.New(&srd.Config{BaseURL: cfg.Env.SRDBaseURL})
	if err != nil {
		_ = a.Close()
		return nil, errors.Wrap(err, "failed to create srd catalog")
	}

	registry := cfg.Settings.PromptRegistry()
	locks := inflight.New()

	a.Generation, err = generation.New(&generation.Config{
		Storage:        store,
		TextGenerator:  text,
		ImageGenerator: image,
		Prompts:        registry,
		Catalog:        a.Catalog,
		InFlight:       locks,
	})
	if err != nil {
		_ = a.Close()
		return nil, errors.Wrap(err, "failed to create generation orchestrator")
	}

	a.Translation, err = translation.New(&translation.Config{
		TextGenerator: text,
		Prompts:       registry,
		InFlight:      locks,
	})
	if err != nil {
		_ = a.Close()
		return nil, errors.Wrap(err, "failed to create translation orchestrator")
	}

	a.Characters, err = characters.New(&characters.Config{Storage: store})
	if err != nil {
		_ = a.Close()
		return nil, errors.Wrap(err, "failed to create characters orchestrator")
	}

	return a, nil
}

// NewWorkspace returns a workspace over the app's services
func (a *App) NewWorkspace() (*workspace.Workspace, error) {
	return workspace.New(&workspace.Config{
		Storage:     a.Storage,
		Generation:  a.Generation,
		Translation: a.Translation,
		Characters:  a.Characters,
	})
}

// Close releases storage connections in reverse order of opening
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func (a *App) openStorage(ctx context.Context, env config.Env) (storage.Storage, error) {
	switch env.StorageBackend {
	case config.BackendRedis:
		return a.openRedis(ctx, env)
	case config.BackendSQLite, "":
		return a.openSQLite(ctx, env)
	default:
		return nil, errors.InvalidArgumentf("unknown storage backend %q", env.StorageBackend)
	}
}

func (a *App) openRedis(ctx context.Context, env config.Env) (storage.Storage, error) {
	var (
		client redis.Client
		err    error
	)
	if env.RedisURL != "" {
		client, err = redis.NewClientFromURL(env.RedisURL)
	} else {
		client, err = redis.NewClient(env.RedisAddr, nil)
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis configuration")
	}
	a.closers = append(a.closers, client.Close)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.StorageUnavailable(err, "ping")
	}

	worldRepo, err := worlds.NewRedis(&worlds.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	campaignRepo, err := campaigns.NewRedis(&campaigns.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	characterRepo, err := charactersrepo.NewRedis(&charactersrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "storage ready", "backend", config.BackendRedis)

	return storage.New(&storage.Config{
		Worlds:     worldRepo,
		Campaigns:  campaignRepo,
		Characters: characterRepo,
	})
}

func (a *App) openSQLite(ctx context.Context, env config.Env) (storage.Storage, error) {
	store, err := sqlite.Open(env.SQLitePath)
	if err != nil {
		return nil, errors.StorageUnavailable(err, "open")
	}
	a.closers = append(a.closers, store.Close)

	slog.InfoContext(ctx, "storage ready", "backend", config.BackendSQLite, "path", env.SQLitePath)

	return storage.New(&storage.Config{
		Worlds:     store.Worlds(),
		Campaigns:  store.Campaigns(),
		Characters: store.Characters(),
	})
}
