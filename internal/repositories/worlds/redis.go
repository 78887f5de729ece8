package worlds

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	redisclient "github.com/KirkDiggler/dnd-ai-toolkit/internal/redis"
)

const (
	worldKeyPrefix = "world:"
	worldIndexKey  = "worlds:all"

	errWorldNil     = "world cannot be nil"
	errWorldIDEmpty = "world ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis world repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed world repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.World == nil {
		return nil, errors.InvalidArgument(errWorldNil)
	}
	if input.World.ID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	key := worldKeyPrefix + input.World.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("world with ID %s already exists", input.World.ID)
	}

	data, err := json.Marshal(input.World)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal world")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, worldIndexKey, input.World.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create world")
	}

	slog.DebugContext(ctx, "created world", "world_id", input.World.ID)

	return &CreateOutput{World: input.World}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	result, err := r.client.Get(ctx, worldKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("world with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get world")
	}

	var world entities.World
	if err := json.Unmarshal([]byte(result), &world); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal world")
	}

	return &GetOutput{World: &world}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.World == nil {
		return nil, errors.InvalidArgument(errWorldNil)
	}
	if input.World.ID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	key := worldKeyPrefix + input.World.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("world with ID %s not found", input.World.ID)
	}

	data, err := json.Marshal(input.World)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal world")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update world")
	}

	return &UpdateOutput{World: input.World}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, worldKeyPrefix+input.ID)
	pipe.SRem(ctx, worldIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete world")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("world with ID %s not found", input.ID)
	}

	slog.DebugContext(ctx, "deleted world", "world_id", input.ID)

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, worldIndexKey).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to read world index",
			"index_key", worldIndexKey,
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to list worlds")
	}

	found := make([]*entities.World, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			out, err := r.Get(gctx, GetInput{ID: id})
			if err != nil {
				if errors.IsNotFound(err) {
					slog.WarnContext(gctx, "world not found, cleaning up index",
						"world_id", id,
						"index_key", worldIndexKey)
					r.client.SRem(gctx, worldIndexKey, id)
					return nil
				}
				return errors.Wrapf(err, "failed to get world %s", id)
			}
			found[i] = out.World
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	worlds := make([]*entities.World, 0, len(found))
	for _, w := range found {
		if w != nil {
			worlds = append(worlds, w)
		}
	}
	sort.Slice(worlds, func(i, j int) bool {
		if !worlds[i].CreatedAt.Equal(worlds[j].CreatedAt) {
			return worlds[i].CreatedAt.Before(worlds[j].CreatedAt)
		}
		return worlds[i].ID < worlds[j].ID
	})

	slog.DebugContext(ctx, "listed worlds", "count", len(worlds))

	return &ListOutput{Worlds: worlds}, nil
}

var _ Repository = (*redisRepository)(nil)
