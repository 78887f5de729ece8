package characters

import (
	"context"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	redisclient "github.com/KirkDiggler/dnd-ai-toolkit/internal/redis"
)

const (
	characterKeyPrefix  = "character:"
	characterIndexKey   = "characters:all"
	worldIndexPrefix    = "characters:world:"
	campaignIndexPrefix = "characters:campaign:"

	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errWorldIDEmpty     = "world ID cannot be empty"
	errCampaignIDEmpty  = "campaign ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis character repository.
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

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func validateCharacter(c entities.Character) error {
	if entities.IsNilCharacter(c) {
		return errors.InvalidArgument(errCharacterNil)
	}
	if c.GetID() == "" {
		return errors.InvalidArgument(errCharacterIDEmpty)
	}
	if c.Base().WorldID == "" {
		return errors.InvalidArgument(errWorldIDEmpty)
	}
	return nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	base := input.Character.Base()
	key := characterKeyPrefix + base.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", base.ID)
	}

	data, err := entities.MarshalCharacter(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, characterIndexKey, base.ID)
	pipe.SAdd(ctx, worldIndexPrefix+base.WorldID, base.ID)
	if base.CampaignID != "" {
		pipe.SAdd(ctx, campaignIndexPrefix+base.CampaignID, base.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	slog.DebugContext(ctx, "created character",
		"character_id", base.ID,
		"kind", input.Character.Kind(),
		"world_id", base.WorldID,
		"campaign_id", base.CampaignID)

	return &CreateOutput{Character: input.Character}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, characterKeyPrefix+input.ID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	character, err := entities.UnmarshalCharacter(result)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode character "+input.ID)
	}

	return &GetOutput{Character: character}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Character.GetID()})
	if err != nil {
		return nil, err
	}

	data, err := entities.MarshalCharacter(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	before := existing.Character.Base()
	after := input.Character.Base()

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, characterKeyPrefix+after.ID, data, 0)

	if before.WorldID != after.WorldID {
		pipe.SRem(ctx, worldIndexPrefix+before.WorldID, after.ID)
		pipe.SAdd(ctx, worldIndexPrefix+after.WorldID, after.ID)
	}
	if before.CampaignID != after.CampaignID {
		if before.CampaignID != "" {
			pipe.SRem(ctx, campaignIndexPrefix+before.CampaignID, after.ID)
		}
		if after.CampaignID != "" {
			pipe.SAdd(ctx, campaignIndexPrefix+after.CampaignID, after.ID)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateOutput{Character: input.Character}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}
	base := existing.Character.Base()

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, characterKeyPrefix+input.ID)
	pipe.SRem(ctx, characterIndexKey, input.ID)
	pipe.SRem(ctx, worldIndexPrefix+base.WorldID, input.ID)
	if base.CampaignID != "" {
		pipe.SRem(ctx, campaignIndexPrefix+base.CampaignID, input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	slog.DebugContext(ctx, "deleted character", "character_id", input.ID)

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	characters, err := r.listByIndex(ctx, characterIndexKey)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Characters: characters}, nil
}

func (r *redisRepository) ListByWorldID(
	ctx context.Context,
	input ListByWorldIDInput,
) (*ListByWorldIDOutput, error) {
	if input.WorldID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	characters, err := r.listByIndex(ctx, worldIndexPrefix+input.WorldID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list characters by world",
			"world_id", input.WorldID,
			"error", err.Error())
		return nil, err
	}

	return &ListByWorldIDOutput{Characters: characters}, nil
}

func (r *redisRepository) ListByCampaignID(
	ctx context.Context,
	input ListByCampaignIDInput,
) (*ListByCampaignIDOutput, error) {
	if input.CampaignID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	characters, err := r.listByIndex(ctx, campaignIndexPrefix+input.CampaignID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list characters by campaign",
			"campaign_id", input.CampaignID,
			"error", err.Error())
		return nil, err
	}

	return &ListByCampaignIDOutput{Characters: characters}, nil
}

// listByIndex is a helper function to list characters by any index
func (r *redisRepository) listByIndex(ctx context.Context, indexKey string) ([]entities.Character, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get characters from index %s", indexKey)
	}

	slog.DebugContext(ctx, "found character IDs in index",
		"index_key", indexKey,
		"count", len(ids))

	found := make([]entities.Character, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			out, err := r.Get(gctx, GetInput{ID: id})
			if err != nil {
				if errors.IsNotFound(err) {
					slog.WarnContext(gctx, "character not found, cleaning up index",
						"character_id", id,
						"index_key", indexKey)
					r.client.SRem(gctx, indexKey, id)
					return nil
				}
				return errors.Wrapf(err, "failed to get character %s", id)
			}
			found[i] = out.Character
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	characters := make([]entities.Character, 0, len(found))
	for _, c := range found {
		if c != nil {
			characters = append(characters, c)
		}
	}
	sort.Slice(characters, func(i, j int) bool {
		a, b := characters[i].Base(), characters[j].Base()
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	return characters, nil
}

var _ Repository = (*redisRepository)(nil)
