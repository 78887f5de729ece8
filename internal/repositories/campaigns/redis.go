package campaigns

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
	campaignKeyPrefix = "campaign:"
	campaignIndexKey  = "campaigns:all"
	worldIndexPrefix  = "campaigns:world:"

	errCampaignNil     = "campaign cannot be nil"
	errCampaignIDEmpty = "campaign ID cannot be empty"
	errWorldIDEmpty    = "world ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis campaign repository.
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

// NewRedis creates a new Redis-backed campaign repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func validateCampaign(c *entities.Campaign) error {
	if c == nil {
		return errors.InvalidArgument(errCampaignNil)
	}
	if c.ID == "" {
		return errors.InvalidArgument(errCampaignIDEmpty)
	}
	if c.WorldID == "" {
		return errors.InvalidArgument(errWorldIDEmpty)
	}
	return nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCampaign(input.Campaign); err != nil {
		return nil, err
	}

	key := campaignKeyPrefix + input.Campaign.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("campaign with ID %s already exists", input.Campaign.ID)
	}

	data, err := json.Marshal(input.Campaign)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal campaign")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, campaignIndexKey, input.Campaign.ID)
	pipe.SAdd(ctx, worldIndexPrefix+input.Campaign.WorldID, input.Campaign.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create campaign")
	}

	slog.DebugContext(ctx, "created campaign",
		"campaign_id", input.Campaign.ID,
		"world_id", input.Campaign.WorldID)

	return &CreateOutput{Campaign: input.Campaign}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	result, err := r.client.Get(ctx, campaignKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("campaign with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get campaign")
	}

	var campaign entities.Campaign
	if err := json.Unmarshal([]byte(result), &campaign); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal campaign")
	}

	return &GetOutput{Campaign: &campaign}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateCampaign(input.Campaign); err != nil {
		return nil, err
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Campaign.ID})
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Campaign)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal campaign")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, campaignKeyPrefix+input.Campaign.ID, data, 0)

	if existing.Campaign.WorldID != input.Campaign.WorldID {
		pipe.SRem(ctx, worldIndexPrefix+existing.Campaign.WorldID, input.Campaign.ID)
		pipe.SAdd(ctx, worldIndexPrefix+input.Campaign.WorldID, input.Campaign.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update campaign")
	}

	return &UpdateOutput{Campaign: input.Campaign}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, campaignKeyPrefix+input.ID)
	pipe.SRem(ctx, campaignIndexKey, input.ID)
	pipe.SRem(ctx, worldIndexPrefix+existing.Campaign.WorldID, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete campaign")
	}

	slog.DebugContext(ctx, "deleted campaign", "campaign_id", input.ID)

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	campaigns, err := r.listByIndex(ctx, campaignIndexKey)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Campaigns: campaigns}, nil
}

func (r *redisRepository) ListByWorldID(
	ctx context.Context,
	input ListByWorldIDInput,
) (*ListByWorldIDOutput, error) {
	if input.WorldID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	indexKey := worldIndexPrefix + input.WorldID
	slog.DebugContext(ctx, "listing campaigns by world index",
		"world_id", input.WorldID,
		"index_key", indexKey)

	campaigns, err := r.listByIndex(ctx, indexKey)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list campaigns by world index",
			"world_id", input.WorldID,
			"index_key", indexKey,
			"error", err.Error())
		return nil, err
	}

	return &ListByWorldIDOutput{Campaigns: campaigns}, nil
}

// listByIndex loads every campaign named in an index set, dropping ids whose
// record is gone
func (r *redisRepository) listByIndex(ctx context.Context, indexKey string) ([]*entities.Campaign, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get campaigns from index %s", indexKey)
	}

	found := make([]*entities.Campaign, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			out, err := r.Get(gctx, GetInput{ID: id})
			if err != nil {
				if errors.IsNotFound(err) {
					slog.WarnContext(gctx, "campaign not found, cleaning up index",
						"campaign_id", id,
						"index_key", indexKey)
					r.client.SRem(gctx, indexKey, id)
					return nil
				}
				return errors.Wrapf(err, "failed to get campaign %s", id)
			}
			found[i] = out.Campaign
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	campaigns := make([]*entities.Campaign, 0, len(found))
	for _, c := range found {
		if c != nil {
			campaigns = append(campaigns, c)
		}
	}
	sort.Slice(campaigns, func(i, j int) bool {
		if !campaigns[i].CreatedAt.Equal(campaigns[j].CreatedAt) {
			return campaigns[i].CreatedAt.Before(campaigns[j].CreatedAt)
		}
		return campaigns[i].ID < campaigns[j].ID
	})

	slog.DebugContext(ctx, "listed campaigns from index",
		"index_key", indexKey,
		"count", len(campaigns))

	return campaigns, nil
}

var _ Repository = (*redisRepository)(nil)
