package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/campaigns"
)

type campaignRepository struct {
	db *sql.DB
}

func validateCampaign(c *entities.Campaign) error {
	if c == nil {
		return errors.InvalidArgument("campaign cannot be nil")
	}
	if c.ID == "" {
		return errors.InvalidArgument("campaign ID cannot be empty")
	}
	if c.WorldID == "" {
		return errors.InvalidArgument("world ID cannot be empty")
	}
	return nil
}

func (r *campaignRepository) Create(ctx context.Context, input campaigns.CreateInput) (*campaigns.CreateOutput, error) {
	if err := validateCampaign(input.Campaign); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(input.Campaign)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal campaign")
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO campaigns (id, world_id, language, payload, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
`,
		input.Campaign.ID,
		input.Campaign.WorldID,
		input.Campaign.Language,
		string(payload),
		toMillis(input.Campaign.CreatedAt),
		toMillis(input.Campaign.UpdatedAt),
	)
	if err != nil {
		return nil, mapError(err, "failed to create campaign "+input.Campaign.ID)
	}

	return &campaigns.CreateOutput{Campaign: input.Campaign}, nil
}

func (r *campaignRepository) Get(ctx context.Context, input campaigns.GetInput) (*campaigns.GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("campaign ID cannot be empty")
	}

	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM campaigns WHERE id = ?`, input.ID).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("campaign with ID %s not found", input.ID)
	}
	if err != nil {
		return nil, mapError(err, "failed to get campaign")
	}

	campaign, err := decodeCampaign(payload)
	if err != nil {
		return nil, err
	}

	return &campaigns.GetOutput{Campaign: campaign}, nil
}

func (r *campaignRepository) Update(ctx context.Context, input campaigns.UpdateInput) (*campaigns.UpdateOutput, error) {
	if err := validateCampaign(input.Campaign); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(input.Campaign)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal campaign")
	}

	res, err := r.db.ExecContext(ctx, `
UPDATE campaigns SET world_id = ?, language = ?, payload = ?, updated_at = ? WHERE id = ?
`,
		input.Campaign.WorldID,
		input.Campaign.Language,
		string(payload),
		toMillis(input.Campaign.UpdatedAt),
		input.Campaign.ID,
	)
	if err != nil {
		return nil, mapError(err, "failed to update campaign")
	}
	if err := requireAffected(res, "campaign", input.Campaign.ID); err != nil {
		return nil, err
	}

	return &campaigns.UpdateOutput{Campaign: input.Campaign}, nil
}

func (r *campaignRepository) Delete(ctx context.Context, input campaigns.DeleteInput) (*campaigns.DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("campaign ID cannot be empty")
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM campaigns WHERE id = ?`, input.ID)
	if err != nil {
		return nil, mapError(err, "failed to delete campaign")
	}
	if err := requireAffected(res, "campaign", input.ID); err != nil {
		return nil, err
	}

	return &campaigns.DeleteOutput{}, nil
}

func (r *campaignRepository) List(ctx context.Context, _ campaigns.ListInput) (*campaigns.ListOutput, error) {
	out, err := r.query(ctx, `SELECT payload FROM campaigns ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	return &campaigns.ListOutput{Campaigns: out}, nil
}

func (r *campaignRepository) ListByWorldID(
	ctx context.Context,
	input campaigns.ListByWorldIDInput,
) (*campaigns.ListByWorldIDOutput, error) {
	if input.WorldID == "" {
		return nil, errors.InvalidArgument("world ID cannot be empty")
	}

	out, err := r.query(ctx,
		`SELECT payload FROM campaigns WHERE world_id = ? ORDER BY created_at, id`,
		input.WorldID)
	if err != nil {
		return nil, err
	}
	return &campaigns.ListByWorldIDOutput{Campaigns: out}, nil
}

func (r *campaignRepository) query(ctx context.Context, query string, args ...any) ([]*entities.Campaign, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "failed to list campaigns")
	}
	defer rows.Close()

	var out []*entities.Campaign
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, mapError(err, "failed to scan campaign")
		}
		campaign, err := decodeCampaign(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, campaign)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "failed to iterate campaigns")
	}
	return out, nil
}

func decodeCampaign(payload string) (*entities.Campaign, error) {
	var campaign entities.Campaign
	if err := json.Unmarshal([]byte(payload), &campaign); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode campaign")
	}
	return &campaign, nil
}

var _ campaigns.Repository = (*campaignRepository)(nil)
