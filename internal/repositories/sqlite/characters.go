package sqlite

import (
	"context"
	"database/sql"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/characters"
)

type characterRepository struct {
	db *sql.DB
}

func validateCharacter(c entities.Character) error {
	if entities.IsNilCharacter(c) {
		return errors.InvalidArgument("character cannot be nil")
	}
	if c.GetID() == "" {
		return errors.InvalidArgument("character ID cannot be empty")
	}
	if c.Base().WorldID == "" {
		return errors.InvalidArgument("world ID cannot be empty")
	}
	return nil
}

// nullable stores an empty campaign id as NULL so the foreign key is skipped
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *characterRepository) Create(ctx context.Context, input characters.CreateInput) (*characters.CreateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	payload, err := entities.MarshalCharacter(input.Character)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal character")
	}

	base := input.Character.Base()
	_, err = r.db.ExecContext(ctx, `
INSERT INTO characters (id, world_id, campaign_id, kind, payload, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`,
		base.ID,
		base.WorldID,
		nullable(base.CampaignID),
		string(input.Character.Kind()),
		string(payload),
		toMillis(base.CreatedAt),
		toMillis(base.UpdatedAt),
	)
	if err != nil {
		return nil, mapError(err, "failed to create character "+base.ID)
	}

	return &characters.CreateOutput{Character: input.Character}, nil
}

func (r *characterRepository) Get(ctx context.Context, input characters.GetInput) (*characters.GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM characters WHERE id = ?`, input.ID).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}
	if err != nil {
		return nil, mapError(err, "failed to get character")
	}

	character, err := decodeCharacter(payload)
	if err != nil {
		return nil, err
	}

	return &characters.GetOutput{Character: character}, nil
}

func (r *characterRepository) Update(ctx context.Context, input characters.UpdateInput) (*characters.UpdateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	payload, err := entities.MarshalCharacter(input.Character)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal character")
	}

	base := input.Character.Base()
	res, err := r.db.ExecContext(ctx, `
UPDATE characters
SET world_id = ?, campaign_id = ?, kind = ?, payload = ?, updated_at = ?
WHERE id = ?
`,
		base.WorldID,
		nullable(base.CampaignID),
		string(input.Character.Kind()),
		string(payload),
		toMillis(base.UpdatedAt),
		base.ID,
	)
	if err != nil {
		return nil, mapError(err, "failed to update character")
	}
	if err := requireAffected(res, "character", base.ID); err != nil {
		return nil, err
	}

	return &characters.UpdateOutput{Character: input.Character}, nil
}

func (r *characterRepository) Delete(ctx context.Context, input characters.DeleteInput) (*characters.DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, input.ID)
	if err != nil {
		return nil, mapError(err, "failed to delete character")
	}
	if err := requireAffected(res, "character", input.ID); err != nil {
		return nil, err
	}

	return &characters.DeleteOutput{}, nil
}

func (r *characterRepository) List(ctx context.Context, _ characters.ListInput) (*characters.ListOutput, error) {
	out, err := r.query(ctx, `SELECT payload FROM characters ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	return &characters.ListOutput{Characters: out}, nil
}

func (r *characterRepository) ListByWorldID(
	ctx context.Context,
	input characters.ListByWorldIDInput,
) (*characters.ListByWorldIDOutput, error) {
	if input.WorldID == "" {
		return nil, errors.InvalidArgument("world ID cannot be empty")
	}

	out, err := r.query(ctx,
		`SELECT payload FROM characters WHERE world_id = ? ORDER BY created_at, id`,
		input.WorldID)
	if err != nil {
		return nil, err
	}
	return &characters.ListByWorldIDOutput{Characters: out}, nil
}

func (r *characterRepository) ListByCampaignID(
	ctx context.Context,
	input characters.ListByCampaignIDInput,
) (*characters.ListByCampaignIDOutput, error) {
	if input.CampaignID == "" {
		return nil, errors.InvalidArgument("campaign ID cannot be empty")
	}

	out, err := r.query(ctx,
		`SELECT payload FROM characters WHERE campaign_id = ? ORDER BY created_at, id`,
		input.CampaignID)
	if err != nil {
		return nil, err
	}
	return &characters.ListByCampaignIDOutput{Characters: out}, nil
}

func (r *characterRepository) query(ctx context.Context, query string, args ...any) ([]entities.Character, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "failed to list characters")
	}
	defer rows.Close()

	var out []entities.Character
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, mapError(err, "failed to scan character")
		}
		character, err := decodeCharacter(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, character)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "failed to iterate characters")
	}
	return out, nil
}

func decodeCharacter(payload string) (entities.Character, error) {
	character, err := entities.UnmarshalCharacter([]byte(payload))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode character")
	}
	return character, nil
}

var _ characters.Repository = (*characterRepository)(nil)
