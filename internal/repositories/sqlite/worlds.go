package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/worlds"
)

type worldRepository struct {
	db *sql.DB
}

func (r *worldRepository) Create(ctx context.Context, input worlds.CreateInput) (*worlds.CreateOutput, error) {
	if input.World == nil {
		return nil, errors.InvalidArgument("world cannot be nil")
	}
	if input.World.ID == "" {
		return nil, errors.InvalidArgument("world ID cannot be empty")
	}

	payload, err := json.Marshal(input.World)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal world")
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO worlds (id, payload, created_at, updated_at)
VALUES (?, ?, ?, ?)
`,
		input.World.ID,
		string(payload),
		toMillis(input.World.CreatedAt),
		toMillis(input.World.UpdatedAt),
	)
	if err != nil {
		return nil, mapError(err, "failed to create world "+input.World.ID)
	}

	return &worlds.CreateOutput{World: input.World}, nil
}

func (r *worldRepository) Get(ctx context.Context, input worlds.GetInput) (*worlds.GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("world ID cannot be empty")
	}

	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM worlds WHERE id = ?`, input.ID).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("world with ID %s not found", input.ID)
	}
	if err != nil {
		return nil, mapError(err, "failed to get world")
	}

	world, err := decodeWorld(payload)
	if err != nil {
		return nil, err
	}

	return &worlds.GetOutput{World: world}, nil
}

func (r *worldRepository) Update(ctx context.Context, input worlds.UpdateInput) (*worlds.UpdateOutput, error) {
	if input.World == nil {
		return nil, errors.InvalidArgument("world cannot be nil")
	}
	if input.World.ID == "" {
		return nil, errors.InvalidArgument("world ID cannot be empty")
	}

	payload, err := json.Marshal(input.World)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal world")
	}

	res, err := r.db.ExecContext(ctx, `
UPDATE worlds SET payload = ?, updated_at = ? WHERE id = ?
`,
		string(payload),
		toMillis(input.World.UpdatedAt),
		input.World.ID,
	)
	if err != nil {
		return nil, mapError(err, "failed to update world")
	}
	if err := requireAffected(res, "world", input.World.ID); err != nil {
		return nil, err
	}

	return &worlds.UpdateOutput{World: input.World}, nil
}

func (r *worldRepository) Delete(ctx context.Context, input worlds.DeleteInput) (*worlds.DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("world ID cannot be empty")
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM worlds WHERE id = ?`, input.ID)
	if err != nil {
		return nil, mapError(err, "failed to delete world")
	}
	if err := requireAffected(res, "world", input.ID); err != nil {
		return nil, err
	}

	return &worlds.DeleteOutput{}, nil
}

func (r *worldRepository) List(ctx context.Context, _ worlds.ListInput) (*worlds.ListOutput, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT payload FROM worlds ORDER BY created_at, id`)
	if err != nil {
		return nil, mapError(err, "failed to list worlds")
	}
	defer rows.Close()

	var out []*entities.World
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, mapError(err, "failed to scan world")
		}
		world, err := decodeWorld(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, world)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "failed to iterate worlds")
	}

	return &worlds.ListOutput{Worlds: out}, nil
}

func decodeWorld(payload string) (*entities.World, error) {
	var world entities.World
	if err := json.Unmarshal([]byte(payload), &world); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode world")
	}
	return &world, nil
}

func requireAffected(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return mapError(err, "failed to read affected rows")
	}
	if n == 0 {
		return errors.NotFoundf("%s with ID %s not found", kind, id)
	}
	return nil
}

var _ worlds.Repository = (*worldRepository)(nil)
