// Package characters handles the character sheet side of the toolkit: player
// characters with rolled ability scores and the explicit save of previews.
package characters

//go:generate mockgen -destination=mock/mock_service.go -package=charactersmock github.com/KirkDiggler/dnd-ai-toolkit/internal/orchestrators/characters Service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/storage"
)

// Sheet limits
const (
	MinAbilityScore = 1
	MaxAbilityScore = 30
	MinLevel        = 1
	MaxLevel        = 20
)

// Service defines the interface for character sheet operations
type Service interface {
	// RollAbilityScores rolls one score per ability without storing anything
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)

	// CreatePlayerCharacter rolls any missing ability scores and stores the character
	CreatePlayerCharacter(ctx context.Context, input *CreatePlayerCharacterInput) (*CreatePlayerCharacterOutput, error)

	// SaveCharacter stores a previewed or edited character. Characters
	// without an id are created, others are updated.
	SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error)

	// DeleteCharacter removes a stored character.
	// Returns errors.NotFound if the character doesn't exist.
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
}

// Config holds the dependencies for the characters orchestrator
type Config struct {
	Storage storage.Storage
	// Roller defaults to dice.DefaultRoller
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Storage == nil {
		vb.RequiredField("Storage")
	}

	return vb.Build()
}

type orchestrator struct {
	storage storage.Storage
	roller  dice.Roller
}

// New creates a new characters orchestrator
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &orchestrator{
		storage: cfg.Storage,
		roller:  roller,
	}, nil
}

func (o *orchestrator) RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error) {
	if input == nil {
		input = &RollAbilityScoresInput{}
	}

	var scores entities.AbilityScores
	rolls, err := o.fillScores(&scores, input.Method)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "rolled ability scores", "method", methodOrDefault(input.Method))

	return &RollAbilityScoresOutput{Scores: scores, Rolls: rolls}, nil
}

func (o *orchestrator) CreatePlayerCharacter(ctx context.Context, input *CreatePlayerCharacterInput) (*CreatePlayerCharacterOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	pc := input.Character.Clone()
	if pc.Level == 0 {
		pc.Level = MinLevel
	}

	rolls, err := o.fillScores(&pc.AbilityScores, input.Method)
	if err != nil {
		return nil, err
	}
	if err := validatePlayerCharacter(pc); err != nil {
		return nil, err
	}

	stored, err := o.storage.CreateCharacter(ctx, pc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	slog.InfoContext(ctx, "player character created",
		"character_id", stored.GetID(),
		"world_id", stored.Base().WorldID,
		"rolled", len(rolls))

	return &CreatePlayerCharacterOutput{
		Character: stored.(*entities.PlayerCharacter),
		Rolls:     rolls,
	}, nil
}

func (o *orchestrator) SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error) {
	if input == nil || entities.IsNilCharacter(input.Character) {
		return nil, errors.InvalidArgument("character is required")
	}

	if pc, ok := input.Character.(*entities.PlayerCharacter); ok {
		if err := validatePlayerCharacter(pc); err != nil {
			return nil, err
		}
	}

	if input.Character.GetID() == "" {
		stored, err := o.storage.CreateCharacter(ctx, input.Character)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create character")
		}
		slog.InfoContext(ctx, "character saved",
			"character_id", stored.GetID(),
			"kind", stored.Kind(),
			"created", true)
		return &SaveCharacterOutput{Character: stored, Created: true}, nil
	}

	stored, err := o.storage.UpdateCharacter(ctx, input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character %s", input.Character.GetID())
	}
	slog.InfoContext(ctx, "character saved",
		"character_id", stored.GetID(),
		"kind", stored.Kind(),
		"created", false)

	return &SaveCharacterOutput{Character: stored}, nil
}

func (o *orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("character id is required")
	}

	if err := o.storage.DeleteCharacter(ctx, input.ID); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %s", input.ID)
	}

	return &DeleteCharacterOutput{}, nil
}

// fillScores rolls every ability that is still zero
func (o *orchestrator) fillScores(scores *entities.AbilityScores, method string) ([]AbilityRoll, error) {
	count, dropLowest, err := methodDice(method)
	if err != nil {
		return nil, err
	}

	pointers := scores.Pointers()
	var rolls []AbilityRoll
	for _, ability := range entities.AbilityNames {
		score := pointers[ability]
		if *score != 0 {
			continue
		}

		roll, err := o.roll(count, dropLowest)
		if err != nil {
			return nil, err
		}
		roll.Ability = ability
		*score = roll.Total
		rolls = append(rolls, roll)
	}

	return rolls, nil
}

// roll rolls count d6 and drops the lowest dropLowest dice
func (o *orchestrator) roll(count, dropLowest int) (AbilityRoll, error) {
	results, err := o.roller.RollN(count, 6)
	if err != nil {
		return AbilityRoll{}, errors.Wrapf(err, "failed to roll %dd6", count)
	}
	if len(results) != count {
		return AbilityRoll{}, errors.Internalf("roller returned %d dice, expected %d", len(results), count)
	}

	sorted := append([]int(nil), results...)
	sort.Ints(sorted)

	out := AbilityRoll{
		Dice:    sorted[dropLowest:],
		Dropped: sorted[:dropLowest],
	}
	for _, d := range out.Dice {
		out.Total += d
	}
	return out, nil
}

func methodDice(method string) (count, dropLowest int, err error) {
	switch methodOrDefault(method) {
	case MethodStandard:
		return 4, 1, nil
	case MethodClassic:
		return 3, 0, nil
	default:
		return 0, 0, errors.InvalidArgumentf("unknown rolling method %q", method)
	}
}

func methodOrDefault(method string) string {
	if method == "" {
		return MethodStandard
	}
	return method
}

func validatePlayerCharacter(pc *entities.PlayerCharacter) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("level", pc.Level, MinLevel, MaxLevel, vb)
	for _, ability := range entities.AbilityNames {
		errors.ValidateRange(ability, *pc.AbilityScores.Pointers()[ability], MinAbilityScore, MaxAbilityScore, vb)
	}
	if pc.HitPoints < 0 {
		vb.InvalidField("hit_points", "must not be negative")
	}
	if pc.ArmorClass < 0 {
		vb.InvalidField("armor_class", "must not be negative")
	}

	return vb.Build()
}
