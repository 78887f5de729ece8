package entities

import (
	"encoding/json"
	"time"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
)

// CharacterKind discriminates the character variants
type CharacterKind string

// Character kinds
const (
	CharacterKindPlayer CharacterKind = "player"
	CharacterKindNPC    CharacterKind = "npc"
)

// Localized field names on characters. FieldName is shared with campaigns.
const (
	FieldAppearance      = "appearance"
	FieldBackstory       = "backstory"
	FieldPersonality     = "personality"
	FieldRaceClass       = "race_class"
	FieldRoleplayingTips = "roleplaying_tips"
	FieldPlotHooks       = "plot_hooks"
)

// Character is either a *PlayerCharacter or a *NonPlayerCharacter
type Character interface {
	Record

	// Kind returns the variant discriminator
	Kind() CharacterKind

	// Base returns the fields shared by both variants
	Base() *CharacterBase
}

var (
	_ Character = (*PlayerCharacter)(nil)
	_ Character = (*NonPlayerCharacter)(nil)
)

// CharacterBase holds identity and the localized description shared by all characters
type CharacterBase struct {
	ID          string        `json:"id"`
	WorldID     string        `json:"world_id"`
	CampaignID  string        `json:"campaign_id"`
	Language    string        `json:"language"`
	Name        LocalizedText `json:"name"`
	Appearance  LocalizedText `json:"appearance"`
	Backstory   LocalizedText `json:"backstory"`
	Personality LocalizedText `json:"personality"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// GetID returns the character's ID
func (b *CharacterBase) GetID() string {
	return b.ID
}

// GetType returns the entity type for rpg-toolkit
func (b *CharacterBase) GetType() string {
	return string(EntityTypeCharacter)
}

// EntityType returns EntityTypeCharacter
func (b *CharacterBase) EntityType() EntityType {
	return EntityTypeCharacter
}

// Base returns the receiver
func (b *CharacterBase) Base() *CharacterBase {
	return b
}

func (b *CharacterBase) localizedFields() map[string]*LocalizedText {
	return map[string]*LocalizedText{
		FieldName:        &b.Name,
		FieldAppearance:  &b.Appearance,
		FieldBackstory:   &b.Backstory,
		FieldPersonality: &b.Personality,
	}
}

func (b CharacterBase) clone() CharacterBase {
	b.Name = b.Name.Clone()
	b.Appearance = b.Appearance.Clone()
	b.Backstory = b.Backstory.Clone()
	b.Personality = b.Personality.Clone()
	return b
}

// AbilityScores holds the six core ability scores
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Ability names in sheet order
var AbilityNames = []string{"strength", "dexterity", "constitution", "intelligence", "wisdom", "charisma"}

// Pointers returns the scores keyed by ability name, aliasing the struct
func (a *AbilityScores) Pointers() map[string]*int {
	return map[string]*int{
		"strength":     &a.Strength,
		"dexterity":    &a.Dexterity,
		"constitution": &a.Constitution,
		"intelligence": &a.Intelligence,
		"wisdom":       &a.Wisdom,
		"charisma":     &a.Charisma,
	}
}

// PlayerCharacter is a character run by a player. Its numbers are never localized.
type PlayerCharacter struct {
	CharacterBase
	PlayerName    string        `json:"player_name"`
	Race          string        `json:"race"`
	Class         string        `json:"class"`
	Level         int           `json:"level"`
	HitPoints     int           `json:"hit_points"`
	ArmorClass    int           `json:"armor_class"`
	AbilityScores AbilityScores `json:"ability_scores"`
}

// Kind returns CharacterKindPlayer
func (p *PlayerCharacter) Kind() CharacterKind {
	return CharacterKindPlayer
}

// LocalizedFields returns the player character's localized fields
func (p *PlayerCharacter) LocalizedFields() map[string]*LocalizedText {
	return p.localizedFields()
}

// Clone returns a deep copy
func (p *PlayerCharacter) Clone() *PlayerCharacter {
	if p == nil {
		return nil
	}
	out := *p
	out.CharacterBase = p.CharacterBase.clone()
	return &out
}

// CloneRecord implements Record
func (p *PlayerCharacter) CloneRecord() Record {
	return p.Clone()
}

// Portrait is a generated NPC image
type Portrait struct {
	MIMEType string `json:"mime_type"`
	Data     []byte `json:"data"`
	Prompt   string `json:"prompt,omitempty"`
}

// NonPlayerCharacter is a DM-run character. The tags steer generation; the
// localized fields hold the generated or edited text.
type NonPlayerCharacter struct {
	CharacterBase
	Gender          string        `json:"gender,omitempty"`
	Attitude        string        `json:"attitude,omitempty"`
	Rarity          string        `json:"rarity,omitempty"`
	Environment     string        `json:"environment,omitempty"`
	Race            string        `json:"race,omitempty"`
	Class           string        `json:"class,omitempty"`
	Background      string        `json:"background,omitempty"`
	RaceClass       LocalizedText `json:"race_class"`
	RoleplayingTips LocalizedText `json:"roleplaying_tips"`
	PlotHooks       LocalizedText `json:"plot_hooks"`
	Portrait        *Portrait     `json:"portrait,omitempty"`
}

// Kind returns CharacterKindNPC
func (n *NonPlayerCharacter) Kind() CharacterKind {
	return CharacterKindNPC
}

// LocalizedFields returns the NPC's localized fields
func (n *NonPlayerCharacter) LocalizedFields() map[string]*LocalizedText {
	fields := n.localizedFields()
	fields[FieldRaceClass] = &n.RaceClass
	fields[FieldRoleplayingTips] = &n.RoleplayingTips
	fields[FieldPlotHooks] = &n.PlotHooks
	return fields
}

// Clone returns a deep copy
func (n *NonPlayerCharacter) Clone() *NonPlayerCharacter {
	if n == nil {
		return nil
	}
	out := *n
	out.CharacterBase = n.CharacterBase.clone()
	out.RaceClass = n.RaceClass.Clone()
	out.RoleplayingTips = n.RoleplayingTips.Clone()
	out.PlotHooks = n.PlotHooks.Clone()
	if n.Portrait != nil {
		p := *n.Portrait
		p.Data = append([]byte(nil), n.Portrait.Data...)
		out.Portrait = &p
	}
	return &out
}

// CloneRecord implements Record
func (n *NonPlayerCharacter) CloneRecord() Record {
	return n.Clone()
}

// CharacterEnvelope is the persisted form of a character: the kind plus
// exactly one variant.
type CharacterEnvelope struct {
	Kind   CharacterKind       `json:"kind"`
	Player *PlayerCharacter    `json:"player,omitempty"`
	NPC    *NonPlayerCharacter `json:"npc,omitempty"`
}

// Envelope wraps a character for persistence
func Envelope(c Character) CharacterEnvelope {
	switch v := c.(type) {
	case *PlayerCharacter:
		return CharacterEnvelope{Kind: CharacterKindPlayer, Player: v}
	case *NonPlayerCharacter:
		return CharacterEnvelope{Kind: CharacterKindNPC, NPC: v}
	default:
		return CharacterEnvelope{}
	}
}

// Character unwraps the envelope. Unknown kinds and kinds without their
// variant payload are rejected.
func (e CharacterEnvelope) Character() (Character, error) {
	switch e.Kind {
	case CharacterKindPlayer:
		if e.Player == nil {
			return nil, errors.InvalidArgument("player envelope has no player payload")
		}
		return e.Player, nil
	case CharacterKindNPC:
		if e.NPC == nil {
			return nil, errors.InvalidArgument("npc envelope has no npc payload")
		}
		return e.NPC, nil
	default:
		return nil, errors.InvalidArgumentf("unknown character kind %q", e.Kind)
	}
}

// MarshalCharacter encodes a character as an envelope
func MarshalCharacter(c Character) ([]byte, error) {
	env := Envelope(c)
	if env.Kind == "" {
		return nil, errors.InvalidArgument("unsupported character variant")
	}
	return json.Marshal(env)
}

// UnmarshalCharacter decodes an envelope produced by MarshalCharacter
func UnmarshalCharacter(data []byte) (Character, error) {
	var env CharacterEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode character")
	}
	return env.Character()
}

// IsNilCharacter reports whether c is nil or a typed nil variant
func IsNilCharacter(c Character) bool {
	switch v := c.(type) {
	case nil:
		return true
	case *PlayerCharacter:
		return v == nil
	case *NonPlayerCharacter:
		return v == nil
	default:
		return false
	}
}
