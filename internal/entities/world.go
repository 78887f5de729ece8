package entities

import "time"

// Localized field names on a world
const (
	FieldLore = "lore"
)

// World is the top of the record hierarchy
type World struct {
	ID        string        `json:"id"`
	Name      LocalizedText `json:"name"`
	Lore      LocalizedText `json:"lore"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// GetID returns the world's ID
func (w *World) GetID() string {
	return w.ID
}

// GetType returns the entity type for rpg-toolkit
func (w *World) GetType() string {
	return string(EntityTypeWorld)
}

// EntityType returns EntityTypeWorld
func (w *World) EntityType() EntityType {
	return EntityTypeWorld
}

// LocalizedFields returns the world's localized fields
func (w *World) LocalizedFields() map[string]*LocalizedText {
	return map[string]*LocalizedText{
		FieldName: &w.Name,
		FieldLore: &w.Lore,
	}
}

// Languages returns the languages the world has any text in
func (w *World) Languages() []string {
	return Languages(w)
}

// Clone returns a deep copy
func (w *World) Clone() *World {
	if w == nil {
		return nil
	}
	out := *w
	out.Name = w.Name.Clone()
	out.Lore = w.Lore.Clone()
	return &out
}

// CloneRecord implements Record
func (w *World) CloneRecord() Record {
	return w.Clone()
}
