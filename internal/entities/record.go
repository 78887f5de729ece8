// Package entities provides the records managed by the toolkit: worlds,
// campaigns and characters whose user-facing text is kept per language.
package entities

import (
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityType names a kind of persisted record
type EntityType string

// Entity types
const (
	EntityTypeWorld     EntityType = "world"
	EntityTypeCampaign  EntityType = "campaign"
	EntityTypeCharacter EntityType = "character"
)

// String returns the string representation of the entity type
func (t EntityType) String() string {
	return string(t)
}

// Record is a persisted domain object. Ids are assigned by storage.
type Record interface {
	core.Entity

	// EntityType returns the typed form of GetType
	EntityType() EntityType

	// LocalizedFields exposes the record's localized fields by field name.
	// The returned pointers alias the record.
	LocalizedFields() map[string]*LocalizedText

	// CloneRecord returns a deep copy
	CloneRecord() Record
}

var (
	_ Record = (*World)(nil)
	_ Record = (*Campaign)(nil)
	_ Record = (*PlayerCharacter)(nil)
	_ Record = (*NonPlayerCharacter)(nil)
)

// Languages returns the union of languages present on a record's localized fields
func Languages(r Record) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, field := range r.LocalizedFields() {
		for _, lang := range field.Languages() {
			if _, ok := seen[lang]; ok {
				continue
			}
			seen[lang] = struct{}{}
			out = append(out, lang)
		}
	}
	sort.Strings(out)
	return out
}

// IsNilRecord reports whether r is nil or a typed nil record
func IsNilRecord(r Record) bool {
	switch v := r.(type) {
	case nil:
		return true
	case *World:
		return v == nil
	case *Campaign:
		return v == nil
	case Character:
		return IsNilCharacter(v)
	default:
		return false
	}
}

// KeepLanguages copies into updated every language that stored has and
// updated lacks, field by field. Saving never removes a translation; text
// present on updated overwrites the stored text for that language.
func KeepLanguages(updated, stored Record) {
	current := updated.LocalizedFields()
	for name, previous := range stored.LocalizedFields() {
		field, ok := current[name]
		if !ok {
			continue
		}
		for _, lang := range previous.Languages() {
			if field.Has(lang) {
				continue
			}
			text, _ := previous.Get(lang)
			field.Set(lang, text)
		}
	}
}
