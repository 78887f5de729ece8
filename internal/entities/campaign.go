package entities

import "time"

// Localized field names on a campaign. FieldName is shared by every record.
const (
	FieldName           = "name"
	FieldPartyInfo      = "party_info"
	FieldSessionHistory = "session_history"
)

// Campaign belongs to a world and is played in a single language
type Campaign struct {
	ID             string        `json:"id"`
	WorldID        string        `json:"world_id"`
	Language       string        `json:"language"`
	Name           LocalizedText `json:"name"`
	PartyInfo      LocalizedText `json:"party_info"`
	SessionHistory LocalizedText `json:"session_history"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// GetID returns the campaign's ID
func (c *Campaign) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Campaign) GetType() string {
	return string(EntityTypeCampaign)
}

// EntityType returns EntityTypeCampaign
func (c *Campaign) EntityType() EntityType {
	return EntityTypeCampaign
}

// LocalizedFields returns the campaign's localized fields
func (c *Campaign) LocalizedFields() map[string]*LocalizedText {
	return map[string]*LocalizedText{
		FieldName:           &c.Name,
		FieldPartyInfo:      &c.PartyInfo,
		FieldSessionHistory: &c.SessionHistory,
	}
}

// Clone returns a deep copy
func (c *Campaign) Clone() *Campaign {
	if c == nil {
		return nil
	}
	out := *c
	out.Name = c.Name.Clone()
	out.PartyInfo = c.PartyInfo.Clone()
	out.SessionHistory = c.SessionHistory.Clone()
	return &out
}

// CloneRecord implements Record
func (c *Campaign) CloneRecord() Record {
	return c.Clone()
}
