// Package contextassembler resolves world and campaign text into the context
// block injected into generation prompts.
package contextassembler

import (
	"strings"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
)

// Context keys
const (
	KeyWorldLore      = "world_lore"
	KeyPartyContext   = "party_context"
	KeySessionContext = "session_context"
)

// Placeholder stands in for text missing in the requested language
const Placeholder = "N/A"

// Keys lists the context keys in render order
var Keys = []string{KeyWorldLore, KeyPartyContext, KeySessionContext}

var labels = map[string]string{
	KeyWorldLore:      "World lore",
	KeyPartyContext:   "Party",
	KeySessionContext: "Session history",
}

// Context always holds every key in Keys
type Context map[string]string

// Assemble resolves lore, party info and session history in lang. Text that
// is missing in lang becomes Placeholder, and so does text stored in lang that
// is empty or only whitespace. Other languages are never used. Either record
// may be nil.
func Assemble(world *entities.World, campaign *entities.Campaign, lang string) Context {
	ctx := Context{
		KeyWorldLore:      Placeholder,
		KeyPartyContext:   Placeholder,
		KeySessionContext: Placeholder,
	}

	if world != nil {
		ctx[KeyWorldLore] = resolve(world.Lore, lang)
	}
	if campaign != nil {
		ctx[KeyPartyContext] = resolve(campaign.PartyInfo, lang)
		ctx[KeySessionContext] = resolve(campaign.SessionHistory, lang)
	}

	return ctx
}

func resolve(text entities.LocalizedText, lang string) string {
	value, ok := text.Get(lang)
	if !ok || strings.TrimSpace(value) == "" {
		return Placeholder
	}
	return value
}

// Block renders the context as labelled paragraphs in Keys order
func (c Context) Block() string {
	var b strings.Builder
	for i, key := range Keys {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(labels[key])
		b.WriteString(":\n")
		value, ok := c[key]
		if !ok {
			value = Placeholder
		}
		b.WriteString(value)
	}
	return b.String()
}

// Values returns the context as prompt template values
func (c Context) Values() map[string]string {
	out := make(map[string]string, len(c)+1)
	for k, v := range c {
		out[k] = v
	}
	out["context"] = c.Block()
	return out
}
