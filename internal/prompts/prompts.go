// Package prompts holds the named prompt templates sent to text and image
// generators. Templates use {{name}} placeholders.
package prompts

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
)

// Template names
const (
	NPCGeneration = "npc_generation"
	Translation   = "translation"
	Portrait      = "portrait"
	NPCSimulation = "npc_simulation"
)

// DefaultNPCGeneration asks for a single JSON object with the NPC keys
const DefaultNPCGeneration = `You are a creative assistant for a Dungeon Master running a Dungeons & Dragons 5e game.

{{context}}

Create a memorable non-player character for this setting with these traits:
- Gender: {{gender}}
- Attitude towards the party: {{attitude}}
- Rarity: {{rarity}}
- Environment: {{environment}}
- Race: {{race}}
- Class: {{class}}
- Background: {{background}}

Write every value in {{language}}.
Respond with ONLY a JSON object with exactly these keys:
"name", "race_class", "appearance", "personality", "backstory", "roleplaying_tips", "plot_hooks".
All values must be strings. Do not add commentary.`

// DefaultTranslation translates one field at a time
const DefaultTranslation = `You are a professional translator for tabletop role-playing game material.
Translate the following text from {{sourceLang}} to {{targetLang}}.

- Keep names of people and places unchanged unless {{targetLang}} has an established form.
- Use idiomatic {{targetLang}} suited to fantasy fiction, not a word-for-word rendering.
- Preserve paragraphs and line breaks.
- Return ONLY the translated text, with no explanations, quotes or code blocks.

Text:
{{text}}`

// DefaultPortrait describes the NPC for an image model
const DefaultPortrait = `Fantasy character portrait, head and shoulders, painted in a detailed tabletop RPG art style.
{{name}}, {{race_class}}.
{{appearance}}
No text, no borders, no watermark.`

// DefaultNPCSimulation lets the DM talk to an NPC in character
const DefaultNPCSimulation = `You are roleplaying a non-player character in a Dungeons & Dragons game. Stay in character.

{{context}}

Character: {{name}} ({{race_class}})
Personality: {{personality}}
Roleplaying tips: {{roleplaying_tips}}

Conversation so far:
{{history}}

The Dungeon Master says: {{message}}

Reply in {{language}} as {{name}}, in first person, with no narration outside the character's words.`

// Defaults returns the built-in templates by name
func Defaults() map[string]string {
	return map[string]string{
		NPCGeneration: DefaultNPCGeneration,
		Translation:   DefaultTranslation,
		Portrait:      DefaultPortrait,
		NPCSimulation: DefaultNPCSimulation,
	}
}

// Registry resolves templates, preferring non-empty overrides over defaults
type Registry struct {
	templates map[string]string
}

// NewRegistry builds a registry from the defaults plus overrides. Blank
// overrides and overrides for unknown names are ignored.
func NewRegistry(overrides map[string]string) *Registry {
	templates := Defaults()
	for name, tmpl := range overrides {
		if _, known := templates[name]; !known {
			continue
		}
		if strings.TrimSpace(tmpl) == "" {
			continue
		}
		templates[name] = tmpl
	}
	return &Registry{templates: templates}
}

// Names returns the template names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Template returns the raw template for name
func (r *Registry) Template(name string) (string, error) {
	tmpl, ok := r.templates[name]
	if !ok {
		return "", errors.InvalidArgumentf("unknown prompt template %q", name)
	}
	return tmpl, nil
}

// Render fills the named template. Placeholders without a value are left as-is.
func (r *Registry) Render(name string, values map[string]string) (string, error) {
	tmpl, err := r.Template(name)
	if err != nil {
		return "", err
	}
	return Fill(tmpl, values), nil
}

// Fill replaces {{key}} with values[key]
func Fill(tmpl string, values map[string]string) string {
	if len(values) == 0 {
		return tmpl
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(values)*2)
	for _, k := range keys {
		pairs = append(pairs, "{{"+k+"}}", values[k])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
