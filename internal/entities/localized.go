package entities

import (
	"encoding/json"
	"sort"
	"strings"
)

// LocalizedText holds one piece of user-facing text in several languages.
// A missing language means "not translated yet" and is distinct from an
// explicit empty string. Languages are only ever added or overwritten.
// Language keys are canonicalized on every read and write, so "EN" and
// "en" address the same text.
type LocalizedText struct {
	values map[string]string
}

// NewLocalizedText creates text seeded with a single language
func NewLocalizedText(lang, text string) LocalizedText {
	t := LocalizedText{}
	t.Set(lang, text)
	return t
}

// Get returns the text for lang. It never substitutes another language.
func (t LocalizedText) Get(lang string) (string, bool) {
	text, ok := t.values[canonicalLanguage(lang)]
	return text, ok
}

// Set replaces the text for lang, leaving other languages untouched
func (t *LocalizedText) Set(lang, text string) {
	if t.values == nil {
		t.values = make(map[string]string)
	}
	t.values[canonicalLanguage(lang)] = text
}

// Has reports whether lang is present
func (t LocalizedText) Has(lang string) bool {
	_, ok := t.values[canonicalLanguage(lang)]
	return ok
}

// Languages returns the present language codes in sorted order
func (t LocalizedText) Languages() []string {
	langs := make([]string, 0, len(t.values))
	for lang := range t.values {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Len returns the number of languages present
func (t LocalizedText) Len() int {
	return len(t.values)
}

// Clone returns an independent copy
func (t LocalizedText) Clone() LocalizedText {
	if t.values == nil {
		return LocalizedText{}
	}
	values := make(map[string]string, len(t.values))
	for k, v := range t.values {
		values[k] = v
	}
	return LocalizedText{values: values}
}

// MarshalJSON encodes the text as a flat {"lang": "text"} object
func (t LocalizedText) MarshalJSON() ([]byte, error) {
	if t.values == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(t.values)
}

// UnmarshalJSON accepts a flat object or null
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	t.values = nil
	for lang, text := range values {
		t.Set(lang, text)
	}
	return nil
}

// canonicalLanguage returns the normalized code, or the trimmed input when
// it does not parse as a language tag
func canonicalLanguage(code string) string {
	if lang, err := NormalizeLanguage(code); err == nil {
		return lang
	}
	return strings.TrimSpace(code)
}
