package translation

import "github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"

// State is the lifecycle of one Translate call
type State string

// Translation states
const (
	StateIdle        State = "idle"
	StateTranslating State = "translating"
	StateSaved       State = "saved"
	StateFailed      State = "failed"
)

// TranslateInput defines the request for translating a record
type TranslateInput struct {
	Record         entities.Record
	SourceLanguage string
	TargetLanguage string

	// Fields are translated in this order. Empty means every localized
	// field that has source text, in name order.
	Fields []string

	// ModelID overrides the generator's default model
	ModelID string

	// LockKey claims the record while translating. Defaults to the record
	// id; unsaved records should pass the workspace draft key.
	LockKey string
}

// FieldResult is the outcome for one field
type FieldResult struct {
	Field string
	Text  string
	Err   error
}

// TranslateOutput defines the response for translating a record
type TranslateOutput struct {
	// Record is a copy of the input with every successful field merged in
	Record  entities.Record
	State   State
	Results []FieldResult
}

// Failed returns the results that carry an error
func (o *TranslateOutput) Failed() []FieldResult {
	var failed []FieldResult
	for _, r := range o.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
