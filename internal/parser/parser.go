// Package parser turns free-text model completions into structured fields.
package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
)

//go:generate mockgen -destination=mock/mock_parser.go -package=parsermock github.com/KirkDiggler/dnd-ai-toolkit/internal/parser Parser

// Parser extracts a flat field map from a completion. Every required name
// must be present in the result; extra keys are kept.
type Parser interface {
	Parse(raw string, required []string) (Fields, error)
}

// Fields is a parsed flat JSON object
type Fields map[string]any

// String returns the value for name as text. Numbers and booleans are
// formatted, lists of strings are joined one per line.
func (f Fields) String(name string) (string, bool) {
	v, ok := f[name]
	if !ok {
		return "", false
	}
	switch val := v.(type) {
	case nil:
		return "", true
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := Fields{"item": item}.String("item")
			if !ok {
				continue
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, "\n"), true
	case map[string]any:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val), true
		}
		return string(data), true
	default:
		return fmt.Sprint(val), true
	}
}

// Keys returns the field names in sorted order
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var fencedJSONBlock = regexp.MustCompile("(?is)```json\\s*(.*?)\\s*```")

type jsonExtractor struct{}

// NewJSONExtractor returns the default Parser. It looks for a ```json fence
// first, then for the span between the first '{' and the last '}'.
func NewJSONExtractor() Parser {
	return &jsonExtractor{}
}

func (p *jsonExtractor) Parse(raw string, required []string) (Fields, error) {
	candidates := candidates(raw)
	if len(candidates) == 0 {
		return nil, errors.MalformedGenerationResult(raw, fmt.Errorf("no JSON object found in response"))
	}

	var (
		fields  Fields
		lastErr error
	)
	for _, candidate := range candidates {
		parsed, err := decodeObject(candidate)
		if err != nil {
			lastErr = err
			continue
		}
		fields = parsed
		break
	}
	if fields == nil {
		return nil, errors.MalformedGenerationResult(raw, lastErr)
	}

	var missing []string
	for _, name := range required {
		if _, ok := fields[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, errors.MalformedGenerationResult(raw,
			fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))).
			WithMeta("missing_fields", missing)
	}

	return fields, nil
}

func candidates(raw string) []string {
	var out []string
	if m := fencedJSONBlock.FindStringSubmatch(raw); len(m) > 1 {
		out = append(out, m[1])
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		out = append(out, raw[start:end+1])
	}
	return out
}

func decodeObject(candidate string) (Fields, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(candidate)))
	dec.UseNumber()

	var fields Fields
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("invalid JSON object: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("invalid JSON object: trailing data after object")
	}
	if fields == nil {
		return nil, fmt.Errorf("invalid JSON object: null")
	}
	return fields, nil
}
