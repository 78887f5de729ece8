// Package translation adds a language to a record by translating its
// localized fields one at a time
package translation

//go:generate mockgen -destination=mock/mock_service.go -package=translationmock github.com/KirkDiggler/dnd-ai-toolkit/internal/orchestrators/translation Service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/clients/genai"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/pkg/inflight"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/prompts"
)

const tracerName = "github.com/KirkDiggler/dnd-ai-toolkit/internal/orchestrators/translation"

var fencePattern = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*\n?(.*?)\\s*```$")

// Service defines the interface for translation operations
type Service interface {
	// Translate returns a copy of the record with the target language filled
	// in for each requested field. It never persists. When some fields fail
	// the output is returned together with a PartialTranslationFailure.
	Translate(ctx context.Context, input *TranslateInput) (*TranslateOutput, error)
}

// Config holds the dependencies for the translation orchestrator
type Config struct {
	TextGenerator genai.TextGenerator
	Prompts       *prompts.Registry

	// InFlight is shared with generation so one record never has two
	// long-running actions at once
	InFlight *inflight.Set
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.TextGenerator == nil {
		vb.RequiredField("TextGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	text     genai.TextGenerator
	prompts  *prompts.Registry
	inFlight *inflight.Set
	tracer   trace.Tracer
}

// New creates a new translation orchestrator
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		text:     cfg.TextGenerator,
		prompts:  cfg.Prompts,
		inFlight: cfg.InFlight,
		tracer:   otel.Tracer(tracerName),
	}
	if o.prompts == nil {
		o.prompts = prompts.NewRegistry(nil)
	}
	if o.inFlight == nil {
		o.inFlight = inflight.New()
	}

	return o, nil
}

func (o *orchestrator) Translate(ctx context.Context, input *TranslateInput) (*TranslateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	source, target, fields, err := o.validate(input)
	if err != nil {
		return nil, err
	}

	key := lockKey(input)
	release, ok := o.inFlight.TryAcquire(key)
	if !ok {
		return nil, errors.GenerationInProgress(key)
	}
	defer release()

	ctx, span := o.tracer.Start(ctx, "translation.Translate", trace.WithAttributes(
		attribute.String("record.type", input.Record.GetType()),
		attribute.String("record.id", input.Record.GetID()),
		attribute.String("language.source", source),
		attribute.String("language.target", target),
		attribute.Int("fields", len(fields)),
	))
	defer span.End()

	slog.InfoContext(ctx, "translation started",
		"record_id", input.Record.GetID(),
		"source", source,
		"target", target,
		"fields", fields,
		"state", StateTranslating)

	record := input.Record.CloneRecord()
	localized := record.LocalizedFields()

	out := &TranslateOutput{
		Record:  record,
		State:   StateTranslating,
		Results: make([]FieldResult, 0, len(fields)),
	}
	failed := make(map[string]string)

	for _, field := range fields {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err := errors.WrapWithCode(ctxErr, errors.CodeCanceled, "translation canceled")
			out.Results = append(out.Results, FieldResult{Field: field, Err: err})
			failed[field] = err.Error()
			continue
		}

		text, _ := localized[field].Get(source)
		translated, err := o.translateField(ctx, source, target, text, input.ModelID)
		if err != nil {
			slog.WarnContext(ctx, "field translation failed",
				"record_id", input.Record.GetID(),
				"field", field,
				"error", err.Error())
			out.Results = append(out.Results, FieldResult{Field: field, Err: err})
			failed[field] = err.Error()
			continue
		}

		localized[field].Set(target, translated)
		out.Results = append(out.Results, FieldResult{Field: field, Text: translated})
	}

	if len(failed) == len(fields) {
		out.State = StateFailed
	} else {
		out.State = StateSaved
	}

	slog.InfoContext(ctx, "translation finished",
		"record_id", input.Record.GetID(),
		"state", out.State,
		"failed", len(failed))

	if len(failed) > 0 {
		err := errors.PartialTranslationFailure(failed)
		span.SetStatus(codes.Error, err.Error())
		return out, err
	}

	return out, nil
}

// validate checks every precondition before any generator call
func (o *orchestrator) validate(input *TranslateInput) (source, target string, fields []string, err error) {
	if entities.IsNilRecord(input.Record) {
		return "", "", nil, errors.InvalidArgument("record is required")
	}

	if source, err = entities.NormalizeLanguage(input.SourceLanguage); err != nil {
		return "", "", nil, errors.Wrap(err, "invalid source language")
	}
	if target, err = entities.NormalizeLanguage(input.TargetLanguage); err != nil {
		return "", "", nil, errors.Wrap(err, "invalid target language")
	}
	if source == target {
		return "", "", nil, errors.InvalidArgumentf("source and target language are both %s", source)
	}

	localized := input.Record.LocalizedFields()

	fields = input.Fields
	if len(fields) == 0 {
		for name, text := range localized {
			if text.Has(source) {
				fields = append(fields, name)
			}
		}
		sort.Strings(fields)
		if len(fields) == 0 {
			return "", "", nil, errors.NoSourceText("*", source)
		}
	}

	seen := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if _, dup := seen[field]; dup {
			return "", "", nil, errors.InvalidArgumentf("field %s requested twice", field)
		}
		seen[field] = struct{}{}

		text, ok := localized[field]
		if !ok {
			return "", "", nil, errors.InvalidArgumentf("record has no localized field %s", field)
		}
		if !text.Has(source) {
			return "", "", nil, errors.NoSourceText(field, source)
		}
	}

	return source, target, fields, nil
}

func (o *orchestrator) translateField(ctx context.Context, source, target, text, modelID string) (string, error) {
	prompt, err := o.prompts.Render(prompts.Translation, map[string]string{
		"sourceLang": entities.LanguageName(source),
		"targetLang": entities.LanguageName(target),
		"text":       text,
	})
	if err != nil {
		return "", err
	}

	raw, err := o.text.Complete(ctx, prompt, modelID)
	if err != nil {
		return "", err
	}

	translated := cleanTranslation(raw)
	if translated == "" && strings.TrimSpace(text) != "" {
		return "", errors.MalformedGenerationResult(raw, nil).WithMeta("reason", "empty translation")
	}
	return translated, nil
}

// cleanTranslation trims the completion and drops a code fence wrapped around it
func cleanTranslation(raw string) string {
	text := strings.TrimSpace(raw)
	if m := fencePattern.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}
	return text
}

func lockKey(input *TranslateInput) string {
	if input.LockKey != "" {
		return input.LockKey
	}
	if id := input.Record.GetID(); id != "" {
		return id
	}
	return fmt.Sprintf("draft:%p", input.Record)
}
