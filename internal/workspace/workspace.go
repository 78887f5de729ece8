// Package workspace models one DM editing session. A workspace holds the
// record being edited, runs generation and translation in the background
// and applies each result only if that record is still the one open.
package workspace

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/orchestrators/characters"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/orchestrators/generation"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/orchestrators/translation"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/pkg/idgen"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/storage"
)

// Outcome is the result of one background action
type Outcome struct {
	// Record is the active record after the result was applied, or the
	// unapplied result when Stale
	Record entities.Record

	// Stale is set when a different record was opened, or the workspace
	// closed, before the action finished. Stale results are never applied.
	Stale bool

	// Err is set on failure. A partial translation carries both Record
	// and Err.
	Err error
}

// Config holds the dependencies for a workspace
type Config struct {
	Storage     storage.Storage
	Generation  generation.Service
	Translation translation.Service
	// Characters validates characters on save. Defaults to storage only.
	Characters characters.Service
	// DraftIDs names unsaved records for the in-flight lock
	DraftIDs idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Storage == nil {
		vb.RequiredField("Storage")
	}
	if c.Generation == nil {
		vb.RequiredField("Generation")
	}
	if c.Translation == nil {
		vb.RequiredField("Translation")
	}

	return vb.Build()
}

// Workspace is safe for concurrent use
type Workspace struct {
	storage     storage.Storage
	generation  generation.Service
	translation translation.Service
	characters  characters.Service
	draftIDs    idgen.Generator

	mu       sync.Mutex
	active   entities.Record
	draftKey string
	epoch    uint64
	pending  int
	ctx      context.Context
	cancel   context.CancelFunc
}

// New creates an empty workspace
func New(cfg *Config) (*Workspace, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	w := &Workspace{
		storage:     cfg.Storage,
		generation:  cfg.Generation,
		translation: cfg.Translation,
		characters:  cfg.Characters,
		draftIDs:    cfg.DraftIDs,
	}
	if w.draftIDs == nil {
		w.draftIDs = idgen.NewUUID("draft")
	}
	w.ctx, w.cancel = context.WithCancel(context.Background())

	return w, nil
}

// Open makes a copy of record the active record. Work started for the
// previous record is canceled and its outcome marked stale.
func (w *Workspace) Open(record entities.Record) error {
	if entities.IsNilRecord(record) {
		return errors.InvalidArgument("record is required")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.resetLocked()
	w.active = record.CloneRecord()
	w.draftKey = record.GetID()
	if w.draftKey == "" {
		w.draftKey = w.draftIDs.Generate()
	}

	slog.Debug("workspace opened",
		"record_type", record.GetType(),
		"record_id", record.GetID(),
		"lock_key", w.draftKey)

	return nil
}

// Active returns a copy of the active record, or nil
func (w *Workspace) Active() entities.Record {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.active == nil {
		return nil
	}
	return w.active.CloneRecord()
}

// Close drops the active record and cancels its in-flight work
func (w *Workspace) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.resetLocked()
	w.active = nil
	w.draftKey = ""
}

func (w *Workspace) resetLocked() {
	w.cancel()
	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.epoch++
	w.pending = 0
}

// GenerateNPC regenerates the active NPC in the background. An unsaved NPC
// takes its world and campaign from the record.
func (w *Workspace) GenerateNPC(ctx context.Context, input generation.GenerateNPCInput) <-chan Outcome {
	return w.run(ctx, func(ctx context.Context, active entities.Record, key string) (entities.Record, error) {
		npc, ok := active.(*entities.NonPlayerCharacter)
		if !ok {
			return nil, errors.FailedPreconditionf("active record is a %s, not an npc", active.GetType())
		}

		req := input
		req.NPCID = ""
		req.Draft = npc
		req.LockKey = key

		out, err := w.generation.GenerateNPC(ctx, &req)
		if err != nil {
			return nil, err
		}
		return out.NPC, nil
	})
}

// Translate adds target to the active record's localized fields
func (w *Workspace) Translate(ctx context.Context, input translation.TranslateInput) <-chan Outcome {
	return w.run(ctx, func(ctx context.Context, active entities.Record, key string) (entities.Record, error) {
		req := input
		req.Record = active
		req.LockKey = key

		out, err := w.translation.Translate(ctx, &req)
		if out == nil {
			return nil, err
		}
		return out.Record, err
	})
}

// Portrait attaches a generated portrait to the active NPC
func (w *Workspace) Portrait(ctx context.Context, input generation.GeneratePortraitInput) <-chan Outcome {
	return w.run(ctx, func(ctx context.Context, active entities.Record, key string) (entities.Record, error) {
		npc, ok := active.(*entities.NonPlayerCharacter)
		if !ok {
			return nil, errors.FailedPreconditionf("active record is a %s, not an npc", active.GetType())
		}

		req := input
		req.NPC = npc
		req.LockKey = key

		out, err := w.generation.GeneratePortrait(ctx, &req)
		if err != nil {
			return nil, err
		}
		return out.NPC, nil
	})
}

type action func(ctx context.Context, active entities.Record, key string) (entities.Record, error)

// run starts fn on a copy of the active record. One action runs at a time:
// while one is pending the next is rejected with GenerationInProgress, so
// every accepted action starts from the previous result. The outcome channel
// receives exactly one value and is then closed.
func (w *Workspace) run(ctx context.Context, fn action) <-chan Outcome {
	out := make(chan Outcome, 1)

	w.mu.Lock()
	if w.active == nil {
		w.mu.Unlock()
		out <- Outcome{Err: errors.FailedPrecondition("no record is open")}
		close(out)
		return out
	}
	if w.pending > 0 {
		key := w.draftKey
		w.mu.Unlock()
		out <- Outcome{Err: errors.GenerationInProgress(key)}
		close(out)
		return out
	}
	active := w.active.CloneRecord()
	key := w.draftKey
	epoch := w.epoch
	wsCtx := w.ctx
	w.pending++
	w.mu.Unlock()

	runCtx, cancel := context.WithCancel(wsCtx)
	stop := context.AfterFunc(ctx, cancel)

	go func() {
		defer close(out)
		defer cancel()
		defer stop()

		result, err := fn(runCtx, active, key)
		out <- w.apply(epoch, result, err)
	}()

	return out
}

// apply stores result as the active record if the record it was started
// from is still open
func (w *Workspace) apply(epoch uint64, result entities.Record, err error) Outcome {
	w.mu.Lock()
	defer w.mu.Unlock()

	if epoch != w.epoch {
		slog.Debug("discarding stale workspace result", "epoch", epoch)
		return Outcome{Record: result, Stale: true, Err: err}
	}
	w.pending--

	if entities.IsNilRecord(result) {
		return Outcome{Err: err}
	}

	w.active = result.CloneRecord()
	return Outcome{Record: result, Err: err}
}

// Save stores the active record and keeps the stored copy open. Saving
// while background work is running is refused so no result is lost.
func (w *Workspace) Save(ctx context.Context) (entities.Record, error) {
	w.mu.Lock()
	if w.active == nil {
		w.mu.Unlock()
		return nil, errors.FailedPrecondition("no record is open")
	}
	if w.pending > 0 {
		key := w.draftKey
		w.mu.Unlock()
		return nil, errors.GenerationInProgress(key)
	}
	record := w.active.CloneRecord()
	epoch := w.epoch
	w.mu.Unlock()

	stored, err := w.persist(ctx, record)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if epoch == w.epoch {
		w.active = stored.CloneRecord()
		w.draftKey = stored.GetID()
	}

	slog.InfoContext(ctx, "workspace saved",
		"record_type", stored.GetType(),
		"record_id", stored.GetID())

	return stored, nil
}

func (w *Workspace) persist(ctx context.Context, record entities.Record) (entities.Record, error) {
	if character, ok := record.(entities.Character); ok && w.characters != nil {
		out, err := w.characters.SaveCharacter(ctx, &characters.SaveCharacterInput{Character: character})
		if err != nil {
			return nil, err
		}
		return out.Character, nil
	}

	if record.GetID() != "" {
		return w.storage.Update(ctx, record)
	}

	id, err := w.storage.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return w.storage.Read(ctx, record.EntityType(), id)
}
