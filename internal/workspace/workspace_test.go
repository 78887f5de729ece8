package workspace_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/orchestrators/characters"
	charactersmock "github.com/KirkDiggler/dnd-ai-toolkit/internal/orchestrators/characters/mock"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/orchestrators/generation"
	generationmock "github.com/KirkDiggler/dnd-ai-toolkit/internal/orchestrators/generation/mock"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/orchestrators/translation"
	translationmock "github.com/KirkDiggler/dnd-ai-toolkit/internal/orchestrators/translation/mock"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/pkg/idgen"
	storagemock "github.com/KirkDiggler/dnd-ai-toolkit/internal/storage/mock"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/workspace"
)

const waitFor = 2 * time.Second

type WorkspaceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	storage     *storagemock.MockStorage
	generation  *generationmock.MockService
	translation *translationmock.MockService
	characters  *charactersmock.MockService
	ws          *workspace.Workspace
	ctx         context.Context
}

func (s *WorkspaceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.storage = storagemock.NewMockStorage(s.ctrl)
	s.generation = generationmock.NewMockService(s.ctrl)
	s.translation = translationmock.NewMockService(s.ctrl)
	s.characters = charactersmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	ws, err := workspace.New(&workspace.Config{
		Storage:     s.storage,
		Generation:  s.generation,
		Translation: s.translation,
		Characters:  s.characters,
		DraftIDs:    idgen.NewSequential("draft"),
	})
	s.Require().NoError(err)
	s.ws = ws
}

func (s *WorkspaceTestSuite) TearDownTest() {
	s.ws.Close()
	s.ctrl.Finish()
}

func (s *WorkspaceTestSuite) receive(ch <-chan workspace.Outcome) workspace.Outcome {
	select {
	case out, ok := <-ch:
		s.Require().True(ok, "outcome channel closed without a value")
		return out
	case <-time.After(waitFor):
		s.FailNow("timed out waiting for outcome")
		return workspace.Outcome{}
	}
}

func (s *WorkspaceTestSuite) draftNPC() *entities.NonPlayerCharacter {
	return &entities.NonPlayerCharacter{
		CharacterBase: entities.CharacterBase{WorldID: "world_1", Language: "en"},
		Rarity:        "common",
	}
}

func generated(npc *entities.NonPlayerCharacter, name string) *entities.NonPlayerCharacter {
	out := npc.Clone()
	out.Name.Set("en", name)
	return out
}

func (s *WorkspaceTestSuite) TestNewRequiresDependencies() {
	_, err := workspace.New(&workspace.Config{Storage: s.storage})
	s.True(errors.IsInvalidArgument(err))
}

func (s *WorkspaceTestSuite) TestActionWithoutRecord() {
	out := s.receive(s.ws.GenerateNPC(s.ctx, generation.GenerateNPCInput{}))
	s.True(errors.IsFailedPrecondition(out.Err))
	s.Nil(s.ws.Active())
}

func (s *WorkspaceTestSuite) TestOpenRejectsNil() {
	s.True(errors.IsInvalidArgument(s.ws.Open(nil)))
}

func (s *WorkspaceTestSuite) TestGenerateNPCAppliesToActiveRecord() {
	s.Require().NoError(s.ws.Open(s.draftNPC()))

	s.generation.EXPECT().GenerateNPC(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *generation.GenerateNPCInput) (*generation.GenerateNPCOutput, error) {
			s.Equal("draft_1", in.LockKey)
			s.NotNil(in.Draft)
			s.Equal("common", in.Draft.Rarity)
			s.Equal("de", in.Language)
			return &generation.GenerateNPCOutput{NPC: generated(in.Draft, "Toblen")}, nil
		})

	out := s.receive(s.ws.GenerateNPC(s.ctx, generation.GenerateNPCInput{Language: "de"}))
	s.Require().NoError(out.Err)
	s.False(out.Stale)

	active := s.ws.Active().(*entities.NonPlayerCharacter)
	name, _ := active.Name.Get("en")
	s.Equal("Toblen", name)
}

func (s *WorkspaceTestSuite) TestResultForPreviousRecordIsStale() {
	s.Require().NoError(s.ws.Open(s.draftNPC()))

	started := make(chan struct{})
	release := make(chan struct{})
	s.generation.EXPECT().GenerateNPC(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *generation.GenerateNPCInput) (*generation.GenerateNPCOutput, error) {
			close(started)
			<-release
			return &generation.GenerateNPCOutput{NPC: generated(in.Draft, "Late")}, nil
		})

	ch := s.ws.GenerateNPC(s.ctx, generation.GenerateNPCInput{})
	<-started

	other := &entities.World{ID: "world_2", Name: entities.NewLocalizedText("en", "Eberron")}
	s.Require().NoError(s.ws.Open(other))
	close(release)

	out := s.receive(ch)
	s.True(out.Stale)
	s.NotNil(out.Record)

	active, ok := s.ws.Active().(*entities.World)
	s.Require().True(ok, "stale result must not replace the newly opened record")
	s.Equal("world_2", active.ID)
}

func (s *WorkspaceTestSuite) TestCloseCancelsInFlightWork() {
	s.Require().NoError(s.ws.Open(s.draftNPC()))

	started := make(chan struct{})
	s.generation.EXPECT().GenerateNPC(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *generation.GenerateNPCInput) (*generation.GenerateNPCOutput, error) {
			close(started)
			<-ctx.Done()
			return nil, errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "generation canceled")
		})

	ch := s.ws.GenerateNPC(s.ctx, generation.GenerateNPCInput{})
	<-started
	s.ws.Close()

	out := s.receive(ch)
	s.True(out.Stale)
	s.True(errors.IsCanceled(out.Err))
	s.Nil(s.ws.Active())
}

func (s *WorkspaceTestSuite) TestCallerContextCancelsWork() {
	s.Require().NoError(s.ws.Open(s.draftNPC()))

	ctx, cancel := context.WithCancel(s.ctx)
	started := make(chan struct{})
	s.generation.EXPECT().GenerateNPC(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *generation.GenerateNPCInput) (*generation.GenerateNPCOutput, error) {
			close(started)
			<-ctx.Done()
			return nil, errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "generation canceled")
		})

	ch := s.ws.GenerateNPC(ctx, generation.GenerateNPCInput{})
	<-started
	cancel()

	out := s.receive(ch)
	s.False(out.Stale)
	s.True(errors.IsCanceled(out.Err))
	s.NotNil(s.ws.Active(), "failed work leaves the record open and unchanged")
}

func (s *WorkspaceTestSuite) TestPartialTranslationIsApplied() {
	npc := s.draftNPC()
	npc.ID = "char_1"
	npc.Name = entities.NewLocalizedText("en", "Toblen")
	npc.Backstory = entities.NewLocalizedText("en", "Came from Neverwinter")
	s.Require().NoError(s.ws.Open(npc))

	s.translation.EXPECT().Translate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *translation.TranslateInput) (*translation.TranslateOutput, error) {
			s.Equal("char_1", in.LockKey)
			record := in.Record.CloneRecord().(*entities.NonPlayerCharacter)
			record.Name.Set("cs", "Toblen")
			return &translation.TranslateOutput{Record: record, State: translation.StateSaved},
				errors.PartialTranslationFailure(map[string]string{entities.FieldBackstory: "unavailable"})
		})

	out := s.receive(s.ws.Translate(s.ctx, translation.TranslateInput{SourceLanguage: "en", TargetLanguage: "cs"}))
	s.True(errors.IsPartialTranslationFailure(out.Err))
	s.False(out.Stale)

	active := s.ws.Active().(*entities.NonPlayerCharacter)
	s.True(active.Name.Has("cs"))
	s.False(active.Backstory.Has("cs"))
}

func (s *WorkspaceTestSuite) TestPortraitRequiresNPC() {
	s.Require().NoError(s.ws.Open(&entities.Campaign{ID: "campaign_1", WorldID: "world_1"}))

	out := s.receive(s.ws.Portrait(s.ctx, generation.GeneratePortraitInput{}))
	s.True(errors.IsFailedPrecondition(out.Err))
}

func (s *WorkspaceTestSuite) TestPortraitBillingRequiredLeavesRecord() {
	s.Require().NoError(s.ws.Open(s.draftNPC()))

	s.generation.EXPECT().GeneratePortrait(gomock.Any(), gomock.Any()).
		Return(nil, errors.BillingRequired("a knight", nil))

	out := s.receive(s.ws.Portrait(s.ctx, generation.GeneratePortraitInput{}))
	s.True(errors.IsBillingRequired(out.Err))
	s.Equal("a knight", errors.GetMeta(out.Err)[errors.MetaManualPrompt])
	s.Nil(s.ws.Active().(*entities.NonPlayerCharacter).Portrait)
}

func (s *WorkspaceTestSuite) TestSaveCharacterThroughOrchestrator() {
	s.Require().NoError(s.ws.Open(s.draftNPC()))

	s.characters.EXPECT().SaveCharacter(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *characters.SaveCharacterInput) (*characters.SaveCharacterOutput, error) {
			stored := in.Character.CloneRecord().(*entities.NonPlayerCharacter)
			stored.ID = "char_9"
			return &characters.SaveCharacterOutput{Character: stored, Created: true}, nil
		})

	stored, err := s.ws.Save(s.ctx)
	s.Require().NoError(err)
	s.Equal("char_9", stored.GetID())
	s.Equal("char_9", s.ws.Active().GetID())

	s.generation.EXPECT().GenerateNPC(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *generation.GenerateNPCInput) (*generation.GenerateNPCOutput, error) {
			s.Equal("char_9", in.LockKey, "saved records lock on their id")
			return &generation.GenerateNPCOutput{NPC: in.Draft}, nil
		})
	s.NoError(s.receive(s.ws.GenerateNPC(s.ctx, generation.GenerateNPCInput{})).Err)
}

func (s *WorkspaceTestSuite) TestSaveNewWorldThroughStorage() {
	world := &entities.World{Name: entities.NewLocalizedText("en", "Faerûn")}
	s.Require().NoError(s.ws.Open(world))

	stored := &entities.World{ID: "world_1", Name: entities.NewLocalizedText("en", "Faerûn")}
	gomock.InOrder(
		s.storage.EXPECT().Create(s.ctx, gomock.Any()).Return("world_1", nil),
		s.storage.EXPECT().Read(s.ctx, entities.EntityTypeWorld, "world_1").Return(stored, nil),
	)

	out, err := s.ws.Save(s.ctx)
	s.Require().NoError(err)
	s.Equal("world_1", out.GetID())
}

func (s *WorkspaceTestSuite) TestSaveExistingCampaignUpdates() {
	campaign := &entities.Campaign{ID: "campaign_1", WorldID: "world_1"}
	s.Require().NoError(s.ws.Open(campaign))

	s.storage.EXPECT().Update(s.ctx, gomock.Any()).Return(campaign, nil)

	_, err := s.ws.Save(s.ctx)
	s.NoError(err)
}

func (s *WorkspaceTestSuite) TestSaveWhileWorkIsRunning() {
	s.Require().NoError(s.ws.Open(s.draftNPC()))

	started := make(chan struct{})
	release := make(chan struct{})
	s.generation.EXPECT().GenerateNPC(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *generation.GenerateNPCInput) (*generation.GenerateNPCOutput, error) {
			close(started)
			<-release
			return &generation.GenerateNPCOutput{NPC: in.Draft}, nil
		})

	ch := s.ws.GenerateNPC(s.ctx, generation.GenerateNPCInput{})
	<-started

	_, err := s.ws.Save(s.ctx)
	s.True(errors.IsGenerationInProgress(err))

	close(release)
	s.NoError(s.receive(ch).Err)
}

func (s *WorkspaceTestSuite) TestSecondActionWhileRunningIsRejected() {
	world := &entities.World{ID: "world_1", Lore: entities.NewLocalizedText("en", "The Realms")}
	s.Require().NoError(s.ws.Open(world))

	translate := func(_ context.Context, in *translation.TranslateInput) (*translation.TranslateOutput, error) {
		record := in.Record.CloneRecord().(*entities.World)
		record.Lore.Set(in.TargetLanguage, "lore in "+in.TargetLanguage)
		return &translation.TranslateOutput{Record: record, State: translation.StateSaved}, nil
	}

	started := make(chan struct{})
	release := make(chan struct{})
	gomock.InOrder(
		s.translation.EXPECT().Translate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, in *translation.TranslateInput) (*translation.TranslateOutput, error) {
				close(started)
				<-release
				return translate(ctx, in)
			}),
		s.translation.EXPECT().Translate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, in *translation.TranslateInput) (*translation.TranslateOutput, error) {
				s.True(in.Record.(*entities.World).Lore.Has("cs"), "next action starts from the applied result")
				return translate(ctx, in)
			}),
	)

	first := s.ws.Translate(s.ctx, translation.TranslateInput{SourceLanguage: "en", TargetLanguage: "cs"})
	<-started

	second := s.receive(s.ws.Translate(s.ctx, translation.TranslateInput{SourceLanguage: "en", TargetLanguage: "de"}))
	s.True(errors.IsGenerationInProgress(second.Err))
	s.Nil(second.Record)

	close(release)
	s.Require().NoError(s.receive(first).Err)
	s.Equal([]string{"cs", "en"}, s.ws.Active().(*entities.World).Lore.Languages())

	third := s.receive(s.ws.Translate(s.ctx, translation.TranslateInput{SourceLanguage: "en", TargetLanguage: "de"}))
	s.Require().NoError(third.Err)
	s.Equal([]string{"cs", "de", "en"}, s.ws.Active().(*entities.World).Lore.Languages())
}

func (s *WorkspaceTestSuite) TestSaveWithoutRecord() {
	_, err := s.ws.Save(s.ctx)
	s.True(errors.IsFailedPrecondition(err))
}

func TestWorkspaceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkspaceTestSuite))
}
