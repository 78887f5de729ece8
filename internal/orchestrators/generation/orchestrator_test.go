package generation_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/clients/genai"
	genaimock "github.com/KirkDiggler/dnd-ai-toolkit/internal/clients/genai/mock"
	srdmock "github.com/KirkDiggler/dnd-ai-toolkit/internal/clients/srd/mock"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/orchestrators/generation"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/parser"
	parsermock "github.com/KirkDiggler/dnd-ai-toolkit/internal/parser/mock"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/pkg/inflight"
	storagemock "github.com/KirkDiggler/dnd-ai-toolkit/internal/storage/mock"
)

const npcJSON = "Here you go:\n```json\n" + `{
  "name": "Sildar Hallwinter",
  "race_class": "Human Fighter",
  "appearance": "Grey-haired, scarred knight",
  "personality": "Dutiful and kind",
  "backstory": "Member of the Lords' Alliance",
  "roleplaying_tips": "Speaks formally",
  "plot_hooks": "Searching for Iarno"
}` + "\n```"

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	storage  *storagemock.MockStorage
	text     *genaimock.MockTextGenerator
	image    *genaimock.MockImageGenerator
	catalog  *srdmock.MockCatalog
	inFlight *inflight.Set
	svc      generation.Service
	ctx      context.Context

	world    *entities.World
	campaign *entities.Campaign
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.storage = storagemock.NewMockStorage(s.ctrl)
	s.text = genaimock.NewMockTextGenerator(s.ctrl)
	s.image = genaimock.NewMockImageGenerator(s.ctrl)
	s.catalog = srdmock.NewMockCatalog(s.ctrl)
	s.inFlight = inflight.New()
	s.ctx = context.Background()

	svc, err := generation.New(&generation.Config{
		Storage:        s.storage,
		TextGenerator:  s.text,
		ImageGenerator: s.image,
		Catalog:        s.catalog,
		InFlight:       s.inFlight,
	})
	s.Require().NoError(err)
	s.svc = svc

	s.world = &entities.World{
		ID:   "world_1",
		Name: entities.NewLocalizedText("en", "Sword Coast"),
		Lore: entities.NewLocalizedText("cs", "Pobřeží meče"),
	}
	s.world.Lore.Set("en", "The Sword Coast")
	s.campaign = &entities.Campaign{
		ID:             "campaign_1",
		WorldID:        "world_1",
		Language:       "cs",
		PartyInfo:      entities.NewLocalizedText("cs", "Čtyři dobrodruzi"),
		SessionHistory: entities.NewLocalizedText("en", "They reached Phandalin"),
	}
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewRequiresDependencies() {
	_, err := generation.New(&generation.Config{TextGenerator: s.text})
	s.True(errors.IsInvalidArgument(err))

	_, err = generation.New(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGenerateNPCFillsCampaignLanguage() {
	s.storage.EXPECT().GetWorld(gomock.Any(), "world_1").Return(s.world, nil)
	s.storage.EXPECT().GetCampaign(gomock.Any(), "campaign_1").Return(s.campaign, nil)
	s.catalog.EXPECT().ResolveRace(gomock.Any(), "human").Return("Human")
	s.catalog.EXPECT().ResolveClass(gomock.Any(), "gloomstalker").Return("gloomstalker")

	var prompt string
	s.text.EXPECT().Complete(gomock.Any(), gomock.Any(), "model-x").
		DoAndReturn(func(_ context.Context, p, _ string) (string, error) {
			prompt = p
			return npcJSON, nil
		})

	out, err := s.svc.GenerateNPC(s.ctx, &generation.GenerateNPCInput{
		WorldID:    "world_1",
		CampaignID: "campaign_1",
		Tags:       generation.NPCTags{Gender: "male", Race: "human", Class: "gloomstalker"},
		ModelID:    "model-x",
	})
	s.Require().NoError(err)

	s.Equal("cs", out.Language)
	s.Contains(prompt, "Pobřeží meče")
	s.Contains(prompt, "Čtyři dobrodruzi")
	s.NotContains(prompt, "They reached Phandalin", "other languages are never used")
	s.Contains(prompt, "Czech")
	s.Contains(prompt, "- Race: Human")
	s.Contains(prompt, "- Class: gloomstalker")
	s.Contains(prompt, "- Rarity: any")

	npc := out.NPC
	s.Empty(npc.ID, "generation never stores")
	s.Equal("world_1", npc.WorldID)
	s.Equal("campaign_1", npc.CampaignID)
	s.Equal("cs", npc.Language)
	s.Equal("male", npc.Gender)
	s.Equal("Human", npc.Race)

	for field, want := range map[string]string{
		entities.FieldName:            "Sildar Hallwinter",
		entities.FieldRaceClass:       "Human Fighter",
		entities.FieldAppearance:      "Grey-haired, scarred knight",
		entities.FieldPersonality:     "Dutiful and kind",
		entities.FieldBackstory:       "Member of the Lords' Alliance",
		entities.FieldRoleplayingTips: "Speaks formally",
		entities.FieldPlotHooks:       "Searching for Iarno",
	} {
		got, ok := npc.LocalizedFields()[field].Get("cs")
		s.True(ok, field)
		s.Equal(want, got, field)
	}
}

func (s *OrchestratorTestSuite) TestRegenerateKeepsOtherLanguages() {
	existing := &entities.NonPlayerCharacter{
		CharacterBase: entities.CharacterBase{
			ID:       "char_1",
			WorldID:  "world_1",
			Language: "en",
			Name:     entities.NewLocalizedText("en", "Sildar"),
		},
		Rarity: "rare",
	}
	s.storage.EXPECT().GetCharacter(gomock.Any(), "char_1").Return(existing, nil)
	s.storage.EXPECT().GetWorld(gomock.Any(), "world_1").Return(s.world, nil)
	s.text.EXPECT().Complete(gomock.Any(), gomock.Any(), "").
		DoAndReturn(func(_ context.Context, p, _ string) (string, error) {
			s.Contains(p, "- Rarity: rare")
			return npcJSON, nil
		})

	out, err := s.svc.GenerateNPC(s.ctx, &generation.GenerateNPCInput{
		NPCID:    "char_1",
		Language: "de",
	})
	s.Require().NoError(err)

	s.Equal("char_1", out.NPC.ID)
	name, _ := out.NPC.Name.Get("en")
	s.Equal("Sildar", name)
	name, _ = out.NPC.Name.Get("de")
	s.Equal("Sildar Hallwinter", name)
	s.False(existing.Name.Has("de"), "stored npc is not mutated")
}

func (s *OrchestratorTestSuite) TestRegeneratePlayerCharacterIsRejected() {
	pc := &entities.PlayerCharacter{CharacterBase: entities.CharacterBase{ID: "char_2", WorldID: "world_1"}}
	s.storage.EXPECT().GetCharacter(gomock.Any(), "char_2").Return(pc, nil)

	_, err := s.svc.GenerateNPC(s.ctx, &generation.GenerateNPCInput{NPCID: "char_2"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGenerateNPCRequiresWorld() {
	_, err := s.svc.GenerateNPC(s.ctx, &generation.GenerateNPCInput{})
	s.True(errors.IsInvalidArgument(err))

	s.storage.EXPECT().GetWorld(gomock.Any(), "world_9").Return(nil, errors.NotFound("world not found"))
	_, err = s.svc.GenerateNPC(s.ctx, &generation.GenerateNPCInput{WorldID: "world_9"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestCampaignFromAnotherWorld() {
	other := &entities.Campaign{ID: "campaign_2", WorldID: "world_2"}
	s.storage.EXPECT().GetWorld(gomock.Any(), "world_1").Return(s.world, nil)
	s.storage.EXPECT().GetCampaign(gomock.Any(), "campaign_2").Return(other, nil)

	_, err := s.svc.GenerateNPC(s.ctx, &generation.GenerateNPCInput{WorldID: "world_1", CampaignID: "campaign_2"})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestMalformedCompletionIsReported() {
	s.storage.EXPECT().GetWorld(gomock.Any(), "world_1").Return(s.world, nil)
	s.text.EXPECT().Complete(gomock.Any(), gomock.Any(), "").Return(`{"name": "Bob"}`, nil)

	_, err := s.svc.GenerateNPC(s.ctx, &generation.GenerateNPCInput{WorldID: "world_1", Language: "en"})
	s.Require().Error(err)
	s.True(errors.IsMalformedGenerationResult(err))
	s.Equal(`{"name": "Bob"}`, errors.GetMeta(err)[errors.MetaRaw])
}

func (s *OrchestratorTestSuite) TestConfiguredParserReadsCompletion() {
	p := parsermock.NewMockParser(s.ctrl)
	svc, err := generation.New(&generation.Config{
		Storage:       s.storage,
		TextGenerator: s.text,
		Parser:        p,
	})
	s.Require().NoError(err)

	s.storage.EXPECT().GetWorld(gomock.Any(), "world_1").Return(s.world, nil).Times(2)
	s.text.EXPECT().Complete(gomock.Any(), gomock.Any(), "").Return("name: Toblen", nil).Times(2)

	p.EXPECT().Parse("name: Toblen", generation.NPCFields).Return(parser.Fields{
		"name":       " Toblen Stonehill ",
		"race_class": "Human Commoner",
		"plot_hooks": []any{"Redbrands", "Missing miner"},
	}, nil)

	out, err := svc.GenerateNPC(s.ctx, &generation.GenerateNPCInput{WorldID: "world_1", Language: "en"})
	s.Require().NoError(err)

	fields := out.NPC.LocalizedFields()
	name, _ := fields["name"].Get("en")
	s.Equal("Toblen Stonehill", name)
	hooks, _ := fields["plot_hooks"].Get("en")
	s.Equal("Redbrands\nMissing miner", hooks)
	s.True(fields["appearance"].Has("en"))

	p.EXPECT().Parse("name: Toblen", generation.NPCFields).
		Return(nil, errors.MalformedGenerationResult("name: Toblen", nil))

	_, err = svc.GenerateNPC(s.ctx, &generation.GenerateNPCInput{WorldID: "world_1", Language: "en"})
	s.True(errors.IsMalformedGenerationResult(err))
}

func (s *OrchestratorTestSuite) TestSecondGenerationOnSameRecordIsRejected() {
	started := make(chan struct{})
	unblock := make(chan struct{})

	s.storage.EXPECT().GetWorld(gomock.Any(), "world_1").Return(s.world, nil)
	s.text.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, string) (string, error) {
			close(started)
			<-unblock
			return npcJSON, nil
		}).Times(1)

	input := &generation.GenerateNPCInput{WorldID: "world_1", Language: "en", LockKey: "draft-1"}

	var (
		wg    sync.WaitGroup
		first *generation.GenerateNPCOutput
		err1  error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		first, err1 = s.svc.GenerateNPC(s.ctx, input)
	}()

	<-started
	second, err2 := s.svc.GenerateNPC(s.ctx, input)
	close(unblock)
	wg.Wait()

	s.Nil(second)
	s.True(errors.IsGenerationInProgress(err2))
	s.Require().NoError(err1)
	s.NotNil(first.NPC)
	s.False(s.inFlight.Held("draft-1"))
}

func (s *OrchestratorTestSuite) TestGeneratePortrait() {
	npc := s.portraitNPC()

	var prompt string
	s.image.EXPECT().Generate(gomock.Any(), gomock.Any(), "").
		DoAndReturn(func(_ context.Context, p, _ string) (*genai.Image, error) {
			prompt = p
			return &genai.Image{MIMEType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}, nil
		})

	out, err := s.svc.GeneratePortrait(s.ctx, &generation.GeneratePortraitInput{NPC: npc})
	s.Require().NoError(err)

	s.Contains(prompt, "Sildar, Human Fighter.")
	s.Contains(prompt, "Grey-haired")
	s.Require().NotNil(out.NPC.Portrait)
	s.Equal("image/png", out.NPC.Portrait.MIMEType)
	s.Equal(prompt, out.NPC.Portrait.Prompt)
	s.Nil(npc.Portrait, "input is not mutated")
}

func (s *OrchestratorTestSuite) TestGeneratePortraitBillingRequiredCarriesPrompt() {
	s.image.EXPECT().Generate(gomock.Any(), gomock.Any(), "").
		Return(nil, errors.BillingRequired("", errors.New(errors.CodePermissionDenied, "only available to billed users")))

	_, err := s.svc.GeneratePortrait(s.ctx, &generation.GeneratePortraitInput{NPC: s.portraitNPC()})
	s.Require().Error(err)
	s.True(errors.IsBillingRequired(err))
	manual, _ := errors.GetMeta(err)[errors.MetaManualPrompt].(string)
	s.Contains(manual, "Grey-haired")
}

func (s *OrchestratorTestSuite) TestGeneratePortraitNeedsAppearance() {
	npc := s.portraitNPC()

	_, err := s.svc.GeneratePortrait(s.ctx, &generation.GeneratePortraitInput{NPC: npc, Language: "cs"})
	s.True(errors.IsNoSourceText(err))
}

func (s *OrchestratorTestSuite) TestSimulate() {
	npc := s.portraitNPC()
	npc.WorldID = "world_1"
	npc.Personality = entities.NewLocalizedText("en", "Dutiful")

	s.storage.EXPECT().GetWorld(gomock.Any(), "world_1").Return(s.world, nil)
	s.text.EXPECT().Complete(gomock.Any(), gomock.Any(), "").
		DoAndReturn(func(_ context.Context, p, _ string) (string, error) {
			s.Contains(p, "The Sword Coast")
			s.Contains(p, "Personality: Dutiful")
			s.Contains(p, "Roleplaying tips: N/A")
			s.Contains(p, "DM: Who are you?\nSildar: A knight.")
			s.Contains(p, "The Dungeon Master says: Where is Gundren?")
			return "  Taken to Cragmaw Castle, I fear.\n", nil
		})

	out, err := s.svc.Simulate(s.ctx, &generation.SimulateInput{
		NPC:     npc,
		Message: "Where is Gundren?",
		History: []generation.Exchange{
			{Speaker: "DM", Text: "Who are you?"},
			{Speaker: "Sildar", Text: "A knight."},
		},
	})
	s.Require().NoError(err)
	s.Equal("Taken to Cragmaw Castle, I fear.", out.Reply)
}

func (s *OrchestratorTestSuite) TestSimulateRequiresMessage() {
	_, err := s.svc.Simulate(s.ctx, &generation.SimulateInput{NPC: s.portraitNPC(), Message: "  "})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) portraitNPC() *entities.NonPlayerCharacter {
	return &entities.NonPlayerCharacter{
		CharacterBase: entities.CharacterBase{
			ID:         "char_1",
			Language:   "en",
			Name:       entities.NewLocalizedText("en", "Sildar"),
			Appearance: entities.NewLocalizedText("en", "Grey-haired, scarred knight"),
		},
		RaceClass: entities.NewLocalizedText("en", "Human Fighter"),
	}
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
