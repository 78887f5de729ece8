package genai_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/clients/genai"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
)

type GenAITestSuite struct {
	suite.Suite
	ctx      context.Context
	server   *httptest.Server
	handler  http.HandlerFunc
	lastPath string
	lastBody map[string]any
	lastHdr  http.Header
}

func TestGenAISuite(t *testing.T) {
	suite.Run(t, new(GenAITestSuite))
}

func (s *GenAITestSuite) SetupTest() {
	s.ctx = context.Background()
	s.handler = nil
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lastPath = r.URL.Path
		s.lastHdr = r.Header.Clone()
		data, _ := io.ReadAll(r.Body)
		s.lastBody = nil
		_ = json.Unmarshal(data, &s.lastBody)
		s.handler(w, r)
	}))
}

func (s *GenAITestSuite) TearDownTest() {
	s.server.Close()
}

func (s *GenAITestSuite) respond(status int, body string) {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func (s *GenAITestSuite) TestGeminiComplete() {
	s.respond(http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"{\"name\":"},{"text":"\"Bob\"}"}]}}]}`)

	gen, err := genai.NewGemini(&genai.GeminiConfig{APIKey: "key", BaseURL: s.server.URL})
	s.Require().NoError(err)

	text, err := gen.Complete(s.ctx, "make an npc", "gemini-test")
	s.Require().NoError(err)
	s.Equal(`{"name":"Bob"}`, text)
	s.Equal("/v1beta/models/gemini-test:generateContent", s.lastPath)
	s.Equal("key", s.lastHdr.Get("x-goog-api-key"))
}

func (s *GenAITestSuite) TestGeminiUsesDefaultModel() {
	s.respond(http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`)

	gen, err := genai.NewGemini(&genai.GeminiConfig{APIKey: "key", BaseURL: s.server.URL})
	s.Require().NoError(err)

	_, err = gen.Complete(s.ctx, "hi", "")
	s.Require().NoError(err)
	s.Equal("/v1beta/models/"+genai.DefaultGeminiTextModel+":generateContent", s.lastPath)
}

func (s *GenAITestSuite) TestGeminiRequiresKey() {
	_, err := genai.NewGemini(&genai.GeminiConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *GenAITestSuite) TestGeminiServerErrorIsUnavailable() {
	s.respond(http.StatusServiceUnavailable, `{"error":{"message":"overloaded"}}`)

	gen, err := genai.NewGemini(&genai.GeminiConfig{APIKey: "key", BaseURL: s.server.URL})
	s.Require().NoError(err)

	_, err = gen.Complete(s.ctx, "hi", "")
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Equal(http.StatusServiceUnavailable, errors.GetMeta(err)["status_code"])
}

func (s *GenAITestSuite) TestTransportFailureIsUnavailable() {
	gen, err := genai.NewGemini(&genai.GeminiConfig{APIKey: "key", BaseURL: "http://127.0.0.1:1"})
	s.Require().NoError(err)

	_, err = gen.Complete(s.ctx, "hi", "")
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *GenAITestSuite) TestOpenAICompatibleComplete() {
	s.respond(http.StatusOK, `{"choices":[{"message":{"role":"assistant","content":"Hallo"}}]}`)

	gen, err := genai.NewOpenAICompatible(&genai.OpenAIConfig{APIKey: "sk", BaseURL: s.server.URL + "/v1"})
	s.Require().NoError(err)

	text, err := gen.Complete(s.ctx, "translate", "llama3")
	s.Require().NoError(err)
	s.Equal("Hallo", text)
	s.Equal("/v1/chat/completions", s.lastPath)
	s.Equal("Bearer sk", s.lastHdr.Get("Authorization"))
	s.Equal("llama3", s.lastBody["model"])
}

func (s *GenAITestSuite) TestOpenAIRateLimited() {
	s.respond(http.StatusTooManyRequests, `{"error":{"message":"slow down"}}`)

	gen, err := genai.NewOpenAICompatible(&genai.OpenAIConfig{BaseURL: s.server.URL})
	s.Require().NoError(err)

	_, err = gen.Complete(s.ctx, "translate", "")
	s.Require().Error(err)
	s.True(errors.IsResourceExhausted(err))
}

func (s *GenAITestSuite) TestImagenGenerate() {
	encoded := base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	s.respond(http.StatusOK, `{"predictions":[{"bytesBase64Encoded":"`+encoded+`","mimeType":"image/png"}]}`)

	gen, err := genai.NewImagen(&genai.ImagenConfig{APIKey: "key", BaseURL: s.server.URL})
	s.Require().NoError(err)

	img, err := gen.Generate(s.ctx, "an elf", "")
	s.Require().NoError(err)
	s.Equal("image/png", img.MIMEType)
	s.Equal([]byte("png-bytes"), img.Data)
	s.Equal("/v1beta/models/"+genai.DefaultImagenModel+":predict", s.lastPath)

	instances := s.lastBody["instances"].([]any)
	s.Equal("an elf", instances[0].(map[string]any)["prompt"])
}

func (s *GenAITestSuite) TestImagenBillingRequired() {
	testCases := []struct {
		name   string
		status int
		body   string
	}{
		{"billed users message", http.StatusBadRequest, `{"error":{"code":400,"message":"Imagen API is only accessible to billed users at this time.","status":"INVALID_ARGUMENT"}}`},
		{"payment required", http.StatusPaymentRequired, `{}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.respond(tc.status, tc.body)

			gen, err := genai.NewImagen(&genai.ImagenConfig{APIKey: "key", BaseURL: s.server.URL})
			s.Require().NoError(err)

			_, err = gen.Generate(s.ctx, "an elf with a lute", "")
			s.Require().Error(err)
			s.True(errors.IsBillingRequired(err))
			s.Equal("an elf with a lute", errors.GetMeta(err)[errors.MetaManualPrompt])
		})
	}
}

func (s *GenAITestSuite) TestImagenOtherBadRequest() {
	s.respond(http.StatusBadRequest, `{"error":{"message":"prompt rejected by safety filter"}}`)

	gen, err := genai.NewImagen(&genai.ImagenConfig{APIKey: "key", BaseURL: s.server.URL})
	s.Require().NoError(err)

	_, err = gen.Generate(s.ctx, "x", "")
	s.Require().Error(err)
	s.False(errors.IsBillingRequired(err))
	s.True(errors.IsInvalidArgument(err))
}

func (s *GenAITestSuite) TestNewFromConfig() {
	text, image, err := genai.NewFromConfig(&genai.ProviderConfig{TextProvider: "openai"})
	s.Require().NoError(err)
	s.NotNil(text)
	s.Nil(image)

	text, image, err = genai.NewFromConfig(&genai.ProviderConfig{TextProvider: "gemini", GeminiAPIKey: "key"})
	s.Require().NoError(err)
	s.NotNil(text)
	s.NotNil(image)

	_, _, err = genai.NewFromConfig(&genai.ProviderConfig{TextProvider: "carrier-pigeon"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
