package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
)

// Defaults for the Google Generative Language API
const (
	DefaultGeminiBaseURL   = "https://generativelanguage.googleapis.com"
	DefaultGeminiTextModel = "gemini-2.0-flash"
)

// GeminiConfig configures the Gemini text client
type GeminiConfig struct {
	APIKey       string
	BaseURL      string
	DefaultModel string
	Temperature  float64
	Timeout      time.Duration
	Proxy        string
	HTTPClient   *http.Client
}

// Validate validates the config and fills defaults
func (cfg *GeminiConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("APIKey", cfg.APIKey, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultGeminiBaseURL
	}
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = DefaultGeminiTextModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.8
	}
	return nil
}

type gemini struct {
	cfg    GeminiConfig
	client *http.Client
}

// NewGemini creates a TextGenerator backed by generateContent
func NewGemini(cfg *GeminiConfig) (TextGenerator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	client := cfg.HTTPClient
	if client == nil {
		client = makeHTTPClient(cfg.Proxy, cfg.Timeout)
	}

	return &gemini{cfg: *cfg, client: client}, nil
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		Temperature float64 `json:"temperature"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

func (g *gemini) Complete(ctx context.Context, prompt, modelID string) (string, error) {
	if modelID == "" {
		modelID = g.cfg.DefaultModel
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		strings.TrimRight(g.cfg.BaseURL, "/"), modelID)

	req := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
	}
	req.GenerationConfig.Temperature = g.cfg.Temperature

	body, err := postJSON(ctx, g.client, "gemini", endpoint, map[string]string{
		"x-goog-api-key": g.cfg.APIKey,
	}, req)
	if err != nil {
		return "", mapAPIError(err, "gemini")
	}

	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errors.WrapWithCode(err, errors.CodeInternal, "invalid gemini response")
	}

	if resp.PromptFeedback.BlockReason != "" {
		return "", errors.FailedPreconditionf("prompt blocked: %s", resp.PromptFeedback.BlockReason)
	}

	for _, candidate := range resp.Candidates {
		var b strings.Builder
		for _, part := range candidate.Content.Parts {
			b.WriteString(part.Text)
		}
		if b.Len() > 0 {
			return b.String(), nil
		}
	}

	return "", errors.Internalf("no text in gemini response: %s", truncate(string(body), 300))
}
