package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
)

// Defaults for OpenAI compatible endpoints
const (
	DefaultOpenAIBaseURL   = "https://api.openai.com/v1"
	DefaultOpenAITextModel = "gpt-4o-mini"
)

// OpenAIConfig configures a /chat/completions client. Groq, Ollama and other
// OpenAI compatible servers only need a different BaseURL.
type OpenAIConfig struct {
	APIKey       string
	BaseURL      string
	DefaultModel string
	Temperature  float64
	Timeout      time.Duration
	Proxy        string
	HTTPClient   *http.Client
}

// Validate fills defaults. The API key is optional for local servers.
func (cfg *OpenAIConfig) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOpenAIBaseURL
	}
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = DefaultOpenAITextModel
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.8
	}
	return nil
}

type openAICompatible struct {
	cfg    OpenAIConfig
	client *http.Client
}

// NewOpenAICompatible creates a TextGenerator backed by /chat/completions
func NewOpenAICompatible(cfg *OpenAIConfig) (TextGenerator, error) {
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

	return &openAICompatible{cfg: *cfg, client: client}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (o *openAICompatible) Complete(ctx context.Context, prompt, modelID string) (string, error) {
	if modelID == "" {
		modelID = o.cfg.DefaultModel
	}

	endpoint := strings.TrimRight(o.cfg.BaseURL, "/")
	if !strings.HasSuffix(endpoint, "/chat/completions") {
		endpoint += "/chat/completions"
	}

	headers := map[string]string{}
	if o.cfg.APIKey != "" {
		headers["Authorization"] = "Bearer " + o.cfg.APIKey
	}

	body, err := postJSON(ctx, o.client, "openai", endpoint, headers, chatRequest{
		Model:       modelID,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: o.cfg.Temperature,
	})
	if err != nil {
		return "", mapAPIError(err, "openai")
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errors.WrapWithCode(err, errors.CodeInternal, "invalid chat completion response")
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.Internalf("no text in chat completion response: %s", truncate(string(body), 300))
	}

	return resp.Choices[0].Message.Content, nil
}
