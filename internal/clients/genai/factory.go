package genai

import (
	"strings"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
)

// Text providers
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// ProviderConfig selects and configures the generators
type ProviderConfig struct {
	TextProvider  string
	GeminiAPIKey  string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	TextModel     string
	ImageModel    string
	Proxy         string
}

// NewFromConfig builds the text generator named by TextProvider and, when a
// Gemini key is present, the image generator. image is nil without a key.
func NewFromConfig(cfg *ProviderConfig) (text TextGenerator, image ImageGenerator, err error) {
	if cfg == nil {
		return nil, nil, errors.InvalidArgument("config is required")
	}

	switch strings.ToLower(strings.TrimSpace(cfg.TextProvider)) {
	case "", ProviderGemini:
		text, err = NewGemini(&GeminiConfig{
			APIKey:       cfg.GeminiAPIKey,
			DefaultModel: cfg.TextModel,
			Proxy:        cfg.Proxy,
		})
	case ProviderOpenAI:
		text, err = NewOpenAICompatible(&OpenAIConfig{
			APIKey:       cfg.OpenAIAPIKey,
			BaseURL:      cfg.OpenAIBaseURL,
			DefaultModel: cfg.TextModel,
			Proxy:        cfg.Proxy,
		})
	default:
		return nil, nil, errors.InvalidArgumentf("unknown text provider %q", cfg.TextProvider)
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create text generator")
	}

	if cfg.GeminiAPIKey != "" {
		image, err = NewImagen(&ImagenConfig{
			APIKey:       cfg.GeminiAPIKey,
			DefaultModel: cfg.ImageModel,
			Proxy:        cfg.Proxy,
		})
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create image generator")
		}
	}

	return text, image, nil
}
