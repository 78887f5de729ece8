package genai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
)

// DefaultImagenModel is used when no image model is configured
const DefaultImagenModel = "imagen-3.0-generate-002"

// ImagenConfig configures the Imagen image client
type ImagenConfig struct {
	APIKey       string
	BaseURL      string
	DefaultModel string
	AspectRatio  string
	Timeout      time.Duration
	Proxy        string
	HTTPClient   *http.Client
}

// Validate validates the config and fills defaults
func (cfg *ImagenConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("APIKey", cfg.APIKey, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultGeminiBaseURL
	}
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = DefaultImagenModel
	}
	if cfg.AspectRatio == "" {
		cfg.AspectRatio = "3:4"
	}
	return nil
}

type imagen struct {
	cfg    ImagenConfig
	client *http.Client
}

// NewImagen creates an ImageGenerator backed by the :predict endpoint
func NewImagen(cfg *ImagenConfig) (ImageGenerator, error) {
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

	return &imagen{cfg: *cfg, client: client}, nil
}

type imagenRequest struct {
	Instances  []imagenInstance `json:"instances"`
	Parameters imagenParameters `json:"parameters"`
}

type imagenInstance struct {
	Prompt string `json:"prompt"`
}

type imagenParameters struct {
	SampleCount int    `json:"sampleCount"`
	AspectRatio string `json:"aspectRatio,omitempty"`
}

type imagenResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
		MIMEType           string `json:"mimeType"`
	} `json:"predictions"`
}

func (i *imagen) Generate(ctx context.Context, prompt, modelID string) (*Image, error) {
	if modelID == "" {
		modelID = i.cfg.DefaultModel
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:predict",
		strings.TrimRight(i.cfg.BaseURL, "/"), modelID)

	body, err := postJSON(ctx, i.client, "imagen", endpoint, map[string]string{
		"x-goog-api-key": i.cfg.APIKey,
	}, imagenRequest{
		Instances:  []imagenInstance{{Prompt: prompt}},
		Parameters: imagenParameters{SampleCount: 1, AspectRatio: i.cfg.AspectRatio},
	})
	if err != nil {
		if isBillingError(err) {
			return nil, errors.BillingRequired(prompt, err)
		}
		return nil, mapAPIError(err, "imagen")
	}

	var resp imagenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "invalid imagen response")
	}
	if len(resp.Predictions) == 0 || resp.Predictions[0].BytesBase64Encoded == "" {
		return nil, errors.Internal("imagen returned no image")
	}

	data, err := base64.StdEncoding.DecodeString(resp.Predictions[0].BytesBase64Encoded)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "invalid image encoding")
	}

	mimeType := resp.Predictions[0].MIMEType
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	return &Image{MIMEType: mimeType, Data: data}, nil
}

// isBillingError recognizes refusals for accounts without billing enabled
func isBillingError(err error) bool {
	apiErr, ok := err.(*apiError)
	if !ok {
		return false
	}
	if apiErr.StatusCode == http.StatusPaymentRequired {
		return true
	}
	msg := strings.ToLower(apiErr.Message + " " + apiErr.Body)
	return strings.Contains(msg, "billed users") || strings.Contains(msg, "billing")
}
