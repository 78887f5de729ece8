// Package genai holds the text and image generator clients.
package genai

//go:generate mockgen -destination=mock/mock_genai.go -package=genaimock github.com/KirkDiggler/dnd-ai-toolkit/internal/clients/genai TextGenerator,ImageGenerator

import (
	"context"
)

// TextGenerator produces a single completion for a prompt. An empty modelID
// selects the client's default model.
type TextGenerator interface {
	// Complete returns the raw completion text.
	// Returns errors.Unavailable when the provider cannot be reached.
	Complete(ctx context.Context, prompt, modelID string) (string, error)
}

// ImageGenerator produces an image for a prompt
type ImageGenerator interface {
	// Generate returns the image bytes.
	// Returns errors.BillingRequired when the account cannot use image generation.
	Generate(ctx context.Context, prompt, modelID string) (*Image, error)
}

// Image is a generated image
type Image struct {
	MIMEType string
	Data     []byte
}
