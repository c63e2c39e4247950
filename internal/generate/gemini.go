package generate

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiBackend serves the same role as MistralBackend over the Gemini
// API.
type GeminiBackend struct {
	client *genai.Client
	model  string
}

func NewGeminiBackend(ctx context.Context, apiKey, model string) (*GeminiBackend, error) {
	client, err := genai.NewClient(ctx,
		&genai.ClientConfig{
			APIKey: apiKey,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiBackend{client: client, model: model}, nil
}

func (b *GeminiBackend) Complete(ctx context.Context, prompt string) (string, error) {
	result, err := b.client.Models.GenerateContent(ctx, b.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return result.Text(), nil
}
