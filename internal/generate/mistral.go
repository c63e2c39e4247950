package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

const defaultMistralModel = "mistral-small-latest"

// MistralBackend talks to any OpenAI-compatible chat completions API.
// The transport carries a browser TLS fingerprint, which some gateway
// deployments require.
type MistralBackend struct {
	client  tls_client.HttpClient
	apiKey  string
	model   string
	baseURL string
}

func NewMistralBackend(apiKey, model, baseURL string, timeoutSecs int) (*MistralBackend, error) {
	opts := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(timeoutSecs),
		tls_client.WithClientProfile(profiles.DefaultClientProfile),
	}
	client, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build http client: %w", err)
	}
	if model == "" {
		model = defaultMistralModel
	}
	return &MistralBackend{
		client:  client,
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int         `json:"index"`
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (b *MistralBackend) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: b.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	}

	raw, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		b.baseURL+"/chat/completions",
		bytes.NewBuffer(raw),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.apiKey)

	resp, err := b.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call chat API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("chat API error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return parsed.Choices[0].Message.Content, nil
}
