package advisory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	openai "github.com/sashabaranov/go-openai"

	"github.com/dominikjosefbell/space-ai-alert-mvp/internal/config"
)

// remoteClient issues generation requests. The decoder for each endpoint
// is fixed by its declared format, never guessed from the payload.
type remoteClient struct {
	http *resty.Client
}

func newRemoteClient() *remoteClient {
	return &remoteClient{
		// Per-attempt deadlines come from the caller's context; the client
		// timeout is only a safety net.
		http: resty.New().SetTimeout(60 * time.Second),
	}
}

// Generate sends one prompt to one endpoint and extracts the text.
func (c *remoteClient) Generate(ctx context.Context, endpoint config.RemoteEndpoint, prompt string) (string, error) {
	switch endpoint.Format {
	case config.FormatChat:
		return c.generateChat(ctx, endpoint, prompt)
	case config.FormatPlain:
		return c.generatePlain(ctx, endpoint, prompt)
	default:
		return "", fmt.Errorf("unknown endpoint format %q", endpoint.Format)
	}
}

// generateChat calls a chat-completion style endpoint.
func (c *remoteClient) generateChat(ctx context.Context, endpoint config.RemoteEndpoint, prompt string) (string, error) {
	cfg := openai.DefaultConfig(endpoint.APIKey)
	if endpoint.URL != "" {
		cfg.BaseURL = endpoint.URL
	}
	client := openai.NewClientWithConfig(cfg)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: endpoint.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// plainResponse is the generation-style payload: [{"generated_text": ...}].
type plainResponse []struct {
	GeneratedText string `json:"generated_text"`
}

// generatePlain calls a plain text-generation inference endpoint.
func (c *remoteClient) generatePlain(ctx context.Context, endpoint config.RemoteEndpoint, prompt string) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+endpoint.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"inputs": prompt,
			"parameters": map[string]interface{}{
				"max_new_tokens":   500,
				"temperature":      0.7,
				"return_full_text": false,
			},
		}).
		Post(endpoint.URL)
	if err != nil {
		return "", fmt.Errorf("inference request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("inference endpoint returned status %d", resp.StatusCode())
	}

	var payload plainResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return "", fmt.Errorf("failed to parse inference response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("inference response is empty")
	}
	return strings.TrimSpace(payload[0].GeneratedText), nil
}
