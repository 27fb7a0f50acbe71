package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"irchumanizer/internal/config"
)

// OpenAIProvider speaks the OpenAI-compatible /chat/completions protocol.
// Any gateway exposing that shape works through BaseURL.
type OpenAIProvider struct {
	baseURL string
	model   string
	apiKey  string
	client  *http.Client
}

// NewOpenAIProvider creates a provider from config.
func NewOpenAIProvider(cfg config.AIConfig) *OpenAIProvider {
	return &OpenAIProvider{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: 25 * time.Second},
	}
}

// Generate posts the conversation and returns the cleaned reply.
func (p *OpenAIProvider) Generate(ctx context.Context, messages []Message) (string, error) {
	payload := map[string]any{
		"model":       p.model,
		"messages":    messages,
		"max_tokens":  120,
		"temperature": 0.9,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("ai http %d: %s", resp.StatusCode, truncate(body))
	}
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		return "", fmt.Errorf("ai provider returned html")
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("ai unmarshal: %w body=%s", err, truncate(body))
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("ai empty choices")
	}

	reply := cleanReply(parsed.Choices[0].Message.Content)
	if isGarbageResponse(reply) {
		return "", fmt.Errorf("ai returned garbage")
	}
	return reply, nil
}
