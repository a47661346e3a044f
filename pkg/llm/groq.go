package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hackfleet/hackfleet/pkg/config"
)

// groqClient speaks Groq's OpenAI-compatible chat completions API directly
// over HTTP (no official Go SDK exists). Structured output uses function
// calling: the schema becomes a forced tool whose arguments are the result.
type groqClient struct {
	model      string
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func newGroqClient(pc config.LLMProviderConfig) *groqClient {
	return &groqClient{
		model:   pc.Model,
		apiKey:  pc.APIKey,
		baseURL: strings.TrimRight(pc.BaseURL, "/"),
		// Per-call deadlines come from ctx; this is a hard transport bound.
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

func (c *groqClient) Name() config.LLMProvider { return config.ProviderGroq }

func (c *groqClient) Chat(ctx context.Context, messages []Message, opts Options) (*Result, error) {
	model := c.model
	if opts.Model != "" {
		model = opts.Model
	}

	req := map[string]any{
		"model":    model,
		"messages": encodeGroqMessages(messages),
		"stream":   false,
	}
	if opts.Temperature != nil {
		req["temperature"] = *opts.Temperature
	}
	if opts.MaxTokens > 0 {
		req["max_tokens"] = opts.MaxTokens
	}

	switch {
	case opts.Structured:
		req["tools"] = []map[string]any{{
			"type": "function",
			"function": map[string]any{
				"name":        opts.Schema.Name,
				"description": opts.Schema.Description,
				"parameters":  opts.Schema.Schema,
			},
		}}
		req["tool_choice"] = map[string]any{
			"type":     "function",
			"function": map[string]any{"name": opts.Schema.Name},
		}
	case opts.JSONMode:
		req["response_format"] = map[string]any{"type": "json_object"}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("groq: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("groq: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("groq: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("groq: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("groq: status %d: %s", resp.StatusCode, truncateBody(respBody))
	}

	var parsed struct {
		Model   string `json:"model"`
		Choices []struct {
			Message struct {
				Content   string `json:"content"`
				ToolCalls []struct {
					Function struct {
						Name      string `json:"name"`
						Arguments string `json:"arguments"`
					} `json:"function"`
				} `json:"tool_calls"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
			TotalTokens      int `json:"total_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("groq: decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("groq: empty choices")
	}

	msg := parsed.Choices[0].Message
	content := msg.Content
	if opts.Structured {
		if len(msg.ToolCalls) == 0 {
			return nil, fmt.Errorf("groq: structured output requested but no tool call returned")
		}
		content = msg.ToolCalls[0].Function.Arguments
	}

	return &Result{
		Content: content,
		Usage: Usage{
			InputTokens:  parsed.Usage.PromptTokens,
			OutputTokens: parsed.Usage.CompletionTokens,
			TotalTokens:  parsed.Usage.TotalTokens,
		},
		Model:    parsed.Model,
		Provider: config.ProviderGroq,
	}, nil
}

func encodeGroqMessages(messages []Message) []map[string]string {
	out := make([]map[string]string, 0, len(messages))
	for _, m := range messages {
		out = append(out, map[string]string{
			"role":    string(m.Role),
			"content": m.Content,
		})
	}
	return out
}

func truncateBody(b []byte) string {
	const max = 512
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
