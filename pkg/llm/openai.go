package llm

import (
	"context"
	"fmt"

	sdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/hackfleet/hackfleet/pkg/config"
)

// openAIClient speaks the Chat Completions API through the official SDK.
// It serves both the OpenAI provider and Gemini (via Google's
// OpenAI-compatible endpoint). Structured output uses
// response_format.json_schema.
type openAIClient struct {
	name   config.LLMProvider
	model  string
	client sdk.Client
}

func newOpenAIClient(pc config.LLMProviderConfig) *openAIClient {
	opts := []option.RequestOption{option.WithAPIKey(pc.APIKey)}
	if pc.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(pc.BaseURL))
	}
	return &openAIClient{
		name:   pc.Provider,
		model:  pc.Model,
		client: sdk.NewClient(opts...),
	}
}

func (c *openAIClient) Name() config.LLMProvider { return c.name }

func (c *openAIClient) Chat(ctx context.Context, messages []Message, opts Options) (*Result, error) {
	model := c.model
	if opts.Model != "" {
		model = opts.Model
	}

	params := sdk.ChatCompletionNewParams{
		Model:    shared.ChatModel(model),
		Messages: encodeOpenAIMessages(messages),
	}
	if opts.Temperature != nil {
		params.Temperature = sdk.Float(*opts.Temperature)
	}
	if opts.MaxTokens > 0 {
		params.MaxTokens = sdk.Int(int64(opts.MaxTokens))
	}

	switch {
	case opts.Structured:
		params.ResponseFormat = sdk.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        opts.Schema.Name,
					Description: sdk.String(opts.Schema.Description),
					Schema:      opts.Schema.Schema,
					Strict:      sdk.Bool(true),
				},
			},
		}
	case opts.JSONMode:
		params.ResponseFormat = sdk.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%s chat completion: %w", c.name, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s chat completion: empty choices", c.name)
	}

	return &Result{
		Content: resp.Choices[0].Message.Content,
		Usage: Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:  int(resp.Usage.TotalTokens),
		},
		Model:    resp.Model,
		Provider: c.name,
	}, nil
}

func encodeOpenAIMessages(messages []Message) []sdk.ChatCompletionMessageParamUnion {
	out := make([]sdk.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			out = append(out, sdk.SystemMessage(m.Content))
		case RoleAssistant:
			out = append(out, sdk.AssistantMessage(m.Content))
		default:
			out = append(out, sdk.UserMessage(m.Content))
		}
	}
	return out
}
