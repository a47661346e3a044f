package llm

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/hackfleet/hackfleet/pkg/config"
)

// defaultAnthropicMaxTokens applies when the caller leaves MaxTokens unset;
// the Messages API requires an explicit cap.
const defaultAnthropicMaxTokens = 4096

// anthropicClient adapts the Claude Messages API. Structured output is
// encoded as a forced tool whose input is the result document.
type anthropicClient struct {
	model  string
	client sdk.Client
}

func newAnthropicClient(pc config.LLMProviderConfig) *anthropicClient {
	opts := []option.RequestOption{option.WithAPIKey(pc.APIKey)}
	if pc.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(pc.BaseURL))
	}
	return &anthropicClient{
		model:  pc.Model,
		client: sdk.NewClient(opts...),
	}
}

func (c *anthropicClient) Name() config.LLMProvider { return config.ProviderAnthropic }

func (c *anthropicClient) Chat(ctx context.Context, messages []Message, opts Options) (*Result, error) {
	model := c.model
	if opts.Model != "" {
		model = opts.Model
	}
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultAnthropicMaxTokens
	}

	conversation, system := encodeAnthropicMessages(messages)
	params := sdk.MessageNewParams{
		Model:     sdk.Model(model),
		MaxTokens: int64(maxTokens),
		Messages:  conversation,
		System:    system,
	}
	if opts.Temperature != nil {
		params.Temperature = sdk.Float(*opts.Temperature)
	}

	if opts.Structured {
		tool := sdk.ToolUnionParamOfTool(
			sdk.ToolInputSchemaParam{ExtraFields: opts.Schema.Schema},
			opts.Schema.Name,
		)
		if opts.Schema.Description != "" {
			tool.OfTool.Description = sdk.String(opts.Schema.Description)
		}
		params.Tools = []sdk.ToolUnionParam{tool}
		params.ToolChoice = sdk.ToolChoiceParamOfTool(opts.Schema.Name)
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic messages.new: %w", err)
	}

	content, err := decodeAnthropicContent(msg, opts.Structured)
	if err != nil {
		return nil, err
	}

	return &Result{
		Content: content,
		Usage: Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
			TotalTokens:  int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
		},
		Model:    string(msg.Model),
		Provider: config.ProviderAnthropic,
	}, nil
}

func encodeAnthropicMessages(messages []Message) ([]sdk.MessageParam, []sdk.TextBlockParam) {
	conversation := make([]sdk.MessageParam, 0, len(messages))
	var system []sdk.TextBlockParam
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, sdk.TextBlockParam{Text: m.Content})
		case RoleAssistant:
			conversation = append(conversation, sdk.NewAssistantMessage(sdk.NewTextBlock(m.Content)))
		default:
			conversation = append(conversation, sdk.NewUserMessage(sdk.NewTextBlock(m.Content)))
		}
	}
	return conversation, system
}

func decodeAnthropicContent(msg *sdk.Message, structured bool) (string, error) {
	if structured {
		for _, block := range msg.Content {
			if block.Type == "tool_use" {
				return string(block.Input), nil
			}
		}
		return "", fmt.Errorf("anthropic: structured output requested but no tool_use block returned")
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}
