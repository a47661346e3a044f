// Package llm provides a provider-agnostic chat gateway with ordered
// fallback across Groq, OpenAI, Gemini, and Anthropic, and optional
// JSON-schema constrained output.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hackfleet/hackfleet/pkg/config"
)

// Role is a chat message role.
type Role string

// Chat roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat turn.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// JSONSchema is the provider-independent structured-output contract. Schema
// is a raw JSON Schema document; each provider adapter encodes it natively
// (tool-use, function-calling, or response_format.json_schema).
type JSONSchema struct {
	Name        string
	Description string
	Schema      map[string]any
}

// Options controls a single chat call.
type Options struct {
	// Temperature overrides the provider default when non-nil.
	Temperature *float64

	// MaxTokens bounds the completion; 0 uses the provider default.
	MaxTokens int

	// Model overrides the provider's configured model.
	Model string

	// Structured requests provider-native JSON-schema constrained output;
	// Schema must be set. The result Content is JSON text matching Schema.
	Structured bool
	Schema     *JSONSchema

	// JSONMode requests a JSON object without schema constraint (legacy).
	JSONMode bool

	// ProviderOrder overrides the default fallback order.
	ProviderOrder []config.LLMProvider
}

// Usage is the token accounting reported by a provider.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Result is a completed chat call.
type Result struct {
	Content  string
	Usage    Usage
	Model    string
	Provider config.LLMProvider
}

// Client is the chat surface consumed by agent runners. Satisfied by
// *Gateway and by test doubles.
type Client interface {
	Chat(ctx context.Context, messages []Message, opts Options) (*Result, error)
}

// ErrUnavailable is the sentinel matched when every provider failed.
var ErrUnavailable = errors.New("llm unavailable")

// UnavailableError reports provider-order exhaustion; Last carries the final
// provider's error.
type UnavailableError struct {
	Tried []config.LLMProvider
	Last  error
}

func (e *UnavailableError) Error() string {
	names := make([]string, len(e.Tried))
	for i, p := range e.Tried {
		names[i] = string(p)
	}
	return fmt.Sprintf("all llm providers failed (tried %s): %v", strings.Join(names, ", "), e.Last)
}

func (e *UnavailableError) Unwrap() error { return ErrUnavailable }

// provider is one configured backend.
type provider interface {
	Name() config.LLMProvider
	Chat(ctx context.Context, messages []Message, opts Options) (*Result, error)
}
