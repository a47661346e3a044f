package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackfleet/hackfleet/pkg/config"
)

type stubProvider struct {
	name   config.LLMProvider
	result *Result
	err    error
	calls  int
}

func (s *stubProvider) Name() config.LLMProvider { return s.name }

func (s *stubProvider) Chat(_ context.Context, _ []Message, _ Options) (*Result, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newTestGateway(order []config.LLMProvider, providers ...*stubProvider) *Gateway {
	g := &Gateway{
		cfg:       &config.LLMConfig{DefaultOrder: order},
		providers: make(map[config.LLMProvider]provider),
	}
	for _, p := range providers {
		g.providers[p.name] = p
	}
	return g
}

func TestGatewayChat_FirstProviderWins(t *testing.T) {
	groq := &stubProvider{name: config.ProviderGroq, result: &Result{Content: "from groq", Provider: config.ProviderGroq}}
	openai := &stubProvider{name: config.ProviderOpenAI, result: &Result{Content: "from openai", Provider: config.ProviderOpenAI}}
	g := newTestGateway([]config.LLMProvider{config.ProviderGroq, config.ProviderOpenAI}, groq, openai)

	result, err := g.Chat(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "from groq", result.Content)
	assert.Equal(t, 1, groq.calls)
	assert.Equal(t, 0, openai.calls, "second provider should not be attempted on success")
}

func TestGatewayChat_FallsThroughOnFailure(t *testing.T) {
	groq := &stubProvider{name: config.ProviderGroq, err: errors.New("rate limited")}
	openai := &stubProvider{name: config.ProviderOpenAI, result: &Result{Content: "from openai", Provider: config.ProviderOpenAI}}
	g := newTestGateway([]config.LLMProvider{config.ProviderGroq, config.ProviderOpenAI}, groq, openai)

	result, err := g.Chat(context.Background(), nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "from openai", result.Content)
	assert.Equal(t, 1, groq.calls)
	assert.Equal(t, 1, openai.calls)
}

func TestGatewayChat_OneAttemptPerProvider(t *testing.T) {
	groq := &stubProvider{name: config.ProviderGroq, err: errors.New("boom")}
	g := newTestGateway([]config.LLMProvider{config.ProviderGroq}, groq)

	_, err := g.Chat(context.Background(), nil, Options{})
	require.Error(t, err)
	assert.Equal(t, 1, groq.calls, "a failed provider gets exactly one attempt")
}

func TestGatewayChat_ExhaustionReturnsUnavailable(t *testing.T) {
	groq := &stubProvider{name: config.ProviderGroq, err: errors.New("down")}
	anthropic := &stubProvider{name: config.ProviderAnthropic, err: errors.New("also down")}
	g := newTestGateway([]config.LLMProvider{config.ProviderGroq, config.ProviderAnthropic}, groq, anthropic)

	_, err := g.Chat(context.Background(), nil, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)

	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, []config.LLMProvider{config.ProviderGroq, config.ProviderAnthropic}, unavailable.Tried)
	assert.Contains(t, unavailable.Error(), "also down")
}

func TestGatewayChat_SkipsUnconfiguredProviders(t *testing.T) {
	anthropic := &stubProvider{name: config.ProviderAnthropic, result: &Result{Content: "claude"}}
	// Order mentions groq and openai but neither has a client.
	g := newTestGateway([]config.LLMProvider{config.ProviderGroq, config.ProviderOpenAI, config.ProviderAnthropic}, anthropic)

	result, err := g.Chat(context.Background(), nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "claude", result.Content)
}

func TestGatewayChat_ProviderOrderOverride(t *testing.T) {
	groq := &stubProvider{name: config.ProviderGroq, result: &Result{Content: "groq"}}
	openai := &stubProvider{name: config.ProviderOpenAI, result: &Result{Content: "openai"}}
	g := newTestGateway([]config.LLMProvider{config.ProviderGroq, config.ProviderOpenAI}, groq, openai)

	result, err := g.Chat(context.Background(), nil, Options{
		ProviderOrder: []config.LLMProvider{config.ProviderOpenAI},
	})
	require.NoError(t, err)
	assert.Equal(t, "openai", result.Content)
	assert.Equal(t, 0, groq.calls)
}

func TestGatewayChat_StructuredRequiresSchema(t *testing.T) {
	g := newTestGateway(nil)

	_, err := g.Chat(context.Background(), nil, Options{Structured: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestGatewayChat_StopsOnDeadContext(t *testing.T) {
	groq := &stubProvider{name: config.ProviderGroq, err: context.DeadlineExceeded}
	openai := &stubProvider{name: config.ProviderOpenAI, result: &Result{Content: "openai"}}
	g := newTestGateway([]config.LLMProvider{config.ProviderGroq, config.ProviderOpenAI}, groq, openai)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Chat(ctx, nil, Options{})
	require.Error(t, err)
	assert.Equal(t, 0, openai.calls, "remaining providers are skipped once the context is dead")
}
