package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hackfleet/hackfleet/pkg/config"
)

// Gateway fans a chat call out over the configured providers in order. Each
// provider gets exactly one attempt per call; cycle-level retry is the
// scheduler's job, not the gateway's.
type Gateway struct {
	cfg       *config.LLMConfig
	providers map[config.LLMProvider]provider
}

// NewGateway builds a gateway from the configured providers. Providers
// without credentials are skipped entirely.
func NewGateway(cfg *config.LLMConfig) *Gateway {
	g := &Gateway{
		cfg:       cfg,
		providers: make(map[config.LLMProvider]provider),
	}

	for name, pc := range cfg.Providers {
		if !pc.Enabled() {
			slog.Info("LLM provider disabled (no API key)", "provider", name)
			continue
		}
		switch name {
		case config.ProviderGroq:
			g.providers[name] = newGroqClient(pc)
		case config.ProviderOpenAI, config.ProviderGemini:
			g.providers[name] = newOpenAIClient(pc)
		case config.ProviderAnthropic:
			g.providers[name] = newAnthropicClient(pc)
		default:
			slog.Warn("Unknown LLM provider in config, skipping", "provider", name)
		}
	}

	return g
}

// Enabled returns the number of usable providers.
func (g *Gateway) Enabled() int {
	return len(g.providers)
}

// Chat iterates the provider order, attempting each enabled provider once.
// The first success wins; exhaustion returns *UnavailableError.
func (g *Gateway) Chat(ctx context.Context, messages []Message, opts Options) (*Result, error) {
	if opts.Structured && opts.Schema == nil {
		return nil, fmt.Errorf("structured output requested without a schema")
	}

	order := opts.ProviderOrder
	if len(order) == 0 {
		order = g.cfg.DefaultOrder
	}

	var (
		tried   []config.LLMProvider
		lastErr error
	)
	for _, name := range order {
		p, ok := g.providers[name]
		if !ok {
			continue
		}

		result, err := p.Chat(ctx, messages, opts)
		if err == nil {
			return result, nil
		}

		tried = append(tried, name)
		lastErr = err
		slog.Warn("LLM provider failed, falling through",
			"provider", name, "error", err)

		// A dead context will fail every remaining provider identically.
		if ctx.Err() != nil {
			break
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no providers configured")
	}
	return nil, &UnavailableError{Tried: tried, Last: lastErr}
}
