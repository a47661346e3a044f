package config

import (
	"os"
	"strings"
	"time"
)

// LLMProvider identifies a configured LLM backend.
type LLMProvider string

// Known providers, in default fallback order.
const (
	ProviderGroq      LLMProvider = "groq"
	ProviderOpenAI    LLMProvider = "openai"
	ProviderGemini    LLMProvider = "gemini"
	ProviderAnthropic LLMProvider = "anthropic"
)

// LLMProviderConfig is one provider's connection settings. A provider with
// an empty APIKey is disabled; the gateway skips it during fallback.
type LLMProviderConfig struct {
	Provider LLMProvider
	APIKey   string
	BaseURL  string
	Model    string
}

// Enabled reports whether the provider has credentials.
func (c LLMProviderConfig) Enabled() bool {
	return c.APIKey != ""
}

// LLMConfig configures the LLM gateway.
type LLMConfig struct {
	// Providers holds the configuration for every known provider, keyed by name.
	Providers map[LLMProvider]LLMProviderConfig

	// DefaultOrder is the fallback order when a call does not override it.
	DefaultOrder []LLMProvider

	// DefaultTimeout bounds a single chat call; builder calls use
	// BuilderTimeout (larger token budget, slower generations).
	DefaultTimeout time.Duration
	BuilderTimeout time.Duration
}

// DefaultLLMConfig returns the built-in provider defaults (no credentials).
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Providers: map[LLMProvider]LLMProviderConfig{
			ProviderGroq: {
				Provider: ProviderGroq,
				BaseURL:  "https://api.groq.com/openai/v1",
				Model:    "llama-3.3-70b-versatile",
			},
			ProviderOpenAI: {
				Provider: ProviderOpenAI,
				BaseURL:  "https://api.openai.com/v1",
				Model:    "gpt-4o-mini",
			},
			ProviderGemini: {
				Provider: ProviderGemini,
				BaseURL:  "https://generativelanguage.googleapis.com/v1beta/openai",
				Model:    "gemini-2.0-flash",
			},
			ProviderAnthropic: {
				Provider: ProviderAnthropic,
				Model:    "claude-3-5-haiku-latest",
			},
		},
		DefaultOrder:   []LLMProvider{ProviderGroq, ProviderOpenAI, ProviderGemini, ProviderAnthropic},
		DefaultTimeout: 30 * time.Second,
		BuilderTimeout: 60 * time.Second,
	}
}

// LoadLLMConfig returns defaults with API keys and overrides from the
// environment. Missing keys disable that provider only.
func LoadLLMConfig() *LLMConfig {
	cfg := DefaultLLMConfig()

	apply := func(p LLMProvider, keyEnv, modelEnv, baseURLEnv string) {
		pc := cfg.Providers[p]
		pc.APIKey = os.Getenv(keyEnv)
		if m := os.Getenv(modelEnv); m != "" {
			pc.Model = m
		}
		if u := os.Getenv(baseURLEnv); u != "" {
			pc.BaseURL = u
		}
		cfg.Providers[p] = pc
	}

	apply(ProviderGroq, "GROQ_API_KEY", "GROQ_MODEL", "GROQ_BASE_URL")
	apply(ProviderOpenAI, "OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL")
	apply(ProviderGemini, "GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL")
	apply(ProviderAnthropic, "ANTHROPIC_API_KEY", "ANTHROPIC_MODEL", "ANTHROPIC_BASE_URL")

	if order := os.Getenv("LLM_PROVIDER_ORDER"); order != "" {
		parsed := make([]LLMProvider, 0, 4)
		for _, name := range strings.Split(order, ",") {
			p := LLMProvider(strings.TrimSpace(name))
			if _, ok := cfg.Providers[p]; ok {
				parsed = append(parsed, p)
			}
		}
		if len(parsed) > 0 {
			cfg.DefaultOrder = parsed
		}
	}

	cfg.DefaultTimeout = getEnvDuration("LLM_TIMEOUT", cfg.DefaultTimeout)
	cfg.BuilderTimeout = getEnvDuration("LLM_BUILDER_TIMEOUT", cfg.BuilderTimeout)
	return cfg
}

// EnabledProviders returns the default-order providers that have credentials.
func (c *LLMConfig) EnabledProviders() []LLMProviderConfig {
	out := make([]LLMProviderConfig, 0, len(c.DefaultOrder))
	for _, p := range c.DefaultOrder {
		if pc, ok := c.Providers[p]; ok && pc.Enabled() {
			out = append(out, pc)
		}
	}
	return out
}
