package util

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hackfleet/hackfleet/pkg/config"
	"github.com/hackfleet/hackfleet/pkg/llm"
)

// LLMScriptEntry defines a single scripted LLM response.
type LLMScriptEntry struct {
	// Response content (exactly one should be set)
	Content string // JSON text returned as the structured reply
	Error   error  // Return error from Chat()

	// Test control
	BlockUntilCancelled bool            // Block Chat() until ctx is cancelled, then return Error or ctx.Err()
	OnBlock             chan<- struct{} // Notified when Chat() enters its blocking path
}

// CapturedCall records one Chat invocation for assertions.
type CapturedCall struct {
	Messages []llm.Message
	Options  llm.Options
}

// ScriptedLLMClient implements llm.Client with a dual-dispatch mock:
// sequential fallback for single-agent cycles, plus role-aware routing for
// parallel waves where call order is non-deterministic. Roles are matched
// from the system prompt ("You are the planner ...").
type ScriptedLLMClient struct {
	mu         sync.Mutex
	sequential []LLMScriptEntry
	seqIndex   int
	routes     map[string][]LLMScriptEntry // role → per-role script
	routeIndex map[string]int
	captured   []CapturedCall
}

// NewScriptedLLMClient creates a new ScriptedLLMClient.
func NewScriptedLLMClient() *ScriptedLLMClient {
	return &ScriptedLLMClient{
		routes:     make(map[string][]LLMScriptEntry),
		routeIndex: make(map[string]int),
	}
}

// AddSequential adds an entry consumed in order for non-routed calls.
func (c *ScriptedLLMClient) AddSequential(entry LLMScriptEntry) {
	c.sequential = append(c.sequential, entry)
}

// AddRouted adds an entry for a specific role, matched from the system prompt.
// Used for parallel waves where agents need differentiated responses.
func (c *ScriptedLLMClient) AddRouted(role string, entry LLMScriptEntry) {
	c.routes[role] = append(c.routes[role], entry)
}

// Captured returns every recorded call so far.
func (c *ScriptedLLMClient) Captured() []CapturedCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CapturedCall, len(c.captured))
	copy(out, c.captured)
	return out
}

// CallCount returns the number of Chat invocations so far.
func (c *ScriptedLLMClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.captured)
}

// Chat implements llm.Client.
func (c *ScriptedLLMClient) Chat(ctx context.Context, messages []llm.Message, opts llm.Options) (*llm.Result, error) {
	c.mu.Lock()
	c.captured = append(c.captured, CapturedCall{Messages: messages, Options: opts})

	entry, err := c.nextEntry(messages)
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if entry.BlockUntilCancelled {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		<-ctx.Done()
		// A set Error mimics a gateway that wraps the deadline inside its
		// own exhaustion error instead of returning ctx.Err() directly.
		if entry.Error != nil {
			return nil, entry.Error
		}
		return nil, ctx.Err()
	}

	if entry.Error != nil {
		return nil, entry.Error
	}
	return &llm.Result{
		Content:  entry.Content,
		Model:    "scripted",
		Provider: config.ProviderGroq,
		Usage:    llm.Usage{InputTokens: 1, OutputTokens: 1, TotalTokens: 2},
	}, nil
}

// nextEntry picks the routed script for the calling role when one exists,
// falling back to the sequential script. Caller holds the mutex.
func (c *ScriptedLLMClient) nextEntry(messages []llm.Message) (LLMScriptEntry, error) {
	role := detectRole(messages)
	if role != "" {
		if script, ok := c.routes[role]; ok {
			i := c.routeIndex[role]
			if i >= len(script) {
				return LLMScriptEntry{}, fmt.Errorf("scripted llm: %s script exhausted after %d calls", role, i)
			}
			c.routeIndex[role] = i + 1
			return script[i], nil
		}
	}

	if c.seqIndex >= len(c.sequential) {
		return LLMScriptEntry{}, fmt.Errorf("scripted llm: sequential script exhausted after %d calls (role %q)", c.seqIndex, role)
	}
	entry := c.sequential[c.seqIndex]
	c.seqIndex++
	return entry, nil
}

func detectRole(messages []llm.Message) string {
	for _, m := range messages {
		if m.Role != llm.RoleSystem {
			continue
		}
		for _, role := range []string{"planner", "builder", "communicator", "reviewer"} {
			if strings.Contains(m.Content, "You are the "+role) {
				return role
			}
		}
	}
	return ""
}
