// Package agent implements the four role runners (planner, builder,
// communicator, reviewer). Each runner loads its slice of stack state,
// calls the LLM gateway with a role-specific JSON schema, applies a bounded
// set of mutations, updates its own memory, and appends a trace.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hackfleet/hackfleet/ent"
	"github.com/hackfleet/hackfleet/ent/agentstate"
	"github.com/hackfleet/hackfleet/ent/agenttrace"
	"github.com/hackfleet/hackfleet/pkg/config"
	"github.com/hackfleet/hackfleet/pkg/llm"
	"github.com/hackfleet/hackfleet/pkg/models"
)

// MaxThinkingChars bounds the model thinking stored on a trace.
const MaxThinkingChars = 1000

// ErrInvalidOutput is the sentinel for LLM replies that fail role-schema
// validation. The executor turns it into a node failure.
var ErrInvalidOutput = errors.New("invalid structured output")

// Runner executes one agent role for one stack.
type Runner interface {
	Type() models.AgentType
	Run(ctx context.Context, stackID string) error
}

// deps is the shared collaborator set behind every runner.
type deps struct {
	db  *ent.Client
	llm llm.Client
	cfg *config.LLMConfig
}

// NewRunners builds the full role set over a shared client and gateway.
func NewRunners(db *ent.Client, gateway llm.Client, cfg *config.LLMConfig) map[models.AgentType]Runner {
	d := deps{db: db, llm: gateway, cfg: cfg}
	return map[models.AgentType]Runner{
		models.AgentPlanner:      &Planner{deps: d},
		models.AgentBuilder:      &Builder{deps: d},
		models.AgentCommunicator: &Communicator{deps: d},
		models.AgentReviewer:     &Reviewer{deps: d},
	}
}

// loadAgentState fetches the durable state row for (stack, role).
func (d deps) loadAgentState(ctx context.Context, stackID string, role models.AgentType) (*ent.AgentState, error) {
	state, err := d.db.AgentState.Query().
		Where(
			agentstate.StackIDEQ(stackID),
			agentstate.AgentTypeEQ(agentstate.AgentType(role)),
		).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s state for stack %s: %w", role, stackID, err)
	}
	return state, nil
}

// saveMemory persists an updated memory bag and appends a thought to the
// short-term context ring.
func (d deps) saveMemory(ctx context.Context, state *ent.AgentState, mem models.AgentMemory, thought string) error {
	update := d.db.AgentState.UpdateOneID(state.ID).SetMemory(mem)
	if thought != "" {
		ring := models.AppendThought(state.Context, models.Thought{
			Content: truncate(thought, MaxThinkingChars),
			At:      time.Now(),
		})
		update.SetContext(ring)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to save %s memory: %w", state.AgentType, err)
	}
	return nil
}

// trace appends an observability record for one agent invocation.
// Trace failures are logged, never propagated; losing a trace must not fail
// the node.
func (d deps) trace(ctx context.Context, stackID string, role models.AgentType, thinking, action, result string) {
	_, err := d.db.AgentTrace.Create().
		SetID(uuid.NewString()).
		SetStackID(stackID).
		SetAgentType(agenttrace.AgentType(role)).
		SetThought(truncate(thinking, MaxThinkingChars)).
		SetAction(action).
		SetResult(result).
		Save(ctx)
	if err != nil {
		slog.Error("Failed to write agent trace",
			"stack_id", stackID, "agent", role, "error", err)
	}
}

// chatStructured calls the gateway in structured mode and validates the
// reply against the role schema before returning the raw JSON text.
func (d deps) chatStructured(ctx context.Context, rs *roleSchema, system, user string, opts llm.Options) (string, error) {
	opts.Structured = true
	opts.Schema = rs.contract

	result, err := d.llm.Chat(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user},
	}, opts)
	if err != nil {
		return "", err
	}

	if err := rs.validate(result.Content); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return result.Content, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
