package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hackfleet/hackfleet/ent"
	"github.com/hackfleet/hackfleet/ent/agentstate"
	"github.com/hackfleet/hackfleet/pkg/agent"
	"github.com/hackfleet/hackfleet/pkg/config"
	"github.com/hackfleet/hackfleet/pkg/models"
)

// Executor runs an execution graph wave by wave. Nodes within a wave run
// concurrently; a node failure neither cancels its siblings nor aborts later
// waves, which simply run against whatever state resulted.
type Executor struct {
	db      *ent.Client
	runners map[models.AgentType]agent.Runner
	cfg     *config.OrchestratorConfig
}

// NewExecutor creates an executor over the given runner set.
func NewExecutor(db *ent.Client, runners map[models.AgentType]agent.Runner, cfg *config.OrchestratorConfig) *Executor {
	return &Executor{db: db, runners: runners, cfg: cfg}
}

// Execute runs the graph in place, settling every node to success, failure,
// or skipped, and returns the analysis the decision step consumes.
func (e *Executor) Execute(ctx context.Context, stackID string, graph *models.GraphSnapshot) models.ExecutionAnalysis {
	analysis := models.ExecutionAnalysis{Waves: len(graph.Waves)}

	for _, wave := range graph.Waves {
		if len(wave) > analysis.ParallelExecutions {
			analysis.ParallelExecutions = len(wave)
		}

		var wg sync.WaitGroup
		for _, agentType := range wave {
			node := graph.Node(agentType)
			if node == nil {
				continue
			}
			wg.Add(1)
			go func(node *models.GraphNode) {
				defer wg.Done()
				e.runNode(ctx, stackID, node)
			}(node)
		}
		wg.Wait()
	}

	for i := range graph.Nodes {
		switch graph.Nodes[i].Result {
		case models.NodeSuccess:
			analysis.SuccessCount++
			analysis.AgentsRun = append(analysis.AgentsRun, graph.Nodes[i].Agent)
		case models.NodeFailure:
			analysis.FailureCount++
		}
	}
	return analysis
}

// runNode executes one agent under the node timeout, bracketed by the
// execution-state guards on the agent's memory.
func (e *Executor) runNode(ctx context.Context, stackID string, node *models.GraphNode) {
	runner, ok := e.runners[node.Agent]
	if !ok {
		node.Result = models.NodeSkipped
		node.Error = fmt.Sprintf("no runner registered for %s", node.Agent)
		return
	}

	if err := e.markExecuting(ctx, stackID, node.Agent, node.Reason); err != nil {
		slog.Error("Failed to mark agent executing",
			"stack_id", stackID, "agent", node.Agent, "error", err)
	}

	nodeCtx, cancel := context.WithTimeout(ctx, e.cfg.NodeTimeout)
	start := time.Now()
	err := runner.Run(nodeCtx, stackID)
	cancel()
	node.DurationMs = time.Since(start).Milliseconds()

	if err != nil {
		// Deadline errors can come back wrapped in provider failures, so the
		// node context is the authority on whether this was a timeout.
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(nodeCtx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("timed out after %s: %w", e.cfg.NodeTimeout, err)
		}
		node.Result = models.NodeFailure
		node.Error = err.Error()
		slog.Warn("Agent node failed",
			"stack_id", stackID, "agent", node.Agent, "error", err)
	} else {
		node.Result = models.NodeSuccess
	}

	if err := e.markSettled(ctx, stackID, node.Agent, node.Result); err != nil {
		slog.Error("Failed to mark agent settled",
			"stack_id", stackID, "agent", node.Agent, "error", err)
	}
}

func (e *Executor) markExecuting(ctx context.Context, stackID string, role models.AgentType, reason string) error {
	state, err := e.loadState(ctx, stackID, role)
	if err != nil {
		return err
	}
	mem := state.Memory
	mem.ExecutionState = models.AgentExecuting
	mem.CurrentWork = reason
	return e.db.AgentState.UpdateOneID(state.ID).SetMemory(mem).Exec(ctx)
}

// markSettled clears the execution guard and bumps the stack's activity
// timestamp. It runs on the parent context so a timed-out node still gets
// its bookkeeping.
func (e *Executor) markSettled(ctx context.Context, stackID string, role models.AgentType, result models.NodeResult) error {
	state, err := e.loadState(ctx, stackID, role)
	if err != nil {
		return err
	}
	mem := state.Memory
	mem.CurrentWork = ""
	if result == models.NodeFailure {
		mem.ExecutionState = models.AgentError
	} else {
		mem.ExecutionState = models.AgentIdle
	}
	if err := e.db.AgentState.UpdateOneID(state.ID).SetMemory(mem).Exec(ctx); err != nil {
		return err
	}
	return e.db.Stack.UpdateOneID(stackID).SetLastActivityAt(time.Now()).Exec(ctx)
}

func (e *Executor) loadState(ctx context.Context, stackID string, role models.AgentType) (*ent.AgentState, error) {
	return e.db.AgentState.Query().
		Where(
			agentstate.StackIDEQ(stackID),
			agentstate.AgentTypeEQ(agentstate.AgentType(role)),
		).
		Only(ctx)
}
