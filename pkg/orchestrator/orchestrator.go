package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hackfleet/hackfleet/ent"
	"github.com/hackfleet/hackfleet/ent/orchestratorexecution"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/pkg/config"
	"github.com/hackfleet/hackfleet/pkg/models"
)

// idlePause is the adaptive pause when no agent has meaningful priority.
const idlePause = 10 * time.Second

// Orchestrator drives one stack's control loop: detect work, build the
// graph, execute it, decide what happens next, and record the cycle.
type Orchestrator struct {
	db       *ent.Client
	detector *Detector
	executor *Executor
	cfg      *config.OrchestratorConfig
}

// New creates an orchestrator.
func New(db *ent.Client, detector *Detector, executor *Executor, cfg *config.OrchestratorConfig) *Orchestrator {
	return &Orchestrator{db: db, detector: detector, executor: executor, cfg: cfg}
}

// RunCycle executes cycles for the stack starting from the scheduler-created
// running execution row. A continue decision finalizes the current row,
// claims a fresh one, and runs again immediately; any pause or stop hands
// control back to the scheduler.
func (o *Orchestrator) RunCycle(ctx context.Context, stackID, executionID string) {
	for {
		decision := o.runOnce(ctx, stackID, executionID)
		if decision.Kind != models.DecisionContinue {
			return
		}

		nextID, ok := o.claimNextExecution(ctx, stackID)
		if !ok {
			return
		}
		executionID = nextID
	}
}

// runOnce performs a single detect-graph-execute-decide cycle and finalizes
// the execution row with the outcome.
func (o *Orchestrator) runOnce(ctx context.Context, stackID, executionID string) models.Decision {
	cctx, cancel := context.WithTimeout(ctx, o.cfg.CycleTimeout)
	defer cancel()

	start := time.Now()

	st, err := o.db.Stack.Query().Where(stack.IDEQ(stackID)).Only(cctx)
	if ent.IsNotFound(err) {
		// Stack deleted mid-flight; the cascade already removed the
		// execution row, so there is nothing to finalize.
		return models.Decision{Kind: models.DecisionStop, Reason: "stack deleted"}
	}
	if err != nil {
		return o.failCycle(ctx, stackID, executionID, fmt.Errorf("failed to load stack: %w", err))
	}
	if st.ExecutionState != stack.ExecutionStateRunning {
		decision := models.Decision{
			Kind:   models.DecisionStop,
			Reason: fmt.Sprintf("stack is %s", st.ExecutionState),
		}
		o.finalize(ctx, stackID, executionID, orchestratorexecution.StatusCompleted, decision, "", "")
		return decision
	}

	status, err := o.detector.Detect(cctx, stackID)
	if err != nil {
		return o.failCycle(ctx, stackID, executionID, fmt.Errorf("work detection failed: %w", err))
	}

	graph := BuildGraph(status)
	if graph.IsEmpty() {
		decision := models.Decision{
			Kind:          models.DecisionPause,
			PauseDuration: o.adaptivePause(status),
			Reason:        "no agent has work",
		}
		o.finalize(ctx, stackID, executionID, orchestratorexecution.StatusPaused, decision, graph.Summary(), "")
		return decision
	}

	analysis := o.executor.Execute(cctx, stackID, &graph)
	decision := o.decide(analysis)

	if o.cfg.RecordGraphs {
		o.recordGraph(ctx, stackID, executionID, graph)
	}

	finalStatus := orchestratorexecution.StatusCompleted
	errMsg := ""
	switch {
	case analysis.FailureCount > 0:
		finalStatus = orchestratorexecution.StatusFailed
		errMsg = fmt.Sprintf("%d of %d agent nodes failed", analysis.FailureCount, len(graph.Nodes))
	case decision.Kind == models.DecisionPause:
		finalStatus = orchestratorexecution.StatusPaused
	}
	o.finalize(ctx, stackID, executionID, finalStatus, decision, graph.Summary(), errMsg)

	slog.Info("Orchestration cycle finished",
		"stack_id", stackID,
		"graph", graph.Summary(),
		"success", analysis.SuccessCount,
		"failures", analysis.FailureCount,
		"decision", decision.Kind,
		"duration", time.Since(start).Round(time.Millisecond))
	return decision
}

// decide maps the execution analysis to the next action.
func (o *Orchestrator) decide(analysis models.ExecutionAnalysis) models.Decision {
	switch {
	case analysis.FailureCount > 0:
		return models.Decision{
			Kind:          models.DecisionPause,
			PauseDuration: o.cfg.FailurePause,
			Reason:        "agent failures",
		}
	case analysis.SuccessCount > 0 && analysis.Ran(models.AgentPlanner):
		// The planner likely produced new todos; run again without waiting
		// for the next scheduler tick.
		return models.Decision{Kind: models.DecisionContinue, Reason: "planner produced new work"}
	case analysis.SuccessCount > 0:
		return models.Decision{
			Kind:          models.DecisionPause,
			PauseDuration: o.cfg.StabilizationPause,
			Reason:        "brief stabilization",
		}
	default:
		return models.Decision{
			Kind:          models.DecisionPause,
			PauseDuration: o.cfg.FailurePause,
			Reason:        "no effective work",
		}
	}
}

// adaptivePause scales the idle pause to the highest detected priority:
// near-eligible work gets a short pause, a fully idle stack backs off.
func (o *Orchestrator) adaptivePause(status models.WorkStatus) time.Duration {
	maxPriority := status.MaxPriority()
	var pause time.Duration
	switch {
	case maxPriority >= 5:
		pause = o.cfg.StabilizationPause
	case maxPriority >= 3:
		pause = o.cfg.FailurePause
	default:
		pause = idlePause
	}
	if pause > o.cfg.MaxPause {
		pause = o.cfg.MaxPause
	}
	return pause
}

// claimNextExecution creates the fresh running row for an immediate
// follow-up cycle. The partial unique index on (stack_id) WHERE
// status='running' makes this a conditional insert: losing the race to a
// scheduler tick just means the tick owns the next cycle.
func (o *Orchestrator) claimNextExecution(ctx context.Context, stackID string) (string, bool) {
	id := uuid.NewString()
	_, err := o.db.OrchestratorExecution.Create().
		SetID(id).
		SetStackID(stackID).
		SetStatus(orchestratorexecution.StatusRunning).
		Save(ctx)
	if err != nil {
		if !ent.IsConstraintError(err) {
			slog.Error("Failed to claim follow-up execution",
				"stack_id", stackID, "error", err)
		}
		return "", false
	}
	return id, true
}

// failCycle finalizes the execution row as failed with the given error.
func (o *Orchestrator) failCycle(ctx context.Context, stackID, executionID string, err error) models.Decision {
	decision := models.Decision{
		Kind:          models.DecisionPause,
		PauseDuration: o.cfg.FailurePause,
		Reason:        "cycle error",
	}
	o.finalize(ctx, stackID, executionID, orchestratorexecution.StatusFailed, decision, "", err.Error())
	slog.Error("Orchestration cycle failed", "stack_id", stackID, "error", err)
	return decision
}

// finalize closes the execution row and counts the cycle on the stack.
// Finalization runs on the parent context so a timed-out cycle still gets
// recorded.
func (o *Orchestrator) finalize(ctx context.Context, stackID, executionID string, status orchestratorexecution.Status, decision models.Decision, graphSummary, errMsg string) {
	update := o.db.OrchestratorExecution.UpdateOneID(executionID).
		// Only finalize a row still in running state; a stale reaped cycle
		// must not overwrite the outcome of its replacement.
		Where(orchestratorexecution.StatusEQ(orchestratorexecution.StatusRunning)).
		SetStatus(status).
		SetCompletedAt(time.Now()).
		SetDecision(string(decision.Kind)).
		SetGraphSummary(graphSummary)
	if decision.Kind == models.DecisionPause {
		update.SetPauseDurationMs(decision.PauseDuration.Milliseconds())
	}
	if errMsg != "" {
		update.SetErrorMessage(errMsg)
	}
	switch err := update.Exec(ctx); {
	case ent.IsNotFound(err):
		// The row was reaped while this cycle ran; its replacement owns the
		// stack's cycle counter.
		return
	case err != nil:
		slog.Error("Failed to finalize execution",
			"stack_id", stackID, "execution_id", executionID, "error", err)
		return
	}

	if err := o.db.Stack.UpdateOneID(stackID).
		AddTotalCycles(1).
		Exec(ctx); err != nil && !ent.IsNotFound(err) {
		slog.Error("Failed to count cycle", "stack_id", stackID, "error", err)
	}
}

// recordGraph snapshots the executed graph for observability.
func (o *Orchestrator) recordGraph(ctx context.Context, stackID, executionID string, graph models.GraphSnapshot) {
	_, err := o.db.ExecutionGraph.Create().
		SetID(uuid.NewString()).
		SetStackID(stackID).
		SetOrchestratorExecutionID(executionID).
		SetGraph(graph).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		slog.Error("Failed to record execution graph",
			"stack_id", stackID, "execution_id", executionID, "error", err)
	}
}
