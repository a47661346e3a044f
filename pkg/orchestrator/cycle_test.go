package orchestrator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackfleet/hackfleet/ent"
	"github.com/hackfleet/hackfleet/ent/agenttrace"
	"github.com/hackfleet/hackfleet/ent/artifact"
	"github.com/hackfleet/hackfleet/ent/orchestratorexecution"
	"github.com/hackfleet/hackfleet/ent/projectidea"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/ent/todo"
	"github.com/hackfleet/hackfleet/ent/usermessage"
	"github.com/hackfleet/hackfleet/pkg/agent"
	"github.com/hackfleet/hackfleet/pkg/config"
	"github.com/hackfleet/hackfleet/pkg/llm"
	"github.com/hackfleet/hackfleet/pkg/models"
	"github.com/hackfleet/hackfleet/test/util"
)

// newCycleRig wires a per-test database, scripted LLM, real runners, and an
// orchestrator with a zero-TTL work cache so every cycle detects fresh.
func newCycleRig(t *testing.T) (*ent.Client, *util.ScriptedLLMClient, *Orchestrator) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	mock := util.NewScriptedLLMClient()

	cfg := &config.OrchestratorConfig{
		CycleTimeout:       30 * time.Second,
		NodeTimeout:        10 * time.Second,
		WorkCacheTTL:       0,
		FailurePause:       5 * time.Second,
		StabilizationPause: 1 * time.Second,
		MaxPause:           30 * time.Second,
		RecordGraphs:       true,
	}
	runners := agent.NewRunners(client, mock, config.DefaultLLMConfig())
	orch := New(client, NewDetector(client, cfg.WorkCacheTTL), NewExecutor(client, runners, cfg), cfg)
	return client, mock, orch
}

// claimExecution simulates the scheduler creating the running lease row.
func claimExecution(t *testing.T, client *ent.Client, stackID string) string {
	t.Helper()
	id := uuid.NewString()
	_, err := client.OrchestratorExecution.Create().
		SetID(id).
		SetStackID(stackID).
		SetStatus(orchestratorexecution.StatusRunning).
		Save(context.Background())
	require.NoError(t, err)
	return id
}

func seedIdea(t *testing.T, client *ent.Client, stackID, title string) {
	t.Helper()
	_, err := client.ProjectIdea.Create().
		SetID(uuid.NewString()).
		SetStackID(stackID).
		SetTitle(title).
		SetDescription("test project").
		Save(context.Background())
	require.NoError(t, err)
}

func markPlannerFresh(t *testing.T, client *ent.Client, stackID string) {
	t.Helper()
	now := time.Now()
	util.UpdateAgentMemory(t, client, stackID, models.AgentPlanner, func(mem *models.AgentMemory) {
		mem.LastPlanningTime = &now
	})
}

func TestRunOnce_SingleTodoBuild(t *testing.T) {
	ctx := context.Background()
	client, mock, orch := newCycleRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	seedIdea(t, client, st.ID, "X")
	markPlannerFresh(t, client, st.ID)

	task, err := client.Todo.Create().
		SetID(uuid.NewString()).
		SetStackID(st.ID).
		SetContent("build landing page").
		SetPriority(5).
		Save(ctx)
	require.NoError(t, err)

	mock.AddRouted("builder", util.LLMScriptEntry{Content: `{
		"thinking": "building the page",
		"results": {"artifact": "<html><body>landing</body></html>"}
	}`})

	execID := claimExecution(t, client, st.ID)
	decision := orch.runOnce(ctx, st.ID, execID)

	assert.Equal(t, models.DecisionPause, decision.Kind)
	assert.Equal(t, time.Second, decision.PauseDuration)

	art, err := client.Artifact.Query().Where(artifact.StackIDEQ(st.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, art.Version)

	done, err := client.Todo.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, todo.StatusCompleted, done.Status)
	assert.NotNil(t, done.CompletedAt)

	exec, err := client.OrchestratorExecution.Get(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, orchestratorexecution.StatusPaused, exec.Status)
	assert.Equal(t, "pause", exec.Decision)
	assert.NotNil(t, exec.CompletedAt)
	require.NotNil(t, exec.PauseDurationMs)
	assert.Equal(t, time.Second.Milliseconds(), *exec.PauseDurationMs)
	assert.Equal(t, "builder", exec.GraphSummary)

	reloaded, err := client.Stack.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.TotalCycles)
}

func TestRunOnce_ReviewerFeedbackLoop(t *testing.T) {
	ctx := context.Background()
	client, mock, orch := newCycleRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	seedIdea(t, client, st.ID, "X")
	markPlannerFresh(t, client, st.ID)

	// Planner needs a pending todo so "no pending todos" does not outrank the
	// recommendation rule; priority 0 keeps the builder out of the graph.
	_, err := client.Todo.Create().
		SetID(uuid.NewString()).
		SetStackID(st.ID).
		SetContent("backlog item").
		SetPriority(0).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Artifact.Create().
		SetID(uuid.NewString()).
		SetStackID(st.ID).
		SetVersion(3).
		SetContent("<html>v3</html>").
		Save(ctx)
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	util.UpdateAgentMemory(t, client, st.ID, models.AgentReviewer, func(mem *models.AgentMemory) {
		mem.LastReviewTime = &past
		mem.LastReviewedVersion = 2
	})

	mock.AddRouted("reviewer", util.LLMScriptEntry{Content: `{
		"thinking": "auditing v3",
		"results": {"recommendations": ["tighten the headline"], "issues": []}
	}`})

	// Cycle 1: reviewer runs and hands off to the planner.
	decision := orch.runOnce(ctx, st.ID, claimExecution(t, client, st.ID))
	assert.Equal(t, models.DecisionPause, decision.Kind)

	plannerMem := util.AgentMemory(t, client, st.ID, models.AgentPlanner)
	assert.Equal(t, []string{"tighten the headline"}, plannerMem.ReviewerRecommendations)
	assert.NotNil(t, plannerMem.RecommendationsTimestamp)

	reviewerMem := util.AgentMemory(t, client, st.ID, models.AgentReviewer)
	assert.Equal(t, 3, reviewerMem.LastReviewedVersion)

	// Cycle 2: the planner consumes the recommendations.
	mock.AddRouted("planner", util.LLMScriptEntry{Content: `{
		"thinking": "turning review feedback into work",
		"actions": [{"type": "create_todo", "content": "tighten the headline", "priority": 6}]
	}`})

	decision = orch.runOnce(ctx, st.ID, claimExecution(t, client, st.ID))
	assert.Equal(t, models.DecisionContinue, decision.Kind)

	plannerMem = util.AgentMemory(t, client, st.ID, models.AgentPlanner)
	assert.Empty(t, plannerMem.ReviewerRecommendations)
	assert.Nil(t, plannerMem.RecommendationsTimestamp)

	n, err := client.Todo.Query().
		Where(todo.StackIDEQ(st.ID), todo.ContentEQ("tighten the headline")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRunOnce_VisitorChatRunsCommunicatorAndPlanner(t *testing.T) {
	ctx := context.Background()
	client, mock, orch := newCycleRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	seedIdea(t, client, st.ID, "X")
	markPlannerFresh(t, client, st.ID)

	// Backlog keeps the planner's todo check satisfied so the strategic
	// visitor rule is what pulls it into the wave.
	_, err := client.Todo.Create().
		SetID(uuid.NewString()).
		SetStackID(st.ID).
		SetContent("backlog item").
		SetPriority(0).
		Save(ctx)
	require.NoError(t, err)

	now := time.Now()
	alice, err := client.UserMessage.Create().
		SetID(uuid.NewString()).
		SetTeamID(st.ID).
		SetSenderName("Alice").
		SetContent("can you add dark mode?").
		SetCreatedAt(now.Add(-2 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)
	bob, err := client.UserMessage.Create().
		SetID(uuid.NewString()).
		SetTeamID(st.ID).
		SetSenderName("Bob").
		SetContent("what stack is this?").
		SetCreatedAt(now.Add(-1 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	// "add" marks Alice's request as strategic, so the planner joins the wave.
	mock.AddRouted("communicator", util.LLMScriptEntry{Content: `{
		"thinking": "answering Alice",
		"results": {"message": "Dark mode is coming!", "recipient": "", "type": "direct"}
	}`})
	mock.AddRouted("planner", util.LLMScriptEntry{Content: `{
		"thinking": "dark mode is a feature request",
		"actions": [{"type": "create_todo", "content": "add dark mode toggle", "priority": 6}]
	}`})

	decision := orch.runOnce(ctx, st.ID, claimExecution(t, client, st.ID))
	assert.Equal(t, models.DecisionContinue, decision.Kind)

	processed, err := client.UserMessage.Get(ctx, alice.ID)
	require.NoError(t, err)
	assert.True(t, processed.Processed)
	require.NotNil(t, processed.ResponseID)

	reply, err := client.Message.Get(ctx, *processed.ResponseID)
	require.NoError(t, err)
	assert.Equal(t, "Dark mode is coming!", reply.Content)

	untouched, err := client.UserMessage.Get(ctx, bob.ID)
	require.NoError(t, err)
	assert.False(t, untouched.Processed)

	n, err := client.UserMessage.Query().
		Where(usermessage.TeamIDEQ(st.ID), usermessage.ProcessedEQ(true)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRunOnce_EmptyGraphPausesWithoutTraces(t *testing.T) {
	ctx := context.Background()
	client, _, orch := newCycleRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	seedIdea(t, client, st.ID, "X")
	markPlannerFresh(t, client, st.ID)

	// A priority-0 pending todo satisfies the planner's backlog check but is
	// not buildable, so no agent has work.
	_, err := client.Todo.Create().
		SetID(uuid.NewString()).
		SetStackID(st.ID).
		SetContent("someday maybe").
		SetPriority(0).
		Save(ctx)
	require.NoError(t, err)

	execID := claimExecution(t, client, st.ID)
	decision := orch.runOnce(ctx, st.ID, execID)

	assert.Equal(t, models.DecisionPause, decision.Kind)
	assert.GreaterOrEqual(t, decision.PauseDuration, time.Second)
	assert.LessOrEqual(t, decision.PauseDuration, 30*time.Second)

	exec, err := client.OrchestratorExecution.Get(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, orchestratorexecution.StatusPaused, exec.Status)
	assert.Equal(t, "empty", exec.GraphSummary)

	n, err := client.AgentTrace.Query().Where(agenttrace.StackIDEQ(st.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRunOnce_StackNotRunningStops(t *testing.T) {
	ctx := context.Background()
	client, _, orch := newCycleRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStatePaused)

	execID := claimExecution(t, client, st.ID)
	decision := orch.runOnce(ctx, st.ID, execID)

	assert.Equal(t, models.DecisionStop, decision.Kind)

	exec, err := client.OrchestratorExecution.Get(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, orchestratorexecution.StatusCompleted, exec.Status)
	assert.Equal(t, "stop", exec.Decision)
}

func TestRunOnce_AgentFailureFailsCycle(t *testing.T) {
	ctx := context.Background()
	client, mock, orch := newCycleRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	seedIdea(t, client, st.ID, "X")
	markPlannerFresh(t, client, st.ID)

	_, err := client.Todo.Create().
		SetID(uuid.NewString()).
		SetStackID(st.ID).
		SetContent("build landing page").
		SetPriority(5).
		Save(ctx)
	require.NoError(t, err)

	mock.AddRouted("builder", util.LLMScriptEntry{
		Error: errors.New("provider down"),
	})

	execID := claimExecution(t, client, st.ID)
	decision := orch.runOnce(ctx, st.ID, execID)

	assert.Equal(t, models.DecisionPause, decision.Kind)
	assert.Equal(t, 5*time.Second, decision.PauseDuration)

	exec, err := client.OrchestratorExecution.Get(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, orchestratorexecution.StatusFailed, exec.Status)
	require.NotNil(t, exec.ErrorMessage)
	assert.Contains(t, *exec.ErrorMessage, "1 of 1 agent nodes failed")

	// The failed agent's memory is flagged, not stuck in executing.
	mem := util.AgentMemory(t, client, st.ID, models.AgentBuilder)
	assert.Equal(t, models.AgentError, mem.ExecutionState)
	assert.Empty(t, mem.CurrentWork)
}

func TestRunCycle_ColdStartChainsPlannerThenBuilder(t *testing.T) {
	ctx := context.Background()
	client, mock, orch := newCycleRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)

	// Cycle 1: no project idea, so only the planner runs (priority 10). Its
	// success chains straight into cycle 2 where the builder picks up the
	// fresh todo.
	mock.AddRouted("planner", util.LLMScriptEntry{Content: `{
		"thinking": "cold start",
		"actions": [
			{"type": "update_project", "title": "Recipe Finder", "description": "search by ingredients"},
			{"type": "create_todo", "content": "build landing page", "priority": 8}
		]
	}`})
	mock.AddRouted("builder", util.LLMScriptEntry{Content: `{
		"thinking": "first version",
		"results": {"artifact": "<html>v1</html>"}
	}`})

	orch.RunCycle(ctx, st.ID, claimExecution(t, client, st.ID))

	idea, err := client.ProjectIdea.Query().Where(projectidea.StackIDEQ(st.ID)).Only(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, idea.Title)

	art, err := client.Artifact.Query().Where(artifact.StackIDEQ(st.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, art.Version)

	reloaded, err := client.Stack.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.TotalCycles)

	// Two execution rows: the continue cycle and the final paused one. None
	// left running.
	execs, err := client.OrchestratorExecution.Query().
		Where(orchestratorexecution.StackIDEQ(st.ID)).
		Order(ent.Asc(orchestratorexecution.FieldStartedAt)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, execs, 2)
	assert.Equal(t, "continue", execs[0].Decision)
	assert.Equal(t, orchestratorexecution.StatusCompleted, execs[0].Status)
	assert.Equal(t, orchestratorexecution.StatusPaused, execs[1].Status)
}

func TestRunOnce_StaleFinalizeCannotOverwriteReapedCycle(t *testing.T) {
	ctx := context.Background()
	client, _, orch := newCycleRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStatePaused)

	execID := claimExecution(t, client, st.ID)

	// The scheduler reaped this cycle while it was still in flight.
	require.NoError(t, client.OrchestratorExecution.UpdateOneID(execID).
		SetStatus(orchestratorexecution.StatusFailed).
		SetErrorMessage("reaped after 1m0s without completing").
		Exec(ctx))

	// The stale cycle finally finishes; its finalize must be a no-op.
	_ = orch.runOnce(ctx, st.ID, execID)

	exec, err := client.OrchestratorExecution.Get(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, orchestratorexecution.StatusFailed, exec.Status)
	require.NotNil(t, exec.ErrorMessage)
	assert.Contains(t, *exec.ErrorMessage, "reaped")

	// A no-op finalize must not count a cycle on the stack either.
	reloaded, err := client.Stack.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Zero(t, reloaded.TotalCycles)
}

func TestExecutor_LabelsWrappedLLMTimeout(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)

	_, err := client.Todo.Create().
		SetID(uuid.NewString()).
		SetStackID(st.ID).
		SetContent("build landing page").
		SetPriority(5).
		Save(ctx)
	require.NoError(t, err)

	// The gateway reports exhaustion, not the deadline that caused it.
	mock := util.NewScriptedLLMClient()
	mock.AddSequential(util.LLMScriptEntry{
		BlockUntilCancelled: true,
		Error: &llm.UnavailableError{
			Tried: []config.LLMProvider{config.ProviderGroq},
			Last:  errors.New("request aborted"),
		},
	})

	cfg := &config.OrchestratorConfig{
		CycleTimeout: 30 * time.Second,
		NodeTimeout:  100 * time.Millisecond,
	}
	ex := NewExecutor(client, agent.NewRunners(client, mock, config.DefaultLLMConfig()), cfg)

	graph := BuildGraph(models.WorkStatus{Agents: map[models.AgentType]models.AgentWork{
		models.AgentBuilder: {HasWork: true, Priority: 8, Reason: "pending todos"},
	}})
	analysis := ex.Execute(ctx, st.ID, &graph)

	assert.Equal(t, 1, analysis.FailureCount)
	node := graph.Node(models.AgentBuilder)
	require.NotNil(t, node)
	assert.Contains(t, node.Error, "timed out after")
}
