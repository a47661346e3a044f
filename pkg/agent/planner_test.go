package agent

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackfleet/hackfleet/ent"
	"github.com/hackfleet/hackfleet/ent/agenttrace"
	"github.com/hackfleet/hackfleet/ent/projectidea"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/ent/todo"
	"github.com/hackfleet/hackfleet/pkg/config"
	"github.com/hackfleet/hackfleet/pkg/models"
	"github.com/hackfleet/hackfleet/test/util"
)

// newTestRig wires a per-test database and a scripted LLM into the shared
// runner dependencies.
func newTestRig(t *testing.T) (*ent.Client, *util.ScriptedLLMClient, deps) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	mock := util.NewScriptedLLMClient()
	return client, mock, deps{db: client, llm: mock, cfg: config.DefaultLLMConfig()}
}

func seedTodo(t *testing.T, client *ent.Client, stackID, content string, priority int, status todo.Status) *ent.Todo {
	t.Helper()
	create := client.Todo.Create().
		SetID(uuid.NewString()).
		SetStackID(stackID).
		SetContent(content).
		SetPriority(priority).
		SetStatus(status)
	td, err := create.Save(context.Background())
	require.NoError(t, err)
	return td
}

func TestPlannerRun_ColdStart(t *testing.T) {
	ctx := context.Background()
	client, mock, d := newTestRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)

	mock.AddSequential(util.LLMScriptEntry{Content: `{
		"thinking": "no project yet, picking one",
		"actions": [
			{"type": "update_project", "title": "Recipe Finder", "description": "Search recipes by ingredients"},
			{"type": "update_phase", "phase": "building"},
			{"type": "create_todo", "content": "build landing page", "priority": 8},
			{"type": "create_todo", "content": "add search form", "priority": 5}
		]
	}`})

	planner := &Planner{deps: d}
	require.NoError(t, planner.Run(ctx, st.ID))

	idea, err := client.ProjectIdea.Query().
		Where(projectidea.StackIDEQ(st.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Recipe Finder", idea.Title)

	reloaded, err := client.Stack.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, stack.PhaseBuilding, reloaded.Phase)

	todos, err := client.Todo.Query().
		Where(todo.StackIDEQ(st.ID)).
		Order(ent.Desc(todo.FieldPriority)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "build landing page", todos[0].Content)
	assert.Equal(t, 8, todos[0].Priority)

	mem := util.AgentMemory(t, client, st.ID, models.AgentPlanner)
	assert.NotNil(t, mem.LastPlanningTime)

	traces, err := client.AgentTrace.Query().
		Where(agenttrace.StackIDEQ(st.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, traces, 1)
	assert.Equal(t, "plan", traces[0].Action)
}

func TestPlannerRun_ClearThenCreate(t *testing.T) {
	ctx := context.Background()
	client, mock, d := newTestRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	seedTodo(t, client, st.ID, "old task one", 5, todo.StatusPending)
	seedTodo(t, client, st.ID, "old task two", 3, todo.StatusInProgress)

	// clear_all_todos applies before create_todo regardless of order in the
	// action list.
	mock.AddSequential(util.LLMScriptEntry{Content: `{
		"thinking": "resetting the plan",
		"actions": [
			{"type": "create_todo", "content": "fresh start", "priority": 7},
			{"type": "clear_all_todos"}
		]
	}`})

	planner := &Planner{deps: d}
	require.NoError(t, planner.Run(ctx, st.ID))

	todos, err := client.Todo.Query().Where(todo.StackIDEQ(st.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "fresh start", todos[0].Content)
}

func TestPlannerRun_UpdateAndDeleteByContent(t *testing.T) {
	ctx := context.Background()
	client, mock, d := newTestRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	seedTodo(t, client, st.ID, "polish header", 4, todo.StatusPending)
	seedTodo(t, client, st.ID, "remove me", 2, todo.StatusPending)

	mock.AddSequential(util.LLMScriptEntry{Content: `{
		"thinking": "adjusting",
		"actions": [
			{"type": "update_todo", "content": "polish header", "new_content": "polish header and footer", "priority": 9},
			{"type": "delete_todo", "content": "remove me"},
			{"type": "update_todo", "content": "no such todo", "priority": 1}
		]
	}`})

	planner := &Planner{deps: d}
	require.NoError(t, planner.Run(ctx, st.ID))

	todos, err := client.Todo.Query().Where(todo.StackIDEQ(st.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "polish header and footer", todos[0].Content)
	assert.Equal(t, 9, todos[0].Priority)
}

func TestPlannerRun_ConsumesReviewerRecommendations(t *testing.T) {
	ctx := context.Background()
	client, mock, d := newTestRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	util.UpdateAgentMemory(t, client, st.ID, models.AgentPlanner, func(mem *models.AgentMemory) {
		mem.ReviewerRecommendations = []string{"add alt text to images"}
		mem.RecommendationsType = "hackathon_audit"
	})

	mock.AddSequential(util.LLMScriptEntry{Content: `{
		"thinking": "addressing review feedback",
		"actions": [
			{"type": "update_project", "title": "Recipe Finder", "description": "v2"},
			{"type": "create_todo", "content": "add alt text to images", "priority": 6}
		]
	}`})

	planner := &Planner{deps: d}
	require.NoError(t, planner.Run(ctx, st.ID))

	// Recommendations are consumed even if the model ignored them.
	mem := util.AgentMemory(t, client, st.ID, models.AgentPlanner)
	assert.Empty(t, mem.ReviewerRecommendations)
	assert.Nil(t, mem.RecommendationsTimestamp)
	assert.Empty(t, mem.RecommendationsType)

	// The prompt carried the recommendation text to the model.
	calls := mock.Captured()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Messages[1].Content, "add alt text to images")
}

func TestPlannerRun_UnknownPhaseIgnored(t *testing.T) {
	ctx := context.Background()
	client, mock, d := newTestRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)

	mock.AddSequential(util.LLMScriptEntry{Content: `{
		"thinking": "t",
		"actions": [
			{"type": "update_project", "title": "X", "description": "Y"},
			{"type": "update_phase", "phase": "hyperspace"}
		]
	}`})

	planner := &Planner{deps: d}
	require.NoError(t, planner.Run(ctx, st.ID))

	reloaded, err := client.Stack.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, stack.PhaseIdeation, reloaded.Phase)
}

func TestPlannerRun_InvalidReplyFails(t *testing.T) {
	ctx := context.Background()
	client, mock, d := newTestRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)

	mock.AddSequential(util.LLMScriptEntry{Content: `{"thinking": "missing actions"}`})

	planner := &Planner{deps: d}
	err := planner.Run(ctx, st.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOutput)

	// Nothing was applied.
	n, err := client.Todo.Query().Where(todo.StackIDEQ(st.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
