package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackfleet/hackfleet/ent"
	"github.com/hackfleet/hackfleet/ent/artifact"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/ent/todo"
	"github.com/hackfleet/hackfleet/test/util"
)

func TestBuilderRun_FirstArtifact(t *testing.T) {
	ctx := context.Background()
	client, mock, d := newTestRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	task := seedTodo(t, client, st.ID, "build landing page", 5, todo.StatusPending)

	mock.AddSequential(util.LLMScriptEntry{Content: `{
		"thinking": "starting from scratch",
		"results": {"artifact": "<html><body>landing</body></html>"}
	}`})

	builder := &Builder{deps: d}
	require.NoError(t, builder.Run(ctx, st.ID))

	art, err := client.Artifact.Query().
		Where(artifact.StackIDEQ(st.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, art.Version)
	assert.Equal(t, "<html><body>landing</body></html>", art.Content)
	assert.Equal(t, "builder", art.CreatedBy)

	done, err := client.Todo.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, todo.StatusCompleted, done.Status)
	require.NotNil(t, done.CompletedAt)

	// Builder token budget is the enlarged one.
	calls := mock.Captured()
	require.Len(t, calls, 1)
	assert.Equal(t, builderMaxTokens, calls[0].Options.MaxTokens)
}

func TestBuilderRun_VersionChain(t *testing.T) {
	ctx := context.Background()
	client, mock, d := newTestRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	builder := &Builder{deps: d}

	for i, content := range []string{"first task", "second task", "third task"} {
		seedTodo(t, client, st.ID, content, 5, todo.StatusPending)
		mock.AddSequential(util.LLMScriptEntry{Content: `{
			"thinking": "iterating",
			"results": {"artifact": "<html>v` + string(rune('1'+i)) + `</html>"}
		}`})
		require.NoError(t, builder.Run(ctx, st.ID))
	}

	versions, err := client.Artifact.Query().
		Where(artifact.StackIDEQ(st.ID)).
		Order(ent.Asc(artifact.FieldVersion)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, versions, 3)
	for i, art := range versions {
		assert.Equal(t, i+1, art.Version)
	}
}

func TestBuilderRun_PicksHighestPriorityTodo(t *testing.T) {
	ctx := context.Background()
	client, mock, d := newTestRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	seedTodo(t, client, st.ID, "low priority chore", 2, todo.StatusPending)
	urgent := seedTodo(t, client, st.ID, "fix the demo", 9, todo.StatusPending)

	mock.AddSequential(util.LLMScriptEntry{Content: `{
		"thinking": "urgent first",
		"results": {"artifact": "<html>fixed</html>"}
	}`})

	builder := &Builder{deps: d}
	require.NoError(t, builder.Run(ctx, st.ID))

	done, err := client.Todo.Get(ctx, urgent.ID)
	require.NoError(t, err)
	assert.Equal(t, todo.StatusCompleted, done.Status)

	calls := mock.Captured()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Messages[1].Content, "fix the demo")
}

func TestBuilderRun_EmptyArtifactKeepsTodoInProgress(t *testing.T) {
	ctx := context.Background()
	client, mock, d := newTestRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	task := seedTodo(t, client, st.ID, "impossible task", 5, todo.StatusPending)

	mock.AddSequential(util.LLMScriptEntry{Content: `{
		"thinking": "cannot do this",
		"results": {"artifact": ""}
	}`})

	builder := &Builder{deps: d}
	require.NoError(t, builder.Run(ctx, st.ID))

	n, err := client.Artifact.Query().Where(artifact.StackIDEQ(st.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	stuck, err := client.Todo.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, todo.StatusInProgress, stuck.Status)
	assert.Nil(t, stuck.CompletedAt)
}

func TestBuilderRun_NoPendingTodosIsNoOp(t *testing.T) {
	ctx := context.Background()
	client, mock, d := newTestRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	seedTodo(t, client, st.ID, "already done", 5, todo.StatusCompleted)

	builder := &Builder{deps: d}
	require.NoError(t, builder.Run(ctx, st.ID))
	assert.Zero(t, mock.CallCount())
}
