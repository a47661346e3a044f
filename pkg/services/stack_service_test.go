package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackfleet/hackfleet/ent/agentstate"
	"github.com/hackfleet/hackfleet/ent/orchestratorexecution"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/ent/todo"
	"github.com/hackfleet/hackfleet/pkg/models"
	"github.com/hackfleet/hackfleet/test/util"
)

func TestStackService_CreateStack(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)
	svc := NewStackService(client)

	st, err := svc.CreateStack(ctx, "team rocket")
	require.NoError(t, err)
	assert.Equal(t, "team rocket", st.ParticipantName)
	assert.Equal(t, stack.ExecutionStateIdle, st.ExecutionState)
	assert.Equal(t, stack.PhaseIdeation, st.Phase)

	// All four agent states exist and start idle.
	states, err := client.AgentState.Query().
		Where(agentstate.StackIDEQ(st.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, states, len(models.AllAgents))
	for _, s := range states {
		assert.Equal(t, models.AgentIdle, s.Memory.ExecutionState)
	}
}

func TestStackService_CreateStack_EmptyName(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewStackService(client)

	_, err := svc.CreateStack(context.Background(), "")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestStackService_GetStack_NotFound(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewStackService(client)

	_, err := svc.GetStack(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStackService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)
	svc := NewStackService(client)

	st, err := svc.CreateStack(ctx, "alpha")
	require.NoError(t, err)

	// idle → running → paused → running → stopped
	require.NoError(t, svc.StartExecution(ctx, st.ID))
	require.NoError(t, svc.PauseExecution(ctx, st.ID))
	require.NoError(t, svc.ResumeExecution(ctx, st.ID))
	require.NoError(t, svc.StopExecution(ctx, st.ID))

	reloaded, err := svc.GetStack(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, stack.ExecutionStateStopped, reloaded.ExecutionState)

	// Stop is idempotent.
	require.NoError(t, svc.StopExecution(ctx, st.ID))
}

func TestStackService_InvalidTransitions(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)
	svc := NewStackService(client)

	st, err := svc.CreateStack(ctx, "alpha")
	require.NoError(t, err)

	// Pause and resume require the matching source state.
	err = svc.PauseExecution(ctx, st.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	err = svc.ResumeExecution(ctx, st.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, svc.StartExecution(ctx, st.ID))
	err = svc.StartExecution(ctx, st.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Unknown stack maps to not found, not an invalid transition.
	err = svc.StartExecution(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStackService_DeleteStack_Cascades(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)
	svc := NewStackService(client)

	st, err := svc.CreateStack(ctx, "alpha")
	require.NoError(t, err)

	_, err = client.Todo.Create().
		SetID(uuid.NewString()).
		SetStackID(st.ID).
		SetContent("orphan-to-be").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteStack(ctx, st.ID))

	n, err := client.AgentState.Query().Where(agentstate.StackIDEQ(st.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = client.Todo.Query().Where(todo.StackIDEQ(st.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.ErrorIs(t, svc.DeleteStack(ctx, st.ID), ErrNotFound)
}

func TestStackService_GetExecutionStatus(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)
	svc := NewStackService(client)

	st, err := svc.CreateStack(ctx, "alpha")
	require.NoError(t, err)

	status, err := svc.GetExecutionStatus(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, stack.ExecutionStateIdle, status.ExecutionState)
	assert.Nil(t, status.LatestExecution)
	assert.Zero(t, status.TotalCycles)

	exec, err := client.OrchestratorExecution.Create().
		SetID(uuid.NewString()).
		SetStackID(st.ID).
		SetStatus(orchestratorexecution.StatusCompleted).
		Save(ctx)
	require.NoError(t, err)

	status, err = svc.GetExecutionStatus(ctx, st.ID)
	require.NoError(t, err)
	require.NotNil(t, status.LatestExecution)
	assert.Equal(t, exec.ID, status.LatestExecution.ID)
}
