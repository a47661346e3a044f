package util

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hackfleet/hackfleet/ent"
	"github.com/hackfleet/hackfleet/ent/agentstate"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/pkg/models"
)

// SeedStack creates a stack with its four agent state rows, the same shape
// StackService.CreateStack produces, in the given execution state.
func SeedStack(t *testing.T, client *ent.Client, participantName string, state stack.ExecutionState) *ent.Stack {
	t.Helper()
	ctx := context.Background()

	st, err := client.Stack.Create().
		SetID(uuid.NewString()).
		SetParticipantName(participantName).
		SetExecutionState(state).
		Save(ctx)
	require.NoError(t, err)

	for _, role := range models.AllAgents {
		_, err := client.AgentState.Create().
			SetID(uuid.NewString()).
			SetStackID(st.ID).
			SetAgentType(agentstate.AgentType(role)).
			SetMemory(models.AgentMemory{ExecutionState: models.AgentIdle}).
			Save(ctx)
		require.NoError(t, err)
	}
	return st
}

// AgentMemory loads the current memory bag for (stack, role).
func AgentMemory(t *testing.T, client *ent.Client, stackID string, role models.AgentType) models.AgentMemory {
	t.Helper()
	state, err := client.AgentState.Query().
		Where(
			agentstate.StackIDEQ(stackID),
			agentstate.AgentTypeEQ(agentstate.AgentType(role)),
		).
		Only(context.Background())
	require.NoError(t, err)
	return state.Memory
}

// UpdateAgentMemory applies a mutation to the memory bag for (stack, role).
func UpdateAgentMemory(t *testing.T, client *ent.Client, stackID string, role models.AgentType, mutate func(*models.AgentMemory)) {
	t.Helper()
	ctx := context.Background()
	state, err := client.AgentState.Query().
		Where(
			agentstate.StackIDEQ(stackID),
			agentstate.AgentTypeEQ(agentstate.AgentType(role)),
		).
		Only(ctx)
	require.NoError(t, err)

	mem := state.Memory
	mutate(&mem)
	err = client.AgentState.UpdateOneID(state.ID).SetMemory(mem).Exec(ctx)
	require.NoError(t, err)
}
