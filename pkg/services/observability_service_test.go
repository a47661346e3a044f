package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackfleet/hackfleet/ent"
	"github.com/hackfleet/hackfleet/ent/agenttrace"
	"github.com/hackfleet/hackfleet/ent/orchestratorexecution"
	"github.com/hackfleet/hackfleet/pkg/models"
	"github.com/hackfleet/hackfleet/test/util"
)

func seedExecution(t *testing.T, client *ent.Client, stackID string, status orchestratorexecution.Status, decision string, startedAt time.Time, duration time.Duration) *ent.OrchestratorExecution {
	t.Helper()
	create := client.OrchestratorExecution.Create().
		SetID(uuid.NewString()).
		SetStackID(stackID).
		SetStatus(status).
		SetStartedAt(startedAt)
	if decision != "" {
		create.SetDecision(decision)
	}
	if status != orchestratorexecution.StatusRunning {
		create.SetCompletedAt(startedAt.Add(duration))
	}
	exec, err := create.Save(context.Background())
	require.NoError(t, err)
	return exec
}

func TestObservability_GetRecentTraces(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)
	stacks := NewStackService(client)
	obs := NewObservabilityService(client)

	st, err := stacks.CreateStack(ctx, "alpha")
	require.NoError(t, err)

	now := time.Now()
	for i := 0; i < 3; i++ {
		_, err := client.AgentTrace.Create().
			SetID(uuid.NewString()).
			SetStackID(st.ID).
			SetAgentType(agenttrace.AgentTypeBuilder).
			SetThought("t").
			SetAction("build").
			SetResult("r").
			SetCreatedAt(now.Add(time.Duration(i) * time.Second)).
			Save(ctx)
		require.NoError(t, err)
	}

	traces, err := obs.GetRecentTraces(ctx, st.ID, 2)
	require.NoError(t, err)
	require.Len(t, traces, 2)
	// Newest first.
	assert.True(t, traces[0].CreatedAt.After(traces[1].CreatedAt))
}

func TestObservability_GetWorkDetectionStatus(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)
	stacks := NewStackService(client)
	obs := NewObservabilityService(client)

	st, err := stacks.CreateStack(ctx, "alpha")
	require.NoError(t, err)

	_, err = obs.GetWorkDetectionStatus(ctx, st.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	now := time.Now()
	_, err = client.WorkDetectionCache.Create().
		SetID(uuid.NewString()).
		SetStackID(st.ID).
		SetStatuses(models.WorkStatus{Agents: map[models.AgentType]models.AgentWork{
			models.AgentBuilder: {HasWork: true, Priority: 8},
		}}).
		SetComputedAt(now.Add(-time.Minute)).
		SetValidUntil(now.Add(-55 * time.Second)).
		Save(ctx)
	require.NoError(t, err)

	status, err := obs.GetWorkDetectionStatus(ctx, st.ID)
	require.NoError(t, err)
	assert.True(t, status.Stale)
	assert.Equal(t, 8, status.Status.Get(models.AgentBuilder).Priority)
}

func TestObservability_GetOrchestrationStats(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)
	stacks := NewStackService(client)
	obs := NewObservabilityService(client)

	st, err := stacks.CreateStack(ctx, "alpha")
	require.NoError(t, err)

	now := time.Now()
	seedExecution(t, client, st.ID, orchestratorexecution.StatusCompleted, "continue", now.Add(-10*time.Minute), 2*time.Second)
	seedExecution(t, client, st.ID, orchestratorexecution.StatusPaused, "pause", now.Add(-8*time.Minute), 4*time.Second)
	seedExecution(t, client, st.ID, orchestratorexecution.StatusFailed, "pause", now.Add(-6*time.Minute), 1*time.Second)
	// Outside the window; must not count.
	seedExecution(t, client, st.ID, orchestratorexecution.StatusCompleted, "continue", now.Add(-3*time.Hour), time.Second)

	graph := models.GraphSnapshot{
		Waves: [][]models.AgentType{
			{models.AgentPlanner, models.AgentCommunicator},
			{models.AgentReviewer},
		},
	}
	_, err = client.ExecutionGraph.Create().
		SetID(uuid.NewString()).
		SetStackID(st.ID).
		SetOrchestratorExecutionID(uuid.NewString()).
		SetGraph(graph).
		Save(ctx)
	require.NoError(t, err)

	stats, err := obs.GetOrchestrationStats(ctx, st.ID, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalCycles)
	assert.Equal(t, 2, stats.CompletedCycles)
	assert.Equal(t, 1, stats.FailedCycles)
	assert.Equal(t, 1, stats.ContinueDecisions)
	assert.Equal(t, 2, stats.PauseDecisions)
	// (2s + 4s + 1s) / 3 finished cycles.
	assert.InDelta(t, 2333.3, stats.AvgCycleDurationMs, 1.0)
	// One graph whose widest wave has two agents.
	assert.InDelta(t, 2.0, stats.AvgParallelExecutions, 0.001)
}
