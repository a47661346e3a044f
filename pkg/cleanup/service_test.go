package cleanup

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
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/pkg/config"
	"github.com/hackfleet/hackfleet/pkg/models"
	"github.com/hackfleet/hackfleet/test/util"
)

func newTestService(t *testing.T) (*ent.Client, *Service, *ent.Stack) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	cfg := &config.RetentionConfig{
		Interval:           time.Hour,
		TraceRetention:     24 * time.Hour,
		ExecutionRetention: 24 * time.Hour,
	}
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	return client, NewService(cfg, client), st
}

func seedTrace(t *testing.T, client *ent.Client, stackID string, createdAt time.Time) *ent.AgentTrace {
	t.Helper()
	tr, err := client.AgentTrace.Create().
		SetID(uuid.NewString()).
		SetStackID(stackID).
		SetAgentType(agenttrace.AgentTypePlanner).
		SetThought("t").
		SetAction("plan").
		SetResult("r").
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return tr
}

func TestCleanupTraces(t *testing.T) {
	ctx := context.Background()
	client, svc, st := newTestService(t)

	old := seedTrace(t, client, st.ID, time.Now().Add(-48*time.Hour))
	fresh := seedTrace(t, client, st.ID, time.Now())

	require.NoError(t, svc.CleanupTraces(ctx))

	_, err := client.AgentTrace.Get(ctx, old.ID)
	assert.True(t, ent.IsNotFound(err))
	_, err = client.AgentTrace.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}

func TestCleanupExecutions_KeepsRunningLease(t *testing.T) {
	ctx := context.Background()
	client, svc, st := newTestService(t)

	oldStart := time.Now().Add(-48 * time.Hour)

	oldDone, err := client.OrchestratorExecution.Create().
		SetID(uuid.NewString()).
		SetStackID(st.ID).
		SetStatus(orchestratorexecution.StatusCompleted).
		SetStartedAt(oldStart).
		Save(ctx)
	require.NoError(t, err)

	// An ancient running row is still the single-flight lease; retention
	// must not delete it.
	lease, err := client.OrchestratorExecution.Create().
		SetID(uuid.NewString()).
		SetStackID(st.ID).
		SetStatus(orchestratorexecution.StatusRunning).
		SetStartedAt(oldStart).
		Save(ctx)
	require.NoError(t, err)

	oldGraph, err := client.ExecutionGraph.Create().
		SetID(uuid.NewString()).
		SetStackID(st.ID).
		SetOrchestratorExecutionID(oldDone.ID).
		SetGraph(models.GraphSnapshot{}).
		SetCreatedAt(oldStart).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.CleanupExecutions(ctx))

	_, err = client.OrchestratorExecution.Get(ctx, oldDone.ID)
	assert.True(t, ent.IsNotFound(err))
	_, err = client.ExecutionGraph.Get(ctx, oldGraph.ID)
	assert.True(t, ent.IsNotFound(err))
	_, err = client.OrchestratorExecution.Get(ctx, lease.ID)
	assert.NoError(t, err)
}

func TestCleanupWorkCache(t *testing.T) {
	ctx := context.Background()
	client, svc, st := newTestService(t)

	now := time.Now()
	expired, err := client.WorkDetectionCache.Create().
		SetID(uuid.NewString()).
		SetStackID(st.ID).
		SetStatuses(models.WorkStatus{}).
		SetComputedAt(now.Add(-3 * time.Hour)).
		SetValidUntil(now.Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	// Stale but recent: the detector overwrites these in place, so cleanup
	// leaves them alone.
	stale := util.SeedStack(t, client, "beta", stack.ExecutionStateRunning)
	recent, err := client.WorkDetectionCache.Create().
		SetID(uuid.NewString()).
		SetStackID(stale.ID).
		SetStatuses(models.WorkStatus{}).
		SetComputedAt(now.Add(-time.Minute)).
		SetValidUntil(now.Add(-55 * time.Second)).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.CleanupWorkCache(ctx))

	_, err = client.WorkDetectionCache.Get(ctx, expired.ID)
	assert.True(t, ent.IsNotFound(err))
	_, err = client.WorkDetectionCache.Get(ctx, recent.ID)
	assert.NoError(t, err)
}

func TestServiceStartStop(t *testing.T) {
	_, svc, _ := newTestService(t)

	svc.Start(context.Background())
	svc.Stop()
	// Stop on a stopped service is safe.
	svc.Stop()
}
