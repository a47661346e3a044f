package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackfleet/hackfleet/ent"
	"github.com/hackfleet/hackfleet/ent/orchestratorexecution"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/pkg/agent"
	"github.com/hackfleet/hackfleet/pkg/config"
	"github.com/hackfleet/hackfleet/pkg/models"
	"github.com/hackfleet/hackfleet/pkg/orchestrator"
	"github.com/hackfleet/hackfleet/test/util"
)

func newTestScheduler(t *testing.T) (*ent.Client, *Scheduler) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	orchCfg := &config.OrchestratorConfig{
		CycleTimeout:       10 * time.Second,
		NodeTimeout:        5 * time.Second,
		WorkCacheTTL:       0,
		FailurePause:       time.Second,
		StabilizationPause: time.Second,
		MaxPause:           30 * time.Second,
	}
	runners := agent.NewRunners(client, util.NewScriptedLLMClient(), config.DefaultLLMConfig())
	orch := orchestrator.New(client,
		orchestrator.NewDetector(client, orchCfg.WorkCacheTTL),
		orchestrator.NewExecutor(client, runners, orchCfg),
		orchCfg)

	cfg := &config.SchedulerConfig{
		TickInterval:            50 * time.Millisecond,
		StuckCycleThreshold:     60 * time.Second,
		MaxConcurrentCycles:     10,
		GracefulShutdownTimeout: 10 * time.Second,
	}
	return client, New(client, orch, cfg)
}

// seedIdleWork gives a stack state where no agent has work, so cycles pause
// without any LLM call: a project idea, a fresh planner, and a priority-0
// backlog todo.
func seedIdleWork(t *testing.T, client *ent.Client, stackID string) {
	t.Helper()
	ctx := context.Background()
	_, err := client.ProjectIdea.Create().
		SetID(uuid.NewString()).
		SetStackID(stackID).
		SetTitle("X").
		SetDescription("test").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Todo.Create().
		SetID(uuid.NewString()).
		SetStackID(stackID).
		SetContent("backlog item").
		SetPriority(0).
		Save(ctx)
	require.NoError(t, err)
	now := time.Now()
	util.UpdateAgentMemory(t, client, stackID, models.AgentPlanner, func(mem *models.AgentMemory) {
		mem.LastPlanningTime = &now
	})
}

func TestClaim_CreatesLease(t *testing.T) {
	ctx := context.Background()
	client, s := newTestScheduler(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)

	executionID, ok, err := s.claim(ctx, st.ID)
	require.NoError(t, err)
	require.True(t, ok)

	exec, err := client.OrchestratorExecution.Get(ctx, executionID)
	require.NoError(t, err)
	assert.Equal(t, orchestratorexecution.StatusRunning, exec.Status)
	assert.Equal(t, st.ID, exec.StackID)
}

func TestClaim_SingleFlight(t *testing.T) {
	ctx := context.Background()
	client, s := newTestScheduler(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)

	_, ok, err := s.claim(ctx, st.ID)
	require.NoError(t, err)
	require.True(t, ok)

	// A second claim sees the live lease and backs off.
	_, ok, err = s.claim(ctx, st.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := client.OrchestratorExecution.Query().
		Where(
			orchestratorexecution.StackIDEQ(st.ID),
			orchestratorexecution.StatusEQ(orchestratorexecution.StatusRunning),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestClaim_ReapsStuckCycle(t *testing.T) {
	ctx := context.Background()
	client, s := newTestScheduler(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)

	stuck, err := client.OrchestratorExecution.Create().
		SetID(uuid.NewString()).
		SetStackID(st.ID).
		SetStatus(orchestratorexecution.StatusRunning).
		SetStartedAt(time.Now().Add(-65 * time.Second)).
		Save(ctx)
	require.NoError(t, err)

	executionID, ok, err := s.claim(ctx, st.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEqual(t, stuck.ID, executionID)

	reaped, err := client.OrchestratorExecution.Get(ctx, stuck.ID)
	require.NoError(t, err)
	assert.Equal(t, orchestratorexecution.StatusFailed, reaped.Status)
	require.NotNil(t, reaped.ErrorMessage)
	assert.Contains(t, *reaped.ErrorMessage, "reaped after")
	assert.NotNil(t, reaped.CompletedAt)
}

func TestClaim_HonorsPauseWindow(t *testing.T) {
	ctx := context.Background()
	client, s := newTestScheduler(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)

	// Last cycle paused for a minute, just now.
	_, err := client.OrchestratorExecution.Create().
		SetID(uuid.NewString()).
		SetStackID(st.ID).
		SetStatus(orchestratorexecution.StatusPaused).
		SetCompletedAt(time.Now()).
		SetPauseDurationMs((time.Minute).Milliseconds()).
		Save(ctx)
	require.NoError(t, err)

	_, ok, err := s.claim(ctx, st.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClaim_ResumesAfterPauseElapsed(t *testing.T) {
	ctx := context.Background()
	client, s := newTestScheduler(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)

	_, err := client.OrchestratorExecution.Create().
		SetID(uuid.NewString()).
		SetStackID(st.ID).
		SetStatus(orchestratorexecution.StatusPaused).
		SetStartedAt(time.Now().Add(-10*time.Second)).
		SetCompletedAt(time.Now().Add(-5*time.Second)).
		SetPauseDurationMs(time.Second.Milliseconds()).
		Save(ctx)
	require.NoError(t, err)

	_, ok, err := s.claim(ctx, st.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestClaim_SkipsNonRunningStack(t *testing.T) {
	ctx := context.Background()
	client, s := newTestScheduler(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateIdle)

	_, ok, err := s.claim(ctx, st.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := client.OrchestratorExecution.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRecoverOrphans(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)

	orphan, err := client.OrchestratorExecution.Create().
		SetID(uuid.NewString()).
		SetStackID(st.ID).
		SetStatus(orchestratorexecution.StatusRunning).
		Save(ctx)
	require.NoError(t, err)
	finished, err := client.OrchestratorExecution.Create().
		SetID(uuid.NewString()).
		SetStackID(st.ID).
		SetStatus(orchestratorexecution.StatusCompleted).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, RecoverOrphans(ctx, client))

	reloaded, err := client.OrchestratorExecution.Get(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, orchestratorexecution.StatusFailed, reloaded.Status)
	require.NotNil(t, reloaded.ErrorMessage)
	assert.Equal(t, "orphaned at startup", *reloaded.ErrorMessage)

	untouched, err := client.OrchestratorExecution.Get(ctx, finished.ID)
	require.NoError(t, err)
	assert.Equal(t, orchestratorexecution.StatusCompleted, untouched.Status)
}

func TestTick_DispatchesEveryRunningStack(t *testing.T) {
	ctx := context.Background()
	client, s := newTestScheduler(t)

	const stacks = 10
	ids := make([]string, 0, stacks)
	for i := 0; i < stacks; i++ {
		st := util.SeedStack(t, client, "team", stack.ExecutionStateRunning)
		seedIdleWork(t, client, st.ID)
		ids = append(ids, st.ID)
	}
	// One paused stack must not be scheduled.
	bystander := util.SeedStack(t, client, "bystander", stack.ExecutionStatePaused)

	require.NoError(t, s.tick(ctx))

	// Every running stack got a cycle; no stack starves.
	require.Eventually(t, func() bool {
		for _, id := range ids {
			n, err := client.OrchestratorExecution.Query().
				Where(
					orchestratorexecution.StackIDEQ(id),
					orchestratorexecution.StatusEQ(orchestratorexecution.StatusPaused),
				).
				Count(ctx)
			if err != nil || n == 0 {
				return false
			}
		}
		return true
	}, 10*time.Second, 50*time.Millisecond)

	n, err := client.OrchestratorExecution.Query().
		Where(orchestratorexecution.StackIDEQ(bystander.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	s.Stop()
}

func TestSchedulerStartStop(t *testing.T) {
	ctx := context.Background()
	client, s := newTestScheduler(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	seedIdleWork(t, client, st.ID)

	s.Start(ctx)
	// Duplicate Start is a no-op.
	s.Start(ctx)

	require.Eventually(t, func() bool {
		n, err := client.OrchestratorExecution.Query().
			Where(orchestratorexecution.StackIDEQ(st.ID)).
			Count(ctx)
		return err == nil && n > 0
	}, 10*time.Second, 50*time.Millisecond)

	s.Stop()
	health := s.Health()
	assert.Zero(t, health.ActiveCycles)
	assert.False(t, health.LastTickAt.IsZero())
}
