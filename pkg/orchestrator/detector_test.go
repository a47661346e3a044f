package orchestrator

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackfleet/hackfleet/ent"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/ent/todo"
	"github.com/hackfleet/hackfleet/ent/workdetectioncache"
	"github.com/hackfleet/hackfleet/pkg/models"
	"github.com/hackfleet/hackfleet/test/util"
)

func emptyContext() *WorkContext {
	return &WorkContext{
		Stack:         &ent.Stack{ID: "stack-1"},
		AgentMemories: map[models.AgentType]models.AgentMemory{},
	}
}

func pendingTodo(content string, priority int) *ent.Todo {
	return &ent.Todo{Content: content, Status: todo.StatusPending, Priority: priority}
}

func TestDetectPlannerWork(t *testing.T) {
	now := time.Now()
	recent := now.Add(-1 * time.Minute)
	stale := now.Add(-10 * time.Minute)

	t.Run("no project idea is critical", func(t *testing.T) {
		wc := emptyContext()
		assert.Equal(t, 10, detectPlannerWork(now, wc).Priority)
	})

	t.Run("no pending todos", func(t *testing.T) {
		wc := emptyContext()
		wc.ProjectIdea = &ent.ProjectIdea{Title: "X"}
		wc.AgentMemories[models.AgentPlanner] = models.AgentMemory{LastPlanningTime: &recent}
		assert.Equal(t, 9, detectPlannerWork(now, wc).Priority)
	})

	t.Run("reviewer recommendations pending", func(t *testing.T) {
		wc := emptyContext()
		wc.ProjectIdea = &ent.ProjectIdea{Title: "X"}
		wc.Todos = []*ent.Todo{pendingTodo("task", 5)}
		wc.AgentMemories[models.AgentPlanner] = models.AgentMemory{
			LastPlanningTime:        &recent,
			ReviewerRecommendations: []string{"add a favicon"},
		}
		assert.Equal(t, 8, detectPlannerWork(now, wc).Priority)
	})

	t.Run("strategic visitor request", func(t *testing.T) {
		wc := emptyContext()
		wc.ProjectIdea = &ent.ProjectIdea{Title: "X"}
		wc.Todos = []*ent.Todo{pendingTodo("task", 5)}
		wc.AgentMemories[models.AgentPlanner] = models.AgentMemory{LastPlanningTime: &recent}
		wc.UnprocessedUser = []*ent.UserMessage{{Content: "can you add dark mode?"}}
		assert.Equal(t, 7, detectPlannerWork(now, wc).Priority)
	})

	t.Run("periodic replan when stale", func(t *testing.T) {
		wc := emptyContext()
		wc.ProjectIdea = &ent.ProjectIdea{Title: "X"}
		wc.Todos = []*ent.Todo{pendingTodo("task", 5)}
		wc.AgentMemories[models.AgentPlanner] = models.AgentMemory{LastPlanningTime: &stale}
		assert.Equal(t, 4, detectPlannerWork(now, wc).Priority)
	})

	t.Run("idle when everything is fresh", func(t *testing.T) {
		wc := emptyContext()
		wc.ProjectIdea = &ent.ProjectIdea{Title: "X"}
		wc.Todos = []*ent.Todo{pendingTodo("task", 5)}
		wc.AgentMemories[models.AgentPlanner] = models.AgentMemory{LastPlanningTime: &recent}
		wc.UnprocessedUser = []*ent.UserMessage{{Content: "looks great!"}}
		assert.Equal(t, 0, detectPlannerWork(now, wc).Priority)
	})
}

func TestDetectBuilderWork(t *testing.T) {
	t.Run("no pending todos", func(t *testing.T) {
		wc := emptyContext()
		wc.Todos = []*ent.Todo{{Content: "done", Status: todo.StatusCompleted, Priority: 5}}
		aw := detectBuilderWork(wc)
		assert.False(t, aw.HasWork)
	})

	t.Run("high priority todo", func(t *testing.T) {
		wc := emptyContext()
		wc.Todos = []*ent.Todo{pendingTodo("build landing page", 5)}
		assert.Equal(t, 8, detectBuilderWork(wc).Priority)
	})

	t.Run("low priority todo", func(t *testing.T) {
		wc := emptyContext()
		wc.Todos = []*ent.Todo{pendingTodo("tweak colors", 2)}
		assert.Equal(t, 6, detectBuilderWork(wc).Priority)
	})

	t.Run("zero priority todos do not count", func(t *testing.T) {
		wc := emptyContext()
		wc.Todos = []*ent.Todo{pendingTodo("someday", 0)}
		assert.False(t, detectBuilderWork(wc).HasWork)
	})
}

func TestDetectCommunicatorWork(t *testing.T) {
	t.Run("visitor message is critical", func(t *testing.T) {
		wc := emptyContext()
		wc.UnprocessedUser = []*ent.UserMessage{{Content: "hello?"}}
		wc.UnreadMessages = []*ent.Message{{Content: "hi from stack-2"}}
		assert.Equal(t, 10, detectCommunicatorWork(wc).Priority)
	})

	t.Run("unread peer messages", func(t *testing.T) {
		wc := emptyContext()
		wc.UnreadMessages = []*ent.Message{{Content: "hi from stack-2"}}
		assert.Equal(t, 7, detectCommunicatorWork(wc).Priority)
	})

	t.Run("nothing to answer", func(t *testing.T) {
		assert.False(t, detectCommunicatorWork(emptyContext()).HasWork)
	})
}

func TestDetectReviewerWork(t *testing.T) {
	now := time.Now()
	lastReview := now.Add(-1 * time.Minute)
	before := now.Add(-2 * time.Minute)
	after := now.Add(-30 * time.Second)

	t.Run("two todos completed since last review", func(t *testing.T) {
		wc := emptyContext()
		wc.AgentMemories[models.AgentReviewer] = models.AgentMemory{LastReviewTime: &lastReview}
		wc.Todos = []*ent.Todo{
			{Status: todo.StatusCompleted, CompletedAt: &after},
			{Status: todo.StatusCompleted, CompletedAt: &after},
		}
		assert.Equal(t, 6, detectReviewerWork(now, wc).Priority)
	})

	t.Run("one completed todo is not enough", func(t *testing.T) {
		wc := emptyContext()
		wc.AgentMemories[models.AgentReviewer] = models.AgentMemory{LastReviewTime: &lastReview}
		wc.Todos = []*ent.Todo{
			{Status: todo.StatusCompleted, CompletedAt: &after},
			{Status: todo.StatusCompleted, CompletedAt: &before},
		}
		assert.False(t, detectReviewerWork(now, wc).HasWork)
	})

	t.Run("unreviewed artifact", func(t *testing.T) {
		wc := emptyContext()
		wc.AgentMemories[models.AgentReviewer] = models.AgentMemory{LastReviewTime: &lastReview}
		wc.LatestArtifact = &ent.Artifact{Version: 3, CreatedAt: after}
		assert.Equal(t, 6, detectReviewerWork(now, wc).Priority)
	})

	t.Run("artifact never reviewed", func(t *testing.T) {
		wc := emptyContext()
		wc.LatestArtifact = &ent.Artifact{Version: 1, CreatedAt: before}
		assert.Equal(t, 6, detectReviewerWork(now, wc).Priority)
	})

	t.Run("periodic review only after a first review", func(t *testing.T) {
		wc := emptyContext()
		stale := now.Add(-5 * time.Minute)
		wc.AgentMemories[models.AgentReviewer] = models.AgentMemory{LastReviewTime: &stale}
		assert.Equal(t, 4, detectReviewerWork(now, wc).Priority)

		assert.False(t, detectReviewerWork(now, emptyContext()).HasWork,
			"no review timer before anything was ever reviewed")
	})
}

func TestDetectWork_Deterministic(t *testing.T) {
	now := time.Now()
	wc := emptyContext()
	wc.Todos = []*ent.Todo{pendingTodo("task", 5)}
	wc.UnprocessedUser = []*ent.UserMessage{{Content: "please add a feature"}}

	first := DetectWork(now, wc)
	second := DetectWork(now, wc)
	assert.Equal(t, first, second, "detection over the same snapshot must be stable")
}

func TestDetector_CacheReusedWithinTTL(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	d := NewDetector(client, 5*time.Second)

	status, err := d.Detect(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, status.Get(models.AgentPlanner).Priority)

	row, err := client.WorkDetectionCache.Query().
		Where(workdetectioncache.StackIDEQ(st.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, row.ValidUntil.Sub(row.ComputedAt))

	// State changes underneath, but the live cache row still answers.
	_, err = client.ProjectIdea.Create().
		SetID(uuid.NewString()).
		SetStackID(st.ID).
		SetTitle("X").
		SetDescription("test").
		Save(ctx)
	require.NoError(t, err)

	again, err := d.Detect(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, again.Get(models.AgentPlanner).Priority)
}

func TestDetector_StaleRowRecomputedInPlace(t *testing.T) {
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	d := NewDetector(client, 5*time.Second)

	now := time.Now()
	staleRow, err := client.WorkDetectionCache.Create().
		SetID(uuid.NewString()).
		SetStackID(st.ID).
		SetStatuses(models.WorkStatus{Agents: map[models.AgentType]models.AgentWork{
			models.AgentBuilder: {HasWork: true, Priority: 9},
		}}).
		SetComputedAt(now.Add(-time.Minute)).
		SetValidUntil(now.Add(-55 * time.Second)).
		Save(ctx)
	require.NoError(t, err)

	status, err := d.Detect(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, status.Get(models.AgentPlanner).Priority)
	assert.False(t, status.Get(models.AgentBuilder).HasWork, "expired statuses must not be reused")

	rows, err := client.WorkDetectionCache.Query().
		Where(workdetectioncache.StackIDEQ(st.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	// The upsert replaces the expired row rather than stacking a second one.
	assert.Equal(t, staleRow.ID, rows[0].ID)
	assert.Equal(t, 5*time.Second, rows[0].ValidUntil.Sub(rows[0].ComputedAt))
	assert.True(t, rows[0].ValidUntil.After(now))
	assert.Equal(t, 10, rows[0].Statuses.Get(models.AgentPlanner).Priority)
}

func TestIsStrategic(t *testing.T) {
	assert.True(t, isStrategic("can you add dark mode?"))
	assert.True(t, isStrategic("do something DIFFERENT"))
	assert.True(t, isStrategic("please change project to a game"))
	assert.True(t, isStrategic(string(make([]byte, 101))), "long messages are strategic")
	assert.False(t, isStrategic("looks great!"))
}
