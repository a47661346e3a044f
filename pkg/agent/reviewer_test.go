package agent

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackfleet/hackfleet/ent"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/pkg/models"
	"github.com/hackfleet/hackfleet/test/util"
)

func seedArtifact(t *testing.T, client *ent.Client, stackID string, version int, content string) *ent.Artifact {
	t.Helper()
	art, err := client.Artifact.Create().
		SetID(uuid.NewString()).
		SetStackID(stackID).
		SetVersion(version).
		SetContent(content).
		Save(context.Background())
	require.NoError(t, err)
	return art
}

func TestReviewerRun_ReviewsLatestArtifact(t *testing.T) {
	ctx := context.Background()
	client, mock, d := newTestRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	seedArtifact(t, client, st.ID, 1, "<html>v1</html>")

	mock.AddSequential(util.LLMScriptEntry{Content: `{
		"thinking": "auditing v1",
		"results": {
			"recommendations": ["add alt text", "fix contrast"],
			"issues": [{"severity": "minor", "description": "low contrast footer"}]
		}
	}`})

	reviewer := &Reviewer{deps: d}
	require.NoError(t, reviewer.Run(ctx, st.ID))

	mem := util.AgentMemory(t, client, st.ID, models.AgentReviewer)
	require.NotNil(t, mem.LastReviewTime)
	assert.Equal(t, 1, mem.LastReviewedVersion)
	assert.Equal(t, 1, mem.LastReviewIssuesCount)
	assert.Equal(t, []string{"add alt text", "fix contrast"}, mem.Recommendations)

	// Recommendations were handed off to the planner.
	plannerMem := util.AgentMemory(t, client, st.ID, models.AgentPlanner)
	assert.Equal(t, []string{"add alt text", "fix contrast"}, plannerMem.ReviewerRecommendations)
	require.NotNil(t, plannerMem.RecommendationsTimestamp)
	assert.Equal(t, "hackathon_audit", plannerMem.RecommendationsType)
}

func TestReviewerRun_SkipsAlreadyReviewedVersion(t *testing.T) {
	ctx := context.Background()
	client, mock, d := newTestRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	seedArtifact(t, client, st.ID, 3, "<html>v3</html>")

	later := time.Now().Add(time.Minute)
	util.UpdateAgentMemory(t, client, st.ID, models.AgentReviewer, func(mem *models.AgentMemory) {
		mem.LastReviewTime = &later
		mem.LastReviewedVersion = 3
	})

	reviewer := &Reviewer{deps: d}
	require.NoError(t, reviewer.Run(ctx, st.ID))
	assert.Zero(t, mock.CallCount())
}

func TestReviewerRun_ReviewsNewerVersion(t *testing.T) {
	ctx := context.Background()
	client, mock, d := newTestRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	seedArtifact(t, client, st.ID, 2, "<html>v2</html>")
	seedArtifact(t, client, st.ID, 3, "<html>v3</html>")

	past := time.Now().Add(-time.Hour)
	util.UpdateAgentMemory(t, client, st.ID, models.AgentReviewer, func(mem *models.AgentMemory) {
		mem.LastReviewTime = &past
		mem.LastReviewedVersion = 2
	})

	mock.AddSequential(util.LLMScriptEntry{Content: `{
		"thinking": "v3 looks better",
		"results": {"recommendations": [], "issues": []}
	}`})

	reviewer := &Reviewer{deps: d}
	require.NoError(t, reviewer.Run(ctx, st.ID))

	mem := util.AgentMemory(t, client, st.ID, models.AgentReviewer)
	assert.Equal(t, 3, mem.LastReviewedVersion)
	assert.Zero(t, mem.LastReviewIssuesCount)

	// Empty recommendations do not disturb planner memory.
	plannerMem := util.AgentMemory(t, client, st.ID, models.AgentPlanner)
	assert.Empty(t, plannerMem.ReviewerRecommendations)
	assert.Nil(t, plannerMem.RecommendationsTimestamp)
}

func TestReviewerRun_NoArtifactIsNoOp(t *testing.T) {
	ctx := context.Background()
	client, mock, d := newTestRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)

	reviewer := &Reviewer{deps: d}
	require.NoError(t, reviewer.Run(ctx, st.ID))
	assert.Zero(t, mock.CallCount())
}

func TestReviewerRun_CapsStoredRecommendations(t *testing.T) {
	ctx := context.Background()
	client, mock, d := newTestRig(t)
	st := util.SeedStack(t, client, "alpha", stack.ExecutionStateRunning)
	seedArtifact(t, client, st.ID, 1, "<html>v1</html>")

	mock.AddSequential(util.LLMScriptEntry{Content: `{
		"thinking": "many findings",
		"results": {
			"recommendations": ["r1","r2","r3","r4","r5","r6","r7","r8","r9","r10","r11","r12"],
			"issues": []
		}
	}`})

	reviewer := &Reviewer{deps: d}
	require.NoError(t, reviewer.Run(ctx, st.ID))

	mem := util.AgentMemory(t, client, st.ID, models.AgentReviewer)
	assert.Len(t, mem.Recommendations, maxStoredRecommendations)

	// The planner hand-off carries the full list.
	plannerMem := util.AgentMemory(t, client, st.ID, models.AgentPlanner)
	assert.Len(t, plannerMem.ReviewerRecommendations, 12)
}
