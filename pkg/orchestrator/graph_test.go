package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackfleet/hackfleet/pkg/models"
)

func statusFor(work map[models.AgentType]int) models.WorkStatus {
	agents := make(map[models.AgentType]models.AgentWork)
	for agent, priority := range work {
		agents[agent] = models.AgentWork{HasWork: priority > 0, Priority: priority}
	}
	return models.WorkStatus{Agents: agents}
}

func TestBuildGraph_Empty(t *testing.T) {
	graph := BuildGraph(statusFor(nil))
	assert.True(t, graph.IsEmpty())
	assert.Equal(t, "empty", graph.Summary())

	graph = BuildGraph(statusFor(map[models.AgentType]int{models.AgentBuilder: 0}))
	assert.True(t, graph.IsEmpty(), "zero priority means no node")
}

func TestBuildGraph_SingleWave(t *testing.T) {
	graph := BuildGraph(statusFor(map[models.AgentType]int{
		models.AgentPlanner:      9,
		models.AgentCommunicator: 7,
	}))

	require.Len(t, graph.Nodes, 2)
	assert.Empty(t, graph.Edges)
	require.Len(t, graph.Waves, 1)
	assert.Len(t, graph.Waves[0], 2)
	assert.Equal(t, "communicator,planner", graph.Summary())
}

func TestBuildGraph_BuilderBeforeReviewer(t *testing.T) {
	graph := BuildGraph(statusFor(map[models.AgentType]int{
		models.AgentPlanner:  4,
		models.AgentBuilder:  8,
		models.AgentReviewer: 6,
	}))

	require.Len(t, graph.Edges, 1)
	assert.Equal(t, models.AgentBuilder, graph.Edges[0].From)
	assert.Equal(t, models.AgentReviewer, graph.Edges[0].To)

	require.Len(t, graph.Waves, 2)
	assert.ElementsMatch(t, []models.AgentType{models.AgentPlanner, models.AgentBuilder}, graph.Waves[0])
	assert.Equal(t, []models.AgentType{models.AgentReviewer}, graph.Waves[1])

	assert.Equal(t, 0, graph.Node(models.AgentBuilder).Wave)
	assert.Equal(t, 1, graph.Node(models.AgentReviewer).Wave)
	assert.Equal(t, "builder,planner|reviewer", graph.Summary())
}

func TestBuildGraph_ReviewerAloneHasNoDependency(t *testing.T) {
	graph := BuildGraph(statusFor(map[models.AgentType]int{
		models.AgentReviewer: 6,
	}))

	assert.Empty(t, graph.Edges, "edge exists only when the builder also has work")
	require.Len(t, graph.Waves, 1)
	assert.Equal(t, []models.AgentType{models.AgentReviewer}, graph.Waves[0])
}

func TestBuildGraph_NodesCarryWorkMetadata(t *testing.T) {
	status := models.WorkStatus{Agents: map[models.AgentType]models.AgentWork{
		models.AgentBuilder: {HasWork: true, Priority: 8, Reason: "2 pending todos"},
	}}
	graph := BuildGraph(status)

	require.Len(t, graph.Nodes, 1)
	node := graph.Nodes[0]
	assert.Equal(t, 8, node.Priority)
	assert.Equal(t, "2 pending todos", node.Reason)
	assert.Equal(t, models.NodePending, node.Result)
}
