package orchestrator

import (
	"github.com/hackfleet/hackfleet/pkg/models"
)

// BuildGraph turns a work status into an execution graph. Nodes exist for
// agents with work; the only dependency is builder before reviewer, and only
// when both are selected, so the reviewer sees the artifact the builder is
// about to produce. Everything else runs in wave 0.
func BuildGraph(status models.WorkStatus) models.GraphSnapshot {
	var graph models.GraphSnapshot

	selected := make(map[models.AgentType]bool)
	for _, agent := range models.AllAgents {
		aw := status.Get(agent)
		if !aw.HasWork {
			continue
		}
		selected[agent] = true
		graph.Nodes = append(graph.Nodes, models.GraphNode{
			Agent:    agent,
			Priority: aw.Priority,
			Reason:   aw.Reason,
			Result:   models.NodePending,
		})
	}
	if len(graph.Nodes) == 0 {
		return graph
	}

	if selected[models.AgentBuilder] && selected[models.AgentReviewer] {
		graph.Edges = append(graph.Edges, models.GraphEdge{
			From: models.AgentBuilder,
			To:   models.AgentReviewer,
		})
	}

	graph.Waves = layerWaves(&graph)
	return graph
}

// layerWaves assigns each node the topological layer implied by its
// in-edges: wave 0 holds nodes with no dependencies among the selected
// nodes, wave n+1 holds nodes whose dependencies all sit at wave <= n.
func layerWaves(graph *models.GraphSnapshot) [][]models.AgentType {
	depsOf := make(map[models.AgentType][]models.AgentType)
	for _, e := range graph.Edges {
		depsOf[e.To] = append(depsOf[e.To], e.From)
	}

	waveOf := make(map[models.AgentType]int, len(graph.Nodes))
	// The dependency chains here are tiny; a fixed-point pass is plenty.
	for changed := true; changed; {
		changed = false
		for i := range graph.Nodes {
			agent := graph.Nodes[i].Agent
			wave := 0
			for _, dep := range depsOf[agent] {
				if depWave, ok := waveOf[dep]; ok && depWave+1 > wave {
					wave = depWave + 1
				}
			}
			if current, ok := waveOf[agent]; !ok || current != wave {
				waveOf[agent] = wave
				changed = true
			}
		}
	}

	maxWave := 0
	for i := range graph.Nodes {
		w := waveOf[graph.Nodes[i].Agent]
		graph.Nodes[i].Wave = w
		if w > maxWave {
			maxWave = w
		}
	}

	waves := make([][]models.AgentType, maxWave+1)
	for i := range graph.Nodes {
		n := &graph.Nodes[i]
		waves[n.Wave] = append(waves[n.Wave], n.Agent)
	}
	return waves
}
