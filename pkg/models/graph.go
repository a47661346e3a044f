package models

import (
	"sort"
	"strings"
	"time"
)

// NodeResult is the terminal state of one executed graph node.
type NodeResult string

// Node result constants. Every node settles to exactly one of
// success/failure/skipped; pending only appears in pre-execution snapshots.
const (
	NodePending NodeResult = "pending"
	NodeSuccess NodeResult = "success"
	NodeFailure NodeResult = "failure"
	NodeSkipped NodeResult = "skipped"
)

// GraphNode is one agent node in a cycle's execution graph.
type GraphNode struct {
	Agent      AgentType  `json:"agent"`
	Priority   int        `json:"priority"`
	Reason     string     `json:"reason,omitempty"`
	Wave       int        `json:"wave"`
	Result     NodeResult `json:"result"`
	Error      string     `json:"error,omitempty"`
	DurationMs int64      `json:"duration_ms,omitempty"`
}

// GraphEdge is a dependency edge: To runs in a later wave than From.
type GraphEdge struct {
	From AgentType `json:"from"`
	To   AgentType `json:"to"`
}

// GraphSnapshot is the serializable form of a cycle's execution graph.
type GraphSnapshot struct {
	Nodes []GraphNode   `json:"nodes"`
	Edges []GraphEdge   `json:"edges"`
	Waves [][]AgentType `json:"waves"`
}

// IsEmpty reports whether the graph has no runnable nodes.
func (g GraphSnapshot) IsEmpty() bool {
	return len(g.Nodes) == 0
}

// Node returns a pointer to the node for the given agent, or nil.
func (g *GraphSnapshot) Node(agent AgentType) *GraphNode {
	for i := range g.Nodes {
		if g.Nodes[i].Agent == agent {
			return &g.Nodes[i]
		}
	}
	return nil
}

// Summary renders the wave structure as a compact string, e.g.
// "communicator,planner|reviewer". Waves are separated by '|', agents within
// a wave sorted alphabetically.
func (g GraphSnapshot) Summary() string {
	if g.IsEmpty() {
		return "empty"
	}
	parts := make([]string, 0, len(g.Waves))
	for _, wave := range g.Waves {
		names := make([]string, 0, len(wave))
		for _, a := range wave {
			names = append(names, string(a))
		}
		sort.Strings(names)
		parts = append(parts, strings.Join(names, ","))
	}
	return strings.Join(parts, "|")
}

// ExecutionAnalysis summarizes one graph execution for the decision step.
type ExecutionAnalysis struct {
	SuccessCount       int         `json:"success_count"`
	FailureCount       int         `json:"failure_count"`
	AgentsRun          []AgentType `json:"agents_run"`
	Waves              int         `json:"waves"`
	ParallelExecutions int         `json:"parallel_executions"`
}

// Ran reports whether the given agent settled successfully in this analysis.
func (a ExecutionAnalysis) Ran(agent AgentType) bool {
	for _, r := range a.AgentsRun {
		if r == agent {
			return true
		}
	}
	return false
}

// DecisionKind is the orchestrator's next-action verdict.
type DecisionKind string

// Decision kinds.
const (
	DecisionContinue DecisionKind = "continue"
	DecisionPause    DecisionKind = "pause"
	DecisionStop     DecisionKind = "stop"
)

// Decision is the orchestrator's adaptive pause/continue outcome for a cycle.
type Decision struct {
	Kind          DecisionKind  `json:"kind"`
	PauseDuration time.Duration `json:"pause_duration,omitempty"`
	Reason        string        `json:"reason,omitempty"`
}
