// Package models contains shared data structures passed between the
// orchestrator, agent runners, services, and API layers.
package models

import "time"

// AgentType identifies one of the four agent roles in a stack.
type AgentType string

// Agent role constants.
const (
	AgentPlanner      AgentType = "planner"
	AgentBuilder      AgentType = "builder"
	AgentCommunicator AgentType = "communicator"
	AgentReviewer     AgentType = "reviewer"
)

// AllAgents lists every role in a stable order.
var AllAgents = []AgentType{AgentPlanner, AgentBuilder, AgentCommunicator, AgentReviewer}

// AgentExecState is the per-agent execution guard stored in memory.
type AgentExecState string

// Agent execution states.
const (
	AgentIdle      AgentExecState = "idle"
	AgentExecuting AgentExecState = "executing"
	AgentError     AgentExecState = "error"
)

// AgentMemory is the typed memory bag persisted on AgentState. It replaces
// the untyped per-agent maps of earlier designs: every timer and cross-agent
// hand-off key is an explicit field. Fields are role-scoped by convention;
// unused fields stay zero for the other roles.
type AgentMemory struct {
	ExecutionState AgentExecState `json:"execution_state"`
	CurrentWork    string         `json:"current_work,omitempty"`

	// Planner.
	LastPlanningTime         *time.Time `json:"last_planning_time,omitempty"`
	ReviewerRecommendations  []string   `json:"reviewer_recommendations,omitempty"`
	RecommendationsTimestamp *time.Time `json:"recommendations_timestamp,omitempty"`
	RecommendationsType      string     `json:"recommendations_type,omitempty"`

	// Reviewer.
	LastReviewTime        *time.Time `json:"last_review_time,omitempty"`
	LastReviewedVersion   int        `json:"last_reviewed_version,omitempty"`
	LastReviewIssuesCount int        `json:"last_review_issues_count,omitempty"`
	Recommendations       []string   `json:"recommendations,omitempty"`
}

// Thought is one entry in an agent's short-term context ring.
type Thought struct {
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// MaxThoughts bounds the AgentState context ring.
const MaxThoughts = 20

// AppendThought returns the ring with t appended, dropping the oldest
// entries beyond MaxThoughts.
func AppendThought(ring []Thought, t Thought) []Thought {
	ring = append(ring, t)
	if len(ring) > MaxThoughts {
		ring = ring[len(ring)-MaxThoughts:]
	}
	return ring
}
