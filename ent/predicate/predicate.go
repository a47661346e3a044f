// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentState is the predicate function for agentstate builders.
type AgentState func(*sql.Selector)

// AgentTrace is the predicate function for agenttrace builders.
type AgentTrace func(*sql.Selector)

// Artifact is the predicate function for artifact builders.
type Artifact func(*sql.Selector)

// ExecutionGraph is the predicate function for executiongraph builders.
type ExecutionGraph func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// OrchestratorExecution is the predicate function for orchestratorexecution builders.
type OrchestratorExecution func(*sql.Selector)

// ProjectIdea is the predicate function for projectidea builders.
type ProjectIdea func(*sql.Selector)

// Stack is the predicate function for stack builders.
type Stack func(*sql.Selector)

// Todo is the predicate function for todo builders.
type Todo func(*sql.Selector)

// UserMessage is the predicate function for usermessage builders.
type UserMessage func(*sql.Selector)

// WorkDetectionCache is the predicate function for workdetectioncache builders.
type WorkDetectionCache func(*sql.Selector)
