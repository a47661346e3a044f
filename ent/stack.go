// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hackfleet/hackfleet/ent/projectidea"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/ent/workdetectioncache"
)

// Stack is the model entity for the Stack schema.
type Stack struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ParticipantName holds the value of the "participant_name" field.
	ParticipantName string `json:"participant_name,omitempty"`
	// Hackathon phase, advanced by the planner
	Phase stack.Phase `json:"phase,omitempty"`
	// User-controlled lifecycle; the scheduler only touches running stacks
	ExecutionState stack.ExecutionState `json:"execution_state,omitempty"`
	// Bumped after every agent node settles
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
	// TotalCycles holds the value of the "total_cycles" field.
	TotalCycles int `json:"total_cycles,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StackQuery when eager-loading is set.
	Edges        StackEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StackEdges holds the relations/edges for other nodes in the graph.
type StackEdges struct {
	// AgentStates holds the value of the agent_states edge.
	AgentStates []*AgentState `json:"agent_states,omitempty"`
	// ProjectIdea holds the value of the project_idea edge.
	ProjectIdea *ProjectIdea `json:"project_idea,omitempty"`
	// Todos holds the value of the todos edge.
	Todos []*Todo `json:"todos,omitempty"`
	// Artifacts holds the value of the artifacts edge.
	Artifacts []*Artifact `json:"artifacts,omitempty"`
	// Traces holds the value of the traces edge.
	Traces []*AgentTrace `json:"traces,omitempty"`
	// UserMessages holds the value of the user_messages edge.
	UserMessages []*UserMessage `json:"user_messages,omitempty"`
	// OrchestratorExecutions holds the value of the orchestrator_executions edge.
	OrchestratorExecutions []*OrchestratorExecution `json:"orchestrator_executions,omitempty"`
	// ExecutionGraphs holds the value of the execution_graphs edge.
	ExecutionGraphs []*ExecutionGraph `json:"execution_graphs,omitempty"`
	// WorkDetectionCache holds the value of the work_detection_cache edge.
	WorkDetectionCache *WorkDetectionCache `json:"work_detection_cache,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [9]bool
}

// AgentStatesOrErr returns the AgentStates value or an error if the edge
// was not loaded in eager-loading.
func (e StackEdges) AgentStatesOrErr() ([]*AgentState, error) {
	if e.loadedTypes[0] {
		return e.AgentStates, nil
	}
	return nil, &NotLoadedError{edge: "agent_states"}
}

// ProjectIdeaOrErr returns the ProjectIdea value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StackEdges) ProjectIdeaOrErr() (*ProjectIdea, error) {
	if e.ProjectIdea != nil {
		return e.ProjectIdea, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: projectidea.Label}
	}
	return nil, &NotLoadedError{edge: "project_idea"}
}

// TodosOrErr returns the Todos value or an error if the edge
// was not loaded in eager-loading.
func (e StackEdges) TodosOrErr() ([]*Todo, error) {
	if e.loadedTypes[2] {
		return e.Todos, nil
	}
	return nil, &NotLoadedError{edge: "todos"}
}

// ArtifactsOrErr returns the Artifacts value or an error if the edge
// was not loaded in eager-loading.
func (e StackEdges) ArtifactsOrErr() ([]*Artifact, error) {
	if e.loadedTypes[3] {
		return e.Artifacts, nil
	}
	return nil, &NotLoadedError{edge: "artifacts"}
}

// TracesOrErr returns the Traces value or an error if the edge
// was not loaded in eager-loading.
func (e StackEdges) TracesOrErr() ([]*AgentTrace, error) {
	if e.loadedTypes[4] {
		return e.Traces, nil
	}
	return nil, &NotLoadedError{edge: "traces"}
}

// UserMessagesOrErr returns the UserMessages value or an error if the edge
// was not loaded in eager-loading.
func (e StackEdges) UserMessagesOrErr() ([]*UserMessage, error) {
	if e.loadedTypes[5] {
		return e.UserMessages, nil
	}
	return nil, &NotLoadedError{edge: "user_messages"}
}

// OrchestratorExecutionsOrErr returns the OrchestratorExecutions value or an error if the edge
// was not loaded in eager-loading.
func (e StackEdges) OrchestratorExecutionsOrErr() ([]*OrchestratorExecution, error) {
	if e.loadedTypes[6] {
		return e.OrchestratorExecutions, nil
	}
	return nil, &NotLoadedError{edge: "orchestrator_executions"}
}

// ExecutionGraphsOrErr returns the ExecutionGraphs value or an error if the edge
// was not loaded in eager-loading.
func (e StackEdges) ExecutionGraphsOrErr() ([]*ExecutionGraph, error) {
	if e.loadedTypes[7] {
		return e.ExecutionGraphs, nil
	}
	return nil, &NotLoadedError{edge: "execution_graphs"}
}

// WorkDetectionCacheOrErr returns the WorkDetectionCache value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StackEdges) WorkDetectionCacheOrErr() (*WorkDetectionCache, error) {
	if e.WorkDetectionCache != nil {
		return e.WorkDetectionCache, nil
	} else if e.loadedTypes[8] {
		return nil, &NotFoundError{label: workdetectioncache.Label}
	}
	return nil, &NotLoadedError{edge: "work_detection_cache"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Stack) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stack.FieldTotalCycles:
			values[i] = new(sql.NullInt64)
		case stack.FieldID, stack.FieldParticipantName, stack.FieldPhase, stack.FieldExecutionState:
			values[i] = new(sql.NullString)
		case stack.FieldLastActivityAt, stack.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Stack fields.
func (_m *Stack) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stack.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case stack.FieldParticipantName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_name", values[i])
			} else if value.Valid {
				_m.ParticipantName = value.String
			}
		case stack.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = stack.Phase(value.String)
			}
		case stack.FieldExecutionState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_state", values[i])
			} else if value.Valid {
				_m.ExecutionState = stack.ExecutionState(value.String)
			}
		case stack.FieldLastActivityAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity_at", values[i])
			} else if value.Valid {
				_m.LastActivityAt = new(time.Time)
				*_m.LastActivityAt = value.Time
			}
		case stack.FieldTotalCycles:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_cycles", values[i])
			} else if value.Valid {
				_m.TotalCycles = int(value.Int64)
			}
		case stack.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Stack.
// This includes values selected through modifiers, order, etc.
func (_m *Stack) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgentStates queries the "agent_states" edge of the Stack entity.
func (_m *Stack) QueryAgentStates() *AgentStateQuery {
	return NewStackClient(_m.config).QueryAgentStates(_m)
}

// QueryProjectIdea queries the "project_idea" edge of the Stack entity.
func (_m *Stack) QueryProjectIdea() *ProjectIdeaQuery {
	return NewStackClient(_m.config).QueryProjectIdea(_m)
}

// QueryTodos queries the "todos" edge of the Stack entity.
func (_m *Stack) QueryTodos() *TodoQuery {
	return NewStackClient(_m.config).QueryTodos(_m)
}

// QueryArtifacts queries the "artifacts" edge of the Stack entity.
func (_m *Stack) QueryArtifacts() *ArtifactQuery {
	return NewStackClient(_m.config).QueryArtifacts(_m)
}

// QueryTraces queries the "traces" edge of the Stack entity.
func (_m *Stack) QueryTraces() *AgentTraceQuery {
	return NewStackClient(_m.config).QueryTraces(_m)
}

// QueryUserMessages queries the "user_messages" edge of the Stack entity.
func (_m *Stack) QueryUserMessages() *UserMessageQuery {
	return NewStackClient(_m.config).QueryUserMessages(_m)
}

// QueryOrchestratorExecutions queries the "orchestrator_executions" edge of the Stack entity.
func (_m *Stack) QueryOrchestratorExecutions() *OrchestratorExecutionQuery {
	return NewStackClient(_m.config).QueryOrchestratorExecutions(_m)
}

// QueryExecutionGraphs queries the "execution_graphs" edge of the Stack entity.
func (_m *Stack) QueryExecutionGraphs() *ExecutionGraphQuery {
	return NewStackClient(_m.config).QueryExecutionGraphs(_m)
}

// QueryWorkDetectionCache queries the "work_detection_cache" edge of the Stack entity.
func (_m *Stack) QueryWorkDetectionCache() *WorkDetectionCacheQuery {
	return NewStackClient(_m.config).QueryWorkDetectionCache(_m)
}

// Update returns a builder for updating this Stack.
// Note that you need to call Stack.Unwrap() before calling this method if this Stack
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Stack) Update() *StackUpdateOne {
	return NewStackClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Stack entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Stack) Unwrap() *Stack {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Stack is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Stack) String() string {
	var builder strings.Builder
	builder.WriteString("Stack(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("participant_name=")
	builder.WriteString(_m.ParticipantName)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase))
	builder.WriteString(", ")
	builder.WriteString("execution_state=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionState))
	builder.WriteString(", ")
	if v := _m.LastActivityAt; v != nil {
		builder.WriteString("last_activity_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("total_cycles=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCycles))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Stacks is a parsable slice of Stack.
type Stacks []*Stack
