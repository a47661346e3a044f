// Code generated by ent, DO NOT EDIT.

package stack

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the stack type in the database.
	Label = "stack"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "stack_id"
	// FieldParticipantName holds the string denoting the participant_name field in the database.
	FieldParticipantName = "participant_name"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldExecutionState holds the string denoting the execution_state field in the database.
	FieldExecutionState = "execution_state"
	// FieldLastActivityAt holds the string denoting the last_activity_at field in the database.
	FieldLastActivityAt = "last_activity_at"
	// FieldTotalCycles holds the string denoting the total_cycles field in the database.
	FieldTotalCycles = "total_cycles"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAgentStates holds the string denoting the agent_states edge name in mutations.
	EdgeAgentStates = "agent_states"
	// EdgeProjectIdea holds the string denoting the project_idea edge name in mutations.
	EdgeProjectIdea = "project_idea"
	// EdgeTodos holds the string denoting the todos edge name in mutations.
	EdgeTodos = "todos"
	// EdgeArtifacts holds the string denoting the artifacts edge name in mutations.
	EdgeArtifacts = "artifacts"
	// EdgeTraces holds the string denoting the traces edge name in mutations.
	EdgeTraces = "traces"
	// EdgeUserMessages holds the string denoting the user_messages edge name in mutations.
	EdgeUserMessages = "user_messages"
	// EdgeOrchestratorExecutions holds the string denoting the orchestrator_executions edge name in mutations.
	EdgeOrchestratorExecutions = "orchestrator_executions"
	// EdgeExecutionGraphs holds the string denoting the execution_graphs edge name in mutations.
	EdgeExecutionGraphs = "execution_graphs"
	// EdgeWorkDetectionCache holds the string denoting the work_detection_cache edge name in mutations.
	EdgeWorkDetectionCache = "work_detection_cache"
	// AgentStateFieldID holds the string denoting the ID field of the AgentState.
	AgentStateFieldID = "agent_state_id"
	// ProjectIdeaFieldID holds the string denoting the ID field of the ProjectIdea.
	ProjectIdeaFieldID = "idea_id"
	// TodoFieldID holds the string denoting the ID field of the Todo.
	TodoFieldID = "todo_id"
	// ArtifactFieldID holds the string denoting the ID field of the Artifact.
	ArtifactFieldID = "artifact_id"
	// AgentTraceFieldID holds the string denoting the ID field of the AgentTrace.
	AgentTraceFieldID = "trace_id"
	// UserMessageFieldID holds the string denoting the ID field of the UserMessage.
	UserMessageFieldID = "user_message_id"
	// OrchestratorExecutionFieldID holds the string denoting the ID field of the OrchestratorExecution.
	OrchestratorExecutionFieldID = "execution_id"
	// ExecutionGraphFieldID holds the string denoting the ID field of the ExecutionGraph.
	ExecutionGraphFieldID = "graph_id"
	// WorkDetectionCacheFieldID holds the string denoting the ID field of the WorkDetectionCache.
	WorkDetectionCacheFieldID = "cache_id"
	// Table holds the table name of the stack in the database.
	Table = "stacks"
	// AgentStatesTable is the table that holds the agent_states relation/edge.
	AgentStatesTable = "agent_states"
	// AgentStatesInverseTable is the table name for the AgentState entity.
	// It exists in this package in order to avoid circular dependency with the "agentstate" package.
	AgentStatesInverseTable = "agent_states"
	// AgentStatesColumn is the table column denoting the agent_states relation/edge.
	AgentStatesColumn = "stack_id"
	// ProjectIdeaTable is the table that holds the project_idea relation/edge.
	ProjectIdeaTable = "project_ideas"
	// ProjectIdeaInverseTable is the table name for the ProjectIdea entity.
	// It exists in this package in order to avoid circular dependency with the "projectidea" package.
	ProjectIdeaInverseTable = "project_ideas"
	// ProjectIdeaColumn is the table column denoting the project_idea relation/edge.
	ProjectIdeaColumn = "stack_id"
	// TodosTable is the table that holds the todos relation/edge.
	TodosTable = "todos"
	// TodosInverseTable is the table name for the Todo entity.
	// It exists in this package in order to avoid circular dependency with the "todo" package.
	TodosInverseTable = "todos"
	// TodosColumn is the table column denoting the todos relation/edge.
	TodosColumn = "stack_id"
	// ArtifactsTable is the table that holds the artifacts relation/edge.
	ArtifactsTable = "artifacts"
	// ArtifactsInverseTable is the table name for the Artifact entity.
	// It exists in this package in order to avoid circular dependency with the "artifact" package.
	ArtifactsInverseTable = "artifacts"
	// ArtifactsColumn is the table column denoting the artifacts relation/edge.
	ArtifactsColumn = "stack_id"
	// TracesTable is the table that holds the traces relation/edge.
	TracesTable = "agent_traces"
	// TracesInverseTable is the table name for the AgentTrace entity.
	// It exists in this package in order to avoid circular dependency with the "agenttrace" package.
	TracesInverseTable = "agent_traces"
	// TracesColumn is the table column denoting the traces relation/edge.
	TracesColumn = "stack_id"
	// UserMessagesTable is the table that holds the user_messages relation/edge.
	UserMessagesTable = "user_messages"
	// UserMessagesInverseTable is the table name for the UserMessage entity.
	// It exists in this package in order to avoid circular dependency with the "usermessage" package.
	UserMessagesInverseTable = "user_messages"
	// UserMessagesColumn is the table column denoting the user_messages relation/edge.
	UserMessagesColumn = "team_id"
	// OrchestratorExecutionsTable is the table that holds the orchestrator_executions relation/edge.
	OrchestratorExecutionsTable = "orchestrator_executions"
	// OrchestratorExecutionsInverseTable is the table name for the OrchestratorExecution entity.
	// It exists in this package in order to avoid circular dependency with the "orchestratorexecution" package.
	OrchestratorExecutionsInverseTable = "orchestrator_executions"
	// OrchestratorExecutionsColumn is the table column denoting the orchestrator_executions relation/edge.
	OrchestratorExecutionsColumn = "stack_id"
	// ExecutionGraphsTable is the table that holds the execution_graphs relation/edge.
	ExecutionGraphsTable = "execution_graphs"
	// ExecutionGraphsInverseTable is the table name for the ExecutionGraph entity.
	// It exists in this package in order to avoid circular dependency with the "executiongraph" package.
	ExecutionGraphsInverseTable = "execution_graphs"
	// ExecutionGraphsColumn is the table column denoting the execution_graphs relation/edge.
	ExecutionGraphsColumn = "stack_id"
	// WorkDetectionCacheTable is the table that holds the work_detection_cache relation/edge.
	WorkDetectionCacheTable = "work_detection_caches"
	// WorkDetectionCacheInverseTable is the table name for the WorkDetectionCache entity.
	// It exists in this package in order to avoid circular dependency with the "workdetectioncache" package.
	WorkDetectionCacheInverseTable = "work_detection_caches"
	// WorkDetectionCacheColumn is the table column denoting the work_detection_cache relation/edge.
	WorkDetectionCacheColumn = "stack_id"
)

// Columns holds all SQL columns for stack fields.
var Columns = []string{
	FieldID,
	FieldParticipantName,
	FieldPhase,
	FieldExecutionState,
	FieldLastActivityAt,
	FieldTotalCycles,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTotalCycles holds the default value on creation for the "total_cycles" field.
	DefaultTotalCycles int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Phase defines the type for the "phase" enum field.
type Phase string

// PhaseIdeation is the default value of the Phase enum.
const DefaultPhase = PhaseIdeation

// Phase values.
const (
	PhaseIdeation  Phase = "ideation"
	PhaseBuilding  Phase = "building"
	PhaseDemo      Phase = "demo"
	PhaseCompleted Phase = "completed"
)

func (ph Phase) String() string {
	return string(ph)
}

// PhaseValidator is a validator for the "phase" field enum values. It is called by the builders before save.
func PhaseValidator(ph Phase) error {
	switch ph {
	case PhaseIdeation, PhaseBuilding, PhaseDemo, PhaseCompleted:
		return nil
	default:
		return fmt.Errorf("stack: invalid enum value for phase field: %q", ph)
	}
}

// ExecutionState defines the type for the "execution_state" enum field.
type ExecutionState string

// ExecutionStateIdle is the default value of the ExecutionState enum.
const DefaultExecutionState = ExecutionStateIdle

// ExecutionState values.
const (
	ExecutionStateIdle    ExecutionState = "idle"
	ExecutionStateRunning ExecutionState = "running"
	ExecutionStatePaused  ExecutionState = "paused"
	ExecutionStateStopped ExecutionState = "stopped"
)

func (es ExecutionState) String() string {
	return string(es)
}

// ExecutionStateValidator is a validator for the "execution_state" field enum values. It is called by the builders before save.
func ExecutionStateValidator(es ExecutionState) error {
	switch es {
	case ExecutionStateIdle, ExecutionStateRunning, ExecutionStatePaused, ExecutionStateStopped:
		return nil
	default:
		return fmt.Errorf("stack: invalid enum value for execution_state field: %q", es)
	}
}

// OrderOption defines the ordering options for the Stack queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByParticipantName orders the results by the participant_name field.
func ByParticipantName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipantName, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByExecutionState orders the results by the execution_state field.
func ByExecutionState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionState, opts...).ToFunc()
}

// ByLastActivityAt orders the results by the last_activity_at field.
func ByLastActivityAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivityAt, opts...).ToFunc()
}

// ByTotalCycles orders the results by the total_cycles field.
func ByTotalCycles(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCycles, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAgentStatesCount orders the results by agent_states count.
func ByAgentStatesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAgentStatesStep(), opts...)
	}
}

// ByAgentStates orders the results by agent_states terms.
func ByAgentStates(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentStatesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByProjectIdeaField orders the results by project_idea field.
func ByProjectIdeaField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectIdeaStep(), sql.OrderByField(field, opts...))
	}
}

// ByTodosCount orders the results by todos count.
func ByTodosCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTodosStep(), opts...)
	}
}

// ByTodos orders the results by todos terms.
func ByTodos(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTodosStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByArtifactsCount orders the results by artifacts count.
func ByArtifactsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newArtifactsStep(), opts...)
	}
}

// ByArtifacts orders the results by artifacts terms.
func ByArtifacts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newArtifactsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTracesCount orders the results by traces count.
func ByTracesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTracesStep(), opts...)
	}
}

// ByTraces orders the results by traces terms.
func ByTraces(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTracesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByUserMessagesCount orders the results by user_messages count.
func ByUserMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUserMessagesStep(), opts...)
	}
}

// ByUserMessages orders the results by user_messages terms.
func ByUserMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByOrchestratorExecutionsCount orders the results by orchestrator_executions count.
func ByOrchestratorExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOrchestratorExecutionsStep(), opts...)
	}
}

// ByOrchestratorExecutions orders the results by orchestrator_executions terms.
func ByOrchestratorExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOrchestratorExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByExecutionGraphsCount orders the results by execution_graphs count.
func ByExecutionGraphsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExecutionGraphsStep(), opts...)
	}
}

// ByExecutionGraphs orders the results by execution_graphs terms.
func ByExecutionGraphs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionGraphsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByWorkDetectionCacheField orders the results by work_detection_cache field.
func ByWorkDetectionCacheField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkDetectionCacheStep(), sql.OrderByField(field, opts...))
	}
}
func newAgentStatesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentStatesInverseTable, AgentStateFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AgentStatesTable, AgentStatesColumn),
	)
}
func newProjectIdeaStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectIdeaInverseTable, ProjectIdeaFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ProjectIdeaTable, ProjectIdeaColumn),
	)
}
func newTodosStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TodosInverseTable, TodoFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TodosTable, TodosColumn),
	)
}
func newArtifactsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ArtifactsInverseTable, ArtifactFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ArtifactsTable, ArtifactsColumn),
	)
}
func newTracesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TracesInverseTable, AgentTraceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TracesTable, TracesColumn),
	)
}
func newUserMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserMessagesInverseTable, UserMessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UserMessagesTable, UserMessagesColumn),
	)
}
func newOrchestratorExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OrchestratorExecutionsInverseTable, OrchestratorExecutionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OrchestratorExecutionsTable, OrchestratorExecutionsColumn),
	)
}
func newExecutionGraphsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionGraphsInverseTable, ExecutionGraphFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExecutionGraphsTable, ExecutionGraphsColumn),
	)
}
func newWorkDetectionCacheStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkDetectionCacheInverseTable, WorkDetectionCacheFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, WorkDetectionCacheTable, WorkDetectionCacheColumn),
	)
}
