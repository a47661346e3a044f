// Code generated by ent, DO NOT EDIT.

package orchestratorexecution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the orchestratorexecution type in the database.
	Label = "orchestrator_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "execution_id"
	// FieldStackID holds the string denoting the stack_id field in the database.
	FieldStackID = "stack_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDecision holds the string denoting the decision field in the database.
	FieldDecision = "decision"
	// FieldPauseDurationMs holds the string denoting the pause_duration_ms field in the database.
	FieldPauseDurationMs = "pause_duration_ms"
	// FieldGraphSummary holds the string denoting the graph_summary field in the database.
	FieldGraphSummary = "graph_summary"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// EdgeStack holds the string denoting the stack edge name in mutations.
	EdgeStack = "stack"
	// StackFieldID holds the string denoting the ID field of the Stack.
	StackFieldID = "stack_id"
	// Table holds the table name of the orchestratorexecution in the database.
	Table = "orchestrator_executions"
	// StackTable is the table that holds the stack relation/edge.
	StackTable = "orchestrator_executions"
	// StackInverseTable is the table name for the Stack entity.
	// It exists in this package in order to avoid circular dependency with the "stack" package.
	StackInverseTable = "stacks"
	// StackColumn is the table column denoting the stack relation/edge.
	StackColumn = "stack_id"
)

// Columns holds all SQL columns for orchestratorexecution fields.
var Columns = []string{
	FieldID,
	FieldStackID,
	FieldStatus,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDecision,
	FieldPauseDurationMs,
	FieldGraphSummary,
	FieldErrorMessage,
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
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusPaused    Status = "paused"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusCompleted, StatusPaused, StatusFailed:
		return nil
	default:
		return fmt.Errorf("orchestratorexecution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the OrchestratorExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStackID orders the results by the stack_id field.
func ByStackID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStackID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDecision orders the results by the decision field.
func ByDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecision, opts...).ToFunc()
}

// ByPauseDurationMs orders the results by the pause_duration_ms field.
func ByPauseDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPauseDurationMs, opts...).ToFunc()
}

// ByGraphSummary orders the results by the graph_summary field.
func ByGraphSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGraphSummary, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByStackField orders the results by stack field.
func ByStackField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStackStep(), sql.OrderByField(field, opts...))
	}
}
func newStackStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StackInverseTable, StackFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StackTable, StackColumn),
	)
}
