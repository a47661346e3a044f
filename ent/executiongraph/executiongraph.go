// Code generated by ent, DO NOT EDIT.

package executiongraph

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the executiongraph type in the database.
	Label = "execution_graph"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "graph_id"
	// FieldStackID holds the string denoting the stack_id field in the database.
	FieldStackID = "stack_id"
	// FieldOrchestratorExecutionID holds the string denoting the orchestrator_execution_id field in the database.
	FieldOrchestratorExecutionID = "orchestrator_execution_id"
	// FieldGraph holds the string denoting the graph field in the database.
	FieldGraph = "graph"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeStack holds the string denoting the stack edge name in mutations.
	EdgeStack = "stack"
	// StackFieldID holds the string denoting the ID field of the Stack.
	StackFieldID = "stack_id"
	// Table holds the table name of the executiongraph in the database.
	Table = "execution_graphs"
	// StackTable is the table that holds the stack relation/edge.
	StackTable = "execution_graphs"
	// StackInverseTable is the table name for the Stack entity.
	// It exists in this package in order to avoid circular dependency with the "stack" package.
	StackInverseTable = "stacks"
	// StackColumn is the table column denoting the stack relation/edge.
	StackColumn = "stack_id"
)

// Columns holds all SQL columns for executiongraph fields.
var Columns = []string{
	FieldID,
	FieldStackID,
	FieldOrchestratorExecutionID,
	FieldGraph,
	FieldCreatedAt,
	FieldCompletedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ExecutionGraph queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStackID orders the results by the stack_id field.
func ByStackID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStackID, opts...).ToFunc()
}

// ByOrchestratorExecutionID orders the results by the orchestrator_execution_id field.
func ByOrchestratorExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrchestratorExecutionID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
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
