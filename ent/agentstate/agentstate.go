// Code generated by ent, DO NOT EDIT.

package agentstate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hackfleet/hackfleet/pkg/models"
)

const (
	// Label holds the string label denoting the agentstate type in the database.
	Label = "agent_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_state_id"
	// FieldStackID holds the string denoting the stack_id field in the database.
	FieldStackID = "stack_id"
	// FieldAgentType holds the string denoting the agent_type field in the database.
	FieldAgentType = "agent_type"
	// FieldMemory holds the string denoting the memory field in the database.
	FieldMemory = "memory"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeStack holds the string denoting the stack edge name in mutations.
	EdgeStack = "stack"
	// StackFieldID holds the string denoting the ID field of the Stack.
	StackFieldID = "stack_id"
	// Table holds the table name of the agentstate in the database.
	Table = "agent_states"
	// StackTable is the table that holds the stack relation/edge.
	StackTable = "agent_states"
	// StackInverseTable is the table name for the Stack entity.
	// It exists in this package in order to avoid circular dependency with the "stack" package.
	StackInverseTable = "stacks"
	// StackColumn is the table column denoting the stack relation/edge.
	StackColumn = "stack_id"
)

// Columns holds all SQL columns for agentstate fields.
var Columns = []string{
	FieldID,
	FieldStackID,
	FieldAgentType,
	FieldMemory,
	FieldContext,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultMemory holds the default value on creation for the "memory" field.
	DefaultMemory models.AgentMemory
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// AgentType defines the type for the "agent_type" enum field.
type AgentType string

// AgentType values.
const (
	AgentTypePlanner      AgentType = "planner"
	AgentTypeBuilder      AgentType = "builder"
	AgentTypeCommunicator AgentType = "communicator"
	AgentTypeReviewer     AgentType = "reviewer"
)

func (at AgentType) String() string {
	return string(at)
}

// AgentTypeValidator is a validator for the "agent_type" field enum values. It is called by the builders before save.
func AgentTypeValidator(at AgentType) error {
	switch at {
	case AgentTypePlanner, AgentTypeBuilder, AgentTypeCommunicator, AgentTypeReviewer:
		return nil
	default:
		return fmt.Errorf("agentstate: invalid enum value for agent_type field: %q", at)
	}
}

// OrderOption defines the ordering options for the AgentState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStackID orders the results by the stack_id field.
func ByStackID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStackID, opts...).ToFunc()
}

// ByAgentType orders the results by the agent_type field.
func ByAgentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentType, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
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
