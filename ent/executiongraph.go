// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hackfleet/hackfleet/ent/executiongraph"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/pkg/models"
)

// ExecutionGraph is the model entity for the ExecutionGraph schema.
type ExecutionGraph struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// StackID holds the value of the "stack_id" field.
	StackID string `json:"stack_id,omitempty"`
	// OrchestratorExecutionID holds the value of the "orchestrator_execution_id" field.
	OrchestratorExecutionID string `json:"orchestrator_execution_id,omitempty"`
	// Graph holds the value of the "graph" field.
	Graph models.GraphSnapshot `json:"graph,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExecutionGraphQuery when eager-loading is set.
	Edges        ExecutionGraphEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExecutionGraphEdges holds the relations/edges for other nodes in the graph.
type ExecutionGraphEdges struct {
	// Stack holds the value of the stack edge.
	Stack *Stack `json:"stack,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StackOrErr returns the Stack value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExecutionGraphEdges) StackOrErr() (*Stack, error) {
	if e.Stack != nil {
		return e.Stack, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: stack.Label}
	}
	return nil, &NotLoadedError{edge: "stack"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExecutionGraph) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case executiongraph.FieldGraph:
			values[i] = new([]byte)
		case executiongraph.FieldID, executiongraph.FieldStackID, executiongraph.FieldOrchestratorExecutionID:
			values[i] = new(sql.NullString)
		case executiongraph.FieldCreatedAt, executiongraph.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExecutionGraph fields.
func (_m *ExecutionGraph) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case executiongraph.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case executiongraph.FieldStackID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stack_id", values[i])
			} else if value.Valid {
				_m.StackID = value.String
			}
		case executiongraph.FieldOrchestratorExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field orchestrator_execution_id", values[i])
			} else if value.Valid {
				_m.OrchestratorExecutionID = value.String
			}
		case executiongraph.FieldGraph:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field graph", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Graph); err != nil {
					return fmt.Errorf("unmarshal field graph: %w", err)
				}
			}
		case executiongraph.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case executiongraph.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExecutionGraph.
// This includes values selected through modifiers, order, etc.
func (_m *ExecutionGraph) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStack queries the "stack" edge of the ExecutionGraph entity.
func (_m *ExecutionGraph) QueryStack() *StackQuery {
	return NewExecutionGraphClient(_m.config).QueryStack(_m)
}

// Update returns a builder for updating this ExecutionGraph.
// Note that you need to call ExecutionGraph.Unwrap() before calling this method if this ExecutionGraph
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExecutionGraph) Update() *ExecutionGraphUpdateOne {
	return NewExecutionGraphClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExecutionGraph entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExecutionGraph) Unwrap() *ExecutionGraph {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExecutionGraph is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExecutionGraph) String() string {
	var builder strings.Builder
	builder.WriteString("ExecutionGraph(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("stack_id=")
	builder.WriteString(_m.StackID)
	builder.WriteString(", ")
	builder.WriteString("orchestrator_execution_id=")
	builder.WriteString(_m.OrchestratorExecutionID)
	builder.WriteString(", ")
	builder.WriteString("graph=")
	builder.WriteString(fmt.Sprintf("%v", _m.Graph))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ExecutionGraphs is a parsable slice of ExecutionGraph.
type ExecutionGraphs []*ExecutionGraph
