// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hackfleet/hackfleet/ent/agenttrace"
	"github.com/hackfleet/hackfleet/ent/stack"
)

// AgentTrace is the model entity for the AgentTrace schema.
type AgentTrace struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// StackID holds the value of the "stack_id" field.
	StackID string `json:"stack_id,omitempty"`
	// AgentType holds the value of the "agent_type" field.
	AgentType agenttrace.AgentType `json:"agent_type,omitempty"`
	// Model thinking, truncated to 1000 chars
	Thought string `json:"thought,omitempty"`
	// Action holds the value of the "action" field.
	Action string `json:"action,omitempty"`
	// Result holds the value of the "result" field.
	Result string `json:"result,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentTraceQuery when eager-loading is set.
	Edges        AgentTraceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentTraceEdges holds the relations/edges for other nodes in the graph.
type AgentTraceEdges struct {
	// Stack holds the value of the stack edge.
	Stack *Stack `json:"stack,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StackOrErr returns the Stack value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentTraceEdges) StackOrErr() (*Stack, error) {
	if e.Stack != nil {
		return e.Stack, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: stack.Label}
	}
	return nil, &NotLoadedError{edge: "stack"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentTrace) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agenttrace.FieldID, agenttrace.FieldStackID, agenttrace.FieldAgentType, agenttrace.FieldThought, agenttrace.FieldAction, agenttrace.FieldResult:
			values[i] = new(sql.NullString)
		case agenttrace.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentTrace fields.
func (_m *AgentTrace) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agenttrace.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agenttrace.FieldStackID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stack_id", values[i])
			} else if value.Valid {
				_m.StackID = value.String
			}
		case agenttrace.FieldAgentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_type", values[i])
			} else if value.Valid {
				_m.AgentType = agenttrace.AgentType(value.String)
			}
		case agenttrace.FieldThought:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thought", values[i])
			} else if value.Valid {
				_m.Thought = value.String
			}
		case agenttrace.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case agenttrace.FieldResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value.Valid {
				_m.Result = value.String
			}
		case agenttrace.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgentTrace.
// This includes values selected through modifiers, order, etc.
func (_m *AgentTrace) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStack queries the "stack" edge of the AgentTrace entity.
func (_m *AgentTrace) QueryStack() *StackQuery {
	return NewAgentTraceClient(_m.config).QueryStack(_m)
}

// Update returns a builder for updating this AgentTrace.
// Note that you need to call AgentTrace.Unwrap() before calling this method if this AgentTrace
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentTrace) Update() *AgentTraceUpdateOne {
	return NewAgentTraceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentTrace entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentTrace) Unwrap() *AgentTrace {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentTrace is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentTrace) String() string {
	var builder strings.Builder
	builder.WriteString("AgentTrace(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("stack_id=")
	builder.WriteString(_m.StackID)
	builder.WriteString(", ")
	builder.WriteString("agent_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentType))
	builder.WriteString(", ")
	builder.WriteString("thought=")
	builder.WriteString(_m.Thought)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(_m.Result)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentTraces is a parsable slice of AgentTrace.
type AgentTraces []*AgentTrace
