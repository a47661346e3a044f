// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hackfleet/hackfleet/ent/agentstate"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/pkg/models"
)

// AgentState is the model entity for the AgentState schema.
type AgentState struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// StackID holds the value of the "stack_id" field.
	StackID string `json:"stack_id,omitempty"`
	// AgentType holds the value of the "agent_type" field.
	AgentType agentstate.AgentType `json:"agent_type,omitempty"`
	// Typed memory bag: timers, cross-agent hand-off keys, execution guard
	Memory models.AgentMemory `json:"memory,omitempty"`
	// Short-term context: most recent thoughts, bounded ring
	Context []models.Thought `json:"context,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentStateQuery when eager-loading is set.
	Edges        AgentStateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentStateEdges holds the relations/edges for other nodes in the graph.
type AgentStateEdges struct {
	// Stack holds the value of the stack edge.
	Stack *Stack `json:"stack,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StackOrErr returns the Stack value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentStateEdges) StackOrErr() (*Stack, error) {
	if e.Stack != nil {
		return e.Stack, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: stack.Label}
	}
	return nil, &NotLoadedError{edge: "stack"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentstate.FieldMemory, agentstate.FieldContext:
			values[i] = new([]byte)
		case agentstate.FieldID, agentstate.FieldStackID, agentstate.FieldAgentType:
			values[i] = new(sql.NullString)
		case agentstate.FieldCreatedAt, agentstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentState fields.
func (_m *AgentState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentstate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentstate.FieldStackID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stack_id", values[i])
			} else if value.Valid {
				_m.StackID = value.String
			}
		case agentstate.FieldAgentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_type", values[i])
			} else if value.Valid {
				_m.AgentType = agentstate.AgentType(value.String)
			}
		case agentstate.FieldMemory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field memory", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Memory); err != nil {
					return fmt.Errorf("unmarshal field memory: %w", err)
				}
			}
		case agentstate.FieldContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Context); err != nil {
					return fmt.Errorf("unmarshal field context: %w", err)
				}
			}
		case agentstate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agentstate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentState.
// This includes values selected through modifiers, order, etc.
func (_m *AgentState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStack queries the "stack" edge of the AgentState entity.
func (_m *AgentState) QueryStack() *StackQuery {
	return NewAgentStateClient(_m.config).QueryStack(_m)
}

// Update returns a builder for updating this AgentState.
// Note that you need to call AgentState.Unwrap() before calling this method if this AgentState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentState) Update() *AgentStateUpdateOne {
	return NewAgentStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentState) Unwrap() *AgentState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentState) String() string {
	var builder strings.Builder
	builder.WriteString("AgentState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("stack_id=")
	builder.WriteString(_m.StackID)
	builder.WriteString(", ")
	builder.WriteString("agent_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentType))
	builder.WriteString(", ")
	builder.WriteString("memory=")
	builder.WriteString(fmt.Sprintf("%v", _m.Memory))
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(fmt.Sprintf("%v", _m.Context))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentStates is a parsable slice of AgentState.
type AgentStates []*AgentState
