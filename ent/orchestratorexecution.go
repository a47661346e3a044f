// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hackfleet/hackfleet/ent/orchestratorexecution"
	"github.com/hackfleet/hackfleet/ent/stack"
)

// OrchestratorExecution is the model entity for the OrchestratorExecution schema.
type OrchestratorExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// StackID holds the value of the "stack_id" field.
	StackID string `json:"stack_id,omitempty"`
	// Status holds the value of the "status" field.
	Status orchestratorexecution.Status `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// continue, pause, or stop
	Decision string `json:"decision,omitempty"`
	// PauseDurationMs holds the value of the "pause_duration_ms" field.
	PauseDurationMs *int64 `json:"pause_duration_ms,omitempty"`
	// GraphSummary holds the value of the "graph_summary" field.
	GraphSummary string `json:"graph_summary,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OrchestratorExecutionQuery when eager-loading is set.
	Edges        OrchestratorExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OrchestratorExecutionEdges holds the relations/edges for other nodes in the graph.
type OrchestratorExecutionEdges struct {
	// Stack holds the value of the stack edge.
	Stack *Stack `json:"stack,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StackOrErr returns the Stack value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OrchestratorExecutionEdges) StackOrErr() (*Stack, error) {
	if e.Stack != nil {
		return e.Stack, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: stack.Label}
	}
	return nil, &NotLoadedError{edge: "stack"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OrchestratorExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case orchestratorexecution.FieldPauseDurationMs:
			values[i] = new(sql.NullInt64)
		case orchestratorexecution.FieldID, orchestratorexecution.FieldStackID, orchestratorexecution.FieldStatus, orchestratorexecution.FieldDecision, orchestratorexecution.FieldGraphSummary, orchestratorexecution.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case orchestratorexecution.FieldStartedAt, orchestratorexecution.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OrchestratorExecution fields.
func (_m *OrchestratorExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case orchestratorexecution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case orchestratorexecution.FieldStackID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stack_id", values[i])
			} else if value.Valid {
				_m.StackID = value.String
			}
		case orchestratorexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = orchestratorexecution.Status(value.String)
			}
		case orchestratorexecution.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case orchestratorexecution.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case orchestratorexecution.FieldDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value.Valid {
				_m.Decision = value.String
			}
		case orchestratorexecution.FieldPauseDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pause_duration_ms", values[i])
			} else if value.Valid {
				_m.PauseDurationMs = new(int64)
				*_m.PauseDurationMs = value.Int64
			}
		case orchestratorexecution.FieldGraphSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field graph_summary", values[i])
			} else if value.Valid {
				_m.GraphSummary = value.String
			}
		case orchestratorexecution.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OrchestratorExecution.
// This includes values selected through modifiers, order, etc.
func (_m *OrchestratorExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStack queries the "stack" edge of the OrchestratorExecution entity.
func (_m *OrchestratorExecution) QueryStack() *StackQuery {
	return NewOrchestratorExecutionClient(_m.config).QueryStack(_m)
}

// Update returns a builder for updating this OrchestratorExecution.
// Note that you need to call OrchestratorExecution.Unwrap() before calling this method if this OrchestratorExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OrchestratorExecution) Update() *OrchestratorExecutionUpdateOne {
	return NewOrchestratorExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OrchestratorExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OrchestratorExecution) Unwrap() *OrchestratorExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OrchestratorExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OrchestratorExecution) String() string {
	var builder strings.Builder
	builder.WriteString("OrchestratorExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("stack_id=")
	builder.WriteString(_m.StackID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("decision=")
	builder.WriteString(_m.Decision)
	builder.WriteString(", ")
	if v := _m.PauseDurationMs; v != nil {
		builder.WriteString("pause_duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("graph_summary=")
	builder.WriteString(_m.GraphSummary)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// OrchestratorExecutions is a parsable slice of OrchestratorExecution.
type OrchestratorExecutions []*OrchestratorExecution
