// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/ent/workdetectioncache"
	"github.com/hackfleet/hackfleet/pkg/models"
)

// WorkDetectionCache is the model entity for the WorkDetectionCache schema.
type WorkDetectionCache struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// StackID holds the value of the "stack_id" field.
	StackID string `json:"stack_id,omitempty"`
	// Statuses holds the value of the "statuses" field.
	Statuses models.WorkStatus `json:"statuses,omitempty"`
	// ComputedAt holds the value of the "computed_at" field.
	ComputedAt time.Time `json:"computed_at,omitempty"`
	// ValidUntil holds the value of the "valid_until" field.
	ValidUntil time.Time `json:"valid_until,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkDetectionCacheQuery when eager-loading is set.
	Edges        WorkDetectionCacheEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkDetectionCacheEdges holds the relations/edges for other nodes in the graph.
type WorkDetectionCacheEdges struct {
	// Stack holds the value of the stack edge.
	Stack *Stack `json:"stack,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StackOrErr returns the Stack value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkDetectionCacheEdges) StackOrErr() (*Stack, error) {
	if e.Stack != nil {
		return e.Stack, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: stack.Label}
	}
	return nil, &NotLoadedError{edge: "stack"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkDetectionCache) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workdetectioncache.FieldStatuses:
			values[i] = new([]byte)
		case workdetectioncache.FieldID, workdetectioncache.FieldStackID:
			values[i] = new(sql.NullString)
		case workdetectioncache.FieldComputedAt, workdetectioncache.FieldValidUntil:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkDetectionCache fields.
func (_m *WorkDetectionCache) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workdetectioncache.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workdetectioncache.FieldStackID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stack_id", values[i])
			} else if value.Valid {
				_m.StackID = value.String
			}
		case workdetectioncache.FieldStatuses:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field statuses", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Statuses); err != nil {
					return fmt.Errorf("unmarshal field statuses: %w", err)
				}
			}
		case workdetectioncache.FieldComputedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field computed_at", values[i])
			} else if value.Valid {
				_m.ComputedAt = value.Time
			}
		case workdetectioncache.FieldValidUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field valid_until", values[i])
			} else if value.Valid {
				_m.ValidUntil = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkDetectionCache.
// This includes values selected through modifiers, order, etc.
func (_m *WorkDetectionCache) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStack queries the "stack" edge of the WorkDetectionCache entity.
func (_m *WorkDetectionCache) QueryStack() *StackQuery {
	return NewWorkDetectionCacheClient(_m.config).QueryStack(_m)
}

// Update returns a builder for updating this WorkDetectionCache.
// Note that you need to call WorkDetectionCache.Unwrap() before calling this method if this WorkDetectionCache
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkDetectionCache) Update() *WorkDetectionCacheUpdateOne {
	return NewWorkDetectionCacheClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkDetectionCache entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkDetectionCache) Unwrap() *WorkDetectionCache {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkDetectionCache is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkDetectionCache) String() string {
	var builder strings.Builder
	builder.WriteString("WorkDetectionCache(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("stack_id=")
	builder.WriteString(_m.StackID)
	builder.WriteString(", ")
	builder.WriteString("statuses=")
	builder.WriteString(fmt.Sprintf("%v", _m.Statuses))
	builder.WriteString(", ")
	builder.WriteString("computed_at=")
	builder.WriteString(_m.ComputedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("valid_until=")
	builder.WriteString(_m.ValidUntil.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WorkDetectionCaches is a parsable slice of WorkDetectionCache.
type WorkDetectionCaches []*WorkDetectionCache
