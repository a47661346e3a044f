// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/hackfleet/hackfleet/ent/agentstate"
	"github.com/hackfleet/hackfleet/ent/predicate"
	"github.com/hackfleet/hackfleet/pkg/models"
)

// AgentStateUpdate is the builder for updating AgentState entities.
type AgentStateUpdate struct {
	config
	hooks    []Hook
	mutation *AgentStateMutation
}

// Where appends a list predicates to the AgentStateUpdate builder.
func (_u *AgentStateUpdate) Where(ps ...predicate.AgentState) *AgentStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMemory sets the "memory" field.
func (_u *AgentStateUpdate) SetMemory(v models.AgentMemory) *AgentStateUpdate {
	_u.mutation.SetMemory(v)
	return _u
}

// SetNillableMemory sets the "memory" field if the given value is not nil.
func (_u *AgentStateUpdate) SetNillableMemory(v *models.AgentMemory) *AgentStateUpdate {
	if v != nil {
		_u.SetMemory(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *AgentStateUpdate) SetContext(v []models.Thought) *AgentStateUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// AppendContext appends value to the "context" field.
func (_u *AgentStateUpdate) AppendContext(v []models.Thought) *AgentStateUpdate {
	_u.mutation.AppendContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *AgentStateUpdate) ClearContext() *AgentStateUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentStateUpdate) SetUpdatedAt(v time.Time) *AgentStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentStateMutation object of the builder.
func (_u *AgentStateUpdate) Mutation() *AgentStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentStateUpdate) check() error {
	if _u.mutation.StackCleared() && len(_u.mutation.StackIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentState.stack"`)
	}
	return nil
}

func (_u *AgentStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentstate.Table, agentstate.Columns, sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Memory(); ok {
		_spec.SetField(agentstate.FieldMemory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(agentstate.FieldContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContext(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentstate.FieldContext, value)
		})
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(agentstate.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentStateUpdateOne is the builder for updating a single AgentState entity.
type AgentStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentStateMutation
}

// SetMemory sets the "memory" field.
func (_u *AgentStateUpdateOne) SetMemory(v models.AgentMemory) *AgentStateUpdateOne {
	_u.mutation.SetMemory(v)
	return _u
}

// SetNillableMemory sets the "memory" field if the given value is not nil.
func (_u *AgentStateUpdateOne) SetNillableMemory(v *models.AgentMemory) *AgentStateUpdateOne {
	if v != nil {
		_u.SetMemory(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *AgentStateUpdateOne) SetContext(v []models.Thought) *AgentStateUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// AppendContext appends value to the "context" field.
func (_u *AgentStateUpdateOne) AppendContext(v []models.Thought) *AgentStateUpdateOne {
	_u.mutation.AppendContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *AgentStateUpdateOne) ClearContext() *AgentStateUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentStateUpdateOne) SetUpdatedAt(v time.Time) *AgentStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentStateMutation object of the builder.
func (_u *AgentStateUpdateOne) Mutation() *AgentStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentStateUpdate builder.
func (_u *AgentStateUpdateOne) Where(ps ...predicate.AgentState) *AgentStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentStateUpdateOne) Select(field string, fields ...string) *AgentStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentState entity.
func (_u *AgentStateUpdateOne) Save(ctx context.Context) (*AgentState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentStateUpdateOne) SaveX(ctx context.Context) *AgentState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentStateUpdateOne) check() error {
	if _u.mutation.StackCleared() && len(_u.mutation.StackIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentState.stack"`)
	}
	return nil
}

func (_u *AgentStateUpdateOne) sqlSave(ctx context.Context) (_node *AgentState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentstate.Table, agentstate.Columns, sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentstate.FieldID)
		for _, f := range fields {
			if !agentstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentstate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Memory(); ok {
		_spec.SetField(agentstate.FieldMemory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(agentstate.FieldContext, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContext(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentstate.FieldContext, value)
		})
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(agentstate.FieldContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AgentState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
