// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hackfleet/hackfleet/ent/agenttrace"
	"github.com/hackfleet/hackfleet/ent/predicate"
)

// AgentTraceUpdate is the builder for updating AgentTrace entities.
type AgentTraceUpdate struct {
	config
	hooks    []Hook
	mutation *AgentTraceMutation
}

// Where appends a list predicates to the AgentTraceUpdate builder.
func (_u *AgentTraceUpdate) Where(ps ...predicate.AgentTrace) *AgentTraceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetThought sets the "thought" field.
func (_u *AgentTraceUpdate) SetThought(v string) *AgentTraceUpdate {
	_u.mutation.SetThought(v)
	return _u
}

// SetNillableThought sets the "thought" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillableThought(v *string) *AgentTraceUpdate {
	if v != nil {
		_u.SetThought(*v)
	}
	return _u
}

// ClearThought clears the value of the "thought" field.
func (_u *AgentTraceUpdate) ClearThought() *AgentTraceUpdate {
	_u.mutation.ClearThought()
	return _u
}

// SetAction sets the "action" field.
func (_u *AgentTraceUpdate) SetAction(v string) *AgentTraceUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillableAction(v *string) *AgentTraceUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *AgentTraceUpdate) SetResult(v string) *AgentTraceUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *AgentTraceUpdate) SetNillableResult(v *string) *AgentTraceUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *AgentTraceUpdate) ClearResult() *AgentTraceUpdate {
	_u.mutation.ClearResult()
	return _u
}

// Mutation returns the AgentTraceMutation object of the builder.
func (_u *AgentTraceUpdate) Mutation() *AgentTraceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentTraceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentTraceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentTraceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentTraceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentTraceUpdate) check() error {
	if _u.mutation.StackCleared() && len(_u.mutation.StackIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentTrace.stack"`)
	}
	return nil
}

func (_u *AgentTraceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agenttrace.Table, agenttrace.Columns, sqlgraph.NewFieldSpec(agenttrace.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Thought(); ok {
		_spec.SetField(agenttrace.FieldThought, field.TypeString, value)
	}
	if _u.mutation.ThoughtCleared() {
		_spec.ClearField(agenttrace.FieldThought, field.TypeString)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(agenttrace.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(agenttrace.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(agenttrace.FieldResult, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agenttrace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentTraceUpdateOne is the builder for updating a single AgentTrace entity.
type AgentTraceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentTraceMutation
}

// SetThought sets the "thought" field.
func (_u *AgentTraceUpdateOne) SetThought(v string) *AgentTraceUpdateOne {
	_u.mutation.SetThought(v)
	return _u
}

// SetNillableThought sets the "thought" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillableThought(v *string) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetThought(*v)
	}
	return _u
}

// ClearThought clears the value of the "thought" field.
func (_u *AgentTraceUpdateOne) ClearThought() *AgentTraceUpdateOne {
	_u.mutation.ClearThought()
	return _u
}

// SetAction sets the "action" field.
func (_u *AgentTraceUpdateOne) SetAction(v string) *AgentTraceUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillableAction(v *string) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *AgentTraceUpdateOne) SetResult(v string) *AgentTraceUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *AgentTraceUpdateOne) SetNillableResult(v *string) *AgentTraceUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *AgentTraceUpdateOne) ClearResult() *AgentTraceUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// Mutation returns the AgentTraceMutation object of the builder.
func (_u *AgentTraceUpdateOne) Mutation() *AgentTraceMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentTraceUpdate builder.
func (_u *AgentTraceUpdateOne) Where(ps ...predicate.AgentTrace) *AgentTraceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentTraceUpdateOne) Select(field string, fields ...string) *AgentTraceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentTrace entity.
func (_u *AgentTraceUpdateOne) Save(ctx context.Context) (*AgentTrace, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentTraceUpdateOne) SaveX(ctx context.Context) *AgentTrace {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentTraceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentTraceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentTraceUpdateOne) check() error {
	if _u.mutation.StackCleared() && len(_u.mutation.StackIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentTrace.stack"`)
	}
	return nil
}

func (_u *AgentTraceUpdateOne) sqlSave(ctx context.Context) (_node *AgentTrace, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agenttrace.Table, agenttrace.Columns, sqlgraph.NewFieldSpec(agenttrace.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentTrace.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agenttrace.FieldID)
		for _, f := range fields {
			if !agenttrace.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agenttrace.FieldID {
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
	if value, ok := _u.mutation.Thought(); ok {
		_spec.SetField(agenttrace.FieldThought, field.TypeString, value)
	}
	if _u.mutation.ThoughtCleared() {
		_spec.ClearField(agenttrace.FieldThought, field.TypeString)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(agenttrace.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(agenttrace.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(agenttrace.FieldResult, field.TypeString)
	}
	_node = &AgentTrace{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agenttrace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
