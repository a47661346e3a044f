// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hackfleet/hackfleet/ent/executiongraph"
	"github.com/hackfleet/hackfleet/ent/predicate"
	"github.com/hackfleet/hackfleet/pkg/models"
)

// ExecutionGraphUpdate is the builder for updating ExecutionGraph entities.
type ExecutionGraphUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionGraphMutation
}

// Where appends a list predicates to the ExecutionGraphUpdate builder.
func (_u *ExecutionGraphUpdate) Where(ps ...predicate.ExecutionGraph) *ExecutionGraphUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGraph sets the "graph" field.
func (_u *ExecutionGraphUpdate) SetGraph(v models.GraphSnapshot) *ExecutionGraphUpdate {
	_u.mutation.SetGraph(v)
	return _u
}

// SetNillableGraph sets the "graph" field if the given value is not nil.
func (_u *ExecutionGraphUpdate) SetNillableGraph(v *models.GraphSnapshot) *ExecutionGraphUpdate {
	if v != nil {
		_u.SetGraph(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionGraphUpdate) SetCompletedAt(v time.Time) *ExecutionGraphUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionGraphUpdate) SetNillableCompletedAt(v *time.Time) *ExecutionGraphUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionGraphUpdate) ClearCompletedAt() *ExecutionGraphUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ExecutionGraphMutation object of the builder.
func (_u *ExecutionGraphUpdate) Mutation() *ExecutionGraphMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionGraphUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionGraphUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionGraphUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionGraphUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionGraphUpdate) check() error {
	if _u.mutation.StackCleared() && len(_u.mutation.StackIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionGraph.stack"`)
	}
	return nil
}

func (_u *ExecutionGraphUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executiongraph.Table, executiongraph.Columns, sqlgraph.NewFieldSpec(executiongraph.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Graph(); ok {
		_spec.SetField(executiongraph.FieldGraph, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(executiongraph.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(executiongraph.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executiongraph.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionGraphUpdateOne is the builder for updating a single ExecutionGraph entity.
type ExecutionGraphUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionGraphMutation
}

// SetGraph sets the "graph" field.
func (_u *ExecutionGraphUpdateOne) SetGraph(v models.GraphSnapshot) *ExecutionGraphUpdateOne {
	_u.mutation.SetGraph(v)
	return _u
}

// SetNillableGraph sets the "graph" field if the given value is not nil.
func (_u *ExecutionGraphUpdateOne) SetNillableGraph(v *models.GraphSnapshot) *ExecutionGraphUpdateOne {
	if v != nil {
		_u.SetGraph(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionGraphUpdateOne) SetCompletedAt(v time.Time) *ExecutionGraphUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionGraphUpdateOne) SetNillableCompletedAt(v *time.Time) *ExecutionGraphUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionGraphUpdateOne) ClearCompletedAt() *ExecutionGraphUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ExecutionGraphMutation object of the builder.
func (_u *ExecutionGraphUpdateOne) Mutation() *ExecutionGraphMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExecutionGraphUpdate builder.
func (_u *ExecutionGraphUpdateOne) Where(ps ...predicate.ExecutionGraph) *ExecutionGraphUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionGraphUpdateOne) Select(field string, fields ...string) *ExecutionGraphUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutionGraph entity.
func (_u *ExecutionGraphUpdateOne) Save(ctx context.Context) (*ExecutionGraph, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionGraphUpdateOne) SaveX(ctx context.Context) *ExecutionGraph {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionGraphUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionGraphUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionGraphUpdateOne) check() error {
	if _u.mutation.StackCleared() && len(_u.mutation.StackIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionGraph.stack"`)
	}
	return nil
}

func (_u *ExecutionGraphUpdateOne) sqlSave(ctx context.Context) (_node *ExecutionGraph, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executiongraph.Table, executiongraph.Columns, sqlgraph.NewFieldSpec(executiongraph.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutionGraph.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executiongraph.FieldID)
		for _, f := range fields {
			if !executiongraph.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executiongraph.FieldID {
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
	if value, ok := _u.mutation.Graph(); ok {
		_spec.SetField(executiongraph.FieldGraph, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(executiongraph.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(executiongraph.FieldCompletedAt, field.TypeTime)
	}
	_node = &ExecutionGraph{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executiongraph.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
