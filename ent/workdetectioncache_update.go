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
	"github.com/hackfleet/hackfleet/ent/predicate"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/ent/workdetectioncache"
	"github.com/hackfleet/hackfleet/pkg/models"
)

// WorkDetectionCacheUpdate is the builder for updating WorkDetectionCache entities.
type WorkDetectionCacheUpdate struct {
	config
	hooks    []Hook
	mutation *WorkDetectionCacheMutation
}

// Where appends a list predicates to the WorkDetectionCacheUpdate builder.
func (_u *WorkDetectionCacheUpdate) Where(ps ...predicate.WorkDetectionCache) *WorkDetectionCacheUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStackID sets the "stack_id" field.
func (_u *WorkDetectionCacheUpdate) SetStackID(v string) *WorkDetectionCacheUpdate {
	_u.mutation.SetStackID(v)
	return _u
}

// SetNillableStackID sets the "stack_id" field if the given value is not nil.
func (_u *WorkDetectionCacheUpdate) SetNillableStackID(v *string) *WorkDetectionCacheUpdate {
	if v != nil {
		_u.SetStackID(*v)
	}
	return _u
}

// SetStatuses sets the "statuses" field.
func (_u *WorkDetectionCacheUpdate) SetStatuses(v models.WorkStatus) *WorkDetectionCacheUpdate {
	_u.mutation.SetStatuses(v)
	return _u
}

// SetNillableStatuses sets the "statuses" field if the given value is not nil.
func (_u *WorkDetectionCacheUpdate) SetNillableStatuses(v *models.WorkStatus) *WorkDetectionCacheUpdate {
	if v != nil {
		_u.SetStatuses(*v)
	}
	return _u
}

// SetComputedAt sets the "computed_at" field.
func (_u *WorkDetectionCacheUpdate) SetComputedAt(v time.Time) *WorkDetectionCacheUpdate {
	_u.mutation.SetComputedAt(v)
	return _u
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_u *WorkDetectionCacheUpdate) SetNillableComputedAt(v *time.Time) *WorkDetectionCacheUpdate {
	if v != nil {
		_u.SetComputedAt(*v)
	}
	return _u
}

// SetValidUntil sets the "valid_until" field.
func (_u *WorkDetectionCacheUpdate) SetValidUntil(v time.Time) *WorkDetectionCacheUpdate {
	_u.mutation.SetValidUntil(v)
	return _u
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_u *WorkDetectionCacheUpdate) SetNillableValidUntil(v *time.Time) *WorkDetectionCacheUpdate {
	if v != nil {
		_u.SetValidUntil(*v)
	}
	return _u
}

// SetStack sets the "stack" edge to the Stack entity.
func (_u *WorkDetectionCacheUpdate) SetStack(v *Stack) *WorkDetectionCacheUpdate {
	return _u.SetStackID(v.ID)
}

// Mutation returns the WorkDetectionCacheMutation object of the builder.
func (_u *WorkDetectionCacheUpdate) Mutation() *WorkDetectionCacheMutation {
	return _u.mutation
}

// ClearStack clears the "stack" edge to the Stack entity.
func (_u *WorkDetectionCacheUpdate) ClearStack() *WorkDetectionCacheUpdate {
	_u.mutation.ClearStack()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkDetectionCacheUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkDetectionCacheUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkDetectionCacheUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkDetectionCacheUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkDetectionCacheUpdate) check() error {
	if _u.mutation.StackCleared() && len(_u.mutation.StackIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkDetectionCache.stack"`)
	}
	return nil
}

func (_u *WorkDetectionCacheUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workdetectioncache.Table, workdetectioncache.Columns, sqlgraph.NewFieldSpec(workdetectioncache.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Statuses(); ok {
		_spec.SetField(workdetectioncache.FieldStatuses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ComputedAt(); ok {
		_spec.SetField(workdetectioncache.FieldComputedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidUntil(); ok {
		_spec.SetField(workdetectioncache.FieldValidUntil, field.TypeTime, value)
	}
	if _u.mutation.StackCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   workdetectioncache.StackTable,
			Columns: []string{workdetectioncache.StackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stack.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StackIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   workdetectioncache.StackTable,
			Columns: []string{workdetectioncache.StackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stack.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workdetectioncache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkDetectionCacheUpdateOne is the builder for updating a single WorkDetectionCache entity.
type WorkDetectionCacheUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkDetectionCacheMutation
}

// SetStackID sets the "stack_id" field.
func (_u *WorkDetectionCacheUpdateOne) SetStackID(v string) *WorkDetectionCacheUpdateOne {
	_u.mutation.SetStackID(v)
	return _u
}

// SetNillableStackID sets the "stack_id" field if the given value is not nil.
func (_u *WorkDetectionCacheUpdateOne) SetNillableStackID(v *string) *WorkDetectionCacheUpdateOne {
	if v != nil {
		_u.SetStackID(*v)
	}
	return _u
}

// SetStatuses sets the "statuses" field.
func (_u *WorkDetectionCacheUpdateOne) SetStatuses(v models.WorkStatus) *WorkDetectionCacheUpdateOne {
	_u.mutation.SetStatuses(v)
	return _u
}

// SetNillableStatuses sets the "statuses" field if the given value is not nil.
func (_u *WorkDetectionCacheUpdateOne) SetNillableStatuses(v *models.WorkStatus) *WorkDetectionCacheUpdateOne {
	if v != nil {
		_u.SetStatuses(*v)
	}
	return _u
}

// SetComputedAt sets the "computed_at" field.
func (_u *WorkDetectionCacheUpdateOne) SetComputedAt(v time.Time) *WorkDetectionCacheUpdateOne {
	_u.mutation.SetComputedAt(v)
	return _u
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_u *WorkDetectionCacheUpdateOne) SetNillableComputedAt(v *time.Time) *WorkDetectionCacheUpdateOne {
	if v != nil {
		_u.SetComputedAt(*v)
	}
	return _u
}

// SetValidUntil sets the "valid_until" field.
func (_u *WorkDetectionCacheUpdateOne) SetValidUntil(v time.Time) *WorkDetectionCacheUpdateOne {
	_u.mutation.SetValidUntil(v)
	return _u
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_u *WorkDetectionCacheUpdateOne) SetNillableValidUntil(v *time.Time) *WorkDetectionCacheUpdateOne {
	if v != nil {
		_u.SetValidUntil(*v)
	}
	return _u
}

// SetStack sets the "stack" edge to the Stack entity.
func (_u *WorkDetectionCacheUpdateOne) SetStack(v *Stack) *WorkDetectionCacheUpdateOne {
	return _u.SetStackID(v.ID)
}

// Mutation returns the WorkDetectionCacheMutation object of the builder.
func (_u *WorkDetectionCacheUpdateOne) Mutation() *WorkDetectionCacheMutation {
	return _u.mutation
}

// ClearStack clears the "stack" edge to the Stack entity.
func (_u *WorkDetectionCacheUpdateOne) ClearStack() *WorkDetectionCacheUpdateOne {
	_u.mutation.ClearStack()
	return _u
}

// Where appends a list predicates to the WorkDetectionCacheUpdate builder.
func (_u *WorkDetectionCacheUpdateOne) Where(ps ...predicate.WorkDetectionCache) *WorkDetectionCacheUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkDetectionCacheUpdateOne) Select(field string, fields ...string) *WorkDetectionCacheUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkDetectionCache entity.
func (_u *WorkDetectionCacheUpdateOne) Save(ctx context.Context) (*WorkDetectionCache, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkDetectionCacheUpdateOne) SaveX(ctx context.Context) *WorkDetectionCache {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkDetectionCacheUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkDetectionCacheUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkDetectionCacheUpdateOne) check() error {
	if _u.mutation.StackCleared() && len(_u.mutation.StackIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkDetectionCache.stack"`)
	}
	return nil
}

func (_u *WorkDetectionCacheUpdateOne) sqlSave(ctx context.Context) (_node *WorkDetectionCache, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workdetectioncache.Table, workdetectioncache.Columns, sqlgraph.NewFieldSpec(workdetectioncache.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkDetectionCache.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workdetectioncache.FieldID)
		for _, f := range fields {
			if !workdetectioncache.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workdetectioncache.FieldID {
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
	if value, ok := _u.mutation.Statuses(); ok {
		_spec.SetField(workdetectioncache.FieldStatuses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ComputedAt(); ok {
		_spec.SetField(workdetectioncache.FieldComputedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ValidUntil(); ok {
		_spec.SetField(workdetectioncache.FieldValidUntil, field.TypeTime, value)
	}
	if _u.mutation.StackCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   workdetectioncache.StackTable,
			Columns: []string{workdetectioncache.StackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stack.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StackIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   workdetectioncache.StackTable,
			Columns: []string{workdetectioncache.StackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stack.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkDetectionCache{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workdetectioncache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
