// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hackfleet/hackfleet/ent/predicate"
	"github.com/hackfleet/hackfleet/ent/workdetectioncache"
)

// WorkDetectionCacheDelete is the builder for deleting a WorkDetectionCache entity.
type WorkDetectionCacheDelete struct {
	config
	hooks    []Hook
	mutation *WorkDetectionCacheMutation
}

// Where appends a list predicates to the WorkDetectionCacheDelete builder.
func (_d *WorkDetectionCacheDelete) Where(ps ...predicate.WorkDetectionCache) *WorkDetectionCacheDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *WorkDetectionCacheDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WorkDetectionCacheDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *WorkDetectionCacheDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(workdetectioncache.Table, sqlgraph.NewFieldSpec(workdetectioncache.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// WorkDetectionCacheDeleteOne is the builder for deleting a single WorkDetectionCache entity.
type WorkDetectionCacheDeleteOne struct {
	_d *WorkDetectionCacheDelete
}

// Where appends a list predicates to the WorkDetectionCacheDelete builder.
func (_d *WorkDetectionCacheDeleteOne) Where(ps ...predicate.WorkDetectionCache) *WorkDetectionCacheDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *WorkDetectionCacheDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{workdetectioncache.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *WorkDetectionCacheDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
