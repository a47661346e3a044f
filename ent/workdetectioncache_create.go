// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/ent/workdetectioncache"
	"github.com/hackfleet/hackfleet/pkg/models"
)

// WorkDetectionCacheCreate is the builder for creating a WorkDetectionCache entity.
type WorkDetectionCacheCreate struct {
	config
	mutation *WorkDetectionCacheMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStackID sets the "stack_id" field.
func (_c *WorkDetectionCacheCreate) SetStackID(v string) *WorkDetectionCacheCreate {
	_c.mutation.SetStackID(v)
	return _c
}

// SetStatuses sets the "statuses" field.
func (_c *WorkDetectionCacheCreate) SetStatuses(v models.WorkStatus) *WorkDetectionCacheCreate {
	_c.mutation.SetStatuses(v)
	return _c
}

// SetComputedAt sets the "computed_at" field.
func (_c *WorkDetectionCacheCreate) SetComputedAt(v time.Time) *WorkDetectionCacheCreate {
	_c.mutation.SetComputedAt(v)
	return _c
}

// SetValidUntil sets the "valid_until" field.
func (_c *WorkDetectionCacheCreate) SetValidUntil(v time.Time) *WorkDetectionCacheCreate {
	_c.mutation.SetValidUntil(v)
	return _c
}

// SetID sets the "id" field.
func (_c *WorkDetectionCacheCreate) SetID(v string) *WorkDetectionCacheCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStack sets the "stack" edge to the Stack entity.
func (_c *WorkDetectionCacheCreate) SetStack(v *Stack) *WorkDetectionCacheCreate {
	return _c.SetStackID(v.ID)
}

// Mutation returns the WorkDetectionCacheMutation object of the builder.
func (_c *WorkDetectionCacheCreate) Mutation() *WorkDetectionCacheMutation {
	return _c.mutation
}

// Save creates the WorkDetectionCache in the database.
func (_c *WorkDetectionCacheCreate) Save(ctx context.Context) (*WorkDetectionCache, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkDetectionCacheCreate) SaveX(ctx context.Context) *WorkDetectionCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkDetectionCacheCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkDetectionCacheCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkDetectionCacheCreate) check() error {
	if _, ok := _c.mutation.StackID(); !ok {
		return &ValidationError{Name: "stack_id", err: errors.New(`ent: missing required field "WorkDetectionCache.stack_id"`)}
	}
	if _, ok := _c.mutation.Statuses(); !ok {
		return &ValidationError{Name: "statuses", err: errors.New(`ent: missing required field "WorkDetectionCache.statuses"`)}
	}
	if _, ok := _c.mutation.ComputedAt(); !ok {
		return &ValidationError{Name: "computed_at", err: errors.New(`ent: missing required field "WorkDetectionCache.computed_at"`)}
	}
	if _, ok := _c.mutation.ValidUntil(); !ok {
		return &ValidationError{Name: "valid_until", err: errors.New(`ent: missing required field "WorkDetectionCache.valid_until"`)}
	}
	if len(_c.mutation.StackIDs()) == 0 {
		return &ValidationError{Name: "stack", err: errors.New(`ent: missing required edge "WorkDetectionCache.stack"`)}
	}
	return nil
}

func (_c *WorkDetectionCacheCreate) sqlSave(ctx context.Context) (*WorkDetectionCache, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected WorkDetectionCache.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkDetectionCacheCreate) createSpec() (*WorkDetectionCache, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkDetectionCache{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workdetectioncache.Table, sqlgraph.NewFieldSpec(workdetectioncache.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Statuses(); ok {
		_spec.SetField(workdetectioncache.FieldStatuses, field.TypeJSON, value)
		_node.Statuses = value
	}
	if value, ok := _c.mutation.ComputedAt(); ok {
		_spec.SetField(workdetectioncache.FieldComputedAt, field.TypeTime, value)
		_node.ComputedAt = value
	}
	if value, ok := _c.mutation.ValidUntil(); ok {
		_spec.SetField(workdetectioncache.FieldValidUntil, field.TypeTime, value)
		_node.ValidUntil = value
	}
	if nodes := _c.mutation.StackIDs(); len(nodes) > 0 {
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
		_node.StackID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkDetectionCache.Create().
//		SetStackID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkDetectionCacheUpsert) {
//			SetStackID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkDetectionCacheCreate) OnConflict(opts ...sql.ConflictOption) *WorkDetectionCacheUpsertOne {
	_c.conflict = opts
	return &WorkDetectionCacheUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkDetectionCache.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkDetectionCacheCreate) OnConflictColumns(columns ...string) *WorkDetectionCacheUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkDetectionCacheUpsertOne{
		create: _c,
	}
}

type (
	// WorkDetectionCacheUpsertOne is the builder for "upsert"-ing
	//  one WorkDetectionCache node.
	WorkDetectionCacheUpsertOne struct {
		create *WorkDetectionCacheCreate
	}

	// WorkDetectionCacheUpsert is the "OnConflict" setter.
	WorkDetectionCacheUpsert struct {
		*sql.UpdateSet
	}
)

// SetStackID sets the "stack_id" field.
func (u *WorkDetectionCacheUpsert) SetStackID(v string) *WorkDetectionCacheUpsert {
	u.Set(workdetectioncache.FieldStackID, v)
	return u
}

// UpdateStackID sets the "stack_id" field to the value that was provided on create.
func (u *WorkDetectionCacheUpsert) UpdateStackID() *WorkDetectionCacheUpsert {
	u.SetExcluded(workdetectioncache.FieldStackID)
	return u
}

// SetStatuses sets the "statuses" field.
func (u *WorkDetectionCacheUpsert) SetStatuses(v models.WorkStatus) *WorkDetectionCacheUpsert {
	u.Set(workdetectioncache.FieldStatuses, v)
	return u
}

// UpdateStatuses sets the "statuses" field to the value that was provided on create.
func (u *WorkDetectionCacheUpsert) UpdateStatuses() *WorkDetectionCacheUpsert {
	u.SetExcluded(workdetectioncache.FieldStatuses)
	return u
}

// SetComputedAt sets the "computed_at" field.
func (u *WorkDetectionCacheUpsert) SetComputedAt(v time.Time) *WorkDetectionCacheUpsert {
	u.Set(workdetectioncache.FieldComputedAt, v)
	return u
}

// UpdateComputedAt sets the "computed_at" field to the value that was provided on create.
func (u *WorkDetectionCacheUpsert) UpdateComputedAt() *WorkDetectionCacheUpsert {
	u.SetExcluded(workdetectioncache.FieldComputedAt)
	return u
}

// SetValidUntil sets the "valid_until" field.
func (u *WorkDetectionCacheUpsert) SetValidUntil(v time.Time) *WorkDetectionCacheUpsert {
	u.Set(workdetectioncache.FieldValidUntil, v)
	return u
}

// UpdateValidUntil sets the "valid_until" field to the value that was provided on create.
func (u *WorkDetectionCacheUpsert) UpdateValidUntil() *WorkDetectionCacheUpsert {
	u.SetExcluded(workdetectioncache.FieldValidUntil)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WorkDetectionCache.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workdetectioncache.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkDetectionCacheUpsertOne) UpdateNewValues() *WorkDetectionCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(workdetectioncache.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkDetectionCache.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WorkDetectionCacheUpsertOne) Ignore() *WorkDetectionCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkDetectionCacheUpsertOne) DoNothing() *WorkDetectionCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkDetectionCacheCreate.OnConflict
// documentation for more info.
func (u *WorkDetectionCacheUpsertOne) Update(set func(*WorkDetectionCacheUpsert)) *WorkDetectionCacheUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkDetectionCacheUpsert{UpdateSet: update})
	}))
	return u
}

// SetStackID sets the "stack_id" field.
func (u *WorkDetectionCacheUpsertOne) SetStackID(v string) *WorkDetectionCacheUpsertOne {
	return u.Update(func(s *WorkDetectionCacheUpsert) {
		s.SetStackID(v)
	})
}

// UpdateStackID sets the "stack_id" field to the value that was provided on create.
func (u *WorkDetectionCacheUpsertOne) UpdateStackID() *WorkDetectionCacheUpsertOne {
	return u.Update(func(s *WorkDetectionCacheUpsert) {
		s.UpdateStackID()
	})
}

// SetStatuses sets the "statuses" field.
func (u *WorkDetectionCacheUpsertOne) SetStatuses(v models.WorkStatus) *WorkDetectionCacheUpsertOne {
	return u.Update(func(s *WorkDetectionCacheUpsert) {
		s.SetStatuses(v)
	})
}

// UpdateStatuses sets the "statuses" field to the value that was provided on create.
func (u *WorkDetectionCacheUpsertOne) UpdateStatuses() *WorkDetectionCacheUpsertOne {
	return u.Update(func(s *WorkDetectionCacheUpsert) {
		s.UpdateStatuses()
	})
}

// SetComputedAt sets the "computed_at" field.
func (u *WorkDetectionCacheUpsertOne) SetComputedAt(v time.Time) *WorkDetectionCacheUpsertOne {
	return u.Update(func(s *WorkDetectionCacheUpsert) {
		s.SetComputedAt(v)
	})
}

// UpdateComputedAt sets the "computed_at" field to the value that was provided on create.
func (u *WorkDetectionCacheUpsertOne) UpdateComputedAt() *WorkDetectionCacheUpsertOne {
	return u.Update(func(s *WorkDetectionCacheUpsert) {
		s.UpdateComputedAt()
	})
}

// SetValidUntil sets the "valid_until" field.
func (u *WorkDetectionCacheUpsertOne) SetValidUntil(v time.Time) *WorkDetectionCacheUpsertOne {
	return u.Update(func(s *WorkDetectionCacheUpsert) {
		s.SetValidUntil(v)
	})
}

// UpdateValidUntil sets the "valid_until" field to the value that was provided on create.
func (u *WorkDetectionCacheUpsertOne) UpdateValidUntil() *WorkDetectionCacheUpsertOne {
	return u.Update(func(s *WorkDetectionCacheUpsert) {
		s.UpdateValidUntil()
	})
}

// Exec executes the query.
func (u *WorkDetectionCacheUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkDetectionCacheCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkDetectionCacheUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WorkDetectionCacheUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WorkDetectionCacheUpsertOne.ID is not supported by MySQL driver. Use WorkDetectionCacheUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkDetectionCacheUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkDetectionCacheCreateBulk is the builder for creating many WorkDetectionCache entities in bulk.
type WorkDetectionCacheCreateBulk struct {
	config
	err      error
	builders []*WorkDetectionCacheCreate
	conflict []sql.ConflictOption
}

// Save creates the WorkDetectionCache entities in the database.
func (_c *WorkDetectionCacheCreateBulk) Save(ctx context.Context) ([]*WorkDetectionCache, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkDetectionCache, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkDetectionCacheMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WorkDetectionCacheCreateBulk) SaveX(ctx context.Context) []*WorkDetectionCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkDetectionCacheCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkDetectionCacheCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkDetectionCache.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkDetectionCacheUpsert) {
//			SetStackID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkDetectionCacheCreateBulk) OnConflict(opts ...sql.ConflictOption) *WorkDetectionCacheUpsertBulk {
	_c.conflict = opts
	return &WorkDetectionCacheUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkDetectionCache.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkDetectionCacheCreateBulk) OnConflictColumns(columns ...string) *WorkDetectionCacheUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkDetectionCacheUpsertBulk{
		create: _c,
	}
}

// WorkDetectionCacheUpsertBulk is the builder for "upsert"-ing
// a bulk of WorkDetectionCache nodes.
type WorkDetectionCacheUpsertBulk struct {
	create *WorkDetectionCacheCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WorkDetectionCache.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workdetectioncache.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkDetectionCacheUpsertBulk) UpdateNewValues() *WorkDetectionCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(workdetectioncache.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkDetectionCache.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WorkDetectionCacheUpsertBulk) Ignore() *WorkDetectionCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkDetectionCacheUpsertBulk) DoNothing() *WorkDetectionCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkDetectionCacheCreateBulk.OnConflict
// documentation for more info.
func (u *WorkDetectionCacheUpsertBulk) Update(set func(*WorkDetectionCacheUpsert)) *WorkDetectionCacheUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkDetectionCacheUpsert{UpdateSet: update})
	}))
	return u
}

// SetStackID sets the "stack_id" field.
func (u *WorkDetectionCacheUpsertBulk) SetStackID(v string) *WorkDetectionCacheUpsertBulk {
	return u.Update(func(s *WorkDetectionCacheUpsert) {
		s.SetStackID(v)
	})
}

// UpdateStackID sets the "stack_id" field to the value that was provided on create.
func (u *WorkDetectionCacheUpsertBulk) UpdateStackID() *WorkDetectionCacheUpsertBulk {
	return u.Update(func(s *WorkDetectionCacheUpsert) {
		s.UpdateStackID()
	})
}

// SetStatuses sets the "statuses" field.
func (u *WorkDetectionCacheUpsertBulk) SetStatuses(v models.WorkStatus) *WorkDetectionCacheUpsertBulk {
	return u.Update(func(s *WorkDetectionCacheUpsert) {
		s.SetStatuses(v)
	})
}

// UpdateStatuses sets the "statuses" field to the value that was provided on create.
func (u *WorkDetectionCacheUpsertBulk) UpdateStatuses() *WorkDetectionCacheUpsertBulk {
	return u.Update(func(s *WorkDetectionCacheUpsert) {
		s.UpdateStatuses()
	})
}

// SetComputedAt sets the "computed_at" field.
func (u *WorkDetectionCacheUpsertBulk) SetComputedAt(v time.Time) *WorkDetectionCacheUpsertBulk {
	return u.Update(func(s *WorkDetectionCacheUpsert) {
		s.SetComputedAt(v)
	})
}

// UpdateComputedAt sets the "computed_at" field to the value that was provided on create.
func (u *WorkDetectionCacheUpsertBulk) UpdateComputedAt() *WorkDetectionCacheUpsertBulk {
	return u.Update(func(s *WorkDetectionCacheUpsert) {
		s.UpdateComputedAt()
	})
}

// SetValidUntil sets the "valid_until" field.
func (u *WorkDetectionCacheUpsertBulk) SetValidUntil(v time.Time) *WorkDetectionCacheUpsertBulk {
	return u.Update(func(s *WorkDetectionCacheUpsert) {
		s.SetValidUntil(v)
	})
}

// UpdateValidUntil sets the "valid_until" field to the value that was provided on create.
func (u *WorkDetectionCacheUpsertBulk) UpdateValidUntil() *WorkDetectionCacheUpsertBulk {
	return u.Update(func(s *WorkDetectionCacheUpsert) {
		s.UpdateValidUntil()
	})
}

// Exec executes the query.
func (u *WorkDetectionCacheUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WorkDetectionCacheCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkDetectionCacheCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkDetectionCacheUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
