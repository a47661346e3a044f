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
	"github.com/hackfleet/hackfleet/ent/executiongraph"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/pkg/models"
)

// ExecutionGraphCreate is the builder for creating a ExecutionGraph entity.
type ExecutionGraphCreate struct {
	config
	mutation *ExecutionGraphMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStackID sets the "stack_id" field.
func (_c *ExecutionGraphCreate) SetStackID(v string) *ExecutionGraphCreate {
	_c.mutation.SetStackID(v)
	return _c
}

// SetOrchestratorExecutionID sets the "orchestrator_execution_id" field.
func (_c *ExecutionGraphCreate) SetOrchestratorExecutionID(v string) *ExecutionGraphCreate {
	_c.mutation.SetOrchestratorExecutionID(v)
	return _c
}

// SetGraph sets the "graph" field.
func (_c *ExecutionGraphCreate) SetGraph(v models.GraphSnapshot) *ExecutionGraphCreate {
	_c.mutation.SetGraph(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExecutionGraphCreate) SetCreatedAt(v time.Time) *ExecutionGraphCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExecutionGraphCreate) SetNillableCreatedAt(v *time.Time) *ExecutionGraphCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ExecutionGraphCreate) SetCompletedAt(v time.Time) *ExecutionGraphCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ExecutionGraphCreate) SetNillableCompletedAt(v *time.Time) *ExecutionGraphCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionGraphCreate) SetID(v string) *ExecutionGraphCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStack sets the "stack" edge to the Stack entity.
func (_c *ExecutionGraphCreate) SetStack(v *Stack) *ExecutionGraphCreate {
	return _c.SetStackID(v.ID)
}

// Mutation returns the ExecutionGraphMutation object of the builder.
func (_c *ExecutionGraphCreate) Mutation() *ExecutionGraphMutation {
	return _c.mutation
}

// Save creates the ExecutionGraph in the database.
func (_c *ExecutionGraphCreate) Save(ctx context.Context) (*ExecutionGraph, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionGraphCreate) SaveX(ctx context.Context) *ExecutionGraph {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionGraphCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionGraphCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionGraphCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := executiongraph.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionGraphCreate) check() error {
	if _, ok := _c.mutation.StackID(); !ok {
		return &ValidationError{Name: "stack_id", err: errors.New(`ent: missing required field "ExecutionGraph.stack_id"`)}
	}
	if _, ok := _c.mutation.OrchestratorExecutionID(); !ok {
		return &ValidationError{Name: "orchestrator_execution_id", err: errors.New(`ent: missing required field "ExecutionGraph.orchestrator_execution_id"`)}
	}
	if _, ok := _c.mutation.Graph(); !ok {
		return &ValidationError{Name: "graph", err: errors.New(`ent: missing required field "ExecutionGraph.graph"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExecutionGraph.created_at"`)}
	}
	if len(_c.mutation.StackIDs()) == 0 {
		return &ValidationError{Name: "stack", err: errors.New(`ent: missing required edge "ExecutionGraph.stack"`)}
	}
	return nil
}

func (_c *ExecutionGraphCreate) sqlSave(ctx context.Context) (*ExecutionGraph, error) {
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
			return nil, fmt.Errorf("unexpected ExecutionGraph.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionGraphCreate) createSpec() (*ExecutionGraph, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionGraph{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executiongraph.Table, sqlgraph.NewFieldSpec(executiongraph.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrchestratorExecutionID(); ok {
		_spec.SetField(executiongraph.FieldOrchestratorExecutionID, field.TypeString, value)
		_node.OrchestratorExecutionID = value
	}
	if value, ok := _c.mutation.Graph(); ok {
		_spec.SetField(executiongraph.FieldGraph, field.TypeJSON, value)
		_node.Graph = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(executiongraph.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(executiongraph.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.StackIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   executiongraph.StackTable,
			Columns: []string{executiongraph.StackColumn},
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
//	client.ExecutionGraph.Create().
//		SetStackID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExecutionGraphUpsert) {
//			SetStackID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExecutionGraphCreate) OnConflict(opts ...sql.ConflictOption) *ExecutionGraphUpsertOne {
	_c.conflict = opts
	return &ExecutionGraphUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExecutionGraph.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExecutionGraphCreate) OnConflictColumns(columns ...string) *ExecutionGraphUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExecutionGraphUpsertOne{
		create: _c,
	}
}

type (
	// ExecutionGraphUpsertOne is the builder for "upsert"-ing
	//  one ExecutionGraph node.
	ExecutionGraphUpsertOne struct {
		create *ExecutionGraphCreate
	}

	// ExecutionGraphUpsert is the "OnConflict" setter.
	ExecutionGraphUpsert struct {
		*sql.UpdateSet
	}
)

// SetGraph sets the "graph" field.
func (u *ExecutionGraphUpsert) SetGraph(v models.GraphSnapshot) *ExecutionGraphUpsert {
	u.Set(executiongraph.FieldGraph, v)
	return u
}

// UpdateGraph sets the "graph" field to the value that was provided on create.
func (u *ExecutionGraphUpsert) UpdateGraph() *ExecutionGraphUpsert {
	u.SetExcluded(executiongraph.FieldGraph)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *ExecutionGraphUpsert) SetCompletedAt(v time.Time) *ExecutionGraphUpsert {
	u.Set(executiongraph.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ExecutionGraphUpsert) UpdateCompletedAt() *ExecutionGraphUpsert {
	u.SetExcluded(executiongraph.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ExecutionGraphUpsert) ClearCompletedAt() *ExecutionGraphUpsert {
	u.SetNull(executiongraph.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ExecutionGraph.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(executiongraph.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExecutionGraphUpsertOne) UpdateNewValues() *ExecutionGraphUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(executiongraph.FieldID)
		}
		if _, exists := u.create.mutation.StackID(); exists {
			s.SetIgnore(executiongraph.FieldStackID)
		}
		if _, exists := u.create.mutation.OrchestratorExecutionID(); exists {
			s.SetIgnore(executiongraph.FieldOrchestratorExecutionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(executiongraph.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExecutionGraph.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExecutionGraphUpsertOne) Ignore() *ExecutionGraphUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExecutionGraphUpsertOne) DoNothing() *ExecutionGraphUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExecutionGraphCreate.OnConflict
// documentation for more info.
func (u *ExecutionGraphUpsertOne) Update(set func(*ExecutionGraphUpsert)) *ExecutionGraphUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExecutionGraphUpsert{UpdateSet: update})
	}))
	return u
}

// SetGraph sets the "graph" field.
func (u *ExecutionGraphUpsertOne) SetGraph(v models.GraphSnapshot) *ExecutionGraphUpsertOne {
	return u.Update(func(s *ExecutionGraphUpsert) {
		s.SetGraph(v)
	})
}

// UpdateGraph sets the "graph" field to the value that was provided on create.
func (u *ExecutionGraphUpsertOne) UpdateGraph() *ExecutionGraphUpsertOne {
	return u.Update(func(s *ExecutionGraphUpsert) {
		s.UpdateGraph()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ExecutionGraphUpsertOne) SetCompletedAt(v time.Time) *ExecutionGraphUpsertOne {
	return u.Update(func(s *ExecutionGraphUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ExecutionGraphUpsertOne) UpdateCompletedAt() *ExecutionGraphUpsertOne {
	return u.Update(func(s *ExecutionGraphUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ExecutionGraphUpsertOne) ClearCompletedAt() *ExecutionGraphUpsertOne {
	return u.Update(func(s *ExecutionGraphUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *ExecutionGraphUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExecutionGraphCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExecutionGraphUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExecutionGraphUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExecutionGraphUpsertOne.ID is not supported by MySQL driver. Use ExecutionGraphUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExecutionGraphUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExecutionGraphCreateBulk is the builder for creating many ExecutionGraph entities in bulk.
type ExecutionGraphCreateBulk struct {
	config
	err      error
	builders []*ExecutionGraphCreate
	conflict []sql.ConflictOption
}

// Save creates the ExecutionGraph entities in the database.
func (_c *ExecutionGraphCreateBulk) Save(ctx context.Context) ([]*ExecutionGraph, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionGraph, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionGraphMutation)
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
func (_c *ExecutionGraphCreateBulk) SaveX(ctx context.Context) []*ExecutionGraph {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionGraphCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionGraphCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExecutionGraph.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExecutionGraphUpsert) {
//			SetStackID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExecutionGraphCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExecutionGraphUpsertBulk {
	_c.conflict = opts
	return &ExecutionGraphUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExecutionGraph.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExecutionGraphCreateBulk) OnConflictColumns(columns ...string) *ExecutionGraphUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExecutionGraphUpsertBulk{
		create: _c,
	}
}

// ExecutionGraphUpsertBulk is the builder for "upsert"-ing
// a bulk of ExecutionGraph nodes.
type ExecutionGraphUpsertBulk struct {
	create *ExecutionGraphCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExecutionGraph.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(executiongraph.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExecutionGraphUpsertBulk) UpdateNewValues() *ExecutionGraphUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(executiongraph.FieldID)
			}
			if _, exists := b.mutation.StackID(); exists {
				s.SetIgnore(executiongraph.FieldStackID)
			}
			if _, exists := b.mutation.OrchestratorExecutionID(); exists {
				s.SetIgnore(executiongraph.FieldOrchestratorExecutionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(executiongraph.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExecutionGraph.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExecutionGraphUpsertBulk) Ignore() *ExecutionGraphUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExecutionGraphUpsertBulk) DoNothing() *ExecutionGraphUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExecutionGraphCreateBulk.OnConflict
// documentation for more info.
func (u *ExecutionGraphUpsertBulk) Update(set func(*ExecutionGraphUpsert)) *ExecutionGraphUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExecutionGraphUpsert{UpdateSet: update})
	}))
	return u
}

// SetGraph sets the "graph" field.
func (u *ExecutionGraphUpsertBulk) SetGraph(v models.GraphSnapshot) *ExecutionGraphUpsertBulk {
	return u.Update(func(s *ExecutionGraphUpsert) {
		s.SetGraph(v)
	})
}

// UpdateGraph sets the "graph" field to the value that was provided on create.
func (u *ExecutionGraphUpsertBulk) UpdateGraph() *ExecutionGraphUpsertBulk {
	return u.Update(func(s *ExecutionGraphUpsert) {
		s.UpdateGraph()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ExecutionGraphUpsertBulk) SetCompletedAt(v time.Time) *ExecutionGraphUpsertBulk {
	return u.Update(func(s *ExecutionGraphUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ExecutionGraphUpsertBulk) UpdateCompletedAt() *ExecutionGraphUpsertBulk {
	return u.Update(func(s *ExecutionGraphUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ExecutionGraphUpsertBulk) ClearCompletedAt() *ExecutionGraphUpsertBulk {
	return u.Update(func(s *ExecutionGraphUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *ExecutionGraphUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExecutionGraphCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExecutionGraphCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExecutionGraphUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
