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
	"github.com/hackfleet/hackfleet/ent/agentstate"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/pkg/models"
)

// AgentStateCreate is the builder for creating a AgentState entity.
type AgentStateCreate struct {
	config
	mutation *AgentStateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStackID sets the "stack_id" field.
func (_c *AgentStateCreate) SetStackID(v string) *AgentStateCreate {
	_c.mutation.SetStackID(v)
	return _c
}

// SetAgentType sets the "agent_type" field.
func (_c *AgentStateCreate) SetAgentType(v agentstate.AgentType) *AgentStateCreate {
	_c.mutation.SetAgentType(v)
	return _c
}

// SetMemory sets the "memory" field.
func (_c *AgentStateCreate) SetMemory(v models.AgentMemory) *AgentStateCreate {
	_c.mutation.SetMemory(v)
	return _c
}

// SetNillableMemory sets the "memory" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableMemory(v *models.AgentMemory) *AgentStateCreate {
	if v != nil {
		_c.SetMemory(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *AgentStateCreate) SetContext(v []models.Thought) *AgentStateCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentStateCreate) SetCreatedAt(v time.Time) *AgentStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableCreatedAt(v *time.Time) *AgentStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentStateCreate) SetUpdatedAt(v time.Time) *AgentStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentStateCreate) SetNillableUpdatedAt(v *time.Time) *AgentStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentStateCreate) SetID(v string) *AgentStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStack sets the "stack" edge to the Stack entity.
func (_c *AgentStateCreate) SetStack(v *Stack) *AgentStateCreate {
	return _c.SetStackID(v.ID)
}

// Mutation returns the AgentStateMutation object of the builder.
func (_c *AgentStateCreate) Mutation() *AgentStateMutation {
	return _c.mutation
}

// Save creates the AgentState in the database.
func (_c *AgentStateCreate) Save(ctx context.Context) (*AgentState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentStateCreate) SaveX(ctx context.Context) *AgentState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentStateCreate) defaults() {
	if _, ok := _c.mutation.Memory(); !ok {
		v := agentstate.DefaultMemory
		_c.mutation.SetMemory(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentstate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentStateCreate) check() error {
	if _, ok := _c.mutation.StackID(); !ok {
		return &ValidationError{Name: "stack_id", err: errors.New(`ent: missing required field "AgentState.stack_id"`)}
	}
	if _, ok := _c.mutation.AgentType(); !ok {
		return &ValidationError{Name: "agent_type", err: errors.New(`ent: missing required field "AgentState.agent_type"`)}
	}
	if v, ok := _c.mutation.AgentType(); ok {
		if err := agentstate.AgentTypeValidator(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "AgentState.agent_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Memory(); !ok {
		return &ValidationError{Name: "memory", err: errors.New(`ent: missing required field "AgentState.memory"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentState.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentState.updated_at"`)}
	}
	if len(_c.mutation.StackIDs()) == 0 {
		return &ValidationError{Name: "stack", err: errors.New(`ent: missing required edge "AgentState.stack"`)}
	}
	return nil
}

func (_c *AgentStateCreate) sqlSave(ctx context.Context) (*AgentState, error) {
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
			return nil, fmt.Errorf("unexpected AgentState.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentStateCreate) createSpec() (*AgentState, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentstate.Table, sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentType(); ok {
		_spec.SetField(agentstate.FieldAgentType, field.TypeEnum, value)
		_node.AgentType = value
	}
	if value, ok := _c.mutation.Memory(); ok {
		_spec.SetField(agentstate.FieldMemory, field.TypeJSON, value)
		_node.Memory = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(agentstate.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentstate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.StackIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentstate.StackTable,
			Columns: []string{agentstate.StackColumn},
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
//	client.AgentState.Create().
//		SetStackID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentStateUpsert) {
//			SetStackID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentStateCreate) OnConflict(opts ...sql.ConflictOption) *AgentStateUpsertOne {
	_c.conflict = opts
	return &AgentStateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentStateCreate) OnConflictColumns(columns ...string) *AgentStateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentStateUpsertOne{
		create: _c,
	}
}

type (
	// AgentStateUpsertOne is the builder for "upsert"-ing
	//  one AgentState node.
	AgentStateUpsertOne struct {
		create *AgentStateCreate
	}

	// AgentStateUpsert is the "OnConflict" setter.
	AgentStateUpsert struct {
		*sql.UpdateSet
	}
)

// SetMemory sets the "memory" field.
func (u *AgentStateUpsert) SetMemory(v models.AgentMemory) *AgentStateUpsert {
	u.Set(agentstate.FieldMemory, v)
	return u
}

// UpdateMemory sets the "memory" field to the value that was provided on create.
func (u *AgentStateUpsert) UpdateMemory() *AgentStateUpsert {
	u.SetExcluded(agentstate.FieldMemory)
	return u
}

// SetContext sets the "context" field.
func (u *AgentStateUpsert) SetContext(v []models.Thought) *AgentStateUpsert {
	u.Set(agentstate.FieldContext, v)
	return u
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *AgentStateUpsert) UpdateContext() *AgentStateUpsert {
	u.SetExcluded(agentstate.FieldContext)
	return u
}

// ClearContext clears the value of the "context" field.
func (u *AgentStateUpsert) ClearContext() *AgentStateUpsert {
	u.SetNull(agentstate.FieldContext)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentStateUpsert) SetUpdatedAt(v time.Time) *AgentStateUpsert {
	u.Set(agentstate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentStateUpsert) UpdateUpdatedAt() *AgentStateUpsert {
	u.SetExcluded(agentstate.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentstate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentStateUpsertOne) UpdateNewValues() *AgentStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentstate.FieldID)
		}
		if _, exists := u.create.mutation.StackID(); exists {
			s.SetIgnore(agentstate.FieldStackID)
		}
		if _, exists := u.create.mutation.AgentType(); exists {
			s.SetIgnore(agentstate.FieldAgentType)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agentstate.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentState.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentStateUpsertOne) Ignore() *AgentStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentStateUpsertOne) DoNothing() *AgentStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentStateCreate.OnConflict
// documentation for more info.
func (u *AgentStateUpsertOne) Update(set func(*AgentStateUpsert)) *AgentStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetMemory sets the "memory" field.
func (u *AgentStateUpsertOne) SetMemory(v models.AgentMemory) *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetMemory(v)
	})
}

// UpdateMemory sets the "memory" field to the value that was provided on create.
func (u *AgentStateUpsertOne) UpdateMemory() *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateMemory()
	})
}

// SetContext sets the "context" field.
func (u *AgentStateUpsertOne) SetContext(v []models.Thought) *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *AgentStateUpsertOne) UpdateContext() *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateContext()
	})
}

// ClearContext clears the value of the "context" field.
func (u *AgentStateUpsertOne) ClearContext() *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.ClearContext()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentStateUpsertOne) SetUpdatedAt(v time.Time) *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentStateUpsertOne) UpdateUpdatedAt() *AgentStateUpsertOne {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AgentStateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentStateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentStateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentStateUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentStateUpsertOne.ID is not supported by MySQL driver. Use AgentStateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentStateUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentStateCreateBulk is the builder for creating many AgentState entities in bulk.
type AgentStateCreateBulk struct {
	config
	err      error
	builders []*AgentStateCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentState entities in the database.
func (_c *AgentStateCreateBulk) Save(ctx context.Context) ([]*AgentState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentStateMutation)
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
func (_c *AgentStateCreateBulk) SaveX(ctx context.Context) []*AgentState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentState.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentStateUpsert) {
//			SetStackID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentStateCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentStateUpsertBulk {
	_c.conflict = opts
	return &AgentStateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentStateCreateBulk) OnConflictColumns(columns ...string) *AgentStateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentStateUpsertBulk{
		create: _c,
	}
}

// AgentStateUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentState nodes.
type AgentStateUpsertBulk struct {
	create *AgentStateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentstate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentStateUpsertBulk) UpdateNewValues() *AgentStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentstate.FieldID)
			}
			if _, exists := b.mutation.StackID(); exists {
				s.SetIgnore(agentstate.FieldStackID)
			}
			if _, exists := b.mutation.AgentType(); exists {
				s.SetIgnore(agentstate.FieldAgentType)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agentstate.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentState.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentStateUpsertBulk) Ignore() *AgentStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentStateUpsertBulk) DoNothing() *AgentStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentStateCreateBulk.OnConflict
// documentation for more info.
func (u *AgentStateUpsertBulk) Update(set func(*AgentStateUpsert)) *AgentStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetMemory sets the "memory" field.
func (u *AgentStateUpsertBulk) SetMemory(v models.AgentMemory) *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetMemory(v)
	})
}

// UpdateMemory sets the "memory" field to the value that was provided on create.
func (u *AgentStateUpsertBulk) UpdateMemory() *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateMemory()
	})
}

// SetContext sets the "context" field.
func (u *AgentStateUpsertBulk) SetContext(v []models.Thought) *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetContext(v)
	})
}

// UpdateContext sets the "context" field to the value that was provided on create.
func (u *AgentStateUpsertBulk) UpdateContext() *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateContext()
	})
}

// ClearContext clears the value of the "context" field.
func (u *AgentStateUpsertBulk) ClearContext() *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.ClearContext()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentStateUpsertBulk) SetUpdatedAt(v time.Time) *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentStateUpsertBulk) UpdateUpdatedAt() *AgentStateUpsertBulk {
	return u.Update(func(s *AgentStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AgentStateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentStateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentStateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentStateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
