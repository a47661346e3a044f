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
	"github.com/hackfleet/hackfleet/ent/agenttrace"
	"github.com/hackfleet/hackfleet/ent/stack"
)

// AgentTraceCreate is the builder for creating a AgentTrace entity.
type AgentTraceCreate struct {
	config
	mutation *AgentTraceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStackID sets the "stack_id" field.
func (_c *AgentTraceCreate) SetStackID(v string) *AgentTraceCreate {
	_c.mutation.SetStackID(v)
	return _c
}

// SetAgentType sets the "agent_type" field.
func (_c *AgentTraceCreate) SetAgentType(v agenttrace.AgentType) *AgentTraceCreate {
	_c.mutation.SetAgentType(v)
	return _c
}

// SetThought sets the "thought" field.
func (_c *AgentTraceCreate) SetThought(v string) *AgentTraceCreate {
	_c.mutation.SetThought(v)
	return _c
}

// SetNillableThought sets the "thought" field if the given value is not nil.
func (_c *AgentTraceCreate) SetNillableThought(v *string) *AgentTraceCreate {
	if v != nil {
		_c.SetThought(*v)
	}
	return _c
}

// SetAction sets the "action" field.
func (_c *AgentTraceCreate) SetAction(v string) *AgentTraceCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *AgentTraceCreate) SetResult(v string) *AgentTraceCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_c *AgentTraceCreate) SetNillableResult(v *string) *AgentTraceCreate {
	if v != nil {
		_c.SetResult(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentTraceCreate) SetCreatedAt(v time.Time) *AgentTraceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentTraceCreate) SetNillableCreatedAt(v *time.Time) *AgentTraceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentTraceCreate) SetID(v string) *AgentTraceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStack sets the "stack" edge to the Stack entity.
func (_c *AgentTraceCreate) SetStack(v *Stack) *AgentTraceCreate {
	return _c.SetStackID(v.ID)
}

// Mutation returns the AgentTraceMutation object of the builder.
func (_c *AgentTraceCreate) Mutation() *AgentTraceMutation {
	return _c.mutation
}

// Save creates the AgentTrace in the database.
func (_c *AgentTraceCreate) Save(ctx context.Context) (*AgentTrace, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentTraceCreate) SaveX(ctx context.Context) *AgentTrace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentTraceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentTraceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentTraceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agenttrace.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentTraceCreate) check() error {
	if _, ok := _c.mutation.StackID(); !ok {
		return &ValidationError{Name: "stack_id", err: errors.New(`ent: missing required field "AgentTrace.stack_id"`)}
	}
	if _, ok := _c.mutation.AgentType(); !ok {
		return &ValidationError{Name: "agent_type", err: errors.New(`ent: missing required field "AgentTrace.agent_type"`)}
	}
	if v, ok := _c.mutation.AgentType(); ok {
		if err := agenttrace.AgentTypeValidator(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "AgentTrace.agent_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "AgentTrace.action"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentTrace.created_at"`)}
	}
	if len(_c.mutation.StackIDs()) == 0 {
		return &ValidationError{Name: "stack", err: errors.New(`ent: missing required edge "AgentTrace.stack"`)}
	}
	return nil
}

func (_c *AgentTraceCreate) sqlSave(ctx context.Context) (*AgentTrace, error) {
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
			return nil, fmt.Errorf("unexpected AgentTrace.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentTraceCreate) createSpec() (*AgentTrace, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentTrace{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agenttrace.Table, sqlgraph.NewFieldSpec(agenttrace.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentType(); ok {
		_spec.SetField(agenttrace.FieldAgentType, field.TypeEnum, value)
		_node.AgentType = value
	}
	if value, ok := _c.mutation.Thought(); ok {
		_spec.SetField(agenttrace.FieldThought, field.TypeString, value)
		_node.Thought = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(agenttrace.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(agenttrace.FieldResult, field.TypeString, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agenttrace.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.StackIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agenttrace.StackTable,
			Columns: []string{agenttrace.StackColumn},
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
//	client.AgentTrace.Create().
//		SetStackID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentTraceUpsert) {
//			SetStackID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentTraceCreate) OnConflict(opts ...sql.ConflictOption) *AgentTraceUpsertOne {
	_c.conflict = opts
	return &AgentTraceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentTrace.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentTraceCreate) OnConflictColumns(columns ...string) *AgentTraceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentTraceUpsertOne{
		create: _c,
	}
}

type (
	// AgentTraceUpsertOne is the builder for "upsert"-ing
	//  one AgentTrace node.
	AgentTraceUpsertOne struct {
		create *AgentTraceCreate
	}

	// AgentTraceUpsert is the "OnConflict" setter.
	AgentTraceUpsert struct {
		*sql.UpdateSet
	}
)

// SetThought sets the "thought" field.
func (u *AgentTraceUpsert) SetThought(v string) *AgentTraceUpsert {
	u.Set(agenttrace.FieldThought, v)
	return u
}

// UpdateThought sets the "thought" field to the value that was provided on create.
func (u *AgentTraceUpsert) UpdateThought() *AgentTraceUpsert {
	u.SetExcluded(agenttrace.FieldThought)
	return u
}

// ClearThought clears the value of the "thought" field.
func (u *AgentTraceUpsert) ClearThought() *AgentTraceUpsert {
	u.SetNull(agenttrace.FieldThought)
	return u
}

// SetAction sets the "action" field.
func (u *AgentTraceUpsert) SetAction(v string) *AgentTraceUpsert {
	u.Set(agenttrace.FieldAction, v)
	return u
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *AgentTraceUpsert) UpdateAction() *AgentTraceUpsert {
	u.SetExcluded(agenttrace.FieldAction)
	return u
}

// SetResult sets the "result" field.
func (u *AgentTraceUpsert) SetResult(v string) *AgentTraceUpsert {
	u.Set(agenttrace.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *AgentTraceUpsert) UpdateResult() *AgentTraceUpsert {
	u.SetExcluded(agenttrace.FieldResult)
	return u
}

// ClearResult clears the value of the "result" field.
func (u *AgentTraceUpsert) ClearResult() *AgentTraceUpsert {
	u.SetNull(agenttrace.FieldResult)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentTrace.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agenttrace.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentTraceUpsertOne) UpdateNewValues() *AgentTraceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agenttrace.FieldID)
		}
		if _, exists := u.create.mutation.StackID(); exists {
			s.SetIgnore(agenttrace.FieldStackID)
		}
		if _, exists := u.create.mutation.AgentType(); exists {
			s.SetIgnore(agenttrace.FieldAgentType)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agenttrace.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentTrace.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentTraceUpsertOne) Ignore() *AgentTraceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentTraceUpsertOne) DoNothing() *AgentTraceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentTraceCreate.OnConflict
// documentation for more info.
func (u *AgentTraceUpsertOne) Update(set func(*AgentTraceUpsert)) *AgentTraceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentTraceUpsert{UpdateSet: update})
	}))
	return u
}

// SetThought sets the "thought" field.
func (u *AgentTraceUpsertOne) SetThought(v string) *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetThought(v)
	})
}

// UpdateThought sets the "thought" field to the value that was provided on create.
func (u *AgentTraceUpsertOne) UpdateThought() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateThought()
	})
}

// ClearThought clears the value of the "thought" field.
func (u *AgentTraceUpsertOne) ClearThought() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.ClearThought()
	})
}

// SetAction sets the "action" field.
func (u *AgentTraceUpsertOne) SetAction(v string) *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *AgentTraceUpsertOne) UpdateAction() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateAction()
	})
}

// SetResult sets the "result" field.
func (u *AgentTraceUpsertOne) SetResult(v string) *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *AgentTraceUpsertOne) UpdateResult() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *AgentTraceUpsertOne) ClearResult() *AgentTraceUpsertOne {
	return u.Update(func(s *AgentTraceUpsert) {
		s.ClearResult()
	})
}

// Exec executes the query.
func (u *AgentTraceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentTraceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentTraceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentTraceUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentTraceUpsertOne.ID is not supported by MySQL driver. Use AgentTraceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentTraceUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentTraceCreateBulk is the builder for creating many AgentTrace entities in bulk.
type AgentTraceCreateBulk struct {
	config
	err      error
	builders []*AgentTraceCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentTrace entities in the database.
func (_c *AgentTraceCreateBulk) Save(ctx context.Context) ([]*AgentTrace, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentTrace, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentTraceMutation)
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
func (_c *AgentTraceCreateBulk) SaveX(ctx context.Context) []*AgentTrace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentTraceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentTraceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentTrace.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentTraceUpsert) {
//			SetStackID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentTraceCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentTraceUpsertBulk {
	_c.conflict = opts
	return &AgentTraceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentTrace.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentTraceCreateBulk) OnConflictColumns(columns ...string) *AgentTraceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentTraceUpsertBulk{
		create: _c,
	}
}

// AgentTraceUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentTrace nodes.
type AgentTraceUpsertBulk struct {
	create *AgentTraceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentTrace.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agenttrace.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentTraceUpsertBulk) UpdateNewValues() *AgentTraceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agenttrace.FieldID)
			}
			if _, exists := b.mutation.StackID(); exists {
				s.SetIgnore(agenttrace.FieldStackID)
			}
			if _, exists := b.mutation.AgentType(); exists {
				s.SetIgnore(agenttrace.FieldAgentType)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agenttrace.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentTrace.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentTraceUpsertBulk) Ignore() *AgentTraceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentTraceUpsertBulk) DoNothing() *AgentTraceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentTraceCreateBulk.OnConflict
// documentation for more info.
func (u *AgentTraceUpsertBulk) Update(set func(*AgentTraceUpsert)) *AgentTraceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentTraceUpsert{UpdateSet: update})
	}))
	return u
}

// SetThought sets the "thought" field.
func (u *AgentTraceUpsertBulk) SetThought(v string) *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetThought(v)
	})
}

// UpdateThought sets the "thought" field to the value that was provided on create.
func (u *AgentTraceUpsertBulk) UpdateThought() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateThought()
	})
}

// ClearThought clears the value of the "thought" field.
func (u *AgentTraceUpsertBulk) ClearThought() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.ClearThought()
	})
}

// SetAction sets the "action" field.
func (u *AgentTraceUpsertBulk) SetAction(v string) *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *AgentTraceUpsertBulk) UpdateAction() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateAction()
	})
}

// SetResult sets the "result" field.
func (u *AgentTraceUpsertBulk) SetResult(v string) *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *AgentTraceUpsertBulk) UpdateResult() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *AgentTraceUpsertBulk) ClearResult() *AgentTraceUpsertBulk {
	return u.Update(func(s *AgentTraceUpsert) {
		s.ClearResult()
	})
}

// Exec executes the query.
func (u *AgentTraceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentTraceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentTraceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentTraceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
