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
	"github.com/hackfleet/hackfleet/ent/usermessage"
)

// UserMessageCreate is the builder for creating a UserMessage entity.
type UserMessageCreate struct {
	config
	mutation *UserMessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTeamID sets the "team_id" field.
func (_c *UserMessageCreate) SetTeamID(v string) *UserMessageCreate {
	_c.mutation.SetTeamID(v)
	return _c
}

// SetSenderName sets the "sender_name" field.
func (_c *UserMessageCreate) SetSenderName(v string) *UserMessageCreate {
	_c.mutation.SetSenderName(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *UserMessageCreate) SetContent(v string) *UserMessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetProcessed sets the "processed" field.
func (_c *UserMessageCreate) SetProcessed(v bool) *UserMessageCreate {
	_c.mutation.SetProcessed(v)
	return _c
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_c *UserMessageCreate) SetNillableProcessed(v *bool) *UserMessageCreate {
	if v != nil {
		_c.SetProcessed(*v)
	}
	return _c
}

// SetResponseID sets the "response_id" field.
func (_c *UserMessageCreate) SetResponseID(v string) *UserMessageCreate {
	_c.mutation.SetResponseID(v)
	return _c
}

// SetNillableResponseID sets the "response_id" field if the given value is not nil.
func (_c *UserMessageCreate) SetNillableResponseID(v *string) *UserMessageCreate {
	if v != nil {
		_c.SetResponseID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserMessageCreate) SetCreatedAt(v time.Time) *UserMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserMessageCreate) SetNillableCreatedAt(v *time.Time) *UserMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserMessageCreate) SetID(v string) *UserMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStackID sets the "stack" edge to the Stack entity by ID.
func (_c *UserMessageCreate) SetStackID(id string) *UserMessageCreate {
	_c.mutation.SetStackID(id)
	return _c
}

// SetStack sets the "stack" edge to the Stack entity.
func (_c *UserMessageCreate) SetStack(v *Stack) *UserMessageCreate {
	return _c.SetStackID(v.ID)
}

// Mutation returns the UserMessageMutation object of the builder.
func (_c *UserMessageCreate) Mutation() *UserMessageMutation {
	return _c.mutation
}

// Save creates the UserMessage in the database.
func (_c *UserMessageCreate) Save(ctx context.Context) (*UserMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserMessageCreate) SaveX(ctx context.Context) *UserMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserMessageCreate) defaults() {
	if _, ok := _c.mutation.Processed(); !ok {
		v := usermessage.DefaultProcessed
		_c.mutation.SetProcessed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := usermessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserMessageCreate) check() error {
	if _, ok := _c.mutation.TeamID(); !ok {
		return &ValidationError{Name: "team_id", err: errors.New(`ent: missing required field "UserMessage.team_id"`)}
	}
	if _, ok := _c.mutation.SenderName(); !ok {
		return &ValidationError{Name: "sender_name", err: errors.New(`ent: missing required field "UserMessage.sender_name"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "UserMessage.content"`)}
	}
	if _, ok := _c.mutation.Processed(); !ok {
		return &ValidationError{Name: "processed", err: errors.New(`ent: missing required field "UserMessage.processed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UserMessage.created_at"`)}
	}
	if len(_c.mutation.StackIDs()) == 0 {
		return &ValidationError{Name: "stack", err: errors.New(`ent: missing required edge "UserMessage.stack"`)}
	}
	return nil
}

func (_c *UserMessageCreate) sqlSave(ctx context.Context) (*UserMessage, error) {
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
			return nil, fmt.Errorf("unexpected UserMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserMessageCreate) createSpec() (*UserMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &UserMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usermessage.Table, sqlgraph.NewFieldSpec(usermessage.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SenderName(); ok {
		_spec.SetField(usermessage.FieldSenderName, field.TypeString, value)
		_node.SenderName = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(usermessage.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Processed(); ok {
		_spec.SetField(usermessage.FieldProcessed, field.TypeBool, value)
		_node.Processed = value
	}
	if value, ok := _c.mutation.ResponseID(); ok {
		_spec.SetField(usermessage.FieldResponseID, field.TypeString, value)
		_node.ResponseID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(usermessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.StackIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   usermessage.StackTable,
			Columns: []string{usermessage.StackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stack.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TeamID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserMessage.Create().
//		SetTeamID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserMessageUpsert) {
//			SetTeamID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserMessageCreate) OnConflict(opts ...sql.ConflictOption) *UserMessageUpsertOne {
	_c.conflict = opts
	return &UserMessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserMessageCreate) OnConflictColumns(columns ...string) *UserMessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserMessageUpsertOne{
		create: _c,
	}
}

type (
	// UserMessageUpsertOne is the builder for "upsert"-ing
	//  one UserMessage node.
	UserMessageUpsertOne struct {
		create *UserMessageCreate
	}

	// UserMessageUpsert is the "OnConflict" setter.
	UserMessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetSenderName sets the "sender_name" field.
func (u *UserMessageUpsert) SetSenderName(v string) *UserMessageUpsert {
	u.Set(usermessage.FieldSenderName, v)
	return u
}

// UpdateSenderName sets the "sender_name" field to the value that was provided on create.
func (u *UserMessageUpsert) UpdateSenderName() *UserMessageUpsert {
	u.SetExcluded(usermessage.FieldSenderName)
	return u
}

// SetContent sets the "content" field.
func (u *UserMessageUpsert) SetContent(v string) *UserMessageUpsert {
	u.Set(usermessage.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *UserMessageUpsert) UpdateContent() *UserMessageUpsert {
	u.SetExcluded(usermessage.FieldContent)
	return u
}

// SetProcessed sets the "processed" field.
func (u *UserMessageUpsert) SetProcessed(v bool) *UserMessageUpsert {
	u.Set(usermessage.FieldProcessed, v)
	return u
}

// UpdateProcessed sets the "processed" field to the value that was provided on create.
func (u *UserMessageUpsert) UpdateProcessed() *UserMessageUpsert {
	u.SetExcluded(usermessage.FieldProcessed)
	return u
}

// SetResponseID sets the "response_id" field.
func (u *UserMessageUpsert) SetResponseID(v string) *UserMessageUpsert {
	u.Set(usermessage.FieldResponseID, v)
	return u
}

// UpdateResponseID sets the "response_id" field to the value that was provided on create.
func (u *UserMessageUpsert) UpdateResponseID() *UserMessageUpsert {
	u.SetExcluded(usermessage.FieldResponseID)
	return u
}

// ClearResponseID clears the value of the "response_id" field.
func (u *UserMessageUpsert) ClearResponseID() *UserMessageUpsert {
	u.SetNull(usermessage.FieldResponseID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.UserMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(usermessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserMessageUpsertOne) UpdateNewValues() *UserMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(usermessage.FieldID)
		}
		if _, exists := u.create.mutation.TeamID(); exists {
			s.SetIgnore(usermessage.FieldTeamID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(usermessage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserMessage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserMessageUpsertOne) Ignore() *UserMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserMessageUpsertOne) DoNothing() *UserMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserMessageCreate.OnConflict
// documentation for more info.
func (u *UserMessageUpsertOne) Update(set func(*UserMessageUpsert)) *UserMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetSenderName sets the "sender_name" field.
func (u *UserMessageUpsertOne) SetSenderName(v string) *UserMessageUpsertOne {
	return u.Update(func(s *UserMessageUpsert) {
		s.SetSenderName(v)
	})
}

// UpdateSenderName sets the "sender_name" field to the value that was provided on create.
func (u *UserMessageUpsertOne) UpdateSenderName() *UserMessageUpsertOne {
	return u.Update(func(s *UserMessageUpsert) {
		s.UpdateSenderName()
	})
}

// SetContent sets the "content" field.
func (u *UserMessageUpsertOne) SetContent(v string) *UserMessageUpsertOne {
	return u.Update(func(s *UserMessageUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *UserMessageUpsertOne) UpdateContent() *UserMessageUpsertOne {
	return u.Update(func(s *UserMessageUpsert) {
		s.UpdateContent()
	})
}

// SetProcessed sets the "processed" field.
func (u *UserMessageUpsertOne) SetProcessed(v bool) *UserMessageUpsertOne {
	return u.Update(func(s *UserMessageUpsert) {
		s.SetProcessed(v)
	})
}

// UpdateProcessed sets the "processed" field to the value that was provided on create.
func (u *UserMessageUpsertOne) UpdateProcessed() *UserMessageUpsertOne {
	return u.Update(func(s *UserMessageUpsert) {
		s.UpdateProcessed()
	})
}

// SetResponseID sets the "response_id" field.
func (u *UserMessageUpsertOne) SetResponseID(v string) *UserMessageUpsertOne {
	return u.Update(func(s *UserMessageUpsert) {
		s.SetResponseID(v)
	})
}

// UpdateResponseID sets the "response_id" field to the value that was provided on create.
func (u *UserMessageUpsertOne) UpdateResponseID() *UserMessageUpsertOne {
	return u.Update(func(s *UserMessageUpsert) {
		s.UpdateResponseID()
	})
}

// ClearResponseID clears the value of the "response_id" field.
func (u *UserMessageUpsertOne) ClearResponseID() *UserMessageUpsertOne {
	return u.Update(func(s *UserMessageUpsert) {
		s.ClearResponseID()
	})
}

// Exec executes the query.
func (u *UserMessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserMessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserMessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserMessageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: UserMessageUpsertOne.ID is not supported by MySQL driver. Use UserMessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserMessageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserMessageCreateBulk is the builder for creating many UserMessage entities in bulk.
type UserMessageCreateBulk struct {
	config
	err      error
	builders []*UserMessageCreate
	conflict []sql.ConflictOption
}

// Save creates the UserMessage entities in the database.
func (_c *UserMessageCreateBulk) Save(ctx context.Context) ([]*UserMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserMessageMutation)
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
func (_c *UserMessageCreateBulk) SaveX(ctx context.Context) []*UserMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserMessage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserMessageUpsert) {
//			SetTeamID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserMessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserMessageUpsertBulk {
	_c.conflict = opts
	return &UserMessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserMessageCreateBulk) OnConflictColumns(columns ...string) *UserMessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserMessageUpsertBulk{
		create: _c,
	}
}

// UserMessageUpsertBulk is the builder for "upsert"-ing
// a bulk of UserMessage nodes.
type UserMessageUpsertBulk struct {
	create *UserMessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UserMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(usermessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserMessageUpsertBulk) UpdateNewValues() *UserMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(usermessage.FieldID)
			}
			if _, exists := b.mutation.TeamID(); exists {
				s.SetIgnore(usermessage.FieldTeamID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(usermessage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserMessage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserMessageUpsertBulk) Ignore() *UserMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserMessageUpsertBulk) DoNothing() *UserMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserMessageCreateBulk.OnConflict
// documentation for more info.
func (u *UserMessageUpsertBulk) Update(set func(*UserMessageUpsert)) *UserMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetSenderName sets the "sender_name" field.
func (u *UserMessageUpsertBulk) SetSenderName(v string) *UserMessageUpsertBulk {
	return u.Update(func(s *UserMessageUpsert) {
		s.SetSenderName(v)
	})
}

// UpdateSenderName sets the "sender_name" field to the value that was provided on create.
func (u *UserMessageUpsertBulk) UpdateSenderName() *UserMessageUpsertBulk {
	return u.Update(func(s *UserMessageUpsert) {
		s.UpdateSenderName()
	})
}

// SetContent sets the "content" field.
func (u *UserMessageUpsertBulk) SetContent(v string) *UserMessageUpsertBulk {
	return u.Update(func(s *UserMessageUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *UserMessageUpsertBulk) UpdateContent() *UserMessageUpsertBulk {
	return u.Update(func(s *UserMessageUpsert) {
		s.UpdateContent()
	})
}

// SetProcessed sets the "processed" field.
func (u *UserMessageUpsertBulk) SetProcessed(v bool) *UserMessageUpsertBulk {
	return u.Update(func(s *UserMessageUpsert) {
		s.SetProcessed(v)
	})
}

// UpdateProcessed sets the "processed" field to the value that was provided on create.
func (u *UserMessageUpsertBulk) UpdateProcessed() *UserMessageUpsertBulk {
	return u.Update(func(s *UserMessageUpsert) {
		s.UpdateProcessed()
	})
}

// SetResponseID sets the "response_id" field.
func (u *UserMessageUpsertBulk) SetResponseID(v string) *UserMessageUpsertBulk {
	return u.Update(func(s *UserMessageUpsert) {
		s.SetResponseID(v)
	})
}

// UpdateResponseID sets the "response_id" field to the value that was provided on create.
func (u *UserMessageUpsertBulk) UpdateResponseID() *UserMessageUpsertBulk {
	return u.Update(func(s *UserMessageUpsert) {
		s.UpdateResponseID()
	})
}

// ClearResponseID clears the value of the "response_id" field.
func (u *UserMessageUpsertBulk) ClearResponseID() *UserMessageUpsertBulk {
	return u.Update(func(s *UserMessageUpsert) {
		s.ClearResponseID()
	})
}

// Exec executes the query.
func (u *UserMessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserMessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserMessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserMessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
