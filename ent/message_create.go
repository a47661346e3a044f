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
	"github.com/hackfleet/hackfleet/ent/message"
)

// MessageCreate is the builder for creating a Message entity.
type MessageCreate struct {
	config
	mutation *MessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetFromStackID sets the "from_stack_id" field.
func (_c *MessageCreate) SetFromStackID(v string) *MessageCreate {
	_c.mutation.SetFromStackID(v)
	return _c
}

// SetNillableFromStackID sets the "from_stack_id" field if the given value is not nil.
func (_c *MessageCreate) SetNillableFromStackID(v *string) *MessageCreate {
	if v != nil {
		_c.SetFromStackID(*v)
	}
	return _c
}

// SetToStackID sets the "to_stack_id" field.
func (_c *MessageCreate) SetToStackID(v string) *MessageCreate {
	_c.mutation.SetToStackID(v)
	return _c
}

// SetNillableToStackID sets the "to_stack_id" field if the given value is not nil.
func (_c *MessageCreate) SetNillableToStackID(v *string) *MessageCreate {
	if v != nil {
		_c.SetToStackID(*v)
	}
	return _c
}

// SetMessageType sets the "message_type" field.
func (_c *MessageCreate) SetMessageType(v message.MessageType) *MessageCreate {
	_c.mutation.SetMessageType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *MessageCreate) SetContent(v string) *MessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetReadBy sets the "read_by" field.
func (_c *MessageCreate) SetReadBy(v []string) *MessageCreate {
	_c.mutation.SetReadBy(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageCreate) SetCreatedAt(v time.Time) *MessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageCreate) SetNillableCreatedAt(v *time.Time) *MessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MessageCreate) SetID(v string) *MessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MessageMutation object of the builder.
func (_c *MessageCreate) Mutation() *MessageMutation {
	return _c.mutation
}

// Save creates the Message in the database.
func (_c *MessageCreate) Save(ctx context.Context) (*Message, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageCreate) SaveX(ctx context.Context) *Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := message.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageCreate) check() error {
	if _, ok := _c.mutation.MessageType(); !ok {
		return &ValidationError{Name: "message_type", err: errors.New(`ent: missing required field "Message.message_type"`)}
	}
	if v, ok := _c.mutation.MessageType(); ok {
		if err := message.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "Message.message_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Message.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Message.created_at"`)}
	}
	return nil
}

func (_c *MessageCreate) sqlSave(ctx context.Context) (*Message, error) {
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
			return nil, fmt.Errorf("unexpected Message.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MessageCreate) createSpec() (*Message, *sqlgraph.CreateSpec) {
	var (
		_node = &Message{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(message.Table, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FromStackID(); ok {
		_spec.SetField(message.FieldFromStackID, field.TypeString, value)
		_node.FromStackID = &value
	}
	if value, ok := _c.mutation.ToStackID(); ok {
		_spec.SetField(message.FieldToStackID, field.TypeString, value)
		_node.ToStackID = &value
	}
	if value, ok := _c.mutation.MessageType(); ok {
		_spec.SetField(message.FieldMessageType, field.TypeEnum, value)
		_node.MessageType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.ReadBy(); ok {
		_spec.SetField(message.FieldReadBy, field.TypeJSON, value)
		_node.ReadBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(message.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Message.Create().
//		SetFromStackID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageUpsert) {
//			SetFromStackID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageCreate) OnConflict(opts ...sql.ConflictOption) *MessageUpsertOne {
	_c.conflict = opts
	return &MessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageCreate) OnConflictColumns(columns ...string) *MessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageUpsertOne{
		create: _c,
	}
}

type (
	// MessageUpsertOne is the builder for "upsert"-ing
	//  one Message node.
	MessageUpsertOne struct {
		create *MessageCreate
	}

	// MessageUpsert is the "OnConflict" setter.
	MessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetFromStackID sets the "from_stack_id" field.
func (u *MessageUpsert) SetFromStackID(v string) *MessageUpsert {
	u.Set(message.FieldFromStackID, v)
	return u
}

// UpdateFromStackID sets the "from_stack_id" field to the value that was provided on create.
func (u *MessageUpsert) UpdateFromStackID() *MessageUpsert {
	u.SetExcluded(message.FieldFromStackID)
	return u
}

// ClearFromStackID clears the value of the "from_stack_id" field.
func (u *MessageUpsert) ClearFromStackID() *MessageUpsert {
	u.SetNull(message.FieldFromStackID)
	return u
}

// SetToStackID sets the "to_stack_id" field.
func (u *MessageUpsert) SetToStackID(v string) *MessageUpsert {
	u.Set(message.FieldToStackID, v)
	return u
}

// UpdateToStackID sets the "to_stack_id" field to the value that was provided on create.
func (u *MessageUpsert) UpdateToStackID() *MessageUpsert {
	u.SetExcluded(message.FieldToStackID)
	return u
}

// ClearToStackID clears the value of the "to_stack_id" field.
func (u *MessageUpsert) ClearToStackID() *MessageUpsert {
	u.SetNull(message.FieldToStackID)
	return u
}

// SetMessageType sets the "message_type" field.
func (u *MessageUpsert) SetMessageType(v message.MessageType) *MessageUpsert {
	u.Set(message.FieldMessageType, v)
	return u
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *MessageUpsert) UpdateMessageType() *MessageUpsert {
	u.SetExcluded(message.FieldMessageType)
	return u
}

// SetContent sets the "content" field.
func (u *MessageUpsert) SetContent(v string) *MessageUpsert {
	u.Set(message.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MessageUpsert) UpdateContent() *MessageUpsert {
	u.SetExcluded(message.FieldContent)
	return u
}

// SetReadBy sets the "read_by" field.
func (u *MessageUpsert) SetReadBy(v []string) *MessageUpsert {
	u.Set(message.FieldReadBy, v)
	return u
}

// UpdateReadBy sets the "read_by" field to the value that was provided on create.
func (u *MessageUpsert) UpdateReadBy() *MessageUpsert {
	u.SetExcluded(message.FieldReadBy)
	return u
}

// ClearReadBy clears the value of the "read_by" field.
func (u *MessageUpsert) ClearReadBy() *MessageUpsert {
	u.SetNull(message.FieldReadBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(message.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageUpsertOne) UpdateNewValues() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(message.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(message.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MessageUpsertOne) Ignore() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageUpsertOne) DoNothing() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageCreate.OnConflict
// documentation for more info.
func (u *MessageUpsertOne) Update(set func(*MessageUpsert)) *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetFromStackID sets the "from_stack_id" field.
func (u *MessageUpsertOne) SetFromStackID(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetFromStackID(v)
	})
}

// UpdateFromStackID sets the "from_stack_id" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateFromStackID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateFromStackID()
	})
}

// ClearFromStackID clears the value of the "from_stack_id" field.
func (u *MessageUpsertOne) ClearFromStackID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearFromStackID()
	})
}

// SetToStackID sets the "to_stack_id" field.
func (u *MessageUpsertOne) SetToStackID(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetToStackID(v)
	})
}

// UpdateToStackID sets the "to_stack_id" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateToStackID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateToStackID()
	})
}

// ClearToStackID clears the value of the "to_stack_id" field.
func (u *MessageUpsertOne) ClearToStackID() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearToStackID()
	})
}

// SetMessageType sets the "message_type" field.
func (u *MessageUpsertOne) SetMessageType(v message.MessageType) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetMessageType(v)
	})
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateMessageType() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateMessageType()
	})
}

// SetContent sets the "content" field.
func (u *MessageUpsertOne) SetContent(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateContent() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateContent()
	})
}

// SetReadBy sets the "read_by" field.
func (u *MessageUpsertOne) SetReadBy(v []string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetReadBy(v)
	})
}

// UpdateReadBy sets the "read_by" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateReadBy() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateReadBy()
	})
}

// ClearReadBy clears the value of the "read_by" field.
func (u *MessageUpsertOne) ClearReadBy() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearReadBy()
	})
}

// Exec executes the query.
func (u *MessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MessageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MessageUpsertOne.ID is not supported by MySQL driver. Use MessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MessageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MessageCreateBulk is the builder for creating many Message entities in bulk.
type MessageCreateBulk struct {
	config
	err      error
	builders []*MessageCreate
	conflict []sql.ConflictOption
}

// Save creates the Message entities in the database.
func (_c *MessageCreateBulk) Save(ctx context.Context) ([]*Message, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Message, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageMutation)
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
func (_c *MessageCreateBulk) SaveX(ctx context.Context) []*Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Message.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageUpsert) {
//			SetFromStackID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *MessageUpsertBulk {
	_c.conflict = opts
	return &MessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageCreateBulk) OnConflictColumns(columns ...string) *MessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageUpsertBulk{
		create: _c,
	}
}

// MessageUpsertBulk is the builder for "upsert"-ing
// a bulk of Message nodes.
type MessageUpsertBulk struct {
	create *MessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(message.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageUpsertBulk) UpdateNewValues() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(message.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(message.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MessageUpsertBulk) Ignore() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageUpsertBulk) DoNothing() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageCreateBulk.OnConflict
// documentation for more info.
func (u *MessageUpsertBulk) Update(set func(*MessageUpsert)) *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetFromStackID sets the "from_stack_id" field.
func (u *MessageUpsertBulk) SetFromStackID(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetFromStackID(v)
	})
}

// UpdateFromStackID sets the "from_stack_id" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateFromStackID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateFromStackID()
	})
}

// ClearFromStackID clears the value of the "from_stack_id" field.
func (u *MessageUpsertBulk) ClearFromStackID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearFromStackID()
	})
}

// SetToStackID sets the "to_stack_id" field.
func (u *MessageUpsertBulk) SetToStackID(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetToStackID(v)
	})
}

// UpdateToStackID sets the "to_stack_id" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateToStackID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateToStackID()
	})
}

// ClearToStackID clears the value of the "to_stack_id" field.
func (u *MessageUpsertBulk) ClearToStackID() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearToStackID()
	})
}

// SetMessageType sets the "message_type" field.
func (u *MessageUpsertBulk) SetMessageType(v message.MessageType) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetMessageType(v)
	})
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateMessageType() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateMessageType()
	})
}

// SetContent sets the "content" field.
func (u *MessageUpsertBulk) SetContent(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateContent() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateContent()
	})
}

// SetReadBy sets the "read_by" field.
func (u *MessageUpsertBulk) SetReadBy(v []string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetReadBy(v)
	})
}

// UpdateReadBy sets the "read_by" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateReadBy() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateReadBy()
	})
}

// ClearReadBy clears the value of the "read_by" field.
func (u *MessageUpsertBulk) ClearReadBy() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearReadBy()
	})
}

// Exec executes the query.
func (u *MessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
