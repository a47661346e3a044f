// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/hackfleet/hackfleet/ent/message"
	"github.com/hackfleet/hackfleet/ent/predicate"
)

// MessageUpdate is the builder for updating Message entities.
type MessageUpdate struct {
	config
	hooks    []Hook
	mutation *MessageMutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdate) Where(ps ...predicate.Message) *MessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFromStackID sets the "from_stack_id" field.
func (_u *MessageUpdate) SetFromStackID(v string) *MessageUpdate {
	_u.mutation.SetFromStackID(v)
	return _u
}

// SetNillableFromStackID sets the "from_stack_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableFromStackID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetFromStackID(*v)
	}
	return _u
}

// ClearFromStackID clears the value of the "from_stack_id" field.
func (_u *MessageUpdate) ClearFromStackID() *MessageUpdate {
	_u.mutation.ClearFromStackID()
	return _u
}

// SetToStackID sets the "to_stack_id" field.
func (_u *MessageUpdate) SetToStackID(v string) *MessageUpdate {
	_u.mutation.SetToStackID(v)
	return _u
}

// SetNillableToStackID sets the "to_stack_id" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableToStackID(v *string) *MessageUpdate {
	if v != nil {
		_u.SetToStackID(*v)
	}
	return _u
}

// ClearToStackID clears the value of the "to_stack_id" field.
func (_u *MessageUpdate) ClearToStackID() *MessageUpdate {
	_u.mutation.ClearToStackID()
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *MessageUpdate) SetMessageType(v message.MessageType) *MessageUpdate {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableMessageType(v *message.MessageType) *MessageUpdate {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageUpdate) SetContent(v string) *MessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableContent(v *string) *MessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetReadBy sets the "read_by" field.
func (_u *MessageUpdate) SetReadBy(v []string) *MessageUpdate {
	_u.mutation.SetReadBy(v)
	return _u
}

// AppendReadBy appends value to the "read_by" field.
func (_u *MessageUpdate) AppendReadBy(v []string) *MessageUpdate {
	_u.mutation.AppendReadBy(v)
	return _u
}

// ClearReadBy clears the value of the "read_by" field.
func (_u *MessageUpdate) ClearReadBy() *MessageUpdate {
	_u.mutation.ClearReadBy()
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdate) Mutation() *MessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdate) check() error {
	if v, ok := _u.mutation.MessageType(); ok {
		if err := message.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "Message.message_type": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FromStackID(); ok {
		_spec.SetField(message.FieldFromStackID, field.TypeString, value)
	}
	if _u.mutation.FromStackIDCleared() {
		_spec.ClearField(message.FieldFromStackID, field.TypeString)
	}
	if value, ok := _u.mutation.ToStackID(); ok {
		_spec.SetField(message.FieldToStackID, field.TypeString, value)
	}
	if _u.mutation.ToStackIDCleared() {
		_spec.ClearField(message.FieldToStackID, field.TypeString)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(message.FieldMessageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReadBy(); ok {
		_spec.SetField(message.FieldReadBy, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReadBy(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, message.FieldReadBy, value)
		})
	}
	if _u.mutation.ReadByCleared() {
		_spec.ClearField(message.FieldReadBy, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageUpdateOne is the builder for updating a single Message entity.
type MessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageMutation
}

// SetFromStackID sets the "from_stack_id" field.
func (_u *MessageUpdateOne) SetFromStackID(v string) *MessageUpdateOne {
	_u.mutation.SetFromStackID(v)
	return _u
}

// SetNillableFromStackID sets the "from_stack_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableFromStackID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetFromStackID(*v)
	}
	return _u
}

// ClearFromStackID clears the value of the "from_stack_id" field.
func (_u *MessageUpdateOne) ClearFromStackID() *MessageUpdateOne {
	_u.mutation.ClearFromStackID()
	return _u
}

// SetToStackID sets the "to_stack_id" field.
func (_u *MessageUpdateOne) SetToStackID(v string) *MessageUpdateOne {
	_u.mutation.SetToStackID(v)
	return _u
}

// SetNillableToStackID sets the "to_stack_id" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableToStackID(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetToStackID(*v)
	}
	return _u
}

// ClearToStackID clears the value of the "to_stack_id" field.
func (_u *MessageUpdateOne) ClearToStackID() *MessageUpdateOne {
	_u.mutation.ClearToStackID()
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *MessageUpdateOne) SetMessageType(v message.MessageType) *MessageUpdateOne {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableMessageType(v *message.MessageType) *MessageUpdateOne {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageUpdateOne) SetContent(v string) *MessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableContent(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetReadBy sets the "read_by" field.
func (_u *MessageUpdateOne) SetReadBy(v []string) *MessageUpdateOne {
	_u.mutation.SetReadBy(v)
	return _u
}

// AppendReadBy appends value to the "read_by" field.
func (_u *MessageUpdateOne) AppendReadBy(v []string) *MessageUpdateOne {
	_u.mutation.AppendReadBy(v)
	return _u
}

// ClearReadBy clears the value of the "read_by" field.
func (_u *MessageUpdateOne) ClearReadBy() *MessageUpdateOne {
	_u.mutation.ClearReadBy()
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdateOne) Mutation() *MessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdateOne) Where(ps ...predicate.Message) *MessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageUpdateOne) Select(field string, fields ...string) *MessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Message entity.
func (_u *MessageUpdateOne) Save(ctx context.Context) (*Message, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdateOne) SaveX(ctx context.Context) *Message {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdateOne) check() error {
	if v, ok := _u.mutation.MessageType(); ok {
		if err := message.MessageTypeValidator(v); err != nil {
			return &ValidationError{Name: "message_type", err: fmt.Errorf(`ent: validator failed for field "Message.message_type": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageUpdateOne) sqlSave(ctx context.Context) (_node *Message, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Message.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, message.FieldID)
		for _, f := range fields {
			if !message.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != message.FieldID {
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
	if value, ok := _u.mutation.FromStackID(); ok {
		_spec.SetField(message.FieldFromStackID, field.TypeString, value)
	}
	if _u.mutation.FromStackIDCleared() {
		_spec.ClearField(message.FieldFromStackID, field.TypeString)
	}
	if value, ok := _u.mutation.ToStackID(); ok {
		_spec.SetField(message.FieldToStackID, field.TypeString, value)
	}
	if _u.mutation.ToStackIDCleared() {
		_spec.ClearField(message.FieldToStackID, field.TypeString)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(message.FieldMessageType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReadBy(); ok {
		_spec.SetField(message.FieldReadBy, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReadBy(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, message.FieldReadBy, value)
		})
	}
	if _u.mutation.ReadByCleared() {
		_spec.ClearField(message.FieldReadBy, field.TypeJSON)
	}
	_node = &Message{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
