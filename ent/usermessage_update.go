// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hackfleet/hackfleet/ent/predicate"
	"github.com/hackfleet/hackfleet/ent/usermessage"
)

// UserMessageUpdate is the builder for updating UserMessage entities.
type UserMessageUpdate struct {
	config
	hooks    []Hook
	mutation *UserMessageMutation
}

// Where appends a list predicates to the UserMessageUpdate builder.
func (_u *UserMessageUpdate) Where(ps ...predicate.UserMessage) *UserMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSenderName sets the "sender_name" field.
func (_u *UserMessageUpdate) SetSenderName(v string) *UserMessageUpdate {
	_u.mutation.SetSenderName(v)
	return _u
}

// SetNillableSenderName sets the "sender_name" field if the given value is not nil.
func (_u *UserMessageUpdate) SetNillableSenderName(v *string) *UserMessageUpdate {
	if v != nil {
		_u.SetSenderName(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *UserMessageUpdate) SetContent(v string) *UserMessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *UserMessageUpdate) SetNillableContent(v *string) *UserMessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *UserMessageUpdate) SetProcessed(v bool) *UserMessageUpdate {
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *UserMessageUpdate) SetNillableProcessed(v *bool) *UserMessageUpdate {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// SetResponseID sets the "response_id" field.
func (_u *UserMessageUpdate) SetResponseID(v string) *UserMessageUpdate {
	_u.mutation.SetResponseID(v)
	return _u
}

// SetNillableResponseID sets the "response_id" field if the given value is not nil.
func (_u *UserMessageUpdate) SetNillableResponseID(v *string) *UserMessageUpdate {
	if v != nil {
		_u.SetResponseID(*v)
	}
	return _u
}

// ClearResponseID clears the value of the "response_id" field.
func (_u *UserMessageUpdate) ClearResponseID() *UserMessageUpdate {
	_u.mutation.ClearResponseID()
	return _u
}

// Mutation returns the UserMessageMutation object of the builder.
func (_u *UserMessageUpdate) Mutation() *UserMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserMessageUpdate) check() error {
	if _u.mutation.StackCleared() && len(_u.mutation.StackIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserMessage.stack"`)
	}
	return nil
}

func (_u *UserMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usermessage.Table, usermessage.Columns, sqlgraph.NewFieldSpec(usermessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SenderName(); ok {
		_spec.SetField(usermessage.FieldSenderName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(usermessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(usermessage.FieldProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseID(); ok {
		_spec.SetField(usermessage.FieldResponseID, field.TypeString, value)
	}
	if _u.mutation.ResponseIDCleared() {
		_spec.ClearField(usermessage.FieldResponseID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usermessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserMessageUpdateOne is the builder for updating a single UserMessage entity.
type UserMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMessageMutation
}

// SetSenderName sets the "sender_name" field.
func (_u *UserMessageUpdateOne) SetSenderName(v string) *UserMessageUpdateOne {
	_u.mutation.SetSenderName(v)
	return _u
}

// SetNillableSenderName sets the "sender_name" field if the given value is not nil.
func (_u *UserMessageUpdateOne) SetNillableSenderName(v *string) *UserMessageUpdateOne {
	if v != nil {
		_u.SetSenderName(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *UserMessageUpdateOne) SetContent(v string) *UserMessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *UserMessageUpdateOne) SetNillableContent(v *string) *UserMessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *UserMessageUpdateOne) SetProcessed(v bool) *UserMessageUpdateOne {
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *UserMessageUpdateOne) SetNillableProcessed(v *bool) *UserMessageUpdateOne {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// SetResponseID sets the "response_id" field.
func (_u *UserMessageUpdateOne) SetResponseID(v string) *UserMessageUpdateOne {
	_u.mutation.SetResponseID(v)
	return _u
}

// SetNillableResponseID sets the "response_id" field if the given value is not nil.
func (_u *UserMessageUpdateOne) SetNillableResponseID(v *string) *UserMessageUpdateOne {
	if v != nil {
		_u.SetResponseID(*v)
	}
	return _u
}

// ClearResponseID clears the value of the "response_id" field.
func (_u *UserMessageUpdateOne) ClearResponseID() *UserMessageUpdateOne {
	_u.mutation.ClearResponseID()
	return _u
}

// Mutation returns the UserMessageMutation object of the builder.
func (_u *UserMessageUpdateOne) Mutation() *UserMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserMessageUpdate builder.
func (_u *UserMessageUpdateOne) Where(ps ...predicate.UserMessage) *UserMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserMessageUpdateOne) Select(field string, fields ...string) *UserMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserMessage entity.
func (_u *UserMessageUpdateOne) Save(ctx context.Context) (*UserMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserMessageUpdateOne) SaveX(ctx context.Context) *UserMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserMessageUpdateOne) check() error {
	if _u.mutation.StackCleared() && len(_u.mutation.StackIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UserMessage.stack"`)
	}
	return nil
}

func (_u *UserMessageUpdateOne) sqlSave(ctx context.Context) (_node *UserMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usermessage.Table, usermessage.Columns, sqlgraph.NewFieldSpec(usermessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usermessage.FieldID)
		for _, f := range fields {
			if !usermessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usermessage.FieldID {
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
	if value, ok := _u.mutation.SenderName(); ok {
		_spec.SetField(usermessage.FieldSenderName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(usermessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(usermessage.FieldProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseID(); ok {
		_spec.SetField(usermessage.FieldResponseID, field.TypeString, value)
	}
	if _u.mutation.ResponseIDCleared() {
		_spec.ClearField(usermessage.FieldResponseID, field.TypeString)
	}
	_node = &UserMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usermessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
