// Code generated by ent, DO NOT EDIT.

package message

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hackfleet/hackfleet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldID, id))
}

// FromStackID applies equality check predicate on the "from_stack_id" field. It's identical to FromStackIDEQ.
func FromStackID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldFromStackID, v))
}

// ToStackID applies equality check predicate on the "to_stack_id" field. It's identical to ToStackIDEQ.
func ToStackID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldToStackID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldContent, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldCreatedAt, v))
}

// FromStackIDEQ applies the EQ predicate on the "from_stack_id" field.
func FromStackIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldFromStackID, v))
}

// FromStackIDNEQ applies the NEQ predicate on the "from_stack_id" field.
func FromStackIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldFromStackID, v))
}

// FromStackIDIn applies the In predicate on the "from_stack_id" field.
func FromStackIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldFromStackID, vs...))
}

// FromStackIDNotIn applies the NotIn predicate on the "from_stack_id" field.
func FromStackIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldFromStackID, vs...))
}

// FromStackIDGT applies the GT predicate on the "from_stack_id" field.
func FromStackIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldFromStackID, v))
}

// FromStackIDGTE applies the GTE predicate on the "from_stack_id" field.
func FromStackIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldFromStackID, v))
}

// FromStackIDLT applies the LT predicate on the "from_stack_id" field.
func FromStackIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldFromStackID, v))
}

// FromStackIDLTE applies the LTE predicate on the "from_stack_id" field.
func FromStackIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldFromStackID, v))
}

// FromStackIDContains applies the Contains predicate on the "from_stack_id" field.
func FromStackIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldFromStackID, v))
}

// FromStackIDHasPrefix applies the HasPrefix predicate on the "from_stack_id" field.
func FromStackIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldFromStackID, v))
}

// FromStackIDHasSuffix applies the HasSuffix predicate on the "from_stack_id" field.
func FromStackIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldFromStackID, v))
}

// FromStackIDIsNil applies the IsNil predicate on the "from_stack_id" field.
func FromStackIDIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldFromStackID))
}

// FromStackIDNotNil applies the NotNil predicate on the "from_stack_id" field.
func FromStackIDNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldFromStackID))
}

// FromStackIDEqualFold applies the EqualFold predicate on the "from_stack_id" field.
func FromStackIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldFromStackID, v))
}

// FromStackIDContainsFold applies the ContainsFold predicate on the "from_stack_id" field.
func FromStackIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldFromStackID, v))
}

// ToStackIDEQ applies the EQ predicate on the "to_stack_id" field.
func ToStackIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldToStackID, v))
}

// ToStackIDNEQ applies the NEQ predicate on the "to_stack_id" field.
func ToStackIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldToStackID, v))
}

// ToStackIDIn applies the In predicate on the "to_stack_id" field.
func ToStackIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldToStackID, vs...))
}

// ToStackIDNotIn applies the NotIn predicate on the "to_stack_id" field.
func ToStackIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldToStackID, vs...))
}

// ToStackIDGT applies the GT predicate on the "to_stack_id" field.
func ToStackIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldToStackID, v))
}

// ToStackIDGTE applies the GTE predicate on the "to_stack_id" field.
func ToStackIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldToStackID, v))
}

// ToStackIDLT applies the LT predicate on the "to_stack_id" field.
func ToStackIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldToStackID, v))
}

// ToStackIDLTE applies the LTE predicate on the "to_stack_id" field.
func ToStackIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldToStackID, v))
}

// ToStackIDContains applies the Contains predicate on the "to_stack_id" field.
func ToStackIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldToStackID, v))
}

// ToStackIDHasPrefix applies the HasPrefix predicate on the "to_stack_id" field.
func ToStackIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldToStackID, v))
}

// ToStackIDHasSuffix applies the HasSuffix predicate on the "to_stack_id" field.
func ToStackIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldToStackID, v))
}

// ToStackIDIsNil applies the IsNil predicate on the "to_stack_id" field.
func ToStackIDIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldToStackID))
}

// ToStackIDNotNil applies the NotNil predicate on the "to_stack_id" field.
func ToStackIDNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldToStackID))
}

// ToStackIDEqualFold applies the EqualFold predicate on the "to_stack_id" field.
func ToStackIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldToStackID, v))
}

// ToStackIDContainsFold applies the ContainsFold predicate on the "to_stack_id" field.
func ToStackIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldToStackID, v))
}

// MessageTypeEQ applies the EQ predicate on the "message_type" field.
func MessageTypeEQ(v MessageType) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldMessageType, v))
}

// MessageTypeNEQ applies the NEQ predicate on the "message_type" field.
func MessageTypeNEQ(v MessageType) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldMessageType, v))
}

// MessageTypeIn applies the In predicate on the "message_type" field.
func MessageTypeIn(vs ...MessageType) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldMessageType, vs...))
}

// MessageTypeNotIn applies the NotIn predicate on the "message_type" field.
func MessageTypeNotIn(vs ...MessageType) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldMessageType, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldContent, v))
}

// ReadByIsNil applies the IsNil predicate on the "read_by" field.
func ReadByIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldReadBy))
}

// ReadByNotNil applies the NotNil predicate on the "read_by" field.
func ReadByNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldReadBy))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Message) predicate.Message {
	return predicate.Message(sql.NotPredicates(p))
}
