// Code generated by ent, DO NOT EDIT.

package agentstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hackfleet/hackfleet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContainsFold(FieldID, id))
}

// StackID applies equality check predicate on the "stack_id" field. It's identical to StackIDEQ.
func StackID(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldStackID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldUpdatedAt, v))
}

// StackIDEQ applies the EQ predicate on the "stack_id" field.
func StackIDEQ(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldStackID, v))
}

// StackIDNEQ applies the NEQ predicate on the "stack_id" field.
func StackIDNEQ(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldStackID, v))
}

// StackIDIn applies the In predicate on the "stack_id" field.
func StackIDIn(vs ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldStackID, vs...))
}

// StackIDNotIn applies the NotIn predicate on the "stack_id" field.
func StackIDNotIn(vs ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldStackID, vs...))
}

// StackIDGT applies the GT predicate on the "stack_id" field.
func StackIDGT(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldStackID, v))
}

// StackIDGTE applies the GTE predicate on the "stack_id" field.
func StackIDGTE(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldStackID, v))
}

// StackIDLT applies the LT predicate on the "stack_id" field.
func StackIDLT(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldStackID, v))
}

// StackIDLTE applies the LTE predicate on the "stack_id" field.
func StackIDLTE(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldStackID, v))
}

// StackIDContains applies the Contains predicate on the "stack_id" field.
func StackIDContains(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContains(FieldStackID, v))
}

// StackIDHasPrefix applies the HasPrefix predicate on the "stack_id" field.
func StackIDHasPrefix(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldHasPrefix(FieldStackID, v))
}

// StackIDHasSuffix applies the HasSuffix predicate on the "stack_id" field.
func StackIDHasSuffix(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldHasSuffix(FieldStackID, v))
}

// StackIDEqualFold applies the EqualFold predicate on the "stack_id" field.
func StackIDEqualFold(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEqualFold(FieldStackID, v))
}

// StackIDContainsFold applies the ContainsFold predicate on the "stack_id" field.
func StackIDContainsFold(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContainsFold(FieldStackID, v))
}

// AgentTypeEQ applies the EQ predicate on the "agent_type" field.
func AgentTypeEQ(v AgentType) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldAgentType, v))
}

// AgentTypeNEQ applies the NEQ predicate on the "agent_type" field.
func AgentTypeNEQ(v AgentType) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldAgentType, v))
}

// AgentTypeIn applies the In predicate on the "agent_type" field.
func AgentTypeIn(vs ...AgentType) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldAgentType, vs...))
}

// AgentTypeNotIn applies the NotIn predicate on the "agent_type" field.
func AgentTypeNotIn(vs ...AgentType) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldAgentType, vs...))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldNotNull(FieldContext))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasStack applies the HasEdge predicate on the "stack" edge.
func HasStack() predicate.AgentState {
	return predicate.AgentState(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StackTable, StackColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStackWith applies the HasEdge predicate on the "stack" edge with a given conditions (other predicates).
func HasStackWith(preds ...predicate.Stack) predicate.AgentState {
	return predicate.AgentState(func(s *sql.Selector) {
		step := newStackStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentState) predicate.AgentState {
	return predicate.AgentState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentState) predicate.AgentState {
	return predicate.AgentState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentState) predicate.AgentState {
	return predicate.AgentState(sql.NotPredicates(p))
}
