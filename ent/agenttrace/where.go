// Code generated by ent, DO NOT EDIT.

package agenttrace

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hackfleet/hackfleet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContainsFold(FieldID, id))
}

// StackID applies equality check predicate on the "stack_id" field. It's identical to StackIDEQ.
func StackID(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldStackID, v))
}

// Thought applies equality check predicate on the "thought" field. It's identical to ThoughtEQ.
func Thought(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldThought, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldAction, v))
}

// Result applies equality check predicate on the "result" field. It's identical to ResultEQ.
func Result(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldResult, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldCreatedAt, v))
}

// StackIDEQ applies the EQ predicate on the "stack_id" field.
func StackIDEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldStackID, v))
}

// StackIDNEQ applies the NEQ predicate on the "stack_id" field.
func StackIDNEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldStackID, v))
}

// StackIDIn applies the In predicate on the "stack_id" field.
func StackIDIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldStackID, vs...))
}

// StackIDNotIn applies the NotIn predicate on the "stack_id" field.
func StackIDNotIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldStackID, vs...))
}

// StackIDGT applies the GT predicate on the "stack_id" field.
func StackIDGT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldStackID, v))
}

// StackIDGTE applies the GTE predicate on the "stack_id" field.
func StackIDGTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldStackID, v))
}

// StackIDLT applies the LT predicate on the "stack_id" field.
func StackIDLT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldStackID, v))
}

// StackIDLTE applies the LTE predicate on the "stack_id" field.
func StackIDLTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldStackID, v))
}

// StackIDContains applies the Contains predicate on the "stack_id" field.
func StackIDContains(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContains(FieldStackID, v))
}

// StackIDHasPrefix applies the HasPrefix predicate on the "stack_id" field.
func StackIDHasPrefix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasPrefix(FieldStackID, v))
}

// StackIDHasSuffix applies the HasSuffix predicate on the "stack_id" field.
func StackIDHasSuffix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasSuffix(FieldStackID, v))
}

// StackIDEqualFold applies the EqualFold predicate on the "stack_id" field.
func StackIDEqualFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEqualFold(FieldStackID, v))
}

// StackIDContainsFold applies the ContainsFold predicate on the "stack_id" field.
func StackIDContainsFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContainsFold(FieldStackID, v))
}

// AgentTypeEQ applies the EQ predicate on the "agent_type" field.
func AgentTypeEQ(v AgentType) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldAgentType, v))
}

// AgentTypeNEQ applies the NEQ predicate on the "agent_type" field.
func AgentTypeNEQ(v AgentType) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldAgentType, v))
}

// AgentTypeIn applies the In predicate on the "agent_type" field.
func AgentTypeIn(vs ...AgentType) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldAgentType, vs...))
}

// AgentTypeNotIn applies the NotIn predicate on the "agent_type" field.
func AgentTypeNotIn(vs ...AgentType) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldAgentType, vs...))
}

// ThoughtEQ applies the EQ predicate on the "thought" field.
func ThoughtEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldThought, v))
}

// ThoughtNEQ applies the NEQ predicate on the "thought" field.
func ThoughtNEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldThought, v))
}

// ThoughtIn applies the In predicate on the "thought" field.
func ThoughtIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldThought, vs...))
}

// ThoughtNotIn applies the NotIn predicate on the "thought" field.
func ThoughtNotIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldThought, vs...))
}

// ThoughtGT applies the GT predicate on the "thought" field.
func ThoughtGT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldThought, v))
}

// ThoughtGTE applies the GTE predicate on the "thought" field.
func ThoughtGTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldThought, v))
}

// ThoughtLT applies the LT predicate on the "thought" field.
func ThoughtLT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldThought, v))
}

// ThoughtLTE applies the LTE predicate on the "thought" field.
func ThoughtLTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldThought, v))
}

// ThoughtContains applies the Contains predicate on the "thought" field.
func ThoughtContains(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContains(FieldThought, v))
}

// ThoughtHasPrefix applies the HasPrefix predicate on the "thought" field.
func ThoughtHasPrefix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasPrefix(FieldThought, v))
}

// ThoughtHasSuffix applies the HasSuffix predicate on the "thought" field.
func ThoughtHasSuffix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasSuffix(FieldThought, v))
}

// ThoughtIsNil applies the IsNil predicate on the "thought" field.
func ThoughtIsNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIsNull(FieldThought))
}

// ThoughtNotNil applies the NotNil predicate on the "thought" field.
func ThoughtNotNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotNull(FieldThought))
}

// ThoughtEqualFold applies the EqualFold predicate on the "thought" field.
func ThoughtEqualFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEqualFold(FieldThought, v))
}

// ThoughtContainsFold applies the ContainsFold predicate on the "thought" field.
func ThoughtContainsFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContainsFold(FieldThought, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContainsFold(FieldAction, v))
}

// ResultEQ applies the EQ predicate on the "result" field.
func ResultEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldResult, v))
}

// ResultNEQ applies the NEQ predicate on the "result" field.
func ResultNEQ(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldResult, v))
}

// ResultIn applies the In predicate on the "result" field.
func ResultIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldResult, vs...))
}

// ResultNotIn applies the NotIn predicate on the "result" field.
func ResultNotIn(vs ...string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldResult, vs...))
}

// ResultGT applies the GT predicate on the "result" field.
func ResultGT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldResult, v))
}

// ResultGTE applies the GTE predicate on the "result" field.
func ResultGTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldResult, v))
}

// ResultLT applies the LT predicate on the "result" field.
func ResultLT(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldResult, v))
}

// ResultLTE applies the LTE predicate on the "result" field.
func ResultLTE(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldResult, v))
}

// ResultContains applies the Contains predicate on the "result" field.
func ResultContains(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContains(FieldResult, v))
}

// ResultHasPrefix applies the HasPrefix predicate on the "result" field.
func ResultHasPrefix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasPrefix(FieldResult, v))
}

// ResultHasSuffix applies the HasSuffix predicate on the "result" field.
func ResultHasSuffix(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldHasSuffix(FieldResult, v))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotNull(FieldResult))
}

// ResultEqualFold applies the EqualFold predicate on the "result" field.
func ResultEqualFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEqualFold(FieldResult, v))
}

// ResultContainsFold applies the ContainsFold predicate on the "result" field.
func ResultContainsFold(v string) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldContainsFold(FieldResult, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentTrace {
	return predicate.AgentTrace(sql.FieldLTE(FieldCreatedAt, v))
}

// HasStack applies the HasEdge predicate on the "stack" edge.
func HasStack() predicate.AgentTrace {
	return predicate.AgentTrace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StackTable, StackColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStackWith applies the HasEdge predicate on the "stack" edge with a given conditions (other predicates).
func HasStackWith(preds ...predicate.Stack) predicate.AgentTrace {
	return predicate.AgentTrace(func(s *sql.Selector) {
		step := newStackStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentTrace) predicate.AgentTrace {
	return predicate.AgentTrace(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentTrace) predicate.AgentTrace {
	return predicate.AgentTrace(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentTrace) predicate.AgentTrace {
	return predicate.AgentTrace(sql.NotPredicates(p))
}
