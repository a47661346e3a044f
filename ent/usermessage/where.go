// Code generated by ent, DO NOT EDIT.

package usermessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hackfleet/hackfleet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldContainsFold(FieldID, id))
}

// TeamID applies equality check predicate on the "team_id" field. It's identical to TeamIDEQ.
func TeamID(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldEQ(FieldTeamID, v))
}

// SenderName applies equality check predicate on the "sender_name" field. It's identical to SenderNameEQ.
func SenderName(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldEQ(FieldSenderName, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldEQ(FieldContent, v))
}

// Processed applies equality check predicate on the "processed" field. It's identical to ProcessedEQ.
func Processed(v bool) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldEQ(FieldProcessed, v))
}

// ResponseID applies equality check predicate on the "response_id" field. It's identical to ResponseIDEQ.
func ResponseID(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldEQ(FieldResponseID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// TeamIDEQ applies the EQ predicate on the "team_id" field.
func TeamIDEQ(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldEQ(FieldTeamID, v))
}

// TeamIDNEQ applies the NEQ predicate on the "team_id" field.
func TeamIDNEQ(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldNEQ(FieldTeamID, v))
}

// TeamIDIn applies the In predicate on the "team_id" field.
func TeamIDIn(vs ...string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldIn(FieldTeamID, vs...))
}

// TeamIDNotIn applies the NotIn predicate on the "team_id" field.
func TeamIDNotIn(vs ...string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldNotIn(FieldTeamID, vs...))
}

// TeamIDGT applies the GT predicate on the "team_id" field.
func TeamIDGT(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldGT(FieldTeamID, v))
}

// TeamIDGTE applies the GTE predicate on the "team_id" field.
func TeamIDGTE(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldGTE(FieldTeamID, v))
}

// TeamIDLT applies the LT predicate on the "team_id" field.
func TeamIDLT(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldLT(FieldTeamID, v))
}

// TeamIDLTE applies the LTE predicate on the "team_id" field.
func TeamIDLTE(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldLTE(FieldTeamID, v))
}

// TeamIDContains applies the Contains predicate on the "team_id" field.
func TeamIDContains(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldContains(FieldTeamID, v))
}

// TeamIDHasPrefix applies the HasPrefix predicate on the "team_id" field.
func TeamIDHasPrefix(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldHasPrefix(FieldTeamID, v))
}

// TeamIDHasSuffix applies the HasSuffix predicate on the "team_id" field.
func TeamIDHasSuffix(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldHasSuffix(FieldTeamID, v))
}

// TeamIDEqualFold applies the EqualFold predicate on the "team_id" field.
func TeamIDEqualFold(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldEqualFold(FieldTeamID, v))
}

// TeamIDContainsFold applies the ContainsFold predicate on the "team_id" field.
func TeamIDContainsFold(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldContainsFold(FieldTeamID, v))
}

// SenderNameEQ applies the EQ predicate on the "sender_name" field.
func SenderNameEQ(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldEQ(FieldSenderName, v))
}

// SenderNameNEQ applies the NEQ predicate on the "sender_name" field.
func SenderNameNEQ(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldNEQ(FieldSenderName, v))
}

// SenderNameIn applies the In predicate on the "sender_name" field.
func SenderNameIn(vs ...string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldIn(FieldSenderName, vs...))
}

// SenderNameNotIn applies the NotIn predicate on the "sender_name" field.
func SenderNameNotIn(vs ...string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldNotIn(FieldSenderName, vs...))
}

// SenderNameGT applies the GT predicate on the "sender_name" field.
func SenderNameGT(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldGT(FieldSenderName, v))
}

// SenderNameGTE applies the GTE predicate on the "sender_name" field.
func SenderNameGTE(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldGTE(FieldSenderName, v))
}

// SenderNameLT applies the LT predicate on the "sender_name" field.
func SenderNameLT(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldLT(FieldSenderName, v))
}

// SenderNameLTE applies the LTE predicate on the "sender_name" field.
func SenderNameLTE(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldLTE(FieldSenderName, v))
}

// SenderNameContains applies the Contains predicate on the "sender_name" field.
func SenderNameContains(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldContains(FieldSenderName, v))
}

// SenderNameHasPrefix applies the HasPrefix predicate on the "sender_name" field.
func SenderNameHasPrefix(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldHasPrefix(FieldSenderName, v))
}

// SenderNameHasSuffix applies the HasSuffix predicate on the "sender_name" field.
func SenderNameHasSuffix(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldHasSuffix(FieldSenderName, v))
}

// SenderNameEqualFold applies the EqualFold predicate on the "sender_name" field.
func SenderNameEqualFold(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldEqualFold(FieldSenderName, v))
}

// SenderNameContainsFold applies the ContainsFold predicate on the "sender_name" field.
func SenderNameContainsFold(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldContainsFold(FieldSenderName, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldContainsFold(FieldContent, v))
}

// ProcessedEQ applies the EQ predicate on the "processed" field.
func ProcessedEQ(v bool) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldEQ(FieldProcessed, v))
}

// ProcessedNEQ applies the NEQ predicate on the "processed" field.
func ProcessedNEQ(v bool) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldNEQ(FieldProcessed, v))
}

// ResponseIDEQ applies the EQ predicate on the "response_id" field.
func ResponseIDEQ(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldEQ(FieldResponseID, v))
}

// ResponseIDNEQ applies the NEQ predicate on the "response_id" field.
func ResponseIDNEQ(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldNEQ(FieldResponseID, v))
}

// ResponseIDIn applies the In predicate on the "response_id" field.
func ResponseIDIn(vs ...string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldIn(FieldResponseID, vs...))
}

// ResponseIDNotIn applies the NotIn predicate on the "response_id" field.
func ResponseIDNotIn(vs ...string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldNotIn(FieldResponseID, vs...))
}

// ResponseIDGT applies the GT predicate on the "response_id" field.
func ResponseIDGT(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldGT(FieldResponseID, v))
}

// ResponseIDGTE applies the GTE predicate on the "response_id" field.
func ResponseIDGTE(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldGTE(FieldResponseID, v))
}

// ResponseIDLT applies the LT predicate on the "response_id" field.
func ResponseIDLT(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldLT(FieldResponseID, v))
}

// ResponseIDLTE applies the LTE predicate on the "response_id" field.
func ResponseIDLTE(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldLTE(FieldResponseID, v))
}

// ResponseIDContains applies the Contains predicate on the "response_id" field.
func ResponseIDContains(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldContains(FieldResponseID, v))
}

// ResponseIDHasPrefix applies the HasPrefix predicate on the "response_id" field.
func ResponseIDHasPrefix(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldHasPrefix(FieldResponseID, v))
}

// ResponseIDHasSuffix applies the HasSuffix predicate on the "response_id" field.
func ResponseIDHasSuffix(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldHasSuffix(FieldResponseID, v))
}

// ResponseIDIsNil applies the IsNil predicate on the "response_id" field.
func ResponseIDIsNil() predicate.UserMessage {
	return predicate.UserMessage(sql.FieldIsNull(FieldResponseID))
}

// ResponseIDNotNil applies the NotNil predicate on the "response_id" field.
func ResponseIDNotNil() predicate.UserMessage {
	return predicate.UserMessage(sql.FieldNotNull(FieldResponseID))
}

// ResponseIDEqualFold applies the EqualFold predicate on the "response_id" field.
func ResponseIDEqualFold(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldEqualFold(FieldResponseID, v))
}

// ResponseIDContainsFold applies the ContainsFold predicate on the "response_id" field.
func ResponseIDContainsFold(v string) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldContainsFold(FieldResponseID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UserMessage {
	return predicate.UserMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// HasStack applies the HasEdge predicate on the "stack" edge.
func HasStack() predicate.UserMessage {
	return predicate.UserMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StackTable, StackColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStackWith applies the HasEdge predicate on the "stack" edge with a given conditions (other predicates).
func HasStackWith(preds ...predicate.Stack) predicate.UserMessage {
	return predicate.UserMessage(func(s *sql.Selector) {
		step := newStackStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserMessage) predicate.UserMessage {
	return predicate.UserMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserMessage) predicate.UserMessage {
	return predicate.UserMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserMessage) predicate.UserMessage {
	return predicate.UserMessage(sql.NotPredicates(p))
}
