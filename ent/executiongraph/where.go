// Code generated by ent, DO NOT EDIT.

package executiongraph

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hackfleet/hackfleet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldContainsFold(FieldID, id))
}

// StackID applies equality check predicate on the "stack_id" field. It's identical to StackIDEQ.
func StackID(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldStackID, v))
}

// OrchestratorExecutionID applies equality check predicate on the "orchestrator_execution_id" field. It's identical to OrchestratorExecutionIDEQ.
func OrchestratorExecutionID(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldOrchestratorExecutionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldCompletedAt, v))
}

// StackIDEQ applies the EQ predicate on the "stack_id" field.
func StackIDEQ(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldStackID, v))
}

// StackIDNEQ applies the NEQ predicate on the "stack_id" field.
func StackIDNEQ(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNEQ(FieldStackID, v))
}

// StackIDIn applies the In predicate on the "stack_id" field.
func StackIDIn(vs ...string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldIn(FieldStackID, vs...))
}

// StackIDNotIn applies the NotIn predicate on the "stack_id" field.
func StackIDNotIn(vs ...string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNotIn(FieldStackID, vs...))
}

// StackIDGT applies the GT predicate on the "stack_id" field.
func StackIDGT(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGT(FieldStackID, v))
}

// StackIDGTE applies the GTE predicate on the "stack_id" field.
func StackIDGTE(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGTE(FieldStackID, v))
}

// StackIDLT applies the LT predicate on the "stack_id" field.
func StackIDLT(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLT(FieldStackID, v))
}

// StackIDLTE applies the LTE predicate on the "stack_id" field.
func StackIDLTE(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLTE(FieldStackID, v))
}

// StackIDContains applies the Contains predicate on the "stack_id" field.
func StackIDContains(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldContains(FieldStackID, v))
}

// StackIDHasPrefix applies the HasPrefix predicate on the "stack_id" field.
func StackIDHasPrefix(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldHasPrefix(FieldStackID, v))
}

// StackIDHasSuffix applies the HasSuffix predicate on the "stack_id" field.
func StackIDHasSuffix(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldHasSuffix(FieldStackID, v))
}

// StackIDEqualFold applies the EqualFold predicate on the "stack_id" field.
func StackIDEqualFold(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEqualFold(FieldStackID, v))
}

// StackIDContainsFold applies the ContainsFold predicate on the "stack_id" field.
func StackIDContainsFold(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldContainsFold(FieldStackID, v))
}

// OrchestratorExecutionIDEQ applies the EQ predicate on the "orchestrator_execution_id" field.
func OrchestratorExecutionIDEQ(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldOrchestratorExecutionID, v))
}

// OrchestratorExecutionIDNEQ applies the NEQ predicate on the "orchestrator_execution_id" field.
func OrchestratorExecutionIDNEQ(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNEQ(FieldOrchestratorExecutionID, v))
}

// OrchestratorExecutionIDIn applies the In predicate on the "orchestrator_execution_id" field.
func OrchestratorExecutionIDIn(vs ...string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldIn(FieldOrchestratorExecutionID, vs...))
}

// OrchestratorExecutionIDNotIn applies the NotIn predicate on the "orchestrator_execution_id" field.
func OrchestratorExecutionIDNotIn(vs ...string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNotIn(FieldOrchestratorExecutionID, vs...))
}

// OrchestratorExecutionIDGT applies the GT predicate on the "orchestrator_execution_id" field.
func OrchestratorExecutionIDGT(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGT(FieldOrchestratorExecutionID, v))
}

// OrchestratorExecutionIDGTE applies the GTE predicate on the "orchestrator_execution_id" field.
func OrchestratorExecutionIDGTE(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGTE(FieldOrchestratorExecutionID, v))
}

// OrchestratorExecutionIDLT applies the LT predicate on the "orchestrator_execution_id" field.
func OrchestratorExecutionIDLT(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLT(FieldOrchestratorExecutionID, v))
}

// OrchestratorExecutionIDLTE applies the LTE predicate on the "orchestrator_execution_id" field.
func OrchestratorExecutionIDLTE(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLTE(FieldOrchestratorExecutionID, v))
}

// OrchestratorExecutionIDContains applies the Contains predicate on the "orchestrator_execution_id" field.
func OrchestratorExecutionIDContains(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldContains(FieldOrchestratorExecutionID, v))
}

// OrchestratorExecutionIDHasPrefix applies the HasPrefix predicate on the "orchestrator_execution_id" field.
func OrchestratorExecutionIDHasPrefix(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldHasPrefix(FieldOrchestratorExecutionID, v))
}

// OrchestratorExecutionIDHasSuffix applies the HasSuffix predicate on the "orchestrator_execution_id" field.
func OrchestratorExecutionIDHasSuffix(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldHasSuffix(FieldOrchestratorExecutionID, v))
}

// OrchestratorExecutionIDEqualFold applies the EqualFold predicate on the "orchestrator_execution_id" field.
func OrchestratorExecutionIDEqualFold(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEqualFold(FieldOrchestratorExecutionID, v))
}

// OrchestratorExecutionIDContainsFold applies the ContainsFold predicate on the "orchestrator_execution_id" field.
func OrchestratorExecutionIDContainsFold(v string) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldContainsFold(FieldOrchestratorExecutionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.FieldNotNull(FieldCompletedAt))
}

// HasStack applies the HasEdge predicate on the "stack" edge.
func HasStack() predicate.ExecutionGraph {
	return predicate.ExecutionGraph(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StackTable, StackColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStackWith applies the HasEdge predicate on the "stack" edge with a given conditions (other predicates).
func HasStackWith(preds ...predicate.Stack) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(func(s *sql.Selector) {
		step := newStackStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExecutionGraph) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExecutionGraph) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExecutionGraph) predicate.ExecutionGraph {
	return predicate.ExecutionGraph(sql.NotPredicates(p))
}
