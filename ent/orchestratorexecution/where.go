// Code generated by ent, DO NOT EDIT.

package orchestratorexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hackfleet/hackfleet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldContainsFold(FieldID, id))
}

// StackID applies equality check predicate on the "stack_id" field. It's identical to StackIDEQ.
func StackID(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldEQ(FieldStackID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// Decision applies equality check predicate on the "decision" field. It's identical to DecisionEQ.
func Decision(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldEQ(FieldDecision, v))
}

// PauseDurationMs applies equality check predicate on the "pause_duration_ms" field. It's identical to PauseDurationMsEQ.
func PauseDurationMs(v int64) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldEQ(FieldPauseDurationMs, v))
}

// GraphSummary applies equality check predicate on the "graph_summary" field. It's identical to GraphSummaryEQ.
func GraphSummary(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldEQ(FieldGraphSummary, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// StackIDEQ applies the EQ predicate on the "stack_id" field.
func StackIDEQ(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldEQ(FieldStackID, v))
}

// StackIDNEQ applies the NEQ predicate on the "stack_id" field.
func StackIDNEQ(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldNEQ(FieldStackID, v))
}

// StackIDIn applies the In predicate on the "stack_id" field.
func StackIDIn(vs ...string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldIn(FieldStackID, vs...))
}

// StackIDNotIn applies the NotIn predicate on the "stack_id" field.
func StackIDNotIn(vs ...string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldNotIn(FieldStackID, vs...))
}

// StackIDGT applies the GT predicate on the "stack_id" field.
func StackIDGT(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldGT(FieldStackID, v))
}

// StackIDGTE applies the GTE predicate on the "stack_id" field.
func StackIDGTE(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldGTE(FieldStackID, v))
}

// StackIDLT applies the LT predicate on the "stack_id" field.
func StackIDLT(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldLT(FieldStackID, v))
}

// StackIDLTE applies the LTE predicate on the "stack_id" field.
func StackIDLTE(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldLTE(FieldStackID, v))
}

// StackIDContains applies the Contains predicate on the "stack_id" field.
func StackIDContains(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldContains(FieldStackID, v))
}

// StackIDHasPrefix applies the HasPrefix predicate on the "stack_id" field.
func StackIDHasPrefix(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldHasPrefix(FieldStackID, v))
}

// StackIDHasSuffix applies the HasSuffix predicate on the "stack_id" field.
func StackIDHasSuffix(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldHasSuffix(FieldStackID, v))
}

// StackIDEqualFold applies the EqualFold predicate on the "stack_id" field.
func StackIDEqualFold(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldEqualFold(FieldStackID, v))
}

// StackIDContainsFold applies the ContainsFold predicate on the "stack_id" field.
func StackIDContainsFold(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldContainsFold(FieldStackID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldNotNull(FieldCompletedAt))
}

// DecisionEQ applies the EQ predicate on the "decision" field.
func DecisionEQ(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldEQ(FieldDecision, v))
}

// DecisionNEQ applies the NEQ predicate on the "decision" field.
func DecisionNEQ(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldNEQ(FieldDecision, v))
}

// DecisionIn applies the In predicate on the "decision" field.
func DecisionIn(vs ...string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldIn(FieldDecision, vs...))
}

// DecisionNotIn applies the NotIn predicate on the "decision" field.
func DecisionNotIn(vs ...string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldNotIn(FieldDecision, vs...))
}

// DecisionGT applies the GT predicate on the "decision" field.
func DecisionGT(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldGT(FieldDecision, v))
}

// DecisionGTE applies the GTE predicate on the "decision" field.
func DecisionGTE(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldGTE(FieldDecision, v))
}

// DecisionLT applies the LT predicate on the "decision" field.
func DecisionLT(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldLT(FieldDecision, v))
}

// DecisionLTE applies the LTE predicate on the "decision" field.
func DecisionLTE(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldLTE(FieldDecision, v))
}

// DecisionContains applies the Contains predicate on the "decision" field.
func DecisionContains(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldContains(FieldDecision, v))
}

// DecisionHasPrefix applies the HasPrefix predicate on the "decision" field.
func DecisionHasPrefix(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldHasPrefix(FieldDecision, v))
}

// DecisionHasSuffix applies the HasSuffix predicate on the "decision" field.
func DecisionHasSuffix(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldHasSuffix(FieldDecision, v))
}

// DecisionIsNil applies the IsNil predicate on the "decision" field.
func DecisionIsNil() predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldIsNull(FieldDecision))
}

// DecisionNotNil applies the NotNil predicate on the "decision" field.
func DecisionNotNil() predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldNotNull(FieldDecision))
}

// DecisionEqualFold applies the EqualFold predicate on the "decision" field.
func DecisionEqualFold(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldEqualFold(FieldDecision, v))
}

// DecisionContainsFold applies the ContainsFold predicate on the "decision" field.
func DecisionContainsFold(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldContainsFold(FieldDecision, v))
}

// PauseDurationMsEQ applies the EQ predicate on the "pause_duration_ms" field.
func PauseDurationMsEQ(v int64) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldEQ(FieldPauseDurationMs, v))
}

// PauseDurationMsNEQ applies the NEQ predicate on the "pause_duration_ms" field.
func PauseDurationMsNEQ(v int64) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldNEQ(FieldPauseDurationMs, v))
}

// PauseDurationMsIn applies the In predicate on the "pause_duration_ms" field.
func PauseDurationMsIn(vs ...int64) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldIn(FieldPauseDurationMs, vs...))
}

// PauseDurationMsNotIn applies the NotIn predicate on the "pause_duration_ms" field.
func PauseDurationMsNotIn(vs ...int64) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldNotIn(FieldPauseDurationMs, vs...))
}

// PauseDurationMsGT applies the GT predicate on the "pause_duration_ms" field.
func PauseDurationMsGT(v int64) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldGT(FieldPauseDurationMs, v))
}

// PauseDurationMsGTE applies the GTE predicate on the "pause_duration_ms" field.
func PauseDurationMsGTE(v int64) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldGTE(FieldPauseDurationMs, v))
}

// PauseDurationMsLT applies the LT predicate on the "pause_duration_ms" field.
func PauseDurationMsLT(v int64) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldLT(FieldPauseDurationMs, v))
}

// PauseDurationMsLTE applies the LTE predicate on the "pause_duration_ms" field.
func PauseDurationMsLTE(v int64) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldLTE(FieldPauseDurationMs, v))
}

// PauseDurationMsIsNil applies the IsNil predicate on the "pause_duration_ms" field.
func PauseDurationMsIsNil() predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldIsNull(FieldPauseDurationMs))
}

// PauseDurationMsNotNil applies the NotNil predicate on the "pause_duration_ms" field.
func PauseDurationMsNotNil() predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldNotNull(FieldPauseDurationMs))
}

// GraphSummaryEQ applies the EQ predicate on the "graph_summary" field.
func GraphSummaryEQ(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldEQ(FieldGraphSummary, v))
}

// GraphSummaryNEQ applies the NEQ predicate on the "graph_summary" field.
func GraphSummaryNEQ(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldNEQ(FieldGraphSummary, v))
}

// GraphSummaryIn applies the In predicate on the "graph_summary" field.
func GraphSummaryIn(vs ...string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldIn(FieldGraphSummary, vs...))
}

// GraphSummaryNotIn applies the NotIn predicate on the "graph_summary" field.
func GraphSummaryNotIn(vs ...string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldNotIn(FieldGraphSummary, vs...))
}

// GraphSummaryGT applies the GT predicate on the "graph_summary" field.
func GraphSummaryGT(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldGT(FieldGraphSummary, v))
}

// GraphSummaryGTE applies the GTE predicate on the "graph_summary" field.
func GraphSummaryGTE(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldGTE(FieldGraphSummary, v))
}

// GraphSummaryLT applies the LT predicate on the "graph_summary" field.
func GraphSummaryLT(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldLT(FieldGraphSummary, v))
}

// GraphSummaryLTE applies the LTE predicate on the "graph_summary" field.
func GraphSummaryLTE(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldLTE(FieldGraphSummary, v))
}

// GraphSummaryContains applies the Contains predicate on the "graph_summary" field.
func GraphSummaryContains(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldContains(FieldGraphSummary, v))
}

// GraphSummaryHasPrefix applies the HasPrefix predicate on the "graph_summary" field.
func GraphSummaryHasPrefix(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldHasPrefix(FieldGraphSummary, v))
}

// GraphSummaryHasSuffix applies the HasSuffix predicate on the "graph_summary" field.
func GraphSummaryHasSuffix(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldHasSuffix(FieldGraphSummary, v))
}

// GraphSummaryIsNil applies the IsNil predicate on the "graph_summary" field.
func GraphSummaryIsNil() predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldIsNull(FieldGraphSummary))
}

// GraphSummaryNotNil applies the NotNil predicate on the "graph_summary" field.
func GraphSummaryNotNil() predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldNotNull(FieldGraphSummary))
}

// GraphSummaryEqualFold applies the EqualFold predicate on the "graph_summary" field.
func GraphSummaryEqualFold(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldEqualFold(FieldGraphSummary, v))
}

// GraphSummaryContainsFold applies the ContainsFold predicate on the "graph_summary" field.
func GraphSummaryContainsFold(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldContainsFold(FieldGraphSummary, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasStack applies the HasEdge predicate on the "stack" edge.
func HasStack() predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StackTable, StackColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStackWith applies the HasEdge predicate on the "stack" edge with a given conditions (other predicates).
func HasStackWith(preds ...predicate.Stack) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(func(s *sql.Selector) {
		step := newStackStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OrchestratorExecution) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OrchestratorExecution) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OrchestratorExecution) predicate.OrchestratorExecution {
	return predicate.OrchestratorExecution(sql.NotPredicates(p))
}
