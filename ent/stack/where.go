// Code generated by ent, DO NOT EDIT.

package stack

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hackfleet/hackfleet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Stack {
	return predicate.Stack(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Stack {
	return predicate.Stack(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Stack {
	return predicate.Stack(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Stack {
	return predicate.Stack(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Stack {
	return predicate.Stack(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Stack {
	return predicate.Stack(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Stack {
	return predicate.Stack(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Stack {
	return predicate.Stack(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Stack {
	return predicate.Stack(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Stack {
	return predicate.Stack(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Stack {
	return predicate.Stack(sql.FieldContainsFold(FieldID, id))
}

// ParticipantName applies equality check predicate on the "participant_name" field. It's identical to ParticipantNameEQ.
func ParticipantName(v string) predicate.Stack {
	return predicate.Stack(sql.FieldEQ(FieldParticipantName, v))
}

// LastActivityAt applies equality check predicate on the "last_activity_at" field. It's identical to LastActivityAtEQ.
func LastActivityAt(v time.Time) predicate.Stack {
	return predicate.Stack(sql.FieldEQ(FieldLastActivityAt, v))
}

// TotalCycles applies equality check predicate on the "total_cycles" field. It's identical to TotalCyclesEQ.
func TotalCycles(v int) predicate.Stack {
	return predicate.Stack(sql.FieldEQ(FieldTotalCycles, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Stack {
	return predicate.Stack(sql.FieldEQ(FieldCreatedAt, v))
}

// ParticipantNameEQ applies the EQ predicate on the "participant_name" field.
func ParticipantNameEQ(v string) predicate.Stack {
	return predicate.Stack(sql.FieldEQ(FieldParticipantName, v))
}

// ParticipantNameNEQ applies the NEQ predicate on the "participant_name" field.
func ParticipantNameNEQ(v string) predicate.Stack {
	return predicate.Stack(sql.FieldNEQ(FieldParticipantName, v))
}

// ParticipantNameIn applies the In predicate on the "participant_name" field.
func ParticipantNameIn(vs ...string) predicate.Stack {
	return predicate.Stack(sql.FieldIn(FieldParticipantName, vs...))
}

// ParticipantNameNotIn applies the NotIn predicate on the "participant_name" field.
func ParticipantNameNotIn(vs ...string) predicate.Stack {
	return predicate.Stack(sql.FieldNotIn(FieldParticipantName, vs...))
}

// ParticipantNameGT applies the GT predicate on the "participant_name" field.
func ParticipantNameGT(v string) predicate.Stack {
	return predicate.Stack(sql.FieldGT(FieldParticipantName, v))
}

// ParticipantNameGTE applies the GTE predicate on the "participant_name" field.
func ParticipantNameGTE(v string) predicate.Stack {
	return predicate.Stack(sql.FieldGTE(FieldParticipantName, v))
}

// ParticipantNameLT applies the LT predicate on the "participant_name" field.
func ParticipantNameLT(v string) predicate.Stack {
	return predicate.Stack(sql.FieldLT(FieldParticipantName, v))
}

// ParticipantNameLTE applies the LTE predicate on the "participant_name" field.
func ParticipantNameLTE(v string) predicate.Stack {
	return predicate.Stack(sql.FieldLTE(FieldParticipantName, v))
}

// ParticipantNameContains applies the Contains predicate on the "participant_name" field.
func ParticipantNameContains(v string) predicate.Stack {
	return predicate.Stack(sql.FieldContains(FieldParticipantName, v))
}

// ParticipantNameHasPrefix applies the HasPrefix predicate on the "participant_name" field.
func ParticipantNameHasPrefix(v string) predicate.Stack {
	return predicate.Stack(sql.FieldHasPrefix(FieldParticipantName, v))
}

// ParticipantNameHasSuffix applies the HasSuffix predicate on the "participant_name" field.
func ParticipantNameHasSuffix(v string) predicate.Stack {
	return predicate.Stack(sql.FieldHasSuffix(FieldParticipantName, v))
}

// ParticipantNameEqualFold applies the EqualFold predicate on the "participant_name" field.
func ParticipantNameEqualFold(v string) predicate.Stack {
	return predicate.Stack(sql.FieldEqualFold(FieldParticipantName, v))
}

// ParticipantNameContainsFold applies the ContainsFold predicate on the "participant_name" field.
func ParticipantNameContainsFold(v string) predicate.Stack {
	return predicate.Stack(sql.FieldContainsFold(FieldParticipantName, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v Phase) predicate.Stack {
	return predicate.Stack(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v Phase) predicate.Stack {
	return predicate.Stack(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...Phase) predicate.Stack {
	return predicate.Stack(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...Phase) predicate.Stack {
	return predicate.Stack(sql.FieldNotIn(FieldPhase, vs...))
}

// ExecutionStateEQ applies the EQ predicate on the "execution_state" field.
func ExecutionStateEQ(v ExecutionState) predicate.Stack {
	return predicate.Stack(sql.FieldEQ(FieldExecutionState, v))
}

// ExecutionStateNEQ applies the NEQ predicate on the "execution_state" field.
func ExecutionStateNEQ(v ExecutionState) predicate.Stack {
	return predicate.Stack(sql.FieldNEQ(FieldExecutionState, v))
}

// ExecutionStateIn applies the In predicate on the "execution_state" field.
func ExecutionStateIn(vs ...ExecutionState) predicate.Stack {
	return predicate.Stack(sql.FieldIn(FieldExecutionState, vs...))
}

// ExecutionStateNotIn applies the NotIn predicate on the "execution_state" field.
func ExecutionStateNotIn(vs ...ExecutionState) predicate.Stack {
	return predicate.Stack(sql.FieldNotIn(FieldExecutionState, vs...))
}

// LastActivityAtEQ applies the EQ predicate on the "last_activity_at" field.
func LastActivityAtEQ(v time.Time) predicate.Stack {
	return predicate.Stack(sql.FieldEQ(FieldLastActivityAt, v))
}

// LastActivityAtNEQ applies the NEQ predicate on the "last_activity_at" field.
func LastActivityAtNEQ(v time.Time) predicate.Stack {
	return predicate.Stack(sql.FieldNEQ(FieldLastActivityAt, v))
}

// LastActivityAtIn applies the In predicate on the "last_activity_at" field.
func LastActivityAtIn(vs ...time.Time) predicate.Stack {
	return predicate.Stack(sql.FieldIn(FieldLastActivityAt, vs...))
}

// LastActivityAtNotIn applies the NotIn predicate on the "last_activity_at" field.
func LastActivityAtNotIn(vs ...time.Time) predicate.Stack {
	return predicate.Stack(sql.FieldNotIn(FieldLastActivityAt, vs...))
}

// LastActivityAtGT applies the GT predicate on the "last_activity_at" field.
func LastActivityAtGT(v time.Time) predicate.Stack {
	return predicate.Stack(sql.FieldGT(FieldLastActivityAt, v))
}

// LastActivityAtGTE applies the GTE predicate on the "last_activity_at" field.
func LastActivityAtGTE(v time.Time) predicate.Stack {
	return predicate.Stack(sql.FieldGTE(FieldLastActivityAt, v))
}

// LastActivityAtLT applies the LT predicate on the "last_activity_at" field.
func LastActivityAtLT(v time.Time) predicate.Stack {
	return predicate.Stack(sql.FieldLT(FieldLastActivityAt, v))
}

// LastActivityAtLTE applies the LTE predicate on the "last_activity_at" field.
func LastActivityAtLTE(v time.Time) predicate.Stack {
	return predicate.Stack(sql.FieldLTE(FieldLastActivityAt, v))
}

// LastActivityAtIsNil applies the IsNil predicate on the "last_activity_at" field.
func LastActivityAtIsNil() predicate.Stack {
	return predicate.Stack(sql.FieldIsNull(FieldLastActivityAt))
}

// LastActivityAtNotNil applies the NotNil predicate on the "last_activity_at" field.
func LastActivityAtNotNil() predicate.Stack {
	return predicate.Stack(sql.FieldNotNull(FieldLastActivityAt))
}

// TotalCyclesEQ applies the EQ predicate on the "total_cycles" field.
func TotalCyclesEQ(v int) predicate.Stack {
	return predicate.Stack(sql.FieldEQ(FieldTotalCycles, v))
}

// TotalCyclesNEQ applies the NEQ predicate on the "total_cycles" field.
func TotalCyclesNEQ(v int) predicate.Stack {
	return predicate.Stack(sql.FieldNEQ(FieldTotalCycles, v))
}

// TotalCyclesIn applies the In predicate on the "total_cycles" field.
func TotalCyclesIn(vs ...int) predicate.Stack {
	return predicate.Stack(sql.FieldIn(FieldTotalCycles, vs...))
}

// TotalCyclesNotIn applies the NotIn predicate on the "total_cycles" field.
func TotalCyclesNotIn(vs ...int) predicate.Stack {
	return predicate.Stack(sql.FieldNotIn(FieldTotalCycles, vs...))
}

// TotalCyclesGT applies the GT predicate on the "total_cycles" field.
func TotalCyclesGT(v int) predicate.Stack {
	return predicate.Stack(sql.FieldGT(FieldTotalCycles, v))
}

// TotalCyclesGTE applies the GTE predicate on the "total_cycles" field.
func TotalCyclesGTE(v int) predicate.Stack {
	return predicate.Stack(sql.FieldGTE(FieldTotalCycles, v))
}

// TotalCyclesLT applies the LT predicate on the "total_cycles" field.
func TotalCyclesLT(v int) predicate.Stack {
	return predicate.Stack(sql.FieldLT(FieldTotalCycles, v))
}

// TotalCyclesLTE applies the LTE predicate on the "total_cycles" field.
func TotalCyclesLTE(v int) predicate.Stack {
	return predicate.Stack(sql.FieldLTE(FieldTotalCycles, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Stack {
	return predicate.Stack(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Stack {
	return predicate.Stack(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Stack {
	return predicate.Stack(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Stack {
	return predicate.Stack(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Stack {
	return predicate.Stack(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Stack {
	return predicate.Stack(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Stack {
	return predicate.Stack(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Stack {
	return predicate.Stack(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAgentStates applies the HasEdge predicate on the "agent_states" edge.
func HasAgentStates() predicate.Stack {
	return predicate.Stack(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AgentStatesTable, AgentStatesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentStatesWith applies the HasEdge predicate on the "agent_states" edge with a given conditions (other predicates).
func HasAgentStatesWith(preds ...predicate.AgentState) predicate.Stack {
	return predicate.Stack(func(s *sql.Selector) {
		step := newAgentStatesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProjectIdea applies the HasEdge predicate on the "project_idea" edge.
func HasProjectIdea() predicate.Stack {
	return predicate.Stack(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ProjectIdeaTable, ProjectIdeaColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectIdeaWith applies the HasEdge predicate on the "project_idea" edge with a given conditions (other predicates).
func HasProjectIdeaWith(preds ...predicate.ProjectIdea) predicate.Stack {
	return predicate.Stack(func(s *sql.Selector) {
		step := newProjectIdeaStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTodos applies the HasEdge predicate on the "todos" edge.
func HasTodos() predicate.Stack {
	return predicate.Stack(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TodosTable, TodosColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTodosWith applies the HasEdge predicate on the "todos" edge with a given conditions (other predicates).
func HasTodosWith(preds ...predicate.Todo) predicate.Stack {
	return predicate.Stack(func(s *sql.Selector) {
		step := newTodosStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasArtifacts applies the HasEdge predicate on the "artifacts" edge.
func HasArtifacts() predicate.Stack {
	return predicate.Stack(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ArtifactsTable, ArtifactsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArtifactsWith applies the HasEdge predicate on the "artifacts" edge with a given conditions (other predicates).
func HasArtifactsWith(preds ...predicate.Artifact) predicate.Stack {
	return predicate.Stack(func(s *sql.Selector) {
		step := newArtifactsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTraces applies the HasEdge predicate on the "traces" edge.
func HasTraces() predicate.Stack {
	return predicate.Stack(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TracesTable, TracesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTracesWith applies the HasEdge predicate on the "traces" edge with a given conditions (other predicates).
func HasTracesWith(preds ...predicate.AgentTrace) predicate.Stack {
	return predicate.Stack(func(s *sql.Selector) {
		step := newTracesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUserMessages applies the HasEdge predicate on the "user_messages" edge.
func HasUserMessages() predicate.Stack {
	return predicate.Stack(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, UserMessagesTable, UserMessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserMessagesWith applies the HasEdge predicate on the "user_messages" edge with a given conditions (other predicates).
func HasUserMessagesWith(preds ...predicate.UserMessage) predicate.Stack {
	return predicate.Stack(func(s *sql.Selector) {
		step := newUserMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOrchestratorExecutions applies the HasEdge predicate on the "orchestrator_executions" edge.
func HasOrchestratorExecutions() predicate.Stack {
	return predicate.Stack(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OrchestratorExecutionsTable, OrchestratorExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrchestratorExecutionsWith applies the HasEdge predicate on the "orchestrator_executions" edge with a given conditions (other predicates).
func HasOrchestratorExecutionsWith(preds ...predicate.OrchestratorExecution) predicate.Stack {
	return predicate.Stack(func(s *sql.Selector) {
		step := newOrchestratorExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExecutionGraphs applies the HasEdge predicate on the "execution_graphs" edge.
func HasExecutionGraphs() predicate.Stack {
	return predicate.Stack(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExecutionGraphsTable, ExecutionGraphsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionGraphsWith applies the HasEdge predicate on the "execution_graphs" edge with a given conditions (other predicates).
func HasExecutionGraphsWith(preds ...predicate.ExecutionGraph) predicate.Stack {
	return predicate.Stack(func(s *sql.Selector) {
		step := newExecutionGraphsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWorkDetectionCache applies the HasEdge predicate on the "work_detection_cache" edge.
func HasWorkDetectionCache() predicate.Stack {
	return predicate.Stack(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, WorkDetectionCacheTable, WorkDetectionCacheColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkDetectionCacheWith applies the HasEdge predicate on the "work_detection_cache" edge with a given conditions (other predicates).
func HasWorkDetectionCacheWith(preds ...predicate.WorkDetectionCache) predicate.Stack {
	return predicate.Stack(func(s *sql.Selector) {
		step := newWorkDetectionCacheStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Stack) predicate.Stack {
	return predicate.Stack(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Stack) predicate.Stack {
	return predicate.Stack(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Stack) predicate.Stack {
	return predicate.Stack(sql.NotPredicates(p))
}
