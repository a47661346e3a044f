// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hackfleet/hackfleet/ent/agentstate"
	"github.com/hackfleet/hackfleet/ent/agenttrace"
	"github.com/hackfleet/hackfleet/ent/artifact"
	"github.com/hackfleet/hackfleet/ent/executiongraph"
	"github.com/hackfleet/hackfleet/ent/orchestratorexecution"
	"github.com/hackfleet/hackfleet/ent/predicate"
	"github.com/hackfleet/hackfleet/ent/projectidea"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/ent/todo"
	"github.com/hackfleet/hackfleet/ent/usermessage"
	"github.com/hackfleet/hackfleet/ent/workdetectioncache"
)

// StackUpdate is the builder for updating Stack entities.
type StackUpdate struct {
	config
	hooks    []Hook
	mutation *StackMutation
}

// Where appends a list predicates to the StackUpdate builder.
func (_u *StackUpdate) Where(ps ...predicate.Stack) *StackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParticipantName sets the "participant_name" field.
func (_u *StackUpdate) SetParticipantName(v string) *StackUpdate {
	_u.mutation.SetParticipantName(v)
	return _u
}

// SetNillableParticipantName sets the "participant_name" field if the given value is not nil.
func (_u *StackUpdate) SetNillableParticipantName(v *string) *StackUpdate {
	if v != nil {
		_u.SetParticipantName(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *StackUpdate) SetPhase(v stack.Phase) *StackUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *StackUpdate) SetNillablePhase(v *stack.Phase) *StackUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetExecutionState sets the "execution_state" field.
func (_u *StackUpdate) SetExecutionState(v stack.ExecutionState) *StackUpdate {
	_u.mutation.SetExecutionState(v)
	return _u
}

// SetNillableExecutionState sets the "execution_state" field if the given value is not nil.
func (_u *StackUpdate) SetNillableExecutionState(v *stack.ExecutionState) *StackUpdate {
	if v != nil {
		_u.SetExecutionState(*v)
	}
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *StackUpdate) SetLastActivityAt(v time.Time) *StackUpdate {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *StackUpdate) SetNillableLastActivityAt(v *time.Time) *StackUpdate {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (_u *StackUpdate) ClearLastActivityAt() *StackUpdate {
	_u.mutation.ClearLastActivityAt()
	return _u
}

// SetTotalCycles sets the "total_cycles" field.
func (_u *StackUpdate) SetTotalCycles(v int) *StackUpdate {
	_u.mutation.ResetTotalCycles()
	_u.mutation.SetTotalCycles(v)
	return _u
}

// SetNillableTotalCycles sets the "total_cycles" field if the given value is not nil.
func (_u *StackUpdate) SetNillableTotalCycles(v *int) *StackUpdate {
	if v != nil {
		_u.SetTotalCycles(*v)
	}
	return _u
}

// AddTotalCycles adds value to the "total_cycles" field.
func (_u *StackUpdate) AddTotalCycles(v int) *StackUpdate {
	_u.mutation.AddTotalCycles(v)
	return _u
}

// AddAgentStateIDs adds the "agent_states" edge to the AgentState entity by IDs.
func (_u *StackUpdate) AddAgentStateIDs(ids ...string) *StackUpdate {
	_u.mutation.AddAgentStateIDs(ids...)
	return _u
}

// AddAgentStates adds the "agent_states" edges to the AgentState entity.
func (_u *StackUpdate) AddAgentStates(v ...*AgentState) *StackUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentStateIDs(ids...)
}

// SetProjectIdeaID sets the "project_idea" edge to the ProjectIdea entity by ID.
func (_u *StackUpdate) SetProjectIdeaID(id string) *StackUpdate {
	_u.mutation.SetProjectIdeaID(id)
	return _u
}

// SetNillableProjectIdeaID sets the "project_idea" edge to the ProjectIdea entity by ID if the given value is not nil.
func (_u *StackUpdate) SetNillableProjectIdeaID(id *string) *StackUpdate {
	if id != nil {
		_u = _u.SetProjectIdeaID(*id)
	}
	return _u
}

// SetProjectIdea sets the "project_idea" edge to the ProjectIdea entity.
func (_u *StackUpdate) SetProjectIdea(v *ProjectIdea) *StackUpdate {
	return _u.SetProjectIdeaID(v.ID)
}

// AddTodoIDs adds the "todos" edge to the Todo entity by IDs.
func (_u *StackUpdate) AddTodoIDs(ids ...string) *StackUpdate {
	_u.mutation.AddTodoIDs(ids...)
	return _u
}

// AddTodos adds the "todos" edges to the Todo entity.
func (_u *StackUpdate) AddTodos(v ...*Todo) *StackUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTodoIDs(ids...)
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by IDs.
func (_u *StackUpdate) AddArtifactIDs(ids ...string) *StackUpdate {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the Artifact entity.
func (_u *StackUpdate) AddArtifacts(v ...*Artifact) *StackUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// AddTraceIDs adds the "traces" edge to the AgentTrace entity by IDs.
func (_u *StackUpdate) AddTraceIDs(ids ...string) *StackUpdate {
	_u.mutation.AddTraceIDs(ids...)
	return _u
}

// AddTraces adds the "traces" edges to the AgentTrace entity.
func (_u *StackUpdate) AddTraces(v ...*AgentTrace) *StackUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTraceIDs(ids...)
}

// AddUserMessageIDs adds the "user_messages" edge to the UserMessage entity by IDs.
func (_u *StackUpdate) AddUserMessageIDs(ids ...string) *StackUpdate {
	_u.mutation.AddUserMessageIDs(ids...)
	return _u
}

// AddUserMessages adds the "user_messages" edges to the UserMessage entity.
func (_u *StackUpdate) AddUserMessages(v ...*UserMessage) *StackUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserMessageIDs(ids...)
}

// AddOrchestratorExecutionIDs adds the "orchestrator_executions" edge to the OrchestratorExecution entity by IDs.
func (_u *StackUpdate) AddOrchestratorExecutionIDs(ids ...string) *StackUpdate {
	_u.mutation.AddOrchestratorExecutionIDs(ids...)
	return _u
}

// AddOrchestratorExecutions adds the "orchestrator_executions" edges to the OrchestratorExecution entity.
func (_u *StackUpdate) AddOrchestratorExecutions(v ...*OrchestratorExecution) *StackUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrchestratorExecutionIDs(ids...)
}

// AddExecutionGraphIDs adds the "execution_graphs" edge to the ExecutionGraph entity by IDs.
func (_u *StackUpdate) AddExecutionGraphIDs(ids ...string) *StackUpdate {
	_u.mutation.AddExecutionGraphIDs(ids...)
	return _u
}

// AddExecutionGraphs adds the "execution_graphs" edges to the ExecutionGraph entity.
func (_u *StackUpdate) AddExecutionGraphs(v ...*ExecutionGraph) *StackUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionGraphIDs(ids...)
}

// SetWorkDetectionCacheID sets the "work_detection_cache" edge to the WorkDetectionCache entity by ID.
func (_u *StackUpdate) SetWorkDetectionCacheID(id string) *StackUpdate {
	_u.mutation.SetWorkDetectionCacheID(id)
	return _u
}

// SetNillableWorkDetectionCacheID sets the "work_detection_cache" edge to the WorkDetectionCache entity by ID if the given value is not nil.
func (_u *StackUpdate) SetNillableWorkDetectionCacheID(id *string) *StackUpdate {
	if id != nil {
		_u = _u.SetWorkDetectionCacheID(*id)
	}
	return _u
}

// SetWorkDetectionCache sets the "work_detection_cache" edge to the WorkDetectionCache entity.
func (_u *StackUpdate) SetWorkDetectionCache(v *WorkDetectionCache) *StackUpdate {
	return _u.SetWorkDetectionCacheID(v.ID)
}

// Mutation returns the StackMutation object of the builder.
func (_u *StackUpdate) Mutation() *StackMutation {
	return _u.mutation
}

// ClearAgentStates clears all "agent_states" edges to the AgentState entity.
func (_u *StackUpdate) ClearAgentStates() *StackUpdate {
	_u.mutation.ClearAgentStates()
	return _u
}

// RemoveAgentStateIDs removes the "agent_states" edge to AgentState entities by IDs.
func (_u *StackUpdate) RemoveAgentStateIDs(ids ...string) *StackUpdate {
	_u.mutation.RemoveAgentStateIDs(ids...)
	return _u
}

// RemoveAgentStates removes "agent_states" edges to AgentState entities.
func (_u *StackUpdate) RemoveAgentStates(v ...*AgentState) *StackUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentStateIDs(ids...)
}

// ClearProjectIdea clears the "project_idea" edge to the ProjectIdea entity.
func (_u *StackUpdate) ClearProjectIdea() *StackUpdate {
	_u.mutation.ClearProjectIdea()
	return _u
}

// ClearTodos clears all "todos" edges to the Todo entity.
func (_u *StackUpdate) ClearTodos() *StackUpdate {
	_u.mutation.ClearTodos()
	return _u
}

// RemoveTodoIDs removes the "todos" edge to Todo entities by IDs.
func (_u *StackUpdate) RemoveTodoIDs(ids ...string) *StackUpdate {
	_u.mutation.RemoveTodoIDs(ids...)
	return _u
}

// RemoveTodos removes "todos" edges to Todo entities.
func (_u *StackUpdate) RemoveTodos(v ...*Todo) *StackUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTodoIDs(ids...)
}

// ClearArtifacts clears all "artifacts" edges to the Artifact entity.
func (_u *StackUpdate) ClearArtifacts() *StackUpdate {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to Artifact entities by IDs.
func (_u *StackUpdate) RemoveArtifactIDs(ids ...string) *StackUpdate {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to Artifact entities.
func (_u *StackUpdate) RemoveArtifacts(v ...*Artifact) *StackUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// ClearTraces clears all "traces" edges to the AgentTrace entity.
func (_u *StackUpdate) ClearTraces() *StackUpdate {
	_u.mutation.ClearTraces()
	return _u
}

// RemoveTraceIDs removes the "traces" edge to AgentTrace entities by IDs.
func (_u *StackUpdate) RemoveTraceIDs(ids ...string) *StackUpdate {
	_u.mutation.RemoveTraceIDs(ids...)
	return _u
}

// RemoveTraces removes "traces" edges to AgentTrace entities.
func (_u *StackUpdate) RemoveTraces(v ...*AgentTrace) *StackUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTraceIDs(ids...)
}

// ClearUserMessages clears all "user_messages" edges to the UserMessage entity.
func (_u *StackUpdate) ClearUserMessages() *StackUpdate {
	_u.mutation.ClearUserMessages()
	return _u
}

// RemoveUserMessageIDs removes the "user_messages" edge to UserMessage entities by IDs.
func (_u *StackUpdate) RemoveUserMessageIDs(ids ...string) *StackUpdate {
	_u.mutation.RemoveUserMessageIDs(ids...)
	return _u
}

// RemoveUserMessages removes "user_messages" edges to UserMessage entities.
func (_u *StackUpdate) RemoveUserMessages(v ...*UserMessage) *StackUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserMessageIDs(ids...)
}

// ClearOrchestratorExecutions clears all "orchestrator_executions" edges to the OrchestratorExecution entity.
func (_u *StackUpdate) ClearOrchestratorExecutions() *StackUpdate {
	_u.mutation.ClearOrchestratorExecutions()
	return _u
}

// RemoveOrchestratorExecutionIDs removes the "orchestrator_executions" edge to OrchestratorExecution entities by IDs.
func (_u *StackUpdate) RemoveOrchestratorExecutionIDs(ids ...string) *StackUpdate {
	_u.mutation.RemoveOrchestratorExecutionIDs(ids...)
	return _u
}

// RemoveOrchestratorExecutions removes "orchestrator_executions" edges to OrchestratorExecution entities.
func (_u *StackUpdate) RemoveOrchestratorExecutions(v ...*OrchestratorExecution) *StackUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrchestratorExecutionIDs(ids...)
}

// ClearExecutionGraphs clears all "execution_graphs" edges to the ExecutionGraph entity.
func (_u *StackUpdate) ClearExecutionGraphs() *StackUpdate {
	_u.mutation.ClearExecutionGraphs()
	return _u
}

// RemoveExecutionGraphIDs removes the "execution_graphs" edge to ExecutionGraph entities by IDs.
func (_u *StackUpdate) RemoveExecutionGraphIDs(ids ...string) *StackUpdate {
	_u.mutation.RemoveExecutionGraphIDs(ids...)
	return _u
}

// RemoveExecutionGraphs removes "execution_graphs" edges to ExecutionGraph entities.
func (_u *StackUpdate) RemoveExecutionGraphs(v ...*ExecutionGraph) *StackUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionGraphIDs(ids...)
}

// ClearWorkDetectionCache clears the "work_detection_cache" edge to the WorkDetectionCache entity.
func (_u *StackUpdate) ClearWorkDetectionCache() *StackUpdate {
	_u.mutation.ClearWorkDetectionCache()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StackUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StackUpdate) check() error {
	if v, ok := _u.mutation.Phase(); ok {
		if err := stack.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "Stack.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExecutionState(); ok {
		if err := stack.ExecutionStateValidator(v); err != nil {
			return &ValidationError{Name: "execution_state", err: fmt.Errorf(`ent: validator failed for field "Stack.execution_state": %w`, err)}
		}
	}
	return nil
}

func (_u *StackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stack.Table, stack.Columns, sqlgraph.NewFieldSpec(stack.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParticipantName(); ok {
		_spec.SetField(stack.FieldParticipantName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(stack.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExecutionState(); ok {
		_spec.SetField(stack.FieldExecutionState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(stack.FieldLastActivityAt, field.TypeTime, value)
	}
	if _u.mutation.LastActivityAtCleared() {
		_spec.ClearField(stack.FieldLastActivityAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalCycles(); ok {
		_spec.SetField(stack.FieldTotalCycles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCycles(); ok {
		_spec.AddField(stack.FieldTotalCycles, field.TypeInt, value)
	}
	if _u.mutation.AgentStatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.AgentStatesTable,
			Columns: []string{stack.AgentStatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentStatesIDs(); len(nodes) > 0 && !_u.mutation.AgentStatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.AgentStatesTable,
			Columns: []string{stack.AgentStatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentStatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.AgentStatesTable,
			Columns: []string{stack.AgentStatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProjectIdeaCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   stack.ProjectIdeaTable,
			Columns: []string{stack.ProjectIdeaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(projectidea.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIdeaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   stack.ProjectIdeaTable,
			Columns: []string{stack.ProjectIdeaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(projectidea.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TodosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.TodosTable,
			Columns: []string{stack.TodosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(todo.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTodosIDs(); len(nodes) > 0 && !_u.mutation.TodosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.TodosTable,
			Columns: []string{stack.TodosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(todo.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TodosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.TodosTable,
			Columns: []string{stack.TodosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(todo.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArtifactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.ArtifactsTable,
			Columns: []string{stack.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.ArtifactsTable,
			Columns: []string{stack.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.ArtifactsTable,
			Columns: []string{stack.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TracesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.TracesTable,
			Columns: []string{stack.TracesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttrace.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTracesIDs(); len(nodes) > 0 && !_u.mutation.TracesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.TracesTable,
			Columns: []string{stack.TracesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttrace.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TracesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.TracesTable,
			Columns: []string{stack.TracesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttrace.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.UserMessagesTable,
			Columns: []string{stack.UserMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usermessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUserMessagesIDs(); len(nodes) > 0 && !_u.mutation.UserMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.UserMessagesTable,
			Columns: []string{stack.UserMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usermessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserMessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.UserMessagesTable,
			Columns: []string{stack.UserMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usermessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrchestratorExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.OrchestratorExecutionsTable,
			Columns: []string{stack.OrchestratorExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orchestratorexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrchestratorExecutionsIDs(); len(nodes) > 0 && !_u.mutation.OrchestratorExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.OrchestratorExecutionsTable,
			Columns: []string{stack.OrchestratorExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orchestratorexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrchestratorExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.OrchestratorExecutionsTable,
			Columns: []string{stack.OrchestratorExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orchestratorexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExecutionGraphsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.ExecutionGraphsTable,
			Columns: []string{stack.ExecutionGraphsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executiongraph.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionGraphsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionGraphsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.ExecutionGraphsTable,
			Columns: []string{stack.ExecutionGraphsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executiongraph.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionGraphsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.ExecutionGraphsTable,
			Columns: []string{stack.ExecutionGraphsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executiongraph.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorkDetectionCacheCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   stack.WorkDetectionCacheTable,
			Columns: []string{stack.WorkDetectionCacheColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workdetectioncache.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkDetectionCacheIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   stack.WorkDetectionCacheTable,
			Columns: []string{stack.WorkDetectionCacheColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workdetectioncache.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stack.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StackUpdateOne is the builder for updating a single Stack entity.
type StackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StackMutation
}

// SetParticipantName sets the "participant_name" field.
func (_u *StackUpdateOne) SetParticipantName(v string) *StackUpdateOne {
	_u.mutation.SetParticipantName(v)
	return _u
}

// SetNillableParticipantName sets the "participant_name" field if the given value is not nil.
func (_u *StackUpdateOne) SetNillableParticipantName(v *string) *StackUpdateOne {
	if v != nil {
		_u.SetParticipantName(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *StackUpdateOne) SetPhase(v stack.Phase) *StackUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *StackUpdateOne) SetNillablePhase(v *stack.Phase) *StackUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetExecutionState sets the "execution_state" field.
func (_u *StackUpdateOne) SetExecutionState(v stack.ExecutionState) *StackUpdateOne {
	_u.mutation.SetExecutionState(v)
	return _u
}

// SetNillableExecutionState sets the "execution_state" field if the given value is not nil.
func (_u *StackUpdateOne) SetNillableExecutionState(v *stack.ExecutionState) *StackUpdateOne {
	if v != nil {
		_u.SetExecutionState(*v)
	}
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *StackUpdateOne) SetLastActivityAt(v time.Time) *StackUpdateOne {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *StackUpdateOne) SetNillableLastActivityAt(v *time.Time) *StackUpdateOne {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (_u *StackUpdateOne) ClearLastActivityAt() *StackUpdateOne {
	_u.mutation.ClearLastActivityAt()
	return _u
}

// SetTotalCycles sets the "total_cycles" field.
func (_u *StackUpdateOne) SetTotalCycles(v int) *StackUpdateOne {
	_u.mutation.ResetTotalCycles()
	_u.mutation.SetTotalCycles(v)
	return _u
}

// SetNillableTotalCycles sets the "total_cycles" field if the given value is not nil.
func (_u *StackUpdateOne) SetNillableTotalCycles(v *int) *StackUpdateOne {
	if v != nil {
		_u.SetTotalCycles(*v)
	}
	return _u
}

// AddTotalCycles adds value to the "total_cycles" field.
func (_u *StackUpdateOne) AddTotalCycles(v int) *StackUpdateOne {
	_u.mutation.AddTotalCycles(v)
	return _u
}

// AddAgentStateIDs adds the "agent_states" edge to the AgentState entity by IDs.
func (_u *StackUpdateOne) AddAgentStateIDs(ids ...string) *StackUpdateOne {
	_u.mutation.AddAgentStateIDs(ids...)
	return _u
}

// AddAgentStates adds the "agent_states" edges to the AgentState entity.
func (_u *StackUpdateOne) AddAgentStates(v ...*AgentState) *StackUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentStateIDs(ids...)
}

// SetProjectIdeaID sets the "project_idea" edge to the ProjectIdea entity by ID.
func (_u *StackUpdateOne) SetProjectIdeaID(id string) *StackUpdateOne {
	_u.mutation.SetProjectIdeaID(id)
	return _u
}

// SetNillableProjectIdeaID sets the "project_idea" edge to the ProjectIdea entity by ID if the given value is not nil.
func (_u *StackUpdateOne) SetNillableProjectIdeaID(id *string) *StackUpdateOne {
	if id != nil {
		_u = _u.SetProjectIdeaID(*id)
	}
	return _u
}

// SetProjectIdea sets the "project_idea" edge to the ProjectIdea entity.
func (_u *StackUpdateOne) SetProjectIdea(v *ProjectIdea) *StackUpdateOne {
	return _u.SetProjectIdeaID(v.ID)
}

// AddTodoIDs adds the "todos" edge to the Todo entity by IDs.
func (_u *StackUpdateOne) AddTodoIDs(ids ...string) *StackUpdateOne {
	_u.mutation.AddTodoIDs(ids...)
	return _u
}

// AddTodos adds the "todos" edges to the Todo entity.
func (_u *StackUpdateOne) AddTodos(v ...*Todo) *StackUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTodoIDs(ids...)
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by IDs.
func (_u *StackUpdateOne) AddArtifactIDs(ids ...string) *StackUpdateOne {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the Artifact entity.
func (_u *StackUpdateOne) AddArtifacts(v ...*Artifact) *StackUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// AddTraceIDs adds the "traces" edge to the AgentTrace entity by IDs.
func (_u *StackUpdateOne) AddTraceIDs(ids ...string) *StackUpdateOne {
	_u.mutation.AddTraceIDs(ids...)
	return _u
}

// AddTraces adds the "traces" edges to the AgentTrace entity.
func (_u *StackUpdateOne) AddTraces(v ...*AgentTrace) *StackUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTraceIDs(ids...)
}

// AddUserMessageIDs adds the "user_messages" edge to the UserMessage entity by IDs.
func (_u *StackUpdateOne) AddUserMessageIDs(ids ...string) *StackUpdateOne {
	_u.mutation.AddUserMessageIDs(ids...)
	return _u
}

// AddUserMessages adds the "user_messages" edges to the UserMessage entity.
func (_u *StackUpdateOne) AddUserMessages(v ...*UserMessage) *StackUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUserMessageIDs(ids...)
}

// AddOrchestratorExecutionIDs adds the "orchestrator_executions" edge to the OrchestratorExecution entity by IDs.
func (_u *StackUpdateOne) AddOrchestratorExecutionIDs(ids ...string) *StackUpdateOne {
	_u.mutation.AddOrchestratorExecutionIDs(ids...)
	return _u
}

// AddOrchestratorExecutions adds the "orchestrator_executions" edges to the OrchestratorExecution entity.
func (_u *StackUpdateOne) AddOrchestratorExecutions(v ...*OrchestratorExecution) *StackUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrchestratorExecutionIDs(ids...)
}

// AddExecutionGraphIDs adds the "execution_graphs" edge to the ExecutionGraph entity by IDs.
func (_u *StackUpdateOne) AddExecutionGraphIDs(ids ...string) *StackUpdateOne {
	_u.mutation.AddExecutionGraphIDs(ids...)
	return _u
}

// AddExecutionGraphs adds the "execution_graphs" edges to the ExecutionGraph entity.
func (_u *StackUpdateOne) AddExecutionGraphs(v ...*ExecutionGraph) *StackUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionGraphIDs(ids...)
}

// SetWorkDetectionCacheID sets the "work_detection_cache" edge to the WorkDetectionCache entity by ID.
func (_u *StackUpdateOne) SetWorkDetectionCacheID(id string) *StackUpdateOne {
	_u.mutation.SetWorkDetectionCacheID(id)
	return _u
}

// SetNillableWorkDetectionCacheID sets the "work_detection_cache" edge to the WorkDetectionCache entity by ID if the given value is not nil.
func (_u *StackUpdateOne) SetNillableWorkDetectionCacheID(id *string) *StackUpdateOne {
	if id != nil {
		_u = _u.SetWorkDetectionCacheID(*id)
	}
	return _u
}

// SetWorkDetectionCache sets the "work_detection_cache" edge to the WorkDetectionCache entity.
func (_u *StackUpdateOne) SetWorkDetectionCache(v *WorkDetectionCache) *StackUpdateOne {
	return _u.SetWorkDetectionCacheID(v.ID)
}

// Mutation returns the StackMutation object of the builder.
func (_u *StackUpdateOne) Mutation() *StackMutation {
	return _u.mutation
}

// ClearAgentStates clears all "agent_states" edges to the AgentState entity.
func (_u *StackUpdateOne) ClearAgentStates() *StackUpdateOne {
	_u.mutation.ClearAgentStates()
	return _u
}

// RemoveAgentStateIDs removes the "agent_states" edge to AgentState entities by IDs.
func (_u *StackUpdateOne) RemoveAgentStateIDs(ids ...string) *StackUpdateOne {
	_u.mutation.RemoveAgentStateIDs(ids...)
	return _u
}

// RemoveAgentStates removes "agent_states" edges to AgentState entities.
func (_u *StackUpdateOne) RemoveAgentStates(v ...*AgentState) *StackUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentStateIDs(ids...)
}

// ClearProjectIdea clears the "project_idea" edge to the ProjectIdea entity.
func (_u *StackUpdateOne) ClearProjectIdea() *StackUpdateOne {
	_u.mutation.ClearProjectIdea()
	return _u
}

// ClearTodos clears all "todos" edges to the Todo entity.
func (_u *StackUpdateOne) ClearTodos() *StackUpdateOne {
	_u.mutation.ClearTodos()
	return _u
}

// RemoveTodoIDs removes the "todos" edge to Todo entities by IDs.
func (_u *StackUpdateOne) RemoveTodoIDs(ids ...string) *StackUpdateOne {
	_u.mutation.RemoveTodoIDs(ids...)
	return _u
}

// RemoveTodos removes "todos" edges to Todo entities.
func (_u *StackUpdateOne) RemoveTodos(v ...*Todo) *StackUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTodoIDs(ids...)
}

// ClearArtifacts clears all "artifacts" edges to the Artifact entity.
func (_u *StackUpdateOne) ClearArtifacts() *StackUpdateOne {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to Artifact entities by IDs.
func (_u *StackUpdateOne) RemoveArtifactIDs(ids ...string) *StackUpdateOne {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to Artifact entities.
func (_u *StackUpdateOne) RemoveArtifacts(v ...*Artifact) *StackUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// ClearTraces clears all "traces" edges to the AgentTrace entity.
func (_u *StackUpdateOne) ClearTraces() *StackUpdateOne {
	_u.mutation.ClearTraces()
	return _u
}

// RemoveTraceIDs removes the "traces" edge to AgentTrace entities by IDs.
func (_u *StackUpdateOne) RemoveTraceIDs(ids ...string) *StackUpdateOne {
	_u.mutation.RemoveTraceIDs(ids...)
	return _u
}

// RemoveTraces removes "traces" edges to AgentTrace entities.
func (_u *StackUpdateOne) RemoveTraces(v ...*AgentTrace) *StackUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTraceIDs(ids...)
}

// ClearUserMessages clears all "user_messages" edges to the UserMessage entity.
func (_u *StackUpdateOne) ClearUserMessages() *StackUpdateOne {
	_u.mutation.ClearUserMessages()
	return _u
}

// RemoveUserMessageIDs removes the "user_messages" edge to UserMessage entities by IDs.
func (_u *StackUpdateOne) RemoveUserMessageIDs(ids ...string) *StackUpdateOne {
	_u.mutation.RemoveUserMessageIDs(ids...)
	return _u
}

// RemoveUserMessages removes "user_messages" edges to UserMessage entities.
func (_u *StackUpdateOne) RemoveUserMessages(v ...*UserMessage) *StackUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUserMessageIDs(ids...)
}

// ClearOrchestratorExecutions clears all "orchestrator_executions" edges to the OrchestratorExecution entity.
func (_u *StackUpdateOne) ClearOrchestratorExecutions() *StackUpdateOne {
	_u.mutation.ClearOrchestratorExecutions()
	return _u
}

// RemoveOrchestratorExecutionIDs removes the "orchestrator_executions" edge to OrchestratorExecution entities by IDs.
func (_u *StackUpdateOne) RemoveOrchestratorExecutionIDs(ids ...string) *StackUpdateOne {
	_u.mutation.RemoveOrchestratorExecutionIDs(ids...)
	return _u
}

// RemoveOrchestratorExecutions removes "orchestrator_executions" edges to OrchestratorExecution entities.
func (_u *StackUpdateOne) RemoveOrchestratorExecutions(v ...*OrchestratorExecution) *StackUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrchestratorExecutionIDs(ids...)
}

// ClearExecutionGraphs clears all "execution_graphs" edges to the ExecutionGraph entity.
func (_u *StackUpdateOne) ClearExecutionGraphs() *StackUpdateOne {
	_u.mutation.ClearExecutionGraphs()
	return _u
}

// RemoveExecutionGraphIDs removes the "execution_graphs" edge to ExecutionGraph entities by IDs.
func (_u *StackUpdateOne) RemoveExecutionGraphIDs(ids ...string) *StackUpdateOne {
	_u.mutation.RemoveExecutionGraphIDs(ids...)
	return _u
}

// RemoveExecutionGraphs removes "execution_graphs" edges to ExecutionGraph entities.
func (_u *StackUpdateOne) RemoveExecutionGraphs(v ...*ExecutionGraph) *StackUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionGraphIDs(ids...)
}

// ClearWorkDetectionCache clears the "work_detection_cache" edge to the WorkDetectionCache entity.
func (_u *StackUpdateOne) ClearWorkDetectionCache() *StackUpdateOne {
	_u.mutation.ClearWorkDetectionCache()
	return _u
}

// Where appends a list predicates to the StackUpdate builder.
func (_u *StackUpdateOne) Where(ps ...predicate.Stack) *StackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StackUpdateOne) Select(field string, fields ...string) *StackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Stack entity.
func (_u *StackUpdateOne) Save(ctx context.Context) (*Stack, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StackUpdateOne) SaveX(ctx context.Context) *Stack {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StackUpdateOne) check() error {
	if v, ok := _u.mutation.Phase(); ok {
		if err := stack.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "Stack.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExecutionState(); ok {
		if err := stack.ExecutionStateValidator(v); err != nil {
			return &ValidationError{Name: "execution_state", err: fmt.Errorf(`ent: validator failed for field "Stack.execution_state": %w`, err)}
		}
	}
	return nil
}

func (_u *StackUpdateOne) sqlSave(ctx context.Context) (_node *Stack, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stack.Table, stack.Columns, sqlgraph.NewFieldSpec(stack.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Stack.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stack.FieldID)
		for _, f := range fields {
			if !stack.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stack.FieldID {
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
	if value, ok := _u.mutation.ParticipantName(); ok {
		_spec.SetField(stack.FieldParticipantName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(stack.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExecutionState(); ok {
		_spec.SetField(stack.FieldExecutionState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(stack.FieldLastActivityAt, field.TypeTime, value)
	}
	if _u.mutation.LastActivityAtCleared() {
		_spec.ClearField(stack.FieldLastActivityAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalCycles(); ok {
		_spec.SetField(stack.FieldTotalCycles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCycles(); ok {
		_spec.AddField(stack.FieldTotalCycles, field.TypeInt, value)
	}
	if _u.mutation.AgentStatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.AgentStatesTable,
			Columns: []string{stack.AgentStatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentStatesIDs(); len(nodes) > 0 && !_u.mutation.AgentStatesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.AgentStatesTable,
			Columns: []string{stack.AgentStatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentStatesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.AgentStatesTable,
			Columns: []string{stack.AgentStatesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProjectIdeaCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   stack.ProjectIdeaTable,
			Columns: []string{stack.ProjectIdeaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(projectidea.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIdeaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   stack.ProjectIdeaTable,
			Columns: []string{stack.ProjectIdeaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(projectidea.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TodosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.TodosTable,
			Columns: []string{stack.TodosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(todo.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTodosIDs(); len(nodes) > 0 && !_u.mutation.TodosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.TodosTable,
			Columns: []string{stack.TodosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(todo.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TodosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.TodosTable,
			Columns: []string{stack.TodosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(todo.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArtifactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.ArtifactsTable,
			Columns: []string{stack.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.ArtifactsTable,
			Columns: []string{stack.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.ArtifactsTable,
			Columns: []string{stack.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TracesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.TracesTable,
			Columns: []string{stack.TracesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttrace.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTracesIDs(); len(nodes) > 0 && !_u.mutation.TracesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.TracesTable,
			Columns: []string{stack.TracesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttrace.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TracesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.TracesTable,
			Columns: []string{stack.TracesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttrace.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.UserMessagesTable,
			Columns: []string{stack.UserMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usermessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUserMessagesIDs(); len(nodes) > 0 && !_u.mutation.UserMessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.UserMessagesTable,
			Columns: []string{stack.UserMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usermessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserMessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.UserMessagesTable,
			Columns: []string{stack.UserMessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usermessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrchestratorExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.OrchestratorExecutionsTable,
			Columns: []string{stack.OrchestratorExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orchestratorexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrchestratorExecutionsIDs(); len(nodes) > 0 && !_u.mutation.OrchestratorExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.OrchestratorExecutionsTable,
			Columns: []string{stack.OrchestratorExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orchestratorexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrchestratorExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.OrchestratorExecutionsTable,
			Columns: []string{stack.OrchestratorExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orchestratorexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExecutionGraphsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.ExecutionGraphsTable,
			Columns: []string{stack.ExecutionGraphsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executiongraph.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionGraphsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionGraphsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.ExecutionGraphsTable,
			Columns: []string{stack.ExecutionGraphsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executiongraph.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionGraphsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   stack.ExecutionGraphsTable,
			Columns: []string{stack.ExecutionGraphsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executiongraph.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorkDetectionCacheCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   stack.WorkDetectionCacheTable,
			Columns: []string{stack.WorkDetectionCacheColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workdetectioncache.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkDetectionCacheIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   stack.WorkDetectionCacheTable,
			Columns: []string{stack.WorkDetectionCacheColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workdetectioncache.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Stack{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stack.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
