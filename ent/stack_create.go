// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hackfleet/hackfleet/ent/agentstate"
	"github.com/hackfleet/hackfleet/ent/agenttrace"
	"github.com/hackfleet/hackfleet/ent/artifact"
	"github.com/hackfleet/hackfleet/ent/executiongraph"
	"github.com/hackfleet/hackfleet/ent/orchestratorexecution"
	"github.com/hackfleet/hackfleet/ent/projectidea"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/ent/todo"
	"github.com/hackfleet/hackfleet/ent/usermessage"
	"github.com/hackfleet/hackfleet/ent/workdetectioncache"
)

// StackCreate is the builder for creating a Stack entity.
type StackCreate struct {
	config
	mutation *StackMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetParticipantName sets the "participant_name" field.
func (_c *StackCreate) SetParticipantName(v string) *StackCreate {
	_c.mutation.SetParticipantName(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *StackCreate) SetPhase(v stack.Phase) *StackCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_c *StackCreate) SetNillablePhase(v *stack.Phase) *StackCreate {
	if v != nil {
		_c.SetPhase(*v)
	}
	return _c
}

// SetExecutionState sets the "execution_state" field.
func (_c *StackCreate) SetExecutionState(v stack.ExecutionState) *StackCreate {
	_c.mutation.SetExecutionState(v)
	return _c
}

// SetNillableExecutionState sets the "execution_state" field if the given value is not nil.
func (_c *StackCreate) SetNillableExecutionState(v *stack.ExecutionState) *StackCreate {
	if v != nil {
		_c.SetExecutionState(*v)
	}
	return _c
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_c *StackCreate) SetLastActivityAt(v time.Time) *StackCreate {
	_c.mutation.SetLastActivityAt(v)
	return _c
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_c *StackCreate) SetNillableLastActivityAt(v *time.Time) *StackCreate {
	if v != nil {
		_c.SetLastActivityAt(*v)
	}
	return _c
}

// SetTotalCycles sets the "total_cycles" field.
func (_c *StackCreate) SetTotalCycles(v int) *StackCreate {
	_c.mutation.SetTotalCycles(v)
	return _c
}

// SetNillableTotalCycles sets the "total_cycles" field if the given value is not nil.
func (_c *StackCreate) SetNillableTotalCycles(v *int) *StackCreate {
	if v != nil {
		_c.SetTotalCycles(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StackCreate) SetCreatedAt(v time.Time) *StackCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StackCreate) SetNillableCreatedAt(v *time.Time) *StackCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StackCreate) SetID(v string) *StackCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddAgentStateIDs adds the "agent_states" edge to the AgentState entity by IDs.
func (_c *StackCreate) AddAgentStateIDs(ids ...string) *StackCreate {
	_c.mutation.AddAgentStateIDs(ids...)
	return _c
}

// AddAgentStates adds the "agent_states" edges to the AgentState entity.
func (_c *StackCreate) AddAgentStates(v ...*AgentState) *StackCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentStateIDs(ids...)
}

// SetProjectIdeaID sets the "project_idea" edge to the ProjectIdea entity by ID.
func (_c *StackCreate) SetProjectIdeaID(id string) *StackCreate {
	_c.mutation.SetProjectIdeaID(id)
	return _c
}

// SetNillableProjectIdeaID sets the "project_idea" edge to the ProjectIdea entity by ID if the given value is not nil.
func (_c *StackCreate) SetNillableProjectIdeaID(id *string) *StackCreate {
	if id != nil {
		_c = _c.SetProjectIdeaID(*id)
	}
	return _c
}

// SetProjectIdea sets the "project_idea" edge to the ProjectIdea entity.
func (_c *StackCreate) SetProjectIdea(v *ProjectIdea) *StackCreate {
	return _c.SetProjectIdeaID(v.ID)
}

// AddTodoIDs adds the "todos" edge to the Todo entity by IDs.
func (_c *StackCreate) AddTodoIDs(ids ...string) *StackCreate {
	_c.mutation.AddTodoIDs(ids...)
	return _c
}

// AddTodos adds the "todos" edges to the Todo entity.
func (_c *StackCreate) AddTodos(v ...*Todo) *StackCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTodoIDs(ids...)
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by IDs.
func (_c *StackCreate) AddArtifactIDs(ids ...string) *StackCreate {
	_c.mutation.AddArtifactIDs(ids...)
	return _c
}

// AddArtifacts adds the "artifacts" edges to the Artifact entity.
func (_c *StackCreate) AddArtifacts(v ...*Artifact) *StackCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddArtifactIDs(ids...)
}

// AddTraceIDs adds the "traces" edge to the AgentTrace entity by IDs.
func (_c *StackCreate) AddTraceIDs(ids ...string) *StackCreate {
	_c.mutation.AddTraceIDs(ids...)
	return _c
}

// AddTraces adds the "traces" edges to the AgentTrace entity.
func (_c *StackCreate) AddTraces(v ...*AgentTrace) *StackCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTraceIDs(ids...)
}

// AddUserMessageIDs adds the "user_messages" edge to the UserMessage entity by IDs.
func (_c *StackCreate) AddUserMessageIDs(ids ...string) *StackCreate {
	_c.mutation.AddUserMessageIDs(ids...)
	return _c
}

// AddUserMessages adds the "user_messages" edges to the UserMessage entity.
func (_c *StackCreate) AddUserMessages(v ...*UserMessage) *StackCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUserMessageIDs(ids...)
}

// AddOrchestratorExecutionIDs adds the "orchestrator_executions" edge to the OrchestratorExecution entity by IDs.
func (_c *StackCreate) AddOrchestratorExecutionIDs(ids ...string) *StackCreate {
	_c.mutation.AddOrchestratorExecutionIDs(ids...)
	return _c
}

// AddOrchestratorExecutions adds the "orchestrator_executions" edges to the OrchestratorExecution entity.
func (_c *StackCreate) AddOrchestratorExecutions(v ...*OrchestratorExecution) *StackCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOrchestratorExecutionIDs(ids...)
}

// AddExecutionGraphIDs adds the "execution_graphs" edge to the ExecutionGraph entity by IDs.
func (_c *StackCreate) AddExecutionGraphIDs(ids ...string) *StackCreate {
	_c.mutation.AddExecutionGraphIDs(ids...)
	return _c
}

// AddExecutionGraphs adds the "execution_graphs" edges to the ExecutionGraph entity.
func (_c *StackCreate) AddExecutionGraphs(v ...*ExecutionGraph) *StackCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExecutionGraphIDs(ids...)
}

// SetWorkDetectionCacheID sets the "work_detection_cache" edge to the WorkDetectionCache entity by ID.
func (_c *StackCreate) SetWorkDetectionCacheID(id string) *StackCreate {
	_c.mutation.SetWorkDetectionCacheID(id)
	return _c
}

// SetNillableWorkDetectionCacheID sets the "work_detection_cache" edge to the WorkDetectionCache entity by ID if the given value is not nil.
func (_c *StackCreate) SetNillableWorkDetectionCacheID(id *string) *StackCreate {
	if id != nil {
		_c = _c.SetWorkDetectionCacheID(*id)
	}
	return _c
}

// SetWorkDetectionCache sets the "work_detection_cache" edge to the WorkDetectionCache entity.
func (_c *StackCreate) SetWorkDetectionCache(v *WorkDetectionCache) *StackCreate {
	return _c.SetWorkDetectionCacheID(v.ID)
}

// Mutation returns the StackMutation object of the builder.
func (_c *StackCreate) Mutation() *StackMutation {
	return _c.mutation
}

// Save creates the Stack in the database.
func (_c *StackCreate) Save(ctx context.Context) (*Stack, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StackCreate) SaveX(ctx context.Context) *Stack {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StackCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StackCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StackCreate) defaults() {
	if _, ok := _c.mutation.Phase(); !ok {
		v := stack.DefaultPhase
		_c.mutation.SetPhase(v)
	}
	if _, ok := _c.mutation.ExecutionState(); !ok {
		v := stack.DefaultExecutionState
		_c.mutation.SetExecutionState(v)
	}
	if _, ok := _c.mutation.TotalCycles(); !ok {
		v := stack.DefaultTotalCycles
		_c.mutation.SetTotalCycles(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stack.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StackCreate) check() error {
	if _, ok := _c.mutation.ParticipantName(); !ok {
		return &ValidationError{Name: "participant_name", err: errors.New(`ent: missing required field "Stack.participant_name"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "Stack.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := stack.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "Stack.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExecutionState(); !ok {
		return &ValidationError{Name: "execution_state", err: errors.New(`ent: missing required field "Stack.execution_state"`)}
	}
	if v, ok := _c.mutation.ExecutionState(); ok {
		if err := stack.ExecutionStateValidator(v); err != nil {
			return &ValidationError{Name: "execution_state", err: fmt.Errorf(`ent: validator failed for field "Stack.execution_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalCycles(); !ok {
		return &ValidationError{Name: "total_cycles", err: errors.New(`ent: missing required field "Stack.total_cycles"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Stack.created_at"`)}
	}
	return nil
}

func (_c *StackCreate) sqlSave(ctx context.Context) (*Stack, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Stack.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StackCreate) createSpec() (*Stack, *sqlgraph.CreateSpec) {
	var (
		_node = &Stack{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stack.Table, sqlgraph.NewFieldSpec(stack.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ParticipantName(); ok {
		_spec.SetField(stack.FieldParticipantName, field.TypeString, value)
		_node.ParticipantName = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(stack.FieldPhase, field.TypeEnum, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.ExecutionState(); ok {
		_spec.SetField(stack.FieldExecutionState, field.TypeEnum, value)
		_node.ExecutionState = value
	}
	if value, ok := _c.mutation.LastActivityAt(); ok {
		_spec.SetField(stack.FieldLastActivityAt, field.TypeTime, value)
		_node.LastActivityAt = &value
	}
	if value, ok := _c.mutation.TotalCycles(); ok {
		_spec.SetField(stack.FieldTotalCycles, field.TypeInt, value)
		_node.TotalCycles = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stack.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AgentStatesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProjectIdeaIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TodosIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ArtifactsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TracesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UserMessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OrchestratorExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExecutionGraphsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WorkDetectionCacheIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Stack.Create().
//		SetParticipantName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StackUpsert) {
//			SetParticipantName(v+v).
//		}).
//		Exec(ctx)
func (_c *StackCreate) OnConflict(opts ...sql.ConflictOption) *StackUpsertOne {
	_c.conflict = opts
	return &StackUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Stack.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StackCreate) OnConflictColumns(columns ...string) *StackUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StackUpsertOne{
		create: _c,
	}
}

type (
	// StackUpsertOne is the builder for "upsert"-ing
	//  one Stack node.
	StackUpsertOne struct {
		create *StackCreate
	}

	// StackUpsert is the "OnConflict" setter.
	StackUpsert struct {
		*sql.UpdateSet
	}
)

// SetParticipantName sets the "participant_name" field.
func (u *StackUpsert) SetParticipantName(v string) *StackUpsert {
	u.Set(stack.FieldParticipantName, v)
	return u
}

// UpdateParticipantName sets the "participant_name" field to the value that was provided on create.
func (u *StackUpsert) UpdateParticipantName() *StackUpsert {
	u.SetExcluded(stack.FieldParticipantName)
	return u
}

// SetPhase sets the "phase" field.
func (u *StackUpsert) SetPhase(v stack.Phase) *StackUpsert {
	u.Set(stack.FieldPhase, v)
	return u
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *StackUpsert) UpdatePhase() *StackUpsert {
	u.SetExcluded(stack.FieldPhase)
	return u
}

// SetExecutionState sets the "execution_state" field.
func (u *StackUpsert) SetExecutionState(v stack.ExecutionState) *StackUpsert {
	u.Set(stack.FieldExecutionState, v)
	return u
}

// UpdateExecutionState sets the "execution_state" field to the value that was provided on create.
func (u *StackUpsert) UpdateExecutionState() *StackUpsert {
	u.SetExcluded(stack.FieldExecutionState)
	return u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (u *StackUpsert) SetLastActivityAt(v time.Time) *StackUpsert {
	u.Set(stack.FieldLastActivityAt, v)
	return u
}

// UpdateLastActivityAt sets the "last_activity_at" field to the value that was provided on create.
func (u *StackUpsert) UpdateLastActivityAt() *StackUpsert {
	u.SetExcluded(stack.FieldLastActivityAt)
	return u
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (u *StackUpsert) ClearLastActivityAt() *StackUpsert {
	u.SetNull(stack.FieldLastActivityAt)
	return u
}

// SetTotalCycles sets the "total_cycles" field.
func (u *StackUpsert) SetTotalCycles(v int) *StackUpsert {
	u.Set(stack.FieldTotalCycles, v)
	return u
}

// UpdateTotalCycles sets the "total_cycles" field to the value that was provided on create.
func (u *StackUpsert) UpdateTotalCycles() *StackUpsert {
	u.SetExcluded(stack.FieldTotalCycles)
	return u
}

// AddTotalCycles adds v to the "total_cycles" field.
func (u *StackUpsert) AddTotalCycles(v int) *StackUpsert {
	u.Add(stack.FieldTotalCycles, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Stack.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stack.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StackUpsertOne) UpdateNewValues() *StackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(stack.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(stack.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Stack.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StackUpsertOne) Ignore() *StackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StackUpsertOne) DoNothing() *StackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StackCreate.OnConflict
// documentation for more info.
func (u *StackUpsertOne) Update(set func(*StackUpsert)) *StackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StackUpsert{UpdateSet: update})
	}))
	return u
}

// SetParticipantName sets the "participant_name" field.
func (u *StackUpsertOne) SetParticipantName(v string) *StackUpsertOne {
	return u.Update(func(s *StackUpsert) {
		s.SetParticipantName(v)
	})
}

// UpdateParticipantName sets the "participant_name" field to the value that was provided on create.
func (u *StackUpsertOne) UpdateParticipantName() *StackUpsertOne {
	return u.Update(func(s *StackUpsert) {
		s.UpdateParticipantName()
	})
}

// SetPhase sets the "phase" field.
func (u *StackUpsertOne) SetPhase(v stack.Phase) *StackUpsertOne {
	return u.Update(func(s *StackUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *StackUpsertOne) UpdatePhase() *StackUpsertOne {
	return u.Update(func(s *StackUpsert) {
		s.UpdatePhase()
	})
}

// SetExecutionState sets the "execution_state" field.
func (u *StackUpsertOne) SetExecutionState(v stack.ExecutionState) *StackUpsertOne {
	return u.Update(func(s *StackUpsert) {
		s.SetExecutionState(v)
	})
}

// UpdateExecutionState sets the "execution_state" field to the value that was provided on create.
func (u *StackUpsertOne) UpdateExecutionState() *StackUpsertOne {
	return u.Update(func(s *StackUpsert) {
		s.UpdateExecutionState()
	})
}

// SetLastActivityAt sets the "last_activity_at" field.
func (u *StackUpsertOne) SetLastActivityAt(v time.Time) *StackUpsertOne {
	return u.Update(func(s *StackUpsert) {
		s.SetLastActivityAt(v)
	})
}

// UpdateLastActivityAt sets the "last_activity_at" field to the value that was provided on create.
func (u *StackUpsertOne) UpdateLastActivityAt() *StackUpsertOne {
	return u.Update(func(s *StackUpsert) {
		s.UpdateLastActivityAt()
	})
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (u *StackUpsertOne) ClearLastActivityAt() *StackUpsertOne {
	return u.Update(func(s *StackUpsert) {
		s.ClearLastActivityAt()
	})
}

// SetTotalCycles sets the "total_cycles" field.
func (u *StackUpsertOne) SetTotalCycles(v int) *StackUpsertOne {
	return u.Update(func(s *StackUpsert) {
		s.SetTotalCycles(v)
	})
}

// AddTotalCycles adds v to the "total_cycles" field.
func (u *StackUpsertOne) AddTotalCycles(v int) *StackUpsertOne {
	return u.Update(func(s *StackUpsert) {
		s.AddTotalCycles(v)
	})
}

// UpdateTotalCycles sets the "total_cycles" field to the value that was provided on create.
func (u *StackUpsertOne) UpdateTotalCycles() *StackUpsertOne {
	return u.Update(func(s *StackUpsert) {
		s.UpdateTotalCycles()
	})
}

// Exec executes the query.
func (u *StackUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StackCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StackUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StackUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StackUpsertOne.ID is not supported by MySQL driver. Use StackUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StackUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StackCreateBulk is the builder for creating many Stack entities in bulk.
type StackCreateBulk struct {
	config
	err      error
	builders []*StackCreate
	conflict []sql.ConflictOption
}

// Save creates the Stack entities in the database.
func (_c *StackCreateBulk) Save(ctx context.Context) ([]*Stack, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Stack, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StackMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StackCreateBulk) SaveX(ctx context.Context) []*Stack {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StackCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StackCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Stack.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StackUpsert) {
//			SetParticipantName(v+v).
//		}).
//		Exec(ctx)
func (_c *StackCreateBulk) OnConflict(opts ...sql.ConflictOption) *StackUpsertBulk {
	_c.conflict = opts
	return &StackUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Stack.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StackCreateBulk) OnConflictColumns(columns ...string) *StackUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StackUpsertBulk{
		create: _c,
	}
}

// StackUpsertBulk is the builder for "upsert"-ing
// a bulk of Stack nodes.
type StackUpsertBulk struct {
	create *StackCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Stack.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stack.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StackUpsertBulk) UpdateNewValues() *StackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(stack.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(stack.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Stack.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StackUpsertBulk) Ignore() *StackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StackUpsertBulk) DoNothing() *StackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StackCreateBulk.OnConflict
// documentation for more info.
func (u *StackUpsertBulk) Update(set func(*StackUpsert)) *StackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StackUpsert{UpdateSet: update})
	}))
	return u
}

// SetParticipantName sets the "participant_name" field.
func (u *StackUpsertBulk) SetParticipantName(v string) *StackUpsertBulk {
	return u.Update(func(s *StackUpsert) {
		s.SetParticipantName(v)
	})
}

// UpdateParticipantName sets the "participant_name" field to the value that was provided on create.
func (u *StackUpsertBulk) UpdateParticipantName() *StackUpsertBulk {
	return u.Update(func(s *StackUpsert) {
		s.UpdateParticipantName()
	})
}

// SetPhase sets the "phase" field.
func (u *StackUpsertBulk) SetPhase(v stack.Phase) *StackUpsertBulk {
	return u.Update(func(s *StackUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *StackUpsertBulk) UpdatePhase() *StackUpsertBulk {
	return u.Update(func(s *StackUpsert) {
		s.UpdatePhase()
	})
}

// SetExecutionState sets the "execution_state" field.
func (u *StackUpsertBulk) SetExecutionState(v stack.ExecutionState) *StackUpsertBulk {
	return u.Update(func(s *StackUpsert) {
		s.SetExecutionState(v)
	})
}

// UpdateExecutionState sets the "execution_state" field to the value that was provided on create.
func (u *StackUpsertBulk) UpdateExecutionState() *StackUpsertBulk {
	return u.Update(func(s *StackUpsert) {
		s.UpdateExecutionState()
	})
}

// SetLastActivityAt sets the "last_activity_at" field.
func (u *StackUpsertBulk) SetLastActivityAt(v time.Time) *StackUpsertBulk {
	return u.Update(func(s *StackUpsert) {
		s.SetLastActivityAt(v)
	})
}

// UpdateLastActivityAt sets the "last_activity_at" field to the value that was provided on create.
func (u *StackUpsertBulk) UpdateLastActivityAt() *StackUpsertBulk {
	return u.Update(func(s *StackUpsert) {
		s.UpdateLastActivityAt()
	})
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (u *StackUpsertBulk) ClearLastActivityAt() *StackUpsertBulk {
	return u.Update(func(s *StackUpsert) {
		s.ClearLastActivityAt()
	})
}

// SetTotalCycles sets the "total_cycles" field.
func (u *StackUpsertBulk) SetTotalCycles(v int) *StackUpsertBulk {
	return u.Update(func(s *StackUpsert) {
		s.SetTotalCycles(v)
	})
}

// AddTotalCycles adds v to the "total_cycles" field.
func (u *StackUpsertBulk) AddTotalCycles(v int) *StackUpsertBulk {
	return u.Update(func(s *StackUpsert) {
		s.AddTotalCycles(v)
	})
}

// UpdateTotalCycles sets the "total_cycles" field to the value that was provided on create.
func (u *StackUpsertBulk) UpdateTotalCycles() *StackUpsertBulk {
	return u.Update(func(s *StackUpsert) {
		s.UpdateTotalCycles()
	})
}

// Exec executes the query.
func (u *StackUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StackCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StackCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StackUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
