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
	"github.com/hackfleet/hackfleet/ent/orchestratorexecution"
	"github.com/hackfleet/hackfleet/ent/stack"
)

// OrchestratorExecutionCreate is the builder for creating a OrchestratorExecution entity.
type OrchestratorExecutionCreate struct {
	config
	mutation *OrchestratorExecutionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStackID sets the "stack_id" field.
func (_c *OrchestratorExecutionCreate) SetStackID(v string) *OrchestratorExecutionCreate {
	_c.mutation.SetStackID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *OrchestratorExecutionCreate) SetStatus(v orchestratorexecution.Status) *OrchestratorExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *OrchestratorExecutionCreate) SetNillableStatus(v *orchestratorexecution.Status) *OrchestratorExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *OrchestratorExecutionCreate) SetStartedAt(v time.Time) *OrchestratorExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *OrchestratorExecutionCreate) SetNillableStartedAt(v *time.Time) *OrchestratorExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *OrchestratorExecutionCreate) SetCompletedAt(v time.Time) *OrchestratorExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *OrchestratorExecutionCreate) SetNillableCompletedAt(v *time.Time) *OrchestratorExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDecision sets the "decision" field.
func (_c *OrchestratorExecutionCreate) SetDecision(v string) *OrchestratorExecutionCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_c *OrchestratorExecutionCreate) SetNillableDecision(v *string) *OrchestratorExecutionCreate {
	if v != nil {
		_c.SetDecision(*v)
	}
	return _c
}

// SetPauseDurationMs sets the "pause_duration_ms" field.
func (_c *OrchestratorExecutionCreate) SetPauseDurationMs(v int64) *OrchestratorExecutionCreate {
	_c.mutation.SetPauseDurationMs(v)
	return _c
}

// SetNillablePauseDurationMs sets the "pause_duration_ms" field if the given value is not nil.
func (_c *OrchestratorExecutionCreate) SetNillablePauseDurationMs(v *int64) *OrchestratorExecutionCreate {
	if v != nil {
		_c.SetPauseDurationMs(*v)
	}
	return _c
}

// SetGraphSummary sets the "graph_summary" field.
func (_c *OrchestratorExecutionCreate) SetGraphSummary(v string) *OrchestratorExecutionCreate {
	_c.mutation.SetGraphSummary(v)
	return _c
}

// SetNillableGraphSummary sets the "graph_summary" field if the given value is not nil.
func (_c *OrchestratorExecutionCreate) SetNillableGraphSummary(v *string) *OrchestratorExecutionCreate {
	if v != nil {
		_c.SetGraphSummary(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *OrchestratorExecutionCreate) SetErrorMessage(v string) *OrchestratorExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *OrchestratorExecutionCreate) SetNillableErrorMessage(v *string) *OrchestratorExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrchestratorExecutionCreate) SetID(v string) *OrchestratorExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStack sets the "stack" edge to the Stack entity.
func (_c *OrchestratorExecutionCreate) SetStack(v *Stack) *OrchestratorExecutionCreate {
	return _c.SetStackID(v.ID)
}

// Mutation returns the OrchestratorExecutionMutation object of the builder.
func (_c *OrchestratorExecutionCreate) Mutation() *OrchestratorExecutionMutation {
	return _c.mutation
}

// Save creates the OrchestratorExecution in the database.
func (_c *OrchestratorExecutionCreate) Save(ctx context.Context) (*OrchestratorExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrchestratorExecutionCreate) SaveX(ctx context.Context) *OrchestratorExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrchestratorExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrchestratorExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrchestratorExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := orchestratorexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := orchestratorexecution.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrchestratorExecutionCreate) check() error {
	if _, ok := _c.mutation.StackID(); !ok {
		return &ValidationError{Name: "stack_id", err: errors.New(`ent: missing required field "OrchestratorExecution.stack_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "OrchestratorExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := orchestratorexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OrchestratorExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "OrchestratorExecution.started_at"`)}
	}
	if len(_c.mutation.StackIDs()) == 0 {
		return &ValidationError{Name: "stack", err: errors.New(`ent: missing required edge "OrchestratorExecution.stack"`)}
	}
	return nil
}

func (_c *OrchestratorExecutionCreate) sqlSave(ctx context.Context) (*OrchestratorExecution, error) {
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
			return nil, fmt.Errorf("unexpected OrchestratorExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OrchestratorExecutionCreate) createSpec() (*OrchestratorExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &OrchestratorExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(orchestratorexecution.Table, sqlgraph.NewFieldSpec(orchestratorexecution.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(orchestratorexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(orchestratorexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(orchestratorexecution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(orchestratorexecution.FieldDecision, field.TypeString, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.PauseDurationMs(); ok {
		_spec.SetField(orchestratorexecution.FieldPauseDurationMs, field.TypeInt64, value)
		_node.PauseDurationMs = &value
	}
	if value, ok := _c.mutation.GraphSummary(); ok {
		_spec.SetField(orchestratorexecution.FieldGraphSummary, field.TypeString, value)
		_node.GraphSummary = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(orchestratorexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.StackIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orchestratorexecution.StackTable,
			Columns: []string{orchestratorexecution.StackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stack.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StackID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OrchestratorExecution.Create().
//		SetStackID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OrchestratorExecutionUpsert) {
//			SetStackID(v+v).
//		}).
//		Exec(ctx)
func (_c *OrchestratorExecutionCreate) OnConflict(opts ...sql.ConflictOption) *OrchestratorExecutionUpsertOne {
	_c.conflict = opts
	return &OrchestratorExecutionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OrchestratorExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OrchestratorExecutionCreate) OnConflictColumns(columns ...string) *OrchestratorExecutionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OrchestratorExecutionUpsertOne{
		create: _c,
	}
}

type (
	// OrchestratorExecutionUpsertOne is the builder for "upsert"-ing
	//  one OrchestratorExecution node.
	OrchestratorExecutionUpsertOne struct {
		create *OrchestratorExecutionCreate
	}

	// OrchestratorExecutionUpsert is the "OnConflict" setter.
	OrchestratorExecutionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *OrchestratorExecutionUpsert) SetStatus(v orchestratorexecution.Status) *OrchestratorExecutionUpsert {
	u.Set(orchestratorexecution.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OrchestratorExecutionUpsert) UpdateStatus() *OrchestratorExecutionUpsert {
	u.SetExcluded(orchestratorexecution.FieldStatus)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *OrchestratorExecutionUpsert) SetCompletedAt(v time.Time) *OrchestratorExecutionUpsert {
	u.Set(orchestratorexecution.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *OrchestratorExecutionUpsert) UpdateCompletedAt() *OrchestratorExecutionUpsert {
	u.SetExcluded(orchestratorexecution.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *OrchestratorExecutionUpsert) ClearCompletedAt() *OrchestratorExecutionUpsert {
	u.SetNull(orchestratorexecution.FieldCompletedAt)
	return u
}

// SetDecision sets the "decision" field.
func (u *OrchestratorExecutionUpsert) SetDecision(v string) *OrchestratorExecutionUpsert {
	u.Set(orchestratorexecution.FieldDecision, v)
	return u
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *OrchestratorExecutionUpsert) UpdateDecision() *OrchestratorExecutionUpsert {
	u.SetExcluded(orchestratorexecution.FieldDecision)
	return u
}

// ClearDecision clears the value of the "decision" field.
func (u *OrchestratorExecutionUpsert) ClearDecision() *OrchestratorExecutionUpsert {
	u.SetNull(orchestratorexecution.FieldDecision)
	return u
}

// SetPauseDurationMs sets the "pause_duration_ms" field.
func (u *OrchestratorExecutionUpsert) SetPauseDurationMs(v int64) *OrchestratorExecutionUpsert {
	u.Set(orchestratorexecution.FieldPauseDurationMs, v)
	return u
}

// UpdatePauseDurationMs sets the "pause_duration_ms" field to the value that was provided on create.
func (u *OrchestratorExecutionUpsert) UpdatePauseDurationMs() *OrchestratorExecutionUpsert {
	u.SetExcluded(orchestratorexecution.FieldPauseDurationMs)
	return u
}

// AddPauseDurationMs adds v to the "pause_duration_ms" field.
func (u *OrchestratorExecutionUpsert) AddPauseDurationMs(v int64) *OrchestratorExecutionUpsert {
	u.Add(orchestratorexecution.FieldPauseDurationMs, v)
	return u
}

// ClearPauseDurationMs clears the value of the "pause_duration_ms" field.
func (u *OrchestratorExecutionUpsert) ClearPauseDurationMs() *OrchestratorExecutionUpsert {
	u.SetNull(orchestratorexecution.FieldPauseDurationMs)
	return u
}

// SetGraphSummary sets the "graph_summary" field.
func (u *OrchestratorExecutionUpsert) SetGraphSummary(v string) *OrchestratorExecutionUpsert {
	u.Set(orchestratorexecution.FieldGraphSummary, v)
	return u
}

// UpdateGraphSummary sets the "graph_summary" field to the value that was provided on create.
func (u *OrchestratorExecutionUpsert) UpdateGraphSummary() *OrchestratorExecutionUpsert {
	u.SetExcluded(orchestratorexecution.FieldGraphSummary)
	return u
}

// ClearGraphSummary clears the value of the "graph_summary" field.
func (u *OrchestratorExecutionUpsert) ClearGraphSummary() *OrchestratorExecutionUpsert {
	u.SetNull(orchestratorexecution.FieldGraphSummary)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *OrchestratorExecutionUpsert) SetErrorMessage(v string) *OrchestratorExecutionUpsert {
	u.Set(orchestratorexecution.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *OrchestratorExecutionUpsert) UpdateErrorMessage() *OrchestratorExecutionUpsert {
	u.SetExcluded(orchestratorexecution.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *OrchestratorExecutionUpsert) ClearErrorMessage() *OrchestratorExecutionUpsert {
	u.SetNull(orchestratorexecution.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.OrchestratorExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(orchestratorexecution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OrchestratorExecutionUpsertOne) UpdateNewValues() *OrchestratorExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(orchestratorexecution.FieldID)
		}
		if _, exists := u.create.mutation.StackID(); exists {
			s.SetIgnore(orchestratorexecution.FieldStackID)
		}
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(orchestratorexecution.FieldStartedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OrchestratorExecution.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OrchestratorExecutionUpsertOne) Ignore() *OrchestratorExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OrchestratorExecutionUpsertOne) DoNothing() *OrchestratorExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OrchestratorExecutionCreate.OnConflict
// documentation for more info.
func (u *OrchestratorExecutionUpsertOne) Update(set func(*OrchestratorExecutionUpsert)) *OrchestratorExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OrchestratorExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *OrchestratorExecutionUpsertOne) SetStatus(v orchestratorexecution.Status) *OrchestratorExecutionUpsertOne {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OrchestratorExecutionUpsertOne) UpdateStatus() *OrchestratorExecutionUpsertOne {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.UpdateStatus()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *OrchestratorExecutionUpsertOne) SetCompletedAt(v time.Time) *OrchestratorExecutionUpsertOne {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *OrchestratorExecutionUpsertOne) UpdateCompletedAt() *OrchestratorExecutionUpsertOne {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *OrchestratorExecutionUpsertOne) ClearCompletedAt() *OrchestratorExecutionUpsertOne {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDecision sets the "decision" field.
func (u *OrchestratorExecutionUpsertOne) SetDecision(v string) *OrchestratorExecutionUpsertOne {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.SetDecision(v)
	})
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *OrchestratorExecutionUpsertOne) UpdateDecision() *OrchestratorExecutionUpsertOne {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.UpdateDecision()
	})
}

// ClearDecision clears the value of the "decision" field.
func (u *OrchestratorExecutionUpsertOne) ClearDecision() *OrchestratorExecutionUpsertOne {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.ClearDecision()
	})
}

// SetPauseDurationMs sets the "pause_duration_ms" field.
func (u *OrchestratorExecutionUpsertOne) SetPauseDurationMs(v int64) *OrchestratorExecutionUpsertOne {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.SetPauseDurationMs(v)
	})
}

// AddPauseDurationMs adds v to the "pause_duration_ms" field.
func (u *OrchestratorExecutionUpsertOne) AddPauseDurationMs(v int64) *OrchestratorExecutionUpsertOne {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.AddPauseDurationMs(v)
	})
}

// UpdatePauseDurationMs sets the "pause_duration_ms" field to the value that was provided on create.
func (u *OrchestratorExecutionUpsertOne) UpdatePauseDurationMs() *OrchestratorExecutionUpsertOne {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.UpdatePauseDurationMs()
	})
}

// ClearPauseDurationMs clears the value of the "pause_duration_ms" field.
func (u *OrchestratorExecutionUpsertOne) ClearPauseDurationMs() *OrchestratorExecutionUpsertOne {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.ClearPauseDurationMs()
	})
}

// SetGraphSummary sets the "graph_summary" field.
func (u *OrchestratorExecutionUpsertOne) SetGraphSummary(v string) *OrchestratorExecutionUpsertOne {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.SetGraphSummary(v)
	})
}

// UpdateGraphSummary sets the "graph_summary" field to the value that was provided on create.
func (u *OrchestratorExecutionUpsertOne) UpdateGraphSummary() *OrchestratorExecutionUpsertOne {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.UpdateGraphSummary()
	})
}

// ClearGraphSummary clears the value of the "graph_summary" field.
func (u *OrchestratorExecutionUpsertOne) ClearGraphSummary() *OrchestratorExecutionUpsertOne {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.ClearGraphSummary()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *OrchestratorExecutionUpsertOne) SetErrorMessage(v string) *OrchestratorExecutionUpsertOne {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *OrchestratorExecutionUpsertOne) UpdateErrorMessage() *OrchestratorExecutionUpsertOne {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *OrchestratorExecutionUpsertOne) ClearErrorMessage() *OrchestratorExecutionUpsertOne {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *OrchestratorExecutionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OrchestratorExecutionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OrchestratorExecutionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OrchestratorExecutionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: OrchestratorExecutionUpsertOne.ID is not supported by MySQL driver. Use OrchestratorExecutionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OrchestratorExecutionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OrchestratorExecutionCreateBulk is the builder for creating many OrchestratorExecution entities in bulk.
type OrchestratorExecutionCreateBulk struct {
	config
	err      error
	builders []*OrchestratorExecutionCreate
	conflict []sql.ConflictOption
}

// Save creates the OrchestratorExecution entities in the database.
func (_c *OrchestratorExecutionCreateBulk) Save(ctx context.Context) ([]*OrchestratorExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OrchestratorExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrchestratorExecutionMutation)
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
func (_c *OrchestratorExecutionCreateBulk) SaveX(ctx context.Context) []*OrchestratorExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrchestratorExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrchestratorExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OrchestratorExecution.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OrchestratorExecutionUpsert) {
//			SetStackID(v+v).
//		}).
//		Exec(ctx)
func (_c *OrchestratorExecutionCreateBulk) OnConflict(opts ...sql.ConflictOption) *OrchestratorExecutionUpsertBulk {
	_c.conflict = opts
	return &OrchestratorExecutionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OrchestratorExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OrchestratorExecutionCreateBulk) OnConflictColumns(columns ...string) *OrchestratorExecutionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OrchestratorExecutionUpsertBulk{
		create: _c,
	}
}

// OrchestratorExecutionUpsertBulk is the builder for "upsert"-ing
// a bulk of OrchestratorExecution nodes.
type OrchestratorExecutionUpsertBulk struct {
	create *OrchestratorExecutionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OrchestratorExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(orchestratorexecution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OrchestratorExecutionUpsertBulk) UpdateNewValues() *OrchestratorExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(orchestratorexecution.FieldID)
			}
			if _, exists := b.mutation.StackID(); exists {
				s.SetIgnore(orchestratorexecution.FieldStackID)
			}
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(orchestratorexecution.FieldStartedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OrchestratorExecution.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OrchestratorExecutionUpsertBulk) Ignore() *OrchestratorExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OrchestratorExecutionUpsertBulk) DoNothing() *OrchestratorExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OrchestratorExecutionCreateBulk.OnConflict
// documentation for more info.
func (u *OrchestratorExecutionUpsertBulk) Update(set func(*OrchestratorExecutionUpsert)) *OrchestratorExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OrchestratorExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *OrchestratorExecutionUpsertBulk) SetStatus(v orchestratorexecution.Status) *OrchestratorExecutionUpsertBulk {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OrchestratorExecutionUpsertBulk) UpdateStatus() *OrchestratorExecutionUpsertBulk {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.UpdateStatus()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *OrchestratorExecutionUpsertBulk) SetCompletedAt(v time.Time) *OrchestratorExecutionUpsertBulk {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *OrchestratorExecutionUpsertBulk) UpdateCompletedAt() *OrchestratorExecutionUpsertBulk {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *OrchestratorExecutionUpsertBulk) ClearCompletedAt() *OrchestratorExecutionUpsertBulk {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDecision sets the "decision" field.
func (u *OrchestratorExecutionUpsertBulk) SetDecision(v string) *OrchestratorExecutionUpsertBulk {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.SetDecision(v)
	})
}

// UpdateDecision sets the "decision" field to the value that was provided on create.
func (u *OrchestratorExecutionUpsertBulk) UpdateDecision() *OrchestratorExecutionUpsertBulk {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.UpdateDecision()
	})
}

// ClearDecision clears the value of the "decision" field.
func (u *OrchestratorExecutionUpsertBulk) ClearDecision() *OrchestratorExecutionUpsertBulk {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.ClearDecision()
	})
}

// SetPauseDurationMs sets the "pause_duration_ms" field.
func (u *OrchestratorExecutionUpsertBulk) SetPauseDurationMs(v int64) *OrchestratorExecutionUpsertBulk {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.SetPauseDurationMs(v)
	})
}

// AddPauseDurationMs adds v to the "pause_duration_ms" field.
func (u *OrchestratorExecutionUpsertBulk) AddPauseDurationMs(v int64) *OrchestratorExecutionUpsertBulk {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.AddPauseDurationMs(v)
	})
}

// UpdatePauseDurationMs sets the "pause_duration_ms" field to the value that was provided on create.
func (u *OrchestratorExecutionUpsertBulk) UpdatePauseDurationMs() *OrchestratorExecutionUpsertBulk {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.UpdatePauseDurationMs()
	})
}

// ClearPauseDurationMs clears the value of the "pause_duration_ms" field.
func (u *OrchestratorExecutionUpsertBulk) ClearPauseDurationMs() *OrchestratorExecutionUpsertBulk {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.ClearPauseDurationMs()
	})
}

// SetGraphSummary sets the "graph_summary" field.
func (u *OrchestratorExecutionUpsertBulk) SetGraphSummary(v string) *OrchestratorExecutionUpsertBulk {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.SetGraphSummary(v)
	})
}

// UpdateGraphSummary sets the "graph_summary" field to the value that was provided on create.
func (u *OrchestratorExecutionUpsertBulk) UpdateGraphSummary() *OrchestratorExecutionUpsertBulk {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.UpdateGraphSummary()
	})
}

// ClearGraphSummary clears the value of the "graph_summary" field.
func (u *OrchestratorExecutionUpsertBulk) ClearGraphSummary() *OrchestratorExecutionUpsertBulk {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.ClearGraphSummary()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *OrchestratorExecutionUpsertBulk) SetErrorMessage(v string) *OrchestratorExecutionUpsertBulk {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *OrchestratorExecutionUpsertBulk) UpdateErrorMessage() *OrchestratorExecutionUpsertBulk {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *OrchestratorExecutionUpsertBulk) ClearErrorMessage() *OrchestratorExecutionUpsertBulk {
	return u.Update(func(s *OrchestratorExecutionUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *OrchestratorExecutionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OrchestratorExecutionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OrchestratorExecutionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OrchestratorExecutionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
