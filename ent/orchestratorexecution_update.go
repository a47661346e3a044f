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
	"github.com/hackfleet/hackfleet/ent/orchestratorexecution"
	"github.com/hackfleet/hackfleet/ent/predicate"
)

// OrchestratorExecutionUpdate is the builder for updating OrchestratorExecution entities.
type OrchestratorExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *OrchestratorExecutionMutation
}

// Where appends a list predicates to the OrchestratorExecutionUpdate builder.
func (_u *OrchestratorExecutionUpdate) Where(ps ...predicate.OrchestratorExecution) *OrchestratorExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *OrchestratorExecutionUpdate) SetStatus(v orchestratorexecution.Status) *OrchestratorExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OrchestratorExecutionUpdate) SetNillableStatus(v *orchestratorexecution.Status) *OrchestratorExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *OrchestratorExecutionUpdate) SetCompletedAt(v time.Time) *OrchestratorExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *OrchestratorExecutionUpdate) SetNillableCompletedAt(v *time.Time) *OrchestratorExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *OrchestratorExecutionUpdate) ClearCompletedAt() *OrchestratorExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDecision sets the "decision" field.
func (_u *OrchestratorExecutionUpdate) SetDecision(v string) *OrchestratorExecutionUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *OrchestratorExecutionUpdate) SetNillableDecision(v *string) *OrchestratorExecutionUpdate {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// ClearDecision clears the value of the "decision" field.
func (_u *OrchestratorExecutionUpdate) ClearDecision() *OrchestratorExecutionUpdate {
	_u.mutation.ClearDecision()
	return _u
}

// SetPauseDurationMs sets the "pause_duration_ms" field.
func (_u *OrchestratorExecutionUpdate) SetPauseDurationMs(v int64) *OrchestratorExecutionUpdate {
	_u.mutation.ResetPauseDurationMs()
	_u.mutation.SetPauseDurationMs(v)
	return _u
}

// SetNillablePauseDurationMs sets the "pause_duration_ms" field if the given value is not nil.
func (_u *OrchestratorExecutionUpdate) SetNillablePauseDurationMs(v *int64) *OrchestratorExecutionUpdate {
	if v != nil {
		_u.SetPauseDurationMs(*v)
	}
	return _u
}

// AddPauseDurationMs adds value to the "pause_duration_ms" field.
func (_u *OrchestratorExecutionUpdate) AddPauseDurationMs(v int64) *OrchestratorExecutionUpdate {
	_u.mutation.AddPauseDurationMs(v)
	return _u
}

// ClearPauseDurationMs clears the value of the "pause_duration_ms" field.
func (_u *OrchestratorExecutionUpdate) ClearPauseDurationMs() *OrchestratorExecutionUpdate {
	_u.mutation.ClearPauseDurationMs()
	return _u
}

// SetGraphSummary sets the "graph_summary" field.
func (_u *OrchestratorExecutionUpdate) SetGraphSummary(v string) *OrchestratorExecutionUpdate {
	_u.mutation.SetGraphSummary(v)
	return _u
}

// SetNillableGraphSummary sets the "graph_summary" field if the given value is not nil.
func (_u *OrchestratorExecutionUpdate) SetNillableGraphSummary(v *string) *OrchestratorExecutionUpdate {
	if v != nil {
		_u.SetGraphSummary(*v)
	}
	return _u
}

// ClearGraphSummary clears the value of the "graph_summary" field.
func (_u *OrchestratorExecutionUpdate) ClearGraphSummary() *OrchestratorExecutionUpdate {
	_u.mutation.ClearGraphSummary()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *OrchestratorExecutionUpdate) SetErrorMessage(v string) *OrchestratorExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *OrchestratorExecutionUpdate) SetNillableErrorMessage(v *string) *OrchestratorExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *OrchestratorExecutionUpdate) ClearErrorMessage() *OrchestratorExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the OrchestratorExecutionMutation object of the builder.
func (_u *OrchestratorExecutionUpdate) Mutation() *OrchestratorExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrchestratorExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrchestratorExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrchestratorExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrchestratorExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrchestratorExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := orchestratorexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OrchestratorExecution.status": %w`, err)}
		}
	}
	if _u.mutation.StackCleared() && len(_u.mutation.StackIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrchestratorExecution.stack"`)
	}
	return nil
}

func (_u *OrchestratorExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orchestratorexecution.Table, orchestratorexecution.Columns, sqlgraph.NewFieldSpec(orchestratorexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(orchestratorexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(orchestratorexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(orchestratorexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(orchestratorexecution.FieldDecision, field.TypeString, value)
	}
	if _u.mutation.DecisionCleared() {
		_spec.ClearField(orchestratorexecution.FieldDecision, field.TypeString)
	}
	if value, ok := _u.mutation.PauseDurationMs(); ok {
		_spec.SetField(orchestratorexecution.FieldPauseDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPauseDurationMs(); ok {
		_spec.AddField(orchestratorexecution.FieldPauseDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.PauseDurationMsCleared() {
		_spec.ClearField(orchestratorexecution.FieldPauseDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.GraphSummary(); ok {
		_spec.SetField(orchestratorexecution.FieldGraphSummary, field.TypeString, value)
	}
	if _u.mutation.GraphSummaryCleared() {
		_spec.ClearField(orchestratorexecution.FieldGraphSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(orchestratorexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(orchestratorexecution.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orchestratorexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrchestratorExecutionUpdateOne is the builder for updating a single OrchestratorExecution entity.
type OrchestratorExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrchestratorExecutionMutation
}

// SetStatus sets the "status" field.
func (_u *OrchestratorExecutionUpdateOne) SetStatus(v orchestratorexecution.Status) *OrchestratorExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OrchestratorExecutionUpdateOne) SetNillableStatus(v *orchestratorexecution.Status) *OrchestratorExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *OrchestratorExecutionUpdateOne) SetCompletedAt(v time.Time) *OrchestratorExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *OrchestratorExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *OrchestratorExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *OrchestratorExecutionUpdateOne) ClearCompletedAt() *OrchestratorExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDecision sets the "decision" field.
func (_u *OrchestratorExecutionUpdateOne) SetDecision(v string) *OrchestratorExecutionUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *OrchestratorExecutionUpdateOne) SetNillableDecision(v *string) *OrchestratorExecutionUpdateOne {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// ClearDecision clears the value of the "decision" field.
func (_u *OrchestratorExecutionUpdateOne) ClearDecision() *OrchestratorExecutionUpdateOne {
	_u.mutation.ClearDecision()
	return _u
}

// SetPauseDurationMs sets the "pause_duration_ms" field.
func (_u *OrchestratorExecutionUpdateOne) SetPauseDurationMs(v int64) *OrchestratorExecutionUpdateOne {
	_u.mutation.ResetPauseDurationMs()
	_u.mutation.SetPauseDurationMs(v)
	return _u
}

// SetNillablePauseDurationMs sets the "pause_duration_ms" field if the given value is not nil.
func (_u *OrchestratorExecutionUpdateOne) SetNillablePauseDurationMs(v *int64) *OrchestratorExecutionUpdateOne {
	if v != nil {
		_u.SetPauseDurationMs(*v)
	}
	return _u
}

// AddPauseDurationMs adds value to the "pause_duration_ms" field.
func (_u *OrchestratorExecutionUpdateOne) AddPauseDurationMs(v int64) *OrchestratorExecutionUpdateOne {
	_u.mutation.AddPauseDurationMs(v)
	return _u
}

// ClearPauseDurationMs clears the value of the "pause_duration_ms" field.
func (_u *OrchestratorExecutionUpdateOne) ClearPauseDurationMs() *OrchestratorExecutionUpdateOne {
	_u.mutation.ClearPauseDurationMs()
	return _u
}

// SetGraphSummary sets the "graph_summary" field.
func (_u *OrchestratorExecutionUpdateOne) SetGraphSummary(v string) *OrchestratorExecutionUpdateOne {
	_u.mutation.SetGraphSummary(v)
	return _u
}

// SetNillableGraphSummary sets the "graph_summary" field if the given value is not nil.
func (_u *OrchestratorExecutionUpdateOne) SetNillableGraphSummary(v *string) *OrchestratorExecutionUpdateOne {
	if v != nil {
		_u.SetGraphSummary(*v)
	}
	return _u
}

// ClearGraphSummary clears the value of the "graph_summary" field.
func (_u *OrchestratorExecutionUpdateOne) ClearGraphSummary() *OrchestratorExecutionUpdateOne {
	_u.mutation.ClearGraphSummary()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *OrchestratorExecutionUpdateOne) SetErrorMessage(v string) *OrchestratorExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *OrchestratorExecutionUpdateOne) SetNillableErrorMessage(v *string) *OrchestratorExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *OrchestratorExecutionUpdateOne) ClearErrorMessage() *OrchestratorExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the OrchestratorExecutionMutation object of the builder.
func (_u *OrchestratorExecutionUpdateOne) Mutation() *OrchestratorExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the OrchestratorExecutionUpdate builder.
func (_u *OrchestratorExecutionUpdateOne) Where(ps ...predicate.OrchestratorExecution) *OrchestratorExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrchestratorExecutionUpdateOne) Select(field string, fields ...string) *OrchestratorExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrchestratorExecution entity.
func (_u *OrchestratorExecutionUpdateOne) Save(ctx context.Context) (*OrchestratorExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrchestratorExecutionUpdateOne) SaveX(ctx context.Context) *OrchestratorExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrchestratorExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrchestratorExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrchestratorExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := orchestratorexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OrchestratorExecution.status": %w`, err)}
		}
	}
	if _u.mutation.StackCleared() && len(_u.mutation.StackIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrchestratorExecution.stack"`)
	}
	return nil
}

func (_u *OrchestratorExecutionUpdateOne) sqlSave(ctx context.Context) (_node *OrchestratorExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orchestratorexecution.Table, orchestratorexecution.Columns, sqlgraph.NewFieldSpec(orchestratorexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrchestratorExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orchestratorexecution.FieldID)
		for _, f := range fields {
			if !orchestratorexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orchestratorexecution.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(orchestratorexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(orchestratorexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(orchestratorexecution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(orchestratorexecution.FieldDecision, field.TypeString, value)
	}
	if _u.mutation.DecisionCleared() {
		_spec.ClearField(orchestratorexecution.FieldDecision, field.TypeString)
	}
	if value, ok := _u.mutation.PauseDurationMs(); ok {
		_spec.SetField(orchestratorexecution.FieldPauseDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPauseDurationMs(); ok {
		_spec.AddField(orchestratorexecution.FieldPauseDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.PauseDurationMsCleared() {
		_spec.ClearField(orchestratorexecution.FieldPauseDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.GraphSummary(); ok {
		_spec.SetField(orchestratorexecution.FieldGraphSummary, field.TypeString, value)
	}
	if _u.mutation.GraphSummaryCleared() {
		_spec.ClearField(orchestratorexecution.FieldGraphSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(orchestratorexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(orchestratorexecution.FieldErrorMessage, field.TypeString)
	}
	_node = &OrchestratorExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orchestratorexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
