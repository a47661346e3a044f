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
	"github.com/hackfleet/hackfleet/ent/projectidea"
	"github.com/hackfleet/hackfleet/ent/stack"
)

// ProjectIdeaCreate is the builder for creating a ProjectIdea entity.
type ProjectIdeaCreate struct {
	config
	mutation *ProjectIdeaMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStackID sets the "stack_id" field.
func (_c *ProjectIdeaCreate) SetStackID(v string) *ProjectIdeaCreate {
	_c.mutation.SetStackID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ProjectIdeaCreate) SetTitle(v string) *ProjectIdeaCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ProjectIdeaCreate) SetDescription(v string) *ProjectIdeaCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ProjectIdeaCreate) SetNillableDescription(v *string) *ProjectIdeaCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProjectIdeaCreate) SetStatus(v string) *ProjectIdeaCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProjectIdeaCreate) SetNillableStatus(v *string) *ProjectIdeaCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProjectIdeaCreate) SetCreatedAt(v time.Time) *ProjectIdeaCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProjectIdeaCreate) SetNillableCreatedAt(v *time.Time) *ProjectIdeaCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProjectIdeaCreate) SetUpdatedAt(v time.Time) *ProjectIdeaCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProjectIdeaCreate) SetNillableUpdatedAt(v *time.Time) *ProjectIdeaCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProjectIdeaCreate) SetID(v string) *ProjectIdeaCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStack sets the "stack" edge to the Stack entity.
func (_c *ProjectIdeaCreate) SetStack(v *Stack) *ProjectIdeaCreate {
	return _c.SetStackID(v.ID)
}

// Mutation returns the ProjectIdeaMutation object of the builder.
func (_c *ProjectIdeaCreate) Mutation() *ProjectIdeaMutation {
	return _c.mutation
}

// Save creates the ProjectIdea in the database.
func (_c *ProjectIdeaCreate) Save(ctx context.Context) (*ProjectIdea, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProjectIdeaCreate) SaveX(ctx context.Context) *ProjectIdea {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectIdeaCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectIdeaCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProjectIdeaCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := projectidea.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := projectidea.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := projectidea.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProjectIdeaCreate) check() error {
	if _, ok := _c.mutation.StackID(); !ok {
		return &ValidationError{Name: "stack_id", err: errors.New(`ent: missing required field "ProjectIdea.stack_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ProjectIdea.title"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProjectIdea.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProjectIdea.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProjectIdea.updated_at"`)}
	}
	if len(_c.mutation.StackIDs()) == 0 {
		return &ValidationError{Name: "stack", err: errors.New(`ent: missing required edge "ProjectIdea.stack"`)}
	}
	return nil
}

func (_c *ProjectIdeaCreate) sqlSave(ctx context.Context) (*ProjectIdea, error) {
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
			return nil, fmt.Errorf("unexpected ProjectIdea.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProjectIdeaCreate) createSpec() (*ProjectIdea, *sqlgraph.CreateSpec) {
	var (
		_node = &ProjectIdea{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(projectidea.Table, sqlgraph.NewFieldSpec(projectidea.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(projectidea.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(projectidea.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(projectidea.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(projectidea.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(projectidea.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.StackIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   projectidea.StackTable,
			Columns: []string{projectidea.StackColumn},
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
//	client.ProjectIdea.Create().
//		SetStackID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProjectIdeaUpsert) {
//			SetStackID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProjectIdeaCreate) OnConflict(opts ...sql.ConflictOption) *ProjectIdeaUpsertOne {
	_c.conflict = opts
	return &ProjectIdeaUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProjectIdea.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProjectIdeaCreate) OnConflictColumns(columns ...string) *ProjectIdeaUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProjectIdeaUpsertOne{
		create: _c,
	}
}

type (
	// ProjectIdeaUpsertOne is the builder for "upsert"-ing
	//  one ProjectIdea node.
	ProjectIdeaUpsertOne struct {
		create *ProjectIdeaCreate
	}

	// ProjectIdeaUpsert is the "OnConflict" setter.
	ProjectIdeaUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *ProjectIdeaUpsert) SetTitle(v string) *ProjectIdeaUpsert {
	u.Set(projectidea.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ProjectIdeaUpsert) UpdateTitle() *ProjectIdeaUpsert {
	u.SetExcluded(projectidea.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *ProjectIdeaUpsert) SetDescription(v string) *ProjectIdeaUpsert {
	u.Set(projectidea.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ProjectIdeaUpsert) UpdateDescription() *ProjectIdeaUpsert {
	u.SetExcluded(projectidea.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ProjectIdeaUpsert) ClearDescription() *ProjectIdeaUpsert {
	u.SetNull(projectidea.FieldDescription)
	return u
}

// SetStatus sets the "status" field.
func (u *ProjectIdeaUpsert) SetStatus(v string) *ProjectIdeaUpsert {
	u.Set(projectidea.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProjectIdeaUpsert) UpdateStatus() *ProjectIdeaUpsert {
	u.SetExcluded(projectidea.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectIdeaUpsert) SetUpdatedAt(v time.Time) *ProjectIdeaUpsert {
	u.Set(projectidea.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectIdeaUpsert) UpdateUpdatedAt() *ProjectIdeaUpsert {
	u.SetExcluded(projectidea.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ProjectIdea.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(projectidea.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProjectIdeaUpsertOne) UpdateNewValues() *ProjectIdeaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(projectidea.FieldID)
		}
		if _, exists := u.create.mutation.StackID(); exists {
			s.SetIgnore(projectidea.FieldStackID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(projectidea.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProjectIdea.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProjectIdeaUpsertOne) Ignore() *ProjectIdeaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProjectIdeaUpsertOne) DoNothing() *ProjectIdeaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProjectIdeaCreate.OnConflict
// documentation for more info.
func (u *ProjectIdeaUpsertOne) Update(set func(*ProjectIdeaUpsert)) *ProjectIdeaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProjectIdeaUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ProjectIdeaUpsertOne) SetTitle(v string) *ProjectIdeaUpsertOne {
	return u.Update(func(s *ProjectIdeaUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ProjectIdeaUpsertOne) UpdateTitle() *ProjectIdeaUpsertOne {
	return u.Update(func(s *ProjectIdeaUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ProjectIdeaUpsertOne) SetDescription(v string) *ProjectIdeaUpsertOne {
	return u.Update(func(s *ProjectIdeaUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ProjectIdeaUpsertOne) UpdateDescription() *ProjectIdeaUpsertOne {
	return u.Update(func(s *ProjectIdeaUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ProjectIdeaUpsertOne) ClearDescription() *ProjectIdeaUpsertOne {
	return u.Update(func(s *ProjectIdeaUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *ProjectIdeaUpsertOne) SetStatus(v string) *ProjectIdeaUpsertOne {
	return u.Update(func(s *ProjectIdeaUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProjectIdeaUpsertOne) UpdateStatus() *ProjectIdeaUpsertOne {
	return u.Update(func(s *ProjectIdeaUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectIdeaUpsertOne) SetUpdatedAt(v time.Time) *ProjectIdeaUpsertOne {
	return u.Update(func(s *ProjectIdeaUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectIdeaUpsertOne) UpdateUpdatedAt() *ProjectIdeaUpsertOne {
	return u.Update(func(s *ProjectIdeaUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProjectIdeaUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProjectIdeaCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProjectIdeaUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProjectIdeaUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProjectIdeaUpsertOne.ID is not supported by MySQL driver. Use ProjectIdeaUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProjectIdeaUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProjectIdeaCreateBulk is the builder for creating many ProjectIdea entities in bulk.
type ProjectIdeaCreateBulk struct {
	config
	err      error
	builders []*ProjectIdeaCreate
	conflict []sql.ConflictOption
}

// Save creates the ProjectIdea entities in the database.
func (_c *ProjectIdeaCreateBulk) Save(ctx context.Context) ([]*ProjectIdea, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProjectIdea, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProjectIdeaMutation)
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
func (_c *ProjectIdeaCreateBulk) SaveX(ctx context.Context) []*ProjectIdea {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProjectIdeaCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProjectIdeaCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProjectIdea.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProjectIdeaUpsert) {
//			SetStackID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProjectIdeaCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProjectIdeaUpsertBulk {
	_c.conflict = opts
	return &ProjectIdeaUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProjectIdea.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProjectIdeaCreateBulk) OnConflictColumns(columns ...string) *ProjectIdeaUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProjectIdeaUpsertBulk{
		create: _c,
	}
}

// ProjectIdeaUpsertBulk is the builder for "upsert"-ing
// a bulk of ProjectIdea nodes.
type ProjectIdeaUpsertBulk struct {
	create *ProjectIdeaCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProjectIdea.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(projectidea.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProjectIdeaUpsertBulk) UpdateNewValues() *ProjectIdeaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(projectidea.FieldID)
			}
			if _, exists := b.mutation.StackID(); exists {
				s.SetIgnore(projectidea.FieldStackID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(projectidea.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProjectIdea.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProjectIdeaUpsertBulk) Ignore() *ProjectIdeaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProjectIdeaUpsertBulk) DoNothing() *ProjectIdeaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProjectIdeaCreateBulk.OnConflict
// documentation for more info.
func (u *ProjectIdeaUpsertBulk) Update(set func(*ProjectIdeaUpsert)) *ProjectIdeaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProjectIdeaUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ProjectIdeaUpsertBulk) SetTitle(v string) *ProjectIdeaUpsertBulk {
	return u.Update(func(s *ProjectIdeaUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ProjectIdeaUpsertBulk) UpdateTitle() *ProjectIdeaUpsertBulk {
	return u.Update(func(s *ProjectIdeaUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ProjectIdeaUpsertBulk) SetDescription(v string) *ProjectIdeaUpsertBulk {
	return u.Update(func(s *ProjectIdeaUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ProjectIdeaUpsertBulk) UpdateDescription() *ProjectIdeaUpsertBulk {
	return u.Update(func(s *ProjectIdeaUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ProjectIdeaUpsertBulk) ClearDescription() *ProjectIdeaUpsertBulk {
	return u.Update(func(s *ProjectIdeaUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *ProjectIdeaUpsertBulk) SetStatus(v string) *ProjectIdeaUpsertBulk {
	return u.Update(func(s *ProjectIdeaUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProjectIdeaUpsertBulk) UpdateStatus() *ProjectIdeaUpsertBulk {
	return u.Update(func(s *ProjectIdeaUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProjectIdeaUpsertBulk) SetUpdatedAt(v time.Time) *ProjectIdeaUpsertBulk {
	return u.Update(func(s *ProjectIdeaUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProjectIdeaUpsertBulk) UpdateUpdatedAt() *ProjectIdeaUpsertBulk {
	return u.Update(func(s *ProjectIdeaUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProjectIdeaUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProjectIdeaCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProjectIdeaCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProjectIdeaUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
