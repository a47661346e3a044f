// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hackfleet/hackfleet/ent/agentstate"
	"github.com/hackfleet/hackfleet/ent/agenttrace"
	"github.com/hackfleet/hackfleet/ent/artifact"
	"github.com/hackfleet/hackfleet/ent/executiongraph"
	"github.com/hackfleet/hackfleet/ent/message"
	"github.com/hackfleet/hackfleet/ent/orchestratorexecution"
	"github.com/hackfleet/hackfleet/ent/predicate"
	"github.com/hackfleet/hackfleet/ent/projectidea"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/ent/todo"
	"github.com/hackfleet/hackfleet/ent/usermessage"
	"github.com/hackfleet/hackfleet/ent/workdetectioncache"
	"github.com/hackfleet/hackfleet/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentState            = "AgentState"
	TypeAgentTrace            = "AgentTrace"
	TypeArtifact              = "Artifact"
	TypeExecutionGraph        = "ExecutionGraph"
	TypeMessage               = "Message"
	TypeOrchestratorExecution = "OrchestratorExecution"
	TypeProjectIdea           = "ProjectIdea"
	TypeStack                 = "Stack"
	TypeTodo                  = "Todo"
	TypeUserMessage           = "UserMessage"
	TypeWorkDetectionCache    = "WorkDetectionCache"
)

// AgentStateMutation represents an operation that mutates the AgentState nodes in the graph.
type AgentStateMutation struct {
	config
	op            Op
	typ           string
	id            *string
	agent_type    *agentstate.AgentType
	memory        *models.AgentMemory
	context       *[]models.Thought
	appendcontext []models.Thought
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	stack         *string
	clearedstack  bool
	done          bool
	oldValue      func(context.Context) (*AgentState, error)
	predicates    []predicate.AgentState
}

var _ ent.Mutation = (*AgentStateMutation)(nil)

// agentstateOption allows management of the mutation configuration using functional options.
type agentstateOption func(*AgentStateMutation)

// newAgentStateMutation creates new mutation for the AgentState entity.
func newAgentStateMutation(c config, op Op, opts ...agentstateOption) *AgentStateMutation {
	m := &AgentStateMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentStateID sets the ID field of the mutation.
func withAgentStateID(id string) agentstateOption {
	return func(m *AgentStateMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentState
		)
		m.oldValue = func(ctx context.Context) (*AgentState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentState sets the old AgentState of the mutation.
func withAgentState(node *AgentState) agentstateOption {
	return func(m *AgentStateMutation) {
		m.oldValue = func(context.Context) (*AgentState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentState entities.
func (m *AgentStateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentStateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentStateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStackID sets the "stack_id" field.
func (m *AgentStateMutation) SetStackID(s string) {
	m.stack = &s
}

// StackID returns the value of the "stack_id" field in the mutation.
func (m *AgentStateMutation) StackID() (r string, exists bool) {
	v := m.stack
	if v == nil {
		return
	}
	return *v, true
}

// OldStackID returns the old "stack_id" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldStackID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStackID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStackID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStackID: %w", err)
	}
	return oldValue.StackID, nil
}

// ResetStackID resets all changes to the "stack_id" field.
func (m *AgentStateMutation) ResetStackID() {
	m.stack = nil
}

// SetAgentType sets the "agent_type" field.
func (m *AgentStateMutation) SetAgentType(at agentstate.AgentType) {
	m.agent_type = &at
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *AgentStateMutation) AgentType() (r agentstate.AgentType, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldAgentType(ctx context.Context) (v agentstate.AgentType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *AgentStateMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetMemory sets the "memory" field.
func (m *AgentStateMutation) SetMemory(mm models.AgentMemory) {
	m.memory = &mm
}

// Memory returns the value of the "memory" field in the mutation.
func (m *AgentStateMutation) Memory() (r models.AgentMemory, exists bool) {
	v := m.memory
	if v == nil {
		return
	}
	return *v, true
}

// OldMemory returns the old "memory" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldMemory(ctx context.Context) (v models.AgentMemory, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemory: %w", err)
	}
	return oldValue.Memory, nil
}

// ResetMemory resets all changes to the "memory" field.
func (m *AgentStateMutation) ResetMemory() {
	m.memory = nil
}

// SetContext sets the "context" field.
func (m *AgentStateMutation) SetContext(value []models.Thought) {
	m.context = &value
	m.appendcontext = nil
}

// Context returns the value of the "context" field in the mutation.
func (m *AgentStateMutation) Context() (r []models.Thought, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldContext(ctx context.Context) (v []models.Thought, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// AppendContext adds value to the "context" field.
func (m *AgentStateMutation) AppendContext(value []models.Thought) {
	m.appendcontext = append(m.appendcontext, value...)
}

// AppendedContext returns the list of values that were appended to the "context" field in this mutation.
func (m *AgentStateMutation) AppendedContext() ([]models.Thought, bool) {
	if len(m.appendcontext) == 0 {
		return nil, false
	}
	return m.appendcontext, true
}

// ClearContext clears the value of the "context" field.
func (m *AgentStateMutation) ClearContext() {
	m.context = nil
	m.appendcontext = nil
	m.clearedFields[agentstate.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *AgentStateMutation) ContextCleared() bool {
	_, ok := m.clearedFields[agentstate.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *AgentStateMutation) ResetContext() {
	m.context = nil
	m.appendcontext = nil
	delete(m.clearedFields, agentstate.FieldContext)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentStateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentStateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentStateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentState entity.
// If the AgentState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearStack clears the "stack" edge to the Stack entity.
func (m *AgentStateMutation) ClearStack() {
	m.clearedstack = true
	m.clearedFields[agentstate.FieldStackID] = struct{}{}
}

// StackCleared reports if the "stack" edge to the Stack entity was cleared.
func (m *AgentStateMutation) StackCleared() bool {
	return m.clearedstack
}

// StackIDs returns the "stack" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StackID instead. It exists only for internal usage by the builders.
func (m *AgentStateMutation) StackIDs() (ids []string) {
	if id := m.stack; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStack resets all changes to the "stack" edge.
func (m *AgentStateMutation) ResetStack() {
	m.stack = nil
	m.clearedstack = false
}

// Where appends a list predicates to the AgentStateMutation builder.
func (m *AgentStateMutation) Where(ps ...predicate.AgentState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentState).
func (m *AgentStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentStateMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.stack != nil {
		fields = append(fields, agentstate.FieldStackID)
	}
	if m.agent_type != nil {
		fields = append(fields, agentstate.FieldAgentType)
	}
	if m.memory != nil {
		fields = append(fields, agentstate.FieldMemory)
	}
	if m.context != nil {
		fields = append(fields, agentstate.FieldContext)
	}
	if m.created_at != nil {
		fields = append(fields, agentstate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentstate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentstate.FieldStackID:
		return m.StackID()
	case agentstate.FieldAgentType:
		return m.AgentType()
	case agentstate.FieldMemory:
		return m.Memory()
	case agentstate.FieldContext:
		return m.Context()
	case agentstate.FieldCreatedAt:
		return m.CreatedAt()
	case agentstate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentstate.FieldStackID:
		return m.OldStackID(ctx)
	case agentstate.FieldAgentType:
		return m.OldAgentType(ctx)
	case agentstate.FieldMemory:
		return m.OldMemory(ctx)
	case agentstate.FieldContext:
		return m.OldContext(ctx)
	case agentstate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentstate.FieldStackID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStackID(v)
		return nil
	case agentstate.FieldAgentType:
		v, ok := value.(agentstate.AgentType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case agentstate.FieldMemory:
		v, ok := value.(models.AgentMemory)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemory(v)
		return nil
	case agentstate.FieldContext:
		v, ok := value.([]models.Thought)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case agentstate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentStateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentStateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentstate.FieldContext) {
		fields = append(fields, agentstate.FieldContext)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentStateMutation) ClearField(name string) error {
	switch name {
	case agentstate.FieldContext:
		m.ClearContext()
		return nil
	}
	return fmt.Errorf("unknown AgentState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentStateMutation) ResetField(name string) error {
	switch name {
	case agentstate.FieldStackID:
		m.ResetStackID()
		return nil
	case agentstate.FieldAgentType:
		m.ResetAgentType()
		return nil
	case agentstate.FieldMemory:
		m.ResetMemory()
		return nil
	case agentstate.FieldContext:
		m.ResetContext()
		return nil
	case agentstate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.stack != nil {
		edges = append(edges, agentstate.EdgeStack)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentStateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentstate.EdgeStack:
		if id := m.stack; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstack {
		edges = append(edges, agentstate.EdgeStack)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentStateMutation) EdgeCleared(name string) bool {
	switch name {
	case agentstate.EdgeStack:
		return m.clearedstack
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentStateMutation) ClearEdge(name string) error {
	switch name {
	case agentstate.EdgeStack:
		m.ClearStack()
		return nil
	}
	return fmt.Errorf("unknown AgentState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentStateMutation) ResetEdge(name string) error {
	switch name {
	case agentstate.EdgeStack:
		m.ResetStack()
		return nil
	}
	return fmt.Errorf("unknown AgentState edge %s", name)
}

// AgentTraceMutation represents an operation that mutates the AgentTrace nodes in the graph.
type AgentTraceMutation struct {
	config
	op            Op
	typ           string
	id            *string
	agent_type    *agenttrace.AgentType
	thought       *string
	action        *string
	result        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	stack         *string
	clearedstack  bool
	done          bool
	oldValue      func(context.Context) (*AgentTrace, error)
	predicates    []predicate.AgentTrace
}

var _ ent.Mutation = (*AgentTraceMutation)(nil)

// agenttraceOption allows management of the mutation configuration using functional options.
type agenttraceOption func(*AgentTraceMutation)

// newAgentTraceMutation creates new mutation for the AgentTrace entity.
func newAgentTraceMutation(c config, op Op, opts ...agenttraceOption) *AgentTraceMutation {
	m := &AgentTraceMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentTrace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentTraceID sets the ID field of the mutation.
func withAgentTraceID(id string) agenttraceOption {
	return func(m *AgentTraceMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentTrace
		)
		m.oldValue = func(ctx context.Context) (*AgentTrace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentTrace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentTrace sets the old AgentTrace of the mutation.
func withAgentTrace(node *AgentTrace) agenttraceOption {
	return func(m *AgentTraceMutation) {
		m.oldValue = func(context.Context) (*AgentTrace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentTraceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentTraceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentTrace entities.
func (m *AgentTraceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentTraceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentTraceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentTrace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStackID sets the "stack_id" field.
func (m *AgentTraceMutation) SetStackID(s string) {
	m.stack = &s
}

// StackID returns the value of the "stack_id" field in the mutation.
func (m *AgentTraceMutation) StackID() (r string, exists bool) {
	v := m.stack
	if v == nil {
		return
	}
	return *v, true
}

// OldStackID returns the old "stack_id" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldStackID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStackID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStackID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStackID: %w", err)
	}
	return oldValue.StackID, nil
}

// ResetStackID resets all changes to the "stack_id" field.
func (m *AgentTraceMutation) ResetStackID() {
	m.stack = nil
}

// SetAgentType sets the "agent_type" field.
func (m *AgentTraceMutation) SetAgentType(at agenttrace.AgentType) {
	m.agent_type = &at
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *AgentTraceMutation) AgentType() (r agenttrace.AgentType, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldAgentType(ctx context.Context) (v agenttrace.AgentType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *AgentTraceMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetThought sets the "thought" field.
func (m *AgentTraceMutation) SetThought(s string) {
	m.thought = &s
}

// Thought returns the value of the "thought" field in the mutation.
func (m *AgentTraceMutation) Thought() (r string, exists bool) {
	v := m.thought
	if v == nil {
		return
	}
	return *v, true
}

// OldThought returns the old "thought" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldThought(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThought is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThought requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThought: %w", err)
	}
	return oldValue.Thought, nil
}

// ClearThought clears the value of the "thought" field.
func (m *AgentTraceMutation) ClearThought() {
	m.thought = nil
	m.clearedFields[agenttrace.FieldThought] = struct{}{}
}

// ThoughtCleared returns if the "thought" field was cleared in this mutation.
func (m *AgentTraceMutation) ThoughtCleared() bool {
	_, ok := m.clearedFields[agenttrace.FieldThought]
	return ok
}

// ResetThought resets all changes to the "thought" field.
func (m *AgentTraceMutation) ResetThought() {
	m.thought = nil
	delete(m.clearedFields, agenttrace.FieldThought)
}

// SetAction sets the "action" field.
func (m *AgentTraceMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AgentTraceMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AgentTraceMutation) ResetAction() {
	m.action = nil
}

// SetResult sets the "result" field.
func (m *AgentTraceMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *AgentTraceMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldResult(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *AgentTraceMutation) ClearResult() {
	m.result = nil
	m.clearedFields[agenttrace.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *AgentTraceMutation) ResultCleared() bool {
	_, ok := m.clearedFields[agenttrace.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *AgentTraceMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, agenttrace.FieldResult)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentTraceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentTraceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentTrace entity.
// If the AgentTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTraceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentTraceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearStack clears the "stack" edge to the Stack entity.
func (m *AgentTraceMutation) ClearStack() {
	m.clearedstack = true
	m.clearedFields[agenttrace.FieldStackID] = struct{}{}
}

// StackCleared reports if the "stack" edge to the Stack entity was cleared.
func (m *AgentTraceMutation) StackCleared() bool {
	return m.clearedstack
}

// StackIDs returns the "stack" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StackID instead. It exists only for internal usage by the builders.
func (m *AgentTraceMutation) StackIDs() (ids []string) {
	if id := m.stack; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStack resets all changes to the "stack" edge.
func (m *AgentTraceMutation) ResetStack() {
	m.stack = nil
	m.clearedstack = false
}

// Where appends a list predicates to the AgentTraceMutation builder.
func (m *AgentTraceMutation) Where(ps ...predicate.AgentTrace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentTraceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentTraceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentTrace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentTraceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentTraceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentTrace).
func (m *AgentTraceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentTraceMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.stack != nil {
		fields = append(fields, agenttrace.FieldStackID)
	}
	if m.agent_type != nil {
		fields = append(fields, agenttrace.FieldAgentType)
	}
	if m.thought != nil {
		fields = append(fields, agenttrace.FieldThought)
	}
	if m.action != nil {
		fields = append(fields, agenttrace.FieldAction)
	}
	if m.result != nil {
		fields = append(fields, agenttrace.FieldResult)
	}
	if m.created_at != nil {
		fields = append(fields, agenttrace.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentTraceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agenttrace.FieldStackID:
		return m.StackID()
	case agenttrace.FieldAgentType:
		return m.AgentType()
	case agenttrace.FieldThought:
		return m.Thought()
	case agenttrace.FieldAction:
		return m.Action()
	case agenttrace.FieldResult:
		return m.Result()
	case agenttrace.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentTraceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agenttrace.FieldStackID:
		return m.OldStackID(ctx)
	case agenttrace.FieldAgentType:
		return m.OldAgentType(ctx)
	case agenttrace.FieldThought:
		return m.OldThought(ctx)
	case agenttrace.FieldAction:
		return m.OldAction(ctx)
	case agenttrace.FieldResult:
		return m.OldResult(ctx)
	case agenttrace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentTrace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentTraceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agenttrace.FieldStackID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStackID(v)
		return nil
	case agenttrace.FieldAgentType:
		v, ok := value.(agenttrace.AgentType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case agenttrace.FieldThought:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThought(v)
		return nil
	case agenttrace.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case agenttrace.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case agenttrace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentTrace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentTraceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentTraceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentTraceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentTrace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentTraceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agenttrace.FieldThought) {
		fields = append(fields, agenttrace.FieldThought)
	}
	if m.FieldCleared(agenttrace.FieldResult) {
		fields = append(fields, agenttrace.FieldResult)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentTraceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentTraceMutation) ClearField(name string) error {
	switch name {
	case agenttrace.FieldThought:
		m.ClearThought()
		return nil
	case agenttrace.FieldResult:
		m.ClearResult()
		return nil
	}
	return fmt.Errorf("unknown AgentTrace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentTraceMutation) ResetField(name string) error {
	switch name {
	case agenttrace.FieldStackID:
		m.ResetStackID()
		return nil
	case agenttrace.FieldAgentType:
		m.ResetAgentType()
		return nil
	case agenttrace.FieldThought:
		m.ResetThought()
		return nil
	case agenttrace.FieldAction:
		m.ResetAction()
		return nil
	case agenttrace.FieldResult:
		m.ResetResult()
		return nil
	case agenttrace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentTrace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentTraceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.stack != nil {
		edges = append(edges, agenttrace.EdgeStack)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentTraceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agenttrace.EdgeStack:
		if id := m.stack; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentTraceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentTraceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentTraceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstack {
		edges = append(edges, agenttrace.EdgeStack)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentTraceMutation) EdgeCleared(name string) bool {
	switch name {
	case agenttrace.EdgeStack:
		return m.clearedstack
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentTraceMutation) ClearEdge(name string) error {
	switch name {
	case agenttrace.EdgeStack:
		m.ClearStack()
		return nil
	}
	return fmt.Errorf("unknown AgentTrace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentTraceMutation) ResetEdge(name string) error {
	switch name {
	case agenttrace.EdgeStack:
		m.ResetStack()
		return nil
	}
	return fmt.Errorf("unknown AgentTrace edge %s", name)
}

// ArtifactMutation represents an operation that mutates the Artifact nodes in the graph.
type ArtifactMutation struct {
	config
	op            Op
	typ           string
	id            *string
	version       *int
	addversion    *int
	_type         *string
	content       *string
	created_by    *string
	metadata      *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	stack         *string
	clearedstack  bool
	done          bool
	oldValue      func(context.Context) (*Artifact, error)
	predicates    []predicate.Artifact
}

var _ ent.Mutation = (*ArtifactMutation)(nil)

// artifactOption allows management of the mutation configuration using functional options.
type artifactOption func(*ArtifactMutation)

// newArtifactMutation creates new mutation for the Artifact entity.
func newArtifactMutation(c config, op Op, opts ...artifactOption) *ArtifactMutation {
	m := &ArtifactMutation{
		config:        c,
		op:            op,
		typ:           TypeArtifact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArtifactID sets the ID field of the mutation.
func withArtifactID(id string) artifactOption {
	return func(m *ArtifactMutation) {
		var (
			err   error
			once  sync.Once
			value *Artifact
		)
		m.oldValue = func(ctx context.Context) (*Artifact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Artifact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArtifact sets the old Artifact of the mutation.
func withArtifact(node *Artifact) artifactOption {
	return func(m *ArtifactMutation) {
		m.oldValue = func(context.Context) (*Artifact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArtifactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArtifactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Artifact entities.
func (m *ArtifactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArtifactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArtifactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Artifact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStackID sets the "stack_id" field.
func (m *ArtifactMutation) SetStackID(s string) {
	m.stack = &s
}

// StackID returns the value of the "stack_id" field in the mutation.
func (m *ArtifactMutation) StackID() (r string, exists bool) {
	v := m.stack
	if v == nil {
		return
	}
	return *v, true
}

// OldStackID returns the old "stack_id" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldStackID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStackID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStackID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStackID: %w", err)
	}
	return oldValue.StackID, nil
}

// ResetStackID resets all changes to the "stack_id" field.
func (m *ArtifactMutation) ResetStackID() {
	m.stack = nil
}

// SetVersion sets the "version" field.
func (m *ArtifactMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ArtifactMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ArtifactMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ArtifactMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ArtifactMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetType sets the "type" field.
func (m *ArtifactMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *ArtifactMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ArtifactMutation) ResetType() {
	m._type = nil
}

// SetContent sets the "content" field.
func (m *ArtifactMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ArtifactMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ArtifactMutation) ResetContent() {
	m.content = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *ArtifactMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ArtifactMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ArtifactMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetMetadata sets the "metadata" field.
func (m *ArtifactMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ArtifactMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ArtifactMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[artifact.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ArtifactMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[artifact.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ArtifactMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, artifact.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ArtifactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArtifactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ArtifactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearStack clears the "stack" edge to the Stack entity.
func (m *ArtifactMutation) ClearStack() {
	m.clearedstack = true
	m.clearedFields[artifact.FieldStackID] = struct{}{}
}

// StackCleared reports if the "stack" edge to the Stack entity was cleared.
func (m *ArtifactMutation) StackCleared() bool {
	return m.clearedstack
}

// StackIDs returns the "stack" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StackID instead. It exists only for internal usage by the builders.
func (m *ArtifactMutation) StackIDs() (ids []string) {
	if id := m.stack; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStack resets all changes to the "stack" edge.
func (m *ArtifactMutation) ResetStack() {
	m.stack = nil
	m.clearedstack = false
}

// Where appends a list predicates to the ArtifactMutation builder.
func (m *ArtifactMutation) Where(ps ...predicate.Artifact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArtifactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArtifactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Artifact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArtifactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArtifactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Artifact).
func (m *ArtifactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArtifactMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.stack != nil {
		fields = append(fields, artifact.FieldStackID)
	}
	if m.version != nil {
		fields = append(fields, artifact.FieldVersion)
	}
	if m._type != nil {
		fields = append(fields, artifact.FieldType)
	}
	if m.content != nil {
		fields = append(fields, artifact.FieldContent)
	}
	if m.created_by != nil {
		fields = append(fields, artifact.FieldCreatedBy)
	}
	if m.metadata != nil {
		fields = append(fields, artifact.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, artifact.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArtifactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case artifact.FieldStackID:
		return m.StackID()
	case artifact.FieldVersion:
		return m.Version()
	case artifact.FieldType:
		return m.GetType()
	case artifact.FieldContent:
		return m.Content()
	case artifact.FieldCreatedBy:
		return m.CreatedBy()
	case artifact.FieldMetadata:
		return m.Metadata()
	case artifact.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArtifactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case artifact.FieldStackID:
		return m.OldStackID(ctx)
	case artifact.FieldVersion:
		return m.OldVersion(ctx)
	case artifact.FieldType:
		return m.OldType(ctx)
	case artifact.FieldContent:
		return m.OldContent(ctx)
	case artifact.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case artifact.FieldMetadata:
		return m.OldMetadata(ctx)
	case artifact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Artifact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case artifact.FieldStackID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStackID(v)
		return nil
	case artifact.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case artifact.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case artifact.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case artifact.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case artifact.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case artifact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Artifact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArtifactMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, artifact.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArtifactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case artifact.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactMutation) AddField(name string, value ent.Value) error {
	switch name {
	case artifact.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Artifact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArtifactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(artifact.FieldMetadata) {
		fields = append(fields, artifact.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArtifactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArtifactMutation) ClearField(name string) error {
	switch name {
	case artifact.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Artifact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArtifactMutation) ResetField(name string) error {
	switch name {
	case artifact.FieldStackID:
		m.ResetStackID()
		return nil
	case artifact.FieldVersion:
		m.ResetVersion()
		return nil
	case artifact.FieldType:
		m.ResetType()
		return nil
	case artifact.FieldContent:
		m.ResetContent()
		return nil
	case artifact.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case artifact.FieldMetadata:
		m.ResetMetadata()
		return nil
	case artifact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Artifact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArtifactMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.stack != nil {
		edges = append(edges, artifact.EdgeStack)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArtifactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case artifact.EdgeStack:
		if id := m.stack; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArtifactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArtifactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArtifactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstack {
		edges = append(edges, artifact.EdgeStack)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArtifactMutation) EdgeCleared(name string) bool {
	switch name {
	case artifact.EdgeStack:
		return m.clearedstack
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArtifactMutation) ClearEdge(name string) error {
	switch name {
	case artifact.EdgeStack:
		m.ClearStack()
		return nil
	}
	return fmt.Errorf("unknown Artifact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArtifactMutation) ResetEdge(name string) error {
	switch name {
	case artifact.EdgeStack:
		m.ResetStack()
		return nil
	}
	return fmt.Errorf("unknown Artifact edge %s", name)
}

// ExecutionGraphMutation represents an operation that mutates the ExecutionGraph nodes in the graph.
type ExecutionGraphMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	orchestrator_execution_id *string
	graph                     *models.GraphSnapshot
	created_at                *time.Time
	completed_at              *time.Time
	clearedFields             map[string]struct{}
	stack                     *string
	clearedstack              bool
	done                      bool
	oldValue                  func(context.Context) (*ExecutionGraph, error)
	predicates                []predicate.ExecutionGraph
}

var _ ent.Mutation = (*ExecutionGraphMutation)(nil)

// executiongraphOption allows management of the mutation configuration using functional options.
type executiongraphOption func(*ExecutionGraphMutation)

// newExecutionGraphMutation creates new mutation for the ExecutionGraph entity.
func newExecutionGraphMutation(c config, op Op, opts ...executiongraphOption) *ExecutionGraphMutation {
	m := &ExecutionGraphMutation{
		config:        c,
		op:            op,
		typ:           TypeExecutionGraph,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionGraphID sets the ID field of the mutation.
func withExecutionGraphID(id string) executiongraphOption {
	return func(m *ExecutionGraphMutation) {
		var (
			err   error
			once  sync.Once
			value *ExecutionGraph
		)
		m.oldValue = func(ctx context.Context) (*ExecutionGraph, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExecutionGraph.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecutionGraph sets the old ExecutionGraph of the mutation.
func withExecutionGraph(node *ExecutionGraph) executiongraphOption {
	return func(m *ExecutionGraphMutation) {
		m.oldValue = func(context.Context) (*ExecutionGraph, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionGraphMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionGraphMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExecutionGraph entities.
func (m *ExecutionGraphMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionGraphMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionGraphMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExecutionGraph.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStackID sets the "stack_id" field.
func (m *ExecutionGraphMutation) SetStackID(s string) {
	m.stack = &s
}

// StackID returns the value of the "stack_id" field in the mutation.
func (m *ExecutionGraphMutation) StackID() (r string, exists bool) {
	v := m.stack
	if v == nil {
		return
	}
	return *v, true
}

// OldStackID returns the old "stack_id" field's value of the ExecutionGraph entity.
// If the ExecutionGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionGraphMutation) OldStackID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStackID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStackID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStackID: %w", err)
	}
	return oldValue.StackID, nil
}

// ResetStackID resets all changes to the "stack_id" field.
func (m *ExecutionGraphMutation) ResetStackID() {
	m.stack = nil
}

// SetOrchestratorExecutionID sets the "orchestrator_execution_id" field.
func (m *ExecutionGraphMutation) SetOrchestratorExecutionID(s string) {
	m.orchestrator_execution_id = &s
}

// OrchestratorExecutionID returns the value of the "orchestrator_execution_id" field in the mutation.
func (m *ExecutionGraphMutation) OrchestratorExecutionID() (r string, exists bool) {
	v := m.orchestrator_execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrchestratorExecutionID returns the old "orchestrator_execution_id" field's value of the ExecutionGraph entity.
// If the ExecutionGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionGraphMutation) OldOrchestratorExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrchestratorExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrchestratorExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrchestratorExecutionID: %w", err)
	}
	return oldValue.OrchestratorExecutionID, nil
}

// ResetOrchestratorExecutionID resets all changes to the "orchestrator_execution_id" field.
func (m *ExecutionGraphMutation) ResetOrchestratorExecutionID() {
	m.orchestrator_execution_id = nil
}

// SetGraph sets the "graph" field.
func (m *ExecutionGraphMutation) SetGraph(ms models.GraphSnapshot) {
	m.graph = &ms
}

// Graph returns the value of the "graph" field in the mutation.
func (m *ExecutionGraphMutation) Graph() (r models.GraphSnapshot, exists bool) {
	v := m.graph
	if v == nil {
		return
	}
	return *v, true
}

// OldGraph returns the old "graph" field's value of the ExecutionGraph entity.
// If the ExecutionGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionGraphMutation) OldGraph(ctx context.Context) (v models.GraphSnapshot, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraph is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraph requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraph: %w", err)
	}
	return oldValue.Graph, nil
}

// ResetGraph resets all changes to the "graph" field.
func (m *ExecutionGraphMutation) ResetGraph() {
	m.graph = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExecutionGraphMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExecutionGraphMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExecutionGraph entity.
// If the ExecutionGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionGraphMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExecutionGraphMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ExecutionGraphMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ExecutionGraphMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ExecutionGraph entity.
// If the ExecutionGraph object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionGraphMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ExecutionGraphMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[executiongraph.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ExecutionGraphMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[executiongraph.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ExecutionGraphMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, executiongraph.FieldCompletedAt)
}

// ClearStack clears the "stack" edge to the Stack entity.
func (m *ExecutionGraphMutation) ClearStack() {
	m.clearedstack = true
	m.clearedFields[executiongraph.FieldStackID] = struct{}{}
}

// StackCleared reports if the "stack" edge to the Stack entity was cleared.
func (m *ExecutionGraphMutation) StackCleared() bool {
	return m.clearedstack
}

// StackIDs returns the "stack" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StackID instead. It exists only for internal usage by the builders.
func (m *ExecutionGraphMutation) StackIDs() (ids []string) {
	if id := m.stack; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStack resets all changes to the "stack" edge.
func (m *ExecutionGraphMutation) ResetStack() {
	m.stack = nil
	m.clearedstack = false
}

// Where appends a list predicates to the ExecutionGraphMutation builder.
func (m *ExecutionGraphMutation) Where(ps ...predicate.ExecutionGraph) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionGraphMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionGraphMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExecutionGraph, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionGraphMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionGraphMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExecutionGraph).
func (m *ExecutionGraphMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionGraphMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.stack != nil {
		fields = append(fields, executiongraph.FieldStackID)
	}
	if m.orchestrator_execution_id != nil {
		fields = append(fields, executiongraph.FieldOrchestratorExecutionID)
	}
	if m.graph != nil {
		fields = append(fields, executiongraph.FieldGraph)
	}
	if m.created_at != nil {
		fields = append(fields, executiongraph.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, executiongraph.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionGraphMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case executiongraph.FieldStackID:
		return m.StackID()
	case executiongraph.FieldOrchestratorExecutionID:
		return m.OrchestratorExecutionID()
	case executiongraph.FieldGraph:
		return m.Graph()
	case executiongraph.FieldCreatedAt:
		return m.CreatedAt()
	case executiongraph.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionGraphMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case executiongraph.FieldStackID:
		return m.OldStackID(ctx)
	case executiongraph.FieldOrchestratorExecutionID:
		return m.OldOrchestratorExecutionID(ctx)
	case executiongraph.FieldGraph:
		return m.OldGraph(ctx)
	case executiongraph.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case executiongraph.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExecutionGraph field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionGraphMutation) SetField(name string, value ent.Value) error {
	switch name {
	case executiongraph.FieldStackID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStackID(v)
		return nil
	case executiongraph.FieldOrchestratorExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrchestratorExecutionID(v)
		return nil
	case executiongraph.FieldGraph:
		v, ok := value.(models.GraphSnapshot)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraph(v)
		return nil
	case executiongraph.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case executiongraph.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionGraph field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionGraphMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionGraphMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionGraphMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExecutionGraph numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionGraphMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(executiongraph.FieldCompletedAt) {
		fields = append(fields, executiongraph.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionGraphMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionGraphMutation) ClearField(name string) error {
	switch name {
	case executiongraph.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ExecutionGraph nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionGraphMutation) ResetField(name string) error {
	switch name {
	case executiongraph.FieldStackID:
		m.ResetStackID()
		return nil
	case executiongraph.FieldOrchestratorExecutionID:
		m.ResetOrchestratorExecutionID()
		return nil
	case executiongraph.FieldGraph:
		m.ResetGraph()
		return nil
	case executiongraph.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case executiongraph.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ExecutionGraph field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionGraphMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.stack != nil {
		edges = append(edges, executiongraph.EdgeStack)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionGraphMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case executiongraph.EdgeStack:
		if id := m.stack; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionGraphMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionGraphMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionGraphMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstack {
		edges = append(edges, executiongraph.EdgeStack)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionGraphMutation) EdgeCleared(name string) bool {
	switch name {
	case executiongraph.EdgeStack:
		return m.clearedstack
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionGraphMutation) ClearEdge(name string) error {
	switch name {
	case executiongraph.EdgeStack:
		m.ClearStack()
		return nil
	}
	return fmt.Errorf("unknown ExecutionGraph unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionGraphMutation) ResetEdge(name string) error {
	switch name {
	case executiongraph.EdgeStack:
		m.ResetStack()
		return nil
	}
	return fmt.Errorf("unknown ExecutionGraph edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op            Op
	typ           string
	id            *string
	from_stack_id *string
	to_stack_id   *string
	message_type  *message.MessageType
	content       *string
	read_by       *[]string
	appendread_by []string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Message, error)
	predicates    []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFromStackID sets the "from_stack_id" field.
func (m *MessageMutation) SetFromStackID(s string) {
	m.from_stack_id = &s
}

// FromStackID returns the value of the "from_stack_id" field in the mutation.
func (m *MessageMutation) FromStackID() (r string, exists bool) {
	v := m.from_stack_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFromStackID returns the old "from_stack_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldFromStackID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromStackID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromStackID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromStackID: %w", err)
	}
	return oldValue.FromStackID, nil
}

// ClearFromStackID clears the value of the "from_stack_id" field.
func (m *MessageMutation) ClearFromStackID() {
	m.from_stack_id = nil
	m.clearedFields[message.FieldFromStackID] = struct{}{}
}

// FromStackIDCleared returns if the "from_stack_id" field was cleared in this mutation.
func (m *MessageMutation) FromStackIDCleared() bool {
	_, ok := m.clearedFields[message.FieldFromStackID]
	return ok
}

// ResetFromStackID resets all changes to the "from_stack_id" field.
func (m *MessageMutation) ResetFromStackID() {
	m.from_stack_id = nil
	delete(m.clearedFields, message.FieldFromStackID)
}

// SetToStackID sets the "to_stack_id" field.
func (m *MessageMutation) SetToStackID(s string) {
	m.to_stack_id = &s
}

// ToStackID returns the value of the "to_stack_id" field in the mutation.
func (m *MessageMutation) ToStackID() (r string, exists bool) {
	v := m.to_stack_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToStackID returns the old "to_stack_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldToStackID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToStackID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToStackID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToStackID: %w", err)
	}
	return oldValue.ToStackID, nil
}

// ClearToStackID clears the value of the "to_stack_id" field.
func (m *MessageMutation) ClearToStackID() {
	m.to_stack_id = nil
	m.clearedFields[message.FieldToStackID] = struct{}{}
}

// ToStackIDCleared returns if the "to_stack_id" field was cleared in this mutation.
func (m *MessageMutation) ToStackIDCleared() bool {
	_, ok := m.clearedFields[message.FieldToStackID]
	return ok
}

// ResetToStackID resets all changes to the "to_stack_id" field.
func (m *MessageMutation) ResetToStackID() {
	m.to_stack_id = nil
	delete(m.clearedFields, message.FieldToStackID)
}

// SetMessageType sets the "message_type" field.
func (m *MessageMutation) SetMessageType(mt message.MessageType) {
	m.message_type = &mt
}

// MessageType returns the value of the "message_type" field in the mutation.
func (m *MessageMutation) MessageType() (r message.MessageType, exists bool) {
	v := m.message_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageType returns the old "message_type" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldMessageType(ctx context.Context) (v message.MessageType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageType: %w", err)
	}
	return oldValue.MessageType, nil
}

// ResetMessageType resets all changes to the "message_type" field.
func (m *MessageMutation) ResetMessageType() {
	m.message_type = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetReadBy sets the "read_by" field.
func (m *MessageMutation) SetReadBy(s []string) {
	m.read_by = &s
	m.appendread_by = nil
}

// ReadBy returns the value of the "read_by" field in the mutation.
func (m *MessageMutation) ReadBy() (r []string, exists bool) {
	v := m.read_by
	if v == nil {
		return
	}
	return *v, true
}

// OldReadBy returns the old "read_by" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldReadBy(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadBy: %w", err)
	}
	return oldValue.ReadBy, nil
}

// AppendReadBy adds s to the "read_by" field.
func (m *MessageMutation) AppendReadBy(s []string) {
	m.appendread_by = append(m.appendread_by, s...)
}

// AppendedReadBy returns the list of values that were appended to the "read_by" field in this mutation.
func (m *MessageMutation) AppendedReadBy() ([]string, bool) {
	if len(m.appendread_by) == 0 {
		return nil, false
	}
	return m.appendread_by, true
}

// ClearReadBy clears the value of the "read_by" field.
func (m *MessageMutation) ClearReadBy() {
	m.read_by = nil
	m.appendread_by = nil
	m.clearedFields[message.FieldReadBy] = struct{}{}
}

// ReadByCleared returns if the "read_by" field was cleared in this mutation.
func (m *MessageMutation) ReadByCleared() bool {
	_, ok := m.clearedFields[message.FieldReadBy]
	return ok
}

// ResetReadBy resets all changes to the "read_by" field.
func (m *MessageMutation) ResetReadBy() {
	m.read_by = nil
	m.appendread_by = nil
	delete(m.clearedFields, message.FieldReadBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.from_stack_id != nil {
		fields = append(fields, message.FieldFromStackID)
	}
	if m.to_stack_id != nil {
		fields = append(fields, message.FieldToStackID)
	}
	if m.message_type != nil {
		fields = append(fields, message.FieldMessageType)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.read_by != nil {
		fields = append(fields, message.FieldReadBy)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldFromStackID:
		return m.FromStackID()
	case message.FieldToStackID:
		return m.ToStackID()
	case message.FieldMessageType:
		return m.MessageType()
	case message.FieldContent:
		return m.Content()
	case message.FieldReadBy:
		return m.ReadBy()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldFromStackID:
		return m.OldFromStackID(ctx)
	case message.FieldToStackID:
		return m.OldToStackID(ctx)
	case message.FieldMessageType:
		return m.OldMessageType(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldReadBy:
		return m.OldReadBy(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldFromStackID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromStackID(v)
		return nil
	case message.FieldToStackID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToStackID(v)
		return nil
	case message.FieldMessageType:
		v, ok := value.(message.MessageType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageType(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldReadBy:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadBy(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldFromStackID) {
		fields = append(fields, message.FieldFromStackID)
	}
	if m.FieldCleared(message.FieldToStackID) {
		fields = append(fields, message.FieldToStackID)
	}
	if m.FieldCleared(message.FieldReadBy) {
		fields = append(fields, message.FieldReadBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldFromStackID:
		m.ClearFromStackID()
		return nil
	case message.FieldToStackID:
		m.ClearToStackID()
		return nil
	case message.FieldReadBy:
		m.ClearReadBy()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldFromStackID:
		m.ResetFromStackID()
		return nil
	case message.FieldToStackID:
		m.ResetToStackID()
		return nil
	case message.FieldMessageType:
		m.ResetMessageType()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldReadBy:
		m.ResetReadBy()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Message edge %s", name)
}

// OrchestratorExecutionMutation represents an operation that mutates the OrchestratorExecution nodes in the graph.
type OrchestratorExecutionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	status               *orchestratorexecution.Status
	started_at           *time.Time
	completed_at         *time.Time
	decision             *string
	pause_duration_ms    *int64
	addpause_duration_ms *int64
	graph_summary        *string
	error_message        *string
	clearedFields        map[string]struct{}
	stack                *string
	clearedstack         bool
	done                 bool
	oldValue             func(context.Context) (*OrchestratorExecution, error)
	predicates           []predicate.OrchestratorExecution
}

var _ ent.Mutation = (*OrchestratorExecutionMutation)(nil)

// orchestratorexecutionOption allows management of the mutation configuration using functional options.
type orchestratorexecutionOption func(*OrchestratorExecutionMutation)

// newOrchestratorExecutionMutation creates new mutation for the OrchestratorExecution entity.
func newOrchestratorExecutionMutation(c config, op Op, opts ...orchestratorexecutionOption) *OrchestratorExecutionMutation {
	m := &OrchestratorExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeOrchestratorExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrchestratorExecutionID sets the ID field of the mutation.
func withOrchestratorExecutionID(id string) orchestratorexecutionOption {
	return func(m *OrchestratorExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *OrchestratorExecution
		)
		m.oldValue = func(ctx context.Context) (*OrchestratorExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrchestratorExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrchestratorExecution sets the old OrchestratorExecution of the mutation.
func withOrchestratorExecution(node *OrchestratorExecution) orchestratorexecutionOption {
	return func(m *OrchestratorExecutionMutation) {
		m.oldValue = func(context.Context) (*OrchestratorExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrchestratorExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrchestratorExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OrchestratorExecution entities.
func (m *OrchestratorExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrchestratorExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrchestratorExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrchestratorExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStackID sets the "stack_id" field.
func (m *OrchestratorExecutionMutation) SetStackID(s string) {
	m.stack = &s
}

// StackID returns the value of the "stack_id" field in the mutation.
func (m *OrchestratorExecutionMutation) StackID() (r string, exists bool) {
	v := m.stack
	if v == nil {
		return
	}
	return *v, true
}

// OldStackID returns the old "stack_id" field's value of the OrchestratorExecution entity.
// If the OrchestratorExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorExecutionMutation) OldStackID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStackID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStackID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStackID: %w", err)
	}
	return oldValue.StackID, nil
}

// ResetStackID resets all changes to the "stack_id" field.
func (m *OrchestratorExecutionMutation) ResetStackID() {
	m.stack = nil
}

// SetStatus sets the "status" field.
func (m *OrchestratorExecutionMutation) SetStatus(o orchestratorexecution.Status) {
	m.status = &o
}

// Status returns the value of the "status" field in the mutation.
func (m *OrchestratorExecutionMutation) Status() (r orchestratorexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the OrchestratorExecution entity.
// If the OrchestratorExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorExecutionMutation) OldStatus(ctx context.Context) (v orchestratorexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *OrchestratorExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *OrchestratorExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *OrchestratorExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the OrchestratorExecution entity.
// If the OrchestratorExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorExecutionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *OrchestratorExecutionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *OrchestratorExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *OrchestratorExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the OrchestratorExecution entity.
// If the OrchestratorExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *OrchestratorExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[orchestratorexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *OrchestratorExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[orchestratorexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *OrchestratorExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, orchestratorexecution.FieldCompletedAt)
}

// SetDecision sets the "decision" field.
func (m *OrchestratorExecutionMutation) SetDecision(s string) {
	m.decision = &s
}

// Decision returns the value of the "decision" field in the mutation.
func (m *OrchestratorExecutionMutation) Decision() (r string, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecision returns the old "decision" field's value of the OrchestratorExecution entity.
// If the OrchestratorExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorExecutionMutation) OldDecision(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecision: %w", err)
	}
	return oldValue.Decision, nil
}

// ClearDecision clears the value of the "decision" field.
func (m *OrchestratorExecutionMutation) ClearDecision() {
	m.decision = nil
	m.clearedFields[orchestratorexecution.FieldDecision] = struct{}{}
}

// DecisionCleared returns if the "decision" field was cleared in this mutation.
func (m *OrchestratorExecutionMutation) DecisionCleared() bool {
	_, ok := m.clearedFields[orchestratorexecution.FieldDecision]
	return ok
}

// ResetDecision resets all changes to the "decision" field.
func (m *OrchestratorExecutionMutation) ResetDecision() {
	m.decision = nil
	delete(m.clearedFields, orchestratorexecution.FieldDecision)
}

// SetPauseDurationMs sets the "pause_duration_ms" field.
func (m *OrchestratorExecutionMutation) SetPauseDurationMs(i int64) {
	m.pause_duration_ms = &i
	m.addpause_duration_ms = nil
}

// PauseDurationMs returns the value of the "pause_duration_ms" field in the mutation.
func (m *OrchestratorExecutionMutation) PauseDurationMs() (r int64, exists bool) {
	v := m.pause_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldPauseDurationMs returns the old "pause_duration_ms" field's value of the OrchestratorExecution entity.
// If the OrchestratorExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorExecutionMutation) OldPauseDurationMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPauseDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPauseDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPauseDurationMs: %w", err)
	}
	return oldValue.PauseDurationMs, nil
}

// AddPauseDurationMs adds i to the "pause_duration_ms" field.
func (m *OrchestratorExecutionMutation) AddPauseDurationMs(i int64) {
	if m.addpause_duration_ms != nil {
		*m.addpause_duration_ms += i
	} else {
		m.addpause_duration_ms = &i
	}
}

// AddedPauseDurationMs returns the value that was added to the "pause_duration_ms" field in this mutation.
func (m *OrchestratorExecutionMutation) AddedPauseDurationMs() (r int64, exists bool) {
	v := m.addpause_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearPauseDurationMs clears the value of the "pause_duration_ms" field.
func (m *OrchestratorExecutionMutation) ClearPauseDurationMs() {
	m.pause_duration_ms = nil
	m.addpause_duration_ms = nil
	m.clearedFields[orchestratorexecution.FieldPauseDurationMs] = struct{}{}
}

// PauseDurationMsCleared returns if the "pause_duration_ms" field was cleared in this mutation.
func (m *OrchestratorExecutionMutation) PauseDurationMsCleared() bool {
	_, ok := m.clearedFields[orchestratorexecution.FieldPauseDurationMs]
	return ok
}

// ResetPauseDurationMs resets all changes to the "pause_duration_ms" field.
func (m *OrchestratorExecutionMutation) ResetPauseDurationMs() {
	m.pause_duration_ms = nil
	m.addpause_duration_ms = nil
	delete(m.clearedFields, orchestratorexecution.FieldPauseDurationMs)
}

// SetGraphSummary sets the "graph_summary" field.
func (m *OrchestratorExecutionMutation) SetGraphSummary(s string) {
	m.graph_summary = &s
}

// GraphSummary returns the value of the "graph_summary" field in the mutation.
func (m *OrchestratorExecutionMutation) GraphSummary() (r string, exists bool) {
	v := m.graph_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldGraphSummary returns the old "graph_summary" field's value of the OrchestratorExecution entity.
// If the OrchestratorExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorExecutionMutation) OldGraphSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraphSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraphSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraphSummary: %w", err)
	}
	return oldValue.GraphSummary, nil
}

// ClearGraphSummary clears the value of the "graph_summary" field.
func (m *OrchestratorExecutionMutation) ClearGraphSummary() {
	m.graph_summary = nil
	m.clearedFields[orchestratorexecution.FieldGraphSummary] = struct{}{}
}

// GraphSummaryCleared returns if the "graph_summary" field was cleared in this mutation.
func (m *OrchestratorExecutionMutation) GraphSummaryCleared() bool {
	_, ok := m.clearedFields[orchestratorexecution.FieldGraphSummary]
	return ok
}

// ResetGraphSummary resets all changes to the "graph_summary" field.
func (m *OrchestratorExecutionMutation) ResetGraphSummary() {
	m.graph_summary = nil
	delete(m.clearedFields, orchestratorexecution.FieldGraphSummary)
}

// SetErrorMessage sets the "error_message" field.
func (m *OrchestratorExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *OrchestratorExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the OrchestratorExecution entity.
// If the OrchestratorExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *OrchestratorExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[orchestratorexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *OrchestratorExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[orchestratorexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *OrchestratorExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, orchestratorexecution.FieldErrorMessage)
}

// ClearStack clears the "stack" edge to the Stack entity.
func (m *OrchestratorExecutionMutation) ClearStack() {
	m.clearedstack = true
	m.clearedFields[orchestratorexecution.FieldStackID] = struct{}{}
}

// StackCleared reports if the "stack" edge to the Stack entity was cleared.
func (m *OrchestratorExecutionMutation) StackCleared() bool {
	return m.clearedstack
}

// StackIDs returns the "stack" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StackID instead. It exists only for internal usage by the builders.
func (m *OrchestratorExecutionMutation) StackIDs() (ids []string) {
	if id := m.stack; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStack resets all changes to the "stack" edge.
func (m *OrchestratorExecutionMutation) ResetStack() {
	m.stack = nil
	m.clearedstack = false
}

// Where appends a list predicates to the OrchestratorExecutionMutation builder.
func (m *OrchestratorExecutionMutation) Where(ps ...predicate.OrchestratorExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrchestratorExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrchestratorExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrchestratorExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrchestratorExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrchestratorExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrchestratorExecution).
func (m *OrchestratorExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrchestratorExecutionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.stack != nil {
		fields = append(fields, orchestratorexecution.FieldStackID)
	}
	if m.status != nil {
		fields = append(fields, orchestratorexecution.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, orchestratorexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, orchestratorexecution.FieldCompletedAt)
	}
	if m.decision != nil {
		fields = append(fields, orchestratorexecution.FieldDecision)
	}
	if m.pause_duration_ms != nil {
		fields = append(fields, orchestratorexecution.FieldPauseDurationMs)
	}
	if m.graph_summary != nil {
		fields = append(fields, orchestratorexecution.FieldGraphSummary)
	}
	if m.error_message != nil {
		fields = append(fields, orchestratorexecution.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrchestratorExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orchestratorexecution.FieldStackID:
		return m.StackID()
	case orchestratorexecution.FieldStatus:
		return m.Status()
	case orchestratorexecution.FieldStartedAt:
		return m.StartedAt()
	case orchestratorexecution.FieldCompletedAt:
		return m.CompletedAt()
	case orchestratorexecution.FieldDecision:
		return m.Decision()
	case orchestratorexecution.FieldPauseDurationMs:
		return m.PauseDurationMs()
	case orchestratorexecution.FieldGraphSummary:
		return m.GraphSummary()
	case orchestratorexecution.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrchestratorExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orchestratorexecution.FieldStackID:
		return m.OldStackID(ctx)
	case orchestratorexecution.FieldStatus:
		return m.OldStatus(ctx)
	case orchestratorexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case orchestratorexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case orchestratorexecution.FieldDecision:
		return m.OldDecision(ctx)
	case orchestratorexecution.FieldPauseDurationMs:
		return m.OldPauseDurationMs(ctx)
	case orchestratorexecution.FieldGraphSummary:
		return m.OldGraphSummary(ctx)
	case orchestratorexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown OrchestratorExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrchestratorExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orchestratorexecution.FieldStackID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStackID(v)
		return nil
	case orchestratorexecution.FieldStatus:
		v, ok := value.(orchestratorexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case orchestratorexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case orchestratorexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case orchestratorexecution.FieldDecision:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecision(v)
		return nil
	case orchestratorexecution.FieldPauseDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPauseDurationMs(v)
		return nil
	case orchestratorexecution.FieldGraphSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraphSummary(v)
		return nil
	case orchestratorexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown OrchestratorExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrchestratorExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addpause_duration_ms != nil {
		fields = append(fields, orchestratorexecution.FieldPauseDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrchestratorExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case orchestratorexecution.FieldPauseDurationMs:
		return m.AddedPauseDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrchestratorExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case orchestratorexecution.FieldPauseDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPauseDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown OrchestratorExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrchestratorExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(orchestratorexecution.FieldCompletedAt) {
		fields = append(fields, orchestratorexecution.FieldCompletedAt)
	}
	if m.FieldCleared(orchestratorexecution.FieldDecision) {
		fields = append(fields, orchestratorexecution.FieldDecision)
	}
	if m.FieldCleared(orchestratorexecution.FieldPauseDurationMs) {
		fields = append(fields, orchestratorexecution.FieldPauseDurationMs)
	}
	if m.FieldCleared(orchestratorexecution.FieldGraphSummary) {
		fields = append(fields, orchestratorexecution.FieldGraphSummary)
	}
	if m.FieldCleared(orchestratorexecution.FieldErrorMessage) {
		fields = append(fields, orchestratorexecution.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrchestratorExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrchestratorExecutionMutation) ClearField(name string) error {
	switch name {
	case orchestratorexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case orchestratorexecution.FieldDecision:
		m.ClearDecision()
		return nil
	case orchestratorexecution.FieldPauseDurationMs:
		m.ClearPauseDurationMs()
		return nil
	case orchestratorexecution.FieldGraphSummary:
		m.ClearGraphSummary()
		return nil
	case orchestratorexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown OrchestratorExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrchestratorExecutionMutation) ResetField(name string) error {
	switch name {
	case orchestratorexecution.FieldStackID:
		m.ResetStackID()
		return nil
	case orchestratorexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case orchestratorexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case orchestratorexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case orchestratorexecution.FieldDecision:
		m.ResetDecision()
		return nil
	case orchestratorexecution.FieldPauseDurationMs:
		m.ResetPauseDurationMs()
		return nil
	case orchestratorexecution.FieldGraphSummary:
		m.ResetGraphSummary()
		return nil
	case orchestratorexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown OrchestratorExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrchestratorExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.stack != nil {
		edges = append(edges, orchestratorexecution.EdgeStack)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrchestratorExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case orchestratorexecution.EdgeStack:
		if id := m.stack; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrchestratorExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrchestratorExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrchestratorExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstack {
		edges = append(edges, orchestratorexecution.EdgeStack)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrchestratorExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case orchestratorexecution.EdgeStack:
		return m.clearedstack
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrchestratorExecutionMutation) ClearEdge(name string) error {
	switch name {
	case orchestratorexecution.EdgeStack:
		m.ClearStack()
		return nil
	}
	return fmt.Errorf("unknown OrchestratorExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrchestratorExecutionMutation) ResetEdge(name string) error {
	switch name {
	case orchestratorexecution.EdgeStack:
		m.ResetStack()
		return nil
	}
	return fmt.Errorf("unknown OrchestratorExecution edge %s", name)
}

// ProjectIdeaMutation represents an operation that mutates the ProjectIdea nodes in the graph.
type ProjectIdeaMutation struct {
	config
	op            Op
	typ           string
	id            *string
	title         *string
	description   *string
	status        *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	stack         *string
	clearedstack  bool
	done          bool
	oldValue      func(context.Context) (*ProjectIdea, error)
	predicates    []predicate.ProjectIdea
}

var _ ent.Mutation = (*ProjectIdeaMutation)(nil)

// projectideaOption allows management of the mutation configuration using functional options.
type projectideaOption func(*ProjectIdeaMutation)

// newProjectIdeaMutation creates new mutation for the ProjectIdea entity.
func newProjectIdeaMutation(c config, op Op, opts ...projectideaOption) *ProjectIdeaMutation {
	m := &ProjectIdeaMutation{
		config:        c,
		op:            op,
		typ:           TypeProjectIdea,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectIdeaID sets the ID field of the mutation.
func withProjectIdeaID(id string) projectideaOption {
	return func(m *ProjectIdeaMutation) {
		var (
			err   error
			once  sync.Once
			value *ProjectIdea
		)
		m.oldValue = func(ctx context.Context) (*ProjectIdea, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProjectIdea.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProjectIdea sets the old ProjectIdea of the mutation.
func withProjectIdea(node *ProjectIdea) projectideaOption {
	return func(m *ProjectIdeaMutation) {
		m.oldValue = func(context.Context) (*ProjectIdea, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectIdeaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectIdeaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProjectIdea entities.
func (m *ProjectIdeaMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectIdeaMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectIdeaMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProjectIdea.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStackID sets the "stack_id" field.
func (m *ProjectIdeaMutation) SetStackID(s string) {
	m.stack = &s
}

// StackID returns the value of the "stack_id" field in the mutation.
func (m *ProjectIdeaMutation) StackID() (r string, exists bool) {
	v := m.stack
	if v == nil {
		return
	}
	return *v, true
}

// OldStackID returns the old "stack_id" field's value of the ProjectIdea entity.
// If the ProjectIdea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectIdeaMutation) OldStackID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStackID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStackID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStackID: %w", err)
	}
	return oldValue.StackID, nil
}

// ResetStackID resets all changes to the "stack_id" field.
func (m *ProjectIdeaMutation) ResetStackID() {
	m.stack = nil
}

// SetTitle sets the "title" field.
func (m *ProjectIdeaMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ProjectIdeaMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ProjectIdea entity.
// If the ProjectIdea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectIdeaMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ProjectIdeaMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ProjectIdeaMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProjectIdeaMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ProjectIdea entity.
// If the ProjectIdea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectIdeaMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ProjectIdeaMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[projectidea.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ProjectIdeaMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[projectidea.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ProjectIdeaMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, projectidea.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *ProjectIdeaMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ProjectIdeaMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProjectIdea entity.
// If the ProjectIdea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectIdeaMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProjectIdeaMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectIdeaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectIdeaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProjectIdea entity.
// If the ProjectIdea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectIdeaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectIdeaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectIdeaMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectIdeaMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProjectIdea entity.
// If the ProjectIdea object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectIdeaMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectIdeaMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearStack clears the "stack" edge to the Stack entity.
func (m *ProjectIdeaMutation) ClearStack() {
	m.clearedstack = true
	m.clearedFields[projectidea.FieldStackID] = struct{}{}
}

// StackCleared reports if the "stack" edge to the Stack entity was cleared.
func (m *ProjectIdeaMutation) StackCleared() bool {
	return m.clearedstack
}

// StackIDs returns the "stack" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StackID instead. It exists only for internal usage by the builders.
func (m *ProjectIdeaMutation) StackIDs() (ids []string) {
	if id := m.stack; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStack resets all changes to the "stack" edge.
func (m *ProjectIdeaMutation) ResetStack() {
	m.stack = nil
	m.clearedstack = false
}

// Where appends a list predicates to the ProjectIdeaMutation builder.
func (m *ProjectIdeaMutation) Where(ps ...predicate.ProjectIdea) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectIdeaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectIdeaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProjectIdea, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectIdeaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectIdeaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProjectIdea).
func (m *ProjectIdeaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectIdeaMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.stack != nil {
		fields = append(fields, projectidea.FieldStackID)
	}
	if m.title != nil {
		fields = append(fields, projectidea.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, projectidea.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, projectidea.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, projectidea.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, projectidea.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectIdeaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case projectidea.FieldStackID:
		return m.StackID()
	case projectidea.FieldTitle:
		return m.Title()
	case projectidea.FieldDescription:
		return m.Description()
	case projectidea.FieldStatus:
		return m.Status()
	case projectidea.FieldCreatedAt:
		return m.CreatedAt()
	case projectidea.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectIdeaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case projectidea.FieldStackID:
		return m.OldStackID(ctx)
	case projectidea.FieldTitle:
		return m.OldTitle(ctx)
	case projectidea.FieldDescription:
		return m.OldDescription(ctx)
	case projectidea.FieldStatus:
		return m.OldStatus(ctx)
	case projectidea.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case projectidea.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProjectIdea field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectIdeaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case projectidea.FieldStackID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStackID(v)
		return nil
	case projectidea.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case projectidea.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case projectidea.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case projectidea.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case projectidea.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProjectIdea field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectIdeaMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectIdeaMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectIdeaMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProjectIdea numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectIdeaMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(projectidea.FieldDescription) {
		fields = append(fields, projectidea.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectIdeaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectIdeaMutation) ClearField(name string) error {
	switch name {
	case projectidea.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown ProjectIdea nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectIdeaMutation) ResetField(name string) error {
	switch name {
	case projectidea.FieldStackID:
		m.ResetStackID()
		return nil
	case projectidea.FieldTitle:
		m.ResetTitle()
		return nil
	case projectidea.FieldDescription:
		m.ResetDescription()
		return nil
	case projectidea.FieldStatus:
		m.ResetStatus()
		return nil
	case projectidea.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case projectidea.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProjectIdea field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectIdeaMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.stack != nil {
		edges = append(edges, projectidea.EdgeStack)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectIdeaMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case projectidea.EdgeStack:
		if id := m.stack; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectIdeaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectIdeaMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectIdeaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstack {
		edges = append(edges, projectidea.EdgeStack)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectIdeaMutation) EdgeCleared(name string) bool {
	switch name {
	case projectidea.EdgeStack:
		return m.clearedstack
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectIdeaMutation) ClearEdge(name string) error {
	switch name {
	case projectidea.EdgeStack:
		m.ClearStack()
		return nil
	}
	return fmt.Errorf("unknown ProjectIdea unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectIdeaMutation) ResetEdge(name string) error {
	switch name {
	case projectidea.EdgeStack:
		m.ResetStack()
		return nil
	}
	return fmt.Errorf("unknown ProjectIdea edge %s", name)
}

// StackMutation represents an operation that mutates the Stack nodes in the graph.
type StackMutation struct {
	config
	op                             Op
	typ                            string
	id                             *string
	participant_name               *string
	phase                          *stack.Phase
	execution_state                *stack.ExecutionState
	last_activity_at               *time.Time
	total_cycles                   *int
	addtotal_cycles                *int
	created_at                     *time.Time
	clearedFields                  map[string]struct{}
	agent_states                   map[string]struct{}
	removedagent_states            map[string]struct{}
	clearedagent_states            bool
	project_idea                   *string
	clearedproject_idea            bool
	todos                          map[string]struct{}
	removedtodos                   map[string]struct{}
	clearedtodos                   bool
	artifacts                      map[string]struct{}
	removedartifacts               map[string]struct{}
	clearedartifacts               bool
	traces                         map[string]struct{}
	removedtraces                  map[string]struct{}
	clearedtraces                  bool
	user_messages                  map[string]struct{}
	removeduser_messages           map[string]struct{}
	cleareduser_messages           bool
	orchestrator_executions        map[string]struct{}
	removedorchestrator_executions map[string]struct{}
	clearedorchestrator_executions bool
	execution_graphs               map[string]struct{}
	removedexecution_graphs        map[string]struct{}
	clearedexecution_graphs        bool
	work_detection_cache           *string
	clearedwork_detection_cache    bool
	done                           bool
	oldValue                       func(context.Context) (*Stack, error)
	predicates                     []predicate.Stack
}

var _ ent.Mutation = (*StackMutation)(nil)

// stackOption allows management of the mutation configuration using functional options.
type stackOption func(*StackMutation)

// newStackMutation creates new mutation for the Stack entity.
func newStackMutation(c config, op Op, opts ...stackOption) *StackMutation {
	m := &StackMutation{
		config:        c,
		op:            op,
		typ:           TypeStack,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStackID sets the ID field of the mutation.
func withStackID(id string) stackOption {
	return func(m *StackMutation) {
		var (
			err   error
			once  sync.Once
			value *Stack
		)
		m.oldValue = func(ctx context.Context) (*Stack, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Stack.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStack sets the old Stack of the mutation.
func withStack(node *Stack) stackOption {
	return func(m *StackMutation) {
		m.oldValue = func(context.Context) (*Stack, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Stack entities.
func (m *StackMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StackMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StackMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Stack.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetParticipantName sets the "participant_name" field.
func (m *StackMutation) SetParticipantName(s string) {
	m.participant_name = &s
}

// ParticipantName returns the value of the "participant_name" field in the mutation.
func (m *StackMutation) ParticipantName() (r string, exists bool) {
	v := m.participant_name
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantName returns the old "participant_name" field's value of the Stack entity.
// If the Stack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StackMutation) OldParticipantName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantName: %w", err)
	}
	return oldValue.ParticipantName, nil
}

// ResetParticipantName resets all changes to the "participant_name" field.
func (m *StackMutation) ResetParticipantName() {
	m.participant_name = nil
}

// SetPhase sets the "phase" field.
func (m *StackMutation) SetPhase(s stack.Phase) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *StackMutation) Phase() (r stack.Phase, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the Stack entity.
// If the Stack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StackMutation) OldPhase(ctx context.Context) (v stack.Phase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *StackMutation) ResetPhase() {
	m.phase = nil
}

// SetExecutionState sets the "execution_state" field.
func (m *StackMutation) SetExecutionState(ss stack.ExecutionState) {
	m.execution_state = &ss
}

// ExecutionState returns the value of the "execution_state" field in the mutation.
func (m *StackMutation) ExecutionState() (r stack.ExecutionState, exists bool) {
	v := m.execution_state
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionState returns the old "execution_state" field's value of the Stack entity.
// If the Stack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StackMutation) OldExecutionState(ctx context.Context) (v stack.ExecutionState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionState: %w", err)
	}
	return oldValue.ExecutionState, nil
}

// ResetExecutionState resets all changes to the "execution_state" field.
func (m *StackMutation) ResetExecutionState() {
	m.execution_state = nil
}

// SetLastActivityAt sets the "last_activity_at" field.
func (m *StackMutation) SetLastActivityAt(t time.Time) {
	m.last_activity_at = &t
}

// LastActivityAt returns the value of the "last_activity_at" field in the mutation.
func (m *StackMutation) LastActivityAt() (r time.Time, exists bool) {
	v := m.last_activity_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityAt returns the old "last_activity_at" field's value of the Stack entity.
// If the Stack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StackMutation) OldLastActivityAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityAt: %w", err)
	}
	return oldValue.LastActivityAt, nil
}

// ClearLastActivityAt clears the value of the "last_activity_at" field.
func (m *StackMutation) ClearLastActivityAt() {
	m.last_activity_at = nil
	m.clearedFields[stack.FieldLastActivityAt] = struct{}{}
}

// LastActivityAtCleared returns if the "last_activity_at" field was cleared in this mutation.
func (m *StackMutation) LastActivityAtCleared() bool {
	_, ok := m.clearedFields[stack.FieldLastActivityAt]
	return ok
}

// ResetLastActivityAt resets all changes to the "last_activity_at" field.
func (m *StackMutation) ResetLastActivityAt() {
	m.last_activity_at = nil
	delete(m.clearedFields, stack.FieldLastActivityAt)
}

// SetTotalCycles sets the "total_cycles" field.
func (m *StackMutation) SetTotalCycles(i int) {
	m.total_cycles = &i
	m.addtotal_cycles = nil
}

// TotalCycles returns the value of the "total_cycles" field in the mutation.
func (m *StackMutation) TotalCycles() (r int, exists bool) {
	v := m.total_cycles
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCycles returns the old "total_cycles" field's value of the Stack entity.
// If the Stack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StackMutation) OldTotalCycles(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCycles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCycles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCycles: %w", err)
	}
	return oldValue.TotalCycles, nil
}

// AddTotalCycles adds i to the "total_cycles" field.
func (m *StackMutation) AddTotalCycles(i int) {
	if m.addtotal_cycles != nil {
		*m.addtotal_cycles += i
	} else {
		m.addtotal_cycles = &i
	}
}

// AddedTotalCycles returns the value that was added to the "total_cycles" field in this mutation.
func (m *StackMutation) AddedTotalCycles() (r int, exists bool) {
	v := m.addtotal_cycles
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCycles resets all changes to the "total_cycles" field.
func (m *StackMutation) ResetTotalCycles() {
	m.total_cycles = nil
	m.addtotal_cycles = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StackMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StackMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Stack entity.
// If the Stack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StackMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StackMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddAgentStateIDs adds the "agent_states" edge to the AgentState entity by ids.
func (m *StackMutation) AddAgentStateIDs(ids ...string) {
	if m.agent_states == nil {
		m.agent_states = make(map[string]struct{})
	}
	for i := range ids {
		m.agent_states[ids[i]] = struct{}{}
	}
}

// ClearAgentStates clears the "agent_states" edge to the AgentState entity.
func (m *StackMutation) ClearAgentStates() {
	m.clearedagent_states = true
}

// AgentStatesCleared reports if the "agent_states" edge to the AgentState entity was cleared.
func (m *StackMutation) AgentStatesCleared() bool {
	return m.clearedagent_states
}

// RemoveAgentStateIDs removes the "agent_states" edge to the AgentState entity by IDs.
func (m *StackMutation) RemoveAgentStateIDs(ids ...string) {
	if m.removedagent_states == nil {
		m.removedagent_states = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agent_states, ids[i])
		m.removedagent_states[ids[i]] = struct{}{}
	}
}

// RemovedAgentStates returns the removed IDs of the "agent_states" edge to the AgentState entity.
func (m *StackMutation) RemovedAgentStatesIDs() (ids []string) {
	for id := range m.removedagent_states {
		ids = append(ids, id)
	}
	return
}

// AgentStatesIDs returns the "agent_states" edge IDs in the mutation.
func (m *StackMutation) AgentStatesIDs() (ids []string) {
	for id := range m.agent_states {
		ids = append(ids, id)
	}
	return
}

// ResetAgentStates resets all changes to the "agent_states" edge.
func (m *StackMutation) ResetAgentStates() {
	m.agent_states = nil
	m.clearedagent_states = false
	m.removedagent_states = nil
}

// SetProjectIdeaID sets the "project_idea" edge to the ProjectIdea entity by id.
func (m *StackMutation) SetProjectIdeaID(id string) {
	m.project_idea = &id
}

// ClearProjectIdea clears the "project_idea" edge to the ProjectIdea entity.
func (m *StackMutation) ClearProjectIdea() {
	m.clearedproject_idea = true
}

// ProjectIdeaCleared reports if the "project_idea" edge to the ProjectIdea entity was cleared.
func (m *StackMutation) ProjectIdeaCleared() bool {
	return m.clearedproject_idea
}

// ProjectIdeaID returns the "project_idea" edge ID in the mutation.
func (m *StackMutation) ProjectIdeaID() (id string, exists bool) {
	if m.project_idea != nil {
		return *m.project_idea, true
	}
	return
}

// ProjectIdeaIDs returns the "project_idea" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectIdeaID instead. It exists only for internal usage by the builders.
func (m *StackMutation) ProjectIdeaIDs() (ids []string) {
	if id := m.project_idea; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProjectIdea resets all changes to the "project_idea" edge.
func (m *StackMutation) ResetProjectIdea() {
	m.project_idea = nil
	m.clearedproject_idea = false
}

// AddTodoIDs adds the "todos" edge to the Todo entity by ids.
func (m *StackMutation) AddTodoIDs(ids ...string) {
	if m.todos == nil {
		m.todos = make(map[string]struct{})
	}
	for i := range ids {
		m.todos[ids[i]] = struct{}{}
	}
}

// ClearTodos clears the "todos" edge to the Todo entity.
func (m *StackMutation) ClearTodos() {
	m.clearedtodos = true
}

// TodosCleared reports if the "todos" edge to the Todo entity was cleared.
func (m *StackMutation) TodosCleared() bool {
	return m.clearedtodos
}

// RemoveTodoIDs removes the "todos" edge to the Todo entity by IDs.
func (m *StackMutation) RemoveTodoIDs(ids ...string) {
	if m.removedtodos == nil {
		m.removedtodos = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.todos, ids[i])
		m.removedtodos[ids[i]] = struct{}{}
	}
}

// RemovedTodos returns the removed IDs of the "todos" edge to the Todo entity.
func (m *StackMutation) RemovedTodosIDs() (ids []string) {
	for id := range m.removedtodos {
		ids = append(ids, id)
	}
	return
}

// TodosIDs returns the "todos" edge IDs in the mutation.
func (m *StackMutation) TodosIDs() (ids []string) {
	for id := range m.todos {
		ids = append(ids, id)
	}
	return
}

// ResetTodos resets all changes to the "todos" edge.
func (m *StackMutation) ResetTodos() {
	m.todos = nil
	m.clearedtodos = false
	m.removedtodos = nil
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by ids.
func (m *StackMutation) AddArtifactIDs(ids ...string) {
	if m.artifacts == nil {
		m.artifacts = make(map[string]struct{})
	}
	for i := range ids {
		m.artifacts[ids[i]] = struct{}{}
	}
}

// ClearArtifacts clears the "artifacts" edge to the Artifact entity.
func (m *StackMutation) ClearArtifacts() {
	m.clearedartifacts = true
}

// ArtifactsCleared reports if the "artifacts" edge to the Artifact entity was cleared.
func (m *StackMutation) ArtifactsCleared() bool {
	return m.clearedartifacts
}

// RemoveArtifactIDs removes the "artifacts" edge to the Artifact entity by IDs.
func (m *StackMutation) RemoveArtifactIDs(ids ...string) {
	if m.removedartifacts == nil {
		m.removedartifacts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.artifacts, ids[i])
		m.removedartifacts[ids[i]] = struct{}{}
	}
}

// RemovedArtifacts returns the removed IDs of the "artifacts" edge to the Artifact entity.
func (m *StackMutation) RemovedArtifactsIDs() (ids []string) {
	for id := range m.removedartifacts {
		ids = append(ids, id)
	}
	return
}

// ArtifactsIDs returns the "artifacts" edge IDs in the mutation.
func (m *StackMutation) ArtifactsIDs() (ids []string) {
	for id := range m.artifacts {
		ids = append(ids, id)
	}
	return
}

// ResetArtifacts resets all changes to the "artifacts" edge.
func (m *StackMutation) ResetArtifacts() {
	m.artifacts = nil
	m.clearedartifacts = false
	m.removedartifacts = nil
}

// AddTraceIDs adds the "traces" edge to the AgentTrace entity by ids.
func (m *StackMutation) AddTraceIDs(ids ...string) {
	if m.traces == nil {
		m.traces = make(map[string]struct{})
	}
	for i := range ids {
		m.traces[ids[i]] = struct{}{}
	}
}

// ClearTraces clears the "traces" edge to the AgentTrace entity.
func (m *StackMutation) ClearTraces() {
	m.clearedtraces = true
}

// TracesCleared reports if the "traces" edge to the AgentTrace entity was cleared.
func (m *StackMutation) TracesCleared() bool {
	return m.clearedtraces
}

// RemoveTraceIDs removes the "traces" edge to the AgentTrace entity by IDs.
func (m *StackMutation) RemoveTraceIDs(ids ...string) {
	if m.removedtraces == nil {
		m.removedtraces = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.traces, ids[i])
		m.removedtraces[ids[i]] = struct{}{}
	}
}

// RemovedTraces returns the removed IDs of the "traces" edge to the AgentTrace entity.
func (m *StackMutation) RemovedTracesIDs() (ids []string) {
	for id := range m.removedtraces {
		ids = append(ids, id)
	}
	return
}

// TracesIDs returns the "traces" edge IDs in the mutation.
func (m *StackMutation) TracesIDs() (ids []string) {
	for id := range m.traces {
		ids = append(ids, id)
	}
	return
}

// ResetTraces resets all changes to the "traces" edge.
func (m *StackMutation) ResetTraces() {
	m.traces = nil
	m.clearedtraces = false
	m.removedtraces = nil
}

// AddUserMessageIDs adds the "user_messages" edge to the UserMessage entity by ids.
func (m *StackMutation) AddUserMessageIDs(ids ...string) {
	if m.user_messages == nil {
		m.user_messages = make(map[string]struct{})
	}
	for i := range ids {
		m.user_messages[ids[i]] = struct{}{}
	}
}

// ClearUserMessages clears the "user_messages" edge to the UserMessage entity.
func (m *StackMutation) ClearUserMessages() {
	m.cleareduser_messages = true
}

// UserMessagesCleared reports if the "user_messages" edge to the UserMessage entity was cleared.
func (m *StackMutation) UserMessagesCleared() bool {
	return m.cleareduser_messages
}

// RemoveUserMessageIDs removes the "user_messages" edge to the UserMessage entity by IDs.
func (m *StackMutation) RemoveUserMessageIDs(ids ...string) {
	if m.removeduser_messages == nil {
		m.removeduser_messages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.user_messages, ids[i])
		m.removeduser_messages[ids[i]] = struct{}{}
	}
}

// RemovedUserMessages returns the removed IDs of the "user_messages" edge to the UserMessage entity.
func (m *StackMutation) RemovedUserMessagesIDs() (ids []string) {
	for id := range m.removeduser_messages {
		ids = append(ids, id)
	}
	return
}

// UserMessagesIDs returns the "user_messages" edge IDs in the mutation.
func (m *StackMutation) UserMessagesIDs() (ids []string) {
	for id := range m.user_messages {
		ids = append(ids, id)
	}
	return
}

// ResetUserMessages resets all changes to the "user_messages" edge.
func (m *StackMutation) ResetUserMessages() {
	m.user_messages = nil
	m.cleareduser_messages = false
	m.removeduser_messages = nil
}

// AddOrchestratorExecutionIDs adds the "orchestrator_executions" edge to the OrchestratorExecution entity by ids.
func (m *StackMutation) AddOrchestratorExecutionIDs(ids ...string) {
	if m.orchestrator_executions == nil {
		m.orchestrator_executions = make(map[string]struct{})
	}
	for i := range ids {
		m.orchestrator_executions[ids[i]] = struct{}{}
	}
}

// ClearOrchestratorExecutions clears the "orchestrator_executions" edge to the OrchestratorExecution entity.
func (m *StackMutation) ClearOrchestratorExecutions() {
	m.clearedorchestrator_executions = true
}

// OrchestratorExecutionsCleared reports if the "orchestrator_executions" edge to the OrchestratorExecution entity was cleared.
func (m *StackMutation) OrchestratorExecutionsCleared() bool {
	return m.clearedorchestrator_executions
}

// RemoveOrchestratorExecutionIDs removes the "orchestrator_executions" edge to the OrchestratorExecution entity by IDs.
func (m *StackMutation) RemoveOrchestratorExecutionIDs(ids ...string) {
	if m.removedorchestrator_executions == nil {
		m.removedorchestrator_executions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.orchestrator_executions, ids[i])
		m.removedorchestrator_executions[ids[i]] = struct{}{}
	}
}

// RemovedOrchestratorExecutions returns the removed IDs of the "orchestrator_executions" edge to the OrchestratorExecution entity.
func (m *StackMutation) RemovedOrchestratorExecutionsIDs() (ids []string) {
	for id := range m.removedorchestrator_executions {
		ids = append(ids, id)
	}
	return
}

// OrchestratorExecutionsIDs returns the "orchestrator_executions" edge IDs in the mutation.
func (m *StackMutation) OrchestratorExecutionsIDs() (ids []string) {
	for id := range m.orchestrator_executions {
		ids = append(ids, id)
	}
	return
}

// ResetOrchestratorExecutions resets all changes to the "orchestrator_executions" edge.
func (m *StackMutation) ResetOrchestratorExecutions() {
	m.orchestrator_executions = nil
	m.clearedorchestrator_executions = false
	m.removedorchestrator_executions = nil
}

// AddExecutionGraphIDs adds the "execution_graphs" edge to the ExecutionGraph entity by ids.
func (m *StackMutation) AddExecutionGraphIDs(ids ...string) {
	if m.execution_graphs == nil {
		m.execution_graphs = make(map[string]struct{})
	}
	for i := range ids {
		m.execution_graphs[ids[i]] = struct{}{}
	}
}

// ClearExecutionGraphs clears the "execution_graphs" edge to the ExecutionGraph entity.
func (m *StackMutation) ClearExecutionGraphs() {
	m.clearedexecution_graphs = true
}

// ExecutionGraphsCleared reports if the "execution_graphs" edge to the ExecutionGraph entity was cleared.
func (m *StackMutation) ExecutionGraphsCleared() bool {
	return m.clearedexecution_graphs
}

// RemoveExecutionGraphIDs removes the "execution_graphs" edge to the ExecutionGraph entity by IDs.
func (m *StackMutation) RemoveExecutionGraphIDs(ids ...string) {
	if m.removedexecution_graphs == nil {
		m.removedexecution_graphs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.execution_graphs, ids[i])
		m.removedexecution_graphs[ids[i]] = struct{}{}
	}
}

// RemovedExecutionGraphs returns the removed IDs of the "execution_graphs" edge to the ExecutionGraph entity.
func (m *StackMutation) RemovedExecutionGraphsIDs() (ids []string) {
	for id := range m.removedexecution_graphs {
		ids = append(ids, id)
	}
	return
}

// ExecutionGraphsIDs returns the "execution_graphs" edge IDs in the mutation.
func (m *StackMutation) ExecutionGraphsIDs() (ids []string) {
	for id := range m.execution_graphs {
		ids = append(ids, id)
	}
	return
}

// ResetExecutionGraphs resets all changes to the "execution_graphs" edge.
func (m *StackMutation) ResetExecutionGraphs() {
	m.execution_graphs = nil
	m.clearedexecution_graphs = false
	m.removedexecution_graphs = nil
}

// SetWorkDetectionCacheID sets the "work_detection_cache" edge to the WorkDetectionCache entity by id.
func (m *StackMutation) SetWorkDetectionCacheID(id string) {
	m.work_detection_cache = &id
}

// ClearWorkDetectionCache clears the "work_detection_cache" edge to the WorkDetectionCache entity.
func (m *StackMutation) ClearWorkDetectionCache() {
	m.clearedwork_detection_cache = true
}

// WorkDetectionCacheCleared reports if the "work_detection_cache" edge to the WorkDetectionCache entity was cleared.
func (m *StackMutation) WorkDetectionCacheCleared() bool {
	return m.clearedwork_detection_cache
}

// WorkDetectionCacheID returns the "work_detection_cache" edge ID in the mutation.
func (m *StackMutation) WorkDetectionCacheID() (id string, exists bool) {
	if m.work_detection_cache != nil {
		return *m.work_detection_cache, true
	}
	return
}

// WorkDetectionCacheIDs returns the "work_detection_cache" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WorkDetectionCacheID instead. It exists only for internal usage by the builders.
func (m *StackMutation) WorkDetectionCacheIDs() (ids []string) {
	if id := m.work_detection_cache; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWorkDetectionCache resets all changes to the "work_detection_cache" edge.
func (m *StackMutation) ResetWorkDetectionCache() {
	m.work_detection_cache = nil
	m.clearedwork_detection_cache = false
}

// Where appends a list predicates to the StackMutation builder.
func (m *StackMutation) Where(ps ...predicate.Stack) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Stack, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Stack).
func (m *StackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StackMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.participant_name != nil {
		fields = append(fields, stack.FieldParticipantName)
	}
	if m.phase != nil {
		fields = append(fields, stack.FieldPhase)
	}
	if m.execution_state != nil {
		fields = append(fields, stack.FieldExecutionState)
	}
	if m.last_activity_at != nil {
		fields = append(fields, stack.FieldLastActivityAt)
	}
	if m.total_cycles != nil {
		fields = append(fields, stack.FieldTotalCycles)
	}
	if m.created_at != nil {
		fields = append(fields, stack.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stack.FieldParticipantName:
		return m.ParticipantName()
	case stack.FieldPhase:
		return m.Phase()
	case stack.FieldExecutionState:
		return m.ExecutionState()
	case stack.FieldLastActivityAt:
		return m.LastActivityAt()
	case stack.FieldTotalCycles:
		return m.TotalCycles()
	case stack.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stack.FieldParticipantName:
		return m.OldParticipantName(ctx)
	case stack.FieldPhase:
		return m.OldPhase(ctx)
	case stack.FieldExecutionState:
		return m.OldExecutionState(ctx)
	case stack.FieldLastActivityAt:
		return m.OldLastActivityAt(ctx)
	case stack.FieldTotalCycles:
		return m.OldTotalCycles(ctx)
	case stack.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Stack field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stack.FieldParticipantName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantName(v)
		return nil
	case stack.FieldPhase:
		v, ok := value.(stack.Phase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case stack.FieldExecutionState:
		v, ok := value.(stack.ExecutionState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionState(v)
		return nil
	case stack.FieldLastActivityAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityAt(v)
		return nil
	case stack.FieldTotalCycles:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCycles(v)
		return nil
	case stack.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Stack field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StackMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_cycles != nil {
		fields = append(fields, stack.FieldTotalCycles)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StackMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stack.FieldTotalCycles:
		return m.AddedTotalCycles()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StackMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stack.FieldTotalCycles:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCycles(v)
		return nil
	}
	return fmt.Errorf("unknown Stack numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StackMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stack.FieldLastActivityAt) {
		fields = append(fields, stack.FieldLastActivityAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StackMutation) ClearField(name string) error {
	switch name {
	case stack.FieldLastActivityAt:
		m.ClearLastActivityAt()
		return nil
	}
	return fmt.Errorf("unknown Stack nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StackMutation) ResetField(name string) error {
	switch name {
	case stack.FieldParticipantName:
		m.ResetParticipantName()
		return nil
	case stack.FieldPhase:
		m.ResetPhase()
		return nil
	case stack.FieldExecutionState:
		m.ResetExecutionState()
		return nil
	case stack.FieldLastActivityAt:
		m.ResetLastActivityAt()
		return nil
	case stack.FieldTotalCycles:
		m.ResetTotalCycles()
		return nil
	case stack.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Stack field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StackMutation) AddedEdges() []string {
	edges := make([]string, 0, 9)
	if m.agent_states != nil {
		edges = append(edges, stack.EdgeAgentStates)
	}
	if m.project_idea != nil {
		edges = append(edges, stack.EdgeProjectIdea)
	}
	if m.todos != nil {
		edges = append(edges, stack.EdgeTodos)
	}
	if m.artifacts != nil {
		edges = append(edges, stack.EdgeArtifacts)
	}
	if m.traces != nil {
		edges = append(edges, stack.EdgeTraces)
	}
	if m.user_messages != nil {
		edges = append(edges, stack.EdgeUserMessages)
	}
	if m.orchestrator_executions != nil {
		edges = append(edges, stack.EdgeOrchestratorExecutions)
	}
	if m.execution_graphs != nil {
		edges = append(edges, stack.EdgeExecutionGraphs)
	}
	if m.work_detection_cache != nil {
		edges = append(edges, stack.EdgeWorkDetectionCache)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StackMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stack.EdgeAgentStates:
		ids := make([]ent.Value, 0, len(m.agent_states))
		for id := range m.agent_states {
			ids = append(ids, id)
		}
		return ids
	case stack.EdgeProjectIdea:
		if id := m.project_idea; id != nil {
			return []ent.Value{*id}
		}
	case stack.EdgeTodos:
		ids := make([]ent.Value, 0, len(m.todos))
		for id := range m.todos {
			ids = append(ids, id)
		}
		return ids
	case stack.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.artifacts))
		for id := range m.artifacts {
			ids = append(ids, id)
		}
		return ids
	case stack.EdgeTraces:
		ids := make([]ent.Value, 0, len(m.traces))
		for id := range m.traces {
			ids = append(ids, id)
		}
		return ids
	case stack.EdgeUserMessages:
		ids := make([]ent.Value, 0, len(m.user_messages))
		for id := range m.user_messages {
			ids = append(ids, id)
		}
		return ids
	case stack.EdgeOrchestratorExecutions:
		ids := make([]ent.Value, 0, len(m.orchestrator_executions))
		for id := range m.orchestrator_executions {
			ids = append(ids, id)
		}
		return ids
	case stack.EdgeExecutionGraphs:
		ids := make([]ent.Value, 0, len(m.execution_graphs))
		for id := range m.execution_graphs {
			ids = append(ids, id)
		}
		return ids
	case stack.EdgeWorkDetectionCache:
		if id := m.work_detection_cache; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 9)
	if m.removedagent_states != nil {
		edges = append(edges, stack.EdgeAgentStates)
	}
	if m.removedtodos != nil {
		edges = append(edges, stack.EdgeTodos)
	}
	if m.removedartifacts != nil {
		edges = append(edges, stack.EdgeArtifacts)
	}
	if m.removedtraces != nil {
		edges = append(edges, stack.EdgeTraces)
	}
	if m.removeduser_messages != nil {
		edges = append(edges, stack.EdgeUserMessages)
	}
	if m.removedorchestrator_executions != nil {
		edges = append(edges, stack.EdgeOrchestratorExecutions)
	}
	if m.removedexecution_graphs != nil {
		edges = append(edges, stack.EdgeExecutionGraphs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StackMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case stack.EdgeAgentStates:
		ids := make([]ent.Value, 0, len(m.removedagent_states))
		for id := range m.removedagent_states {
			ids = append(ids, id)
		}
		return ids
	case stack.EdgeTodos:
		ids := make([]ent.Value, 0, len(m.removedtodos))
		for id := range m.removedtodos {
			ids = append(ids, id)
		}
		return ids
	case stack.EdgeArtifacts:
		ids := make([]ent.Value, 0, len(m.removedartifacts))
		for id := range m.removedartifacts {
			ids = append(ids, id)
		}
		return ids
	case stack.EdgeTraces:
		ids := make([]ent.Value, 0, len(m.removedtraces))
		for id := range m.removedtraces {
			ids = append(ids, id)
		}
		return ids
	case stack.EdgeUserMessages:
		ids := make([]ent.Value, 0, len(m.removeduser_messages))
		for id := range m.removeduser_messages {
			ids = append(ids, id)
		}
		return ids
	case stack.EdgeOrchestratorExecutions:
		ids := make([]ent.Value, 0, len(m.removedorchestrator_executions))
		for id := range m.removedorchestrator_executions {
			ids = append(ids, id)
		}
		return ids
	case stack.EdgeExecutionGraphs:
		ids := make([]ent.Value, 0, len(m.removedexecution_graphs))
		for id := range m.removedexecution_graphs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 9)
	if m.clearedagent_states {
		edges = append(edges, stack.EdgeAgentStates)
	}
	if m.clearedproject_idea {
		edges = append(edges, stack.EdgeProjectIdea)
	}
	if m.clearedtodos {
		edges = append(edges, stack.EdgeTodos)
	}
	if m.clearedartifacts {
		edges = append(edges, stack.EdgeArtifacts)
	}
	if m.clearedtraces {
		edges = append(edges, stack.EdgeTraces)
	}
	if m.cleareduser_messages {
		edges = append(edges, stack.EdgeUserMessages)
	}
	if m.clearedorchestrator_executions {
		edges = append(edges, stack.EdgeOrchestratorExecutions)
	}
	if m.clearedexecution_graphs {
		edges = append(edges, stack.EdgeExecutionGraphs)
	}
	if m.clearedwork_detection_cache {
		edges = append(edges, stack.EdgeWorkDetectionCache)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StackMutation) EdgeCleared(name string) bool {
	switch name {
	case stack.EdgeAgentStates:
		return m.clearedagent_states
	case stack.EdgeProjectIdea:
		return m.clearedproject_idea
	case stack.EdgeTodos:
		return m.clearedtodos
	case stack.EdgeArtifacts:
		return m.clearedartifacts
	case stack.EdgeTraces:
		return m.clearedtraces
	case stack.EdgeUserMessages:
		return m.cleareduser_messages
	case stack.EdgeOrchestratorExecutions:
		return m.clearedorchestrator_executions
	case stack.EdgeExecutionGraphs:
		return m.clearedexecution_graphs
	case stack.EdgeWorkDetectionCache:
		return m.clearedwork_detection_cache
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StackMutation) ClearEdge(name string) error {
	switch name {
	case stack.EdgeProjectIdea:
		m.ClearProjectIdea()
		return nil
	case stack.EdgeWorkDetectionCache:
		m.ClearWorkDetectionCache()
		return nil
	}
	return fmt.Errorf("unknown Stack unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StackMutation) ResetEdge(name string) error {
	switch name {
	case stack.EdgeAgentStates:
		m.ResetAgentStates()
		return nil
	case stack.EdgeProjectIdea:
		m.ResetProjectIdea()
		return nil
	case stack.EdgeTodos:
		m.ResetTodos()
		return nil
	case stack.EdgeArtifacts:
		m.ResetArtifacts()
		return nil
	case stack.EdgeTraces:
		m.ResetTraces()
		return nil
	case stack.EdgeUserMessages:
		m.ResetUserMessages()
		return nil
	case stack.EdgeOrchestratorExecutions:
		m.ResetOrchestratorExecutions()
		return nil
	case stack.EdgeExecutionGraphs:
		m.ResetExecutionGraphs()
		return nil
	case stack.EdgeWorkDetectionCache:
		m.ResetWorkDetectionCache()
		return nil
	}
	return fmt.Errorf("unknown Stack edge %s", name)
}

// TodoMutation represents an operation that mutates the Todo nodes in the graph.
type TodoMutation struct {
	config
	op            Op
	typ           string
	id            *string
	content       *string
	status        *todo.Status
	priority      *int
	addpriority   *int
	assigned_by   *string
	created_at    *time.Time
	completed_at  *time.Time
	clearedFields map[string]struct{}
	stack         *string
	clearedstack  bool
	done          bool
	oldValue      func(context.Context) (*Todo, error)
	predicates    []predicate.Todo
}

var _ ent.Mutation = (*TodoMutation)(nil)

// todoOption allows management of the mutation configuration using functional options.
type todoOption func(*TodoMutation)

// newTodoMutation creates new mutation for the Todo entity.
func newTodoMutation(c config, op Op, opts ...todoOption) *TodoMutation {
	m := &TodoMutation{
		config:        c,
		op:            op,
		typ:           TypeTodo,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTodoID sets the ID field of the mutation.
func withTodoID(id string) todoOption {
	return func(m *TodoMutation) {
		var (
			err   error
			once  sync.Once
			value *Todo
		)
		m.oldValue = func(ctx context.Context) (*Todo, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Todo.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTodo sets the old Todo of the mutation.
func withTodo(node *Todo) todoOption {
	return func(m *TodoMutation) {
		m.oldValue = func(context.Context) (*Todo, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TodoMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TodoMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Todo entities.
func (m *TodoMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TodoMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TodoMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Todo.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStackID sets the "stack_id" field.
func (m *TodoMutation) SetStackID(s string) {
	m.stack = &s
}

// StackID returns the value of the "stack_id" field in the mutation.
func (m *TodoMutation) StackID() (r string, exists bool) {
	v := m.stack
	if v == nil {
		return
	}
	return *v, true
}

// OldStackID returns the old "stack_id" field's value of the Todo entity.
// If the Todo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TodoMutation) OldStackID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStackID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStackID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStackID: %w", err)
	}
	return oldValue.StackID, nil
}

// ResetStackID resets all changes to the "stack_id" field.
func (m *TodoMutation) ResetStackID() {
	m.stack = nil
}

// SetContent sets the "content" field.
func (m *TodoMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *TodoMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Todo entity.
// If the Todo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TodoMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *TodoMutation) ResetContent() {
	m.content = nil
}

// SetStatus sets the "status" field.
func (m *TodoMutation) SetStatus(t todo.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TodoMutation) Status() (r todo.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Todo entity.
// If the Todo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TodoMutation) OldStatus(ctx context.Context) (v todo.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TodoMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *TodoMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TodoMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Todo entity.
// If the Todo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TodoMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *TodoMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *TodoMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *TodoMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetAssignedBy sets the "assigned_by" field.
func (m *TodoMutation) SetAssignedBy(s string) {
	m.assigned_by = &s
}

// AssignedBy returns the value of the "assigned_by" field in the mutation.
func (m *TodoMutation) AssignedBy() (r string, exists bool) {
	v := m.assigned_by
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedBy returns the old "assigned_by" field's value of the Todo entity.
// If the Todo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TodoMutation) OldAssignedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedBy: %w", err)
	}
	return oldValue.AssignedBy, nil
}

// ResetAssignedBy resets all changes to the "assigned_by" field.
func (m *TodoMutation) ResetAssignedBy() {
	m.assigned_by = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TodoMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TodoMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Todo entity.
// If the Todo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TodoMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TodoMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *TodoMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TodoMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Todo entity.
// If the Todo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TodoMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TodoMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[todo.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TodoMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[todo.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TodoMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, todo.FieldCompletedAt)
}

// ClearStack clears the "stack" edge to the Stack entity.
func (m *TodoMutation) ClearStack() {
	m.clearedstack = true
	m.clearedFields[todo.FieldStackID] = struct{}{}
}

// StackCleared reports if the "stack" edge to the Stack entity was cleared.
func (m *TodoMutation) StackCleared() bool {
	return m.clearedstack
}

// StackIDs returns the "stack" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StackID instead. It exists only for internal usage by the builders.
func (m *TodoMutation) StackIDs() (ids []string) {
	if id := m.stack; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStack resets all changes to the "stack" edge.
func (m *TodoMutation) ResetStack() {
	m.stack = nil
	m.clearedstack = false
}

// Where appends a list predicates to the TodoMutation builder.
func (m *TodoMutation) Where(ps ...predicate.Todo) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TodoMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TodoMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Todo, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TodoMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TodoMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Todo).
func (m *TodoMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TodoMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.stack != nil {
		fields = append(fields, todo.FieldStackID)
	}
	if m.content != nil {
		fields = append(fields, todo.FieldContent)
	}
	if m.status != nil {
		fields = append(fields, todo.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, todo.FieldPriority)
	}
	if m.assigned_by != nil {
		fields = append(fields, todo.FieldAssignedBy)
	}
	if m.created_at != nil {
		fields = append(fields, todo.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, todo.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TodoMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case todo.FieldStackID:
		return m.StackID()
	case todo.FieldContent:
		return m.Content()
	case todo.FieldStatus:
		return m.Status()
	case todo.FieldPriority:
		return m.Priority()
	case todo.FieldAssignedBy:
		return m.AssignedBy()
	case todo.FieldCreatedAt:
		return m.CreatedAt()
	case todo.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TodoMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case todo.FieldStackID:
		return m.OldStackID(ctx)
	case todo.FieldContent:
		return m.OldContent(ctx)
	case todo.FieldStatus:
		return m.OldStatus(ctx)
	case todo.FieldPriority:
		return m.OldPriority(ctx)
	case todo.FieldAssignedBy:
		return m.OldAssignedBy(ctx)
	case todo.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case todo.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Todo field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TodoMutation) SetField(name string, value ent.Value) error {
	switch name {
	case todo.FieldStackID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStackID(v)
		return nil
	case todo.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case todo.FieldStatus:
		v, ok := value.(todo.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case todo.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case todo.FieldAssignedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedBy(v)
		return nil
	case todo.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case todo.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Todo field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TodoMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, todo.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TodoMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case todo.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TodoMutation) AddField(name string, value ent.Value) error {
	switch name {
	case todo.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown Todo numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TodoMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(todo.FieldCompletedAt) {
		fields = append(fields, todo.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TodoMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TodoMutation) ClearField(name string) error {
	switch name {
	case todo.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Todo nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TodoMutation) ResetField(name string) error {
	switch name {
	case todo.FieldStackID:
		m.ResetStackID()
		return nil
	case todo.FieldContent:
		m.ResetContent()
		return nil
	case todo.FieldStatus:
		m.ResetStatus()
		return nil
	case todo.FieldPriority:
		m.ResetPriority()
		return nil
	case todo.FieldAssignedBy:
		m.ResetAssignedBy()
		return nil
	case todo.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case todo.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Todo field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TodoMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.stack != nil {
		edges = append(edges, todo.EdgeStack)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TodoMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case todo.EdgeStack:
		if id := m.stack; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TodoMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TodoMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TodoMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstack {
		edges = append(edges, todo.EdgeStack)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TodoMutation) EdgeCleared(name string) bool {
	switch name {
	case todo.EdgeStack:
		return m.clearedstack
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TodoMutation) ClearEdge(name string) error {
	switch name {
	case todo.EdgeStack:
		m.ClearStack()
		return nil
	}
	return fmt.Errorf("unknown Todo unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TodoMutation) ResetEdge(name string) error {
	switch name {
	case todo.EdgeStack:
		m.ResetStack()
		return nil
	}
	return fmt.Errorf("unknown Todo edge %s", name)
}

// UserMessageMutation represents an operation that mutates the UserMessage nodes in the graph.
type UserMessageMutation struct {
	config
	op            Op
	typ           string
	id            *string
	sender_name   *string
	content       *string
	processed     *bool
	response_id   *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	stack         *string
	clearedstack  bool
	done          bool
	oldValue      func(context.Context) (*UserMessage, error)
	predicates    []predicate.UserMessage
}

var _ ent.Mutation = (*UserMessageMutation)(nil)

// usermessageOption allows management of the mutation configuration using functional options.
type usermessageOption func(*UserMessageMutation)

// newUserMessageMutation creates new mutation for the UserMessage entity.
func newUserMessageMutation(c config, op Op, opts ...usermessageOption) *UserMessageMutation {
	m := &UserMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeUserMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserMessageID sets the ID field of the mutation.
func withUserMessageID(id string) usermessageOption {
	return func(m *UserMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *UserMessage
		)
		m.oldValue = func(ctx context.Context) (*UserMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserMessage sets the old UserMessage of the mutation.
func withUserMessage(node *UserMessage) usermessageOption {
	return func(m *UserMessageMutation) {
		m.oldValue = func(context.Context) (*UserMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserMessage entities.
func (m *UserMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTeamID sets the "team_id" field.
func (m *UserMessageMutation) SetTeamID(s string) {
	m.stack = &s
}

// TeamID returns the value of the "team_id" field in the mutation.
func (m *UserMessageMutation) TeamID() (r string, exists bool) {
	v := m.stack
	if v == nil {
		return
	}
	return *v, true
}

// OldTeamID returns the old "team_id" field's value of the UserMessage entity.
// If the UserMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMessageMutation) OldTeamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeamID: %w", err)
	}
	return oldValue.TeamID, nil
}

// ResetTeamID resets all changes to the "team_id" field.
func (m *UserMessageMutation) ResetTeamID() {
	m.stack = nil
}

// SetSenderName sets the "sender_name" field.
func (m *UserMessageMutation) SetSenderName(s string) {
	m.sender_name = &s
}

// SenderName returns the value of the "sender_name" field in the mutation.
func (m *UserMessageMutation) SenderName() (r string, exists bool) {
	v := m.sender_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderName returns the old "sender_name" field's value of the UserMessage entity.
// If the UserMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMessageMutation) OldSenderName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderName: %w", err)
	}
	return oldValue.SenderName, nil
}

// ResetSenderName resets all changes to the "sender_name" field.
func (m *UserMessageMutation) ResetSenderName() {
	m.sender_name = nil
}

// SetContent sets the "content" field.
func (m *UserMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *UserMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the UserMessage entity.
// If the UserMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *UserMessageMutation) ResetContent() {
	m.content = nil
}

// SetProcessed sets the "processed" field.
func (m *UserMessageMutation) SetProcessed(b bool) {
	m.processed = &b
}

// Processed returns the value of the "processed" field in the mutation.
func (m *UserMessageMutation) Processed() (r bool, exists bool) {
	v := m.processed
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessed returns the old "processed" field's value of the UserMessage entity.
// If the UserMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMessageMutation) OldProcessed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessed: %w", err)
	}
	return oldValue.Processed, nil
}

// ResetProcessed resets all changes to the "processed" field.
func (m *UserMessageMutation) ResetProcessed() {
	m.processed = nil
}

// SetResponseID sets the "response_id" field.
func (m *UserMessageMutation) SetResponseID(s string) {
	m.response_id = &s
}

// ResponseID returns the value of the "response_id" field in the mutation.
func (m *UserMessageMutation) ResponseID() (r string, exists bool) {
	v := m.response_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseID returns the old "response_id" field's value of the UserMessage entity.
// If the UserMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMessageMutation) OldResponseID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseID: %w", err)
	}
	return oldValue.ResponseID, nil
}

// ClearResponseID clears the value of the "response_id" field.
func (m *UserMessageMutation) ClearResponseID() {
	m.response_id = nil
	m.clearedFields[usermessage.FieldResponseID] = struct{}{}
}

// ResponseIDCleared returns if the "response_id" field was cleared in this mutation.
func (m *UserMessageMutation) ResponseIDCleared() bool {
	_, ok := m.clearedFields[usermessage.FieldResponseID]
	return ok
}

// ResetResponseID resets all changes to the "response_id" field.
func (m *UserMessageMutation) ResetResponseID() {
	m.response_id = nil
	delete(m.clearedFields, usermessage.FieldResponseID)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserMessage entity.
// If the UserMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStackID sets the "stack" edge to the Stack entity by id.
func (m *UserMessageMutation) SetStackID(id string) {
	m.stack = &id
}

// ClearStack clears the "stack" edge to the Stack entity.
func (m *UserMessageMutation) ClearStack() {
	m.clearedstack = true
	m.clearedFields[usermessage.FieldTeamID] = struct{}{}
}

// StackCleared reports if the "stack" edge to the Stack entity was cleared.
func (m *UserMessageMutation) StackCleared() bool {
	return m.clearedstack
}

// StackID returns the "stack" edge ID in the mutation.
func (m *UserMessageMutation) StackID() (id string, exists bool) {
	if m.stack != nil {
		return *m.stack, true
	}
	return
}

// StackIDs returns the "stack" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StackID instead. It exists only for internal usage by the builders.
func (m *UserMessageMutation) StackIDs() (ids []string) {
	if id := m.stack; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStack resets all changes to the "stack" edge.
func (m *UserMessageMutation) ResetStack() {
	m.stack = nil
	m.clearedstack = false
}

// Where appends a list predicates to the UserMessageMutation builder.
func (m *UserMessageMutation) Where(ps ...predicate.UserMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserMessage).
func (m *UserMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMessageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.stack != nil {
		fields = append(fields, usermessage.FieldTeamID)
	}
	if m.sender_name != nil {
		fields = append(fields, usermessage.FieldSenderName)
	}
	if m.content != nil {
		fields = append(fields, usermessage.FieldContent)
	}
	if m.processed != nil {
		fields = append(fields, usermessage.FieldProcessed)
	}
	if m.response_id != nil {
		fields = append(fields, usermessage.FieldResponseID)
	}
	if m.created_at != nil {
		fields = append(fields, usermessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usermessage.FieldTeamID:
		return m.TeamID()
	case usermessage.FieldSenderName:
		return m.SenderName()
	case usermessage.FieldContent:
		return m.Content()
	case usermessage.FieldProcessed:
		return m.Processed()
	case usermessage.FieldResponseID:
		return m.ResponseID()
	case usermessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usermessage.FieldTeamID:
		return m.OldTeamID(ctx)
	case usermessage.FieldSenderName:
		return m.OldSenderName(ctx)
	case usermessage.FieldContent:
		return m.OldContent(ctx)
	case usermessage.FieldProcessed:
		return m.OldProcessed(ctx)
	case usermessage.FieldResponseID:
		return m.OldResponseID(ctx)
	case usermessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usermessage.FieldTeamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeamID(v)
		return nil
	case usermessage.FieldSenderName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderName(v)
		return nil
	case usermessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case usermessage.FieldProcessed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessed(v)
		return nil
	case usermessage.FieldResponseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseID(v)
		return nil
	case usermessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usermessage.FieldResponseID) {
		fields = append(fields, usermessage.FieldResponseID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMessageMutation) ClearField(name string) error {
	switch name {
	case usermessage.FieldResponseID:
		m.ClearResponseID()
		return nil
	}
	return fmt.Errorf("unknown UserMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMessageMutation) ResetField(name string) error {
	switch name {
	case usermessage.FieldTeamID:
		m.ResetTeamID()
		return nil
	case usermessage.FieldSenderName:
		m.ResetSenderName()
		return nil
	case usermessage.FieldContent:
		m.ResetContent()
		return nil
	case usermessage.FieldProcessed:
		m.ResetProcessed()
		return nil
	case usermessage.FieldResponseID:
		m.ResetResponseID()
		return nil
	case usermessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.stack != nil {
		edges = append(edges, usermessage.EdgeStack)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case usermessage.EdgeStack:
		if id := m.stack; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstack {
		edges = append(edges, usermessage.EdgeStack)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case usermessage.EdgeStack:
		return m.clearedstack
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMessageMutation) ClearEdge(name string) error {
	switch name {
	case usermessage.EdgeStack:
		m.ClearStack()
		return nil
	}
	return fmt.Errorf("unknown UserMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMessageMutation) ResetEdge(name string) error {
	switch name {
	case usermessage.EdgeStack:
		m.ResetStack()
		return nil
	}
	return fmt.Errorf("unknown UserMessage edge %s", name)
}

// WorkDetectionCacheMutation represents an operation that mutates the WorkDetectionCache nodes in the graph.
type WorkDetectionCacheMutation struct {
	config
	op            Op
	typ           string
	id            *string
	statuses      *models.WorkStatus
	computed_at   *time.Time
	valid_until   *time.Time
	clearedFields map[string]struct{}
	stack         *string
	clearedstack  bool
	done          bool
	oldValue      func(context.Context) (*WorkDetectionCache, error)
	predicates    []predicate.WorkDetectionCache
}

var _ ent.Mutation = (*WorkDetectionCacheMutation)(nil)

// workdetectioncacheOption allows management of the mutation configuration using functional options.
type workdetectioncacheOption func(*WorkDetectionCacheMutation)

// newWorkDetectionCacheMutation creates new mutation for the WorkDetectionCache entity.
func newWorkDetectionCacheMutation(c config, op Op, opts ...workdetectioncacheOption) *WorkDetectionCacheMutation {
	m := &WorkDetectionCacheMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkDetectionCache,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkDetectionCacheID sets the ID field of the mutation.
func withWorkDetectionCacheID(id string) workdetectioncacheOption {
	return func(m *WorkDetectionCacheMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkDetectionCache
		)
		m.oldValue = func(ctx context.Context) (*WorkDetectionCache, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkDetectionCache.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkDetectionCache sets the old WorkDetectionCache of the mutation.
func withWorkDetectionCache(node *WorkDetectionCache) workdetectioncacheOption {
	return func(m *WorkDetectionCacheMutation) {
		m.oldValue = func(context.Context) (*WorkDetectionCache, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkDetectionCacheMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkDetectionCacheMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkDetectionCache entities.
func (m *WorkDetectionCacheMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkDetectionCacheMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkDetectionCacheMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkDetectionCache.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStackID sets the "stack_id" field.
func (m *WorkDetectionCacheMutation) SetStackID(s string) {
	m.stack = &s
}

// StackID returns the value of the "stack_id" field in the mutation.
func (m *WorkDetectionCacheMutation) StackID() (r string, exists bool) {
	v := m.stack
	if v == nil {
		return
	}
	return *v, true
}

// OldStackID returns the old "stack_id" field's value of the WorkDetectionCache entity.
// If the WorkDetectionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkDetectionCacheMutation) OldStackID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStackID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStackID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStackID: %w", err)
	}
	return oldValue.StackID, nil
}

// ResetStackID resets all changes to the "stack_id" field.
func (m *WorkDetectionCacheMutation) ResetStackID() {
	m.stack = nil
}

// SetStatuses sets the "statuses" field.
func (m *WorkDetectionCacheMutation) SetStatuses(ms models.WorkStatus) {
	m.statuses = &ms
}

// Statuses returns the value of the "statuses" field in the mutation.
func (m *WorkDetectionCacheMutation) Statuses() (r models.WorkStatus, exists bool) {
	v := m.statuses
	if v == nil {
		return
	}
	return *v, true
}

// OldStatuses returns the old "statuses" field's value of the WorkDetectionCache entity.
// If the WorkDetectionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkDetectionCacheMutation) OldStatuses(ctx context.Context) (v models.WorkStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatuses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatuses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatuses: %w", err)
	}
	return oldValue.Statuses, nil
}

// ResetStatuses resets all changes to the "statuses" field.
func (m *WorkDetectionCacheMutation) ResetStatuses() {
	m.statuses = nil
}

// SetComputedAt sets the "computed_at" field.
func (m *WorkDetectionCacheMutation) SetComputedAt(t time.Time) {
	m.computed_at = &t
}

// ComputedAt returns the value of the "computed_at" field in the mutation.
func (m *WorkDetectionCacheMutation) ComputedAt() (r time.Time, exists bool) {
	v := m.computed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldComputedAt returns the old "computed_at" field's value of the WorkDetectionCache entity.
// If the WorkDetectionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkDetectionCacheMutation) OldComputedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComputedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComputedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComputedAt: %w", err)
	}
	return oldValue.ComputedAt, nil
}

// ResetComputedAt resets all changes to the "computed_at" field.
func (m *WorkDetectionCacheMutation) ResetComputedAt() {
	m.computed_at = nil
}

// SetValidUntil sets the "valid_until" field.
func (m *WorkDetectionCacheMutation) SetValidUntil(t time.Time) {
	m.valid_until = &t
}

// ValidUntil returns the value of the "valid_until" field in the mutation.
func (m *WorkDetectionCacheMutation) ValidUntil() (r time.Time, exists bool) {
	v := m.valid_until
	if v == nil {
		return
	}
	return *v, true
}

// OldValidUntil returns the old "valid_until" field's value of the WorkDetectionCache entity.
// If the WorkDetectionCache object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkDetectionCacheMutation) OldValidUntil(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidUntil: %w", err)
	}
	return oldValue.ValidUntil, nil
}

// ResetValidUntil resets all changes to the "valid_until" field.
func (m *WorkDetectionCacheMutation) ResetValidUntil() {
	m.valid_until = nil
}

// ClearStack clears the "stack" edge to the Stack entity.
func (m *WorkDetectionCacheMutation) ClearStack() {
	m.clearedstack = true
	m.clearedFields[workdetectioncache.FieldStackID] = struct{}{}
}

// StackCleared reports if the "stack" edge to the Stack entity was cleared.
func (m *WorkDetectionCacheMutation) StackCleared() bool {
	return m.clearedstack
}

// StackIDs returns the "stack" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StackID instead. It exists only for internal usage by the builders.
func (m *WorkDetectionCacheMutation) StackIDs() (ids []string) {
	if id := m.stack; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStack resets all changes to the "stack" edge.
func (m *WorkDetectionCacheMutation) ResetStack() {
	m.stack = nil
	m.clearedstack = false
}

// Where appends a list predicates to the WorkDetectionCacheMutation builder.
func (m *WorkDetectionCacheMutation) Where(ps ...predicate.WorkDetectionCache) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkDetectionCacheMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkDetectionCacheMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkDetectionCache, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkDetectionCacheMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkDetectionCacheMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkDetectionCache).
func (m *WorkDetectionCacheMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkDetectionCacheMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.stack != nil {
		fields = append(fields, workdetectioncache.FieldStackID)
	}
	if m.statuses != nil {
		fields = append(fields, workdetectioncache.FieldStatuses)
	}
	if m.computed_at != nil {
		fields = append(fields, workdetectioncache.FieldComputedAt)
	}
	if m.valid_until != nil {
		fields = append(fields, workdetectioncache.FieldValidUntil)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkDetectionCacheMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workdetectioncache.FieldStackID:
		return m.StackID()
	case workdetectioncache.FieldStatuses:
		return m.Statuses()
	case workdetectioncache.FieldComputedAt:
		return m.ComputedAt()
	case workdetectioncache.FieldValidUntil:
		return m.ValidUntil()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkDetectionCacheMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workdetectioncache.FieldStackID:
		return m.OldStackID(ctx)
	case workdetectioncache.FieldStatuses:
		return m.OldStatuses(ctx)
	case workdetectioncache.FieldComputedAt:
		return m.OldComputedAt(ctx)
	case workdetectioncache.FieldValidUntil:
		return m.OldValidUntil(ctx)
	}
	return nil, fmt.Errorf("unknown WorkDetectionCache field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkDetectionCacheMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workdetectioncache.FieldStackID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStackID(v)
		return nil
	case workdetectioncache.FieldStatuses:
		v, ok := value.(models.WorkStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatuses(v)
		return nil
	case workdetectioncache.FieldComputedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComputedAt(v)
		return nil
	case workdetectioncache.FieldValidUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidUntil(v)
		return nil
	}
	return fmt.Errorf("unknown WorkDetectionCache field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkDetectionCacheMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkDetectionCacheMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkDetectionCacheMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkDetectionCache numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkDetectionCacheMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkDetectionCacheMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkDetectionCacheMutation) ClearField(name string) error {
	return fmt.Errorf("unknown WorkDetectionCache nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkDetectionCacheMutation) ResetField(name string) error {
	switch name {
	case workdetectioncache.FieldStackID:
		m.ResetStackID()
		return nil
	case workdetectioncache.FieldStatuses:
		m.ResetStatuses()
		return nil
	case workdetectioncache.FieldComputedAt:
		m.ResetComputedAt()
		return nil
	case workdetectioncache.FieldValidUntil:
		m.ResetValidUntil()
		return nil
	}
	return fmt.Errorf("unknown WorkDetectionCache field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkDetectionCacheMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.stack != nil {
		edges = append(edges, workdetectioncache.EdgeStack)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkDetectionCacheMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workdetectioncache.EdgeStack:
		if id := m.stack; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkDetectionCacheMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkDetectionCacheMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkDetectionCacheMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstack {
		edges = append(edges, workdetectioncache.EdgeStack)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkDetectionCacheMutation) EdgeCleared(name string) bool {
	switch name {
	case workdetectioncache.EdgeStack:
		return m.clearedstack
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkDetectionCacheMutation) ClearEdge(name string) error {
	switch name {
	case workdetectioncache.EdgeStack:
		m.ClearStack()
		return nil
	}
	return fmt.Errorf("unknown WorkDetectionCache unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkDetectionCacheMutation) ResetEdge(name string) error {
	switch name {
	case workdetectioncache.EdgeStack:
		m.ResetStack()
		return nil
	}
	return fmt.Errorf("unknown WorkDetectionCache edge %s", name)
}
