// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/hackfleet/hackfleet/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hackfleet/hackfleet/ent/agentstate"
	"github.com/hackfleet/hackfleet/ent/agenttrace"
	"github.com/hackfleet/hackfleet/ent/artifact"
	"github.com/hackfleet/hackfleet/ent/executiongraph"
	"github.com/hackfleet/hackfleet/ent/message"
	"github.com/hackfleet/hackfleet/ent/orchestratorexecution"
	"github.com/hackfleet/hackfleet/ent/projectidea"
	"github.com/hackfleet/hackfleet/ent/stack"
	"github.com/hackfleet/hackfleet/ent/todo"
	"github.com/hackfleet/hackfleet/ent/usermessage"
	"github.com/hackfleet/hackfleet/ent/workdetectioncache"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentState is the client for interacting with the AgentState builders.
	AgentState *AgentStateClient
	// AgentTrace is the client for interacting with the AgentTrace builders.
	AgentTrace *AgentTraceClient
	// Artifact is the client for interacting with the Artifact builders.
	Artifact *ArtifactClient
	// ExecutionGraph is the client for interacting with the ExecutionGraph builders.
	ExecutionGraph *ExecutionGraphClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// OrchestratorExecution is the client for interacting with the OrchestratorExecution builders.
	OrchestratorExecution *OrchestratorExecutionClient
	// ProjectIdea is the client for interacting with the ProjectIdea builders.
	ProjectIdea *ProjectIdeaClient
	// Stack is the client for interacting with the Stack builders.
	Stack *StackClient
	// Todo is the client for interacting with the Todo builders.
	Todo *TodoClient
	// UserMessage is the client for interacting with the UserMessage builders.
	UserMessage *UserMessageClient
	// WorkDetectionCache is the client for interacting with the WorkDetectionCache builders.
	WorkDetectionCache *WorkDetectionCacheClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentState = NewAgentStateClient(c.config)
	c.AgentTrace = NewAgentTraceClient(c.config)
	c.Artifact = NewArtifactClient(c.config)
	c.ExecutionGraph = NewExecutionGraphClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.OrchestratorExecution = NewOrchestratorExecutionClient(c.config)
	c.ProjectIdea = NewProjectIdeaClient(c.config)
	c.Stack = NewStackClient(c.config)
	c.Todo = NewTodoClient(c.config)
	c.UserMessage = NewUserMessageClient(c.config)
	c.WorkDetectionCache = NewWorkDetectionCacheClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                   ctx,
		config:                cfg,
		AgentState:            NewAgentStateClient(cfg),
		AgentTrace:            NewAgentTraceClient(cfg),
		Artifact:              NewArtifactClient(cfg),
		ExecutionGraph:        NewExecutionGraphClient(cfg),
		Message:               NewMessageClient(cfg),
		OrchestratorExecution: NewOrchestratorExecutionClient(cfg),
		ProjectIdea:           NewProjectIdeaClient(cfg),
		Stack:                 NewStackClient(cfg),
		Todo:                  NewTodoClient(cfg),
		UserMessage:           NewUserMessageClient(cfg),
		WorkDetectionCache:    NewWorkDetectionCacheClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                   ctx,
		config:                cfg,
		AgentState:            NewAgentStateClient(cfg),
		AgentTrace:            NewAgentTraceClient(cfg),
		Artifact:              NewArtifactClient(cfg),
		ExecutionGraph:        NewExecutionGraphClient(cfg),
		Message:               NewMessageClient(cfg),
		OrchestratorExecution: NewOrchestratorExecutionClient(cfg),
		ProjectIdea:           NewProjectIdeaClient(cfg),
		Stack:                 NewStackClient(cfg),
		Todo:                  NewTodoClient(cfg),
		UserMessage:           NewUserMessageClient(cfg),
		WorkDetectionCache:    NewWorkDetectionCacheClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentState.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AgentState, c.AgentTrace, c.Artifact, c.ExecutionGraph, c.Message,
		c.OrchestratorExecution, c.ProjectIdea, c.Stack, c.Todo, c.UserMessage,
		c.WorkDetectionCache,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentState, c.AgentTrace, c.Artifact, c.ExecutionGraph, c.Message,
		c.OrchestratorExecution, c.ProjectIdea, c.Stack, c.Todo, c.UserMessage,
		c.WorkDetectionCache,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentStateMutation:
		return c.AgentState.mutate(ctx, m)
	case *AgentTraceMutation:
		return c.AgentTrace.mutate(ctx, m)
	case *ArtifactMutation:
		return c.Artifact.mutate(ctx, m)
	case *ExecutionGraphMutation:
		return c.ExecutionGraph.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *OrchestratorExecutionMutation:
		return c.OrchestratorExecution.mutate(ctx, m)
	case *ProjectIdeaMutation:
		return c.ProjectIdea.mutate(ctx, m)
	case *StackMutation:
		return c.Stack.mutate(ctx, m)
	case *TodoMutation:
		return c.Todo.mutate(ctx, m)
	case *UserMessageMutation:
		return c.UserMessage.mutate(ctx, m)
	case *WorkDetectionCacheMutation:
		return c.WorkDetectionCache.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentStateClient is a client for the AgentState schema.
type AgentStateClient struct {
	config
}

// NewAgentStateClient returns a client for the AgentState from the given config.
func NewAgentStateClient(c config) *AgentStateClient {
	return &AgentStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentstate.Hooks(f(g(h())))`.
func (c *AgentStateClient) Use(hooks ...Hook) {
	c.hooks.AgentState = append(c.hooks.AgentState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentstate.Intercept(f(g(h())))`.
func (c *AgentStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentState = append(c.inters.AgentState, interceptors...)
}

// Create returns a builder for creating a AgentState entity.
func (c *AgentStateClient) Create() *AgentStateCreate {
	mutation := newAgentStateMutation(c.config, OpCreate)
	return &AgentStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentState entities.
func (c *AgentStateClient) CreateBulk(builders ...*AgentStateCreate) *AgentStateCreateBulk {
	return &AgentStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentStateClient) MapCreateBulk(slice any, setFunc func(*AgentStateCreate, int)) *AgentStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentStateCreateBulk{err: fmt.Errorf("calling to AgentStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentState.
func (c *AgentStateClient) Update() *AgentStateUpdate {
	mutation := newAgentStateMutation(c.config, OpUpdate)
	return &AgentStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentStateClient) UpdateOne(_m *AgentState) *AgentStateUpdateOne {
	mutation := newAgentStateMutation(c.config, OpUpdateOne, withAgentState(_m))
	return &AgentStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentStateClient) UpdateOneID(id string) *AgentStateUpdateOne {
	mutation := newAgentStateMutation(c.config, OpUpdateOne, withAgentStateID(id))
	return &AgentStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentState.
func (c *AgentStateClient) Delete() *AgentStateDelete {
	mutation := newAgentStateMutation(c.config, OpDelete)
	return &AgentStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentStateClient) DeleteOne(_m *AgentState) *AgentStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentStateClient) DeleteOneID(id string) *AgentStateDeleteOne {
	builder := c.Delete().Where(agentstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentStateDeleteOne{builder}
}

// Query returns a query builder for AgentState.
func (c *AgentStateClient) Query() *AgentStateQuery {
	return &AgentStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentState},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentState entity by its id.
func (c *AgentStateClient) Get(ctx context.Context, id string) (*AgentState, error) {
	return c.Query().Where(agentstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentStateClient) GetX(ctx context.Context, id string) *AgentState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStack queries the stack edge of a AgentState.
func (c *AgentStateClient) QueryStack(_m *AgentState) *StackQuery {
	query := (&StackClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentstate.Table, agentstate.FieldID, id),
			sqlgraph.To(stack.Table, stack.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentstate.StackTable, agentstate.StackColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentStateClient) Hooks() []Hook {
	return c.hooks.AgentState
}

// Interceptors returns the client interceptors.
func (c *AgentStateClient) Interceptors() []Interceptor {
	return c.inters.AgentState
}

func (c *AgentStateClient) mutate(ctx context.Context, m *AgentStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentState mutation op: %q", m.Op())
	}
}

// AgentTraceClient is a client for the AgentTrace schema.
type AgentTraceClient struct {
	config
}

// NewAgentTraceClient returns a client for the AgentTrace from the given config.
func NewAgentTraceClient(c config) *AgentTraceClient {
	return &AgentTraceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agenttrace.Hooks(f(g(h())))`.
func (c *AgentTraceClient) Use(hooks ...Hook) {
	c.hooks.AgentTrace = append(c.hooks.AgentTrace, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agenttrace.Intercept(f(g(h())))`.
func (c *AgentTraceClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentTrace = append(c.inters.AgentTrace, interceptors...)
}

// Create returns a builder for creating a AgentTrace entity.
func (c *AgentTraceClient) Create() *AgentTraceCreate {
	mutation := newAgentTraceMutation(c.config, OpCreate)
	return &AgentTraceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentTrace entities.
func (c *AgentTraceClient) CreateBulk(builders ...*AgentTraceCreate) *AgentTraceCreateBulk {
	return &AgentTraceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentTraceClient) MapCreateBulk(slice any, setFunc func(*AgentTraceCreate, int)) *AgentTraceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentTraceCreateBulk{err: fmt.Errorf("calling to AgentTraceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentTraceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentTraceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentTrace.
func (c *AgentTraceClient) Update() *AgentTraceUpdate {
	mutation := newAgentTraceMutation(c.config, OpUpdate)
	return &AgentTraceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentTraceClient) UpdateOne(_m *AgentTrace) *AgentTraceUpdateOne {
	mutation := newAgentTraceMutation(c.config, OpUpdateOne, withAgentTrace(_m))
	return &AgentTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentTraceClient) UpdateOneID(id string) *AgentTraceUpdateOne {
	mutation := newAgentTraceMutation(c.config, OpUpdateOne, withAgentTraceID(id))
	return &AgentTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentTrace.
func (c *AgentTraceClient) Delete() *AgentTraceDelete {
	mutation := newAgentTraceMutation(c.config, OpDelete)
	return &AgentTraceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentTraceClient) DeleteOne(_m *AgentTrace) *AgentTraceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentTraceClient) DeleteOneID(id string) *AgentTraceDeleteOne {
	builder := c.Delete().Where(agenttrace.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentTraceDeleteOne{builder}
}

// Query returns a query builder for AgentTrace.
func (c *AgentTraceClient) Query() *AgentTraceQuery {
	return &AgentTraceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentTrace},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentTrace entity by its id.
func (c *AgentTraceClient) Get(ctx context.Context, id string) (*AgentTrace, error) {
	return c.Query().Where(agenttrace.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentTraceClient) GetX(ctx context.Context, id string) *AgentTrace {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStack queries the stack edge of a AgentTrace.
func (c *AgentTraceClient) QueryStack(_m *AgentTrace) *StackQuery {
	query := (&StackClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agenttrace.Table, agenttrace.FieldID, id),
			sqlgraph.To(stack.Table, stack.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agenttrace.StackTable, agenttrace.StackColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentTraceClient) Hooks() []Hook {
	return c.hooks.AgentTrace
}

// Interceptors returns the client interceptors.
func (c *AgentTraceClient) Interceptors() []Interceptor {
	return c.inters.AgentTrace
}

func (c *AgentTraceClient) mutate(ctx context.Context, m *AgentTraceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentTraceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentTraceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentTraceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentTrace mutation op: %q", m.Op())
	}
}

// ArtifactClient is a client for the Artifact schema.
type ArtifactClient struct {
	config
}

// NewArtifactClient returns a client for the Artifact from the given config.
func NewArtifactClient(c config) *ArtifactClient {
	return &ArtifactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `artifact.Hooks(f(g(h())))`.
func (c *ArtifactClient) Use(hooks ...Hook) {
	c.hooks.Artifact = append(c.hooks.Artifact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `artifact.Intercept(f(g(h())))`.
func (c *ArtifactClient) Intercept(interceptors ...Interceptor) {
	c.inters.Artifact = append(c.inters.Artifact, interceptors...)
}

// Create returns a builder for creating a Artifact entity.
func (c *ArtifactClient) Create() *ArtifactCreate {
	mutation := newArtifactMutation(c.config, OpCreate)
	return &ArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Artifact entities.
func (c *ArtifactClient) CreateBulk(builders ...*ArtifactCreate) *ArtifactCreateBulk {
	return &ArtifactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ArtifactClient) MapCreateBulk(slice any, setFunc func(*ArtifactCreate, int)) *ArtifactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ArtifactCreateBulk{err: fmt.Errorf("calling to ArtifactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ArtifactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ArtifactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Artifact.
func (c *ArtifactClient) Update() *ArtifactUpdate {
	mutation := newArtifactMutation(c.config, OpUpdate)
	return &ArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ArtifactClient) UpdateOne(_m *Artifact) *ArtifactUpdateOne {
	mutation := newArtifactMutation(c.config, OpUpdateOne, withArtifact(_m))
	return &ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ArtifactClient) UpdateOneID(id string) *ArtifactUpdateOne {
	mutation := newArtifactMutation(c.config, OpUpdateOne, withArtifactID(id))
	return &ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Artifact.
func (c *ArtifactClient) Delete() *ArtifactDelete {
	mutation := newArtifactMutation(c.config, OpDelete)
	return &ArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ArtifactClient) DeleteOne(_m *Artifact) *ArtifactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ArtifactClient) DeleteOneID(id string) *ArtifactDeleteOne {
	builder := c.Delete().Where(artifact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ArtifactDeleteOne{builder}
}

// Query returns a query builder for Artifact.
func (c *ArtifactClient) Query() *ArtifactQuery {
	return &ArtifactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeArtifact},
		inters: c.Interceptors(),
	}
}

// Get returns a Artifact entity by its id.
func (c *ArtifactClient) Get(ctx context.Context, id string) (*Artifact, error) {
	return c.Query().Where(artifact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ArtifactClient) GetX(ctx context.Context, id string) *Artifact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStack queries the stack edge of a Artifact.
func (c *ArtifactClient) QueryStack(_m *Artifact) *StackQuery {
	query := (&StackClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(artifact.Table, artifact.FieldID, id),
			sqlgraph.To(stack.Table, stack.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, artifact.StackTable, artifact.StackColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ArtifactClient) Hooks() []Hook {
	return c.hooks.Artifact
}

// Interceptors returns the client interceptors.
func (c *ArtifactClient) Interceptors() []Interceptor {
	return c.inters.Artifact
}

func (c *ArtifactClient) mutate(ctx context.Context, m *ArtifactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Artifact mutation op: %q", m.Op())
	}
}

// ExecutionGraphClient is a client for the ExecutionGraph schema.
type ExecutionGraphClient struct {
	config
}

// NewExecutionGraphClient returns a client for the ExecutionGraph from the given config.
func NewExecutionGraphClient(c config) *ExecutionGraphClient {
	return &ExecutionGraphClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `executiongraph.Hooks(f(g(h())))`.
func (c *ExecutionGraphClient) Use(hooks ...Hook) {
	c.hooks.ExecutionGraph = append(c.hooks.ExecutionGraph, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `executiongraph.Intercept(f(g(h())))`.
func (c *ExecutionGraphClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExecutionGraph = append(c.inters.ExecutionGraph, interceptors...)
}

// Create returns a builder for creating a ExecutionGraph entity.
func (c *ExecutionGraphClient) Create() *ExecutionGraphCreate {
	mutation := newExecutionGraphMutation(c.config, OpCreate)
	return &ExecutionGraphCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExecutionGraph entities.
func (c *ExecutionGraphClient) CreateBulk(builders ...*ExecutionGraphCreate) *ExecutionGraphCreateBulk {
	return &ExecutionGraphCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutionGraphClient) MapCreateBulk(slice any, setFunc func(*ExecutionGraphCreate, int)) *ExecutionGraphCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutionGraphCreateBulk{err: fmt.Errorf("calling to ExecutionGraphClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutionGraphCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutionGraphCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExecutionGraph.
func (c *ExecutionGraphClient) Update() *ExecutionGraphUpdate {
	mutation := newExecutionGraphMutation(c.config, OpUpdate)
	return &ExecutionGraphUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutionGraphClient) UpdateOne(_m *ExecutionGraph) *ExecutionGraphUpdateOne {
	mutation := newExecutionGraphMutation(c.config, OpUpdateOne, withExecutionGraph(_m))
	return &ExecutionGraphUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutionGraphClient) UpdateOneID(id string) *ExecutionGraphUpdateOne {
	mutation := newExecutionGraphMutation(c.config, OpUpdateOne, withExecutionGraphID(id))
	return &ExecutionGraphUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExecutionGraph.
func (c *ExecutionGraphClient) Delete() *ExecutionGraphDelete {
	mutation := newExecutionGraphMutation(c.config, OpDelete)
	return &ExecutionGraphDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutionGraphClient) DeleteOne(_m *ExecutionGraph) *ExecutionGraphDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutionGraphClient) DeleteOneID(id string) *ExecutionGraphDeleteOne {
	builder := c.Delete().Where(executiongraph.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutionGraphDeleteOne{builder}
}

// Query returns a query builder for ExecutionGraph.
func (c *ExecutionGraphClient) Query() *ExecutionGraphQuery {
	return &ExecutionGraphQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecutionGraph},
		inters: c.Interceptors(),
	}
}

// Get returns a ExecutionGraph entity by its id.
func (c *ExecutionGraphClient) Get(ctx context.Context, id string) (*ExecutionGraph, error) {
	return c.Query().Where(executiongraph.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutionGraphClient) GetX(ctx context.Context, id string) *ExecutionGraph {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStack queries the stack edge of a ExecutionGraph.
func (c *ExecutionGraphClient) QueryStack(_m *ExecutionGraph) *StackQuery {
	query := (&StackClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(executiongraph.Table, executiongraph.FieldID, id),
			sqlgraph.To(stack.Table, stack.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, executiongraph.StackTable, executiongraph.StackColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExecutionGraphClient) Hooks() []Hook {
	return c.hooks.ExecutionGraph
}

// Interceptors returns the client interceptors.
func (c *ExecutionGraphClient) Interceptors() []Interceptor {
	return c.inters.ExecutionGraph
}

func (c *ExecutionGraphClient) mutate(ctx context.Context, m *ExecutionGraphMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutionGraphCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutionGraphUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutionGraphUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutionGraphDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExecutionGraph mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id string) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id string) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id string) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id string) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Message mutation op: %q", m.Op())
	}
}

// OrchestratorExecutionClient is a client for the OrchestratorExecution schema.
type OrchestratorExecutionClient struct {
	config
}

// NewOrchestratorExecutionClient returns a client for the OrchestratorExecution from the given config.
func NewOrchestratorExecutionClient(c config) *OrchestratorExecutionClient {
	return &OrchestratorExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orchestratorexecution.Hooks(f(g(h())))`.
func (c *OrchestratorExecutionClient) Use(hooks ...Hook) {
	c.hooks.OrchestratorExecution = append(c.hooks.OrchestratorExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orchestratorexecution.Intercept(f(g(h())))`.
func (c *OrchestratorExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrchestratorExecution = append(c.inters.OrchestratorExecution, interceptors...)
}

// Create returns a builder for creating a OrchestratorExecution entity.
func (c *OrchestratorExecutionClient) Create() *OrchestratorExecutionCreate {
	mutation := newOrchestratorExecutionMutation(c.config, OpCreate)
	return &OrchestratorExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrchestratorExecution entities.
func (c *OrchestratorExecutionClient) CreateBulk(builders ...*OrchestratorExecutionCreate) *OrchestratorExecutionCreateBulk {
	return &OrchestratorExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrchestratorExecutionClient) MapCreateBulk(slice any, setFunc func(*OrchestratorExecutionCreate, int)) *OrchestratorExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrchestratorExecutionCreateBulk{err: fmt.Errorf("calling to OrchestratorExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrchestratorExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrchestratorExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrchestratorExecution.
func (c *OrchestratorExecutionClient) Update() *OrchestratorExecutionUpdate {
	mutation := newOrchestratorExecutionMutation(c.config, OpUpdate)
	return &OrchestratorExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrchestratorExecutionClient) UpdateOne(_m *OrchestratorExecution) *OrchestratorExecutionUpdateOne {
	mutation := newOrchestratorExecutionMutation(c.config, OpUpdateOne, withOrchestratorExecution(_m))
	return &OrchestratorExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrchestratorExecutionClient) UpdateOneID(id string) *OrchestratorExecutionUpdateOne {
	mutation := newOrchestratorExecutionMutation(c.config, OpUpdateOne, withOrchestratorExecutionID(id))
	return &OrchestratorExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrchestratorExecution.
func (c *OrchestratorExecutionClient) Delete() *OrchestratorExecutionDelete {
	mutation := newOrchestratorExecutionMutation(c.config, OpDelete)
	return &OrchestratorExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrchestratorExecutionClient) DeleteOne(_m *OrchestratorExecution) *OrchestratorExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrchestratorExecutionClient) DeleteOneID(id string) *OrchestratorExecutionDeleteOne {
	builder := c.Delete().Where(orchestratorexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrchestratorExecutionDeleteOne{builder}
}

// Query returns a query builder for OrchestratorExecution.
func (c *OrchestratorExecutionClient) Query() *OrchestratorExecutionQuery {
	return &OrchestratorExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrchestratorExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a OrchestratorExecution entity by its id.
func (c *OrchestratorExecutionClient) Get(ctx context.Context, id string) (*OrchestratorExecution, error) {
	return c.Query().Where(orchestratorexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrchestratorExecutionClient) GetX(ctx context.Context, id string) *OrchestratorExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStack queries the stack edge of a OrchestratorExecution.
func (c *OrchestratorExecutionClient) QueryStack(_m *OrchestratorExecution) *StackQuery {
	query := (&StackClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(orchestratorexecution.Table, orchestratorexecution.FieldID, id),
			sqlgraph.To(stack.Table, stack.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, orchestratorexecution.StackTable, orchestratorexecution.StackColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrchestratorExecutionClient) Hooks() []Hook {
	return c.hooks.OrchestratorExecution
}

// Interceptors returns the client interceptors.
func (c *OrchestratorExecutionClient) Interceptors() []Interceptor {
	return c.inters.OrchestratorExecution
}

func (c *OrchestratorExecutionClient) mutate(ctx context.Context, m *OrchestratorExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrchestratorExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrchestratorExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrchestratorExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrchestratorExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrchestratorExecution mutation op: %q", m.Op())
	}
}

// ProjectIdeaClient is a client for the ProjectIdea schema.
type ProjectIdeaClient struct {
	config
}

// NewProjectIdeaClient returns a client for the ProjectIdea from the given config.
func NewProjectIdeaClient(c config) *ProjectIdeaClient {
	return &ProjectIdeaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `projectidea.Hooks(f(g(h())))`.
func (c *ProjectIdeaClient) Use(hooks ...Hook) {
	c.hooks.ProjectIdea = append(c.hooks.ProjectIdea, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `projectidea.Intercept(f(g(h())))`.
func (c *ProjectIdeaClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProjectIdea = append(c.inters.ProjectIdea, interceptors...)
}

// Create returns a builder for creating a ProjectIdea entity.
func (c *ProjectIdeaClient) Create() *ProjectIdeaCreate {
	mutation := newProjectIdeaMutation(c.config, OpCreate)
	return &ProjectIdeaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProjectIdea entities.
func (c *ProjectIdeaClient) CreateBulk(builders ...*ProjectIdeaCreate) *ProjectIdeaCreateBulk {
	return &ProjectIdeaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectIdeaClient) MapCreateBulk(slice any, setFunc func(*ProjectIdeaCreate, int)) *ProjectIdeaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectIdeaCreateBulk{err: fmt.Errorf("calling to ProjectIdeaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectIdeaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectIdeaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProjectIdea.
func (c *ProjectIdeaClient) Update() *ProjectIdeaUpdate {
	mutation := newProjectIdeaMutation(c.config, OpUpdate)
	return &ProjectIdeaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectIdeaClient) UpdateOne(_m *ProjectIdea) *ProjectIdeaUpdateOne {
	mutation := newProjectIdeaMutation(c.config, OpUpdateOne, withProjectIdea(_m))
	return &ProjectIdeaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectIdeaClient) UpdateOneID(id string) *ProjectIdeaUpdateOne {
	mutation := newProjectIdeaMutation(c.config, OpUpdateOne, withProjectIdeaID(id))
	return &ProjectIdeaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProjectIdea.
func (c *ProjectIdeaClient) Delete() *ProjectIdeaDelete {
	mutation := newProjectIdeaMutation(c.config, OpDelete)
	return &ProjectIdeaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectIdeaClient) DeleteOne(_m *ProjectIdea) *ProjectIdeaDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectIdeaClient) DeleteOneID(id string) *ProjectIdeaDeleteOne {
	builder := c.Delete().Where(projectidea.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectIdeaDeleteOne{builder}
}

// Query returns a query builder for ProjectIdea.
func (c *ProjectIdeaClient) Query() *ProjectIdeaQuery {
	return &ProjectIdeaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProjectIdea},
		inters: c.Interceptors(),
	}
}

// Get returns a ProjectIdea entity by its id.
func (c *ProjectIdeaClient) Get(ctx context.Context, id string) (*ProjectIdea, error) {
	return c.Query().Where(projectidea.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectIdeaClient) GetX(ctx context.Context, id string) *ProjectIdea {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStack queries the stack edge of a ProjectIdea.
func (c *ProjectIdeaClient) QueryStack(_m *ProjectIdea) *StackQuery {
	query := (&StackClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(projectidea.Table, projectidea.FieldID, id),
			sqlgraph.To(stack.Table, stack.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, projectidea.StackTable, projectidea.StackColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectIdeaClient) Hooks() []Hook {
	return c.hooks.ProjectIdea
}

// Interceptors returns the client interceptors.
func (c *ProjectIdeaClient) Interceptors() []Interceptor {
	return c.inters.ProjectIdea
}

func (c *ProjectIdeaClient) mutate(ctx context.Context, m *ProjectIdeaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectIdeaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectIdeaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectIdeaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectIdeaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProjectIdea mutation op: %q", m.Op())
	}
}

// StackClient is a client for the Stack schema.
type StackClient struct {
	config
}

// NewStackClient returns a client for the Stack from the given config.
func NewStackClient(c config) *StackClient {
	return &StackClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stack.Hooks(f(g(h())))`.
func (c *StackClient) Use(hooks ...Hook) {
	c.hooks.Stack = append(c.hooks.Stack, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stack.Intercept(f(g(h())))`.
func (c *StackClient) Intercept(interceptors ...Interceptor) {
	c.inters.Stack = append(c.inters.Stack, interceptors...)
}

// Create returns a builder for creating a Stack entity.
func (c *StackClient) Create() *StackCreate {
	mutation := newStackMutation(c.config, OpCreate)
	return &StackCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Stack entities.
func (c *StackClient) CreateBulk(builders ...*StackCreate) *StackCreateBulk {
	return &StackCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StackClient) MapCreateBulk(slice any, setFunc func(*StackCreate, int)) *StackCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StackCreateBulk{err: fmt.Errorf("calling to StackClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StackCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StackCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Stack.
func (c *StackClient) Update() *StackUpdate {
	mutation := newStackMutation(c.config, OpUpdate)
	return &StackUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StackClient) UpdateOne(_m *Stack) *StackUpdateOne {
	mutation := newStackMutation(c.config, OpUpdateOne, withStack(_m))
	return &StackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StackClient) UpdateOneID(id string) *StackUpdateOne {
	mutation := newStackMutation(c.config, OpUpdateOne, withStackID(id))
	return &StackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Stack.
func (c *StackClient) Delete() *StackDelete {
	mutation := newStackMutation(c.config, OpDelete)
	return &StackDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StackClient) DeleteOne(_m *Stack) *StackDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StackClient) DeleteOneID(id string) *StackDeleteOne {
	builder := c.Delete().Where(stack.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StackDeleteOne{builder}
}

// Query returns a query builder for Stack.
func (c *StackClient) Query() *StackQuery {
	return &StackQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStack},
		inters: c.Interceptors(),
	}
}

// Get returns a Stack entity by its id.
func (c *StackClient) Get(ctx context.Context, id string) (*Stack, error) {
	return c.Query().Where(stack.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StackClient) GetX(ctx context.Context, id string) *Stack {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgentStates queries the agent_states edge of a Stack.
func (c *StackClient) QueryAgentStates(_m *Stack) *AgentStateQuery {
	query := (&AgentStateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stack.Table, stack.FieldID, id),
			sqlgraph.To(agentstate.Table, agentstate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stack.AgentStatesTable, stack.AgentStatesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProjectIdea queries the project_idea edge of a Stack.
func (c *StackClient) QueryProjectIdea(_m *Stack) *ProjectIdeaQuery {
	query := (&ProjectIdeaClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stack.Table, stack.FieldID, id),
			sqlgraph.To(projectidea.Table, projectidea.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, stack.ProjectIdeaTable, stack.ProjectIdeaColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTodos queries the todos edge of a Stack.
func (c *StackClient) QueryTodos(_m *Stack) *TodoQuery {
	query := (&TodoClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stack.Table, stack.FieldID, id),
			sqlgraph.To(todo.Table, todo.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stack.TodosTable, stack.TodosColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryArtifacts queries the artifacts edge of a Stack.
func (c *StackClient) QueryArtifacts(_m *Stack) *ArtifactQuery {
	query := (&ArtifactClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stack.Table, stack.FieldID, id),
			sqlgraph.To(artifact.Table, artifact.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stack.ArtifactsTable, stack.ArtifactsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTraces queries the traces edge of a Stack.
func (c *StackClient) QueryTraces(_m *Stack) *AgentTraceQuery {
	query := (&AgentTraceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stack.Table, stack.FieldID, id),
			sqlgraph.To(agenttrace.Table, agenttrace.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stack.TracesTable, stack.TracesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUserMessages queries the user_messages edge of a Stack.
func (c *StackClient) QueryUserMessages(_m *Stack) *UserMessageQuery {
	query := (&UserMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stack.Table, stack.FieldID, id),
			sqlgraph.To(usermessage.Table, usermessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stack.UserMessagesTable, stack.UserMessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOrchestratorExecutions queries the orchestrator_executions edge of a Stack.
func (c *StackClient) QueryOrchestratorExecutions(_m *Stack) *OrchestratorExecutionQuery {
	query := (&OrchestratorExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stack.Table, stack.FieldID, id),
			sqlgraph.To(orchestratorexecution.Table, orchestratorexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stack.OrchestratorExecutionsTable, stack.OrchestratorExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExecutionGraphs queries the execution_graphs edge of a Stack.
func (c *StackClient) QueryExecutionGraphs(_m *Stack) *ExecutionGraphQuery {
	query := (&ExecutionGraphClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stack.Table, stack.FieldID, id),
			sqlgraph.To(executiongraph.Table, executiongraph.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stack.ExecutionGraphsTable, stack.ExecutionGraphsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWorkDetectionCache queries the work_detection_cache edge of a Stack.
func (c *StackClient) QueryWorkDetectionCache(_m *Stack) *WorkDetectionCacheQuery {
	query := (&WorkDetectionCacheClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stack.Table, stack.FieldID, id),
			sqlgraph.To(workdetectioncache.Table, workdetectioncache.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, stack.WorkDetectionCacheTable, stack.WorkDetectionCacheColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StackClient) Hooks() []Hook {
	return c.hooks.Stack
}

// Interceptors returns the client interceptors.
func (c *StackClient) Interceptors() []Interceptor {
	return c.inters.Stack
}

func (c *StackClient) mutate(ctx context.Context, m *StackMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StackCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StackUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StackDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Stack mutation op: %q", m.Op())
	}
}

// TodoClient is a client for the Todo schema.
type TodoClient struct {
	config
}

// NewTodoClient returns a client for the Todo from the given config.
func NewTodoClient(c config) *TodoClient {
	return &TodoClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `todo.Hooks(f(g(h())))`.
func (c *TodoClient) Use(hooks ...Hook) {
	c.hooks.Todo = append(c.hooks.Todo, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `todo.Intercept(f(g(h())))`.
func (c *TodoClient) Intercept(interceptors ...Interceptor) {
	c.inters.Todo = append(c.inters.Todo, interceptors...)
}

// Create returns a builder for creating a Todo entity.
func (c *TodoClient) Create() *TodoCreate {
	mutation := newTodoMutation(c.config, OpCreate)
	return &TodoCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Todo entities.
func (c *TodoClient) CreateBulk(builders ...*TodoCreate) *TodoCreateBulk {
	return &TodoCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TodoClient) MapCreateBulk(slice any, setFunc func(*TodoCreate, int)) *TodoCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TodoCreateBulk{err: fmt.Errorf("calling to TodoClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TodoCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TodoCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Todo.
func (c *TodoClient) Update() *TodoUpdate {
	mutation := newTodoMutation(c.config, OpUpdate)
	return &TodoUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TodoClient) UpdateOne(_m *Todo) *TodoUpdateOne {
	mutation := newTodoMutation(c.config, OpUpdateOne, withTodo(_m))
	return &TodoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TodoClient) UpdateOneID(id string) *TodoUpdateOne {
	mutation := newTodoMutation(c.config, OpUpdateOne, withTodoID(id))
	return &TodoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Todo.
func (c *TodoClient) Delete() *TodoDelete {
	mutation := newTodoMutation(c.config, OpDelete)
	return &TodoDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TodoClient) DeleteOne(_m *Todo) *TodoDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TodoClient) DeleteOneID(id string) *TodoDeleteOne {
	builder := c.Delete().Where(todo.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TodoDeleteOne{builder}
}

// Query returns a query builder for Todo.
func (c *TodoClient) Query() *TodoQuery {
	return &TodoQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTodo},
		inters: c.Interceptors(),
	}
}

// Get returns a Todo entity by its id.
func (c *TodoClient) Get(ctx context.Context, id string) (*Todo, error) {
	return c.Query().Where(todo.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TodoClient) GetX(ctx context.Context, id string) *Todo {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStack queries the stack edge of a Todo.
func (c *TodoClient) QueryStack(_m *Todo) *StackQuery {
	query := (&StackClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(todo.Table, todo.FieldID, id),
			sqlgraph.To(stack.Table, stack.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, todo.StackTable, todo.StackColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TodoClient) Hooks() []Hook {
	return c.hooks.Todo
}

// Interceptors returns the client interceptors.
func (c *TodoClient) Interceptors() []Interceptor {
	return c.inters.Todo
}

func (c *TodoClient) mutate(ctx context.Context, m *TodoMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TodoCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TodoUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TodoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TodoDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Todo mutation op: %q", m.Op())
	}
}

// UserMessageClient is a client for the UserMessage schema.
type UserMessageClient struct {
	config
}

// NewUserMessageClient returns a client for the UserMessage from the given config.
func NewUserMessageClient(c config) *UserMessageClient {
	return &UserMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usermessage.Hooks(f(g(h())))`.
func (c *UserMessageClient) Use(hooks ...Hook) {
	c.hooks.UserMessage = append(c.hooks.UserMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usermessage.Intercept(f(g(h())))`.
func (c *UserMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserMessage = append(c.inters.UserMessage, interceptors...)
}

// Create returns a builder for creating a UserMessage entity.
func (c *UserMessageClient) Create() *UserMessageCreate {
	mutation := newUserMessageMutation(c.config, OpCreate)
	return &UserMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserMessage entities.
func (c *UserMessageClient) CreateBulk(builders ...*UserMessageCreate) *UserMessageCreateBulk {
	return &UserMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserMessageClient) MapCreateBulk(slice any, setFunc func(*UserMessageCreate, int)) *UserMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserMessageCreateBulk{err: fmt.Errorf("calling to UserMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserMessage.
func (c *UserMessageClient) Update() *UserMessageUpdate {
	mutation := newUserMessageMutation(c.config, OpUpdate)
	return &UserMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserMessageClient) UpdateOne(_m *UserMessage) *UserMessageUpdateOne {
	mutation := newUserMessageMutation(c.config, OpUpdateOne, withUserMessage(_m))
	return &UserMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserMessageClient) UpdateOneID(id string) *UserMessageUpdateOne {
	mutation := newUserMessageMutation(c.config, OpUpdateOne, withUserMessageID(id))
	return &UserMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserMessage.
func (c *UserMessageClient) Delete() *UserMessageDelete {
	mutation := newUserMessageMutation(c.config, OpDelete)
	return &UserMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserMessageClient) DeleteOne(_m *UserMessage) *UserMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserMessageClient) DeleteOneID(id string) *UserMessageDeleteOne {
	builder := c.Delete().Where(usermessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserMessageDeleteOne{builder}
}

// Query returns a query builder for UserMessage.
func (c *UserMessageClient) Query() *UserMessageQuery {
	return &UserMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a UserMessage entity by its id.
func (c *UserMessageClient) Get(ctx context.Context, id string) (*UserMessage, error) {
	return c.Query().Where(usermessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserMessageClient) GetX(ctx context.Context, id string) *UserMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStack queries the stack edge of a UserMessage.
func (c *UserMessageClient) QueryStack(_m *UserMessage) *StackQuery {
	query := (&StackClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usermessage.Table, usermessage.FieldID, id),
			sqlgraph.To(stack.Table, stack.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, usermessage.StackTable, usermessage.StackColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserMessageClient) Hooks() []Hook {
	return c.hooks.UserMessage
}

// Interceptors returns the client interceptors.
func (c *UserMessageClient) Interceptors() []Interceptor {
	return c.inters.UserMessage
}

func (c *UserMessageClient) mutate(ctx context.Context, m *UserMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserMessage mutation op: %q", m.Op())
	}
}

// WorkDetectionCacheClient is a client for the WorkDetectionCache schema.
type WorkDetectionCacheClient struct {
	config
}

// NewWorkDetectionCacheClient returns a client for the WorkDetectionCache from the given config.
func NewWorkDetectionCacheClient(c config) *WorkDetectionCacheClient {
	return &WorkDetectionCacheClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workdetectioncache.Hooks(f(g(h())))`.
func (c *WorkDetectionCacheClient) Use(hooks ...Hook) {
	c.hooks.WorkDetectionCache = append(c.hooks.WorkDetectionCache, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workdetectioncache.Intercept(f(g(h())))`.
func (c *WorkDetectionCacheClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkDetectionCache = append(c.inters.WorkDetectionCache, interceptors...)
}

// Create returns a builder for creating a WorkDetectionCache entity.
func (c *WorkDetectionCacheClient) Create() *WorkDetectionCacheCreate {
	mutation := newWorkDetectionCacheMutation(c.config, OpCreate)
	return &WorkDetectionCacheCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkDetectionCache entities.
func (c *WorkDetectionCacheClient) CreateBulk(builders ...*WorkDetectionCacheCreate) *WorkDetectionCacheCreateBulk {
	return &WorkDetectionCacheCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkDetectionCacheClient) MapCreateBulk(slice any, setFunc func(*WorkDetectionCacheCreate, int)) *WorkDetectionCacheCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkDetectionCacheCreateBulk{err: fmt.Errorf("calling to WorkDetectionCacheClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkDetectionCacheCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkDetectionCacheCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkDetectionCache.
func (c *WorkDetectionCacheClient) Update() *WorkDetectionCacheUpdate {
	mutation := newWorkDetectionCacheMutation(c.config, OpUpdate)
	return &WorkDetectionCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkDetectionCacheClient) UpdateOne(_m *WorkDetectionCache) *WorkDetectionCacheUpdateOne {
	mutation := newWorkDetectionCacheMutation(c.config, OpUpdateOne, withWorkDetectionCache(_m))
	return &WorkDetectionCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkDetectionCacheClient) UpdateOneID(id string) *WorkDetectionCacheUpdateOne {
	mutation := newWorkDetectionCacheMutation(c.config, OpUpdateOne, withWorkDetectionCacheID(id))
	return &WorkDetectionCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkDetectionCache.
func (c *WorkDetectionCacheClient) Delete() *WorkDetectionCacheDelete {
	mutation := newWorkDetectionCacheMutation(c.config, OpDelete)
	return &WorkDetectionCacheDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkDetectionCacheClient) DeleteOne(_m *WorkDetectionCache) *WorkDetectionCacheDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkDetectionCacheClient) DeleteOneID(id string) *WorkDetectionCacheDeleteOne {
	builder := c.Delete().Where(workdetectioncache.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkDetectionCacheDeleteOne{builder}
}

// Query returns a query builder for WorkDetectionCache.
func (c *WorkDetectionCacheClient) Query() *WorkDetectionCacheQuery {
	return &WorkDetectionCacheQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkDetectionCache},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkDetectionCache entity by its id.
func (c *WorkDetectionCacheClient) Get(ctx context.Context, id string) (*WorkDetectionCache, error) {
	return c.Query().Where(workdetectioncache.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkDetectionCacheClient) GetX(ctx context.Context, id string) *WorkDetectionCache {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStack queries the stack edge of a WorkDetectionCache.
func (c *WorkDetectionCacheClient) QueryStack(_m *WorkDetectionCache) *StackQuery {
	query := (&StackClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workdetectioncache.Table, workdetectioncache.FieldID, id),
			sqlgraph.To(stack.Table, stack.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, workdetectioncache.StackTable, workdetectioncache.StackColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkDetectionCacheClient) Hooks() []Hook {
	return c.hooks.WorkDetectionCache
}

// Interceptors returns the client interceptors.
func (c *WorkDetectionCacheClient) Interceptors() []Interceptor {
	return c.inters.WorkDetectionCache
}

func (c *WorkDetectionCacheClient) mutate(ctx context.Context, m *WorkDetectionCacheMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkDetectionCacheCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkDetectionCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkDetectionCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkDetectionCacheDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkDetectionCache mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentState, AgentTrace, Artifact, ExecutionGraph, Message,
		OrchestratorExecution, ProjectIdea, Stack, Todo, UserMessage,
		WorkDetectionCache []ent.Hook
	}
	inters struct {
		AgentState, AgentTrace, Artifact, ExecutionGraph, Message,
		OrchestratorExecution, ProjectIdea, Stack, Todo, UserMessage,
		WorkDetectionCache []ent.Interceptor
	}
)
