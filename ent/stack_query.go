// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
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

// StackQuery is the builder for querying Stack entities.
type StackQuery struct {
	config
	ctx                        *QueryContext
	order                      []stack.OrderOption
	inters                     []Interceptor
	predicates                 []predicate.Stack
	withAgentStates            *AgentStateQuery
	withProjectIdea            *ProjectIdeaQuery
	withTodos                  *TodoQuery
	withArtifacts              *ArtifactQuery
	withTraces                 *AgentTraceQuery
	withUserMessages           *UserMessageQuery
	withOrchestratorExecutions *OrchestratorExecutionQuery
	withExecutionGraphs        *ExecutionGraphQuery
	withWorkDetectionCache     *WorkDetectionCacheQuery
	modifiers                  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the StackQuery builder.
func (_q *StackQuery) Where(ps ...predicate.Stack) *StackQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *StackQuery) Limit(limit int) *StackQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *StackQuery) Offset(offset int) *StackQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *StackQuery) Unique(unique bool) *StackQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *StackQuery) Order(o ...stack.OrderOption) *StackQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAgentStates chains the current query on the "agent_states" edge.
func (_q *StackQuery) QueryAgentStates() *AgentStateQuery {
	query := (&AgentStateClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(stack.Table, stack.FieldID, selector),
			sqlgraph.To(agentstate.Table, agentstate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stack.AgentStatesTable, stack.AgentStatesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryProjectIdea chains the current query on the "project_idea" edge.
func (_q *StackQuery) QueryProjectIdea() *ProjectIdeaQuery {
	query := (&ProjectIdeaClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(stack.Table, stack.FieldID, selector),
			sqlgraph.To(projectidea.Table, projectidea.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, stack.ProjectIdeaTable, stack.ProjectIdeaColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTodos chains the current query on the "todos" edge.
func (_q *StackQuery) QueryTodos() *TodoQuery {
	query := (&TodoClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(stack.Table, stack.FieldID, selector),
			sqlgraph.To(todo.Table, todo.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stack.TodosTable, stack.TodosColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryArtifacts chains the current query on the "artifacts" edge.
func (_q *StackQuery) QueryArtifacts() *ArtifactQuery {
	query := (&ArtifactClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(stack.Table, stack.FieldID, selector),
			sqlgraph.To(artifact.Table, artifact.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stack.ArtifactsTable, stack.ArtifactsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTraces chains the current query on the "traces" edge.
func (_q *StackQuery) QueryTraces() *AgentTraceQuery {
	query := (&AgentTraceClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(stack.Table, stack.FieldID, selector),
			sqlgraph.To(agenttrace.Table, agenttrace.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stack.TracesTable, stack.TracesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryUserMessages chains the current query on the "user_messages" edge.
func (_q *StackQuery) QueryUserMessages() *UserMessageQuery {
	query := (&UserMessageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(stack.Table, stack.FieldID, selector),
			sqlgraph.To(usermessage.Table, usermessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stack.UserMessagesTable, stack.UserMessagesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOrchestratorExecutions chains the current query on the "orchestrator_executions" edge.
func (_q *StackQuery) QueryOrchestratorExecutions() *OrchestratorExecutionQuery {
	query := (&OrchestratorExecutionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(stack.Table, stack.FieldID, selector),
			sqlgraph.To(orchestratorexecution.Table, orchestratorexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stack.OrchestratorExecutionsTable, stack.OrchestratorExecutionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryExecutionGraphs chains the current query on the "execution_graphs" edge.
func (_q *StackQuery) QueryExecutionGraphs() *ExecutionGraphQuery {
	query := (&ExecutionGraphClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(stack.Table, stack.FieldID, selector),
			sqlgraph.To(executiongraph.Table, executiongraph.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stack.ExecutionGraphsTable, stack.ExecutionGraphsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryWorkDetectionCache chains the current query on the "work_detection_cache" edge.
func (_q *StackQuery) QueryWorkDetectionCache() *WorkDetectionCacheQuery {
	query := (&WorkDetectionCacheClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(stack.Table, stack.FieldID, selector),
			sqlgraph.To(workdetectioncache.Table, workdetectioncache.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, stack.WorkDetectionCacheTable, stack.WorkDetectionCacheColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Stack entity from the query.
// Returns a *NotFoundError when no Stack was found.
func (_q *StackQuery) First(ctx context.Context) (*Stack, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{stack.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *StackQuery) FirstX(ctx context.Context) *Stack {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Stack ID from the query.
// Returns a *NotFoundError when no Stack ID was found.
func (_q *StackQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{stack.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *StackQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Stack entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Stack entity is found.
// Returns a *NotFoundError when no Stack entities are found.
func (_q *StackQuery) Only(ctx context.Context) (*Stack, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{stack.Label}
	default:
		return nil, &NotSingularError{stack.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *StackQuery) OnlyX(ctx context.Context) *Stack {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Stack ID in the query.
// Returns a *NotSingularError when more than one Stack ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *StackQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{stack.Label}
	default:
		err = &NotSingularError{stack.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *StackQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Stacks.
func (_q *StackQuery) All(ctx context.Context) ([]*Stack, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Stack, *StackQuery]()
	return withInterceptors[[]*Stack](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *StackQuery) AllX(ctx context.Context) []*Stack {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Stack IDs.
func (_q *StackQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(stack.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *StackQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *StackQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*StackQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *StackQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *StackQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *StackQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the StackQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *StackQuery) Clone() *StackQuery {
	if _q == nil {
		return nil
	}
	return &StackQuery{
		config:                     _q.config,
		ctx:                        _q.ctx.Clone(),
		order:                      append([]stack.OrderOption{}, _q.order...),
		inters:                     append([]Interceptor{}, _q.inters...),
		predicates:                 append([]predicate.Stack{}, _q.predicates...),
		withAgentStates:            _q.withAgentStates.Clone(),
		withProjectIdea:            _q.withProjectIdea.Clone(),
		withTodos:                  _q.withTodos.Clone(),
		withArtifacts:              _q.withArtifacts.Clone(),
		withTraces:                 _q.withTraces.Clone(),
		withUserMessages:           _q.withUserMessages.Clone(),
		withOrchestratorExecutions: _q.withOrchestratorExecutions.Clone(),
		withExecutionGraphs:        _q.withExecutionGraphs.Clone(),
		withWorkDetectionCache:     _q.withWorkDetectionCache.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAgentStates tells the query-builder to eager-load the nodes that are connected to
// the "agent_states" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *StackQuery) WithAgentStates(opts ...func(*AgentStateQuery)) *StackQuery {
	query := (&AgentStateClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAgentStates = query
	return _q
}

// WithProjectIdea tells the query-builder to eager-load the nodes that are connected to
// the "project_idea" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *StackQuery) WithProjectIdea(opts ...func(*ProjectIdeaQuery)) *StackQuery {
	query := (&ProjectIdeaClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withProjectIdea = query
	return _q
}

// WithTodos tells the query-builder to eager-load the nodes that are connected to
// the "todos" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *StackQuery) WithTodos(opts ...func(*TodoQuery)) *StackQuery {
	query := (&TodoClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTodos = query
	return _q
}

// WithArtifacts tells the query-builder to eager-load the nodes that are connected to
// the "artifacts" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *StackQuery) WithArtifacts(opts ...func(*ArtifactQuery)) *StackQuery {
	query := (&ArtifactClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withArtifacts = query
	return _q
}

// WithTraces tells the query-builder to eager-load the nodes that are connected to
// the "traces" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *StackQuery) WithTraces(opts ...func(*AgentTraceQuery)) *StackQuery {
	query := (&AgentTraceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTraces = query
	return _q
}

// WithUserMessages tells the query-builder to eager-load the nodes that are connected to
// the "user_messages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *StackQuery) WithUserMessages(opts ...func(*UserMessageQuery)) *StackQuery {
	query := (&UserMessageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUserMessages = query
	return _q
}

// WithOrchestratorExecutions tells the query-builder to eager-load the nodes that are connected to
// the "orchestrator_executions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *StackQuery) WithOrchestratorExecutions(opts ...func(*OrchestratorExecutionQuery)) *StackQuery {
	query := (&OrchestratorExecutionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOrchestratorExecutions = query
	return _q
}

// WithExecutionGraphs tells the query-builder to eager-load the nodes that are connected to
// the "execution_graphs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *StackQuery) WithExecutionGraphs(opts ...func(*ExecutionGraphQuery)) *StackQuery {
	query := (&ExecutionGraphClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExecutionGraphs = query
	return _q
}

// WithWorkDetectionCache tells the query-builder to eager-load the nodes that are connected to
// the "work_detection_cache" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *StackQuery) WithWorkDetectionCache(opts ...func(*WorkDetectionCacheQuery)) *StackQuery {
	query := (&WorkDetectionCacheClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withWorkDetectionCache = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ParticipantName string `json:"participant_name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Stack.Query().
//		GroupBy(stack.FieldParticipantName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *StackQuery) GroupBy(field string, fields ...string) *StackGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &StackGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = stack.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ParticipantName string `json:"participant_name,omitempty"`
//	}
//
//	client.Stack.Query().
//		Select(stack.FieldParticipantName).
//		Scan(ctx, &v)
func (_q *StackQuery) Select(fields ...string) *StackSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &StackSelect{StackQuery: _q}
	sbuild.label = stack.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a StackSelect configured with the given aggregations.
func (_q *StackQuery) Aggregate(fns ...AggregateFunc) *StackSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *StackQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !stack.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *StackQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Stack, error) {
	var (
		nodes       = []*Stack{}
		_spec       = _q.querySpec()
		loadedTypes = [9]bool{
			_q.withAgentStates != nil,
			_q.withProjectIdea != nil,
			_q.withTodos != nil,
			_q.withArtifacts != nil,
			_q.withTraces != nil,
			_q.withUserMessages != nil,
			_q.withOrchestratorExecutions != nil,
			_q.withExecutionGraphs != nil,
			_q.withWorkDetectionCache != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Stack).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Stack{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withAgentStates; query != nil {
		if err := _q.loadAgentStates(ctx, query, nodes,
			func(n *Stack) { n.Edges.AgentStates = []*AgentState{} },
			func(n *Stack, e *AgentState) { n.Edges.AgentStates = append(n.Edges.AgentStates, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withProjectIdea; query != nil {
		if err := _q.loadProjectIdea(ctx, query, nodes, nil,
			func(n *Stack, e *ProjectIdea) { n.Edges.ProjectIdea = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTodos; query != nil {
		if err := _q.loadTodos(ctx, query, nodes,
			func(n *Stack) { n.Edges.Todos = []*Todo{} },
			func(n *Stack, e *Todo) { n.Edges.Todos = append(n.Edges.Todos, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withArtifacts; query != nil {
		if err := _q.loadArtifacts(ctx, query, nodes,
			func(n *Stack) { n.Edges.Artifacts = []*Artifact{} },
			func(n *Stack, e *Artifact) { n.Edges.Artifacts = append(n.Edges.Artifacts, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTraces; query != nil {
		if err := _q.loadTraces(ctx, query, nodes,
			func(n *Stack) { n.Edges.Traces = []*AgentTrace{} },
			func(n *Stack, e *AgentTrace) { n.Edges.Traces = append(n.Edges.Traces, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withUserMessages; query != nil {
		if err := _q.loadUserMessages(ctx, query, nodes,
			func(n *Stack) { n.Edges.UserMessages = []*UserMessage{} },
			func(n *Stack, e *UserMessage) { n.Edges.UserMessages = append(n.Edges.UserMessages, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withOrchestratorExecutions; query != nil {
		if err := _q.loadOrchestratorExecutions(ctx, query, nodes,
			func(n *Stack) { n.Edges.OrchestratorExecutions = []*OrchestratorExecution{} },
			func(n *Stack, e *OrchestratorExecution) {
				n.Edges.OrchestratorExecutions = append(n.Edges.OrchestratorExecutions, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withExecutionGraphs; query != nil {
		if err := _q.loadExecutionGraphs(ctx, query, nodes,
			func(n *Stack) { n.Edges.ExecutionGraphs = []*ExecutionGraph{} },
			func(n *Stack, e *ExecutionGraph) { n.Edges.ExecutionGraphs = append(n.Edges.ExecutionGraphs, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withWorkDetectionCache; query != nil {
		if err := _q.loadWorkDetectionCache(ctx, query, nodes, nil,
			func(n *Stack, e *WorkDetectionCache) { n.Edges.WorkDetectionCache = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *StackQuery) loadAgentStates(ctx context.Context, query *AgentStateQuery, nodes []*Stack, init func(*Stack), assign func(*Stack, *AgentState)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Stack)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(agentstate.FieldStackID)
	}
	query.Where(predicate.AgentState(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(stack.AgentStatesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.StackID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "stack_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *StackQuery) loadProjectIdea(ctx context.Context, query *ProjectIdeaQuery, nodes []*Stack, init func(*Stack), assign func(*Stack, *ProjectIdea)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Stack)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(projectidea.FieldStackID)
	}
	query.Where(predicate.ProjectIdea(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(stack.ProjectIdeaColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.StackID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "stack_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *StackQuery) loadTodos(ctx context.Context, query *TodoQuery, nodes []*Stack, init func(*Stack), assign func(*Stack, *Todo)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Stack)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(todo.FieldStackID)
	}
	query.Where(predicate.Todo(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(stack.TodosColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.StackID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "stack_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *StackQuery) loadArtifacts(ctx context.Context, query *ArtifactQuery, nodes []*Stack, init func(*Stack), assign func(*Stack, *Artifact)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Stack)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(artifact.FieldStackID)
	}
	query.Where(predicate.Artifact(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(stack.ArtifactsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.StackID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "stack_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *StackQuery) loadTraces(ctx context.Context, query *AgentTraceQuery, nodes []*Stack, init func(*Stack), assign func(*Stack, *AgentTrace)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Stack)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(agenttrace.FieldStackID)
	}
	query.Where(predicate.AgentTrace(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(stack.TracesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.StackID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "stack_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *StackQuery) loadUserMessages(ctx context.Context, query *UserMessageQuery, nodes []*Stack, init func(*Stack), assign func(*Stack, *UserMessage)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Stack)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(usermessage.FieldTeamID)
	}
	query.Where(predicate.UserMessage(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(stack.UserMessagesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TeamID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "team_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *StackQuery) loadOrchestratorExecutions(ctx context.Context, query *OrchestratorExecutionQuery, nodes []*Stack, init func(*Stack), assign func(*Stack, *OrchestratorExecution)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Stack)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(orchestratorexecution.FieldStackID)
	}
	query.Where(predicate.OrchestratorExecution(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(stack.OrchestratorExecutionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.StackID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "stack_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *StackQuery) loadExecutionGraphs(ctx context.Context, query *ExecutionGraphQuery, nodes []*Stack, init func(*Stack), assign func(*Stack, *ExecutionGraph)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Stack)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(executiongraph.FieldStackID)
	}
	query.Where(predicate.ExecutionGraph(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(stack.ExecutionGraphsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.StackID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "stack_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *StackQuery) loadWorkDetectionCache(ctx context.Context, query *WorkDetectionCacheQuery, nodes []*Stack, init func(*Stack), assign func(*Stack, *WorkDetectionCache)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Stack)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(workdetectioncache.FieldStackID)
	}
	query.Where(predicate.WorkDetectionCache(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(stack.WorkDetectionCacheColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.StackID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "stack_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *StackQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *StackQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(stack.Table, stack.Columns, sqlgraph.NewFieldSpec(stack.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stack.FieldID)
		for i := range fields {
			if fields[i] != stack.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *StackQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(stack.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = stack.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *StackQuery) ForUpdate(opts ...sql.LockOption) *StackQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *StackQuery) ForShare(opts ...sql.LockOption) *StackQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// StackGroupBy is the group-by builder for Stack entities.
type StackGroupBy struct {
	selector
	build *StackQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *StackGroupBy) Aggregate(fns ...AggregateFunc) *StackGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *StackGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*StackQuery, *StackGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *StackGroupBy) sqlScan(ctx context.Context, root *StackQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// StackSelect is the builder for selecting fields of Stack entities.
type StackSelect struct {
	*StackQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *StackSelect) Aggregate(fns ...AggregateFunc) *StackSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *StackSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*StackQuery, *StackSelect](ctx, _s.StackQuery, _s, _s.inters, v)
}

func (_s *StackSelect) sqlScan(ctx context.Context, root *StackQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
