// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/maestro-works/maestro/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/maestro-works/maestro/ent/bypassrequest"
	"github.com/maestro-works/maestro/ent/event"
	"github.com/maestro-works/maestro/ent/gateevaluation"
	"github.com/maestro-works/maestro/ent/nodeexecution"
	"github.com/maestro-works/maestro/ent/workflowexecution"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BypassRequest is the client for interacting with the BypassRequest builders.
	BypassRequest *BypassRequestClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// GateEvaluation is the client for interacting with the GateEvaluation builders.
	GateEvaluation *GateEvaluationClient
	// NodeExecution is the client for interacting with the NodeExecution builders.
	NodeExecution *NodeExecutionClient
	// WorkflowExecution is the client for interacting with the WorkflowExecution builders.
	WorkflowExecution *WorkflowExecutionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BypassRequest = NewBypassRequestClient(c.config)
	c.Event = NewEventClient(c.config)
	c.GateEvaluation = NewGateEvaluationClient(c.config)
	c.NodeExecution = NewNodeExecutionClient(c.config)
	c.WorkflowExecution = NewWorkflowExecutionClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		BypassRequest:     NewBypassRequestClient(cfg),
		Event:             NewEventClient(cfg),
		GateEvaluation:    NewGateEvaluationClient(cfg),
		NodeExecution:     NewNodeExecutionClient(cfg),
		WorkflowExecution: NewWorkflowExecutionClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		BypassRequest:     NewBypassRequestClient(cfg),
		Event:             NewEventClient(cfg),
		GateEvaluation:    NewGateEvaluationClient(cfg),
		NodeExecution:     NewNodeExecutionClient(cfg),
		WorkflowExecution: NewWorkflowExecutionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BypassRequest.
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
	c.BypassRequest.Use(hooks...)
	c.Event.Use(hooks...)
	c.GateEvaluation.Use(hooks...)
	c.NodeExecution.Use(hooks...)
	c.WorkflowExecution.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.BypassRequest.Intercept(interceptors...)
	c.Event.Intercept(interceptors...)
	c.GateEvaluation.Intercept(interceptors...)
	c.NodeExecution.Intercept(interceptors...)
	c.WorkflowExecution.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BypassRequestMutation:
		return c.BypassRequest.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *GateEvaluationMutation:
		return c.GateEvaluation.mutate(ctx, m)
	case *NodeExecutionMutation:
		return c.NodeExecution.mutate(ctx, m)
	case *WorkflowExecutionMutation:
		return c.WorkflowExecution.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BypassRequestClient is a client for the BypassRequest schema.
type BypassRequestClient struct {
	config
}

// NewBypassRequestClient returns a client for the BypassRequest from the given config.
func NewBypassRequestClient(c config) *BypassRequestClient {
	return &BypassRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `bypassrequest.Hooks(f(g(h())))`.
func (c *BypassRequestClient) Use(hooks ...Hook) {
	c.hooks.BypassRequest = append(c.hooks.BypassRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `bypassrequest.Intercept(f(g(h())))`.
func (c *BypassRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.BypassRequest = append(c.inters.BypassRequest, interceptors...)
}

// Create returns a builder for creating a BypassRequest entity.
func (c *BypassRequestClient) Create() *BypassRequestCreate {
	mutation := newBypassRequestMutation(c.config, OpCreate)
	return &BypassRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BypassRequest entities.
func (c *BypassRequestClient) CreateBulk(builders ...*BypassRequestCreate) *BypassRequestCreateBulk {
	return &BypassRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BypassRequestClient) MapCreateBulk(slice any, setFunc func(*BypassRequestCreate, int)) *BypassRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BypassRequestCreateBulk{err: fmt.Errorf("calling to BypassRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BypassRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BypassRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BypassRequest.
func (c *BypassRequestClient) Update() *BypassRequestUpdate {
	mutation := newBypassRequestMutation(c.config, OpUpdate)
	return &BypassRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BypassRequestClient) UpdateOne(_m *BypassRequest) *BypassRequestUpdateOne {
	mutation := newBypassRequestMutation(c.config, OpUpdateOne, withBypassRequest(_m))
	return &BypassRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BypassRequestClient) UpdateOneID(id string) *BypassRequestUpdateOne {
	mutation := newBypassRequestMutation(c.config, OpUpdateOne, withBypassRequestID(id))
	return &BypassRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BypassRequest.
func (c *BypassRequestClient) Delete() *BypassRequestDelete {
	mutation := newBypassRequestMutation(c.config, OpDelete)
	return &BypassRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BypassRequestClient) DeleteOne(_m *BypassRequest) *BypassRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BypassRequestClient) DeleteOneID(id string) *BypassRequestDeleteOne {
	builder := c.Delete().Where(bypassrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BypassRequestDeleteOne{builder}
}

// Query returns a query builder for BypassRequest.
func (c *BypassRequestClient) Query() *BypassRequestQuery {
	return &BypassRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBypassRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a BypassRequest entity by its id.
func (c *BypassRequestClient) Get(ctx context.Context, id string) (*BypassRequest, error) {
	return c.Query().Where(bypassrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BypassRequestClient) GetX(ctx context.Context, id string) *BypassRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BypassRequestClient) Hooks() []Hook {
	return c.hooks.BypassRequest
}

// Interceptors returns the client interceptors.
func (c *BypassRequestClient) Interceptors() []Interceptor {
	return c.inters.BypassRequest
}

func (c *BypassRequestClient) mutate(ctx context.Context, m *BypassRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BypassRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BypassRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BypassRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BypassRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BypassRequest mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// GateEvaluationClient is a client for the GateEvaluation schema.
type GateEvaluationClient struct {
	config
}

// NewGateEvaluationClient returns a client for the GateEvaluation from the given config.
func NewGateEvaluationClient(c config) *GateEvaluationClient {
	return &GateEvaluationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gateevaluation.Hooks(f(g(h())))`.
func (c *GateEvaluationClient) Use(hooks ...Hook) {
	c.hooks.GateEvaluation = append(c.hooks.GateEvaluation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gateevaluation.Intercept(f(g(h())))`.
func (c *GateEvaluationClient) Intercept(interceptors ...Interceptor) {
	c.inters.GateEvaluation = append(c.inters.GateEvaluation, interceptors...)
}

// Create returns a builder for creating a GateEvaluation entity.
func (c *GateEvaluationClient) Create() *GateEvaluationCreate {
	mutation := newGateEvaluationMutation(c.config, OpCreate)
	return &GateEvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GateEvaluation entities.
func (c *GateEvaluationClient) CreateBulk(builders ...*GateEvaluationCreate) *GateEvaluationCreateBulk {
	return &GateEvaluationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GateEvaluationClient) MapCreateBulk(slice any, setFunc func(*GateEvaluationCreate, int)) *GateEvaluationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GateEvaluationCreateBulk{err: fmt.Errorf("calling to GateEvaluationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GateEvaluationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GateEvaluationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GateEvaluation.
func (c *GateEvaluationClient) Update() *GateEvaluationUpdate {
	mutation := newGateEvaluationMutation(c.config, OpUpdate)
	return &GateEvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GateEvaluationClient) UpdateOne(_m *GateEvaluation) *GateEvaluationUpdateOne {
	mutation := newGateEvaluationMutation(c.config, OpUpdateOne, withGateEvaluation(_m))
	return &GateEvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GateEvaluationClient) UpdateOneID(id string) *GateEvaluationUpdateOne {
	mutation := newGateEvaluationMutation(c.config, OpUpdateOne, withGateEvaluationID(id))
	return &GateEvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GateEvaluation.
func (c *GateEvaluationClient) Delete() *GateEvaluationDelete {
	mutation := newGateEvaluationMutation(c.config, OpDelete)
	return &GateEvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GateEvaluationClient) DeleteOne(_m *GateEvaluation) *GateEvaluationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GateEvaluationClient) DeleteOneID(id string) *GateEvaluationDeleteOne {
	builder := c.Delete().Where(gateevaluation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GateEvaluationDeleteOne{builder}
}

// Query returns a query builder for GateEvaluation.
func (c *GateEvaluationClient) Query() *GateEvaluationQuery {
	return &GateEvaluationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGateEvaluation},
		inters: c.Interceptors(),
	}
}

// Get returns a GateEvaluation entity by its id.
func (c *GateEvaluationClient) Get(ctx context.Context, id string) (*GateEvaluation, error) {
	return c.Query().Where(gateevaluation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GateEvaluationClient) GetX(ctx context.Context, id string) *GateEvaluation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecution queries the execution edge of a GateEvaluation.
func (c *GateEvaluationClient) QueryExecution(_m *GateEvaluation) *WorkflowExecutionQuery {
	query := (&WorkflowExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(gateevaluation.Table, gateevaluation.FieldID, id),
			sqlgraph.To(workflowexecution.Table, workflowexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, gateevaluation.ExecutionTable, gateevaluation.ExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GateEvaluationClient) Hooks() []Hook {
	return c.hooks.GateEvaluation
}

// Interceptors returns the client interceptors.
func (c *GateEvaluationClient) Interceptors() []Interceptor {
	return c.inters.GateEvaluation
}

func (c *GateEvaluationClient) mutate(ctx context.Context, m *GateEvaluationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GateEvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GateEvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GateEvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GateEvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GateEvaluation mutation op: %q", m.Op())
	}
}

// NodeExecutionClient is a client for the NodeExecution schema.
type NodeExecutionClient struct {
	config
}

// NewNodeExecutionClient returns a client for the NodeExecution from the given config.
func NewNodeExecutionClient(c config) *NodeExecutionClient {
	return &NodeExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `nodeexecution.Hooks(f(g(h())))`.
func (c *NodeExecutionClient) Use(hooks ...Hook) {
	c.hooks.NodeExecution = append(c.hooks.NodeExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `nodeexecution.Intercept(f(g(h())))`.
func (c *NodeExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.NodeExecution = append(c.inters.NodeExecution, interceptors...)
}

// Create returns a builder for creating a NodeExecution entity.
func (c *NodeExecutionClient) Create() *NodeExecutionCreate {
	mutation := newNodeExecutionMutation(c.config, OpCreate)
	return &NodeExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NodeExecution entities.
func (c *NodeExecutionClient) CreateBulk(builders ...*NodeExecutionCreate) *NodeExecutionCreateBulk {
	return &NodeExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NodeExecutionClient) MapCreateBulk(slice any, setFunc func(*NodeExecutionCreate, int)) *NodeExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NodeExecutionCreateBulk{err: fmt.Errorf("calling to NodeExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NodeExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NodeExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NodeExecution.
func (c *NodeExecutionClient) Update() *NodeExecutionUpdate {
	mutation := newNodeExecutionMutation(c.config, OpUpdate)
	return &NodeExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NodeExecutionClient) UpdateOne(_m *NodeExecution) *NodeExecutionUpdateOne {
	mutation := newNodeExecutionMutation(c.config, OpUpdateOne, withNodeExecution(_m))
	return &NodeExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NodeExecutionClient) UpdateOneID(id string) *NodeExecutionUpdateOne {
	mutation := newNodeExecutionMutation(c.config, OpUpdateOne, withNodeExecutionID(id))
	return &NodeExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NodeExecution.
func (c *NodeExecutionClient) Delete() *NodeExecutionDelete {
	mutation := newNodeExecutionMutation(c.config, OpDelete)
	return &NodeExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NodeExecutionClient) DeleteOne(_m *NodeExecution) *NodeExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NodeExecutionClient) DeleteOneID(id string) *NodeExecutionDeleteOne {
	builder := c.Delete().Where(nodeexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NodeExecutionDeleteOne{builder}
}

// Query returns a query builder for NodeExecution.
func (c *NodeExecutionClient) Query() *NodeExecutionQuery {
	return &NodeExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNodeExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a NodeExecution entity by its id.
func (c *NodeExecutionClient) Get(ctx context.Context, id string) (*NodeExecution, error) {
	return c.Query().Where(nodeexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NodeExecutionClient) GetX(ctx context.Context, id string) *NodeExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecution queries the execution edge of a NodeExecution.
func (c *NodeExecutionClient) QueryExecution(_m *NodeExecution) *WorkflowExecutionQuery {
	query := (&WorkflowExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(nodeexecution.Table, nodeexecution.FieldID, id),
			sqlgraph.To(workflowexecution.Table, workflowexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, nodeexecution.ExecutionTable, nodeexecution.ExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *NodeExecutionClient) Hooks() []Hook {
	return c.hooks.NodeExecution
}

// Interceptors returns the client interceptors.
func (c *NodeExecutionClient) Interceptors() []Interceptor {
	return c.inters.NodeExecution
}

func (c *NodeExecutionClient) mutate(ctx context.Context, m *NodeExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NodeExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NodeExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NodeExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NodeExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NodeExecution mutation op: %q", m.Op())
	}
}

// WorkflowExecutionClient is a client for the WorkflowExecution schema.
type WorkflowExecutionClient struct {
	config
}

// NewWorkflowExecutionClient returns a client for the WorkflowExecution from the given config.
func NewWorkflowExecutionClient(c config) *WorkflowExecutionClient {
	return &WorkflowExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowexecution.Hooks(f(g(h())))`.
func (c *WorkflowExecutionClient) Use(hooks ...Hook) {
	c.hooks.WorkflowExecution = append(c.hooks.WorkflowExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowexecution.Intercept(f(g(h())))`.
func (c *WorkflowExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowExecution = append(c.inters.WorkflowExecution, interceptors...)
}

// Create returns a builder for creating a WorkflowExecution entity.
func (c *WorkflowExecutionClient) Create() *WorkflowExecutionCreate {
	mutation := newWorkflowExecutionMutation(c.config, OpCreate)
	return &WorkflowExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowExecution entities.
func (c *WorkflowExecutionClient) CreateBulk(builders ...*WorkflowExecutionCreate) *WorkflowExecutionCreateBulk {
	return &WorkflowExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowExecutionClient) MapCreateBulk(slice any, setFunc func(*WorkflowExecutionCreate, int)) *WorkflowExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowExecutionCreateBulk{err: fmt.Errorf("calling to WorkflowExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowExecution.
func (c *WorkflowExecutionClient) Update() *WorkflowExecutionUpdate {
	mutation := newWorkflowExecutionMutation(c.config, OpUpdate)
	return &WorkflowExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowExecutionClient) UpdateOne(_m *WorkflowExecution) *WorkflowExecutionUpdateOne {
	mutation := newWorkflowExecutionMutation(c.config, OpUpdateOne, withWorkflowExecution(_m))
	return &WorkflowExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowExecutionClient) UpdateOneID(id string) *WorkflowExecutionUpdateOne {
	mutation := newWorkflowExecutionMutation(c.config, OpUpdateOne, withWorkflowExecutionID(id))
	return &WorkflowExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowExecution.
func (c *WorkflowExecutionClient) Delete() *WorkflowExecutionDelete {
	mutation := newWorkflowExecutionMutation(c.config, OpDelete)
	return &WorkflowExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowExecutionClient) DeleteOne(_m *WorkflowExecution) *WorkflowExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowExecutionClient) DeleteOneID(id string) *WorkflowExecutionDeleteOne {
	builder := c.Delete().Where(workflowexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowExecutionDeleteOne{builder}
}

// Query returns a query builder for WorkflowExecution.
func (c *WorkflowExecutionClient) Query() *WorkflowExecutionQuery {
	return &WorkflowExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowExecution entity by its id.
func (c *WorkflowExecutionClient) Get(ctx context.Context, id string) (*WorkflowExecution, error) {
	return c.Query().Where(workflowexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowExecutionClient) GetX(ctx context.Context, id string) *WorkflowExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryNodeExecutions queries the node_executions edge of a WorkflowExecution.
func (c *WorkflowExecutionClient) QueryNodeExecutions(_m *WorkflowExecution) *NodeExecutionQuery {
	query := (&NodeExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowexecution.Table, workflowexecution.FieldID, id),
			sqlgraph.To(nodeexecution.Table, nodeexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflowexecution.NodeExecutionsTable, workflowexecution.NodeExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGateEvaluations queries the gate_evaluations edge of a WorkflowExecution.
func (c *WorkflowExecutionClient) QueryGateEvaluations(_m *WorkflowExecution) *GateEvaluationQuery {
	query := (&GateEvaluationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowexecution.Table, workflowexecution.FieldID, id),
			sqlgraph.To(gateevaluation.Table, gateevaluation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflowexecution.GateEvaluationsTable, workflowexecution.GateEvaluationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowExecutionClient) Hooks() []Hook {
	return c.hooks.WorkflowExecution
}

// Interceptors returns the client interceptors.
func (c *WorkflowExecutionClient) Interceptors() []Interceptor {
	return c.inters.WorkflowExecution
}

func (c *WorkflowExecutionClient) mutate(ctx context.Context, m *WorkflowExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowExecution mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BypassRequest, Event, GateEvaluation, NodeExecution,
		WorkflowExecution []ent.Hook
	}
	inters struct {
		BypassRequest, Event, GateEvaluation, NodeExecution,
		WorkflowExecution []ent.Interceptor
	}
)
