// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/skillpath/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillpath/ent/llmrequestevent"
	"github.com/abhisek/skillpath/ent/pathgeneratedevent"
	"github.com/abhisek/skillpath/ent/resourcefetchevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// PathGeneratedEvent is the client for interacting with the PathGeneratedEvent builders.
	PathGeneratedEvent *PathGeneratedEventClient
	// ResourceFetchEvent is the client for interacting with the ResourceFetchEvent builders.
	ResourceFetchEvent *ResourceFetchEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.PathGeneratedEvent = NewPathGeneratedEventClient(c.config)
	c.ResourceFetchEvent = NewResourceFetchEventClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		LLMRequestEvent:    NewLLMRequestEventClient(cfg),
		PathGeneratedEvent: NewPathGeneratedEventClient(cfg),
		ResourceFetchEvent: NewResourceFetchEventClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		LLMRequestEvent:    NewLLMRequestEventClient(cfg),
		PathGeneratedEvent: NewPathGeneratedEventClient(cfg),
		ResourceFetchEvent: NewResourceFetchEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LLMRequestEvent.
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
	c.LLMRequestEvent.Use(hooks...)
	c.PathGeneratedEvent.Use(hooks...)
	c.ResourceFetchEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.LLMRequestEvent.Intercept(interceptors...)
	c.PathGeneratedEvent.Intercept(interceptors...)
	c.ResourceFetchEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *PathGeneratedEventMutation:
		return c.PathGeneratedEvent.mutate(ctx, m)
	case *ResourceFetchEventMutation:
		return c.ResourceFetchEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// PathGeneratedEventClient is a client for the PathGeneratedEvent schema.
type PathGeneratedEventClient struct {
	config
}

// NewPathGeneratedEventClient returns a client for the PathGeneratedEvent from the given config.
func NewPathGeneratedEventClient(c config) *PathGeneratedEventClient {
	return &PathGeneratedEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pathgeneratedevent.Hooks(f(g(h())))`.
func (c *PathGeneratedEventClient) Use(hooks ...Hook) {
	c.hooks.PathGeneratedEvent = append(c.hooks.PathGeneratedEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pathgeneratedevent.Intercept(f(g(h())))`.
func (c *PathGeneratedEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PathGeneratedEvent = append(c.inters.PathGeneratedEvent, interceptors...)
}

// Create returns a builder for creating a PathGeneratedEvent entity.
func (c *PathGeneratedEventClient) Create() *PathGeneratedEventCreate {
	mutation := newPathGeneratedEventMutation(c.config, OpCreate)
	return &PathGeneratedEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PathGeneratedEvent entities.
func (c *PathGeneratedEventClient) CreateBulk(builders ...*PathGeneratedEventCreate) *PathGeneratedEventCreateBulk {
	return &PathGeneratedEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PathGeneratedEventClient) MapCreateBulk(slice any, setFunc func(*PathGeneratedEventCreate, int)) *PathGeneratedEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PathGeneratedEventCreateBulk{err: fmt.Errorf("calling to PathGeneratedEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PathGeneratedEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PathGeneratedEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PathGeneratedEvent.
func (c *PathGeneratedEventClient) Update() *PathGeneratedEventUpdate {
	mutation := newPathGeneratedEventMutation(c.config, OpUpdate)
	return &PathGeneratedEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PathGeneratedEventClient) UpdateOne(_m *PathGeneratedEvent) *PathGeneratedEventUpdateOne {
	mutation := newPathGeneratedEventMutation(c.config, OpUpdateOne, withPathGeneratedEvent(_m))
	return &PathGeneratedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PathGeneratedEventClient) UpdateOneID(id int) *PathGeneratedEventUpdateOne {
	mutation := newPathGeneratedEventMutation(c.config, OpUpdateOne, withPathGeneratedEventID(id))
	return &PathGeneratedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PathGeneratedEvent.
func (c *PathGeneratedEventClient) Delete() *PathGeneratedEventDelete {
	mutation := newPathGeneratedEventMutation(c.config, OpDelete)
	return &PathGeneratedEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PathGeneratedEventClient) DeleteOne(_m *PathGeneratedEvent) *PathGeneratedEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PathGeneratedEventClient) DeleteOneID(id int) *PathGeneratedEventDeleteOne {
	builder := c.Delete().Where(pathgeneratedevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PathGeneratedEventDeleteOne{builder}
}

// Query returns a query builder for PathGeneratedEvent.
func (c *PathGeneratedEventClient) Query() *PathGeneratedEventQuery {
	return &PathGeneratedEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePathGeneratedEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PathGeneratedEvent entity by its id.
func (c *PathGeneratedEventClient) Get(ctx context.Context, id int) (*PathGeneratedEvent, error) {
	return c.Query().Where(pathgeneratedevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PathGeneratedEventClient) GetX(ctx context.Context, id int) *PathGeneratedEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PathGeneratedEventClient) Hooks() []Hook {
	return c.hooks.PathGeneratedEvent
}

// Interceptors returns the client interceptors.
func (c *PathGeneratedEventClient) Interceptors() []Interceptor {
	return c.inters.PathGeneratedEvent
}

func (c *PathGeneratedEventClient) mutate(ctx context.Context, m *PathGeneratedEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PathGeneratedEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PathGeneratedEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PathGeneratedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PathGeneratedEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PathGeneratedEvent mutation op: %q", m.Op())
	}
}

// ResourceFetchEventClient is a client for the ResourceFetchEvent schema.
type ResourceFetchEventClient struct {
	config
}

// NewResourceFetchEventClient returns a client for the ResourceFetchEvent from the given config.
func NewResourceFetchEventClient(c config) *ResourceFetchEventClient {
	return &ResourceFetchEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `resourcefetchevent.Hooks(f(g(h())))`.
func (c *ResourceFetchEventClient) Use(hooks ...Hook) {
	c.hooks.ResourceFetchEvent = append(c.hooks.ResourceFetchEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `resourcefetchevent.Intercept(f(g(h())))`.
func (c *ResourceFetchEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResourceFetchEvent = append(c.inters.ResourceFetchEvent, interceptors...)
}

// Create returns a builder for creating a ResourceFetchEvent entity.
func (c *ResourceFetchEventClient) Create() *ResourceFetchEventCreate {
	mutation := newResourceFetchEventMutation(c.config, OpCreate)
	return &ResourceFetchEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResourceFetchEvent entities.
func (c *ResourceFetchEventClient) CreateBulk(builders ...*ResourceFetchEventCreate) *ResourceFetchEventCreateBulk {
	return &ResourceFetchEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResourceFetchEventClient) MapCreateBulk(slice any, setFunc func(*ResourceFetchEventCreate, int)) *ResourceFetchEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResourceFetchEventCreateBulk{err: fmt.Errorf("calling to ResourceFetchEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResourceFetchEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResourceFetchEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResourceFetchEvent.
func (c *ResourceFetchEventClient) Update() *ResourceFetchEventUpdate {
	mutation := newResourceFetchEventMutation(c.config, OpUpdate)
	return &ResourceFetchEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResourceFetchEventClient) UpdateOne(_m *ResourceFetchEvent) *ResourceFetchEventUpdateOne {
	mutation := newResourceFetchEventMutation(c.config, OpUpdateOne, withResourceFetchEvent(_m))
	return &ResourceFetchEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResourceFetchEventClient) UpdateOneID(id int) *ResourceFetchEventUpdateOne {
	mutation := newResourceFetchEventMutation(c.config, OpUpdateOne, withResourceFetchEventID(id))
	return &ResourceFetchEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResourceFetchEvent.
func (c *ResourceFetchEventClient) Delete() *ResourceFetchEventDelete {
	mutation := newResourceFetchEventMutation(c.config, OpDelete)
	return &ResourceFetchEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResourceFetchEventClient) DeleteOne(_m *ResourceFetchEvent) *ResourceFetchEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResourceFetchEventClient) DeleteOneID(id int) *ResourceFetchEventDeleteOne {
	builder := c.Delete().Where(resourcefetchevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResourceFetchEventDeleteOne{builder}
}

// Query returns a query builder for ResourceFetchEvent.
func (c *ResourceFetchEventClient) Query() *ResourceFetchEventQuery {
	return &ResourceFetchEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResourceFetchEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ResourceFetchEvent entity by its id.
func (c *ResourceFetchEventClient) Get(ctx context.Context, id int) (*ResourceFetchEvent, error) {
	return c.Query().Where(resourcefetchevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResourceFetchEventClient) GetX(ctx context.Context, id int) *ResourceFetchEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ResourceFetchEventClient) Hooks() []Hook {
	return c.hooks.ResourceFetchEvent
}

// Interceptors returns the client interceptors.
func (c *ResourceFetchEventClient) Interceptors() []Interceptor {
	return c.inters.ResourceFetchEvent
}

func (c *ResourceFetchEventClient) mutate(ctx context.Context, m *ResourceFetchEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResourceFetchEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResourceFetchEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResourceFetchEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResourceFetchEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResourceFetchEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LLMRequestEvent, PathGeneratedEvent, ResourceFetchEvent []ent.Hook
	}
	inters struct {
		LLMRequestEvent, PathGeneratedEvent, ResourceFetchEvent []ent.Interceptor
	}
)
