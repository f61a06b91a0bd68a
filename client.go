package memcache

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/jackc/puddle/v2"
	"github.com/rs/zerolog"

	"github.com/yamemcache/go-memcache/meta"
)

var (
	ErrNoServersAvailable = errors.New("memcache: no servers available")
)

// Querier is the operation surface of the client.
type Querier interface {
	Get(ctx context.Context, key string) (*meta.Value, error)
	GetMany(ctx context.Context, keys []string) ([]meta.KeyedValue, error)
	Set(ctx context.Context, key string, value meta.Value) error
	Delete(ctx context.Context, key string) (bool, error)
}

// Config holds configuration for the client.
type Config struct {
	// MaxSize is the maximum number of connections per server.
	// Defaults to 4.
	MaxSize int32

	// Dialer is used to create new connections.
	// If nil, a dialer with a 5 second timeout is used.
	Dialer *net.Dialer

	// SelectServer picks which server handles a key.
	// If nil, DefaultSelectServer (xxh3 + jump hash) is used.
	SelectServer SelectServerFunc

	// NewCircuitBreaker creates a circuit breaker for a server. Called
	// once per server address. If nil, no circuit breaker is used.
	NewCircuitBreaker func(serverAddr string) CircuitBreaker

	// Logger receives connection-level debug and error events.
	// If nil, logging is disabled.
	Logger *zerolog.Logger

	// for testing purposes only
	constructor func(ctx context.Context, addr string) (*Connection, error)
}

// serverPool is one server's connection pool with its optional breaker.
type serverPool struct {
	addr    string
	pool    *puddle.Pool[*Connection]
	breaker CircuitBreaker
}

// withConn runs op on a pooled connection. Connections whose framing was
// lost mid-operation are destroyed instead of returned to the pool. With
// a breaker configured, only errors that cost a connection count toward
// tripping it; client-side rejections pass through as plain failures.
func (sp *serverPool) withConn(ctx context.Context, op func(conn *Connection) error) error {
	do := func() error {
		res, err := sp.pool.Acquire(ctx)
		if err != nil {
			return err
		}
		conn := res.Value()
		err = op(conn)
		if conn.IsClosed() {
			res.Destroy()
		} else {
			res.Release()
		}
		return err
	}

	if sp.breaker == nil {
		return do()
	}

	var opErr error
	_, brErr := sp.breaker.Execute(func() (bool, error) {
		opErr = do()
		if opErr != nil && meta.ShouldCloseConnection(opErr) {
			return false, opErr
		}
		return true, nil
	})
	if opErr != nil {
		return opErr
	}
	return brErr
}

// Client is a pooled multi-server memcache client. The server list is
// snapshotted at construction; each server gets its own connection pool.
type Client struct {
	selectServer SelectServerFunc
	log          zerolog.Logger
	pools        []*serverPool
}

var _ Querier = (*Client)(nil)

// NewClient creates a client over the given servers.
// For a single server: NewClient(NewStaticServers("host:11211"), Config{})
func NewClient(servers Servers, config Config) (*Client, error) {
	addrs := servers.List()
	if len(addrs) == 0 {
		return nil, ErrNoServersAvailable
	}

	maxSize := config.MaxSize
	if maxSize <= 0 {
		maxSize = 4
	}

	dialer := config.Dialer
	if dialer == nil {
		dialer = &net.Dialer{Timeout: 5 * time.Second}
	}

	selectServer := config.SelectServer
	if selectServer == nil {
		selectServer = DefaultSelectServer
	}

	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}

	constructor := config.constructor
	if constructor == nil {
		constructor = func(ctx context.Context, addr string) (*Connection, error) {
			return NewConnection(ctx, dialer, addr, logger)
		}
	}

	client := &Client{
		selectServer: selectServer,
		log:          logger,
	}

	for _, addr := range addrs {
		addr := addr
		pool, err := puddle.NewPool(&puddle.Config[*Connection]{
			Constructor: func(ctx context.Context) (*Connection, error) {
				return constructor(ctx, addr)
			},
			Destructor: func(conn *Connection) {
				_ = conn.Close()
			},
			MaxSize: maxSize,
		})
		if err != nil {
			client.Close()
			return nil, err
		}

		sp := &serverPool{addr: addr, pool: pool}
		if config.NewCircuitBreaker != nil {
			sp.breaker = config.NewCircuitBreaker(addr)
		}
		client.pools = append(client.pools, sp)
	}

	return client, nil
}

func (c *Client) poolFor(key string) *serverPool {
	if len(c.pools) == 1 {
		return c.pools[0]
	}
	return c.pools[c.selectServer(key, len(c.pools))]
}

// Get fetches the value stored under key. A nil value means a miss.
func (c *Client) Get(ctx context.Context, key string) (*meta.Value, error) {
	var value *meta.Value
	err := c.poolFor(key).withConn(ctx, func(conn *Connection) error {
		var err error
		value, err = conn.Get(ctx, key)
		return err
	})
	return value, err
}

// GetMany fetches keys, grouping them by selected server and issuing one
// multi-get per server. Results keep each server's response order; keys
// absent from the result were not found. Any failure aborts the whole
// call with no partial results.
func (c *Client) GetMany(ctx context.Context, keys []string) ([]meta.KeyedValue, error) {
	groups := make([][]string, len(c.pools))
	if len(c.pools) == 1 {
		groups[0] = keys
	} else {
		for _, key := range keys {
			i := c.selectServer(key, len(c.pools))
			groups[i] = append(groups[i], key)
		}
	}

	var values []meta.KeyedValue
	for i, group := range groups {
		if len(group) == 0 {
			continue
		}
		err := c.pools[i].withConn(ctx, func(conn *Connection) error {
			part, err := conn.GetMany(ctx, group)
			if err != nil {
				return err
			}
			values = append(values, part...)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return values, nil
}

// Set stores value under key.
func (c *Client) Set(ctx context.Context, key string, value meta.Value) error {
	return c.poolFor(key).withConn(ctx, func(conn *Connection) error {
		return conn.Set(ctx, key, value)
	})
}

// Delete removes key. It returns true if the key existed.
func (c *Client) Delete(ctx context.Context, key string) (bool, error) {
	var found bool
	err := c.poolFor(key).withConn(ctx, func(conn *Connection) error {
		var err error
		found, err = conn.Delete(ctx, key)
		return err
	})
	return found, err
}

// Version queries every server and returns a map of address to version
// string.
func (c *Client) Version(ctx context.Context) (map[string]string, error) {
	versions := make(map[string]string, len(c.pools))
	for _, sp := range c.pools {
		err := sp.withConn(ctx, func(conn *Connection) error {
			version, err := conn.Version(ctx)
			if err != nil {
				return err
			}
			versions[sp.addr] = version
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return versions, nil
}

// Ping checks connectivity to all servers, returning the last failure.
func (c *Client) Ping(ctx context.Context) error {
	var lastErr error
	for _, sp := range c.pools {
		err := sp.withConn(ctx, func(conn *Connection) error {
			return conn.Ping(ctx)
		})
		if err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Close closes all connection pools.
func (c *Client) Close() {
	for _, sp := range c.pools {
		sp.pool.Close()
	}
}
