package memcache

import (
	"bufio"
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/yamemcache/go-memcache/meta"
)

var (
	ErrConnectionClosed = errors.New("memcache: connection closed")
)

// Connection is a single connection to one memcache server, owning the
// buffered stream the codec runs over. A mutex enforces the codec's
// exclusive-stream contract: one request/response exchange at a time.
type Connection struct {
	addr   string
	conn   net.Conn
	stream *bufio.ReadWriter
	log    zerolog.Logger

	mu       sync.Mutex
	lastUsed time.Time
	closed   bool
}

// NewConnection dials addr over TCP and wraps the connection.
func NewConnection(ctx context.Context, dialer *net.Dialer, addr string, logger zerolog.Logger) (*Connection, error) {
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	return newConnection(conn, addr, logger), nil
}

func newConnection(conn net.Conn, addr string, logger zerolog.Logger) *Connection {
	return &Connection{
		addr:     addr,
		conn:     conn,
		stream:   bufio.NewReadWriter(bufio.NewReader(conn), bufio.NewWriter(conn)),
		log:      logger.With().Str("addr", addr).Logger(),
		lastUsed: time.Now(),
	}
}

// exchange runs one codec call with exclusive access to the stream,
// mapping the context deadline onto the underlying connection. When the
// codec reports the framing position as unrecoverable, the connection is
// marked closed so pools destroy it instead of reusing it.
func (c *Connection) exchange(ctx context.Context, op func(s meta.Stream) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrConnectionClosed
	}

	if deadline, ok := ctx.Deadline(); ok {
		c.conn.SetDeadline(deadline)
	} else {
		c.conn.SetDeadline(time.Time{})
	}

	err := op(c.stream)
	if err != nil {
		if meta.ShouldCloseConnection(err) {
			c.log.Error().Err(err).Msg("protocol failure, discarding connection")
			c.markClosed()
			c.conn.Close()
		}
		return err
	}

	c.lastUsed = time.Now()
	return nil
}

// Get fetches the value stored under key. A nil value means a miss.
func (c *Connection) Get(ctx context.Context, key string) (*meta.Value, error) {
	c.log.Debug().Str("key", key).Msg("get")
	var value *meta.Value
	err := c.exchange(ctx, func(s meta.Stream) error {
		var err error
		value, err = meta.Get(s, key)
		return err
	})
	return value, err
}

// GetMany fetches keys with a single multi-get exchange. Keys absent from
// the result were not found.
func (c *Connection) GetMany(ctx context.Context, keys []string) ([]meta.KeyedValue, error) {
	c.log.Debug().Int("keys", len(keys)).Msg("multi-get")
	var values []meta.KeyedValue
	err := c.exchange(ctx, func(s meta.Stream) error {
		var err error
		values, err = meta.GetMany(s, keys)
		return err
	})
	return values, err
}

// Set stores value under key.
func (c *Connection) Set(ctx context.Context, key string, value meta.Value) error {
	c.log.Debug().Str("key", key).Int("bytes", len(value.Data)).Msg("set")
	return c.exchange(ctx, func(s meta.Stream) error {
		return meta.Set(s, key, value)
	})
}

// Delete removes key. It returns true if the key existed.
func (c *Connection) Delete(ctx context.Context, key string) (bool, error) {
	c.log.Debug().Str("key", key).Msg("delete")
	var found bool
	err := c.exchange(ctx, func(s meta.Stream) error {
		var err error
		found, err = meta.Delete(s, key)
		return err
	})
	return found, err
}

// Version returns the server version string.
func (c *Connection) Version(ctx context.Context) (string, error) {
	var version string
	err := c.exchange(ctx, func(s meta.Stream) error {
		var err error
		version, err = meta.Version(s)
		return err
	})
	return version, err
}

// Ping checks that the server still answers. A version exchange is the
// cheapest request with a guaranteed response.
func (c *Connection) Ping(ctx context.Context) error {
	_, err := c.Version(ctx)
	return err
}

// Addr returns the server address this connection is bound to.
func (c *Connection) Addr() string {
	return c.addr
}

// LastUsed returns when the connection last completed an exchange.
func (c *Connection) LastUsed() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastUsed
}

// IsClosed returns whether the connection has been closed.
func (c *Connection) IsClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Close closes the connection.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.markClosed()
	return c.conn.Close()
}

// markClosed marks the connection as closed (must be called with lock held)
func (c *Connection) markClosed() {
	c.closed = true
}
