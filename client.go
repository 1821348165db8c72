package dict

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"github.com/pior/dict/protocol"
	"github.com/sony/gobreaker/v2"
)

// Config holds configuration for a Client.
type Config struct {
	// Dialer is the net.Dialer used to open the connection.
	// If nil, the default net.Dialer is used.
	Dialer *net.Dialer

	// Logger receives one debug record per operation and a warning per failure.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// ClientName is sent with the CLIENT command right after the handshake.
	// Empty disables it.
	ClientName string

	// NewCircuitBreaker creates a circuit breaker for the server.
	// If nil, no circuit breaker is used.
	NewCircuitBreaker func(serverAddr string) *gobreaker.CircuitBreaker[any]
}

// Client is a DICT client built on a single Connection. It adds logging,
// statistics and an optional circuit breaker. Like Connection, it runs one
// exchange at a time.
type Client struct {
	addr           string
	conn           *Connection
	logger         *slog.Logger
	circuitBreaker *gobreaker.CircuitBreaker[any] // nil if not configured
	stats          *clientStatsCollector
}

// NewClient connects to addr (host or host:port) and performs the handshake.
// The context bounds the dial only.
func NewClient(ctx context.Context, addr string, config Config) (*Client, error) {
	addr = Address(addr)

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("addr", addr)

	start := time.Now()
	conn, err := DialContext(ctx, config.Dialer, addr)
	if err != nil {
		logger.Warn("dict: connection failed", "error", err)
		return nil, err
	}

	banner := conn.Banner()
	logger.Debug("dict: connected",
		"banner", banner.Text,
		"capabilities", banner.Capabilities,
		"duration", time.Since(start))

	if config.ClientName != "" {
		if err := conn.Identify(config.ClientName); err != nil {
			if protocol.ShouldCloseConnection(err) {
				conn.Close()
				return nil, err
			}
			logger.Warn("dict: client identification refused", "error", err)
		}
	}

	client := &Client{
		addr:   addr,
		conn:   conn,
		logger: logger,
		stats:  newClientStatsCollector(),
	}
	if config.NewCircuitBreaker != nil {
		client.circuitBreaker = config.NewCircuitBreaker(addr)
	}

	return client, nil
}

// Addr returns the server address
func (c *Client) Addr() string {
	return c.addr
}

// Banner returns the greeting sent by the server
func (c *Client) Banner() protocol.Banner {
	return c.conn.Banner()
}

// Close closes the underlying connection. It never fails.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Stats returns a snapshot of the client statistics.
func (c *Client) Stats() ClientStats {
	stats := c.stats.snapshot()
	if c.circuitBreaker != nil {
		stats.CircuitBreakerState = c.circuitBreaker.State()
		stats.CircuitBreakerCounts = c.circuitBreaker.Counts()
	}
	return stats
}

func (c *Client) Databases() (map[string]Database, error) {
	databases, err := execute(c, "show databases", c.conn.Databases)
	c.stats.recordDatabases()
	return databases, err
}

func (c *Client) Strategies() ([]MatchingStrategy, error) {
	strategies, err := execute(c, "show strategies", c.conn.Strategies)
	c.stats.recordStrategies()
	return strategies, err
}

func (c *Client) Match(pattern string, strategy MatchingStrategy, database Database) ([]string, error) {
	words, err := execute(c, "match", func() ([]string, error) {
		return c.conn.Match(pattern, strategy, database)
	}, "pattern", pattern, "strategy", strategy.Name, "database", database.Name)
	c.stats.recordMatch()
	return words, err
}

func (c *Client) Define(word string, database Database) ([]*Definition, error) {
	definitions, err := execute(c, "define", func() ([]*Definition, error) {
		return c.conn.Define(word, database)
	}, "word", word, "database", database.Name)
	c.stats.recordDefine(len(definitions))
	return definitions, err
}

func (c *Client) Info(database Database) ([]string, error) {
	return execute(c, "show info", func() ([]string, error) {
		return c.conn.Info(database)
	}, "database", database.Name)
}

func (c *Client) ServerInfo() ([]string, error) {
	return execute(c, "show server", c.conn.ServerInfo)
}

// execute runs fn through the circuit breaker (when configured), logs the
// outcome and records errors.
func execute[T any](c *Client, op string, fn func() (T, error), attrs ...any) (T, error) {
	start := time.Now()

	var (
		result T
		err    error
	)
	if c.circuitBreaker == nil {
		result, err = fn()
	} else {
		var v any
		v, err = c.circuitBreaker.Execute(func() (any, error) {
			return fn()
		})
		if err == nil {
			result = v.(T)
		}
	}

	attrs = append(attrs, "op", op, "duration", time.Since(start))

	if err != nil {
		c.stats.recordError()
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.stats.recordRejected()
			err = &protocol.ProtocolError{Op: op, Message: "rejected by circuit breaker", Err: err}
		}
		c.logger.Warn("dict: operation failed", append(attrs, "error", err)...)
		return result, err
	}

	c.logger.Debug("dict: operation", attrs...)
	return result, nil
}
