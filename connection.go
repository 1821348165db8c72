package dict

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"

	"github.com/pior/dict/protocol"
)

var (
	ErrConnectionClosed = errors.New("connection closed")
	ErrConnectionBroken = errors.New("connection broken")
)

// Connection represents a single DICT connection.
//
// A Connection is only handed out once the server greeting has been
// accepted. It serves one exchange at a time: every query holds the
// connection lock from the command write until the last line of the reply
// has been read. Queries block until the reply is complete; there is no
// timeout.
type Connection struct {
	addr   string
	conn   net.Conn
	reader *bufio.Reader
	writer *bufio.Writer
	banner protocol.Banner

	mu     sync.Mutex
	closed bool
	broken bool
}

// Address returns host:port, adding the default DICT port when host has none.
func Address(host string) string {
	if _, _, err := net.SplitHostPort(host); err == nil {
		return host
	}
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	return net.JoinHostPort(host, strconv.Itoa(protocol.DefaultPort))
}

// Dial connects to a DICT server and reads its greeting. host may carry a
// port; the default port (2628) is used otherwise.
func Dial(host string) (*Connection, error) {
	return DialContext(context.Background(), nil, Address(host))
}

// DialPort connects to a DICT server on an explicit port and reads its
// greeting.
func DialPort(host string, port int) (*Connection, error) {
	return DialContext(context.Background(), nil, net.JoinHostPort(host, strconv.Itoa(port)))
}

// DialContext connects to addr (host:port) with dialer and reads the server
// greeting. The context bounds the dial only. A nil dialer uses the zero
// net.Dialer.
func DialContext(ctx context.Context, dialer *net.Dialer, addr string) (*Connection, error) {
	if dialer == nil {
		dialer = &net.Dialer{}
	}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, &protocol.ProtocolError{Op: "dial", Message: addr, Err: err}
	}

	return NewConnection(conn)
}

// NewConnection takes ownership of conn and performs the handshake.
//
// A greeting with a status type above 2 (4xx, 5xx) is a rejection: conn is
// closed and an error returned. Preliminary (1xx) greetings are accepted.
func NewConnection(conn net.Conn) (*Connection, error) {
	c := &Connection{
		conn:   conn,
		reader: bufio.NewReader(conn),
		writer: bufio.NewWriter(conn),
	}
	if addr := conn.RemoteAddr(); addr != nil {
		c.addr = addr.String()
	}

	status, err := protocol.ReadStatus(c.reader)
	if err != nil {
		conn.Close()
		return nil, handshakeError(err)
	}

	if status.Type() > protocol.TypeCompletion {
		conn.Close()
		return nil, &protocol.ProtocolError{Op: "handshake", Message: "rejected", Status: &status}
	}

	c.banner = protocol.ParseBanner(status)
	return c, nil
}

// Addr returns the remote address
func (c *Connection) Addr() string {
	return c.addr
}

// Banner returns the greeting sent by the server
func (c *Connection) Banner() protocol.Banner {
	return c.banner
}

// IsClosed returns whether the connection is closed
func (c *Connection) IsClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// IsBroken returns whether a failed exchange left the stream out of sync.
// A broken connection refuses further queries and should be closed.
func (c *Connection) IsBroken() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.broken
}

// Close sends QUIT and releases the writer, the reader and the socket, in
// that order. It does not wait for the server reply. I/O errors are
// ignored: the local resources are released even when the peer is gone.
// Calling Close again is a no-op.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	_ = protocol.WriteCommand(c.writer, protocol.CmdQuit)

	c.writer.Reset(io.Discard)
	c.reader.Reset(strings.NewReader(""))
	_ = c.conn.Close()

	return nil
}

// exchange runs one request/response cycle under the connection lock.
// An error that leaves the stream out of sync marks the connection broken.
func (c *Connection) exchange(op string, fn func() error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return &protocol.ProtocolError{Op: op, Err: ErrConnectionClosed}
	}
	if c.broken {
		return &protocol.ProtocolError{Op: op, Err: ErrConnectionBroken}
	}

	err := fn()
	if protocol.ShouldCloseConnection(err) {
		c.broken = true
	}
	return err
}

func handshakeError(err error) error {
	var perr *protocol.ProtocolError
	if errors.As(err, &perr) {
		perr.Op = "handshake " + perr.Op
		return perr
	}
	return &protocol.ProtocolError{Op: "handshake", Err: err}
}
