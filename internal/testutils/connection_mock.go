package testutils

import (
	"bytes"
	"net"
	"strings"
	"time"
)

// ConnectionMock is a mock implementation of net.Conn for testing.
// Reads are served from the scripted server replies; writes are recorded.
type ConnectionMock struct {
	readBuf  *bytes.Buffer
	writeBuf *bytes.Buffer
	writeErr error
	closed   bool
}

// NewConnectionMock creates a new mock connection replaying the given
// server data (CRLF included).
func NewConnectionMock(responseData ...string) *ConnectionMock {
	readBuf := bytes.NewBufferString(strings.Join(responseData, ""))
	return &ConnectionMock{
		readBuf:  readBuf,
		writeBuf: &bytes.Buffer{},
	}
}

// FailWrites makes every following Write fail with err, as a peer that
// dropped the connection would.
func (m *ConnectionMock) FailWrites(err error) {
	m.writeErr = err
}

func (m *ConnectionMock) Read(b []byte) (n int, err error) {
	return m.readBuf.Read(b)
}

func (m *ConnectionMock) Write(b []byte) (n int, err error) {
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	return m.writeBuf.Write(b)
}

func (m *ConnectionMock) Close() error {
	m.closed = true
	return nil
}

// IsClosed reports whether Close was called
func (m *ConnectionMock) IsClosed() bool {
	return m.closed
}

func (m *ConnectionMock) LocalAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0}
}

func (m *ConnectionMock) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 2628}
}

func (m *ConnectionMock) SetDeadline(t time.Time) error      { return nil }
func (m *ConnectionMock) SetReadDeadline(t time.Time) error  { return nil }
func (m *ConnectionMock) SetWriteDeadline(t time.Time) error { return nil }

// GetWrittenRequest returns the raw command bytes written to the mock connection
func (m *ConnectionMock) GetWrittenRequest() string {
	return m.writeBuf.String()
}

// Unread returns the scripted data the client has not consumed yet
func (m *ConnectionMock) Unread() string {
	return m.readBuf.String()
}
