package testutils

import (
	"bufio"
	"net"
	"strings"
	"sync"
	"testing"
)

// DefaultBanner is the greeting sent by Server unless configured otherwise.
const DefaultBanner = "220 test.local dictd <auth.mime> <1.2.3@test.local>"

// Server is a scripted DICT server listening on a local TCP port.
//
// Replies maps a command line (without CRLF) to the raw reply, CRLF
// included. Unknown commands get "500 unknown command". QUIT is answered
// with 221 and the connection is closed.
type Server struct {
	Banner  string
	Replies map[string]string

	listener net.Listener
	mu       sync.Mutex
	commands []string
	conns    map[net.Conn]struct{}
	wg       sync.WaitGroup
}

// NewServer starts a server and stops it when the test ends.
func NewServer(t testing.TB, replies map[string]string) *Server {
	t.Helper()
	return NewServerWithBanner(t, DefaultBanner, replies)
}

// NewServerWithBanner starts a server sending a custom greeting. A greeting
// that is not 1xx or 2xx is followed by a disconnect.
func NewServerWithBanner(t testing.TB, banner string, replies map[string]string) *Server {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to start test server: %v", err)
	}

	s := &Server{
		Banner:   banner,
		Replies:  replies,
		listener: listener,
		conns:    make(map[net.Conn]struct{}),
	}

	s.wg.Add(1)
	go s.serve()

	t.Cleanup(s.Close)
	return s
}

// Addr returns the host:port the server listens on
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Commands returns the command lines received so far, across connections
func (s *Server) Commands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.commands...)
}

// Close stops accepting connections, drops open ones and waits for their
// handlers to return.
func (s *Server) Close() {
	s.listener.Close()

	s.mu.Lock()
	for conn := range s.conns {
		conn.Close()
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Server) serve() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		s.mu.Lock()
		s.conns[conn] = struct{}{}
		s.mu.Unlock()

		s.wg.Add(1)
		go s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	defer s.wg.Done()
	defer func() {
		conn.Close()
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
	}()

	if _, err := conn.Write([]byte(s.Banner + "\r\n")); err != nil {
		return
	}
	if !strings.HasPrefix(s.Banner, "1") && !strings.HasPrefix(s.Banner, "2") {
		return
	}

	r := bufio.NewReader(conn)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimRight(line, "\r\n")

		s.mu.Lock()
		s.commands = append(s.commands, line)
		s.mu.Unlock()

		if line == "QUIT" {
			conn.Write([]byte("221 bye\r\n"))
			return
		}

		reply, ok := s.Replies[line]
		if !ok {
			reply = "500 unknown command\r\n"
		}
		if _, err := conn.Write([]byte(reply)); err != nil {
			return
		}
	}
}
