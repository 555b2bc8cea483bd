package test_util

import (
	"bufio"
	"net"
	"time"

	"github.com/robgonnella/sockchat/internal/database"
	"gorm.io/gorm"
)

// GetDBConnection returns a migrated in-memory database for tests
func GetDBConnection(models ...any) (*gorm.DB, error) {
	return database.NewMemory(models...)
}

// Server is a loopback tcp server for exercising streams in tests
type Server struct {
	listener net.Listener
	conns    chan net.Conn
}

// NewServer listens on a random loopback port and accepts connections in
// the background
func NewServer() (*Server, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")

	if err != nil {
		return nil, err
	}

	s := &Server{
		listener: listener,
		conns:    make(chan net.Conn, 10),
	}

	go func() {
		for {
			conn, err := listener.Accept()

			if err != nil {
				close(s.conns)
				return
			}

			s.conns <- conn
		}
	}()

	return s, nil
}

// IP returns the ip the server listens on
func (s *Server) IP() string {
	return s.listener.Addr().(*net.TCPAddr).IP.String()
}

// Port returns the port the server listens on
func (s *Server) Port() int {
	return s.listener.Addr().(*net.TCPAddr).Port
}

// Accept waits for the next accepted connection
func (s *Server) Accept(timeout time.Duration) (net.Conn, bool) {
	select {
	case conn, ok := <-s.conns:
		return conn, ok
	case <-time.After(timeout):
		return nil, false
	}
}

// Close stops listening
func (s *Server) Close() error {
	return s.listener.Close()
}

// ReadLines reads n newline delimited lines from conn
func ReadLines(conn net.Conn, n int, timeout time.Duration) ([]string, error) {
	if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return nil, err
	}

	reader := bufio.NewReader(conn)
	lines := []string{}

	for len(lines) < n {
		line, err := reader.ReadString('\n')

		if err != nil {
			return lines, err
		}

		lines = append(lines, line[:len(line)-1])
	}

	return lines, nil
}

// FreePort returns a loopback port with nothing listening on it
func FreePort() (int, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")

	if err != nil {
		return 0, err
	}

	port := listener.Addr().(*net.TCPAddr).Port

	return port, listener.Close()
}
