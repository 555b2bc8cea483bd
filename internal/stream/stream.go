package stream

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robgonnella/sockchat/internal/exception"
	"github.com/robgonnella/sockchat/internal/logger"
	"github.com/robgonnella/sockchat/internal/metrics"
	"github.com/robgonnella/sockchat/internal/util"
)

// Delimiter frames messages on the wire
const Delimiter = '\n'

// DefaultDialTimeout bounds a connect attempt when no timeout is configured
const DefaultDialTimeout = time.Second * 5

// State represents the connection state of a stream
type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
)

// Dialer opens tcp connections, satisfied by *net.Dialer
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Option configures a Stream
type Option func(s *Stream)

// WithDialer sets the dialer used by Connect
func WithDialer(d Dialer) Option {
	return func(s *Stream) {
		s.dialer = d
	}
}

// WithDialTimeout bounds each Connect attempt
func WithDialTimeout(timeout time.Duration) Option {
	return func(s *Stream) {
		s.timeout = timeout
	}
}

// WithExecutor sets the execution context observer callbacks run on
func WithExecutor(e Executor) Option {
	return func(s *Stream) {
		s.executor = e
	}
}

// WithObserver sets the initial observer
func WithObserver(o Observer) Option {
	return func(s *Stream) {
		s.observer = o
	}
}

// WithMetrics records stream metrics
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Stream) {
		s.metrics = m
	}
}

// outbound is a queued write
type outbound struct {
	text string
	due  time.Time
}

// session holds the state bound to a single tcp connection. It is replaced
// on every reconnect so goroutines of a dropped connection can never touch
// the next one.
type session struct {
	conn     net.Conn
	outbound *util.Queue[outbound]
	done     chan struct{}
}

// Stream owns one tcp connection to a single remote endpoint and frames
// newline delimited text messages over it
type Stream struct {
	id       string
	ip       string
	port     int
	dialer   Dialer
	timeout  time.Duration
	executor Executor
	metrics  *metrics.Metrics
	log      logger.Logger

	mux        sync.Mutex
	observer   Observer
	state      State
	session    *session
	cancelDial context.CancelFunc
	// identifies the current dial, a dial abandoned by Disconnect is stale
	dialGen uint64
}

// New returns a disconnected stream targeting ip:port
func New(ip string, port int, opts ...Option) *Stream {
	s := &Stream{
		id:       uuid.New().String(),
		ip:       ip,
		port:     port,
		dialer:   &net.Dialer{},
		timeout:  DefaultDialTimeout,
		executor: Inline,
		log:      logger.New(),
		state:    StateDisconnected,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ID returns a unique id for this stream
func (s *Stream) ID() string {
	return s.id
}

// IP returns the target ip, which is also the owning device identity
func (s *Stream) IP() string {
	return s.ip
}

// Port returns the target port
func (s *Stream) Port() int {
	return s.port
}

// Address returns the target in host:port form
func (s *Stream) Address() string {
	return net.JoinHostPort(s.ip, strconv.Itoa(s.port))
}

// State returns the current connection state
func (s *Stream) State() State {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.state
}

// IsConnected returns true when the stream has a live connection
func (s *Stream) IsConnected() bool {
	return s.State() == StateConnected
}

// SetObserver replaces the single observer receiving this stream's events
func (s *Stream) SetObserver(o Observer) {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.observer = o
}

// Connect starts a connection attempt in the background. Success is
// reported through OnConnected, failure through OnFailed. Calling Connect
// on a stream that is connecting or connected does nothing.
func (s *Stream) Connect() {
	s.mux.Lock()

	if s.state != StateDisconnected {
		s.mux.Unlock()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)

	s.dialGen++
	gen := s.dialGen
	s.state = StateConnecting
	s.cancelDial = cancel
	s.mux.Unlock()

	go func() {
		defer cancel()

		conn, err := s.dialer.DialContext(ctx, "tcp", s.Address())

		if err != nil {
			s.metrics.DialAttempt(metrics.DialFailure)

			s.mux.Lock()
			aborted := !s.isCurrentDial(gen)
			if !aborted {
				s.state = StateDisconnected
				s.cancelDial = nil
			}
			s.mux.Unlock()

			if aborted {
				// Disconnect was called while dialing
				return
			}

			s.log.Debug().Err(err).Str("address", s.Address()).Msg("connect failed")
			s.dispatch(func(o Observer) {
				o.OnFailed(s, fmt.Errorf("connect %s: %w", s.Address(), err))
			})

			return
		}

		s.metrics.DialAttempt(metrics.DialSuccess)

		if err := s.attach(conn, StateConnecting, gen); err != nil {
			conn.Close()
		}
	}()
}

// Attach hands an already established connection to a disconnected stream,
// used when the connection was opened while probing ports
func (s *Stream) Attach(conn net.Conn) error {
	return s.attach(conn, StateDisconnected, 0)
}

// isCurrentDial reports whether gen is the dial in progress. Callers hold mux.
func (s *Stream) isCurrentDial(gen uint64) bool {
	return s.state == StateConnecting && s.dialGen == gen
}

func (s *Stream) attach(conn net.Conn, expected State, gen uint64) error {
	s.mux.Lock()

	if s.state != expected || (expected == StateConnecting && s.dialGen != gen) {
		s.mux.Unlock()
		return exception.ErrAlreadyConnected
	}

	sess := &session{
		conn:     conn,
		outbound: util.NewQueue[outbound](),
		done:     make(chan struct{}),
	}

	s.state = StateConnected
	s.session = sess
	s.cancelDial = nil
	s.mux.Unlock()

	s.metrics.StreamConnected()

	s.log.Info().Str("address", s.Address()).Msg("stream connected")

	s.dispatch(func(o Observer) {
		o.OnConnected(s)
	})

	go s.readLoop(sess)
	go s.writeLoop(sess)

	return nil
}

// WriteMessage queues text for transmission after delay. Writes on a stream
// go out in the order they were issued. Writing while disconnected drops
// the message and reports ErrNotConnected through OnFailed.
func (s *Stream) WriteMessage(text string, delay time.Duration) {
	s.mux.Lock()
	sess := s.session
	s.mux.Unlock()

	if sess == nil {
		s.metrics.WriteFailed()
		s.dispatch(func(o Observer) {
			o.OnFailed(s, exception.ErrNotConnected)
		})
		return
	}

	sess.outbound.Push(outbound{
		text: text,
		due:  time.Now().Add(delay),
	})
}

// Disconnect closes the connection. OnDisconnected fires once per actual
// disconnect, calling Disconnect on a closed stream does nothing.
func (s *Stream) Disconnect() {
	s.mux.Lock()

	if s.state == StateConnecting {
		s.cancelDial()
		s.cancelDial = nil
		s.state = StateDisconnected
		s.mux.Unlock()
		return
	}

	sess := s.session
	s.mux.Unlock()

	if sess == nil {
		return
	}

	s.closeSession(sess, nil)
}

// closeSession tears down sess if it is still the live session
func (s *Stream) closeSession(sess *session, cause error) {
	s.mux.Lock()

	if s.session != sess {
		s.mux.Unlock()
		return
	}

	s.session = nil
	s.state = StateDisconnected
	s.mux.Unlock()

	close(sess.done)
	sess.conn.Close()

	s.metrics.StreamDisconnected()

	if dropped := sess.outbound.Len(); dropped > 0 {
		s.log.Debug().Int("count", dropped).Str("address", s.Address()).Msg("dropping unsent messages")
	}

	s.log.Info().Err(cause).Str("address", s.Address()).Msg("stream disconnected")

	s.dispatch(func(o Observer) {
		o.OnDisconnected(s, cause)
	})
}

func (s *Stream) readLoop(sess *session) {
	reader := bufio.NewReader(sess.conn)

	for {
		line, err := reader.ReadString(Delimiter)

		if err != nil {
			if line != "" {
				// unterminated messages are never delivered
				s.log.Debug().Int("bytes", len(line)).Str("address", s.Address()).Msg("discarding partial message")
			}

			if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
				err = nil
			}

			s.closeSession(sess, err)

			return
		}

		text := strings.TrimSuffix(line[:len(line)-1], "\r")
		ip, port := s.peer(sess.conn)

		s.metrics.Message(metrics.Inbound)

		s.dispatch(func(o Observer) {
			o.OnMessageReceived(s, text, ip, port)
		})
	}
}

func (s *Stream) writeLoop(sess *session) {
	for {
		select {
		case <-sess.done:
			return
		case <-sess.outbound.Ready():
			for _, msg := range sess.outbound.Drain() {
				if wait := time.Until(msg.due); wait > 0 {
					timer := time.NewTimer(wait)

					select {
					case <-sess.done:
						timer.Stop()
						return
					case <-timer.C:
					}
				}

				if _, err := io.WriteString(sess.conn, msg.text+string(Delimiter)); err != nil {
					select {
					case <-sess.done:
						// closed locally while writing
						return
					default:
					}

					s.metrics.WriteFailed()

					s.dispatch(func(o Observer) {
						o.OnFailed(s, fmt.Errorf("write %s: %w", s.Address(), err))
					})

					s.closeSession(sess, err)

					return
				}

				s.metrics.Message(metrics.Outbound)
			}
		}
	}
}

// peer returns the remote ip and port of conn, falling back to the target
func (s *Stream) peer(conn net.Conn) (string, int) {
	host, portStr, err := net.SplitHostPort(conn.RemoteAddr().String())

	if err != nil {
		return s.ip, s.port
	}

	port, err := strconv.Atoi(portStr)

	if err != nil {
		return host, s.port
	}

	return host, port
}

func (s *Stream) dispatch(fn func(o Observer)) {
	s.mux.Lock()
	o := s.observer
	s.mux.Unlock()

	if o == nil {
		return
	}

	s.executor.Dispatch(func() {
		fn(o)
	})
}
