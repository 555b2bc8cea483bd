package stream_test

import (
	"context"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/robgonnella/sockchat/internal/exception"
	"github.com/robgonnella/sockchat/internal/stream"
	"github.com/robgonnella/sockchat/internal/test_util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const timeout = time.Second * 2

type received struct {
	text string
	ip   string
	port int
}

type recorder struct {
	connected    chan *stream.Stream
	disconnected chan error
	messages     chan received
	failed       chan error
}

func newRecorder() *recorder {
	return &recorder{
		connected:    make(chan *stream.Stream, 100),
		disconnected: make(chan error, 100),
		messages:     make(chan received, 100),
		failed:       make(chan error, 100),
	}
}

func (r *recorder) observer() stream.Observer {
	return stream.ObserverFuncs{
		Connected: func(s *stream.Stream) {
			r.connected <- s
		},
		Disconnected: func(s *stream.Stream, err error) {
			r.disconnected <- err
		},
		MessageReceived: func(s *stream.Stream, text string, ip string, port int) {
			r.messages <- received{text: text, ip: ip, port: port}
		},
		Failed: func(s *stream.Stream, err error) {
			r.failed <- err
		},
	}
}

func waitFor[T any](t *testing.T, ch chan T) T {
	t.Helper()

	select {
	case v := <-ch:
		return v
	case <-time.After(timeout):
		t.Fatal("timed out waiting for event")
	}

	var zero T
	return zero
}

func assertNone[T any](t *testing.T, ch chan T) {
	t.Helper()

	select {
	case v := <-ch:
		t.Fatalf("unexpected event: %v", v)
	case <-time.After(time.Millisecond * 50):
	}
}

// redialer blocks its first dial until cancelled and hands out a pipe on
// later dials once released
type redialer struct {
	mux     sync.Mutex
	calls   int
	started chan int
	release chan struct{}
	peers   []net.Conn
}

func newRedialer() *redialer {
	return &redialer{
		started: make(chan int, 10),
		release: make(chan struct{}),
	}
}

func (d *redialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	d.mux.Lock()
	d.calls++
	call := d.calls
	d.mux.Unlock()

	d.started <- call

	if call == 1 {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	select {
	case <-d.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	client, peer := net.Pipe()

	d.mux.Lock()
	d.peers = append(d.peers, peer)
	d.mux.Unlock()

	return client, nil
}

func (d *redialer) Close() {
	d.mux.Lock()
	defer d.mux.Unlock()

	for _, p := range d.peers {
		p.Close()
	}
}

func TestStream(t *testing.T) {
	t.Run("connects and fires connected", func(st *testing.T) {
		server, err := test_util.NewServer()
		require.NoError(st, err)
		defer server.Close()

		rec := newRecorder()

		s := stream.New(server.IP(), server.Port(), stream.WithObserver(rec.observer()))

		assert.Equal(st, stream.StateDisconnected, s.State())

		s.Connect()

		connected := waitFor(st, rec.connected)

		assert.Equal(st, s, connected)
		assert.True(st, s.IsConnected())

		_, ok := server.Accept(timeout)
		assert.True(st, ok)

		s.Disconnect()
	})

	t.Run("reassembles a message split across reads", func(st *testing.T) {
		client, peer := net.Pipe()
		defer peer.Close()

		rec := newRecorder()

		s := stream.New("192.168.1.50", 2001, stream.WithObserver(rec.observer()))

		require.NoError(st, s.Attach(client))

		waitFor(st, rec.connected)

		_, err := peer.Write([]byte("hel"))
		require.NoError(st, err)

		assertNone(st, rec.messages)

		_, err = peer.Write([]byte("lo\n"))
		require.NoError(st, err)

		msg := waitFor(st, rec.messages)

		assert.Equal(st, "hello", msg.text)
		assert.Equal(st, "192.168.1.50", msg.ip)
		assert.Equal(st, 2001, msg.port)

		assertNone(st, rec.messages)

		s.Disconnect()
	})

	t.Run("delivers several messages from one read in order", func(st *testing.T) {
		client, peer := net.Pipe()
		defer peer.Close()

		rec := newRecorder()

		s := stream.New("192.168.1.50", 2001, stream.WithObserver(rec.observer()))

		require.NoError(st, s.Attach(client))

		_, err := peer.Write([]byte("one\ntwo\r\nthree\n"))
		require.NoError(st, err)

		assert.Equal(st, "one", waitFor(st, rec.messages).text)
		assert.Equal(st, "two", waitFor(st, rec.messages).text)
		assert.Equal(st, "three", waitFor(st, rec.messages).text)

		s.Disconnect()
	})

	t.Run("reports peer ip and port with received messages", func(st *testing.T) {
		server, err := test_util.NewServer()
		require.NoError(st, err)
		defer server.Close()

		rec := newRecorder()

		s := stream.New(server.IP(), server.Port(), stream.WithObserver(rec.observer()))

		s.Connect()

		waitFor(st, rec.connected)

		conn, ok := server.Accept(timeout)
		require.True(st, ok)
		defer conn.Close()

		_, err = conn.Write([]byte("ping\n"))
		require.NoError(st, err)

		msg := waitFor(st, rec.messages)

		assert.Equal(st, "ping", msg.text)
		assert.Equal(st, "127.0.0.1", msg.ip)
		assert.Equal(st, server.Port(), msg.port)

		s.Disconnect()
	})

	t.Run("transmits writes in the order they were issued", func(st *testing.T) {
		server, err := test_util.NewServer()
		require.NoError(st, err)
		defer server.Close()

		rec := newRecorder()

		s := stream.New(server.IP(), server.Port(), stream.WithObserver(rec.observer()))

		s.Connect()

		waitFor(st, rec.connected)

		conn, ok := server.Accept(timeout)
		require.True(st, ok)
		defer conn.Close()

		expected := []string{}

		for i := 0; i < 20; i++ {
			text := fmt.Sprintf("message-%d", i)
			expected = append(expected, text)

			delay := time.Duration(0)

			if i == 0 {
				delay = time.Millisecond * 30
			}

			s.WriteMessage(text, delay)
		}

		lines, err := test_util.ReadLines(conn, len(expected), timeout)

		assert.NoError(st, err)
		assert.Equal(st, expected, lines)

		s.Disconnect()
	})

	t.Run("fires disconnected at most once", func(st *testing.T) {
		client, peer := net.Pipe()
		defer peer.Close()

		rec := newRecorder()

		s := stream.New("192.168.1.50", 2001, stream.WithObserver(rec.observer()))

		require.NoError(st, s.Attach(client))

		waitFor(st, rec.connected)

		s.Disconnect()
		s.Disconnect()

		err := waitFor(st, rec.disconnected)

		assert.NoError(st, err)
		assertNone(st, rec.disconnected)
		assert.Equal(st, stream.StateDisconnected, s.State())
	})

	t.Run("reports write while disconnected as failure", func(st *testing.T) {
		rec := newRecorder()

		s := stream.New("192.168.1.50", 2001, stream.WithObserver(rec.observer()))

		assert.NotPanics(st, func() {
			s.WriteMessage("hello", 0)
		})

		err := waitFor(st, rec.failed)

		assert.ErrorIs(st, err, exception.ErrNotConnected)
	})

	t.Run("discards partial message when peer closes", func(st *testing.T) {
		client, peer := net.Pipe()

		rec := newRecorder()

		s := stream.New("192.168.1.50", 2001, stream.WithObserver(rec.observer()))

		require.NoError(st, s.Attach(client))

		waitFor(st, rec.connected)

		_, err := peer.Write([]byte("unterminated"))
		require.NoError(st, err)

		peer.Close()

		disconnectErr := waitFor(st, rec.disconnected)

		assert.NoError(st, disconnectErr)
		assertNone(st, rec.messages)
		assert.False(st, s.IsConnected())
	})

	t.Run("reports failed connect without disconnected event", func(st *testing.T) {
		port, err := test_util.FreePort()
		require.NoError(st, err)

		rec := newRecorder()

		s := stream.New(
			"127.0.0.1",
			port,
			stream.WithObserver(rec.observer()),
			stream.WithDialTimeout(time.Millisecond*200),
		)

		s.Connect()

		failure := waitFor(st, rec.failed)

		assert.Error(st, failure)
		assertNone(st, rec.disconnected)
		assert.Equal(st, stream.StateDisconnected, s.State())
	})

	t.Run("reconnects reusing the same stream", func(st *testing.T) {
		server, err := test_util.NewServer()
		require.NoError(st, err)
		defer server.Close()

		rec := newRecorder()

		s := stream.New(server.IP(), server.Port(), stream.WithObserver(rec.observer()))
		id := s.ID()

		s.Connect()

		waitFor(st, rec.connected)

		conn, ok := server.Accept(timeout)
		require.True(st, ok)

		conn.Close()

		waitFor(st, rec.disconnected)

		s.Connect()

		reconnected := waitFor(st, rec.connected)

		assert.Equal(st, id, reconnected.ID())
		assert.True(st, s.IsConnected())

		conn, ok = server.Accept(timeout)
		require.True(st, ok)
		defer conn.Close()

		s.WriteMessage("after reconnect", 0)

		lines, err := test_util.ReadLines(conn, 1, timeout)

		assert.NoError(st, err)
		assert.Equal(st, []string{"after reconnect"}, lines)

		s.Disconnect()
	})

	t.Run("ignores a dial abandoned by disconnect", func(st *testing.T) {
		dialer := newRedialer()
		defer dialer.Close()

		rec := newRecorder()

		s := stream.New(
			"10.0.0.1",
			2000,
			stream.WithObserver(rec.observer()),
			stream.WithDialer(dialer),
		)

		s.Connect()
		assert.Equal(st, 1, waitFor(st, dialer.started))

		s.Disconnect()
		assert.Equal(st, stream.StateDisconnected, s.State())

		s.Connect()
		assert.Equal(st, 2, waitFor(st, dialer.started))

		// the abandoned dial has returned by now and must not touch the
		// second attempt
		assertNone(st, rec.failed)
		assert.Equal(st, stream.StateConnecting, s.State())

		close(dialer.release)

		connected := waitFor(st, rec.connected)

		assert.Equal(st, s, connected)
		assert.True(st, s.IsConnected())
		assertNone(st, rec.failed)

		s.Disconnect()

		waitFor(st, rec.disconnected)
	})

	t.Run("ignores connect while connected", func(st *testing.T) {
		client, peer := net.Pipe()
		defer peer.Close()

		rec := newRecorder()

		s := stream.New("192.168.1.50", 2001, stream.WithObserver(rec.observer()))

		require.NoError(st, s.Attach(client))

		waitFor(st, rec.connected)

		s.Connect()

		assertNone(st, rec.connected)
		assertNone(st, rec.failed)

		s.Disconnect()
	})

	t.Run("rejects attaching a second connection", func(st *testing.T) {
		client, peer := net.Pipe()
		defer peer.Close()

		other, otherPeer := net.Pipe()
		defer otherPeer.Close()

		s := stream.New("192.168.1.50", 2001)

		require.NoError(st, s.Attach(client))

		err := s.Attach(other)

		assert.ErrorIs(st, err, exception.ErrAlreadyConnected)

		s.Disconnect()
	})

	t.Run("delivers events on the provided executor", func(st *testing.T) {
		client, peer := net.Pipe()
		defer peer.Close()

		dispatched := make(chan struct{}, 10)
		rec := newRecorder()

		executor := stream.ExecutorFunc(func(fn func()) {
			dispatched <- struct{}{}
			fn()
		})

		s := stream.New(
			"192.168.1.50",
			2001,
			stream.WithObserver(rec.observer()),
			stream.WithExecutor(executor),
		)

		require.NoError(st, s.Attach(client))

		waitFor(st, dispatched)
		waitFor(st, rec.connected)

		s.Disconnect()

		waitFor(st, dispatched)
		waitFor(st, rec.disconnected)
	})

	t.Run("replaces the single observer", func(st *testing.T) {
		first := newRecorder()
		second := newRecorder()

		s := stream.New("192.168.1.50", 2001, stream.WithObserver(first.observer()))

		s.SetObserver(second.observer())

		s.WriteMessage("dropped", 0)

		waitFor(st, second.failed)
		assertNone(st, first.failed)
	})
}

func TestQueue(t *testing.T) {
	t.Run("runs callbacks in dispatch order", func(st *testing.T) {
		q := stream.NewQueue()

		results := make(chan int, 100)

		for i := 0; i < 100; i++ {
			i := i
			q.Dispatch(func() {
				results <- i
			})
		}

		for i := 0; i < 100; i++ {
			assert.Equal(st, i, waitFor(st, results))
		}

		q.Close()
	})

	t.Run("runs pending callbacks on close and inline afterwards", func(st *testing.T) {
		q := stream.NewQueue()

		ran := 0
		q.Dispatch(func() { ran++ })

		q.Close()

		assert.Equal(st, 1, ran)

		q.Dispatch(func() { ran++ })

		assert.Equal(st, 2, ran)

		assert.NotPanics(st, q.Close)
	})
}

func TestFanout(t *testing.T) {
	t.Run("forwards events to every observer", func(st *testing.T) {
		first := newRecorder()
		second := newRecorder()

		s := stream.New(
			"192.168.1.50",
			2001,
			stream.WithObserver(stream.Fanout{first.observer(), second.observer()}),
		)

		s.WriteMessage("dropped", 0)

		assert.ErrorIs(st, waitFor(st, first.failed), exception.ErrNotConnected)
		assert.ErrorIs(st, waitFor(st, second.failed), exception.ErrNotConnected)
	})
}
