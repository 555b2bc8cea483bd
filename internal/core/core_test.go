package core_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robgonnella/sockchat/internal/config"
	"github.com/robgonnella/sockchat/internal/core"
	"github.com/robgonnella/sockchat/internal/device"
	"github.com/robgonnella/sockchat/internal/discovery"
	"github.com/robgonnella/sockchat/internal/event"
	"github.com/robgonnella/sockchat/internal/exception"
	"github.com/robgonnella/sockchat/internal/test_util"
	"github.com/robgonnella/sockchat/internal/transcript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const timeout = time.Second * 2

func waitForEvent(t *testing.T, events chan event.Event, eventType event.EventType) event.Event {
	t.Helper()

	deadline := time.After(timeout)

	for {
		select {
		case evt := <-events:
			if evt.Type == eventType {
				return evt
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s event", eventType)
		}
	}
}

func testConfig(port int) config.Config {
	conf := *config.Default()

	conf.Discovery.Targets = []string{"127.0.0.1"}
	conf.Connection.Ports = config.PortRange{First: port, Last: port}
	conf.Connection.DialTimeout = time.Millisecond * 500

	return conf
}

func createCore(t *testing.T, conf config.Config) *core.Core {
	t.Helper()

	db, err := test_util.GetDBConnection(&device.Device{}, &transcript.Message{})
	require.NoError(t, err)

	eventManager := event.NewEventManager()

	feed, err := discovery.NewTargetFeed(conf.Discovery.Targets, nil)
	require.NoError(t, err)

	c, err := core.New(
		conf,
		feed,
		device.NewService(device.NewSqliteRepo(db), eventManager, nil),
		transcript.NewService(transcript.NewSqliteRepo(db), eventManager),
		eventManager,
	)

	require.NoError(t, err)

	return c
}

func TestCore(t *testing.T) {
	t.Run("fails on invalid port range", func(st *testing.T) {
		db, err := test_util.GetDBConnection(&device.Device{}, &transcript.Message{})
		require.NoError(st, err)

		eventManager := event.NewEventManager()
		conf := testConfig(2000)
		conf.Connection.Ports = config.PortRange{First: 2001, Last: 2000}

		feed, err := discovery.NewTargetFeed(conf.Discovery.Targets, nil)
		require.NoError(st, err)

		_, err = core.New(
			conf,
			feed,
			device.NewService(device.NewSqliteRepo(db), eventManager, nil),
			transcript.NewService(transcript.NewSqliteRepo(db), eventManager),
			eventManager,
		)

		assert.ErrorIs(st, err, exception.ErrInvalidPortRange)
	})

	t.Run("scans, connects and exchanges messages", func(st *testing.T) {
		server, err := test_util.NewServer()
		require.NoError(st, err)
		defer server.Close()

		c := createCore(st, testConfig(server.Port()))
		defer c.Stop()

		events := make(chan event.Event, 100)
		listenerID := c.RegisterEventListener(event.AnyEventType, events)
		defer c.RemoveEventListener(listenerID)

		err = c.Scan(context.Background())
		require.NoError(st, err)

		c.WaitForConnections()

		evt := waitForEvent(st, events, event.DeviceActiveEventType)

		active, ok := evt.Payload.(*device.Device)
		require.True(st, ok)
		assert.Equal(st, "127.0.0.1", active.IP)

		activeDevices, err := c.ActiveDevices()
		assert.NoError(st, err)
		assert.Len(st, activeDevices, 1)

		allDevices, err := c.Devices()
		assert.NoError(st, err)
		assert.Len(st, allDevices, 1)

		s, ok := c.Stream("127.0.0.1")
		require.True(st, ok)
		assert.Equal(st, server.Port(), s.Port())

		conn, ok := server.Accept(timeout)
		require.True(st, ok)
		defer conn.Close()

		err = c.Send("127.0.0.1", "hello")
		require.NoError(st, err)

		lines, err := test_util.ReadLines(conn, 1, timeout)
		assert.NoError(st, err)
		assert.Equal(st, []string{"hello"}, lines)

		_, err = conn.Write([]byte("hi there\n"))
		require.NoError(st, err)

		evt = waitForEvent(st, events, event.MessageReceivedEventType)

		received, ok := evt.Payload.(*transcript.Message)
		require.True(st, ok)
		assert.Equal(st, "hi there", received.Text)
		assert.Equal(st, transcript.Inbound, received.Direction)

		history, err := c.History("127.0.0.1")
		require.NoError(st, err)
		require.Len(st, history, 2)
		assert.Equal(st, "hello", history[0].Text)
		assert.Equal(st, transcript.Outbound, history[0].Direction)
		assert.Equal(st, "hi there", history[1].Text)
	})

	t.Run("returns error sending to unknown device", func(st *testing.T) {
		c := createCore(st, testConfig(2000))
		defer c.Stop()

		assert.ErrorIs(st, c.Send("10.0.0.1", "hello"), exception.ErrStreamNotFound)
		assert.ErrorIs(st, c.Reconnect("10.0.0.1"), exception.ErrStreamNotFound)
	})

	t.Run("makes no connection when no port accepts", func(st *testing.T) {
		port, err := test_util.FreePort()
		require.NoError(st, err)

		c := createCore(st, testConfig(port))
		defer c.Stop()

		require.NoError(st, c.Scan(context.Background()))

		c.WaitForConnections()

		activeDevices, err := c.ActiveDevices()
		assert.NoError(st, err)
		assert.Empty(st, activeDevices)

		_, ok := c.Stream("127.0.0.1")
		assert.False(st, ok)
	})

	t.Run("reconnects on request after peer disconnects", func(st *testing.T) {
		server, err := test_util.NewServer()
		require.NoError(st, err)
		defer server.Close()

		c := createCore(st, testConfig(server.Port()))
		defer c.Stop()

		events := make(chan event.Event, 100)
		c.RegisterEventListener(event.AnyEventType, events)

		require.NoError(st, c.Scan(context.Background()))
		c.WaitForConnections()

		waitForEvent(st, events, event.StreamConnectedEventType)

		conn, ok := server.Accept(timeout)
		require.True(st, ok)
		conn.Close()

		waitForEvent(st, events, event.StreamDisconnectedEventType)

		assert.ErrorIs(st, c.Send("127.0.0.1", "hello"), exception.ErrNotConnected)

		require.NoError(st, c.Reconnect("127.0.0.1"))

		evt := waitForEvent(st, events, event.StreamConnectedEventType)

		payload, ok := evt.Payload.(event.StreamPayload)
		require.True(st, ok)
		assert.Equal(st, "127.0.0.1", payload.IP)

		_, ok = server.Accept(timeout)
		assert.True(st, ok)
	})

	t.Run("reconnects automatically when enabled", func(st *testing.T) {
		server, err := test_util.NewServer()
		require.NoError(st, err)
		defer server.Close()

		conf := testConfig(server.Port())
		conf.Connection.Reconnect = true
		conf.Connection.ReconnectDelay = time.Millisecond * 10

		c := createCore(st, conf)
		defer c.Stop()

		events := make(chan event.Event, 100)
		c.RegisterEventListener(event.AnyEventType, events)

		require.NoError(st, c.Scan(context.Background()))
		c.WaitForConnections()

		waitForEvent(st, events, event.StreamConnectedEventType)

		conn, ok := server.Accept(timeout)
		require.True(st, ok)
		conn.Close()

		waitForEvent(st, events, event.StreamDisconnectedEventType)
		waitForEvent(st, events, event.StreamConnectedEventType)

		_, ok = server.Accept(timeout)
		assert.True(st, ok)
	})

	t.Run("stop disconnects every stream", func(st *testing.T) {
		server, err := test_util.NewServer()
		require.NoError(st, err)
		defer server.Close()

		conf := testConfig(server.Port())
		conf.Connection.Reconnect = true
		conf.Connection.ReconnectDelay = time.Millisecond * 10

		c := createCore(st, conf)

		events := make(chan event.Event, 100)
		c.RegisterEventListener(event.AnyEventType, events)

		require.NoError(st, c.Scan(context.Background()))
		c.WaitForConnections()

		waitForEvent(st, events, event.StreamConnectedEventType)

		s, ok := c.Stream("127.0.0.1")
		require.True(st, ok)

		assert.NoError(st, c.Stop())

		waitForEvent(st, events, event.StreamDisconnectedEventType)

		_, ok = c.Stream("127.0.0.1")
		assert.False(st, ok)

		time.Sleep(time.Millisecond * 50)

		assert.False(st, s.IsConnected())
		assert.NoError(st, c.Stop())
	})
}

func TestCreateNewAppCore(t *testing.T) {
	t.Run("creates core from config", func(st *testing.T) {
		conf := testConfig(2000)

		c, err := core.CreateNewAppCore(conf, prometheus.NewRegistry())

		require.NoError(st, err)
		assert.Equal(st, conf, c.Conf())
		assert.NoError(st, c.Stop())
	})

	t.Run("fails on invalid config", func(st *testing.T) {
		conf := testConfig(2000)
		conf.Connection.Ports.Last = 1999

		_, err := core.CreateNewAppCore(conf, nil)

		assert.ErrorIs(st, err, exception.ErrInvalidPortRange)
	})
}
