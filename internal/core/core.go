package core

import (
	"context"
	"errors"
	"sync"

	"github.com/robgonnella/sockchat/internal/config"
	"github.com/robgonnella/sockchat/internal/connector"
	"github.com/robgonnella/sockchat/internal/device"
	"github.com/robgonnella/sockchat/internal/discovery"
	"github.com/robgonnella/sockchat/internal/event"
	"github.com/robgonnella/sockchat/internal/exception"
	"github.com/robgonnella/sockchat/internal/logger"
	"github.com/robgonnella/sockchat/internal/registry"
	"github.com/robgonnella/sockchat/internal/stream"
	"github.com/robgonnella/sockchat/internal/transcript"
)

// Core represents our core data structure. It wires discovery, the
// connector and the stream registry together and is the single observer of
// every stream it creates.
type Core struct {
	ctx               context.Context
	cancel            context.CancelFunc
	conf              config.Config
	discovery         *discovery.ScannerService
	connector         *connector.Connector
	registry          *registry.Registry
	deviceService     device.Service
	transcriptService transcript.Service
	eventManager      event.Manager
	executor          *stream.Queue
	logger            logger.Logger
	onStop            []func() error
	stopping          bool
	mux               sync.Mutex
}

// New returns new core module for given configuration. The options are
// applied to the connector after the core's own observer and executor.
func New(
	conf config.Config,
	feed discovery.Feed,
	deviceService device.Service,
	transcriptService transcript.Service,
	eventManager event.Manager,
	opts ...connector.Option,
) (*Core, error) {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Core{
		ctx:               ctx,
		cancel:            cancel,
		conf:              conf,
		registry:          registry.New(),
		deviceService:     deviceService,
		transcriptService: transcriptService,
		eventManager:      eventManager,
		executor:          stream.NewQueue(),
		logger:            logger.New(),
		onStop:            []func() error{},
		mux:               sync.Mutex{},
	}

	connectorOpts := append(
		[]connector.Option{
			connector.WithObserver(c),
			connector.WithExecutor(c.executor),
		},
		opts...,
	)

	conn, err := connector.New(conf.Connection, c.registry, deviceService, connectorOpts...)

	if err != nil {
		cancel()
		c.executor.Close()
		return nil, err
	}

	c.connector = conn
	c.discovery = discovery.NewScannerService(feed, deviceService, conn, eventManager)

	return c, nil
}

// Conf returns the configuration this core was created with
func (c *Core) Conf() config.Config {
	return c.conf
}

// StartScan runs a scan cycle in the background. Results are reported
// through events.
func (c *Core) StartScan() {
	go func() {
		if err := c.Scan(c.ctx); err != nil {
			if errors.Is(err, exception.ErrScanInProgress) {
				c.eventManager.ReportError(err)
				return
			}

			c.logger.Error().Err(err).Msg("scan failed")
		}
	}()
}

// Scan blocks for one scan cycle. Connection attempts to the devices found
// are started, but not waited for, before Scan returns.
func (c *Core) Scan(ctx context.Context) error {
	return c.discovery.Scan(ctx)
}

// StopScan interrupts the running scan and skips its connection attempts
func (c *Core) StopScan() {
	c.discovery.Stop()
}

// Scanning returns true while a scan cycle is running
func (c *Core) Scanning() bool {
	return c.discovery.Scanning()
}

// WaitForConnections blocks until every in-flight connection attempt has
// finished
func (c *Core) WaitForConnections() {
	c.connector.Wait()
}

// Devices returns every device found this session
func (c *Core) Devices() ([]*device.Device, error) {
	return c.deviceService.GetAllDevices()
}

// ActiveDevices returns the devices a stream was opened to
func (c *Core) ActiveDevices() ([]*device.Device, error) {
	return c.deviceService.GetActiveDevices()
}

// Stream returns the stream registered for a device
func (c *Core) Stream(ip string) (*stream.Stream, bool) {
	return c.registry.Get(ip)
}

// Send records text in the device's transcript and writes it to the
// device's stream
func (c *Core) Send(ip, text string) error {
	s, ok := c.registry.Get(ip)

	if !ok {
		return exception.ErrStreamNotFound
	}

	if !s.IsConnected() {
		return exception.ErrNotConnected
	}

	if _, err := c.transcriptService.RecordOutbound(ip, text); err != nil {
		return err
	}

	s.WriteMessage(text, 0)

	return nil
}

// History returns the transcript for a device ordered by timestamp
func (c *Core) History(ip string) ([]*transcript.Message, error) {
	return c.transcriptService.History(ip)
}

// Reconnect reconnects the stream registered for a device
func (c *Core) Reconnect(ip string) error {
	s, ok := c.registry.Get(ip)

	if !ok {
		return exception.ErrStreamNotFound
	}

	s.Connect()

	return nil
}

// RegisterEventListener registers a channel to receive events of eventType
func (c *Core) RegisterEventListener(eventType event.EventType, channel chan event.Event) int {
	return c.eventManager.RegisterListener(eventType, channel)
}

// RemoveEventListener stops delivery to a registered listener
func (c *Core) RemoveEventListener(id int) {
	c.eventManager.RemoveListener(id)
}

// Stop ends the session: scanning stops, every stream is disconnected and
// session storage is released
func (c *Core) Stop() error {
	c.mux.Lock()

	if c.stopping {
		c.mux.Unlock()
		return nil
	}

	c.stopping = true
	c.mux.Unlock()

	c.discovery.Stop()
	c.connector.Disconnect()
	c.executor.Close()
	c.cancel()

	var errs error

	for _, fn := range c.onStop {
		errs = errors.Join(errs, fn())
	}

	return errs
}

func (c *Core) isStopping() bool {
	c.mux.Lock()
	defer c.mux.Unlock()

	return c.stopping
}
