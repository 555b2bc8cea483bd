package connector

import (
	"context"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/robgonnella/sockchat/internal/config"
	"github.com/robgonnella/sockchat/internal/device"
	"github.com/robgonnella/sockchat/internal/logger"
	"github.com/robgonnella/sockchat/internal/metrics"
	"github.com/robgonnella/sockchat/internal/registry"
	"github.com/robgonnella/sockchat/internal/stream"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ActivityTracker records devices a stream was opened to. MarkActive must
// report true only once per device.
type ActivityTracker interface {
	MarkActive(d *device.Device) (*device.Device, bool, error)
}

// Option configures a Connector
type Option func(c *Connector)

// WithDialer sets the dialer used to probe ports and reconnect streams
func WithDialer(d stream.Dialer) Option {
	return func(c *Connector) {
		c.dialer = d
	}
}

// WithObserver sets the observer of every stream the connector creates
func WithObserver(o stream.Observer) Option {
	return func(c *Connector) {
		c.observer = o
	}
}

// WithExecutor sets the execution context for stream events
func WithExecutor(e stream.Executor) Option {
	return func(c *Connector) {
		c.executor = e
	}
}

// WithMetrics records dial and activation metrics
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Connector) {
		c.metrics = m
	}
}

// Connector opens one stream per device by probing the configured port
// range. Devices are probed concurrently, the ports of a single device are
// tried in order and probing stops at the first port that accepts.
type Connector struct {
	log      logger.Logger
	ports    []int
	timeout  time.Duration
	registry *registry.Registry
	tracker  ActivityTracker
	dialer   stream.Dialer
	observer stream.Observer
	executor stream.Executor
	metrics  *metrics.Metrics
	limiter  *rate.Limiter
	sem      *semaphore.Weighted
	wg       sync.WaitGroup
	mux      sync.Mutex
	inflight map[string]struct{}
	ctx      context.Context
	cancel   context.CancelFunc
}

// New returns a Connector for conf. An invalid port range is an error.
func New(
	conf config.Connection,
	reg *registry.Registry,
	tracker ActivityTracker,
	opts ...Option,
) (*Connector, error) {
	if err := conf.Ports.Validate(); err != nil {
		return nil, err
	}

	timeout := conf.DialTimeout

	if timeout <= 0 {
		timeout = stream.DefaultDialTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())

	c := &Connector{
		log:      logger.New(),
		ports:    conf.Ports.Ports(),
		timeout:  timeout,
		registry: reg,
		tracker:  tracker,
		dialer:   &net.Dialer{},
		executor: stream.Inline,
		inflight: map[string]struct{}{},
		ctx:      ctx,
		cancel:   cancel,
	}

	if conf.DialRate > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(conf.DialRate), 1)
	}

	if conf.Concurrency > 0 {
		c.sem = semaphore.NewWeighted(int64(conf.Concurrency))
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// ConnectTo starts probing d in the background. A device that already has a
// registered stream is reconnected if that stream is down, a device that is
// currently being probed is ignored.
func (c *Connector) ConnectTo(d *device.Device) {
	if s, ok := c.registry.Get(d.IP); ok {
		if s.State() == stream.StateDisconnected {
			c.log.Debug().Str("ip", d.IP).Msg("reconnecting registered stream")
			s.Connect()
		}

		return
	}

	c.mux.Lock()

	if _, ok := c.inflight[d.IP]; ok {
		c.mux.Unlock()
		return
	}

	c.inflight[d.IP] = struct{}{}
	ctx := c.ctx
	c.wg.Add(1)
	c.mux.Unlock()

	go func() {
		defer c.wg.Done()

		defer func() {
			c.mux.Lock()
			delete(c.inflight, d.IP)
			c.mux.Unlock()
		}()

		c.probe(ctx, d)
	}()
}

// ConnectAll calls ConnectTo for every device
func (c *Connector) ConnectAll(devices []*device.Device) {
	for _, d := range devices {
		c.ConnectTo(d)
	}
}

// Wait blocks until every in-flight probe has finished
func (c *Connector) Wait() {
	c.wg.Wait()
}

// Disconnect aborts in-flight probes, then disconnects and forgets every
// registered stream
func (c *Connector) Disconnect() {
	c.mux.Lock()
	c.cancel()
	c.ctx, c.cancel = context.WithCancel(context.Background())
	streams := c.registry.Clear()
	c.mux.Unlock()

	for _, s := range streams {
		s.Disconnect()
	}

	c.log.Info().Int("count", len(streams)).Msg("disconnected all streams")
}

func (c *Connector) probe(ctx context.Context, d *device.Device) {
	if c.sem != nil {
		if err := c.sem.Acquire(ctx, 1); err != nil {
			return
		}

		defer c.sem.Release(1)
	}

	conn, port, ok := c.firstOpenPort(ctx, d.IP)

	if !ok {
		c.log.Debug().Str("ip", d.IP).Msg("no port accepted a connection")
		return
	}

	s := stream.New(
		d.IP,
		port,
		stream.WithDialer(c.dialer),
		stream.WithDialTimeout(c.timeout),
		stream.WithExecutor(c.executor),
		stream.WithObserver(c.observer),
		stream.WithMetrics(c.metrics),
	)

	if !c.register(ctx, d.IP, s) {
		conn.Close()
		return
	}

	if err := s.Attach(conn); err != nil {
		c.log.Error().Err(err).Str("ip", d.IP).Msg("failed to attach connection")
		conn.Close()
		return
	}

	if ctx.Err() != nil {
		// Disconnect cleared the registry before the connection was attached
		s.Disconnect()
		return
	}

	if _, _, err := c.tracker.MarkActive(d); err != nil {
		c.log.Error().Err(err).Str("ip", d.IP).Msg("failed to mark device active")
	}
}

// register stores s for ip unless probing was cancelled or a stream is
// already registered. Disconnect cancels and clears under the same lock.
func (c *Connector) register(ctx context.Context, ip string, s *stream.Stream) bool {
	c.mux.Lock()
	defer c.mux.Unlock()

	if ctx.Err() != nil {
		return false
	}

	if _, loaded := c.registry.LoadOrStore(ip, s); loaded {
		c.log.Debug().Str("ip", ip).Msg("stream already registered")
		return false
	}

	return true
}

// firstOpenPort dials ports in ascending order and returns the first
// connection that succeeds
func (c *Connector) firstOpenPort(ctx context.Context, ip string) (net.Conn, int, bool) {
	for _, port := range c.ports {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, 0, false
			}
		}

		if ctx.Err() != nil {
			return nil, 0, false
		}

		conn, err := c.dial(ctx, ip, port)

		if err != nil {
			c.metrics.DialAttempt(metrics.DialFailure)
			c.log.Debug().Err(err).Str("ip", ip).Int("port", port).Msg("port closed")
			continue
		}

		c.metrics.DialAttempt(metrics.DialSuccess)
		c.log.Info().Str("ip", ip).Int("port", port).Msg("port open")

		return conn, port, true
	}

	return nil, 0, false
}

func (c *Connector) dial(ctx context.Context, ip string, port int) (net.Conn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.dialer.DialContext(dialCtx, "tcp", net.JoinHostPort(ip, strconv.Itoa(port)))
}
