package core

import (
	"time"

	"github.com/robgonnella/sockchat/internal/event"
	"github.com/robgonnella/sockchat/internal/stream"
)

// OnConnected implements stream.Observer
func (c *Core) OnConnected(s *stream.Stream) {
	c.logger.Info().Str("ip", s.IP()).Int("port", s.Port()).Msg("connected")

	c.eventManager.Send(event.Event{
		Type:    event.StreamConnectedEventType,
		Payload: event.StreamPayload{IP: s.IP(), Port: s.Port()},
	})
}

// OnDisconnected implements stream.Observer
func (c *Core) OnDisconnected(s *stream.Stream, err error) {
	c.logger.Info().Err(err).Str("ip", s.IP()).Int("port", s.Port()).Msg("disconnected")

	c.eventManager.Send(event.Event{
		Type:    event.StreamDisconnectedEventType,
		Payload: event.StreamPayload{IP: s.IP(), Port: s.Port(), Err: err},
	})

	if c.conf.Connection.Reconnect {
		c.scheduleReconnect(s)
	}
}

// OnMessageReceived implements stream.Observer
func (c *Core) OnMessageReceived(s *stream.Stream, text string, ip string, port int) {
	c.logger.Debug().Str("ip", ip).Int("port", port).Msg("message received")

	if _, err := c.transcriptService.RecordInbound(s.IP(), text); err != nil {
		c.logger.Error().Err(err).Str("ip", s.IP()).Msg("failed to record message")
		c.eventManager.ReportError(err)
	}
}

// OnFailed implements stream.Observer
func (c *Core) OnFailed(s *stream.Stream, err error) {
	c.logger.Warn().Err(err).Str("ip", s.IP()).Int("port", s.Port()).Msg("stream failure")

	c.eventManager.Send(event.Event{
		Type:    event.StreamFailedEventType,
		Payload: event.StreamPayload{IP: s.IP(), Port: s.Port(), Err: err},
	})
}

// scheduleReconnect reconnects s after the configured delay, provided the
// session is still running and s is still the device's registered stream
func (c *Core) scheduleReconnect(s *stream.Stream) {
	time.AfterFunc(c.conf.Connection.ReconnectDelay, func() {
		if c.isStopping() {
			return
		}

		registered, ok := c.registry.Get(s.IP())

		if !ok || registered != s {
			return
		}

		c.logger.Info().Str("ip", s.IP()).Msg("reconnecting")

		s.Connect()
	})
}
