package device

import (
	"errors"

	"github.com/robgonnella/sockchat/internal/event"
	"github.com/robgonnella/sockchat/internal/exception"
	"github.com/robgonnella/sockchat/internal/logger"
	"github.com/robgonnella/sockchat/internal/metrics"
)

// DeviceService represents our device.Service implementation
type DeviceService struct {
	log          logger.Logger
	repo         Repo
	eventManager event.Manager
	metrics      *metrics.Metrics
}

// NewService returns a new instance of DeviceService. m may be nil.
func NewService(repo Repo, eventManager event.Manager, m *metrics.Metrics) *DeviceService {
	return &DeviceService{
		log:          logger.New(),
		repo:         repo,
		eventManager: eventManager,
		metrics:      m,
	}
}

// AddOrUpdateDevice records a device found on the network. An existing
// device keeps its status, and its hostname is only replaced by a non-empty
// one.
func (s *DeviceService) AddOrUpdateDevice(ip, hostname string) (*Device, error) {
	existing, err := s.repo.GetDeviceByIP(ip)

	if errors.Is(err, exception.ErrRecordNotFound) {
		// handle add case
		added, err := s.repo.AddDevice(&Device{
			IP:       ip,
			Hostname: hostname,
			Status:   StatusNotActive,
		})

		if err != nil {
			return nil, err
		}

		s.sendEvent(event.DeviceFoundEventType, added)

		return added, nil
	}

	if err != nil {
		// handle all other errors
		return nil, err
	}

	// handle update case

	if hostname == "" || hostname == existing.Hostname {
		s.sendEvent(event.DeviceFoundEventType, existing)
		return existing, nil
	}

	updated, err := s.repo.UpdateHostname(ip, hostname)

	if err != nil {
		return nil, err
	}

	s.sendEvent(event.DeviceFoundEventType, updated)

	return updated, nil
}

// MarkActive records that a stream was opened to d. The returned bool is true
// only the first time a device becomes active, and only then is a
// device-active event sent.
func (s *DeviceService) MarkActive(d *Device) (*Device, bool, error) {
	activated, err := s.repo.ActivateDevice(d.IP)

	if errors.Is(err, exception.ErrRecordNotFound) {
		// device was never reported by discovery
		if _, err := s.repo.AddDevice(&Device{
			IP:       d.IP,
			Hostname: d.Hostname,
			Status:   StatusNotActive,
		}); err != nil {
			return nil, false, err
		}

		activated, err = s.repo.ActivateDevice(d.IP)
	}

	if err != nil {
		return nil, false, err
	}

	current, err := s.repo.GetDeviceByIP(d.IP)

	if err != nil {
		return nil, false, err
	}

	if activated {
		s.log.Info().Str("ip", current.IP).Str("hostname", current.Hostname).Msg("device active")
		s.metrics.DeviceActivated()
		s.sendEvent(event.DeviceActiveEventType, current)
	}

	return current, activated, nil
}

// GetDevice returns a single device by ip
func (s *DeviceService) GetDevice(ip string) (*Device, error) {
	return s.repo.GetDeviceByIP(ip)
}

// GetAllDevices returns every device found this session
func (s *DeviceService) GetAllDevices() ([]*Device, error) {
	return s.repo.GetAllDevices()
}

// GetActiveDevices returns devices a stream was opened to
func (s *DeviceService) GetActiveDevices() ([]*Device, error) {
	return s.repo.GetDevicesByStatus(StatusActive)
}

func (s *DeviceService) sendEvent(eventType event.EventType, d *Device) {
	s.eventManager.Send(event.Event{
		Type:    eventType,
		Payload: d,
	})
}
