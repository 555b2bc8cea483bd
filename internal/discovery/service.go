package discovery

import (
	"context"
	"fmt"
	"sync"

	"github.com/robgonnella/sockchat/internal/device"
	"github.com/robgonnella/sockchat/internal/event"
	"github.com/robgonnella/sockchat/internal/exception"
	"github.com/robgonnella/sockchat/internal/logger"
)

// ScannerService runs one scan cycle at a time. Devices found during a cycle
// are recorded as they arrive and handed to the connector once the feed
// reports the cycle complete.
type ScannerService struct {
	feed          Feed
	deviceService device.Service
	connector     Connector
	eventManager  event.Manager
	log           logger.Logger
	mux           sync.Mutex
	cancel        context.CancelFunc
	stopped       bool
}

// NewScannerService returns a new instance of ScannerService
func NewScannerService(
	feed Feed,
	deviceService device.Service,
	connector Connector,
	eventManager event.Manager,
) *ScannerService {
	return &ScannerService{
		feed:          feed,
		deviceService: deviceService,
		connector:     connector,
		eventManager:  eventManager,
		log:           logger.New(),
	}
}

type scanOutcome struct {
	status Status
	err    error
}

// Scan blocks for one scan cycle. Returns ErrScanInProgress if a cycle is
// already running, and the feed's error if the scan failed.
func (s *ScannerService) Scan(ctx context.Context) error {
	s.mux.Lock()

	if s.cancel != nil {
		s.mux.Unlock()
		return exception.ErrScanInProgress
	}

	scanCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.stopped = false
	s.mux.Unlock()

	defer func() {
		s.mux.Lock()
		s.cancel = nil
		s.mux.Unlock()
		cancel()
	}()

	s.log.Info().Msg("Starting network discovery")

	results := make(chan *Result)
	outcome := make(chan scanOutcome, 1)

	go func() {
		status, err := s.feed.Scan(scanCtx, results)
		close(results)
		outcome <- scanOutcome{status: status, err: err}
	}()

	found := []*device.Device{}
	seen := map[string]bool{}

	for r := range results {
		if s.isStopped() {
			// drain until the feed returns
			continue
		}

		switch r.Type {
		case DeviceFoundResult:
			d, err := s.deviceService.AddOrUpdateDevice(r.IP, r.Hostname)

			if err != nil {
				s.log.Error().Err(err).Str("ip", r.IP).Msg("failed to record device")
				s.eventManager.ReportError(err)
				continue
			}

			s.log.Debug().Str("ip", d.IP).Str("hostname", d.Hostname).Msg("found network device")

			if !seen[d.IP] {
				seen[d.IP] = true
				found = append(found, d)
			}
		case ScanProgressResult:
			s.eventManager.Send(event.Event{
				Type:    event.ScanProgressEventType,
				Payload: r.Progress,
			})
		}
	}

	res := <-outcome

	if res.err != nil {
		err := fmt.Errorf("network scan failed: %w", res.err)

		s.log.Error().Err(res.err).Msg("network scan failed")

		s.eventManager.Send(event.Event{
			Type:    event.ScanFailedEventType,
			Payload: err,
		})

		return err
	}

	if s.isStopped() {
		s.log.Info().Msg("Network discovery stopped")

		s.eventManager.Send(event.Event{
			Type:    event.ScanFinishedEventType,
			Payload: StatusCancelled,
		})

		return nil
	}

	s.log.Info().
		Str("status", string(res.status)).
		Int("count", len(found)).
		Msg("Network discovery complete")

	s.eventManager.Send(event.Event{
		Type:    event.ScanFinishedEventType,
		Payload: res.status,
	})

	s.connector.ConnectAll(found)

	return nil
}

// Stop interrupts the running scan cycle. No connection attempts are made
// for a stopped cycle.
func (s *ScannerService) Stop() {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.cancel == nil {
		return
	}

	s.stopped = true
	s.cancel()
}

// Scanning returns true while a scan cycle is running
func (s *ScannerService) Scanning() bool {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.cancel != nil
}

func (s *ScannerService) isStopped() bool {
	s.mux.Lock()
	defer s.mux.Unlock()

	return s.stopped
}
