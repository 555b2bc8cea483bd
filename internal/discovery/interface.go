package discovery

import (
	"context"

	"github.com/robgonnella/sockchat/internal/device"
)

//go:generate mockgen -destination=../mock/discovery/mock_discovery.go -package=mock_discovery . Feed,Connector

// Status is how a scan cycle ended
type Status string

const (
	// StatusFinished the feed went through every target
	StatusFinished Status = "finished"
	// StatusCancelled the feed was interrupted before going through every target
	StatusCancelled Status = "cancelled"
)

// ResultType identifies the kind of Result reported by a Feed
type ResultType string

const (
	// DeviceFoundResult a live host, IP is always set
	DeviceFoundResult ResultType = "device-found"
	// ScanProgressResult fraction of the scan completed in Progress
	ScanProgressResult ResultType = "scan-progress"
)

// Result is a single report from a Feed
type Result struct {
	Type     ResultType
	IP       string
	Hostname string
	Progress float64
}

// Feed finds devices on the network. Scan blocks for one scan cycle,
// sending results until it returns, and never sends after returning. A
// returned error means the scan failed.
type Feed interface {
	Scan(ctx context.Context, results chan<- *Result) (Status, error)
}

// Connector is handed every device found during a completed scan cycle
type Connector interface {
	ConnectAll(devices []*device.Device)
}

// Service runs scan cycles
type Service interface {
	Scan(ctx context.Context) error
	Stop()
}

// sendResult delivers r unless ctx is done first
func sendResult(ctx context.Context, results chan<- *Result, r *Result) bool {
	select {
	case <-ctx.Done():
		return false
	case results <- r:
		return true
	}
}

func progressResult(done, total int) *Result {
	progress := 1.0

	if total > 0 {
		progress = float64(done) / float64(total)
	}

	if progress > 1 {
		progress = 1
	}

	return &Result{
		Type:     ScanProgressResult,
		Progress: progress,
	}
}
