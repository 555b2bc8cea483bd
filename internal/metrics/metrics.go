package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "sockchat"

// Dial attempt results
const (
	DialSuccess = "success"
	DialFailure = "failure"
)

// Message directions
const (
	Inbound  = "inbound"
	Outbound = "outbound"
)

// Metrics holds connection orchestration metrics. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	dialAttempts  *prometheus.CounterVec
	activeStreams prometheus.Gauge
	disconnects   prometheus.Counter
	messages      *prometheus.CounterVec
	writeFailures prometheus.Counter
	activeDevices prometheus.Counter
}

// New creates and registers metrics with reg. Returns nil metrics when reg is nil.
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		return nil, nil
	}

	m := &Metrics{
		dialAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "connector",
			Name:      "dial_attempts_total",
			Help:      "TCP dial attempts by result",
		}, []string{"result"}),
		activeStreams: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "stream",
			Name:      "connected",
			Help:      "Streams currently connected",
		}),
		disconnects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stream",
			Name:      "disconnects_total",
			Help:      "Stream disconnects",
		}),
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stream",
			Name:      "messages_total",
			Help:      "Framed messages by direction",
		}, []string{"direction"}),
		writeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stream",
			Name:      "write_failures_total",
			Help:      "Writes dropped or failed",
		}),
		activeDevices: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "connector",
			Name:      "devices_activated_total",
			Help:      "Devices that became active",
		}),
	}

	collectors := []prometheus.Collector{
		m.dialAttempts,
		m.activeStreams,
		m.disconnects,
		m.messages,
		m.writeFailures,
		m.activeDevices,
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// DialAttempt records a dial with the given result
func (m *Metrics) DialAttempt(result string) {
	if m == nil {
		return
	}
	m.dialAttempts.WithLabelValues(result).Inc()
}

// StreamConnected records a stream entering the connected state
func (m *Metrics) StreamConnected() {
	if m == nil {
		return
	}
	m.activeStreams.Inc()
}

// StreamDisconnected records a stream leaving the connected state
func (m *Metrics) StreamDisconnected() {
	if m == nil {
		return
	}
	m.activeStreams.Dec()
	m.disconnects.Inc()
}

// Message records a framed message in direction
func (m *Metrics) Message(direction string) {
	if m == nil {
		return
	}
	m.messages.WithLabelValues(direction).Inc()
}

// WriteFailed records a dropped or failed write
func (m *Metrics) WriteFailed() {
	if m == nil {
		return
	}
	m.writeFailures.Inc()
}

// DeviceActivated records a device reported active for the first time
func (m *Metrics) DeviceActivated() {
	if m == nil {
		return
	}
	m.activeDevices.Inc()
}
