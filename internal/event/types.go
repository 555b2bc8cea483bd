package event

// EventType identifies the kind of event being delivered
type EventType string

const (
	// AnyEventType listeners receive every event
	AnyEventType EventType = "*"
	// FatalErrorEventType reports an error the session cannot recover from
	FatalErrorEventType EventType = "fatal-error"
	// ErrorEventType reports a recoverable error
	ErrorEventType EventType = "error"
	// DeviceFoundEventType payload *device.Device
	DeviceFoundEventType EventType = "device-found"
	// DeviceActiveEventType payload *device.Device
	DeviceActiveEventType EventType = "device-active"
	// ScanProgressEventType payload float64 in [0,1]
	ScanProgressEventType EventType = "scan-progress"
	// ScanFinishedEventType payload discovery.Status
	ScanFinishedEventType EventType = "scan-finished"
	// ScanFailedEventType payload error
	ScanFailedEventType EventType = "scan-failed"
	// StreamConnectedEventType payload StreamPayload
	StreamConnectedEventType EventType = "stream-connected"
	// StreamDisconnectedEventType payload StreamPayload
	StreamDisconnectedEventType EventType = "stream-disconnected"
	// StreamFailedEventType payload StreamPayload
	StreamFailedEventType EventType = "stream-failed"
	// MessageReceivedEventType payload *transcript.Message
	MessageReceivedEventType EventType = "message-received"
	// MessageSentEventType payload *transcript.Message
	MessageSentEventType EventType = "message-sent"
)

// Event data structure representing any event we may want to react to
type Event struct {
	Type    EventType
	Payload any
}

// StreamPayload identifies the stream an event refers to
type StreamPayload struct {
	IP   string
	Port int
	Err  error
}
