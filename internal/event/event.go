package event

import (
	"sync"

	"github.com/robgonnella/sockchat/internal/util"
)

// listener delivers queued events to a single channel in send order
type listener struct {
	id        int
	eventType EventType
	channel   chan Event
	queue     *util.Queue[Event]
	done      chan struct{}
}

func (l *listener) pump() {
	for {
		select {
		case <-l.done:
			return
		case <-l.queue.Ready():
			for _, evt := range l.queue.Drain() {
				select {
				case <-l.done:
					return
				case l.channel <- evt:
				}
			}
		}
	}
}

// EventManager implements the Manager interface. Send never blocks on slow
// listeners, each listener receives its events in the order they were sent.
type EventManager struct {
	listeners []*listener
	nextID    int
	mux       sync.RWMutex
}

// NewEventManager returns a new instance of EventManager
func NewEventManager() *EventManager {
	return &EventManager{
		listeners: []*listener{},
		nextID:    1,
		mux:       sync.RWMutex{},
	}
}

// RegisterListener registers a channel to receive events of eventType
func (m *EventManager) RegisterListener(eventType EventType, channel chan Event) int {
	m.mux.Lock()
	defer m.mux.Unlock()

	l := &listener{
		id:        m.nextID,
		eventType: eventType,
		channel:   channel,
		queue:     util.NewQueue[Event](),
		done:      make(chan struct{}),
	}

	m.listeners = append(m.listeners, l)
	m.nextID++

	go l.pump()

	return l.id
}

// RemoveListener stops delivery to a registered listener
func (m *EventManager) RemoveListener(id int) int {
	m.mux.Lock()
	defer m.mux.Unlock()

	listeners := []*listener{}

	for _, l := range m.listeners {
		if l.id == id {
			close(l.done)
			continue
		}

		listeners = append(listeners, l)
	}

	m.listeners = listeners

	return id
}

// Send queues an event for every listener registered for its type
func (m *EventManager) Send(evt Event) {
	m.mux.RLock()
	defer m.mux.RUnlock()

	for _, l := range m.listeners {
		if l.eventType == evt.Type || l.eventType == AnyEventType {
			l.queue.Push(evt)
		}
	}
}

// ReportFatalError sends a fatal error event
func (m *EventManager) ReportFatalError(err error) {
	m.Send(Event{
		Type:    FatalErrorEventType,
		Payload: err,
	})
}

// ReportError sends a recoverable error event
func (m *EventManager) ReportError(err error) {
	m.Send(Event{
		Type:    ErrorEventType,
		Payload: err,
	})
}
