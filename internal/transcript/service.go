package transcript

import (
	"time"

	"github.com/robgonnella/sockchat/internal/event"
)

// TranscriptService represents our transcript.Service implementation
type TranscriptService struct {
	repo         Repo
	eventManager event.Manager
	now          func() time.Time
}

// NewService returns a new instance of TranscriptService
func NewService(repo Repo, eventManager event.Manager) *TranscriptService {
	return &TranscriptService{
		repo:         repo,
		eventManager: eventManager,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// RecordInbound stores a message received from peer and sends a
// message-received event
func (s *TranscriptService) RecordInbound(peer, text string) (*Message, error) {
	return s.record(peer, text, Inbound, event.MessageReceivedEventType)
}

// RecordOutbound stores a message sent to peer and sends a message-sent event
func (s *TranscriptService) RecordOutbound(peer, text string) (*Message, error) {
	return s.record(peer, text, Outbound, event.MessageSentEventType)
}

// History returns the transcript for peer ordered by timestamp
func (s *TranscriptService) History(peer string) ([]*Message, error) {
	return s.repo.GetMessages(peer)
}

// Clear removes the transcript for peer
func (s *TranscriptService) Clear(peer string) error {
	return s.repo.RemoveMessages(peer)
}

func (s *TranscriptService) record(
	peer string,
	text string,
	direction Direction,
	eventType event.EventType,
) (*Message, error) {
	msg, err := s.repo.AppendMessage(&Message{
		Peer:      peer,
		Text:      text,
		Timestamp: s.now(),
		Direction: direction,
	})

	if err != nil {
		return nil, err
	}

	s.eventManager.Send(event.Event{
		Type:    eventType,
		Payload: msg,
	})

	return msg, nil
}
