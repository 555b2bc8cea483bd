package transcript

import "time"

//go:generate mockgen -destination=../mock/transcript/mock_transcript.go -package=mock_transcript . Repo,Service

// Direction of a message relative to this machine
type Direction string

const (
	// Inbound message received from a peer
	Inbound Direction = "inbound"
	// Outbound message sent to a peer
	Outbound Direction = "outbound"
)

// Message is a single chat line exchanged with a peer
type Message struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Peer      string `gorm:"index"`
	Text      string
	Timestamp time.Time `gorm:"index"`
	Direction Direction
}

// Repo interface representing access to stored messages
type Repo interface {
	AppendMessage(m *Message) (*Message, error)
	GetMessages(peer string) ([]*Message, error)
	RemoveMessages(peer string) error
}

// Service interface for recording and reading a peer's transcript
type Service interface {
	RecordInbound(peer, text string) (*Message, error)
	RecordOutbound(peer, text string) (*Message, error)
	History(peer string) ([]*Message, error)
	Clear(peer string) error
}
