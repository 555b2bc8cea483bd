package transcript

import (
	"errors"

	"gorm.io/gorm"
)

// SqliteRepo is our repo implementation for sqlite
type SqliteRepo struct {
	db *gorm.DB
}

// NewSqliteRepo returns a new transcript sqlite repo
func NewSqliteRepo(db *gorm.DB) *SqliteRepo {
	return &SqliteRepo{db: db}
}

// AppendMessage stores a message at the tail of the transcript
func (r *SqliteRepo) AppendMessage(m *Message) (*Message, error) {
	if m.Peer == "" {
		return nil, errors.New("message peer cannot be empty")
	}

	if result := r.db.Create(m); result.Error != nil {
		return nil, result.Error
	}

	return m, nil
}

// GetMessages returns the transcript for peer in timestamp order. Messages
// sharing a timestamp keep the order they were stored in.
func (r *SqliteRepo) GetMessages(peer string) ([]*Message, error) {
	messages := []*Message{}

	result := r.db.
		Where("peer = ?", peer).
		Order("timestamp asc").
		Order("id asc").
		Find(&messages)

	if result.Error != nil {
		return nil, result.Error
	}

	return messages, nil
}

// RemoveMessages deletes the transcript for peer
func (r *SqliteRepo) RemoveMessages(peer string) error {
	return r.db.Where("peer = ?", peer).Delete(&Message{}).Error
}
