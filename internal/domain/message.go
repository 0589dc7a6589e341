package domain

import "time"

type MessageKind string

const (
	MessageText  MessageKind = "text"
	MessageImage MessageKind = "image"
)

func ParseMessageKind(raw string) (MessageKind, error) {
	switch MessageKind(raw) {
	case MessageText, MessageImage:
		return MessageKind(raw), nil
	}
	return "", ErrInvalidMessageKind
}

// Message belongs to exactly one match; sender and receiver are always the
// two members of that match. Only the read flag is ever mutated.
type Message struct {
	ID         int         `json:"id" db:"id"`
	MatchID    int         `json:"match_id" db:"match_id"`
	SenderID   int         `json:"sender_id" db:"sender_id"`
	ReceiverID int         `json:"receiver_id" db:"receiver_id"`
	Content    string      `json:"content" db:"content"`
	Kind       MessageKind `json:"kind" db:"kind"`
	IsRead     bool        `json:"is_read" db:"is_read"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
}
