package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageType distinguishes chat payloads.
type MessageType string

const (
	MessageTypeText  MessageType = "TEXT"
	MessageTypeImage MessageType = "IMAGE"
)

// Valid reports whether the message type is one of the known types.
func (t MessageType) Valid() bool {
	switch t {
	case MessageTypeText, MessageTypeImage:
		return true
	}

	return false
}

// Message is one chat message inside a job conversation.
type Message struct {
	ID         uuid.UUID   `json:"id"`
	JobID      uuid.UUID   `json:"job_id"`
	SenderID   uuid.UUID   `json:"sender_id"`
	SenderRole Role        `json:"sender_role"`
	Type       MessageType `json:"type"`
	Content    string      `json:"content"`
	CreatedAt  time.Time   `json:"created_at"`
}
