// models/message.go
package models

import "time"

// SenderRole tags which side of a thread authored a message.
type SenderRole string

const (
	RoleUser      SenderRole = "user"
	RoleCaregiver SenderRole = "caregiver"
)

// Opposite returns the other side of the conversation.
func (r SenderRole) Opposite() SenderRole {
	if r == RoleUser {
		return RoleCaregiver
	}
	return RoleUser
}

// MessageThread is a conversation scoped to one (user, caregiver) pair,
// created lazily on first contact.
type MessageThread struct {
	ID          int `json:"id"`
	UserID      int `json:"userId"`
	CaregiverID int `json:"caregiverId"`
}

// Message is one entry in a thread's append-only sequence.
type Message struct {
	ID         int        `json:"id"`
	ThreadID   int        `json:"threadId"`
	SenderRole SenderRole `json:"senderRole"`
	SenderID   int        `json:"senderId"`
	Text       string     `json:"text"`
	SentAt     time.Time  `json:"sentAt"`
}
