package model

import "time"

// Message is a directed communication between two users in the
// `messages` table. No invariant beyond referential integrity.
type Message struct {
	ID          uint64    // messages.id
	SenderID    uint64    // messages.sender_id
	RecipientID uint64    // messages.recipient_id
	Subject     string    // messages.subject
	Content     string    // messages.content
	IsRead      bool      // messages.is_read
	SentAt      time.Time // messages.sent_at
}
