// Package domain contains core concepts of the chat system.
// This file defines Message events and related rules.
// Messages are immutable once stored.
package domain

import "time"

type MessageID uint64

// Message represents one chat utterance.
// ID is assigned by the store on write, strictly increasing within its room.
// SentAt is the server clock (UTC) and never decreases as ID grows.
type Message struct {
	ID         MessageID
	Room       RoomID
	SenderID   int64
	SenderRole Role
	Content    string
	SentAt     time.Time
}
