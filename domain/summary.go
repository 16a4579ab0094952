package domain

import "time"

// RoomSummary is a viewer-relative projection of a room.
// It is recomputed on every read from the room, its latest message and
// the nickname directory; it is never persisted or cached as a whole.
type RoomSummary struct {
	RoomID             RoomID
	Kind               RoomKind
	LastMessagePreview string
	LastMessageAt      *time.Time
	CounterpartyLabel  string
}
