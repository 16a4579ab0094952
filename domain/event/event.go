package event

import "mentor-chat/domain"

// DomainEvent is anything that happened inside a room and can be
// pushed to live subscribers.
type DomainEvent interface {
	RoomID() domain.RoomID
}

// MessageStored is emitted after a message has been durably appended.
// It is never emitted before persistence succeeds.
type MessageStored struct {
	Message domain.Message
}

func (e MessageStored) RoomID() domain.RoomID {
	return e.Message.Room
}
