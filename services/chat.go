//go:generate go run go.uber.org/mock/mockgen -source=chat.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"context"
	"log/slog"

	"mentor-chat/contract"
	"mentor-chat/domain"
	"mentor-chat/domain/event"
	"mentor-chat/repositories"
)

type IChatService interface {
	SendMessage(ctx context.Context, roomID domain.RoomID, viewer domain.Viewer, content string) (domain.Message, error)
	GetMessages(roomID domain.RoomID, viewer domain.Viewer, before *domain.MessageID, size int) ([]domain.Message, error)
	Subscribe(roomID domain.RoomID, viewer domain.Viewer, sink contract.EventSink) (contract.SubscriptionID, error)
	Unsubscribe(id contract.SubscriptionID, roomID domain.RoomID)
}

// ChatService composes the room repository, access checks, the message
// store and the fan-out pipeline into the boundary operations.
type ChatService struct {
	rooms           repositories.IRoomRepository
	messages        repositories.IMessageRepository
	registry        contract.IRegistry
	events          chan<- event.DomainEvent
	defaultPageSize int
	log             *slog.Logger
}

func NewChatService(
	rooms repositories.IRoomRepository,
	messages repositories.IMessageRepository,
	registry contract.IRegistry,
	events chan<- event.DomainEvent,
	defaultPageSize int,
	log *slog.Logger,
) *ChatService {
	return &ChatService{
		rooms:           rooms,
		messages:        messages,
		registry:        registry,
		events:          events,
		defaultPageSize: defaultPageSize,
		log:             log,
	}
}

// SendMessage checks access, appends durably, then hands the stored message
// to the fan-out pipeline. A denied viewer never reaches the store. Fan-out
// problems never roll the append back; the caller always gets the message
// that was persisted.
func (s *ChatService) SendMessage(ctx context.Context, roomID domain.RoomID, viewer domain.Viewer, content string) (domain.Message, error) {
	room, err := s.rooms.Get(roomID)
	if err != nil {
		return domain.Message{}, err
	}
	if err = CheckAccess(room, viewer); err != nil {
		return domain.Message{}, err
	}

	message, err := s.messages.Append(roomID, viewer.ID, viewer.Role, content)
	if err != nil {
		return domain.Message{}, err
	}

	// Publish strictly after the append succeeded. Best effort: a full
	// channel drops the push, subscribers catch up through history reads.
	select {
	case s.events <- event.MessageStored{Message: message}:
	case <-ctx.Done():
		s.log.Warn("request canceled before fan-out enqueue",
			"room_id", roomID, "message_id", message.ID)
	default:
		s.log.Warn("event channel full, dropping fan-out",
			"room_id", roomID, "message_id", message.ID)
	}
	return message, nil
}

// GetMessages returns a page of history, newest first, bounded by the
// absolute-id cursor. size <= 0 falls back to the configured default.
func (s *ChatService) GetMessages(roomID domain.RoomID, viewer domain.Viewer, before *domain.MessageID, size int) ([]domain.Message, error) {
	room, err := s.rooms.Get(roomID)
	if err != nil {
		return nil, err
	}
	if err = CheckAccess(room, viewer); err != nil {
		return nil, err
	}
	if size <= 0 {
		size = s.defaultPageSize
	}
	return s.messages.ListBefore(roomID, before, size)
}

// Subscribe attaches a live sink to the room's broadcast channel. Access is
// enforced here so a socket cannot listen on a room it may not read.
func (s *ChatService) Subscribe(roomID domain.RoomID, viewer domain.Viewer, sink contract.EventSink) (contract.SubscriptionID, error) {
	room, err := s.rooms.Get(roomID)
	if err != nil {
		return contract.SubscriptionID{}, err
	}
	if err = CheckAccess(room, viewer); err != nil {
		return contract.SubscriptionID{}, err
	}
	return s.registry.Subscribe(viewer.ID, roomID, sink), nil
}

func (s *ChatService) Unsubscribe(id contract.SubscriptionID, roomID domain.RoomID) {
	s.registry.Unsubscribe(id, roomID)
}
