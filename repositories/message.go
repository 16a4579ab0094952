//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mentor-chat/domain"
	"mentor-chat/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

type IMessageRepository interface {
	Append(roomID domain.RoomID, senderID int64, senderRole domain.Role, content string) (domain.Message, error)
	ListBefore(roomID domain.RoomID, before *domain.MessageID, size int) ([]domain.Message, error)
	Latest(roomID domain.RoomID) (*domain.Message, error)
}

type MessageRepository struct {
	db               *badger.DB
	log              *slog.Logger
	maxContentLength int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, maxContentLength int) MessageRepository {
	return MessageRepository{db: db, log: log, maxContentLength: maxContentLength}
}

// diskMessage is the stored representation of a message.
type diskMessage struct {
	ID         uint64 `json:"id"`
	Room       uint64 `json:"room"`
	SenderID   int64  `json:"sender_id"`
	SenderRole string `json:"sender_role"`
	Content    string `json:"content"`
	SentAt     int64  `json:"sent_at"`
}

func messageSeqKey(room domain.RoomID) []byte {
	return []byte(fmt.Sprintf("seq:msg:%d", room))
}

// Append assigns the next id for the room and persists the message before
// returning. The id comes from a counter read and written in the same
// transaction as the message itself, so two concurrent appends to one room
// conflict and retry; ids never collide and never go backwards.
func (m MessageRepository) Append(roomID domain.RoomID, senderID int64, senderRole domain.Role, content string) (domain.Message, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Message{}, errors.ErrInvalidMessage
	}
	if m.maxContentLength > 0 && len(content) > m.maxContentLength {
		return domain.Message{}, errors.ErrInvalidMessage
	}

	var message domain.Message
	err := update(m.db, func(txn *badger.Txn) error {
		id, err := nextSeq(txn, messageSeqKey(roomID))
		if err != nil {
			return err
		}
		message = domain.Message{
			ID:         domain.MessageID(id),
			Room:       roomID,
			SenderID:   senderID,
			SenderRole: senderRole,
			Content:    content,
			SentAt:     time.Now().UTC(),
		}
		bytes, err := json.Marshal(toDiskMessage(message))
		if err != nil {
			return err
		}
		return txn.Set(messageKey(roomID, message.ID), bytes)
	})
	return message, err
}

// ListBefore returns up to size messages most-recent-first. A nil cursor
// starts from the newest message; otherwise the scan starts strictly below
// the cursor id. Because the cursor is an absolute message id, a page that
// was handed out once is never reshuffled by later inserts.
func (m MessageRepository) ListBefore(roomID domain.RoomID, before *domain.MessageID, size int) ([]domain.Message, error) {
	if size <= 0 {
		return nil, nil
	}
	if before != nil && *before <= 1 {
		return nil, nil
	}

	prefix := messagePrefix(roomID)
	var raw [][]byte
	err := m.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch before {
		case nil:
			// Past the largest possible id, then walk backwards.
			seekKey = append(append([]byte{}, prefix...), []byte(strings.Repeat("9", 19))...)
		default:
			seekKey = messageKey(roomID, *before-1)
		}

		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if len(raw) == size {
				break
			}
			err := it.Item().Value(func(value []byte) error {
				raw = append(raw, append([]byte{}, value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	messages := make([]domain.Message, 0, len(raw))
	for _, b := range raw {
		var disk diskMessage
		if err = json.Unmarshal(b, &disk); err != nil {
			return nil, err
		}
		messages = append(messages, toMessage(disk))
	}
	return messages, nil
}

// Latest returns the most recent message of the room, or nil when the room
// has no history yet.
func (m MessageRepository) Latest(roomID domain.RoomID) (*domain.Message, error) {
	messages, err := m.ListBefore(roomID, nil, 1)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, nil
	}
	return lo.ToPtr(messages[0]), nil
}

func toDiskMessage(message domain.Message) diskMessage {
	return diskMessage{
		ID:         uint64(message.ID),
		Room:       uint64(message.Room),
		SenderID:   message.SenderID,
		SenderRole: string(message.SenderRole),
		Content:    message.Content,
		SentAt:     message.SentAt.UnixNano(),
	}
}

func toMessage(disk diskMessage) domain.Message {
	return domain.Message{
		ID:         domain.MessageID(disk.ID),
		Room:       domain.RoomID(disk.Room),
		SenderID:   disk.SenderID,
		SenderRole: domain.Role(disk.SenderRole),
		Content:    disk.Content,
		SentAt:     time.Unix(0, disk.SentAt).UTC(),
	}
}
