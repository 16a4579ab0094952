package repositories

import (
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"mentor-chat/domain"
	"mentor-chat/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Append_Assigns_Strictly_Increasing_IDs(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), 2000)
	room := domain.RoomID(1)

	var previous domain.Message
	for i := 1; i <= 5; i++ {
		message, err := repository.Append(room, 20, domain.RoleMentee, fmt.Sprintf("message %d", i))
		req.NoError(err)
		req.Equal(domain.MessageID(i), message.ID)
		if i > 1 {
			req.Greater(message.ID, previous.ID)
			req.False(message.SentAt.Before(previous.SentAt))
		}
		previous = message
	}
}

func Test_Append_Rejects_Invalid_Content(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), 10)
	room := domain.RoomID(1)

	_, err := repository.Append(room, 20, domain.RoleMentee, "")
	req.ErrorIs(err, errors.ErrInvalidMessage)

	_, err = repository.Append(room, 20, domain.RoleMentee, "   ")
	req.ErrorIs(err, errors.ErrInvalidMessage)

	_, err = repository.Append(room, 20, domain.RoleMentee, "this one is far too long")
	req.ErrorIs(err, errors.ErrInvalidMessage)

	// Nothing must have consumed an id.
	message, err := repository.Append(room, 20, domain.RoleMentee, "ok")
	req.NoError(err)
	req.Equal(domain.MessageID(1), message.ID)
}

func Test_Append_Concurrent_IDs_Never_Collide(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), 2000)
	room := domain.RoomID(1)

	const writers = 4
	const perWriter = 5
	var wg sync.WaitGroup
	ids := make(chan domain.MessageID, writers*perWriter)

	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				message, err := repository.Append(room, int64(w), domain.RoleMentee, "concurrent")
				require.NoError(t, err)
				ids <- message.ID
			}
		}(w)
	}
	wg.Wait()
	close(ids)

	seen := make(map[domain.MessageID]struct{})
	for id := range ids {
		_, duplicated := seen[id]
		req.False(duplicated, "id %d issued twice", id)
		seen[id] = struct{}{}
	}
	req.Len(seen, writers*perWriter)
}

func Test_ListBefore_Pages_Cover_History_Without_Overlap(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), 2000)
	room := domain.RoomID(1)

	for i := 1; i <= 25; i++ {
		_, err := repository.Append(room, 20, domain.RoleMentee, fmt.Sprintf("message %d", i))
		req.NoError(err)
	}

	first, err := repository.ListBefore(room, nil, 10)
	req.NoError(err)
	req.Equal(descendingIDs(25, 16), messageIDs(first))

	cursor := first[len(first)-1].ID
	second, err := repository.ListBefore(room, &cursor, 10)
	req.NoError(err)
	req.Equal(descendingIDs(15, 6), messageIDs(second))

	cursor = second[len(second)-1].ID
	third, err := repository.ListBefore(room, &cursor, 10)
	req.NoError(err)
	req.Equal(descendingIDs(5, 1), messageIDs(third))

	// The three pages cover 1..25 with no gap and no duplicate.
	all := append(append(messageIDs(first), messageIDs(second)...), messageIDs(third)...)
	req.Len(lo.Uniq(all), 25)
}

func Test_ListBefore_Page_Is_Stable_Under_Later_Inserts(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), 2000)
	room := domain.RoomID(1)

	for i := 1; i <= 12; i++ {
		_, err := repository.Append(room, 20, domain.RoleMentee, fmt.Sprintf("message %d", i))
		req.NoError(err)
	}

	cursor := domain.MessageID(11)
	page, err := repository.ListBefore(room, &cursor, 5)
	req.NoError(err)
	req.Equal(descendingIDs(10, 6), messageIDs(page))

	for i := 0; i < 5; i++ {
		_, err := repository.Append(room, 10, domain.RoleMentor, "late arrival")
		req.NoError(err)
	}

	// The cursor is an absolute id, so the same request yields the same page.
	again, err := repository.ListBefore(room, &cursor, 5)
	req.NoError(err)
	req.Equal(page, again)
}

func Test_ListBefore_Is_Scoped_To_One_Room(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), 2000)

	_, err := repository.Append(domain.RoomID(1), 20, domain.RoleMentee, "room one")
	req.NoError(err)
	_, err = repository.Append(domain.RoomID(11), 30, domain.RoleMentee, "room eleven")
	req.NoError(err)

	messages, err := repository.ListBefore(domain.RoomID(1), nil, 10)
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal("room one", messages[0].Content)
}

func Test_Latest_Returns_Most_Recent_Or_Nothing(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), 2000)
	room := domain.RoomID(1)

	latest, err := repository.Latest(room)
	req.NoError(err)
	req.Nil(latest)

	_, err = repository.Append(room, 20, domain.RoleMentee, "first")
	req.NoError(err)
	_, err = repository.Append(room, 10, domain.RoleMentor, "second")
	req.NoError(err)

	latest, err = repository.Latest(room)
	req.NoError(err)
	req.NotNil(latest)
	req.Equal("second", latest.Content)
	req.Equal(domain.MessageID(2), latest.ID)
}

func descendingIDs(from, to int) []domain.MessageID {
	var ids []domain.MessageID
	for i := from; i >= to; i-- {
		ids = append(ids, domain.MessageID(i))
	}
	return ids
}

func messageIDs(messages []domain.Message) []domain.MessageID {
	return lo.Map(messages, func(item domain.Message, _ int) domain.MessageID {
		return item.ID
	})
}
