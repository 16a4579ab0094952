//go:generate go run go.uber.org/mock/mockgen -source=member.go -destination=../mocks/mock_member_directory.go -package=mocks
package repositories

import (
	"encoding/json"
	"time"

	"mentor-chat/errors"

	"github.com/dgraph-io/badger/v4"
)

// IMemberDirectory is the member-lookup capability the chat core consumes.
// A miss is reported as ErrMemberNotFound, never invented.
type IMemberDirectory interface {
	GetNickname(id int64) (string, error)
}

// Member is the directory-side view of an account. The chat system only
// ever reads the nickname; the rest exists for seeding and inspection.
type Member struct {
	ID        int64
	Nickname  string
	CreatedAt time.Time
}

type MemberRepository struct {
	db *badger.DB
}

func NewMemberRepository(db *badger.DB) MemberRepository {
	return MemberRepository{db: db}
}

type diskMember struct {
	ID        int64  `json:"id"`
	Nickname  string `json:"nickname"`
	CreatedAt int64  `json:"created_at"`
}

func (m MemberRepository) GetNickname(id int64) (string, error) {
	member, err := m.Get(id)
	if err != nil {
		return "", err
	}
	return member.Nickname, nil
}

func (m MemberRepository) Get(id int64) (Member, error) {
	var disk diskMember
	err := m.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(memberKey(id))
		if err == badger.ErrKeyNotFound {
			return errors.ErrMemberNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &disk)
		})
	})
	if err != nil {
		return Member{}, err
	}
	return Member{
		ID:        disk.ID,
		Nickname:  disk.Nickname,
		CreatedAt: time.Unix(0, disk.CreatedAt).UTC(),
	}, nil
}

// Save upserts a member record. Used by the seed tool and tests; the chat
// core itself never writes to the directory.
func (m MemberRepository) Save(member Member) error {
	bytes, err := json.Marshal(diskMember{
		ID:        member.ID,
		Nickname:  member.Nickname,
		CreatedAt: member.CreatedAt.UnixNano(),
	})
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set(memberKey(member.ID), bytes)
	})
}
