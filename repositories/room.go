//go:generate go run go.uber.org/mock/mockgen -source=room.go -destination=../mocks/mock_room_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"mentor-chat/domain"
	"mentor-chat/errors"

	"github.com/dgraph-io/badger/v4"
)

type IRoomRepository interface {
	GetOrCreate(variant domain.RoomVariant) (domain.Room, error)
	Get(id domain.RoomID) (domain.Room, error)
	ListForMember(memberID int64) ([]domain.Room, error)
	ListForAdmin(adminID int64) ([]domain.Room, error)
}

type RoomRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewRoomRepository(db *badger.DB, log *slog.Logger) RoomRepository {
	return RoomRepository{db: db, log: log}
}

var roomSeqKey = []byte("seq:room")

// diskRoom is the stored representation of a room. The variant is flattened
// into a kind tag plus the two relevant ids; rehydration switches on the tag.
type diskRoom struct {
	ID        uint64 `json:"id"`
	Kind      string `json:"kind"`
	LeftID    int64  `json:"left_id"`
	RightID   int64  `json:"right_id"`
	CreatedAt int64  `json:"created_at"`
}

// uniqKey is the per-pair uniqueness constraint. One key exists per
// (variant, ordered pair); insert-or-fetch on this key is what enforces
// "at most one room per pair".
func uniqKey(variant domain.RoomVariant) []byte {
	switch v := variant.(type) {
	case domain.Mentoring:
		return []byte(fmt.Sprintf("roomuniq:%s:%d:%d", domain.KindMentoring, v.MentorID, v.MenteeID))
	case domain.AdminContact:
		return []byte(fmt.Sprintf("roomuniq:%s:%d:%d", domain.KindAdmin, v.AdminID, v.MemberID))
	default:
		return nil
	}
}

// memberEntryKeys lists the viewer-side index entries for a room.
// Both mentoring parties list the room as members; only the member side of
// an admin room does. The admin side is indexed separately.
func memberEntryKeys(room domain.Room) (members [][]byte, admin []byte) {
	switch v := room.Variant.(type) {
	case domain.Mentoring:
		members = [][]byte{
			[]byte(fmt.Sprintf("roomof:%d:%019d", v.MentorID, room.ID)),
			[]byte(fmt.Sprintf("roomof:%d:%019d", v.MenteeID, room.ID)),
		}
	case domain.AdminContact:
		members = [][]byte{
			[]byte(fmt.Sprintf("roomof:%d:%019d", v.MemberID, room.ID)),
		}
		admin = []byte(fmt.Sprintf("adminof:%d:%019d", v.AdminID, room.ID))
	}
	return members, admin
}

// GetOrCreate looks up the room for the exact pair carried by the variant
// and creates it if absent. Two concurrent first-contacts race on the
// uniqueness key; the loser's transaction conflicts, retries, and fetches
// the winner's room. The caller can never observe two rooms for one pair.
func (r RoomRepository) GetOrCreate(variant domain.RoomVariant) (domain.Room, error) {
	key := uniqKey(variant)
	if key == nil {
		return domain.Room{}, fmt.Errorf("unknown room variant %T", variant)
	}

	var room domain.Room
	err := update(r.db, func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == nil {
			var existingID domain.RoomID
			if err = item.Value(func(val []byte) error {
				id, perr := parseSeq(val)
				existingID = domain.RoomID(id)
				return perr
			}); err != nil {
				return err
			}
			room, err = getRoomTxn(txn, existingID)
			return err
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		id, err := nextSeq(txn, roomSeqKey)
		if err != nil {
			return err
		}
		room = domain.Room{
			ID:        domain.RoomID(id),
			Variant:   variant,
			CreatedAt: time.Now().UTC(),
		}
		bytes, err := json.Marshal(toDiskRoom(room))
		if err != nil {
			return err
		}
		if err = txn.Set(roomKey(room.ID), bytes); err != nil {
			return err
		}
		if err = txn.Set(key, []byte(fmt.Sprintf("%d", id))); err != nil {
			return err
		}
		members, admin := memberEntryKeys(room)
		for _, mk := range members {
			if err = txn.Set(mk, nil); err != nil {
				return err
			}
		}
		if admin != nil {
			if err = txn.Set(admin, nil); err != nil {
				return err
			}
		}
		r.log.Info("room created", "room_id", room.ID, "kind", room.Variant.Kind())
		return nil
	})
	return room, err
}

func (r RoomRepository) Get(id domain.RoomID) (domain.Room, error) {
	var room domain.Room
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		room, err = getRoomTxn(txn, id)
		return err
	})
	return room, err
}

func getRoomTxn(txn *badger.Txn, id domain.RoomID) (domain.Room, error) {
	item, err := txn.Get(roomKey(id))
	if err == badger.ErrKeyNotFound {
		return domain.Room{}, errors.ErrRoomNotFound
	}
	if err != nil {
		return domain.Room{}, err
	}
	var disk diskRoom
	if err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &disk)
	}); err != nil {
		return domain.Room{}, err
	}
	return toRoom(disk)
}

// ListForMember returns every room the member sits in as a plain party:
// mentoring rooms on either side plus admin rooms on the member side.
func (r RoomRepository) ListForMember(memberID int64) ([]domain.Room, error) {
	return r.listByPrefix([]byte(fmt.Sprintf("roomof:%d:", memberID)))
}

// ListForAdmin returns admin rooms where the given id is the admin party.
func (r RoomRepository) ListForAdmin(adminID int64) ([]domain.Room, error) {
	return r.listByPrefix([]byte(fmt.Sprintf("adminof:%d:", adminID)))
}

func (r RoomRepository) listByPrefix(prefix []byte) ([]domain.Room, error) {
	var rooms []domain.Room
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			suffix := it.Item().Key()[len(prefix):]
			id, err := parseSeq(suffix)
			if err != nil {
				return err
			}
			room, err := getRoomTxn(txn, domain.RoomID(id))
			if err != nil {
				return err
			}
			rooms = append(rooms, room)
		}
		return nil
	})
	return rooms, err
}

func toDiskRoom(room domain.Room) diskRoom {
	disk := diskRoom{
		ID:        uint64(room.ID),
		Kind:      string(room.Variant.Kind()),
		CreatedAt: room.CreatedAt.UnixNano(),
	}
	switch v := room.Variant.(type) {
	case domain.Mentoring:
		disk.LeftID, disk.RightID = v.MentorID, v.MenteeID
	case domain.AdminContact:
		disk.LeftID, disk.RightID = v.AdminID, v.MemberID
	}
	return disk
}

func toRoom(disk diskRoom) (domain.Room, error) {
	variant, err := toVariant(disk)
	if err != nil {
		return domain.Room{}, err
	}
	return domain.Room{
		ID:        domain.RoomID(disk.ID),
		Variant:   variant,
		CreatedAt: time.Unix(0, disk.CreatedAt).UTC(),
	}, nil
}

func toVariant(disk diskRoom) (domain.RoomVariant, error) {
	switch domain.RoomKind(disk.Kind) {
	case domain.KindMentoring:
		return domain.Mentoring{MentorID: disk.LeftID, MenteeID: disk.RightID}, nil
	case domain.KindAdmin:
		return domain.AdminContact{AdminID: disk.LeftID, MemberID: disk.RightID}, nil
	default:
		return nil, fmt.Errorf("corrupt room %d: unknown kind %q", disk.ID, disk.Kind)
	}
}
