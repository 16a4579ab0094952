package repositories

import (
	"fmt"

	"mentor-chat/domain"

	"github.com/dgraph-io/badger/v4"
)

// maxTxnRetries bounds the insert-or-fetch retry loop. Conflicts only occur
// when two transactions race on the same counter or uniqueness key, so a
// handful of attempts is plenty.
const maxTxnRetries = 16

// update runs fn in a read-write transaction and retries on ErrConflict.
// Badger detects write skew at commit time; retrying until one writer wins
// serializes racing creates without any explicit lock.
func update(db *badger.DB, fn func(txn *badger.Txn) error) error {
	var err error
	for i := 0; i < maxTxnRetries; i++ {
		err = db.Update(fn)
		if err != badger.ErrConflict {
			return err
		}
	}
	return fmt.Errorf("transaction conflict not resolved after %d attempts: %w", maxTxnRetries, err)
}

// nextSeq reads and increments a counter key inside the given transaction.
// The read makes the increment part of the transaction's conflict set, which
// is what serializes concurrent writers on the same counter.
func nextSeq(txn *badger.Txn, key []byte) (uint64, error) {
	var current uint64
	item, err := txn.Get(key)
	switch err {
	case nil:
		err = item.Value(func(val []byte) error {
			parsed, perr := parseSeq(val)
			current = parsed
			return perr
		})
		if err != nil {
			return 0, err
		}
	case badger.ErrKeyNotFound:
		current = 0
	default:
		return 0, err
	}

	next := current + 1
	if err := txn.Set(key, []byte(fmt.Sprintf("%d", next))); err != nil {
		return 0, err
	}
	return next, nil
}

func parseSeq(val []byte) (uint64, error) {
	var n uint64
	if _, err := fmt.Sscanf(string(val), "%d", &n); err != nil {
		return 0, fmt.Errorf("corrupt sequence value %q: %w", val, err)
	}
	return n, nil
}

// Key layout. The zero padding keeps lexicographic and numeric order
// aligned so prefix scans return rooms and messages in id order.
func roomKey(id domain.RoomID) []byte {
	return []byte(fmt.Sprintf("room:%019d", id))
}

func messageKey(room domain.RoomID, id domain.MessageID) []byte {
	return []byte(fmt.Sprintf("msg:%d:%019d", room, id))
}

func messagePrefix(room domain.RoomID) []byte {
	return []byte(fmt.Sprintf("msg:%d:", room))
}

func memberKey(id int64) []byte {
	return []byte(fmt.Sprintf("member:%d", id))
}
