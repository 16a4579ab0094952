package services

import (
	"log/slog"
	"strconv"
	"time"

	"mentor-chat/domain"
	"mentor-chat/errors"
	"mentor-chat/repositories"

	"github.com/dgraph-io/ristretto/v2"
)

const (
	// UnknownLabel is the defined fallback when a counterparty cannot be
	// resolved (deleted member, directory miss). Not an error.
	UnknownLabel = "Unknown"
	// AdminLabel is what the member side of an admin room sees. The admin
	// side is an institutional role, never a personal nickname.
	AdminLabel = "Admin"
)

// NicknameResolver resolves viewer-relative counterparty labels.
// Lookups go through a shared TTL cache so the directory is only hit on
// cold or expired entries. Concurrent misses for one id may each call the
// directory, but they converge on a single cached value.
type NicknameResolver struct {
	directory repositories.IMemberDirectory
	cache     *ristretto.Cache[string, string]
	ttl       time.Duration
	log       *slog.Logger
}

func NewNicknameResolver(directory repositories.IMemberDirectory, ttl time.Duration, log *slog.Logger) (*NicknameResolver, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters: 100_000,
		MaxCost:     10_000,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &NicknameResolver{directory: directory, cache: cache, ttl: ttl, log: log}, nil
}

// CounterpartyLabel returns the label shown for the other side of the room,
// from the viewer's perspective. Exhaustive over both variants.
func (n *NicknameResolver) CounterpartyLabel(room domain.Room, viewer domain.Viewer) string {
	switch v := room.Variant.(type) {
	case domain.Mentoring:
		target := v.MentorID
		if viewer.ID == v.MentorID {
			target = v.MenteeID
		}
		return n.lookup(target)
	case domain.AdminContact:
		if viewer.Role == domain.RoleAdmin {
			return n.lookup(v.MemberID)
		}
		return AdminLabel
	default:
		return UnknownLabel
	}
}

// Invalidate drops the cached nickname for a member. Called when a profile
// changes so staleness is bounded by the TTL in the worst case only.
func (n *NicknameResolver) Invalidate(id int64) {
	n.cache.Del(cacheKey(id))
}

func (n *NicknameResolver) lookup(id int64) string {
	key := cacheKey(id)
	if nickname, ok := n.cache.Get(key); ok {
		return nickname
	}
	nickname, err := n.directory.GetNickname(id)
	if err != nil {
		if err != errors.ErrMemberNotFound {
			n.log.Warn("nickname lookup failed", "member_id", id, "error", err)
		}
		// Misses are not cached: a member registered later resolves
		// without waiting for an eviction.
		return UnknownLabel
	}
	n.cache.SetWithTTL(key, nickname, 1, n.ttl)
	return nickname
}

func cacheKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
