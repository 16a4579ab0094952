// Package domain contains core concepts of the chat system.
// This file defines Room entities and their variants.
// No runtime, network, or UI logic should be added here.
package domain

import "time"

type RoomID uint64

type RoomKind string

const (
	KindMentoring RoomKind = "MENTORING_CHAT"
	KindAdmin     RoomKind = "ADMIN_CHAT"
)

// RoomVariant is the sealed set of conversation shapes a room can take.
// Code that branches on a variant must switch over both concrete types.
type RoomVariant interface {
	Kind() RoomKind
}

// Mentoring links a mentor and a mentee.
type Mentoring struct {
	MentorID int64
	MenteeID int64
}

func (Mentoring) Kind() RoomKind { return KindMentoring }

// AdminContact links a plain member with the designated admin account.
type AdminContact struct {
	AdminID  int64
	MemberID int64
}

func (AdminContact) Kind() RoomKind { return KindAdmin }

// Room identifies a conversation channel.
// Variant and participant identifiers are immutable after creation.
type Room struct {
	ID        RoomID
	Variant   RoomVariant
	CreatedAt time.Time
}

// Involves reports whether the given member participates in the room,
// on either side of the variant.
func (r Room) Involves(memberID int64) bool {
	switch v := r.Variant.(type) {
	case Mentoring:
		return memberID == v.MentorID || memberID == v.MenteeID
	case AdminContact:
		return memberID == v.AdminID || memberID == v.MemberID
	default:
		return false
	}
}
