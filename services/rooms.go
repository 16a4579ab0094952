//go:generate go run go.uber.org/mock/mockgen -source=rooms.go -destination=../mocks/mock_room_service.go -package=mocks
package services

import (
	"log/slog"
	"time"

	"mentor-chat/domain"
	"mentor-chat/repositories"
)

type IRoomService interface {
	GetOrCreateMentoringRoom(mentorID, menteeID int64) (domain.Room, error)
	GetOrCreateAdminRoom(memberID int64) (domain.Room, error)
	ListRoomsForViewer(viewer domain.Viewer) ([]domain.RoomSummary, error)
	GetRoomDetail(roomID domain.RoomID, viewer domain.Viewer) (domain.RoomSummary, error)
}

// RoomService owns room discovery and the viewer-relative summary
// projection. Uniqueness of rooms per pair is enforced by the repository's
// insert-or-fetch, not rechecked here.
type RoomService struct {
	rooms       repositories.IRoomRepository
	messages    repositories.IMessageRepository
	directory   repositories.IMemberDirectory
	nicknames   *NicknameResolver
	adminID     int64
	displayZone *time.Location
	log         *slog.Logger
}

func NewRoomService(
	rooms repositories.IRoomRepository,
	messages repositories.IMessageRepository,
	directory repositories.IMemberDirectory,
	nicknames *NicknameResolver,
	adminID int64,
	displayZone *time.Location,
	log *slog.Logger,
) *RoomService {
	return &RoomService{
		rooms:       rooms,
		messages:    messages,
		directory:   directory,
		nicknames:   nicknames,
		adminID:     adminID,
		displayZone: displayZone,
		log:         log,
	}
}

// GetOrCreateMentoringRoom returns the single room for the exact
// (mentor, mentee) pair, creating it on first contact. Safe to call
// concurrently for the same pair; both callers get the same room.
func (s *RoomService) GetOrCreateMentoringRoom(mentorID, menteeID int64) (domain.Room, error) {
	return s.rooms.GetOrCreate(domain.Mentoring{MentorID: mentorID, MenteeID: menteeID})
}

// GetOrCreateAdminRoom pairs the member with the designated admin account.
// The member must exist in the directory; ErrMemberNotFound otherwise.
func (s *RoomService) GetOrCreateAdminRoom(memberID int64) (domain.Room, error) {
	if _, err := s.directory.GetNickname(memberID); err != nil {
		return domain.Room{}, err
	}
	return s.rooms.GetOrCreate(domain.AdminContact{AdminID: s.adminID, MemberID: memberID})
}

// ListRoomsForViewer returns all rooms the viewer participates in, one
// summary per room. An admin sees the admin rooms held by their account;
// everyone else sees their mentoring rooms plus their admin-contact room.
func (s *RoomService) ListRoomsForViewer(viewer domain.Viewer) ([]domain.RoomSummary, error) {
	var rooms []domain.Room
	var err error
	if viewer.Role == domain.RoleAdmin {
		rooms, err = s.rooms.ListForAdmin(viewer.ID)
	} else {
		rooms, err = s.rooms.ListForMember(viewer.ID)
	}
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		summary, err := s.toSummary(room, viewer)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// GetRoomDetail fetches one room, enforces access, and projects it for the
// viewer. ErrRoomNotFound for unknown ids, ErrAccessDenied otherwise.
func (s *RoomService) GetRoomDetail(roomID domain.RoomID, viewer domain.Viewer) (domain.RoomSummary, error) {
	room, err := s.rooms.Get(roomID)
	if err != nil {
		return domain.RoomSummary{}, err
	}
	if err = CheckAccess(room, viewer); err != nil {
		return domain.RoomSummary{}, err
	}
	return s.toSummary(room, viewer)
}

// toSummary recomputes the projection from the room, its latest message and
// the nickname directory. May populate the nickname cache as a side effect.
func (s *RoomService) toSummary(room domain.Room, viewer domain.Viewer) (domain.RoomSummary, error) {
	latest, err := s.messages.Latest(room.ID)
	if err != nil {
		return domain.RoomSummary{}, err
	}

	summary := domain.RoomSummary{
		RoomID:            room.ID,
		Kind:              room.Variant.Kind(),
		CounterpartyLabel: s.nicknames.CounterpartyLabel(room, viewer),
	}
	if latest != nil {
		at := latest.SentAt.In(s.displayZone)
		summary.LastMessagePreview = latest.Content
		summary.LastMessageAt = &at
	}
	return summary, nil
}
