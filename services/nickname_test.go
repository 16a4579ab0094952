package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"mentor-chat/domain"
	"mentor-chat/errors"
	"mentor-chat/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestResolver(t *testing.T, directory *mocks.MockIMemberDirectory) *NicknameResolver {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	resolver, err := NewNicknameResolver(directory, 10*time.Minute, log)
	require.NoError(t, err)
	return resolver
}

func Test_CounterpartyLabel_Mentoring_Both_Sides(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockIMemberDirectory(ctrl)
	directory.EXPECT().GetNickname(int64(20)).Return("mentee-lee", nil)
	directory.EXPECT().GetNickname(int64(10)).Return("mentor-kim", nil)

	resolver := newTestResolver(t, directory)
	room := domain.Room{ID: 1, Variant: domain.Mentoring{MentorID: 10, MenteeID: 20}}

	mentorView := resolver.CounterpartyLabel(room, domain.Viewer{ID: 10, Role: domain.RoleMentor})
	require.Equal("mentee-lee", mentorView)

	menteeView := resolver.CounterpartyLabel(room, domain.Viewer{ID: 20, Role: domain.RoleMentee})
	require.Equal("mentor-kim", menteeView)
}

func Test_CounterpartyLabel_Caches_Hits(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockIMemberDirectory(ctrl)
	directory.EXPECT().GetNickname(int64(20)).Return("mentee-lee", nil).Times(1)

	resolver := newTestResolver(t, directory)
	room := domain.Room{ID: 1, Variant: domain.Mentoring{MentorID: 10, MenteeID: 20}}
	viewer := domain.Viewer{ID: 10, Role: domain.RoleMentor}

	require.Equal("mentee-lee", resolver.CounterpartyLabel(room, viewer))
	resolver.cache.Wait()
	require.Equal("mentee-lee", resolver.CounterpartyLabel(room, viewer))
}

func Test_CounterpartyLabel_Directory_Miss_Is_Unknown(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockIMemberDirectory(ctrl)
	// Misses are not cached, so both calls reach the directory.
	directory.EXPECT().GetNickname(int64(20)).Return("", errors.ErrMemberNotFound).Times(2)

	resolver := newTestResolver(t, directory)
	room := domain.Room{ID: 1, Variant: domain.Mentoring{MentorID: 10, MenteeID: 20}}
	viewer := domain.Viewer{ID: 10, Role: domain.RoleMentor}

	require.Equal(UnknownLabel, resolver.CounterpartyLabel(room, viewer))
	resolver.cache.Wait()
	require.Equal(UnknownLabel, resolver.CounterpartyLabel(room, viewer))
}

func Test_CounterpartyLabel_Admin_Room(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockIMemberDirectory(ctrl)
	directory.EXPECT().GetNickname(int64(20)).Return("mentee-lee", nil)

	resolver := newTestResolver(t, directory)
	room := domain.Room{ID: 2, Variant: domain.AdminContact{AdminID: 5, MemberID: 20}}

	// The admin sees the member's nickname.
	adminView := resolver.CounterpartyLabel(room, domain.Viewer{ID: 5, Role: domain.RoleAdmin})
	require.Equal("mentee-lee", adminView)

	// The member sees the fixed admin label, never a directory lookup.
	memberView := resolver.CounterpartyLabel(room, domain.Viewer{ID: 20, Role: domain.RoleMember})
	require.Equal(AdminLabel, memberView)
}

func Test_Invalidate_Forces_Fresh_Lookup(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockIMemberDirectory(ctrl)
	first := directory.EXPECT().GetNickname(int64(20)).Return("mentee-lee", nil)
	directory.EXPECT().GetNickname(int64(20)).Return("mentee-renamed", nil).After(first)

	resolver := newTestResolver(t, directory)
	room := domain.Room{ID: 1, Variant: domain.Mentoring{MentorID: 10, MenteeID: 20}}
	viewer := domain.Viewer{ID: 10, Role: domain.RoleMentor}

	require.Equal("mentee-lee", resolver.CounterpartyLabel(room, viewer))
	resolver.cache.Wait()

	resolver.Invalidate(20)
	resolver.cache.Wait()
	require.Equal("mentee-renamed", resolver.CounterpartyLabel(room, viewer))
}
