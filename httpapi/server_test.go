package httpapi

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"mentor-chat/domain"
	"mentor-chat/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockedAPI struct {
	apiFixture
	chat  *mocks.MockIChatService
	rooms *mocks.MockIRoomService
}

func newMockedAPI(t *testing.T) mockedAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	chat := mocks.NewMockIChatService(ctrl)
	rooms := mocks.NewMockIRoomService(ctrl)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := NewServer(log, chat, rooms, testSecret, 16)
	return mockedAPI{
		apiFixture: apiFixture{router: server.Router()},
		chat:       chat,
		rooms:      rooms,
	}
}

func Test_SendMessage_Passes_Viewer_Identity(t *testing.T) {
	require := require.New(t)
	f := newMockedAPI(t)

	viewer := domain.Viewer{ID: 20, Role: domain.RoleMentee}
	stored := domain.Message{ID: 3, Room: 7, SenderID: 20,
		SenderRole: domain.RoleMentee, Content: "hi", SentAt: time.Now().UTC()}

	// The service gets the authenticated viewer, never payload fields.
	f.chat.EXPECT().
		SendMessage(gomock.Any(), domain.RoomID(7), viewer, "hi").
		Return(stored, nil).
		Times(1)

	resp := f.do(t, http.MethodPost, "/api/chat/rooms/7/messages", bearer(t, viewer),
		`{"content":"hi","senderId":999}`)
	require.Equal(http.StatusOK, resp.Code)

	message := decodeJSON[messageResponse](t, resp)
	require.Equal(uint64(3), message.MessageID)
	require.Equal(int64(20), message.SenderID)
}

func Test_GetMessages_Passes_Cursor(t *testing.T) {
	require := require.New(t)
	f := newMockedAPI(t)

	viewer := domain.Viewer{ID: 10, Role: domain.RoleMentor}
	cursor := domain.MessageID(16)

	f.chat.EXPECT().
		GetMessages(domain.RoomID(7), viewer, &cursor, 10).
		Return(nil, nil).
		Times(1)

	resp := f.do(t, http.MethodGet,
		"/api/chat/room/7/messages?beforeMessageId=16&size=10", bearer(t, viewer), "")
	require.Equal(http.StatusOK, resp.Code)
}

func Test_Unexpected_Service_Error_Is_500(t *testing.T) {
	require := require.New(t)
	f := newMockedAPI(t)

	viewer := domain.Viewer{ID: 20, Role: domain.RoleMentee}
	f.rooms.EXPECT().
		ListRoomsForViewer(viewer).
		Return(nil, fmt.Errorf("store unavailable")).
		Times(1)

	resp := f.do(t, http.MethodGet, "/api/chat/rooms", bearer(t, viewer), "")
	require.Equal(http.StatusInternalServerError, resp.Code)
}

func Test_CreateMentoringRoom_Orders_The_Pair_By_Role(t *testing.T) {
	require := require.New(t)
	f := newMockedAPI(t)

	room := domain.Room{ID: 1, Variant: domain.Mentoring{MentorID: 10, MenteeID: 20}}

	// A mentee viewer sits on the mentee side of the pair.
	f.rooms.EXPECT().
		GetOrCreateMentoringRoom(int64(10), int64(20)).
		Return(room, nil).
		Times(1)
	mentee := bearer(t, domain.Viewer{ID: 20, Role: domain.RoleMentee})
	resp := f.do(t, http.MethodPost, "/api/chat/room?applicationId=7&counterpartyId=10", mentee, "")
	require.Equal(http.StatusOK, resp.Code)

	// A mentor viewer sits on the mentor side.
	f.rooms.EXPECT().
		GetOrCreateMentoringRoom(int64(10), int64(20)).
		Return(room, nil).
		Times(1)
	mentor := bearer(t, domain.Viewer{ID: 10, Role: domain.RoleMentor})
	resp = f.do(t, http.MethodPost, "/api/chat/room?applicationId=7&counterpartyId=20", mentor, "")
	require.Equal(http.StatusOK, resp.Code)
}
