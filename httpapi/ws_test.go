package httpapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mentor-chat/auth"
	"mentor-chat/domain"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func dialRoom(t *testing.T, baseURL string, roomID uint64, viewer domain.Viewer) *websocket.Conn {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, viewer, time.Hour)
	require.NoError(t, err)

	wsURL := "ws" + strings.TrimPrefix(baseURL, "http") +
		fmt.Sprintf("/ws/chat/rooms/%d?token=%s", roomID, token)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) outboundFrame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var frame outboundFrame
	require.NoError(t, conn.ReadJSON(&frame))
	return frame
}

func Test_Socket_Broadcasts_To_Room(t *testing.T) {
	require := require.New(t)
	f := newAPIFixture(t)
	ts := httptest.NewServer(f.router)
	defer ts.Close()

	mentee := domain.Viewer{ID: 20, Role: domain.RoleMentee}
	mentor := domain.Viewer{ID: 10, Role: domain.RoleMentor}

	created := f.do(t, http.MethodPost, "/api/chat/room?applicationId=7&counterpartyId=10",
		bearer(t, mentee), "")
	require.Equal(http.StatusOK, created.Code)
	room := decodeJSON[roomResponse](t, created)

	menteeConn := dialRoom(t, ts.URL, room.RoomID, mentee)
	mentorConn := dialRoom(t, ts.URL, room.RoomID, mentor)

	require.NoError(menteeConn.WriteJSON(inboundFrame{Content: "hello over the wire"}))

	// Both sides receive the stored message, the sender included.
	for _, conn := range []*websocket.Conn{menteeConn, mentorConn} {
		frame := readFrame(t, conn)
		require.Equal(frameTypeMessage, frame.Type)
		require.NotNil(frame.Message)
		require.Equal("hello over the wire", frame.Message.Content)
		require.Equal(int64(20), frame.Message.SenderID)
	}
}

func Test_Socket_Denied_Viewer_Gets_Error_Frame(t *testing.T) {
	require := require.New(t)
	f := newAPIFixture(t)
	ts := httptest.NewServer(f.router)
	defer ts.Close()

	created := f.do(t, http.MethodPost, "/api/chat/room?applicationId=7&counterpartyId=10",
		bearer(t, domain.Viewer{ID: 20, Role: domain.RoleMentee}), "")
	require.Equal(http.StatusOK, created.Code)
	room := decodeJSON[roomResponse](t, created)

	stranger := dialRoom(t, ts.URL, room.RoomID, domain.Viewer{ID: 99, Role: domain.RoleMentee})
	frame := readFrame(t, stranger)
	require.Equal(frameTypeError, frame.Type)
	require.NotEmpty(frame.Error)
}

func Test_Socket_Rejected_Send_Reports_Error(t *testing.T) {
	require := require.New(t)
	f := newAPIFixture(t)
	ts := httptest.NewServer(f.router)
	defer ts.Close()

	mentee := domain.Viewer{ID: 20, Role: domain.RoleMentee}
	created := f.do(t, http.MethodPost, "/api/chat/room?applicationId=7&counterpartyId=10",
		bearer(t, mentee), "")
	room := decodeJSON[roomResponse](t, created)

	conn := dialRoom(t, ts.URL, room.RoomID, mentee)

	// Whitespace-only content is stored nowhere; the sender is told so
	// and the connection stays usable.
	require.NoError(conn.WriteJSON(inboundFrame{Content: "   "}))
	frame := readFrame(t, conn)
	require.Equal(frameTypeError, frame.Type)

	require.NoError(conn.WriteJSON(inboundFrame{Content: "still here"}))
	next := readFrame(t, conn)
	require.Equal(frameTypeMessage, next.Type)
	require.Equal("still here", next.Message.Content)
}
