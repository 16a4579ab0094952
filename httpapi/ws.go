package httpapi

import (
	"context"
	"net/http"
	"time"

	"mentor-chat/domain"
	"mentor-chat/domain/event"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
)

var validate = validator.New()

const (
	frameTypeMessage = "MESSAGE"
	frameTypeError   = "ERROR"

	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 45 * time.Second
)

type inboundFrame struct {
	Content string `json:"content" validate:"required"`
}

type outboundFrame struct {
	Type    string           `json:"type"`
	Message *messageResponse `json:"message,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// socketSink bridges the fan-out pipeline to one websocket connection.
// A full buffer means a slow consumer; the push is dropped rather than
// blocking the fan-out worker, and the client recovers through history.
type socketSink struct {
	out chan outboundFrame
}

func newSocketSink(bufferSize int) *socketSink {
	return &socketSink{out: make(chan outboundFrame, bufferSize)}
}

func (s *socketSink) Consume(ctx context.Context, e event.DomainEvent) error {
	stored, ok := e.(event.MessageStored)
	if !ok {
		return nil
	}
	response := toMessageResponse(stored.Message)
	frame := outboundFrame{Type: frameTypeMessage, Message: &response}
	select {
	case s.out <- frame:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// handleSocket is the realtime path: the connection subscribes to the
// room's broadcast channel and accepts send frames. The sender identity is
// the authenticated viewer; nothing in the frame can override it. Failures
// are logged with structured fields and reported back as an error frame —
// the connection itself stays up.
func (s *Server) handleSocket(c *gin.Context) {
	viewer := viewerFrom(c)
	roomID, err := parseRoomID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "room_id", roomID, "viewer_id", viewer.ID, "error", err)
		return
	}
	defer conn.Close()

	sink := newSocketSink(s.connectionBufferSize)
	subID, err := s.chat.Subscribe(roomID, viewer, sink)
	if err != nil {
		// Subscribing can fail on access or a missing room; tell the
		// client once and drop the connection.
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		_ = conn.WriteJSON(outboundFrame{Type: frameTypeError, Error: err.Error()})
		return
	}
	defer s.chat.Unsubscribe(subID, roomID)

	done := make(chan struct{})
	go s.writePump(conn, sink, done)

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var frame inboundFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn("websocket read failed",
					"room_id", roomID, "viewer_id", viewer.ID, "error", err)
			}
			break
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))

		if err := validate.Struct(frame); err != nil {
			s.reportSocketFailure(sink, roomID, viewer.ID, "invalid frame", err)
			continue
		}
		if _, err := s.chat.SendMessage(c.Request.Context(), roomID, viewer, frame.Content); err != nil {
			s.reportSocketFailure(sink, roomID, viewer.ID, "send rejected", err)
		}
		// The sender receives its own message through the broadcast like
		// every other subscriber; no direct echo here.
	}
	close(done)
}

// reportSocketFailure logs a realtime failure with structured fields and
// pushes an error frame to the sender instead of failing silently.
func (s *Server) reportSocketFailure(sink *socketSink, roomID domain.RoomID, viewerID int64, kind string, err error) {
	s.log.Warn("socket message failed",
		"room_id", roomID, "viewer_id", viewerID, "kind", kind, "error", err)
	select {
	case sink.out <- outboundFrame{Type: frameTypeError, Error: err.Error()}:
	default:
	}
}

// writePump is the single writer of the connection. Events, error frames
// and pings all leave through here; gorilla forbids concurrent writers.
func (s *Server) writePump(conn *websocket.Conn, sink *socketSink, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case frame := <-sink.out:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(frame); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
