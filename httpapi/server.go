// Package httpapi exposes the chat operations over REST and a websocket
// realtime path. It resolves viewer identity at the boundary and never
// trusts sender fields from payloads.
package httpapi

import (
	"log/slog"
	"net/http"

	"mentor-chat/errors"
	"mentor-chat/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Server struct {
	log                  *slog.Logger
	chat                 services.IChatService
	rooms                services.IRoomService
	secret               []byte
	connectionBufferSize int
	upgrader             websocket.Upgrader
}

func NewServer(log *slog.Logger, chat services.IChatService, rooms services.IRoomService,
	secret []byte, connectionBufferSize int) *Server {
	return &Server{
		log:                  log,
		chat:                 chat,
		rooms:                rooms,
		secret:               secret,
		connectionBufferSize: connectionBufferSize,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Cross-origin policy is the gateway's concern.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api/chat", s.requireViewer())
	{
		api.POST("/room", s.createMentoringRoom)
		api.POST("/room/admin", s.createAdminRoom)
		api.GET("/rooms", s.listRooms)
		api.GET("/room/:roomID", s.roomDetail)
		// The singular/plural split below mirrors the existing product
		// surface; clients depend on both spellings.
		api.GET("/room/:roomID/messages", s.listMessages)
		api.POST("/rooms/:roomID/messages", s.sendMessage)
	}

	router.GET("/ws/chat/rooms/:roomID", s.requireViewer(), s.handleSocket)
	return router
}

// fail maps domain errors onto HTTP statuses. Anything unmapped is a 500
// and gets logged; mapped failures are the client's problem.
func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch err {
	case errors.ErrRoomNotFound, errors.ErrMemberNotFound:
		status = http.StatusNotFound
	case errors.ErrAccessDenied:
		status = http.StatusForbidden
	case errors.ErrInvalidMessage:
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
