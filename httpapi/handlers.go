package httpapi

import (
	"net/http"
	"strconv"

	"mentor-chat/domain"
	"mentor-chat/errors"

	"github.com/gin-gonic/gin"
)

// createMentoringRoom creates (or returns) the room between the viewer and
// the counterparty. The viewer's role decides which side of the pair they
// sit on; anyone who is neither mentor nor mentee has no business here.
func (s *Server) createMentoringRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	viewer := viewerFrom(c)
	var mentorID, menteeID int64
	switch viewer.Role {
	case domain.RoleMentor:
		mentorID, menteeID = viewer.ID, req.CounterpartyID
	case domain.RoleMentee:
		mentorID, menteeID = req.CounterpartyID, viewer.ID
	default:
		s.fail(c, errors.ErrAccessDenied)
		return
	}

	room, err := s.rooms.GetOrCreateMentoringRoom(mentorID, menteeID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, roomResponse{RoomID: uint64(room.ID)})
}

// createAdminRoom pairs the viewer with the designated admin account.
func (s *Server) createAdminRoom(c *gin.Context) {
	viewer := viewerFrom(c)
	room, err := s.rooms.GetOrCreateAdminRoom(viewer.ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, roomResponse{RoomID: uint64(room.ID)})
}

func (s *Server) listRooms(c *gin.Context) {
	summaries, err := s.rooms.ListRoomsForViewer(viewerFrom(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toSummaryResponses(summaries))
}

func (s *Server) roomDetail(c *gin.Context) {
	roomID, err := parseRoomID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}
	summary, err := s.rooms.GetRoomDetail(roomID, viewerFrom(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toSummaryResponse(summary))
}

// listMessages pages through history, newest first, keyed by an absolute
// message id rather than an offset.
func (s *Server) listMessages(c *gin.Context) {
	roomID, err := parseRoomID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	var before *domain.MessageID
	if raw := c.Query("beforeMessageId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid beforeMessageId"})
			return
		}
		id := domain.MessageID(parsed)
		before = &id
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid size"})
		return
	}

	messages, err := s.chat.GetMessages(roomID, viewerFrom(c), before, size)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toMessageResponses(messages))
}

// sendMessage is the synchronous store-and-ack path. The sender identity
// comes from the viewer context only.
func (s *Server) sendMessage(c *gin.Context) {
	roomID, err := parseRoomID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := s.chat.SendMessage(c.Request.Context(), roomID, viewerFrom(c), req.Content)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toMessageResponse(message))
}

func parseRoomID(c *gin.Context) (domain.RoomID, error) {
	id, err := strconv.ParseUint(c.Param("roomID"), 10, 64)
	return domain.RoomID(id), err
}
