package httpapi

import (
	"time"

	"mentor-chat/domain"

	"github.com/samber/lo"
)

type createRoomRequest struct {
	// ApplicationID ties the room back to the mentoring application it
	// stems from; the chat core itself does not interpret it.
	ApplicationID  int64 `form:"applicationId" binding:"required"`
	CounterpartyID int64 `form:"counterpartyId" binding:"required"`
}

type sendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

type roomResponse struct {
	RoomID uint64 `json:"roomId"`
}

type roomSummaryResponse struct {
	RoomID         uint64     `json:"roomId"`
	RoomType       string     `json:"roomType"`
	LastMessage    string     `json:"lastMessage,omitempty"`
	LastMessageAt  *time.Time `json:"lastMessageAt,omitempty"`
	TargetNickname string     `json:"targetNickname"`
}

type messageResponse struct {
	MessageID  uint64    `json:"messageId"`
	RoomID     uint64    `json:"roomId"`
	SenderID   int64     `json:"senderId"`
	SenderRole string    `json:"senderRole"`
	Content    string    `json:"content"`
	SentAt     time.Time `json:"sentAt"`
}

func toSummaryResponse(summary domain.RoomSummary) roomSummaryResponse {
	return roomSummaryResponse{
		RoomID:         uint64(summary.RoomID),
		RoomType:       string(summary.Kind),
		LastMessage:    summary.LastMessagePreview,
		LastMessageAt:  summary.LastMessageAt,
		TargetNickname: summary.CounterpartyLabel,
	}
}

func toSummaryResponses(summaries []domain.RoomSummary) []roomSummaryResponse {
	return lo.Map(summaries, func(item domain.RoomSummary, _ int) roomSummaryResponse {
		return toSummaryResponse(item)
	})
}

func toMessageResponse(message domain.Message) messageResponse {
	return messageResponse{
		MessageID:  uint64(message.ID),
		RoomID:     uint64(message.Room),
		SenderID:   message.SenderID,
		SenderRole: string(message.SenderRole),
		Content:    message.Content,
		SentAt:     message.SentAt,
	}
}

func toMessageResponses(messages []domain.Message) []messageResponse {
	return lo.Map(messages, func(item domain.Message, _ int) messageResponse {
		return toMessageResponse(item)
	})
}
