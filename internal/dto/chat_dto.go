package dto

import (
	"time"

	"github.com/noah-isme/eduonboard-api/internal/models"
)

// ChatMessageResponse describes a single conversation turn.
type ChatMessageResponse struct {
	ID         uint            `json:"id"`
	SessionID  string          `json:"session_id"`
	Role       models.ChatRole `json:"role"`
	Content    string          `json:"content"`
	Confidence *float64        `json:"confidence,omitempty"`
	Escalated  bool            `json:"escalated"`
	CreatedAt  time.Time       `json:"created_at"`
}

// AskRequest is a free-text query posted to the assistant.
type AskRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// EscalateRequest hands the current conversation off to a human advisor.
type EscalateRequest struct {
	Title string `json:"title" validate:"omitempty,max=255"`
}

// NewChatMessageResponse converts a chat message model.
func NewChatMessageResponse(m models.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:         m.ID,
		SessionID:  m.SessionID,
		Role:       m.Role,
		Content:    m.Content,
		Confidence: m.Confidence,
		Escalated:  m.Escalated,
		CreatedAt:  m.CreatedAt,
	}
}

// NewChatMessageResponseSlice converts a slice of chat messages preserving order.
func NewChatMessageResponseSlice(items []models.ChatMessage) []ChatMessageResponse {
	responses := make([]ChatMessageResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, NewChatMessageResponse(item))
	}
	return responses
}
