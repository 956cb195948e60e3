package dto

import (
	"time"

	"github.com/noah-isme/eduonboard-api/internal/models"
)

// NotificationResponse describes a delivered notification.
type NotificationResponse struct {
	ID          uint                    `json:"id"`
	UserID      string                  `json:"user_id"`
	Title       string                  `json:"title"`
	Message     string                  `json:"message"`
	Type        models.NotificationType `json:"type"`
	Badge       models.BadgeClass       `json:"badge"`
	Read        bool                    `json:"read"`
	ActionLabel string                  `json:"action_label,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
}

// NotificationCreateRequest is the payload for publishing a notification.
type NotificationCreateRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	Title       string `json:"title" validate:"required,max=255"`
	Message     string `json:"message" validate:"required"`
	Type        string `json:"type" validate:"omitempty,oneof=reminder alert info success warning"`
	ActionLabel string `json:"action_label" validate:"omitempty,max=64"`
}

// NewNotificationResponse converts a notification model.
func NewNotificationResponse(n models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		UserID:      n.UserID,
		Title:       n.Title,
		Message:     n.Message,
		Type:        n.Type,
		Badge:       n.Type.Badge(),
		Read:        n.Read,
		ActionLabel: n.ActionLabel,
		CreatedAt:   n.CreatedAt,
	}
}

// NewNotificationResponseSlice converts a slice of notifications preserving order.
func NewNotificationResponseSlice(items []models.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, NewNotificationResponse(item))
	}
	return responses
}
