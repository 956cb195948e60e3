package models

import "time"

// ChatRole identifies which side of the conversation authored a message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage represents a single turn in an assistant conversation.
// Confidence is only present on assistant messages.
type ChatMessage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SessionID  string    `gorm:"size:128;index" json:"session_id"`
	Role       ChatRole  `gorm:"size:16;not null" json:"role"`
	Content    string    `gorm:"type:text" json:"content"`
	Confidence *float64  `json:"confidence,omitempty"`
	Escalated  bool      `gorm:"not null;default:false" json:"escalated"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
