package models

import "time"

// NotificationType enumerates the categories a notification can carry.
type NotificationType string

const (
	NotificationReminder NotificationType = "reminder"
	NotificationAlert    NotificationType = "alert"
	NotificationInfo     NotificationType = "info"
	NotificationSuccess  NotificationType = "success"
	NotificationWarning  NotificationType = "warning"
)

// Notification represents a message targeted to a specific user.
// Read transitions one way, false to true, via an explicit mark-read action.
type Notification struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	UserID      string           `gorm:"size:64;index" json:"user_id"`
	Title       string           `gorm:"size:255;not null" json:"title"`
	Message     string           `gorm:"type:text" json:"message"`
	Type        NotificationType `gorm:"size:32;default:info" json:"type"`
	Read        bool             `gorm:"not null;default:false" json:"read"`
	ActionLabel string           `gorm:"size:64" json:"action_label,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// Badge maps a notification type to its display badge class.
func (t NotificationType) Badge() BadgeClass {
	switch t {
	case NotificationSuccess:
		return BadgeSuccess
	case NotificationAlert:
		return BadgeDanger
	case NotificationWarning, NotificationReminder:
		return BadgeWarning
	case NotificationInfo:
		return BadgeInfo
	default:
		return BadgeInfo
	}
}
