package models

import "time"

// TaskStatus enumerates the lifecycle states of an onboarding task.
type TaskStatus string

// Known task statuses. Overdue is display-only: it is derived from the due
// date at read time and never written back to storage.
const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusOverdue    TaskStatus = "overdue"
)

// Priority ranks how urgent a task or ticket is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// OnboardingTask represents a single step a student must complete during onboarding.
type OnboardingTask struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	StudentID   uint       `gorm:"index;not null" json:"student_id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Category    string     `gorm:"size:64" json:"category"`
	Status      TaskStatus `gorm:"size:32;default:pending" json:"status"`
	DueDate     time.Time  `gorm:"not null" json:"due_date"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Priority    Priority   `gorm:"size:16;default:medium" json:"priority"`
	Required    bool       `gorm:"not null;default:false" json:"required"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// DisplayStatus returns the status the task should render with at the given
// reference time. An incomplete task whose due date has passed is overdue no
// matter what is stored; a task loaded yesterday as pending may be overdue today.
func (t OnboardingTask) DisplayStatus(reference time.Time) TaskStatus {
	if t.Status != TaskStatusCompleted && t.DueDate.Before(reference) {
		return TaskStatusOverdue
	}
	return t.Status
}

// IsPastDue reports whether the task deadline has already passed.
func (t OnboardingTask) IsPastDue(reference time.Time) bool {
	return reference.After(t.DueDate)
}

// Badge maps a task status to its display badge class. Unknown values fall
// back to the info class rather than failing.
func (s TaskStatus) Badge() BadgeClass {
	switch s {
	case TaskStatusCompleted:
		return BadgeSuccess
	case TaskStatusOverdue:
		return BadgeDanger
	case TaskStatusInProgress:
		return BadgePrimary
	case TaskStatusPending:
		return BadgeWarning
	default:
		return BadgeInfo
	}
}
