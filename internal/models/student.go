package models

import "time"

// EnrollmentStatus enumerates a student's enrollment state.
type EnrollmentStatus string

const (
	EnrollmentActive  EnrollmentStatus = "active"
	EnrollmentPending EnrollmentStatus = "pending"
	EnrollmentDropped EnrollmentStatus = "dropped"
)

// Student represents a learner going through onboarding.
//
// CompletionPercentage is a cache of the value derived from the student's
// task set. It is recomputed and stored on every task mutation; readers treat
// it as display data, never as ground truth.
type Student struct {
	ID                   uint             `gorm:"primaryKey" json:"id"`
	Name                 string           `gorm:"size:255;not null" json:"name"`
	Email                string           `gorm:"size:255;uniqueIndex;not null" json:"email"`
	RollNumber           string           `gorm:"size:64;index" json:"roll_number"`
	Department           string           `gorm:"size:128;index" json:"department"`
	Year                 int              `json:"year"`
	Phone                string           `gorm:"size:32" json:"phone"`
	CompletionPercentage int              `gorm:"not null;default:0" json:"completion_percentage"`
	EnrollmentStatus     EnrollmentStatus `gorm:"size:32;default:pending" json:"enrollment_status"`
	JoinedAt             time.Time        `json:"joined_at"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`

	Tasks     []OnboardingTask `json:"-"`
	Documents []Document       `json:"-"`
}

// Badge maps an enrollment status to its display badge class.
func (s EnrollmentStatus) Badge() BadgeClass {
	switch s {
	case EnrollmentActive:
		return BadgeSuccess
	case EnrollmentDropped:
		return BadgeDanger
	case EnrollmentPending:
		return BadgeWarning
	default:
		return BadgeInfo
	}
}
