package models

import "time"

// DocumentStatus enumerates the verification states of a submitted document.
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusReviewed DocumentStatus = "reviewed"
	DocumentStatusApproved DocumentStatus = "approved"
	DocumentStatusRejected DocumentStatus = "rejected"
)

// Document represents a file a student must submit for verification.
//
// Lifecycle: created unsubmitted (UploadedAt nil) → pending on upload →
// approved or rejected via admin review → rejected documents may be
// re-uploaded, returning to pending with the rejection reason cleared.
type Document struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	StudentID       uint           `gorm:"index;not null" json:"student_id"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	Type            string         `gorm:"size:64" json:"type"`
	Status          DocumentStatus `gorm:"size:32;default:pending" json:"status"`
	Required        bool           `gorm:"not null;default:false" json:"required"`
	UploadedAt      *time.Time     `json:"uploaded_at,omitempty"`
	ReviewedAt      *time.Time     `json:"reviewed_at,omitempty"`
	ReviewedBy      string         `gorm:"size:255" json:"reviewed_by,omitempty"`
	FileSize        string         `gorm:"size:32" json:"file_size,omitempty"`
	RejectionReason string         `gorm:"type:text" json:"rejection_reason,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// IsMissing reports whether the document has never been uploaded,
// regardless of its stored status.
func (d Document) IsMissing() bool {
	return d.UploadedAt == nil
}

// Badge maps a document status to its display badge class. Unknown values
// fall back to the info class.
func (s DocumentStatus) Badge() BadgeClass {
	switch s {
	case DocumentStatusApproved:
		return BadgeSuccess
	case DocumentStatusRejected:
		return BadgeDanger
	case DocumentStatusPending:
		return BadgePrimary
	case DocumentStatusReviewed:
		return BadgeWarning
	default:
		return BadgeInfo
	}
}
