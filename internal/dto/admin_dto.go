package dto

import (
	"time"

	"github.com/noah-isme/eduonboard-api/internal/models"
)

// StudentRow is a tracker list entry for the admin student view.
type StudentRow struct {
	ID                   uint                    `json:"id"`
	Name                 string                  `json:"name"`
	Email                string                  `json:"email"`
	RollNumber           string                  `json:"roll_number"`
	Department           string                  `json:"department"`
	Year                 int                     `json:"year"`
	CompletionPercentage int                     `json:"completion_percentage"`
	EnrollmentStatus     models.EnrollmentStatus `json:"enrollment_status"`
	Badge                models.BadgeClass       `json:"badge"`
	AtRisk               bool                    `json:"at_risk"`
	JoinedAt             time.Time               `json:"joined_at"`
}

// DepartmentStats aggregates completion for one department.
type DepartmentStats struct {
	Department        string `json:"department"`
	Students          int    `json:"students"`
	AverageCompletion int    `json:"average_completion"`
}

// AnalyticsResponse is the admin analytics summary.
type AnalyticsResponse struct {
	TotalStudents     int               `json:"total_students"`
	AverageCompletion int               `json:"average_completion"`
	Departments       []DepartmentStats `json:"departments"`
	DocumentsVerified int               `json:"documents_verified"`
	DocumentsTotal    int               `json:"documents_total"`
	OpenEscalations   int               `json:"open_escalations"`
	AtRiskStudents    int               `json:"at_risk_students"`
	CacheHit          bool              `json:"cache_hit,omitempty"`
}

// OverviewResponse carries headline counts for the admin dashboard.
type OverviewResponse struct {
	TotalStudents    int `json:"total_students"`
	ActiveStudents   int `json:"active_students"`
	PendingDocuments int `json:"pending_documents"`
	OpenEscalations  int `json:"open_escalations"`
	UnreadAlerts     int `json:"unread_alerts"`
}

// NewStudentRow converts a student model. Students under the risk threshold
// are flagged for the tracker view.
func NewStudentRow(s models.Student, riskThreshold int) StudentRow {
	return StudentRow{
		ID:                   s.ID,
		Name:                 s.Name,
		Email:                s.Email,
		RollNumber:           s.RollNumber,
		Department:           s.Department,
		Year:                 s.Year,
		CompletionPercentage: s.CompletionPercentage,
		EnrollmentStatus:     s.EnrollmentStatus,
		Badge:                s.EnrollmentStatus.Badge(),
		AtRisk:               s.CompletionPercentage < riskThreshold,
		JoinedAt:             s.JoinedAt,
	}
}
