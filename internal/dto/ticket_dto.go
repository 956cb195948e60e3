package dto

import (
	"time"

	"github.com/noah-isme/eduonboard-api/internal/models"
)

// TicketResponse describes an escalation ticket.
type TicketResponse struct {
	ID          uint                `json:"id"`
	Reference   string              `json:"reference"`
	StudentID   uint                `json:"student_id"`
	StudentName string              `json:"student_name"`
	Department  string              `json:"department"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      models.TicketStatus `json:"status"`
	Badge       models.BadgeClass   `json:"badge"`
	Priority    models.Priority     `json:"priority"`
	AssignedTo  string              `json:"assigned_to,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	ResolvedAt  *time.Time          `json:"resolved_at,omitempty"`
}

// TicketCreateRequest opens a new escalation ticket.
type TicketCreateRequest struct {
	StudentID   uint   `json:"student_id" validate:"required"`
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"max=2000"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// TicketAssignRequest hands a ticket to a named assignee.
type TicketAssignRequest struct {
	AssignedTo string `json:"assigned_to" validate:"required,max=255"`
}

// NewTicketResponse converts a ticket model.
func NewTicketResponse(t models.EscalationTicket) TicketResponse {
	return TicketResponse{
		ID:          t.ID,
		Reference:   t.Reference,
		StudentID:   t.StudentID,
		StudentName: t.StudentName,
		Department:  t.Department,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Badge:       t.Status.Badge(),
		Priority:    t.Priority,
		AssignedTo:  t.AssignedTo,
		CreatedAt:   t.CreatedAt,
		ResolvedAt:  t.ResolvedAt,
	}
}

// NewTicketResponseSlice converts a slice of tickets preserving order.
func NewTicketResponseSlice(items []models.EscalationTicket) []TicketResponse {
	responses := make([]TicketResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, NewTicketResponse(item))
	}
	return responses
}
